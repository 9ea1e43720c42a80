// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package incoming

import (
	"github.com/Fantom-foundation/Wasmkit/go/safemath"
	"github.com/Fantom-foundation/Wasmkit/go/sc"
)

// Balance returns the amount of tokens of the given color attached to the
// invocation.
func Balance(ctx sc.Context, color sc.Color) int64 {
	return ctx.Balance(color)
}

// Colors lists the colors of the tokens attached to the invocation.
func Colors(ctx sc.Context) []sc.Color {
	return ctx.Colors()
}

// Total sums the incoming balances of all colors. The invocation is
// aborted if the sum does not fit into an int64.
func Total(ctx sc.Context) int64 {
	total := int64(0)
	for _, color := range ctx.Colors() {
		total = safemath.Add(ctx, total, ctx.Balance(color))
	}
	return total
}
