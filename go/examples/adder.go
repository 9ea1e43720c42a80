// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package examples

import (
	"fmt"

	"github.com/Fantom-foundation/Wasmkit/go/access"
	"github.com/Fantom-foundation/Wasmkit/go/host"
	"github.com/Fantom-foundation/Wasmkit/go/kind"
	"github.com/Fantom-foundation/Wasmkit/go/params"
	"github.com/Fantom-foundation/Wasmkit/go/results"
	"github.com/Fantom-foundation/Wasmkit/go/safemath"
	"github.com/Fantom-foundation/Wasmkit/go/sc"
	"github.com/Fantom-foundation/Wasmkit/go/state"
)

const (
	AdderName = "adder"

	AdderFuncAdd      = "add"
	AdderViewGetTotal = "getTotal"

	AdderParamAmount = "amount"
	AdderResultTotal = "total"
	AdderStateTotal  = "total"

	// AdderIncrement is added to the amount passed to "add".
	AdderIncrement = int64(8)
)

// Adder is a contract whose creator may store an amount increased by
// AdderIncrement. The last stored total can be queried by anyone.
func Adder() host.Contract {
	return host.Contract{
		Funcs: map[string]host.Handler{
			AdderFuncAdd: adderAdd,
		},
		Views: map[string]host.Handler{
			AdderViewGetTotal: adderGetTotal,
		},
	}
}

func adderAdd(ctx sc.Context) {
	amount := params.MustGet(ctx, kind.Int64, AdderParamAmount)
	access.RequireCallerIsContractCreator(ctx)
	total := safemath.Add(ctx, amount, AdderIncrement)
	state.Set(ctx, kind.Int64, AdderStateTotal, total)
	results.Set(ctx, kind.Int64, AdderResultTotal, total)
	ctx.Trace(fmt.Sprintf("adder.add: %d + %d = %d", amount, AdderIncrement, total))
}

func adderGetTotal(ctx sc.Context) {
	results.Set(ctx, kind.Int64, AdderResultTotal, state.Get(ctx, kind.Int64, AdderStateTotal))
}
