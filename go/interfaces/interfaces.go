// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package interfaces implements TIP-100, a capability discovery protocol
// allowing contracts to ask peer contracts whether they support a named
// interface before depending on it.
//
// A contract supporting TIP-100 exposes the entry point "implements". It
// receives the hname of the queried interface as parameter ParamInterface
// and answers with a boolean result ResultImplements.
package interfaces

import (
	"fmt"

	"github.com/Fantom-foundation/Wasmkit/go/kind"
	"github.com/Fantom-foundation/Wasmkit/go/params"
	"github.com/Fantom-foundation/Wasmkit/go/results"
	"github.com/Fantom-foundation/Wasmkit/go/sc"
)

const (
	// FuncImplements is the name of the TIP-100 entry point.
	FuncImplements = "implements"
	// ParamInterface is the parameter carrying the queried interface.
	ParamInterface = "tip_100"
	// ResultImplements is the result carrying the answer.
	ResultImplements = "implements"
)

var (
	// HnameFuncImplements addresses the TIP-100 entry point.
	HnameFuncImplements = sc.Hn(FuncImplements)
	// InterfaceTip100 identifies TIP-100 itself; contracts serving the
	// protocol report to implement it.
	InterfaceTip100 = sc.Hn("implements(ScHname,ScHname)->bool")
)

// Implements asks the given contract whether it implements the interface.
//
// A contract answering the query without listing the interface yields
// false, as does an answer lacking the result. If the query cannot be
// delivered, for instance because the target does not expose the
// "implements" entry point, the invocation is aborted with sc.ErrTransport.
func Implements(ctx sc.Context, contract sc.Hname, iface sc.Hname) bool {
	query := params.New()
	params.Add(query, kind.Hname, ParamInterface, iface)

	answer, err := ctx.Call(contract, HnameFuncImplements, query)
	if err != nil {
		sc.Fail(ctx, fmt.Errorf("%w: interface query to contract %v: %w", sc.ErrTransport, contract, err))
	}
	if answer == nil {
		return false
	}
	return results.GetBool(ctx, answer, ResultImplements)
}

// Serve answers a TIP-100 query in the "implements" entry point of a
// contract supporting the given interfaces. TIP-100 itself is always
// reported as supported.
func Serve(ctx sc.Context, supported ...sc.Hname) {
	iface := params.MustGet(ctx, kind.Hname, ParamInterface)
	res := iface == InterfaceTip100
	for _, cur := range supported {
		res = res || cur == iface
	}
	results.SetBool(ctx, ResultImplements, res)
}
