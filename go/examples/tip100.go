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
	"github.com/Fantom-foundation/Wasmkit/go/host"
	"github.com/Fantom-foundation/Wasmkit/go/interfaces"
	"github.com/Fantom-foundation/Wasmkit/go/kind"
	"github.com/Fantom-foundation/Wasmkit/go/params"
	"github.com/Fantom-foundation/Wasmkit/go/results"
	"github.com/Fantom-foundation/Wasmkit/go/sc"
)

const (
	Tip100Name = "tip100"

	Tip100FuncProbe = "probe"

	Tip100ParamTarget    = "target"
	Tip100ParamInterface = "interface"
	Tip100ResultAnswer   = "answer"

	// InterfaceAdder is the name of the interface offered by the adder
	// contract.
	InterfaceAdder = "add(ScInt64)->ScInt64"
)

// Tip100 is a contract serving capability queries for the adder interface
// and probing other contracts for arbitrary interfaces.
func Tip100() host.Contract {
	return host.Contract{
		Funcs: map[string]host.Handler{
			interfaces.FuncImplements: tip100Implements,
			Tip100FuncProbe:           tip100Probe,
		},
	}
}

func tip100Implements(ctx sc.Context) {
	interfaces.Serve(ctx, sc.Hn(InterfaceAdder))
}

func tip100Probe(ctx sc.Context) {
	target := params.MustGet(ctx, kind.Hname, Tip100ParamTarget)
	iface := params.MustGet(ctx, kind.Hname, Tip100ParamInterface)
	results.SetBool(ctx, Tip100ResultAnswer, interfaces.Implements(ctx, target, iface))
}
