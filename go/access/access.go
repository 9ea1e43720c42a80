// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package access gates privileged entry points by the identity of the
// caller. Every check aborts the invocation on mismatch.
package access

import (
	"fmt"

	"github.com/Fantom-foundation/Wasmkit/go/sc"
)

const (
	msgNotContractCreator = "Only the contract creator may call this function!"
	msgNotChainOwner      = "Only the chain owner may call this function."
	msgNotContractItself  = "Only the contract itself may call this function!"
)

// RequireCallerIsContractCreator aborts unless the caller deployed the
// current contract.
func RequireCallerIsContractCreator(ctx sc.Context) {
	require(ctx, ctx.ContractCreator(), msgNotContractCreator)
}

// RequireCallerIsChainOwner aborts unless the caller owns the chain.
func RequireCallerIsChainOwner(ctx sc.Context) {
	require(ctx, ctx.ChainOwnerID(), msgNotChainOwner)
}

// RequireCallerIsContractItself aborts unless the current contract called
// itself, e.g. for callback entry points.
func RequireCallerIsContractItself(ctx sc.Context) {
	require(ctx, ctx.AccountID(), msgNotContractItself)
}

func require(ctx sc.Context, want sc.AgentID, message string) {
	if ctx.Caller() != want {
		sc.Fail(ctx, fmt.Errorf("%w: %s", sc.ErrUnauthorized, message))
	}
}
