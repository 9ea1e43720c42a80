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
	"github.com/Fantom-foundation/Wasmkit/go/incoming"
	"github.com/Fantom-foundation/Wasmkit/go/kind"
	"github.com/Fantom-foundation/Wasmkit/go/params"
	"github.com/Fantom-foundation/Wasmkit/go/results"
	"github.com/Fantom-foundation/Wasmkit/go/safemath"
	"github.com/Fantom-foundation/Wasmkit/go/sc"
	"github.com/Fantom-foundation/Wasmkit/go/state"
)

const (
	VaultName = "vault"

	VaultFuncDeposit     = "deposit"
	VaultFuncWithdrawAll = "withdrawAll"
	VaultFuncCallback    = "callback"
	VaultViewBalance     = "balance"

	VaultParamAmount     = "amount"
	VaultResultBalance   = "balance"
	VaultResultWithdrawn = "withdrawn"

	VaultStateBalance        = "balance"
	VaultStateDepositors     = "depositors"
	VaultStateLastWithdrawal = "lastWithdrawal"
	VaultStateLastDepositor  = "lastDepositor"
)

// Vault is a contract accumulating the IOTA tokens attached to deposits.
// Only the chain owner may withdraw the accumulated balance; the
// withdrawal is recorded by a callback only the vault itself may invoke.
func Vault() host.Contract {
	return host.Contract{
		Funcs: map[string]host.Handler{
			VaultFuncDeposit:     vaultDeposit,
			VaultFuncWithdrawAll: vaultWithdrawAll,
			VaultFuncCallback:    vaultCallback,
		},
		Views: map[string]host.Handler{
			VaultViewBalance: vaultBalance,
		},
	}
}

func vaultDeposit(ctx sc.Context) {
	amount := incoming.Balance(ctx, sc.ColorIOTA)
	if amount == 0 {
		sc.Fail(ctx, fmt.Errorf("%w: no iotas attached to deposit", sc.ErrNotFound))
	}
	balance := safemath.Add(ctx, state.Get(ctx, kind.Int64, VaultStateBalance), amount)
	depositors := safemath.Add(ctx, state.Get(ctx, kind.Int64, VaultStateDepositors), 1)
	state.Set(ctx, kind.Int64, VaultStateBalance, balance)
	state.Set(ctx, kind.Int64, VaultStateDepositors, depositors)
	state.Set(ctx, kind.AgentID, VaultStateLastDepositor, ctx.Caller())
	results.Set(ctx, kind.Int64, VaultResultBalance, balance)
	ctx.Log(fmt.Sprintf("vault.deposit: %d iotas by %v", amount, ctx.Caller()))
}

func vaultWithdrawAll(ctx sc.Context) {
	access.RequireCallerIsChainOwner(ctx)
	balance := state.Get(ctx, kind.Int64, VaultStateBalance)

	record := params.New()
	params.Add(record, kind.Int64, VaultParamAmount, balance)
	if _, err := ctx.Call(ctx.Contract(), sc.Hn(VaultFuncCallback), record); err != nil {
		sc.Fail(ctx, fmt.Errorf("%w: %w", sc.ErrTransport, err))
	}

	state.Set(ctx, kind.Int64, VaultStateBalance, 0)
	results.Set(ctx, kind.Int64, VaultResultWithdrawn, balance)
}

func vaultCallback(ctx sc.Context) {
	access.RequireCallerIsContractItself(ctx)
	state.Set(ctx, kind.Int64, VaultStateLastWithdrawal, params.MustGet(ctx, kind.Int64, VaultParamAmount))
}

func vaultBalance(ctx sc.Context) {
	results.Set(ctx, kind.Int64, VaultResultBalance, state.Get(ctx, kind.Int64, VaultStateBalance))
}
