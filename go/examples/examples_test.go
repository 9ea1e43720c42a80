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
	"errors"
	"testing"

	"github.com/Fantom-foundation/Wasmkit/go/host"
	"github.com/Fantom-foundation/Wasmkit/go/interfaces"
	"github.com/Fantom-foundation/Wasmkit/go/kind"
	"github.com/Fantom-foundation/Wasmkit/go/params"
	"github.com/Fantom-foundation/Wasmkit/go/results"
	"github.com/Fantom-foundation/Wasmkit/go/sc"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

var (
	chain   = sc.ChainID{0xc4}
	owner   = sc.NewAgentID(sc.Address{0x01}, 0)
	creator = sc.NewAgentID(sc.Address{0x02}, 0)
	user    = sc.NewAgentID(sc.Address{0x03}, 0)
)

func newHost(t *testing.T) *host.Host {
	h := host.New(host.Config{
		ChainID:    chain,
		ChainOwner: owner,
		Logger:     zaptest.NewLogger(t),
	})
	for name, contract := range map[string]host.Contract{
		AdderName:  Adder(),
		Tip100Name: Tip100(),
		VaultName:  Vault(),
	} {
		if _, err := h.Deploy(name, creator, contract, nil); err != nil {
			t.Fatalf("failed to deploy %s: %v", name, err)
		}
	}
	return h
}

// decode reads a result the way a verifier outside of any invocation would.
func decode[T any](t *testing.T, res *sc.Map, codec kind.Codec[T], key string) T {
	t.Helper()
	data, found := res.Get(key)
	if !found {
		t.Fatalf("result %s not found in %v", key, res)
	}
	value, err := codec.Decode(data)
	if err != nil {
		t.Fatalf("invalid result %s: %v", key, err)
	}
	return value
}

func TestAdder_CreatorAddsIncrement(t *testing.T) {
	h := newHost(t)
	in := params.New()
	params.Add(in, kind.Int64, AdderParamAmount, 42)

	res, err := h.Call(creator, AdderName, AdderFuncAdd, in)
	if err != nil {
		t.Fatalf("invocation failed: %v", err)
	}
	if want, got := int64(50), decode(t, res, kind.Int64, AdderResultTotal); want != got {
		t.Errorf("unexpected total, wanted %d, got %d", want, got)
	}

	res, err = h.View(sc.Hn(AdderName), sc.Hn(AdderViewGetTotal), nil)
	if err != nil {
		t.Fatalf("view failed: %v", err)
	}
	if want, got := int64(50), decode(t, res, kind.Int64, AdderResultTotal); want != got {
		t.Errorf("unexpected stored total, wanted %d, got %d", want, got)
	}
}

func TestAdder_OtherCallersAreRejectedWithoutEffects(t *testing.T) {
	h := newHost(t)
	in := params.New()
	params.Add(in, kind.Int64, AdderParamAmount, 42)

	res, err := h.Call(user, AdderName, AdderFuncAdd, in)
	if !errors.Is(err, sc.ErrUnauthorized) {
		t.Errorf("expected %v, got %v", sc.ErrUnauthorized, err)
	}
	if res != nil {
		t.Errorf("aborted invocation must not produce results, got %v", res)
	}
	if state := h.StateOf(sc.Hn(AdderName)); state.Len() != 0 {
		t.Errorf("aborted invocation must not write state, got %v", state)
	}
}

func TestAdder_InvalidInputsAbort(t *testing.T) {
	overflowing := params.New()
	params.Add(overflowing, kind.Int64, AdderParamAmount, 1<<63-1)
	malformed := params.New()
	malformed.Set(AdderParamAmount, []byte{1, 2})

	tests := map[string]struct {
		params *sc.Map
		want   error
	}{
		"missing amount":   {nil, sc.ErrNotFound},
		"malformed amount": {malformed, sc.ErrDecode},
		"overflow":         {overflowing, sc.ErrOverflow},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			h := newHost(t)
			if _, err := h.Call(creator, AdderName, AdderFuncAdd, test.params); !errors.Is(err, test.want) {
				t.Errorf("expected %v, got %v", test.want, err)
			}
			if state := h.StateOf(sc.Hn(AdderName)); state.Len() != 0 {
				t.Errorf("aborted invocation must not write state, got %v", state)
			}
		})
	}
}

func TestAdder_FlowOnMockContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := sc.NewMockContext(ctrl)

	in := params.New()
	params.Add(in, kind.Int64, AdderParamAmount, 42)
	state := sc.NewMap()
	out := sc.NewMap()

	gomock.InOrder(
		ctx.EXPECT().Params().Return(in.ReadOnly()),
		ctx.EXPECT().ContractCreator().Return(creator),
		ctx.EXPECT().Caller().Return(creator),
		ctx.EXPECT().State().Return(state),
		ctx.EXPECT().Results().Return(out),
		ctx.EXPECT().Trace(gomock.Any()),
	)

	adderAdd(ctx)

	if want, got := int64(50), decode(t, out, kind.Int64, AdderResultTotal); want != got {
		t.Errorf("unexpected total, wanted %d, got %d", want, got)
	}
}

func probe(t *testing.T, h *host.Host, target sc.Hname, iface sc.Hname) (bool, error) {
	t.Helper()
	in := params.New()
	params.Add(in, kind.Hname, Tip100ParamTarget, target)
	params.Add(in, kind.Hname, Tip100ParamInterface, iface)
	res, err := h.Call(user, Tip100Name, Tip100FuncProbe, in)
	if err != nil {
		return false, err
	}
	return decode(t, res, kind.Bool, Tip100ResultAnswer), nil
}

func TestTip100_ProbingSupportingContract(t *testing.T) {
	h := newHost(t)
	tests := map[string]struct {
		iface sc.Hname
		want  bool
	}{
		"tip-100":     {interfaces.InterfaceTip100, true},
		"adder":       {sc.Hn(InterfaceAdder), true},
		"unsupported": {sc.Hn("tip_100"), false},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := probe(t, h, sc.Hn(Tip100Name), test.iface)
			if err != nil {
				t.Fatalf("probe failed: %v", err)
			}
			if test.want != got {
				t.Errorf("unexpected answer, wanted %t, got %t", test.want, got)
			}
		})
	}
}

func TestTip100_ProbingContractWithoutEntryPointIsTransportFailure(t *testing.T) {
	h := newHost(t)
	_, err := probe(t, h, sc.Hn(AdderName), interfaces.InterfaceTip100)
	if !errors.Is(err, sc.ErrTransport) {
		t.Errorf("expected %v, got %v", sc.ErrTransport, err)
	}

	var abort *host.AbortError
	if !errors.As(err, &abort) || abort.Contract != Tip100Name || abort.Function != Tip100FuncProbe {
		t.Errorf("failure must be attributed to the prober, got %v", err)
	}
}

func deposit(h *host.Host, caller sc.AgentID, amount int64) (*sc.Map, error) {
	return h.Call(caller, VaultName, VaultFuncDeposit, nil, host.Transfer{Color: sc.ColorIOTA, Amount: amount})
}

func TestVault_DepositsAccumulate(t *testing.T) {
	h := newHost(t)
	if _, err := deposit(h, user, 10); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}
	res, err := deposit(h, creator, 5)
	if err != nil {
		t.Fatalf("deposit failed: %v", err)
	}
	if want, got := int64(15), decode(t, res, kind.Int64, VaultResultBalance); want != got {
		t.Errorf("unexpected balance, wanted %d, got %d", want, got)
	}

	state := h.StateOf(sc.Hn(VaultName))
	if want, got := int64(2), decode(t, state, kind.Int64, VaultStateDepositors); want != got {
		t.Errorf("unexpected number of depositors, wanted %d, got %d", want, got)
	}
	if want, got := creator, decode(t, state, kind.AgentID, VaultStateLastDepositor); want != got {
		t.Errorf("unexpected last depositor, wanted %v, got %v", want, got)
	}
}

func TestVault_DepositWithoutIotasAborts(t *testing.T) {
	h := newHost(t)
	_, err := h.Call(user, VaultName, VaultFuncDeposit, nil, host.Transfer{Color: sc.Color{1}, Amount: 5})
	if !errors.Is(err, sc.ErrNotFound) {
		t.Errorf("expected %v, got %v", sc.ErrNotFound, err)
	}
}

func TestVault_OnlyChainOwnerMayWithdraw(t *testing.T) {
	h := newHost(t)
	if _, err := deposit(h, user, 10); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}

	if _, err := h.Call(creator, VaultName, VaultFuncWithdrawAll, nil); !errors.Is(err, sc.ErrUnauthorized) {
		t.Errorf("expected %v, got %v", sc.ErrUnauthorized, err)
	}

	res, err := h.Call(owner, VaultName, VaultFuncWithdrawAll, nil)
	if err != nil {
		t.Fatalf("withdrawal failed: %v", err)
	}
	if want, got := int64(10), decode(t, res, kind.Int64, VaultResultWithdrawn); want != got {
		t.Errorf("unexpected withdrawn amount, wanted %d, got %d", want, got)
	}

	state := h.StateOf(sc.Hn(VaultName))
	if want, got := int64(0), decode(t, state, kind.Int64, VaultStateBalance); want != got {
		t.Errorf("unexpected balance after withdrawal, wanted %d, got %d", want, got)
	}
	if want, got := int64(10), decode(t, state, kind.Int64, VaultStateLastWithdrawal); want != got {
		t.Errorf("unexpected recorded withdrawal, wanted %d, got %d", want, got)
	}
}

func TestVault_CallbackIsReservedForVault(t *testing.T) {
	h := newHost(t)
	in := params.New()
	params.Add(in, kind.Int64, VaultParamAmount, 1)

	for _, caller := range []sc.AgentID{user, creator, owner} {
		if _, err := h.Call(caller, VaultName, VaultFuncCallback, in); !errors.Is(err, sc.ErrUnauthorized) {
			t.Errorf("expected %v for caller %v, got %v", sc.ErrUnauthorized, caller, err)
		}
	}
}

func TestVault_BalanceView(t *testing.T) {
	h := newHost(t)
	res, err := h.View(sc.Hn(VaultName), sc.Hn(VaultViewBalance), nil)
	if err != nil {
		t.Fatalf("view failed: %v", err)
	}
	if got := decode(t, res, kind.Int64, VaultResultBalance); got != 0 {
		t.Errorf("unexpected balance of empty vault, wanted 0, got %d", got)
	}
	if !results.Exists(res, VaultResultBalance) {
		t.Errorf("balance must be reported even if zero")
	}
}
