// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package host

import (
	"fmt"

	"github.com/Fantom-foundation/Wasmkit/go/safemath"
	"github.com/Fantom-foundation/Wasmkit/go/sc"
	"go.uber.org/zap"
)

// Transfer is an amount of colored tokens attached to a request.
type Transfer struct {
	Color  sc.Color
	Amount int64
}

// Request summarizes the inputs of an invocation of a func entry point.
type Request struct {
	Caller   sc.AgentID
	Contract sc.Hname
	Function sc.Hname
	Params   *sc.Map // < may be nil
	Transfer []Transfer
}

// Invoke runs the func entry point addressed by the request. On success,
// the results of the entry point are returned and all state modifications
// are retained. If the contract aborts, the state of every contract is
// restored to the state before the invocation and an *AbortError is
// returned, unwrapping to the error reported by the contract.
func (h *Host) Invoke(request Request) (*sc.Map, error) {
	incoming, err := collectTransfers(request.Transfer)
	if err != nil {
		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	return h.invoke(request, incoming)
}

// invoke runs a func entry point; h.mu must be held by the caller.
func (h *Host) invoke(request Request, incoming balances) (*sc.Map, error) {
	d, ep, err := h.lookup(request.Contract, request.Function, true)
	if err != nil {
		return nil, err
	}

	ctx := newEntryContext(d, request.Function, h.newContext(d, ep, request.Caller, request.Params, 0), incoming)

	snapshot := h.createSnapshot()
	if err := h.run(ctx, ep); err != nil {
		h.restoreSnapshot(snapshot)
		return nil, err
	}
	return ctx.base().results, nil
}

// View runs the view entry point of the given contract. Views can not
// modify state, hence nothing needs to be rolled back on aborts.
func (h *Host) View(contract, function sc.Hname, params *sc.Map) (*sc.Map, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	d, ep, err := h.lookup(contract, function, false)
	if err != nil {
		return nil, err
	}
	ctx := &viewContext{
		baseContext: h.newContext(d, ep, sc.AgentID{}, params, 0),
	}
	if err := h.run(ctx, ep); err != nil {
		return nil, err
	}
	return ctx.results, nil
}

// Call is a convenience wrapper of Invoke addressing contract and entry
// point by name.
func (h *Host) Call(caller sc.AgentID, contract, function string, params *sc.Map, transfer ...Transfer) (*sc.Map, error) {
	return h.Invoke(Request{
		Caller:   caller,
		Contract: h.Hname(contract),
		Function: h.Hname(function),
		Params:   params,
		Transfer: transfer,
	})
}

// run executes an entry point in the given context, converting panics
// raised by the contract into errors.
func (h *Host) run(ctx entryContext, ep entryPoint) (err error) {
	base := ctx.base()
	log := h.log.With(
		zap.String("contract", base.contract.name),
		zap.String("function", ep.name),
		zap.Int("depth", base.depth),
	)
	defer func() {
		if r := recover(); r != nil {
			abort := toAbortError(r, base.contract.name, ep.name)
			log.Warn("invocation aborted", zap.Error(abort.Err))
			err = abort
		}
	}()
	log.Debug("invocation started", zap.Stringer("caller", base.caller))
	ep.handler(ctx)
	log.Debug("invocation completed", zap.Int("results", base.results.Len()))
	return nil
}

// call performs a nested invocation on behalf of the given context. Failures
// to reach the target are reported as errors wrapping sc.ErrTransport, aborts
// of the target propagate to the enclosing invocation.
func (h *Host) call(from *baseContext, contract, function sc.Hname, params *sc.Map, allowFuncs bool) (*sc.Map, error) {
	depth := from.depth + 1
	if depth > h.config.MaxCallDepth {
		return nil, fmt.Errorf("%w: %w: %d", sc.ErrTransport, ErrCallDepthExceeded, depth)
	}
	d, ep, err := h.lookup(contract, function, allowFuncs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", sc.ErrTransport, err)
	}

	if params != nil {
		params = params.Clone()
	}
	caller := h.ContractID(from.contract.hname)
	base := h.newContext(d, ep, caller, params, depth)

	ctx := newEntryContext(d, function, base, balances{})
	if err := h.run(ctx, ep); err != nil {
		// The enclosing invocation is terminated as well.
		panic(err)
	}
	return base.results.ReadOnly(), nil
}

// lookup resolves an entry point. Views are always eligible, funcs only if
// allowFuncs is set.
func (h *Host) lookup(contract, function sc.Hname, allowFuncs bool) (*deployment, entryPoint, error) {
	d, found := h.contracts[contract]
	if !found {
		return nil, entryPoint{}, fmt.Errorf("%w: %v", ErrUnknownContract, contract)
	}
	if ep, found := d.views[function]; found {
		return d, ep, nil
	}
	if ep, found := d.funcs[function]; found {
		if allowFuncs {
			return d, ep, nil
		}
		return nil, entryPoint{}, fmt.Errorf("%w: %s.%v is not a view", ErrUnknownEntryPoint, d.name, function)
	}
	return nil, entryPoint{}, fmt.Errorf("%w: %s.%v", ErrUnknownEntryPoint, d.name, function)
}

// newEntryContext wraps the base context into the context type matching the
// kind of the entry point. Only funcs receive incoming tokens.
func newEntryContext(d *deployment, function sc.Hname, base baseContext, incoming balances) entryContext {
	if _, isFunc := d.funcs[function]; isFunc {
		return &funcContext{baseContext: base, incoming: incoming}
	}
	return &viewContext{baseContext: base}
}

func (h *Host) newContext(d *deployment, ep entryPoint, caller sc.AgentID, params *sc.Map, depth int) baseContext {
	if params == nil {
		params = sc.NewMap()
	}
	return baseContext{
		host:     h,
		contract: d,
		function: ep.name,
		caller:   caller,
		params:   params.ReadOnly(),
		results:  sc.NewMap(),
		depth:    depth,
	}
}

// snapshot is a copy of the state of all deployed contracts.
type snapshot map[sc.Hname]*sc.Map

func (h *Host) createSnapshot() snapshot {
	res := make(snapshot, len(h.contracts))
	for hname, d := range h.contracts {
		res[hname] = d.state.Clone()
	}
	return res
}

func (h *Host) restoreSnapshot(s snapshot) {
	for hname, d := range h.contracts {
		if state, found := s[hname]; found {
			d.state.Restore(state)
		}
	}
}

// collectTransfers sums up the attached tokens per color, preserving the
// order in which colors first appear.
func collectTransfers(transfers []Transfer) (balances, error) {
	res := balances{amounts: map[sc.Color]int64{}}
	for _, t := range transfers {
		if t.Amount <= 0 {
			return balances{}, fmt.Errorf("%w: non-positive amount %d of color %v", ErrInvalidTransfer, t.Amount, t.Color)
		}
		cur, found := res.amounts[t.Color]
		if !found {
			res.colors = append(res.colors, t.Color)
		}
		sum, err := safemath.CheckedAdd(cur, t.Amount)
		if err != nil {
			return balances{}, fmt.Errorf("%w: %w", ErrInvalidTransfer, err)
		}
		res.amounts[t.Color] = sum
	}
	return res, nil
}

// balances are the tokens attached to an invocation.
type balances struct {
	colors  []sc.Color
	amounts map[sc.Color]int64
}
