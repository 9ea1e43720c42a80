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
	"github.com/Fantom-foundation/Wasmkit/go/sc"
	"go.uber.org/zap"
)

// entryContext is the host-side implementation of sc.Context.
type entryContext interface {
	sc.Context
	base() *baseContext
}

// baseContext provides the operations shared by func and view contexts.
type baseContext struct {
	host     *Host
	contract *deployment
	function string
	caller   sc.AgentID
	params   *sc.Map
	results  *sc.Map
	depth    int
}

func (c *baseContext) base() *baseContext {
	return c
}

func (c *baseContext) Params() *sc.Map {
	return c.params
}

func (c *baseContext) Results() *sc.Map {
	return c.results
}

func (c *baseContext) Caller() sc.AgentID {
	return c.caller
}

func (c *baseContext) ContractCreator() sc.AgentID {
	return c.contract.creator
}

func (c *baseContext) ChainOwnerID() sc.AgentID {
	return c.host.config.ChainOwner
}

func (c *baseContext) AccountID() sc.AgentID {
	return c.host.ContractID(c.contract.hname)
}

func (c *baseContext) ChainID() sc.ChainID {
	return c.host.config.ChainID
}

func (c *baseContext) Contract() sc.Hname {
	return c.contract.hname
}

func (c *baseContext) Abort(err error) {
	panic(&AbortError{
		Contract: c.contract.name,
		Function: c.function,
		Err:      err,
	})
}

func (c *baseContext) Log(message string) {
	c.host.log.Info(message, c.fields()...)
}

func (c *baseContext) Trace(message string) {
	c.host.log.Debug(message, c.fields()...)
}

func (c *baseContext) fields() []zap.Field {
	return []zap.Field{
		zap.String("contract", c.contract.name),
		zap.String("function", c.function),
	}
}

// funcContext is the context of func entry points. It may modify the state
// of its contract and call funcs and views of other contracts.
type funcContext struct {
	baseContext
	incoming balances
}

func (c *funcContext) State() *sc.Map {
	return c.contract.state
}

func (c *funcContext) Balance(color sc.Color) int64 {
	return c.incoming.amounts[color]
}

func (c *funcContext) Colors() []sc.Color {
	return append([]sc.Color(nil), c.incoming.colors...)
}

func (c *funcContext) Call(contract, function sc.Hname, params *sc.Map) (*sc.Map, error) {
	return c.host.call(&c.baseContext, contract, function, params, true)
}

// viewContext is the context of view entry points. Its state is read-only,
// it carries no tokens, and it may only call views.
type viewContext struct {
	baseContext
}

func (c *viewContext) State() *sc.Map {
	return c.contract.state.ReadOnly()
}

func (c *viewContext) Balance(sc.Color) int64 {
	return 0
}

func (c *viewContext) Colors() []sc.Color {
	return nil
}

func (c *viewContext) Call(contract, function sc.Hname, params *sc.Map) (*sc.Map, error) {
	return c.host.call(&c.baseContext, contract, function, params, false)
}
