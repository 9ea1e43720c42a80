// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package host provides an in-memory execution environment for contracts
// written against the sc.Context interface. It keeps the state of all
// deployed contracts, runs func and view entry points, dispatches
// cross-contract calls, and rolls back all effects of aborted invocations.
//
// The host is intended for testing contracts and for embedding them in Go
// programs; it is not a VM and performs no metering.
package host

import (
	"fmt"
	"sync"

	"github.com/Fantom-foundation/Wasmkit/go/sc"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

const (
	// DefaultMaxCallDepth is the nesting limit for cross-contract calls if
	// none is configured.
	DefaultMaxCallDepth = 16
	// DefaultNameCacheSize is the number of hnames cached if no size is
	// configured.
	DefaultNameCacheSize = 1024

	// FuncInit is the entry point run on deployment, if a contract has one.
	FuncInit = "init"
)

// Config summarizes the configuration options of a Host. The zero value is
// a valid configuration.
type Config struct {
	ChainID       sc.ChainID
	ChainOwner    sc.AgentID
	Logger        *zap.Logger // < nil disables logging
	MaxCallDepth  int         // < maximum nesting of cross-contract calls
	NameCacheSize int         // < number of cached name hashes
}

// Handler is the implementation of a contract entry point.
type Handler func(ctx sc.Context)

// Contract lists the entry points of a contract by name. Funcs may modify
// the contract's state, views may only read it.
type Contract struct {
	Funcs map[string]Handler
	Views map[string]Handler
}

// Host is an in-memory chain of deployed contracts. Invocations are
// serialized; a Host may be used from multiple goroutines.
type Host struct {
	config Config
	log    *zap.Logger

	// hnames caches the hashes of names used to address contracts and
	// entry points.
	hnames *lru.Cache[string, sc.Hname]

	mu        sync.Mutex // protects the following
	contracts map[sc.Hname]*deployment
}

// deployment is the host-side record of a deployed contract.
type deployment struct {
	name    string
	hname   sc.Hname
	creator sc.AgentID
	state   *sc.Map
	funcs   map[sc.Hname]entryPoint
	views   map[sc.Hname]entryPoint
}

type entryPoint struct {
	name    string
	handler Handler
}

// New creates an empty host using the given configuration.
func New(config Config) *Host {
	if config.MaxCallDepth <= 0 {
		config.MaxCallDepth = DefaultMaxCallDepth
	}
	if config.NameCacheSize <= 0 {
		config.NameCacheSize = DefaultNameCacheSize
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}

	// can only fail for non-positive size
	cache, _ := lru.New[string, sc.Hname](config.NameCacheSize)

	return &Host{
		config:    config,
		log:       config.Logger.With(zap.Stringer("chain", config.ChainID)),
		hnames:    cache,
		contracts: map[sc.Hname]*deployment{},
	}
}

// Hname returns the hname of the given name.
func (h *Host) Hname(name string) sc.Hname {
	if res, found := h.hnames.Get(name); found {
		return res
	}
	res := sc.Hn(name)
	h.hnames.Add(name, res)
	return res
}

// ChainID returns the id of the chain simulated by this host.
func (h *Host) ChainID() sc.ChainID {
	return h.config.ChainID
}

// ChainOwner returns the agent owning the chain simulated by this host.
func (h *Host) ChainOwner() sc.AgentID {
	return h.config.ChainOwner
}

// ContractID returns the agent id of the contract with the given hname.
func (h *Host) ContractID(contract sc.Hname) sc.AgentID {
	return sc.NewAgentID(h.config.ChainID.Address(), contract)
}

// Deploy registers a contract under the given name, created by the given
// agent. If the contract has an "init" func, it is run with the given
// parameters; should it abort, the deployment is reverted and the abort
// error is returned. The contract is not reachable by other invocations
// before its init completed. Names are unique per host.
func (h *Host) Deploy(name string, creator sc.AgentID, contract Contract, params *sc.Map) (sc.Hname, error) {
	d, err := h.newDeployment(name, creator, contract)
	if err != nil {
		return 0, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, found := h.contracts[d.hname]; found {
		return 0, fmt.Errorf("invalid deployment: multiple contracts registered for `%s`", name)
	}
	h.contracts[d.hname] = d

	if ep, found := d.funcs[h.Hname(FuncInit)]; found {
		_, err := h.invoke(Request{
			Caller:   creator,
			Contract: d.hname,
			Function: h.Hname(ep.name),
			Params:   params,
		}, balances{})
		if err != nil {
			delete(h.contracts, d.hname)
			return 0, err
		}
	}

	h.log.Info("contract deployed", zap.String("contract", name), zap.Stringer("hname", d.hname), zap.Stringer("creator", creator))
	return d.hname, nil
}

func (h *Host) newDeployment(name string, creator sc.AgentID, contract Contract) (*deployment, error) {
	if name == "" {
		return nil, fmt.Errorf("invalid deployment: empty contract name")
	}
	res := &deployment{
		name:    name,
		hname:   h.Hname(name),
		creator: creator,
		state:   sc.NewMap(),
		funcs:   map[sc.Hname]entryPoint{},
		views:   map[sc.Hname]entryPoint{},
	}
	for _, list := range []struct {
		handlers map[string]Handler
		trg      map[sc.Hname]entryPoint
	}{
		{contract.Funcs, res.funcs},
		{contract.Views, res.views},
	} {
		for fn, handler := range list.handlers {
			if handler == nil {
				return nil, fmt.Errorf("invalid deployment: nil handler for `%s.%s`", name, fn)
			}
			hname := h.Hname(fn)
			if _, found := res.funcs[hname]; found {
				return nil, fmt.Errorf("invalid deployment: multiple entry points registered for `%s.%s`", name, fn)
			}
			if _, found := res.views[hname]; found {
				return nil, fmt.Errorf("invalid deployment: multiple entry points registered for `%s.%s`", name, fn)
			}
			list.trg[hname] = entryPoint{name: fn, handler: handler}
		}
	}
	return res, nil
}

// StateOf returns a read-only view on the state of the given contract, nil
// if there is no such contract.
func (h *Host) StateOf(contract sc.Hname) *sc.Map {
	h.mu.Lock()
	defer h.mu.Unlock()
	d, found := h.contracts[contract]
	if !found {
		return nil
	}
	return d.state.ReadOnly()
}
