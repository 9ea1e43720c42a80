// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package sc

//go:generate mockgen -source context.go -destination context_mock.go -package sc

// Context provides access to the execution context of a single contract
// invocation as offered by the host. It is the union of the operations
// needed by mutating (func) and read-only (view) entry points; a host
// provides one implementation per flavor and the helpers in this
// repository never distinguish between them.
//
// All state obtained from a Context is only valid for the invocation it was
// obtained in.
type Context interface {
	// State is the persisted key/value store of the contract. Writes take
	// effect when the invocation completes successfully. For views the
	// returned map is read-only.
	State() *Map
	// Params holds the parameters the invocation was called with.
	Params() *Map
	// Results collects the values returned to the caller.
	Results() *Map

	// Caller is the agent that invoked the current entry point.
	Caller() AgentID
	// ContractCreator is the agent that deployed the current contract.
	ContractCreator() AgentID
	// ChainOwnerID is the agent owning the chain.
	ChainOwnerID() AgentID
	// AccountID is the agent id of the current contract itself.
	AccountID() AgentID
	// ChainID identifies the chain the contract is running on.
	ChainID() ChainID
	// Contract is the hname of the current contract.
	Contract() Hname

	// Balance returns the amount of tokens of the given color attached to
	// the invocation.
	Balance(color Color) int64
	// Colors lists the colors of the tokens attached to the invocation.
	Colors() []Color

	// Call synchronously invokes an entry point of another contract. The
	// returned error is non-nil if the call could not be delivered, for
	// instance because the target does not exist. Failures inside the
	// callee abort the whole invocation and never surface here.
	Call(contract, function Hname, params *Map) (*Map, error)

	// Abort terminates the invocation, discarding all of its effects. A
	// host implementation does not return from this call.
	Abort(err error)

	// Log emits an informational message.
	Log(message string)
	// Trace emits a debug message.
	Trace(message string)
}
