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

import (
	"encoding/binary"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	AddressLength   = 33
	AgentIDLength   = AddressLength + HnameLength
	ChainIDLength   = 33
	ColorLength     = 32
	HashLength      = 32
	HnameLength     = 4
	RequestIDLength = 34
)

// Address represents a 33-byte ledger address.
type Address [AddressLength]byte

// AgentID identifies a caller, a contract, or the chain owner. It is the
// address of the agent followed by the hname of a contract, or a zero hname
// for agents that are plain addresses. AgentIDs are only ever compared for
// equality.
type AgentID [AgentIDLength]byte

// ChainID identifies the chain a contract is deployed on.
type ChainID [ChainIDLength]byte

// Color identifies a kind of colored token.
type Color [ColorLength]byte

// Hash represents a 256-bit content hash.
type Hash [HashLength]byte

// RequestID identifies the request that triggered an invocation.
type RequestID [RequestIDLength]byte

// Hname is the 32-bit hash of a name, used to address contracts, entry
// points, and interfaces. See Hn.
type Hname uint32

var (
	// ColorIOTA is the color of uncolored base tokens.
	ColorIOTA = Color{}
	// ColorMint is the placeholder color for newly minted tokens.
	ColorMint = Color{
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	}
)

// NewAgentID composes an agent id from an address and a contract hname.
func NewAgentID(address Address, contract Hname) (result AgentID) {
	copy(result[:AddressLength], address[:])
	binary.LittleEndian.PutUint32(result[AddressLength:], uint32(contract))
	return
}

// Address returns the address part of the agent id.
func (a AgentID) Address() (result Address) {
	copy(result[:], a[:AddressLength])
	return
}

// Hname returns the contract part of the agent id. It is zero for agents
// that are plain addresses.
func (a AgentID) Hname() Hname {
	return Hname(binary.LittleEndian.Uint32(a[AddressLength:]))
}

// IsAddress reports whether the agent is a plain address rather than a
// contract.
func (a AgentID) IsAddress() bool {
	return a.Hname() == 0
}

func (a AgentID) String() string {
	return hexutil.Encode(a[:])
}

func (a AgentID) MarshalText() ([]byte, error) {
	return bytesToText(a[:])
}

func (a *AgentID) UnmarshalText(data []byte) error {
	return textToBytes(a[:], data)
}

func (a Address) String() string {
	return hexutil.Encode(a[:])
}

func (a Address) MarshalText() ([]byte, error) {
	return bytesToText(a[:])
}

func (a *Address) UnmarshalText(data []byte) error {
	return textToBytes(a[:], data)
}

// Address returns the address of the chain, which is also the address
// part of the agent ids of all contracts on the chain.
func (c ChainID) Address() Address {
	return Address(c)
}

func (c ChainID) String() string {
	return hexutil.Encode(c[:])
}

func (c ChainID) MarshalText() ([]byte, error) {
	return bytesToText(c[:])
}

func (c *ChainID) UnmarshalText(data []byte) error {
	return textToBytes(c[:], data)
}

func (c Color) String() string {
	switch c {
	case ColorIOTA:
		return "IOTA"
	case ColorMint:
		return "MINT"
	}
	return hexutil.Encode(c[:])
}

func (c Color) MarshalText() ([]byte, error) {
	return bytesToText(c[:])
}

func (c *Color) UnmarshalText(data []byte) error {
	return textToBytes(c[:], data)
}

func (h Hash) String() string {
	return hexutil.Encode(h[:])
}

func (h Hash) MarshalText() ([]byte, error) {
	return bytesToText(h[:])
}

func (h *Hash) UnmarshalText(data []byte) error {
	return textToBytes(h[:], data)
}

func (r RequestID) String() string {
	return hexutil.Encode(r[:])
}

func (r RequestID) MarshalText() ([]byte, error) {
	return bytesToText(r[:])
}

func (r *RequestID) UnmarshalText(data []byte) error {
	return textToBytes(r[:], data)
}

func (h Hname) String() string {
	return fmt.Sprintf("%08x", uint32(h))
}

func bytesToText(data []byte) ([]byte, error) {
	return []byte(hexutil.Encode(data)), nil
}

func textToBytes(trg []byte, data []byte) error {
	decoded, err := hexutil.Decode(string(data))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}
	if want, got := len(trg), len(decoded); want != got {
		return fmt.Errorf("invalid format, wanted %d bytes, got %d", want, got)
	}
	copy(trg, decoded)
	return nil
}
