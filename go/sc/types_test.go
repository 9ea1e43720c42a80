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
	"encoding/json"
	"strings"
	"testing"
)

func TestAgentID_NewAgentIDCombinesAddressAndHname(t *testing.T) {
	address := Address{1, 2, 3}
	id := NewAgentID(address, Hname(0x04030201))

	if want, got := address, id.Address(); want != got {
		t.Errorf("unexpected address, wanted %v, got %v", want, got)
	}
	if want, got := Hname(0x04030201), id.Hname(); want != got {
		t.Errorf("unexpected hname, wanted %v, got %v", want, got)
	}
	if want, got := []byte{1, 2, 3, 4}, id[AddressLength:]; string(want) != string(got) {
		t.Errorf("hname must be stored little-endian, wanted %x, got %x", want, got)
	}
	if id.IsAddress() {
		t.Errorf("agent id of a contract must not be a plain address")
	}
	if !NewAgentID(address, 0).IsAddress() {
		t.Errorf("agent id with zero hname must be a plain address")
	}
}

func TestChainID_AddressIsChainIDBytes(t *testing.T) {
	chain := ChainID{7, 8, 9}
	if want, got := (Address{7, 8, 9}), chain.Address(); want != got {
		t.Errorf("unexpected chain address, wanted %v, got %v", want, got)
	}
}

func TestColor_String(t *testing.T) {
	tests := map[string]struct {
		color Color
		want  string
	}{
		"iota":    {ColorIOTA, "IOTA"},
		"mint":    {ColorMint, "MINT"},
		"colored": {Color{0xab}, "0xab" + strings.Repeat("00", ColorLength-1)},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if got := test.color.String(); test.want != got {
				t.Errorf("unexpected string, wanted %v, got %v", test.want, got)
			}
		})
	}
}

func TestHname_String(t *testing.T) {
	tests := map[Hname]string{
		0:          "00000000",
		1:          "00000001",
		0x1f44d644: "1f44d644",
		HnameNil:   "ffffffff",
	}
	for hname, want := range tests {
		if got := hname.String(); want != got {
			t.Errorf("unexpected string, wanted %v, got %v", want, got)
		}
	}
}

func TestAgentID_JSON_Encoding(t *testing.T) {
	id := NewAgentID(Address{0xAB}, 1)

	encoded, err := json.Marshal(id)
	if err != nil {
		t.Fatalf("failed to encode into JSON: %v", err)
	}
	want := "\"0xab" + strings.Repeat("00", AddressLength-1) + "01000000\""
	if got := string(encoded); want != got {
		t.Errorf("unexpected JSON encoding, wanted %v, got %v", want, got)
	}

	var restored AgentID
	if err := json.Unmarshal(encoded, &restored); err != nil {
		t.Fatalf("failed to restore agent id: %v", err)
	}
	if id != restored {
		t.Errorf("unexpected restored value, wanted %v, got %v", id, restored)
	}
}

func TestHash_JSON_InvalidValueDecodingFails(t *testing.T) {
	tests := map[string]string{
		"empty":                 "\"\"",
		"empty with hex prefix": "\"0x\"",
		"no hex prefix":         "\"" + strings.Repeat("00", HashLength) + "\"",
		"too short":             "\"0x" + strings.Repeat("00", HashLength-1) + "\"",
		"too long":              "\"0x" + strings.Repeat("00", HashLength+1) + "\"",
		"invalid hex":           "\"0x0g" + strings.Repeat("00", HashLength-1) + "\"",
		"not a JSON string":     "0x" + strings.Repeat("00", HashLength),
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			var hash Hash
			if json.Unmarshal([]byte(data), &hash) == nil {
				t.Errorf("expected decoding to fail, but instead it produced %v", hash)
			}
		})
	}
}

func TestFixedSizeTypes_TextRoundTrip(t *testing.T) {
	address := Address{1, 2}
	chain := ChainID{3, 4}
	color := Color{5, 6}
	request := RequestID{7, 8}

	var restoredAddress Address
	var restoredChain ChainID
	var restoredColor Color
	var restoredRequest RequestID

	tests := map[string]struct {
		value    interface{ MarshalText() ([]byte, error) }
		restored interface{ UnmarshalText([]byte) error }
		check    func() bool
	}{
		"address":    {address, &restoredAddress, func() bool { return address == restoredAddress }},
		"chain id":   {chain, &restoredChain, func() bool { return chain == restoredChain }},
		"color":      {color, &restoredColor, func() bool { return color == restoredColor }},
		"request id": {request, &restoredRequest, func() bool { return request == restoredRequest }},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			text, err := test.value.MarshalText()
			if err != nil {
				t.Fatalf("failed to encode: %v", err)
			}
			if err := test.restored.UnmarshalText(text); err != nil {
				t.Fatalf("failed to decode %s: %v", text, err)
			}
			if !test.check() {
				t.Errorf("unexpected restored value for %s", text)
			}
		})
	}
}
