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

	"golang.org/x/crypto/blake2b"
)

// HnameNil is reserved and never produced by Hn.
const HnameNil = Hname(0xffffffff)

// Hn computes the hname of the given name: the first four bytes of the
// blake2b-256 digest of the name, interpreted as a little-endian integer.
// The values 0 and HnameNil are reserved; a name hashing to either of them
// is mapped to the next four digest bytes that are not reserved.
//
// Hn is a pure function. Hnames of well-known names are computed once at
// package initialization and kept in read-only package variables.
func Hn(name string) Hname {
	digest := blake2b.Sum256([]byte(name))
	for i := 0; i+HnameLength <= len(digest); i += HnameLength {
		res := Hname(binary.LittleEndian.Uint32(digest[i : i+HnameLength]))
		if res != 0 && res != HnameNil {
			return res
		}
	}
	// Unreachable for any practical input, all 8 words would have to be
	// reserved values.
	return 1
}
