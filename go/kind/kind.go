// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package kind defines the closed set of value kinds exchanged with the
// execution context and their canonical byte encodings.
package kind

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"

	"github.com/Fantom-foundation/Wasmkit/go/sc"
)

// Codec binds a value kind to its canonical byte encoding. The closed set
// of kinds supported by contracts is provided by the package-level codec
// values below; accessors are generic over Codec so that each access mode
// is implemented once for all kinds.
type Codec[T any] interface {
	// Kind is the name of the kind, used in error messages.
	Kind() string
	// Encode produces the canonical encoding of the value.
	Encode(T) []byte
	// Decode parses a canonical encoding. Malformed input results in an
	// error wrapping sc.ErrDecode.
	Decode([]byte) (T, error)
}

var (
	String    Codec[string]       = stringCodec{}
	Int64     Codec[int64]        = int64Codec{}
	Bool      Codec[bool]         = boolCodec{}
	Bytes     Codec[[]byte]       = bytesCodec{}
	AgentID   Codec[sc.AgentID]   = fixedCodec[sc.AgentID]{"agent id"}
	Address   Codec[sc.Address]   = fixedCodec[sc.Address]{"address"}
	RequestID Codec[sc.RequestID] = fixedCodec[sc.RequestID]{"request id"}
	Hname     Codec[sc.Hname]     = hnameCodec{}
	Hash      Codec[sc.Hash]      = fixedCodec[sc.Hash]{"hash"}
	Color     Codec[sc.Color]     = fixedCodec[sc.Color]{"color"}
	ChainID   Codec[sc.ChainID]   = fixedCodec[sc.ChainID]{"chain id"}
)

type stringCodec struct{}

func (stringCodec) Kind() string { return "string" }

func (stringCodec) Encode(value string) []byte {
	return []byte(value)
}

func (stringCodec) Decode(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: string is not valid UTF-8", sc.ErrDecode)
	}
	return string(data), nil
}

type int64Codec struct{}

func (int64Codec) Kind() string { return "int64" }

func (int64Codec) Encode(value int64) []byte {
	return binary.LittleEndian.AppendUint64(nil, uint64(value))
}

func (int64Codec) Decode(data []byte) (int64, error) {
	if len(data) != 8 {
		return 0, fmt.Errorf("%w: int64 needs 8 bytes, got %d", sc.ErrDecode, len(data))
	}
	return int64(binary.LittleEndian.Uint64(data)), nil
}

// boolCodec encodes booleans as a single 0x00/0x01 byte since the
// underlying stores only hold bytes.
type boolCodec struct{}

func (boolCodec) Kind() string { return "bool" }

func (boolCodec) Encode(value bool) []byte {
	if value {
		return []byte{1}
	}
	return []byte{0}
}

func (boolCodec) Decode(data []byte) (bool, error) {
	if len(data) != 1 || data[0] > 1 {
		return false, fmt.Errorf("%w: bool must be a single 0x00 or 0x01 byte, got 0x%x", sc.ErrDecode, data)
	}
	return data[0] == 1, nil
}

type bytesCodec struct{}

func (bytesCodec) Kind() string { return "bytes" }

func (bytesCodec) Encode(value []byte) []byte {
	res := make([]byte, len(value))
	copy(res, value)
	return res
}

func (bytesCodec) Decode(data []byte) ([]byte, error) {
	res := make([]byte, len(data))
	copy(res, data)
	return res, nil
}

type hnameCodec struct{}

func (hnameCodec) Kind() string { return "hname" }

func (hnameCodec) Encode(value sc.Hname) []byte {
	return binary.LittleEndian.AppendUint32(nil, uint32(value))
}

func (hnameCodec) Decode(data []byte) (sc.Hname, error) {
	if len(data) != sc.HnameLength {
		return 0, fmt.Errorf("%w: hname needs %d bytes, got %d", sc.ErrDecode, sc.HnameLength, len(data))
	}
	return sc.Hname(binary.LittleEndian.Uint32(data)), nil
}

// fixedSize is the set of identifier kinds encoded as their raw bytes.
type fixedSize interface {
	sc.AgentID | sc.Address | sc.RequestID | sc.Hash | sc.Color | sc.ChainID
}

type fixedCodec[T fixedSize] struct {
	kind string
}

func (c fixedCodec[T]) Kind() string { return c.kind }

func (c fixedCodec[T]) Encode(value T) []byte {
	return bytesOf(&value)
}

func (c fixedCodec[T]) Decode(data []byte) (T, error) {
	var res T
	trg := bytesOf(&res)
	if want, got := len(trg), len(data); want != got {
		return res, fmt.Errorf("%w: %s needs %d bytes, got %d", sc.ErrDecode, c.kind, want, got)
	}
	copy(trg, data)
	return res, nil
}

// bytesOf returns a slice aliasing the raw bytes of the given identifier.
func bytesOf[T fixedSize](value *T) []byte {
	switch v := any(value).(type) {
	case *sc.AgentID:
		return v[:]
	case *sc.Address:
		return v[:]
	case *sc.RequestID:
		return v[:]
	case *sc.Hash:
		return v[:]
	case *sc.Color:
		return v[:]
	case *sc.ChainID:
		return v[:]
	}
	panic(fmt.Sprintf("unsupported identifier type %T", *value))
}
