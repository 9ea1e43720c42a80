// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package getter provides typed access to the untyped maps of an execution
// context. Values can be read from the contract's state or from the
// invocation's parameters, either strictly (absent values abort the
// invocation) or leniently (absent values read as the kind's zero value).
package getter

import (
	"fmt"

	"github.com/Fantom-foundation/Wasmkit/go/kind"
	"github.com/Fantom-foundation/Wasmkit/go/sc"
)

// Source selects the map of the execution context an accessor operates on.
type Source int

const (
	State Source = iota
	Params
)

func (s Source) String() string {
	switch s {
	case State:
		return "state"
	case Params:
		return "params"
	}
	return fmt.Sprintf("Source(%d)", int(s))
}

// MustGet reads the value stored under key in the given source. The
// invocation is aborted with sc.ErrNotFound if the key is absent, and with
// sc.ErrDecode if the stored bytes are not a valid encoding of the kind.
func MustGet[T any](ctx sc.Context, source Source, codec kind.Codec[T], key string) T {
	data, found := sourceMap(ctx, source).Get(key)
	if !found {
		sc.Fail(ctx, fmt.Errorf("%s %s %w", codec.Kind(), key, sc.ErrNotFound))
	}
	return decode(ctx, codec, key, data)
}

// Get reads the value stored under key in the given source. An absent key
// yields the zero value of the kind. Malformed values abort the invocation
// with sc.ErrDecode.
func Get[T any](ctx sc.Context, source Source, codec kind.Codec[T], key string) T {
	data, found := sourceMap(ctx, source).Get(key)
	if !found {
		var zero T
		return zero
	}
	return decode(ctx, codec, key, data)
}

// Exists reports whether key is present in the given source. The value is
// not decoded.
func Exists(ctx sc.Context, source Source, key string) bool {
	return sourceMap(ctx, source).Has(key)
}

func decode[T any](ctx sc.Context, codec kind.Codec[T], key string, data []byte) T {
	value, err := codec.Decode(data)
	if err != nil {
		sc.Fail(ctx, fmt.Errorf("invalid %s %s: %w", codec.Kind(), key, err))
	}
	return value
}

func sourceMap(ctx sc.Context, source Source) *sc.Map {
	switch source {
	case State:
		return ctx.State()
	case Params:
		return ctx.Params()
	}
	sc.Fail(ctx, fmt.Errorf("%w: %v", sc.ErrUnsupportedSource, source))
	return nil
}
