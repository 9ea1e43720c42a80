// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package results writes the results of the current invocation and reads
// the results returned by cross-contract calls.
package results

import (
	"fmt"

	"github.com/Fantom-foundation/Wasmkit/go/kind"
	"github.com/Fantom-foundation/Wasmkit/go/sc"
)

// Set encodes value and stores it in the results of the current invocation.
func Set[T any](ctx sc.Context, codec kind.Codec[T], key string, value T) {
	ctx.Results().Set(key, codec.Encode(value))
}

// SetBool stores a boolean result as a single 0x00/0x01 byte.
func SetBool(ctx sc.Context, key string, value bool) {
	Set(ctx, kind.Bool, key, value)
}

// MustGet reads a value from a result map returned by a call. The
// invocation is aborted if the value is missing or malformed.
func MustGet[T any](ctx sc.Context, results *sc.Map, codec kind.Codec[T], key string) T {
	data, found := results.Get(key)
	if !found {
		sc.Fail(ctx, fmt.Errorf("%s %s %w", codec.Kind(), key, sc.ErrNotFound))
	}
	return decode(ctx, codec, key, data)
}

// Get reads a value from a result map returned by a call, returning the
// zero value if it is missing. Malformed values abort the invocation.
func Get[T any](ctx sc.Context, results *sc.Map, codec kind.Codec[T], key string) T {
	data, found := results.Get(key)
	if !found {
		var zero T
		return zero
	}
	return decode(ctx, codec, key, data)
}

// GetBool reads a boolean result, false if it is missing.
func GetBool(ctx sc.Context, results *sc.Map, key string) bool {
	return Get(ctx, results, kind.Bool, key)
}

// Exists reports whether a result map returned by a call contains key.
func Exists(results *sc.Map, key string) bool {
	return results.Has(key)
}

func decode[T any](ctx sc.Context, codec kind.Codec[T], key string, data []byte) T {
	value, err := codec.Decode(data)
	if err != nil {
		sc.Fail(ctx, fmt.Errorf("invalid result %s: %w", key, err))
	}
	return value
}
