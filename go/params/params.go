// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package params reads the parameters of the current invocation and builds
// parameter maps for outgoing calls.
package params

import (
	"github.com/Fantom-foundation/Wasmkit/go/getter"
	"github.com/Fantom-foundation/Wasmkit/go/kind"
	"github.com/Fantom-foundation/Wasmkit/go/sc"
)

// New creates an empty parameter map for an outgoing call.
func New() *sc.Map {
	return sc.NewMap()
}

// Add encodes value and stores it under key, replacing any previous value.
func Add[T any](params *sc.Map, codec kind.Codec[T], key string, value T) {
	params.Set(key, codec.Encode(value))
}

// MustGet reads a parameter of the current invocation, aborting the
// invocation if it was not provided.
func MustGet[T any](ctx sc.Context, codec kind.Codec[T], key string) T {
	return getter.MustGet(ctx, getter.Params, codec, key)
}

// Get reads a parameter of the current invocation, returning the zero
// value if it was not provided.
func Get[T any](ctx sc.Context, codec kind.Codec[T], key string) T {
	return getter.Get(ctx, getter.Params, codec, key)
}

// Exists reports whether a parameter was provided.
func Exists(ctx sc.Context, key string) bool {
	return getter.Exists(ctx, getter.Params, key)
}
