// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package state provides typed access to the persisted state of a contract.
package state

import (
	"github.com/Fantom-foundation/Wasmkit/go/getter"
	"github.com/Fantom-foundation/Wasmkit/go/kind"
	"github.com/Fantom-foundation/Wasmkit/go/sc"
)

// MustGet reads a state variable, aborting the invocation if it is unset.
func MustGet[T any](ctx sc.Context, codec kind.Codec[T], key string) T {
	return getter.MustGet(ctx, getter.State, codec, key)
}

// Get reads a state variable, returning the zero value if it is unset.
func Get[T any](ctx sc.Context, codec kind.Codec[T], key string) T {
	return getter.Get(ctx, getter.State, codec, key)
}

// Exists reports whether a state variable is set.
func Exists(ctx sc.Context, key string) bool {
	return getter.Exists(ctx, getter.State, key)
}

// Set stores a state variable. It takes effect once the invocation
// completes; in views the state is read-only and Set aborts.
func Set[T any](ctx sc.Context, codec kind.Codec[T], key string, value T) {
	ctx.State().Set(key, codec.Encode(value))
}

// Delete removes a state variable.
func Delete(ctx sc.Context, key string) {
	ctx.State().Delete(key)
}
