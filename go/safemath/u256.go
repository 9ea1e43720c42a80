// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package safemath

import (
	"fmt"

	"github.com/Fantom-foundation/Wasmkit/go/sc"
	"github.com/holiman/uint256"
)

// The operations below apply the same policy as their generic counterparts
// to unsigned 256-bit amounts. Arguments are never modified, each result is
// a fresh value.

func AddU256(ctx sc.Context, a, b *uint256.Int) *uint256.Int {
	res, err := CheckedAddU256(a, b)
	return must(ctx, res, err)
}

func SubU256(ctx sc.Context, a, b *uint256.Int) *uint256.Int {
	res, err := CheckedSubU256(a, b)
	return must(ctx, res, err)
}

func MulU256(ctx sc.Context, a, b *uint256.Int) *uint256.Int {
	res, err := CheckedMulU256(a, b)
	return must(ctx, res, err)
}

func DivU256(ctx sc.Context, a, b *uint256.Int) *uint256.Int {
	res, err := CheckedDivU256(a, b)
	return must(ctx, res, err)
}

func CheckedAddU256(a, b *uint256.Int) (*uint256.Int, error) {
	res, overflow := new(uint256.Int).AddOverflow(a, b)
	if overflow {
		return nil, fmt.Errorf("%w: %v + %v", sc.ErrOverflow, a, b)
	}
	return res, nil
}

func CheckedSubU256(a, b *uint256.Int) (*uint256.Int, error) {
	res, underflow := new(uint256.Int).SubOverflow(a, b)
	if underflow {
		return nil, fmt.Errorf("%w: %v - %v", sc.ErrUnderflow, a, b)
	}
	return res, nil
}

func CheckedMulU256(a, b *uint256.Int) (*uint256.Int, error) {
	res, overflow := new(uint256.Int).MulOverflow(a, b)
	if overflow {
		return nil, fmt.Errorf("%w: %v * %v", sc.ErrOverflow, a, b)
	}
	return res, nil
}

func CheckedDivU256(a, b *uint256.Int) (*uint256.Int, error) {
	if b.IsZero() {
		return nil, fmt.Errorf("%w: %v / 0", sc.ErrDivideByZero, a)
	}
	return new(uint256.Int).Div(a, b), nil
}
