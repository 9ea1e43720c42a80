// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package safemath implements integer arithmetic with overflow, underflow,
// and division-by-zero checks. The context-taking operations abort the
// invocation on any of these conditions, continuing with a wrapped result
// is never an option.
package safemath

import (
	"fmt"

	"github.com/Fantom-foundation/Wasmkit/go/sc"
	"golang.org/x/exp/constraints"
)

// Add returns a + b, aborting the invocation with sc.ErrOverflow if the
// sum is not representable.
func Add[T constraints.Integer](ctx sc.Context, a, b T) T {
	res, err := CheckedAdd(a, b)
	return must(ctx, res, err)
}

// Sub returns a - b, aborting the invocation with sc.ErrUnderflow if the
// difference is not representable.
func Sub[T constraints.Integer](ctx sc.Context, a, b T) T {
	res, err := CheckedSub(a, b)
	return must(ctx, res, err)
}

// Mul returns a * b, aborting the invocation with sc.ErrOverflow if the
// product is not representable.
func Mul[T constraints.Integer](ctx sc.Context, a, b T) T {
	res, err := CheckedMul(a, b)
	return must(ctx, res, err)
}

// Div returns a / b truncated toward zero, aborting the invocation with
// sc.ErrDivideByZero if b is zero and with sc.ErrOverflow for the most
// negative value divided by -1.
func Div[T constraints.Integer](ctx sc.Context, a, b T) T {
	res, err := CheckedDiv(a, b)
	return must(ctx, res, err)
}

// CheckedAdd returns a + b or an error wrapping sc.ErrOverflow.
func CheckedAdd[T constraints.Integer](a, b T) (T, error) {
	sum := a + b
	if (isSigned[T]() && ((b > 0 && sum < a) || (b < 0 && sum > a))) ||
		(!isSigned[T]() && sum < a) {
		return 0, fmt.Errorf("%w: %v + %v", sc.ErrOverflow, a, b)
	}
	return sum, nil
}

// CheckedSub returns a - b or an error wrapping sc.ErrUnderflow.
func CheckedSub[T constraints.Integer](a, b T) (T, error) {
	diff := a - b
	if (isSigned[T]() && ((b > 0 && diff > a) || (b < 0 && diff < a))) ||
		(!isSigned[T]() && a < b) {
		return 0, fmt.Errorf("%w: %v - %v", sc.ErrUnderflow, a, b)
	}
	return diff, nil
}

// CheckedMul returns a * b or an error wrapping sc.ErrOverflow.
func CheckedMul[T constraints.Integer](a, b T) (T, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	product := a * b
	// The sign test catches MinInt * -1, which survives the division test.
	if product/b != a || (isSigned[T]() && ((a < 0) == (b < 0)) != (product > 0)) {
		return 0, fmt.Errorf("%w: %v * %v", sc.ErrOverflow, a, b)
	}
	return product, nil
}

// CheckedDiv returns a / b or an error wrapping sc.ErrDivideByZero or
// sc.ErrOverflow.
func CheckedDiv[T constraints.Integer](a, b T) (T, error) {
	if b == 0 {
		return 0, fmt.Errorf("%w: %v / 0", sc.ErrDivideByZero, a)
	}
	// Only MinInt is its own negation besides zero.
	if isSigned[T]() && b == ^T(0) && a != 0 && -a == a {
		return 0, fmt.Errorf("%w: %v / %v", sc.ErrOverflow, a, b)
	}
	return a / b, nil
}

func isSigned[T constraints.Integer]() bool {
	var x T
	x--
	return x < 0
}

func must[T any](ctx sc.Context, value T, err error) T {
	if err != nil {
		sc.Fail(ctx, err)
	}
	return value
}
