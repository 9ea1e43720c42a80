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

// All of the conditions below are fatal to the invocation they occur in.
// Concrete failures wrap one of them, so errors.Is can be used to classify
// the error reported by a host.
const (
	ErrNotFound          = ConstError("not found")
	ErrDecode            = ConstError("malformed value")
	ErrOverflow          = ConstError("arithmetic overflow")
	ErrUnderflow         = ConstError("arithmetic underflow")
	ErrDivideByZero      = ConstError("division by zero")
	ErrUnauthorized      = ConstError("unauthorized")
	ErrUnsupportedSource = ConstError("unsupported source")
	ErrTransport         = ConstError("cross-contract call failed")
	ErrReadOnly          = ConstError("read-only map")
)

// ConstError is a error type that can be used to define immutable
// error constants.
type ConstError string

func (e ConstError) Error() string {
	return string(e)
}

// Fail aborts the current invocation with the given error. The error is
// first reported to the context; should the context's Abort return, Fail
// panics with the error so execution never continues past this point.
func Fail(ctx Context, err error) {
	ctx.Abort(err)
	panic(err)
}
