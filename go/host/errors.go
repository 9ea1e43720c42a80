// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package host

import (
	"errors"
	"fmt"

	"github.com/Fantom-foundation/Wasmkit/go/sc"
)

const (
	ErrUnknownContract   = sc.ConstError("unknown contract")
	ErrUnknownEntryPoint = sc.ConstError("unknown entry point")
	ErrCallDepthExceeded = sc.ConstError("call depth exceeded")
	ErrInvalidTransfer   = sc.ConstError("invalid transfer")
)

// AbortError is returned for invocations terminated by a contract. All
// effects of such an invocation have been rolled back.
type AbortError struct {
	Contract string // < name of the contract aborting
	Function string // < name of the entry point aborting
	Err      error
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("%s.%s aborted: %v", e.Contract, e.Function, e.Err)
}

func (e *AbortError) Unwrap() error {
	return e.Err
}

// toAbortError converts a value recovered from a contract panic into the
// error reported to the invoker. Aborts signaled through the context keep
// the reporting entry point, other panics are attributed to the given one.
func toAbortError(recovered any, contract, function string) *AbortError {
	var err error
	switch r := recovered.(type) {
	case *AbortError:
		return r
	case error:
		var abort *AbortError
		if errors.As(r, &abort) {
			return abort
		}
		err = r
	default:
		err = fmt.Errorf("contract panicked: %v", r)
	}
	return &AbortError{Contract: contract, Function: function, Err: err}
}
