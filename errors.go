// Copyright (c) 2026 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package closeable

import (
	"errors"
	"fmt"
)

// StateError is returned when a state-dependent assertion is violated: when
// RequireOpen is called on a closed guard, or RequireClosed on an open one.
// It identifies the offending instance and which precondition failed.
//
// Close itself never produces a StateError; closing an already-closed guard
// is explicitly legal.
type StateError struct {
	name   string
	closed bool
}

// Error implements the error interface.
func (e *StateError) Error() string {
	if e.closed {
		return fmt.Sprintf("closeable: %q has already been closed", e.name)
	}
	return fmt.Sprintf("closeable: %q has never been closed yet", e.name)
}

// Name returns the name of the instance whose precondition was violated.
func (e *StateError) Name() string {
	if e == nil {
		return ""
	}
	return e.name
}

// Closed reports the state the instance was in when the assertion failed:
// true for a RequireOpen violation, false for a RequireClosed violation.
func (e *StateError) Closed() bool {
	if e == nil {
		return false
	}
	return e.closed
}

// IsStateError returns whether the provided error is a StateError. This
// includes wrapped errors.
//
// This is false if the error is nil.
func IsStateError(err error) bool {
	_, ok := fromError(err)
	return ok
}

// IsAlreadyClosed returns whether the provided error is a StateError from a
// RequireOpen call on a closed instance. This includes wrapped errors.
func IsAlreadyClosed(err error) bool {
	e, ok := fromError(err)
	return ok && e.closed
}

// IsNotClosed returns whether the provided error is a StateError from a
// RequireClosed call on an instance that is still open. This includes
// wrapped errors.
func IsNotClosed(err error) bool {
	e, ok := fromError(err)
	return ok && !e.closed
}

func fromError(err error) (e *StateError, ok bool) {
	if err == nil {
		return nil, false
	}
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
