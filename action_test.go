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
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/atomic"
)

// wrappedGuard pairs a guard with the counter its cleanup increments, so
// actions can assert on invocation counts.
type wrappedGuard struct {
	*Guard
	cleanups *atomic.Int32
}

// GuardAction defines actions that can be applied to a Guard.
type GuardAction interface {
	// Apply runs a function on the wrapped guard and asserts the result.
	Apply(*testing.T, wrappedGuard)
}

// CloseAction is an action for testing Guard.Close.
type CloseAction struct {
	ExpectedClosed   bool
	ExpectedCleanups int32
}

// Apply runs "Close" on the guard and validates the resulting state and
// cumulative cleanup count.
func (a CloseAction) Apply(t *testing.T, g wrappedGuard) {
	g.Close()
	assert.Equal(t, a.ExpectedClosed, g.Closed(), "unexpected state after close")
	assert.Equal(t, a.ExpectedCleanups, g.cleanups.Load(), "unexpected cleanup invocation count")
}

// RequireOpenAction is an action for testing Guard.RequireOpen.
type RequireOpenAction struct {
	ExpectErr bool
}

// Apply runs "RequireOpen" on the guard and validates the error.
func (a RequireOpenAction) Apply(t *testing.T, g wrappedGuard) {
	err := g.RequireOpen()
	if a.ExpectErr {
		assert.True(t, IsAlreadyClosed(err), "expected an already-closed state error, got %v", err)
	} else {
		assert.NoError(t, err)
	}
}

// RequireClosedAction is an action for testing Guard.RequireClosed.
type RequireClosedAction struct {
	ExpectErr bool
}

// Apply runs "RequireClosed" on the guard and validates the error.
func (a RequireClosedAction) Apply(t *testing.T, g wrappedGuard) {
	err := g.RequireClosed()
	if a.ExpectErr {
		assert.True(t, IsNotClosed(err), "expected a not-closed state error, got %v", err)
	} else {
		assert.NoError(t, err)
	}
}

// GetClosedAction is an action for checking the guard's state.
type GetClosedAction struct {
	ExpectedClosed bool
}

// Apply Checks the state of the guard.
func (a GetClosedAction) Apply(t *testing.T, g wrappedGuard) {
	assert.Equal(t, a.ExpectedClosed, g.Closed(), "unexpected guard state")
}

// Actions is a list of actions applied in order.
type Actions []GuardAction

// Apply runs all of the actions in order.
func (a Actions) Apply(t *testing.T, g wrappedGuard) {
	for _, action := range a {
		action.Apply(t, g)
	}
}

// ApplyGuardActions runs all the actions on a fresh guard whose cleanup
// increments the wrapped counter.
func ApplyGuardActions(t *testing.T, actions []GuardAction) {
	cleanups := atomic.NewInt32(0)
	guard := New(func() { cleanups.Inc() }, Name("test"))
	wrapped := wrappedGuard{Guard: guard, cleanups: cleanups}
	for _, action := range actions {
		action.Apply(t, wrapped)
	}
}
