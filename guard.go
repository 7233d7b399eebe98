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
	"fmt"

	"go.uber.org/zap"
)

// Guard is a helper for implementing objects that transition monotonically
// from open to closed with an at-most-once cleanup implementation.
//
// The observable state must only go forward:
//
//  0. A new Guard is open; a Guard never reopens once closed.
//  1. The cleanup function bound at construction is called at most once, as
//     part of the first Close only.
//  2. Close after the first is a no-op and never fails.
//  3. RequireOpen and RequireClosed are pure reads: they pass or return a
//     *StateError, never mutate.
//
// A Guard is not safe for concurrent use. Callers that share one across
// goroutines must synchronize externally.
type Guard struct {
	// onClose is bound once at construction and never reassigned. It captures
	// whatever context the cleanup needs; nil means no cleanup.
	onClose func()
	name    string
	logger  *zap.Logger
	closed  bool
}

var _ Closeable = (*Guard)(nil)

// New returns a guard that runs onClose exactly once, on the first Close.
// A nil onClose is legal and means the first Close only flips the state.
func New(onClose func(), opts ...Option) *Guard {
	options := newGuardOptions()
	for _, opt := range opts {
		opt(&options)
	}
	g := &Guard{
		onClose: onClose,
		name:    options.name,
		logger:  options.logger,
	}
	if g.name == "" {
		g.name = fmt.Sprintf("%p", g)
	}
	return g
}

// Closed reports whether Close has been called.
func (g *Guard) Closed() bool {
	return g.closed
}

// Close transitions the guard from open to closed, running the bound cleanup
// function synchronously before the state flips. Calls after the first do
// nothing: the cleanup is not re-run and no error is possible, so Close is
// always safe to call again.
func (g *Guard) Close() {
	if g.closed {
		g.logger.Debug("redundant close ignored", zap.String("name", g.name))
		return
	}
	if g.onClose != nil {
		g.onClose()
	}
	g.closed = true
	g.logger.Debug("closed", zap.String("name", g.name))
}

// RequireOpen returns nil while the guard is open, and a *StateError once it
// has been closed. Embedding types call it at the top of any operation that
// is invalid after closing.
func (g *Guard) RequireOpen() error {
	if g.closed {
		return &StateError{name: g.name, closed: true}
	}
	return nil
}

// RequireClosed returns nil once the guard has been closed, and a
// *StateError while it is still open. It is the complement of RequireOpen,
// for operations that are only valid after closing.
func (g *Guard) RequireClosed() error {
	if !g.closed {
		return &StateError{name: g.name, closed: false}
	}
	return nil
}

// Name returns the instance name used in state errors and logs.
func (g *Guard) Name() string {
	return g.name
}
