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

// Package closeabletest provides test doubles for the closeable package.
package closeabletest

import "go.uber.org/closeable"

// NewNop returns a new one-time no-op closeable.
func NewNop() *Nop {
	return &Nop{guard: closeable.New(nil, closeable.Name("nop"))}
}

// Nop is a no-op implementation of a closeable object. It advances state but
// performs no actions.
type Nop struct {
	guard *closeable.Guard
}

// Close advances the Nop to closed without side-effects.
func (n *Nop) Close() {
	n.guard.Close()
}

// Closed returns the Nop's state.
func (n *Nop) Closed() bool {
	return n.guard.Closed()
}

// RequireOpen forwards to the underlying guard.
func (n *Nop) RequireOpen() error {
	return n.guard.RequireOpen()
}

// RequireClosed forwards to the underlying guard.
func (n *Nop) RequireClosed() error {
	return n.guard.RequireClosed()
}
