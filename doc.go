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

// Package closeable provides idempotent, one-time close semantics as a
// reusable delegate.
//
// Every type that owns a resource eventually re-implements the same three
// lines: a "closed" flag, a check of that flag in Close, and a guard at the
// top of every method that is invalid after closing. Guard packages that
// pattern once: it transitions exactly once from open to closed, invokes an
// optional cleanup function exactly once on the first Close, and asserts the
// open or closed state on demand.
//
// Types gain close semantics by holding a Guard and forwarding to it:
//
//	type Conn struct {
//		guard *closeable.Guard
//		// ...
//	}
//
//	func NewConn() *Conn {
//		c := &Conn{}
//		c.guard = closeable.New(c.teardown)
//		return c
//	}
//
//	func (c *Conn) Send(b []byte) error {
//		if err := c.guard.RequireOpen(); err != nil {
//			return err
//		}
//		// ...
//	}
//
//	func (c *Conn) Close()       { c.guard.Close() }
//	func (c *Conn) Closed() bool { return c.guard.Closed() }
//
// Group extends the same guarantee to an ordered collection of io.Closers,
// and OnceCloser retrofits it onto any existing io.Closer.
//
// The guard is deliberately unsynchronized: it runs inline on the calling
// goroutine with no locking. Callers that share a guard across goroutines
// must synchronize access themselves.
package closeable // import "go.uber.org/closeable"
