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

import "io"

// CloserFunc adapts a function to the io.Closer interface.
type CloserFunc func() error

// Close calls the function.
func (f CloserFunc) Close() error {
	return f()
}

// OnceCloser wraps an io.Closer so that only the first Close call is
// delegated. Every call, first or redundant, returns the error from that
// first delegated Close.
func OnceCloser(c io.Closer, opts ...Option) io.Closer {
	o := &onceCloser{c: c}
	o.guard = New(func() {
		o.err = o.c.Close()
	}, opts...)
	return o
}

type onceCloser struct {
	guard *Guard
	c     io.Closer
	// err latches the first Close's result so redundant calls replay it.
	err error
}

func (o *onceCloser) Close() error {
	o.guard.Close()
	return o.err
}
