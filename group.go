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
	"io"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Group tears down an ordered collection of io.Closers together, exactly
// once. Members close in reverse registration order, so resources built on
// top of earlier ones come down first.
//
// A Group is itself an embedding client of Guard: its teardown runs through
// a guard bound at construction, so redundant Close calls are no-ops that
// replay the first call's result.
//
// Like Guard, a Group is not safe for concurrent use.
type Group struct {
	guard   *Guard
	closers []io.Closer
	logger  *zap.Logger
	// err holds the combined result of the first Close; later calls return
	// it without re-closing any member.
	err error
}

// NewGroup returns an empty group.
func NewGroup(opts ...Option) *Group {
	options := newGuardOptions()
	for _, opt := range opts {
		opt(&options)
	}
	g := &Group{logger: options.logger}
	g.guard = New(g.closeAll, opts...)
	return g
}

// Add registers a closer. It returns a *StateError if the group has already
// been closed; the closer is not registered in that case.
func (g *Group) Add(c io.Closer) error {
	if err := g.guard.RequireOpen(); err != nil {
		return err
	}
	g.closers = append(g.closers, c)
	return nil
}

// AddFunc registers a plain function as a closer.
func (g *Group) AddFunc(f func() error) error {
	return g.Add(CloserFunc(f))
}

// Close closes every member in reverse registration order, combining member
// failures into the returned error. One member failing does not stop the
// others from closing. Calls after the first return the first call's
// combined error without closing anything again.
func (g *Group) Close() error {
	g.guard.Close()
	return g.err
}

func (g *Group) closeAll() {
	var errs error
	for i := len(g.closers) - 1; i >= 0; i-- {
		if err := g.closers[i].Close(); err != nil {
			g.logger.Error("failed to close group member",
				zap.String("group", g.guard.Name()),
				zap.Int("member", i),
				zap.Error(err))
			errs = multierr.Append(errs, err)
		}
	}
	g.err = errs
}

// Closed reports whether the group has been closed.
func (g *Group) Closed() bool {
	return g.guard.Closed()
}

// Name returns the group's instance name.
func (g *Group) Name() string {
	return g.guard.Name()
}

// Len returns the number of registered closers.
func (g *Group) Len() int {
	return len(g.closers)
}
