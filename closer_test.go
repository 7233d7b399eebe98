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
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/atomic"
)

func TestCloserFunc(t *testing.T) {
	errBoom := errors.New("boom")
	calls := atomic.NewInt32(0)

	c := CloserFunc(func() error {
		calls.Inc()
		return errBoom
	})

	assert.Equal(t, errBoom, c.Close())
	assert.Equal(t, errBoom, c.Close(), "expected a bare CloserFunc to delegate every call")
	assert.Equal(t, int32(2), calls.Load())
}

func TestOnceCloser(t *testing.T) {
	errBoom := errors.New("boom")
	calls := atomic.NewInt32(0)

	c := OnceCloser(CloserFunc(func() error {
		calls.Inc()
		return errBoom
	}))

	assert.Equal(t, errBoom, c.Close())
	assert.Equal(t, errBoom, c.Close(), "expected redundant close to replay the first error")
	assert.Equal(t, errBoom, c.Close())
	assert.Equal(t, int32(1), calls.Load(), "expected the wrapped closer to close once")
}

func TestOnceCloserNilError(t *testing.T) {
	calls := atomic.NewInt32(0)

	c := OnceCloser(CloserFunc(func() error {
		calls.Inc()
		return nil
	}))

	assert.NoError(t, c.Close())
	assert.NoError(t, c.Close())
	assert.Equal(t, int32(1), calls.Load())
}
