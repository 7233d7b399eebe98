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

import "go.uber.org/zap"

type guardOptions struct {
	name   string
	logger *zap.Logger
}

func newGuardOptions() guardOptions {
	return guardOptions{
		logger: zap.NewNop(),
	}
}

// Option customizes the behavior of a Guard (and of the types built on one,
// Group and OnceCloser).
type Option func(*guardOptions)

// Name sets the instance name reported by state errors and log entries.
//
// Defaults to the guard's address, which identifies the instance but not its
// role. Embedding types should name their guard after themselves.
func Name(name string) Option {
	return func(options *guardOptions) {
		options.name = name
	}
}

// Logger sets a logger to record state transitions at debug level.
//
// The default is to not write any logs.
func Logger(logger *zap.Logger) Option {
	return func(options *guardOptions) {
		options.logger = logger
	}
}
