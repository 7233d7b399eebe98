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

// Package closeablefx closes collected closeable objects when an fx
// application stops. Providers contribute to the "closeablefx" value group:
//
//	fx.Annotated{
//		Group:  "closeablefx",
//		Target: newCache, // func(...) closeable.Closeable
//	}
package closeablefx

import (
	"context"

	"go.uber.org/closeable"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _name = "closeablefx"

// Module closes all group-provided closeables on application stop.
var Module = fx.Options(
	fx.Invoke(Register),
)

// Params defines the dependencies of this module.
type Params struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Logger     *zap.Logger           `optional:"true"`
	Closeables []closeable.Closeable `group:"closeablefx"`
}

// Register appends a lifecycle hook that closes every collected closeable in
// reverse provision order. Close is idempotent and never fails, so the hook
// always returns nil, and closeables that were already closed by their
// owners are skipped harmlessly.
func Register(p Params) {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			for i := len(p.Closeables) - 1; i >= 0; i-- {
				c := p.Closeables[i]
				c.Close()
				logger.Debug("closed closeable on stop",
					zap.String("module", _name),
					zap.Int("index", i))
			}
			return nil
		},
	})
}
