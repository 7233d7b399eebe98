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

// Command confwatch watches a config file for changes until interrupted.
// The watcher type embeds a closeable.Guard: its reading method refuses to
// run after close, and the underlying fsnotify watcher is torn down exactly
// once even though both the signal handler and the deferred cleanup close
// it. The guard itself is unsynchronized, so the watcher wraps every guard
// access in a mutex to make that cross-goroutine close safe.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/closeable"
	"go.uber.org/zap"
)

var (
	flagSet  = flag.NewFlagSet("confwatch", flag.ExitOnError)
	flagPath = flagSet.String("path", "config.yaml", "file to watch")
)

// Watcher reports change events for a single file. It delegates its close
// semantics to a guard so that Close is idempotent and Next fails cleanly
// once closed. The mutex provides the external synchronization the guard
// requires of callers that share it across goroutines.
type Watcher struct {
	// mu guards all guard access; the event channels are not held under it.
	mu     sync.Mutex
	guard  *closeable.Guard
	fsw    *fsnotify.Watcher
	logger *zap.Logger
}

// NewWatcher watches the file at path.
func NewWatcher(path string, logger *zap.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(path); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	w := &Watcher{fsw: fsw, logger: logger}
	w.guard = closeable.New(w.teardown,
		closeable.Name("confwatch:"+path),
		closeable.Logger(logger),
	)
	return w, nil
}

// Next returns the next change event. It returns a state error once the
// watcher is closed.
func (w *Watcher) Next() (fsnotify.Event, error) {
	if err := w.requireOpen(); err != nil {
		return fsnotify.Event{}, err
	}
	select {
	case event, ok := <-w.fsw.Events:
		if !ok {
			// The channel only closes during teardown, so once Close
			// releases the mutex this is a definite state error.
			return fsnotify.Event{}, w.requireOpen()
		}
		return event, nil
	case err := <-w.fsw.Errors:
		return fsnotify.Event{}, err
	}
}

// Close stops watching. Redundant and concurrent calls are no-ops.
func (w *Watcher) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.guard.Close()
}

// Closed reports whether the watcher has been closed.
func (w *Watcher) Closed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.guard.Closed()
}

func (w *Watcher) requireOpen() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.guard.RequireOpen()
}

func (w *Watcher) teardown() {
	if err := w.fsw.Close(); err != nil {
		w.logger.Warn("failed to close fsnotify watcher", zap.Error(err))
	}
}

func main() {
	if err := do(); err != nil {
		log.Fatal(err)
	}
}

func do() error {
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		return err
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer logger.Sync()

	watcher, err := NewWatcher(*flagPath, logger)
	if err != nil {
		return err
	}
	defer watcher.Close()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signals
		watcher.Close()
	}()

	for {
		event, err := watcher.Next()
		if closeable.IsAlreadyClosed(err) {
			logger.Info("watcher closed, exiting")
			return nil
		}
		if err != nil {
			return err
		}
		logger.Info("config changed",
			zap.String("file", event.Name),
			zap.String("op", event.Op.String()))
	}
}
