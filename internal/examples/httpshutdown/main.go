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

// Command httpshutdown serves HTTP until interrupted and tears everything
// down through a closeable.Group: the server shutdown, the listener, and
// the log flush close together, exactly once, no matter how many signals
// arrive.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/closeable"
	"go.uber.org/zap"
)

var (
	flagSet     = flag.NewFlagSet("httpshutdown", flag.ExitOnError)
	flagAddr    = flagSet.String("addr", "127.0.0.1:8080", "address to listen on")
	flagTimeout = flagSet.Duration("timeout", 5*time.Second, "graceful shutdown timeout")
)

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

	group := closeable.NewGroup(
		closeable.Name("httpshutdown"),
		closeable.Logger(logger),
	)
	// Sync registers first so it runs last, after everything that logs.
	if err := group.AddFunc(func() error { return logger.Sync() }); err != nil {
		return err
	}

	router := mux.NewRouter()
	router.HandleFunc("/hello", func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprintln(w, "hello!")
	}).Methods(http.MethodGet)

	listener, err := net.Listen("tcp", *flagAddr)
	if err != nil {
		return err
	}

	server := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
	}
	if err := group.AddFunc(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), *flagTimeout)
		defer cancel()
		return server.Shutdown(ctx)
	}); err != nil {
		return err
	}

	go func() {
		// Shutdown closes the listener, so Serve returning ErrServerClosed
		// is the normal exit path.
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", zap.Error(err))
		}
	}()
	logger.Info("serving", zap.String("addr", listener.Addr().String()))

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	<-signals
	logger.Info("shutting down")
	err = group.Close()

	// A second signal during shutdown would land here; closing again is a
	// safe no-op that replays the first result.
	select {
	case <-signals:
		err = group.Close()
	default:
	}
	return err
}
