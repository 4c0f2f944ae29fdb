// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker delivers OS termination signals to the console
// runtime. By default it listens for os.Interrupt, syscall.SIGINT,
// syscall.SIGTERM, and syscall.SIGQUIT.
//
// The watchdog in this package treats the first signal of a type as a
// wind-down request and cancels the context on a repeated signal, which
// tears down the host server and its event bus.
package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/redearcadia/commands/internal/ctxlog"
)

var termSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
	syscall.SIGQUIT,
	os.Interrupt,
}

// New creates a buffered channel subscribed to the signals that should
// terminate the console. With no explicit signals the default termination
// set is used.
func New(ctx context.Context, sigs ...os.Signal) chan os.Signal {
	ch := make(chan os.Signal, 1)

	if len(sigs) == 0 {
		sigs = termSignals
	}

	ctxlog.Debug(ctx, "subscribing to termination signals", "signals", sigs)
	signal.Notify(ch, sigs...)

	return ch
}
