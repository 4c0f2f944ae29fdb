// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/redearcadia/commands/internal/ctxlog"
)

func watchAsync(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) *sync.WaitGroup {
	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()
		Watch(ctx, sigCh, cancel)
	}()

	return &wg
}

func TestWatchFirstSignalNoCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	sigCh := make(chan os.Signal, 1)
	wg := watchAsync(ctx, sigCh, cancel)

	sigCh <- os.Interrupt

	time.Sleep(50 * time.Millisecond)
	assert.NoError(t, ctx.Err(), "first signal must not cancel the context")

	close(sigCh)
	wg.Wait()
}

func TestWatchSecondSignalCancels(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	sigCh := make(chan os.Signal, 2)
	wg := watchAsync(ctx, sigCh, cancel)

	sigCh <- os.Interrupt
	sigCh <- os.Interrupt

	time.Sleep(50 * time.Millisecond)
	assert.ErrorIs(t, ctx.Err(), context.Canceled, "repeated signal must cancel the context")

	_, open := <-sigCh
	assert.False(t, open, "watch closes the channel on shutdown")

	wg.Wait()
}

func TestWatchDifferentSignalsNoCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	sigCh := make(chan os.Signal, 2)
	wg := watchAsync(ctx, sigCh, cancel)

	sigCh <- os.Interrupt
	sigCh <- os.Kill

	time.Sleep(50 * time.Millisecond)
	assert.NoError(t, ctx.Err(), "distinct signal types must not cancel the context")

	close(sigCh)
	wg.Wait()
}
