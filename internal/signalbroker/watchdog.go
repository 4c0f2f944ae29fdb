// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/redearcadia/commands/internal/ctxlog"
)

// Watch consumes the broker channel. The first signal of each type is only
// logged: the console's line editor owns the terminal and handles its own
// interrupt. A repeated signal of the same type cancels the context, which
// shuts down the host server and the event bus.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	seen := make(map[os.Signal]struct{})

	for sig := range sigCh {
		if _, repeated := seen[sig]; repeated {
			ctxlog.Warn(ctx, "repeated termination signal, shutting down", "signal", sig.String())
			close(sigCh)
			cancel()

			return
		}

		ctxlog.Info(ctx, "termination signal received, send again to shut down", "signal", sig.String())

		seen[sig] = struct{}{}
	}
}
