// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package adapter

import (
	"strconv"
	"strings"

	"github.com/redearcadia/commands/internal/dispatch"
)

// defaultCompletions builds the completion registry pre-populated with the
// host's resolvers.
func defaultCompletions(m *Manager) *dispatch.Completions {
	c := dispatch.NewCompletions()

	c.Register("@players", func(_ *dispatch.CompletionContext) ([]string, error) {
		return m.Server().PlayerNames(), nil
	})

	c.Register("@nothing", func(_ *dispatch.CompletionContext) ([]string, error) {
		return nil, nil
	})

	// @range completes numbers; the config is "min-max" or just "max".
	c.Register("@range", func(cctx *dispatch.CompletionContext) ([]string, error) {
		low, high := 1, 10

		if cctx.Config != "" {
			parts := strings.SplitN(cctx.Config, "-", 2)

			switch len(parts) {
			case 1:
				if n, err := strconv.Atoi(parts[0]); err == nil {
					high = n
				}
			case 2:
				if n, err := strconv.Atoi(parts[0]); err == nil {
					low = n
				}

				if n, err := strconv.Atoi(parts[1]); err == nil {
					high = n
				}
			}
		}

		out := make([]string, 0, high-low+1)
		for i := low; i <= high; i++ {
			out = append(out, strconv.Itoa(i))
		}

		return out, nil
	})

	return c
}
