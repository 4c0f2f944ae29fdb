// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package adapter

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/redearcadia/commands/internal/dispatch"
)

var (
	// ErrMissingArgument is returned when a resolver needs an argument and
	// none remain.
	ErrMissingArgument = errors.New("missing argument")
	// ErrPlayerNotFound is returned when a player argument names nobody
	// online.
	ErrPlayerNotFound = errors.New("player not found")
)

// defaultContexts builds the argument context registry pre-populated with
// the host's resolvers.
func defaultContexts(m *Manager) *dispatch.Contexts {
	c := dispatch.NewContexts()

	c.Register("string", func(ectx *dispatch.ExecutionContext) (any, error) {
		arg, ok := ectx.Pop()
		if !ok {
			return nil, ErrMissingArgument
		}

		return arg, nil
	})

	c.Register("int", func(ectx *dispatch.ExecutionContext) (any, error) {
		arg, ok := ectx.Pop()
		if !ok {
			return nil, ErrMissingArgument
		}

		return strconv.Atoi(arg)
	})

	c.Register("issuer", func(ectx *dispatch.ExecutionContext) (any, error) {
		return ectx.Issuer, nil
	})

	c.Register("player", func(ectx *dispatch.ExecutionContext) (any, error) {
		arg, ok := ectx.Pop()
		if !ok {
			return nil, ErrMissingArgument
		}

		player, ok := m.Server().Player(arg)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, arg)
		}

		return player, nil
	})

	return c
}
