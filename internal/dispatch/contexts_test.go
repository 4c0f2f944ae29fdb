// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dispatch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextsResolve(t *testing.T) {
	t.Run("unknown context", func(t *testing.T) {
		c := NewContexts()

		_, err := c.Resolve("player", &ExecutionContext{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownContext)
		assert.Contains(t, err.Error(), "player")
	})

	t.Run("registered resolver is invoked", func(t *testing.T) {
		c := NewContexts()
		c.Register("upper", func(ectx *ExecutionContext) (any, error) {
			arg, ok := ectx.Pop()
			if !ok {
				return nil, errors.New("no argument")
			}

			return arg, nil
		})

		v, err := c.Resolve("upper", &ExecutionContext{Args: []string{"hello"}})
		require.NoError(t, err)
		assert.Equal(t, "hello", v)
	})

	t.Run("resolver failure is wrapped", func(t *testing.T) {
		c := NewContexts()
		c.Register("boom", func(*ExecutionContext) (any, error) {
			return nil, errors.New("kaboom")
		})

		_, err := c.Resolve("boom", &ExecutionContext{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrContextResolution)
	})

	t.Run("registration replaces", func(t *testing.T) {
		c := NewContexts()
		c.Register("x", func(*ExecutionContext) (any, error) { return 1, nil })
		c.Register("x", func(*ExecutionContext) (any, error) { return 2, nil })

		v, err := c.Resolve("x", &ExecutionContext{})
		require.NoError(t, err)
		assert.Equal(t, 2, v)
	})
}

func TestExecutionContextPop(t *testing.T) {
	ectx := &ExecutionContext{Args: []string{"a", "b"}}

	arg, ok := ectx.Pop()
	assert.True(t, ok)
	assert.Equal(t, "a", arg)

	arg, ok = ectx.Pop()
	assert.True(t, ok)
	assert.Equal(t, "b", arg)

	_, ok = ectx.Pop()
	assert.False(t, ok)
}
