// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionsComplete(t *testing.T) {
	c := NewCompletions()
	c.Register("@players", func(*CompletionContext) ([]string, error) {
		return []string{"Steve", "Alex", "steveanne"}, nil
	})

	t.Run("prefix filtering is case-insensitive", func(t *testing.T) {
		got, err := c.Complete("@players", &CompletionContext{Input: "st"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Steve", "steveanne"}, got)
	})

	t.Run("empty input matches all", func(t *testing.T) {
		got, err := c.Complete("@players", &CompletionContext{})
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("id is normalised to carry an at sign", func(t *testing.T) {
		got, err := c.Complete("players", &CompletionContext{Input: "A"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Alex"}, got)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := c.Complete("@mobs", &CompletionContext{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownCompletion)
	})
}

func TestBaseCommandResolve(t *testing.T) {
	def := &RegisteredCommand{Name: "warp"}
	sub := &RegisteredCommand{Name: "warp", Subcommand: "set"}
	cmd := &BaseCommand{
		Name: "warp",
		Subcommands: map[string]*RegisteredCommand{
			"":    def,
			"set": sub,
		},
	}

	t.Run("matches subcommand and consumes its token", func(t *testing.T) {
		got, rest, ok := cmd.Resolve([]string{"SET", "home"})
		require.True(t, ok)
		assert.Same(t, sub, got)
		assert.Equal(t, []string{"home"}, rest)
	})

	t.Run("falls back to the default subcommand", func(t *testing.T) {
		got, rest, ok := cmd.Resolve([]string{"home"})
		require.True(t, ok)
		assert.Same(t, def, got)
		assert.Equal(t, []string{"home"}, rest)
	})

	t.Run("blank first argument is not a subcommand token", func(t *testing.T) {
		// A blank token arises while tab-completing a trailing argument;
		// it must reach the default subcommand's parameters, not be
		// consumed as a (empty-named) subcommand match.
		got, rest, ok := cmd.Resolve([]string{""})
		require.True(t, ok)
		assert.Same(t, def, got)
		assert.Equal(t, []string{""}, rest)
	})

	t.Run("no default and no match", func(t *testing.T) {
		bare := &BaseCommand{
			Name:        "bare",
			Subcommands: map[string]*RegisteredCommand{"only": {}},
		}

		_, _, ok := bare.Resolve([]string{"other"})
		assert.False(t, ok)
	})
}
