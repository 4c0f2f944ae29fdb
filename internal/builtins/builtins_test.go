// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package builtins

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redearcadia/commands/internal/adapter"
	"github.com/redearcadia/commands/internal/host"
)

func newTestManager(t *testing.T) (*adapter.Manager, *host.Server, *bytes.Buffer) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := slog.New(slog.DiscardHandler)
	server := host.NewServer(logger)

	t.Cleanup(func() { server.Close() }) //nolint:errcheck

	buf := &bytes.Buffer{}
	server.SetConsole(host.NewConsole(buf))

	plugin := host.NewPlugin("TestPlugin", host.NewSlogLogger(logger))

	m, err := adapter.New(ctx, plugin, server)
	require.NoError(t, err)
	require.NoError(t, Register(m))

	return m, server, buf
}

func TestRegister(t *testing.T) {
	m, _, _ := newTestManager(t)

	for _, name := range []string{"players", "who", "msg", "tell", "commands"} {
		_, ok := m.LookupRootCommand(name)
		assert.True(t, ok, "expected %q to be registered", name)
	}
}

func TestPlayersCommand(t *testing.T) {
	t.Run("no players online", func(t *testing.T) {
		_, server, buf := newTestManager(t)

		require.NoError(t, server.Commands().Dispatch(server.Console(), "players"))
		assert.Equal(t, "No players online.\n", buf.String())
	})

	t.Run("lists players sorted", func(t *testing.T) {
		_, server, buf := newTestManager(t)

		_, err := server.Join("Steve", "")
		require.NoError(t, err)
		_, err = server.Join("Alex", "")
		require.NoError(t, err)

		require.NoError(t, server.Commands().Dispatch(server.Console(), "who"))
		assert.Equal(t, "Online: Alex, Steve\n", buf.String())
	})
}

func TestMsgCommand(t *testing.T) {
	_, server, buf := newTestManager(t)

	steve, err := server.Join("Steve", "")
	require.NoError(t, err)

	require.NoError(t, server.Commands().Dispatch(server.Console(), "msg Steve hello there"))

	assert.Equal(t, []string{"[msg] hello there"}, steve.Messages())
	assert.Equal(t, "Message sent to Steve.\n", buf.String())
}

func TestMsgCommandUnknownPlayer(t *testing.T) {
	_, server, buf := newTestManager(t)

	require.NoError(t, server.Commands().Dispatch(server.Console(), "msg Nobody hi"))

	// Errors from the handler are reported to the issuer, not the dispatcher.
	assert.Contains(t, buf.String(), "An error occurred while performing the command.")
}

func TestCommandsList(t *testing.T) {
	_, server, buf := newTestManager(t)

	require.NoError(t, server.Commands().Dispatch(server.Console(), "commands list"))

	// Aliases are root commands in their own right, so they show up too.
	assert.Equal(t, "Registered: commands, msg, players, tell, who\n", buf.String())
}
