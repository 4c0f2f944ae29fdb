// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package host

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoCommand struct {
	mu    sync.Mutex
	calls [][]string
}

func (c *echoCommand) Process(source CommandSource, args []string) error {
	c.mu.Lock()
	c.calls = append(c.calls, args)
	c.mu.Unlock()

	source.SendMessage("echo")

	return nil
}

func (c *echoCommand) Suggest(CommandSource, []string) []string {
	return nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	s := NewServer(slog.New(slog.DiscardHandler))
	t.Cleanup(func() { s.Close() }) //nolint:errcheck

	return s
}

func TestRegistrar(t *testing.T) {
	t.Run("duplicate names are rejected", func(t *testing.T) {
		s := newTestServer(t)
		p := NewPlugin("P", NewSlogLogger(slog.New(slog.DiscardHandler)))

		require.NoError(t, s.Commands().Register(p, &echoCommand{}, "spawn"))

		err := s.Commands().Register(p, &echoCommand{}, "spawn")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNameRegistered)
	})

	t.Run("lookup", func(t *testing.T) {
		s := newTestServer(t)
		p := NewPlugin("P", NewSlogLogger(slog.New(slog.DiscardHandler)))
		cmd := &echoCommand{}

		require.NoError(t, s.Commands().Register(p, cmd, "spawn"))

		got, ok := s.Commands().Lookup("spawn")
		require.True(t, ok)
		assert.Same(t, cmd, got)

		_, ok = s.Commands().Lookup("other")
		assert.False(t, ok)
	})
}

func TestDispatch(t *testing.T) {
	s := newTestServer(t)
	p := NewPlugin("P", NewSlogLogger(slog.New(slog.DiscardHandler)))
	cmd := &echoCommand{}
	require.NoError(t, s.Commands().Register(p, cmd, "warp"))

	player, err := s.Join("Steve", "")
	require.NoError(t, err)

	t.Run("leading slash is stripped", func(t *testing.T) {
		require.NoError(t, s.Commands().Dispatch(player, "/warp home 3"))
		assert.Equal(t, [][]string{{"home", "3"}}, cmd.calls)
		assert.Equal(t, []string{"echo"}, player.Messages())
	})

	t.Run("command names are case-insensitive", func(t *testing.T) {
		require.NoError(t, s.Commands().Dispatch(player, "WARP"))
	})

	t.Run("unknown command", func(t *testing.T) {
		err := s.Commands().Dispatch(player, "/nope")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownCommand)
	})

	t.Run("empty line", func(t *testing.T) {
		assert.ErrorIs(t, s.Commands().Dispatch(player, "  /  "), ErrEmptyCommandLine)
	})
}

type recordingListener struct {
	mu    sync.Mutex
	joins []PlayerJoinEvent
	quits []PlayerQuitEvent
}

func (l *recordingListener) OnPlayerJoin(ev PlayerJoinEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.joins = append(l.joins, ev)
}

func (l *recordingListener) OnPlayerQuit(ev PlayerQuitEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.quits = append(l.quits, ev)
}

func (l *recordingListener) counts() (int, int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.joins), len(l.quits)
}

func TestBusDelivery(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := newTestServer(t)
	p := NewPlugin("P", NewSlogLogger(slog.New(slog.DiscardHandler)))
	listener := &recordingListener{}

	require.NoError(t, s.Bus().Subscribe(ctx, p, listener))

	player, err := s.Join("Steve", "de_DE")
	require.NoError(t, err)
	require.NoError(t, s.Quit("Steve"))

	require.Eventually(t, func() bool {
		joins, quits := listener.counts()

		return joins == 1 && quits == 1
	}, time.Second, 10*time.Millisecond)

	listener.mu.Lock()
	defer listener.mu.Unlock()

	assert.Equal(t, "Steve", listener.joins[0].Name)
	assert.Equal(t, "de_DE", listener.joins[0].Locale)
	assert.Equal(t, player.UniqueID(), listener.quits[0].UniqueID)
}

func TestServerPlayers(t *testing.T) {
	s := newTestServer(t)

	_, err := s.Join("Steve", "")
	require.NoError(t, err)

	_, err = s.Join("Alex", "")
	require.NoError(t, err)

	assert.Equal(t, []string{"Alex", "Steve"}, s.PlayerNames())

	got, ok := s.Player("Steve")
	require.True(t, ok)
	assert.Equal(t, "Steve", got.Name())

	require.NoError(t, s.Quit("Steve"))
	assert.Equal(t, []string{"Alex"}, s.PlayerNames())

	// Quitting an unknown player is a no-op.
	require.NoError(t, s.Quit("Nobody"))
}

func TestConsole(t *testing.T) {
	buf := &bytes.Buffer{}
	c := NewConsole(buf)

	c.SendMessage("hello")

	assert.Equal(t, "hello\n", buf.String())
	assert.True(t, c.HasPermission("anything"))
	assert.Equal(t, "CONSOLE", c.Name())
}

func TestPlayerPermissions(t *testing.T) {
	p := NewPlayer("Steve")

	assert.False(t, p.HasPermission("server.op"))

	p.Grant("server.op")
	assert.True(t, p.HasPermission("server.op"))
	assert.NotEmpty(t, p.UniqueID())
}
