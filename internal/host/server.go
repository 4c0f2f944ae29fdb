// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package host

import (
	"log/slog"
	"sort"
	"sync"
)

// Server is the in-memory host runtime: a registrar, an event bus, the
// console, and the set of online players.
type Server struct {
	registrar *commandTable
	bus       *Bus
	console   *Console

	mu      sync.RWMutex
	players map[string]*Player
}

// NewServer creates an in-memory server. The console writes to console
// output via the Console source set with SetConsole; until then messages
// go to a discarding console.
func NewServer(logger *slog.Logger) *Server {
	return &Server{
		registrar: newCommandTable(),
		bus:       NewBus(logger),
		console:   NewConsole(discardWriter{}),
		players:   make(map[string]*Player),
	}
}

// Commands returns the server's command registrar.
func (s *Server) Commands() Registrar {
	return s.registrar
}

// Bus returns the server's event bus.
func (s *Server) Bus() *Bus {
	return s.bus
}

// Console returns the server console source.
func (s *Server) Console() *Console {
	return s.console
}

// SetConsole replaces the server console source.
func (s *Server) SetConsole(c *Console) {
	s.console = c
}

// Join connects a named player and publishes the join event.
func (s *Server) Join(name, locale string) (*Player, error) {
	p := NewPlayer(name)
	p.SetLocale(locale)

	s.mu.Lock()
	s.players[name] = p
	s.mu.Unlock()

	err := s.bus.PublishPlayerJoin(PlayerJoinEvent{
		Name:     name,
		UniqueID: p.UniqueID(),
		Locale:   locale,
	})

	return p, err
}

// Quit disconnects a named player and publishes the quit event. Unknown
// names are a no-op.
func (s *Server) Quit(name string) error {
	s.mu.Lock()
	p, ok := s.players[name]
	delete(s.players, name)
	s.mu.Unlock()

	if !ok {
		return nil
	}

	return s.bus.PublishPlayerQuit(PlayerQuitEvent{
		Name:     name,
		UniqueID: p.UniqueID(),
	})
}

// Player returns the online player with the given name.
func (s *Server) Player(name string) (*Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.players[name]

	return p, ok
}

// PlayerNames returns the names of all online players, sorted.
func (s *Server) PlayerNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.players))
	for name := range s.players {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Close shuts down the server's event bus.
func (s *Server) Close() error {
	return s.bus.Close()
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) {
	return len(p), nil
}
