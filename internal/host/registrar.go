// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package host

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

var (
	// ErrNameRegistered is returned when a command name is already bound.
	ErrNameRegistered = errors.New("command name already registered")
	// ErrUnknownCommand is returned when dispatching a name with no binding.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrEmptyCommandLine is returned when dispatching an empty line.
	ErrEmptyCommandLine = errors.New("empty command line")
)

// commandTable is the in-memory Registrar. Names are stored as given by the
// registering plugin; lookups are exact.
type commandTable struct {
	mu       sync.RWMutex
	commands map[string]Command
	owners   map[string]*Plugin
}

func newCommandTable() *commandTable {
	return &commandTable{
		commands: make(map[string]Command),
		owners:   make(map[string]*Plugin),
	}
}

// Register implements Registrar.
func (t *commandTable) Register(p *Plugin, cmd Command, name string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.commands[name]; ok {
		return fmt.Errorf("%w: %s", ErrNameRegistered, name)
	}

	t.commands[name] = cmd
	t.owners[name] = p

	return nil
}

// Lookup implements Registrar.
func (t *commandTable) Lookup(name string) (Command, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	cmd, ok := t.commands[name]

	return cmd, ok
}

// Dispatch implements Registrar. The leading "/" players type is accepted
// and stripped; the console types bare command lines.
func (t *commandTable) Dispatch(source CommandSource, line string) error {
	line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "/"))
	if line == "" {
		return ErrEmptyCommandLine
	}

	fields := strings.Fields(line)
	name := strings.ToLower(fields[0])

	cmd, ok := t.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	return cmd.Process(source, fields[1:])
}
