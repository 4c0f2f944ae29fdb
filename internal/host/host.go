// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package host

import (
	"log/slog"
)

// Logger is the per-plugin log sink exposed by the host. It carries the two
// severities the host distinguishes.
type Logger interface {
	Info(msg string)
	Error(msg string)
}

// Plugin identifies a hosted plugin: a display name and its logger.
type Plugin struct {
	name   string
	logger Logger
}

// NewPlugin creates a plugin handle with the given display name and logger.
func NewPlugin(name string, logger Logger) *Plugin {
	return &Plugin{name: name, logger: logger}
}

// Name returns the plugin's display name.
func (p *Plugin) Name() string {
	return p.name
}

// Logger returns the plugin's logger.
func (p *Plugin) Logger() Logger {
	return p.logger
}

// CommandSource is the host's notion of a command issuer: anything that can
// receive messages and be permission-checked.
type CommandSource interface {
	// Name returns the display name of the source.
	Name() string
	// UniqueID returns a stable identifier for the source.
	UniqueID() string
	// SendMessage delivers an already-styled message line to the source.
	SendMessage(message string)
	// HasPermission reports whether the source holds the permission.
	HasPermission(permission string) bool
}

// Command is a callable command tree as the host dispatcher sees it.
type Command interface {
	// Process executes the command for the source with the given arguments.
	Process(source CommandSource, args []string) error
	// Suggest returns tab-completion candidates for the partial arguments.
	Suggest(source CommandSource, args []string) []string
}

// Registrar binds command names to command trees on behalf of plugins.
type Registrar interface {
	// Register binds name to cmd for the plugin. Registering a name that
	// is already bound fails with ErrNameRegistered.
	Register(p *Plugin, cmd Command, name string) error
	// Lookup returns the command bound to name.
	Lookup(name string) (Command, bool)
	// Dispatch parses a raw command line and executes the named command
	// for the source.
	Dispatch(source CommandSource, line string) error
}

// slogLogger adapts a slog.Logger to the host Logger interface.
type slogLogger struct {
	l *slog.Logger
}

// NewSlogLogger returns a host Logger backed by the given slog.Logger.
func NewSlogLogger(l *slog.Logger) Logger {
	return &slogLogger{l: l}
}

func (s *slogLogger) Info(msg string) {
	s.l.Info(msg)
}

func (s *slogLogger) Error(msg string) {
	s.l.Error(msg)
}
