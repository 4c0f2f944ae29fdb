// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dispatch

import (
	"iter"
	"maps"
	"strings"
)

// HandlerFunc executes a resolved subcommand with its execution context.
type HandlerFunc func(ectx *ExecutionContext) error

// CommandParameter describes one declared parameter of a registered command.
type CommandParameter struct {
	Name string
	// Completion is the completion ID consulted for tab suggestions,
	// e.g. "@players". Empty means no suggestions.
	Completion string
	// Context is the name of the argument context used to resolve the raw
	// string into a typed value, e.g. "player" or "int".
	Context  string
	Optional bool
	Default  string
}

// RegisteredCommand is one named subcommand of a BaseCommand, bound to the
// handler that executes it.
type RegisteredCommand struct {
	Command     *BaseCommand
	Name        string
	Subcommand  string
	Description string
	Syntax      string
	Permission  string
	Parameters  []CommandParameter
	Handler     HandlerFunc
}

// BaseCommand is a top-level command definition: a primary name, optional
// aliases, and a set of named subcommands. The empty subcommand name is the
// default, executed when no subcommand matches.
type BaseCommand struct {
	Name        string
	Aliases     []string
	Description string
	Permission  string
	Subcommands map[string]*RegisteredCommand

	// rootCommands holds the named sub-trees built by OnRegister, keyed by
	// lowercase command name.
	rootCommands map[string]RootCommand
}

// OnRegister populates the command's named sub-trees using the manager's
// root command factory. It is invoked by Manager.RegisterCommand and is
// idempotent: names that already have a sub-tree are left untouched.
func (c *BaseCommand) OnRegister(m Manager) {
	if c.rootCommands == nil {
		c.rootCommands = make(map[string]RootCommand)
	}

	names := append([]string{c.Name}, c.Aliases...)
	for _, name := range names {
		lower := strings.ToLower(name)
		if lower == "" {
			continue
		}

		if _, ok := c.rootCommands[lower]; ok {
			continue
		}

		root := m.CreateRootCommand(lower)
		root.AddCommand(c)
		c.rootCommands[lower] = root
	}
}

// RootCommands returns the named sub-trees built by OnRegister.
func (c *BaseCommand) RootCommands() iter.Seq2[string, RootCommand] {
	return maps.All(c.rootCommands)
}

// Resolve selects the registered subcommand for the given arguments and
// returns it along with the arguments remaining after the subcommand token.
// It falls back to the default (empty-named) subcommand when the first
// argument does not name one. A blank first argument is never treated as a
// subcommand token: it belongs to the default subcommand's parameters, so it
// must survive into the remaining arguments.
func (c *BaseCommand) Resolve(args []string) (*RegisteredCommand, []string, bool) {
	if len(args) > 0 && args[0] != "" {
		if sub, ok := c.Subcommands[strings.ToLower(args[0])]; ok {
			return sub, args[1:], true
		}
	}

	if def, ok := c.Subcommands[""]; ok {
		return def, args, true
	}

	return nil, args, false
}
