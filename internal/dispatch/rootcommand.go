// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dispatch

// RootCommand is a named top-level command tree as exposed to the host's
// dispatcher. Adapters provide the concrete implementation registered with
// the host.
type RootCommand interface {
	// CommandName returns the lowercase name the tree is registered under.
	CommandName() string
	// AddCommand attaches a command definition to this tree.
	AddCommand(cmd *BaseCommand)
	// Commands returns the command definitions attached to this tree.
	Commands() []*BaseCommand
}
