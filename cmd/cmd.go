// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"os"

	"github.com/redearcadia/commands/cmd/console"
	"github.com/redearcadia/commands/cmd/show"
	"github.com/urfave/cli/v3"
)

// RootCmd is the root command for the CLI.
var RootCmd = &cli.Command{
	Commands: []*cli.Command{
		console.ConsoleCmd,
		show.ShowCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "commands",
	Description: `Commands is an adapter that plugs a generic command dispatch framework
into a game server plugin host. This CLI hosts the adapter on an in-memory
server: the console subcommand gives you an interactive dispatcher with
simulated players, and show prints the registered command trees.`,
	Usage:                 "commands console",
	EnableShellCompletion: true,
}
