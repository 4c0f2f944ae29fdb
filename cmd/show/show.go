// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package show prints the built-in command trees as colorized JSON.
package show

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/TylerBrock/colorjson"
	"github.com/urfave/cli/v3"

	"github.com/redearcadia/commands/internal/adapter"
	"github.com/redearcadia/commands/internal/builtins"
	"github.com/redearcadia/commands/internal/ctxlog"
	"github.com/redearcadia/commands/internal/dispatch"
	"github.com/redearcadia/commands/internal/host"
)

const jsonIndent = 2

// ErrRenderCommands is returned when the command trees cannot be rendered.
var ErrRenderCommands = errors.New("failed to render command trees")

// ShowCmd prints the registered root commands of the built-in set.
var ShowCmd = &cli.Command{
	Name:        "show",
	Description: "Show the built-in command trees as JSON.",
	Action:      actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)

	server := host.NewServer(logger)
	defer server.Close() //nolint:errcheck

	plugin := host.NewPlugin("Console", host.NewSlogLogger(logger))

	mgr, err := adapter.New(ctx, plugin, server)
	if err != nil {
		return errors.Join(ErrRenderCommands, err)
	}

	if err := builtins.Register(mgr); err != nil {
		return errors.Join(ErrRenderCommands, err)
	}

	formatter := colorjson.NewFormatter()
	formatter.Indent = jsonIndent

	out, err := formatter.Marshal(describe(mgr))
	if err != nil {
		return errors.Join(ErrRenderCommands, err)
	}

	fmt.Fprintln(cmd.Writer, string(out))

	return nil
}

// describe flattens the registered root commands into plain JSON-friendly
// values (maps, slices, strings) for the color formatter.
func describe(mgr *adapter.Manager) map[string]any {
	trees := make(map[string]any)

	for rc := range mgr.RegisteredRootCommands() {
		trees[rc.CommandName()] = describeRoot(rc)
	}

	return trees
}

func describeRoot(rc dispatch.RootCommand) map[string]any {
	var subs []any

	for _, base := range rc.Commands() {
		names := make([]string, 0, len(base.Subcommands))
		for name := range base.Subcommands {
			if name == "" {
				name = "(default)"
			}

			names = append(names, name)
		}

		sort.Strings(names)

		subs = append(subs, map[string]any{
			"description": base.Description,
			"subcommands": toAnySlice(names),
		})
	}

	return map[string]any{"commands": subs}
}

func toAnySlice(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}

	return out
}
