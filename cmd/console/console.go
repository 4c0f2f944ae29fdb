// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package console implements the interactive console: an in-memory host
// server with the command adapter mounted, driven by a line editor.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-getter/v2"
	"github.com/peterh/liner"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/redearcadia/commands/internal/adapter"
	"github.com/redearcadia/commands/internal/builtins"
	"github.com/redearcadia/commands/internal/ctxlog"
	"github.com/redearcadia/commands/internal/host"
	"github.com/redearcadia/commands/internal/text"
)

const (
	pluginFlag  = "plugin-name"
	localesFlag = "locales"
	joinFlag    = "join"

	prompt = "> "
)

// ErrFetchLocales is returned when a remote locale bundle directory cannot
// be fetched.
var ErrFetchLocales = errors.New("failed to fetch locale bundles")

// ConsoleCmd hosts the adapter on an in-memory server and dispatches typed
// lines as the console issuer.
var ConsoleCmd = &cli.Command{
	Name: "console",
	Description: `Start an interactive command console.
Typed lines are dispatched through the command adapter as the server console.
Directives beginning with ":" control the simulated server:
  :join <name> [locale]   connect a player
  :quit <name>            disconnect a player
  :exit                   leave the console

Locale bundle URLs use Hashicorp's go-getter syntax, which allows for
fetching files from various sources. See https://github.com/hashicorp/go-getter.`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     pluginFlag,
			Usage:    "Display name for the hosted plugin",
			Value:    "Console",
			OnlyOnce: true,
		},
		&cli.StringFlag{
			Name:     localesFlag,
			Usage:    "URL of a directory of extra locale bundles (go-getter syntax)",
			OnlyOnce: true,
		},
		&cli.StringSliceFlag{
			Name:  joinFlag,
			Usage: "Player name to connect at startup. Specify multiple times for multiple players.",
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)

	server := host.NewServer(logger)
	defer server.Close() //nolint:errcheck

	console := host.NewConsole(cmd.Writer)
	server.SetConsole(console)

	plugin := host.NewPlugin(cmd.String(pluginFlag), host.NewSlogLogger(logger))

	var opts []adapter.Option

	if url := cmd.String(localesFlag); url != "" {
		dir, cleanup, err := fetchLocaleDir(ctx, url)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}

		defer cleanup()

		opts = append(opts, adapter.WithLocaleSource(afero.NewOsFs(), dir))
	}

	mgr, err := adapter.New(ctx, plugin, server, opts...)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if err := builtins.Register(mgr); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	for _, name := range cmd.StringSlice(joinFlag) {
		if _, err := server.Join(name, ""); err != nil {
			logger.Error("failed to join player", "player", name, "error", err)
		}
	}

	return repl(server, console, cmd.Writer)
}

func repl(server *host.Server, console *host.Console, w io.Writer) error {
	state := liner.NewLiner()
	defer state.Close() //nolint:errcheck

	state.SetCtrlCAborts(true)
	state.SetCompleter(func(line string) []string {
		return completeLine(server, console, line)
	})

	for {
		line, err := state.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return nil
		}

		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		state.AppendHistory(line)

		if strings.HasPrefix(line, ":") {
			if directive(server, w, line) {
				return nil
			}

			continue
		}

		if err := server.Commands().Dispatch(console, line); err != nil {
			fmt.Fprintln(w, text.Red.Render(err.Error()))
		}
	}
}

// directive handles ":"-prefixed console directives. It returns true when
// the console should exit.
func directive(server *host.Server, w io.Writer, line string) bool {
	fields := strings.Fields(line)

	switch fields[0] {
	case ":exit":
		return true
	case ":join":
		if len(fields) < 2 {
			fmt.Fprintln(w, text.Red.Render("usage: :join <name> [locale]"))
			return false
		}

		locale := ""
		if len(fields) > 2 {
			locale = fields[2]
		}

		if _, err := server.Join(fields[1], locale); err != nil {
			fmt.Fprintln(w, text.Red.Render(err.Error()))
			return false
		}

		fmt.Fprintln(w, text.Yellow.Render(fields[1]+" joined the game"))
	case ":quit":
		if len(fields) < 2 {
			fmt.Fprintln(w, text.Red.Render("usage: :quit <name>"))
			return false
		}

		if err := server.Quit(fields[1]); err != nil {
			fmt.Fprintln(w, text.Red.Render(err.Error()))
			return false
		}

		fmt.Fprintln(w, text.Yellow.Render(fields[1]+" left the game"))
	default:
		fmt.Fprintln(w, text.Red.Render("unknown directive: "+fields[0]))
	}

	return false
}

func completeLine(server *host.Server, console *host.Console, line string) []string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	if len(fields) == 1 && !strings.HasSuffix(line, " ") {
		return nil // command-name completion is the host dispatcher's job
	}

	cmd, ok := server.Commands().Lookup(strings.ToLower(fields[0]))
	if !ok {
		return nil
	}

	args := fields[1:]
	if strings.HasSuffix(line, " ") {
		args = append(args, "")
	}

	suggestions := cmd.Suggest(console, args)

	out := make([]string, 0, len(suggestions))
	base := strings.Join(fields[:len(fields)-1], " ")

	if strings.HasSuffix(line, " ") {
		base = strings.TrimRight(line, " ")
	}

	for _, s := range suggestions {
		out = append(out, base+" "+s)
	}

	return out
}

// fetchLocaleDir downloads a directory of locale bundles using Hashicorp's
// go-getter and returns the local path along with a cleanup function.
func fetchLocaleDir(ctx context.Context, url string) (string, func(), error) {
	tmpDir, err := os.MkdirTemp("", "commands-locales-*")
	if err != nil {
		return "", nil, errors.Join(ErrFetchLocales, err)
	}

	cleanup := func() { os.RemoveAll(tmpDir) } //nolint:errcheck

	wd, err := os.Getwd()
	if err != nil {
		cleanup()
		return "", nil, errors.Join(ErrFetchLocales, err)
	}

	client := getter.Client{
		DisableSymlinks: true,
	}

	req := &getter.Request{
		Src:     url,
		Dst:     filepath.Join(tmpDir, "lang"),
		Pwd:     wd,
		GetMode: getter.ModeDir,
	}

	if _, err := client.Get(ctx, req); err != nil {
		cleanup()
		return "", nil, errors.Join(ErrFetchLocales, err)
	}

	return filepath.Join(tmpDir, "lang"), cleanup, nil
}
