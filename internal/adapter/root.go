// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package adapter

import (
	"strings"

	"github.com/redearcadia/commands/internal/dispatch"
	"github.com/redearcadia/commands/internal/host"
)

// Message keys used for dispatch-time feedback, with their fallbacks when
// the bundles carry no translation.
const (
	msgKeyPermissionDenied = "commands.permission_denied"
	msgKeyUnknownSub       = "commands.unknown_subcommand"
	msgKeyCommandError     = "commands.error_performing"

	fallbackPermissionDenied = "I'm sorry, but you do not have permission to perform this command."
	fallbackUnknownSub       = "Unknown subcommand."
	fallbackCommandError     = "An error occurred while performing the command."
)

// RootCommand is a named top-level command tree as registered with the
// host dispatcher. It implements both dispatch.RootCommand (for the
// framework) and host.Command (for the host).
type RootCommand struct {
	manager *Manager
	name    string
	// registered guards against binding the same tree to the host
	// registrar twice.
	registered bool
	commands   []*dispatch.BaseCommand
}

// CommandName implements dispatch.RootCommand.
func (r *RootCommand) CommandName() string {
	return r.name
}

// AddCommand implements dispatch.RootCommand.
func (r *RootCommand) AddCommand(cmd *dispatch.BaseCommand) {
	r.commands = append(r.commands, cmd)
}

// Commands implements dispatch.RootCommand.
func (r *RootCommand) Commands() []*dispatch.BaseCommand {
	return r.commands
}

// Process implements host.Command. It wraps the source into an issuer,
// measures the invocation under the command's timing scope, resolves the
// subcommand and runs its handler. Handler failures are reported to the
// issuer and logged; they are not returned to the host.
func (r *RootCommand) Process(source host.CommandSource, args []string) error {
	issuer, err := r.manager.CommandIssuer(source)
	if err != nil {
		return err
	}

	stop := r.manager.Timing(r.name).Start()
	defer stop()

	for _, base := range r.commands {
		sub, rest, ok := base.Resolve(args)
		if !ok {
			continue
		}

		if sub.Permission != "" && !issuer.HasPermission(sub.Permission) {
			issuer.SendMessage(dispatch.MessageError, r.message(issuer, msgKeyPermissionDenied, fallbackPermissionDenied))

			return nil
		}

		ectx := r.manager.CreateCommandContext(sub, nil, issuer, rest, 0, make(map[string]any))

		if err := sub.Handler(ectx); err != nil {
			issuer.SendMessage(dispatch.MessageError, r.message(issuer, msgKeyCommandError, fallbackCommandError))
			r.manager.Log(dispatch.LogError, "error executing command /"+r.name, err)
		}

		return nil
	}

	issuer.SendMessage(dispatch.MessageSyntax, r.message(issuer, msgKeyUnknownSub, fallbackUnknownSub))

	return nil
}

// Suggest implements host.Command. The first argument position completes
// subcommand names; later positions consult the completion registry for
// the parameter under the cursor.
func (r *RootCommand) Suggest(source host.CommandSource, args []string) []string {
	issuer, err := r.manager.CommandIssuer(source)
	if err != nil {
		return nil
	}

	if len(args) <= 1 {
		if subs := r.suggestSubcommands(args); len(subs) > 0 {
			return subs
		}
	}

	for _, base := range r.commands {
		sub, rest, ok := base.Resolve(args)
		if !ok {
			continue
		}

		paramIndex := len(rest) - 1
		if paramIndex < 0 || paramIndex >= len(sub.Parameters) {
			return nil
		}

		param := sub.Parameters[paramIndex]
		if param.Completion == "" {
			return nil
		}

		cctx := r.manager.CreateCompletionContext(sub, issuer, rest[paramIndex], "", args)

		suggestions, err := r.manager.CommandCompletions().Complete(param.Completion, cctx)
		if err != nil {
			return nil
		}

		return suggestions
	}

	return nil
}

func (r *RootCommand) suggestSubcommands(args []string) []string {
	partial := ""
	if len(args) == 1 {
		partial = strings.ToLower(args[0])
	}

	var out []string

	for _, base := range r.commands {
		for name := range base.Subcommands {
			if name != "" && strings.HasPrefix(name, partial) {
				out = append(out, name)
			}
		}
	}

	return out
}

func (r *RootCommand) message(issuer dispatch.CommandIssuer, key, fallback string) string {
	if msg, ok := r.manager.Locales().MessageFor(issuer.UniqueID(), key); ok {
		return msg
	}

	return fallback
}

var (
	_ dispatch.RootCommand = (*RootCommand)(nil)
	_ host.Command         = (*RootCommand)(nil)
)
