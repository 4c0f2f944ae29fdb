// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package builtins

import (
	"slices"
	"strings"

	"github.com/redearcadia/commands/internal/adapter"
	"github.com/redearcadia/commands/internal/dispatch"
	"github.com/redearcadia/commands/internal/host"
)

// Register registers the built-in command set with the manager.
func Register(m *adapter.Manager) error {
	for _, cmd := range []*dispatch.BaseCommand{
		playersCommand(m),
		msgCommand(m),
		commandsCommand(m),
	} {
		if err := m.RegisterCommand(cmd); err != nil {
			return err
		}
	}

	return nil
}

func playersCommand(m *adapter.Manager) *dispatch.BaseCommand {
	cmd := &dispatch.BaseCommand{
		Name:        "players",
		Aliases:     []string{"who"},
		Description: "List online players",
	}

	cmd.Subcommands = map[string]*dispatch.RegisteredCommand{
		"": {
			Command: cmd,
			Name:    "players",
			Syntax:  "/players",
			Handler: func(ectx *dispatch.ExecutionContext) error {
				names := m.Server().PlayerNames()
				if len(names) == 0 {
					ectx.Issuer.SendMessage(dispatch.MessageInfo, "No players online.")

					return nil
				}

				ectx.Issuer.SendMessage(dispatch.MessageInfo, "Online: "+strings.Join(names, ", "))

				return nil
			},
		},
	}

	return cmd
}

func msgCommand(m *adapter.Manager) *dispatch.BaseCommand {
	cmd := &dispatch.BaseCommand{
		Name:        "msg",
		Aliases:     []string{"tell"},
		Description: "Send a private message to a player",
	}

	cmd.Subcommands = map[string]*dispatch.RegisteredCommand{
		"": {
			Command: cmd,
			Name:    "msg",
			Syntax:  "/msg <player> <message>",
			Parameters: []dispatch.CommandParameter{
				{Name: "player", Context: "player", Completion: "@players"},
				{Name: "message", Context: "string"},
			},
			Handler: func(ectx *dispatch.ExecutionContext) error {
				target, err := m.CommandContexts().Resolve("player", ectx)
				if err != nil {
					return err
				}

				body := strings.Join(ectx.Args[ectx.Index:], " ")
				player := target.(*host.Player)
				player.SendMessage(m.FormatMessage(dispatch.MessageInfo, "[msg] "+body))
				ectx.Issuer.SendMessage(dispatch.MessageInfo, "Message sent to "+player.Name()+".")

				return nil
			},
		},
	}

	return cmd
}

func commandsCommand(m *adapter.Manager) *dispatch.BaseCommand {
	cmd := &dispatch.BaseCommand{
		Name:        "commands",
		Description: "Inspect the registered command trees",
	}

	cmd.Subcommands = map[string]*dispatch.RegisteredCommand{
		"list": {
			Command:    cmd,
			Name:       "commands",
			Subcommand: "list",
			Syntax:     "/commands list",
			Handler: func(ectx *dispatch.ExecutionContext) error {
				var names []string
				for rc := range m.RegisteredRootCommands() {
					names = append(names, rc.CommandName())
				}

				slices.Sort(names)
				ectx.Issuer.SendMessage(dispatch.MessageHelp, "Registered: "+strings.Join(names, ", "))

				return nil
			},
		},
	}

	return cmd
}
