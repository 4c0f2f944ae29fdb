// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dispatch

import (
	"iter"

	"github.com/redearcadia/commands/internal/locales"
	"github.com/redearcadia/commands/internal/timing"
)

// Manager is the capability contract a platform adapter must satisfy to
// plug the command framework into a host runtime. The framework only ever
// talks to the host through this interface.
type Manager interface {
	// IsCommandIssuer reports whether the runtime type of v is compatible
	// with the host's notion of a command issuer. Pure predicate.
	IsCommandIssuer(v any) bool

	// CommandIssuer wraps v into a CommandIssuer, or fails with an
	// invalid-issuer error naming v's runtime type.
	CommandIssuer(v any) (CommandIssuer, error)

	// CommandContexts returns the argument context registry, created on
	// first access and cached for the manager's lifetime.
	CommandContexts() *Contexts

	// CommandCompletions returns the completion registry, created on first
	// access and cached for the manager's lifetime.
	CommandCompletions() *Completions

	// Locales returns the locale bundle set, created and loaded on first
	// access and cached for the manager's lifetime.
	Locales() *locales.Manager

	// RegisterCommand registers each of the command's named sub-trees with
	// the host dispatcher under its lowercase name. Sub-trees already
	// registered are skipped. There is no rollback: a host registrar
	// failure leaves earlier sub-trees registered.
	RegisterCommand(cmd *BaseCommand) error

	// HasRegisteredCommands reports whether any root command has been
	// registered through this manager.
	HasRegisteredCommands() bool

	// RegisteredRootCommands returns a read-only live view of the
	// registered root commands.
	RegisteredRootCommands() iter.Seq[RootCommand]

	// CreateRootCommand creates a host-specific root command tree for the
	// given name.
	CreateRootCommand(name string) RootCommand

	// CreateCommandContext constructs an execution context. Pure factory.
	CreateCommandContext(
		cmd *RegisteredCommand,
		param *CommandParameter,
		issuer CommandIssuer,
		args []string,
		index int,
		passedArgs map[string]any,
	) *ExecutionContext

	// CreateOperationContext constructs an operation context. Pure factory.
	CreateOperationContext(
		cmd *BaseCommand, issuer CommandIssuer, label string, args []string, async bool,
	) *OperationContext

	// CreateCompletionContext constructs a completion context. Pure factory.
	CreateCompletionContext(
		cmd *RegisteredCommand, issuer CommandIssuer, input, config string, args []string,
	) *CompletionContext

	// CreateConditionContext constructs a condition context. Pure factory.
	CreateConditionContext(issuer CommandIssuer, config string) *ConditionContext

	// CommandPrefix returns the prefix the issuer types before a command:
	// "/" for players, "" otherwise.
	CommandPrefix(issuer CommandIssuer) string

	// Log writes a prefixed line to the host logger at the given severity.
	// If err is non-nil its rendering is split on newlines and each line
	// is logged at the same severity with the same prefix. Severities
	// outside {LogInfo, LogError} produce no output.
	Log(level LogLevel, message string, err error)

	// Timing returns a named instrumentation scope nested under the
	// manager's root command timing scope.
	Timing(name string) *timing.Timing
}
