// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package adapter

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"iter"
	"strings"
	"sync"

	"github.com/spf13/afero"

	"github.com/redearcadia/commands/internal/dispatch"
	"github.com/redearcadia/commands/internal/host"
	"github.com/redearcadia/commands/internal/locales"
	"github.com/redearcadia/commands/internal/text"
	"github.com/redearcadia/commands/internal/timing"
)

//go:embed lang/*.yaml
var defaultBundles embed.FS

// localeBundleDir is the directory bundle files live in, both in the
// embedded defaults and in any extra sources.
const localeBundleDir = "lang"

// ErrForeignRootCommand is returned when a command carries a root command
// tree that was not created by this adapter, e.g. because it was first
// registered with a different manager implementation.
var ErrForeignRootCommand = errors.New("root command was not created by this adapter")

type localeSource struct {
	fsys afero.Fs
	dir  string
}

// Option configures a Manager at construction time.
type Option func(*Manager)

// WithLocaleSource adds a filesystem directory to search for message
// bundle files, in addition to the embedded defaults.
func WithLocaleSource(fsys afero.Fs, dir string) Option {
	return func(m *Manager) {
		m.localeSources = append(m.localeSources, localeSource{fsys: fsys, dir: dir})
	}
}

// Manager implements dispatch.Manager for the host runtime.
type Manager struct {
	plugin *host.Plugin
	server *host.Server

	formatters       map[dispatch.MessageType]*Formatter
	defaultFormatter *Formatter

	rootTiming    *timing.Timing
	commandTiming *timing.Timing

	localeSources []localeSource

	// mu guards the check-and-create of the three lazily built
	// sub-resources below.
	mu          sync.Mutex
	contexts    *dispatch.Contexts
	completions *dispatch.Completions
	locales     *locales.Manager

	regMu      sync.RWMutex
	registered map[string]*RootCommand
}

// New creates a manager for the plugin on the given server. It installs
// the message formatters, loads the locale bundles, creates the root
// command timing scope, and subscribes the host event listener for the
// lifetime of ctx. A failed listener subscription fails construction.
func New(ctx context.Context, plugin *host.Plugin, server *host.Server, opts ...Option) (*Manager, error) {
	m := &Manager{
		plugin:     plugin,
		server:     server,
		formatters: make(map[dispatch.MessageType]*Formatter),
		registered: make(map[string]*RootCommand),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.defaultFormatter = NewFormatter(text.Red)
	m.formatters[dispatch.MessageError] = m.defaultFormatter
	m.formatters[dispatch.MessageSyntax] = NewFormatter(text.Red)
	m.formatters[dispatch.MessageInfo] = NewFormatter(text.Gray)
	m.formatters[dispatch.MessageHelp] = NewFormatter(text.Aqua, text.White, text.DarkGray, text.Gray, text.Red)

	m.Locales() // eager bundle load

	m.rootTiming = timing.New(plugin.Name())
	m.commandTiming = m.rootTiming.Of("Commands")

	if err := server.Bus().Subscribe(ctx, plugin, &busListener{manager: m}); err != nil {
		return nil, err
	}

	return m, nil
}

// Plugin returns the plugin handle this manager belongs to.
func (m *Manager) Plugin() *host.Plugin {
	return m.plugin
}

// IsCommandIssuer implements dispatch.Manager.
func (m *Manager) IsCommandIssuer(v any) bool {
	_, ok := v.(host.CommandSource)

	return ok
}

// CommandContexts implements dispatch.Manager. The registry is created on
// first access, pre-populated with the host's argument resolvers.
func (m *Manager) CommandContexts() *dispatch.Contexts {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.contexts == nil {
		m.contexts = defaultContexts(m)
	}

	return m.contexts
}

// CommandCompletions implements dispatch.Manager. The registry is created
// on first access, pre-populated with the host's completion resolvers.
func (m *Manager) CommandCompletions() *dispatch.Completions {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.completions == nil {
		m.completions = defaultCompletions(m)
	}

	return m.completions
}

// Locales implements dispatch.Manager. The bundle set is created on first
// access and the message bundles are loaded immediately. Load failures are
// logged, not returned: a plugin with broken override bundles still gets
// the embedded defaults.
func (m *Manager) Locales() *locales.Manager {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.locales == nil {
		m.locales = m.newLocales()
	}

	return m.locales
}

func (m *Manager) newLocales() *locales.Manager {
	l := locales.New()
	l.AddSource(afero.FromIOFS{FS: defaultBundles}, localeBundleDir)

	for _, src := range m.localeSources {
		l.AddSource(src.fsys, src.dir)
	}

	pluginName := m.plugin.Name()
	l.AddMessageBundles("minecraft", pluginName, strings.ToLower(pluginName))

	if err := l.LoadLanguages(); err != nil {
		m.Log(dispatch.LogError, "failed to load message bundles", err)
	}

	return l
}

// RegisterCommand implements dispatch.Manager. Each named sub-tree not yet
// registered is bound with the host registrar under its lowercase name and
// recorded in the manager's table, overwriting any prior mapping for that
// name. A registrar failure aborts the loop; sub-trees registered before
// the failure stay registered. Sub-trees built by a different manager
// implementation are rejected with ErrForeignRootCommand.
func (m *Manager) RegisterCommand(cmd *dispatch.BaseCommand) error {
	cmd.OnRegister(m)

	for name, root := range cmd.RootCommands() {
		lower := strings.ToLower(name)

		rc, ok := root.(*RootCommand)
		if !ok {
			return fmt.Errorf("%w: %T", ErrForeignRootCommand, root)
		}

		if !rc.registered {
			if err := m.server.Commands().Register(m.plugin, rc, lower); err != nil {
				return err
			}
		}

		rc.registered = true

		m.regMu.Lock()
		m.registered[lower] = rc
		m.regMu.Unlock()
	}

	return nil
}

// HasRegisteredCommands implements dispatch.Manager.
func (m *Manager) HasRegisteredCommands() bool {
	m.regMu.RLock()
	defer m.regMu.RUnlock()

	return len(m.registered) > 0
}

// RegisteredRootCommands implements dispatch.Manager. The returned
// iterator is a live read-only view: it reflects registrations made after
// it was obtained, and offers no way to mutate the underlying table.
func (m *Manager) RegisteredRootCommands() iter.Seq[dispatch.RootCommand] {
	return func(yield func(dispatch.RootCommand) bool) {
		m.regMu.RLock()
		defer m.regMu.RUnlock()

		for _, rc := range m.registered {
			if !yield(rc) {
				return
			}
		}
	}
}

// LookupRootCommand returns the registered root command for the name.
// Lookup is case-insensitive.
func (m *Manager) LookupRootCommand(name string) (dispatch.RootCommand, bool) {
	m.regMu.RLock()
	defer m.regMu.RUnlock()

	rc, ok := m.registered[strings.ToLower(name)]

	return rc, ok
}

// CreateRootCommand implements dispatch.Manager.
func (m *Manager) CreateRootCommand(name string) dispatch.RootCommand {
	return &RootCommand{manager: m, name: strings.ToLower(name)}
}

// CreateCommandContext implements dispatch.Manager.
func (m *Manager) CreateCommandContext(
	cmd *dispatch.RegisteredCommand,
	param *dispatch.CommandParameter,
	issuer dispatch.CommandIssuer,
	args []string,
	index int,
	passedArgs map[string]any,
) *dispatch.ExecutionContext {
	return &dispatch.ExecutionContext{
		Command:    cmd,
		Parameter:  param,
		Issuer:     issuer,
		Args:       args,
		Index:      index,
		PassedArgs: passedArgs,
	}
}

// CreateOperationContext implements dispatch.Manager.
func (m *Manager) CreateOperationContext(
	cmd *dispatch.BaseCommand, issuer dispatch.CommandIssuer, label string, args []string, async bool,
) *dispatch.OperationContext {
	return &dispatch.OperationContext{
		Command: cmd,
		Issuer:  issuer,
		Label:   label,
		Args:    args,
		Async:   async,
	}
}

// CreateCompletionContext implements dispatch.Manager.
func (m *Manager) CreateCompletionContext(
	cmd *dispatch.RegisteredCommand, issuer dispatch.CommandIssuer, input, config string, args []string,
) *dispatch.CompletionContext {
	return &dispatch.CompletionContext{
		Command: cmd,
		Issuer:  issuer,
		Input:   input,
		Config:  config,
		Args:    args,
	}
}

// CreateConditionContext implements dispatch.Manager.
func (m *Manager) CreateConditionContext(issuer dispatch.CommandIssuer, config string) *dispatch.ConditionContext {
	return &dispatch.ConditionContext{Issuer: issuer, Config: config}
}

// CommandPrefix implements dispatch.Manager. Players type commands with a
// leading slash; the console does not.
func (m *Manager) CommandPrefix(issuer dispatch.CommandIssuer) string {
	if issuer.IsPlayer() {
		return "/"
	}

	return ""
}

// Log implements dispatch.Manager. Severities other than LogInfo and
// LogError produce no output.
func (m *Manager) Log(level dispatch.LogLevel, message string, err error) {
	logger := m.plugin.Logger()

	switch level {
	case dispatch.LogInfo:
		logger.Info(dispatch.LogPrefix + message)

		if err != nil {
			for _, line := range strings.Split(err.Error(), "\n") {
				logger.Info(dispatch.LogPrefix + line)
			}
		}
	case dispatch.LogError:
		logger.Error(dispatch.LogPrefix + message)

		if err != nil {
			for _, line := range strings.Split(err.Error(), "\n") {
				logger.Error(dispatch.LogPrefix + line)
			}
		}
	}
}

// Timing implements dispatch.Manager: a named scope nested under the
// plugin's "Commands" timing scope.
func (m *Manager) Timing(name string) *timing.Timing {
	return m.commandTiming.Of(name)
}

// FormatMessage styles the message for the given message type using the
// type's formatter, falling back to the default formatter.
func (m *Manager) FormatMessage(mt dispatch.MessageType, message string) string {
	f, ok := m.formatters[mt]
	if !ok {
		f = m.defaultFormatter
	}

	return f.Format(message)
}

// Server returns the host server this manager is bound to.
func (m *Manager) Server() *host.Server {
	return m.server
}

var _ dispatch.Manager = (*Manager)(nil)
