// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package locales

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
)

// DefaultLocale is the locale used when a message is missing from the
// requested locale, and the locale assigned to bundle files without a
// locale suffix.
const DefaultLocale = "en"

var (
	// ErrBundleLoad is returned when a bundle file cannot be read or parsed.
	ErrBundleLoad = errors.New("failed to load message bundle")
	// ErrNoSources is returned when LoadLanguages is called with no
	// filesystem sources configured.
	ErrNoSources = errors.New("no bundle sources configured")
)

type source struct {
	fsys afero.Fs
	dir  string
}

// Manager holds the message tables for a plugin, keyed by locale and
// message key, plus the per-issuer locale assignments.
type Manager struct {
	mu            sync.Mutex
	sources       []source
	bundles       []string
	tables        map[string]map[string]string
	issuerLocales map[string]string
}

// New creates an empty locale manager.
func New() *Manager {
	return &Manager{
		tables:        make(map[string]map[string]string),
		issuerLocales: make(map[string]string),
	}
}

// AddSource adds a filesystem directory to search for bundle files.
func (m *Manager) AddSource(fsys afero.Fs, dir string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sources = append(m.sources, source{fsys: fsys, dir: dir})
}

// AddMessageBundles registers bundle names to load. Duplicate names are
// ignored.
func (m *Manager) AddMessageBundles(names ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, name := range names {
		if name == "" || slices.Contains(m.bundles, name) {
			continue
		}

		m.bundles = append(m.bundles, name)
	}
}

// LoadLanguages loads every registered bundle from every source. Bundle
// files are named "<bundle>_<locale>.yaml"; a bare "<bundle>.yaml" is
// loaded as the default locale. Later sources override earlier ones for
// the same key. Missing bundles are not an error; unreadable or malformed
// files are, and all such failures are aggregated.
func (m *Manager) LoadLanguages() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.sources) == 0 {
		return ErrNoSources
	}

	var result *multierror.Error

	for _, src := range m.sources {
		for _, bundle := range m.bundles {
			if err := m.loadBundle(src, bundle); err != nil {
				result = multierror.Append(result, err)
			}
		}
	}

	return result.ErrorOrNil()
}

func (m *Manager) loadBundle(src source, bundle string) error {
	pattern := filepath.Join(src.dir, bundle+"*.yaml")

	matches, err := afero.Glob(src.fsys, pattern)
	if err != nil {
		return errors.Join(ErrBundleLoad, err)
	}

	var result *multierror.Error

	for _, match := range matches {
		locale := localeFromFileName(filepath.Base(match), bundle)
		if locale == "" {
			continue
		}

		if err := m.loadFile(src.fsys, match, locale); err != nil {
			result = multierror.Append(result, err)
		}
	}

	return result.ErrorOrNil()
}

func (m *Manager) loadFile(fsys afero.Fs, path, locale string) error {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrBundleLoad, path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrBundleLoad, path, err)
	}

	table, ok := m.tables[locale]
	if !ok {
		table = make(map[string]string)
		m.tables[locale] = table
	}

	flatten("", raw, table)

	return nil
}

// localeFromFileName extracts the locale from a bundle file name, e.g.
// "minecraft_en_US.yaml" with bundle "minecraft" yields "en_US". A bare
// "minecraft.yaml" yields the default locale. Names of other bundles that
// happen to share the prefix yield "".
func localeFromFileName(name, bundle string) string {
	name = strings.TrimSuffix(name, ".yaml")
	if name == bundle {
		return DefaultLocale
	}

	rest, ok := strings.CutPrefix(name, bundle+"_")
	if !ok {
		return ""
	}

	return rest
}

// flatten collapses nested YAML maps into dot-separated keys.
func flatten(prefix string, raw map[string]any, out map[string]string) {
	for k, v := range raw {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

// Message returns the message for the key in the given locale, falling
// back to the default locale. The second return reports whether the key
// was found at all.
func (m *Manager) Message(locale, key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if table, ok := m.tables[locale]; ok {
		if msg, ok := table[key]; ok {
			return msg, true
		}
	}

	if table, ok := m.tables[DefaultLocale]; ok {
		if msg, ok := table[key]; ok {
			return msg, true
		}
	}

	return "", false
}

// SetIssuerLocale assigns a locale to an issuer by unique ID.
func (m *Manager) SetIssuerLocale(uid, locale string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.issuerLocales[uid] = locale
}

// IssuerLocale returns the locale assigned to the issuer, or the default
// locale if none is set.
func (m *Manager) IssuerLocale(uid string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if locale, ok := m.issuerLocales[uid]; ok {
		return locale
	}

	return DefaultLocale
}

// ClearIssuer removes any locale assignment for the issuer.
func (m *Manager) ClearIssuer(uid string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.issuerLocales, uid)
}

// MessageFor returns the message for the key in the issuer's locale.
func (m *Manager) MessageFor(uid, key string) (string, bool) {
	return m.Message(m.IssuerLocale(uid), key)
}
