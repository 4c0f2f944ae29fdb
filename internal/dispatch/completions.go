// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dispatch

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrUnknownCompletion is returned when no resolver is registered for a
// completion ID.
var ErrUnknownCompletion = errors.New("unknown completion")

// CompletionResolver produces tab-completion candidates for a partially
// typed argument.
type CompletionResolver func(cctx *CompletionContext) ([]string, error)

// Completions holds the mapping between completion IDs (e.g. "@players")
// and their resolvers. The zero value is not usable; create one with
// NewCompletions.
type Completions struct {
	mu        sync.RWMutex
	resolvers map[string]CompletionResolver
}

// NewCompletions creates an empty completion registry.
func NewCompletions() *Completions {
	return &Completions{resolvers: make(map[string]CompletionResolver)}
}

// Register registers a resolver under the given ID, replacing any existing
// registration. IDs are normalised to carry a leading "@".
func (c *Completions) Register(id string, resolver CompletionResolver) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.resolvers[normalizeCompletionID(id)] = resolver
}

// Complete resolves suggestions for the given completion ID, filtered to
// candidates that have the current input as a prefix.
func (c *Completions) Complete(id string, cctx *CompletionContext) ([]string, error) {
	c.mu.RLock()
	resolver, ok := c.resolvers[normalizeCompletionID(id)]
	c.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCompletion, id)
	}

	candidates, err := resolver(cctx)
	if err != nil {
		return nil, err
	}

	matched := make([]string, 0, len(candidates))

	for _, candidate := range candidates {
		if strings.HasPrefix(strings.ToLower(candidate), strings.ToLower(cctx.Input)) {
			matched = append(matched, candidate)
		}
	}

	return matched, nil
}

func normalizeCompletionID(id string) string {
	if !strings.HasPrefix(id, "@") {
		return "@" + id
	}

	return id
}
