// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dispatch

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrUnknownContext is returned when no resolver is registered for an
	// argument context name.
	ErrUnknownContext = errors.New("unknown argument context")
	// ErrContextResolution is returned when a registered resolver fails.
	ErrContextResolution = errors.New("failed to resolve argument context")
)

// ContextResolver converts raw command arguments into a typed value.
type ContextResolver func(ectx *ExecutionContext) (any, error)

// Contexts holds the mapping between argument context names and their
// resolvers. The zero value is not usable; create one with NewContexts.
type Contexts struct {
	mu        sync.RWMutex
	resolvers map[string]ContextResolver
}

// NewContexts creates an empty argument context registry.
func NewContexts() *Contexts {
	return &Contexts{resolvers: make(map[string]ContextResolver)}
}

// Register registers a resolver for the named argument context, replacing
// any existing registration for that name.
func (c *Contexts) Register(name string, resolver ContextResolver) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.resolvers[name] = resolver
}

// Resolve resolves the named argument context against the execution context.
func (c *Contexts) Resolve(name string, ectx *ExecutionContext) (any, error) {
	c.mu.RLock()
	resolver, ok := c.resolvers[name]
	c.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownContext, name)
	}

	v, err := resolver(ectx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrContextResolution, name, err)
	}

	return v, nil
}
