// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package timing

import (
	"sync"
	"time"
)

// now is the clock used for measurements. It is a package variable so tests
// can substitute a deterministic clock.
var now = time.Now

// Timing is a named instrumentation scope. Child scopes are created on
// demand and cached, so repeated lookups of the same name return the same
// scope.
type Timing struct {
	name   string
	parent *Timing

	mu       sync.Mutex
	children map[string]*Timing
	count    int64
	total    time.Duration
	max      time.Duration
}

// New creates a root timing scope with the given name.
func New(name string) *Timing {
	return &Timing{name: name}
}

// Name returns the name of the scope.
func (t *Timing) Name() string {
	return t.name
}

// Of returns the child scope with the given name, creating it on first use.
func (t *Timing) Of(name string) *Timing {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.children == nil {
		t.children = make(map[string]*Timing)
	}

	child, ok := t.children[name]
	if !ok {
		child = &Timing{name: name, parent: t}
		t.children[name] = child
	}

	return child
}

// Start begins a measurement and returns the function that ends it. The
// elapsed duration is recorded in this scope and every ancestor scope.
func (t *Timing) Start() func() {
	started := now()

	return func() {
		elapsed := now().Sub(started)
		for scope := t; scope != nil; scope = scope.parent {
			scope.record(elapsed)
		}
	}
}

func (t *Timing) record(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.count++
	t.total += d

	if d > t.max {
		t.max = d
	}
}

// Count returns the number of completed measurements in this scope.
func (t *Timing) Count() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.count
}

// Total returns the accumulated duration of all measurements in this scope.
func (t *Timing) Total() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.total
}

// Max returns the longest single measurement recorded in this scope.
func (t *Timing) Max() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.max
}
