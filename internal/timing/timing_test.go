// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package timing

import (
	"testing"
	"time"

	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
)

// stubClock returns a clock that advances by step on every call.
func stubClock(start time.Time, step time.Duration) func() time.Time {
	current := start

	return func() time.Time {
		t := current
		current = current.Add(step)

		return t
	}
}

func TestOfCachesChildren(t *testing.T) {
	root := New("Plugin")

	child := root.Of("Commands")
	assert.Same(t, child, root.Of("Commands"))
	assert.Equal(t, "Commands", child.Name())

	other := root.Of("Events")
	assert.NotSame(t, child, other)
}

func TestStartStopRecords(t *testing.T) {
	stubs := gostub.Stub(&now, stubClock(time.Unix(0, 0), 100*time.Millisecond))
	defer stubs.Reset()

	scope := New("Plugin").Of("Commands").Of("ping")

	stop := scope.Start()
	stop()

	assert.Equal(t, int64(1), scope.Count())
	assert.Equal(t, 100*time.Millisecond, scope.Total())
	assert.Equal(t, 100*time.Millisecond, scope.Max())
}

func TestAncestorsAggregate(t *testing.T) {
	stubs := gostub.Stub(&now, stubClock(time.Unix(0, 0), 50*time.Millisecond))
	defer stubs.Reset()

	root := New("Plugin")
	commands := root.Of("Commands")
	ping := commands.Of("ping")
	pong := commands.Of("pong")

	ping.Start()()
	pong.Start()()

	assert.Equal(t, int64(1), ping.Count())
	assert.Equal(t, int64(1), pong.Count())
	assert.Equal(t, int64(2), commands.Count())
	assert.Equal(t, int64(2), root.Count())
	assert.Equal(t, 100*time.Millisecond, root.Total())
}

func TestMaxTracksLongest(t *testing.T) {
	clock := time.Unix(0, 0)
	stubs := gostub.Stub(&now, func() time.Time { return clock })
	defer stubs.Reset()

	scope := New("Plugin")

	stop := scope.Start()
	clock = clock.Add(30 * time.Millisecond)
	stop()

	stop = scope.Start()
	clock = clock.Add(10 * time.Millisecond)
	stop()

	assert.Equal(t, int64(2), scope.Count())
	assert.Equal(t, 40*time.Millisecond, scope.Total())
	assert.Equal(t, 30*time.Millisecond, scope.Max())
}
