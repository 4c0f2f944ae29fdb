// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package host

import (
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
)

// Player is a connected player command source. Messages sent to the player
// are buffered and retrievable, which is what the in-memory server and the
// tests need.
type Player struct {
	name string
	uid  string

	mu          sync.Mutex
	inbox       []string
	permissions map[string]bool
	locale      string
}

// NewPlayer creates a player with a fresh unique ID.
func NewPlayer(name string) *Player {
	return &Player{
		name:        name,
		uid:         uuid.NewString(),
		permissions: make(map[string]bool),
	}
}

// Name returns the player's display name.
func (p *Player) Name() string {
	return p.name
}

// UniqueID returns the player's unique ID.
func (p *Player) UniqueID() string {
	return p.uid
}

// SendMessage appends the message to the player's inbox.
func (p *Player) SendMessage(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.inbox = append(p.inbox, message)
}

// Messages returns a copy of the messages sent to the player so far.
func (p *Player) Messages() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]string, len(p.inbox))
	copy(out, p.inbox)

	return out
}

// HasPermission reports whether the player was granted the permission.
func (p *Player) HasPermission(permission string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.permissions[permission]
}

// Grant grants the player a permission.
func (p *Player) Grant(permission string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.permissions[permission] = true
}

// Locale returns the player's client locale, or "" if unknown.
func (p *Player) Locale() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.locale
}

// SetLocale records the player's client locale.
func (p *Player) SetLocale(locale string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.locale = locale
}

// Console is the server console command source. It has every permission
// and writes messages straight to its writer.
type Console struct {
	w io.Writer
}

// NewConsole creates a console source writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Name returns the console's display name.
func (c *Console) Name() string {
	return "CONSOLE"
}

// UniqueID returns the console's fixed identifier.
func (c *Console) UniqueID() string {
	return "console"
}

// SendMessage writes the message line to the console writer.
func (c *Console) SendMessage(message string) {
	fmt.Fprintln(c.w, message)
}

// HasPermission always reports true for the console.
func (c *Console) HasPermission(string) bool {
	return true
}
