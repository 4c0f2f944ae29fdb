// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package adapter

import (
	"errors"
	"fmt"

	"github.com/redearcadia/commands/internal/dispatch"
	"github.com/redearcadia/commands/internal/host"
)

// ErrNotCommandIssuer is returned when an object that is not a host
// command source is passed to CommandIssuer.
var ErrNotCommandIssuer = errors.New("not a command issuer")

// Issuer wraps a host command source into the framework-neutral
// CommandIssuer.
type Issuer struct {
	manager *Manager
	source  host.CommandSource
}

// CommandIssuer implements dispatch.Manager. The returned issuer
// references exactly the given source; incompatible types fail with an
// error naming the offending runtime type.
func (m *Manager) CommandIssuer(v any) (dispatch.CommandIssuer, error) {
	source, ok := v.(host.CommandSource)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotCommandIssuer, v)
	}

	return &Issuer{manager: m, source: source}, nil
}

// Raw returns the wrapped host command source.
func (i *Issuer) Raw() any {
	return i.source
}

// UniqueID returns the wrapped source's unique ID.
func (i *Issuer) UniqueID() string {
	return i.source.UniqueID()
}

// IsPlayer reports whether the wrapped source is a player.
func (i *Issuer) IsPlayer() bool {
	_, ok := i.source.(*host.Player)

	return ok
}

// SendMessage styles the message for the message type and delivers it to
// the wrapped source.
func (i *Issuer) SendMessage(mt dispatch.MessageType, message string) {
	i.source.SendMessage(i.manager.FormatMessage(mt, message))
}

// HasPermission reports whether the wrapped source holds the permission.
func (i *Issuer) HasPermission(permission string) bool {
	return i.source.HasPermission(permission)
}
