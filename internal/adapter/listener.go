// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package adapter

import (
	"github.com/redearcadia/commands/internal/host"
)

// busListener wires host events into the manager: joins seed the issuer's
// locale, quits evict it.
type busListener struct {
	manager *Manager
}

func (l *busListener) OnPlayerJoin(ev host.PlayerJoinEvent) {
	if ev.Locale != "" {
		l.manager.Locales().SetIssuerLocale(ev.UniqueID, ev.Locale)
	}
}

func (l *busListener) OnPlayerQuit(ev host.PlayerQuitEvent) {
	l.manager.Locales().ClearIssuer(ev.UniqueID)
}

var _ host.Listener = (*busListener)(nil)
