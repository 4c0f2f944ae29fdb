// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package host

// PlayerJoinEvent is published when a player connects to the server.
type PlayerJoinEvent struct {
	Name     string `json:"name"`
	UniqueID string `json:"unique_id"`
	Locale   string `json:"locale,omitempty"`
}

// PlayerQuitEvent is published when a player disconnects from the server.
type PlayerQuitEvent struct {
	Name     string `json:"name"`
	UniqueID string `json:"unique_id"`
}

// Listener receives host events. Implementations are subscribed to the bus
// scoped to a plugin's lifetime.
type Listener interface {
	OnPlayerJoin(ev PlayerJoinEvent)
	OnPlayerQuit(ev PlayerQuitEvent)
}
