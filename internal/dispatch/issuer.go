// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dispatch

// CommandIssuer is the framework-neutral view of the entity that invoked a
// command (a player or the console). Adapters wrap their host's command
// source type in an implementation of this interface.
type CommandIssuer interface {
	// Raw returns the underlying host command source.
	Raw() any
	// UniqueID returns a stable identifier for the issuer.
	UniqueID() string
	// IsPlayer reports whether the issuer is a player rather than the
	// console or another non-player source.
	IsPlayer() bool
	// SendMessage delivers a message to the issuer, styled according to
	// the message type.
	SendMessage(mt MessageType, message string)
	// HasPermission reports whether the issuer holds the given permission.
	HasPermission(permission string) bool
}
