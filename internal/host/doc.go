// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package host models the game server plugin runtime the command framework
// is adapted to: plugin identity, command sources (players and the
// console), the command registrar, the per-plugin logger, and the event
// bus. An in-memory server implementation makes the whole surface usable
// without a real game server, both for the interactive console and for
// tests.
package host
