// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package dispatch defines the platform-neutral contract of the command
// framework: the Manager capability interface, command and issuer types,
// the argument context and completion registries, and the message and log
// level enumerations. Platform adapters implement Manager to bind these
// extension points to a concrete host runtime.
package dispatch
