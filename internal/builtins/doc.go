// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package builtins provides the built-in command set registered by the
// interactive console: player listing, private messages, and framework
// introspection.
package builtins
