// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package adapter binds the command framework's extension points to the
// host runtime in package host. Manager is the concrete dispatch.Manager:
// it wraps host command sources into issuers, registers root command trees
// with the host registrar, wires message styling to the host's text
// colors, and forwards framework logging to the plugin's logger.
package adapter
