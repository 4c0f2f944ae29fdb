// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package commands provides the version and commit information for the
// commands application.
package commands

var (
	// Version is set during the build process.
	Version = "dev"
	// Commit is set during the build process.
	Commit = "unknown"
)
