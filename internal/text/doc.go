// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package text provides the host's named text colors and renders styled
// chat and console output with lipgloss. Color output honours the NO_COLOR
// and FORCE_COLOR environment variables and falls back to terminal
// detection.
package text
