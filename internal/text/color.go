// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package text

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const (
	// NoColor is the environment variable that disables color output.
	NoColor = "NO_COLOR"
	// ForceColor is the environment variable that forces color output.
	ForceColor = "FORCE_COLOR"
)

// Color is a named text color from the host's sixteen-color chat palette.
type Color int

// The host chat palette.
const (
	Black Color = iota
	DarkBlue
	DarkGreen
	DarkAqua
	DarkRed
	DarkPurple
	Gold
	Gray
	DarkGray
	Blue
	Green
	Aqua
	Red
	LightPurple
	Yellow
	White
)

var colorNames = map[Color]string{
	Black:       "black",
	DarkBlue:    "dark_blue",
	DarkGreen:   "dark_green",
	DarkAqua:    "dark_aqua",
	DarkRed:     "dark_red",
	DarkPurple:  "dark_purple",
	Gold:        "gold",
	Gray:        "gray",
	DarkGray:    "dark_gray",
	Blue:        "blue",
	Green:       "green",
	Aqua:        "aqua",
	Red:         "red",
	LightPurple: "light_purple",
	Yellow:      "yellow",
	White:       "white",
}

// styles maps each palette color to its terminal rendering. ANSI-16 codes
// keep output legible on both light and dark terminals.
var styles = map[Color]lipgloss.Style{
	Black:       lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
	DarkBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	DarkGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	DarkAqua:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	DarkRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	DarkPurple:  lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	Gold:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	Gray:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	DarkGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	Blue:        lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	Green:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	Aqua:        lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	Red:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	LightPurple: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	Yellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	White:       lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
}

var enabled bool

func init() {
	enabled = isColorEnabled()
}

// String implements the Stringer interface for Color.
func (c Color) String() string {
	name, ok := colorNames[c]
	if !ok {
		return "unknown"
	}

	return name
}

// Render returns the string styled in this color. When color output is
// disabled the string is returned unchanged.
func (c Color) Render(s string) string {
	if !enabled {
		return s
	}

	style, ok := styles[c]
	if !ok {
		return s
	}

	return style.Render(s)
}

// Enabled reports whether color output is enabled. It is initialized in
// package init().
//
// It is set to false if the NO_COLOR environment variable is set, to true
// if FORCE_COLOR is set, and otherwise follows terminal detection on
// stdout using the golang.org/x/term package.
func Enabled() bool {
	return enabled
}

func isColorEnabled() bool {
	if nc := os.Getenv(NoColor); nc != "" {
		return false
	}

	if fc := os.Getenv(ForceColor); fc != "" {
		return true
	}

	return term.IsTerminal(int(os.Stdout.Fd()))
}
