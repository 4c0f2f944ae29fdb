// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package adapter

import (
	"github.com/redearcadia/commands/internal/text"
)

// Formatter styles messages of one message type. The first color is the
// body color; further colors are available by index for callers that
// compose multi-part messages (help listings use up to five).
type Formatter struct {
	colors []text.Color
}

// NewFormatter creates a formatter with the given color set. At least one
// color is expected; a formatter with none renders text unstyled.
func NewFormatter(colors ...text.Color) *Formatter {
	return &Formatter{colors: colors}
}

// Color returns the color at index i, falling back to the body color when
// the index is out of range.
func (f *Formatter) Color(i int) text.Color {
	if i >= 0 && i < len(f.colors) {
		return f.colors[i]
	}

	if len(f.colors) > 0 {
		return f.colors[0]
	}

	return text.White
}

// Format renders the message in the body color.
func (f *Formatter) Format(message string) string {
	if len(f.colors) == 0 {
		return message
	}

	return f.colors[0].Render(message)
}
