// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package indent provides indentation generation methods,
// including re-indenting multi-line text fragments.
package indent

import (
	"strings"
)

// Character is the type of indentation character to use.
type Character int32

const (
	// Tab indicates to use tabs for indentation.
	Tab Character = iota

	// Space indicates to use spaces for indentation.
	Space
)

// String returns the name of the indentation character.
func (ich Character) String() string {
	if ich == Tab {
		return "Tab"
	}
	return "Space"
}

// Tabs returns a string of n tabs.
func Tabs(n int) string {
	return strings.Repeat("\t", n)
}

// Spaces returns a string of n*width spaces.
func Spaces(n, width int) string {
	return strings.Repeat(" ", n*width)
}

// String returns a string of n tabs or n*width spaces depending on the indent character.
func String(ich Character, n, width int) string {
	if ich == Tab {
		return Tabs(n)
	}
	return Spaces(n, width)
}

// Len returns the length of the indent string given indent character and indent level.
func Len(ich Character, n, width int) int {
	if ich == Tab {
		return n
	}
	return n * width
}

// Lines prefixes every non-empty line of text with the indent string for
// level n. Line endings are preserved, so a trailing newline stays the
// last byte of the result. Empty lines are left empty.
func Lines(text string, ich Character, n, width int) string {
	if n <= 0 || text == "" {
		return text
	}
	prefix := String(ich, n, width)
	var b strings.Builder
	b.Grow(len(text) + strings.Count(text, "\n")*len(prefix) + len(prefix))
	for line := range strings.Lines(text) {
		if line != "\n" {
			b.WriteString(prefix)
		}
		b.WriteString(line)
	}
	return b.String()
}
