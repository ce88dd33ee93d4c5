// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sdf provides the text generation used to emit SDFormat
// geometry fragments: a small element writer with fixed two-space
// nesting, number formatting, and SDFormat version gating.
package sdf

import (
	"strings"

	"cogentcore.org/sdfshape/base/indent"
)

// IndentWidth is the number of spaces used for each nesting level
// inside a fragment.
const IndentWidth = 2

// Writer builds a fragment one element per line. The zero value is
// ready to use. Every line, including the last, ends with a newline.
type Writer struct {
	b     strings.Builder
	open  []string
	level int
}

// Open writes the start tag of an element that will contain child elements.
func (w *Writer) Open(name string) *Writer {
	w.line("<" + name + ">")
	w.open = append(w.open, name)
	w.level++
	return w
}

// textEscaper escapes the characters that cannot appear literally in
// element text. All other bytes, including quotes, tabs and bytes that
// are not valid UTF-8, are written unchanged.
var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Leaf writes an element with the given text content on a single line.
// The characters &, < and > in the text are escaped.
func (w *Writer) Leaf(name, text string) *Writer {
	w.line("<" + name + ">" + textEscaper.Replace(text) + "</" + name + ">")
	return w
}

// Close writes the end tag of the most recently opened element.
// It panics if there is no open element.
func (w *Writer) Close() *Writer {
	n := len(w.open)
	if n == 0 {
		panic("sdf.Writer.Close: no open element")
	}
	name := w.open[n-1]
	w.open = w.open[:n-1]
	w.level--
	w.line("</" + name + ">")
	return w
}

// String returns the fragment written so far, closing nothing.
func (w *Writer) String() string {
	return w.b.String()
}

func (w *Writer) line(s string) {
	w.b.WriteString(indent.Spaces(w.level, IndentWidth))
	w.b.WriteString(s)
	w.b.WriteByte('\n')
}

// Element returns the fragment for an element named name containing
// the given leaf elements, given as alternating name, text pairs.
func Element(name string, leaves ...string) string {
	if len(leaves)%2 != 0 {
		panic("sdf.Element: leaves must be name, text pairs")
	}
	w := &Writer{}
	w.Open(name)
	for i := 0; i < len(leaves); i += 2 {
		w.Leaf(leaves[i], leaves[i+1])
	}
	w.Close()
	return w.String()
}

// Wrap returns the given fragment nested one level inside an element
// with the given name, e.g. a shape fragment inside <geometry>.
func Wrap(name, fragment string) string {
	return "<" + name + ">\n" + indent.Lines(fragment, indent.Space, 1, IndentWidth) + "</" + name + ">\n"
}
