// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package document reads lists of named primitive shapes from YAML or
// TOML documents and emits their SDFormat geometry fragments.
//
// A document looks like this in YAML:
//
//	version: "1.9"
//	shapes:
//	  - name: table_top
//	    type: box
//	    size: [1, 0.6, 0.05]
//	  - type: cylinder
//	    radius: 0.02
//	    half_height: 0.35
//
// Every key of a shape other than type and name is passed to the
// shape constructor as a parameter.
//
// The version is a string. YAML keeps an unquoted version such as
// 1.10 as written, but TOML reads it as a float, so TOML documents must
// quote it (version = "1.10"); an unquoted TOML version is a decoding
// error.
package document

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"

	"cogentcore.org/sdfshape/base/indent"
	"cogentcore.org/sdfshape/sdf"
	"cogentcore.org/sdfshape/shape"
)

// Entry is one shape of a [Document].
type Entry struct {

	// Name is the optional name of the shape, unique within the document.
	Name string

	// Shape is the constructed shape.
	Shape shape.Shape
}

// label returns the quoted name of the entry, or its index and tag if it has no name.
func (e *Entry) label(i int) string {
	if e.Name != "" {
		return fmt.Sprintf("%q", e.Name)
	}
	return fmt.Sprintf("%d (%s)", i, e.Shape.Tag())
}

// Document is a list of shapes targeting one SDFormat version.
type Document struct {

	// Version is the targeted SDFormat version.
	Version *semver.Version

	// Entries are the shapes in document order.
	Entries []Entry
}

// Format is the encoding of a document.
type Format int32

const (
	// YAML is a YAML document.
	YAML Format = iota

	// TOML is a TOML document, with shapes in a [[shapes]] array of tables.
	TOML
)

func (f Format) String() string {
	if f == TOML {
		return "TOML"
	}
	return "YAML"
}

// FormatFromFilename returns the [Format] for the extension of the given filename.
func FormatFromFilename(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return YAML, fmt.Errorf("document: unsupported file extension %q (want .yaml, .yml or .toml)", filepath.Ext(filename))
}

// raw is the undecoded structure shared by both formats.
type raw struct {
	Version string           `yaml:"version" toml:"version"`
	Shapes  []map[string]any `yaml:"shapes" toml:"shapes"`
}

// build resolves every raw shape through the given registry.
func (rw *raw) build(rg *shape.Registry) (*Document, error) {
	v, err := sdf.ParseVersion(rw.Version)
	if err != nil {
		return nil, err
	}
	doc := &Document{Version: v, Entries: make([]Entry, 0, len(rw.Shapes))}
	names := map[string]int{}
	for i, m := range rw.Shapes {
		tag, ok := m["type"].(string)
		if !ok || tag == "" {
			return nil, fmt.Errorf("document: shape %d: missing or non-string type", i)
		}
		e := Entry{}
		if nm, has := m["name"]; has {
			if e.Name, ok = nm.(string); !ok {
				return nil, fmt.Errorf("document: shape %d: name must be a string, got %T", i, nm)
			}
			if prev, dup := names[e.Name]; dup {
				return nil, fmt.Errorf("document: shape %d: name %q already used by shape %d", i, e.Name, prev)
			}
			names[e.Name] = i
		}
		params := make(shape.Params, len(m))
		for k, pv := range m {
			if k != "type" && k != "name" {
				params[k] = pv
			}
		}
		e.Shape, err = rg.Resolve(tag, params)
		if err != nil {
			return nil, fmt.Errorf("document: shape %d: %w", i, err)
		}
		doc.Entries = append(doc.Entries, e)
	}
	return doc, nil
}

// Options control how [Document.Emit] writes fragments.
type Options struct {

	// Indent is the number of nesting levels to indent every fragment by,
	// for splicing into an enclosing document.
	Indent int

	// Wrap nests each fragment inside a <geometry> element.
	Wrap bool
}

// Emit writes the fragments of all entries to w in document order.
// It fails before writing anything if a shape is not supported by the
// document version.
func (doc *Document) Emit(w io.Writer, opts Options) error {
	for i := range doc.Entries {
		e := &doc.Entries[i]
		if err := sdf.CheckSupported(e.Shape.Tag(), doc.Version); err != nil {
			return fmt.Errorf("document: shape %s: %w", e.label(i), err)
		}
	}
	var b strings.Builder
	for i := range doc.Entries {
		frag := doc.Entries[i].Shape.SDF()
		if opts.Wrap {
			frag = sdf.Wrap("geometry", frag)
		}
		b.WriteString(indent.Lines(frag, indent.Space, opts.Indent, sdf.IndentWidth))
	}
	_, err := io.WriteString(w, b.String())
	return err
}
