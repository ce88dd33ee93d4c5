// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/core/base/errors"

	"cogentcore.org/sdfshape/document"
	"cogentcore.org/sdfshape/sdf"
	"cogentcore.org/sdfshape/shape"
)

// Config is the configuration for sdfshape, set from flags or
// a sdfshape.toml file.
type Config struct {

	// Input is the YAML or TOML shape document.
	Input string `posarg:"0" required:"-"`

	// Version is the SDFormat version to target. When set, it overrides
	// the version given in the document.
	Version string

	// Indent is the number of nesting levels to indent each fragment by.
	Indent int `default:"0"`

	// Wrap nests each fragment inside a <geometry> element.
	Wrap bool
}

// Emit prints the SDFormat fragments of the shapes in the input document.
func Emit(c *Config) error {
	return emit(c, os.Stdout)
}

func emit(c *Config, w io.Writer) error {
	if c.Input == "" {
		return errors.New("sdfshape emit: an input document is required")
	}
	doc, err := document.Open(c.Input, shape.Default)
	if err != nil {
		return err
	}
	if c.Version != "" {
		doc.Version, err = sdf.ParseVersion(c.Version)
		if err != nil {
			return err
		}
	}
	slog.Info("emitting shapes", "input", c.Input, "shapes", len(doc.Entries), "version", doc.Version.Original())
	return doc.Emit(w, document.Options{Indent: c.Indent, Wrap: c.Wrap})
}

// Tags prints the registered shape types, one per line.
func Tags(c *Config) error {
	return tags(os.Stdout)
}

func tags(w io.Writer) error {
	for _, t := range shape.Tags() {
		if _, err := fmt.Fprintln(w, t); err != nil {
			return err
		}
	}
	return nil
}
