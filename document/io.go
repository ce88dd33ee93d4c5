// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package document

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/base/iox/yamlx"
	"github.com/pelletier/go-toml/v2"

	"cogentcore.org/sdfshape/shape"
)

// Read reads a document in the given format from r, resolving shapes
// through the given registry, or [shape.Default] if it is nil.
func Read(r io.Reader, format Format, rg *shape.Registry) (*Document, error) {
	if rg == nil {
		rg = shape.Default
	}
	rw := &raw{}
	var err error
	switch format {
	case TOML:
		err = tomlx.Read(rw, r)
		var de *toml.DecodeError
		if errors.As(err, &de) {
			row, col := de.Position()
			err = fmt.Errorf("line %d, column %d: %w", row, col, err)
		}
	default:
		err = yamlx.Read(rw, r)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("document: decoding %v: %w", format, err)
	}
	return rw.build(rg)
}

// ReadBytes reads a document in the given format from b. See [Read].
func ReadBytes(b []byte, format Format, rg *shape.Registry) (*Document, error) {
	return Read(bytes.NewReader(b), format, rg)
}

// Open reads the document in the given file, with the format given by
// its extension. See [Read].
func Open(filename string, rg *shape.Registry) (*Document, error) {
	format, err := FormatFromFilename(filename)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := Read(f, format, rg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return doc, nil
}
