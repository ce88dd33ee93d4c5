// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"strings"

	"cogentcore.org/sdfshape/sdf"
)

// Mesh is a mesh resource, such as an STL or OBJ file, scaled along
// each axis.
type Mesh struct {
	filename string
	size     Vector3
}

// NewMesh returns a new [Mesh] for the given resource locator and scale
// factors. The filename must not be blank and the scale factors must be
// finite and non-zero; negative factors mirror the mesh.
func NewMesh(filename string, size Vector3) (Mesh, error) {
	if strings.TrimSpace(filename) == "" {
		return Mesh{}, invalid("mesh", "filename", "must not be empty")
	}
	if !size.IsFinite() || size.X == 0 || size.Y == 0 || size.Z == 0 {
		return Mesh{}, invalid("mesh", "size", "scale factors must be finite and non-zero, got %v", size)
	}
	return Mesh{filename: filename, size: size}, nil
}

// Filename returns the resource locator of the mesh, emitted as its URI.
func (m Mesh) Filename() string { return m.filename }

// Size returns the scale factors of the mesh along X, Y and Z.
func (m Mesh) Size() Vector3 { return m.size }

func (m Mesh) Tag() string { return "mesh" }

// Kind returns [KindMesh].
func (m Mesh) Kind() Kind { return KindMesh }

func (m Mesh) SDF() string {
	return sdf.Element("mesh", "uri", m.filename, "scale", m.size.String())
}
