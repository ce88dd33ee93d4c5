// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package shape defines the primitive geometry used in robot and scene
description documents (box, sphere, cylinder, capsule, mesh and plane)
and serializes each primitive into an SDFormat geometry fragment.

The six built-in kinds form a closed set, enumerated by [Kind] and
constructed by [New]. A string-keyed [Registry] maps tags found by a
document parser to constructors; [Default] holds the built-in kinds and
accepts additional kinds at startup through [Register].

Shapes are immutable values and are safe to share between goroutines.
Cylinder, capsule and plane follow the MuJoCo half-extent convention:
they are parameterized by half lengths, and the full lengths emitted
in SDFormat are derived from them.
*/
package shape

import (
	"math"

	"cogentcore.org/sdfshape/sdf"
)

// Shape is a primitive geometry that can be emitted as an SDFormat fragment.
type Shape interface {

	// Tag returns the registry tag of the kind of shape, e.g. "box".
	Tag() string

	// SDF returns the SDFormat geometry fragment for the shape.
	// It is a pure function of the shape parameters, uses two spaces
	// per nesting level, and ends with a newline.
	SDF() string
}

// Vector3 is a 3D vector with X, Y and Z components.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

// Vec3 returns a new [Vector3] with the given x, y and z components.
func Vec3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// String returns the components separated by single spaces,
// as used in SDFormat and MJCF attributes.
func (v Vector3) String() string {
	return sdf.Floats(v.X, v.Y, v.Z)
}

// Length returns the euclidean length of the vector.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// IsFinite returns whether all components are neither NaN nor infinite.
func (v Vector3) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
