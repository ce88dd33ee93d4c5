// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/sdfshape/sdf"

// Plane is a finite plane centered at the origin. Following MuJoCo,
// it is parameterized by its half width and half height.
type Plane struct {
	halfWidth  float64
	halfHeight float64
	normal     Vector3
	hasNormal  bool
}

// NewPlane returns a new [Plane] with the given positive half width and
// half height and no explicit normal.
func NewPlane(halfWidth, halfHeight float64) (Plane, error) {
	if err := checkPositive("plane", "half_width", halfWidth); err != nil {
		return Plane{}, err
	}
	if err := checkPositive("plane", "half_height", halfHeight); err != nil {
		return Plane{}, err
	}
	return Plane{halfWidth: halfWidth, halfHeight: halfHeight}, nil
}

// NewPlaneNormal is like [NewPlane] but also records a normal, which
// must be finite and of non-zero length.
func NewPlaneNormal(halfWidth, halfHeight float64, normal Vector3) (Plane, error) {
	p, err := NewPlane(halfWidth, halfHeight)
	if err != nil {
		return Plane{}, err
	}
	if !normal.IsFinite() || normal.Length() == 0 {
		return Plane{}, invalid("plane", "normal", "must be finite and non-zero, got %v", normal)
	}
	p.normal = normal
	p.hasNormal = true
	return p, nil
}

// HalfWidth returns half of the width of the plane.
func (p Plane) HalfWidth() float64 { return p.halfWidth }

// HalfHeight returns half of the height of the plane.
func (p Plane) HalfHeight() float64 { return p.halfHeight }

// Width returns the full width of the plane.
func (p Plane) Width() float64 { return 2 * p.halfWidth }

// Height returns the full height of the plane.
func (p Plane) Height() float64 { return 2 * p.halfHeight }

// Normal returns the normal of the plane and whether one was given.
func (p Plane) Normal() (Vector3, bool) { return p.normal, p.hasNormal }

func (p Plane) Tag() string { return "plane" }

// Kind returns [KindPlane].
func (p Plane) Kind() Kind { return KindPlane }

// SDF returns the plane fragment. The normal is not emitted; SDFormat
// defaults it to +Z and the enclosing pose orients the plane.
func (p Plane) SDF() string {
	return sdf.Element("plane", "size", sdf.Floats(p.Width(), p.Height()))
}
