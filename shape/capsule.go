// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/sdfshape/sdf"

// Capsule is a cylinder with hemispherical caps of the same radius,
// centered at the origin with its axis along Z. The half height is that
// of the cylindrical part, excluding the caps, as in MuJoCo.
type Capsule struct {
	radius     float64
	halfHeight float64
}

// NewCapsule returns a new [Capsule] with the given positive radius
// and half height.
func NewCapsule(radius, halfHeight float64) (Capsule, error) {
	if err := checkPositive("capsule", "radius", radius); err != nil {
		return Capsule{}, err
	}
	if err := checkPositive("capsule", "half_height", halfHeight); err != nil {
		return Capsule{}, err
	}
	return Capsule{radius: radius, halfHeight: halfHeight}, nil
}

// Radius returns the radius of the capsule and its caps.
func (c Capsule) Radius() float64 { return c.radius }

// HalfHeight returns half of the length of the cylindrical part.
func (c Capsule) HalfHeight() float64 { return c.halfHeight }

// Length returns the length of the cylindrical part, excluding the caps.
func (c Capsule) Length() float64 { return 2 * c.halfHeight }

func (c Capsule) Tag() string { return "capsule" }

// Kind returns [KindCapsule].
func (c Capsule) Kind() Kind { return KindCapsule }

func (c Capsule) SDF() string {
	return sdf.Element("capsule", "radius", sdf.Float(c.radius), "length", sdf.Float(c.Length()))
}
