// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/sdfshape/sdf"

// Cylinder is a cylinder centered at the origin with its axis along Z.
// Following MuJoCo, it is parameterized by its half height.
type Cylinder struct {
	radius     float64
	halfHeight float64
}

// NewCylinder returns a new [Cylinder] with the given positive radius
// and half height.
func NewCylinder(radius, halfHeight float64) (Cylinder, error) {
	if err := checkPositive("cylinder", "radius", radius); err != nil {
		return Cylinder{}, err
	}
	if err := checkPositive("cylinder", "half_height", halfHeight); err != nil {
		return Cylinder{}, err
	}
	return Cylinder{radius: radius, halfHeight: halfHeight}, nil
}

// Radius returns the radius of the cylinder.
func (c Cylinder) Radius() float64 { return c.radius }

// HalfHeight returns half of the length of the cylinder.
func (c Cylinder) HalfHeight() float64 { return c.halfHeight }

// Length returns the full length of the cylinder along its axis.
func (c Cylinder) Length() float64 { return 2 * c.halfHeight }

func (c Cylinder) Tag() string { return "cylinder" }

// Kind returns [KindCylinder].
func (c Cylinder) Kind() Kind { return KindCylinder }

func (c Cylinder) SDF() string {
	return sdf.Element("cylinder", "radius", sdf.Float(c.radius), "length", sdf.Float(c.Length()))
}
