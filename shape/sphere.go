// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/sdfshape/sdf"

// Sphere is a sphere centered at the origin.
type Sphere struct {
	radius float64
}

// NewSphere returns a new [Sphere] with the given positive radius.
func NewSphere(radius float64) (Sphere, error) {
	if err := checkPositive("sphere", "radius", radius); err != nil {
		return Sphere{}, err
	}
	return Sphere{radius: radius}, nil
}

// Radius returns the radius of the sphere.
func (s Sphere) Radius() float64 { return s.radius }

func (s Sphere) Tag() string { return "sphere" }

// Kind returns [KindSphere].
func (s Sphere) Kind() Kind { return KindSphere }

func (s Sphere) SDF() string {
	return sdf.Element("sphere", "radius", sdf.Float(s.radius))
}
