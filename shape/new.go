// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

// New constructs a built-in shape of the given kind from named parameters.
// The parameter names are those of the MuJoCo-style source documents:
//
//	box:      size
//	sphere:   radius
//	cylinder: radius, half_height
//	capsule:  radius, half_height
//	mesh:     filename, size
//	plane:    half_width, half_height, normal (optional)
//
// Missing, unexpected, mistyped or invalid parameters give a [*ConstructionError].
func New(kind Kind, params Params) (Shape, error) {
	r := NewReader(kind.String(), params)
	var (
		s   Shape
		err error
	)
	switch kind {
	case KindBox:
		size := r.Vector3("size")
		if err = r.Done(); err == nil {
			s, err = NewBox(size)
		}
	case KindSphere:
		radius := r.Float("radius")
		if err = r.Done(); err == nil {
			s, err = NewSphere(radius)
		}
	case KindCylinder:
		radius, hh := r.Float("radius"), r.Float("half_height")
		if err = r.Done(); err == nil {
			s, err = NewCylinder(radius, hh)
		}
	case KindCapsule:
		radius, hh := r.Float("radius"), r.Float("half_height")
		if err = r.Done(); err == nil {
			s, err = NewCapsule(radius, hh)
		}
	case KindMesh:
		filename, size := r.String("filename"), r.Vector3("size")
		if err = r.Done(); err == nil {
			s, err = NewMesh(filename, size)
		}
	case KindPlane:
		hw, hh := r.Float("half_width"), r.Float("half_height")
		normal, hasNormal := r.OptionalVector3("normal")
		if err = r.Done(); err == nil {
			if hasNormal {
				s, err = NewPlaneNormal(hw, hh, normal)
			} else {
				s, err = NewPlane(hw, hh)
			}
		}
	default:
		return nil, &UnknownShapeTypeError{Tag: kind.String()}
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
