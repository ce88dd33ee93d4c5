// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/sdfshape/sdf"

// Box is a rectangular box centered at the origin.
type Box struct {
	size Vector3
}

// NewBox returns a new [Box] with the given full extents along X, Y and Z,
// which must all be positive.
func NewBox(size Vector3) (Box, error) {
	if !size.IsFinite() || size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return Box{}, invalid("box", "size", "components must be positive and finite, got %v", size)
	}
	return Box{size: size}, nil
}

// Size returns the full extents of the box.
func (b Box) Size() Vector3 { return b.size }

func (b Box) Tag() string { return "box" }

// Kind returns [KindBox].
func (b Box) Kind() Kind { return KindBox }

func (b Box) SDF() string {
	return sdf.Element("box", "size", b.size.String())
}
