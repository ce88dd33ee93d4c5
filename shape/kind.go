// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "fmt"

// Kind is one of the built-in primitive shape kinds.
type Kind int32

const (
	// KindBox is a box given by its full extents.
	KindBox Kind = iota

	// KindSphere is a sphere given by its radius.
	KindSphere

	// KindCylinder is a cylinder given by its radius and half height.
	KindCylinder

	// KindCapsule is a capsule given by its radius and the half height
	// of its cylindrical part.
	KindCapsule

	// KindMesh is a mesh resource scaled by a 3D factor.
	KindMesh

	// KindPlane is a plane given by its half width and half height.
	KindPlane

	kindN
)

var kindTags = [kindN]string{"box", "sphere", "cylinder", "capsule", "mesh", "plane"}

// String returns the tag of the kind.
func (k Kind) String() string {
	if k < 0 || k >= kindN {
		return fmt.Sprintf("Kind(%d)", int32(k))
	}
	return kindTags[k]
}

// IsValid returns whether the kind is one of the built-in kinds.
func (k Kind) IsValid() bool {
	return k >= 0 && k < kindN
}

// KindValues returns all built-in kinds in declaration order.
func KindValues() []Kind {
	ks := make([]Kind, kindN)
	for i := range ks {
		ks[i] = Kind(i)
	}
	return ks
}

// ParseKind returns the built-in kind with the given tag.
func ParseKind(tag string) (Kind, bool) {
	for i, t := range kindTags {
		if t == tag {
			return Kind(i), true
		}
	}
	return -1, false
}
