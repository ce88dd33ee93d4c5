// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sdf

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// DefaultVersion is the SDFormat version targeted when none is given.
const DefaultVersion = "1.9"

// minVersions holds the first SDFormat version that defines each
// geometry element. Elements not listed here exist in every version.
var minVersions = map[string]*semver.Version{
	"capsule":   semver.MustParse("1.8"),
	"ellipsoid": semver.MustParse("1.8"),
}

// ParseVersion parses an SDFormat version such as "1.9" or "1.10".
// An empty string gives [DefaultVersion].
func ParseVersion(s string) (*semver.Version, error) {
	if s == "" {
		s = DefaultVersion
	}
	v, err := semver.NewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("sdf.ParseVersion: invalid SDFormat version %q: %w", s, err)
	}
	return v, nil
}

// Supports returns whether SDFormat version v defines the geometry
// element with the given tag. Tags it knows nothing about are assumed
// to be supported. A nil version is treated as [DefaultVersion].
func Supports(tag string, v *semver.Version) bool {
	first, ok := minVersions[tag]
	if !ok {
		return true
	}
	if v == nil {
		v = semver.MustParse(DefaultVersion)
	}
	return !v.LessThan(first)
}

// UnsupportedError is returned when a geometry element is not
// defined by the targeted SDFormat version.
type UnsupportedError struct {
	Tag     string
	Version *semver.Version
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("<%s> requires SDFormat %s or later, targeting %s", e.Tag, minVersions[e.Tag].Original(), e.Version.Original())
}

// CheckSupported returns an [*UnsupportedError] if version v does not
// define the geometry element with the given tag.
func CheckSupported(tag string, v *semver.Version) error {
	if Supports(tag, v) {
		return nil
	}
	if v == nil {
		v = semver.MustParse(DefaultVersion)
	}
	return &UnsupportedError{Tag: tag, Version: v}
}
