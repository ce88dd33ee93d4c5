// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"cogentcore.org/core/base/errors"
)

var (
	// ErrMissingParam is wrapped by a [ConstructionError] when a
	// required parameter is absent.
	ErrMissingParam = errors.New("missing parameter")

	// ErrUnexpectedParam is wrapped by a [ConstructionError] when a
	// parameter is given that the kind does not take.
	ErrUnexpectedParam = errors.New("unexpected parameter")

	// ErrWrongType is wrapped by a [ConstructionError] when a parameter
	// value cannot be converted to the type the kind needs.
	ErrWrongType = errors.New("wrong parameter type")

	// ErrInvalidValue is wrapped by a [ConstructionError] when a
	// parameter value does not describe valid geometry.
	ErrInvalidValue = errors.New("invalid parameter value")

	// ErrTagMismatch is wrapped by a [ConstructionError] when a
	// registered constructor returns a shape whose tag differs from
	// the tag it was registered under.
	ErrTagMismatch = errors.New("constructed shape has a different tag")
)

// UnknownShapeTypeError is returned when resolving a tag that is not registered.
type UnknownShapeTypeError struct {

	// Tag is the tag that was not found.
	Tag string

	// Suggestion is the most similar registered tag, if any is close.
	Suggestion string
}

func (e *UnknownShapeTypeError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown shape type %q (did you mean %q?)", e.Tag, e.Suggestion)
	}
	return fmt.Sprintf("unknown shape type %q", e.Tag)
}

// ConstructionError is returned when a shape cannot be constructed
// from the given parameters.
type ConstructionError struct {

	// Tag is the tag of the shape being constructed.
	Tag string

	// Param is the parameter at fault, if the failure is specific to one.
	Param string

	// Err is the underlying cause, typically wrapping one of the
	// Err* sentinel values of this package.
	Err error
}

func (e *ConstructionError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("constructing %q: parameter %q: %v", e.Tag, e.Param, e.Err)
	}
	return fmt.Sprintf("constructing %q: %v", e.Tag, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// DuplicateTagError is returned when registering a tag that is already registered.
type DuplicateTagError struct {
	Tag string
}

func (e *DuplicateTagError) Error() string {
	return fmt.Sprintf("shape type %q is already registered", e.Tag)
}

// invalid returns a [ConstructionError] for an invalid parameter value.
func invalid(tag, param, format string, args ...any) error {
	return &ConstructionError{Tag: tag, Param: param, Err: fmt.Errorf("%w: "+format, append([]any{ErrInvalidValue}, args...)...)}
}

// checkPositive returns an error unless v is finite and greater than zero.
func checkPositive(tag, param string, v float64) error {
	if !isFinite(v) || v <= 0 {
		return invalid(tag, param, "must be positive and finite, got %v", v)
	}
	return nil
}
