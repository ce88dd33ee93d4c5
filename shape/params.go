// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"cogentcore.org/core/base/reflectx"
)

// Params are the named parameters of a shape, as extracted by a
// document parser. Values may be any Go number type or a decimal
// string for scalars, and a [Vector3], a slice or array of three
// numbers, or a whitespace separated string such as "1 2 3" for
// vectors.
type Params map[string]any

// Reader reads typed values out of [Params] for the constructor of one
// shape kind. It keeps the first error encountered, after which all
// reads return zero values, and it records which parameters were read
// so that [Reader.Done] can reject unexpected ones.
type Reader struct {
	tag    string
	params Params
	read   map[string]bool
	err    error
}

// NewReader returns a new [Reader] for constructing a shape with the given tag.
func NewReader(tag string, params Params) *Reader {
	return &Reader{tag: tag, params: params, read: make(map[string]bool, len(params))}
}

// Err returns the first error encountered, if any.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) fail(param string, err error) {
	if r.err == nil {
		r.err = &ConstructionError{Tag: r.tag, Param: param, Err: err}
	}
}

// lookup marks the parameter as read and returns its value.
func (r *Reader) lookup(name string, required bool) (any, bool) {
	r.read[name] = true
	if r.err != nil {
		return nil, false
	}
	v, ok := r.params[name]
	if !ok || v == nil {
		if required {
			r.fail(name, ErrMissingParam)
		}
		return nil, false
	}
	return v, true
}

// Float returns the named required scalar parameter.
func (r *Reader) Float(name string) float64 {
	v, ok := r.lookup(name, true)
	if !ok {
		return 0
	}
	f, err := ToFloat(v)
	if err != nil {
		r.fail(name, err)
	}
	return f
}

// String returns the named required string parameter.
func (r *Reader) String(name string) string {
	v, ok := r.lookup(name, true)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		r.fail(name, fmt.Errorf("%w: want string, got %T", ErrWrongType, v))
	}
	return s
}

// Vector3 returns the named required vector parameter.
func (r *Reader) Vector3(name string) Vector3 {
	v, ok := r.lookup(name, true)
	if !ok {
		return Vector3{}
	}
	vec, err := ToVector3(v)
	if err != nil {
		r.fail(name, err)
	}
	return vec
}

// OptionalVector3 returns the named vector parameter and whether it was given.
func (r *Reader) OptionalVector3(name string) (Vector3, bool) {
	v, ok := r.lookup(name, false)
	if !ok {
		return Vector3{}, false
	}
	vec, err := ToVector3(v)
	if err != nil {
		r.fail(name, err)
		return Vector3{}, false
	}
	return vec, true
}

// Done returns the first read error, or a [ConstructionError] wrapping
// [ErrUnexpectedParam] for the first (in sorted order) parameter that
// was never read.
func (r *Reader) Done() error {
	if r.err != nil {
		return r.err
	}
	for _, k := range slices.Sorted(maps.Keys(r.params)) {
		if !r.read[k] {
			r.fail(k, ErrUnexpectedParam)
			return r.err
		}
	}
	return nil
}

// ToFloat converts a scalar parameter value to a float64. It accepts
// any integer or float value, including pointers to them and named
// numeric types, json.Number, and decimal strings. Booleans are rejected.
func ToFloat(v any) (float64, error) {
	switch x := v.(type) {
	case string:
		v = strings.TrimSpace(x)
	case interface{ Float64() (float64, error) }: // json.Number
		f, err := x.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrWrongType, err)
		}
		return f, nil
	}
	if reflect.Indirect(reflect.ValueOf(v)).Kind() == reflect.Bool {
		return 0, fmt.Errorf("%w: want number, got %T", ErrWrongType, v)
	}
	f, err := reflectx.ToFloat(v)
	if err != nil {
		return 0, fmt.Errorf("%w: want number, got %T %v", ErrWrongType, v, v)
	}
	return f, nil
}

// ToVector3 converts a vector parameter value to a [Vector3].
func ToVector3(v any) (Vector3, error) {
	switch x := v.(type) {
	case Vector3:
		return x, nil
	case *Vector3:
		if x != nil {
			return *x, nil
		}
	case [3]float64:
		return Vec3(x[0], x[1], x[2]), nil
	case [3]float32:
		return Vec3(float64(x[0]), float64(x[1]), float64(x[2])), nil
	case string:
		return vector3FromSlice(strings.Fields(x))
	case []string:
		return vector3FromSlice(x)
	case []float64:
		return vector3FromSlice(x)
	case []float32:
		return vector3FromSlice(x)
	case []int:
		return vector3FromSlice(x)
	case []int64:
		return vector3FromSlice(x)
	case []any:
		return vector3FromSlice(x)
	}
	return Vector3{}, fmt.Errorf("%w: want 3-vector, got %T", ErrWrongType, v)
}

func vector3FromSlice[T any](s []T) (Vector3, error) {
	if len(s) != 3 {
		return Vector3{}, fmt.Errorf("%w: want 3 components, got %d", ErrWrongType, len(s))
	}
	var c [3]float64
	for i, e := range s {
		f, err := ToFloat(e)
		if err != nil {
			return Vector3{}, fmt.Errorf("component %d: %w", i, err)
		}
		c[i] = f
	}
	return Vec3(c[0], c[1], c[2]), nil
}
