// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustShape[T Shape](t *testing.T) func(T, error) T {
	return func(s T, err error) T {
		t.Helper()
		require.NoError(t, err)
		return s
	}
}

func TestSDF(t *testing.T) {
	tests := []struct {
		shape Shape
		want  string
	}{
		{mustShape[Box](t)(NewBox(Vec3(1, 2, 3))), "<box>\n  <size>1 2 3</size>\n</box>\n"},
		{mustShape[Sphere](t)(NewSphere(0.5)), "<sphere>\n  <radius>0.5</radius>\n</sphere>\n"},
		{mustShape[Cylinder](t)(NewCylinder(1, 2)), "<cylinder>\n  <radius>1</radius>\n  <length>4</length>\n</cylinder>\n"},
		{mustShape[Capsule](t)(NewCapsule(0.25, 0.75)), "<capsule>\n  <radius>0.25</radius>\n  <length>1.5</length>\n</capsule>\n"},
		{mustShape[Mesh](t)(NewMesh("package://robot/meshes/link0.stl", Vec3(1, 1, 0.001))), "<mesh>\n  <uri>package://robot/meshes/link0.stl</uri>\n  <scale>1 1 0.001</scale>\n</mesh>\n"},
		{mustShape[Plane](t)(NewPlane(3, 4)), "<plane>\n  <size>6 8</size>\n</plane>\n"},
	}
	for _, tt := range tests {
		t.Run(tt.shape.Tag(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.shape.SDF())
			assert.Equal(t, tt.shape.SDF(), tt.shape.SDF())
		})
	}
}

func TestSDFDeterministic(t *testing.T) {
	a := mustShape[Cylinder](t)(NewCylinder(0.1, 0.3))
	b := mustShape[Cylinder](t)(NewCylinder(0.1, 0.3))
	assert.Equal(t, a.SDF(), b.SDF())
	assert.Equal(t, a, b)
	assert.Equal(t, "<cylinder>\n  <radius>0.1</radius>\n  <length>0.6</length>\n</cylinder>\n", a.SDF())
}

func TestSDFLargeValues(t *testing.T) {
	b := mustShape[Box](t)(NewBox(Vec3(1000000, 1234567, 0.5)))
	assert.Equal(t, "<box>\n  <size>1000000 1234567 0.5</size>\n</box>\n", b.SDF())
}

func TestMeshEscapesURI(t *testing.T) {
	m := mustShape[Mesh](t)(NewMesh("meshes/a&b<1>.obj", Vec3(1, 2, 3)))
	assert.Equal(t, "<mesh>\n  <uri>meshes/a&amp;b&lt;1&gt;.obj</uri>\n  <scale>1 2 3</scale>\n</mesh>\n", m.SDF())
	assert.Equal(t, "meshes/a&b<1>.obj", m.Filename())

	// other bytes are emitted unchanged
	m = mustShape[Mesh](t)(NewMesh("it's\ta\xffb.stl", Vec3(1, 1, 1)))
	assert.Equal(t, "<mesh>\n  <uri>it's\ta\xffb.stl</uri>\n  <scale>1 1 1</scale>\n</mesh>\n", m.SDF())
}

func TestDerived(t *testing.T) {
	c := mustShape[Cylinder](t)(NewCylinder(1, 2))
	assert.Equal(t, 4.0, c.Length())
	assert.Equal(t, 2.0, c.HalfHeight())

	cp := mustShape[Capsule](t)(NewCapsule(1, 2))
	assert.Equal(t, 4.0, cp.Length())

	p := mustShape[Plane](t)(NewPlane(3, 4))
	assert.Equal(t, 6.0, p.Width())
	assert.Equal(t, 8.0, p.Height())
	_, has := p.Normal()
	assert.False(t, has)
}

func TestPlaneNormal(t *testing.T) {
	p := mustShape[Plane](t)(NewPlaneNormal(1, 2, Vec3(0, 0, 1)))
	n, has := p.Normal()
	assert.True(t, has)
	assert.Equal(t, Vec3(0, 0, 1), n)
	assert.Equal(t, "<plane>\n  <size>2 4</size>\n</plane>\n", p.SDF())

	_, err := NewPlaneNormal(1, 2, Vec3(0, 0, 0))
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestValidation(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)
	tests := []struct {
		name  string
		param string
		err   error
	}{
		{"box zero", "size", errOf(NewBox(Vec3(1, 0, 1)))},
		{"box nan", "size", errOf(NewBox(Vec3(1, nan, 1)))},
		{"sphere negative", "radius", errOf(NewSphere(-1))},
		{"sphere inf", "radius", errOf(NewSphere(inf))},
		{"cylinder radius", "radius", errOf(NewCylinder(0, 1))},
		{"cylinder half height", "half_height", errOf(NewCylinder(1, -2))},
		{"capsule half height", "half_height", errOf(NewCapsule(1, 0))},
		{"mesh filename", "filename", errOf(NewMesh("  ", Vec3(1, 1, 1)))},
		{"mesh zero scale", "size", errOf(NewMesh("a.stl", Vec3(1, 0, 1)))},
		{"plane half width", "half_width", errOf(NewPlane(0, 1))},
		{"plane half height", "half_height", errOf(NewPlane(1, nan))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ce *ConstructionError
			require.ErrorAs(t, tt.err, &ce)
			assert.Equal(t, tt.param, ce.Param)
			assert.ErrorIs(t, tt.err, ErrInvalidValue)
		})
	}
}

func errOf(_ any, err error) error {
	return err
}

func TestMeshNegativeScale(t *testing.T) {
	m, err := NewMesh("a.stl", Vec3(-1, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, "<mesh>\n  <uri>a.stl</uri>\n  <scale>-1 1 1</scale>\n</mesh>\n", m.SDF())
}

func TestKind(t *testing.T) {
	assert.Len(t, KindValues(), 6)
	for _, k := range KindValues() {
		assert.True(t, k.IsValid())
		pk, ok := ParseKind(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, pk)
	}
	_, ok := ParseKind("cone")
	assert.False(t, ok)
	assert.Equal(t, "Kind(17)", Kind(17).String())
	assert.False(t, Kind(17).IsValid())
}

func TestNew(t *testing.T) {
	params := map[Kind]Params{
		KindBox:      {"size": []any{1, 2, 3}},
		KindSphere:   {"radius": 1},
		KindCylinder: {"radius": 1, "half_height": 2},
		KindCapsule:  {"radius": 1, "half_height": 2},
		KindMesh:     {"filename": "m.obj", "size": "1 1 1"},
		KindPlane:    {"half_width": 1, "half_height": 1, "normal": [3]float64{0, 0, 1}},
	}
	for _, k := range KindValues() {
		s, err := New(k, params[k])
		require.NoError(t, err, k.String())
		assert.Equal(t, k.String(), s.Tag())
		assert.Equal(t, k, s.(interface{ Kind() Kind }).Kind())
	}

	_, err := New(Kind(42), nil)
	var ue *UnknownShapeTypeError
	assert.ErrorAs(t, err, &ue)
}

func TestNewParamErrors(t *testing.T) {
	tests := []struct {
		name   string
		kind   Kind
		params Params
		param  string
		err    error
	}{
		{"missing", KindSphere, Params{}, "radius", ErrMissingParam},
		{"nil value", KindSphere, Params{"radius": nil}, "radius", ErrMissingParam},
		{"extra", KindSphere, Params{"radius": 1, "color": "red"}, "color", ErrUnexpectedParam},
		{"wrong type", KindSphere, Params{"radius": true}, "radius", ErrWrongType},
		{"short vector", KindBox, Params{"size": []float64{1, 2}}, "size", ErrWrongType},
		{"bad component", KindBox, Params{"size": "1 x 3"}, "size", ErrWrongType},
		{"filename type", KindMesh, Params{"filename": 3, "size": "1 1 1"}, "filename", ErrWrongType},
		{"invalid", KindCylinder, Params{"radius": 1, "half_height": 0}, "half_height", ErrInvalidValue},
		{"bad normal", KindPlane, Params{"half_width": 1, "half_height": 1, "normal": "0 0"}, "normal", ErrWrongType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.kind, tt.params)
			assert.Nil(t, s)
			var ce *ConstructionError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.kind.String(), ce.Tag)
			assert.Equal(t, tt.param, ce.Param)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestVector3(t *testing.T) {
	v := Vec3(3, 4, 0)
	assert.Equal(t, 5.0, v.Length())
	assert.Equal(t, "3 4 0", v.String())
	assert.True(t, v.IsFinite())
	assert.False(t, Vec3(0, math.Inf(-1), 0).IsFinite())
}
