// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cone is a custom shape used to exercise registry extension.
type cone struct {
	radius, length float64
}

func (c cone) Tag() string { return "cone" }

func (c cone) SDF() string {
	return fmt.Sprintf("<cone>\n  <radius>%g</radius>\n  <length>%g</length>\n</cone>\n", c.radius, c.length)
}

func newCone(params Params) (Shape, error) {
	r := NewReader("cone", params)
	c := cone{radius: r.Float("radius"), length: r.Float("length")}
	if err := r.Done(); err != nil {
		return nil, err
	}
	return c, nil
}

var validParams = map[string]Params{
	"box":      {"size": []float64{1, 2, 3}},
	"sphere":   {"radius": 0.5},
	"cylinder": {"radius": 1, "half_height": 2},
	"capsule":  {"radius": 1, "half_height": 2},
	"mesh":     {"filename": "link.stl", "size": []any{1.0, 1.0, 1.0}},
	"plane":    {"half_width": 3, "half_height": 4},
	"cone":     {"radius": 1, "length": 2},
}

func TestResolveTags(t *testing.T) {
	rg := NewBuiltinRegistry()
	require.NoError(t, rg.Register("cone", newCone))
	assert.Equal(t, []string{"box", "sphere", "cylinder", "capsule", "mesh", "plane", "cone"}, rg.Tags())
	for _, tag := range rg.Tags() {
		s, err := rg.Resolve(tag, validParams[tag])
		require.NoError(t, err, tag)
		assert.Equal(t, tag, s.Tag())
		assert.True(t, rg.Has(tag))
	}
}

func TestResolveDefault(t *testing.T) {
	s, err := Resolve("box", Params{"size": "1 2 3"})
	require.NoError(t, err)
	assert.Equal(t, "<box>\n  <size>1 2 3</size>\n</box>\n", s.SDF())
	assert.Equal(t, []string{"box", "sphere", "cylinder", "capsule", "mesh", "plane"}, Tags())
}

func TestResolveUnknown(t *testing.T) {
	rg := NewBuiltinRegistry()
	s, err := rg.Resolve("nonexistent", Params{})
	assert.Nil(t, s)
	var ue *UnknownShapeTypeError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "nonexistent", ue.Tag)
	assert.Equal(t, "", ue.Suggestion)
	assert.Equal(t, `unknown shape type "nonexistent"`, err.Error())

	_, err = rg.Resolve("cylindre", nil)
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "cylinder", ue.Suggestion)
	assert.Equal(t, `unknown shape type "cylindre" (did you mean "cylinder"?)`, err.Error())

	_, err = NewRegistry().Resolve("box", nil)
	require.ErrorAs(t, err, &ue)
}

func TestResolveConstructionError(t *testing.T) {
	rg := NewBuiltinRegistry()
	_, err := rg.Resolve("cylinder", Params{"radius": 1})
	var ce *ConstructionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "cylinder", ce.Tag)
	assert.Equal(t, "half_height", ce.Param)
	assert.ErrorIs(t, err, ErrMissingParam)
	assert.Equal(t, `constructing "cylinder": parameter "half_height": missing parameter`, err.Error())

	_, err = rg.Resolve("sphere", Params{"radius": 1, "half_height": 2})
	assert.ErrorIs(t, err, ErrUnexpectedParam)
}

func TestRegisterDuplicate(t *testing.T) {
	rg := NewBuiltinRegistry()
	err := rg.Register("box", newCone)
	var de *DuplicateTagError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "box", de.Tag)

	// the first registration is kept
	s, err := rg.Resolve("box", validParams["box"])
	require.NoError(t, err)
	assert.IsType(t, Box{}, s)

	require.NoError(t, rg.Register("cone", newCone))
	assert.ErrorAs(t, rg.Register("cone", newCone), &de)
	assert.Len(t, rg.Tags(), 7)

	assert.Panics(t, func() { rg.MustRegister("sphere", newCone) })
}

func TestRegisterInvalid(t *testing.T) {
	rg := NewRegistry()
	assert.Error(t, rg.Register("", newCone))
	assert.Error(t, rg.Register("cone", nil))
	assert.Empty(t, rg.Tags())
}

func TestResolveWrapsConstructorErrors(t *testing.T) {
	rg := NewRegistry()
	rg.MustRegister("broken", func(Params) (Shape, error) { return nil, fmt.Errorf("no luck") })
	rg.MustRegister("empty", func(Params) (Shape, error) { return nil, nil })
	rg.MustRegister("liar", func(Params) (Shape, error) { return cone{1, 1}, nil })

	var ce *ConstructionError
	_, err := rg.Resolve("broken", nil)
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "broken", ce.Tag)

	_, err = rg.Resolve("empty", nil)
	assert.ErrorAs(t, err, &ce)

	_, err = rg.Resolve("liar", nil)
	assert.ErrorIs(t, err, ErrTagMismatch)
}

func TestResolveConcurrent(t *testing.T) {
	rg := NewBuiltinRegistry()
	want := "<capsule>\n  <radius>1</radius>\n  <length>4</length>\n</capsule>\n"
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i == 0 {
				assert.NoError(t, rg.Register("cone", newCone))
			}
			for range 100 {
				s, err := rg.Resolve("capsule", validParams["capsule"])
				if assert.NoError(t, err) {
					assert.Equal(t, want, s.SDF())
				}
			}
		}()
	}
	wg.Wait()
	assert.True(t, rg.Has("cone"))
}
