// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/keylist"
)

// Constructor constructs a shape from named parameters. A constructor
// registered under a tag must return shapes whose [Shape.Tag] is that tag.
type Constructor func(params Params) (Shape, error)

// Registry maps shape tags to constructors. Tags are unique: registering
// a tag twice fails with a [*DuplicateTagError] and keeps the first
// constructor. Tags are kept in registration order.
// A Registry is safe for concurrent use, including registration after
// resolution has started.
type Registry struct {
	mu    sync.RWMutex
	ctors keylist.List[string, Constructor]
}

// NewRegistry returns a new empty [Registry].
func NewRegistry() *Registry {
	return &Registry{}
}

// NewBuiltinRegistry returns a new [Registry] holding the constructors
// of all built-in kinds, in [Kind] order.
func NewBuiltinRegistry() *Registry {
	rg := NewRegistry()
	for _, k := range KindValues() {
		rg.MustRegister(k.String(), builtin(k))
	}
	return rg
}

func builtin(k Kind) Constructor {
	return func(params Params) (Shape, error) {
		return New(k, params)
	}
}

// Register associates the given tag with the given constructor.
// It returns a [*DuplicateTagError] if the tag is already registered.
func (rg *Registry) Register(tag string, ctor Constructor) error {
	if tag == "" {
		return errors.New("shape.Registry.Register: tag must not be empty")
	}
	if ctor == nil {
		return fmt.Errorf("shape.Registry.Register: nil constructor for tag %q", tag)
	}
	rg.mu.Lock()
	defer rg.mu.Unlock()
	if err := rg.ctors.Add(tag, ctor); err != nil {
		return &DuplicateTagError{Tag: tag}
	}
	slog.Debug("shape.Registry.Register: registered shape type", "tag", tag)
	return nil
}

// MustRegister is like [Registry.Register] but panics on error.
// It is intended for registration during program initialization.
func (rg *Registry) MustRegister(tag string, ctor Constructor) {
	if err := rg.Register(tag, ctor); err != nil {
		panic(err)
	}
}

// Has returns whether the given tag is registered.
func (rg *Registry) Has(tag string) bool {
	rg.mu.RLock()
	defer rg.mu.RUnlock()
	_, has := rg.ctors.AtTry(tag)
	return has
}

// Tags returns the registered tags in registration order.
func (rg *Registry) Tags() []string {
	rg.mu.RLock()
	defer rg.mu.RUnlock()
	return slices.Clone(rg.ctors.Keys)
}

// Resolve constructs a shape for the given tag from the given parameters.
// It returns an [*UnknownShapeTypeError] if the tag is not registered and
// a [*ConstructionError] if the constructor fails or returns a shape with
// a different tag.
func (rg *Registry) Resolve(tag string, params Params) (Shape, error) {
	rg.mu.RLock()
	ctor, has := rg.ctors.AtTry(tag)
	var tags []string
	if !has {
		tags = slices.Clone(rg.ctors.Keys)
	}
	rg.mu.RUnlock()
	if !has {
		return nil, &UnknownShapeTypeError{Tag: tag, Suggestion: suggest(tag, tags)}
	}
	s, err := ctor(params)
	if err != nil {
		var ce *ConstructionError
		if errors.As(err, &ce) {
			return nil, err
		}
		return nil, &ConstructionError{Tag: tag, Err: err}
	}
	if s == nil {
		return nil, &ConstructionError{Tag: tag, Err: errors.New("constructor returned no shape")}
	}
	if s.Tag() != tag {
		return nil, &ConstructionError{Tag: tag, Err: fmt.Errorf("%w: %q", ErrTagMismatch, s.Tag())}
	}
	return s, nil
}

// Default is the process-wide registry used by the package-level
// functions. It holds all built-in kinds.
var Default = NewBuiltinRegistry()

// Register associates the given tag with the given constructor in the
// [Default] registry. See [Registry.Register].
func Register(tag string, ctor Constructor) error {
	return Default.Register(tag, ctor)
}

// Resolve constructs a shape through the [Default] registry.
// See [Registry.Resolve].
func Resolve(tag string, params Params) (Shape, error) {
	return Default.Resolve(tag, params)
}

// Tags returns the tags of the [Default] registry in registration order.
func Tags() []string {
	return Default.Tags()
}
