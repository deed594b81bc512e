/*
 * Copyright (c) 2011 jamra.source@gmail.com
 *
 * Licensed under the Apache License, Version 2.0 (the "License"); you may not
 * use this file except in compliance with the License. You may obtain a copy of
 * the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
 * WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
 * License for the specific language governing permissions and limitations under
 * the License.
 */

package gofst

import (
	"iter"

	"github.com/jamra/gofst/internal/fst"
)

// builderConfig is assembled from the BuilderOption values passed to
// NewMapBuilder/NewSetBuilder.
type builderConfig struct {
	registerCapacity int
}

// BuilderOption configures a MapBuilder or SetBuilder at construction
// time. There is no ambient configuration file for this library --
// every knob is a constructor argument, in the small-interface style
// internal/fst's own constructors use.
type BuilderOption func(*builderConfig)

// WithRegisterCapacity bounds the number of distinct structural
// fingerprints the builder's state register remembers (§4.3). The
// default is internal/fst.DefaultRegisterCapacity; a smaller bound
// trades suffix-sharing for a lower memory ceiling on very large
// builds.
func WithRegisterCapacity(capacity int) BuilderOption {
	return func(c *builderConfig) { c.registerCapacity = capacity }
}

func newConfig(opts []BuilderOption) builderConfig {
	c := builderConfig{registerCapacity: fst.DefaultRegisterCapacity}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// MapBuilder streams key/value pairs into a new Map image. Keys must
// be inserted in strictly ascending order; duplicate or out-of-order
// keys return ErrDuplicateKey or ErrOrder without corrupting any
// previously inserted state.
type MapBuilder struct {
	b *fst.Builder
}

// NewMapBuilder creates a MapBuilder.
func NewMapBuilder(opts ...BuilderOption) *MapBuilder {
	c := newConfig(opts)
	return &MapBuilder{b: fst.NewBuilderWithCapacity(c.registerCapacity)}
}

// Insert adds (key, value) to the map under construction.
func (mb *MapBuilder) Insert(key []byte, value uint64) error {
	return mb.b.Push(key, value)
}

// Len returns the number of entries inserted so far.
func (mb *MapBuilder) Len() int { return mb.b.Len() }

// Finish completes construction and delivers the image to path (or
// returns it directly when path is MemorySentinel or empty). The
// builder must not be used afterward.
func (mb *MapBuilder) Finish(path string) ([]byte, error) {
	data, err := mb.b.Finish()
	if err != nil {
		return nil, err
	}
	return fst.WriteSink(path, data)
}

// SetBuilder streams keys into a new Set image. Sets have no explicit
// value; each key is recorded with the implicit zero output.
type SetBuilder struct {
	b *fst.Builder
}

// NewSetBuilder creates a SetBuilder.
func NewSetBuilder(opts ...BuilderOption) *SetBuilder {
	c := newConfig(opts)
	return &SetBuilder{b: fst.NewBuilderWithCapacity(c.registerCapacity)}
}

// Insert adds key to the set under construction.
func (sb *SetBuilder) Insert(key []byte) error {
	return sb.b.Push(key, 0)
}

// Len returns the number of keys inserted so far.
func (sb *SetBuilder) Len() int { return sb.b.Len() }

// Finish completes construction and delivers the image to path (or
// returns it directly when path is MemorySentinel or empty).
func (sb *SetBuilder) Finish(path string) ([]byte, error) {
	data, err := sb.b.Finish()
	if err != nil {
		return nil, err
	}
	return fst.WriteSink(path, data)
}

// MemorySentinel is the path value that instructs Build/BuildSet (and
// every set-algebra operator) to return the finished image as an
// owned byte slice instead of writing it to disk.
const MemorySentinel = fst.MemorySentinel

// Build constructs a Map image in one pass from items, an iterator
// over (key, value) pairs supplied in strictly ascending key order.
func Build(path string, items iter.Seq2[[]byte, uint64], opts ...BuilderOption) ([]byte, error) {
	mb := NewMapBuilder(opts...)
	for k, v := range items {
		if err := mb.Insert(k, v); err != nil {
			return nil, err
		}
	}
	return mb.Finish(path)
}

// BuildSet constructs a Set image in one pass from items, an iterator
// over keys supplied in strictly ascending order.
func BuildSet(path string, items iter.Seq[[]byte], opts ...BuilderOption) ([]byte, error) {
	sb := NewSetBuilder(opts...)
	for k := range items {
		if err := sb.Insert(k); err != nil {
			return nil, err
		}
	}
	return sb.Finish(path)
}
