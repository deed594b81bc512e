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

// Map is an immutable, ordered byte-string-to-uint64 store backed by a
// finite-state transducer image. A Map is safe for concurrent use by
// any number of goroutines -- every method only reads the underlying
// image.
type Map struct {
	r *fst.Reader
}

// OpenMap parses data as a Map image. data is not copied; the caller
// must keep it alive for as long as the Map (or anything derived from
// it) is in use.
func OpenMap(data []byte) (*Map, error) {
	r, err := fst.NewReader(data)
	if err != nil {
		return nil, err
	}
	return &Map{r: r}, nil
}

// Len returns the number of keys in the map.
func (m *Map) Len() int { return m.r.Len() }

// Get looks up key, reporting false if it is absent.
func (m *Map) Get(key []byte) (uint64, bool) {
	v, ok, err := m.r.Get(key)
	if err != nil {
		return 0, false
	}
	return v, ok
}

// GetOr looks up key, returning dflt if it is absent.
func (m *Map) GetOr(key []byte, dflt uint64) uint64 {
	if v, ok := m.Get(key); ok {
		return v
	}
	return dflt
}

// TryGet looks up key, returning ErrKey if it is absent -- the
// non-panicking counterpart to MustGet.
func (m *Map) TryGet(key []byte) (uint64, error) {
	v, ok, err := m.r.Get(key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrKey
	}
	return v, nil
}

// MustGet looks up key, panicking if it is absent. Intended for
// callers that have already established the key's presence (e.g. by
// iterating the map itself).
func (m *Map) MustGet(key []byte) uint64 {
	v, err := m.TryGet(key)
	if err != nil {
		panic(err)
	}
	return v
}

// Contains reports whether key is present.
func (m *Map) Contains(key []byte) bool {
	ok, err := m.r.Contains(key)
	return err == nil && ok
}

// All iterates every (key, value) pair in ascending key order.
func (m *Map) All() iter.Seq2[[]byte, uint64] {
	return func(yield func([]byte, uint64) bool) {
		it, err := m.r.Iter()
		if err != nil {
			return
		}
		iterateMap(it, yield)
	}
}

// Keys iterates every key in ascending order.
func (m *Map) Keys() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values iterates every value in key-ascending order.
func (m *Map) Values() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Range iterates the (key, value) pairs whose keys satisfy lower and upper.
func (m *Map) Range(lower, upper Bound) iter.Seq2[[]byte, uint64] {
	return func(yield func([]byte, uint64) bool) {
		it, err := m.r.Range(lower, upper)
		if err != nil {
			return
		}
		iterateMap(it, yield)
	}
}

// Search iterates the (key, value) pairs within [lower, upper] that a
// drives to a match, pruning subtrees a.CanMatch reports as dead. A
// nil automaton behaves like Always().
func (m *Map) Search(a Automaton, lower, upper Bound) iter.Seq2[[]byte, uint64] {
	return func(yield func([]byte, uint64) bool) {
		it, err := m.r.Search(a, lower, upper)
		if err != nil {
			return
		}
		iterateMap(it, yield)
	}
}

func iterateMap(it *fst.Iterator, yield func([]byte, uint64) bool) {
	for {
		k, v := it.Current()
		if k != nil {
			if !yield(k, v) {
				return
			}
		}
		if err := it.Next(); err != nil {
			return
		}
	}
}

// operandIterators opens a fresh, unbounded iterator over each of
// others prefixed by m itself, for feeding into the streaming merge.
func (m *Map) operandIterators(others []*Map) ([]*fst.Iterator, error) {
	all := make([]*Map, 0, len(others)+1)
	all = append(all, m)
	all = append(all, others...)
	iters := make([]*fst.Iterator, len(all))
	for i, op := range all {
		it, err := op.r.Iter()
		if err != nil {
			return nil, err
		}
		iters[i] = it
	}
	return iters, nil
}

func (m *Map) setAlgebra(path string, op fst.SetOp, policy Policy, others []*Map) ([]byte, error) {
	iters, err := m.operandIterators(others)
	if err != nil {
		return nil, err
	}
	b := fst.NewBuilder()
	if err := fst.MergeSetAlgebra(b, op, policy, iters); err != nil {
		return nil, err
	}
	data, err := b.Finish()
	if err != nil {
		return nil, err
	}
	return fst.WriteSink(path, data)
}

// Union builds a new Map image holding every key present in m or any
// of others. For a key present in more than one operand, policy
// selects the value kept.
func (m *Map) Union(path string, policy Policy, others ...*Map) ([]byte, error) {
	return m.setAlgebra(path, fst.OpUnion, policy, others)
}

// Intersection builds a new Map image holding only the keys present in
// m and every one of others.
func (m *Map) Intersection(path string, policy Policy, others ...*Map) ([]byte, error) {
	return m.setAlgebra(path, fst.OpIntersection, policy, others)
}

// Difference builds a new Map image holding the keys present in m but
// absent from every one of others.
func (m *Map) Difference(path string, policy Policy, others ...*Map) ([]byte, error) {
	return m.setAlgebra(path, fst.OpDifference, policy, others)
}

// SymmetricDifference builds a new Map image holding the keys present
// in an odd number of the operands (m and others).
func (m *Map) SymmetricDifference(path string, policy Policy, others ...*Map) ([]byte, error) {
	return m.setAlgebra(path, fst.OpSymmetricDifference, policy, others)
}
