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

// Set is an immutable, ordered byte-string store backed by a
// finite-state transducer image -- a Map with every value fixed at
// zero. A Set is safe for concurrent use by any number of goroutines.
type Set struct {
	r *fst.Reader
}

// OpenSet parses data as a Set image. data is not copied; the caller
// must keep it alive for as long as the Set (or anything derived from
// it) is in use.
func OpenSet(data []byte) (*Set, error) {
	r, err := fst.NewReader(data)
	if err != nil {
		return nil, err
	}
	return &Set{r: r}, nil
}

// Len returns the number of keys in the set.
func (s *Set) Len() int { return s.r.Len() }

// Contains reports whether key is a member of the set.
func (s *Set) Contains(key []byte) bool {
	ok, err := s.r.Contains(key)
	return err == nil && ok
}

// All iterates every key in ascending order.
func (s *Set) All() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		it, err := s.r.Iter()
		if err != nil {
			return
		}
		iterateSet(it, yield)
	}
}

// Range iterates the keys satisfying lower and upper, in ascending order.
func (s *Set) Range(lower, upper Bound) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		it, err := s.r.Range(lower, upper)
		if err != nil {
			return
		}
		iterateSet(it, yield)
	}
}

// Search iterates the keys within [lower, upper] that a drives to a
// match, pruning subtrees a.CanMatch reports as dead. A nil automaton
// behaves like Always().
func (s *Set) Search(a Automaton, lower, upper Bound) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		it, err := s.r.Search(a, lower, upper)
		if err != nil {
			return
		}
		iterateSet(it, yield)
	}
}

func iterateSet(it *fst.Iterator, yield func([]byte) bool) {
	for {
		k, _ := it.Current()
		if k != nil {
			if !yield(k) {
				return
			}
		}
		if err := it.Next(); err != nil {
			return
		}
	}
}

func (s *Set) operandIterators(others []*Set) ([]*fst.Iterator, error) {
	all := make([]*Set, 0, len(others)+1)
	all = append(all, s)
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

func (s *Set) setAlgebra(path string, op fst.SetOp, others []*Set) ([]byte, error) {
	iters, err := s.operandIterators(others)
	if err != nil {
		return nil, err
	}
	b := fst.NewBuilder()
	// Policy is irrelevant for sets -- every operand contributes the
	// same zero value, so any policy selects the same output.
	if err := fst.MergeSetAlgebra(b, op, fst.PolicyFirst, iters); err != nil {
		return nil, err
	}
	data, err := b.Finish()
	if err != nil {
		return nil, err
	}
	return fst.WriteSink(path, data)
}

// Union builds a new Set image holding every key present in s or any of others.
func (s *Set) Union(path string, others ...*Set) ([]byte, error) {
	return s.setAlgebra(path, fst.OpUnion, others)
}

// Intersection builds a new Set image holding only the keys present in
// s and every one of others.
func (s *Set) Intersection(path string, others ...*Set) ([]byte, error) {
	return s.setAlgebra(path, fst.OpIntersection, others)
}

// Difference builds a new Set image holding the keys present in s but
// absent from every one of others.
func (s *Set) Difference(path string, others ...*Set) ([]byte, error) {
	return s.setAlgebra(path, fst.OpDifference, others)
}

// SymmetricDifference builds a new Set image holding the keys present
// in an odd number of the operands (s and others).
func (s *Set) SymmetricDifference(path string, others ...*Set) ([]byte, error) {
	return s.setAlgebra(path, fst.OpSymmetricDifference, others)
}

// IsDisjoint reports whether s and other share no keys.
func (s *Set) IsDisjoint(other *Set) bool {
	a, err := s.r.Iter()
	if err != nil {
		return true
	}
	for {
		k, _ := a.Current()
		if k == nil {
			return true
		}
		if other.Contains(k) {
			return false
		}
		if err := a.Next(); err != nil {
			return true
		}
	}
}

// IsSubset reports whether every key of s is also a key of other.
func (s *Set) IsSubset(other *Set) bool {
	it, err := s.r.Iter()
	if err != nil {
		return true
	}
	for {
		k, _ := it.Current()
		if k == nil {
			return true
		}
		if !other.Contains(k) {
			return false
		}
		if err := it.Next(); err != nil {
			return true
		}
	}
}

// IsSuperset reports whether every key of other is also a key of s.
func (s *Set) IsSuperset(other *Set) bool { return other.IsSubset(s) }

// Equal reports whether s and other contain exactly the same keys.
func (s *Set) Equal(other *Set) bool {
	return s.Len() == other.Len() && s.IsSubset(other)
}

// LessOrEqual reports whether s is a subset of other (every key of s
// is a key of other; the two may be equal).
func (s *Set) LessOrEqual(other *Set) bool {
	return s.IsSubset(other)
}

// Less reports whether s is a proper subset of other: a subset that is
// not equal to other.
func (s *Set) Less(other *Set) bool {
	return s.IsSubset(other) && s.Len() != other.Len()
}

// GreaterOrEqual reports whether s is a superset of other (every key
// of other is a key of s; the two may be equal).
func (s *Set) GreaterOrEqual(other *Set) bool {
	return s.IsSuperset(other)
}

// Greater reports whether s is a proper superset of other: a superset
// that is not equal to other.
func (s *Set) Greater(other *Set) bool {
	return s.IsSuperset(other) && s.Len() != other.Len()
}
