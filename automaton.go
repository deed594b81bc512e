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

import "github.com/jamra/gofst/internal/fst"

// Automaton is a stepwise acceptor driven alongside an FST traversal
// by Map.Search and Set.Search (§4.7): Start/Step/IsMatch/CanMatch let
// Search prune whole subtrees that cannot possibly match instead of
// visiting every key.
type Automaton = fst.Automaton

// Always returns an automaton that matches every key.
func Always() Automaton { return fst.Always() }

// Never returns an automaton that matches no key and prunes every
// subtree immediately.
func Never() Automaton { return fst.Never() }

// Str returns an automaton accepting exactly the byte string s.
func Str(s []byte) Automaton { return fst.Str(s) }

// Subsequence returns an automaton accepting any byte string that
// contains s as a (not necessarily contiguous) subsequence.
func Subsequence(s []byte) Automaton { return fst.Subsequence(s) }

// StartsWith wraps inner so that every extension of a path that has
// already matched inner also matches -- a prefix search over inner.
func StartsWith(inner Automaton) Automaton { return fst.StartsWith(inner) }

// Complement returns an automaton matching exactly the keys inner does
// not.
func Complement(inner Automaton) Automaton { return fst.Complement(inner) }

// Union returns an automaton matching whenever a or b matches.
func Union(a, b Automaton) Automaton { return fst.Union(a, b) }

// Intersection returns an automaton matching only when both a and b match.
func Intersection(a, b Automaton) Automaton { return fst.Intersection(a, b) }

// Levenshtein returns a fuzzy-match automaton accepting any byte
// string within maxDistance edits (insertions, deletions,
// substitutions) of pattern. Combine it with StartsWith for fuzzy
// prefix search.
func Levenshtein(pattern []byte, maxDistance int) Automaton {
	return fst.NewLevenshteinAutomaton(pattern, maxDistance)
}
