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

// Package gofst implements an immutable, ordered key/value store backed
// by a minimal deterministic acyclic finite-state transducer (FST).
// Keys are arbitrary byte strings; a Map attaches an unsigned 64-bit
// value to each key, a Set attaches none. Both are built once via
// Builder, serialized to a self-describing byte image, and reopened
// read-only for lookups, ordered iteration, bounded range scans, and
// automaton-guided search.
package gofst

import (
	"errors"

	"github.com/jamra/gofst/internal/fst"
)

// Sentinel errors surfaced by this package. Use errors.Is to test for
// them; internal/fst defines the same sentinels and these are the same
// values re-exported at the root so callers never need to import the
// internal package directly.
var (
	// ErrOrder is returned by MapBuilder.Insert and SetBuilder.Insert
	// (and so by Build/BuildSet) when a key is not strictly
	// greater than the previously inserted key.
	ErrOrder = fst.ErrOrder

	// ErrDuplicateKey is returned by MapBuilder.Insert and
	// SetBuilder.Insert when a key repeats
	// the previously inserted key.
	ErrDuplicateKey = fst.ErrDuplicateKey

	// ErrValue is returned when a value cannot be represented or an
	// internal output accumulation would overflow.
	ErrValue = fst.ErrValue

	// ErrFormat is returned by OpenMap/OpenSet when the image is truncated,
	// malformed, or fails its checksum.
	ErrFormat = fst.ErrFormat

	// ErrKey is returned by Map.TryGet when the key is absent.
	ErrKey = errors.New("gofst: key not found")

	// ErrIteratorDone is returned by Iterator.Next/Seek once the cursor
	// is exhausted or has advanced past its configured bound.
	ErrIteratorDone = fst.ErrIteratorDone

	// ErrFrozen is returned by the Insert/Finish methods of MapBuilder
	// and SetBuilder when the builder
	// has already been finished.
	ErrFrozen = fst.ErrFrozen
)
