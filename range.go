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

// Bound is one endpoint of a range scan: unbounded, or a key compared
// either inclusively (Ge/Le) or exclusively (Gt/Lt).
type Bound = fst.Bound

// Unbounded places no constraint on this side of a range.
func Unbounded() Bound { return fst.Unbounded() }

// Ge bounds a range to keys greater than or equal to key.
func Ge(key []byte) Bound { return fst.Ge(key) }

// Gt bounds a range to keys strictly greater than key.
func Gt(key []byte) Bound { return fst.Gt(key) }

// Le bounds a range to keys less than or equal to key.
func Le(key []byte) Bound { return fst.Le(key) }

// Lt bounds a range to keys strictly less than key.
func Lt(key []byte) Bound { return fst.Lt(key) }

// Policy selects the value kept for a key that multiple set-algebra
// operands agree on: one operand's value (First/Last/Mid/Min/Max) or
// one computed from all of them (Avg/Median). Sets ignore Policy entirely, since
// every key in a Set carries the same implicit zero value.
type Policy = fst.Policy

const (
	PolicyFirst  = fst.PolicyFirst
	PolicyLast   = fst.PolicyLast
	PolicyMid    = fst.PolicyMid
	PolicyMin    = fst.PolicyMin
	PolicyMax    = fst.PolicyMax
	PolicyAvg    = fst.PolicyAvg
	PolicyMedian = fst.PolicyMedian
)
