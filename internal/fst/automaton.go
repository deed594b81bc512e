package fst

import "math"

// Automaton is a stepwise acceptor driven alongside an FST traversal
// (§4.7). States are represented as plain ints so that combinators can
// build product automata with a pure pairing function instead of a
// shared mutable registry -- every method below is a pure function of
// its arguments, which keeps automata safe to share across concurrent
// searches without locking.
type Automaton interface {
	// Start returns the initial state.
	Start() int
	// Step returns the state reached by consuming byte b from state.
	Step(state int, b byte) int
	// IsMatch reports whether state is accepting.
	IsMatch(state int) bool
	// CanMatch is a conservative pruning hint: if false, no extension
	// of the current path can ever match, and the iterator skips the
	// subtree entirely. Always returning true is correct but forgoes
	// pruning.
	CanMatch(state int) bool
}

// ---- always / never ----

type alwaysAutomaton struct{}

func (alwaysAutomaton) Start() int                { return 0 }
func (alwaysAutomaton) Step(int, byte) int        { return 0 }
func (alwaysAutomaton) IsMatch(int) bool          { return true }
func (alwaysAutomaton) CanMatch(int) bool         { return true }

// Always returns an automaton that matches every key.
func Always() Automaton { return alwaysAutomaton{} }

type neverAutomaton struct{}

func (neverAutomaton) Start() int        { return 0 }
func (neverAutomaton) Step(int, byte) int { return 0 }
func (neverAutomaton) IsMatch(int) bool   { return false }
func (neverAutomaton) CanMatch(int) bool  { return false }

// Never returns an automaton that matches nothing and prunes every
// subtree immediately.
func Never() Automaton { return neverAutomaton{} }

// ---- str ----

// strDeadState marks "no longer able to match s exactly"; Str never
// transitions out of it.
const strDeadState = -1

type strAutomaton struct{ s []byte }

// Str returns an automaton accepting exactly the byte string s.
func Str(s []byte) Automaton {
	return strAutomaton{s: append([]byte(nil), s...)}
}

func (a strAutomaton) Start() int { return 0 }

func (a strAutomaton) Step(state int, b byte) int {
	if state == strDeadState || state >= len(a.s) || a.s[state] != b {
		return strDeadState
	}
	return state + 1
}

func (a strAutomaton) IsMatch(state int) bool { return state == len(a.s) }

func (a strAutomaton) CanMatch(state int) bool { return state != strDeadState }

// ---- subsequence ----

type subsequenceAutomaton struct{ s []byte }

// Subsequence returns an automaton accepting any byte string that
// contains s as a (not necessarily contiguous) subsequence. Once s has
// been fully matched the automaton stays matching for any further
// input, since every extension of a superstring is itself a
// superstring.
func Subsequence(s []byte) Automaton {
	return subsequenceAutomaton{s: append([]byte(nil), s...)}
}

func (a subsequenceAutomaton) Start() int { return 0 }

func (a subsequenceAutomaton) Step(state int, b byte) int {
	if state >= len(a.s) {
		return len(a.s)
	}
	if a.s[state] == b {
		return state + 1
	}
	return state
}

func (a subsequenceAutomaton) IsMatch(state int) bool { return state == len(a.s) }

func (a subsequenceAutomaton) CanMatch(int) bool { return true }

// ---- starts_with ----

type startsWithAutomaton struct{ inner Automaton }

// StartsWith wraps inner so that, once it first reaches a match, every
// extension of the path also matches and pruning stops -- the
// "prefix search" transform described in §4.7.
func StartsWith(inner Automaton) Automaton {
	return startsWithAutomaton{inner: inner}
}

func (a startsWithAutomaton) Start() int { return a.inner.Start() }

func (a startsWithAutomaton) Step(state int, b byte) int {
	if a.inner.IsMatch(state) {
		return state
	}
	return a.inner.Step(state, b)
}

func (a startsWithAutomaton) IsMatch(state int) bool { return a.inner.IsMatch(state) }

func (a startsWithAutomaton) CanMatch(state int) bool {
	return a.inner.IsMatch(state) || a.inner.CanMatch(state)
}

// ---- complement ----

type complementAutomaton struct{ inner Automaton }

// Complement flips is_match; can_match stays conservatively true since
// the complement of a prunable region is generally not prunable.
func Complement(inner Automaton) Automaton { return complementAutomaton{inner: inner} }

func (a complementAutomaton) Start() int                { return a.inner.Start() }
func (a complementAutomaton) Step(state int, b byte) int { return a.inner.Step(state, b) }
func (a complementAutomaton) IsMatch(state int) bool     { return !a.inner.IsMatch(state) }
func (a complementAutomaton) CanMatch(int) bool          { return true }

// ---- union / intersection (product automata) ----

// pair/unpair implement the Cantor pairing function over non-negative
// ints, letting union/intersection build a product state space without
// a shared mutable state registry. Component states are not guaranteed
// non-negative on their own -- Str's dead state (strDeadState = -1) is
// the motivating example -- so each component is first run through a
// zigzag bijection onto the non-negative integers before pairing;
// skipping that step would let pair(-1, 0) collide with pair(0, 0).
func zigzag(n int) int {
	if n >= 0 {
		return 2 * n
	}
	return -2*n - 1
}

func unzigzag(z int) int {
	if z%2 == 0 {
		return z / 2
	}
	return -(z + 1) / 2
}

func pair(a, b int) int {
	za, zb := zigzag(a), zigzag(b)
	s := za + zb
	return s*(s+1)/2 + zb
}

func unpair(c int) (a, b int) {
	w := int((isqrt(8*int64(c)+1) - 1) / 2)
	t := w * (w + 1) / 2
	zb := c - t
	za := w - zb
	return unzigzag(za), unzigzag(zb)
}

func isqrt(n int64) int64 {
	if n < 0 {
		return 0
	}
	r := int64(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

type unionAutomaton struct{ a, b Automaton }

// Union returns an automaton matching whenever a or b matches.
func Union(a, b Automaton) Automaton { return unionAutomaton{a: a, b: b} }

func (u unionAutomaton) Start() int { return pair(u.a.Start(), u.b.Start()) }

func (u unionAutomaton) Step(state int, c byte) int {
	sa, sb := unpair(state)
	return pair(u.a.Step(sa, c), u.b.Step(sb, c))
}

func (u unionAutomaton) IsMatch(state int) bool {
	sa, sb := unpair(state)
	return u.a.IsMatch(sa) || u.b.IsMatch(sb)
}

func (u unionAutomaton) CanMatch(state int) bool {
	sa, sb := unpair(state)
	return u.a.CanMatch(sa) || u.b.CanMatch(sb)
}

type intersectionAutomaton struct{ a, b Automaton }

// Intersection returns an automaton matching only when both a and b match.
func Intersection(a, b Automaton) Automaton { return intersectionAutomaton{a: a, b: b} }

func (i intersectionAutomaton) Start() int { return pair(i.a.Start(), i.b.Start()) }

func (i intersectionAutomaton) Step(state int, c byte) int {
	sa, sb := unpair(state)
	return pair(i.a.Step(sa, c), i.b.Step(sb, c))
}

func (i intersectionAutomaton) IsMatch(state int) bool {
	sa, sb := unpair(state)
	return i.a.IsMatch(sa) && i.b.IsMatch(sb)
}

func (i intersectionAutomaton) CanMatch(state int) bool {
	sa, sb := unpair(state)
	return i.a.CanMatch(sa) && i.b.CanMatch(sb)
}
