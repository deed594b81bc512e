package fst

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func run(a Automaton, s string) (matched bool) {
	st := a.Start()
	for i := 0; i < len(s); i++ {
		if !a.CanMatch(st) {
			return false
		}
		st = a.Step(st, s[i])
	}
	return a.IsMatch(st)
}

func TestAlwaysNever(t *testing.T) {
	require.True(t, run(Always(), "anything"))
	require.True(t, run(Always(), ""))
	require.False(t, run(Never(), "anything"))
	require.False(t, run(Never(), ""))
}

func TestStr(t *testing.T) {
	a := Str([]byte("cat"))
	require.True(t, run(a, "cat"))
	require.False(t, run(a, "cats"))
	require.False(t, run(a, "ca"))
	require.False(t, run(a, "dog"))
}

func TestSubsequence(t *testing.T) {
	a := Subsequence([]byte("ace"))
	require.True(t, run(a, "abcde"))
	require.True(t, run(a, "ace"))
	require.False(t, run(a, "aec"))
	require.False(t, run(a, "ac"))
}

func TestStartsWith(t *testing.T) {
	a := StartsWith(Str([]byte("pre")))
	require.True(t, run(a, "prefix"))
	require.True(t, run(a, "pre"))
	require.False(t, run(a, "pr"))
	require.False(t, run(a, "suffix"))
}

func TestComplement(t *testing.T) {
	a := Complement(Str([]byte("cat")))
	require.False(t, run(a, "cat"))
	require.True(t, run(a, "dog"))
	require.True(t, run(a, "ca"))
}

func TestUnion(t *testing.T) {
	a := Union(Str([]byte("cat")), Str([]byte("dog")))
	require.True(t, run(a, "cat"))
	require.True(t, run(a, "dog"))
	require.False(t, run(a, "bird"))
}

func TestIntersection(t *testing.T) {
	a := Intersection(StartsWith(Str([]byte("ca"))), Subsequence([]byte("cat")))
	require.True(t, run(a, "catalog"))
	require.False(t, run(a, "cabbage")) // starts with "ca" but has no later "t"
}

func TestPairUnpairRoundTrip(t *testing.T) {
	for a := -5; a < 50; a++ {
		for b := -5; b < 50; b++ {
			c := pair(a, b)
			ga, gb := unpair(c)
			require.Equal(t, a, ga, "a mismatch for pair(%d,%d)", a, b)
			require.Equal(t, b, gb, "b mismatch for pair(%d,%d)", a, b)
		}
	}
}

// Regression: Str's dead state is -1, which used to collide with the
// (0, 0) product state under a plain (non-zigzagged) Cantor pairing --
// pair(-1, 0) and pair(0, 0) both produced 0, so a union operand that
// had already failed to match could be silently resurrected.
func TestUnionDeadStateNoCollision(t *testing.T) {
	a := Union(Str([]byte("cat")), Str([]byte("dog")))
	require.False(t, run(a, "ca!"))
	require.False(t, run(a, "do!"))
	require.False(t, run(a, "xyz"))
}
