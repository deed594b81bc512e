package gofst

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildTestSet(t *testing.T, keys ...string) *Set {
	t.Helper()
	data, err := BuildSet(MemorySentinel, seqFromKeys(keys))
	require.NoError(t, err)
	s, err := OpenSet(data)
	require.NoError(t, err)
	return s
}

func TestSetContains(t *testing.T) {
	s := buildTestSet(t, "cat", "dog", "bird")
	require.True(t, s.Contains([]byte("cat")))
	require.False(t, s.Contains([]byte("fish")))
	require.Equal(t, 3, s.Len())
}

func TestSetAll(t *testing.T) {
	s := buildTestSet(t, "c", "a", "b")
	var got []string
	for k := range s.All() {
		got = append(got, string(k))
	}
	require.Equal(t, []string{"a", "b", "c"}, got)
}

func TestSetAlgebra(t *testing.T) {
	a := buildTestSet(t, "apple", "banana")
	b := buildTestSet(t, "banana", "cherry")

	data, err := a.Union(MemorySentinel, b)
	require.NoError(t, err)
	u, err := OpenSet(data)
	require.NoError(t, err)
	require.Equal(t, 3, u.Len())

	data, err = a.Intersection(MemorySentinel, b)
	require.NoError(t, err)
	i, err := OpenSet(data)
	require.NoError(t, err)
	require.Equal(t, 1, i.Len())
	require.True(t, i.Contains([]byte("banana")))

	data, err = a.SymmetricDifference(MemorySentinel, b)
	require.NoError(t, err)
	sd, err := OpenSet(data)
	require.NoError(t, err)
	require.Equal(t, 2, sd.Len())
	require.True(t, sd.Contains([]byte("apple")))
	require.True(t, sd.Contains([]byte("cherry")))
}

func TestSetComparisons(t *testing.T) {
	a := buildTestSet(t, "apple", "banana")
	b := buildTestSet(t, "banana", "cherry")
	sub := buildTestSet(t, "apple")
	same := buildTestSet(t, "banana", "apple")

	require.False(t, a.IsDisjoint(b))
	require.True(t, buildTestSet(t, "x").IsDisjoint(buildTestSet(t, "y")))

	require.True(t, sub.IsSubset(a))
	require.False(t, a.IsSubset(sub))
	require.True(t, a.IsSuperset(sub))

	require.True(t, a.Equal(same))
	require.False(t, a.Equal(b))
}

// TestSetOrderingRelations mirrors original_source/tests/test_set.py's
// <, <=, >, >= assertions over {key1,key2,key3}-shaped sets: every one
// of those is a subset/superset relation, not a lexicographic one.
func TestSetOrderingRelations(t *testing.T) {
	set1 := buildTestSet(t, "key1")
	set12 := buildTestSet(t, "key1", "key2")
	set123 := buildTestSet(t, "key1", "key2", "key3")
	set23 := buildTestSet(t, "key2", "key3")

	// test_set_lt_true / test_set_lt_false
	require.True(t, set1.Less(set12))
	require.False(t, set123.Less(set123))

	// test_set_le_true
	require.True(t, set123.LessOrEqual(set123))

	// test_set_gt_true / test_set_gt_false -- the counterexample from
	// review: {key1,key2,key3} is a proper superset of {key2,key3}, so
	// it must compare greater even though "key1" < "key2" byte-wise.
	require.True(t, set123.Greater(set23))
	require.False(t, set123.Greater(set123))

	// test_set_ge_true / test_set_ge_false
	require.True(t, set123.GreaterOrEqual(set123))
	require.False(t, set12.GreaterOrEqual(set123))

	// Disjoint non-empty sets are incomparable under every relation.
	x := buildTestSet(t, "x")
	y := buildTestSet(t, "y")
	require.False(t, x.Less(y))
	require.False(t, x.Greater(y))
	require.False(t, x.LessOrEqual(y))
	require.False(t, x.GreaterOrEqual(y))
}
