package fst

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildFromMap(t *testing.T, items map[string]uint64) *Reader {
	t.Helper()
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sortStrings(keys)
	b := NewBuilder()
	for _, k := range keys {
		require.NoError(t, b.Push([]byte(k), items[k]))
	}
	data, err := b.Finish()
	require.NoError(t, err)
	r, err := NewReader(data)
	require.NoError(t, err)
	return r
}

func mergeInto(t *testing.T, op SetOp, policy Policy, readers ...*Reader) map[string]uint64 {
	t.Helper()
	iters := make([]*Iterator, len(readers))
	for i, r := range readers {
		it, err := r.Iter()
		require.NoError(t, err)
		iters[i] = it
	}
	dst := NewBuilder()
	require.NoError(t, MergeSetAlgebra(dst, op, policy, iters))
	data, err := dst.Finish()
	require.NoError(t, err)
	out, err := NewReader(data)
	require.NoError(t, err)

	result := make(map[string]uint64)
	it, err := out.Iter()
	require.NoError(t, err)
	for {
		k, v := it.Current()
		if k == nil {
			break
		}
		result[string(k)] = v
		if err := it.Next(); err != nil {
			break
		}
	}
	return result
}

func TestMergeUnion(t *testing.T) {
	a := buildFromMap(t, map[string]uint64{"apple": 1, "banana": 2})
	b := buildFromMap(t, map[string]uint64{"banana": 20, "cherry": 3})

	got := mergeInto(t, OpUnion, PolicyFirst, a, b)
	require.Equal(t, map[string]uint64{"apple": 1, "banana": 2, "cherry": 3}, got)

	got = mergeInto(t, OpUnion, PolicyLast, a, b)
	require.Equal(t, map[string]uint64{"apple": 1, "banana": 20, "cherry": 3}, got)
}

func TestMergeIntersection(t *testing.T) {
	a := buildFromMap(t, map[string]uint64{"apple": 1, "banana": 2})
	b := buildFromMap(t, map[string]uint64{"banana": 20, "cherry": 3})

	got := mergeInto(t, OpIntersection, PolicyMax, a, b)
	require.Equal(t, map[string]uint64{"banana": 20}, got)
}

func TestMergeDifference(t *testing.T) {
	a := buildFromMap(t, map[string]uint64{"apple": 1, "banana": 2, "cherry": 5})
	b := buildFromMap(t, map[string]uint64{"banana": 20, "cherry": 3})

	got := mergeInto(t, OpDifference, PolicyFirst, a, b)
	require.Equal(t, map[string]uint64{"apple": 1}, got)
}

func TestMergeSymmetricDifference(t *testing.T) {
	a := buildFromMap(t, map[string]uint64{"apple": 1, "banana": 2})
	b := buildFromMap(t, map[string]uint64{"banana": 20, "cherry": 3})
	c := buildFromMap(t, map[string]uint64{"cherry": 30, "date": 4})

	got := mergeInto(t, OpSymmetricDifference, PolicyFirst, a, b, c)
	// apple: in a only (1 operand, odd) -> kept
	// banana: in a,b (2, even) -> dropped
	// cherry: in b,c (2, even) -> dropped
	// date: in c only (1, odd) -> kept
	require.Equal(t, map[string]uint64{"apple": 1, "date": 4}, got)
}

func TestMergeUnionThreeWayPolicy(t *testing.T) {
	a := buildFromMap(t, map[string]uint64{"key1": 123})
	b := buildFromMap(t, map[string]uint64{"key1": 456})
	c := buildFromMap(t, map[string]uint64{"key1": 789})

	got := mergeInto(t, OpUnion, PolicyAvg, a, b, c)
	require.Equal(t, map[string]uint64{"key1": 456}, got)

	got = mergeInto(t, OpUnion, PolicyMedian, a, b, c)
	require.Equal(t, map[string]uint64{"key1": 456}, got)

	got = mergeInto(t, OpUnion, PolicyMax, a, b, c)
	require.Equal(t, map[string]uint64{"key1": 789}, got)
}

func TestMergeEmptyOperands(t *testing.T) {
	a := buildFromMap(t, map[string]uint64{})
	b := buildFromMap(t, map[string]uint64{"x": 1})

	got := mergeInto(t, OpUnion, PolicyFirst, a, b)
	require.Equal(t, map[string]uint64{"x": 1}, got)

	got = mergeInto(t, OpIntersection, PolicyFirst, a, b)
	require.Empty(t, got)
}
