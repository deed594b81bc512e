package fst

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildMap(t *testing.T, items map[string]uint64) (*Reader, []string) {
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
	return r, keys
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

func TestBuilderRoundTrip(t *testing.T) {
	words := map[string]uint64{
		"apple":       1,
		"application": 2,
		"apply":       3,
		"banana":      4,
		"band":        5,
		"bandana":     6,
		"cat":         7,
		"category":    8,
	}

	r, keys := buildMap(t, words)
	require.Equal(t, len(words), r.Len())

	for _, k := range keys {
		v, ok, err := r.Get([]byte(k))
		require.NoError(t, err)
		require.True(t, ok, "expected key %q to be present", k)
		require.Equal(t, words[k], v)
	}

	misses := []string{"app", "appl", "applications", "ban", "bands", "dog", ""}
	for _, k := range misses {
		_, ok, err := r.Get([]byte(k))
		require.NoError(t, err)
		require.False(t, ok, "expected key %q to be absent", k)
	}
}

func TestBuilderSharesCommonSuffixes(t *testing.T) {
	// "testing" and "resting" share the suffix "esting"; a minimizing
	// builder should serialize that suffix's states exactly once.
	b := NewBuilder()
	require.NoError(t, b.Push([]byte("resting"), 0))
	require.NoError(t, b.Push([]byte("testing"), 0))
	data, err := b.Finish()
	require.NoError(t, err)

	baseline := NewBuilder()
	require.NoError(t, baseline.Push([]byte("resting"), 0))
	baselineData, err := baseline.Finish()
	require.NoError(t, err)

	// Adding a second key that shares a long suffix with the first
	// should grow the image by much less than the length of that key.
	require.Less(t, len(data)-len(baselineData), len("testing"))
}

func TestBuilderRejectsOutOfOrderKeys(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Push([]byte("banana"), 1))
	require.ErrorIs(t, b.Push([]byte("apple"), 2), ErrOrder)
}

func TestBuilderRejectsDuplicateKeys(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Push([]byte("apple"), 1))
	require.ErrorIs(t, b.Push([]byte("apple"), 2), ErrDuplicateKey)
}

func TestBuilderRejectsPushAfterFinish(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Push([]byte("apple"), 1))
	_, err := b.Finish()
	require.NoError(t, err)

	require.ErrorIs(t, b.Push([]byte("banana"), 1), ErrFrozen)
	_, err = b.Finish()
	require.ErrorIs(t, err, ErrFrozen)
}

func TestBuilderOutputPushing(t *testing.T) {
	// "ab"->10 commits its entire output to the "a" arc (nothing else
	// has been seen yet). Pushing "ac"->3 afterward forces that arc's
	// output back down to the common value (3) and relocates the
	// excess (7) onto "ab"'s own "b" arc -- the only way both keys can
	// still decode to their original values once "a" is shared.
	b := NewBuilder()
	require.NoError(t, b.Push([]byte("ab"), 10))
	require.NoError(t, b.Push([]byte("ac"), 3))
	data, err := b.Finish()
	require.NoError(t, err)

	r, err := NewReader(data)
	require.NoError(t, err)

	v, ok, err := r.Get([]byte("ab"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint64(10), v)

	v, ok, err = r.Get([]byte("ac"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint64(3), v)
}

func TestBuilderEmptyKey(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Push([]byte(""), 42))
	require.NoError(t, b.Push([]byte("a"), 1))
	data, err := b.Finish()
	require.NoError(t, err)

	r, err := NewReader(data)
	require.NoError(t, err)
	v, ok, err := r.Get([]byte(""))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint64(42), v)
}

func TestBuilderMaxValue(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Push([]byte("a"), ^uint64(0)))
	require.NoError(t, b.Push([]byte("b"), 1))
	data, err := b.Finish()
	require.NoError(t, err)

	r, err := NewReader(data)
	require.NoError(t, err)
	v, ok, err := r.Get([]byte("a"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, ^uint64(0), v)
}
