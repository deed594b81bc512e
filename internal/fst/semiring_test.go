package fst

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSemCombineOverflow(t *testing.T) {
	_, err := semCombine(math.MaxUint64, 1)
	require.ErrorIs(t, err, ErrValue)

	v, err := semCombine(math.MaxUint64-1, 1)
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), v)
}

func TestSemCommonPrefixAndSubtract(t *testing.T) {
	require.Equal(t, uint64(3), semCommonPrefix(10, 3))
	require.Equal(t, uint64(3), semCommonPrefix(3, 10))
	require.Equal(t, uint64(7), semSubtractPrefix(10, 3))
}
