package common

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGCDReduce(t *testing.T) {
	for _, tc := range []struct {
		a, b int64
		g    uint64
		neg  bool
	}{
		{6, 4, 2, false},
		{4, 6, 2, false},
		{-6, 4, 2, true},
		{6, -4, 2, true},
		{-6, -4, 2, false},
		{7, 13, 1, false},
		{12, 12, 12, false},
		{0, 5, 5, false},
		{0, -5, 5, true},
		{-9, 0, 9, true},
		{1, 1, 1, false},
		{math.MaxInt64, 1, 1, false},
		{math.MinInt64, 2, 2, true},
		{math.MinInt64, 0, 1 << 63, true},
	} {
		t.Run(fmt.Sprintf("%d,%d", tc.a, tc.b), func(t *testing.T) {
			require := require.New(t)

			g, neg, err := gcdReduce(tc.a, tc.b)
			require.Nil(err)
			require.Equal(tc.g, g)
			require.Equal(tc.neg, neg)
		})
	}
}

func TestGCDReduceZero(t *testing.T) {
	require := require.New(t)

	g, neg, err := gcdReduce(0, 0)
	require.ErrorIs(err, ErrZeroDenominator)
	require.Equal(uint64(0), g)
	require.False(neg)
}
