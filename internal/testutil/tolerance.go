package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// RequireClose fails t unless got and want have equal length and every pair
// agrees within rel*(1+|want|).
func RequireClose(t testing.TB, want, got []float64, rel float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDelta(t, want[i], got[i], rel*(1+math.Abs(want[i])), "index %d", i)
	}
}

// MaxAbsDiff returns the largest absolute difference between a and b over
// their common prefix.
func MaxAbsDiff(a, b []float64) float64 {
	n := min(len(a), len(b))
	var m float64
	for i := range n {
		if d := math.Abs(a[i] - b[i]); d > m {
			m = d
		}
	}
	return m
}
