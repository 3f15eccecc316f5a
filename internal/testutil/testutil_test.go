package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoiseDeterministic(t *testing.T) {
	a := Noise(42, 2, 64)
	b := Noise(42, 2, 64)
	assert.Equal(t, a, b)
	for i, v := range a {
		assert.True(t, v >= -2 && v < 2, "index %d: %v", i, v)
	}
	assert.NotEqual(t, a, Noise(43, 2, 64))
}

func TestWave(t *testing.T) {
	w := Wave(16, 0, 3)
	assert.Len(t, w, 16)
	assert.Zero(t, w[0])
	for _, v := range w {
		assert.LessOrEqual(t, v, 3.0)
		assert.GreaterOrEqual(t, v, -3.0)
	}
}

func TestMaxAbsDiff(t *testing.T) {
	assert.Zero(t, MaxAbsDiff(nil, nil))
	assert.Equal(t, 0.5, MaxAbsDiff([]float64{1, 2, 3}, []float64{1, 2.5, 3, 99}))
}

func TestRequireClose(t *testing.T) {
	RequireClose(t, []float64{1, -1000}, []float64{1 + 1e-13, -1000 + 1e-10}, 1e-12)
}
