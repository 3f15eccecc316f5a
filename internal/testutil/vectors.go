// Package testutil holds input generators and comparisons shared by kernel
// tests and benchmarks.
package testutil

import (
	"math"
	"math/rand"
)

// Noise returns n uniform values in [-amplitude, amplitude) from a fixed seed.
func Noise(seed int64, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Wave returns a scaled sine with the given phase offset. Kernels that
// branch on sign or magnitude see both.
func Wave(n int, phase, scale float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(float64(i)*0.37+phase) * scale
	}
	return out
}
