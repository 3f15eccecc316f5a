// Package generic provides the pure Go kernels every platform falls back to.
package generic

import "math"

// AddBlock computes dst[i] = a[i] + b[i].
func AddBlock(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// MulBlock computes dst[i] = a[i] * b[i].
func MulBlock(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// MulBlockInPlace computes dst[i] *= src[i].
func MulBlockInPlace(dst, src []float64) {
	for i := range dst {
		dst[i] *= src[i]
	}
}

// ScaleBlock computes dst[i] = src[i] * scale.
func ScaleBlock(dst, src []float64, scale float64) {
	for i := range dst {
		dst[i] = src[i] * scale
	}
}

// Sum returns the sum of x, 4-way unrolled.
func Sum(x []float64) float64 {
	var s0, s1, s2, s3 float64
	i := 0
	for ; i+4 <= len(x); i += 4 {
		s0 += x[i]
		s1 += x[i+1]
		s2 += x[i+2]
		s3 += x[i+3]
	}
	for ; i < len(x); i++ {
		s0 += x[i]
	}
	return (s0 + s1) + (s2 + s3)
}

// DotProduct returns sum(a[i] * b[i]).
func DotProduct(a, b []float64) float64 {
	var s0, s1 float64
	i := 0
	for ; i+2 <= len(a); i += 2 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
	}
	if i < len(a) {
		s0 += a[i] * b[i]
	}
	return s0 + s1
}

// MaxAbs returns max(|x[i]|), or 0 for an empty slice.
func MaxAbs(x []float64) float64 {
	m := 0.0
	for _, v := range x {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}

// Magnitude computes dst[i] = sqrt(re[i]^2 + im[i]^2).
func Magnitude(dst, re, im []float64) {
	for i := range dst {
		dst[i] = math.Sqrt(re[i]*re[i] + im[i]*im[i])
	}
}

// Power computes dst[i] = re[i]^2 + im[i]^2.
func Power(dst, re, im []float64) {
	for i := range dst {
		dst[i] = re[i]*re[i] + im[i]*im[i]
	}
}
