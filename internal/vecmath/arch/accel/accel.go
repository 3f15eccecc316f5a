//go:build (amd64 || arm64) && !purego

// Package accel registers kernels backed by github.com/cwbudde/algo-vecmath,
// which carries hand-written AVX2 and NEON assembly.
package accel

import (
	"runtime"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-simd/cpu"
	"github.com/cwbudde/algo-simd/internal/vecmath/registry"
)

// level is the SIMD level the assembly paths of algo-vecmath need.
func level() cpu.SIMDLevel {
	if runtime.GOARCH == "arm64" {
		return cpu.SIMDNEON
	}
	return cpu.SIMDAVX2
}

// init registers the accelerated variant. Operations algo-vecmath does not
// provide are left nil and resolve to the generic kernels.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "accelerated",
		SIMDLevel: level(),
		Priority:  20,

		MulBlock:        vecmath.MulBlock,
		MulBlockInPlace: vecmath.MulBlockInPlace,
		Magnitude:       vecmath.Magnitude,
		Power:           vecmath.Power,
	})
}
