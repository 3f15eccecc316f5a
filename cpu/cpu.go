package cpu

import (
	"sync/atomic"
)

// SIMDLevel groups capabilities into the vector tiers kernels are written
// for. Levels are not comparable across architectures (e.g., AVX2 vs NEON).
type SIMDLevel int

const (
	// SIMDNone indicates no SIMD optimization (pure Go fallback).
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 indicates x86 SSE2 (baseline for amd64).
	SIMDSSE2

	// SIMDAVX indicates x86 AVX.
	SIMDAVX

	// SIMDAVX2 indicates x86 AVX2.
	SIMDAVX2

	// SIMDAVX512 indicates x86 AVX-512 F+BW+VL.
	SIMDAVX512

	// SIMDNEON indicates ARM NEON / Advanced SIMD.
	SIMDNEON

	// SIMDSVE indicates ARM SVE.
	SIMDSVE
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX:
		return "AVX"
	case SIMDAVX2:
		return "AVX2"
	case SIMDAVX512:
		return "AVX-512"
	case SIMDNEON:
		return "NEON"
	case SIMDSVE:
		return "SVE"
	default:
		return "Unknown"
	}
}

// Features is a snapshot of the capabilities kernel selection cares about.
type Features struct {
	// x86 SIMD features
	HasSSE2   bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool

	// ARM SIMD features
	HasNEON bool
	HasSVE  bool

	// ForceGeneric disables all SIMD levels (for testing/debugging).
	ForceGeneric bool

	// Architecture is runtime.GOARCH.
	Architecture string
}

// forcedFeatures overrides DetectFeatures in tests.
var forcedFeatures atomic.Pointer[Features]

// DetectFeatures returns the feature snapshot for the running CPU, built
// from the detection cache, or the value installed by SetForcedFeatures.
// ForceGeneric reflects the configuration seen by the cached detection.
func DetectFeatures() Features {
	if forced := forcedFeatures.Load(); forced != nil {
		return *forced
	}
	f := snapshot()
	f.ForceGeneric = forcedGeneric.Load()
	return f
}

// HasAVX2 returns true if the CPU supports AVX2 instructions.
func HasAVX2() bool {
	return DetectFeatures().HasAVX2
}

// HasSSE2 returns true if the CPU supports SSE2 instructions.
func HasSSE2() bool {
	return DetectFeatures().HasSSE2
}

// HasNEON returns true if the CPU supports ARM NEON (Advanced SIMD) instructions.
func HasNEON() bool {
	return DetectFeatures().HasNEON
}

// SetForcedFeatures makes DetectFeatures return f. It does not affect
// IsFeatureDetected. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedFeatures.Store(&f)
}

// ClearForcedFeatures undoes SetForcedFeatures.
func ClearForcedFeatures() {
	forcedFeatures.Store(nil)
}

// Supports returns true if the given features support the specified SIMD level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX:
		return features.HasAVX
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDAVX512:
		return features.HasAVX512
	case SIMDNEON:
		return features.HasNEON
	case SIMDSVE:
		return features.HasSVE
	default:
		return false
	}
}

// levelOrder lists levels from most to least preferred.
var levelOrder = []SIMDLevel{SIMDAVX512, SIMDAVX2, SIMDAVX, SIMDSSE2, SIMDSVE, SIMDNEON}

// BestLevel returns the most capable level supported by features.
func BestLevel(features Features) SIMDLevel {
	for _, l := range levelOrder {
		if Supports(features, l) {
			return l
		}
	}
	return SIMDNone
}
