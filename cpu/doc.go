// Package cpu reports which instruction-set extensions the running CPU
// supports.
//
// Every capability has a fixed bit index (see the Feature constants for the
// current GOARCH). The first query runs platform detection and stores the
// result in a process-wide cache; later queries are a single atomic load:
//
//	if cpu.IsFeatureDetected(cpu.AVX2) {
//		// use the AVX2 kernel
//	}
//
// Detected capabilities can be masked through the environment:
//
//	ALGOSIMD_DISABLE=avx512f,avx2   hide the listed features
//	ALGOSIMD_FORCE_GENERIC=true     hide every feature
//
// The environment is read when detection runs, so it must be set before the
// first query.
package cpu
