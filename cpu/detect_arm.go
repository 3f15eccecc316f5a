//go:build arm

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/cwbudde/algo-simd/internal/cache"
)

var sysFlags = [numFeatures]*bool{
	NEON:  &cpu.ARM.HasNEON,
	VFP:   &cpu.ARM.HasVFP,
	VFPv3: &cpu.ARM.HasVFPv3,
	VFPv4: &cpu.ARM.HasVFPv4,
	IDIVA: &cpu.ARM.HasIDIVA,
	AES:   &cpu.ARM.HasAES,
	PMULL: &cpu.ARM.HasPMULL,
	SHA1:  &cpu.ARM.HasSHA1,
	SHA2:  &cpu.ARM.HasSHA2,
	CRC32: &cpu.ARM.HasCRC32,
}

func detectPlatform() cache.Initializer {
	var v cache.Initializer
	for f, has := range sysFlags {
		if *has {
			v.Set(uint32(f))
		}
	}
	return v
}

// CPUIDDetect reports false: klauspost/cpuid does not cover 32-bit arm.
func CPUIDDetect() (cache.Initializer, bool) {
	return cache.Initializer{}, false
}

func snapshot() Features {
	return Features{
		HasNEON:      IsFeatureDetected(NEON),
		Architecture: runtime.GOARCH,
	}
}
