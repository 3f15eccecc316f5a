//go:build arm64

package cpu

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"

	"github.com/cwbudde/algo-simd/internal/cache"
)

var sysFlags = [numFeatures]*bool{
	FP:       &cpu.ARM64.HasFP,
	ASIMD:    &cpu.ARM64.HasASIMD,
	AES:      &cpu.ARM64.HasAES,
	PMULL:    &cpu.ARM64.HasPMULL,
	SHA1:     &cpu.ARM64.HasSHA1,
	SHA2:     &cpu.ARM64.HasSHA2,
	SHA3:     &cpu.ARM64.HasSHA3,
	SHA512:   &cpu.ARM64.HasSHA512,
	SM3:      &cpu.ARM64.HasSM3,
	SM4:      &cpu.ARM64.HasSM4,
	CRC32:    &cpu.ARM64.HasCRC32,
	ATOMICS:  &cpu.ARM64.HasATOMICS,
	FPHP:     &cpu.ARM64.HasFPHP,
	ASIMDHP:  &cpu.ARM64.HasASIMDHP,
	ASIMDRDM: &cpu.ARM64.HasASIMDRDM,
	ASIMDDP:  &cpu.ARM64.HasASIMDDP,
	ASIMDFHM: &cpu.ARM64.HasASIMDFHM,
	JSCVT:    &cpu.ARM64.HasJSCVT,
	FCMA:     &cpu.ARM64.HasFCMA,
	LRCPC:    &cpu.ARM64.HasLRCPC,
	DCPOP:    &cpu.ARM64.HasDCPOP,
	SVE:      &cpu.ARM64.HasSVE,
	SVE2:     &cpu.ARM64.HasSVE2,
	CPUID:    &cpu.ARM64.HasCPUID,
	EVTSTRM:  &cpu.ARM64.HasEVTSTRM,
}

// cpuidFlags covers the subset of features klauspost/cpuid reports on arm64.
var cpuidFlags = map[Feature]cpuid.FeatureID{
	FP:       cpuid.FP,
	ASIMD:    cpuid.ASIMD,
	AES:      cpuid.AESARM,
	PMULL:    cpuid.PMULL,
	SHA1:     cpuid.SHA1,
	SHA2:     cpuid.SHA2,
	SHA3:     cpuid.SHA3,
	SHA512:   cpuid.SHA512,
	SM3:      cpuid.SM3,
	SM4:      cpuid.SM4,
	CRC32:    cpuid.CRC32,
	ATOMICS:  cpuid.ATOMICS,
	FPHP:     cpuid.FPHP,
	ASIMDHP:  cpuid.ASIMDHP,
	ASIMDRDM: cpuid.ASIMDRDM,
	ASIMDDP:  cpuid.ASIMDDP,
	JSCVT:    cpuid.JSCVT,
	FCMA:     cpuid.FCMA,
	LRCPC:    cpuid.LRCPC,
	DCPOP:    cpuid.DCPOP,
	SVE:      cpuid.SVE,
	CPUID:    cpuid.ARMCPUID,
	EVTSTRM:  cpuid.EVTSTRM,
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

// CPUIDDetect runs detection using only klauspost/cpuid. Features cpuid has
// no identifier for are reported absent.
func CPUIDDetect() (cache.Initializer, bool) {
	var v cache.Initializer
	for f, id := range cpuidFlags {
		if cpuid.CPU.Has(id) {
			v.Set(uint32(f))
		}
	}
	return v, true
}

func snapshot() Features {
	return Features{
		HasNEON:      IsFeatureDetected(ASIMD),
		HasSVE:       IsFeatureDetected(SVE),
		Architecture: runtime.GOARCH,
	}
}
