//go:build 386 || amd64

package cpu

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"

	"github.com/cwbudde/algo-simd/internal/cache"
)

// sysFlags maps features to the flags golang.org/x/sys/cpu fills in.
var sysFlags = []struct {
	feature Feature
	has     *bool
}{
	{SSE2, &cpu.X86.HasSSE2},
	{SSE3, &cpu.X86.HasSSE3},
	{SSSE3, &cpu.X86.HasSSSE3},
	{SSE41, &cpu.X86.HasSSE41},
	{SSE42, &cpu.X86.HasSSE42},
	{POPCNT, &cpu.X86.HasPOPCNT},
	{BMI1, &cpu.X86.HasBMI1},
	{BMI2, &cpu.X86.HasBMI2},
	{FMA, &cpu.X86.HasFMA},
	{AVX, &cpu.X86.HasAVX},
	{AVX2, &cpu.X86.HasAVX2},
	{AVX512F, &cpu.X86.HasAVX512F},
	{AVX512BW, &cpu.X86.HasAVX512BW},
	{AVX512CD, &cpu.X86.HasAVX512CD},
	{AVX512DQ, &cpu.X86.HasAVX512DQ},
	{AVX512ER, &cpu.X86.HasAVX512ER},
	{AVX512PF, &cpu.X86.HasAVX512PF},
	{AVX512VL, &cpu.X86.HasAVX512VL},
	{AVX512IFMA, &cpu.X86.HasAVX512IFMA},
	{AVX512VBMI, &cpu.X86.HasAVX512VBMI},
	{AVX512VBMI2, &cpu.X86.HasAVX512VBMI2},
	{AVX512VNNI, &cpu.X86.HasAVX512VNNI},
	{AVX512BITALG, &cpu.X86.HasAVX512BITALG},
	{AVX512VPOPCNTDQ, &cpu.X86.HasAVX512VPOPCNTDQ},
	{AVX512BF16, &cpu.X86.HasAVX512BF16},
	{AES, &cpu.X86.HasAES},
	{PCLMULQDQ, &cpu.X86.HasPCLMULQDQ},
	{ADX, &cpu.X86.HasADX},
	{RDRAND, &cpu.X86.HasRDRAND},
	{RDSEED, &cpu.X86.HasRDSEED},
	{CMPXCHG16B, &cpu.X86.HasCX16},
	{ERMS, &cpu.X86.HasERMS},
	{OSXSAVE, &cpu.X86.HasOSXSAVE},
}

// cpuidFlags maps every feature to its klauspost/cpuid identifier.
var cpuidFlags = [numFeatures]cpuid.FeatureID{
	SSE:             cpuid.SSE,
	SSE2:            cpuid.SSE2,
	SSE3:            cpuid.SSE3,
	SSSE3:           cpuid.SSSE3,
	SSE41:           cpuid.SSE4,
	SSE42:           cpuid.SSE42,
	SSE4A:           cpuid.SSE4A,
	POPCNT:          cpuid.POPCNT,
	LZCNT:           cpuid.LZCNT,
	BMI1:            cpuid.BMI1,
	BMI2:            cpuid.BMI2,
	TBM:             cpuid.TBM,
	FMA:             cpuid.FMA3,
	F16C:            cpuid.F16C,
	AVX:             cpuid.AVX,
	AVX2:            cpuid.AVX2,
	AVX512F:         cpuid.AVX512F,
	AVX512BW:        cpuid.AVX512BW,
	AVX512CD:        cpuid.AVX512CD,
	AVX512DQ:        cpuid.AVX512DQ,
	AVX512ER:        cpuid.AVX512ER,
	AVX512PF:        cpuid.AVX512PF,
	AVX512VL:        cpuid.AVX512VL,
	AVX512IFMA:      cpuid.AVX512IFMA,
	AVX512VBMI:      cpuid.AVX512VBMI,
	AVX512VBMI2:     cpuid.AVX512VBMI2,
	AVX512VNNI:      cpuid.AVX512VNNI,
	AVX512BITALG:    cpuid.AVX512BITALG,
	AVX512VPOPCNTDQ: cpuid.AVX512VPOPCNTDQ,
	AVX512BF16:      cpuid.AVX512BF16,
	AES:             cpuid.AESNI,
	PCLMULQDQ:       cpuid.CLMUL,
	VPCLMULQDQ:      cpuid.VPCLMULQDQ,
	VAES:            cpuid.VAES,
	GFNI:            cpuid.GFNI,
	SHA:             cpuid.SHA,
	ADX:             cpuid.ADX,
	RDRAND:          cpuid.RDRAND,
	RDSEED:          cpuid.RDSEED,
	CMPXCHG16B:      cpuid.CX16,
	MOVBE:           cpuid.MOVBE,
	ERMS:            cpuid.ERMS,
	FXSR:            cpuid.FXSR,
	XSAVE:           cpuid.XSAVE,
	OSXSAVE:         cpuid.OSXSAVE,
	MMX:             cpuid.MMX,
}

// detectPlatform reads x/sys/cpu for the flags it exposes and fills the
// remaining ones (sse, mmx, sse4a, lzcnt, f16c, sha, ...) from cpuid.
func detectPlatform() cache.Initializer {
	var v cache.Initializer
	fromSys := make(map[Feature]bool, len(sysFlags))
	for _, fl := range sysFlags {
		fromSys[fl.feature] = true
		if *fl.has {
			v.Set(uint32(fl.feature))
		}
	}
	for f, id := range cpuidFlags {
		if fromSys[Feature(f)] {
			continue
		}
		if cpuid.CPU.Has(id) {
			v.Set(uint32(f))
		}
	}
	return v
}

// CPUIDDetect runs detection using only klauspost/cpuid. It ignores the
// environment configuration and reports false on architectures cpuid does
// not cover.
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
		HasSSE2:      IsFeatureDetected(SSE2),
		HasAVX:       IsFeatureDetected(AVX),
		HasAVX2:      IsFeatureDetected(AVX2),
		HasAVX512:    IsFeatureDetected(AVX512F) && IsFeatureDetected(AVX512BW) && IsFeatureDetected(AVX512VL),
		Architecture: runtime.GOARCH,
	}
}
