//go:build 386 || amd64

package cpu

// x86 capabilities.
const (
	SSE Feature = iota
	SSE2
	SSE3
	SSSE3
	SSE41
	SSE42
	SSE4A
	POPCNT
	LZCNT
	BMI1
	BMI2
	TBM
	FMA
	F16C
	AVX
	AVX2
	AVX512F
	AVX512BW
	AVX512CD
	AVX512DQ
	AVX512ER
	AVX512PF
	AVX512VL
	AVX512IFMA
	AVX512VBMI
	AVX512VBMI2
	AVX512VNNI
	AVX512BITALG
	AVX512VPOPCNTDQ
	AVX512BF16
	AES
	PCLMULQDQ
	VPCLMULQDQ
	VAES
	GFNI
	SHA
	ADX
	RDRAND
	RDSEED
	CMPXCHG16B
	MOVBE
	ERMS
	FXSR
	XSAVE
	OSXSAVE
	MMX

	numFeatures
)

var featureNames = [numFeatures]string{
	SSE:             "sse",
	SSE2:            "sse2",
	SSE3:            "sse3",
	SSSE3:           "ssse3",
	SSE41:           "sse4.1",
	SSE42:           "sse4.2",
	SSE4A:           "sse4a",
	POPCNT:          "popcnt",
	LZCNT:           "lzcnt",
	BMI1:            "bmi1",
	BMI2:            "bmi2",
	TBM:             "tbm",
	FMA:             "fma",
	F16C:            "f16c",
	AVX:             "avx",
	AVX2:            "avx2",
	AVX512F:         "avx512f",
	AVX512BW:        "avx512bw",
	AVX512CD:        "avx512cd",
	AVX512DQ:        "avx512dq",
	AVX512ER:        "avx512er",
	AVX512PF:        "avx512pf",
	AVX512VL:        "avx512vl",
	AVX512IFMA:      "avx512ifma",
	AVX512VBMI:      "avx512vbmi",
	AVX512VBMI2:     "avx512vbmi2",
	AVX512VNNI:      "avx512vnni",
	AVX512BITALG:    "avx512bitalg",
	AVX512VPOPCNTDQ: "avx512vpopcntdq",
	AVX512BF16:      "avx512bf16",
	AES:             "aes",
	PCLMULQDQ:       "pclmulqdq",
	VPCLMULQDQ:      "vpclmulqdq",
	VAES:            "vaes",
	GFNI:            "gfni",
	SHA:             "sha",
	ADX:             "adx",
	RDRAND:          "rdrand",
	RDSEED:          "rdseed",
	CMPXCHG16B:      "cmpxchg16b",
	MOVBE:           "movbe",
	ERMS:            "erms",
	FXSR:            "fxsr",
	XSAVE:           "xsave",
	OSXSAVE:         "osxsave",
	MMX:             "mmx",
}
