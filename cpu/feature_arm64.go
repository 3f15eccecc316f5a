//go:build arm64

package cpu

// arm64 capabilities.
const (
	FP Feature = iota
	ASIMD
	AES
	PMULL
	SHA1
	SHA2
	SHA3
	SHA512
	SM3
	SM4
	CRC32
	ATOMICS
	FPHP
	ASIMDHP
	ASIMDRDM
	ASIMDDP
	ASIMDFHM
	JSCVT
	FCMA
	LRCPC
	DCPOP
	SVE
	SVE2
	CPUID
	EVTSTRM

	numFeatures
)

var featureNames = [numFeatures]string{
	FP:       "fp",
	ASIMD:    "asimd",
	AES:      "aes",
	PMULL:    "pmull",
	SHA1:     "sha1",
	SHA2:     "sha2",
	SHA3:     "sha3",
	SHA512:   "sha512",
	SM3:      "sm3",
	SM4:      "sm4",
	CRC32:    "crc32",
	ATOMICS:  "atomics",
	FPHP:     "fphp",
	ASIMDHP:  "asimdhp",
	ASIMDRDM: "asimdrdm",
	ASIMDDP:  "asimddp",
	ASIMDFHM: "asimdfhm",
	JSCVT:    "jscvt",
	FCMA:     "fcma",
	LRCPC:    "lrcpc",
	DCPOP:    "dcpop",
	SVE:      "sve",
	SVE2:     "sve2",
	CPUID:    "cpuid",
	EVTSTRM:  "evtstrm",
}
