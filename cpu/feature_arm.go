//go:build arm

package cpu

// 32-bit arm capabilities.
const (
	NEON Feature = iota
	VFP
	VFPv3
	VFPv4
	IDIVA
	AES
	PMULL
	SHA1
	SHA2
	CRC32

	numFeatures
)

var featureNames = [numFeatures]string{
	NEON:  "neon",
	VFP:   "vfp",
	VFPv3: "vfpv3",
	VFPv4: "vfpv4",
	IDIVA: "idiva",
	AES:   "aes",
	PMULL: "pmull",
	SHA1:  "sha1",
	SHA2:  "sha2",
	CRC32: "crc32",
}
