//go:build !386 && !amd64 && !arm64 && !arm

package cpu

import (
	"runtime"

	"github.com/cwbudde/algo-simd/internal/cache"
)

func detectPlatform() cache.Initializer {
	return cache.Initializer{}
}

// CPUIDDetect reports false: klauspost/cpuid does not cover this GOARCH.
func CPUIDDetect() (cache.Initializer, bool) {
	return cache.Initializer{}, false
}

func snapshot() Features {
	return Features{Architecture: runtime.GOARCH}
}
