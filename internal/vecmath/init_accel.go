//go:build (amd64 || arm64) && !purego

package vecmath

import (
	_ "github.com/cwbudde/algo-simd/internal/vecmath/arch/accel"
)
