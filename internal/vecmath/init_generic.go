package vecmath

import (
	// Pure Go fallback, registered on every platform.
	_ "github.com/cwbudde/algo-simd/internal/vecmath/arch/generic"
)
