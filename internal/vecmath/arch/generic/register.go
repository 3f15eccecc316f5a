package generic

import (
	"github.com/cwbudde/algo-simd/cpu"
	"github.com/cwbudde/algo-simd/internal/vecmath/registry"
)

// init registers the baseline implementation. It is compatible with every
// CPU and has the lowest priority.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		AddBlock:        AddBlock,
		MulBlock:        MulBlock,
		MulBlockInPlace: MulBlockInPlace,
		ScaleBlock:      ScaleBlock,
		Sum:             Sum,
		DotProduct:      DotProduct,
		MaxAbs:          MaxAbs,
		Magnitude:       Magnitude,
		Power:           Power,
	})
}
