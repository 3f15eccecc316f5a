//go:build (amd64 || arm64) && !purego

package accel

import (
	"runtime"

	vmcpu "github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-simd/cpu"
)

// algo-vecmath dispatches on its own detection. Forward a forced generic
// configuration so it does not pick an assembly path behind our back.
func init() {
	if cfg, err := cpu.LoadConfig(); err == nil && cfg.ForceGeneric {
		vmcpu.SetForcedFeatures(vmcpu.Features{
			ForceGeneric: true,
			Architecture: runtime.GOARCH,
		})
	}
}
