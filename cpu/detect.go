package cpu

import (
	"log/slog"
	"sync/atomic"

	"github.com/cwbudde/algo-simd/internal/cache"
)

var (
	detectCalls atomic.Uint64

	// forcedGeneric records ALGOSIMD_FORCE_GENERIC as seen by the
	// cache's detection.
	forcedGeneric atomic.Bool
)

// detect is the cache's detector. Concurrent first queries may each run it.
func detect() cache.Initializer {
	detectCalls.Add(1)
	cfg := loadConfig()
	forcedGeneric.Store(cfg.ForceGeneric)
	return cfg.Apply(detectPlatform())
}

// Detect runs one detection pass, with the environment configuration
// applied. The result is not cached; use IsFeatureDetected for queries.
func Detect() cache.Initializer {
	return loadConfig().Apply(detectPlatform())
}

func loadConfig() Config {
	cfg, err := LoadConfig()
	if err != nil {
		slog.Warn("cpu: invalid configuration, detecting without overrides", "error", err)
		return Config{}
	}
	return cfg
}

// DetectRaw runs one detection pass without applying the environment
// configuration.
func DetectRaw() cache.Initializer {
	return detectPlatform()
}

// DetectCalls returns how many times the cache has run detection in this
// process. It is 0 before the first query and normally 1 afterwards; racing
// first queries can push it higher.
func DetectCalls() uint64 {
	return detectCalls.Load()
}

// IsFeatureDetected reports whether the running CPU supports f. The first
// call in the process runs detection.
func IsFeatureDetected(f Feature) bool {
	return cache.Test(uint32(f), detect)
}

// Detected returns the features the running CPU supports, in bit order.
func Detected() []Feature {
	var out []Feature
	for _, f := range AllFeatures() {
		if IsFeatureDetected(f) {
			out = append(out, f)
		}
	}
	return out
}
