package cpu

import (
	"log/slog"

	"github.com/kelseyhightower/envconfig"

	"github.com/cwbudde/algo-simd/internal/cache"
)

// EnvPrefix prefixes every environment variable read by LoadConfig.
const EnvPrefix = "ALGOSIMD"

// Config masks detected capabilities.
type Config struct {
	// Disable lists feature names to report as absent (ALGOSIMD_DISABLE).
	Disable []string `envconfig:"DISABLE"`

	// ForceGeneric reports every feature as absent (ALGOSIMD_FORCE_GENERIC).
	ForceGeneric bool `envconfig:"FORCE_GENERIC" default:"false"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Apply returns v with the features disabled by cfg cleared. Unknown feature
// names are logged and skipped.
func (cfg Config) Apply(v cache.Initializer) cache.Initializer {
	if cfg.ForceGeneric {
		return cache.Initializer{}
	}
	for _, name := range cfg.Disable {
		if name == "" {
			continue
		}
		f, ok := ParseFeature(name)
		if !ok {
			slog.Warn("cpu: ignoring unknown feature", "variable", EnvPrefix+"_DISABLE", "feature", name)
			continue
		}
		v.Clear(uint32(f))
	}
	return v
}
