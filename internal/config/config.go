// Package config loads the optional overlay file (and environment
// variables) that tune the aggregator without touching a flag: freshness
// windows per ATS, the project-root directory the filesystem layout is
// relative to, and the canonical snapshot output path. The CLI flags
// parsed by cobra always take precedence over this overlay.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is the resolved configuration for one aggregator run.
type Config struct {
	// RootDir is the directory the filesystem layout (ashby/, greenhouse/,
	// ai-DD-MM-YYYY.csv, ...) is resolved relative to.
	RootDir string

	// OutputPath is the canonical snapshot path, default "map/public/ai.csv".
	OutputPath string

	// DefaultFreshness is the freshness window used when a source has no
	// specific override.
	DefaultFreshness time.Duration

	// FreshnessOverrides maps an ats_type string to its own window, e.g.
	// "apple" -> 6h, "uber" -> 6h, "nvidia" -> 12h.
	FreshnessOverrides map[string]time.Duration
}

// Default returns the out-of-the-box configuration, matching spec's stated
// defaults: a 1 hour freshness window, 6h for apple/uber, 12h for nvidia.
func Default() Config {
	return Config{
		RootDir:          ".",
		OutputPath:       "map/public/ai.csv",
		DefaultFreshness: time.Hour,
		FreshnessOverrides: map[string]time.Duration{
			"apple": 6 * time.Hour,
			"uber":  6 * time.Hour,
			"nvidia": 12 * time.Hour,
		},
	}
}

// Load reads an optional overlay file (if configPath is non-empty) and
// environment variables prefixed JOBATLAS_, merging on top of Default().
// A missing configPath is not an error - it simply means "use defaults".
func Load(configPath string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetEnvPrefix("JOBATLAS")
	v.AutomaticEnv()

	v.SetDefault("root_dir", cfg.RootDir)
	v.SetDefault("output_path", cfg.OutputPath)
	v.SetDefault("default_freshness_hours", cfg.DefaultFreshness.Hours())
	v.SetDefault("freshness_overrides_hours", map[string]interface{}{
		"apple":  6.0,
		"uber":   6.0,
		"nvidia": 12.0,
	})

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("read config %s: %w", configPath, err)
		}
	}

	cfg.RootDir = v.GetString("root_dir")
	cfg.OutputPath = v.GetString("output_path")
	cfg.DefaultFreshness = time.Duration(v.GetFloat64("default_freshness_hours") * float64(time.Hour))

	overrides := map[string]time.Duration{}
	for ats, hours := range v.GetStringMap("freshness_overrides_hours") {
		if h, ok := hours.(float64); ok {
			overrides[ats] = time.Duration(h * float64(time.Hour))
		}
	}
	cfg.FreshnessOverrides = overrides

	return cfg, nil
}
