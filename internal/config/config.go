// Package config loads analysis defaults from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"gosupport/domain/stats"
)

// Config holds process-level settings for the CLI and reporting adapters.
type Config struct {
	Analysis stats.CategoricalOptions
	Plot     PlotConfig
}

// PlotConfig holds likelihood-curve rendering settings.
type PlotConfig struct {
	Enabled bool
	Width   int
	Height  int
}

// Load reads configuration from the environment, with a best-effort .env
// load first. Unset variables fall back to the documented defaults.
func Load() (*Config, error) {
	_ = godotenv.Load() // absence of a .env file is not an error

	cfg := &Config{
		Analysis: stats.DefaultCategoricalOptions(),
		Plot:     PlotConfig{Width: 64, Height: 14},
	}

	var err error
	if cfg.Analysis.SupportUnits, err = floatEnv("SUPPORT_UNITS", cfg.Analysis.SupportUnits); err != nil {
		return nil, err
	}
	if cfg.Analysis.Alpha, err = floatEnv("ALPHA", cfg.Analysis.Alpha); err != nil {
		return nil, err
	}
	if cfg.Analysis.Tolerance, err = floatEnv("TOLERANCE", cfg.Analysis.Tolerance); err != nil {
		return nil, err
	}
	if cfg.Analysis.PlotFloor, err = floatEnv("PLOT_FLOOR", cfg.Analysis.PlotFloor); err != nil {
		return nil, err
	}
	cfg.Plot.Enabled = os.Getenv("PLOT_CURVE") == "true"

	if cfg.Analysis.Alpha <= 0 || cfg.Analysis.Alpha >= 1 {
		return nil, fmt.Errorf("ALPHA must be in (0,1), got %v", cfg.Analysis.Alpha)
	}
	if cfg.Analysis.SupportUnits <= 0 {
		return nil, fmt.Errorf("SUPPORT_UNITS must be > 0, got %v", cfg.Analysis.SupportUnits)
	}
	if cfg.Analysis.Tolerance <= 0 {
		return nil, fmt.Errorf("TOLERANCE must be > 0, got %v", cfg.Analysis.Tolerance)
	}
	if cfg.Analysis.PlotFloor >= 0 {
		return nil, fmt.Errorf("PLOT_FLOOR must be < 0, got %v", cfg.Analysis.PlotFloor)
	}
	return cfg, nil
}

func floatEnv(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s=%q: %w", key, raw, err)
	}
	return v, nil
}
