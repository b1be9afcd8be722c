package config

import (
	"testing"

	"gosupport/domain/stats"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Analysis.SupportUnits != stats.DefaultSupportUnits {
		t.Errorf("SupportUnits = %f, want %f", cfg.Analysis.SupportUnits, stats.DefaultSupportUnits)
	}
	if cfg.Analysis.Alpha != stats.DefaultAlpha {
		t.Errorf("Alpha = %f, want %f", cfg.Analysis.Alpha, stats.DefaultAlpha)
	}
	if cfg.Plot.Enabled {
		t.Error("plotting should be off by default")
	}
	if cfg.Plot.Width <= 0 || cfg.Plot.Height <= 0 {
		t.Errorf("plot dimensions %dx%d must be positive", cfg.Plot.Width, cfg.Plot.Height)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SUPPORT_UNITS", "3")
	t.Setenv("ALPHA", "0.01")
	t.Setenv("TOLERANCE", "1e-6")
	t.Setenv("PLOT_FLOOR", "-5")
	t.Setenv("PLOT_CURVE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Analysis.SupportUnits != 3 {
		t.Errorf("SupportUnits = %f, want 3", cfg.Analysis.SupportUnits)
	}
	if cfg.Analysis.Alpha != 0.01 {
		t.Errorf("Alpha = %f, want 0.01", cfg.Analysis.Alpha)
	}
	if cfg.Analysis.Tolerance != 1e-6 {
		t.Errorf("Tolerance = %g, want 1e-6", cfg.Analysis.Tolerance)
	}
	if cfg.Analysis.PlotFloor != -5 {
		t.Errorf("PlotFloor = %f, want -5", cfg.Analysis.PlotFloor)
	}
	if !cfg.Plot.Enabled {
		t.Error("PLOT_CURVE=true must enable plotting")
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		key, value string
	}{
		{"ALPHA", "1.5"},
		{"ALPHA", "garbage"},
		{"SUPPORT_UNITS", "-2"},
		{"TOLERANCE", "0"},
		{"PLOT_FLOOR", "1"},
	}
	for _, tc := range cases {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%s", tc.key, tc.value)
			}
		})
	}
}
