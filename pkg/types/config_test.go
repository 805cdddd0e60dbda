package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		errMsg string
	}{
		{"empty catalog path", func(c *Config) { c.Catalog.Path = "" }, "catalog path"},
		{"unknown format", func(c *Config) { c.Report.Format = "xml" }, "unsupported export format"},
		{"bad fetch url", func(c *Config) { c.Fetch.URL = "not a url" }, "invalid fetch url"},
		{"zero extreme a", func(c *Config) { c.Thresholds.ExtremeMinA = 0 }, "extreme_min_a"},
		{"negative kozai e", func(c *Config) { c.Thresholds.KozaiMinE = -0.1 }, "kozai_min_e"},
		{"moderate above strong", func(c *Config) { c.Thresholds.ModerateEvidence = 0.9 }, "moderate_evidence"},
		{"medium above high perturbation", func(c *Config) { c.Thresholds.MediumPerturbation = 0.7 }, "medium_perturbation"},
		{"zero kozai i", func(c *Config) { c.Thresholds.KozaiMinI = 0 }, "kozai_min_i"},
		{"negative high eccentricity", func(c *Config) { c.Thresholds.HighEccentricity = -0.8 }, "high_eccentricity"},
		{"unbound high eccentricity", func(c *Config) { c.Thresholds.HighEccentricity = 1 }, "high_eccentricity"},
		{"zero high inclination", func(c *Config) { c.Thresholds.HighInclination = 0 }, "high_inclination"},
		{"empty sweep a", func(c *Config) { c.Thresholds.SweepA = nil }, "sweep_a"},
		{"negative sweep a", func(c *Config) { c.Thresholds.SweepA = []float64{250, -1} }, "sweep_a"},
		{"empty sweep e", func(c *Config) { c.Thresholds.SweepE = []float64{} }, "sweep_e"},
		{"sweep e above 1", func(c *Config) { c.Thresholds.SweepE = []float64{0.8, 1.2} }, "sweep_e"},
		{"yaml format", func(c *Config) { c.Report.Format = ExportYAML }, ""},
		{"valid fetch url", func(c *Config) { c.Fetch.URL = "https://example.org/catalog.csv" }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{725, 5},
		{-90, 270},
		{-1e-15, 0},
	}
	for _, tt := range tests {
		got := NormalizeDegrees(tt.in)
		assert.InDelta(t, tt.want, got, 1e-9, "NormalizeDegrees(%v)", tt.in)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.Less(t, got, 360.0)
	}
}

func TestLongitudeOfPerihelion(t *testing.T) {
	r := OrbitalRecord{AscendingNode: 144.5, ArgOfPerihelion: 311.5}
	assert.InDelta(t, 96.0, r.LongitudeOfPerihelion(), 1e-9)
}
