package types

import (
	"fmt"
	"net/url"
	"time"
)

// Default selection thresholds. Every comparison against a threshold is
// strict, so a value exactly on the threshold is excluded.
const (
	DefaultExtremeMinA = 250.0 // AU
	DefaultExtremeMinQ = 30.0  // AU

	DefaultKozaiMinE = 0.5
	DefaultKozaiMinI = 30.0 // degrees
	DefaultKozaiMinA = 50.0 // AU

	DefaultStrongEvidence   = 0.7
	DefaultModerateEvidence = 0.5

	DefaultHighEccentricity = 0.8
	DefaultHighInclination  = 40.0 // degrees

	DefaultHighPerturbation   = 0.6
	DefaultMediumPerturbation = 0.5
)

// Thresholds holds every selection and classification threshold used by
// the scorer.
type Thresholds struct {
	// ExtremeMinA and ExtremeMinQ select extreme TNOs (a > A AND q > Q).
	ExtremeMinA float64 `json:"extreme_min_a" yaml:"extreme_min_a" mapstructure:"extreme_min_a"`
	ExtremeMinQ float64 `json:"extreme_min_q" yaml:"extreme_min_q" mapstructure:"extreme_min_q"`

	// KozaiMinE, KozaiMinI and KozaiMinA select Kozai-Lidov candidates.
	KozaiMinE float64 `json:"kozai_min_e" yaml:"kozai_min_e" mapstructure:"kozai_min_e"`
	KozaiMinI float64 `json:"kozai_min_i" yaml:"kozai_min_i" mapstructure:"kozai_min_i"`
	KozaiMinA float64 `json:"kozai_min_a" yaml:"kozai_min_a" mapstructure:"kozai_min_a"`

	// SweepA and SweepE are the survey thresholds, reported in order.
	SweepA []float64 `json:"sweep_a" yaml:"sweep_a" mapstructure:"sweep_a"`
	SweepE []float64 `json:"sweep_e" yaml:"sweep_e" mapstructure:"sweep_e"`

	StrongEvidence   float64 `json:"strong_evidence" yaml:"strong_evidence" mapstructure:"strong_evidence"`
	ModerateEvidence float64 `json:"moderate_evidence" yaml:"moderate_evidence" mapstructure:"moderate_evidence"`

	HighEccentricity float64 `json:"high_eccentricity" yaml:"high_eccentricity" mapstructure:"high_eccentricity"`
	HighInclination  float64 `json:"high_inclination" yaml:"high_inclination" mapstructure:"high_inclination"`

	HighPerturbation   float64 `json:"high_perturbation" yaml:"high_perturbation" mapstructure:"high_perturbation"`
	MediumPerturbation float64 `json:"medium_perturbation" yaml:"medium_perturbation" mapstructure:"medium_perturbation"`
}

// DefaultThresholds returns the published selection thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ExtremeMinA:        DefaultExtremeMinA,
		ExtremeMinQ:        DefaultExtremeMinQ,
		KozaiMinE:          DefaultKozaiMinE,
		KozaiMinI:          DefaultKozaiMinI,
		KozaiMinA:          DefaultKozaiMinA,
		SweepA:             []float64{250, 200, 150},
		SweepE:             []float64{0.8, 0.7, 0.6},
		StrongEvidence:     DefaultStrongEvidence,
		ModerateEvidence:   DefaultModerateEvidence,
		HighEccentricity:   DefaultHighEccentricity,
		HighInclination:    DefaultHighInclination,
		HighPerturbation:   DefaultHighPerturbation,
		MediumPerturbation: DefaultMediumPerturbation,
	}
}

// Validate checks that thresholds are usable: every threshold positive,
// eccentricity thresholds below 1, and both sweeps non-empty.
func (t Thresholds) Validate() error {
	positive := map[string]float64{
		"extreme_min_a":       t.ExtremeMinA,
		"extreme_min_q":       t.ExtremeMinQ,
		"kozai_min_e":         t.KozaiMinE,
		"kozai_min_i":         t.KozaiMinI,
		"kozai_min_a":         t.KozaiMinA,
		"strong_evidence":     t.StrongEvidence,
		"moderate_evidence":   t.ModerateEvidence,
		"high_eccentricity":   t.HighEccentricity,
		"high_inclination":    t.HighInclination,
		"high_perturbation":   t.HighPerturbation,
		"medium_perturbation": t.MediumPerturbation,
	}
	for name, v := range positive {
		if v <= 0 {
			return fmt.Errorf("threshold %s must be positive, got %v", name, v)
		}
	}
	for name, v := range map[string]float64{"kozai_min_e": t.KozaiMinE, "high_eccentricity": t.HighEccentricity} {
		if v >= 1 {
			return fmt.Errorf("threshold %s must be below 1, got %v", name, v)
		}
	}
	if t.ModerateEvidence > t.StrongEvidence {
		return fmt.Errorf("moderate_evidence (%v) exceeds strong_evidence (%v)", t.ModerateEvidence, t.StrongEvidence)
	}
	if t.MediumPerturbation > t.HighPerturbation {
		return fmt.Errorf("medium_perturbation (%v) exceeds high_perturbation (%v)", t.MediumPerturbation, t.HighPerturbation)
	}

	if len(t.SweepA) == 0 {
		return fmt.Errorf("sweep_a must list at least one threshold")
	}
	for _, v := range t.SweepA {
		if v <= 0 {
			return fmt.Errorf("sweep_a threshold must be positive, got %v", v)
		}
	}
	if len(t.SweepE) == 0 {
		return fmt.Errorf("sweep_e must list at least one threshold")
	}
	for _, v := range t.SweepE {
		if v <= 0 || v >= 1 {
			return fmt.Errorf("sweep_e threshold must be in (0, 1), got %v", v)
		}
	}
	return nil
}

// ExportFormat selects the machine-readable export written next to each
// text report.
type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportYAML ExportFormat = "yaml"
	ExportBoth ExportFormat = "both"
)

// CatalogConfig locates the input catalog.
type CatalogConfig struct {
	// Path is the CSV catalog file.
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// ReportConfig holds settings for report output.
type ReportConfig struct {
	// Dir is the directory reports and exports are written to.
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`

	Format ExportFormat `json:"format" yaml:"format" mapstructure:"format"`

	// TopN limits ranked listings in the text reports (default 15).
	TopN int `json:"top_n" yaml:"top_n" mapstructure:"top_n"`

	// Stdout also prints each text report to standard output.
	Stdout bool `json:"stdout" yaml:"stdout" mapstructure:"stdout"`
}

// FetchConfig holds settings for downloading a catalog over HTTP.
type FetchConfig struct {
	// URL is the catalog source.
	URL string `json:"url" yaml:"url" mapstructure:"url"`

	Timeout   time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
	UserAgent string        `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	// MaxRetries bounds retries on HTTP 429/503 (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`

	// Token is sent as a bearer token when set. When empty it is read from
	// the catalog-token file in SecretsDir.
	Token      string `json:"-" yaml:"-" mapstructure:"token"`
	SecretsDir string `json:"secrets_dir" yaml:"secrets_dir" mapstructure:"secrets_dir"`
}

// Config groups all settings for a tno-evidence run.
type Config struct {
	LogLevel   string        `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
	Catalog    CatalogConfig `json:"catalog" yaml:"catalog" mapstructure:"catalog"`
	Report     ReportConfig  `json:"report" yaml:"report" mapstructure:"report"`
	Fetch      FetchConfig   `json:"fetch" yaml:"fetch" mapstructure:"fetch"`
	Thresholds Thresholds    `json:"thresholds" yaml:"thresholds" mapstructure:"thresholds"`
}

// DefaultConfig returns the configuration used when no file overrides it.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Catalog: CatalogConfig{
			Path: "data/DISTANT_OBJECTS_DATA.csv",
		},
		Report: ReportConfig{
			Dir:    "reports",
			Format: ExportJSON,
			TopN:   15,
		},
		Fetch: FetchConfig{
			Timeout:    60 * time.Second,
			UserAgent:  "tno-evidence/0.1",
			MaxRetries: 5,
			SecretsDir: ".secrets",
		},
		Thresholds: DefaultThresholds(),
	}
}

// Validate checks the configuration for values the pipeline cannot run with.
func (c Config) Validate() error {
	if c.Catalog.Path == "" {
		return fmt.Errorf("catalog path cannot be empty")
	}
	switch c.Report.Format {
	case ExportJSON, ExportYAML, ExportBoth:
	default:
		return fmt.Errorf("unsupported export format %q: use json, yaml, or both", c.Report.Format)
	}
	if c.Fetch.URL != "" {
		if _, err := url.ParseRequestURI(c.Fetch.URL); err != nil {
			return fmt.Errorf("invalid fetch url: %w", err)
		}
	}
	return c.Thresholds.Validate()
}
