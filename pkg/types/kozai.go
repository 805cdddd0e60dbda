// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// KozaiCandidate is an orbital record together with the metrics derived
// from it for Kozai-Lidov analysis. One candidate exists per qualifying
// record with a bound orbit (e < 1).
type KozaiCandidate struct {
	OrbitalRecord `yaml:",inline"`

	// KozaiParameter is |sqrt(1-e²)·cos i|, in [0, 1].
	KozaiParameter float64 `json:"kozai_parameter" yaml:"kozai_parameter"`

	// AngularMomentumZ is the signed z-component sqrt(1-e²)·cos i.
	AngularMomentumZ float64 `json:"h_z_component" yaml:"h_z_component"`

	// OmegaCirculation is 0 for a librating ω and 1 for a circulating one.
	OmegaCirculation float64 `json:"omega_circulation_indicator" yaml:"omega_circulation_indicator"`

	// ResonanceStrength is the derived coupling indicator. It is not clamped
	// below zero: e < 0.5 yields a negative eccentricity term.
	ResonanceStrength float64 `json:"resonance_strength" yaml:"resonance_strength"`

	// EstimatedKozaiPeriod is the oscillation period in years.
	EstimatedKozaiPeriod float64 `json:"estimated_kozai_period" yaml:"estimated_kozai_period"`

	// KozaiEvidenceScore is 0.4·K + 0.3·(1-circulation) + 0.3·resonance.
	KozaiEvidenceScore float64 `json:"kozai_evidence_score" yaml:"kozai_evidence_score"`
}

// EvidenceLevel classifies an evidence score against the strong and
// moderate thresholds.
type EvidenceLevel string

const (
	EvidenceStrong   EvidenceLevel = "strong"
	EvidenceModerate EvidenceLevel = "moderate"
	EvidenceWeak     EvidenceLevel = "weak"
)

// PerturberEstimate holds the hypothetical perturber parameters inferred
// from a population's statistics.
type PerturberEstimate struct {
	// DistanceMin and DistanceMax bound the perturber semi-major axis (AU).
	DistanceMin float64 `json:"distance_min" yaml:"distance_min"`
	DistanceMax float64 `json:"distance_max" yaml:"distance_max"`

	// MassMin and MassMax bound the perturber mass (Earth masses).
	MassMin float64 `json:"mass_min" yaml:"mass_min"`
	MassMax float64 `json:"mass_max" yaml:"mass_max"`

	// InclinationEstimate is relative to the TNO plane (degrees).
	InclinationEstimate float64 `json:"inclination_estimate" yaml:"inclination_estimate"`

	EccentricityEstimate float64 `json:"eccentricity_estimate" yaml:"eccentricity_estimate"`

	// Confidence is the overall confidence in [0, 1].
	Confidence float64 `json:"overall_confidence" yaml:"overall_confidence"`

	// Candidates names the bodies consistent with the estimate.
	Candidates []string `json:"candidates" yaml:"candidates"`
}

// ResonanceCluster groups candidates with similar eccentricity and
// inclination.
type ResonanceCluster struct {
	ID                int      `json:"id" yaml:"id"`
	Members           []string `json:"members" yaml:"members"`
	CenterE           float64  `json:"center_e" yaml:"center_e"`
	CenterI           float64  `json:"center_i" yaml:"center_i"`
	CenterA           float64  `json:"center_a" yaml:"center_a"`
	ResonanceType     string   `json:"resonance_type" yaml:"resonance_type"`
	SignatureStrength float64  `json:"kozai_signature_strength" yaml:"kozai_signature_strength"`
}

// OscillationAnalysis describes the expected Kozai-Lidov oscillation of a
// candidate population.
type OscillationAnalysis struct {
	// FundamentalPeriod is the mean estimated Kozai period (years).
	FundamentalPeriod float64   `json:"fundamental_period" yaml:"fundamental_period"`
	OvertonePeriods   []float64 `json:"overtone_periods" yaml:"overtone_periods"`
	MeanEAmplitude    float64   `json:"mean_e_amplitude" yaml:"mean_e_amplitude"`
	MeanIAmplitude    float64   `json:"mean_i_amplitude" yaml:"mean_i_amplitude"`
	PredictedMaxE     float64   `json:"predicted_max_e" yaml:"predicted_max_e"`
	PredictedMinE     float64   `json:"predicted_min_e" yaml:"predicted_min_e"`
	PredictedMaxI     float64   `json:"predicted_max_i" yaml:"predicted_max_i"`
	PredictedMinI     float64   `json:"predicted_min_i" yaml:"predicted_min_i"`
}

// KozaiResult is the output of a Kozai-Lidov analysis run.
type KozaiResult struct {
	// Candidates are sorted by evidence score, highest first.
	Candidates  []KozaiCandidate     `json:"candidates" yaml:"candidates"`
	Statistics  PopulationStatistics `json:"statistics" yaml:"statistics"`
	Perturber   PerturberEstimate    `json:"perturber" yaml:"perturber"`
	Clusters    []ResonanceCluster   `json:"resonance_clusters" yaml:"resonance_clusters"`
	Oscillation OscillationAnalysis  `json:"oscillation" yaml:"oscillation"`

	// Excluded lists records that matched the selection but could not be
	// scored (unbound orbits).
	Excluded []string `json:"excluded,omitempty" yaml:"excluded,omitempty"`
}
