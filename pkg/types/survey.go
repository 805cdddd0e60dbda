// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PerturbationBands partitions a population by catalog perturbation
// strength.
type PerturbationBands struct {
	// High holds objects above the high threshold, strongest first.
	High   []OrbitalRecord `json:"high" yaml:"high"`
	Medium int             `json:"medium_count" yaml:"medium_count"`
	Low    int             `json:"low_count" yaml:"low_count"`
}

// AxisSweep holds the analysis of all objects beyond one semi-major axis
// threshold.
type AxisSweep struct {
	MinA  float64 `json:"semi_major_axis_min" yaml:"semi_major_axis_min"`
	Count int     `json:"count" yaml:"count"`

	// Near0, Near180 and Scattered partition the objects by argument of
	// perihelion.
	Near0     []string `json:"cluster_0" yaml:"cluster_0"`
	Near180   []string `json:"cluster_180" yaml:"cluster_180"`
	Scattered int      `json:"scattered_count" yaml:"scattered_count"`

	MeanPerturbation float64           `json:"avg_perturbation_strength" yaml:"avg_perturbation_strength"`
	Perturbation     PerturbationBands `json:"perturbation" yaml:"perturbation"`
}

// EccentricitySweep lists the objects beyond one eccentricity threshold,
// sorted by e descending.
type EccentricitySweep struct {
	MinE    float64         `json:"eccentricity_min" yaml:"eccentricity_min"`
	Objects []OrbitalRecord `json:"objects" yaml:"objects"`
}

// EvidenceSynthesis condenses the survey into headline counts.
type EvidenceSynthesis struct {
	ExtremeCore       int     `json:"extreme_core" yaml:"extreme_core"`
	HighA             int     `json:"high_a" yaml:"high_a"`
	HighQ             int     `json:"high_q" yaml:"high_q"`
	HighE             int     `json:"high_e" yaml:"high_e"`
	MeanPerturbHighA  float64 `json:"avg_pert_high_a" yaml:"avg_pert_high_a"`
	DistantFlagsHighA int     `json:"distant_flag_sum" yaml:"distant_flag_sum"`
}

// SurveyResult is the output of a comprehensive survey run across the
// threshold sweeps.
type SurveyResult struct {
	ExtremeCore []OrbitalRecord `json:"extreme_core" yaml:"extreme_core"`

	// HighA is sorted by a descending, HighQ by q descending.
	HighA      []OrbitalRecord      `json:"high_a" yaml:"high_a"`
	HighAStats PopulationStatistics `json:"high_a_statistics" yaml:"high_a_statistics"`
	HighQ      []OrbitalRecord      `json:"high_q" yaml:"high_q"`
	HighQStats PopulationStatistics `json:"high_q_statistics" yaml:"high_q_statistics"`

	AxisSweeps         []AxisSweep         `json:"axis_sweeps" yaml:"axis_sweeps"`
	EccentricitySweeps []EccentricitySweep `json:"eccentricity_sweeps" yaml:"eccentricity_sweeps"`
	Synthesis          EvidenceSynthesis   `json:"synthesis" yaml:"synthesis"`
}
