// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// FieldSummary holds descriptive statistics for one numeric field over a
// population. StdDev is the population standard deviation (divide by N).
type FieldSummary struct {
	Mean   float64 `json:"mean" yaml:"mean"`
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
	Median float64 `json:"median" yaml:"median"`
	StdDev float64 `json:"std_dev" yaml:"std_dev"`
}

// PopulationStatistics aggregates a filtered subset of records. It is
// recomputed from scratch on every run; an empty subset yields the zero
// value.
type PopulationStatistics struct {
	Count int `json:"count" yaml:"count"`

	SemiMajorAxis FieldSummary `json:"a" yaml:"a"`
	Eccentricity  FieldSummary `json:"e" yaml:"e"`
	Inclination   FieldSummary `json:"i" yaml:"i"`
	Perihelion    FieldSummary `json:"q" yaml:"q"`
	Aphelion      FieldSummary `json:"ad" yaml:"ad"`
	Period        FieldSummary `json:"period" yaml:"period"`

	// MeanKozaiParameter and the evidence counts are only populated for
	// scored candidates.
	MeanKozaiParameter    float64 `json:"avg_kozai_param" yaml:"avg_kozai_param"`
	StrongEvidenceCount   int     `json:"strong_kozai_count" yaml:"strong_kozai_count"`
	ModerateEvidenceCount int     `json:"moderate_kozai_count" yaml:"moderate_kozai_count"`

	HighEccentricityCount  int `json:"high_eccentricity_count" yaml:"high_eccentricity_count"`
	HighInclinationCount   int `json:"high_inclination_count" yaml:"high_inclination_count"`
	PerihelionAlignedCount int `json:"perihelion_aligned_count" yaml:"perihelion_aligned_count"`

	// ExcludedCount is the number of records rejected by per-record
	// computations (unbound orbits).
	ExcludedCount int `json:"excluded_count" yaml:"excluded_count"`
}

// AnomalyAnalysis summarizes orbital anomalies of a population that are
// read as evidence for a distant perturber.
type AnomalyAnalysis struct {
	// OmegaStdDev and NodeStdDev are linear population standard deviations
	// of ω and Ω (degrees). Lower values indicate clustering.
	OmegaStdDev float64 `json:"omega_clustering_std" yaml:"omega_clustering_std"`
	NodeStdDev  float64 `json:"node_clustering_std" yaml:"node_clustering_std"`

	HighEccentricityCount  int     `json:"high_eccentricity_count" yaml:"high_eccentricity_count"`
	HighInclinationCount   int     `json:"high_inclination_count" yaml:"high_inclination_count"`
	PerihelionAlignedCount int     `json:"perihelion_aligned_count" yaml:"perihelion_aligned_count"`
	MeanPerturbation       float64 `json:"avg_perturbation_strength" yaml:"avg_perturbation_strength"`
	DistantFlagCount       int     `json:"distant_object_flag_count" yaml:"distant_object_flag_count"`
}

// PlanetNineSignature captures the clustering pattern expected from a
// massive distant perturber among extreme objects.
type PlanetNineSignature struct {
	TotalExtreme int      `json:"total_extreme_objects" yaml:"total_extreme_objects"`
	Objects      []string `json:"objects" yaml:"objects"`

	// ClusterNear0 counts ω < 45° or ω > 315°; ClusterNear180 counts
	// 135° < ω < 225°.
	ClusterNear0    int     `json:"kozai_cluster_0" yaml:"kozai_cluster_0"`
	ClusterNear180  int     `json:"kozai_cluster_180" yaml:"kozai_cluster_180"`
	ClusterFraction float64 `json:"cluster_fraction" yaml:"cluster_fraction"`

	MeanPerturbation      float64 `json:"avg_perturbation_strength" yaml:"avg_perturbation_strength"`
	HighEccentricFraction float64 `json:"high_eccentricity_fraction" yaml:"high_eccentricity_fraction"`

	// PerihelionLongitudeMean is the circular mean of ϖ = Ω + ω (degrees).
	PerihelionLongitudeMean float64 `json:"perihelion_longitude_mean" yaml:"perihelion_longitude_mean"`

	// PerihelionConcentration is the mean resultant length R̄ of ϖ:
	// 0 for a uniform spread, 1 for perfect alignment.
	PerihelionConcentration float64 `json:"perihelion_concentration" yaml:"perihelion_concentration"`
}

// FilteringCriteria records the thresholds that selected a population.
type FilteringCriteria struct {
	SemiMajorAxisMin float64 `json:"semi_major_axis_min" yaml:"semi_major_axis_min"`
	PerihelionMin    float64 `json:"perihelion_min" yaml:"perihelion_min"`
}

// ExtremeResult is the output of an extreme-TNO analysis run.
type ExtremeResult struct {
	Criteria FilteringCriteria `json:"filtering_criteria" yaml:"filtering_criteria"`

	// Extreme holds a > min AND q > min objects, sorted by a descending.
	Extreme []OrbitalRecord `json:"extreme_objects" yaml:"extreme_objects"`

	// HighA and HighQ hold the objects meeting each criterion alone.
	HighA []OrbitalRecord `json:"high_a_objects" yaml:"high_a_objects"`
	HighQ []OrbitalRecord `json:"high_q_objects" yaml:"high_q_objects"`

	Statistics PopulationStatistics `json:"statistics" yaml:"statistics"`
	Anomalies  AnomalyAnalysis      `json:"anomalies" yaml:"anomalies"`
	Signature  PlanetNineSignature  `json:"planet_nine_signature" yaml:"planet_nine_signature"`
}
