// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scorer

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pdiddy/tno-evidence/pkg/types"
)

// Summarize computes population statistics over records. An empty slice
// yields the zero value.
func Summarize(records []types.OrbitalRecord, th types.Thresholds) types.PopulationStatistics {
	n := len(records)
	if n == 0 {
		return types.PopulationStatistics{}
	}

	a := make([]float64, n)
	e := make([]float64, n)
	i := make([]float64, n)
	q := make([]float64, n)
	ad := make([]float64, n)
	period := make([]float64, n)
	for k, r := range records {
		a[k], e[k], i[k], q[k], ad[k], period[k] = r.A, r.E, r.I, r.Q, r.AD, r.Period
	}

	return types.PopulationStatistics{
		Count:                  n,
		SemiMajorAxis:          summarizeField(a),
		Eccentricity:           summarizeField(e),
		Inclination:            summarizeField(i),
		Perihelion:             summarizeField(q),
		Aphelion:               summarizeField(ad),
		Period:                 summarizeField(period),
		HighEccentricityCount:  Count(records, EccentricityAbove(th.HighEccentricity)),
		HighInclinationCount:   Count(records, InclinationAbove(th.HighInclination)),
		PerihelionAlignedCount: Count(records, PerihelionAligned),
	}
}

// SummarizeCandidates extends Summarize with the Kozai parameter mean and
// the evidence counts of scored candidates.
func SummarizeCandidates(cands []types.KozaiCandidate, th types.Thresholds) types.PopulationStatistics {
	records := make([]types.OrbitalRecord, len(cands))
	kozai := make([]float64, len(cands))
	for k, c := range cands {
		records[k] = c.OrbitalRecord
		kozai[k] = c.KozaiParameter
	}

	stats := Summarize(records, th)
	if len(cands) == 0 {
		return stats
	}

	stats.MeanKozaiParameter = stat.Mean(kozai, nil)
	for _, c := range cands {
		switch Level(c.KozaiEvidenceScore, th) {
		case types.EvidenceStrong:
			stats.StrongEvidenceCount++
			stats.ModerateEvidenceCount++
		case types.EvidenceModerate:
			stats.ModerateEvidenceCount++
		}
	}
	return stats
}

// summarizeField expects a non-empty slice. A constant population has a
// standard deviation of exactly zero.
func summarizeField(values []float64) types.FieldSummary {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	s := types.FieldSummary{
		Min:    floats.Min(values),
		Max:    floats.Max(values),
		Median: sorted[len(sorted)/2],
	}
	if s.Min == s.Max {
		s.Mean = s.Min
		return s
	}
	s.Mean, s.StdDev = stat.PopMeanStdDev(values, nil)
	return s
}

// popStdDev returns the population standard deviation, or 0 for fewer
// than two values.
func popStdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	_, std := stat.PopMeanStdDev(values, nil)
	return std
}

// mean returns the arithmetic mean, or 0 for an empty slice.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}
