// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scorer

import "github.com/pdiddy/tno-evidence/pkg/types"

// Bands partitions records by catalog perturbation strength: high is above
// HighPerturbation, medium is within [MediumPerturbation, HighPerturbation],
// low is below MediumPerturbation.
func Bands(records []types.OrbitalRecord, th types.Thresholds) types.PerturbationBands {
	var bands types.PerturbationBands
	var high []types.OrbitalRecord
	for _, r := range records {
		switch p := r.PerturbationStrength; {
		case p > th.HighPerturbation:
			high = append(high, r)
		case p >= th.MediumPerturbation:
			bands.Medium++
		default:
			bands.Low++
		}
	}
	bands.High = SortedDesc(high, ByPerturbation)
	return bands
}

// SweepAxis analyzes the objects with a > minA.
func SweepAxis(records []types.OrbitalRecord, minA float64, th types.Thresholds) types.AxisSweep {
	subset := Filter(records, SemiMajorAxisAbove(minA))
	sweep := types.AxisSweep{
		MinA:             minA,
		Count:            len(subset),
		Near0:            []string{},
		Near180:          []string{},
		MeanPerturbation: meanPerturbation(subset),
		Perturbation:     Bands(subset, th),
	}
	for _, r := range subset {
		switch {
		case OmegaNear0(r):
			sweep.Near0 = append(sweep.Near0, r.Name)
		case OmegaNear180(r):
			sweep.Near180 = append(sweep.Near180, r.Name)
		default:
			sweep.Scattered++
		}
	}
	return sweep
}

// SweepEccentricity lists the objects with e > minE, most eccentric first.
func SweepEccentricity(records []types.OrbitalRecord, minE float64) types.EccentricitySweep {
	return types.EccentricitySweep{
		MinE:    minE,
		Objects: SortedDesc(Filter(records, EccentricityAbove(minE)), ByEccentricity),
	}
}

// Survey runs the comprehensive analysis across every configured a and e
// threshold.
func Survey(records []types.OrbitalRecord, th types.Thresholds) types.SurveyResult {
	highA := SortedDesc(Filter(records, SemiMajorAxisAbove(th.ExtremeMinA)), BySemiMajorAxis)
	highQ := SortedDesc(Filter(records, PerihelionAbove(th.ExtremeMinQ)), ByPerihelion)

	res := types.SurveyResult{
		ExtremeCore: SortedDesc(Filter(records, Extreme(th)), BySemiMajorAxis),
		HighA:       highA,
		HighAStats:  Summarize(highA, th),
		HighQ:       highQ,
		HighQStats:  Summarize(highQ, th),
	}
	for _, minA := range th.SweepA {
		res.AxisSweeps = append(res.AxisSweeps, SweepAxis(records, minA, th))
	}
	for _, minE := range th.SweepE {
		res.EccentricitySweeps = append(res.EccentricitySweeps, SweepEccentricity(records, minE))
	}

	distant := 0
	for _, r := range highA {
		if r.Distant {
			distant++
		}
	}
	res.Synthesis = types.EvidenceSynthesis{
		ExtremeCore:       len(res.ExtremeCore),
		HighA:             len(highA),
		HighQ:             len(highQ),
		HighE:             Count(records, EccentricityAbove(th.HighEccentricity)),
		MeanPerturbHighA:  meanPerturbation(highA),
		DistantFlagsHighA: distant,
	}
	return res
}
