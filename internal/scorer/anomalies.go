// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scorer

import (
	"math"

	"github.com/pdiddy/tno-evidence/pkg/types"
)

// OmegaNear0 selects ω < 45° or ω > 315°.
func OmegaNear0(r types.OrbitalRecord) bool {
	return r.ArgOfPerihelion < 45 || r.ArgOfPerihelion > 315
}

// OmegaNear180 selects 135° < ω < 225°.
func OmegaNear180(r types.OrbitalRecord) bool {
	return r.ArgOfPerihelion > 135 && r.ArgOfPerihelion < 225
}

// PerihelionAligned selects ω clustered near 0° or 180°.
func PerihelionAligned(r types.OrbitalRecord) bool {
	return OmegaNear0(r) || OmegaNear180(r)
}

// AnalyzeAnomalies summarizes the orbital anomalies of a population.
func AnalyzeAnomalies(records []types.OrbitalRecord, th types.Thresholds) types.AnomalyAnalysis {
	if len(records) == 0 {
		return types.AnomalyAnalysis{}
	}

	omega := make([]float64, len(records))
	node := make([]float64, len(records))
	distant := 0
	for k, r := range records {
		omega[k] = r.ArgOfPerihelion
		node[k] = r.AscendingNode
		if r.Distant {
			distant++
		}
	}

	return types.AnomalyAnalysis{
		OmegaStdDev:            popStdDev(omega),
		NodeStdDev:             popStdDev(node),
		HighEccentricityCount:  Count(records, EccentricityAbove(th.HighEccentricity)),
		HighInclinationCount:   Count(records, InclinationAbove(th.HighInclination)),
		PerihelionAlignedCount: Count(records, PerihelionAligned),
		MeanPerturbation:       meanPerturbation(records),
		DistantFlagCount:       distant,
	}
}

// PlanetNine measures the perihelion clustering of extreme objects.
func PlanetNine(extreme []types.OrbitalRecord, th types.Thresholds) types.PlanetNineSignature {
	n := len(extreme)
	if n == 0 {
		return types.PlanetNineSignature{}
	}

	names := make([]string, n)
	longitudes := make([]float64, n)
	for k, r := range extreme {
		names[k] = r.Name
		longitudes[k] = r.LongitudeOfPerihelion()
	}

	sig := types.PlanetNineSignature{
		TotalExtreme:     n,
		Objects:          names,
		ClusterNear0:     Count(extreme, OmegaNear0),
		ClusterNear180:   Count(extreme, OmegaNear180),
		MeanPerturbation: meanPerturbation(extreme),
	}
	sig.ClusterFraction = float64(sig.ClusterNear0+sig.ClusterNear180) / float64(n)
	sig.HighEccentricFraction = float64(Count(extreme, EccentricityAbove(th.HighEccentricity))) / float64(n)
	sig.PerihelionLongitudeMean, sig.PerihelionConcentration = CircularMean(longitudes)
	return sig
}

// CircularMean returns the circular mean (degrees, in [0, 360)) and the
// mean resultant length R̄ of a set of angles in degrees. R̄ is 0 for an
// empty set.
func CircularMean(degrees []float64) (meanDeg, concentration float64) {
	if len(degrees) == 0 {
		return 0, 0
	}
	var sumSin, sumCos float64
	for _, d := range degrees {
		sumSin += math.Sin(radians(d))
		sumCos += math.Cos(radians(d))
	}
	meanDeg = types.NormalizeDegrees(math.Atan2(sumSin, sumCos) * 180 / math.Pi)
	concentration = math.Hypot(sumSin, sumCos) / float64(len(degrees))
	return meanDeg, concentration
}

func meanPerturbation(records []types.OrbitalRecord) float64 {
	values := make([]float64, len(records))
	for k, r := range records {
		values[k] = r.PerturbationStrength
	}
	return mean(values)
}
