// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scorer

import "github.com/pdiddy/tno-evidence/pkg/types"

// Perturber lookup tiers. Comparisons are strict.
const (
	distanceMinFactor = 4.5
	distanceMaxFactor = 5.5

	massHighKozai     = 0.6
	massModerateKozai = 0.4

	inclinationHigh     = 60.0
	inclinationModerate = 40.0

	confidenceStrongMany   = 3
	confidenceStrongSome   = 1
	confidenceModerateMany = 2

	defaultPerturberEccentricity = 0.3
)

// Candidate perturber names.
const (
	CandidatePlanetNine       = "Planet Nine (hypothetical)"
	CandidateStellarCompanion = "Distant stellar companion"
	CandidateNeptune          = "Neptune (for comparison)"
)

// EstimatePerturber infers hypothetical perturber parameters from the
// statistics of a scored population. An empty population yields the zero
// value.
func EstimatePerturber(stats types.PopulationStatistics) types.PerturberEstimate {
	if stats.Count == 0 {
		return types.PerturberEstimate{}
	}

	p := types.PerturberEstimate{
		DistanceMin:          stats.SemiMajorAxis.Mean * distanceMinFactor,
		DistanceMax:          stats.SemiMajorAxis.Mean * distanceMaxFactor,
		EccentricityEstimate: defaultPerturberEccentricity,
	}

	switch {
	case stats.MeanKozaiParameter > massHighKozai:
		p.MassMin, p.MassMax = 6.0, 10.0
	case stats.MeanKozaiParameter > massModerateKozai:
		p.MassMin, p.MassMax = 4.0, 7.0
	default:
		p.MassMin, p.MassMax = 1.5, 4.0
	}

	switch {
	case stats.Inclination.Mean > inclinationHigh:
		p.InclinationEstimate = 15.0
	case stats.Inclination.Mean > inclinationModerate:
		p.InclinationEstimate = 10.0
	default:
		p.InclinationEstimate = 5.0
	}

	p.Confidence = Confidence(stats.StrongEvidenceCount, stats.ModerateEvidenceCount)
	p.Candidates = PerturberCandidates(p.DistanceMax, p.MassMax)
	return p
}

// Confidence maps evidence counts to an overall confidence score.
func Confidence(strong, moderate int) float64 {
	switch {
	case strong > confidenceStrongMany:
		return 0.85
	case strong > confidenceStrongSome:
		return 0.70
	case moderate > confidenceModerateMany:
		return 0.60
	default:
		return 0.40
	}
}

// PerturberCandidates names the bodies consistent with a perturber
// distance and mass range.
func PerturberCandidates(distanceMax, massMax float64) []string {
	candidates := []string{}
	if distanceMax > 200 && massMax > 5 {
		candidates = append(candidates, CandidatePlanetNine)
	}
	if distanceMax > 500 {
		candidates = append(candidates, CandidateStellarCompanion)
	}
	if distanceMax < 100 {
		candidates = append(candidates, CandidateNeptune)
	}
	return candidates
}
