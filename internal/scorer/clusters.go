// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scorer

import (
	"math"
	"sort"

	"github.com/pdiddy/tno-evidence/pkg/types"
)

const (
	clusterMaxDeltaE  = 0.15
	clusterMaxDeltaI  = 20.0
	clusterMaxMembers = 5

	highResonance = 0.6
)

// Resonance type labels.
const (
	ResonanceStrongKozai   = "Strong Kozai-Lidov"
	ResonanceModerateKozai = "Moderate Kozai-Lidov"
	ResonanceHigh          = "High Resonance"
	ResonanceWeak          = "Weak Resonance"
)

// ResonanceType labels a candidate by its evidence score, falling back to
// its resonance strength.
func ResonanceType(c types.KozaiCandidate, th types.Thresholds) string {
	switch {
	case c.KozaiEvidenceScore > th.StrongEvidence:
		return ResonanceStrongKozai
	case c.KozaiEvidenceScore > th.ModerateEvidence:
		return ResonanceModerateKozai
	case c.ResonanceStrength > highResonance:
		return ResonanceHigh
	default:
		return ResonanceWeak
	}
}

// ResonanceClusters groups candidates of similar eccentricity and
// inclination. Candidates are visited in ascending e; each joins the open
// cluster while |Δe| and |Δi| to its running centre stay under the limits
// and the cluster has room. Clusters are returned largest first.
func ResonanceClusters(cands []types.KozaiCandidate, th types.Thresholds) []types.ResonanceCluster {
	if len(cands) == 0 {
		return nil
	}

	sorted := make([]types.KozaiCandidate, len(cands))
	copy(sorted, cands)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].E < sorted[j].E })

	var clusters []types.ResonanceCluster
	open := newCluster(0, sorted[0], th)
	for _, c := range sorted[1:] {
		if math.Abs(c.E-open.CenterE) < clusterMaxDeltaE &&
			math.Abs(c.I-open.CenterI) < clusterMaxDeltaI &&
			len(open.Members) < clusterMaxMembers {
			open.Members = append(open.Members, c.Name)
			open.CenterE = (open.CenterE + c.E) / 2
			open.CenterI = (open.CenterI + c.I) / 2
			open.SignatureStrength = (open.SignatureStrength + c.KozaiEvidenceScore) / 2
			continue
		}
		clusters = append(clusters, open)
		open = newCluster(open.ID+1, c, th)
	}
	clusters = append(clusters, open)

	sort.SliceStable(clusters, func(i, j int) bool {
		return len(clusters[i].Members) > len(clusters[j].Members)
	})
	return clusters
}

func newCluster(id int, c types.KozaiCandidate, th types.Thresholds) types.ResonanceCluster {
	return types.ResonanceCluster{
		ID:                id,
		Members:           []string{c.Name},
		CenterE:           c.E,
		CenterI:           c.I,
		CenterA:           c.A,
		ResonanceType:     ResonanceType(c, th),
		SignatureStrength: c.KozaiEvidenceScore,
	}
}

// Oscillation bounds.
const (
	maxPredictedE = 0.98
	minPredictedE = 0.3
	maxPredictedI = 180.0
	minPredictedI = 20.0
)

// Oscillation describes the expected e-i oscillation of a candidate
// population. An empty population yields the zero value.
func Oscillation(cands []types.KozaiCandidate) types.OscillationAnalysis {
	n := len(cands)
	if n == 0 {
		return types.OscillationAnalysis{}
	}

	periods := make([]float64, n)
	e := make([]float64, n)
	i := make([]float64, n)
	for k, c := range cands {
		periods[k] = c.EstimatedKozaiPeriod
		e[k] = c.E
		i[k] = c.I
	}

	fundamental := mean(periods)
	meanE, meanI := mean(e), mean(i)
	ampE := math.Max(maxOf(e)-meanE, 0)
	ampI := math.Max(maxOf(i)-meanI, 0)

	return types.OscillationAnalysis{
		FundamentalPeriod: fundamental,
		OvertonePeriods:   []float64{fundamental / 3, fundamental / 5, fundamental / 7},
		MeanEAmplitude:    ampE,
		MeanIAmplitude:    ampI,
		PredictedMaxE:     math.Min(meanE+ampE, maxPredictedE),
		PredictedMinE:     math.Max(meanE-ampE*0.3, minPredictedE),
		PredictedMaxI:     math.Min(meanI+ampI, maxPredictedI),
		PredictedMinI:     math.Max(meanI-ampI*0.5, minPredictedI),
	}
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		m = math.Max(m, v)
	}
	return m
}
