// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"strings"

	"github.com/pdiddy/tno-evidence/internal/scorer"
	"github.com/pdiddy/tno-evidence/pkg/types"
)

// Kozai renders the Kozai-Lidov mechanism report. topN bounds the ranked
// candidate listing.
func Kozai(res types.KozaiResult, th types.Thresholds, topN int) string {
	var w writer
	stats := res.Statistics

	w.title("KOZAI-LIDOV MECHANISM ANALYSIS", "Coupled eccentricity-inclination oscillations")
	w.linef("Selection: e > %g AND i > %g° AND a > %g AU", th.KozaiMinE, th.KozaiMinI, th.KozaiMinA)
	w.blank()
	w.linef("Identified candidates: %d", stats.Count)
	w.linef("  Strong evidence (score > %g):   %d", th.StrongEvidence, stats.StrongEvidenceCount)
	w.linef("  Moderate evidence (score > %g): %d", th.ModerateEvidence, stats.ModerateEvidenceCount)
	if stats.ExcludedCount > 0 {
		w.linef("  Excluded (unbound, e >= 1):     %d (%s)", stats.ExcludedCount, strings.Join(res.Excluded, ", "))
	}

	if stats.Count == 0 {
		w.blank()
		w.linef("No objects meet the selection criteria.")
		return w.String()
	}

	w.section("ORBITAL PARAMETER STATISTICS")
	w.field("Semi-major axis", stats.SemiMajorAxis, " AU", "%.2f")
	w.field("Eccentricity", stats.Eccentricity, "", "%.4f")
	w.field("Inclination", stats.Inclination, "°", "%.1f")

	w.section("KOZAI-LIDOV COUPLING")
	w.linef("Average Kozai parameter: %.4f", stats.MeanKozaiParameter)
	w.linef("  0 = no coupling, 1 = maximum coupling")

	p := res.Perturber
	w.section("ESTIMATED PERTURBER PROPERTIES")
	w.linef("Semi-major axis: %.0f - %.0f AU", p.DistanceMin, p.DistanceMax)
	w.linef("Mass:            %.1f - %.1f Earth masses", p.MassMin, p.MassMax)
	w.linef("Inclination:     %.1f° relative to the TNO plane", p.InclinationEstimate)
	w.linef("Eccentricity:    ~%.2f", p.EccentricityEstimate)
	w.linef("Confidence:      %.0f%%", p.Confidence*100)
	w.blank()
	w.linef("Candidate perturbers:")
	if len(p.Candidates) == 0 {
		w.linef("  (none with current constraints)")
	}
	for _, c := range p.Candidates {
		w.linef("  - %s", c)
	}

	w.section("TOP CANDIDATES BY EVIDENCE SCORE")
	for k, c := range limit(res.Candidates, topN) {
		w.linef("%2d. %-3s %s", k+1, badge(c.KozaiEvidenceScore, th), c.Name)
		w.linef("    a=%.2f AU | e=%.4f | i=%.1f° | q=%.2f AU | ad=%.1f AU", c.A, c.E, c.I, c.Q, c.AD)
		w.linef("    K=%.4f | h_z=%+.4f | circulation=%.3f | resonance=%.3f", c.KozaiParameter, c.AngularMomentumZ, c.OmegaCirculation, c.ResonanceStrength)
		w.linef("    period=%.3g yr | score=%.3f (%s)", c.EstimatedKozaiPeriod, c.KozaiEvidenceScore, scorer.Level(c.KozaiEvidenceScore, th))
	}

	if len(res.Clusters) > 0 {
		w.section("RESONANCE CLUSTERS")
		for _, cl := range res.Clusters {
			w.linef("Cluster %d: %s, %d member(s), signature %.3f", cl.ID, cl.ResonanceType, len(cl.Members), cl.SignatureStrength)
			w.linef("  centre e=%.3f i=%.1f° a=%.1f AU", cl.CenterE, cl.CenterI, cl.CenterA)
			w.linef("  members: %s", strings.Join(cl.Members, ", "))
		}
	}

	o := res.Oscillation
	w.section("OSCILLATION ANALYSIS")
	w.linef("Fundamental period: %.3g yr", o.FundamentalPeriod)
	if len(o.OvertonePeriods) == 3 {
		w.linef("Overtones (P/3, P/5, P/7): %.3g, %.3g, %.3g yr", o.OvertonePeriods[0], o.OvertonePeriods[1], o.OvertonePeriods[2])
	}
	w.linef("Eccentricity amplitude: %.4f, predicted range %.3f - %.3f", o.MeanEAmplitude, o.PredictedMinE, o.PredictedMaxE)
	w.linef("Inclination amplitude:  %.1f°, predicted range %.1f° - %.1f°", o.MeanIAmplitude, o.PredictedMinI, o.PredictedMaxI)

	w.section("KEY FINDINGS")
	if stats.StrongEvidenceCount > 0 {
		w.linef("- %d object(s) show strong Kozai-Lidov signatures, consistent with coupling to a distant massive perturber.", stats.StrongEvidenceCount)
	}
	if stats.Inclination.Mean > 60 {
		w.linef("- High average inclination (%.1f°): the perturber is likely moderately inclined to the TNO plane.", stats.Inclination.Mean)
	}
	w.linef("- Perturber hypothesis: ~%.0f AU, ~%.1f Earth masses, ~%.1f° offset from the TNO plane.", p.DistanceMax, p.MassMax, p.InclinationEstimate)
	return w.String()
}

func badge(score float64, th types.Thresholds) string {
	switch scorer.Level(score, th) {
	case types.EvidenceStrong:
		return "***"
	case types.EvidenceModerate:
		return "**"
	default:
		return "*"
	}
}
