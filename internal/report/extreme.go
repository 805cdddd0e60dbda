// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import "github.com/pdiddy/tno-evidence/pkg/types"

// Significant clustering thresholds used in the interpretation section.
const (
	omegaClusteringStd = 60.0
	clusterFractionHi  = 0.5
	clusterFractionMid = 0.3
)

// Extreme renders the extreme-TNO report with its Planet Nine signature.
func Extreme(res types.ExtremeResult, th types.Thresholds, topN int) string {
	var w writer
	n := len(res.Extreme)

	w.title("EXTREME TNO ANALYSIS", "Planet Nine evidence")

	w.section("1. FILTERING RESULTS")
	w.linef("Criteria: a > %g AU AND q > %g AU", res.Criteria.SemiMajorAxisMin, res.Criteria.PerihelionMin)
	w.linef("Objects meeting both criteria: %d", n)
	w.recordTable(res.Extreme, topN)
	w.blank()
	w.linef("Related populations:")
	w.linef("  a > %g AU: %d", res.Criteria.SemiMajorAxisMin, len(res.HighA))
	w.linef("  q > %g AU: %d", res.Criteria.PerihelionMin, len(res.HighQ))

	if n == 0 {
		w.blank()
		w.linef("No extreme objects: anomaly and signature analysis skipped.")
		return w.String()
	}

	stats := res.Statistics
	w.section("2. ORBITAL PARAMETER STATISTICS")
	w.field("Semi-major axis (a)", stats.SemiMajorAxis, " AU", "%.1f")
	w.field("Perihelion (q)", stats.Perihelion, " AU", "%.1f")
	w.field("Aphelion (ad)", stats.Aphelion, " AU", "%.1f")
	w.field("Eccentricity (e)", stats.Eccentricity, "", "%.4f")
	w.field("Inclination (i)", stats.Inclination, "°", "%.1f")
	w.field("Orbital period", stats.Period, " yr", "%.0f")

	an := res.Anomalies
	w.section("3. ORBITAL ANOMALY ANALYSIS")
	w.linef("Argument of perihelion (ω) std dev: %.2f°", an.OmegaStdDev)
	if an.OmegaStdDev < omegaClusteringStd {
		w.linef("  significant clustering")
	} else {
		w.linef("  consistent with a random distribution")
	}
	w.linef("Ascending node (Ω) std dev:         %.2f°", an.NodeStdDev)
	w.linef("High eccentricity (e > %g):        %s", th.HighEccentricity, fraction(an.HighEccentricityCount, n))
	w.linef("High inclination (i > %g°):         %s", th.HighInclination, fraction(an.HighInclinationCount, n))
	w.linef("Perihelion aligned (ω near 0/180°): %s", fraction(an.PerihelionAlignedCount, n))
	w.linef("Average perturbation strength:      %.4f", an.MeanPerturbation)
	w.linef("Distant object flag:                %s", fraction(an.DistantFlagCount, n))

	sig := res.Signature
	w.section("4. PLANET NINE SIGNATURE")
	w.linef("Kozai-Lidov clustering of ω:")
	w.linef("  near 0°:   %d", sig.ClusterNear0)
	w.linef("  near 180°: %d", sig.ClusterNear180)
	w.linef("  clustered: %s, significance %s", fraction(sig.ClusterNear0+sig.ClusterNear180, sig.TotalExtreme), significance(sig.ClusterFraction))
	w.linef("High eccentricity fraction: %s", percent(sig.HighEccentricFraction))
	w.linef("Average perturbation strength: %.4f", sig.MeanPerturbation)
	w.linef("Longitude of perihelion (ϖ): mean %.1f°, concentration R = %.3f", sig.PerihelionLongitudeMean, sig.PerihelionConcentration)

	w.section("5. INTERPRETATION")
	switch significance(sig.ClusterFraction) {
	case "HIGH":
		w.linef("- More than half of the extreme objects cluster in ω, a pattern expected from")
		w.linef("  shepherding by a distant massive perturber.")
	case "MODERATE":
		w.linef("- Partial ω clustering: suggestive, but not conclusive for a distant perturber.")
	default:
		w.linef("- Weak ω clustering: the population does not by itself require a perturber.")
	}
	if sig.PerihelionConcentration > 0.5 {
		w.linef("- Perihelion longitudes are concentrated (R = %.2f), supporting apsidal confinement.", sig.PerihelionConcentration)
	}
	if an.DistantFlagCount > 0 {
		w.linef("- %d object(s) carry the catalog's distant-object flag.", an.DistantFlagCount)
	}
	return w.String()
}

func significance(clusterFraction float64) string {
	switch {
	case clusterFraction > clusterFractionHi:
		return "HIGH"
	case clusterFraction > clusterFractionMid:
		return "MODERATE"
	default:
		return "LOW"
	}
}
