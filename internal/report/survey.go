// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import "github.com/pdiddy/tno-evidence/pkg/types"

// Survey renders the comprehensive threshold-sweep report.
func Survey(res types.SurveyResult, th types.Thresholds, topN int) string {
	var w writer

	w.title("COMPREHENSIVE EXTREME TNO SURVEY", "Threshold sweeps over a, q and e")

	w.section("EXTREME CORE")
	w.linef("a > %g AU AND q > %g AU: %d", th.ExtremeMinA, th.ExtremeMinQ, len(res.ExtremeCore))
	w.recordTable(res.ExtremeCore, topN)

	w.section("HIGH SEMI-MAJOR AXIS")
	w.linef("a > %g AU: %d (by a, descending)", th.ExtremeMinA, len(res.HighA))
	w.recordTable(res.HighA, topN)
	if res.HighAStats.Count > 0 {
		w.blank()
		w.field("Semi-major axis", res.HighAStats.SemiMajorAxis, " AU", "%.1f")
		w.field("Eccentricity", res.HighAStats.Eccentricity, "", "%.4f")
	}

	w.section("HIGH PERIHELION")
	w.linef("q > %g AU: %d (by q, descending)", th.ExtremeMinQ, len(res.HighQ))
	w.recordTable(res.HighQ, topN)
	if res.HighQStats.Count > 0 {
		w.blank()
		w.field("Perihelion", res.HighQStats.Perihelion, " AU", "%.1f")
	}

	w.section("SEMI-MAJOR AXIS SWEEP")
	for _, s := range res.AxisSweeps {
		w.linef("a > %g AU: %d object(s)", s.MinA, s.Count)
		w.nameList("  ω near 0°", s.Near0)
		w.nameList("  ω near 180°", s.Near180)
		w.linef("  scattered: %d", s.Scattered)
		w.linef("  average perturbation: %.4f", s.MeanPerturbation)
		w.linef("  perturbation bands: high %d (> %g), medium %d, low %d (< %g)",
			len(s.Perturbation.High), th.HighPerturbation, s.Perturbation.Medium, s.Perturbation.Low, th.MediumPerturbation)
		for _, r := range limit(s.Perturbation.High, 5) {
			w.linef("    %-28s %.3f", truncate(r.Name, 28), r.PerturbationStrength)
		}
		w.blank()
	}

	w.section("ECCENTRICITY SWEEP")
	for _, s := range res.EccentricitySweeps {
		w.linef("e > %g: %d object(s)", s.MinE, len(s.Objects))
		for _, r := range limit(s.Objects, topN) {
			w.linef("    %-28s e=%.4f a=%.1f AU q=%.1f AU", truncate(r.Name, 28), r.E, r.A, r.Q)
		}
	}

	syn := res.Synthesis
	w.section("EVIDENCE SYNTHESIS")
	w.linef("Extreme core objects:            %d", syn.ExtremeCore)
	w.linef("High-a objects (a > %g AU):     %d", th.ExtremeMinA, syn.HighA)
	w.linef("High-q objects (q > %g AU):      %d", th.ExtremeMinQ, syn.HighQ)
	w.linef("High-e objects (e > %g):        %d", th.HighEccentricity, syn.HighE)
	w.linef("Average perturbation (high-a):   %.4f", syn.MeanPerturbHighA)
	w.linef("Distant object flags (high-a):   %d", syn.DistantFlagsHighA)
	return w.String()
}
