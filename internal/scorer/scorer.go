// Package scorer filters orbital records, derives per-record Kozai-Lidov
// metrics, aggregates population statistics and estimates the parameters
// of a hypothetical distant perturber.
//
// Every function in this package is pure over its input slice. Per-record
// failures (unbound orbits) are excluded and reported, never fatal.
package scorer

import (
	"log/slog"

	"github.com/pdiddy/tno-evidence/pkg/types"
)

// Scorer runs the analyses against one set of thresholds.
type Scorer struct {
	th     types.Thresholds
	logger *slog.Logger
}

// New returns a Scorer. A nil logger falls back to slog.Default().
func New(th types.Thresholds, logger *slog.Logger) *Scorer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scorer{th: th, logger: logger.WithGroup("scorer")}
}

// Thresholds returns the thresholds the Scorer was built with.
func (s *Scorer) Thresholds() types.Thresholds { return s.th }

// Kozai selects Kozai-Lidov candidates, scores them and derives the
// population statistics, perturber estimate, resonance clusters and
// oscillation analysis. Candidates are sorted by evidence score.
func (s *Scorer) Kozai(records []types.OrbitalRecord) types.KozaiResult {
	selected := Filter(records, KozaiCandidate(s.th))
	cands, excluded := DeriveAll(selected)
	for _, name := range excluded {
		s.logger.Warn("excluded record", "object", name, "reason", ErrUnboundOrbit.Error())
	}
	SortByEvidence(cands)

	stats := SummarizeCandidates(cands, s.th)
	stats.ExcludedCount = len(excluded)

	s.logger.Info("kozai analysis",
		"records", len(records),
		"candidates", len(cands),
		"strong", stats.StrongEvidenceCount,
		"excluded", len(excluded),
	)

	return types.KozaiResult{
		Candidates:  cands,
		Statistics:  stats,
		Perturber:   EstimatePerturber(stats),
		Clusters:    ResonanceClusters(cands, s.th),
		Oscillation: Oscillation(cands),
		Excluded:    excluded,
	}
}

// Extreme selects extreme TNOs (sorted by a descending) and measures their
// anomalies and perihelion clustering.
func (s *Scorer) Extreme(records []types.OrbitalRecord) types.ExtremeResult {
	extreme := SortedDesc(Filter(records, Extreme(s.th)), BySemiMajorAxis)

	res := types.ExtremeResult{
		Criteria: types.FilteringCriteria{
			SemiMajorAxisMin: s.th.ExtremeMinA,
			PerihelionMin:    s.th.ExtremeMinQ,
		},
		Extreme:    extreme,
		HighA:      SortedDesc(Filter(records, SemiMajorAxisAbove(s.th.ExtremeMinA)), BySemiMajorAxis),
		HighQ:      SortedDesc(Filter(records, PerihelionAbove(s.th.ExtremeMinQ)), ByPerihelion),
		Statistics: Summarize(extreme, s.th),
		Anomalies:  AnalyzeAnomalies(extreme, s.th),
		Signature:  PlanetNine(extreme, s.th),
	}

	s.logger.Info("extreme analysis",
		"records", len(records),
		"extreme", len(extreme),
		"high_a", len(res.HighA),
		"high_q", len(res.HighQ),
	)
	return res
}

// Survey runs the comprehensive threshold sweep.
func (s *Scorer) Survey(records []types.OrbitalRecord) types.SurveyResult {
	res := Survey(records, s.th)
	s.logger.Info("survey",
		"records", len(records),
		"extreme_core", res.Synthesis.ExtremeCore,
		"high_e", res.Synthesis.HighE,
	)
	return res
}
