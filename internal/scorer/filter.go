// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scorer

import (
	"sort"

	"github.com/pdiddy/tno-evidence/pkg/types"
)

// Predicate selects records. Predicates are pure functions of one record.
type Predicate func(types.OrbitalRecord) bool

// SemiMajorAxisAbove selects a > threshold.
func SemiMajorAxisAbove(threshold float64) Predicate {
	return func(r types.OrbitalRecord) bool { return r.A > threshold }
}

// PerihelionAbove selects q > threshold.
func PerihelionAbove(threshold float64) Predicate {
	return func(r types.OrbitalRecord) bool { return r.Q > threshold }
}

// EccentricityAbove selects e > threshold.
func EccentricityAbove(threshold float64) Predicate {
	return func(r types.OrbitalRecord) bool { return r.E > threshold }
}

// InclinationAbove selects i > threshold (degrees).
func InclinationAbove(threshold float64) Predicate {
	return func(r types.OrbitalRecord) bool { return r.I > threshold }
}

// And selects records matching every predicate.
func And(ps ...Predicate) Predicate {
	return func(r types.OrbitalRecord) bool {
		for _, p := range ps {
			if !p(r) {
				return false
			}
		}
		return true
	}
}

// Extreme selects extreme TNOs: a > ExtremeMinA AND q > ExtremeMinQ.
func Extreme(th types.Thresholds) Predicate {
	return And(SemiMajorAxisAbove(th.ExtremeMinA), PerihelionAbove(th.ExtremeMinQ))
}

// KozaiCandidate selects Kozai-Lidov candidates: e > KozaiMinE AND
// i > KozaiMinI AND a > KozaiMinA.
func KozaiCandidate(th types.Thresholds) Predicate {
	return And(
		EccentricityAbove(th.KozaiMinE),
		InclinationAbove(th.KozaiMinI),
		SemiMajorAxisAbove(th.KozaiMinA),
	)
}

// Filter returns the records matching p in input order. The input slice is
// never modified.
func Filter(records []types.OrbitalRecord, p Predicate) []types.OrbitalRecord {
	out := make([]types.OrbitalRecord, 0, len(records))
	for _, r := range records {
		if p(r) {
			out = append(out, r)
		}
	}
	return out
}

// Count returns how many records match p.
func Count(records []types.OrbitalRecord, p Predicate) int {
	n := 0
	for _, r := range records {
		if p(r) {
			n++
		}
	}
	return n
}

// SortKey extracts the value a report section orders by.
type SortKey func(types.OrbitalRecord) float64

var (
	BySemiMajorAxis SortKey = func(r types.OrbitalRecord) float64 { return r.A }
	ByPerihelion    SortKey = func(r types.OrbitalRecord) float64 { return r.Q }
	ByEccentricity  SortKey = func(r types.OrbitalRecord) float64 { return r.E }
	ByPerturbation  SortKey = func(r types.OrbitalRecord) float64 { return r.PerturbationStrength }
)

// SortedDesc returns a copy of records stably sorted by key, highest first.
func SortedDesc(records []types.OrbitalRecord, key SortKey) []types.OrbitalRecord {
	out := make([]types.OrbitalRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool { return key(out[i]) > key(out[j]) })
	return out
}

// SortByEvidence stably sorts candidates in place by evidence score,
// highest first.
func SortByEvidence(cands []types.KozaiCandidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].KozaiEvidenceScore > cands[j].KozaiEvidenceScore
	})
}
