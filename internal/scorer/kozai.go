// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scorer

import (
	"errors"
	"fmt"
	"math"

	"github.com/pdiddy/tno-evidence/pkg/types"
)

// ErrUnboundOrbit is returned for records with e >= 1. Kozai metrics are
// only defined for bound orbits.
var ErrUnboundOrbit = errors.New("unbound orbit: eccentricity must be below 1")

// DomainError reports a record that a per-record computation rejected.
type DomainError struct {
	Name string
	E    float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s (e=%g): %v", e.Name, e.E, ErrUnboundOrbit)
}

func (e *DomainError) Unwrap() error { return ErrUnboundOrbit }

// Evidence score weights.
const (
	weightKozai      = 0.4
	weightLibration  = 0.3
	weightResonance  = 0.3
	minCoupling      = 0.1
	periodScale      = 1000.0
	circulationPivot = 0.65
	aphelionScale    = 500.0
)

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func checkBound(r types.OrbitalRecord) error {
	if r.E >= 1 {
		return &DomainError{Name: r.Name, E: r.E}
	}
	return nil
}

// AngularMomentumZ returns the signed z-component of the normalized
// specific angular momentum, sqrt(1-e²)·cos i.
func AngularMomentumZ(r types.OrbitalRecord) (float64, error) {
	if err := checkBound(r); err != nil {
		return 0, err
	}
	return math.Sqrt(1-r.E*r.E) * math.Cos(radians(r.I)), nil
}

// KozaiParameter returns |sqrt(1-e²)·cos i|.
func KozaiParameter(r types.OrbitalRecord) (float64, error) {
	hz, err := AngularMomentumZ(r)
	if err != nil {
		return 0, err
	}
	return math.Abs(hz), nil
}

// OmegaCirculation estimates whether ω librates (0) or circulates (1).
func OmegaCirculation(r types.OrbitalRecord) float64 {
	iFactor := math.Abs(math.Abs(math.Cos(radians(r.I))) - 0.5)
	eFactor := math.Max(r.E-circulationPivot, 0)
	return clamp(1-(iFactor+eFactor), 0, 1)
}

// ResonanceStrength averages eccentricity, inclination and aphelion
// factors. The eccentricity factor is negative for e < 0.5 and is kept
// as-is, so the result can fall below zero.
func ResonanceStrength(r types.OrbitalRecord) float64 {
	eFactor := (r.E - 0.5) / 0.5
	iFactor := math.Max(0, 1-2*math.Abs(math.Abs(math.Cos(radians(r.I)))-0.5))
	aFactor := math.Min(r.AD/aphelionScale, 1)
	return math.Min(1, (eFactor+iFactor+aFactor)/3)
}

// KozaiPeriod estimates the Kozai-Lidov oscillation period in years from
// the Keplerian orbital period sqrt(a³) and the coupling strength.
func KozaiPeriod(r types.OrbitalRecord) (float64, error) {
	k, err := KozaiParameter(r)
	if err != nil {
		return 0, err
	}
	orbital := math.Sqrt(r.A * r.A * r.A)
	return orbital * periodScale / math.Max(k, minCoupling), nil
}

// EvidenceScore returns 0.4·K + 0.3·(1-circulation) + 0.3·resonance.
func EvidenceScore(r types.OrbitalRecord) (float64, error) {
	k, err := KozaiParameter(r)
	if err != nil {
		return 0, err
	}
	return combineEvidence(k, OmegaCirculation(r), ResonanceStrength(r)), nil
}

func combineEvidence(k, circulation, resonance float64) float64 {
	return k*weightKozai + (1-circulation)*weightLibration + resonance*weightResonance
}

// Derive computes every Kozai metric for one record.
func Derive(r types.OrbitalRecord) (types.KozaiCandidate, error) {
	hz, err := AngularMomentumZ(r)
	if err != nil {
		return types.KozaiCandidate{}, err
	}
	k := math.Abs(hz)
	circ := OmegaCirculation(r)
	res := ResonanceStrength(r)
	period, _ := KozaiPeriod(r)

	return types.KozaiCandidate{
		OrbitalRecord:        r,
		KozaiParameter:       k,
		AngularMomentumZ:     hz,
		OmegaCirculation:     circ,
		ResonanceStrength:    res,
		EstimatedKozaiPeriod: period,
		KozaiEvidenceScore:   combineEvidence(k, circ, res),
	}, nil
}

// DeriveAll derives metrics for every record, preserving input order.
// Records rejected with a DomainError are left out and their names
// returned; they never abort the batch.
func DeriveAll(records []types.OrbitalRecord) (cands []types.KozaiCandidate, excluded []string) {
	cands = make([]types.KozaiCandidate, 0, len(records))
	for _, r := range records {
		c, err := Derive(r)
		if err != nil {
			excluded = append(excluded, r.Name)
			continue
		}
		cands = append(cands, c)
	}
	return cands, excluded
}

// Level classifies an evidence score.
func Level(score float64, th types.Thresholds) types.EvidenceLevel {
	switch {
	case score > th.StrongEvidence:
		return types.EvidenceStrong
	case score > th.ModerateEvidence:
		return types.EvidenceModerate
	default:
		return types.EvidenceWeak
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
