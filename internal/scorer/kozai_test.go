// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scorer

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/tno-evidence/pkg/types"
)

// rec builds a record with the orbital elements the scorer reads most.
func rec(name string, a, e, i, q, ad float64) types.OrbitalRecord {
	return types.OrbitalRecord{Name: name, A: a, E: e, I: i, Q: q, AD: ad}
}

func TestKozaiParameterExample(t *testing.T) {
	r := rec("2012 VP113", 320, 0.75, 25, 55, 585)

	k, err := KozaiParameter(r)
	require.NoError(t, err)
	assert.InDelta(t, 0.5995, k, 1e-4)

	hz, err := AngularMomentumZ(r)
	require.NoError(t, err)
	assert.InDelta(t, k, hz, 1e-12, "prograde orbit has positive h_z")
}

func TestKozaiParameterRange(t *testing.T) {
	for e := 0.0; e < 1; e += 0.05 {
		for i := 0.0; i <= 180; i += 7.5 {
			k, err := KozaiParameter(rec("x", 100, e, i, 50, 150))
			require.NoError(t, err)
			assert.GreaterOrEqual(t, k, 0.0)
			assert.LessOrEqual(t, k, 1.0)
		}
	}
}

func TestAngularMomentumZRetrograde(t *testing.T) {
	hz, err := AngularMomentumZ(rec("retro", 100, 0.6, 150, 40, 160))
	require.NoError(t, err)
	assert.Less(t, hz, 0.0)

	k, err := KozaiParameter(rec("retro", 100, 0.6, 150, 40, 160))
	require.NoError(t, err)
	assert.InDelta(t, math.Abs(hz), k, 1e-12)
}

func TestUnboundOrbit(t *testing.T) {
	tests := []struct {
		name string
		e    float64
	}{
		{"parabolic", 1.0},
		{"hyperbolic", 1.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := rec("'Oumuamua", 100, tt.e, 122, 0.25, 0)

			_, err := KozaiParameter(r)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnboundOrbit))

			var de *DomainError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, "'Oumuamua", de.Name)
			assert.Equal(t, tt.e, de.E)

			_, err = KozaiPeriod(r)
			assert.ErrorIs(t, err, ErrUnboundOrbit)
			_, err = EvidenceScore(r)
			assert.ErrorIs(t, err, ErrUnboundOrbit)
			_, err = Derive(r)
			assert.ErrorIs(t, err, ErrUnboundOrbit)
		})
	}
}

func TestOmegaCirculation(t *testing.T) {
	tests := []struct {
		name string
		e, i float64
		want float64
	}{
		// |cos 60°| = 0.5 and e below the pivot: full circulation.
		{"pivot inclination", 0.5, 60, 1},
		// |cos 0°| - 0.5 = 0.5, e - 0.65 = 0.25.
		{"planar eccentric", 0.9, 0, 0.25},
		{"near libration", 0.99, 0, 0.16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OmegaCirculation(rec("x", 100, tt.e, tt.i, 10, 190))
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestResonanceStrength(t *testing.T) {
	// e = 0.5 → eF 0; i = 60 → iF 1; ad = 1000 → aF 1.
	assert.InDelta(t, 2.0/3, ResonanceStrength(rec("x", 500, 0.5, 60, 250, 1000)), 1e-9)

	// e = 0.1 → eF = -0.8; i = 0 → iF 0; ad = 100 → aF 0.2; mean -0.2.
	assert.InDelta(t, -0.2, ResonanceStrength(rec("x", 100, 0.1, 0, 90, 100)), 1e-9,
		"low eccentricity keeps its negative contribution")

	// Capped at 1.
	assert.LessOrEqual(t, ResonanceStrength(rec("x", 900, 0.99, 60, 9, 1800)), 1.0)
}

func TestKozaiPeriod(t *testing.T) {
	// i = 90° → K = 0, so the coupling floor of 0.1 applies.
	p, err := KozaiPeriod(rec("x", 100, 0.5, 90, 50, 150))
	require.NoError(t, err)
	assert.InDelta(t, 1000.0*1000/0.1, p, 1e-3)
}

func TestEvidenceScoreMatchesDerive(t *testing.T) {
	r := rec("Sedna", 506, 0.85, 11.9, 76, 936)

	score, err := EvidenceScore(r)
	require.NoError(t, err)

	c, err := Derive(r)
	require.NoError(t, err)
	assert.Equal(t, score, c.KozaiEvidenceScore)
	assert.Equal(t, r, c.OrbitalRecord)

	want := 0.4*c.KozaiParameter + 0.3*(1-c.OmegaCirculation) + 0.3*c.ResonanceStrength
	assert.InDelta(t, want, score, 1e-12)
}

func TestDeriveAllExcludes(t *testing.T) {
	records := []types.OrbitalRecord{
		rec("a", 300, 0.7, 40, 90, 510),
		rec("bad", 300, 1.2, 40, 90, 0),
		rec("b", 200, 0.6, 35, 80, 320),
	}
	cands, excluded := DeriveAll(records)
	require.Len(t, cands, 2)
	assert.Equal(t, "a", cands[0].Name)
	assert.Equal(t, "b", cands[1].Name)
	assert.Equal(t, []string{"bad"}, excluded)
}

func TestLevel(t *testing.T) {
	th := types.DefaultThresholds()
	assert.Equal(t, types.EvidenceStrong, Level(0.71, th))
	assert.Equal(t, types.EvidenceModerate, Level(0.7, th))
	assert.Equal(t, types.EvidenceModerate, Level(0.51, th))
	assert.Equal(t, types.EvidenceWeak, Level(0.5, th))
}
