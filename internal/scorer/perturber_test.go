// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/tno-evidence/pkg/types"
)

func TestEstimatePerturberEmpty(t *testing.T) {
	assert.Equal(t, types.PerturberEstimate{}, EstimatePerturber(types.PopulationStatistics{}))
}

func TestEstimatePerturberStrongPopulation(t *testing.T) {
	stats := types.PopulationStatistics{
		Count:               6,
		SemiMajorAxis:       types.FieldSummary{Mean: 400},
		Inclination:         types.FieldSummary{Mean: 45},
		MeanKozaiParameter:  0.65,
		StrongEvidenceCount: 4,
	}
	p := EstimatePerturber(stats)

	assert.InDelta(t, 1800, p.DistanceMin, 1e-9)
	assert.InDelta(t, 2200, p.DistanceMax, 1e-9)
	assert.Equal(t, 6.0, p.MassMin)
	assert.Equal(t, 10.0, p.MassMax)
	assert.Equal(t, 10.0, p.InclinationEstimate)
	assert.Equal(t, 0.3, p.EccentricityEstimate)
	assert.Equal(t, 0.85, p.Confidence)
	assert.Contains(t, p.Candidates, CandidatePlanetNine)
	assert.Contains(t, p.Candidates, CandidateStellarCompanion)
	assert.NotContains(t, p.Candidates, CandidateNeptune)
}

func TestEstimatePerturberTiers(t *testing.T) {
	tests := []struct {
		name        string
		meanK       float64
		meanI       float64
		wantMass    [2]float64
		wantInclEst float64
	}{
		{"high K high i", 0.61, 61, [2]float64{6, 10}, 15},
		{"boundary K", 0.6, 60, [2]float64{4, 7}, 10},
		{"moderate K", 0.45, 41, [2]float64{4, 7}, 10},
		{"low K", 0.4, 40, [2]float64{1.5, 4}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := EstimatePerturber(types.PopulationStatistics{
				Count:              1,
				SemiMajorAxis:      types.FieldSummary{Mean: 100},
				Inclination:        types.FieldSummary{Mean: tt.meanI},
				MeanKozaiParameter: tt.meanK,
			})
			assert.Equal(t, tt.wantMass[0], p.MassMin)
			assert.Equal(t, tt.wantMass[1], p.MassMax)
			assert.Equal(t, tt.wantInclEst, p.InclinationEstimate)
		})
	}
}

func TestConfidence(t *testing.T) {
	tests := []struct {
		strong, moderate int
		want             float64
	}{
		{4, 4, 0.85},
		{3, 3, 0.70},
		{2, 2, 0.70},
		{1, 3, 0.60},
		{1, 2, 0.40},
		{0, 0, 0.40},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Confidence(tt.strong, tt.moderate), "strong=%d moderate=%d", tt.strong, tt.moderate)
	}
}

func TestPerturberCandidates(t *testing.T) {
	assert.Equal(t, []string{CandidatePlanetNine}, PerturberCandidates(300, 7))
	assert.Equal(t, []string{CandidateNeptune}, PerturberCandidates(90, 4))
	assert.Empty(t, PerturberCandidates(300, 4))
	assert.Equal(t, []string{CandidateStellarCompanion}, PerturberCandidates(600, 5))
}
