// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/tno-evidence/pkg/types"
)

func sampleCatalog() []types.OrbitalRecord {
	return []types.OrbitalRecord{
		rec("2012 VP113", 320, 0.75, 25, 55, 585),
		rec("Sedna", 506, 0.85, 11.9, 76, 936),
		rec("boundary", 250, 0.8, 20, 50, 450),
		rec("low-q", 400, 0.95, 30, 20, 780),
		rec("plutino", 39.5, 0.25, 17, 29.7, 49.3),
		rec("2015 TG387", 1094, 0.94, 11.7, 65, 2123),
		rec("high-i", 80, 0.7, 50, 24, 136),
	}
}

func names(records []types.OrbitalRecord) []string {
	out := make([]string, len(records))
	for k, r := range records {
		out[k] = r.Name
	}
	return out
}

func TestExtremeSelection(t *testing.T) {
	got := Filter(sampleCatalog(), Extreme(types.DefaultThresholds()))
	assert.Equal(t, []string{"2012 VP113", "Sedna", "2015 TG387"}, names(got))
}

func TestExtremeBoundaryExcluded(t *testing.T) {
	th := types.DefaultThresholds()
	r := rec("edge", 250, 0.8, 20, 30, 450)
	assert.False(t, SemiMajorAxisAbove(th.ExtremeMinA)(r), "a = 250 is not above 250")
	assert.False(t, PerihelionAbove(th.ExtremeMinQ)(r), "q = 30 is not above 30")
	assert.False(t, Extreme(th)(r))
}

func TestKozaiCandidateSelection(t *testing.T) {
	got := Filter(sampleCatalog(), KozaiCandidate(types.DefaultThresholds()))
	assert.Equal(t, []string{"high-i"}, names(got))
}

func TestFilterIdempotent(t *testing.T) {
	th := types.DefaultThresholds()
	preds := map[string]Predicate{
		"extreme": Extreme(th),
		"kozai":   KozaiCandidate(th),
		"high e":  EccentricityAbove(0.7),
		"high i":  InclinationAbove(15),
	}
	for name, p := range preds {
		t.Run(name, func(t *testing.T) {
			once := Filter(sampleCatalog(), p)
			twice := Filter(once, p)
			assert.Equal(t, once, twice)
		})
	}
}

func TestExtremeSubsetOfHighAAndHighQ(t *testing.T) {
	th := types.DefaultThresholds()
	records := sampleCatalog()
	highA := names(Filter(records, SemiMajorAxisAbove(th.ExtremeMinA)))
	highQ := names(Filter(records, PerihelionAbove(th.ExtremeMinQ)))
	for _, name := range names(Filter(records, Extreme(th))) {
		assert.Contains(t, highA, name)
		assert.Contains(t, highQ, name)
	}
}

func TestFilterDoesNotMutate(t *testing.T) {
	records := sampleCatalog()
	before := append([]types.OrbitalRecord(nil), records...)
	_ = Filter(records, EccentricityAbove(0.8))
	_ = SortedDesc(records, ByEccentricity)
	assert.Equal(t, before, records)
}

func TestSortedDesc(t *testing.T) {
	tests := []struct {
		name string
		key  SortKey
		want []string
	}{
		{"by a", BySemiMajorAxis, []string{"2015 TG387", "Sedna", "low-q"}},
		{"by q", ByPerihelion, []string{"Sedna", "2015 TG387", "2012 VP113"}},
		{"by e", ByEccentricity, []string{"low-q", "2015 TG387", "Sedna"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortedDesc(sampleCatalog(), tt.key)
			require.Len(t, got, len(sampleCatalog()))
			assert.Equal(t, tt.want, names(got[:3]))
		})
	}
}

func TestSortedDescStable(t *testing.T) {
	records := []types.OrbitalRecord{
		{Name: "first", PerturbationStrength: 0.5},
		{Name: "second", PerturbationStrength: 0.5},
		{Name: "top", PerturbationStrength: 0.9},
	}
	assert.Equal(t, []string{"top", "first", "second"}, names(SortedDesc(records, ByPerturbation)))
}
