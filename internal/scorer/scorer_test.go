package scorer

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/pdiddy/tno-evidence/pkg/types"
)

func testScorer(t *testing.T) (*Scorer, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return New(types.DefaultThresholds(), logger), &buf
}

func TestScorerKozai(t *testing.T) {
	s, logs := testScorer(t)
	records := append(sampleCatalog(),
		rec("strong", 400, 0.9, 70, 40, 760),
		rec("unbound", 300, 1.2, 40, 90, 0),
	)

	res := s.Kozai(records)

	if len(res.Candidates) != 2 {
		t.Fatalf("len(Candidates) = %d, want 2", len(res.Candidates))
	}
	for k := 1; k < len(res.Candidates); k++ {
		if res.Candidates[k-1].KozaiEvidenceScore < res.Candidates[k].KozaiEvidenceScore {
			t.Errorf("candidates not sorted by evidence at %d", k)
		}
	}
	if res.Statistics.Count != 2 {
		t.Errorf("Statistics.Count = %d, want 2", res.Statistics.Count)
	}
	if res.Statistics.ExcludedCount != 1 {
		t.Errorf("Statistics.ExcludedCount = %d, want 1", res.Statistics.ExcludedCount)
	}
	if len(res.Excluded) != 1 || res.Excluded[0] != "unbound" {
		t.Errorf("Excluded = %v, want [unbound]", res.Excluded)
	}
	if res.Perturber.DistanceMax == 0 {
		t.Error("expected a perturber estimate")
	}
	if len(res.Clusters) == 0 {
		t.Error("expected resonance clusters")
	}
	if res.Oscillation.FundamentalPeriod <= 0 {
		t.Errorf("FundamentalPeriod = %v, want > 0", res.Oscillation.FundamentalPeriod)
	}
	if !bytes.Contains(logs.Bytes(), []byte("object=unbound")) {
		t.Errorf("expected exclusion warning in logs, got %q", logs.String())
	}
}

func TestScorerKozaiEmpty(t *testing.T) {
	s, _ := testScorer(t)
	res := s.Kozai(nil)
	if len(res.Candidates) != 0 {
		t.Errorf("len(Candidates) = %d, want 0", len(res.Candidates))
	}
	if res.Statistics != (types.PopulationStatistics{}) {
		t.Errorf("Statistics = %+v, want zero value", res.Statistics)
	}
	if res.Perturber.Candidates != nil {
		t.Errorf("Perturber = %+v, want zero value", res.Perturber)
	}
}

func TestScorerExtreme(t *testing.T) {
	s, _ := testScorer(t)
	res := s.Extreme(sampleCatalog())

	want := []string{"2015 TG387", "Sedna", "2012 VP113"}
	got := names(res.Extreme)
	if len(got) != len(want) {
		t.Fatalf("Extreme = %v, want %v", got, want)
	}
	for k := range want {
		if got[k] != want[k] {
			t.Errorf("Extreme[%d] = %q, want %q", k, got[k], want[k])
		}
	}
	if res.Criteria.SemiMajorAxisMin != 250 || res.Criteria.PerihelionMin != 30 {
		t.Errorf("Criteria = %+v", res.Criteria)
	}
	if res.Statistics.Count != 3 {
		t.Errorf("Statistics.Count = %d, want 3", res.Statistics.Count)
	}
	if res.Signature.TotalExtreme != 3 {
		t.Errorf("Signature.TotalExtreme = %d, want 3", res.Signature.TotalExtreme)
	}
	if len(res.HighA) != 4 || len(res.HighQ) != 4 {
		t.Errorf("len(HighA) = %d, len(HighQ) = %d, want 4 and 4", len(res.HighA), len(res.HighQ))
	}
}

func TestScorerSurvey(t *testing.T) {
	s, _ := testScorer(t)
	res := s.Survey(surveyCatalog())
	if res.Synthesis.ExtremeCore != 3 {
		t.Errorf("Synthesis.ExtremeCore = %d, want 3", res.Synthesis.ExtremeCore)
	}
}

func TestNewNilLogger(t *testing.T) {
	s := New(types.DefaultThresholds(), nil)
	if s.Thresholds().ExtremeMinA != types.DefaultExtremeMinA {
		t.Errorf("ExtremeMinA = %v", s.Thresholds().ExtremeMinA)
	}
	_ = s.Extreme(nil)
}
