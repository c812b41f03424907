package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/abhisek/calibra/internal/calibration"
)

var baseTime = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func responsesWithDeltas(deltas ...float64) []Response {
	rs := make([]Response, len(deltas))
	for i, d := range deltas {
		rs[i] = Response{
			ConfidenceNormalized: 50,
			Score:                50 - d,
			Timestamp:            baseTime.Add(time.Duration(i) * time.Hour),
		}
	}
	return rs
}

func TestAggregate_Empty(t *testing.T) {
	m := Aggregate(nil, DefaultConfig())
	if m.MeanAbsoluteError != nil {
		t.Error("expected nil MAE for empty window")
	}
	if m.CorrelationCoefficient != nil {
		t.Error("expected nil correlation for empty window")
	}
	if m.Trend != TrendStable {
		t.Errorf("trend = %s, want STABLE", m.Trend)
	}
	if m.ResponseCount != 0 {
		t.Errorf("response count = %d, want 0", m.ResponseCount)
	}
}

func TestAggregate_CategoryCounts(t *testing.T) {
	// Deltas: 40 over, 16 over, 15 calibrated, 0 calibrated, -15 calibrated, -30 under.
	rs := responsesWithDeltas(40, 16, 15, 0, -15, -30)
	m := Aggregate(rs, DefaultConfig())

	if m.OverconfidentCount != 2 {
		t.Errorf("overconfident = %d, want 2", m.OverconfidentCount)
	}
	if m.CalibratedCount != 3 {
		t.Errorf("calibrated = %d, want 3", m.CalibratedCount)
	}
	if m.UnderconfidentCount != 1 {
		t.Errorf("underconfident = %d, want 1", m.UnderconfidentCount)
	}
	if m.ResponseCount != 6 {
		t.Errorf("response count = %d, want 6", m.ResponseCount)
	}
}

func TestAggregate_CorrelationNeedsVariance(t *testing.T) {
	// All confidences are 50, so the confidence series has no variance.
	rs := responsesWithDeltas(5, 10, 15, 20, 25, 30)
	m := Aggregate(rs, DefaultConfig())
	if m.CorrelationCoefficient != nil {
		t.Errorf("expected nil correlation, got %f", *m.CorrelationCoefficient)
	}
	if m.MeanAbsoluteError == nil || !almostEqual(*m.MeanAbsoluteError, 17.5) {
		t.Errorf("MAE = %v, want 17.5", m.MeanAbsoluteError)
	}
}

func TestAggregate_DoesNotReorderInput(t *testing.T) {
	rs := responsesWithDeltas(1, 2, 3)
	rs[0], rs[2] = rs[2], rs[0]
	first := rs[0]
	Aggregate(rs, DefaultConfig())
	if rs[0] != first {
		t.Error("Aggregate mutated its input")
	}
}

func TestDetectTrend(t *testing.T) {
	rolling := TrendConfig{Policy: PolicyRolling, Window: 3, Threshold: 5, MinPerSide: 2}
	halves := TrendConfig{Policy: PolicyHalves, Threshold: 5, MinPerSide: 2}

	tests := []struct {
		name   string
		deltas []float64
		cfg    TrendConfig
		want   Trend
	}{
		{"rolling improving", []float64{40, -40, 40, 0, 5, -5}, rolling, TrendImproving},
		{"rolling worsening", []float64{0, 5, -5, 40, -40, 40}, rolling, TrendWorsening},
		{"rolling within threshold", []float64{10, 10, 10, 6, 6, 6}, rolling, TrendStable},
		{"rolling too short", []float64{40, 0, 0, 0}, rolling, TrendStable},
		{"rolling partial earlier window", []float64{40, 40, 0, 0, 0}, rolling, TrendImproving},
		{"default window partial earlier", []float64{40, 40, 40, 0, 0, 0, 0, 0}, DefaultConfig().Trend, TrendImproving},
		{"default window one earlier response", []float64{40, 0, 0, 0, 0, 0}, DefaultConfig().Trend, TrendStable},
		{"rolling ignores older history", []float64{0, 0, 0, 40, 40, 40, 0, 0, 0}, rolling, TrendImproving},
		{"halves improving", []float64{30, 30, 30, 0, 0, 0, 0}, halves, TrendImproving},
		{"halves worsening", []float64{0, 0, 30, 30}, halves, TrendWorsening},
		{"halves too short", []float64{30, 0, 0}, halves, TrendStable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectTrend(responsesWithDeltas(tt.deltas...), tt.cfg)
			if got != tt.want {
				t.Errorf("trend = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestAggregate_TrendUsesChronologicalOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Trend = TrendConfig{Policy: PolicyRolling, Window: 2, Threshold: 5, MinPerSide: 2}

	rs := responsesWithDeltas(40, 40, 0, 0)
	// Shuffle so the slice order disagrees with the timestamps.
	rs[0], rs[3] = rs[3], rs[0]

	m := Aggregate(rs, cfg)
	if m.Trend != TrendImproving {
		t.Errorf("trend = %s, want IMPROVING", m.Trend)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	bad := DefaultConfig()
	bad.Trend.Policy = "weekly"
	if err := bad.Validate(); err == nil {
		t.Error("expected error for unknown policy")
	}

	bad = DefaultConfig()
	bad.Trend.Window = 0
	if err := bad.Validate(); err == nil {
		t.Error("expected error for zero window")
	}

	bad = DefaultConfig()
	bad.Trend.Window, bad.Trend.MinPerSide = 1, 2
	if err := bad.Validate(); err == nil {
		t.Error("expected error for a window smaller than min_per_side")
	}

	bad = DefaultConfig()
	bad.Trend.Threshold = -1
	if err := bad.Validate(); err == nil {
		t.Error("expected error for negative threshold")
	}
}

func TestFromAssessments(t *testing.T) {
	as := []calibration.Assessment{
		{PromptID: "p1", PreConfidence: 5, Score: 60, CreatedAt: baseTime},
		{PromptID: "p2", PreConfidence: 1, Score: 10, CreatedAt: baseTime.Add(time.Hour)},
	}
	rs, err := FromAssessments(as)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rs) != 2 {
		t.Fatalf("len = %d, want 2", len(rs))
	}
	if rs[0].ConfidenceNormalized != 100 || rs[1].ConfidenceNormalized != 0 {
		t.Errorf("normalized = %d/%d, want 100/0", rs[0].ConfidenceNormalized, rs[1].ConfidenceNormalized)
	}

	as[1].PreConfidence = 9
	if _, err := FromAssessments(as); !errors.Is(err, calibration.ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}
