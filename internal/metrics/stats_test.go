package metrics

import (
	"math"
	"testing"
)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestCorrelation_WellCalibrated(t *testing.T) {
	conf := []float64{25, 50, 75, 50, 75, 100}
	scores := []float64{30, 55, 80, 60, 85, 95}

	r := Correlation(conf, scores)
	if r == nil {
		t.Fatal("expected a correlation, got nil")
	}
	if *r <= 0.9 {
		t.Errorf("r = %f, want > 0.9", *r)
	}
}

func TestCorrelation_AntiCorrelated(t *testing.T) {
	conf := []float64{100, 100, 75, 25, 0, 50}
	scores := []float64{10, 20, 40, 90, 100, 60}

	r := Correlation(conf, scores)
	if r == nil {
		t.Fatal("expected a correlation, got nil")
	}
	if *r >= 0 {
		t.Errorf("r = %f, want < 0", *r)
	}
}

func TestCorrelation_TooFewPairs(t *testing.T) {
	r := Correlation([]float64{0, 25, 50, 75}, []float64{10, 20, 30, 40})
	if r != nil {
		t.Errorf("expected nil with 4 pairs, got %f", *r)
	}
}

func TestCorrelation_ZeroVariance(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
	}{
		{"constant confidence", []float64{50, 50, 50, 50, 50}, []float64{10, 20, 30, 40, 50}},
		{"constant score", []float64{0, 25, 50, 75, 100}, []float64{70, 70, 70, 70, 70}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Correlation(tt.x, tt.y)
			if r != nil {
				t.Errorf("expected nil for zero variance, got %f", *r)
			}
		})
	}
}

func TestCorrelation_LengthMismatch(t *testing.T) {
	if r := Correlation([]float64{1, 2, 3, 4, 5}, []float64{1, 2, 3, 4}); r != nil {
		t.Errorf("expected nil for mismatched series, got %f", *r)
	}
}

func TestCorrelation_LargeOffsetIsStable(t *testing.T) {
	n := 200
	x := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = 1e9 + float64(i)
		y[i] = 1e9 + 2*float64(i) + 1
	}
	r := Correlation(x, y)
	if r == nil {
		t.Fatal("expected a correlation, got nil")
	}
	if !almostEqual(*r, 1.0) {
		t.Errorf("r = %.12f, want 1.0", *r)
	}
}

func TestMeanAbsoluteError(t *testing.T) {
	rs := []Response{
		{ConfidenceNormalized: 60, Score: 50},
		{ConfidenceNormalized: 30, Score: 50},
		{ConfidenceNormalized: 80, Score: 50},
	}
	mae := MeanAbsoluteError(rs)
	if mae == nil {
		t.Fatal("expected MAE, got nil")
	}
	if !almostEqual(*mae, 20) {
		t.Errorf("MAE = %f, want 20", *mae)
	}
}

func TestMeanAbsoluteError_Empty(t *testing.T) {
	if mae := MeanAbsoluteError(nil); mae != nil {
		t.Errorf("expected nil MAE for empty window, got %f", *mae)
	}
}
