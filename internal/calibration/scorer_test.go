package calibration

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"
)

func TestCalculate_Examples(t *testing.T) {
	tests := []struct {
		name       string
		confidence int
		score      float64
		wantDelta  float64
		wantCat    Category
	}{
		{"not sure but perfect", 1, 100, -100, CategoryUnderconfident},
		{"certain but 60", 5, 60, 40, CategoryOverconfident},
		{"matched", 3, 50, 0, CategoryCalibrated},
		{"just over", 3, 34, 16, CategoryOverconfident},
		{"upper boundary", 3, 35, 15, CategoryCalibrated},
		{"lower boundary", 3, 65, -15, CategoryCalibrated},
		{"just under", 3, 66, -16, CategoryUnderconfident},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Calculate(tt.confidence, tt.score)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.CalibrationDelta != tt.wantDelta {
				t.Errorf("delta = %v, want %v", r.CalibrationDelta, tt.wantDelta)
			}
			if r.Category != tt.wantCat {
				t.Errorf("category = %s, want %s", r.Category, tt.wantCat)
			}
		})
	}
}

func TestCalculate_InvalidScore(t *testing.T) {
	for _, score := range []float64{-0.1, 100.5, math.NaN()} {
		_, err := Calculate(3, score)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Calculate(3, %v) error = %v, want ErrInvalidInput", score, err)
		}
	}
}

func TestCalculate_InvalidConfidence(t *testing.T) {
	_, err := Calculate(0, 50)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

func TestCalculate_Idempotent(t *testing.T) {
	a, _ := Calculate(4, 42.5)
	b, _ := Calculate(4, 42.5)
	if a != b {
		t.Errorf("Calculate not idempotent: %+v vs %+v", a, b)
	}
}

func TestCalculate_FeedbackTemplates(t *testing.T) {
	tests := []struct {
		confidence int
		score      float64
		contains   []string
	}{
		{5, 60, []string{"100%", "60%", "certainty exceeded accuracy"}},
		{1, 100, []string{"0%", "100%", "trust your understanding"}},
		{3, 50, []string{"confidence matches", "well calibrated"}},
	}
	for _, tt := range tests {
		r, err := Calculate(tt.confidence, tt.score)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range tt.contains {
			if !strings.Contains(r.FeedbackMessage, want) {
				t.Errorf("feedback %q missing %q", r.FeedbackMessage, want)
			}
		}
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{60, "60%"},
		{72.25, "72.3%"},
		{0, "0%"},
	}
	for _, tt := range tests {
		if got := formatPercent(tt.score); got != tt.want {
			t.Errorf("formatPercent(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestScore_ValidatesAssessment(t *testing.T) {
	post := 7
	base := Assessment{
		PromptID:      "p1",
		UserID:        "u1",
		ObjectiveID:   "obj-1",
		PreConfidence: 4,
		Score:         80,
		CreatedAt:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	r, err := Score(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Category != CategoryCalibrated {
		t.Errorf("category = %s, want CALIBRATED", r.Category)
	}

	missingUser := base
	missingUser.UserID = " "
	if _, err := Score(missingUser); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("missing user: error = %v, want ErrInvalidInput", err)
	}

	badPost := base
	badPost.PostConfidence = &post
	if _, err := Score(badPost); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("bad post confidence: error = %v, want ErrInvalidInput", err)
	}
}

func TestCategory_Valid(t *testing.T) {
	for _, c := range AllCategories() {
		if !c.Valid() {
			t.Errorf("%s should be valid", c)
		}
	}
	if Category("MAYBE").Valid() {
		t.Error("unknown category should not be valid")
	}
}
