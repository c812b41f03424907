package calibration

import (
	"errors"
	"testing"
)

func TestNormalizeConfidence_AllLevels(t *testing.T) {
	tests := []struct {
		confidence int
		want       int
	}{
		{1, 0},
		{2, 25},
		{3, 50},
		{4, 75},
		{5, 100},
	}
	for _, tt := range tests {
		got, err := NormalizeConfidence(tt.confidence)
		if err != nil {
			t.Fatalf("NormalizeConfidence(%d): unexpected error: %v", tt.confidence, err)
		}
		if got != tt.want {
			t.Errorf("NormalizeConfidence(%d) = %d, want %d", tt.confidence, got, tt.want)
		}
		if got != (tt.confidence-1)*25 {
			t.Errorf("NormalizeConfidence(%d) = %d, not (c-1)*25", tt.confidence, got)
		}
	}
}

func TestNormalizeConfidence_OutOfRange(t *testing.T) {
	for _, c := range []int{-1, 0, 6, 100} {
		_, err := NormalizeConfidence(c)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("NormalizeConfidence(%d) error = %v, want ErrInvalidInput", c, err)
		}
	}
}

func TestInputError_Field(t *testing.T) {
	err := ValidateConfidence(9)
	var ie *InputError
	if !errors.As(err, &ie) {
		t.Fatalf("expected *InputError, got %T", err)
	}
	if ie.Field != "confidence" {
		t.Errorf("Field = %q, want confidence", ie.Field)
	}
}
