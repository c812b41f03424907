package calibration

import (
	"math"
	"strings"
)

// CategoryThreshold is the delta (in percentage points) beyond which a
// response counts as over- or underconfident. The boundary itself is
// calibrated.
const CategoryThreshold = 15.0

// Categorize classifies a calibration delta.
func Categorize(delta float64) Category {
	switch {
	case delta > CategoryThreshold:
		return CategoryOverconfident
	case delta < -CategoryThreshold:
		return CategoryUnderconfident
	default:
		return CategoryCalibrated
	}
}

// ValidateScore rejects scores outside [0, 100]. Scores are never clamped.
func ValidateScore(score float64) error {
	if math.IsNaN(score) || score < 0 || score > 100 {
		return &InputError{Field: "score", Value: score, Reason: "must be between 0 and 100"}
	}
	return nil
}

// Calculate scores a single response from its 1-5 confidence and its 0-100
// grade. It is pure: the same input always yields the same Result.
func Calculate(confidence int, score float64) (Result, error) {
	normalized, err := NormalizeConfidence(confidence)
	if err != nil {
		return Result{}, err
	}
	if err := ValidateScore(score); err != nil {
		return Result{}, err
	}

	delta := float64(normalized) - score
	category := Categorize(delta)

	return Result{
		ConfidenceNormalized: normalized,
		CalibrationDelta:     delta,
		Category:             category,
		FeedbackMessage:      renderFeedback(category, normalized, score),
	}, nil
}

// Validate checks an Assessment before it is scored or stored.
func (a Assessment) Validate() error {
	if strings.TrimSpace(a.UserID) == "" {
		return &InputError{Field: "userId", Value: a.UserID, Reason: "is required"}
	}
	if strings.TrimSpace(a.PromptID) == "" {
		return &InputError{Field: "promptId", Value: a.PromptID, Reason: "is required"}
	}
	if strings.TrimSpace(a.ObjectiveID) == "" {
		return &InputError{Field: "objectiveId", Value: a.ObjectiveID, Reason: "is required"}
	}
	if err := ValidateConfidence(a.PreConfidence); err != nil {
		return err
	}
	if a.PostConfidence != nil {
		if err := ValidateConfidence(*a.PostConfidence); err != nil {
			return &InputError{Field: "postConfidence", Value: *a.PostConfidence, Reason: "must be between 1 and 5"}
		}
	}
	return ValidateScore(a.Score)
}

// Score validates an Assessment and scores its pre-answer confidence.
func Score(a Assessment) (Result, error) {
	if err := a.Validate(); err != nil {
		return Result{}, err
	}
	return Calculate(a.PreConfidence, a.Score)
}
