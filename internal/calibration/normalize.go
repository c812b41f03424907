package calibration

const (
	// MinConfidence and MaxConfidence bound the Likert confidence scale.
	MinConfidence = 1
	MaxConfidence = 5

	confidenceStep = 25
)

// ValidateConfidence rejects values outside the 1-5 Likert scale.
func ValidateConfidence(confidence int) error {
	if confidence < MinConfidence || confidence > MaxConfidence {
		return &InputError{Field: "confidence", Value: confidence, Reason: "must be between 1 and 5"}
	}
	return nil
}

// NormalizeConfidence maps the 1-5 confidence scale onto 0-100:
// 1→0, 2→25, 3→50, 4→75, 5→100.
func NormalizeConfidence(confidence int) (int, error) {
	if err := ValidateConfidence(confidence); err != nil {
		return 0, err
	}
	return (confidence - 1) * confidenceStep, nil
}
