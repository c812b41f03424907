package calibration

import "time"

// Category classifies the gap between stated confidence and actual score.
type Category string

const (
	CategoryOverconfident  Category = "OVERCONFIDENT"
	CategoryUnderconfident Category = "UNDERCONFIDENT"
	CategoryCalibrated     Category = "CALIBRATED"
)

// AllCategories returns every category in display order.
func AllCategories() []Category {
	return []Category{CategoryOverconfident, CategoryCalibrated, CategoryUnderconfident}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryOverconfident, CategoryUnderconfident, CategoryCalibrated:
		return true
	}
	return false
}

// DisplayName returns a human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryOverconfident:
		return "Overconfident"
	case CategoryUnderconfident:
		return "Underconfident"
	case CategoryCalibrated:
		return "Calibrated"
	default:
		return string(c)
	}
}

// Assessment is one scored question attempt. It is immutable once scored.
type Assessment struct {
	PromptID        string    `json:"promptId"`
	UserID          string    `json:"userId"`
	ObjectiveID     string    `json:"objectiveId"`
	PreConfidence   int       `json:"preConfidence"`
	PostConfidence  *int      `json:"postConfidence,omitempty"`
	Score           float64   `json:"score"`
	Rationale       string    `json:"rationale,omitempty"`
	ReflectionNotes string    `json:"reflectionNotes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Result is the calibration outcome for a single response. It is derived
// data and can always be recomputed from the Assessment.
type Result struct {
	ConfidenceNormalized int      `json:"confidenceNormalized"`
	CalibrationDelta     float64  `json:"calibrationDelta"`
	Category             Category `json:"category"`
	FeedbackMessage      string   `json:"feedbackMessage"`
}
