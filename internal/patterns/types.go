package patterns

import "time"

// FailurePattern is a recurring failure cluster for one topic.
type FailurePattern struct {
	PatternID          string    `json:"patternId"`
	Category           string    `json:"category"`
	AffectedObjectives []string  `json:"affectedObjectives"`
	FailureCount       int       `json:"failureCount"`
	OverconfidentCount int       `json:"overconfidentCount"`
	IncorrectCount     int       `json:"incorrectCount"`
	LastFailedAt       time.Time `json:"lastFailedAt"`
	Remediation        string    `json:"remediation"`
}

// TopicLookup resolves an objective id to its topic label.
type TopicLookup interface {
	TopicFor(objectiveID string) (string, bool)
}

// TopicMap is a static objective → topic table.
type TopicMap map[string]string

// TopicFor implements TopicLookup.
func (m TopicMap) TopicFor(objectiveID string) (string, bool) {
	t, ok := m[objectiveID]
	return t, ok && t != ""
}

// Remediator produces remediation text for a detected pattern.
type Remediator interface {
	Remediation(p FailurePattern) string
}
