package challenge

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/calibra/internal/calibration"
)

// State is a lineage's position in the controlled-failure lifecycle.
type State string

const (
	StateNew            State = "NEW"
	StatePresented      State = "PRESENTED"
	StateScheduledRetry State = "SCHEDULED_RETRY"
	StateMastered       State = "MASTERED"
)

// Scores recorded for a graded attempt.
const (
	ScoreCorrect   = 100.0
	ScoreIncorrect = 0.0
)

// Lineage tracks one learner's attempts against one objective.
// Attempts is append-only; State is derived from it plus any pending
// presentation.
type Lineage struct {
	UserID      string
	ObjectiveID string
	State       State
	Attempts    []Attempt

	presentedID string
	resumeState State
}

// NewLineage returns an untouched lineage.
func NewLineage(userID, objectiveID string) *Lineage {
	return &Lineage{UserID: userID, ObjectiveID: objectiveID, State: StateNew}
}

// Clone returns a copy whose attempt history can grow independently.
func (l *Lineage) Clone() *Lineage {
	c := *l
	c.Attempts = append([]Attempt(nil), l.Attempts...)
	return &c
}

// Presentation is the context shown alongside a presented challenge.
type Presentation struct {
	ChallengeID   string   `json:"challengeId"`
	AttemptNumber int      `json:"attemptNumber"`
	PreviousScore *float64 `json:"previousScore,omitempty"`
}

// LastTimeMessage returns a reminder of the previous score, or "" on a
// first attempt.
func (p Presentation) LastTimeMessage() string {
	if p.PreviousScore == nil {
		return ""
	}
	return fmt.Sprintf("Last time you scored %.0f%%.", *p.PreviousScore)
}

// Present shows challenge c. It is allowed from NEW, SCHEDULED_RETRY and
// MASTERED; re-presenting the challenge already on screen is a no-op.
func (l *Lineage) Present(c Challenge) (Presentation, error) {
	if c.ObjectiveID != l.ObjectiveID {
		return Presentation{}, &calibration.InputError{
			Field: "objectiveId", Value: c.ObjectiveID,
			Reason: fmt.Sprintf("challenge does not belong to objective %s", l.ObjectiveID),
		}
	}

	switch l.State {
	case StateNew, StateScheduledRetry, StateMastered:
		l.resumeState = l.State
	case StatePresented:
		if l.presentedID != c.ID {
			return Presentation{}, &TransitionError{From: l.State, Op: "present " + c.ID}
		}
	default:
		return Presentation{}, &TransitionError{From: l.State, Op: "present"}
	}

	l.State = StatePresented
	l.presentedID = c.ID
	return Presentation{
		ChallengeID:   c.ID,
		AttemptNumber: len(l.Attempts) + 1,
		PreviousScore: l.previousScore(),
	}, nil
}

// Abandon withdraws a presented challenge without recording an attempt.
func (l *Lineage) Abandon() error {
	if l.State != StatePresented {
		return &TransitionError{From: l.State, Op: "abandon"}
	}
	l.State = l.resumeState
	l.presentedID = ""
	return nil
}

// Submit grades s against the presented challenge and records exactly one
// attempt. Input is validated before any transition. A correct answer
// masters the lineage and cancels its pending retries; an incorrect one
// schedules retries and attaches corrective feedback from fb.
func (l *Lineage) Submit(ctx context.Context, c Challenge, s Submission, fb FeedbackSource) (Attempt, error) {
	if err := validateSubmission(s); err != nil {
		return Attempt{}, err
	}
	if _, ok := c.OptionByID(s.UserAnswer); !ok {
		return Attempt{}, &calibration.InputError{Field: "userAnswer", Value: s.UserAnswer, Reason: "is not an option of " + c.ID}
	}
	if l.State != StatePresented || l.presentedID != c.ID {
		return Attempt{}, &TransitionError{From: l.State, Op: "submit " + c.ID}
	}

	at := s.At.UTC()
	attempt := Attempt{
		ID:            s.AttemptID,
		ChallengeID:   c.ID,
		UserID:        l.UserID,
		ObjectiveID:   l.ObjectiveID,
		UserAnswer:    strings.TrimSpace(s.UserAnswer),
		Confidence:    s.Confidence,
		EmotionTag:    s.EmotionTag,
		PersonalNotes: s.PersonalNotes,
		IsCorrect:     c.IsCorrect(s.UserAnswer),
		AttemptNumber: len(l.Attempts) + 1,
		PreviousScore: l.previousScore(),
		CreatedAt:     at,
	}
	if attempt.ID == "" {
		attempt.ID = uuid.NewString()
	}

	if attempt.IsCorrect {
		attempt.Score = ScoreCorrect
		attempt.CelebrationMessage = celebrationMessage(attempt)
	} else {
		attempt.Score = ScoreIncorrect
		if fb == nil {
			fb = TemplateFeedback{}
		}
		feedback, err := fb.Feedback(ctx, FeedbackInput{Challenge: c, Attempt: attempt})
		if err != nil {
			return Attempt{}, fmt.Errorf("corrective feedback for %s: %w", c.ID, err)
		}
		attempt.Feedback = feedback
		attempt.RetrySchedule = BuildRetrySchedule(at)
	}

	l.apply(attempt)
	return attempt, nil
}

func (l *Lineage) apply(a Attempt) {
	l.Attempts = append(l.Attempts, a)
	l.presentedID = ""
	if a.IsCorrect {
		l.State = StateMastered
	} else {
		l.State = StateScheduledRetry
	}
}

func (l *Lineage) previousScore() *float64 {
	if len(l.Attempts) == 0 {
		return nil
	}
	s := l.Attempts[len(l.Attempts)-1].Score
	return &s
}

// PresentedID returns the id of the challenge on screen, if any.
func (l *Lineage) PresentedID() (string, bool) {
	return l.presentedID, l.State == StatePresented
}

// LastAttempt returns the most recent attempt, if any.
func (l *Lineage) LastAttempt() (Attempt, bool) {
	if len(l.Attempts) == 0 {
		return Attempt{}, false
	}
	return l.Attempts[len(l.Attempts)-1], true
}

// DueRetry is a retry that has come due for a lineage.
type DueRetry struct {
	UserID      string    `json:"userId"`
	ObjectiveID string    `json:"objectiveId"`
	ChallengeID string    `json:"challengeId"`
	Stage       int       `json:"stage"`
	DueAt       time.Time `json:"dueAt"`
}

// DueRetries reports the latest due stage of the lineage's active retry
// schedule. Mastered lineages have no pending retries.
func (l *Lineage) DueRetries(now time.Time) []DueRetry {
	if l.State != StateScheduledRetry {
		return nil
	}
	last, _ := l.LastAttempt()
	due := DueEntries(last.RetrySchedule, now)
	if len(due) == 0 {
		return nil
	}
	return []DueRetry{{
		UserID:      l.UserID,
		ObjectiveID: l.ObjectiveID,
		ChallengeID: last.ChallengeID,
		Stage:       len(due),
		DueAt:       due[len(due)-1],
	}}
}

// NextRetry returns the next retry time after now, or nil when none is pending.
func (l *Lineage) NextRetry(now time.Time) *time.Time {
	if l.State != StateScheduledRetry {
		return nil
	}
	last, _ := l.LastAttempt()
	return NextEntry(last.RetrySchedule, now)
}

// Replay rebuilds a lineage from its stored attempts.
func Replay(userID, objectiveID string, attempts []Attempt) (*Lineage, error) {
	l := NewLineage(userID, objectiveID)
	sorted := make([]Attempt, len(attempts))
	copy(sorted, attempts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AttemptNumber < sorted[j].AttemptNumber
	})

	for i, a := range sorted {
		if a.UserID != userID || a.ObjectiveID != objectiveID {
			return nil, fmt.Errorf("replay attempt %s: belongs to %s/%s: %w",
				a.ID, a.UserID, a.ObjectiveID, ErrCorruptLineage)
		}
		if a.AttemptNumber != i+1 {
			return nil, fmt.Errorf("replay attempt %s: attempt number %d, want %d: %w",
				a.ID, a.AttemptNumber, i+1, ErrCorruptLineage)
		}
		l.apply(a)
	}
	return l, nil
}

func validateSubmission(s Submission) error {
	if err := calibration.ValidateConfidence(s.Confidence); err != nil {
		return err
	}
	if s.EmotionTag != "" && !s.EmotionTag.Valid() {
		return &calibration.InputError{Field: "emotionTag", Value: s.EmotionTag, Reason: "is not a known emotion"}
	}
	if strings.TrimSpace(s.UserAnswer) == "" {
		return &calibration.InputError{Field: "userAnswer", Value: s.UserAnswer, Reason: "is required"}
	}
	if s.At.IsZero() {
		return &calibration.InputError{Field: "createdAt", Value: s.At, Reason: "is required"}
	}
	return nil
}
