package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// ErrDuplicateAttempt is returned when a challenge attempt with the same
// challenge, user and attempt number (or the same attempt id) already exists.
var ErrDuplicateAttempt = errors.New("duplicate challenge attempt")

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// PoolSnapshot is a persisted peer pool. Payload is opaque JSON owned by
// the benchmark package and never carries raw learner identifiers.
type PoolSnapshot struct {
	ID       int
	Sequence int64
	TakenAt  time.Time
	Version  string
	Members  int
	Payload  json.RawMessage
}

// PoolSnapshotRepo keeps a bounded history of pool snapshots.
type PoolSnapshotRepo interface {
	// Save appends snap and fills in its ID and Sequence.
	Save(ctx context.Context, snap *PoolSnapshot) error

	// Latest returns the newest snapshot, or nil if there is none.
	Latest(ctx context.Context) (*PoolSnapshot, error)

	// Prune keeps the newest keep snapshots and deletes the rest.
	Prune(ctx context.Context, keep int) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorClass   string
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// AssessmentEventData captures one graded, confidence-rated response.
type AssessmentEventData struct {
	PromptID        string
	UserID          string
	ObjectiveID     string
	PreConfidence   int
	PostConfidence  *int
	Score           float64
	Rationale       string
	ReflectionNotes string
	CreatedAt       time.Time
}

// AssessmentEventRecord is a stored assessment event.
type AssessmentEventRecord struct {
	ID       int
	Sequence int64
	AssessmentEventData
}

// MemoryAnchorData is the stored form of a memory anchor.
type MemoryAnchorData struct {
	Type        string
	Content     string
	Explanation string
}

// FeedbackData is the stored form of corrective feedback.
type FeedbackData struct {
	MisconceptionExplained string
	WhyAnswerWrong         string
	CorrectConcept         string
	ClinicalContext        string
	MemoryAnchor           MemoryAnchorData
}

// ChallengeAttemptData captures one controlled-failure submission.
type ChallengeAttemptData struct {
	AttemptID          string
	ChallengeID        string
	UserID             string
	ObjectiveID        string
	UserAnswer         string
	Confidence         int
	EmotionTag         string
	PersonalNotes      string
	IsCorrect          bool
	AttemptNumber      int
	PreviousScore      *float64
	Score              float64
	Feedback           *FeedbackData
	RetrySchedule      []time.Time
	CelebrationMessage string
	CreatedAt          time.Time
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one LLM event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// AppendAssessment records a graded response.
	AppendAssessment(ctx context.Context, data AssessmentEventData) error

	// QueryAssessments returns a learner's assessments, oldest first.
	QueryAssessments(ctx context.Context, userID string, opts QueryOpts) ([]AssessmentEventRecord, error)

	// AppendChallengeAttempt records a submission. Duplicates fail with
	// ErrDuplicateAttempt and leave the log unchanged.
	AppendChallengeAttempt(ctx context.Context, data ChallengeAttemptData) error

	// QueryChallengeAttempts returns a learner's attempts in sequence
	// order. An empty objectiveID returns attempts for every objective.
	QueryChallengeAttempts(ctx context.Context, userID, objectiveID string) ([]ChallengeAttemptData, error)
}

// PeerRepo manages peer comparison consent.
type PeerRepo interface {
	// SetOptIn records a learner's consent choice.
	SetOptIn(ctx context.Context, userID string, optedIn bool) error

	// IsOptedIn reports whether the learner has opted in. Learners with
	// no recorded choice have not.
	IsOptedIn(ctx context.Context, userID string) (bool, error)

	// OptedInUsers lists every opted-in learner.
	OptedInUsers(ctx context.Context) ([]string, error)
}
