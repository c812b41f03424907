package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChallengeAttemptEvent records one submission against a controlled-failure
// challenge. Lineage state is replayed from these rows.
type ChallengeAttemptEvent struct {
	ent.Schema
}

func (ChallengeAttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

// MemoryAnchorRecord is the serialized form of a memory anchor.
type MemoryAnchorRecord struct {
	Type        string `json:"type"`
	Content     string `json:"content"`
	Explanation string `json:"explanation"`
}

// FeedbackRecord is the serialized form of corrective feedback.
type FeedbackRecord struct {
	MisconceptionExplained string             `json:"misconception_explained"`
	WhyAnswerWrong         string             `json:"why_answer_wrong"`
	CorrectConcept         string             `json:"correct_concept"`
	ClinicalContext        string             `json:"clinical_context"`
	MemoryAnchor           MemoryAnchorRecord `json:"memory_anchor"`
}

func (ChallengeAttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("Caller-supplied or generated attempt UUID"),
		field.String("challenge_id").
			NotEmpty().
			Comment("Challenge that was answered"),
		field.String("user_id").
			NotEmpty().
			Comment("Learner who answered"),
		field.String("objective_id").
			NotEmpty().
			Comment("Objective the lineage tracks"),
		field.String("user_answer").
			NotEmpty().
			Comment("Option id the learner chose"),
		field.Int("confidence").
			Min(1).Max(5).
			Comment("Confidence before answering, 1-5"),
		field.String("emotion_tag").
			Default("").
			Comment("Self-reported emotion, empty if not given"),
		field.String("personal_notes").
			Default("").
			Comment("Learner's own notes"),
		field.Bool("is_correct").
			Comment("Whether the chosen option was correct"),
		field.Int("attempt_number").
			Positive().
			Comment("1-based position in the lineage"),
		field.Float("previous_score").
			Optional().
			Nillable().
			Comment("Score of the prior attempt in the lineage"),
		field.Float("score").
			Comment("100 when correct, 0 otherwise"),
		field.JSON("feedback", &FeedbackRecord{}).
			Optional().
			Comment("Corrective feedback, only when incorrect"),
		field.JSON("retry_schedule", []time.Time{}).
			Optional().
			Comment("Five retry times, only when incorrect"),
		field.String("celebration_message").
			Default("").
			Comment("Shown on a correct answer"),
	}
}

func (ChallengeAttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("challenge_id", "user_id", "attempt_number").
			Unique(),
		// A lineage numbers its attempts 1..n with no gaps or repeats.
		index.Fields("user_id", "objective_id", "attempt_number").
			Unique(),
	}
}
