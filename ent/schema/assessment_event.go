package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentEvent records one graded response with the learner's
// self-reported confidence. Calibration results are recomputed from it.
type AssessmentEvent struct {
	ent.Schema
}

func (AssessmentEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AssessmentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("prompt_id").
			NotEmpty().
			Comment("Question the response belongs to"),
		field.String("user_id").
			NotEmpty().
			Comment("Learner who answered"),
		field.String("objective_id").
			Default("").
			Comment("Learning objective of the prompt"),
		field.Int("pre_confidence").
			Min(1).Max(5).
			Comment("Confidence before answering, 1-5"),
		field.Int("post_confidence").
			Optional().
			Nillable().
			Min(1).Max(5).
			Comment("Confidence after answering, 1-5"),
		field.Float("score").
			Min(0).Max(100).
			Comment("Grade from the scoring oracle, 0-100"),
		field.String("rationale").
			Default("").
			Comment("Learner's reasoning"),
		field.String("reflection_notes").
			Default("").
			Comment("Learner's reflection after feedback"),
	}
}

func (AssessmentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "timestamp"),
		index.Fields("objective_id"),
	}
}
