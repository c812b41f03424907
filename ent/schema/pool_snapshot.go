package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PoolSnapshot is a persisted peer pool: the anonymised member sample
// keyed by salted digests. Raw learner IDs are never stored here.
type PoolSnapshot struct {
	ent.Schema
}

func (PoolSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Comment("Global event sequence when the pool was summarized"),
		field.Time("taken_at").
			Default(time.Now).
			Immutable(),
		field.String("format_version").
			NotEmpty().
			Comment("Semver of the payload encoding; readers skip other majors"),
		field.Int("members").
			NonNegative().
			Comment("Opted-in learners in the sample"),
		field.Bytes("payload").
			Comment("JSON-encoded member sample"),
	}
}

func (PoolSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("taken_at"),
	}
}
