package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// PeerOptIn stores a learner's consent to anonymous peer comparison.
// A missing row means the learner has not opted in.
type PeerOptIn struct {
	ent.Schema
}

func (PeerOptIn) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("Learner the preference belongs to"),
		field.Bool("opted_in").
			Default(false).
			Comment("Whether the learner joins the peer pool"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the preference last changed"),
	}
}
