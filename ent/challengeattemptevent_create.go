// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/calibra/ent/challengeattemptevent"
	"github.com/abhisek/calibra/ent/schema"
)

// ChallengeAttemptEventCreate is the builder for creating a ChallengeAttemptEvent entity.
type ChallengeAttemptEventCreate struct {
	config
	mutation *ChallengeAttemptEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ChallengeAttemptEventCreate) SetSequence(v int64) *ChallengeAttemptEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ChallengeAttemptEventCreate) SetTimestamp(v time.Time) *ChallengeAttemptEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ChallengeAttemptEventCreate) SetNillableTimestamp(v *time.Time) *ChallengeAttemptEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAttemptID sets the "attempt_id" field.
func (_c *ChallengeAttemptEventCreate) SetAttemptID(v string) *ChallengeAttemptEventCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetChallengeID sets the "challenge_id" field.
func (_c *ChallengeAttemptEventCreate) SetChallengeID(v string) *ChallengeAttemptEventCreate {
	_c.mutation.SetChallengeID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ChallengeAttemptEventCreate) SetUserID(v string) *ChallengeAttemptEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetObjectiveID sets the "objective_id" field.
func (_c *ChallengeAttemptEventCreate) SetObjectiveID(v string) *ChallengeAttemptEventCreate {
	_c.mutation.SetObjectiveID(v)
	return _c
}

// SetUserAnswer sets the "user_answer" field.
func (_c *ChallengeAttemptEventCreate) SetUserAnswer(v string) *ChallengeAttemptEventCreate {
	_c.mutation.SetUserAnswer(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ChallengeAttemptEventCreate) SetConfidence(v int) *ChallengeAttemptEventCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetEmotionTag sets the "emotion_tag" field.
func (_c *ChallengeAttemptEventCreate) SetEmotionTag(v string) *ChallengeAttemptEventCreate {
	_c.mutation.SetEmotionTag(v)
	return _c
}

// SetNillableEmotionTag sets the "emotion_tag" field if the given value is not nil.
func (_c *ChallengeAttemptEventCreate) SetNillableEmotionTag(v *string) *ChallengeAttemptEventCreate {
	if v != nil {
		_c.SetEmotionTag(*v)
	}
	return _c
}

// SetPersonalNotes sets the "personal_notes" field.
func (_c *ChallengeAttemptEventCreate) SetPersonalNotes(v string) *ChallengeAttemptEventCreate {
	_c.mutation.SetPersonalNotes(v)
	return _c
}

// SetNillablePersonalNotes sets the "personal_notes" field if the given value is not nil.
func (_c *ChallengeAttemptEventCreate) SetNillablePersonalNotes(v *string) *ChallengeAttemptEventCreate {
	if v != nil {
		_c.SetPersonalNotes(*v)
	}
	return _c
}

// SetIsCorrect sets the "is_correct" field.
func (_c *ChallengeAttemptEventCreate) SetIsCorrect(v bool) *ChallengeAttemptEventCreate {
	_c.mutation.SetIsCorrect(v)
	return _c
}

// SetAttemptNumber sets the "attempt_number" field.
func (_c *ChallengeAttemptEventCreate) SetAttemptNumber(v int) *ChallengeAttemptEventCreate {
	_c.mutation.SetAttemptNumber(v)
	return _c
}

// SetPreviousScore sets the "previous_score" field.
func (_c *ChallengeAttemptEventCreate) SetPreviousScore(v float64) *ChallengeAttemptEventCreate {
	_c.mutation.SetPreviousScore(v)
	return _c
}

// SetNillablePreviousScore sets the "previous_score" field if the given value is not nil.
func (_c *ChallengeAttemptEventCreate) SetNillablePreviousScore(v *float64) *ChallengeAttemptEventCreate {
	if v != nil {
		_c.SetPreviousScore(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *ChallengeAttemptEventCreate) SetScore(v float64) *ChallengeAttemptEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *ChallengeAttemptEventCreate) SetFeedback(v *schema.FeedbackRecord) *ChallengeAttemptEventCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetRetrySchedule sets the "retry_schedule" field.
func (_c *ChallengeAttemptEventCreate) SetRetrySchedule(v []time.Time) *ChallengeAttemptEventCreate {
	_c.mutation.SetRetrySchedule(v)
	return _c
}

// SetCelebrationMessage sets the "celebration_message" field.
func (_c *ChallengeAttemptEventCreate) SetCelebrationMessage(v string) *ChallengeAttemptEventCreate {
	_c.mutation.SetCelebrationMessage(v)
	return _c
}

// SetNillableCelebrationMessage sets the "celebration_message" field if the given value is not nil.
func (_c *ChallengeAttemptEventCreate) SetNillableCelebrationMessage(v *string) *ChallengeAttemptEventCreate {
	if v != nil {
		_c.SetCelebrationMessage(*v)
	}
	return _c
}

// Mutation returns the ChallengeAttemptEventMutation object of the builder.
func (_c *ChallengeAttemptEventCreate) Mutation() *ChallengeAttemptEventMutation {
	return _c.mutation
}

// Save creates the ChallengeAttemptEvent in the database.
func (_c *ChallengeAttemptEventCreate) Save(ctx context.Context) (*ChallengeAttemptEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChallengeAttemptEventCreate) SaveX(ctx context.Context) *ChallengeAttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChallengeAttemptEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChallengeAttemptEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChallengeAttemptEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := challengeattemptevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.EmotionTag(); !ok {
		v := challengeattemptevent.DefaultEmotionTag
		_c.mutation.SetEmotionTag(v)
	}
	if _, ok := _c.mutation.PersonalNotes(); !ok {
		v := challengeattemptevent.DefaultPersonalNotes
		_c.mutation.SetPersonalNotes(v)
	}
	if _, ok := _c.mutation.CelebrationMessage(); !ok {
		v := challengeattemptevent.DefaultCelebrationMessage
		_c.mutation.SetCelebrationMessage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChallengeAttemptEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ChallengeAttemptEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ChallengeAttemptEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "ChallengeAttemptEvent.attempt_id"`)}
	}
	if v, ok := _c.mutation.AttemptID(); ok {
		if err := challengeattemptevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "ChallengeAttemptEvent.attempt_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChallengeID(); !ok {
		return &ValidationError{Name: "challenge_id", err: errors.New(`ent: missing required field "ChallengeAttemptEvent.challenge_id"`)}
	}
	if v, ok := _c.mutation.ChallengeID(); ok {
		if err := challengeattemptevent.ChallengeIDValidator(v); err != nil {
			return &ValidationError{Name: "challenge_id", err: fmt.Errorf(`ent: validator failed for field "ChallengeAttemptEvent.challenge_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ChallengeAttemptEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := challengeattemptevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ChallengeAttemptEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ObjectiveID(); !ok {
		return &ValidationError{Name: "objective_id", err: errors.New(`ent: missing required field "ChallengeAttemptEvent.objective_id"`)}
	}
	if v, ok := _c.mutation.ObjectiveID(); ok {
		if err := challengeattemptevent.ObjectiveIDValidator(v); err != nil {
			return &ValidationError{Name: "objective_id", err: fmt.Errorf(`ent: validator failed for field "ChallengeAttemptEvent.objective_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserAnswer(); !ok {
		return &ValidationError{Name: "user_answer", err: errors.New(`ent: missing required field "ChallengeAttemptEvent.user_answer"`)}
	}
	if v, ok := _c.mutation.UserAnswer(); ok {
		if err := challengeattemptevent.UserAnswerValidator(v); err != nil {
			return &ValidationError{Name: "user_answer", err: fmt.Errorf(`ent: validator failed for field "ChallengeAttemptEvent.user_answer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "ChallengeAttemptEvent.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := challengeattemptevent.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "ChallengeAttemptEvent.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EmotionTag(); !ok {
		return &ValidationError{Name: "emotion_tag", err: errors.New(`ent: missing required field "ChallengeAttemptEvent.emotion_tag"`)}
	}
	if _, ok := _c.mutation.PersonalNotes(); !ok {
		return &ValidationError{Name: "personal_notes", err: errors.New(`ent: missing required field "ChallengeAttemptEvent.personal_notes"`)}
	}
	if _, ok := _c.mutation.IsCorrect(); !ok {
		return &ValidationError{Name: "is_correct", err: errors.New(`ent: missing required field "ChallengeAttemptEvent.is_correct"`)}
	}
	if _, ok := _c.mutation.AttemptNumber(); !ok {
		return &ValidationError{Name: "attempt_number", err: errors.New(`ent: missing required field "ChallengeAttemptEvent.attempt_number"`)}
	}
	if v, ok := _c.mutation.AttemptNumber(); ok {
		if err := challengeattemptevent.AttemptNumberValidator(v); err != nil {
			return &ValidationError{Name: "attempt_number", err: fmt.Errorf(`ent: validator failed for field "ChallengeAttemptEvent.attempt_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "ChallengeAttemptEvent.score"`)}
	}
	if _, ok := _c.mutation.CelebrationMessage(); !ok {
		return &ValidationError{Name: "celebration_message", err: errors.New(`ent: missing required field "ChallengeAttemptEvent.celebration_message"`)}
	}
	return nil
}

func (_c *ChallengeAttemptEventCreate) sqlSave(ctx context.Context) (*ChallengeAttemptEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChallengeAttemptEventCreate) createSpec() (*ChallengeAttemptEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ChallengeAttemptEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(challengeattemptevent.Table, sqlgraph.NewFieldSpec(challengeattemptevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(challengeattemptevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(challengeattemptevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(challengeattemptevent.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := _c.mutation.ChallengeID(); ok {
		_spec.SetField(challengeattemptevent.FieldChallengeID, field.TypeString, value)
		_node.ChallengeID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(challengeattemptevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ObjectiveID(); ok {
		_spec.SetField(challengeattemptevent.FieldObjectiveID, field.TypeString, value)
		_node.ObjectiveID = value
	}
	if value, ok := _c.mutation.UserAnswer(); ok {
		_spec.SetField(challengeattemptevent.FieldUserAnswer, field.TypeString, value)
		_node.UserAnswer = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(challengeattemptevent.FieldConfidence, field.TypeInt, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.EmotionTag(); ok {
		_spec.SetField(challengeattemptevent.FieldEmotionTag, field.TypeString, value)
		_node.EmotionTag = value
	}
	if value, ok := _c.mutation.PersonalNotes(); ok {
		_spec.SetField(challengeattemptevent.FieldPersonalNotes, field.TypeString, value)
		_node.PersonalNotes = value
	}
	if value, ok := _c.mutation.IsCorrect(); ok {
		_spec.SetField(challengeattemptevent.FieldIsCorrect, field.TypeBool, value)
		_node.IsCorrect = value
	}
	if value, ok := _c.mutation.AttemptNumber(); ok {
		_spec.SetField(challengeattemptevent.FieldAttemptNumber, field.TypeInt, value)
		_node.AttemptNumber = value
	}
	if value, ok := _c.mutation.PreviousScore(); ok {
		_spec.SetField(challengeattemptevent.FieldPreviousScore, field.TypeFloat64, value)
		_node.PreviousScore = &value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(challengeattemptevent.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(challengeattemptevent.FieldFeedback, field.TypeJSON, value)
		_node.Feedback = value
	}
	if value, ok := _c.mutation.RetrySchedule(); ok {
		_spec.SetField(challengeattemptevent.FieldRetrySchedule, field.TypeJSON, value)
		_node.RetrySchedule = value
	}
	if value, ok := _c.mutation.CelebrationMessage(); ok {
		_spec.SetField(challengeattemptevent.FieldCelebrationMessage, field.TypeString, value)
		_node.CelebrationMessage = value
	}
	return _node, _spec
}

// ChallengeAttemptEventCreateBulk is the builder for creating many ChallengeAttemptEvent entities in bulk.
type ChallengeAttemptEventCreateBulk struct {
	config
	err      error
	builders []*ChallengeAttemptEventCreate
}

// Save creates the ChallengeAttemptEvent entities in the database.
func (_c *ChallengeAttemptEventCreateBulk) Save(ctx context.Context) ([]*ChallengeAttemptEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChallengeAttemptEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChallengeAttemptEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ChallengeAttemptEventCreateBulk) SaveX(ctx context.Context) []*ChallengeAttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChallengeAttemptEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChallengeAttemptEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
