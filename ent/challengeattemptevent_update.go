// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/calibra/ent/challengeattemptevent"
	"github.com/abhisek/calibra/ent/predicate"
	"github.com/abhisek/calibra/ent/schema"
)

// ChallengeAttemptEventUpdate is the builder for updating ChallengeAttemptEvent entities.
type ChallengeAttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *ChallengeAttemptEventMutation
}

// Where appends a list predicates to the ChallengeAttemptEventUpdate builder.
func (_u *ChallengeAttemptEventUpdate) Where(ps ...predicate.ChallengeAttemptEvent) *ChallengeAttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChallengeID sets the "challenge_id" field.
func (_u *ChallengeAttemptEventUpdate) SetChallengeID(v string) *ChallengeAttemptEventUpdate {
	_u.mutation.SetChallengeID(v)
	return _u
}

// SetNillableChallengeID sets the "challenge_id" field if the given value is not nil.
func (_u *ChallengeAttemptEventUpdate) SetNillableChallengeID(v *string) *ChallengeAttemptEventUpdate {
	if v != nil {
		_u.SetChallengeID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ChallengeAttemptEventUpdate) SetUserID(v string) *ChallengeAttemptEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ChallengeAttemptEventUpdate) SetNillableUserID(v *string) *ChallengeAttemptEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetObjectiveID sets the "objective_id" field.
func (_u *ChallengeAttemptEventUpdate) SetObjectiveID(v string) *ChallengeAttemptEventUpdate {
	_u.mutation.SetObjectiveID(v)
	return _u
}

// SetNillableObjectiveID sets the "objective_id" field if the given value is not nil.
func (_u *ChallengeAttemptEventUpdate) SetNillableObjectiveID(v *string) *ChallengeAttemptEventUpdate {
	if v != nil {
		_u.SetObjectiveID(*v)
	}
	return _u
}

// SetUserAnswer sets the "user_answer" field.
func (_u *ChallengeAttemptEventUpdate) SetUserAnswer(v string) *ChallengeAttemptEventUpdate {
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *ChallengeAttemptEventUpdate) SetNillableUserAnswer(v *string) *ChallengeAttemptEventUpdate {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ChallengeAttemptEventUpdate) SetConfidence(v int) *ChallengeAttemptEventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ChallengeAttemptEventUpdate) SetNillableConfidence(v *int) *ChallengeAttemptEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ChallengeAttemptEventUpdate) AddConfidence(v int) *ChallengeAttemptEventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetEmotionTag sets the "emotion_tag" field.
func (_u *ChallengeAttemptEventUpdate) SetEmotionTag(v string) *ChallengeAttemptEventUpdate {
	_u.mutation.SetEmotionTag(v)
	return _u
}

// SetNillableEmotionTag sets the "emotion_tag" field if the given value is not nil.
func (_u *ChallengeAttemptEventUpdate) SetNillableEmotionTag(v *string) *ChallengeAttemptEventUpdate {
	if v != nil {
		_u.SetEmotionTag(*v)
	}
	return _u
}

// SetPersonalNotes sets the "personal_notes" field.
func (_u *ChallengeAttemptEventUpdate) SetPersonalNotes(v string) *ChallengeAttemptEventUpdate {
	_u.mutation.SetPersonalNotes(v)
	return _u
}

// SetNillablePersonalNotes sets the "personal_notes" field if the given value is not nil.
func (_u *ChallengeAttemptEventUpdate) SetNillablePersonalNotes(v *string) *ChallengeAttemptEventUpdate {
	if v != nil {
		_u.SetPersonalNotes(*v)
	}
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *ChallengeAttemptEventUpdate) SetIsCorrect(v bool) *ChallengeAttemptEventUpdate {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *ChallengeAttemptEventUpdate) SetNillableIsCorrect(v *bool) *ChallengeAttemptEventUpdate {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// SetAttemptNumber sets the "attempt_number" field.
func (_u *ChallengeAttemptEventUpdate) SetAttemptNumber(v int) *ChallengeAttemptEventUpdate {
	_u.mutation.ResetAttemptNumber()
	_u.mutation.SetAttemptNumber(v)
	return _u
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_u *ChallengeAttemptEventUpdate) SetNillableAttemptNumber(v *int) *ChallengeAttemptEventUpdate {
	if v != nil {
		_u.SetAttemptNumber(*v)
	}
	return _u
}

// AddAttemptNumber adds value to the "attempt_number" field.
func (_u *ChallengeAttemptEventUpdate) AddAttemptNumber(v int) *ChallengeAttemptEventUpdate {
	_u.mutation.AddAttemptNumber(v)
	return _u
}

// SetPreviousScore sets the "previous_score" field.
func (_u *ChallengeAttemptEventUpdate) SetPreviousScore(v float64) *ChallengeAttemptEventUpdate {
	_u.mutation.ResetPreviousScore()
	_u.mutation.SetPreviousScore(v)
	return _u
}

// SetNillablePreviousScore sets the "previous_score" field if the given value is not nil.
func (_u *ChallengeAttemptEventUpdate) SetNillablePreviousScore(v *float64) *ChallengeAttemptEventUpdate {
	if v != nil {
		_u.SetPreviousScore(*v)
	}
	return _u
}

// AddPreviousScore adds value to the "previous_score" field.
func (_u *ChallengeAttemptEventUpdate) AddPreviousScore(v float64) *ChallengeAttemptEventUpdate {
	_u.mutation.AddPreviousScore(v)
	return _u
}

// ClearPreviousScore clears the value of the "previous_score" field.
func (_u *ChallengeAttemptEventUpdate) ClearPreviousScore() *ChallengeAttemptEventUpdate {
	_u.mutation.ClearPreviousScore()
	return _u
}

// SetScore sets the "score" field.
func (_u *ChallengeAttemptEventUpdate) SetScore(v float64) *ChallengeAttemptEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ChallengeAttemptEventUpdate) SetNillableScore(v *float64) *ChallengeAttemptEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ChallengeAttemptEventUpdate) AddScore(v float64) *ChallengeAttemptEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *ChallengeAttemptEventUpdate) SetFeedback(v *schema.FeedbackRecord) *ChallengeAttemptEventUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// ClearFeedback clears the value of the "feedback" field.
func (_u *ChallengeAttemptEventUpdate) ClearFeedback() *ChallengeAttemptEventUpdate {
	_u.mutation.ClearFeedback()
	return _u
}

// SetRetrySchedule sets the "retry_schedule" field.
func (_u *ChallengeAttemptEventUpdate) SetRetrySchedule(v []time.Time) *ChallengeAttemptEventUpdate {
	_u.mutation.SetRetrySchedule(v)
	return _u
}

// AppendRetrySchedule appends value to the "retry_schedule" field.
func (_u *ChallengeAttemptEventUpdate) AppendRetrySchedule(v []time.Time) *ChallengeAttemptEventUpdate {
	_u.mutation.AppendRetrySchedule(v)
	return _u
}

// ClearRetrySchedule clears the value of the "retry_schedule" field.
func (_u *ChallengeAttemptEventUpdate) ClearRetrySchedule() *ChallengeAttemptEventUpdate {
	_u.mutation.ClearRetrySchedule()
	return _u
}

// SetCelebrationMessage sets the "celebration_message" field.
func (_u *ChallengeAttemptEventUpdate) SetCelebrationMessage(v string) *ChallengeAttemptEventUpdate {
	_u.mutation.SetCelebrationMessage(v)
	return _u
}

// SetNillableCelebrationMessage sets the "celebration_message" field if the given value is not nil.
func (_u *ChallengeAttemptEventUpdate) SetNillableCelebrationMessage(v *string) *ChallengeAttemptEventUpdate {
	if v != nil {
		_u.SetCelebrationMessage(*v)
	}
	return _u
}

// Mutation returns the ChallengeAttemptEventMutation object of the builder.
func (_u *ChallengeAttemptEventUpdate) Mutation() *ChallengeAttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChallengeAttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChallengeAttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChallengeAttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChallengeAttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChallengeAttemptEventUpdate) check() error {
	if v, ok := _u.mutation.ChallengeID(); ok {
		if err := challengeattemptevent.ChallengeIDValidator(v); err != nil {
			return &ValidationError{Name: "challenge_id", err: fmt.Errorf(`ent: validator failed for field "ChallengeAttemptEvent.challenge_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := challengeattemptevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ChallengeAttemptEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ObjectiveID(); ok {
		if err := challengeattemptevent.ObjectiveIDValidator(v); err != nil {
			return &ValidationError{Name: "objective_id", err: fmt.Errorf(`ent: validator failed for field "ChallengeAttemptEvent.objective_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserAnswer(); ok {
		if err := challengeattemptevent.UserAnswerValidator(v); err != nil {
			return &ValidationError{Name: "user_answer", err: fmt.Errorf(`ent: validator failed for field "ChallengeAttemptEvent.user_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := challengeattemptevent.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "ChallengeAttemptEvent.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AttemptNumber(); ok {
		if err := challengeattemptevent.AttemptNumberValidator(v); err != nil {
			return &ValidationError{Name: "attempt_number", err: fmt.Errorf(`ent: validator failed for field "ChallengeAttemptEvent.attempt_number": %w`, err)}
		}
	}
	return nil
}

func (_u *ChallengeAttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(challengeattemptevent.Table, challengeattemptevent.Columns, sqlgraph.NewFieldSpec(challengeattemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChallengeID(); ok {
		_spec.SetField(challengeattemptevent.FieldChallengeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(challengeattemptevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ObjectiveID(); ok {
		_spec.SetField(challengeattemptevent.FieldObjectiveID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(challengeattemptevent.FieldUserAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(challengeattemptevent.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(challengeattemptevent.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EmotionTag(); ok {
		_spec.SetField(challengeattemptevent.FieldEmotionTag, field.TypeString, value)
	}
	if value, ok := _u.mutation.PersonalNotes(); ok {
		_spec.SetField(challengeattemptevent.FieldPersonalNotes, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(challengeattemptevent.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AttemptNumber(); ok {
		_spec.SetField(challengeattemptevent.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptNumber(); ok {
		_spec.AddField(challengeattemptevent.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PreviousScore(); ok {
		_spec.SetField(challengeattemptevent.FieldPreviousScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPreviousScore(); ok {
		_spec.AddField(challengeattemptevent.FieldPreviousScore, field.TypeFloat64, value)
	}
	if _u.mutation.PreviousScoreCleared() {
		_spec.ClearField(challengeattemptevent.FieldPreviousScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(challengeattemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(challengeattemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(challengeattemptevent.FieldFeedback, field.TypeJSON, value)
	}
	if _u.mutation.FeedbackCleared() {
		_spec.ClearField(challengeattemptevent.FieldFeedback, field.TypeJSON)
	}
	if value, ok := _u.mutation.RetrySchedule(); ok {
		_spec.SetField(challengeattemptevent.FieldRetrySchedule, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRetrySchedule(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, challengeattemptevent.FieldRetrySchedule, value)
		})
	}
	if _u.mutation.RetryScheduleCleared() {
		_spec.ClearField(challengeattemptevent.FieldRetrySchedule, field.TypeJSON)
	}
	if value, ok := _u.mutation.CelebrationMessage(); ok {
		_spec.SetField(challengeattemptevent.FieldCelebrationMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{challengeattemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChallengeAttemptEventUpdateOne is the builder for updating a single ChallengeAttemptEvent entity.
type ChallengeAttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChallengeAttemptEventMutation
}

// SetChallengeID sets the "challenge_id" field.
func (_u *ChallengeAttemptEventUpdateOne) SetChallengeID(v string) *ChallengeAttemptEventUpdateOne {
	_u.mutation.SetChallengeID(v)
	return _u
}

// SetNillableChallengeID sets the "challenge_id" field if the given value is not nil.
func (_u *ChallengeAttemptEventUpdateOne) SetNillableChallengeID(v *string) *ChallengeAttemptEventUpdateOne {
	if v != nil {
		_u.SetChallengeID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ChallengeAttemptEventUpdateOne) SetUserID(v string) *ChallengeAttemptEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ChallengeAttemptEventUpdateOne) SetNillableUserID(v *string) *ChallengeAttemptEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetObjectiveID sets the "objective_id" field.
func (_u *ChallengeAttemptEventUpdateOne) SetObjectiveID(v string) *ChallengeAttemptEventUpdateOne {
	_u.mutation.SetObjectiveID(v)
	return _u
}

// SetNillableObjectiveID sets the "objective_id" field if the given value is not nil.
func (_u *ChallengeAttemptEventUpdateOne) SetNillableObjectiveID(v *string) *ChallengeAttemptEventUpdateOne {
	if v != nil {
		_u.SetObjectiveID(*v)
	}
	return _u
}

// SetUserAnswer sets the "user_answer" field.
func (_u *ChallengeAttemptEventUpdateOne) SetUserAnswer(v string) *ChallengeAttemptEventUpdateOne {
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *ChallengeAttemptEventUpdateOne) SetNillableUserAnswer(v *string) *ChallengeAttemptEventUpdateOne {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ChallengeAttemptEventUpdateOne) SetConfidence(v int) *ChallengeAttemptEventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ChallengeAttemptEventUpdateOne) SetNillableConfidence(v *int) *ChallengeAttemptEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ChallengeAttemptEventUpdateOne) AddConfidence(v int) *ChallengeAttemptEventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetEmotionTag sets the "emotion_tag" field.
func (_u *ChallengeAttemptEventUpdateOne) SetEmotionTag(v string) *ChallengeAttemptEventUpdateOne {
	_u.mutation.SetEmotionTag(v)
	return _u
}

// SetNillableEmotionTag sets the "emotion_tag" field if the given value is not nil.
func (_u *ChallengeAttemptEventUpdateOne) SetNillableEmotionTag(v *string) *ChallengeAttemptEventUpdateOne {
	if v != nil {
		_u.SetEmotionTag(*v)
	}
	return _u
}

// SetPersonalNotes sets the "personal_notes" field.
func (_u *ChallengeAttemptEventUpdateOne) SetPersonalNotes(v string) *ChallengeAttemptEventUpdateOne {
	_u.mutation.SetPersonalNotes(v)
	return _u
}

// SetNillablePersonalNotes sets the "personal_notes" field if the given value is not nil.
func (_u *ChallengeAttemptEventUpdateOne) SetNillablePersonalNotes(v *string) *ChallengeAttemptEventUpdateOne {
	if v != nil {
		_u.SetPersonalNotes(*v)
	}
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *ChallengeAttemptEventUpdateOne) SetIsCorrect(v bool) *ChallengeAttemptEventUpdateOne {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *ChallengeAttemptEventUpdateOne) SetNillableIsCorrect(v *bool) *ChallengeAttemptEventUpdateOne {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// SetAttemptNumber sets the "attempt_number" field.
func (_u *ChallengeAttemptEventUpdateOne) SetAttemptNumber(v int) *ChallengeAttemptEventUpdateOne {
	_u.mutation.ResetAttemptNumber()
	_u.mutation.SetAttemptNumber(v)
	return _u
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_u *ChallengeAttemptEventUpdateOne) SetNillableAttemptNumber(v *int) *ChallengeAttemptEventUpdateOne {
	if v != nil {
		_u.SetAttemptNumber(*v)
	}
	return _u
}

// AddAttemptNumber adds value to the "attempt_number" field.
func (_u *ChallengeAttemptEventUpdateOne) AddAttemptNumber(v int) *ChallengeAttemptEventUpdateOne {
	_u.mutation.AddAttemptNumber(v)
	return _u
}

// SetPreviousScore sets the "previous_score" field.
func (_u *ChallengeAttemptEventUpdateOne) SetPreviousScore(v float64) *ChallengeAttemptEventUpdateOne {
	_u.mutation.ResetPreviousScore()
	_u.mutation.SetPreviousScore(v)
	return _u
}

// SetNillablePreviousScore sets the "previous_score" field if the given value is not nil.
func (_u *ChallengeAttemptEventUpdateOne) SetNillablePreviousScore(v *float64) *ChallengeAttemptEventUpdateOne {
	if v != nil {
		_u.SetPreviousScore(*v)
	}
	return _u
}

// AddPreviousScore adds value to the "previous_score" field.
func (_u *ChallengeAttemptEventUpdateOne) AddPreviousScore(v float64) *ChallengeAttemptEventUpdateOne {
	_u.mutation.AddPreviousScore(v)
	return _u
}

// ClearPreviousScore clears the value of the "previous_score" field.
func (_u *ChallengeAttemptEventUpdateOne) ClearPreviousScore() *ChallengeAttemptEventUpdateOne {
	_u.mutation.ClearPreviousScore()
	return _u
}

// SetScore sets the "score" field.
func (_u *ChallengeAttemptEventUpdateOne) SetScore(v float64) *ChallengeAttemptEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ChallengeAttemptEventUpdateOne) SetNillableScore(v *float64) *ChallengeAttemptEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ChallengeAttemptEventUpdateOne) AddScore(v float64) *ChallengeAttemptEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *ChallengeAttemptEventUpdateOne) SetFeedback(v *schema.FeedbackRecord) *ChallengeAttemptEventUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// ClearFeedback clears the value of the "feedback" field.
func (_u *ChallengeAttemptEventUpdateOne) ClearFeedback() *ChallengeAttemptEventUpdateOne {
	_u.mutation.ClearFeedback()
	return _u
}

// SetRetrySchedule sets the "retry_schedule" field.
func (_u *ChallengeAttemptEventUpdateOne) SetRetrySchedule(v []time.Time) *ChallengeAttemptEventUpdateOne {
	_u.mutation.SetRetrySchedule(v)
	return _u
}

// AppendRetrySchedule appends value to the "retry_schedule" field.
func (_u *ChallengeAttemptEventUpdateOne) AppendRetrySchedule(v []time.Time) *ChallengeAttemptEventUpdateOne {
	_u.mutation.AppendRetrySchedule(v)
	return _u
}

// ClearRetrySchedule clears the value of the "retry_schedule" field.
func (_u *ChallengeAttemptEventUpdateOne) ClearRetrySchedule() *ChallengeAttemptEventUpdateOne {
	_u.mutation.ClearRetrySchedule()
	return _u
}

// SetCelebrationMessage sets the "celebration_message" field.
func (_u *ChallengeAttemptEventUpdateOne) SetCelebrationMessage(v string) *ChallengeAttemptEventUpdateOne {
	_u.mutation.SetCelebrationMessage(v)
	return _u
}

// SetNillableCelebrationMessage sets the "celebration_message" field if the given value is not nil.
func (_u *ChallengeAttemptEventUpdateOne) SetNillableCelebrationMessage(v *string) *ChallengeAttemptEventUpdateOne {
	if v != nil {
		_u.SetCelebrationMessage(*v)
	}
	return _u
}

// Mutation returns the ChallengeAttemptEventMutation object of the builder.
func (_u *ChallengeAttemptEventUpdateOne) Mutation() *ChallengeAttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChallengeAttemptEventUpdate builder.
func (_u *ChallengeAttemptEventUpdateOne) Where(ps ...predicate.ChallengeAttemptEvent) *ChallengeAttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChallengeAttemptEventUpdateOne) Select(field string, fields ...string) *ChallengeAttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChallengeAttemptEvent entity.
func (_u *ChallengeAttemptEventUpdateOne) Save(ctx context.Context) (*ChallengeAttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChallengeAttemptEventUpdateOne) SaveX(ctx context.Context) *ChallengeAttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChallengeAttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChallengeAttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChallengeAttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.ChallengeID(); ok {
		if err := challengeattemptevent.ChallengeIDValidator(v); err != nil {
			return &ValidationError{Name: "challenge_id", err: fmt.Errorf(`ent: validator failed for field "ChallengeAttemptEvent.challenge_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := challengeattemptevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ChallengeAttemptEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ObjectiveID(); ok {
		if err := challengeattemptevent.ObjectiveIDValidator(v); err != nil {
			return &ValidationError{Name: "objective_id", err: fmt.Errorf(`ent: validator failed for field "ChallengeAttemptEvent.objective_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserAnswer(); ok {
		if err := challengeattemptevent.UserAnswerValidator(v); err != nil {
			return &ValidationError{Name: "user_answer", err: fmt.Errorf(`ent: validator failed for field "ChallengeAttemptEvent.user_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := challengeattemptevent.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "ChallengeAttemptEvent.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AttemptNumber(); ok {
		if err := challengeattemptevent.AttemptNumberValidator(v); err != nil {
			return &ValidationError{Name: "attempt_number", err: fmt.Errorf(`ent: validator failed for field "ChallengeAttemptEvent.attempt_number": %w`, err)}
		}
	}
	return nil
}

func (_u *ChallengeAttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *ChallengeAttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(challengeattemptevent.Table, challengeattemptevent.Columns, sqlgraph.NewFieldSpec(challengeattemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChallengeAttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, challengeattemptevent.FieldID)
		for _, f := range fields {
			if !challengeattemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != challengeattemptevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChallengeID(); ok {
		_spec.SetField(challengeattemptevent.FieldChallengeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(challengeattemptevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ObjectiveID(); ok {
		_spec.SetField(challengeattemptevent.FieldObjectiveID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(challengeattemptevent.FieldUserAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(challengeattemptevent.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(challengeattemptevent.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EmotionTag(); ok {
		_spec.SetField(challengeattemptevent.FieldEmotionTag, field.TypeString, value)
	}
	if value, ok := _u.mutation.PersonalNotes(); ok {
		_spec.SetField(challengeattemptevent.FieldPersonalNotes, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(challengeattemptevent.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AttemptNumber(); ok {
		_spec.SetField(challengeattemptevent.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptNumber(); ok {
		_spec.AddField(challengeattemptevent.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PreviousScore(); ok {
		_spec.SetField(challengeattemptevent.FieldPreviousScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPreviousScore(); ok {
		_spec.AddField(challengeattemptevent.FieldPreviousScore, field.TypeFloat64, value)
	}
	if _u.mutation.PreviousScoreCleared() {
		_spec.ClearField(challengeattemptevent.FieldPreviousScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(challengeattemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(challengeattemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(challengeattemptevent.FieldFeedback, field.TypeJSON, value)
	}
	if _u.mutation.FeedbackCleared() {
		_spec.ClearField(challengeattemptevent.FieldFeedback, field.TypeJSON)
	}
	if value, ok := _u.mutation.RetrySchedule(); ok {
		_spec.SetField(challengeattemptevent.FieldRetrySchedule, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRetrySchedule(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, challengeattemptevent.FieldRetrySchedule, value)
		})
	}
	if _u.mutation.RetryScheduleCleared() {
		_spec.ClearField(challengeattemptevent.FieldRetrySchedule, field.TypeJSON)
	}
	if value, ok := _u.mutation.CelebrationMessage(); ok {
		_spec.SetField(challengeattemptevent.FieldCelebrationMessage, field.TypeString, value)
	}
	_node = &ChallengeAttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{challengeattemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
