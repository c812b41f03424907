// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/calibra/ent/assessmentevent"
	"github.com/abhisek/calibra/ent/predicate"
)

// AssessmentEventUpdate is the builder for updating AssessmentEvent entities.
type AssessmentEventUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdate) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPromptID sets the "prompt_id" field.
func (_u *AssessmentEventUpdate) SetPromptID(v string) *AssessmentEventUpdate {
	_u.mutation.SetPromptID(v)
	return _u
}

// SetNillablePromptID sets the "prompt_id" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillablePromptID(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetPromptID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AssessmentEventUpdate) SetUserID(v string) *AssessmentEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableUserID(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetObjectiveID sets the "objective_id" field.
func (_u *AssessmentEventUpdate) SetObjectiveID(v string) *AssessmentEventUpdate {
	_u.mutation.SetObjectiveID(v)
	return _u
}

// SetNillableObjectiveID sets the "objective_id" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableObjectiveID(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetObjectiveID(*v)
	}
	return _u
}

// SetPreConfidence sets the "pre_confidence" field.
func (_u *AssessmentEventUpdate) SetPreConfidence(v int) *AssessmentEventUpdate {
	_u.mutation.ResetPreConfidence()
	_u.mutation.SetPreConfidence(v)
	return _u
}

// SetNillablePreConfidence sets the "pre_confidence" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillablePreConfidence(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetPreConfidence(*v)
	}
	return _u
}

// AddPreConfidence adds value to the "pre_confidence" field.
func (_u *AssessmentEventUpdate) AddPreConfidence(v int) *AssessmentEventUpdate {
	_u.mutation.AddPreConfidence(v)
	return _u
}

// SetPostConfidence sets the "post_confidence" field.
func (_u *AssessmentEventUpdate) SetPostConfidence(v int) *AssessmentEventUpdate {
	_u.mutation.ResetPostConfidence()
	_u.mutation.SetPostConfidence(v)
	return _u
}

// SetNillablePostConfidence sets the "post_confidence" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillablePostConfidence(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetPostConfidence(*v)
	}
	return _u
}

// AddPostConfidence adds value to the "post_confidence" field.
func (_u *AssessmentEventUpdate) AddPostConfidence(v int) *AssessmentEventUpdate {
	_u.mutation.AddPostConfidence(v)
	return _u
}

// ClearPostConfidence clears the value of the "post_confidence" field.
func (_u *AssessmentEventUpdate) ClearPostConfidence() *AssessmentEventUpdate {
	_u.mutation.ClearPostConfidence()
	return _u
}

// SetScore sets the "score" field.
func (_u *AssessmentEventUpdate) SetScore(v float64) *AssessmentEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableScore(v *float64) *AssessmentEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AssessmentEventUpdate) AddScore(v float64) *AssessmentEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *AssessmentEventUpdate) SetRationale(v string) *AssessmentEventUpdate {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableRationale(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// SetReflectionNotes sets the "reflection_notes" field.
func (_u *AssessmentEventUpdate) SetReflectionNotes(v string) *AssessmentEventUpdate {
	_u.mutation.SetReflectionNotes(v)
	return _u
}

// SetNillableReflectionNotes sets the "reflection_notes" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableReflectionNotes(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetReflectionNotes(*v)
	}
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdate) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdate) check() error {
	if v, ok := _u.mutation.PromptID(); ok {
		if err := assessmentevent.PromptIDValidator(v); err != nil {
			return &ValidationError{Name: "prompt_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.prompt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := assessmentevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PreConfidence(); ok {
		if err := assessmentevent.PreConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "pre_confidence", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.pre_confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PostConfidence(); ok {
		if err := assessmentevent.PostConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "post_confidence", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.post_confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := assessmentevent.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.score": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PromptID(); ok {
		_spec.SetField(assessmentevent.FieldPromptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(assessmentevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ObjectiveID(); ok {
		_spec.SetField(assessmentevent.FieldObjectiveID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PreConfidence(); ok {
		_spec.SetField(assessmentevent.FieldPreConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPreConfidence(); ok {
		_spec.AddField(assessmentevent.FieldPreConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PostConfidence(); ok {
		_spec.SetField(assessmentevent.FieldPostConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPostConfidence(); ok {
		_spec.AddField(assessmentevent.FieldPostConfidence, field.TypeInt, value)
	}
	if _u.mutation.PostConfidenceCleared() {
		_spec.ClearField(assessmentevent.FieldPostConfidence, field.TypeInt)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(assessmentevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(assessmentevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(assessmentevent.FieldRationale, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReflectionNotes(); ok {
		_spec.SetField(assessmentevent.FieldReflectionNotes, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentEventUpdateOne is the builder for updating a single AssessmentEvent entity.
type AssessmentEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// SetPromptID sets the "prompt_id" field.
func (_u *AssessmentEventUpdateOne) SetPromptID(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetPromptID(v)
	return _u
}

// SetNillablePromptID sets the "prompt_id" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillablePromptID(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetPromptID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AssessmentEventUpdateOne) SetUserID(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableUserID(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetObjectiveID sets the "objective_id" field.
func (_u *AssessmentEventUpdateOne) SetObjectiveID(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetObjectiveID(v)
	return _u
}

// SetNillableObjectiveID sets the "objective_id" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableObjectiveID(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetObjectiveID(*v)
	}
	return _u
}

// SetPreConfidence sets the "pre_confidence" field.
func (_u *AssessmentEventUpdateOne) SetPreConfidence(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetPreConfidence()
	_u.mutation.SetPreConfidence(v)
	return _u
}

// SetNillablePreConfidence sets the "pre_confidence" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillablePreConfidence(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetPreConfidence(*v)
	}
	return _u
}

// AddPreConfidence adds value to the "pre_confidence" field.
func (_u *AssessmentEventUpdateOne) AddPreConfidence(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddPreConfidence(v)
	return _u
}

// SetPostConfidence sets the "post_confidence" field.
func (_u *AssessmentEventUpdateOne) SetPostConfidence(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetPostConfidence()
	_u.mutation.SetPostConfidence(v)
	return _u
}

// SetNillablePostConfidence sets the "post_confidence" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillablePostConfidence(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetPostConfidence(*v)
	}
	return _u
}

// AddPostConfidence adds value to the "post_confidence" field.
func (_u *AssessmentEventUpdateOne) AddPostConfidence(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddPostConfidence(v)
	return _u
}

// ClearPostConfidence clears the value of the "post_confidence" field.
func (_u *AssessmentEventUpdateOne) ClearPostConfidence() *AssessmentEventUpdateOne {
	_u.mutation.ClearPostConfidence()
	return _u
}

// SetScore sets the "score" field.
func (_u *AssessmentEventUpdateOne) SetScore(v float64) *AssessmentEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableScore(v *float64) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AssessmentEventUpdateOne) AddScore(v float64) *AssessmentEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *AssessmentEventUpdateOne) SetRationale(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableRationale(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// SetReflectionNotes sets the "reflection_notes" field.
func (_u *AssessmentEventUpdateOne) SetReflectionNotes(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetReflectionNotes(v)
	return _u
}

// SetNillableReflectionNotes sets the "reflection_notes" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableReflectionNotes(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetReflectionNotes(*v)
	}
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdateOne) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdateOne) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentEventUpdateOne) Select(field string, fields ...string) *AssessmentEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssessmentEvent entity.
func (_u *AssessmentEventUpdateOne) Save(ctx context.Context) (*AssessmentEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) SaveX(ctx context.Context) *AssessmentEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdateOne) check() error {
	if v, ok := _u.mutation.PromptID(); ok {
		if err := assessmentevent.PromptIDValidator(v); err != nil {
			return &ValidationError{Name: "prompt_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.prompt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := assessmentevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PreConfidence(); ok {
		if err := assessmentevent.PreConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "pre_confidence", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.pre_confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PostConfidence(); ok {
		if err := assessmentevent.PostConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "post_confidence", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.post_confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := assessmentevent.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.score": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdateOne) sqlSave(ctx context.Context) (_node *AssessmentEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssessmentEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentevent.FieldID)
		for _, f := range fields {
			if !assessmentevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessmentevent.FieldID {
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
	if value, ok := _u.mutation.PromptID(); ok {
		_spec.SetField(assessmentevent.FieldPromptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(assessmentevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ObjectiveID(); ok {
		_spec.SetField(assessmentevent.FieldObjectiveID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PreConfidence(); ok {
		_spec.SetField(assessmentevent.FieldPreConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPreConfidence(); ok {
		_spec.AddField(assessmentevent.FieldPreConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PostConfidence(); ok {
		_spec.SetField(assessmentevent.FieldPostConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPostConfidence(); ok {
		_spec.AddField(assessmentevent.FieldPostConfidence, field.TypeInt, value)
	}
	if _u.mutation.PostConfidenceCleared() {
		_spec.ClearField(assessmentevent.FieldPostConfidence, field.TypeInt)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(assessmentevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(assessmentevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(assessmentevent.FieldRationale, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReflectionNotes(); ok {
		_spec.SetField(assessmentevent.FieldReflectionNotes, field.TypeString, value)
	}
	_node = &AssessmentEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
