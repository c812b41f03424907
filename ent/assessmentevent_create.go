// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/calibra/ent/assessmentevent"
)

// AssessmentEventCreate is the builder for creating a AssessmentEvent entity.
type AssessmentEventCreate struct {
	config
	mutation *AssessmentEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AssessmentEventCreate) SetSequence(v int64) *AssessmentEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AssessmentEventCreate) SetTimestamp(v time.Time) *AssessmentEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableTimestamp(v *time.Time) *AssessmentEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetPromptID sets the "prompt_id" field.
func (_c *AssessmentEventCreate) SetPromptID(v string) *AssessmentEventCreate {
	_c.mutation.SetPromptID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *AssessmentEventCreate) SetUserID(v string) *AssessmentEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetObjectiveID sets the "objective_id" field.
func (_c *AssessmentEventCreate) SetObjectiveID(v string) *AssessmentEventCreate {
	_c.mutation.SetObjectiveID(v)
	return _c
}

// SetNillableObjectiveID sets the "objective_id" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableObjectiveID(v *string) *AssessmentEventCreate {
	if v != nil {
		_c.SetObjectiveID(*v)
	}
	return _c
}

// SetPreConfidence sets the "pre_confidence" field.
func (_c *AssessmentEventCreate) SetPreConfidence(v int) *AssessmentEventCreate {
	_c.mutation.SetPreConfidence(v)
	return _c
}

// SetPostConfidence sets the "post_confidence" field.
func (_c *AssessmentEventCreate) SetPostConfidence(v int) *AssessmentEventCreate {
	_c.mutation.SetPostConfidence(v)
	return _c
}

// SetNillablePostConfidence sets the "post_confidence" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillablePostConfidence(v *int) *AssessmentEventCreate {
	if v != nil {
		_c.SetPostConfidence(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *AssessmentEventCreate) SetScore(v float64) *AssessmentEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetRationale sets the "rationale" field.
func (_c *AssessmentEventCreate) SetRationale(v string) *AssessmentEventCreate {
	_c.mutation.SetRationale(v)
	return _c
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableRationale(v *string) *AssessmentEventCreate {
	if v != nil {
		_c.SetRationale(*v)
	}
	return _c
}

// SetReflectionNotes sets the "reflection_notes" field.
func (_c *AssessmentEventCreate) SetReflectionNotes(v string) *AssessmentEventCreate {
	_c.mutation.SetReflectionNotes(v)
	return _c
}

// SetNillableReflectionNotes sets the "reflection_notes" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableReflectionNotes(v *string) *AssessmentEventCreate {
	if v != nil {
		_c.SetReflectionNotes(*v)
	}
	return _c
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_c *AssessmentEventCreate) Mutation() *AssessmentEventMutation {
	return _c.mutation
}

// Save creates the AssessmentEvent in the database.
func (_c *AssessmentEventCreate) Save(ctx context.Context) (*AssessmentEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssessmentEventCreate) SaveX(ctx context.Context) *AssessmentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssessmentEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := assessmentevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ObjectiveID(); !ok {
		v := assessmentevent.DefaultObjectiveID
		_c.mutation.SetObjectiveID(v)
	}
	if _, ok := _c.mutation.Rationale(); !ok {
		v := assessmentevent.DefaultRationale
		_c.mutation.SetRationale(v)
	}
	if _, ok := _c.mutation.ReflectionNotes(); !ok {
		v := assessmentevent.DefaultReflectionNotes
		_c.mutation.SetReflectionNotes(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssessmentEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AssessmentEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AssessmentEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.PromptID(); !ok {
		return &ValidationError{Name: "prompt_id", err: errors.New(`ent: missing required field "AssessmentEvent.prompt_id"`)}
	}
	if v, ok := _c.mutation.PromptID(); ok {
		if err := assessmentevent.PromptIDValidator(v); err != nil {
			return &ValidationError{Name: "prompt_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.prompt_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AssessmentEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := assessmentevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ObjectiveID(); !ok {
		return &ValidationError{Name: "objective_id", err: errors.New(`ent: missing required field "AssessmentEvent.objective_id"`)}
	}
	if _, ok := _c.mutation.PreConfidence(); !ok {
		return &ValidationError{Name: "pre_confidence", err: errors.New(`ent: missing required field "AssessmentEvent.pre_confidence"`)}
	}
	if v, ok := _c.mutation.PreConfidence(); ok {
		if err := assessmentevent.PreConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "pre_confidence", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.pre_confidence": %w`, err)}
		}
	}
	if v, ok := _c.mutation.PostConfidence(); ok {
		if err := assessmentevent.PostConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "post_confidence", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.post_confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "AssessmentEvent.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := assessmentevent.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Rationale(); !ok {
		return &ValidationError{Name: "rationale", err: errors.New(`ent: missing required field "AssessmentEvent.rationale"`)}
	}
	if _, ok := _c.mutation.ReflectionNotes(); !ok {
		return &ValidationError{Name: "reflection_notes", err: errors.New(`ent: missing required field "AssessmentEvent.reflection_notes"`)}
	}
	return nil
}

func (_c *AssessmentEventCreate) sqlSave(ctx context.Context) (*AssessmentEvent, error) {
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

func (_c *AssessmentEventCreate) createSpec() (*AssessmentEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AssessmentEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assessmentevent.Table, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(assessmentevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(assessmentevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.PromptID(); ok {
		_spec.SetField(assessmentevent.FieldPromptID, field.TypeString, value)
		_node.PromptID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(assessmentevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ObjectiveID(); ok {
		_spec.SetField(assessmentevent.FieldObjectiveID, field.TypeString, value)
		_node.ObjectiveID = value
	}
	if value, ok := _c.mutation.PreConfidence(); ok {
		_spec.SetField(assessmentevent.FieldPreConfidence, field.TypeInt, value)
		_node.PreConfidence = value
	}
	if value, ok := _c.mutation.PostConfidence(); ok {
		_spec.SetField(assessmentevent.FieldPostConfidence, field.TypeInt, value)
		_node.PostConfidence = &value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(assessmentevent.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Rationale(); ok {
		_spec.SetField(assessmentevent.FieldRationale, field.TypeString, value)
		_node.Rationale = value
	}
	if value, ok := _c.mutation.ReflectionNotes(); ok {
		_spec.SetField(assessmentevent.FieldReflectionNotes, field.TypeString, value)
		_node.ReflectionNotes = value
	}
	return _node, _spec
}

// AssessmentEventCreateBulk is the builder for creating many AssessmentEvent entities in bulk.
type AssessmentEventCreateBulk struct {
	config
	err      error
	builders []*AssessmentEventCreate
}

// Save creates the AssessmentEvent entities in the database.
func (_c *AssessmentEventCreateBulk) Save(ctx context.Context) ([]*AssessmentEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AssessmentEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentEventMutation)
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
func (_c *AssessmentEventCreateBulk) SaveX(ctx context.Context) []*AssessmentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
