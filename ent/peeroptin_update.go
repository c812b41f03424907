// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/calibra/ent/peeroptin"
	"github.com/abhisek/calibra/ent/predicate"
)

// PeerOptInUpdate is the builder for updating PeerOptIn entities.
type PeerOptInUpdate struct {
	config
	hooks    []Hook
	mutation *PeerOptInMutation
}

// Where appends a list predicates to the PeerOptInUpdate builder.
func (_u *PeerOptInUpdate) Where(ps ...predicate.PeerOptIn) *PeerOptInUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOptedIn sets the "opted_in" field.
func (_u *PeerOptInUpdate) SetOptedIn(v bool) *PeerOptInUpdate {
	_u.mutation.SetOptedIn(v)
	return _u
}

// SetNillableOptedIn sets the "opted_in" field if the given value is not nil.
func (_u *PeerOptInUpdate) SetNillableOptedIn(v *bool) *PeerOptInUpdate {
	if v != nil {
		_u.SetOptedIn(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PeerOptInUpdate) SetUpdatedAt(v time.Time) *PeerOptInUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PeerOptInMutation object of the builder.
func (_u *PeerOptInUpdate) Mutation() *PeerOptInMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PeerOptInUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PeerOptInUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PeerOptInUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PeerOptInUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PeerOptInUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := peeroptin.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PeerOptInUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(peeroptin.Table, peeroptin.Columns, sqlgraph.NewFieldSpec(peeroptin.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OptedIn(); ok {
		_spec.SetField(peeroptin.FieldOptedIn, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(peeroptin.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{peeroptin.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PeerOptInUpdateOne is the builder for updating a single PeerOptIn entity.
type PeerOptInUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PeerOptInMutation
}

// SetOptedIn sets the "opted_in" field.
func (_u *PeerOptInUpdateOne) SetOptedIn(v bool) *PeerOptInUpdateOne {
	_u.mutation.SetOptedIn(v)
	return _u
}

// SetNillableOptedIn sets the "opted_in" field if the given value is not nil.
func (_u *PeerOptInUpdateOne) SetNillableOptedIn(v *bool) *PeerOptInUpdateOne {
	if v != nil {
		_u.SetOptedIn(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PeerOptInUpdateOne) SetUpdatedAt(v time.Time) *PeerOptInUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PeerOptInMutation object of the builder.
func (_u *PeerOptInUpdateOne) Mutation() *PeerOptInMutation {
	return _u.mutation
}

// Where appends a list predicates to the PeerOptInUpdate builder.
func (_u *PeerOptInUpdateOne) Where(ps ...predicate.PeerOptIn) *PeerOptInUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PeerOptInUpdateOne) Select(field string, fields ...string) *PeerOptInUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PeerOptIn entity.
func (_u *PeerOptInUpdateOne) Save(ctx context.Context) (*PeerOptIn, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PeerOptInUpdateOne) SaveX(ctx context.Context) *PeerOptIn {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PeerOptInUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PeerOptInUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PeerOptInUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := peeroptin.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PeerOptInUpdateOne) sqlSave(ctx context.Context) (_node *PeerOptIn, err error) {
	_spec := sqlgraph.NewUpdateSpec(peeroptin.Table, peeroptin.Columns, sqlgraph.NewFieldSpec(peeroptin.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PeerOptIn.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, peeroptin.FieldID)
		for _, f := range fields {
			if !peeroptin.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != peeroptin.FieldID {
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
	if value, ok := _u.mutation.OptedIn(); ok {
		_spec.SetField(peeroptin.FieldOptedIn, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(peeroptin.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PeerOptIn{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{peeroptin.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
