// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/calibra/ent/poolsnapshot"
	"github.com/abhisek/calibra/ent/predicate"
)

// PoolSnapshotUpdate is the builder for updating PoolSnapshot entities.
type PoolSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *PoolSnapshotMutation
}

// Where appends a list predicates to the PoolSnapshotUpdate builder.
func (_u *PoolSnapshotUpdate) Where(ps ...predicate.PoolSnapshot) *PoolSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *PoolSnapshotUpdate) SetSequence(v int64) *PoolSnapshotUpdate {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *PoolSnapshotUpdate) SetNillableSequence(v *int64) *PoolSnapshotUpdate {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *PoolSnapshotUpdate) AddSequence(v int64) *PoolSnapshotUpdate {
	_u.mutation.AddSequence(v)
	return _u
}

// SetFormatVersion sets the "format_version" field.
func (_u *PoolSnapshotUpdate) SetFormatVersion(v string) *PoolSnapshotUpdate {
	_u.mutation.SetFormatVersion(v)
	return _u
}

// SetNillableFormatVersion sets the "format_version" field if the given value is not nil.
func (_u *PoolSnapshotUpdate) SetNillableFormatVersion(v *string) *PoolSnapshotUpdate {
	if v != nil {
		_u.SetFormatVersion(*v)
	}
	return _u
}

// SetMembers sets the "members" field.
func (_u *PoolSnapshotUpdate) SetMembers(v int) *PoolSnapshotUpdate {
	_u.mutation.ResetMembers()
	_u.mutation.SetMembers(v)
	return _u
}

// SetNillableMembers sets the "members" field if the given value is not nil.
func (_u *PoolSnapshotUpdate) SetNillableMembers(v *int) *PoolSnapshotUpdate {
	if v != nil {
		_u.SetMembers(*v)
	}
	return _u
}

// AddMembers adds value to the "members" field.
func (_u *PoolSnapshotUpdate) AddMembers(v int) *PoolSnapshotUpdate {
	_u.mutation.AddMembers(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *PoolSnapshotUpdate) SetPayload(v []byte) *PoolSnapshotUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// Mutation returns the PoolSnapshotMutation object of the builder.
func (_u *PoolSnapshotUpdate) Mutation() *PoolSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PoolSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PoolSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PoolSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PoolSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PoolSnapshotUpdate) check() error {
	if v, ok := _u.mutation.FormatVersion(); ok {
		if err := poolsnapshot.FormatVersionValidator(v); err != nil {
			return &ValidationError{Name: "format_version", err: fmt.Errorf(`ent: validator failed for field "PoolSnapshot.format_version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Members(); ok {
		if err := poolsnapshot.MembersValidator(v); err != nil {
			return &ValidationError{Name: "members", err: fmt.Errorf(`ent: validator failed for field "PoolSnapshot.members": %w`, err)}
		}
	}
	return nil
}

func (_u *PoolSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(poolsnapshot.Table, poolsnapshot.Columns, sqlgraph.NewFieldSpec(poolsnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(poolsnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(poolsnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.FormatVersion(); ok {
		_spec.SetField(poolsnapshot.FieldFormatVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Members(); ok {
		_spec.SetField(poolsnapshot.FieldMembers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMembers(); ok {
		_spec.AddField(poolsnapshot.FieldMembers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(poolsnapshot.FieldPayload, field.TypeBytes, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{poolsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PoolSnapshotUpdateOne is the builder for updating a single PoolSnapshot entity.
type PoolSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PoolSnapshotMutation
}

// SetSequence sets the "sequence" field.
func (_u *PoolSnapshotUpdateOne) SetSequence(v int64) *PoolSnapshotUpdateOne {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *PoolSnapshotUpdateOne) SetNillableSequence(v *int64) *PoolSnapshotUpdateOne {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *PoolSnapshotUpdateOne) AddSequence(v int64) *PoolSnapshotUpdateOne {
	_u.mutation.AddSequence(v)
	return _u
}

// SetFormatVersion sets the "format_version" field.
func (_u *PoolSnapshotUpdateOne) SetFormatVersion(v string) *PoolSnapshotUpdateOne {
	_u.mutation.SetFormatVersion(v)
	return _u
}

// SetNillableFormatVersion sets the "format_version" field if the given value is not nil.
func (_u *PoolSnapshotUpdateOne) SetNillableFormatVersion(v *string) *PoolSnapshotUpdateOne {
	if v != nil {
		_u.SetFormatVersion(*v)
	}
	return _u
}

// SetMembers sets the "members" field.
func (_u *PoolSnapshotUpdateOne) SetMembers(v int) *PoolSnapshotUpdateOne {
	_u.mutation.ResetMembers()
	_u.mutation.SetMembers(v)
	return _u
}

// SetNillableMembers sets the "members" field if the given value is not nil.
func (_u *PoolSnapshotUpdateOne) SetNillableMembers(v *int) *PoolSnapshotUpdateOne {
	if v != nil {
		_u.SetMembers(*v)
	}
	return _u
}

// AddMembers adds value to the "members" field.
func (_u *PoolSnapshotUpdateOne) AddMembers(v int) *PoolSnapshotUpdateOne {
	_u.mutation.AddMembers(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *PoolSnapshotUpdateOne) SetPayload(v []byte) *PoolSnapshotUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// Mutation returns the PoolSnapshotMutation object of the builder.
func (_u *PoolSnapshotUpdateOne) Mutation() *PoolSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the PoolSnapshotUpdate builder.
func (_u *PoolSnapshotUpdateOne) Where(ps ...predicate.PoolSnapshot) *PoolSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PoolSnapshotUpdateOne) Select(field string, fields ...string) *PoolSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PoolSnapshot entity.
func (_u *PoolSnapshotUpdateOne) Save(ctx context.Context) (*PoolSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PoolSnapshotUpdateOne) SaveX(ctx context.Context) *PoolSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PoolSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PoolSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PoolSnapshotUpdateOne) check() error {
	if v, ok := _u.mutation.FormatVersion(); ok {
		if err := poolsnapshot.FormatVersionValidator(v); err != nil {
			return &ValidationError{Name: "format_version", err: fmt.Errorf(`ent: validator failed for field "PoolSnapshot.format_version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Members(); ok {
		if err := poolsnapshot.MembersValidator(v); err != nil {
			return &ValidationError{Name: "members", err: fmt.Errorf(`ent: validator failed for field "PoolSnapshot.members": %w`, err)}
		}
	}
	return nil
}

func (_u *PoolSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *PoolSnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(poolsnapshot.Table, poolsnapshot.Columns, sqlgraph.NewFieldSpec(poolsnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PoolSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, poolsnapshot.FieldID)
		for _, f := range fields {
			if !poolsnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != poolsnapshot.FieldID {
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
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(poolsnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(poolsnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.FormatVersion(); ok {
		_spec.SetField(poolsnapshot.FieldFormatVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Members(); ok {
		_spec.SetField(poolsnapshot.FieldMembers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMembers(); ok {
		_spec.AddField(poolsnapshot.FieldMembers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(poolsnapshot.FieldPayload, field.TypeBytes, value)
	}
	_node = &PoolSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{poolsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
