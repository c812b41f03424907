// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/calibra/ent/poolsnapshot"
)

// PoolSnapshotCreate is the builder for creating a PoolSnapshot entity.
type PoolSnapshotCreate struct {
	config
	mutation *PoolSnapshotMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PoolSnapshotCreate) SetSequence(v int64) *PoolSnapshotCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTakenAt sets the "taken_at" field.
func (_c *PoolSnapshotCreate) SetTakenAt(v time.Time) *PoolSnapshotCreate {
	_c.mutation.SetTakenAt(v)
	return _c
}

// SetNillableTakenAt sets the "taken_at" field if the given value is not nil.
func (_c *PoolSnapshotCreate) SetNillableTakenAt(v *time.Time) *PoolSnapshotCreate {
	if v != nil {
		_c.SetTakenAt(*v)
	}
	return _c
}

// SetFormatVersion sets the "format_version" field.
func (_c *PoolSnapshotCreate) SetFormatVersion(v string) *PoolSnapshotCreate {
	_c.mutation.SetFormatVersion(v)
	return _c
}

// SetMembers sets the "members" field.
func (_c *PoolSnapshotCreate) SetMembers(v int) *PoolSnapshotCreate {
	_c.mutation.SetMembers(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *PoolSnapshotCreate) SetPayload(v []byte) *PoolSnapshotCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// Mutation returns the PoolSnapshotMutation object of the builder.
func (_c *PoolSnapshotCreate) Mutation() *PoolSnapshotMutation {
	return _c.mutation
}

// Save creates the PoolSnapshot in the database.
func (_c *PoolSnapshotCreate) Save(ctx context.Context) (*PoolSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PoolSnapshotCreate) SaveX(ctx context.Context) *PoolSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PoolSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PoolSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PoolSnapshotCreate) defaults() {
	if _, ok := _c.mutation.TakenAt(); !ok {
		v := poolsnapshot.DefaultTakenAt()
		_c.mutation.SetTakenAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PoolSnapshotCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PoolSnapshot.sequence"`)}
	}
	if _, ok := _c.mutation.TakenAt(); !ok {
		return &ValidationError{Name: "taken_at", err: errors.New(`ent: missing required field "PoolSnapshot.taken_at"`)}
	}
	if _, ok := _c.mutation.FormatVersion(); !ok {
		return &ValidationError{Name: "format_version", err: errors.New(`ent: missing required field "PoolSnapshot.format_version"`)}
	}
	if v, ok := _c.mutation.FormatVersion(); ok {
		if err := poolsnapshot.FormatVersionValidator(v); err != nil {
			return &ValidationError{Name: "format_version", err: fmt.Errorf(`ent: validator failed for field "PoolSnapshot.format_version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Members(); !ok {
		return &ValidationError{Name: "members", err: errors.New(`ent: missing required field "PoolSnapshot.members"`)}
	}
	if v, ok := _c.mutation.Members(); ok {
		if err := poolsnapshot.MembersValidator(v); err != nil {
			return &ValidationError{Name: "members", err: fmt.Errorf(`ent: validator failed for field "PoolSnapshot.members": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "PoolSnapshot.payload"`)}
	}
	return nil
}

func (_c *PoolSnapshotCreate) sqlSave(ctx context.Context) (*PoolSnapshot, error) {
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

func (_c *PoolSnapshotCreate) createSpec() (*PoolSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &PoolSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(poolsnapshot.Table, sqlgraph.NewFieldSpec(poolsnapshot.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(poolsnapshot.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.TakenAt(); ok {
		_spec.SetField(poolsnapshot.FieldTakenAt, field.TypeTime, value)
		_node.TakenAt = value
	}
	if value, ok := _c.mutation.FormatVersion(); ok {
		_spec.SetField(poolsnapshot.FieldFormatVersion, field.TypeString, value)
		_node.FormatVersion = value
	}
	if value, ok := _c.mutation.Members(); ok {
		_spec.SetField(poolsnapshot.FieldMembers, field.TypeInt, value)
		_node.Members = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(poolsnapshot.FieldPayload, field.TypeBytes, value)
		_node.Payload = value
	}
	return _node, _spec
}

// PoolSnapshotCreateBulk is the builder for creating many PoolSnapshot entities in bulk.
type PoolSnapshotCreateBulk struct {
	config
	err      error
	builders []*PoolSnapshotCreate
}

// Save creates the PoolSnapshot entities in the database.
func (_c *PoolSnapshotCreateBulk) Save(ctx context.Context) ([]*PoolSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PoolSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PoolSnapshotMutation)
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
func (_c *PoolSnapshotCreateBulk) SaveX(ctx context.Context) []*PoolSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PoolSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PoolSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
