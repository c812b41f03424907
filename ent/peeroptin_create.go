// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/calibra/ent/peeroptin"
)

// PeerOptInCreate is the builder for creating a PeerOptIn entity.
type PeerOptInCreate struct {
	config
	mutation *PeerOptInMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *PeerOptInCreate) SetUserID(v string) *PeerOptInCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetOptedIn sets the "opted_in" field.
func (_c *PeerOptInCreate) SetOptedIn(v bool) *PeerOptInCreate {
	_c.mutation.SetOptedIn(v)
	return _c
}

// SetNillableOptedIn sets the "opted_in" field if the given value is not nil.
func (_c *PeerOptInCreate) SetNillableOptedIn(v *bool) *PeerOptInCreate {
	if v != nil {
		_c.SetOptedIn(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PeerOptInCreate) SetUpdatedAt(v time.Time) *PeerOptInCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PeerOptInCreate) SetNillableUpdatedAt(v *time.Time) *PeerOptInCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the PeerOptInMutation object of the builder.
func (_c *PeerOptInCreate) Mutation() *PeerOptInMutation {
	return _c.mutation
}

// Save creates the PeerOptIn in the database.
func (_c *PeerOptInCreate) Save(ctx context.Context) (*PeerOptIn, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PeerOptInCreate) SaveX(ctx context.Context) *PeerOptIn {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PeerOptInCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PeerOptInCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PeerOptInCreate) defaults() {
	if _, ok := _c.mutation.OptedIn(); !ok {
		v := peeroptin.DefaultOptedIn
		_c.mutation.SetOptedIn(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := peeroptin.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PeerOptInCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PeerOptIn.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := peeroptin.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PeerOptIn.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OptedIn(); !ok {
		return &ValidationError{Name: "opted_in", err: errors.New(`ent: missing required field "PeerOptIn.opted_in"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PeerOptIn.updated_at"`)}
	}
	return nil
}

func (_c *PeerOptInCreate) sqlSave(ctx context.Context) (*PeerOptIn, error) {
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

func (_c *PeerOptInCreate) createSpec() (*PeerOptIn, *sqlgraph.CreateSpec) {
	var (
		_node = &PeerOptIn{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(peeroptin.Table, sqlgraph.NewFieldSpec(peeroptin.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(peeroptin.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.OptedIn(); ok {
		_spec.SetField(peeroptin.FieldOptedIn, field.TypeBool, value)
		_node.OptedIn = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(peeroptin.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// PeerOptInCreateBulk is the builder for creating many PeerOptIn entities in bulk.
type PeerOptInCreateBulk struct {
	config
	err      error
	builders []*PeerOptInCreate
}

// Save creates the PeerOptIn entities in the database.
func (_c *PeerOptInCreateBulk) Save(ctx context.Context) ([]*PeerOptIn, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PeerOptIn, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PeerOptInMutation)
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
func (_c *PeerOptInCreateBulk) SaveX(ctx context.Context) []*PeerOptIn {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PeerOptInCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PeerOptInCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
