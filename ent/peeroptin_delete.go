// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/calibra/ent/peeroptin"
	"github.com/abhisek/calibra/ent/predicate"
)

// PeerOptInDelete is the builder for deleting a PeerOptIn entity.
type PeerOptInDelete struct {
	config
	hooks    []Hook
	mutation *PeerOptInMutation
}

// Where appends a list predicates to the PeerOptInDelete builder.
func (_d *PeerOptInDelete) Where(ps ...predicate.PeerOptIn) *PeerOptInDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PeerOptInDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PeerOptInDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PeerOptInDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(peeroptin.Table, sqlgraph.NewFieldSpec(peeroptin.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// PeerOptInDeleteOne is the builder for deleting a single PeerOptIn entity.
type PeerOptInDeleteOne struct {
	_d *PeerOptInDelete
}

// Where appends a list predicates to the PeerOptInDelete builder.
func (_d *PeerOptInDeleteOne) Where(ps ...predicate.PeerOptIn) *PeerOptInDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PeerOptInDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{peeroptin.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PeerOptInDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
