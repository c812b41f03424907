// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/calibra/ent/challengeattemptevent"
	"github.com/abhisek/calibra/ent/predicate"
)

// ChallengeAttemptEventDelete is the builder for deleting a ChallengeAttemptEvent entity.
type ChallengeAttemptEventDelete struct {
	config
	hooks    []Hook
	mutation *ChallengeAttemptEventMutation
}

// Where appends a list predicates to the ChallengeAttemptEventDelete builder.
func (_d *ChallengeAttemptEventDelete) Where(ps ...predicate.ChallengeAttemptEvent) *ChallengeAttemptEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ChallengeAttemptEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ChallengeAttemptEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ChallengeAttemptEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(challengeattemptevent.Table, sqlgraph.NewFieldSpec(challengeattemptevent.FieldID, field.TypeInt))
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

// ChallengeAttemptEventDeleteOne is the builder for deleting a single ChallengeAttemptEvent entity.
type ChallengeAttemptEventDeleteOne struct {
	_d *ChallengeAttemptEventDelete
}

// Where appends a list predicates to the ChallengeAttemptEventDelete builder.
func (_d *ChallengeAttemptEventDeleteOne) Where(ps ...predicate.ChallengeAttemptEvent) *ChallengeAttemptEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ChallengeAttemptEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{challengeattemptevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ChallengeAttemptEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
