// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kestrel-ai/kestrel/ent/explorationfinding"
	"github.com/kestrel-ai/kestrel/ent/predicate"
)

// ExplorationFindingDelete is the builder for deleting a ExplorationFinding entity.
type ExplorationFindingDelete struct {
	config
	hooks    []Hook
	mutation *ExplorationFindingMutation
}

// Where appends a list predicates to the ExplorationFindingDelete builder.
func (_d *ExplorationFindingDelete) Where(ps ...predicate.ExplorationFinding) *ExplorationFindingDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExplorationFindingDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExplorationFindingDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExplorationFindingDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(explorationfinding.Table, sqlgraph.NewFieldSpec(explorationfinding.FieldID, field.TypeString))
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

// ExplorationFindingDeleteOne is the builder for deleting a single ExplorationFinding entity.
type ExplorationFindingDeleteOne struct {
	_d *ExplorationFindingDelete
}

// Where appends a list predicates to the ExplorationFindingDelete builder.
func (_d *ExplorationFindingDeleteOne) Where(ps ...predicate.ExplorationFinding) *ExplorationFindingDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExplorationFindingDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{explorationfinding.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExplorationFindingDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
