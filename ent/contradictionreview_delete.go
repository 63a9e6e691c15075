// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kestrel-ai/kestrel/ent/contradictionreview"
	"github.com/kestrel-ai/kestrel/ent/predicate"
)

// ContradictionReviewDelete is the builder for deleting a ContradictionReview entity.
type ContradictionReviewDelete struct {
	config
	hooks    []Hook
	mutation *ContradictionReviewMutation
}

// Where appends a list predicates to the ContradictionReviewDelete builder.
func (_d *ContradictionReviewDelete) Where(ps ...predicate.ContradictionReview) *ContradictionReviewDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ContradictionReviewDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ContradictionReviewDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ContradictionReviewDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(contradictionreview.Table, sqlgraph.NewFieldSpec(contradictionreview.FieldID, field.TypeString))
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

// ContradictionReviewDeleteOne is the builder for deleting a single ContradictionReview entity.
type ContradictionReviewDeleteOne struct {
	_d *ContradictionReviewDelete
}

// Where appends a list predicates to the ContradictionReviewDelete builder.
func (_d *ContradictionReviewDeleteOne) Where(ps ...predicate.ContradictionReview) *ContradictionReviewDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ContradictionReviewDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{contradictionreview.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ContradictionReviewDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
