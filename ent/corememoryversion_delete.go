// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kestrel-ai/kestrel/ent/corememoryversion"
	"github.com/kestrel-ai/kestrel/ent/predicate"
)

// CoreMemoryVersionDelete is the builder for deleting a CoreMemoryVersion entity.
type CoreMemoryVersionDelete struct {
	config
	hooks    []Hook
	mutation *CoreMemoryVersionMutation
}

// Where appends a list predicates to the CoreMemoryVersionDelete builder.
func (_d *CoreMemoryVersionDelete) Where(ps ...predicate.CoreMemoryVersion) *CoreMemoryVersionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CoreMemoryVersionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CoreMemoryVersionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CoreMemoryVersionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(corememoryversion.Table, sqlgraph.NewFieldSpec(corememoryversion.FieldID, field.TypeString))
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

// CoreMemoryVersionDeleteOne is the builder for deleting a single CoreMemoryVersion entity.
type CoreMemoryVersionDeleteOne struct {
	_d *CoreMemoryVersionDelete
}

// Where appends a list predicates to the CoreMemoryVersionDelete builder.
func (_d *CoreMemoryVersionDeleteOne) Where(ps ...predicate.CoreMemoryVersion) *CoreMemoryVersionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CoreMemoryVersionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{corememoryversion.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CoreMemoryVersionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
