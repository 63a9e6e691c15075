// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kestrel-ai/kestrel/ent/corememoryblock"
	"github.com/kestrel-ai/kestrel/ent/predicate"
)

// CoreMemoryBlockDelete is the builder for deleting a CoreMemoryBlock entity.
type CoreMemoryBlockDelete struct {
	config
	hooks    []Hook
	mutation *CoreMemoryBlockMutation
}

// Where appends a list predicates to the CoreMemoryBlockDelete builder.
func (_d *CoreMemoryBlockDelete) Where(ps ...predicate.CoreMemoryBlock) *CoreMemoryBlockDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CoreMemoryBlockDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CoreMemoryBlockDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CoreMemoryBlockDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(corememoryblock.Table, sqlgraph.NewFieldSpec(corememoryblock.FieldID, field.TypeString))
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

// CoreMemoryBlockDeleteOne is the builder for deleting a single CoreMemoryBlock entity.
type CoreMemoryBlockDeleteOne struct {
	_d *CoreMemoryBlockDelete
}

// Where appends a list predicates to the CoreMemoryBlockDelete builder.
func (_d *CoreMemoryBlockDeleteOne) Where(ps ...predicate.CoreMemoryBlock) *CoreMemoryBlockDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CoreMemoryBlockDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{corememoryblock.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CoreMemoryBlockDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
