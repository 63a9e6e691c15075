// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kestrel-ai/kestrel/ent/ambientnotification"
	"github.com/kestrel-ai/kestrel/ent/predicate"
)

// AmbientNotificationDelete is the builder for deleting a AmbientNotification entity.
type AmbientNotificationDelete struct {
	config
	hooks    []Hook
	mutation *AmbientNotificationMutation
}

// Where appends a list predicates to the AmbientNotificationDelete builder.
func (_d *AmbientNotificationDelete) Where(ps ...predicate.AmbientNotification) *AmbientNotificationDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AmbientNotificationDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AmbientNotificationDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AmbientNotificationDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(ambientnotification.Table, sqlgraph.NewFieldSpec(ambientnotification.FieldID, field.TypeString))
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

// AmbientNotificationDeleteOne is the builder for deleting a single AmbientNotification entity.
type AmbientNotificationDeleteOne struct {
	_d *AmbientNotificationDelete
}

// Where appends a list predicates to the AmbientNotificationDelete builder.
func (_d *AmbientNotificationDeleteOne) Where(ps ...predicate.AmbientNotification) *AmbientNotificationDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AmbientNotificationDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{ambientnotification.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AmbientNotificationDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
