// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kestrel-ai/kestrel/ent/mediumpresence"
	"github.com/kestrel-ai/kestrel/ent/predicate"
)

// MediumPresenceDelete is the builder for deleting a MediumPresence entity.
type MediumPresenceDelete struct {
	config
	hooks    []Hook
	mutation *MediumPresenceMutation
}

// Where appends a list predicates to the MediumPresenceDelete builder.
func (_d *MediumPresenceDelete) Where(ps ...predicate.MediumPresence) *MediumPresenceDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MediumPresenceDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MediumPresenceDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MediumPresenceDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(mediumpresence.Table, sqlgraph.NewFieldSpec(mediumpresence.FieldID, field.TypeString))
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

// MediumPresenceDeleteOne is the builder for deleting a single MediumPresence entity.
type MediumPresenceDeleteOne struct {
	_d *MediumPresenceDelete
}

// Where appends a list predicates to the MediumPresenceDelete builder.
func (_d *MediumPresenceDeleteOne) Where(ps ...predicate.MediumPresence) *MediumPresenceDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MediumPresenceDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{mediumpresence.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MediumPresenceDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
