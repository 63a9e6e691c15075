// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kestrel-ai/kestrel/ent/predicate"
	"github.com/kestrel-ai/kestrel/ent/surfacedfinding"
)

// SurfacedFindingUpdate is the builder for updating SurfacedFinding entities.
type SurfacedFindingUpdate struct {
	config
	hooks    []Hook
	mutation *SurfacedFindingMutation
}

// Where appends a list predicates to the SurfacedFindingUpdate builder.
func (_u *SurfacedFindingUpdate) Where(ps ...predicate.SurfacedFinding) *SurfacedFindingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the SurfacedFindingMutation object of the builder.
func (_u *SurfacedFindingUpdate) Mutation() *SurfacedFindingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SurfacedFindingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SurfacedFindingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SurfacedFindingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SurfacedFindingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SurfacedFindingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(surfacedfinding.Table, surfacedfinding.Columns, sqlgraph.NewFieldSpec(surfacedfinding.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{surfacedfinding.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SurfacedFindingUpdateOne is the builder for updating a single SurfacedFinding entity.
type SurfacedFindingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SurfacedFindingMutation
}

// Mutation returns the SurfacedFindingMutation object of the builder.
func (_u *SurfacedFindingUpdateOne) Mutation() *SurfacedFindingMutation {
	return _u.mutation
}

// Where appends a list predicates to the SurfacedFindingUpdate builder.
func (_u *SurfacedFindingUpdateOne) Where(ps ...predicate.SurfacedFinding) *SurfacedFindingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SurfacedFindingUpdateOne) Select(field string, fields ...string) *SurfacedFindingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SurfacedFinding entity.
func (_u *SurfacedFindingUpdateOne) Save(ctx context.Context) (*SurfacedFinding, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SurfacedFindingUpdateOne) SaveX(ctx context.Context) *SurfacedFinding {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SurfacedFindingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SurfacedFindingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SurfacedFindingUpdateOne) sqlSave(ctx context.Context) (_node *SurfacedFinding, err error) {
	_spec := sqlgraph.NewUpdateSpec(surfacedfinding.Table, surfacedfinding.Columns, sqlgraph.NewFieldSpec(surfacedfinding.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SurfacedFinding.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, surfacedfinding.FieldID)
		for _, f := range fields {
			if !surfacedfinding.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != surfacedfinding.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	_node = &SurfacedFinding{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{surfacedfinding.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
