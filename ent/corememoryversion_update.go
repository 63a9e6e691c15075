// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kestrel-ai/kestrel/ent/corememoryversion"
	"github.com/kestrel-ai/kestrel/ent/predicate"
)

// CoreMemoryVersionUpdate is the builder for updating CoreMemoryVersion entities.
type CoreMemoryVersionUpdate struct {
	config
	hooks    []Hook
	mutation *CoreMemoryVersionMutation
}

// Where appends a list predicates to the CoreMemoryVersionUpdate builder.
func (_u *CoreMemoryVersionUpdate) Where(ps ...predicate.CoreMemoryVersion) *CoreMemoryVersionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the CoreMemoryVersionMutation object of the builder.
func (_u *CoreMemoryVersionUpdate) Mutation() *CoreMemoryVersionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CoreMemoryVersionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CoreMemoryVersionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CoreMemoryVersionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CoreMemoryVersionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CoreMemoryVersionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(corememoryversion.Table, corememoryversion.Columns, sqlgraph.NewFieldSpec(corememoryversion.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(corememoryversion.FieldReason, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{corememoryversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CoreMemoryVersionUpdateOne is the builder for updating a single CoreMemoryVersion entity.
type CoreMemoryVersionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CoreMemoryVersionMutation
}

// Mutation returns the CoreMemoryVersionMutation object of the builder.
func (_u *CoreMemoryVersionUpdateOne) Mutation() *CoreMemoryVersionMutation {
	return _u.mutation
}

// Where appends a list predicates to the CoreMemoryVersionUpdate builder.
func (_u *CoreMemoryVersionUpdateOne) Where(ps ...predicate.CoreMemoryVersion) *CoreMemoryVersionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CoreMemoryVersionUpdateOne) Select(field string, fields ...string) *CoreMemoryVersionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CoreMemoryVersion entity.
func (_u *CoreMemoryVersionUpdateOne) Save(ctx context.Context) (*CoreMemoryVersion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CoreMemoryVersionUpdateOne) SaveX(ctx context.Context) *CoreMemoryVersion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CoreMemoryVersionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CoreMemoryVersionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CoreMemoryVersionUpdateOne) sqlSave(ctx context.Context) (_node *CoreMemoryVersion, err error) {
	_spec := sqlgraph.NewUpdateSpec(corememoryversion.Table, corememoryversion.Columns, sqlgraph.NewFieldSpec(corememoryversion.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CoreMemoryVersion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, corememoryversion.FieldID)
		for _, f := range fields {
			if !corememoryversion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != corememoryversion.FieldID {
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
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(corememoryversion.FieldReason, field.TypeString)
	}
	_node = &CoreMemoryVersion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{corememoryversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
