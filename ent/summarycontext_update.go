// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/kestrel-ai/kestrel/ent/predicate"
	"github.com/kestrel-ai/kestrel/ent/summarycontext"
)

// SummaryContextUpdate is the builder for updating SummaryContext entities.
type SummaryContextUpdate struct {
	config
	hooks    []Hook
	mutation *SummaryContextMutation
}

// Where appends a list predicates to the SummaryContextUpdate builder.
func (_u *SummaryContextUpdate) Where(ps ...predicate.SummaryContext) *SummaryContextUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessions sets the "sessions" field.
func (_u *SummaryContextUpdate) SetSessions(v []string) *SummaryContextUpdate {
	_u.mutation.SetSessions(v)
	return _u
}

// AppendSessions appends value to the "sessions" field.
func (_u *SummaryContextUpdate) AppendSessions(v []string) *SummaryContextUpdate {
	_u.mutation.AppendSessions(v)
	return _u
}

// Mutation returns the SummaryContextMutation object of the builder.
func (_u *SummaryContextUpdate) Mutation() *SummaryContextMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SummaryContextUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SummaryContextUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SummaryContextUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SummaryContextUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SummaryContextUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(summarycontext.Table, summarycontext.Columns, sqlgraph.NewFieldSpec(summarycontext.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Sessions(); ok {
		_spec.SetField(summarycontext.FieldSessions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSessions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, summarycontext.FieldSessions, value)
		})
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(summarycontext.FieldUserID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{summarycontext.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SummaryContextUpdateOne is the builder for updating a single SummaryContext entity.
type SummaryContextUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SummaryContextMutation
}

// SetSessions sets the "sessions" field.
func (_u *SummaryContextUpdateOne) SetSessions(v []string) *SummaryContextUpdateOne {
	_u.mutation.SetSessions(v)
	return _u
}

// AppendSessions appends value to the "sessions" field.
func (_u *SummaryContextUpdateOne) AppendSessions(v []string) *SummaryContextUpdateOne {
	_u.mutation.AppendSessions(v)
	return _u
}

// Mutation returns the SummaryContextMutation object of the builder.
func (_u *SummaryContextUpdateOne) Mutation() *SummaryContextMutation {
	return _u.mutation
}

// Where appends a list predicates to the SummaryContextUpdate builder.
func (_u *SummaryContextUpdateOne) Where(ps ...predicate.SummaryContext) *SummaryContextUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SummaryContextUpdateOne) Select(field string, fields ...string) *SummaryContextUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SummaryContext entity.
func (_u *SummaryContextUpdateOne) Save(ctx context.Context) (*SummaryContext, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SummaryContextUpdateOne) SaveX(ctx context.Context) *SummaryContext {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SummaryContextUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SummaryContextUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SummaryContextUpdateOne) sqlSave(ctx context.Context) (_node *SummaryContext, err error) {
	_spec := sqlgraph.NewUpdateSpec(summarycontext.Table, summarycontext.Columns, sqlgraph.NewFieldSpec(summarycontext.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SummaryContext.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, summarycontext.FieldID)
		for _, f := range fields {
			if !summarycontext.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != summarycontext.FieldID {
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
	if value, ok := _u.mutation.Sessions(); ok {
		_spec.SetField(summarycontext.FieldSessions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSessions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, summarycontext.FieldSessions, value)
		})
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(summarycontext.FieldUserID, field.TypeString)
	}
	_node = &SummaryContext{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{summarycontext.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
