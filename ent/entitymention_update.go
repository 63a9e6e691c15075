// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kestrel-ai/kestrel/ent/entitymention"
	"github.com/kestrel-ai/kestrel/ent/predicate"
)

// EntityMentionUpdate is the builder for updating EntityMention entities.
type EntityMentionUpdate struct {
	config
	hooks    []Hook
	mutation *EntityMentionMutation
}

// Where appends a list predicates to the EntityMentionUpdate builder.
func (_u *EntityMentionUpdate) Where(ps ...predicate.EntityMention) *EntityMentionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the EntityMentionMutation object of the builder.
func (_u *EntityMentionUpdate) Mutation() *EntityMentionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EntityMentionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityMentionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EntityMentionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityMentionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EntityMentionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(entitymention.Table, entitymention.Columns, sqlgraph.NewFieldSpec(entitymention.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ConversationIDCleared() {
		_spec.ClearField(entitymention.FieldConversationID, field.TypeString)
	}
	if _u.mutation.SpanStartCleared() {
		_spec.ClearField(entitymention.FieldSpanStart, field.TypeInt)
	}
	if _u.mutation.SpanEndCleared() {
		_spec.ClearField(entitymention.FieldSpanEnd, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entitymention.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EntityMentionUpdateOne is the builder for updating a single EntityMention entity.
type EntityMentionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EntityMentionMutation
}

// Mutation returns the EntityMentionMutation object of the builder.
func (_u *EntityMentionUpdateOne) Mutation() *EntityMentionMutation {
	return _u.mutation
}

// Where appends a list predicates to the EntityMentionUpdate builder.
func (_u *EntityMentionUpdateOne) Where(ps ...predicate.EntityMention) *EntityMentionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EntityMentionUpdateOne) Select(field string, fields ...string) *EntityMentionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EntityMention entity.
func (_u *EntityMentionUpdateOne) Save(ctx context.Context) (*EntityMention, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityMentionUpdateOne) SaveX(ctx context.Context) *EntityMention {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EntityMentionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityMentionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EntityMentionUpdateOne) sqlSave(ctx context.Context) (_node *EntityMention, err error) {
	_spec := sqlgraph.NewUpdateSpec(entitymention.Table, entitymention.Columns, sqlgraph.NewFieldSpec(entitymention.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EntityMention.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, entitymention.FieldID)
		for _, f := range fields {
			if !entitymention.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != entitymention.FieldID {
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
	if _u.mutation.ConversationIDCleared() {
		_spec.ClearField(entitymention.FieldConversationID, field.TypeString)
	}
	if _u.mutation.SpanStartCleared() {
		_spec.ClearField(entitymention.FieldSpanStart, field.TypeInt)
	}
	if _u.mutation.SpanEndCleared() {
		_spec.ClearField(entitymention.FieldSpanEnd, field.TypeInt)
	}
	_node = &EntityMention{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entitymention.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
