// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kestrel-ai/kestrel/ent/contextcache"
	"github.com/kestrel-ai/kestrel/ent/predicate"
)

// ContextCacheUpdate is the builder for updating ContextCache entities.
type ContextCacheUpdate struct {
	config
	hooks    []Hook
	mutation *ContextCacheMutation
}

// Where appends a list predicates to the ContextCacheUpdate builder.
func (_u *ContextCacheUpdate) Where(ps ...predicate.ContextCache) *ContextCacheUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ContextCacheUpdate) SetSessionID(v string) *ContextCacheUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ContextCacheUpdate) SetNillableSessionID(v *string) *ContextCacheUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *ContextCacheUpdate) SetContext(v string) *ContextCacheUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *ContextCacheUpdate) SetNillableContext(v *string) *ContextCacheUpdate {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ContextCacheUpdate) SetMetadata(v map[string]interface{}) *ContextCacheUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ContextCacheUpdate) ClearMetadata() *ContextCacheUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContextCacheUpdate) SetUpdatedAt(v time.Time) *ContextCacheUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ContextCacheMutation object of the builder.
func (_u *ContextCacheUpdate) Mutation() *ContextCacheMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContextCacheUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContextCacheUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContextCacheUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContextCacheUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContextCacheUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contextcache.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ContextCacheUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(contextcache.Table, contextcache.Columns, sqlgraph.NewFieldSpec(contextcache.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(contextcache.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(contextcache.FieldContext, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(contextcache.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(contextcache.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contextcache.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contextcache.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContextCacheUpdateOne is the builder for updating a single ContextCache entity.
type ContextCacheUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContextCacheMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ContextCacheUpdateOne) SetSessionID(v string) *ContextCacheUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ContextCacheUpdateOne) SetNillableSessionID(v *string) *ContextCacheUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *ContextCacheUpdateOne) SetContext(v string) *ContextCacheUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *ContextCacheUpdateOne) SetNillableContext(v *string) *ContextCacheUpdateOne {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ContextCacheUpdateOne) SetMetadata(v map[string]interface{}) *ContextCacheUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ContextCacheUpdateOne) ClearMetadata() *ContextCacheUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContextCacheUpdateOne) SetUpdatedAt(v time.Time) *ContextCacheUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ContextCacheMutation object of the builder.
func (_u *ContextCacheUpdateOne) Mutation() *ContextCacheMutation {
	return _u.mutation
}

// Where appends a list predicates to the ContextCacheUpdate builder.
func (_u *ContextCacheUpdateOne) Where(ps ...predicate.ContextCache) *ContextCacheUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContextCacheUpdateOne) Select(field string, fields ...string) *ContextCacheUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ContextCache entity.
func (_u *ContextCacheUpdateOne) Save(ctx context.Context) (*ContextCache, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContextCacheUpdateOne) SaveX(ctx context.Context) *ContextCache {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContextCacheUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContextCacheUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContextCacheUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contextcache.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ContextCacheUpdateOne) sqlSave(ctx context.Context) (_node *ContextCache, err error) {
	_spec := sqlgraph.NewUpdateSpec(contextcache.Table, contextcache.Columns, sqlgraph.NewFieldSpec(contextcache.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ContextCache.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contextcache.FieldID)
		for _, f := range fields {
			if !contextcache.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contextcache.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(contextcache.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(contextcache.FieldContext, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(contextcache.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(contextcache.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contextcache.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ContextCache{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contextcache.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
