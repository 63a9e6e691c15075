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
	"github.com/kestrel-ai/kestrel/ent/corememoryblock"
	"github.com/kestrel-ai/kestrel/ent/predicate"
)

// CoreMemoryBlockUpdate is the builder for updating CoreMemoryBlock entities.
type CoreMemoryBlockUpdate struct {
	config
	hooks    []Hook
	mutation *CoreMemoryBlockMutation
}

// Where appends a list predicates to the CoreMemoryBlockUpdate builder.
func (_u *CoreMemoryBlockUpdate) Where(ps ...predicate.CoreMemoryBlock) *CoreMemoryBlockUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CoreMemoryBlockUpdate) SetUserID(v string) *CoreMemoryBlockUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CoreMemoryBlockUpdate) SetNillableUserID(v *string) *CoreMemoryBlockUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *CoreMemoryBlockUpdate) ClearUserID() *CoreMemoryBlockUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *CoreMemoryBlockUpdate) SetSessionID(v string) *CoreMemoryBlockUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *CoreMemoryBlockUpdate) SetNillableSessionID(v *string) *CoreMemoryBlockUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *CoreMemoryBlockUpdate) ClearSessionID() *CoreMemoryBlockUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetBlockType sets the "block_type" field.
func (_u *CoreMemoryBlockUpdate) SetBlockType(v string) *CoreMemoryBlockUpdate {
	_u.mutation.SetBlockType(v)
	return _u
}

// SetNillableBlockType sets the "block_type" field if the given value is not nil.
func (_u *CoreMemoryBlockUpdate) SetNillableBlockType(v *string) *CoreMemoryBlockUpdate {
	if v != nil {
		_u.SetBlockType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *CoreMemoryBlockUpdate) SetContent(v string) *CoreMemoryBlockUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *CoreMemoryBlockUpdate) SetNillableContent(v *string) *CoreMemoryBlockUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetCharLimit sets the "char_limit" field.
func (_u *CoreMemoryBlockUpdate) SetCharLimit(v int) *CoreMemoryBlockUpdate {
	_u.mutation.ResetCharLimit()
	_u.mutation.SetCharLimit(v)
	return _u
}

// SetNillableCharLimit sets the "char_limit" field if the given value is not nil.
func (_u *CoreMemoryBlockUpdate) SetNillableCharLimit(v *int) *CoreMemoryBlockUpdate {
	if v != nil {
		_u.SetCharLimit(*v)
	}
	return _u
}

// AddCharLimit adds value to the "char_limit" field.
func (_u *CoreMemoryBlockUpdate) AddCharLimit(v int) *CoreMemoryBlockUpdate {
	_u.mutation.AddCharLimit(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *CoreMemoryBlockUpdate) SetVersion(v int) *CoreMemoryBlockUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *CoreMemoryBlockUpdate) SetNillableVersion(v *int) *CoreMemoryBlockUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *CoreMemoryBlockUpdate) AddVersion(v int) *CoreMemoryBlockUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CoreMemoryBlockUpdate) SetUpdatedAt(v time.Time) *CoreMemoryBlockUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CoreMemoryBlockMutation object of the builder.
func (_u *CoreMemoryBlockUpdate) Mutation() *CoreMemoryBlockMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CoreMemoryBlockUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CoreMemoryBlockUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CoreMemoryBlockUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CoreMemoryBlockUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CoreMemoryBlockUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := corememoryblock.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CoreMemoryBlockUpdate) check() error {
	if v, ok := _u.mutation.CharLimit(); ok {
		if err := corememoryblock.CharLimitValidator(v); err != nil {
			return &ValidationError{Name: "char_limit", err: fmt.Errorf(`ent: validator failed for field "CoreMemoryBlock.char_limit": %w`, err)}
		}
	}
	return nil
}

func (_u *CoreMemoryBlockUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(corememoryblock.Table, corememoryblock.Columns, sqlgraph.NewFieldSpec(corememoryblock.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(corememoryblock.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(corememoryblock.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(corememoryblock.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(corememoryblock.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.BlockType(); ok {
		_spec.SetField(corememoryblock.FieldBlockType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(corememoryblock.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.CharLimit(); ok {
		_spec.SetField(corememoryblock.FieldCharLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCharLimit(); ok {
		_spec.AddField(corememoryblock.FieldCharLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(corememoryblock.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(corememoryblock.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(corememoryblock.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{corememoryblock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CoreMemoryBlockUpdateOne is the builder for updating a single CoreMemoryBlock entity.
type CoreMemoryBlockUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CoreMemoryBlockMutation
}

// SetUserID sets the "user_id" field.
func (_u *CoreMemoryBlockUpdateOne) SetUserID(v string) *CoreMemoryBlockUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CoreMemoryBlockUpdateOne) SetNillableUserID(v *string) *CoreMemoryBlockUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *CoreMemoryBlockUpdateOne) ClearUserID() *CoreMemoryBlockUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *CoreMemoryBlockUpdateOne) SetSessionID(v string) *CoreMemoryBlockUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *CoreMemoryBlockUpdateOne) SetNillableSessionID(v *string) *CoreMemoryBlockUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *CoreMemoryBlockUpdateOne) ClearSessionID() *CoreMemoryBlockUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetBlockType sets the "block_type" field.
func (_u *CoreMemoryBlockUpdateOne) SetBlockType(v string) *CoreMemoryBlockUpdateOne {
	_u.mutation.SetBlockType(v)
	return _u
}

// SetNillableBlockType sets the "block_type" field if the given value is not nil.
func (_u *CoreMemoryBlockUpdateOne) SetNillableBlockType(v *string) *CoreMemoryBlockUpdateOne {
	if v != nil {
		_u.SetBlockType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *CoreMemoryBlockUpdateOne) SetContent(v string) *CoreMemoryBlockUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *CoreMemoryBlockUpdateOne) SetNillableContent(v *string) *CoreMemoryBlockUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetCharLimit sets the "char_limit" field.
func (_u *CoreMemoryBlockUpdateOne) SetCharLimit(v int) *CoreMemoryBlockUpdateOne {
	_u.mutation.ResetCharLimit()
	_u.mutation.SetCharLimit(v)
	return _u
}

// SetNillableCharLimit sets the "char_limit" field if the given value is not nil.
func (_u *CoreMemoryBlockUpdateOne) SetNillableCharLimit(v *int) *CoreMemoryBlockUpdateOne {
	if v != nil {
		_u.SetCharLimit(*v)
	}
	return _u
}

// AddCharLimit adds value to the "char_limit" field.
func (_u *CoreMemoryBlockUpdateOne) AddCharLimit(v int) *CoreMemoryBlockUpdateOne {
	_u.mutation.AddCharLimit(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *CoreMemoryBlockUpdateOne) SetVersion(v int) *CoreMemoryBlockUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *CoreMemoryBlockUpdateOne) SetNillableVersion(v *int) *CoreMemoryBlockUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *CoreMemoryBlockUpdateOne) AddVersion(v int) *CoreMemoryBlockUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CoreMemoryBlockUpdateOne) SetUpdatedAt(v time.Time) *CoreMemoryBlockUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CoreMemoryBlockMutation object of the builder.
func (_u *CoreMemoryBlockUpdateOne) Mutation() *CoreMemoryBlockMutation {
	return _u.mutation
}

// Where appends a list predicates to the CoreMemoryBlockUpdate builder.
func (_u *CoreMemoryBlockUpdateOne) Where(ps ...predicate.CoreMemoryBlock) *CoreMemoryBlockUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CoreMemoryBlockUpdateOne) Select(field string, fields ...string) *CoreMemoryBlockUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CoreMemoryBlock entity.
func (_u *CoreMemoryBlockUpdateOne) Save(ctx context.Context) (*CoreMemoryBlock, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CoreMemoryBlockUpdateOne) SaveX(ctx context.Context) *CoreMemoryBlock {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CoreMemoryBlockUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CoreMemoryBlockUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CoreMemoryBlockUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := corememoryblock.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CoreMemoryBlockUpdateOne) check() error {
	if v, ok := _u.mutation.CharLimit(); ok {
		if err := corememoryblock.CharLimitValidator(v); err != nil {
			return &ValidationError{Name: "char_limit", err: fmt.Errorf(`ent: validator failed for field "CoreMemoryBlock.char_limit": %w`, err)}
		}
	}
	return nil
}

func (_u *CoreMemoryBlockUpdateOne) sqlSave(ctx context.Context) (_node *CoreMemoryBlock, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(corememoryblock.Table, corememoryblock.Columns, sqlgraph.NewFieldSpec(corememoryblock.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CoreMemoryBlock.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, corememoryblock.FieldID)
		for _, f := range fields {
			if !corememoryblock.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != corememoryblock.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(corememoryblock.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(corememoryblock.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(corememoryblock.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(corememoryblock.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.BlockType(); ok {
		_spec.SetField(corememoryblock.FieldBlockType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(corememoryblock.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.CharLimit(); ok {
		_spec.SetField(corememoryblock.FieldCharLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCharLimit(); ok {
		_spec.AddField(corememoryblock.FieldCharLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(corememoryblock.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(corememoryblock.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(corememoryblock.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &CoreMemoryBlock{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{corememoryblock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
