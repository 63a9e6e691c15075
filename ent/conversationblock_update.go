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
	"github.com/kestrel-ai/kestrel/ent/conversationblock"
	"github.com/kestrel-ai/kestrel/ent/predicate"
)

// ConversationBlockUpdate is the builder for updating ConversationBlock entities.
type ConversationBlockUpdate struct {
	config
	hooks    []Hook
	mutation *ConversationBlockMutation
}

// Where appends a list predicates to the ConversationBlockUpdate builder.
func (_u *ConversationBlockUpdate) Where(ps ...predicate.ConversationBlock) *ConversationBlockUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrdinal sets the "ordinal" field.
func (_u *ConversationBlockUpdate) SetOrdinal(v int) *ConversationBlockUpdate {
	_u.mutation.ResetOrdinal()
	_u.mutation.SetOrdinal(v)
	return _u
}

// SetNillableOrdinal sets the "ordinal" field if the given value is not nil.
func (_u *ConversationBlockUpdate) SetNillableOrdinal(v *int) *ConversationBlockUpdate {
	if v != nil {
		_u.SetOrdinal(*v)
	}
	return _u
}

// AddOrdinal adds value to the "ordinal" field.
func (_u *ConversationBlockUpdate) AddOrdinal(v int) *ConversationBlockUpdate {
	_u.mutation.AddOrdinal(v)
	return _u
}

// SetKind sets the "kind" field.
func (_u *ConversationBlockUpdate) SetKind(v conversationblock.Kind) *ConversationBlockUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ConversationBlockUpdate) SetNillableKind(v *conversationblock.Kind) *ConversationBlockUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *ConversationBlockUpdate) SetText(v string) *ConversationBlockUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ConversationBlockUpdate) SetNillableText(v *string) *ConversationBlockUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// ClearText clears the value of the "text" field.
func (_u *ConversationBlockUpdate) ClearText() *ConversationBlockUpdate {
	_u.mutation.ClearText()
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *ConversationBlockUpdate) SetToolName(v string) *ConversationBlockUpdate {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *ConversationBlockUpdate) SetNillableToolName(v *string) *ConversationBlockUpdate {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// ClearToolName clears the value of the "tool_name" field.
func (_u *ConversationBlockUpdate) ClearToolName() *ConversationBlockUpdate {
	_u.mutation.ClearToolName()
	return _u
}

// SetToolUseID sets the "tool_use_id" field.
func (_u *ConversationBlockUpdate) SetToolUseID(v string) *ConversationBlockUpdate {
	_u.mutation.SetToolUseID(v)
	return _u
}

// SetNillableToolUseID sets the "tool_use_id" field if the given value is not nil.
func (_u *ConversationBlockUpdate) SetNillableToolUseID(v *string) *ConversationBlockUpdate {
	if v != nil {
		_u.SetToolUseID(*v)
	}
	return _u
}

// ClearToolUseID clears the value of the "tool_use_id" field.
func (_u *ConversationBlockUpdate) ClearToolUseID() *ConversationBlockUpdate {
	_u.mutation.ClearToolUseID()
	return _u
}

// SetToolInput sets the "tool_input" field.
func (_u *ConversationBlockUpdate) SetToolInput(v map[string]interface{}) *ConversationBlockUpdate {
	_u.mutation.SetToolInput(v)
	return _u
}

// ClearToolInput clears the value of the "tool_input" field.
func (_u *ConversationBlockUpdate) ClearToolInput() *ConversationBlockUpdate {
	_u.mutation.ClearToolInput()
	return _u
}

// SetToolResult sets the "tool_result" field.
func (_u *ConversationBlockUpdate) SetToolResult(v map[string]interface{}) *ConversationBlockUpdate {
	_u.mutation.SetToolResult(v)
	return _u
}

// ClearToolResult clears the value of the "tool_result" field.
func (_u *ConversationBlockUpdate) ClearToolResult() *ConversationBlockUpdate {
	_u.mutation.ClearToolResult()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *ConversationBlockUpdate) SetEmbedding(v []float64) *ConversationBlockUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *ConversationBlockUpdate) AppendEmbedding(v []float64) *ConversationBlockUpdate {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *ConversationBlockUpdate) ClearEmbedding() *ConversationBlockUpdate {
	_u.mutation.ClearEmbedding()
	return _u
}

// Mutation returns the ConversationBlockMutation object of the builder.
func (_u *ConversationBlockUpdate) Mutation() *ConversationBlockMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConversationBlockUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationBlockUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConversationBlockUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationBlockUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationBlockUpdate) check() error {
	if v, ok := _u.mutation.Ordinal(); ok {
		if err := conversationblock.OrdinalValidator(v); err != nil {
			return &ValidationError{Name: "ordinal", err: fmt.Errorf(`ent: validator failed for field "ConversationBlock.ordinal": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := conversationblock.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ConversationBlock.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *ConversationBlockUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversationblock.Table, conversationblock.Columns, sqlgraph.NewFieldSpec(conversationblock.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Ordinal(); ok {
		_spec.SetField(conversationblock.FieldOrdinal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrdinal(); ok {
		_spec.AddField(conversationblock.FieldOrdinal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(conversationblock.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(conversationblock.FieldText, field.TypeString, value)
	}
	if _u.mutation.TextCleared() {
		_spec.ClearField(conversationblock.FieldText, field.TypeString)
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(conversationblock.FieldToolName, field.TypeString, value)
	}
	if _u.mutation.ToolNameCleared() {
		_spec.ClearField(conversationblock.FieldToolName, field.TypeString)
	}
	if value, ok := _u.mutation.ToolUseID(); ok {
		_spec.SetField(conversationblock.FieldToolUseID, field.TypeString, value)
	}
	if _u.mutation.ToolUseIDCleared() {
		_spec.ClearField(conversationblock.FieldToolUseID, field.TypeString)
	}
	if value, ok := _u.mutation.ToolInput(); ok {
		_spec.SetField(conversationblock.FieldToolInput, field.TypeJSON, value)
	}
	if _u.mutation.ToolInputCleared() {
		_spec.ClearField(conversationblock.FieldToolInput, field.TypeJSON)
	}
	if value, ok := _u.mutation.ToolResult(); ok {
		_spec.SetField(conversationblock.FieldToolResult, field.TypeJSON, value)
	}
	if _u.mutation.ToolResultCleared() {
		_spec.ClearField(conversationblock.FieldToolResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(conversationblock.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, conversationblock.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(conversationblock.FieldEmbedding, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversationblock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConversationBlockUpdateOne is the builder for updating a single ConversationBlock entity.
type ConversationBlockUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConversationBlockMutation
}

// SetOrdinal sets the "ordinal" field.
func (_u *ConversationBlockUpdateOne) SetOrdinal(v int) *ConversationBlockUpdateOne {
	_u.mutation.ResetOrdinal()
	_u.mutation.SetOrdinal(v)
	return _u
}

// SetNillableOrdinal sets the "ordinal" field if the given value is not nil.
func (_u *ConversationBlockUpdateOne) SetNillableOrdinal(v *int) *ConversationBlockUpdateOne {
	if v != nil {
		_u.SetOrdinal(*v)
	}
	return _u
}

// AddOrdinal adds value to the "ordinal" field.
func (_u *ConversationBlockUpdateOne) AddOrdinal(v int) *ConversationBlockUpdateOne {
	_u.mutation.AddOrdinal(v)
	return _u
}

// SetKind sets the "kind" field.
func (_u *ConversationBlockUpdateOne) SetKind(v conversationblock.Kind) *ConversationBlockUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ConversationBlockUpdateOne) SetNillableKind(v *conversationblock.Kind) *ConversationBlockUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *ConversationBlockUpdateOne) SetText(v string) *ConversationBlockUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ConversationBlockUpdateOne) SetNillableText(v *string) *ConversationBlockUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// ClearText clears the value of the "text" field.
func (_u *ConversationBlockUpdateOne) ClearText() *ConversationBlockUpdateOne {
	_u.mutation.ClearText()
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *ConversationBlockUpdateOne) SetToolName(v string) *ConversationBlockUpdateOne {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *ConversationBlockUpdateOne) SetNillableToolName(v *string) *ConversationBlockUpdateOne {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// ClearToolName clears the value of the "tool_name" field.
func (_u *ConversationBlockUpdateOne) ClearToolName() *ConversationBlockUpdateOne {
	_u.mutation.ClearToolName()
	return _u
}

// SetToolUseID sets the "tool_use_id" field.
func (_u *ConversationBlockUpdateOne) SetToolUseID(v string) *ConversationBlockUpdateOne {
	_u.mutation.SetToolUseID(v)
	return _u
}

// SetNillableToolUseID sets the "tool_use_id" field if the given value is not nil.
func (_u *ConversationBlockUpdateOne) SetNillableToolUseID(v *string) *ConversationBlockUpdateOne {
	if v != nil {
		_u.SetToolUseID(*v)
	}
	return _u
}

// ClearToolUseID clears the value of the "tool_use_id" field.
func (_u *ConversationBlockUpdateOne) ClearToolUseID() *ConversationBlockUpdateOne {
	_u.mutation.ClearToolUseID()
	return _u
}

// SetToolInput sets the "tool_input" field.
func (_u *ConversationBlockUpdateOne) SetToolInput(v map[string]interface{}) *ConversationBlockUpdateOne {
	_u.mutation.SetToolInput(v)
	return _u
}

// ClearToolInput clears the value of the "tool_input" field.
func (_u *ConversationBlockUpdateOne) ClearToolInput() *ConversationBlockUpdateOne {
	_u.mutation.ClearToolInput()
	return _u
}

// SetToolResult sets the "tool_result" field.
func (_u *ConversationBlockUpdateOne) SetToolResult(v map[string]interface{}) *ConversationBlockUpdateOne {
	_u.mutation.SetToolResult(v)
	return _u
}

// ClearToolResult clears the value of the "tool_result" field.
func (_u *ConversationBlockUpdateOne) ClearToolResult() *ConversationBlockUpdateOne {
	_u.mutation.ClearToolResult()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *ConversationBlockUpdateOne) SetEmbedding(v []float64) *ConversationBlockUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *ConversationBlockUpdateOne) AppendEmbedding(v []float64) *ConversationBlockUpdateOne {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *ConversationBlockUpdateOne) ClearEmbedding() *ConversationBlockUpdateOne {
	_u.mutation.ClearEmbedding()
	return _u
}

// Mutation returns the ConversationBlockMutation object of the builder.
func (_u *ConversationBlockUpdateOne) Mutation() *ConversationBlockMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConversationBlockUpdate builder.
func (_u *ConversationBlockUpdateOne) Where(ps ...predicate.ConversationBlock) *ConversationBlockUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConversationBlockUpdateOne) Select(field string, fields ...string) *ConversationBlockUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConversationBlock entity.
func (_u *ConversationBlockUpdateOne) Save(ctx context.Context) (*ConversationBlock, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationBlockUpdateOne) SaveX(ctx context.Context) *ConversationBlock {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConversationBlockUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationBlockUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationBlockUpdateOne) check() error {
	if v, ok := _u.mutation.Ordinal(); ok {
		if err := conversationblock.OrdinalValidator(v); err != nil {
			return &ValidationError{Name: "ordinal", err: fmt.Errorf(`ent: validator failed for field "ConversationBlock.ordinal": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := conversationblock.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ConversationBlock.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *ConversationBlockUpdateOne) sqlSave(ctx context.Context) (_node *ConversationBlock, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversationblock.Table, conversationblock.Columns, sqlgraph.NewFieldSpec(conversationblock.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConversationBlock.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conversationblock.FieldID)
		for _, f := range fields {
			if !conversationblock.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conversationblock.FieldID {
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
	if value, ok := _u.mutation.Ordinal(); ok {
		_spec.SetField(conversationblock.FieldOrdinal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrdinal(); ok {
		_spec.AddField(conversationblock.FieldOrdinal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(conversationblock.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(conversationblock.FieldText, field.TypeString, value)
	}
	if _u.mutation.TextCleared() {
		_spec.ClearField(conversationblock.FieldText, field.TypeString)
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(conversationblock.FieldToolName, field.TypeString, value)
	}
	if _u.mutation.ToolNameCleared() {
		_spec.ClearField(conversationblock.FieldToolName, field.TypeString)
	}
	if value, ok := _u.mutation.ToolUseID(); ok {
		_spec.SetField(conversationblock.FieldToolUseID, field.TypeString, value)
	}
	if _u.mutation.ToolUseIDCleared() {
		_spec.ClearField(conversationblock.FieldToolUseID, field.TypeString)
	}
	if value, ok := _u.mutation.ToolInput(); ok {
		_spec.SetField(conversationblock.FieldToolInput, field.TypeJSON, value)
	}
	if _u.mutation.ToolInputCleared() {
		_spec.ClearField(conversationblock.FieldToolInput, field.TypeJSON)
	}
	if value, ok := _u.mutation.ToolResult(); ok {
		_spec.SetField(conversationblock.FieldToolResult, field.TypeJSON, value)
	}
	if _u.mutation.ToolResultCleared() {
		_spec.ClearField(conversationblock.FieldToolResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(conversationblock.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, conversationblock.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(conversationblock.FieldEmbedding, field.TypeJSON)
	}
	_node = &ConversationBlock{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversationblock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
