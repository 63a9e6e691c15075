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
	"github.com/kestrel-ai/kestrel/ent/conversation"
	"github.com/kestrel-ai/kestrel/ent/predicate"
)

// ConversationUpdate is the builder for updating Conversation entities.
type ConversationUpdate struct {
	config
	hooks    []Hook
	mutation *ConversationMutation
}

// Where appends a list predicates to the ConversationUpdate builder.
func (_u *ConversationUpdate) Where(ps ...predicate.Conversation) *ConversationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRole sets the "role" field.
func (_u *ConversationUpdate) SetRole(v conversation.Role) *ConversationUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableRole(v *conversation.Role) *ConversationUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *ConversationUpdate) SetPrompt(v string) *ConversationUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillablePrompt(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetMedium sets the "medium" field.
func (_u *ConversationUpdate) SetMedium(v string) *ConversationUpdate {
	_u.mutation.SetMedium(v)
	return _u
}

// SetNillableMedium sets the "medium" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableMedium(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetMedium(*v)
	}
	return _u
}

// ClearMedium clears the value of the "medium" field.
func (_u *ConversationUpdate) ClearMedium() *ConversationUpdate {
	_u.mutation.ClearMedium()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ConversationUpdate) SetUserID(v string) *ConversationUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableUserID(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *ConversationUpdate) ClearUserID() *ConversationUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *ConversationUpdate) SetLatencyMs(v int) *ConversationUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableLatencyMs(v *int) *ConversationUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *ConversationUpdate) AddLatencyMs(v int) *ConversationUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// ClearLatencyMs clears the value of the "latency_ms" field.
func (_u *ConversationUpdate) ClearLatencyMs() *ConversationUpdate {
	_u.mutation.ClearLatencyMs()
	return _u
}

// SetToolNames sets the "tool_names" field.
func (_u *ConversationUpdate) SetToolNames(v []string) *ConversationUpdate {
	_u.mutation.SetToolNames(v)
	return _u
}

// AppendToolNames appends value to the "tool_names" field.
func (_u *ConversationUpdate) AppendToolNames(v []string) *ConversationUpdate {
	_u.mutation.AppendToolNames(v)
	return _u
}

// ClearToolNames clears the value of the "tool_names" field.
func (_u *ConversationUpdate) ClearToolNames() *ConversationUpdate {
	_u.mutation.ClearToolNames()
	return _u
}

// Mutation returns the ConversationMutation object of the builder.
func (_u *ConversationUpdate) Mutation() *ConversationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConversationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConversationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := conversation.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Conversation.role": %w`, err)}
		}
	}
	return nil
}

func (_u *ConversationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversation.Table, conversation.Columns, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(conversation.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(conversation.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Medium(); ok {
		_spec.SetField(conversation.FieldMedium, field.TypeString, value)
	}
	if _u.mutation.MediumCleared() {
		_spec.ClearField(conversation.FieldMedium, field.TypeString)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(conversation.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(conversation.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(conversation.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(conversation.FieldLatencyMs, field.TypeInt, value)
	}
	if _u.mutation.LatencyMsCleared() {
		_spec.ClearField(conversation.FieldLatencyMs, field.TypeInt)
	}
	if value, ok := _u.mutation.ToolNames(); ok {
		_spec.SetField(conversation.FieldToolNames, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToolNames(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, conversation.FieldToolNames, value)
		})
	}
	if _u.mutation.ToolNamesCleared() {
		_spec.ClearField(conversation.FieldToolNames, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConversationUpdateOne is the builder for updating a single Conversation entity.
type ConversationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConversationMutation
}

// SetRole sets the "role" field.
func (_u *ConversationUpdateOne) SetRole(v conversation.Role) *ConversationUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableRole(v *conversation.Role) *ConversationUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *ConversationUpdateOne) SetPrompt(v string) *ConversationUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillablePrompt(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetMedium sets the "medium" field.
func (_u *ConversationUpdateOne) SetMedium(v string) *ConversationUpdateOne {
	_u.mutation.SetMedium(v)
	return _u
}

// SetNillableMedium sets the "medium" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableMedium(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetMedium(*v)
	}
	return _u
}

// ClearMedium clears the value of the "medium" field.
func (_u *ConversationUpdateOne) ClearMedium() *ConversationUpdateOne {
	_u.mutation.ClearMedium()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ConversationUpdateOne) SetUserID(v string) *ConversationUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableUserID(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *ConversationUpdateOne) ClearUserID() *ConversationUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *ConversationUpdateOne) SetLatencyMs(v int) *ConversationUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableLatencyMs(v *int) *ConversationUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *ConversationUpdateOne) AddLatencyMs(v int) *ConversationUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// ClearLatencyMs clears the value of the "latency_ms" field.
func (_u *ConversationUpdateOne) ClearLatencyMs() *ConversationUpdateOne {
	_u.mutation.ClearLatencyMs()
	return _u
}

// SetToolNames sets the "tool_names" field.
func (_u *ConversationUpdateOne) SetToolNames(v []string) *ConversationUpdateOne {
	_u.mutation.SetToolNames(v)
	return _u
}

// AppendToolNames appends value to the "tool_names" field.
func (_u *ConversationUpdateOne) AppendToolNames(v []string) *ConversationUpdateOne {
	_u.mutation.AppendToolNames(v)
	return _u
}

// ClearToolNames clears the value of the "tool_names" field.
func (_u *ConversationUpdateOne) ClearToolNames() *ConversationUpdateOne {
	_u.mutation.ClearToolNames()
	return _u
}

// Mutation returns the ConversationMutation object of the builder.
func (_u *ConversationUpdateOne) Mutation() *ConversationMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConversationUpdate builder.
func (_u *ConversationUpdateOne) Where(ps ...predicate.Conversation) *ConversationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConversationUpdateOne) Select(field string, fields ...string) *ConversationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Conversation entity.
func (_u *ConversationUpdateOne) Save(ctx context.Context) (*Conversation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationUpdateOne) SaveX(ctx context.Context) *Conversation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConversationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := conversation.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Conversation.role": %w`, err)}
		}
	}
	return nil
}

func (_u *ConversationUpdateOne) sqlSave(ctx context.Context) (_node *Conversation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversation.Table, conversation.Columns, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Conversation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conversation.FieldID)
		for _, f := range fields {
			if !conversation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conversation.FieldID {
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
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(conversation.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(conversation.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Medium(); ok {
		_spec.SetField(conversation.FieldMedium, field.TypeString, value)
	}
	if _u.mutation.MediumCleared() {
		_spec.ClearField(conversation.FieldMedium, field.TypeString)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(conversation.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(conversation.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(conversation.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(conversation.FieldLatencyMs, field.TypeInt, value)
	}
	if _u.mutation.LatencyMsCleared() {
		_spec.ClearField(conversation.FieldLatencyMs, field.TypeInt)
	}
	if value, ok := _u.mutation.ToolNames(); ok {
		_spec.SetField(conversation.FieldToolNames, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToolNames(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, conversation.FieldToolNames, value)
		})
	}
	if _u.mutation.ToolNamesCleared() {
		_spec.ClearField(conversation.FieldToolNames, field.TypeJSON)
	}
	_node = &Conversation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
