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
	"github.com/kestrel-ai/kestrel/ent/missionexecution"
	"github.com/kestrel-ai/kestrel/ent/predicate"
)

// MissionExecutionUpdate is the builder for updating MissionExecution entities.
type MissionExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *MissionExecutionMutation
}

// Where appends a list predicates to the MissionExecutionUpdate builder.
func (_u *MissionExecutionUpdate) Where(ps ...predicate.MissionExecution) *MissionExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *MissionExecutionUpdate) SetStatus(v missionexecution.Status) *MissionExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MissionExecutionUpdate) SetNillableStatus(v *missionexecution.Status) *MissionExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *MissionExecutionUpdate) SetStartedAt(v time.Time) *MissionExecutionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *MissionExecutionUpdate) SetNillableStartedAt(v *time.Time) *MissionExecutionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *MissionExecutionUpdate) ClearStartedAt() *MissionExecutionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *MissionExecutionUpdate) SetCompletedAt(v time.Time) *MissionExecutionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *MissionExecutionUpdate) SetNillableCompletedAt(v *time.Time) *MissionExecutionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *MissionExecutionUpdate) ClearCompletedAt() *MissionExecutionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetOutput sets the "output" field.
func (_u *MissionExecutionUpdate) SetOutput(v string) *MissionExecutionUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *MissionExecutionUpdate) SetNillableOutput(v *string) *MissionExecutionUpdate {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *MissionExecutionUpdate) ClearOutput() *MissionExecutionUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetStructuredOutput sets the "structured_output" field.
func (_u *MissionExecutionUpdate) SetStructuredOutput(v map[string]interface{}) *MissionExecutionUpdate {
	_u.mutation.SetStructuredOutput(v)
	return _u
}

// ClearStructuredOutput clears the value of the "structured_output" field.
func (_u *MissionExecutionUpdate) ClearStructuredOutput() *MissionExecutionUpdate {
	_u.mutation.ClearStructuredOutput()
	return _u
}

// SetToolCount sets the "tool_count" field.
func (_u *MissionExecutionUpdate) SetToolCount(v int) *MissionExecutionUpdate {
	_u.mutation.ResetToolCount()
	_u.mutation.SetToolCount(v)
	return _u
}

// SetNillableToolCount sets the "tool_count" field if the given value is not nil.
func (_u *MissionExecutionUpdate) SetNillableToolCount(v *int) *MissionExecutionUpdate {
	if v != nil {
		_u.SetToolCount(*v)
	}
	return _u
}

// AddToolCount adds value to the "tool_count" field.
func (_u *MissionExecutionUpdate) AddToolCount(v int) *MissionExecutionUpdate {
	_u.mutation.AddToolCount(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *MissionExecutionUpdate) SetErrorMessage(v string) *MissionExecutionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *MissionExecutionUpdate) SetNillableErrorMessage(v *string) *MissionExecutionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *MissionExecutionUpdate) ClearErrorMessage() *MissionExecutionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the MissionExecutionMutation object of the builder.
func (_u *MissionExecutionUpdate) Mutation() *MissionExecutionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MissionExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MissionExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MissionExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MissionExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MissionExecutionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := missionexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MissionExecution.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MissionExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(missionexecution.Table, missionexecution.Columns, sqlgraph.NewFieldSpec(missionexecution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(missionexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(missionexecution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(missionexecution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(missionexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(missionexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(missionexecution.FieldOutput, field.TypeString, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(missionexecution.FieldOutput, field.TypeString)
	}
	if value, ok := _u.mutation.StructuredOutput(); ok {
		_spec.SetField(missionexecution.FieldStructuredOutput, field.TypeJSON, value)
	}
	if _u.mutation.StructuredOutputCleared() {
		_spec.ClearField(missionexecution.FieldStructuredOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.ToolCount(); ok {
		_spec.SetField(missionexecution.FieldToolCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedToolCount(); ok {
		_spec.AddField(missionexecution.FieldToolCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(missionexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(missionexecution.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{missionexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MissionExecutionUpdateOne is the builder for updating a single MissionExecution entity.
type MissionExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MissionExecutionMutation
}

// SetStatus sets the "status" field.
func (_u *MissionExecutionUpdateOne) SetStatus(v missionexecution.Status) *MissionExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MissionExecutionUpdateOne) SetNillableStatus(v *missionexecution.Status) *MissionExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *MissionExecutionUpdateOne) SetStartedAt(v time.Time) *MissionExecutionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *MissionExecutionUpdateOne) SetNillableStartedAt(v *time.Time) *MissionExecutionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *MissionExecutionUpdateOne) ClearStartedAt() *MissionExecutionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *MissionExecutionUpdateOne) SetCompletedAt(v time.Time) *MissionExecutionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *MissionExecutionUpdateOne) SetNillableCompletedAt(v *time.Time) *MissionExecutionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *MissionExecutionUpdateOne) ClearCompletedAt() *MissionExecutionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetOutput sets the "output" field.
func (_u *MissionExecutionUpdateOne) SetOutput(v string) *MissionExecutionUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *MissionExecutionUpdateOne) SetNillableOutput(v *string) *MissionExecutionUpdateOne {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *MissionExecutionUpdateOne) ClearOutput() *MissionExecutionUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetStructuredOutput sets the "structured_output" field.
func (_u *MissionExecutionUpdateOne) SetStructuredOutput(v map[string]interface{}) *MissionExecutionUpdateOne {
	_u.mutation.SetStructuredOutput(v)
	return _u
}

// ClearStructuredOutput clears the value of the "structured_output" field.
func (_u *MissionExecutionUpdateOne) ClearStructuredOutput() *MissionExecutionUpdateOne {
	_u.mutation.ClearStructuredOutput()
	return _u
}

// SetToolCount sets the "tool_count" field.
func (_u *MissionExecutionUpdateOne) SetToolCount(v int) *MissionExecutionUpdateOne {
	_u.mutation.ResetToolCount()
	_u.mutation.SetToolCount(v)
	return _u
}

// SetNillableToolCount sets the "tool_count" field if the given value is not nil.
func (_u *MissionExecutionUpdateOne) SetNillableToolCount(v *int) *MissionExecutionUpdateOne {
	if v != nil {
		_u.SetToolCount(*v)
	}
	return _u
}

// AddToolCount adds value to the "tool_count" field.
func (_u *MissionExecutionUpdateOne) AddToolCount(v int) *MissionExecutionUpdateOne {
	_u.mutation.AddToolCount(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *MissionExecutionUpdateOne) SetErrorMessage(v string) *MissionExecutionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *MissionExecutionUpdateOne) SetNillableErrorMessage(v *string) *MissionExecutionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *MissionExecutionUpdateOne) ClearErrorMessage() *MissionExecutionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the MissionExecutionMutation object of the builder.
func (_u *MissionExecutionUpdateOne) Mutation() *MissionExecutionMutation {
	return _u.mutation
}

// Where appends a list predicates to the MissionExecutionUpdate builder.
func (_u *MissionExecutionUpdateOne) Where(ps ...predicate.MissionExecution) *MissionExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MissionExecutionUpdateOne) Select(field string, fields ...string) *MissionExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MissionExecution entity.
func (_u *MissionExecutionUpdateOne) Save(ctx context.Context) (*MissionExecution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MissionExecutionUpdateOne) SaveX(ctx context.Context) *MissionExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MissionExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MissionExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MissionExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := missionexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MissionExecution.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MissionExecutionUpdateOne) sqlSave(ctx context.Context) (_node *MissionExecution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(missionexecution.Table, missionexecution.Columns, sqlgraph.NewFieldSpec(missionexecution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MissionExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, missionexecution.FieldID)
		for _, f := range fields {
			if !missionexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != missionexecution.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(missionexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(missionexecution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(missionexecution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(missionexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(missionexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(missionexecution.FieldOutput, field.TypeString, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(missionexecution.FieldOutput, field.TypeString)
	}
	if value, ok := _u.mutation.StructuredOutput(); ok {
		_spec.SetField(missionexecution.FieldStructuredOutput, field.TypeJSON, value)
	}
	if _u.mutation.StructuredOutputCleared() {
		_spec.ClearField(missionexecution.FieldStructuredOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.ToolCount(); ok {
		_spec.SetField(missionexecution.FieldToolCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedToolCount(); ok {
		_spec.AddField(missionexecution.FieldToolCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(missionexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(missionexecution.FieldErrorMessage, field.TypeString)
	}
	_node = &MissionExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{missionexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
