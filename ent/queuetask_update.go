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
	"github.com/kestrel-ai/kestrel/ent/predicate"
	"github.com/kestrel-ai/kestrel/ent/queuetask"
)

// QueueTaskUpdate is the builder for updating QueueTask entities.
type QueueTaskUpdate struct {
	config
	hooks    []Hook
	mutation *QueueTaskMutation
}

// Where appends a list predicates to the QueueTaskUpdate builder.
func (_u *QueueTaskUpdate) Where(ps ...predicate.QueueTask) *QueueTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskType sets the "task_type" field.
func (_u *QueueTaskUpdate) SetTaskType(v string) *QueueTaskUpdate {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *QueueTaskUpdate) SetNillableTaskType(v *string) *QueueTaskUpdate {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *QueueTaskUpdate) SetModelName(v string) *QueueTaskUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *QueueTaskUpdate) SetNillableModelName(v *string) *QueueTaskUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *QueueTaskUpdate) SetContent(v string) *QueueTaskUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *QueueTaskUpdate) SetNillableContent(v *string) *QueueTaskUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *QueueTaskUpdate) ClearContent() *QueueTaskUpdate {
	_u.mutation.ClearContent()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *QueueTaskUpdate) SetMetadata(v map[string]interface{}) *QueueTaskUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *QueueTaskUpdate) ClearMetadata() *QueueTaskUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *QueueTaskUpdate) SetPriority(v int) *QueueTaskUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *QueueTaskUpdate) SetNillablePriority(v *int) *QueueTaskUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *QueueTaskUpdate) AddPriority(v int) *QueueTaskUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *QueueTaskUpdate) SetStatus(v queuetask.Status) *QueueTaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QueueTaskUpdate) SetNillableStatus(v *queuetask.Status) *QueueTaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *QueueTaskUpdate) SetSessionID(v string) *QueueTaskUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QueueTaskUpdate) SetNillableSessionID(v *string) *QueueTaskUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *QueueTaskUpdate) ClearSessionID() *QueueTaskUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *QueueTaskUpdate) SetRetryCount(v int) *QueueTaskUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *QueueTaskUpdate) SetNillableRetryCount(v *int) *QueueTaskUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *QueueTaskUpdate) AddRetryCount(v int) *QueueTaskUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *QueueTaskUpdate) SetErrorMessage(v string) *QueueTaskUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *QueueTaskUpdate) SetNillableErrorMessage(v *string) *QueueTaskUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *QueueTaskUpdate) ClearErrorMessage() *QueueTaskUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *QueueTaskUpdate) SetClaimedAt(v time.Time) *QueueTaskUpdate {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *QueueTaskUpdate) SetNillableClaimedAt(v *time.Time) *QueueTaskUpdate {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *QueueTaskUpdate) ClearClaimedAt() *QueueTaskUpdate {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *QueueTaskUpdate) SetProcessedAt(v time.Time) *QueueTaskUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *QueueTaskUpdate) SetNillableProcessedAt(v *time.Time) *QueueTaskUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *QueueTaskUpdate) ClearProcessedAt() *QueueTaskUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// Mutation returns the QueueTaskMutation object of the builder.
func (_u *QueueTaskUpdate) Mutation() *QueueTaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QueueTaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueueTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QueueTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueueTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QueueTaskUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := queuetask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QueueTask.status": %w`, err)}
		}
	}
	return nil
}

func (_u *QueueTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(queuetask.Table, queuetask.Columns, sqlgraph.NewFieldSpec(queuetask.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(queuetask.FieldTaskType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(queuetask.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(queuetask.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(queuetask.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(queuetask.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(queuetask.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(queuetask.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(queuetask.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(queuetask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(queuetask.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(queuetask.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(queuetask.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(queuetask.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(queuetask.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(queuetask.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(queuetask.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(queuetask.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(queuetask.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(queuetask.FieldProcessedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queuetask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QueueTaskUpdateOne is the builder for updating a single QueueTask entity.
type QueueTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QueueTaskMutation
}

// SetTaskType sets the "task_type" field.
func (_u *QueueTaskUpdateOne) SetTaskType(v string) *QueueTaskUpdateOne {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *QueueTaskUpdateOne) SetNillableTaskType(v *string) *QueueTaskUpdateOne {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *QueueTaskUpdateOne) SetModelName(v string) *QueueTaskUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *QueueTaskUpdateOne) SetNillableModelName(v *string) *QueueTaskUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *QueueTaskUpdateOne) SetContent(v string) *QueueTaskUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *QueueTaskUpdateOne) SetNillableContent(v *string) *QueueTaskUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *QueueTaskUpdateOne) ClearContent() *QueueTaskUpdateOne {
	_u.mutation.ClearContent()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *QueueTaskUpdateOne) SetMetadata(v map[string]interface{}) *QueueTaskUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *QueueTaskUpdateOne) ClearMetadata() *QueueTaskUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *QueueTaskUpdateOne) SetPriority(v int) *QueueTaskUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *QueueTaskUpdateOne) SetNillablePriority(v *int) *QueueTaskUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *QueueTaskUpdateOne) AddPriority(v int) *QueueTaskUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *QueueTaskUpdateOne) SetStatus(v queuetask.Status) *QueueTaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QueueTaskUpdateOne) SetNillableStatus(v *queuetask.Status) *QueueTaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *QueueTaskUpdateOne) SetSessionID(v string) *QueueTaskUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QueueTaskUpdateOne) SetNillableSessionID(v *string) *QueueTaskUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *QueueTaskUpdateOne) ClearSessionID() *QueueTaskUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *QueueTaskUpdateOne) SetRetryCount(v int) *QueueTaskUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *QueueTaskUpdateOne) SetNillableRetryCount(v *int) *QueueTaskUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *QueueTaskUpdateOne) AddRetryCount(v int) *QueueTaskUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *QueueTaskUpdateOne) SetErrorMessage(v string) *QueueTaskUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *QueueTaskUpdateOne) SetNillableErrorMessage(v *string) *QueueTaskUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *QueueTaskUpdateOne) ClearErrorMessage() *QueueTaskUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *QueueTaskUpdateOne) SetClaimedAt(v time.Time) *QueueTaskUpdateOne {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *QueueTaskUpdateOne) SetNillableClaimedAt(v *time.Time) *QueueTaskUpdateOne {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *QueueTaskUpdateOne) ClearClaimedAt() *QueueTaskUpdateOne {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *QueueTaskUpdateOne) SetProcessedAt(v time.Time) *QueueTaskUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *QueueTaskUpdateOne) SetNillableProcessedAt(v *time.Time) *QueueTaskUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *QueueTaskUpdateOne) ClearProcessedAt() *QueueTaskUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// Mutation returns the QueueTaskMutation object of the builder.
func (_u *QueueTaskUpdateOne) Mutation() *QueueTaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the QueueTaskUpdate builder.
func (_u *QueueTaskUpdateOne) Where(ps ...predicate.QueueTask) *QueueTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QueueTaskUpdateOne) Select(field string, fields ...string) *QueueTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QueueTask entity.
func (_u *QueueTaskUpdateOne) Save(ctx context.Context) (*QueueTask, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueueTaskUpdateOne) SaveX(ctx context.Context) *QueueTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QueueTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueueTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QueueTaskUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := queuetask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QueueTask.status": %w`, err)}
		}
	}
	return nil
}

func (_u *QueueTaskUpdateOne) sqlSave(ctx context.Context) (_node *QueueTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(queuetask.Table, queuetask.Columns, sqlgraph.NewFieldSpec(queuetask.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QueueTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, queuetask.FieldID)
		for _, f := range fields {
			if !queuetask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != queuetask.FieldID {
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
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(queuetask.FieldTaskType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(queuetask.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(queuetask.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(queuetask.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(queuetask.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(queuetask.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(queuetask.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(queuetask.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(queuetask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(queuetask.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(queuetask.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(queuetask.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(queuetask.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(queuetask.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(queuetask.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(queuetask.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(queuetask.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(queuetask.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(queuetask.FieldProcessedAt, field.TypeTime)
	}
	_node = &QueueTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queuetask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
