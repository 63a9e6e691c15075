// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kestrel-ai/kestrel/ent/queuetask"
)

// QueueTaskCreate is the builder for creating a QueueTask entity.
type QueueTaskCreate struct {
	config
	mutation *QueueTaskMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskType sets the "task_type" field.
func (_c *QueueTaskCreate) SetTaskType(v string) *QueueTaskCreate {
	_c.mutation.SetTaskType(v)
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *QueueTaskCreate) SetModelName(v string) *QueueTaskCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *QueueTaskCreate) SetContent(v string) *QueueTaskCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *QueueTaskCreate) SetNillableContent(v *string) *QueueTaskCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *QueueTaskCreate) SetMetadata(v map[string]interface{}) *QueueTaskCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *QueueTaskCreate) SetPriority(v int) *QueueTaskCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *QueueTaskCreate) SetNillablePriority(v *int) *QueueTaskCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *QueueTaskCreate) SetStatus(v queuetask.Status) *QueueTaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *QueueTaskCreate) SetNillableStatus(v *queuetask.Status) *QueueTaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *QueueTaskCreate) SetSessionID(v string) *QueueTaskCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *QueueTaskCreate) SetNillableSessionID(v *string) *QueueTaskCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *QueueTaskCreate) SetRetryCount(v int) *QueueTaskCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *QueueTaskCreate) SetNillableRetryCount(v *int) *QueueTaskCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *QueueTaskCreate) SetErrorMessage(v string) *QueueTaskCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *QueueTaskCreate) SetNillableErrorMessage(v *string) *QueueTaskCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QueueTaskCreate) SetCreatedAt(v time.Time) *QueueTaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QueueTaskCreate) SetNillableCreatedAt(v *time.Time) *QueueTaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetClaimedAt sets the "claimed_at" field.
func (_c *QueueTaskCreate) SetClaimedAt(v time.Time) *QueueTaskCreate {
	_c.mutation.SetClaimedAt(v)
	return _c
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_c *QueueTaskCreate) SetNillableClaimedAt(v *time.Time) *QueueTaskCreate {
	if v != nil {
		_c.SetClaimedAt(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *QueueTaskCreate) SetProcessedAt(v time.Time) *QueueTaskCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *QueueTaskCreate) SetNillableProcessedAt(v *time.Time) *QueueTaskCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QueueTaskCreate) SetID(v string) *QueueTaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the QueueTaskMutation object of the builder.
func (_c *QueueTaskCreate) Mutation() *QueueTaskMutation {
	return _c.mutation
}

// Save creates the QueueTask in the database.
func (_c *QueueTaskCreate) Save(ctx context.Context) (*QueueTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QueueTaskCreate) SaveX(ctx context.Context) *QueueTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueueTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueueTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QueueTaskCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := queuetask.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := queuetask.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := queuetask.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := queuetask.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QueueTaskCreate) check() error {
	if _, ok := _c.mutation.TaskType(); !ok {
		return &ValidationError{Name: "task_type", err: errors.New(`ent: missing required field "QueueTask.task_type"`)}
	}
	if _, ok := _c.mutation.ModelName(); !ok {
		return &ValidationError{Name: "model_name", err: errors.New(`ent: missing required field "QueueTask.model_name"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "QueueTask.priority"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "QueueTask.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := queuetask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QueueTask.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "QueueTask.retry_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QueueTask.created_at"`)}
	}
	return nil
}

func (_c *QueueTaskCreate) sqlSave(ctx context.Context) (*QueueTask, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected QueueTask.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QueueTaskCreate) createSpec() (*QueueTask, *sqlgraph.CreateSpec) {
	var (
		_node = &QueueTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(queuetask.Table, sqlgraph.NewFieldSpec(queuetask.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TaskType(); ok {
		_spec.SetField(queuetask.FieldTaskType, field.TypeString, value)
		_node.TaskType = value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(queuetask.FieldModelName, field.TypeString, value)
		_node.ModelName = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(queuetask.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(queuetask.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(queuetask.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(queuetask.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(queuetask.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(queuetask.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(queuetask.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(queuetask.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ClaimedAt(); ok {
		_spec.SetField(queuetask.FieldClaimedAt, field.TypeTime, value)
		_node.ClaimedAt = &value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(queuetask.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QueueTask.Create().
//		SetTaskType(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QueueTaskUpsert) {
//			SetTaskType(v+v).
//		}).
//		Exec(ctx)
func (_c *QueueTaskCreate) OnConflict(opts ...sql.ConflictOption) *QueueTaskUpsertOne {
	_c.conflict = opts
	return &QueueTaskUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QueueTask.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QueueTaskCreate) OnConflictColumns(columns ...string) *QueueTaskUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QueueTaskUpsertOne{
		create: _c,
	}
}

type (
	// QueueTaskUpsertOne is the builder for "upsert"-ing
	//  one QueueTask node.
	QueueTaskUpsertOne struct {
		create *QueueTaskCreate
	}

	// QueueTaskUpsert is the "OnConflict" setter.
	QueueTaskUpsert struct {
		*sql.UpdateSet
	}
)

// SetTaskType sets the "task_type" field.
func (u *QueueTaskUpsert) SetTaskType(v string) *QueueTaskUpsert {
	u.Set(queuetask.FieldTaskType, v)
	return u
}

// UpdateTaskType sets the "task_type" field to the value that was provided on create.
func (u *QueueTaskUpsert) UpdateTaskType() *QueueTaskUpsert {
	u.SetExcluded(queuetask.FieldTaskType)
	return u
}

// SetModelName sets the "model_name" field.
func (u *QueueTaskUpsert) SetModelName(v string) *QueueTaskUpsert {
	u.Set(queuetask.FieldModelName, v)
	return u
}

// UpdateModelName sets the "model_name" field to the value that was provided on create.
func (u *QueueTaskUpsert) UpdateModelName() *QueueTaskUpsert {
	u.SetExcluded(queuetask.FieldModelName)
	return u
}

// SetContent sets the "content" field.
func (u *QueueTaskUpsert) SetContent(v string) *QueueTaskUpsert {
	u.Set(queuetask.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *QueueTaskUpsert) UpdateContent() *QueueTaskUpsert {
	u.SetExcluded(queuetask.FieldContent)
	return u
}

// ClearContent clears the value of the "content" field.
func (u *QueueTaskUpsert) ClearContent() *QueueTaskUpsert {
	u.SetNull(queuetask.FieldContent)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *QueueTaskUpsert) SetMetadata(v map[string]interface{}) *QueueTaskUpsert {
	u.Set(queuetask.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *QueueTaskUpsert) UpdateMetadata() *QueueTaskUpsert {
	u.SetExcluded(queuetask.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *QueueTaskUpsert) ClearMetadata() *QueueTaskUpsert {
	u.SetNull(queuetask.FieldMetadata)
	return u
}

// SetPriority sets the "priority" field.
func (u *QueueTaskUpsert) SetPriority(v int) *QueueTaskUpsert {
	u.Set(queuetask.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *QueueTaskUpsert) UpdatePriority() *QueueTaskUpsert {
	u.SetExcluded(queuetask.FieldPriority)
	return u
}

// AddPriority adds v to the "priority" field.
func (u *QueueTaskUpsert) AddPriority(v int) *QueueTaskUpsert {
	u.Add(queuetask.FieldPriority, v)
	return u
}

// SetStatus sets the "status" field.
func (u *QueueTaskUpsert) SetStatus(v queuetask.Status) *QueueTaskUpsert {
	u.Set(queuetask.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *QueueTaskUpsert) UpdateStatus() *QueueTaskUpsert {
	u.SetExcluded(queuetask.FieldStatus)
	return u
}

// SetSessionID sets the "session_id" field.
func (u *QueueTaskUpsert) SetSessionID(v string) *QueueTaskUpsert {
	u.Set(queuetask.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *QueueTaskUpsert) UpdateSessionID() *QueueTaskUpsert {
	u.SetExcluded(queuetask.FieldSessionID)
	return u
}

// ClearSessionID clears the value of the "session_id" field.
func (u *QueueTaskUpsert) ClearSessionID() *QueueTaskUpsert {
	u.SetNull(queuetask.FieldSessionID)
	return u
}

// SetRetryCount sets the "retry_count" field.
func (u *QueueTaskUpsert) SetRetryCount(v int) *QueueTaskUpsert {
	u.Set(queuetask.FieldRetryCount, v)
	return u
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *QueueTaskUpsert) UpdateRetryCount() *QueueTaskUpsert {
	u.SetExcluded(queuetask.FieldRetryCount)
	return u
}

// AddRetryCount adds v to the "retry_count" field.
func (u *QueueTaskUpsert) AddRetryCount(v int) *QueueTaskUpsert {
	u.Add(queuetask.FieldRetryCount, v)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *QueueTaskUpsert) SetErrorMessage(v string) *QueueTaskUpsert {
	u.Set(queuetask.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *QueueTaskUpsert) UpdateErrorMessage() *QueueTaskUpsert {
	u.SetExcluded(queuetask.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *QueueTaskUpsert) ClearErrorMessage() *QueueTaskUpsert {
	u.SetNull(queuetask.FieldErrorMessage)
	return u
}

// SetClaimedAt sets the "claimed_at" field.
func (u *QueueTaskUpsert) SetClaimedAt(v time.Time) *QueueTaskUpsert {
	u.Set(queuetask.FieldClaimedAt, v)
	return u
}

// UpdateClaimedAt sets the "claimed_at" field to the value that was provided on create.
func (u *QueueTaskUpsert) UpdateClaimedAt() *QueueTaskUpsert {
	u.SetExcluded(queuetask.FieldClaimedAt)
	return u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (u *QueueTaskUpsert) ClearClaimedAt() *QueueTaskUpsert {
	u.SetNull(queuetask.FieldClaimedAt)
	return u
}

// SetProcessedAt sets the "processed_at" field.
func (u *QueueTaskUpsert) SetProcessedAt(v time.Time) *QueueTaskUpsert {
	u.Set(queuetask.FieldProcessedAt, v)
	return u
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *QueueTaskUpsert) UpdateProcessedAt() *QueueTaskUpsert {
	u.SetExcluded(queuetask.FieldProcessedAt)
	return u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *QueueTaskUpsert) ClearProcessedAt() *QueueTaskUpsert {
	u.SetNull(queuetask.FieldProcessedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.QueueTask.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(queuetask.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QueueTaskUpsertOne) UpdateNewValues() *QueueTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(queuetask.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(queuetask.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QueueTask.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QueueTaskUpsertOne) Ignore() *QueueTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QueueTaskUpsertOne) DoNothing() *QueueTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QueueTaskCreate.OnConflict
// documentation for more info.
func (u *QueueTaskUpsertOne) Update(set func(*QueueTaskUpsert)) *QueueTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QueueTaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetTaskType sets the "task_type" field.
func (u *QueueTaskUpsertOne) SetTaskType(v string) *QueueTaskUpsertOne {
	return u.Update(func(s *QueueTaskUpsert) {
		s.SetTaskType(v)
	})
}

// UpdateTaskType sets the "task_type" field to the value that was provided on create.
func (u *QueueTaskUpsertOne) UpdateTaskType() *QueueTaskUpsertOne {
	return u.Update(func(s *QueueTaskUpsert) {
		s.UpdateTaskType()
	})
}

// SetModelName sets the "model_name" field.
func (u *QueueTaskUpsertOne) SetModelName(v string) *QueueTaskUpsertOne {
	return u.Update(func(s *QueueTaskUpsert) {
		s.SetModelName(v)
	})
}

// UpdateModelName sets the "model_name" field to the value that was provided on create.
func (u *QueueTaskUpsertOne) UpdateModelName() *QueueTaskUpsertOne {
	return u.Update(func(s *QueueTaskUpsert) {
		s.UpdateModelName()
	})
}

// SetContent sets the "content" field.
func (u *QueueTaskUpsertOne) SetContent(v string) *QueueTaskUpsertOne {
	return u.Update(func(s *QueueTaskUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *QueueTaskUpsertOne) UpdateContent() *QueueTaskUpsertOne {
	return u.Update(func(s *QueueTaskUpsert) {
		s.UpdateContent()
	})
}

// ClearContent clears the value of the "content" field.
func (u *QueueTaskUpsertOne) ClearContent() *QueueTaskUpsertOne {
	return u.Update(func(s *QueueTaskUpsert) {
		s.ClearContent()
	})
}

// SetMetadata sets the "metadata" field.
func (u *QueueTaskUpsertOne) SetMetadata(v map[string]interface{}) *QueueTaskUpsertOne {
	return u.Update(func(s *QueueTaskUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *QueueTaskUpsertOne) UpdateMetadata() *QueueTaskUpsertOne {
	return u.Update(func(s *QueueTaskUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *QueueTaskUpsertOne) ClearMetadata() *QueueTaskUpsertOne {
	return u.Update(func(s *QueueTaskUpsert) {
		s.ClearMetadata()
	})
}

// SetPriority sets the "priority" field.
func (u *QueueTaskUpsertOne) SetPriority(v int) *QueueTaskUpsertOne {
	return u.Update(func(s *QueueTaskUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *QueueTaskUpsertOne) AddPriority(v int) *QueueTaskUpsertOne {
	return u.Update(func(s *QueueTaskUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *QueueTaskUpsertOne) UpdatePriority() *QueueTaskUpsertOne {
	return u.Update(func(s *QueueTaskUpsert) {
		s.UpdatePriority()
	})
}

// SetStatus sets the "status" field.
func (u *QueueTaskUpsertOne) SetStatus(v queuetask.Status) *QueueTaskUpsertOne {
	return u.Update(func(s *QueueTaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *QueueTaskUpsertOne) UpdateStatus() *QueueTaskUpsertOne {
	return u.Update(func(s *QueueTaskUpsert) {
		s.UpdateStatus()
	})
}

// SetSessionID sets the "session_id" field.
func (u *QueueTaskUpsertOne) SetSessionID(v string) *QueueTaskUpsertOne {
	return u.Update(func(s *QueueTaskUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *QueueTaskUpsertOne) UpdateSessionID() *QueueTaskUpsertOne {
	return u.Update(func(s *QueueTaskUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *QueueTaskUpsertOne) ClearSessionID() *QueueTaskUpsertOne {
	return u.Update(func(s *QueueTaskUpsert) {
		s.ClearSessionID()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *QueueTaskUpsertOne) SetRetryCount(v int) *QueueTaskUpsertOne {
	return u.Update(func(s *QueueTaskUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *QueueTaskUpsertOne) AddRetryCount(v int) *QueueTaskUpsertOne {
	return u.Update(func(s *QueueTaskUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *QueueTaskUpsertOne) UpdateRetryCount() *QueueTaskUpsertOne {
	return u.Update(func(s *QueueTaskUpsert) {
		s.UpdateRetryCount()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *QueueTaskUpsertOne) SetErrorMessage(v string) *QueueTaskUpsertOne {
	return u.Update(func(s *QueueTaskUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *QueueTaskUpsertOne) UpdateErrorMessage() *QueueTaskUpsertOne {
	return u.Update(func(s *QueueTaskUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *QueueTaskUpsertOne) ClearErrorMessage() *QueueTaskUpsertOne {
	return u.Update(func(s *QueueTaskUpsert) {
		s.ClearErrorMessage()
	})
}

// SetClaimedAt sets the "claimed_at" field.
func (u *QueueTaskUpsertOne) SetClaimedAt(v time.Time) *QueueTaskUpsertOne {
	return u.Update(func(s *QueueTaskUpsert) {
		s.SetClaimedAt(v)
	})
}

// UpdateClaimedAt sets the "claimed_at" field to the value that was provided on create.
func (u *QueueTaskUpsertOne) UpdateClaimedAt() *QueueTaskUpsertOne {
	return u.Update(func(s *QueueTaskUpsert) {
		s.UpdateClaimedAt()
	})
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (u *QueueTaskUpsertOne) ClearClaimedAt() *QueueTaskUpsertOne {
	return u.Update(func(s *QueueTaskUpsert) {
		s.ClearClaimedAt()
	})
}

// SetProcessedAt sets the "processed_at" field.
func (u *QueueTaskUpsertOne) SetProcessedAt(v time.Time) *QueueTaskUpsertOne {
	return u.Update(func(s *QueueTaskUpsert) {
		s.SetProcessedAt(v)
	})
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *QueueTaskUpsertOne) UpdateProcessedAt() *QueueTaskUpsertOne {
	return u.Update(func(s *QueueTaskUpsert) {
		s.UpdateProcessedAt()
	})
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *QueueTaskUpsertOne) ClearProcessedAt() *QueueTaskUpsertOne {
	return u.Update(func(s *QueueTaskUpsert) {
		s.ClearProcessedAt()
	})
}

// Exec executes the query.
func (u *QueueTaskUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QueueTaskCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QueueTaskUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QueueTaskUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: QueueTaskUpsertOne.ID is not supported by MySQL driver. Use QueueTaskUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QueueTaskUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QueueTaskCreateBulk is the builder for creating many QueueTask entities in bulk.
type QueueTaskCreateBulk struct {
	config
	err      error
	builders []*QueueTaskCreate
	conflict []sql.ConflictOption
}

// Save creates the QueueTask entities in the database.
func (_c *QueueTaskCreateBulk) Save(ctx context.Context) ([]*QueueTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QueueTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QueueTaskMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QueueTaskCreateBulk) SaveX(ctx context.Context) []*QueueTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueueTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueueTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QueueTask.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QueueTaskUpsert) {
//			SetTaskType(v+v).
//		}).
//		Exec(ctx)
func (_c *QueueTaskCreateBulk) OnConflict(opts ...sql.ConflictOption) *QueueTaskUpsertBulk {
	_c.conflict = opts
	return &QueueTaskUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QueueTask.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QueueTaskCreateBulk) OnConflictColumns(columns ...string) *QueueTaskUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QueueTaskUpsertBulk{
		create: _c,
	}
}

// QueueTaskUpsertBulk is the builder for "upsert"-ing
// a bulk of QueueTask nodes.
type QueueTaskUpsertBulk struct {
	create *QueueTaskCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.QueueTask.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(queuetask.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QueueTaskUpsertBulk) UpdateNewValues() *QueueTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(queuetask.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(queuetask.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QueueTask.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QueueTaskUpsertBulk) Ignore() *QueueTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QueueTaskUpsertBulk) DoNothing() *QueueTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QueueTaskCreateBulk.OnConflict
// documentation for more info.
func (u *QueueTaskUpsertBulk) Update(set func(*QueueTaskUpsert)) *QueueTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QueueTaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetTaskType sets the "task_type" field.
func (u *QueueTaskUpsertBulk) SetTaskType(v string) *QueueTaskUpsertBulk {
	return u.Update(func(s *QueueTaskUpsert) {
		s.SetTaskType(v)
	})
}

// UpdateTaskType sets the "task_type" field to the value that was provided on create.
func (u *QueueTaskUpsertBulk) UpdateTaskType() *QueueTaskUpsertBulk {
	return u.Update(func(s *QueueTaskUpsert) {
		s.UpdateTaskType()
	})
}

// SetModelName sets the "model_name" field.
func (u *QueueTaskUpsertBulk) SetModelName(v string) *QueueTaskUpsertBulk {
	return u.Update(func(s *QueueTaskUpsert) {
		s.SetModelName(v)
	})
}

// UpdateModelName sets the "model_name" field to the value that was provided on create.
func (u *QueueTaskUpsertBulk) UpdateModelName() *QueueTaskUpsertBulk {
	return u.Update(func(s *QueueTaskUpsert) {
		s.UpdateModelName()
	})
}

// SetContent sets the "content" field.
func (u *QueueTaskUpsertBulk) SetContent(v string) *QueueTaskUpsertBulk {
	return u.Update(func(s *QueueTaskUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *QueueTaskUpsertBulk) UpdateContent() *QueueTaskUpsertBulk {
	return u.Update(func(s *QueueTaskUpsert) {
		s.UpdateContent()
	})
}

// ClearContent clears the value of the "content" field.
func (u *QueueTaskUpsertBulk) ClearContent() *QueueTaskUpsertBulk {
	return u.Update(func(s *QueueTaskUpsert) {
		s.ClearContent()
	})
}

// SetMetadata sets the "metadata" field.
func (u *QueueTaskUpsertBulk) SetMetadata(v map[string]interface{}) *QueueTaskUpsertBulk {
	return u.Update(func(s *QueueTaskUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *QueueTaskUpsertBulk) UpdateMetadata() *QueueTaskUpsertBulk {
	return u.Update(func(s *QueueTaskUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *QueueTaskUpsertBulk) ClearMetadata() *QueueTaskUpsertBulk {
	return u.Update(func(s *QueueTaskUpsert) {
		s.ClearMetadata()
	})
}

// SetPriority sets the "priority" field.
func (u *QueueTaskUpsertBulk) SetPriority(v int) *QueueTaskUpsertBulk {
	return u.Update(func(s *QueueTaskUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *QueueTaskUpsertBulk) AddPriority(v int) *QueueTaskUpsertBulk {
	return u.Update(func(s *QueueTaskUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *QueueTaskUpsertBulk) UpdatePriority() *QueueTaskUpsertBulk {
	return u.Update(func(s *QueueTaskUpsert) {
		s.UpdatePriority()
	})
}

// SetStatus sets the "status" field.
func (u *QueueTaskUpsertBulk) SetStatus(v queuetask.Status) *QueueTaskUpsertBulk {
	return u.Update(func(s *QueueTaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *QueueTaskUpsertBulk) UpdateStatus() *QueueTaskUpsertBulk {
	return u.Update(func(s *QueueTaskUpsert) {
		s.UpdateStatus()
	})
}

// SetSessionID sets the "session_id" field.
func (u *QueueTaskUpsertBulk) SetSessionID(v string) *QueueTaskUpsertBulk {
	return u.Update(func(s *QueueTaskUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *QueueTaskUpsertBulk) UpdateSessionID() *QueueTaskUpsertBulk {
	return u.Update(func(s *QueueTaskUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *QueueTaskUpsertBulk) ClearSessionID() *QueueTaskUpsertBulk {
	return u.Update(func(s *QueueTaskUpsert) {
		s.ClearSessionID()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *QueueTaskUpsertBulk) SetRetryCount(v int) *QueueTaskUpsertBulk {
	return u.Update(func(s *QueueTaskUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *QueueTaskUpsertBulk) AddRetryCount(v int) *QueueTaskUpsertBulk {
	return u.Update(func(s *QueueTaskUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *QueueTaskUpsertBulk) UpdateRetryCount() *QueueTaskUpsertBulk {
	return u.Update(func(s *QueueTaskUpsert) {
		s.UpdateRetryCount()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *QueueTaskUpsertBulk) SetErrorMessage(v string) *QueueTaskUpsertBulk {
	return u.Update(func(s *QueueTaskUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *QueueTaskUpsertBulk) UpdateErrorMessage() *QueueTaskUpsertBulk {
	return u.Update(func(s *QueueTaskUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *QueueTaskUpsertBulk) ClearErrorMessage() *QueueTaskUpsertBulk {
	return u.Update(func(s *QueueTaskUpsert) {
		s.ClearErrorMessage()
	})
}

// SetClaimedAt sets the "claimed_at" field.
func (u *QueueTaskUpsertBulk) SetClaimedAt(v time.Time) *QueueTaskUpsertBulk {
	return u.Update(func(s *QueueTaskUpsert) {
		s.SetClaimedAt(v)
	})
}

// UpdateClaimedAt sets the "claimed_at" field to the value that was provided on create.
func (u *QueueTaskUpsertBulk) UpdateClaimedAt() *QueueTaskUpsertBulk {
	return u.Update(func(s *QueueTaskUpsert) {
		s.UpdateClaimedAt()
	})
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (u *QueueTaskUpsertBulk) ClearClaimedAt() *QueueTaskUpsertBulk {
	return u.Update(func(s *QueueTaskUpsert) {
		s.ClearClaimedAt()
	})
}

// SetProcessedAt sets the "processed_at" field.
func (u *QueueTaskUpsertBulk) SetProcessedAt(v time.Time) *QueueTaskUpsertBulk {
	return u.Update(func(s *QueueTaskUpsert) {
		s.SetProcessedAt(v)
	})
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *QueueTaskUpsertBulk) UpdateProcessedAt() *QueueTaskUpsertBulk {
	return u.Update(func(s *QueueTaskUpsert) {
		s.UpdateProcessedAt()
	})
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *QueueTaskUpsertBulk) ClearProcessedAt() *QueueTaskUpsertBulk {
	return u.Update(func(s *QueueTaskUpsert) {
		s.ClearProcessedAt()
	})
}

// Exec executes the query.
func (u *QueueTaskUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the QueueTaskCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QueueTaskCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QueueTaskUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
