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
	"github.com/kestrel-ai/kestrel/ent/projecttask"
)

// ProjectTaskCreate is the builder for creating a ProjectTask entity.
type ProjectTaskCreate struct {
	config
	mutation *ProjectTaskMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkingDir sets the "working_dir" field.
func (_c *ProjectTaskCreate) SetWorkingDir(v string) *ProjectTaskCreate {
	_c.mutation.SetWorkingDir(v)
	return _c
}

// SetNillableWorkingDir sets the "working_dir" field if the given value is not nil.
func (_c *ProjectTaskCreate) SetNillableWorkingDir(v *string) *ProjectTaskCreate {
	if v != nil {
		_c.SetWorkingDir(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *ProjectTaskCreate) SetTitle(v string) *ProjectTaskCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ProjectTaskCreate) SetDescription(v string) *ProjectTaskCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ProjectTaskCreate) SetNillableDescription(v *string) *ProjectTaskCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetAcceptanceCriteria sets the "acceptance_criteria" field.
func (_c *ProjectTaskCreate) SetAcceptanceCriteria(v string) *ProjectTaskCreate {
	_c.mutation.SetAcceptanceCriteria(v)
	return _c
}

// SetNillableAcceptanceCriteria sets the "acceptance_criteria" field if the given value is not nil.
func (_c *ProjectTaskCreate) SetNillableAcceptanceCriteria(v *string) *ProjectTaskCreate {
	if v != nil {
		_c.SetAcceptanceCriteria(*v)
	}
	return _c
}

// SetScopePaths sets the "scope_paths" field.
func (_c *ProjectTaskCreate) SetScopePaths(v []string) *ProjectTaskCreate {
	_c.mutation.SetScopePaths(v)
	return _c
}

// SetRequiredTools sets the "required_tools" field.
func (_c *ProjectTaskCreate) SetRequiredTools(v []string) *ProjectTaskCreate {
	_c.mutation.SetRequiredTools(v)
	return _c
}

// SetTaskType sets the "task_type" field.
func (_c *ProjectTaskCreate) SetTaskType(v string) *ProjectTaskCreate {
	_c.mutation.SetTaskType(v)
	return _c
}

// SetTags sets the "tags" field.
func (_c *ProjectTaskCreate) SetTags(v []string) *ProjectTaskCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *ProjectTaskCreate) SetPriority(v int) *ProjectTaskCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *ProjectTaskCreate) SetNillablePriority(v *int) *ProjectTaskCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProjectTaskCreate) SetStatus(v projecttask.Status) *ProjectTaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ProjectTaskCreate) SetNillableStatus(v *projecttask.Status) *ProjectTaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ProjectTaskCreate) SetUserID(v string) *ProjectTaskCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *ProjectTaskCreate) SetNillableUserID(v *string) *ProjectTaskCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetClaimSessionID sets the "claim_session_id" field.
func (_c *ProjectTaskCreate) SetClaimSessionID(v string) *ProjectTaskCreate {
	_c.mutation.SetClaimSessionID(v)
	return _c
}

// SetNillableClaimSessionID sets the "claim_session_id" field if the given value is not nil.
func (_c *ProjectTaskCreate) SetNillableClaimSessionID(v *string) *ProjectTaskCreate {
	if v != nil {
		_c.SetClaimSessionID(*v)
	}
	return _c
}

// SetClaimAgentID sets the "claim_agent_id" field.
func (_c *ProjectTaskCreate) SetClaimAgentID(v string) *ProjectTaskCreate {
	_c.mutation.SetClaimAgentID(v)
	return _c
}

// SetNillableClaimAgentID sets the "claim_agent_id" field if the given value is not nil.
func (_c *ProjectTaskCreate) SetNillableClaimAgentID(v *string) *ProjectTaskCreate {
	if v != nil {
		_c.SetClaimAgentID(*v)
	}
	return _c
}

// SetClaimedAt sets the "claimed_at" field.
func (_c *ProjectTaskCreate) SetClaimedAt(v time.Time) *ProjectTaskCreate {
	_c.mutation.SetClaimedAt(v)
	return _c
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_c *ProjectTaskCreate) SetNillableClaimedAt(v *time.Time) *ProjectTaskCreate {
	if v != nil {
		_c.SetClaimedAt(*v)
	}
	return _c
}

// SetAttemptCount sets the "attempt_count" field.
func (_c *ProjectTaskCreate) SetAttemptCount(v int) *ProjectTaskCreate {
	_c.mutation.SetAttemptCount(v)
	return _c
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_c *ProjectTaskCreate) SetNillableAttemptCount(v *int) *ProjectTaskCreate {
	if v != nil {
		_c.SetAttemptCount(*v)
	}
	return _c
}

// SetBlockedBy sets the "blocked_by" field.
func (_c *ProjectTaskCreate) SetBlockedBy(v []string) *ProjectTaskCreate {
	_c.mutation.SetBlockedBy(v)
	return _c
}

// SetRelatedTaskIds sets the "related_task_ids" field.
func (_c *ProjectTaskCreate) SetRelatedTaskIds(v []string) *ProjectTaskCreate {
	_c.mutation.SetRelatedTaskIds(v)
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *ProjectTaskCreate) SetOutcome(v string) *ProjectTaskCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_c *ProjectTaskCreate) SetNillableOutcome(v *string) *ProjectTaskCreate {
	if v != nil {
		_c.SetOutcome(*v)
	}
	return _c
}

// SetCompletionNotes sets the "completion_notes" field.
func (_c *ProjectTaskCreate) SetCompletionNotes(v string) *ProjectTaskCreate {
	_c.mutation.SetCompletionNotes(v)
	return _c
}

// SetNillableCompletionNotes sets the "completion_notes" field if the given value is not nil.
func (_c *ProjectTaskCreate) SetNillableCompletionNotes(v *string) *ProjectTaskCreate {
	if v != nil {
		_c.SetCompletionNotes(*v)
	}
	return _c
}

// SetFilesChanged sets the "files_changed" field.
func (_c *ProjectTaskCreate) SetFilesChanged(v []string) *ProjectTaskCreate {
	_c.mutation.SetFilesChanged(v)
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *ProjectTaskCreate) SetLastError(v string) *ProjectTaskCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *ProjectTaskCreate) SetNillableLastError(v *string) *ProjectTaskCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetExtra sets the "extra" field.
func (_c *ProjectTaskCreate) SetExtra(v map[string]interface{}) *ProjectTaskCreate {
	_c.mutation.SetExtra(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProjectTaskCreate) SetCreatedAt(v time.Time) *ProjectTaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProjectTaskCreate) SetNillableCreatedAt(v *time.Time) *ProjectTaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProjectTaskCreate) SetUpdatedAt(v time.Time) *ProjectTaskCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProjectTaskCreate) SetNillableUpdatedAt(v *time.Time) *ProjectTaskCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ProjectTaskCreate) SetStartedAt(v time.Time) *ProjectTaskCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ProjectTaskCreate) SetNillableStartedAt(v *time.Time) *ProjectTaskCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ProjectTaskCreate) SetCompletedAt(v time.Time) *ProjectTaskCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ProjectTaskCreate) SetNillableCompletedAt(v *time.Time) *ProjectTaskCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetLastTriggeredAt sets the "last_triggered_at" field.
func (_c *ProjectTaskCreate) SetLastTriggeredAt(v time.Time) *ProjectTaskCreate {
	_c.mutation.SetLastTriggeredAt(v)
	return _c
}

// SetNillableLastTriggeredAt sets the "last_triggered_at" field if the given value is not nil.
func (_c *ProjectTaskCreate) SetNillableLastTriggeredAt(v *time.Time) *ProjectTaskCreate {
	if v != nil {
		_c.SetLastTriggeredAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProjectTaskCreate) SetID(v string) *ProjectTaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ProjectTaskMutation object of the builder.
func (_c *ProjectTaskCreate) Mutation() *ProjectTaskMutation {
	return _c.mutation
}

// Save creates the ProjectTask in the database.
func (_c *ProjectTaskCreate) Save(ctx context.Context) (*ProjectTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProjectTaskCreate) SaveX(ctx context.Context) *ProjectTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProjectTaskCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := projecttask.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := projecttask.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		v := projecttask.DefaultAttemptCount
		_c.mutation.SetAttemptCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := projecttask.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := projecttask.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProjectTaskCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "ProjectTask.title"`)}
	}
	if _, ok := _c.mutation.TaskType(); !ok {
		return &ValidationError{Name: "task_type", err: errors.New(`ent: missing required field "ProjectTask.task_type"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "ProjectTask.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := projecttask.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "ProjectTask.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ProjectTask.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := projecttask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProjectTask.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		return &ValidationError{Name: "attempt_count", err: errors.New(`ent: missing required field "ProjectTask.attempt_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProjectTask.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProjectTask.updated_at"`)}
	}
	return nil
}

func (_c *ProjectTaskCreate) sqlSave(ctx context.Context) (*ProjectTask, error) {
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
			return nil, fmt.Errorf("unexpected ProjectTask.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProjectTaskCreate) createSpec() (*ProjectTask, *sqlgraph.CreateSpec) {
	var (
		_node = &ProjectTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(projecttask.Table, sqlgraph.NewFieldSpec(projecttask.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkingDir(); ok {
		_spec.SetField(projecttask.FieldWorkingDir, field.TypeString, value)
		_node.WorkingDir = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(projecttask.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(projecttask.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.AcceptanceCriteria(); ok {
		_spec.SetField(projecttask.FieldAcceptanceCriteria, field.TypeString, value)
		_node.AcceptanceCriteria = value
	}
	if value, ok := _c.mutation.ScopePaths(); ok {
		_spec.SetField(projecttask.FieldScopePaths, field.TypeJSON, value)
		_node.ScopePaths = value
	}
	if value, ok := _c.mutation.RequiredTools(); ok {
		_spec.SetField(projecttask.FieldRequiredTools, field.TypeJSON, value)
		_node.RequiredTools = value
	}
	if value, ok := _c.mutation.TaskType(); ok {
		_spec.SetField(projecttask.FieldTaskType, field.TypeString, value)
		_node.TaskType = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(projecttask.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(projecttask.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(projecttask.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(projecttask.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ClaimSessionID(); ok {
		_spec.SetField(projecttask.FieldClaimSessionID, field.TypeString, value)
		_node.ClaimSessionID = &value
	}
	if value, ok := _c.mutation.ClaimAgentID(); ok {
		_spec.SetField(projecttask.FieldClaimAgentID, field.TypeString, value)
		_node.ClaimAgentID = &value
	}
	if value, ok := _c.mutation.ClaimedAt(); ok {
		_spec.SetField(projecttask.FieldClaimedAt, field.TypeTime, value)
		_node.ClaimedAt = &value
	}
	if value, ok := _c.mutation.AttemptCount(); ok {
		_spec.SetField(projecttask.FieldAttemptCount, field.TypeInt, value)
		_node.AttemptCount = value
	}
	if value, ok := _c.mutation.BlockedBy(); ok {
		_spec.SetField(projecttask.FieldBlockedBy, field.TypeJSON, value)
		_node.BlockedBy = value
	}
	if value, ok := _c.mutation.RelatedTaskIds(); ok {
		_spec.SetField(projecttask.FieldRelatedTaskIds, field.TypeJSON, value)
		_node.RelatedTaskIds = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(projecttask.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.CompletionNotes(); ok {
		_spec.SetField(projecttask.FieldCompletionNotes, field.TypeString, value)
		_node.CompletionNotes = value
	}
	if value, ok := _c.mutation.FilesChanged(); ok {
		_spec.SetField(projecttask.FieldFilesChanged, field.TypeJSON, value)
		_node.FilesChanged = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(projecttask.FieldLastError, field.TypeString, value)
		_node.LastError = value
	}
	if value, ok := _c.mutation.Extra(); ok {
		_spec.SetField(projecttask.FieldExtra, field.TypeJSON, value)
		_node.Extra = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(projecttask.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(projecttask.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(projecttask.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(projecttask.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.LastTriggeredAt(); ok {
		_spec.SetField(projecttask.FieldLastTriggeredAt, field.TypeTime, value)
		_node.LastTriggeredAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProjectTask.Create().
//		SetWorkingDir(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProjectTaskUpsert) {
//			SetWorkingDir(v+v).
//		}).
//		Exec(ctx)
func (_c *ProjectTaskCreate) OnConflict(opts ...sql.ConflictOption) *ProjectTaskUpsertOne {
	_c.conflict = opts
	return &ProjectTaskUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProjectTask.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProjectTaskCreate) OnConflictColumns(columns ...string) *ProjectTaskUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProjectTaskUpsertOne{
		create: _c,
	}
}

type (
	// ProjectTaskUpsertOne is the builder for "upsert"-ing
	//  one ProjectTask node.
	ProjectTaskUpsertOne struct {
		create *ProjectTaskCreate
	}

	// ProjectTaskUpsert is the "OnConflict" setter.
	ProjectTaskUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkingDir sets the "working_dir" field.
func (u *ProjectTaskUpsert) SetWorkingDir(v string) *ProjectTaskUpsert {
	u.Set(projecttask.FieldWorkingDir, v)
	return u
}

// UpdateWorkingDir sets the "working_dir" field to the value that was provided on create.
func (u *ProjectTaskUpsert) UpdateWorkingDir() *ProjectTaskUpsert {
	u.SetExcluded(projecttask.FieldWorkingDir)
	return u
}

// ClearWorkingDir clears the value of the "working_dir" field.
func (u *ProjectTaskUpsert) ClearWorkingDir() *ProjectTaskUpsert {
	u.SetNull(projecttask.FieldWorkingDir)
	return u
}

// SetTitle sets the "title" field.
func (u *ProjectTaskUpsert) SetTitle(v string) *ProjectTaskUpsert {
	u.Set(projecttask.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ProjectTaskUpsert) UpdateTitle() *ProjectTaskUpsert {
	u.SetExcluded(projecttask.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *ProjectTaskUpsert) SetDescription(v string) *ProjectTaskUpsert {
	u.Set(projecttask.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ProjectTaskUpsert) UpdateDescription() *ProjectTaskUpsert {
	u.SetExcluded(projecttask.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *ProjectTaskUpsert) ClearDescription() *ProjectTaskUpsert {
	u.SetNull(projecttask.FieldDescription)
	return u
}

// SetAcceptanceCriteria sets the "acceptance_criteria" field.
func (u *ProjectTaskUpsert) SetAcceptanceCriteria(v string) *ProjectTaskUpsert {
	u.Set(projecttask.FieldAcceptanceCriteria, v)
	return u
}

// UpdateAcceptanceCriteria sets the "acceptance_criteria" field to the value that was provided on create.
func (u *ProjectTaskUpsert) UpdateAcceptanceCriteria() *ProjectTaskUpsert {
	u.SetExcluded(projecttask.FieldAcceptanceCriteria)
	return u
}

// ClearAcceptanceCriteria clears the value of the "acceptance_criteria" field.
func (u *ProjectTaskUpsert) ClearAcceptanceCriteria() *ProjectTaskUpsert {
	u.SetNull(projecttask.FieldAcceptanceCriteria)
	return u
}

// SetScopePaths sets the "scope_paths" field.
func (u *ProjectTaskUpsert) SetScopePaths(v []string) *ProjectTaskUpsert {
	u.Set(projecttask.FieldScopePaths, v)
	return u
}

// UpdateScopePaths sets the "scope_paths" field to the value that was provided on create.
func (u *ProjectTaskUpsert) UpdateScopePaths() *ProjectTaskUpsert {
	u.SetExcluded(projecttask.FieldScopePaths)
	return u
}

// ClearScopePaths clears the value of the "scope_paths" field.
func (u *ProjectTaskUpsert) ClearScopePaths() *ProjectTaskUpsert {
	u.SetNull(projecttask.FieldScopePaths)
	return u
}

// SetRequiredTools sets the "required_tools" field.
func (u *ProjectTaskUpsert) SetRequiredTools(v []string) *ProjectTaskUpsert {
	u.Set(projecttask.FieldRequiredTools, v)
	return u
}

// UpdateRequiredTools sets the "required_tools" field to the value that was provided on create.
func (u *ProjectTaskUpsert) UpdateRequiredTools() *ProjectTaskUpsert {
	u.SetExcluded(projecttask.FieldRequiredTools)
	return u
}

// ClearRequiredTools clears the value of the "required_tools" field.
func (u *ProjectTaskUpsert) ClearRequiredTools() *ProjectTaskUpsert {
	u.SetNull(projecttask.FieldRequiredTools)
	return u
}

// SetTaskType sets the "task_type" field.
func (u *ProjectTaskUpsert) SetTaskType(v string) *ProjectTaskUpsert {
	u.Set(projecttask.FieldTaskType, v)
	return u
}

// UpdateTaskType sets the "task_type" field to the value that was provided on create.
func (u *ProjectTaskUpsert) UpdateTaskType() *ProjectTaskUpsert {
	u.SetExcluded(projecttask.FieldTaskType)
	return u
}

// SetTags sets the "tags" field.
func (u *ProjectTaskUpsert) SetTags(v []string) *ProjectTaskUpsert {
	u.Set(projecttask.FieldTags, v)
	return u
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *ProjectTaskUpsert) UpdateTags() *ProjectTaskUpsert {
	u.SetExcluded(projecttask.FieldTags)
	return u
}

// ClearTags clears the value of the "tags" field.
func (u *ProjectTaskUpsert) ClearTags() *ProjectTaskUpsert {
	u.SetNull(projecttask.FieldTags)
	return u
}

// SetPriority sets the "priority" field.
func (u *ProjectTaskUpsert) SetPriority(v int) *ProjectTaskUpsert {
	u.Set(projecttask.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *ProjectTaskUpsert) UpdatePriority() *ProjectTaskUpsert {
	u.SetExcluded(projecttask.FieldPriority)
	return u
}

// AddPriority adds v to the "priority" field.
func (u *ProjectTaskUpsert) AddPriority(v int) *ProjectTaskUpsert {
	u.Add(projecttask.FieldPriority, v)
	return u
}

// SetStatus sets the "status" field.
func (u *ProjectTaskUpsert) SetStatus(v projecttask.Status) *ProjectTaskUpsert {
	u.Set(projecttask.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProjectTaskUpsert) UpdateStatus() *ProjectTaskUpsert {
	u.SetExcluded(projecttask.FieldStatus)
	return u
}

// SetUserID sets the "user_id" field.
func (u *ProjectTaskUpsert) SetUserID(v string) *ProjectTaskUpsert {
	u.Set(projecttask.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ProjectTaskUpsert) UpdateUserID() *ProjectTaskUpsert {
	u.SetExcluded(projecttask.FieldUserID)
	return u
}

// ClearUserID clears the value of the "user_id" field.
func (u *ProjectTaskUpsert) ClearUserID() *ProjectTaskUpsert {
	u.SetNull(projecttask.FieldUserID)
	return u
}

// SetClaimSessionID sets the "claim_session_id" field.
func (u *ProjectTaskUpsert) SetClaimSessionID(v string) *ProjectTaskUpsert {
	u.Set(projecttask.FieldClaimSessionID, v)
	return u
}

// UpdateClaimSessionID sets the "claim_session_id" field to the value that was provided on create.
func (u *ProjectTaskUpsert) UpdateClaimSessionID() *ProjectTaskUpsert {
	u.SetExcluded(projecttask.FieldClaimSessionID)
	return u
}

// ClearClaimSessionID clears the value of the "claim_session_id" field.
func (u *ProjectTaskUpsert) ClearClaimSessionID() *ProjectTaskUpsert {
	u.SetNull(projecttask.FieldClaimSessionID)
	return u
}

// SetClaimAgentID sets the "claim_agent_id" field.
func (u *ProjectTaskUpsert) SetClaimAgentID(v string) *ProjectTaskUpsert {
	u.Set(projecttask.FieldClaimAgentID, v)
	return u
}

// UpdateClaimAgentID sets the "claim_agent_id" field to the value that was provided on create.
func (u *ProjectTaskUpsert) UpdateClaimAgentID() *ProjectTaskUpsert {
	u.SetExcluded(projecttask.FieldClaimAgentID)
	return u
}

// ClearClaimAgentID clears the value of the "claim_agent_id" field.
func (u *ProjectTaskUpsert) ClearClaimAgentID() *ProjectTaskUpsert {
	u.SetNull(projecttask.FieldClaimAgentID)
	return u
}

// SetClaimedAt sets the "claimed_at" field.
func (u *ProjectTaskUpsert) SetClaimedAt(v time.Time) *ProjectTaskUpsert {
	u.Set(projecttask.FieldClaimedAt, v)
	return u
}

// UpdateClaimedAt sets the "claimed_at" field to the value that was provided on create.
func (u *ProjectTaskUpsert) UpdateClaimedAt() *ProjectTaskUpsert {
	u.SetExcluded(projecttask.FieldClaimedAt)
	return u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (u *ProjectTaskUpsert) ClearClaimedAt() *ProjectTaskUpsert {
	u.SetNull(projecttask.FieldClaimedAt)
	return u
}

// SetAttemptCount sets the "attempt_count" field.
func (u *ProjectTaskUpsert) SetAttemptCount(v int) *ProjectTaskUpsert {
	u.Set(projecttask.FieldAttemptCount, v)
	return u
}

// UpdateAttemptCount sets the "attempt_count" field to the value that was provided on create.
func (u *ProjectTaskUpsert) UpdateAttemptCount() *ProjectTaskUpsert {
	u.SetExcluded(projecttask.FieldAttemptCount)
	return u
}

// AddAttemptCount adds v to the "attempt_count" field.
func (u *ProjectTaskUpsert) AddAttemptCount(v int) *ProjectTaskUpsert {
	u.Add(projecttask.FieldAttemptCount, v)
	return u
}

// SetBlockedBy sets the "blocked_by" field.
func (u *ProjectTaskUpsert) SetBlockedBy(v []string) *ProjectTaskUpsert {
	u.Set(projecttask.FieldBlockedBy, v)
	return u
}

// UpdateBlockedBy sets the "blocked_by" field to the value that was provided on create.
func (u *ProjectTaskUpsert) UpdateBlockedBy() *ProjectTaskUpsert {
	u.SetExcluded(projecttask.FieldBlockedBy)
	return u
}

// ClearBlockedBy clears the value of the "blocked_by" field.
func (u *ProjectTaskUpsert) ClearBlockedBy() *ProjectTaskUpsert {
	u.SetNull(projecttask.FieldBlockedBy)
	return u
}

// SetRelatedTaskIds sets the "related_task_ids" field.
func (u *ProjectTaskUpsert) SetRelatedTaskIds(v []string) *ProjectTaskUpsert {
	u.Set(projecttask.FieldRelatedTaskIds, v)
	return u
}

// UpdateRelatedTaskIds sets the "related_task_ids" field to the value that was provided on create.
func (u *ProjectTaskUpsert) UpdateRelatedTaskIds() *ProjectTaskUpsert {
	u.SetExcluded(projecttask.FieldRelatedTaskIds)
	return u
}

// ClearRelatedTaskIds clears the value of the "related_task_ids" field.
func (u *ProjectTaskUpsert) ClearRelatedTaskIds() *ProjectTaskUpsert {
	u.SetNull(projecttask.FieldRelatedTaskIds)
	return u
}

// SetOutcome sets the "outcome" field.
func (u *ProjectTaskUpsert) SetOutcome(v string) *ProjectTaskUpsert {
	u.Set(projecttask.FieldOutcome, v)
	return u
}

// UpdateOutcome sets the "outcome" field to the value that was provided on create.
func (u *ProjectTaskUpsert) UpdateOutcome() *ProjectTaskUpsert {
	u.SetExcluded(projecttask.FieldOutcome)
	return u
}

// ClearOutcome clears the value of the "outcome" field.
func (u *ProjectTaskUpsert) ClearOutcome() *ProjectTaskUpsert {
	u.SetNull(projecttask.FieldOutcome)
	return u
}

// SetCompletionNotes sets the "completion_notes" field.
func (u *ProjectTaskUpsert) SetCompletionNotes(v string) *ProjectTaskUpsert {
	u.Set(projecttask.FieldCompletionNotes, v)
	return u
}

// UpdateCompletionNotes sets the "completion_notes" field to the value that was provided on create.
func (u *ProjectTaskUpsert) UpdateCompletionNotes() *ProjectTaskUpsert {
	u.SetExcluded(projecttask.FieldCompletionNotes)
	return u
}

// ClearCompletionNotes clears the value of the "completion_notes" field.
func (u *ProjectTaskUpsert) ClearCompletionNotes() *ProjectTaskUpsert {
	u.SetNull(projecttask.FieldCompletionNotes)
	return u
}

// SetFilesChanged sets the "files_changed" field.
func (u *ProjectTaskUpsert) SetFilesChanged(v []string) *ProjectTaskUpsert {
	u.Set(projecttask.FieldFilesChanged, v)
	return u
}

// UpdateFilesChanged sets the "files_changed" field to the value that was provided on create.
func (u *ProjectTaskUpsert) UpdateFilesChanged() *ProjectTaskUpsert {
	u.SetExcluded(projecttask.FieldFilesChanged)
	return u
}

// ClearFilesChanged clears the value of the "files_changed" field.
func (u *ProjectTaskUpsert) ClearFilesChanged() *ProjectTaskUpsert {
	u.SetNull(projecttask.FieldFilesChanged)
	return u
}

// SetLastError sets the "last_error" field.
func (u *ProjectTaskUpsert) SetLastError(v string) *ProjectTaskUpsert {
	u.Set(projecttask.FieldLastError, v)
	return u
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *ProjectTaskUpsert) UpdateLastError() *ProjectTaskUpsert {
	u.SetExcluded(projecttask.FieldLastError)
	return u
}

// ClearLastError clears the value of the "last_error" field.
func (u *ProjectTaskUpsert) ClearLastError() *ProjectTaskUpsert {
	u.SetNull(projecttask.FieldLastError)
	return u
}

// SetExtra sets the "extra" field.
func (u *ProjectTaskUpsert) SetExtra(v map[string]interface{}) *ProjectTaskUpsert {
	u.Set(projecttask.FieldExtra, v)
	return u
}

// UpdateExtra sets the "extra" field to the value that was provided on create.
func (u *ProjectTaskUpsert) UpdateExtra() *ProjectTaskUpsert {
	u.SetExcluded(projecttask.FieldExtra)
	return u
}

// ClearExtra clears the value of the "extra" field.
func (u *ProjectTaskUpsert) ClearExtra() *ProjectTaskUpsert {
	u.SetNull(projecttask.FieldExtra)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProjectTaskUpsert) SetUpdatedAt(v time.Time) *ProjectTaskUpsert {
	u.Set(projecttask.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProjectTaskUpsert) UpdateUpdatedAt() *ProjectTaskUpsert {
	u.SetExcluded(projecttask.FieldUpdatedAt)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *ProjectTaskUpsert) SetStartedAt(v time.Time) *ProjectTaskUpsert {
	u.Set(projecttask.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *ProjectTaskUpsert) UpdateStartedAt() *ProjectTaskUpsert {
	u.SetExcluded(projecttask.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *ProjectTaskUpsert) ClearStartedAt() *ProjectTaskUpsert {
	u.SetNull(projecttask.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *ProjectTaskUpsert) SetCompletedAt(v time.Time) *ProjectTaskUpsert {
	u.Set(projecttask.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ProjectTaskUpsert) UpdateCompletedAt() *ProjectTaskUpsert {
	u.SetExcluded(projecttask.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ProjectTaskUpsert) ClearCompletedAt() *ProjectTaskUpsert {
	u.SetNull(projecttask.FieldCompletedAt)
	return u
}

// SetLastTriggeredAt sets the "last_triggered_at" field.
func (u *ProjectTaskUpsert) SetLastTriggeredAt(v time.Time) *ProjectTaskUpsert {
	u.Set(projecttask.FieldLastTriggeredAt, v)
	return u
}

// UpdateLastTriggeredAt sets the "last_triggered_at" field to the value that was provided on create.
func (u *ProjectTaskUpsert) UpdateLastTriggeredAt() *ProjectTaskUpsert {
	u.SetExcluded(projecttask.FieldLastTriggeredAt)
	return u
}

// ClearLastTriggeredAt clears the value of the "last_triggered_at" field.
func (u *ProjectTaskUpsert) ClearLastTriggeredAt() *ProjectTaskUpsert {
	u.SetNull(projecttask.FieldLastTriggeredAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ProjectTask.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(projecttask.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProjectTaskUpsertOne) UpdateNewValues() *ProjectTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(projecttask.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(projecttask.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProjectTask.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProjectTaskUpsertOne) Ignore() *ProjectTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProjectTaskUpsertOne) DoNothing() *ProjectTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProjectTaskCreate.OnConflict
// documentation for more info.
func (u *ProjectTaskUpsertOne) Update(set func(*ProjectTaskUpsert)) *ProjectTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProjectTaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkingDir sets the "working_dir" field.
func (u *ProjectTaskUpsertOne) SetWorkingDir(v string) *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetWorkingDir(v)
	})
}

// UpdateWorkingDir sets the "working_dir" field to the value that was provided on create.
func (u *ProjectTaskUpsertOne) UpdateWorkingDir() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateWorkingDir()
	})
}

// ClearWorkingDir clears the value of the "working_dir" field.
func (u *ProjectTaskUpsertOne) ClearWorkingDir() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearWorkingDir()
	})
}

// SetTitle sets the "title" field.
func (u *ProjectTaskUpsertOne) SetTitle(v string) *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ProjectTaskUpsertOne) UpdateTitle() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *ProjectTaskUpsertOne) SetDescription(v string) *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ProjectTaskUpsertOne) UpdateDescription() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ProjectTaskUpsertOne) ClearDescription() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearDescription()
	})
}

// SetAcceptanceCriteria sets the "acceptance_criteria" field.
func (u *ProjectTaskUpsertOne) SetAcceptanceCriteria(v string) *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetAcceptanceCriteria(v)
	})
}

// UpdateAcceptanceCriteria sets the "acceptance_criteria" field to the value that was provided on create.
func (u *ProjectTaskUpsertOne) UpdateAcceptanceCriteria() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateAcceptanceCriteria()
	})
}

// ClearAcceptanceCriteria clears the value of the "acceptance_criteria" field.
func (u *ProjectTaskUpsertOne) ClearAcceptanceCriteria() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearAcceptanceCriteria()
	})
}

// SetScopePaths sets the "scope_paths" field.
func (u *ProjectTaskUpsertOne) SetScopePaths(v []string) *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetScopePaths(v)
	})
}

// UpdateScopePaths sets the "scope_paths" field to the value that was provided on create.
func (u *ProjectTaskUpsertOne) UpdateScopePaths() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateScopePaths()
	})
}

// ClearScopePaths clears the value of the "scope_paths" field.
func (u *ProjectTaskUpsertOne) ClearScopePaths() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearScopePaths()
	})
}

// SetRequiredTools sets the "required_tools" field.
func (u *ProjectTaskUpsertOne) SetRequiredTools(v []string) *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetRequiredTools(v)
	})
}

// UpdateRequiredTools sets the "required_tools" field to the value that was provided on create.
func (u *ProjectTaskUpsertOne) UpdateRequiredTools() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateRequiredTools()
	})
}

// ClearRequiredTools clears the value of the "required_tools" field.
func (u *ProjectTaskUpsertOne) ClearRequiredTools() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearRequiredTools()
	})
}

// SetTaskType sets the "task_type" field.
func (u *ProjectTaskUpsertOne) SetTaskType(v string) *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetTaskType(v)
	})
}

// UpdateTaskType sets the "task_type" field to the value that was provided on create.
func (u *ProjectTaskUpsertOne) UpdateTaskType() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateTaskType()
	})
}

// SetTags sets the "tags" field.
func (u *ProjectTaskUpsertOne) SetTags(v []string) *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetTags(v)
	})
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *ProjectTaskUpsertOne) UpdateTags() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateTags()
	})
}

// ClearTags clears the value of the "tags" field.
func (u *ProjectTaskUpsertOne) ClearTags() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearTags()
	})
}

// SetPriority sets the "priority" field.
func (u *ProjectTaskUpsertOne) SetPriority(v int) *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *ProjectTaskUpsertOne) AddPriority(v int) *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *ProjectTaskUpsertOne) UpdatePriority() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdatePriority()
	})
}

// SetStatus sets the "status" field.
func (u *ProjectTaskUpsertOne) SetStatus(v projecttask.Status) *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProjectTaskUpsertOne) UpdateStatus() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateStatus()
	})
}

// SetUserID sets the "user_id" field.
func (u *ProjectTaskUpsertOne) SetUserID(v string) *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ProjectTaskUpsertOne) UpdateUserID() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *ProjectTaskUpsertOne) ClearUserID() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearUserID()
	})
}

// SetClaimSessionID sets the "claim_session_id" field.
func (u *ProjectTaskUpsertOne) SetClaimSessionID(v string) *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetClaimSessionID(v)
	})
}

// UpdateClaimSessionID sets the "claim_session_id" field to the value that was provided on create.
func (u *ProjectTaskUpsertOne) UpdateClaimSessionID() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateClaimSessionID()
	})
}

// ClearClaimSessionID clears the value of the "claim_session_id" field.
func (u *ProjectTaskUpsertOne) ClearClaimSessionID() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearClaimSessionID()
	})
}

// SetClaimAgentID sets the "claim_agent_id" field.
func (u *ProjectTaskUpsertOne) SetClaimAgentID(v string) *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetClaimAgentID(v)
	})
}

// UpdateClaimAgentID sets the "claim_agent_id" field to the value that was provided on create.
func (u *ProjectTaskUpsertOne) UpdateClaimAgentID() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateClaimAgentID()
	})
}

// ClearClaimAgentID clears the value of the "claim_agent_id" field.
func (u *ProjectTaskUpsertOne) ClearClaimAgentID() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearClaimAgentID()
	})
}

// SetClaimedAt sets the "claimed_at" field.
func (u *ProjectTaskUpsertOne) SetClaimedAt(v time.Time) *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetClaimedAt(v)
	})
}

// UpdateClaimedAt sets the "claimed_at" field to the value that was provided on create.
func (u *ProjectTaskUpsertOne) UpdateClaimedAt() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateClaimedAt()
	})
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (u *ProjectTaskUpsertOne) ClearClaimedAt() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearClaimedAt()
	})
}

// SetAttemptCount sets the "attempt_count" field.
func (u *ProjectTaskUpsertOne) SetAttemptCount(v int) *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetAttemptCount(v)
	})
}

// AddAttemptCount adds v to the "attempt_count" field.
func (u *ProjectTaskUpsertOne) AddAttemptCount(v int) *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.AddAttemptCount(v)
	})
}

// UpdateAttemptCount sets the "attempt_count" field to the value that was provided on create.
func (u *ProjectTaskUpsertOne) UpdateAttemptCount() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateAttemptCount()
	})
}

// SetBlockedBy sets the "blocked_by" field.
func (u *ProjectTaskUpsertOne) SetBlockedBy(v []string) *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetBlockedBy(v)
	})
}

// UpdateBlockedBy sets the "blocked_by" field to the value that was provided on create.
func (u *ProjectTaskUpsertOne) UpdateBlockedBy() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateBlockedBy()
	})
}

// ClearBlockedBy clears the value of the "blocked_by" field.
func (u *ProjectTaskUpsertOne) ClearBlockedBy() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearBlockedBy()
	})
}

// SetRelatedTaskIds sets the "related_task_ids" field.
func (u *ProjectTaskUpsertOne) SetRelatedTaskIds(v []string) *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetRelatedTaskIds(v)
	})
}

// UpdateRelatedTaskIds sets the "related_task_ids" field to the value that was provided on create.
func (u *ProjectTaskUpsertOne) UpdateRelatedTaskIds() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateRelatedTaskIds()
	})
}

// ClearRelatedTaskIds clears the value of the "related_task_ids" field.
func (u *ProjectTaskUpsertOne) ClearRelatedTaskIds() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearRelatedTaskIds()
	})
}

// SetOutcome sets the "outcome" field.
func (u *ProjectTaskUpsertOne) SetOutcome(v string) *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetOutcome(v)
	})
}

// UpdateOutcome sets the "outcome" field to the value that was provided on create.
func (u *ProjectTaskUpsertOne) UpdateOutcome() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateOutcome()
	})
}

// ClearOutcome clears the value of the "outcome" field.
func (u *ProjectTaskUpsertOne) ClearOutcome() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearOutcome()
	})
}

// SetCompletionNotes sets the "completion_notes" field.
func (u *ProjectTaskUpsertOne) SetCompletionNotes(v string) *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetCompletionNotes(v)
	})
}

// UpdateCompletionNotes sets the "completion_notes" field to the value that was provided on create.
func (u *ProjectTaskUpsertOne) UpdateCompletionNotes() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateCompletionNotes()
	})
}

// ClearCompletionNotes clears the value of the "completion_notes" field.
func (u *ProjectTaskUpsertOne) ClearCompletionNotes() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearCompletionNotes()
	})
}

// SetFilesChanged sets the "files_changed" field.
func (u *ProjectTaskUpsertOne) SetFilesChanged(v []string) *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetFilesChanged(v)
	})
}

// UpdateFilesChanged sets the "files_changed" field to the value that was provided on create.
func (u *ProjectTaskUpsertOne) UpdateFilesChanged() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateFilesChanged()
	})
}

// ClearFilesChanged clears the value of the "files_changed" field.
func (u *ProjectTaskUpsertOne) ClearFilesChanged() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearFilesChanged()
	})
}

// SetLastError sets the "last_error" field.
func (u *ProjectTaskUpsertOne) SetLastError(v string) *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *ProjectTaskUpsertOne) UpdateLastError() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *ProjectTaskUpsertOne) ClearLastError() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearLastError()
	})
}

// SetExtra sets the "extra" field.
func (u *ProjectTaskUpsertOne) SetExtra(v map[string]interface{}) *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetExtra(v)
	})
}

// UpdateExtra sets the "extra" field to the value that was provided on create.
func (u *ProjectTaskUpsertOne) UpdateExtra() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateExtra()
	})
}

// ClearExtra clears the value of the "extra" field.
func (u *ProjectTaskUpsertOne) ClearExtra() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearExtra()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProjectTaskUpsertOne) SetUpdatedAt(v time.Time) *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProjectTaskUpsertOne) UpdateUpdatedAt() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *ProjectTaskUpsertOne) SetStartedAt(v time.Time) *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *ProjectTaskUpsertOne) UpdateStartedAt() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *ProjectTaskUpsertOne) ClearStartedAt() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *ProjectTaskUpsertOne) SetCompletedAt(v time.Time) *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ProjectTaskUpsertOne) UpdateCompletedAt() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ProjectTaskUpsertOne) ClearCompletedAt() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearCompletedAt()
	})
}

// SetLastTriggeredAt sets the "last_triggered_at" field.
func (u *ProjectTaskUpsertOne) SetLastTriggeredAt(v time.Time) *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetLastTriggeredAt(v)
	})
}

// UpdateLastTriggeredAt sets the "last_triggered_at" field to the value that was provided on create.
func (u *ProjectTaskUpsertOne) UpdateLastTriggeredAt() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateLastTriggeredAt()
	})
}

// ClearLastTriggeredAt clears the value of the "last_triggered_at" field.
func (u *ProjectTaskUpsertOne) ClearLastTriggeredAt() *ProjectTaskUpsertOne {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearLastTriggeredAt()
	})
}

// Exec executes the query.
func (u *ProjectTaskUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProjectTaskCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProjectTaskUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProjectTaskUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ProjectTaskUpsertOne.ID is not supported by MySQL driver. Use ProjectTaskUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProjectTaskUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProjectTaskCreateBulk is the builder for creating many ProjectTask entities in bulk.
type ProjectTaskCreateBulk struct {
	config
	err      error
	builders []*ProjectTaskCreate
	conflict []sql.ConflictOption
}

// Save creates the ProjectTask entities in the database.
func (_c *ProjectTaskCreateBulk) Save(ctx context.Context) ([]*ProjectTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProjectTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProjectTaskMutation)
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
func (_c *ProjectTaskCreateBulk) SaveX(ctx context.Context) []*ProjectTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProjectTask.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProjectTaskUpsert) {
//			SetWorkingDir(v+v).
//		}).
//		Exec(ctx)
func (_c *ProjectTaskCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProjectTaskUpsertBulk {
	_c.conflict = opts
	return &ProjectTaskUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProjectTask.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProjectTaskCreateBulk) OnConflictColumns(columns ...string) *ProjectTaskUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProjectTaskUpsertBulk{
		create: _c,
	}
}

// ProjectTaskUpsertBulk is the builder for "upsert"-ing
// a bulk of ProjectTask nodes.
type ProjectTaskUpsertBulk struct {
	create *ProjectTaskCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ProjectTask.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(projecttask.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProjectTaskUpsertBulk) UpdateNewValues() *ProjectTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(projecttask.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(projecttask.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProjectTask.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProjectTaskUpsertBulk) Ignore() *ProjectTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProjectTaskUpsertBulk) DoNothing() *ProjectTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProjectTaskCreateBulk.OnConflict
// documentation for more info.
func (u *ProjectTaskUpsertBulk) Update(set func(*ProjectTaskUpsert)) *ProjectTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProjectTaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkingDir sets the "working_dir" field.
func (u *ProjectTaskUpsertBulk) SetWorkingDir(v string) *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetWorkingDir(v)
	})
}

// UpdateWorkingDir sets the "working_dir" field to the value that was provided on create.
func (u *ProjectTaskUpsertBulk) UpdateWorkingDir() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateWorkingDir()
	})
}

// ClearWorkingDir clears the value of the "working_dir" field.
func (u *ProjectTaskUpsertBulk) ClearWorkingDir() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearWorkingDir()
	})
}

// SetTitle sets the "title" field.
func (u *ProjectTaskUpsertBulk) SetTitle(v string) *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ProjectTaskUpsertBulk) UpdateTitle() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *ProjectTaskUpsertBulk) SetDescription(v string) *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ProjectTaskUpsertBulk) UpdateDescription() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ProjectTaskUpsertBulk) ClearDescription() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearDescription()
	})
}

// SetAcceptanceCriteria sets the "acceptance_criteria" field.
func (u *ProjectTaskUpsertBulk) SetAcceptanceCriteria(v string) *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetAcceptanceCriteria(v)
	})
}

// UpdateAcceptanceCriteria sets the "acceptance_criteria" field to the value that was provided on create.
func (u *ProjectTaskUpsertBulk) UpdateAcceptanceCriteria() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateAcceptanceCriteria()
	})
}

// ClearAcceptanceCriteria clears the value of the "acceptance_criteria" field.
func (u *ProjectTaskUpsertBulk) ClearAcceptanceCriteria() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearAcceptanceCriteria()
	})
}

// SetScopePaths sets the "scope_paths" field.
func (u *ProjectTaskUpsertBulk) SetScopePaths(v []string) *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetScopePaths(v)
	})
}

// UpdateScopePaths sets the "scope_paths" field to the value that was provided on create.
func (u *ProjectTaskUpsertBulk) UpdateScopePaths() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateScopePaths()
	})
}

// ClearScopePaths clears the value of the "scope_paths" field.
func (u *ProjectTaskUpsertBulk) ClearScopePaths() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearScopePaths()
	})
}

// SetRequiredTools sets the "required_tools" field.
func (u *ProjectTaskUpsertBulk) SetRequiredTools(v []string) *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetRequiredTools(v)
	})
}

// UpdateRequiredTools sets the "required_tools" field to the value that was provided on create.
func (u *ProjectTaskUpsertBulk) UpdateRequiredTools() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateRequiredTools()
	})
}

// ClearRequiredTools clears the value of the "required_tools" field.
func (u *ProjectTaskUpsertBulk) ClearRequiredTools() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearRequiredTools()
	})
}

// SetTaskType sets the "task_type" field.
func (u *ProjectTaskUpsertBulk) SetTaskType(v string) *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetTaskType(v)
	})
}

// UpdateTaskType sets the "task_type" field to the value that was provided on create.
func (u *ProjectTaskUpsertBulk) UpdateTaskType() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateTaskType()
	})
}

// SetTags sets the "tags" field.
func (u *ProjectTaskUpsertBulk) SetTags(v []string) *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetTags(v)
	})
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *ProjectTaskUpsertBulk) UpdateTags() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateTags()
	})
}

// ClearTags clears the value of the "tags" field.
func (u *ProjectTaskUpsertBulk) ClearTags() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearTags()
	})
}

// SetPriority sets the "priority" field.
func (u *ProjectTaskUpsertBulk) SetPriority(v int) *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *ProjectTaskUpsertBulk) AddPriority(v int) *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *ProjectTaskUpsertBulk) UpdatePriority() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdatePriority()
	})
}

// SetStatus sets the "status" field.
func (u *ProjectTaskUpsertBulk) SetStatus(v projecttask.Status) *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProjectTaskUpsertBulk) UpdateStatus() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateStatus()
	})
}

// SetUserID sets the "user_id" field.
func (u *ProjectTaskUpsertBulk) SetUserID(v string) *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ProjectTaskUpsertBulk) UpdateUserID() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *ProjectTaskUpsertBulk) ClearUserID() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearUserID()
	})
}

// SetClaimSessionID sets the "claim_session_id" field.
func (u *ProjectTaskUpsertBulk) SetClaimSessionID(v string) *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetClaimSessionID(v)
	})
}

// UpdateClaimSessionID sets the "claim_session_id" field to the value that was provided on create.
func (u *ProjectTaskUpsertBulk) UpdateClaimSessionID() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateClaimSessionID()
	})
}

// ClearClaimSessionID clears the value of the "claim_session_id" field.
func (u *ProjectTaskUpsertBulk) ClearClaimSessionID() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearClaimSessionID()
	})
}

// SetClaimAgentID sets the "claim_agent_id" field.
func (u *ProjectTaskUpsertBulk) SetClaimAgentID(v string) *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetClaimAgentID(v)
	})
}

// UpdateClaimAgentID sets the "claim_agent_id" field to the value that was provided on create.
func (u *ProjectTaskUpsertBulk) UpdateClaimAgentID() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateClaimAgentID()
	})
}

// ClearClaimAgentID clears the value of the "claim_agent_id" field.
func (u *ProjectTaskUpsertBulk) ClearClaimAgentID() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearClaimAgentID()
	})
}

// SetClaimedAt sets the "claimed_at" field.
func (u *ProjectTaskUpsertBulk) SetClaimedAt(v time.Time) *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetClaimedAt(v)
	})
}

// UpdateClaimedAt sets the "claimed_at" field to the value that was provided on create.
func (u *ProjectTaskUpsertBulk) UpdateClaimedAt() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateClaimedAt()
	})
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (u *ProjectTaskUpsertBulk) ClearClaimedAt() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearClaimedAt()
	})
}

// SetAttemptCount sets the "attempt_count" field.
func (u *ProjectTaskUpsertBulk) SetAttemptCount(v int) *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetAttemptCount(v)
	})
}

// AddAttemptCount adds v to the "attempt_count" field.
func (u *ProjectTaskUpsertBulk) AddAttemptCount(v int) *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.AddAttemptCount(v)
	})
}

// UpdateAttemptCount sets the "attempt_count" field to the value that was provided on create.
func (u *ProjectTaskUpsertBulk) UpdateAttemptCount() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateAttemptCount()
	})
}

// SetBlockedBy sets the "blocked_by" field.
func (u *ProjectTaskUpsertBulk) SetBlockedBy(v []string) *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetBlockedBy(v)
	})
}

// UpdateBlockedBy sets the "blocked_by" field to the value that was provided on create.
func (u *ProjectTaskUpsertBulk) UpdateBlockedBy() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateBlockedBy()
	})
}

// ClearBlockedBy clears the value of the "blocked_by" field.
func (u *ProjectTaskUpsertBulk) ClearBlockedBy() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearBlockedBy()
	})
}

// SetRelatedTaskIds sets the "related_task_ids" field.
func (u *ProjectTaskUpsertBulk) SetRelatedTaskIds(v []string) *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetRelatedTaskIds(v)
	})
}

// UpdateRelatedTaskIds sets the "related_task_ids" field to the value that was provided on create.
func (u *ProjectTaskUpsertBulk) UpdateRelatedTaskIds() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateRelatedTaskIds()
	})
}

// ClearRelatedTaskIds clears the value of the "related_task_ids" field.
func (u *ProjectTaskUpsertBulk) ClearRelatedTaskIds() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearRelatedTaskIds()
	})
}

// SetOutcome sets the "outcome" field.
func (u *ProjectTaskUpsertBulk) SetOutcome(v string) *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetOutcome(v)
	})
}

// UpdateOutcome sets the "outcome" field to the value that was provided on create.
func (u *ProjectTaskUpsertBulk) UpdateOutcome() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateOutcome()
	})
}

// ClearOutcome clears the value of the "outcome" field.
func (u *ProjectTaskUpsertBulk) ClearOutcome() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearOutcome()
	})
}

// SetCompletionNotes sets the "completion_notes" field.
func (u *ProjectTaskUpsertBulk) SetCompletionNotes(v string) *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetCompletionNotes(v)
	})
}

// UpdateCompletionNotes sets the "completion_notes" field to the value that was provided on create.
func (u *ProjectTaskUpsertBulk) UpdateCompletionNotes() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateCompletionNotes()
	})
}

// ClearCompletionNotes clears the value of the "completion_notes" field.
func (u *ProjectTaskUpsertBulk) ClearCompletionNotes() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearCompletionNotes()
	})
}

// SetFilesChanged sets the "files_changed" field.
func (u *ProjectTaskUpsertBulk) SetFilesChanged(v []string) *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetFilesChanged(v)
	})
}

// UpdateFilesChanged sets the "files_changed" field to the value that was provided on create.
func (u *ProjectTaskUpsertBulk) UpdateFilesChanged() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateFilesChanged()
	})
}

// ClearFilesChanged clears the value of the "files_changed" field.
func (u *ProjectTaskUpsertBulk) ClearFilesChanged() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearFilesChanged()
	})
}

// SetLastError sets the "last_error" field.
func (u *ProjectTaskUpsertBulk) SetLastError(v string) *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *ProjectTaskUpsertBulk) UpdateLastError() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *ProjectTaskUpsertBulk) ClearLastError() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearLastError()
	})
}

// SetExtra sets the "extra" field.
func (u *ProjectTaskUpsertBulk) SetExtra(v map[string]interface{}) *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetExtra(v)
	})
}

// UpdateExtra sets the "extra" field to the value that was provided on create.
func (u *ProjectTaskUpsertBulk) UpdateExtra() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateExtra()
	})
}

// ClearExtra clears the value of the "extra" field.
func (u *ProjectTaskUpsertBulk) ClearExtra() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearExtra()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProjectTaskUpsertBulk) SetUpdatedAt(v time.Time) *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProjectTaskUpsertBulk) UpdateUpdatedAt() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *ProjectTaskUpsertBulk) SetStartedAt(v time.Time) *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *ProjectTaskUpsertBulk) UpdateStartedAt() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *ProjectTaskUpsertBulk) ClearStartedAt() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *ProjectTaskUpsertBulk) SetCompletedAt(v time.Time) *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ProjectTaskUpsertBulk) UpdateCompletedAt() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ProjectTaskUpsertBulk) ClearCompletedAt() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearCompletedAt()
	})
}

// SetLastTriggeredAt sets the "last_triggered_at" field.
func (u *ProjectTaskUpsertBulk) SetLastTriggeredAt(v time.Time) *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.SetLastTriggeredAt(v)
	})
}

// UpdateLastTriggeredAt sets the "last_triggered_at" field to the value that was provided on create.
func (u *ProjectTaskUpsertBulk) UpdateLastTriggeredAt() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.UpdateLastTriggeredAt()
	})
}

// ClearLastTriggeredAt clears the value of the "last_triggered_at" field.
func (u *ProjectTaskUpsertBulk) ClearLastTriggeredAt() *ProjectTaskUpsertBulk {
	return u.Update(func(s *ProjectTaskUpsert) {
		s.ClearLastTriggeredAt()
	})
}

// Exec executes the query.
func (u *ProjectTaskUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ProjectTaskCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProjectTaskCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProjectTaskUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
