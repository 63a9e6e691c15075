// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/kestrel-ai/kestrel/ent/predicate"
	"github.com/kestrel-ai/kestrel/ent/projecttask"
)

// ProjectTaskUpdate is the builder for updating ProjectTask entities.
type ProjectTaskUpdate struct {
	config
	hooks    []Hook
	mutation *ProjectTaskMutation
}

// Where appends a list predicates to the ProjectTaskUpdate builder.
func (_u *ProjectTaskUpdate) Where(ps ...predicate.ProjectTask) *ProjectTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkingDir sets the "working_dir" field.
func (_u *ProjectTaskUpdate) SetWorkingDir(v string) *ProjectTaskUpdate {
	_u.mutation.SetWorkingDir(v)
	return _u
}

// SetNillableWorkingDir sets the "working_dir" field if the given value is not nil.
func (_u *ProjectTaskUpdate) SetNillableWorkingDir(v *string) *ProjectTaskUpdate {
	if v != nil {
		_u.SetWorkingDir(*v)
	}
	return _u
}

// ClearWorkingDir clears the value of the "working_dir" field.
func (_u *ProjectTaskUpdate) ClearWorkingDir() *ProjectTaskUpdate {
	_u.mutation.ClearWorkingDir()
	return _u
}

// SetTitle sets the "title" field.
func (_u *ProjectTaskUpdate) SetTitle(v string) *ProjectTaskUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ProjectTaskUpdate) SetNillableTitle(v *string) *ProjectTaskUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ProjectTaskUpdate) SetDescription(v string) *ProjectTaskUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ProjectTaskUpdate) SetNillableDescription(v *string) *ProjectTaskUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ProjectTaskUpdate) ClearDescription() *ProjectTaskUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetAcceptanceCriteria sets the "acceptance_criteria" field.
func (_u *ProjectTaskUpdate) SetAcceptanceCriteria(v string) *ProjectTaskUpdate {
	_u.mutation.SetAcceptanceCriteria(v)
	return _u
}

// SetNillableAcceptanceCriteria sets the "acceptance_criteria" field if the given value is not nil.
func (_u *ProjectTaskUpdate) SetNillableAcceptanceCriteria(v *string) *ProjectTaskUpdate {
	if v != nil {
		_u.SetAcceptanceCriteria(*v)
	}
	return _u
}

// ClearAcceptanceCriteria clears the value of the "acceptance_criteria" field.
func (_u *ProjectTaskUpdate) ClearAcceptanceCriteria() *ProjectTaskUpdate {
	_u.mutation.ClearAcceptanceCriteria()
	return _u
}

// SetScopePaths sets the "scope_paths" field.
func (_u *ProjectTaskUpdate) SetScopePaths(v []string) *ProjectTaskUpdate {
	_u.mutation.SetScopePaths(v)
	return _u
}

// AppendScopePaths appends value to the "scope_paths" field.
func (_u *ProjectTaskUpdate) AppendScopePaths(v []string) *ProjectTaskUpdate {
	_u.mutation.AppendScopePaths(v)
	return _u
}

// ClearScopePaths clears the value of the "scope_paths" field.
func (_u *ProjectTaskUpdate) ClearScopePaths() *ProjectTaskUpdate {
	_u.mutation.ClearScopePaths()
	return _u
}

// SetRequiredTools sets the "required_tools" field.
func (_u *ProjectTaskUpdate) SetRequiredTools(v []string) *ProjectTaskUpdate {
	_u.mutation.SetRequiredTools(v)
	return _u
}

// AppendRequiredTools appends value to the "required_tools" field.
func (_u *ProjectTaskUpdate) AppendRequiredTools(v []string) *ProjectTaskUpdate {
	_u.mutation.AppendRequiredTools(v)
	return _u
}

// ClearRequiredTools clears the value of the "required_tools" field.
func (_u *ProjectTaskUpdate) ClearRequiredTools() *ProjectTaskUpdate {
	_u.mutation.ClearRequiredTools()
	return _u
}

// SetTaskType sets the "task_type" field.
func (_u *ProjectTaskUpdate) SetTaskType(v string) *ProjectTaskUpdate {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *ProjectTaskUpdate) SetNillableTaskType(v *string) *ProjectTaskUpdate {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *ProjectTaskUpdate) SetTags(v []string) *ProjectTaskUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *ProjectTaskUpdate) AppendTags(v []string) *ProjectTaskUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *ProjectTaskUpdate) ClearTags() *ProjectTaskUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ProjectTaskUpdate) SetPriority(v int) *ProjectTaskUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ProjectTaskUpdate) SetNillablePriority(v *int) *ProjectTaskUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *ProjectTaskUpdate) AddPriority(v int) *ProjectTaskUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProjectTaskUpdate) SetStatus(v projecttask.Status) *ProjectTaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProjectTaskUpdate) SetNillableStatus(v *projecttask.Status) *ProjectTaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ProjectTaskUpdate) SetUserID(v string) *ProjectTaskUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProjectTaskUpdate) SetNillableUserID(v *string) *ProjectTaskUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *ProjectTaskUpdate) ClearUserID() *ProjectTaskUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetClaimSessionID sets the "claim_session_id" field.
func (_u *ProjectTaskUpdate) SetClaimSessionID(v string) *ProjectTaskUpdate {
	_u.mutation.SetClaimSessionID(v)
	return _u
}

// SetNillableClaimSessionID sets the "claim_session_id" field if the given value is not nil.
func (_u *ProjectTaskUpdate) SetNillableClaimSessionID(v *string) *ProjectTaskUpdate {
	if v != nil {
		_u.SetClaimSessionID(*v)
	}
	return _u
}

// ClearClaimSessionID clears the value of the "claim_session_id" field.
func (_u *ProjectTaskUpdate) ClearClaimSessionID() *ProjectTaskUpdate {
	_u.mutation.ClearClaimSessionID()
	return _u
}

// SetClaimAgentID sets the "claim_agent_id" field.
func (_u *ProjectTaskUpdate) SetClaimAgentID(v string) *ProjectTaskUpdate {
	_u.mutation.SetClaimAgentID(v)
	return _u
}

// SetNillableClaimAgentID sets the "claim_agent_id" field if the given value is not nil.
func (_u *ProjectTaskUpdate) SetNillableClaimAgentID(v *string) *ProjectTaskUpdate {
	if v != nil {
		_u.SetClaimAgentID(*v)
	}
	return _u
}

// ClearClaimAgentID clears the value of the "claim_agent_id" field.
func (_u *ProjectTaskUpdate) ClearClaimAgentID() *ProjectTaskUpdate {
	_u.mutation.ClearClaimAgentID()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *ProjectTaskUpdate) SetClaimedAt(v time.Time) *ProjectTaskUpdate {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *ProjectTaskUpdate) SetNillableClaimedAt(v *time.Time) *ProjectTaskUpdate {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *ProjectTaskUpdate) ClearClaimedAt() *ProjectTaskUpdate {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *ProjectTaskUpdate) SetAttemptCount(v int) *ProjectTaskUpdate {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *ProjectTaskUpdate) SetNillableAttemptCount(v *int) *ProjectTaskUpdate {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *ProjectTaskUpdate) AddAttemptCount(v int) *ProjectTaskUpdate {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetBlockedBy sets the "blocked_by" field.
func (_u *ProjectTaskUpdate) SetBlockedBy(v []string) *ProjectTaskUpdate {
	_u.mutation.SetBlockedBy(v)
	return _u
}

// AppendBlockedBy appends value to the "blocked_by" field.
func (_u *ProjectTaskUpdate) AppendBlockedBy(v []string) *ProjectTaskUpdate {
	_u.mutation.AppendBlockedBy(v)
	return _u
}

// ClearBlockedBy clears the value of the "blocked_by" field.
func (_u *ProjectTaskUpdate) ClearBlockedBy() *ProjectTaskUpdate {
	_u.mutation.ClearBlockedBy()
	return _u
}

// SetRelatedTaskIds sets the "related_task_ids" field.
func (_u *ProjectTaskUpdate) SetRelatedTaskIds(v []string) *ProjectTaskUpdate {
	_u.mutation.SetRelatedTaskIds(v)
	return _u
}

// AppendRelatedTaskIds appends value to the "related_task_ids" field.
func (_u *ProjectTaskUpdate) AppendRelatedTaskIds(v []string) *ProjectTaskUpdate {
	_u.mutation.AppendRelatedTaskIds(v)
	return _u
}

// ClearRelatedTaskIds clears the value of the "related_task_ids" field.
func (_u *ProjectTaskUpdate) ClearRelatedTaskIds() *ProjectTaskUpdate {
	_u.mutation.ClearRelatedTaskIds()
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *ProjectTaskUpdate) SetOutcome(v string) *ProjectTaskUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *ProjectTaskUpdate) SetNillableOutcome(v *string) *ProjectTaskUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// ClearOutcome clears the value of the "outcome" field.
func (_u *ProjectTaskUpdate) ClearOutcome() *ProjectTaskUpdate {
	_u.mutation.ClearOutcome()
	return _u
}

// SetCompletionNotes sets the "completion_notes" field.
func (_u *ProjectTaskUpdate) SetCompletionNotes(v string) *ProjectTaskUpdate {
	_u.mutation.SetCompletionNotes(v)
	return _u
}

// SetNillableCompletionNotes sets the "completion_notes" field if the given value is not nil.
func (_u *ProjectTaskUpdate) SetNillableCompletionNotes(v *string) *ProjectTaskUpdate {
	if v != nil {
		_u.SetCompletionNotes(*v)
	}
	return _u
}

// ClearCompletionNotes clears the value of the "completion_notes" field.
func (_u *ProjectTaskUpdate) ClearCompletionNotes() *ProjectTaskUpdate {
	_u.mutation.ClearCompletionNotes()
	return _u
}

// SetFilesChanged sets the "files_changed" field.
func (_u *ProjectTaskUpdate) SetFilesChanged(v []string) *ProjectTaskUpdate {
	_u.mutation.SetFilesChanged(v)
	return _u
}

// AppendFilesChanged appends value to the "files_changed" field.
func (_u *ProjectTaskUpdate) AppendFilesChanged(v []string) *ProjectTaskUpdate {
	_u.mutation.AppendFilesChanged(v)
	return _u
}

// ClearFilesChanged clears the value of the "files_changed" field.
func (_u *ProjectTaskUpdate) ClearFilesChanged() *ProjectTaskUpdate {
	_u.mutation.ClearFilesChanged()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *ProjectTaskUpdate) SetLastError(v string) *ProjectTaskUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *ProjectTaskUpdate) SetNillableLastError(v *string) *ProjectTaskUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *ProjectTaskUpdate) ClearLastError() *ProjectTaskUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetExtra sets the "extra" field.
func (_u *ProjectTaskUpdate) SetExtra(v map[string]interface{}) *ProjectTaskUpdate {
	_u.mutation.SetExtra(v)
	return _u
}

// ClearExtra clears the value of the "extra" field.
func (_u *ProjectTaskUpdate) ClearExtra() *ProjectTaskUpdate {
	_u.mutation.ClearExtra()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectTaskUpdate) SetUpdatedAt(v time.Time) *ProjectTaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ProjectTaskUpdate) SetStartedAt(v time.Time) *ProjectTaskUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ProjectTaskUpdate) SetNillableStartedAt(v *time.Time) *ProjectTaskUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ProjectTaskUpdate) ClearStartedAt() *ProjectTaskUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ProjectTaskUpdate) SetCompletedAt(v time.Time) *ProjectTaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ProjectTaskUpdate) SetNillableCompletedAt(v *time.Time) *ProjectTaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ProjectTaskUpdate) ClearCompletedAt() *ProjectTaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastTriggeredAt sets the "last_triggered_at" field.
func (_u *ProjectTaskUpdate) SetLastTriggeredAt(v time.Time) *ProjectTaskUpdate {
	_u.mutation.SetLastTriggeredAt(v)
	return _u
}

// SetNillableLastTriggeredAt sets the "last_triggered_at" field if the given value is not nil.
func (_u *ProjectTaskUpdate) SetNillableLastTriggeredAt(v *time.Time) *ProjectTaskUpdate {
	if v != nil {
		_u.SetLastTriggeredAt(*v)
	}
	return _u
}

// ClearLastTriggeredAt clears the value of the "last_triggered_at" field.
func (_u *ProjectTaskUpdate) ClearLastTriggeredAt() *ProjectTaskUpdate {
	_u.mutation.ClearLastTriggeredAt()
	return _u
}

// Mutation returns the ProjectTaskMutation object of the builder.
func (_u *ProjectTaskUpdate) Mutation() *ProjectTaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProjectTaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProjectTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectTaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := projecttask.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectTaskUpdate) check() error {
	if v, ok := _u.mutation.Priority(); ok {
		if err := projecttask.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "ProjectTask.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := projecttask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProjectTask.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProjectTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(projecttask.Table, projecttask.Columns, sqlgraph.NewFieldSpec(projecttask.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkingDir(); ok {
		_spec.SetField(projecttask.FieldWorkingDir, field.TypeString, value)
	}
	if _u.mutation.WorkingDirCleared() {
		_spec.ClearField(projecttask.FieldWorkingDir, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(projecttask.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(projecttask.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(projecttask.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.AcceptanceCriteria(); ok {
		_spec.SetField(projecttask.FieldAcceptanceCriteria, field.TypeString, value)
	}
	if _u.mutation.AcceptanceCriteriaCleared() {
		_spec.ClearField(projecttask.FieldAcceptanceCriteria, field.TypeString)
	}
	if value, ok := _u.mutation.ScopePaths(); ok {
		_spec.SetField(projecttask.FieldScopePaths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedScopePaths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, projecttask.FieldScopePaths, value)
		})
	}
	if _u.mutation.ScopePathsCleared() {
		_spec.ClearField(projecttask.FieldScopePaths, field.TypeJSON)
	}
	if value, ok := _u.mutation.RequiredTools(); ok {
		_spec.SetField(projecttask.FieldRequiredTools, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequiredTools(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, projecttask.FieldRequiredTools, value)
		})
	}
	if _u.mutation.RequiredToolsCleared() {
		_spec.ClearField(projecttask.FieldRequiredTools, field.TypeJSON)
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(projecttask.FieldTaskType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(projecttask.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, projecttask.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(projecttask.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(projecttask.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(projecttask.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(projecttask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(projecttask.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(projecttask.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimSessionID(); ok {
		_spec.SetField(projecttask.FieldClaimSessionID, field.TypeString, value)
	}
	if _u.mutation.ClaimSessionIDCleared() {
		_spec.ClearField(projecttask.FieldClaimSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimAgentID(); ok {
		_spec.SetField(projecttask.FieldClaimAgentID, field.TypeString, value)
	}
	if _u.mutation.ClaimAgentIDCleared() {
		_spec.ClearField(projecttask.FieldClaimAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(projecttask.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(projecttask.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(projecttask.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(projecttask.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BlockedBy(); ok {
		_spec.SetField(projecttask.FieldBlockedBy, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBlockedBy(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, projecttask.FieldBlockedBy, value)
		})
	}
	if _u.mutation.BlockedByCleared() {
		_spec.ClearField(projecttask.FieldBlockedBy, field.TypeJSON)
	}
	if value, ok := _u.mutation.RelatedTaskIds(); ok {
		_spec.SetField(projecttask.FieldRelatedTaskIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRelatedTaskIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, projecttask.FieldRelatedTaskIds, value)
		})
	}
	if _u.mutation.RelatedTaskIdsCleared() {
		_spec.ClearField(projecttask.FieldRelatedTaskIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(projecttask.FieldOutcome, field.TypeString, value)
	}
	if _u.mutation.OutcomeCleared() {
		_spec.ClearField(projecttask.FieldOutcome, field.TypeString)
	}
	if value, ok := _u.mutation.CompletionNotes(); ok {
		_spec.SetField(projecttask.FieldCompletionNotes, field.TypeString, value)
	}
	if _u.mutation.CompletionNotesCleared() {
		_spec.ClearField(projecttask.FieldCompletionNotes, field.TypeString)
	}
	if value, ok := _u.mutation.FilesChanged(); ok {
		_spec.SetField(projecttask.FieldFilesChanged, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFilesChanged(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, projecttask.FieldFilesChanged, value)
		})
	}
	if _u.mutation.FilesChangedCleared() {
		_spec.ClearField(projecttask.FieldFilesChanged, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(projecttask.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(projecttask.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.Extra(); ok {
		_spec.SetField(projecttask.FieldExtra, field.TypeJSON, value)
	}
	if _u.mutation.ExtraCleared() {
		_spec.ClearField(projecttask.FieldExtra, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(projecttask.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(projecttask.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(projecttask.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(projecttask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(projecttask.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastTriggeredAt(); ok {
		_spec.SetField(projecttask.FieldLastTriggeredAt, field.TypeTime, value)
	}
	if _u.mutation.LastTriggeredAtCleared() {
		_spec.ClearField(projecttask.FieldLastTriggeredAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{projecttask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProjectTaskUpdateOne is the builder for updating a single ProjectTask entity.
type ProjectTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProjectTaskMutation
}

// SetWorkingDir sets the "working_dir" field.
func (_u *ProjectTaskUpdateOne) SetWorkingDir(v string) *ProjectTaskUpdateOne {
	_u.mutation.SetWorkingDir(v)
	return _u
}

// SetNillableWorkingDir sets the "working_dir" field if the given value is not nil.
func (_u *ProjectTaskUpdateOne) SetNillableWorkingDir(v *string) *ProjectTaskUpdateOne {
	if v != nil {
		_u.SetWorkingDir(*v)
	}
	return _u
}

// ClearWorkingDir clears the value of the "working_dir" field.
func (_u *ProjectTaskUpdateOne) ClearWorkingDir() *ProjectTaskUpdateOne {
	_u.mutation.ClearWorkingDir()
	return _u
}

// SetTitle sets the "title" field.
func (_u *ProjectTaskUpdateOne) SetTitle(v string) *ProjectTaskUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ProjectTaskUpdateOne) SetNillableTitle(v *string) *ProjectTaskUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ProjectTaskUpdateOne) SetDescription(v string) *ProjectTaskUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ProjectTaskUpdateOne) SetNillableDescription(v *string) *ProjectTaskUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ProjectTaskUpdateOne) ClearDescription() *ProjectTaskUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetAcceptanceCriteria sets the "acceptance_criteria" field.
func (_u *ProjectTaskUpdateOne) SetAcceptanceCriteria(v string) *ProjectTaskUpdateOne {
	_u.mutation.SetAcceptanceCriteria(v)
	return _u
}

// SetNillableAcceptanceCriteria sets the "acceptance_criteria" field if the given value is not nil.
func (_u *ProjectTaskUpdateOne) SetNillableAcceptanceCriteria(v *string) *ProjectTaskUpdateOne {
	if v != nil {
		_u.SetAcceptanceCriteria(*v)
	}
	return _u
}

// ClearAcceptanceCriteria clears the value of the "acceptance_criteria" field.
func (_u *ProjectTaskUpdateOne) ClearAcceptanceCriteria() *ProjectTaskUpdateOne {
	_u.mutation.ClearAcceptanceCriteria()
	return _u
}

// SetScopePaths sets the "scope_paths" field.
func (_u *ProjectTaskUpdateOne) SetScopePaths(v []string) *ProjectTaskUpdateOne {
	_u.mutation.SetScopePaths(v)
	return _u
}

// AppendScopePaths appends value to the "scope_paths" field.
func (_u *ProjectTaskUpdateOne) AppendScopePaths(v []string) *ProjectTaskUpdateOne {
	_u.mutation.AppendScopePaths(v)
	return _u
}

// ClearScopePaths clears the value of the "scope_paths" field.
func (_u *ProjectTaskUpdateOne) ClearScopePaths() *ProjectTaskUpdateOne {
	_u.mutation.ClearScopePaths()
	return _u
}

// SetRequiredTools sets the "required_tools" field.
func (_u *ProjectTaskUpdateOne) SetRequiredTools(v []string) *ProjectTaskUpdateOne {
	_u.mutation.SetRequiredTools(v)
	return _u
}

// AppendRequiredTools appends value to the "required_tools" field.
func (_u *ProjectTaskUpdateOne) AppendRequiredTools(v []string) *ProjectTaskUpdateOne {
	_u.mutation.AppendRequiredTools(v)
	return _u
}

// ClearRequiredTools clears the value of the "required_tools" field.
func (_u *ProjectTaskUpdateOne) ClearRequiredTools() *ProjectTaskUpdateOne {
	_u.mutation.ClearRequiredTools()
	return _u
}

// SetTaskType sets the "task_type" field.
func (_u *ProjectTaskUpdateOne) SetTaskType(v string) *ProjectTaskUpdateOne {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *ProjectTaskUpdateOne) SetNillableTaskType(v *string) *ProjectTaskUpdateOne {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *ProjectTaskUpdateOne) SetTags(v []string) *ProjectTaskUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *ProjectTaskUpdateOne) AppendTags(v []string) *ProjectTaskUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *ProjectTaskUpdateOne) ClearTags() *ProjectTaskUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ProjectTaskUpdateOne) SetPriority(v int) *ProjectTaskUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ProjectTaskUpdateOne) SetNillablePriority(v *int) *ProjectTaskUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *ProjectTaskUpdateOne) AddPriority(v int) *ProjectTaskUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProjectTaskUpdateOne) SetStatus(v projecttask.Status) *ProjectTaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProjectTaskUpdateOne) SetNillableStatus(v *projecttask.Status) *ProjectTaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ProjectTaskUpdateOne) SetUserID(v string) *ProjectTaskUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProjectTaskUpdateOne) SetNillableUserID(v *string) *ProjectTaskUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *ProjectTaskUpdateOne) ClearUserID() *ProjectTaskUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetClaimSessionID sets the "claim_session_id" field.
func (_u *ProjectTaskUpdateOne) SetClaimSessionID(v string) *ProjectTaskUpdateOne {
	_u.mutation.SetClaimSessionID(v)
	return _u
}

// SetNillableClaimSessionID sets the "claim_session_id" field if the given value is not nil.
func (_u *ProjectTaskUpdateOne) SetNillableClaimSessionID(v *string) *ProjectTaskUpdateOne {
	if v != nil {
		_u.SetClaimSessionID(*v)
	}
	return _u
}

// ClearClaimSessionID clears the value of the "claim_session_id" field.
func (_u *ProjectTaskUpdateOne) ClearClaimSessionID() *ProjectTaskUpdateOne {
	_u.mutation.ClearClaimSessionID()
	return _u
}

// SetClaimAgentID sets the "claim_agent_id" field.
func (_u *ProjectTaskUpdateOne) SetClaimAgentID(v string) *ProjectTaskUpdateOne {
	_u.mutation.SetClaimAgentID(v)
	return _u
}

// SetNillableClaimAgentID sets the "claim_agent_id" field if the given value is not nil.
func (_u *ProjectTaskUpdateOne) SetNillableClaimAgentID(v *string) *ProjectTaskUpdateOne {
	if v != nil {
		_u.SetClaimAgentID(*v)
	}
	return _u
}

// ClearClaimAgentID clears the value of the "claim_agent_id" field.
func (_u *ProjectTaskUpdateOne) ClearClaimAgentID() *ProjectTaskUpdateOne {
	_u.mutation.ClearClaimAgentID()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *ProjectTaskUpdateOne) SetClaimedAt(v time.Time) *ProjectTaskUpdateOne {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *ProjectTaskUpdateOne) SetNillableClaimedAt(v *time.Time) *ProjectTaskUpdateOne {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *ProjectTaskUpdateOne) ClearClaimedAt() *ProjectTaskUpdateOne {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *ProjectTaskUpdateOne) SetAttemptCount(v int) *ProjectTaskUpdateOne {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *ProjectTaskUpdateOne) SetNillableAttemptCount(v *int) *ProjectTaskUpdateOne {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *ProjectTaskUpdateOne) AddAttemptCount(v int) *ProjectTaskUpdateOne {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetBlockedBy sets the "blocked_by" field.
func (_u *ProjectTaskUpdateOne) SetBlockedBy(v []string) *ProjectTaskUpdateOne {
	_u.mutation.SetBlockedBy(v)
	return _u
}

// AppendBlockedBy appends value to the "blocked_by" field.
func (_u *ProjectTaskUpdateOne) AppendBlockedBy(v []string) *ProjectTaskUpdateOne {
	_u.mutation.AppendBlockedBy(v)
	return _u
}

// ClearBlockedBy clears the value of the "blocked_by" field.
func (_u *ProjectTaskUpdateOne) ClearBlockedBy() *ProjectTaskUpdateOne {
	_u.mutation.ClearBlockedBy()
	return _u
}

// SetRelatedTaskIds sets the "related_task_ids" field.
func (_u *ProjectTaskUpdateOne) SetRelatedTaskIds(v []string) *ProjectTaskUpdateOne {
	_u.mutation.SetRelatedTaskIds(v)
	return _u
}

// AppendRelatedTaskIds appends value to the "related_task_ids" field.
func (_u *ProjectTaskUpdateOne) AppendRelatedTaskIds(v []string) *ProjectTaskUpdateOne {
	_u.mutation.AppendRelatedTaskIds(v)
	return _u
}

// ClearRelatedTaskIds clears the value of the "related_task_ids" field.
func (_u *ProjectTaskUpdateOne) ClearRelatedTaskIds() *ProjectTaskUpdateOne {
	_u.mutation.ClearRelatedTaskIds()
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *ProjectTaskUpdateOne) SetOutcome(v string) *ProjectTaskUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *ProjectTaskUpdateOne) SetNillableOutcome(v *string) *ProjectTaskUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// ClearOutcome clears the value of the "outcome" field.
func (_u *ProjectTaskUpdateOne) ClearOutcome() *ProjectTaskUpdateOne {
	_u.mutation.ClearOutcome()
	return _u
}

// SetCompletionNotes sets the "completion_notes" field.
func (_u *ProjectTaskUpdateOne) SetCompletionNotes(v string) *ProjectTaskUpdateOne {
	_u.mutation.SetCompletionNotes(v)
	return _u
}

// SetNillableCompletionNotes sets the "completion_notes" field if the given value is not nil.
func (_u *ProjectTaskUpdateOne) SetNillableCompletionNotes(v *string) *ProjectTaskUpdateOne {
	if v != nil {
		_u.SetCompletionNotes(*v)
	}
	return _u
}

// ClearCompletionNotes clears the value of the "completion_notes" field.
func (_u *ProjectTaskUpdateOne) ClearCompletionNotes() *ProjectTaskUpdateOne {
	_u.mutation.ClearCompletionNotes()
	return _u
}

// SetFilesChanged sets the "files_changed" field.
func (_u *ProjectTaskUpdateOne) SetFilesChanged(v []string) *ProjectTaskUpdateOne {
	_u.mutation.SetFilesChanged(v)
	return _u
}

// AppendFilesChanged appends value to the "files_changed" field.
func (_u *ProjectTaskUpdateOne) AppendFilesChanged(v []string) *ProjectTaskUpdateOne {
	_u.mutation.AppendFilesChanged(v)
	return _u
}

// ClearFilesChanged clears the value of the "files_changed" field.
func (_u *ProjectTaskUpdateOne) ClearFilesChanged() *ProjectTaskUpdateOne {
	_u.mutation.ClearFilesChanged()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *ProjectTaskUpdateOne) SetLastError(v string) *ProjectTaskUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *ProjectTaskUpdateOne) SetNillableLastError(v *string) *ProjectTaskUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *ProjectTaskUpdateOne) ClearLastError() *ProjectTaskUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetExtra sets the "extra" field.
func (_u *ProjectTaskUpdateOne) SetExtra(v map[string]interface{}) *ProjectTaskUpdateOne {
	_u.mutation.SetExtra(v)
	return _u
}

// ClearExtra clears the value of the "extra" field.
func (_u *ProjectTaskUpdateOne) ClearExtra() *ProjectTaskUpdateOne {
	_u.mutation.ClearExtra()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectTaskUpdateOne) SetUpdatedAt(v time.Time) *ProjectTaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ProjectTaskUpdateOne) SetStartedAt(v time.Time) *ProjectTaskUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ProjectTaskUpdateOne) SetNillableStartedAt(v *time.Time) *ProjectTaskUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ProjectTaskUpdateOne) ClearStartedAt() *ProjectTaskUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ProjectTaskUpdateOne) SetCompletedAt(v time.Time) *ProjectTaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ProjectTaskUpdateOne) SetNillableCompletedAt(v *time.Time) *ProjectTaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ProjectTaskUpdateOne) ClearCompletedAt() *ProjectTaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastTriggeredAt sets the "last_triggered_at" field.
func (_u *ProjectTaskUpdateOne) SetLastTriggeredAt(v time.Time) *ProjectTaskUpdateOne {
	_u.mutation.SetLastTriggeredAt(v)
	return _u
}

// SetNillableLastTriggeredAt sets the "last_triggered_at" field if the given value is not nil.
func (_u *ProjectTaskUpdateOne) SetNillableLastTriggeredAt(v *time.Time) *ProjectTaskUpdateOne {
	if v != nil {
		_u.SetLastTriggeredAt(*v)
	}
	return _u
}

// ClearLastTriggeredAt clears the value of the "last_triggered_at" field.
func (_u *ProjectTaskUpdateOne) ClearLastTriggeredAt() *ProjectTaskUpdateOne {
	_u.mutation.ClearLastTriggeredAt()
	return _u
}

// Mutation returns the ProjectTaskMutation object of the builder.
func (_u *ProjectTaskUpdateOne) Mutation() *ProjectTaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProjectTaskUpdate builder.
func (_u *ProjectTaskUpdateOne) Where(ps ...predicate.ProjectTask) *ProjectTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProjectTaskUpdateOne) Select(field string, fields ...string) *ProjectTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProjectTask entity.
func (_u *ProjectTaskUpdateOne) Save(ctx context.Context) (*ProjectTask, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectTaskUpdateOne) SaveX(ctx context.Context) *ProjectTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProjectTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectTaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := projecttask.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectTaskUpdateOne) check() error {
	if v, ok := _u.mutation.Priority(); ok {
		if err := projecttask.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "ProjectTask.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := projecttask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProjectTask.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProjectTaskUpdateOne) sqlSave(ctx context.Context) (_node *ProjectTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(projecttask.Table, projecttask.Columns, sqlgraph.NewFieldSpec(projecttask.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProjectTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, projecttask.FieldID)
		for _, f := range fields {
			if !projecttask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != projecttask.FieldID {
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
	if value, ok := _u.mutation.WorkingDir(); ok {
		_spec.SetField(projecttask.FieldWorkingDir, field.TypeString, value)
	}
	if _u.mutation.WorkingDirCleared() {
		_spec.ClearField(projecttask.FieldWorkingDir, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(projecttask.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(projecttask.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(projecttask.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.AcceptanceCriteria(); ok {
		_spec.SetField(projecttask.FieldAcceptanceCriteria, field.TypeString, value)
	}
	if _u.mutation.AcceptanceCriteriaCleared() {
		_spec.ClearField(projecttask.FieldAcceptanceCriteria, field.TypeString)
	}
	if value, ok := _u.mutation.ScopePaths(); ok {
		_spec.SetField(projecttask.FieldScopePaths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedScopePaths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, projecttask.FieldScopePaths, value)
		})
	}
	if _u.mutation.ScopePathsCleared() {
		_spec.ClearField(projecttask.FieldScopePaths, field.TypeJSON)
	}
	if value, ok := _u.mutation.RequiredTools(); ok {
		_spec.SetField(projecttask.FieldRequiredTools, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequiredTools(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, projecttask.FieldRequiredTools, value)
		})
	}
	if _u.mutation.RequiredToolsCleared() {
		_spec.ClearField(projecttask.FieldRequiredTools, field.TypeJSON)
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(projecttask.FieldTaskType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(projecttask.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, projecttask.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(projecttask.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(projecttask.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(projecttask.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(projecttask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(projecttask.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(projecttask.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimSessionID(); ok {
		_spec.SetField(projecttask.FieldClaimSessionID, field.TypeString, value)
	}
	if _u.mutation.ClaimSessionIDCleared() {
		_spec.ClearField(projecttask.FieldClaimSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimAgentID(); ok {
		_spec.SetField(projecttask.FieldClaimAgentID, field.TypeString, value)
	}
	if _u.mutation.ClaimAgentIDCleared() {
		_spec.ClearField(projecttask.FieldClaimAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(projecttask.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(projecttask.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(projecttask.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(projecttask.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BlockedBy(); ok {
		_spec.SetField(projecttask.FieldBlockedBy, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBlockedBy(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, projecttask.FieldBlockedBy, value)
		})
	}
	if _u.mutation.BlockedByCleared() {
		_spec.ClearField(projecttask.FieldBlockedBy, field.TypeJSON)
	}
	if value, ok := _u.mutation.RelatedTaskIds(); ok {
		_spec.SetField(projecttask.FieldRelatedTaskIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRelatedTaskIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, projecttask.FieldRelatedTaskIds, value)
		})
	}
	if _u.mutation.RelatedTaskIdsCleared() {
		_spec.ClearField(projecttask.FieldRelatedTaskIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(projecttask.FieldOutcome, field.TypeString, value)
	}
	if _u.mutation.OutcomeCleared() {
		_spec.ClearField(projecttask.FieldOutcome, field.TypeString)
	}
	if value, ok := _u.mutation.CompletionNotes(); ok {
		_spec.SetField(projecttask.FieldCompletionNotes, field.TypeString, value)
	}
	if _u.mutation.CompletionNotesCleared() {
		_spec.ClearField(projecttask.FieldCompletionNotes, field.TypeString)
	}
	if value, ok := _u.mutation.FilesChanged(); ok {
		_spec.SetField(projecttask.FieldFilesChanged, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFilesChanged(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, projecttask.FieldFilesChanged, value)
		})
	}
	if _u.mutation.FilesChangedCleared() {
		_spec.ClearField(projecttask.FieldFilesChanged, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(projecttask.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(projecttask.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.Extra(); ok {
		_spec.SetField(projecttask.FieldExtra, field.TypeJSON, value)
	}
	if _u.mutation.ExtraCleared() {
		_spec.ClearField(projecttask.FieldExtra, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(projecttask.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(projecttask.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(projecttask.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(projecttask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(projecttask.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastTriggeredAt(); ok {
		_spec.SetField(projecttask.FieldLastTriggeredAt, field.TypeTime, value)
	}
	if _u.mutation.LastTriggeredAtCleared() {
		_spec.ClearField(projecttask.FieldLastTriggeredAt, field.TypeTime)
	}
	_node = &ProjectTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{projecttask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
