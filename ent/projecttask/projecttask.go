// Code generated by ent, DO NOT EDIT.

package projecttask

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the projecttask type in the database.
	Label = "project_task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "task_id"
	// FieldWorkingDir holds the string denoting the working_dir field in the database.
	FieldWorkingDir = "working_dir"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldAcceptanceCriteria holds the string denoting the acceptance_criteria field in the database.
	FieldAcceptanceCriteria = "acceptance_criteria"
	// FieldScopePaths holds the string denoting the scope_paths field in the database.
	FieldScopePaths = "scope_paths"
	// FieldRequiredTools holds the string denoting the required_tools field in the database.
	FieldRequiredTools = "required_tools"
	// FieldTaskType holds the string denoting the task_type field in the database.
	FieldTaskType = "task_type"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldClaimSessionID holds the string denoting the claim_session_id field in the database.
	FieldClaimSessionID = "claim_session_id"
	// FieldClaimAgentID holds the string denoting the claim_agent_id field in the database.
	FieldClaimAgentID = "claim_agent_id"
	// FieldClaimedAt holds the string denoting the claimed_at field in the database.
	FieldClaimedAt = "claimed_at"
	// FieldAttemptCount holds the string denoting the attempt_count field in the database.
	FieldAttemptCount = "attempt_count"
	// FieldBlockedBy holds the string denoting the blocked_by field in the database.
	FieldBlockedBy = "blocked_by"
	// FieldRelatedTaskIds holds the string denoting the related_task_ids field in the database.
	FieldRelatedTaskIds = "related_task_ids"
	// FieldOutcome holds the string denoting the outcome field in the database.
	FieldOutcome = "outcome"
	// FieldCompletionNotes holds the string denoting the completion_notes field in the database.
	FieldCompletionNotes = "completion_notes"
	// FieldFilesChanged holds the string denoting the files_changed field in the database.
	FieldFilesChanged = "files_changed"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// FieldExtra holds the string denoting the extra field in the database.
	FieldExtra = "extra"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldLastTriggeredAt holds the string denoting the last_triggered_at field in the database.
	FieldLastTriggeredAt = "last_triggered_at"
	// Table holds the table name of the projecttask in the database.
	Table = "project_tasks"
)

// Columns holds all SQL columns for projecttask fields.
var Columns = []string{
	FieldID,
	FieldWorkingDir,
	FieldTitle,
	FieldDescription,
	FieldAcceptanceCriteria,
	FieldScopePaths,
	FieldRequiredTools,
	FieldTaskType,
	FieldTags,
	FieldPriority,
	FieldStatus,
	FieldUserID,
	FieldClaimSessionID,
	FieldClaimAgentID,
	FieldClaimedAt,
	FieldAttemptCount,
	FieldBlockedBy,
	FieldRelatedTaskIds,
	FieldOutcome,
	FieldCompletionNotes,
	FieldFilesChanged,
	FieldLastError,
	FieldExtra,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldLastTriggeredAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	PriorityValidator func(int) error
	// DefaultAttemptCount holds the default value on creation for the "attempt_count" field.
	DefaultAttemptCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusBacklog is the default value of the Status enum.
const DefaultStatus = StatusBacklog

// Status values.
const (
	StatusBacklog    Status = "backlog"
	StatusReady      Status = "ready"
	StatusBlocked    Status = "blocked"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusBacklog, StatusReady, StatusBlocked, StatusInProgress, StatusDone, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("projecttask: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ProjectTask queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkingDir orders the results by the working_dir field.
func ByWorkingDir(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkingDir, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByAcceptanceCriteria orders the results by the acceptance_criteria field.
func ByAcceptanceCriteria(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAcceptanceCriteria, opts...).ToFunc()
}

// ByTaskType orders the results by the task_type field.
func ByTaskType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskType, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByClaimSessionID orders the results by the claim_session_id field.
func ByClaimSessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimSessionID, opts...).ToFunc()
}

// ByClaimAgentID orders the results by the claim_agent_id field.
func ByClaimAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimAgentID, opts...).ToFunc()
}

// ByClaimedAt orders the results by the claimed_at field.
func ByClaimedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimedAt, opts...).ToFunc()
}

// ByAttemptCount orders the results by the attempt_count field.
func ByAttemptCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptCount, opts...).ToFunc()
}

// ByOutcome orders the results by the outcome field.
func ByOutcome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcome, opts...).ToFunc()
}

// ByCompletionNotes orders the results by the completion_notes field.
func ByCompletionNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletionNotes, opts...).ToFunc()
}

// ByLastError orders the results by the last_error field.
func ByLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastError, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByLastTriggeredAt orders the results by the last_triggered_at field.
func ByLastTriggeredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastTriggeredAt, opts...).ToFunc()
}
