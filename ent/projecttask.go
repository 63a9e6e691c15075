// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kestrel-ai/kestrel/ent/projecttask"
)

// ProjectTask is the model entity for the ProjectTask schema.
type ProjectTask struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorkingDir holds the value of the "working_dir" field.
	WorkingDir string `json:"working_dir,omitempty"`
	// Concept phrase; curiosity upserts key on lower(title)
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// AcceptanceCriteria holds the value of the "acceptance_criteria" field.
	AcceptanceCriteria string `json:"acceptance_criteria,omitempty"`
	// ScopePaths holds the value of the "scope_paths" field.
	ScopePaths []string `json:"scope_paths,omitempty"`
	// RequiredTools holds the value of the "required_tools" field.
	RequiredTools []string `json:"required_tools,omitempty"`
	// curiosity, exploration, summary, ...
	TaskType string `json:"task_type,omitempty"`
	// Tags holds the value of the "tags" field.
	Tags []string `json:"tags,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority int `json:"priority,omitempty"`
	// Status holds the value of the "status" field.
	Status projecttask.Status `json:"status,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// ClaimSessionID holds the value of the "claim_session_id" field.
	ClaimSessionID *string `json:"claim_session_id,omitempty"`
	// ClaimAgentID holds the value of the "claim_agent_id" field.
	ClaimAgentID *string `json:"claim_agent_id,omitempty"`
	// ClaimedAt holds the value of the "claimed_at" field.
	ClaimedAt *time.Time `json:"claimed_at,omitempty"`
	// AttemptCount holds the value of the "attempt_count" field.
	AttemptCount int `json:"attempt_count,omitempty"`
	// BlockedBy holds the value of the "blocked_by" field.
	BlockedBy []string `json:"blocked_by,omitempty"`
	// RelatedTaskIds holds the value of the "related_task_ids" field.
	RelatedTaskIds []string `json:"related_task_ids,omitempty"`
	// Outcome holds the value of the "outcome" field.
	Outcome string `json:"outcome,omitempty"`
	// CompletionNotes holds the value of the "completion_notes" field.
	CompletionNotes string `json:"completion_notes,omitempty"`
	// FilesChanged holds the value of the "files_changed" field.
	FilesChanged []string `json:"files_changed,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError string `json:"last_error,omitempty"`
	// Domain-specific payload; access via models.JSONValue helpers
	Extra map[string]interface{} `json:"extra,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// LastTriggeredAt holds the value of the "last_triggered_at" field.
	LastTriggeredAt *time.Time `json:"last_triggered_at,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProjectTask) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case projecttask.FieldScopePaths, projecttask.FieldRequiredTools, projecttask.FieldTags, projecttask.FieldBlockedBy, projecttask.FieldRelatedTaskIds, projecttask.FieldFilesChanged, projecttask.FieldExtra:
			values[i] = new([]byte)
		case projecttask.FieldPriority, projecttask.FieldAttemptCount:
			values[i] = new(sql.NullInt64)
		case projecttask.FieldID, projecttask.FieldWorkingDir, projecttask.FieldTitle, projecttask.FieldDescription, projecttask.FieldAcceptanceCriteria, projecttask.FieldTaskType, projecttask.FieldStatus, projecttask.FieldUserID, projecttask.FieldClaimSessionID, projecttask.FieldClaimAgentID, projecttask.FieldOutcome, projecttask.FieldCompletionNotes, projecttask.FieldLastError:
			values[i] = new(sql.NullString)
		case projecttask.FieldClaimedAt, projecttask.FieldCreatedAt, projecttask.FieldUpdatedAt, projecttask.FieldStartedAt, projecttask.FieldCompletedAt, projecttask.FieldLastTriggeredAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProjectTask fields.
func (_m *ProjectTask) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case projecttask.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case projecttask.FieldWorkingDir:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field working_dir", values[i])
			} else if value.Valid {
				_m.WorkingDir = value.String
			}
		case projecttask.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case projecttask.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case projecttask.FieldAcceptanceCriteria:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field acceptance_criteria", values[i])
			} else if value.Valid {
				_m.AcceptanceCriteria = value.String
			}
		case projecttask.FieldScopePaths:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field scope_paths", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ScopePaths); err != nil {
					return fmt.Errorf("unmarshal field scope_paths: %w", err)
				}
			}
		case projecttask.FieldRequiredTools:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field required_tools", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RequiredTools); err != nil {
					return fmt.Errorf("unmarshal field required_tools: %w", err)
				}
			}
		case projecttask.FieldTaskType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_type", values[i])
			} else if value.Valid {
				_m.TaskType = value.String
			}
		case projecttask.FieldTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tags); err != nil {
					return fmt.Errorf("unmarshal field tags: %w", err)
				}
			}
		case projecttask.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case projecttask.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = projecttask.Status(value.String)
			}
		case projecttask.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case projecttask.FieldClaimSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claim_session_id", values[i])
			} else if value.Valid {
				_m.ClaimSessionID = new(string)
				*_m.ClaimSessionID = value.String
			}
		case projecttask.FieldClaimAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claim_agent_id", values[i])
			} else if value.Valid {
				_m.ClaimAgentID = new(string)
				*_m.ClaimAgentID = value.String
			}
		case projecttask.FieldClaimedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field claimed_at", values[i])
			} else if value.Valid {
				_m.ClaimedAt = new(time.Time)
				*_m.ClaimedAt = value.Time
			}
		case projecttask.FieldAttemptCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_count", values[i])
			} else if value.Valid {
				_m.AttemptCount = int(value.Int64)
			}
		case projecttask.FieldBlockedBy:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field blocked_by", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BlockedBy); err != nil {
					return fmt.Errorf("unmarshal field blocked_by: %w", err)
				}
			}
		case projecttask.FieldRelatedTaskIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field related_task_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RelatedTaskIds); err != nil {
					return fmt.Errorf("unmarshal field related_task_ids: %w", err)
				}
			}
		case projecttask.FieldOutcome:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome", values[i])
			} else if value.Valid {
				_m.Outcome = value.String
			}
		case projecttask.FieldCompletionNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field completion_notes", values[i])
			} else if value.Valid {
				_m.CompletionNotes = value.String
			}
		case projecttask.FieldFilesChanged:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field files_changed", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FilesChanged); err != nil {
					return fmt.Errorf("unmarshal field files_changed: %w", err)
				}
			}
		case projecttask.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				_m.LastError = value.String
			}
		case projecttask.FieldExtra:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extra", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Extra); err != nil {
					return fmt.Errorf("unmarshal field extra: %w", err)
				}
			}
		case projecttask.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case projecttask.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case projecttask.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case projecttask.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case projecttask.FieldLastTriggeredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_triggered_at", values[i])
			} else if value.Valid {
				_m.LastTriggeredAt = new(time.Time)
				*_m.LastTriggeredAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProjectTask.
// This includes values selected through modifiers, order, etc.
func (_m *ProjectTask) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProjectTask.
// Note that you need to call ProjectTask.Unwrap() before calling this method if this ProjectTask
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProjectTask) Update() *ProjectTaskUpdateOne {
	return NewProjectTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProjectTask entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProjectTask) Unwrap() *ProjectTask {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProjectTask is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProjectTask) String() string {
	var builder strings.Builder
	builder.WriteString("ProjectTask(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("working_dir=")
	builder.WriteString(_m.WorkingDir)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("acceptance_criteria=")
	builder.WriteString(_m.AcceptanceCriteria)
	builder.WriteString(", ")
	builder.WriteString("scope_paths=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScopePaths))
	builder.WriteString(", ")
	builder.WriteString("required_tools=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequiredTools))
	builder.WriteString(", ")
	builder.WriteString("task_type=")
	builder.WriteString(_m.TaskType)
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tags))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	if v := _m.ClaimSessionID; v != nil {
		builder.WriteString("claim_session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ClaimAgentID; v != nil {
		builder.WriteString("claim_agent_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ClaimedAt; v != nil {
		builder.WriteString("claimed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("attempt_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptCount))
	builder.WriteString(", ")
	builder.WriteString("blocked_by=")
	builder.WriteString(fmt.Sprintf("%v", _m.BlockedBy))
	builder.WriteString(", ")
	builder.WriteString("related_task_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.RelatedTaskIds))
	builder.WriteString(", ")
	builder.WriteString("outcome=")
	builder.WriteString(_m.Outcome)
	builder.WriteString(", ")
	builder.WriteString("completion_notes=")
	builder.WriteString(_m.CompletionNotes)
	builder.WriteString(", ")
	builder.WriteString("files_changed=")
	builder.WriteString(fmt.Sprintf("%v", _m.FilesChanged))
	builder.WriteString(", ")
	builder.WriteString("last_error=")
	builder.WriteString(_m.LastError)
	builder.WriteString(", ")
	builder.WriteString("extra=")
	builder.WriteString(fmt.Sprintf("%v", _m.Extra))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastTriggeredAt; v != nil {
		builder.WriteString("last_triggered_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ProjectTasks is a parsable slice of ProjectTask.
type ProjectTasks []*ProjectTask
