// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kestrel-ai/kestrel/ent/explorationfinding"
)

// ExplorationFinding is the model entity for the ExplorationFinding schema.
type ExplorationFinding struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// Finding holds the value of the "finding" field.
	Finding string `json:"finding,omitempty"`
	// SourceContext holds the value of the "source_context" field.
	SourceContext string `json:"source_context,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// WorthSharing holds the value of the "worth_sharing" field.
	WorthSharing bool `json:"worth_sharing,omitempty"`
	// ShareMessage holds the value of the "share_message" field.
	ShareMessage string `json:"share_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExplorationFinding) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case explorationfinding.FieldWorthSharing:
			values[i] = new(sql.NullBool)
		case explorationfinding.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case explorationfinding.FieldID, explorationfinding.FieldTaskID, explorationfinding.FieldFinding, explorationfinding.FieldSourceContext, explorationfinding.FieldShareMessage:
			values[i] = new(sql.NullString)
		case explorationfinding.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExplorationFinding fields.
func (_m *ExplorationFinding) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case explorationfinding.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case explorationfinding.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case explorationfinding.FieldFinding:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field finding", values[i])
			} else if value.Valid {
				_m.Finding = value.String
			}
		case explorationfinding.FieldSourceContext:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_context", values[i])
			} else if value.Valid {
				_m.SourceContext = value.String
			}
		case explorationfinding.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case explorationfinding.FieldWorthSharing:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field worth_sharing", values[i])
			} else if value.Valid {
				_m.WorthSharing = value.Bool
			}
		case explorationfinding.FieldShareMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field share_message", values[i])
			} else if value.Valid {
				_m.ShareMessage = value.String
			}
		case explorationfinding.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExplorationFinding.
// This includes values selected through modifiers, order, etc.
func (_m *ExplorationFinding) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ExplorationFinding.
// Note that you need to call ExplorationFinding.Unwrap() before calling this method if this ExplorationFinding
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExplorationFinding) Update() *ExplorationFindingUpdateOne {
	return NewExplorationFindingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExplorationFinding entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExplorationFinding) Unwrap() *ExplorationFinding {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExplorationFinding is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExplorationFinding) String() string {
	var builder strings.Builder
	builder.WriteString("ExplorationFinding(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("finding=")
	builder.WriteString(_m.Finding)
	builder.WriteString(", ")
	builder.WriteString("source_context=")
	builder.WriteString(_m.SourceContext)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("worth_sharing=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorthSharing))
	builder.WriteString(", ")
	builder.WriteString("share_message=")
	builder.WriteString(_m.ShareMessage)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExplorationFindings is a parsable slice of ExplorationFinding.
type ExplorationFindings []*ExplorationFinding
