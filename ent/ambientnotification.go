// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kestrel-ai/kestrel/ent/ambientnotification"
)

// AmbientNotification is the model entity for the AmbientNotification schema.
type AmbientNotification struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// TargetMedium holds the value of the "target_medium" field.
	TargetMedium string `json:"target_medium,omitempty"`
	// Channel or destination within the medium
	TargetLocation string `json:"target_location,omitempty"`
	// Message holds the value of the "message" field.
	Message string `json:"message,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority ambientnotification.Priority `json:"priority,omitempty"`
	// RoutingReasoning holds the value of the "routing_reasoning" field.
	RoutingReasoning string `json:"routing_reasoning,omitempty"`
	// Status holds the value of the "status" field.
	Status ambientnotification.Status `json:"status,omitempty"`
	// Escalation chain; ids only, traversal by bounded walk
	ParentNotificationID *string `json:"parent_notification_id,omitempty"`
	// Acknowledged holds the value of the "acknowledged" field.
	Acknowledged bool `json:"acknowledged,omitempty"`
	// AcknowledgedAt holds the value of the "acknowledged_at" field.
	AcknowledgedAt *time.Time `json:"acknowledged_at,omitempty"`
	// ResponseTimeSeconds holds the value of the "response_time_seconds" field.
	ResponseTimeSeconds *int `json:"response_time_seconds,omitempty"`
	// ContextSnapshot holds the value of the "context_snapshot" field.
	ContextSnapshot map[string]interface{} `json:"context_snapshot,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AmbientNotification) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ambientnotification.FieldContextSnapshot:
			values[i] = new([]byte)
		case ambientnotification.FieldAcknowledged:
			values[i] = new(sql.NullBool)
		case ambientnotification.FieldResponseTimeSeconds:
			values[i] = new(sql.NullInt64)
		case ambientnotification.FieldID, ambientnotification.FieldUserID, ambientnotification.FieldTargetMedium, ambientnotification.FieldTargetLocation, ambientnotification.FieldMessage, ambientnotification.FieldPriority, ambientnotification.FieldRoutingReasoning, ambientnotification.FieldStatus, ambientnotification.FieldParentNotificationID:
			values[i] = new(sql.NullString)
		case ambientnotification.FieldAcknowledgedAt, ambientnotification.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AmbientNotification fields.
func (_m *AmbientNotification) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ambientnotification.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case ambientnotification.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case ambientnotification.FieldTargetMedium:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_medium", values[i])
			} else if value.Valid {
				_m.TargetMedium = value.String
			}
		case ambientnotification.FieldTargetLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_location", values[i])
			} else if value.Valid {
				_m.TargetLocation = value.String
			}
		case ambientnotification.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		case ambientnotification.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = ambientnotification.Priority(value.String)
			}
		case ambientnotification.FieldRoutingReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field routing_reasoning", values[i])
			} else if value.Valid {
				_m.RoutingReasoning = value.String
			}
		case ambientnotification.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = ambientnotification.Status(value.String)
			}
		case ambientnotification.FieldParentNotificationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_notification_id", values[i])
			} else if value.Valid {
				_m.ParentNotificationID = new(string)
				*_m.ParentNotificationID = value.String
			}
		case ambientnotification.FieldAcknowledged:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field acknowledged", values[i])
			} else if value.Valid {
				_m.Acknowledged = value.Bool
			}
		case ambientnotification.FieldAcknowledgedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field acknowledged_at", values[i])
			} else if value.Valid {
				_m.AcknowledgedAt = new(time.Time)
				*_m.AcknowledgedAt = value.Time
			}
		case ambientnotification.FieldResponseTimeSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field response_time_seconds", values[i])
			} else if value.Valid {
				_m.ResponseTimeSeconds = new(int)
				*_m.ResponseTimeSeconds = int(value.Int64)
			}
		case ambientnotification.FieldContextSnapshot:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field context_snapshot", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ContextSnapshot); err != nil {
					return fmt.Errorf("unmarshal field context_snapshot: %w", err)
				}
			}
		case ambientnotification.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AmbientNotification.
// This includes values selected through modifiers, order, etc.
func (_m *AmbientNotification) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AmbientNotification.
// Note that you need to call AmbientNotification.Unwrap() before calling this method if this AmbientNotification
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AmbientNotification) Update() *AmbientNotificationUpdateOne {
	return NewAmbientNotificationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AmbientNotification entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AmbientNotification) Unwrap() *AmbientNotification {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AmbientNotification is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AmbientNotification) String() string {
	var builder strings.Builder
	builder.WriteString("AmbientNotification(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("target_medium=")
	builder.WriteString(_m.TargetMedium)
	builder.WriteString(", ")
	builder.WriteString("target_location=")
	builder.WriteString(_m.TargetLocation)
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("routing_reasoning=")
	builder.WriteString(_m.RoutingReasoning)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ParentNotificationID; v != nil {
		builder.WriteString("parent_notification_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("acknowledged=")
	builder.WriteString(fmt.Sprintf("%v", _m.Acknowledged))
	builder.WriteString(", ")
	if v := _m.AcknowledgedAt; v != nil {
		builder.WriteString("acknowledged_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ResponseTimeSeconds; v != nil {
		builder.WriteString("response_time_seconds=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("context_snapshot=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContextSnapshot))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AmbientNotifications is a parsable slice of AmbientNotification.
type AmbientNotifications []*AmbientNotification
