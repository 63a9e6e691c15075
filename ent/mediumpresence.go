// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kestrel-ai/kestrel/ent/mediumpresence"
)

// MediumPresence is the model entity for the MediumPresence schema.
type MediumPresence struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Medium holds the value of the "medium" field.
	Medium string `json:"medium,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// LastHeartbeat holds the value of the "last_heartbeat" field.
	LastHeartbeat time.Time `json:"last_heartbeat,omitempty"`
	// Available channels: [{id, name, kind}, ...]
	Channels     []map[string]interface{} `json:"channels,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MediumPresence) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mediumpresence.FieldChannels:
			values[i] = new([]byte)
		case mediumpresence.FieldID, mediumpresence.FieldMedium, mediumpresence.FieldUserID, mediumpresence.FieldStatus:
			values[i] = new(sql.NullString)
		case mediumpresence.FieldLastHeartbeat:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MediumPresence fields.
func (_m *MediumPresence) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mediumpresence.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case mediumpresence.FieldMedium:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field medium", values[i])
			} else if value.Valid {
				_m.Medium = value.String
			}
		case mediumpresence.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case mediumpresence.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case mediumpresence.FieldLastHeartbeat:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat", values[i])
			} else if value.Valid {
				_m.LastHeartbeat = value.Time
			}
		case mediumpresence.FieldChannels:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field channels", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Channels); err != nil {
					return fmt.Errorf("unmarshal field channels: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MediumPresence.
// This includes values selected through modifiers, order, etc.
func (_m *MediumPresence) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MediumPresence.
// Note that you need to call MediumPresence.Unwrap() before calling this method if this MediumPresence
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MediumPresence) Update() *MediumPresenceUpdateOne {
	return NewMediumPresenceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MediumPresence entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MediumPresence) Unwrap() *MediumPresence {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MediumPresence is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MediumPresence) String() string {
	var builder strings.Builder
	builder.WriteString("MediumPresence(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("medium=")
	builder.WriteString(_m.Medium)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("last_heartbeat=")
	builder.WriteString(_m.LastHeartbeat.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("channels=")
	builder.WriteString(fmt.Sprintf("%v", _m.Channels))
	builder.WriteByte(')')
	return builder.String()
}

// MediumPresences is a parsable slice of MediumPresence.
type MediumPresences []*MediumPresence
