// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kestrel-ai/kestrel/ent/daemonstate"
)

// DaemonState is the model entity for the DaemonState schema.
type DaemonState struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SuppressedUntil holds the value of the "suppressed_until" field.
	SuppressedUntil *time.Time `json:"suppressed_until,omitempty"`
	// LastInteractionAt holds the value of the "last_interaction_at" field.
	LastInteractionAt *time.Time `json:"last_interaction_at,omitempty"`
	// LastProactiveContactAt holds the value of the "last_proactive_contact_at" field.
	LastProactiveContactAt *time.Time `json:"last_proactive_contact_at,omitempty"`
	// AutonomousWorkCount holds the value of the "autonomous_work_count" field.
	AutonomousWorkCount int `json:"autonomous_work_count,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DaemonState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case daemonstate.FieldAutonomousWorkCount:
			values[i] = new(sql.NullInt64)
		case daemonstate.FieldID:
			values[i] = new(sql.NullString)
		case daemonstate.FieldSuppressedUntil, daemonstate.FieldLastInteractionAt, daemonstate.FieldLastProactiveContactAt, daemonstate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DaemonState fields.
func (_m *DaemonState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case daemonstate.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case daemonstate.FieldSuppressedUntil:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field suppressed_until", values[i])
			} else if value.Valid {
				_m.SuppressedUntil = new(time.Time)
				*_m.SuppressedUntil = value.Time
			}
		case daemonstate.FieldLastInteractionAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_interaction_at", values[i])
			} else if value.Valid {
				_m.LastInteractionAt = new(time.Time)
				*_m.LastInteractionAt = value.Time
			}
		case daemonstate.FieldLastProactiveContactAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_proactive_contact_at", values[i])
			} else if value.Valid {
				_m.LastProactiveContactAt = new(time.Time)
				*_m.LastProactiveContactAt = value.Time
			}
		case daemonstate.FieldAutonomousWorkCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field autonomous_work_count", values[i])
			} else if value.Valid {
				_m.AutonomousWorkCount = int(value.Int64)
			}
		case daemonstate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DaemonState.
// This includes values selected through modifiers, order, etc.
func (_m *DaemonState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DaemonState.
// Note that you need to call DaemonState.Unwrap() before calling this method if this DaemonState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DaemonState) Update() *DaemonStateUpdateOne {
	return NewDaemonStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DaemonState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DaemonState) Unwrap() *DaemonState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DaemonState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DaemonState) String() string {
	var builder strings.Builder
	builder.WriteString("DaemonState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.SuppressedUntil; v != nil {
		builder.WriteString("suppressed_until=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastInteractionAt; v != nil {
		builder.WriteString("last_interaction_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastProactiveContactAt; v != nil {
		builder.WriteString("last_proactive_contact_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("autonomous_work_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AutonomousWorkCount))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DaemonStates is a parsable slice of DaemonState.
type DaemonStates []*DaemonState
