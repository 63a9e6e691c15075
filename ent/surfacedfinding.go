// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kestrel-ai/kestrel/ent/surfacedfinding"
)

// SurfacedFinding is the model entity for the SurfacedFinding schema.
type SurfacedFinding struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// FindingID holds the value of the "finding_id" field.
	FindingID string `json:"finding_id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SurfacedFinding) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case surfacedfinding.FieldID, surfacedfinding.FieldFindingID, surfacedfinding.FieldSessionID:
			values[i] = new(sql.NullString)
		case surfacedfinding.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SurfacedFinding fields.
func (_m *SurfacedFinding) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case surfacedfinding.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case surfacedfinding.FieldFindingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field finding_id", values[i])
			} else if value.Valid {
				_m.FindingID = value.String
			}
		case surfacedfinding.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case surfacedfinding.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SurfacedFinding.
// This includes values selected through modifiers, order, etc.
func (_m *SurfacedFinding) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SurfacedFinding.
// Note that you need to call SurfacedFinding.Unwrap() before calling this method if this SurfacedFinding
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SurfacedFinding) Update() *SurfacedFindingUpdateOne {
	return NewSurfacedFindingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SurfacedFinding entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SurfacedFinding) Unwrap() *SurfacedFinding {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SurfacedFinding is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SurfacedFinding) String() string {
	var builder strings.Builder
	builder.WriteString("SurfacedFinding(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("finding_id=")
	builder.WriteString(_m.FindingID)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SurfacedFindings is a parsable slice of SurfacedFinding.
type SurfacedFindings []*SurfacedFinding
