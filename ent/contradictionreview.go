// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kestrel-ai/kestrel/ent/contradictionreview"
)

// ContradictionReview is the model entity for the ContradictionReview schema.
type ContradictionReview struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// NewFact holds the value of the "new_fact" field.
	NewFact string `json:"new_fact,omitempty"`
	// ExistingFactUUID holds the value of the "existing_fact_uuid" field.
	ExistingFactUUID string `json:"existing_fact_uuid,omitempty"`
	// ExistingFact holds the value of the "existing_fact" field.
	ExistingFact string `json:"existing_fact,omitempty"`
	// Similarity holds the value of the "similarity" field.
	Similarity float64 `json:"similarity,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// Context holds the value of the "context" field.
	Context string `json:"context,omitempty"`
	// EntityNames holds the value of the "entity_names" field.
	EntityNames []string `json:"entity_names,omitempty"`
	// Tenant partition in the knowledge graph
	GroupID string `json:"group_id,omitempty"`
	// Status holds the value of the "status" field.
	Status contradictionreview.Status `json:"status,omitempty"`
	// Resolution holds the value of the "resolution" field.
	Resolution string `json:"resolution,omitempty"`
	// Resolver holds the value of the "resolver" field.
	Resolver string `json:"resolver,omitempty"`
	// ResolvedAt holds the value of the "resolved_at" field.
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ContradictionReview) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contradictionreview.FieldEntityNames:
			values[i] = new([]byte)
		case contradictionreview.FieldSimilarity:
			values[i] = new(sql.NullFloat64)
		case contradictionreview.FieldID, contradictionreview.FieldNewFact, contradictionreview.FieldExistingFactUUID, contradictionreview.FieldExistingFact, contradictionreview.FieldReason, contradictionreview.FieldSource, contradictionreview.FieldContext, contradictionreview.FieldGroupID, contradictionreview.FieldStatus, contradictionreview.FieldResolution, contradictionreview.FieldResolver:
			values[i] = new(sql.NullString)
		case contradictionreview.FieldResolvedAt, contradictionreview.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ContradictionReview fields.
func (_m *ContradictionReview) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contradictionreview.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case contradictionreview.FieldNewFact:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field new_fact", values[i])
			} else if value.Valid {
				_m.NewFact = value.String
			}
		case contradictionreview.FieldExistingFactUUID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field existing_fact_uuid", values[i])
			} else if value.Valid {
				_m.ExistingFactUUID = value.String
			}
		case contradictionreview.FieldExistingFact:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field existing_fact", values[i])
			} else if value.Valid {
				_m.ExistingFact = value.String
			}
		case contradictionreview.FieldSimilarity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field similarity", values[i])
			} else if value.Valid {
				_m.Similarity = value.Float64
			}
		case contradictionreview.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case contradictionreview.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case contradictionreview.FieldContext:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field context", values[i])
			} else if value.Valid {
				_m.Context = value.String
			}
		case contradictionreview.FieldEntityNames:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field entity_names", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EntityNames); err != nil {
					return fmt.Errorf("unmarshal field entity_names: %w", err)
				}
			}
		case contradictionreview.FieldGroupID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field group_id", values[i])
			} else if value.Valid {
				_m.GroupID = value.String
			}
		case contradictionreview.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = contradictionreview.Status(value.String)
			}
		case contradictionreview.FieldResolution:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolution", values[i])
			} else if value.Valid {
				_m.Resolution = value.String
			}
		case contradictionreview.FieldResolver:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolver", values[i])
			} else if value.Valid {
				_m.Resolver = value.String
			}
		case contradictionreview.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				_m.ResolvedAt = new(time.Time)
				*_m.ResolvedAt = value.Time
			}
		case contradictionreview.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ContradictionReview.
// This includes values selected through modifiers, order, etc.
func (_m *ContradictionReview) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ContradictionReview.
// Note that you need to call ContradictionReview.Unwrap() before calling this method if this ContradictionReview
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ContradictionReview) Update() *ContradictionReviewUpdateOne {
	return NewContradictionReviewClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ContradictionReview entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ContradictionReview) Unwrap() *ContradictionReview {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ContradictionReview is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ContradictionReview) String() string {
	var builder strings.Builder
	builder.WriteString("ContradictionReview(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("new_fact=")
	builder.WriteString(_m.NewFact)
	builder.WriteString(", ")
	builder.WriteString("existing_fact_uuid=")
	builder.WriteString(_m.ExistingFactUUID)
	builder.WriteString(", ")
	builder.WriteString("existing_fact=")
	builder.WriteString(_m.ExistingFact)
	builder.WriteString(", ")
	builder.WriteString("similarity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Similarity))
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("context=")
	builder.WriteString(_m.Context)
	builder.WriteString(", ")
	builder.WriteString("entity_names=")
	builder.WriteString(fmt.Sprintf("%v", _m.EntityNames))
	builder.WriteString(", ")
	builder.WriteString("group_id=")
	builder.WriteString(_m.GroupID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("resolution=")
	builder.WriteString(_m.Resolution)
	builder.WriteString(", ")
	builder.WriteString("resolver=")
	builder.WriteString(_m.Resolver)
	builder.WriteString(", ")
	if v := _m.ResolvedAt; v != nil {
		builder.WriteString("resolved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ContradictionReviews is a parsable slice of ContradictionReview.
type ContradictionReviews []*ContradictionReview
