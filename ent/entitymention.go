// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kestrel-ai/kestrel/ent/entitymention"
)

// EntityMention is the model entity for the EntityMention schema.
type EntityMention struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ConversationID holds the value of the "conversation_id" field.
	ConversationID string `json:"conversation_id,omitempty"`
	// EntityType holds the value of the "entity_type" field.
	EntityType string `json:"entity_type,omitempty"`
	// RawValue holds the value of the "raw_value" field.
	RawValue string `json:"raw_value,omitempty"`
	// NormalizedValue holds the value of the "normalized_value" field.
	NormalizedValue string `json:"normalized_value,omitempty"`
	// Fingerprint holds the value of the "fingerprint" field.
	Fingerprint string `json:"fingerprint,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// SpanStart holds the value of the "span_start" field.
	SpanStart int `json:"span_start,omitempty"`
	// SpanEnd holds the value of the "span_end" field.
	SpanEnd int `json:"span_end,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EntityMention) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case entitymention.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case entitymention.FieldSpanStart, entitymention.FieldSpanEnd:
			values[i] = new(sql.NullInt64)
		case entitymention.FieldID, entitymention.FieldConversationID, entitymention.FieldEntityType, entitymention.FieldRawValue, entitymention.FieldNormalizedValue, entitymention.FieldFingerprint:
			values[i] = new(sql.NullString)
		case entitymention.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EntityMention fields.
func (_m *EntityMention) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case entitymention.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case entitymention.FieldConversationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conversation_id", values[i])
			} else if value.Valid {
				_m.ConversationID = value.String
			}
		case entitymention.FieldEntityType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_type", values[i])
			} else if value.Valid {
				_m.EntityType = value.String
			}
		case entitymention.FieldRawValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_value", values[i])
			} else if value.Valid {
				_m.RawValue = value.String
			}
		case entitymention.FieldNormalizedValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field normalized_value", values[i])
			} else if value.Valid {
				_m.NormalizedValue = value.String
			}
		case entitymention.FieldFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fingerprint", values[i])
			} else if value.Valid {
				_m.Fingerprint = value.String
			}
		case entitymention.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case entitymention.FieldSpanStart:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field span_start", values[i])
			} else if value.Valid {
				_m.SpanStart = int(value.Int64)
			}
		case entitymention.FieldSpanEnd:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field span_end", values[i])
			} else if value.Valid {
				_m.SpanEnd = int(value.Int64)
			}
		case entitymention.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the EntityMention.
// This includes values selected through modifiers, order, etc.
func (_m *EntityMention) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EntityMention.
// Note that you need to call EntityMention.Unwrap() before calling this method if this EntityMention
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EntityMention) Update() *EntityMentionUpdateOne {
	return NewEntityMentionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EntityMention entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EntityMention) Unwrap() *EntityMention {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EntityMention is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EntityMention) String() string {
	var builder strings.Builder
	builder.WriteString("EntityMention(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("conversation_id=")
	builder.WriteString(_m.ConversationID)
	builder.WriteString(", ")
	builder.WriteString("entity_type=")
	builder.WriteString(_m.EntityType)
	builder.WriteString(", ")
	builder.WriteString("raw_value=")
	builder.WriteString(_m.RawValue)
	builder.WriteString(", ")
	builder.WriteString("normalized_value=")
	builder.WriteString(_m.NormalizedValue)
	builder.WriteString(", ")
	builder.WriteString("fingerprint=")
	builder.WriteString(_m.Fingerprint)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("span_start=")
	builder.WriteString(fmt.Sprintf("%v", _m.SpanStart))
	builder.WriteString(", ")
	builder.WriteString("span_end=")
	builder.WriteString(fmt.Sprintf("%v", _m.SpanEnd))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EntityMentions is a parsable slice of EntityMention.
type EntityMentions []*EntityMention
