// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kestrel-ai/kestrel/ent/conversationblock"
)

// ConversationBlock is the model entity for the ConversationBlock schema.
type ConversationBlock struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ConversationID holds the value of the "conversation_id" field.
	ConversationID string `json:"conversation_id,omitempty"`
	// Ordinal holds the value of the "ordinal" field.
	Ordinal int `json:"ordinal,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind conversationblock.Kind `json:"kind,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// ToolName holds the value of the "tool_name" field.
	ToolName string `json:"tool_name,omitempty"`
	// For tool_result blocks: id of the prior tool_use block
	ToolUseID string `json:"tool_use_id,omitempty"`
	// ToolInput holds the value of the "tool_input" field.
	ToolInput map[string]interface{} `json:"tool_input,omitempty"`
	// ToolResult holds the value of the "tool_result" field.
	ToolResult map[string]interface{} `json:"tool_result,omitempty"`
	// Optional dense embedding vector
	Embedding    []float64 `json:"embedding,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ConversationBlock) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case conversationblock.FieldToolInput, conversationblock.FieldToolResult, conversationblock.FieldEmbedding:
			values[i] = new([]byte)
		case conversationblock.FieldOrdinal:
			values[i] = new(sql.NullInt64)
		case conversationblock.FieldID, conversationblock.FieldConversationID, conversationblock.FieldKind, conversationblock.FieldText, conversationblock.FieldToolName, conversationblock.FieldToolUseID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ConversationBlock fields.
func (_m *ConversationBlock) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case conversationblock.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case conversationblock.FieldConversationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conversation_id", values[i])
			} else if value.Valid {
				_m.ConversationID = value.String
			}
		case conversationblock.FieldOrdinal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ordinal", values[i])
			} else if value.Valid {
				_m.Ordinal = int(value.Int64)
			}
		case conversationblock.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = conversationblock.Kind(value.String)
			}
		case conversationblock.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case conversationblock.FieldToolName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_name", values[i])
			} else if value.Valid {
				_m.ToolName = value.String
			}
		case conversationblock.FieldToolUseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_use_id", values[i])
			} else if value.Valid {
				_m.ToolUseID = value.String
			}
		case conversationblock.FieldToolInput:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tool_input", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ToolInput); err != nil {
					return fmt.Errorf("unmarshal field tool_input: %w", err)
				}
			}
		case conversationblock.FieldToolResult:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tool_result", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ToolResult); err != nil {
					return fmt.Errorf("unmarshal field tool_result: %w", err)
				}
			}
		case conversationblock.FieldEmbedding:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field embedding", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Embedding); err != nil {
					return fmt.Errorf("unmarshal field embedding: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ConversationBlock.
// This includes values selected through modifiers, order, etc.
func (_m *ConversationBlock) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ConversationBlock.
// Note that you need to call ConversationBlock.Unwrap() before calling this method if this ConversationBlock
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ConversationBlock) Update() *ConversationBlockUpdateOne {
	return NewConversationBlockClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ConversationBlock entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ConversationBlock) Unwrap() *ConversationBlock {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ConversationBlock is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ConversationBlock) String() string {
	var builder strings.Builder
	builder.WriteString("ConversationBlock(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("conversation_id=")
	builder.WriteString(_m.ConversationID)
	builder.WriteString(", ")
	builder.WriteString("ordinal=")
	builder.WriteString(fmt.Sprintf("%v", _m.Ordinal))
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("tool_name=")
	builder.WriteString(_m.ToolName)
	builder.WriteString(", ")
	builder.WriteString("tool_use_id=")
	builder.WriteString(_m.ToolUseID)
	builder.WriteString(", ")
	builder.WriteString("tool_input=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToolInput))
	builder.WriteString(", ")
	builder.WriteString("tool_result=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToolResult))
	builder.WriteString(", ")
	builder.WriteString("embedding=")
	builder.WriteString(fmt.Sprintf("%v", _m.Embedding))
	builder.WriteByte(')')
	return builder.String()
}

// ConversationBlocks is a parsable slice of ConversationBlock.
type ConversationBlocks []*ConversationBlock
