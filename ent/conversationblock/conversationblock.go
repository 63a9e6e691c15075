// Code generated by ent, DO NOT EDIT.

package conversationblock

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the conversationblock type in the database.
	Label = "conversation_block"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "block_id"
	// FieldConversationID holds the string denoting the conversation_id field in the database.
	FieldConversationID = "conversation_id"
	// FieldOrdinal holds the string denoting the ordinal field in the database.
	FieldOrdinal = "ordinal"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldToolName holds the string denoting the tool_name field in the database.
	FieldToolName = "tool_name"
	// FieldToolUseID holds the string denoting the tool_use_id field in the database.
	FieldToolUseID = "tool_use_id"
	// FieldToolInput holds the string denoting the tool_input field in the database.
	FieldToolInput = "tool_input"
	// FieldToolResult holds the string denoting the tool_result field in the database.
	FieldToolResult = "tool_result"
	// FieldEmbedding holds the string denoting the embedding field in the database.
	FieldEmbedding = "embedding"
	// Table holds the table name of the conversationblock in the database.
	Table = "conversation_blocks"
)

// Columns holds all SQL columns for conversationblock fields.
var Columns = []string{
	FieldID,
	FieldConversationID,
	FieldOrdinal,
	FieldKind,
	FieldText,
	FieldToolName,
	FieldToolUseID,
	FieldToolInput,
	FieldToolResult,
	FieldEmbedding,
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
	// OrdinalValidator is a validator for the "ordinal" field. It is called by the builders before save.
	OrdinalValidator func(int) error
)

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindText       Kind = "text"
	KindToolUse    Kind = "tool_use"
	KindToolResult Kind = "tool_result"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindText, KindToolUse, KindToolResult:
		return nil
	default:
		return fmt.Errorf("conversationblock: invalid enum value for kind field: %q", k)
	}
}

// OrderOption defines the ordering options for the ConversationBlock queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByConversationID orders the results by the conversation_id field.
func ByConversationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConversationID, opts...).ToFunc()
}

// ByOrdinal orders the results by the ordinal field.
func ByOrdinal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrdinal, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByToolName orders the results by the tool_name field.
func ByToolName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolName, opts...).ToFunc()
}

// ByToolUseID orders the results by the tool_use_id field.
func ByToolUseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolUseID, opts...).ToFunc()
}
