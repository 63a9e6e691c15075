// Code generated by ent, DO NOT EDIT.

package entitymention

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the entitymention type in the database.
	Label = "entity_mention"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "mention_id"
	// FieldConversationID holds the string denoting the conversation_id field in the database.
	FieldConversationID = "conversation_id"
	// FieldEntityType holds the string denoting the entity_type field in the database.
	FieldEntityType = "entity_type"
	// FieldRawValue holds the string denoting the raw_value field in the database.
	FieldRawValue = "raw_value"
	// FieldNormalizedValue holds the string denoting the normalized_value field in the database.
	FieldNormalizedValue = "normalized_value"
	// FieldFingerprint holds the string denoting the fingerprint field in the database.
	FieldFingerprint = "fingerprint"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldSpanStart holds the string denoting the span_start field in the database.
	FieldSpanStart = "span_start"
	// FieldSpanEnd holds the string denoting the span_end field in the database.
	FieldSpanEnd = "span_end"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the entitymention in the database.
	Table = "entity_mentions"
)

// Columns holds all SQL columns for entitymention fields.
var Columns = []string{
	FieldID,
	FieldConversationID,
	FieldEntityType,
	FieldRawValue,
	FieldNormalizedValue,
	FieldFingerprint,
	FieldConfidence,
	FieldSpanStart,
	FieldSpanEnd,
	FieldCreatedAt,
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
	// ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	ConfidenceValidator func(float64) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the EntityMention queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByConversationID orders the results by the conversation_id field.
func ByConversationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConversationID, opts...).ToFunc()
}

// ByEntityType orders the results by the entity_type field.
func ByEntityType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityType, opts...).ToFunc()
}

// ByRawValue orders the results by the raw_value field.
func ByRawValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawValue, opts...).ToFunc()
}

// ByNormalizedValue orders the results by the normalized_value field.
func ByNormalizedValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNormalizedValue, opts...).ToFunc()
}

// ByFingerprint orders the results by the fingerprint field.
func ByFingerprint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFingerprint, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// BySpanStart orders the results by the span_start field.
func BySpanStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpanStart, opts...).ToFunc()
}

// BySpanEnd orders the results by the span_end field.
func BySpanEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpanEnd, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
