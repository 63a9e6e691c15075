// Code generated by ent, DO NOT EDIT.

package explorationfinding

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the explorationfinding type in the database.
	Label = "exploration_finding"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "finding_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldFinding holds the string denoting the finding field in the database.
	FieldFinding = "finding"
	// FieldSourceContext holds the string denoting the source_context field in the database.
	FieldSourceContext = "source_context"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldWorthSharing holds the string denoting the worth_sharing field in the database.
	FieldWorthSharing = "worth_sharing"
	// FieldShareMessage holds the string denoting the share_message field in the database.
	FieldShareMessage = "share_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the explorationfinding in the database.
	Table = "exploration_findings"
)

// Columns holds all SQL columns for explorationfinding fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldFinding,
	FieldSourceContext,
	FieldConfidence,
	FieldWorthSharing,
	FieldShareMessage,
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
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	ConfidenceValidator func(float64) error
	// DefaultWorthSharing holds the default value on creation for the "worth_sharing" field.
	DefaultWorthSharing bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ExplorationFinding queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByFinding orders the results by the finding field.
func ByFinding(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinding, opts...).ToFunc()
}

// BySourceContext orders the results by the source_context field.
func BySourceContext(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceContext, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByWorthSharing orders the results by the worth_sharing field.
func ByWorthSharing(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorthSharing, opts...).ToFunc()
}

// ByShareMessage orders the results by the share_message field.
func ByShareMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShareMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
