// Code generated by ent, DO NOT EDIT.

package surfacedfinding

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the surfacedfinding type in the database.
	Label = "surfaced_finding"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "surfaced_id"
	// FieldFindingID holds the string denoting the finding_id field in the database.
	FieldFindingID = "finding_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the surfacedfinding in the database.
	Table = "surfaced_findings"
)

// Columns holds all SQL columns for surfacedfinding fields.
var Columns = []string{
	FieldID,
	FieldFindingID,
	FieldSessionID,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the SurfacedFinding queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFindingID orders the results by the finding_id field.
func ByFindingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFindingID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
