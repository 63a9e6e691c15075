// Code generated by ent, DO NOT EDIT.

package mediumpresence

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the mediumpresence type in the database.
	Label = "medium_presence"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "presence_id"
	// FieldMedium holds the string denoting the medium field in the database.
	FieldMedium = "medium"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldLastHeartbeat holds the string denoting the last_heartbeat field in the database.
	FieldLastHeartbeat = "last_heartbeat"
	// FieldChannels holds the string denoting the channels field in the database.
	FieldChannels = "channels"
	// Table holds the table name of the mediumpresence in the database.
	Table = "medium_presences"
)

// Columns holds all SQL columns for mediumpresence fields.
var Columns = []string{
	FieldID,
	FieldMedium,
	FieldUserID,
	FieldStatus,
	FieldLastHeartbeat,
	FieldChannels,
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
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultLastHeartbeat holds the default value on creation for the "last_heartbeat" field.
	DefaultLastHeartbeat func() time.Time
)

// OrderOption defines the ordering options for the MediumPresence queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMedium orders the results by the medium field.
func ByMedium(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMedium, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByLastHeartbeat orders the results by the last_heartbeat field.
func ByLastHeartbeat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeat, opts...).ToFunc()
}
