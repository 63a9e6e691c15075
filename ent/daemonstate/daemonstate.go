// Code generated by ent, DO NOT EDIT.

package daemonstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the daemonstate type in the database.
	Label = "daemon_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "user_id"
	// FieldSuppressedUntil holds the string denoting the suppressed_until field in the database.
	FieldSuppressedUntil = "suppressed_until"
	// FieldLastInteractionAt holds the string denoting the last_interaction_at field in the database.
	FieldLastInteractionAt = "last_interaction_at"
	// FieldLastProactiveContactAt holds the string denoting the last_proactive_contact_at field in the database.
	FieldLastProactiveContactAt = "last_proactive_contact_at"
	// FieldAutonomousWorkCount holds the string denoting the autonomous_work_count field in the database.
	FieldAutonomousWorkCount = "autonomous_work_count"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the daemonstate in the database.
	Table = "daemon_states"
)

// Columns holds all SQL columns for daemonstate fields.
var Columns = []string{
	FieldID,
	FieldSuppressedUntil,
	FieldLastInteractionAt,
	FieldLastProactiveContactAt,
	FieldAutonomousWorkCount,
	FieldUpdatedAt,
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
	// DefaultAutonomousWorkCount holds the default value on creation for the "autonomous_work_count" field.
	DefaultAutonomousWorkCount int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the DaemonState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySuppressedUntil orders the results by the suppressed_until field.
func BySuppressedUntil(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuppressedUntil, opts...).ToFunc()
}

// ByLastInteractionAt orders the results by the last_interaction_at field.
func ByLastInteractionAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastInteractionAt, opts...).ToFunc()
}

// ByLastProactiveContactAt orders the results by the last_proactive_contact_at field.
func ByLastProactiveContactAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastProactiveContactAt, opts...).ToFunc()
}

// ByAutonomousWorkCount orders the results by the autonomous_work_count field.
func ByAutonomousWorkCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutonomousWorkCount, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
