// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the session type in the database.
	Label = "session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldWorkingDir holds the string denoting the working_dir field in the database.
	FieldWorkingDir = "working_dir"
	// FieldStartTime holds the string denoting the start_time field in the database.
	FieldStartTime = "start_time"
	// FieldEndTime holds the string denoting the end_time field in the database.
	FieldEndTime = "end_time"
	// FieldLastActivity holds the string denoting the last_activity field in the database.
	FieldLastActivity = "last_activity"
	// FieldContinuedFrom holds the string denoting the continued_from field in the database.
	FieldContinuedFrom = "continued_from"
	// FieldMedium holds the string denoting the medium field in the database.
	FieldMedium = "medium"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldPersonality holds the string denoting the personality field in the database.
	FieldPersonality = "personality"
	// FieldSandboxPolicy holds the string denoting the sandbox_policy field in the database.
	FieldSandboxPolicy = "sandbox_policy"
	// FieldMissionID holds the string denoting the mission_id field in the database.
	FieldMissionID = "mission_id"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldSummaryUpdatedAt holds the string denoting the summary_updated_at field in the database.
	FieldSummaryUpdatedAt = "summary_updated_at"
	// Table holds the table name of the session in the database.
	Table = "sessions"
)

// Columns holds all SQL columns for session fields.
var Columns = []string{
	FieldID,
	FieldWorkingDir,
	FieldStartTime,
	FieldEndTime,
	FieldLastActivity,
	FieldContinuedFrom,
	FieldMedium,
	FieldUserID,
	FieldPersonality,
	FieldSandboxPolicy,
	FieldMissionID,
	FieldSummary,
	FieldSummaryUpdatedAt,
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
	// DefaultStartTime holds the default value on creation for the "start_time" field.
	DefaultStartTime func() time.Time
	// DefaultLastActivity holds the default value on creation for the "last_activity" field.
	DefaultLastActivity func() time.Time
)

// OrderOption defines the ordering options for the Session queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkingDir orders the results by the working_dir field.
func ByWorkingDir(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkingDir, opts...).ToFunc()
}

// ByStartTime orders the results by the start_time field.
func ByStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartTime, opts...).ToFunc()
}

// ByEndTime orders the results by the end_time field.
func ByEndTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndTime, opts...).ToFunc()
}

// ByLastActivity orders the results by the last_activity field.
func ByLastActivity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActivity, opts...).ToFunc()
}

// ByContinuedFrom orders the results by the continued_from field.
func ByContinuedFrom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContinuedFrom, opts...).ToFunc()
}

// ByMedium orders the results by the medium field.
func ByMedium(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMedium, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByPersonality orders the results by the personality field.
func ByPersonality(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPersonality, opts...).ToFunc()
}

// BySandboxPolicy orders the results by the sandbox_policy field.
func BySandboxPolicy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSandboxPolicy, opts...).ToFunc()
}

// ByMissionID orders the results by the mission_id field.
func ByMissionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMissionID, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// BySummaryUpdatedAt orders the results by the summary_updated_at field.
func BySummaryUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummaryUpdatedAt, opts...).ToFunc()
}
