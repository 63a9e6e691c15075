// Code generated by ent, DO NOT EDIT.

package contradictionreview

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the contradictionreview type in the database.
	Label = "contradiction_review"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "review_id"
	// FieldNewFact holds the string denoting the new_fact field in the database.
	FieldNewFact = "new_fact"
	// FieldExistingFactUUID holds the string denoting the existing_fact_uuid field in the database.
	FieldExistingFactUUID = "existing_fact_uuid"
	// FieldExistingFact holds the string denoting the existing_fact field in the database.
	FieldExistingFact = "existing_fact"
	// FieldSimilarity holds the string denoting the similarity field in the database.
	FieldSimilarity = "similarity"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldContext holds the string denoting the context field in the database.
	FieldContext = "context"
	// FieldEntityNames holds the string denoting the entity_names field in the database.
	FieldEntityNames = "entity_names"
	// FieldGroupID holds the string denoting the group_id field in the database.
	FieldGroupID = "group_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldResolution holds the string denoting the resolution field in the database.
	FieldResolution = "resolution"
	// FieldResolver holds the string denoting the resolver field in the database.
	FieldResolver = "resolver"
	// FieldResolvedAt holds the string denoting the resolved_at field in the database.
	FieldResolvedAt = "resolved_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the contradictionreview in the database.
	Table = "contradiction_reviews"
)

// Columns holds all SQL columns for contradictionreview fields.
var Columns = []string{
	FieldID,
	FieldNewFact,
	FieldExistingFactUUID,
	FieldExistingFact,
	FieldSimilarity,
	FieldReason,
	FieldSource,
	FieldContext,
	FieldEntityNames,
	FieldGroupID,
	FieldStatus,
	FieldResolution,
	FieldResolver,
	FieldResolvedAt,
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
	// SimilarityValidator is a validator for the "similarity" field. It is called by the builders before save.
	SimilarityValidator func(float64) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending     Status = "pending"
	StatusAcceptedNew Status = "accepted_new"
	StatusKeptOld     Status = "kept_old"
	StatusKeptBoth    Status = "kept_both"
	StatusDismissed   Status = "dismissed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusAcceptedNew, StatusKeptOld, StatusKeptBoth, StatusDismissed:
		return nil
	default:
		return fmt.Errorf("contradictionreview: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ContradictionReview queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByNewFact orders the results by the new_fact field.
func ByNewFact(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewFact, opts...).ToFunc()
}

// ByExistingFactUUID orders the results by the existing_fact_uuid field.
func ByExistingFactUUID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExistingFactUUID, opts...).ToFunc()
}

// ByExistingFact orders the results by the existing_fact field.
func ByExistingFact(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExistingFact, opts...).ToFunc()
}

// BySimilarity orders the results by the similarity field.
func BySimilarity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSimilarity, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByContext orders the results by the context field.
func ByContext(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContext, opts...).ToFunc()
}

// ByGroupID orders the results by the group_id field.
func ByGroupID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroupID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByResolution orders the results by the resolution field.
func ByResolution(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolution, opts...).ToFunc()
}

// ByResolver orders the results by the resolver field.
func ByResolver(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolver, opts...).ToFunc()
}

// ByResolvedAt orders the results by the resolved_at field.
func ByResolvedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
