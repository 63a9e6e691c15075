// Code generated by ent, DO NOT EDIT.

package ambientnotification

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the ambientnotification type in the database.
	Label = "ambient_notification"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "notification_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTargetMedium holds the string denoting the target_medium field in the database.
	FieldTargetMedium = "target_medium"
	// FieldTargetLocation holds the string denoting the target_location field in the database.
	FieldTargetLocation = "target_location"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldRoutingReasoning holds the string denoting the routing_reasoning field in the database.
	FieldRoutingReasoning = "routing_reasoning"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldParentNotificationID holds the string denoting the parent_notification_id field in the database.
	FieldParentNotificationID = "parent_notification_id"
	// FieldAcknowledged holds the string denoting the acknowledged field in the database.
	FieldAcknowledged = "acknowledged"
	// FieldAcknowledgedAt holds the string denoting the acknowledged_at field in the database.
	FieldAcknowledgedAt = "acknowledged_at"
	// FieldResponseTimeSeconds holds the string denoting the response_time_seconds field in the database.
	FieldResponseTimeSeconds = "response_time_seconds"
	// FieldContextSnapshot holds the string denoting the context_snapshot field in the database.
	FieldContextSnapshot = "context_snapshot"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the ambientnotification in the database.
	Table = "ambient_notifications"
)

// Columns holds all SQL columns for ambientnotification fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldTargetMedium,
	FieldTargetLocation,
	FieldMessage,
	FieldPriority,
	FieldRoutingReasoning,
	FieldStatus,
	FieldParentNotificationID,
	FieldAcknowledged,
	FieldAcknowledgedAt,
	FieldResponseTimeSeconds,
	FieldContextSnapshot,
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
	// DefaultAcknowledged holds the default value on creation for the "acknowledged" field.
	DefaultAcknowledged bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Priority defines the type for the "priority" enum field.
type Priority string

// PriorityAmbient is the default value of the Priority enum.
const DefaultPriority = PriorityAmbient

// Priority values.
const (
	PrioritySilent       Priority = "silent"
	PriorityAmbient      Priority = "ambient"
	PriorityConversation Priority = "conversation"
	PriorityUrgent       Priority = "urgent"
)

func (pr Priority) String() string {
	return string(pr)
}

// PriorityValidator is a validator for the "priority" field enum values. It is called by the builders before save.
func PriorityValidator(pr Priority) error {
	switch pr {
	case PrioritySilent, PriorityAmbient, PriorityConversation, PriorityUrgent:
		return nil
	default:
		return fmt.Errorf("ambientnotification: invalid enum value for priority field: %q", pr)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusDelivered Status = "delivered"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusDelivered, StatusFailed:
		return nil
	default:
		return fmt.Errorf("ambientnotification: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the AmbientNotification queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTargetMedium orders the results by the target_medium field.
func ByTargetMedium(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetMedium, opts...).ToFunc()
}

// ByTargetLocation orders the results by the target_location field.
func ByTargetLocation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetLocation, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByRoutingReasoning orders the results by the routing_reasoning field.
func ByRoutingReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoutingReasoning, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByParentNotificationID orders the results by the parent_notification_id field.
func ByParentNotificationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentNotificationID, opts...).ToFunc()
}

// ByAcknowledged orders the results by the acknowledged field.
func ByAcknowledged(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAcknowledged, opts...).ToFunc()
}

// ByAcknowledgedAt orders the results by the acknowledged_at field.
func ByAcknowledgedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAcknowledgedAt, opts...).ToFunc()
}

// ByResponseTimeSeconds orders the results by the response_time_seconds field.
func ByResponseTimeSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseTimeSeconds, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
