// Code generated by ent, DO NOT EDIT.

package ambientnotification

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kestrel-ai/kestrel/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldEQ(FieldUserID, v))
}

// TargetMedium applies equality check predicate on the "target_medium" field. It's identical to TargetMediumEQ.
func TargetMedium(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldEQ(FieldTargetMedium, v))
}

// TargetLocation applies equality check predicate on the "target_location" field. It's identical to TargetLocationEQ.
func TargetLocation(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldEQ(FieldTargetLocation, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldEQ(FieldMessage, v))
}

// RoutingReasoning applies equality check predicate on the "routing_reasoning" field. It's identical to RoutingReasoningEQ.
func RoutingReasoning(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldEQ(FieldRoutingReasoning, v))
}

// ParentNotificationID applies equality check predicate on the "parent_notification_id" field. It's identical to ParentNotificationIDEQ.
func ParentNotificationID(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldEQ(FieldParentNotificationID, v))
}

// Acknowledged applies equality check predicate on the "acknowledged" field. It's identical to AcknowledgedEQ.
func Acknowledged(v bool) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldEQ(FieldAcknowledged, v))
}

// AcknowledgedAt applies equality check predicate on the "acknowledged_at" field. It's identical to AcknowledgedAtEQ.
func AcknowledgedAt(v time.Time) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldEQ(FieldAcknowledgedAt, v))
}

// ResponseTimeSeconds applies equality check predicate on the "response_time_seconds" field. It's identical to ResponseTimeSecondsEQ.
func ResponseTimeSeconds(v int) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldEQ(FieldResponseTimeSeconds, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldContainsFold(FieldUserID, v))
}

// TargetMediumEQ applies the EQ predicate on the "target_medium" field.
func TargetMediumEQ(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldEQ(FieldTargetMedium, v))
}

// TargetMediumNEQ applies the NEQ predicate on the "target_medium" field.
func TargetMediumNEQ(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldNEQ(FieldTargetMedium, v))
}

// TargetMediumIn applies the In predicate on the "target_medium" field.
func TargetMediumIn(vs ...string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldIn(FieldTargetMedium, vs...))
}

// TargetMediumNotIn applies the NotIn predicate on the "target_medium" field.
func TargetMediumNotIn(vs ...string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldNotIn(FieldTargetMedium, vs...))
}

// TargetMediumGT applies the GT predicate on the "target_medium" field.
func TargetMediumGT(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldGT(FieldTargetMedium, v))
}

// TargetMediumGTE applies the GTE predicate on the "target_medium" field.
func TargetMediumGTE(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldGTE(FieldTargetMedium, v))
}

// TargetMediumLT applies the LT predicate on the "target_medium" field.
func TargetMediumLT(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldLT(FieldTargetMedium, v))
}

// TargetMediumLTE applies the LTE predicate on the "target_medium" field.
func TargetMediumLTE(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldLTE(FieldTargetMedium, v))
}

// TargetMediumContains applies the Contains predicate on the "target_medium" field.
func TargetMediumContains(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldContains(FieldTargetMedium, v))
}

// TargetMediumHasPrefix applies the HasPrefix predicate on the "target_medium" field.
func TargetMediumHasPrefix(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldHasPrefix(FieldTargetMedium, v))
}

// TargetMediumHasSuffix applies the HasSuffix predicate on the "target_medium" field.
func TargetMediumHasSuffix(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldHasSuffix(FieldTargetMedium, v))
}

// TargetMediumIsNil applies the IsNil predicate on the "target_medium" field.
func TargetMediumIsNil() predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldIsNull(FieldTargetMedium))
}

// TargetMediumNotNil applies the NotNil predicate on the "target_medium" field.
func TargetMediumNotNil() predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldNotNull(FieldTargetMedium))
}

// TargetMediumEqualFold applies the EqualFold predicate on the "target_medium" field.
func TargetMediumEqualFold(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldEqualFold(FieldTargetMedium, v))
}

// TargetMediumContainsFold applies the ContainsFold predicate on the "target_medium" field.
func TargetMediumContainsFold(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldContainsFold(FieldTargetMedium, v))
}

// TargetLocationEQ applies the EQ predicate on the "target_location" field.
func TargetLocationEQ(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldEQ(FieldTargetLocation, v))
}

// TargetLocationNEQ applies the NEQ predicate on the "target_location" field.
func TargetLocationNEQ(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldNEQ(FieldTargetLocation, v))
}

// TargetLocationIn applies the In predicate on the "target_location" field.
func TargetLocationIn(vs ...string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldIn(FieldTargetLocation, vs...))
}

// TargetLocationNotIn applies the NotIn predicate on the "target_location" field.
func TargetLocationNotIn(vs ...string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldNotIn(FieldTargetLocation, vs...))
}

// TargetLocationGT applies the GT predicate on the "target_location" field.
func TargetLocationGT(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldGT(FieldTargetLocation, v))
}

// TargetLocationGTE applies the GTE predicate on the "target_location" field.
func TargetLocationGTE(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldGTE(FieldTargetLocation, v))
}

// TargetLocationLT applies the LT predicate on the "target_location" field.
func TargetLocationLT(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldLT(FieldTargetLocation, v))
}

// TargetLocationLTE applies the LTE predicate on the "target_location" field.
func TargetLocationLTE(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldLTE(FieldTargetLocation, v))
}

// TargetLocationContains applies the Contains predicate on the "target_location" field.
func TargetLocationContains(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldContains(FieldTargetLocation, v))
}

// TargetLocationHasPrefix applies the HasPrefix predicate on the "target_location" field.
func TargetLocationHasPrefix(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldHasPrefix(FieldTargetLocation, v))
}

// TargetLocationHasSuffix applies the HasSuffix predicate on the "target_location" field.
func TargetLocationHasSuffix(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldHasSuffix(FieldTargetLocation, v))
}

// TargetLocationIsNil applies the IsNil predicate on the "target_location" field.
func TargetLocationIsNil() predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldIsNull(FieldTargetLocation))
}

// TargetLocationNotNil applies the NotNil predicate on the "target_location" field.
func TargetLocationNotNil() predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldNotNull(FieldTargetLocation))
}

// TargetLocationEqualFold applies the EqualFold predicate on the "target_location" field.
func TargetLocationEqualFold(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldEqualFold(FieldTargetLocation, v))
}

// TargetLocationContainsFold applies the ContainsFold predicate on the "target_location" field.
func TargetLocationContainsFold(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldContainsFold(FieldTargetLocation, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldContainsFold(FieldMessage, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v Priority) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v Priority) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...Priority) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...Priority) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldNotIn(FieldPriority, vs...))
}

// RoutingReasoningEQ applies the EQ predicate on the "routing_reasoning" field.
func RoutingReasoningEQ(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldEQ(FieldRoutingReasoning, v))
}

// RoutingReasoningNEQ applies the NEQ predicate on the "routing_reasoning" field.
func RoutingReasoningNEQ(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldNEQ(FieldRoutingReasoning, v))
}

// RoutingReasoningIn applies the In predicate on the "routing_reasoning" field.
func RoutingReasoningIn(vs ...string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldIn(FieldRoutingReasoning, vs...))
}

// RoutingReasoningNotIn applies the NotIn predicate on the "routing_reasoning" field.
func RoutingReasoningNotIn(vs ...string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldNotIn(FieldRoutingReasoning, vs...))
}

// RoutingReasoningGT applies the GT predicate on the "routing_reasoning" field.
func RoutingReasoningGT(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldGT(FieldRoutingReasoning, v))
}

// RoutingReasoningGTE applies the GTE predicate on the "routing_reasoning" field.
func RoutingReasoningGTE(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldGTE(FieldRoutingReasoning, v))
}

// RoutingReasoningLT applies the LT predicate on the "routing_reasoning" field.
func RoutingReasoningLT(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldLT(FieldRoutingReasoning, v))
}

// RoutingReasoningLTE applies the LTE predicate on the "routing_reasoning" field.
func RoutingReasoningLTE(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldLTE(FieldRoutingReasoning, v))
}

// RoutingReasoningContains applies the Contains predicate on the "routing_reasoning" field.
func RoutingReasoningContains(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldContains(FieldRoutingReasoning, v))
}

// RoutingReasoningHasPrefix applies the HasPrefix predicate on the "routing_reasoning" field.
func RoutingReasoningHasPrefix(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldHasPrefix(FieldRoutingReasoning, v))
}

// RoutingReasoningHasSuffix applies the HasSuffix predicate on the "routing_reasoning" field.
func RoutingReasoningHasSuffix(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldHasSuffix(FieldRoutingReasoning, v))
}

// RoutingReasoningIsNil applies the IsNil predicate on the "routing_reasoning" field.
func RoutingReasoningIsNil() predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldIsNull(FieldRoutingReasoning))
}

// RoutingReasoningNotNil applies the NotNil predicate on the "routing_reasoning" field.
func RoutingReasoningNotNil() predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldNotNull(FieldRoutingReasoning))
}

// RoutingReasoningEqualFold applies the EqualFold predicate on the "routing_reasoning" field.
func RoutingReasoningEqualFold(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldEqualFold(FieldRoutingReasoning, v))
}

// RoutingReasoningContainsFold applies the ContainsFold predicate on the "routing_reasoning" field.
func RoutingReasoningContainsFold(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldContainsFold(FieldRoutingReasoning, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldNotIn(FieldStatus, vs...))
}

// ParentNotificationIDEQ applies the EQ predicate on the "parent_notification_id" field.
func ParentNotificationIDEQ(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldEQ(FieldParentNotificationID, v))
}

// ParentNotificationIDNEQ applies the NEQ predicate on the "parent_notification_id" field.
func ParentNotificationIDNEQ(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldNEQ(FieldParentNotificationID, v))
}

// ParentNotificationIDIn applies the In predicate on the "parent_notification_id" field.
func ParentNotificationIDIn(vs ...string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldIn(FieldParentNotificationID, vs...))
}

// ParentNotificationIDNotIn applies the NotIn predicate on the "parent_notification_id" field.
func ParentNotificationIDNotIn(vs ...string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldNotIn(FieldParentNotificationID, vs...))
}

// ParentNotificationIDGT applies the GT predicate on the "parent_notification_id" field.
func ParentNotificationIDGT(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldGT(FieldParentNotificationID, v))
}

// ParentNotificationIDGTE applies the GTE predicate on the "parent_notification_id" field.
func ParentNotificationIDGTE(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldGTE(FieldParentNotificationID, v))
}

// ParentNotificationIDLT applies the LT predicate on the "parent_notification_id" field.
func ParentNotificationIDLT(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldLT(FieldParentNotificationID, v))
}

// ParentNotificationIDLTE applies the LTE predicate on the "parent_notification_id" field.
func ParentNotificationIDLTE(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldLTE(FieldParentNotificationID, v))
}

// ParentNotificationIDContains applies the Contains predicate on the "parent_notification_id" field.
func ParentNotificationIDContains(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldContains(FieldParentNotificationID, v))
}

// ParentNotificationIDHasPrefix applies the HasPrefix predicate on the "parent_notification_id" field.
func ParentNotificationIDHasPrefix(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldHasPrefix(FieldParentNotificationID, v))
}

// ParentNotificationIDHasSuffix applies the HasSuffix predicate on the "parent_notification_id" field.
func ParentNotificationIDHasSuffix(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldHasSuffix(FieldParentNotificationID, v))
}

// ParentNotificationIDIsNil applies the IsNil predicate on the "parent_notification_id" field.
func ParentNotificationIDIsNil() predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldIsNull(FieldParentNotificationID))
}

// ParentNotificationIDNotNil applies the NotNil predicate on the "parent_notification_id" field.
func ParentNotificationIDNotNil() predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldNotNull(FieldParentNotificationID))
}

// ParentNotificationIDEqualFold applies the EqualFold predicate on the "parent_notification_id" field.
func ParentNotificationIDEqualFold(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldEqualFold(FieldParentNotificationID, v))
}

// ParentNotificationIDContainsFold applies the ContainsFold predicate on the "parent_notification_id" field.
func ParentNotificationIDContainsFold(v string) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldContainsFold(FieldParentNotificationID, v))
}

// AcknowledgedEQ applies the EQ predicate on the "acknowledged" field.
func AcknowledgedEQ(v bool) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldEQ(FieldAcknowledged, v))
}

// AcknowledgedNEQ applies the NEQ predicate on the "acknowledged" field.
func AcknowledgedNEQ(v bool) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldNEQ(FieldAcknowledged, v))
}

// AcknowledgedAtEQ applies the EQ predicate on the "acknowledged_at" field.
func AcknowledgedAtEQ(v time.Time) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldEQ(FieldAcknowledgedAt, v))
}

// AcknowledgedAtNEQ applies the NEQ predicate on the "acknowledged_at" field.
func AcknowledgedAtNEQ(v time.Time) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldNEQ(FieldAcknowledgedAt, v))
}

// AcknowledgedAtIn applies the In predicate on the "acknowledged_at" field.
func AcknowledgedAtIn(vs ...time.Time) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldIn(FieldAcknowledgedAt, vs...))
}

// AcknowledgedAtNotIn applies the NotIn predicate on the "acknowledged_at" field.
func AcknowledgedAtNotIn(vs ...time.Time) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldNotIn(FieldAcknowledgedAt, vs...))
}

// AcknowledgedAtGT applies the GT predicate on the "acknowledged_at" field.
func AcknowledgedAtGT(v time.Time) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldGT(FieldAcknowledgedAt, v))
}

// AcknowledgedAtGTE applies the GTE predicate on the "acknowledged_at" field.
func AcknowledgedAtGTE(v time.Time) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldGTE(FieldAcknowledgedAt, v))
}

// AcknowledgedAtLT applies the LT predicate on the "acknowledged_at" field.
func AcknowledgedAtLT(v time.Time) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldLT(FieldAcknowledgedAt, v))
}

// AcknowledgedAtLTE applies the LTE predicate on the "acknowledged_at" field.
func AcknowledgedAtLTE(v time.Time) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldLTE(FieldAcknowledgedAt, v))
}

// AcknowledgedAtIsNil applies the IsNil predicate on the "acknowledged_at" field.
func AcknowledgedAtIsNil() predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldIsNull(FieldAcknowledgedAt))
}

// AcknowledgedAtNotNil applies the NotNil predicate on the "acknowledged_at" field.
func AcknowledgedAtNotNil() predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldNotNull(FieldAcknowledgedAt))
}

// ResponseTimeSecondsEQ applies the EQ predicate on the "response_time_seconds" field.
func ResponseTimeSecondsEQ(v int) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldEQ(FieldResponseTimeSeconds, v))
}

// ResponseTimeSecondsNEQ applies the NEQ predicate on the "response_time_seconds" field.
func ResponseTimeSecondsNEQ(v int) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldNEQ(FieldResponseTimeSeconds, v))
}

// ResponseTimeSecondsIn applies the In predicate on the "response_time_seconds" field.
func ResponseTimeSecondsIn(vs ...int) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldIn(FieldResponseTimeSeconds, vs...))
}

// ResponseTimeSecondsNotIn applies the NotIn predicate on the "response_time_seconds" field.
func ResponseTimeSecondsNotIn(vs ...int) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldNotIn(FieldResponseTimeSeconds, vs...))
}

// ResponseTimeSecondsGT applies the GT predicate on the "response_time_seconds" field.
func ResponseTimeSecondsGT(v int) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldGT(FieldResponseTimeSeconds, v))
}

// ResponseTimeSecondsGTE applies the GTE predicate on the "response_time_seconds" field.
func ResponseTimeSecondsGTE(v int) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldGTE(FieldResponseTimeSeconds, v))
}

// ResponseTimeSecondsLT applies the LT predicate on the "response_time_seconds" field.
func ResponseTimeSecondsLT(v int) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldLT(FieldResponseTimeSeconds, v))
}

// ResponseTimeSecondsLTE applies the LTE predicate on the "response_time_seconds" field.
func ResponseTimeSecondsLTE(v int) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldLTE(FieldResponseTimeSeconds, v))
}

// ResponseTimeSecondsIsNil applies the IsNil predicate on the "response_time_seconds" field.
func ResponseTimeSecondsIsNil() predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldIsNull(FieldResponseTimeSeconds))
}

// ResponseTimeSecondsNotNil applies the NotNil predicate on the "response_time_seconds" field.
func ResponseTimeSecondsNotNil() predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldNotNull(FieldResponseTimeSeconds))
}

// ContextSnapshotIsNil applies the IsNil predicate on the "context_snapshot" field.
func ContextSnapshotIsNil() predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldIsNull(FieldContextSnapshot))
}

// ContextSnapshotNotNil applies the NotNil predicate on the "context_snapshot" field.
func ContextSnapshotNotNil() predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldNotNull(FieldContextSnapshot))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AmbientNotification) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AmbientNotification) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AmbientNotification) predicate.AmbientNotification {
	return predicate.AmbientNotification(sql.NotPredicates(p))
}
