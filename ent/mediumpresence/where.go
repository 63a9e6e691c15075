// Code generated by ent, DO NOT EDIT.

package mediumpresence

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kestrel-ai/kestrel/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldContainsFold(FieldID, id))
}

// Medium applies equality check predicate on the "medium" field. It's identical to MediumEQ.
func Medium(v string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldEQ(FieldMedium, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldEQ(FieldUserID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldEQ(FieldStatus, v))
}

// LastHeartbeat applies equality check predicate on the "last_heartbeat" field. It's identical to LastHeartbeatEQ.
func LastHeartbeat(v time.Time) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldEQ(FieldLastHeartbeat, v))
}

// MediumEQ applies the EQ predicate on the "medium" field.
func MediumEQ(v string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldEQ(FieldMedium, v))
}

// MediumNEQ applies the NEQ predicate on the "medium" field.
func MediumNEQ(v string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldNEQ(FieldMedium, v))
}

// MediumIn applies the In predicate on the "medium" field.
func MediumIn(vs ...string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldIn(FieldMedium, vs...))
}

// MediumNotIn applies the NotIn predicate on the "medium" field.
func MediumNotIn(vs ...string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldNotIn(FieldMedium, vs...))
}

// MediumGT applies the GT predicate on the "medium" field.
func MediumGT(v string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldGT(FieldMedium, v))
}

// MediumGTE applies the GTE predicate on the "medium" field.
func MediumGTE(v string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldGTE(FieldMedium, v))
}

// MediumLT applies the LT predicate on the "medium" field.
func MediumLT(v string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldLT(FieldMedium, v))
}

// MediumLTE applies the LTE predicate on the "medium" field.
func MediumLTE(v string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldLTE(FieldMedium, v))
}

// MediumContains applies the Contains predicate on the "medium" field.
func MediumContains(v string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldContains(FieldMedium, v))
}

// MediumHasPrefix applies the HasPrefix predicate on the "medium" field.
func MediumHasPrefix(v string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldHasPrefix(FieldMedium, v))
}

// MediumHasSuffix applies the HasSuffix predicate on the "medium" field.
func MediumHasSuffix(v string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldHasSuffix(FieldMedium, v))
}

// MediumEqualFold applies the EqualFold predicate on the "medium" field.
func MediumEqualFold(v string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldEqualFold(FieldMedium, v))
}

// MediumContainsFold applies the ContainsFold predicate on the "medium" field.
func MediumContainsFold(v string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldContainsFold(FieldMedium, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldContainsFold(FieldUserID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldContainsFold(FieldStatus, v))
}

// LastHeartbeatEQ applies the EQ predicate on the "last_heartbeat" field.
func LastHeartbeatEQ(v time.Time) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldEQ(FieldLastHeartbeat, v))
}

// LastHeartbeatNEQ applies the NEQ predicate on the "last_heartbeat" field.
func LastHeartbeatNEQ(v time.Time) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldNEQ(FieldLastHeartbeat, v))
}

// LastHeartbeatIn applies the In predicate on the "last_heartbeat" field.
func LastHeartbeatIn(vs ...time.Time) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldIn(FieldLastHeartbeat, vs...))
}

// LastHeartbeatNotIn applies the NotIn predicate on the "last_heartbeat" field.
func LastHeartbeatNotIn(vs ...time.Time) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldNotIn(FieldLastHeartbeat, vs...))
}

// LastHeartbeatGT applies the GT predicate on the "last_heartbeat" field.
func LastHeartbeatGT(v time.Time) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldGT(FieldLastHeartbeat, v))
}

// LastHeartbeatGTE applies the GTE predicate on the "last_heartbeat" field.
func LastHeartbeatGTE(v time.Time) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldGTE(FieldLastHeartbeat, v))
}

// LastHeartbeatLT applies the LT predicate on the "last_heartbeat" field.
func LastHeartbeatLT(v time.Time) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldLT(FieldLastHeartbeat, v))
}

// LastHeartbeatLTE applies the LTE predicate on the "last_heartbeat" field.
func LastHeartbeatLTE(v time.Time) predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldLTE(FieldLastHeartbeat, v))
}

// ChannelsIsNil applies the IsNil predicate on the "channels" field.
func ChannelsIsNil() predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldIsNull(FieldChannels))
}

// ChannelsNotNil applies the NotNil predicate on the "channels" field.
func ChannelsNotNil() predicate.MediumPresence {
	return predicate.MediumPresence(sql.FieldNotNull(FieldChannels))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MediumPresence) predicate.MediumPresence {
	return predicate.MediumPresence(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MediumPresence) predicate.MediumPresence {
	return predicate.MediumPresence(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MediumPresence) predicate.MediumPresence {
	return predicate.MediumPresence(sql.NotPredicates(p))
}
