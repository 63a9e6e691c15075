// Code generated by ent, DO NOT EDIT.

package daemonstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kestrel-ai/kestrel/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldContainsFold(FieldID, id))
}

// SuppressedUntil applies equality check predicate on the "suppressed_until" field. It's identical to SuppressedUntilEQ.
func SuppressedUntil(v time.Time) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldEQ(FieldSuppressedUntil, v))
}

// LastInteractionAt applies equality check predicate on the "last_interaction_at" field. It's identical to LastInteractionAtEQ.
func LastInteractionAt(v time.Time) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldEQ(FieldLastInteractionAt, v))
}

// LastProactiveContactAt applies equality check predicate on the "last_proactive_contact_at" field. It's identical to LastProactiveContactAtEQ.
func LastProactiveContactAt(v time.Time) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldEQ(FieldLastProactiveContactAt, v))
}

// AutonomousWorkCount applies equality check predicate on the "autonomous_work_count" field. It's identical to AutonomousWorkCountEQ.
func AutonomousWorkCount(v int) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldEQ(FieldAutonomousWorkCount, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldEQ(FieldUpdatedAt, v))
}

// SuppressedUntilEQ applies the EQ predicate on the "suppressed_until" field.
func SuppressedUntilEQ(v time.Time) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldEQ(FieldSuppressedUntil, v))
}

// SuppressedUntilNEQ applies the NEQ predicate on the "suppressed_until" field.
func SuppressedUntilNEQ(v time.Time) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldNEQ(FieldSuppressedUntil, v))
}

// SuppressedUntilIn applies the In predicate on the "suppressed_until" field.
func SuppressedUntilIn(vs ...time.Time) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldIn(FieldSuppressedUntil, vs...))
}

// SuppressedUntilNotIn applies the NotIn predicate on the "suppressed_until" field.
func SuppressedUntilNotIn(vs ...time.Time) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldNotIn(FieldSuppressedUntil, vs...))
}

// SuppressedUntilGT applies the GT predicate on the "suppressed_until" field.
func SuppressedUntilGT(v time.Time) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldGT(FieldSuppressedUntil, v))
}

// SuppressedUntilGTE applies the GTE predicate on the "suppressed_until" field.
func SuppressedUntilGTE(v time.Time) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldGTE(FieldSuppressedUntil, v))
}

// SuppressedUntilLT applies the LT predicate on the "suppressed_until" field.
func SuppressedUntilLT(v time.Time) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldLT(FieldSuppressedUntil, v))
}

// SuppressedUntilLTE applies the LTE predicate on the "suppressed_until" field.
func SuppressedUntilLTE(v time.Time) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldLTE(FieldSuppressedUntil, v))
}

// SuppressedUntilIsNil applies the IsNil predicate on the "suppressed_until" field.
func SuppressedUntilIsNil() predicate.DaemonState {
	return predicate.DaemonState(sql.FieldIsNull(FieldSuppressedUntil))
}

// SuppressedUntilNotNil applies the NotNil predicate on the "suppressed_until" field.
func SuppressedUntilNotNil() predicate.DaemonState {
	return predicate.DaemonState(sql.FieldNotNull(FieldSuppressedUntil))
}

// LastInteractionAtEQ applies the EQ predicate on the "last_interaction_at" field.
func LastInteractionAtEQ(v time.Time) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtNEQ applies the NEQ predicate on the "last_interaction_at" field.
func LastInteractionAtNEQ(v time.Time) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldNEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtIn applies the In predicate on the "last_interaction_at" field.
func LastInteractionAtIn(vs ...time.Time) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtNotIn applies the NotIn predicate on the "last_interaction_at" field.
func LastInteractionAtNotIn(vs ...time.Time) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldNotIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtGT applies the GT predicate on the "last_interaction_at" field.
func LastInteractionAtGT(v time.Time) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldGT(FieldLastInteractionAt, v))
}

// LastInteractionAtGTE applies the GTE predicate on the "last_interaction_at" field.
func LastInteractionAtGTE(v time.Time) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldGTE(FieldLastInteractionAt, v))
}

// LastInteractionAtLT applies the LT predicate on the "last_interaction_at" field.
func LastInteractionAtLT(v time.Time) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldLT(FieldLastInteractionAt, v))
}

// LastInteractionAtLTE applies the LTE predicate on the "last_interaction_at" field.
func LastInteractionAtLTE(v time.Time) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldLTE(FieldLastInteractionAt, v))
}

// LastInteractionAtIsNil applies the IsNil predicate on the "last_interaction_at" field.
func LastInteractionAtIsNil() predicate.DaemonState {
	return predicate.DaemonState(sql.FieldIsNull(FieldLastInteractionAt))
}

// LastInteractionAtNotNil applies the NotNil predicate on the "last_interaction_at" field.
func LastInteractionAtNotNil() predicate.DaemonState {
	return predicate.DaemonState(sql.FieldNotNull(FieldLastInteractionAt))
}

// LastProactiveContactAtEQ applies the EQ predicate on the "last_proactive_contact_at" field.
func LastProactiveContactAtEQ(v time.Time) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldEQ(FieldLastProactiveContactAt, v))
}

// LastProactiveContactAtNEQ applies the NEQ predicate on the "last_proactive_contact_at" field.
func LastProactiveContactAtNEQ(v time.Time) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldNEQ(FieldLastProactiveContactAt, v))
}

// LastProactiveContactAtIn applies the In predicate on the "last_proactive_contact_at" field.
func LastProactiveContactAtIn(vs ...time.Time) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldIn(FieldLastProactiveContactAt, vs...))
}

// LastProactiveContactAtNotIn applies the NotIn predicate on the "last_proactive_contact_at" field.
func LastProactiveContactAtNotIn(vs ...time.Time) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldNotIn(FieldLastProactiveContactAt, vs...))
}

// LastProactiveContactAtGT applies the GT predicate on the "last_proactive_contact_at" field.
func LastProactiveContactAtGT(v time.Time) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldGT(FieldLastProactiveContactAt, v))
}

// LastProactiveContactAtGTE applies the GTE predicate on the "last_proactive_contact_at" field.
func LastProactiveContactAtGTE(v time.Time) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldGTE(FieldLastProactiveContactAt, v))
}

// LastProactiveContactAtLT applies the LT predicate on the "last_proactive_contact_at" field.
func LastProactiveContactAtLT(v time.Time) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldLT(FieldLastProactiveContactAt, v))
}

// LastProactiveContactAtLTE applies the LTE predicate on the "last_proactive_contact_at" field.
func LastProactiveContactAtLTE(v time.Time) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldLTE(FieldLastProactiveContactAt, v))
}

// LastProactiveContactAtIsNil applies the IsNil predicate on the "last_proactive_contact_at" field.
func LastProactiveContactAtIsNil() predicate.DaemonState {
	return predicate.DaemonState(sql.FieldIsNull(FieldLastProactiveContactAt))
}

// LastProactiveContactAtNotNil applies the NotNil predicate on the "last_proactive_contact_at" field.
func LastProactiveContactAtNotNil() predicate.DaemonState {
	return predicate.DaemonState(sql.FieldNotNull(FieldLastProactiveContactAt))
}

// AutonomousWorkCountEQ applies the EQ predicate on the "autonomous_work_count" field.
func AutonomousWorkCountEQ(v int) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldEQ(FieldAutonomousWorkCount, v))
}

// AutonomousWorkCountNEQ applies the NEQ predicate on the "autonomous_work_count" field.
func AutonomousWorkCountNEQ(v int) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldNEQ(FieldAutonomousWorkCount, v))
}

// AutonomousWorkCountIn applies the In predicate on the "autonomous_work_count" field.
func AutonomousWorkCountIn(vs ...int) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldIn(FieldAutonomousWorkCount, vs...))
}

// AutonomousWorkCountNotIn applies the NotIn predicate on the "autonomous_work_count" field.
func AutonomousWorkCountNotIn(vs ...int) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldNotIn(FieldAutonomousWorkCount, vs...))
}

// AutonomousWorkCountGT applies the GT predicate on the "autonomous_work_count" field.
func AutonomousWorkCountGT(v int) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldGT(FieldAutonomousWorkCount, v))
}

// AutonomousWorkCountGTE applies the GTE predicate on the "autonomous_work_count" field.
func AutonomousWorkCountGTE(v int) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldGTE(FieldAutonomousWorkCount, v))
}

// AutonomousWorkCountLT applies the LT predicate on the "autonomous_work_count" field.
func AutonomousWorkCountLT(v int) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldLT(FieldAutonomousWorkCount, v))
}

// AutonomousWorkCountLTE applies the LTE predicate on the "autonomous_work_count" field.
func AutonomousWorkCountLTE(v int) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldLTE(FieldAutonomousWorkCount, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DaemonState {
	return predicate.DaemonState(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DaemonState) predicate.DaemonState {
	return predicate.DaemonState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DaemonState) predicate.DaemonState {
	return predicate.DaemonState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DaemonState) predicate.DaemonState {
	return predicate.DaemonState(sql.NotPredicates(p))
}
