// Code generated by ent, DO NOT EDIT.

package explorationfinding

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kestrel-ai/kestrel/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldEQ(FieldTaskID, v))
}

// Finding applies equality check predicate on the "finding" field. It's identical to FindingEQ.
func Finding(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldEQ(FieldFinding, v))
}

// SourceContext applies equality check predicate on the "source_context" field. It's identical to SourceContextEQ.
func SourceContext(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldEQ(FieldSourceContext, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldEQ(FieldConfidence, v))
}

// WorthSharing applies equality check predicate on the "worth_sharing" field. It's identical to WorthSharingEQ.
func WorthSharing(v bool) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldEQ(FieldWorthSharing, v))
}

// ShareMessage applies equality check predicate on the "share_message" field. It's identical to ShareMessageEQ.
func ShareMessage(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldEQ(FieldShareMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldEQ(FieldCreatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldContainsFold(FieldTaskID, v))
}

// FindingEQ applies the EQ predicate on the "finding" field.
func FindingEQ(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldEQ(FieldFinding, v))
}

// FindingNEQ applies the NEQ predicate on the "finding" field.
func FindingNEQ(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldNEQ(FieldFinding, v))
}

// FindingIn applies the In predicate on the "finding" field.
func FindingIn(vs ...string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldIn(FieldFinding, vs...))
}

// FindingNotIn applies the NotIn predicate on the "finding" field.
func FindingNotIn(vs ...string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldNotIn(FieldFinding, vs...))
}

// FindingGT applies the GT predicate on the "finding" field.
func FindingGT(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldGT(FieldFinding, v))
}

// FindingGTE applies the GTE predicate on the "finding" field.
func FindingGTE(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldGTE(FieldFinding, v))
}

// FindingLT applies the LT predicate on the "finding" field.
func FindingLT(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldLT(FieldFinding, v))
}

// FindingLTE applies the LTE predicate on the "finding" field.
func FindingLTE(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldLTE(FieldFinding, v))
}

// FindingContains applies the Contains predicate on the "finding" field.
func FindingContains(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldContains(FieldFinding, v))
}

// FindingHasPrefix applies the HasPrefix predicate on the "finding" field.
func FindingHasPrefix(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldHasPrefix(FieldFinding, v))
}

// FindingHasSuffix applies the HasSuffix predicate on the "finding" field.
func FindingHasSuffix(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldHasSuffix(FieldFinding, v))
}

// FindingEqualFold applies the EqualFold predicate on the "finding" field.
func FindingEqualFold(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldEqualFold(FieldFinding, v))
}

// FindingContainsFold applies the ContainsFold predicate on the "finding" field.
func FindingContainsFold(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldContainsFold(FieldFinding, v))
}

// SourceContextEQ applies the EQ predicate on the "source_context" field.
func SourceContextEQ(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldEQ(FieldSourceContext, v))
}

// SourceContextNEQ applies the NEQ predicate on the "source_context" field.
func SourceContextNEQ(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldNEQ(FieldSourceContext, v))
}

// SourceContextIn applies the In predicate on the "source_context" field.
func SourceContextIn(vs ...string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldIn(FieldSourceContext, vs...))
}

// SourceContextNotIn applies the NotIn predicate on the "source_context" field.
func SourceContextNotIn(vs ...string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldNotIn(FieldSourceContext, vs...))
}

// SourceContextGT applies the GT predicate on the "source_context" field.
func SourceContextGT(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldGT(FieldSourceContext, v))
}

// SourceContextGTE applies the GTE predicate on the "source_context" field.
func SourceContextGTE(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldGTE(FieldSourceContext, v))
}

// SourceContextLT applies the LT predicate on the "source_context" field.
func SourceContextLT(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldLT(FieldSourceContext, v))
}

// SourceContextLTE applies the LTE predicate on the "source_context" field.
func SourceContextLTE(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldLTE(FieldSourceContext, v))
}

// SourceContextContains applies the Contains predicate on the "source_context" field.
func SourceContextContains(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldContains(FieldSourceContext, v))
}

// SourceContextHasPrefix applies the HasPrefix predicate on the "source_context" field.
func SourceContextHasPrefix(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldHasPrefix(FieldSourceContext, v))
}

// SourceContextHasSuffix applies the HasSuffix predicate on the "source_context" field.
func SourceContextHasSuffix(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldHasSuffix(FieldSourceContext, v))
}

// SourceContextIsNil applies the IsNil predicate on the "source_context" field.
func SourceContextIsNil() predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldIsNull(FieldSourceContext))
}

// SourceContextNotNil applies the NotNil predicate on the "source_context" field.
func SourceContextNotNil() predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldNotNull(FieldSourceContext))
}

// SourceContextEqualFold applies the EqualFold predicate on the "source_context" field.
func SourceContextEqualFold(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldEqualFold(FieldSourceContext, v))
}

// SourceContextContainsFold applies the ContainsFold predicate on the "source_context" field.
func SourceContextContainsFold(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldContainsFold(FieldSourceContext, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldLTE(FieldConfidence, v))
}

// WorthSharingEQ applies the EQ predicate on the "worth_sharing" field.
func WorthSharingEQ(v bool) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldEQ(FieldWorthSharing, v))
}

// WorthSharingNEQ applies the NEQ predicate on the "worth_sharing" field.
func WorthSharingNEQ(v bool) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldNEQ(FieldWorthSharing, v))
}

// ShareMessageEQ applies the EQ predicate on the "share_message" field.
func ShareMessageEQ(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldEQ(FieldShareMessage, v))
}

// ShareMessageNEQ applies the NEQ predicate on the "share_message" field.
func ShareMessageNEQ(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldNEQ(FieldShareMessage, v))
}

// ShareMessageIn applies the In predicate on the "share_message" field.
func ShareMessageIn(vs ...string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldIn(FieldShareMessage, vs...))
}

// ShareMessageNotIn applies the NotIn predicate on the "share_message" field.
func ShareMessageNotIn(vs ...string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldNotIn(FieldShareMessage, vs...))
}

// ShareMessageGT applies the GT predicate on the "share_message" field.
func ShareMessageGT(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldGT(FieldShareMessage, v))
}

// ShareMessageGTE applies the GTE predicate on the "share_message" field.
func ShareMessageGTE(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldGTE(FieldShareMessage, v))
}

// ShareMessageLT applies the LT predicate on the "share_message" field.
func ShareMessageLT(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldLT(FieldShareMessage, v))
}

// ShareMessageLTE applies the LTE predicate on the "share_message" field.
func ShareMessageLTE(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldLTE(FieldShareMessage, v))
}

// ShareMessageContains applies the Contains predicate on the "share_message" field.
func ShareMessageContains(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldContains(FieldShareMessage, v))
}

// ShareMessageHasPrefix applies the HasPrefix predicate on the "share_message" field.
func ShareMessageHasPrefix(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldHasPrefix(FieldShareMessage, v))
}

// ShareMessageHasSuffix applies the HasSuffix predicate on the "share_message" field.
func ShareMessageHasSuffix(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldHasSuffix(FieldShareMessage, v))
}

// ShareMessageIsNil applies the IsNil predicate on the "share_message" field.
func ShareMessageIsNil() predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldIsNull(FieldShareMessage))
}

// ShareMessageNotNil applies the NotNil predicate on the "share_message" field.
func ShareMessageNotNil() predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldNotNull(FieldShareMessage))
}

// ShareMessageEqualFold applies the EqualFold predicate on the "share_message" field.
func ShareMessageEqualFold(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldEqualFold(FieldShareMessage, v))
}

// ShareMessageContainsFold applies the ContainsFold predicate on the "share_message" field.
func ShareMessageContainsFold(v string) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldContainsFold(FieldShareMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExplorationFinding) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExplorationFinding) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExplorationFinding) predicate.ExplorationFinding {
	return predicate.ExplorationFinding(sql.NotPredicates(p))
}
