// Code generated by ent, DO NOT EDIT.

package contradictionreview

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kestrel-ai/kestrel/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldContainsFold(FieldID, id))
}

// NewFact applies equality check predicate on the "new_fact" field. It's identical to NewFactEQ.
func NewFact(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldEQ(FieldNewFact, v))
}

// ExistingFactUUID applies equality check predicate on the "existing_fact_uuid" field. It's identical to ExistingFactUUIDEQ.
func ExistingFactUUID(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldEQ(FieldExistingFactUUID, v))
}

// ExistingFact applies equality check predicate on the "existing_fact" field. It's identical to ExistingFactEQ.
func ExistingFact(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldEQ(FieldExistingFact, v))
}

// Similarity applies equality check predicate on the "similarity" field. It's identical to SimilarityEQ.
func Similarity(v float64) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldEQ(FieldSimilarity, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldEQ(FieldReason, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldEQ(FieldSource, v))
}

// Context applies equality check predicate on the "context" field. It's identical to ContextEQ.
func Context(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldEQ(FieldContext, v))
}

// GroupID applies equality check predicate on the "group_id" field. It's identical to GroupIDEQ.
func GroupID(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldEQ(FieldGroupID, v))
}

// Resolution applies equality check predicate on the "resolution" field. It's identical to ResolutionEQ.
func Resolution(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldEQ(FieldResolution, v))
}

// Resolver applies equality check predicate on the "resolver" field. It's identical to ResolverEQ.
func Resolver(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldEQ(FieldResolver, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldEQ(FieldResolvedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldEQ(FieldCreatedAt, v))
}

// NewFactEQ applies the EQ predicate on the "new_fact" field.
func NewFactEQ(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldEQ(FieldNewFact, v))
}

// NewFactNEQ applies the NEQ predicate on the "new_fact" field.
func NewFactNEQ(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldNEQ(FieldNewFact, v))
}

// NewFactIn applies the In predicate on the "new_fact" field.
func NewFactIn(vs ...string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldIn(FieldNewFact, vs...))
}

// NewFactNotIn applies the NotIn predicate on the "new_fact" field.
func NewFactNotIn(vs ...string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldNotIn(FieldNewFact, vs...))
}

// NewFactGT applies the GT predicate on the "new_fact" field.
func NewFactGT(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldGT(FieldNewFact, v))
}

// NewFactGTE applies the GTE predicate on the "new_fact" field.
func NewFactGTE(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldGTE(FieldNewFact, v))
}

// NewFactLT applies the LT predicate on the "new_fact" field.
func NewFactLT(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldLT(FieldNewFact, v))
}

// NewFactLTE applies the LTE predicate on the "new_fact" field.
func NewFactLTE(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldLTE(FieldNewFact, v))
}

// NewFactContains applies the Contains predicate on the "new_fact" field.
func NewFactContains(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldContains(FieldNewFact, v))
}

// NewFactHasPrefix applies the HasPrefix predicate on the "new_fact" field.
func NewFactHasPrefix(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldHasPrefix(FieldNewFact, v))
}

// NewFactHasSuffix applies the HasSuffix predicate on the "new_fact" field.
func NewFactHasSuffix(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldHasSuffix(FieldNewFact, v))
}

// NewFactEqualFold applies the EqualFold predicate on the "new_fact" field.
func NewFactEqualFold(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldEqualFold(FieldNewFact, v))
}

// NewFactContainsFold applies the ContainsFold predicate on the "new_fact" field.
func NewFactContainsFold(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldContainsFold(FieldNewFact, v))
}

// ExistingFactUUIDEQ applies the EQ predicate on the "existing_fact_uuid" field.
func ExistingFactUUIDEQ(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldEQ(FieldExistingFactUUID, v))
}

// ExistingFactUUIDNEQ applies the NEQ predicate on the "existing_fact_uuid" field.
func ExistingFactUUIDNEQ(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldNEQ(FieldExistingFactUUID, v))
}

// ExistingFactUUIDIn applies the In predicate on the "existing_fact_uuid" field.
func ExistingFactUUIDIn(vs ...string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldIn(FieldExistingFactUUID, vs...))
}

// ExistingFactUUIDNotIn applies the NotIn predicate on the "existing_fact_uuid" field.
func ExistingFactUUIDNotIn(vs ...string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldNotIn(FieldExistingFactUUID, vs...))
}

// ExistingFactUUIDGT applies the GT predicate on the "existing_fact_uuid" field.
func ExistingFactUUIDGT(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldGT(FieldExistingFactUUID, v))
}

// ExistingFactUUIDGTE applies the GTE predicate on the "existing_fact_uuid" field.
func ExistingFactUUIDGTE(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldGTE(FieldExistingFactUUID, v))
}

// ExistingFactUUIDLT applies the LT predicate on the "existing_fact_uuid" field.
func ExistingFactUUIDLT(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldLT(FieldExistingFactUUID, v))
}

// ExistingFactUUIDLTE applies the LTE predicate on the "existing_fact_uuid" field.
func ExistingFactUUIDLTE(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldLTE(FieldExistingFactUUID, v))
}

// ExistingFactUUIDContains applies the Contains predicate on the "existing_fact_uuid" field.
func ExistingFactUUIDContains(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldContains(FieldExistingFactUUID, v))
}

// ExistingFactUUIDHasPrefix applies the HasPrefix predicate on the "existing_fact_uuid" field.
func ExistingFactUUIDHasPrefix(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldHasPrefix(FieldExistingFactUUID, v))
}

// ExistingFactUUIDHasSuffix applies the HasSuffix predicate on the "existing_fact_uuid" field.
func ExistingFactUUIDHasSuffix(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldHasSuffix(FieldExistingFactUUID, v))
}

// ExistingFactUUIDEqualFold applies the EqualFold predicate on the "existing_fact_uuid" field.
func ExistingFactUUIDEqualFold(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldEqualFold(FieldExistingFactUUID, v))
}

// ExistingFactUUIDContainsFold applies the ContainsFold predicate on the "existing_fact_uuid" field.
func ExistingFactUUIDContainsFold(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldContainsFold(FieldExistingFactUUID, v))
}

// ExistingFactEQ applies the EQ predicate on the "existing_fact" field.
func ExistingFactEQ(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldEQ(FieldExistingFact, v))
}

// ExistingFactNEQ applies the NEQ predicate on the "existing_fact" field.
func ExistingFactNEQ(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldNEQ(FieldExistingFact, v))
}

// ExistingFactIn applies the In predicate on the "existing_fact" field.
func ExistingFactIn(vs ...string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldIn(FieldExistingFact, vs...))
}

// ExistingFactNotIn applies the NotIn predicate on the "existing_fact" field.
func ExistingFactNotIn(vs ...string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldNotIn(FieldExistingFact, vs...))
}

// ExistingFactGT applies the GT predicate on the "existing_fact" field.
func ExistingFactGT(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldGT(FieldExistingFact, v))
}

// ExistingFactGTE applies the GTE predicate on the "existing_fact" field.
func ExistingFactGTE(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldGTE(FieldExistingFact, v))
}

// ExistingFactLT applies the LT predicate on the "existing_fact" field.
func ExistingFactLT(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldLT(FieldExistingFact, v))
}

// ExistingFactLTE applies the LTE predicate on the "existing_fact" field.
func ExistingFactLTE(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldLTE(FieldExistingFact, v))
}

// ExistingFactContains applies the Contains predicate on the "existing_fact" field.
func ExistingFactContains(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldContains(FieldExistingFact, v))
}

// ExistingFactHasPrefix applies the HasPrefix predicate on the "existing_fact" field.
func ExistingFactHasPrefix(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldHasPrefix(FieldExistingFact, v))
}

// ExistingFactHasSuffix applies the HasSuffix predicate on the "existing_fact" field.
func ExistingFactHasSuffix(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldHasSuffix(FieldExistingFact, v))
}

// ExistingFactEqualFold applies the EqualFold predicate on the "existing_fact" field.
func ExistingFactEqualFold(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldEqualFold(FieldExistingFact, v))
}

// ExistingFactContainsFold applies the ContainsFold predicate on the "existing_fact" field.
func ExistingFactContainsFold(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldContainsFold(FieldExistingFact, v))
}

// SimilarityEQ applies the EQ predicate on the "similarity" field.
func SimilarityEQ(v float64) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldEQ(FieldSimilarity, v))
}

// SimilarityNEQ applies the NEQ predicate on the "similarity" field.
func SimilarityNEQ(v float64) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldNEQ(FieldSimilarity, v))
}

// SimilarityIn applies the In predicate on the "similarity" field.
func SimilarityIn(vs ...float64) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldIn(FieldSimilarity, vs...))
}

// SimilarityNotIn applies the NotIn predicate on the "similarity" field.
func SimilarityNotIn(vs ...float64) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldNotIn(FieldSimilarity, vs...))
}

// SimilarityGT applies the GT predicate on the "similarity" field.
func SimilarityGT(v float64) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldGT(FieldSimilarity, v))
}

// SimilarityGTE applies the GTE predicate on the "similarity" field.
func SimilarityGTE(v float64) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldGTE(FieldSimilarity, v))
}

// SimilarityLT applies the LT predicate on the "similarity" field.
func SimilarityLT(v float64) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldLT(FieldSimilarity, v))
}

// SimilarityLTE applies the LTE predicate on the "similarity" field.
func SimilarityLTE(v float64) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldLTE(FieldSimilarity, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonIsNil applies the IsNil predicate on the "reason" field.
func ReasonIsNil() predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldIsNull(FieldReason))
}

// ReasonNotNil applies the NotNil predicate on the "reason" field.
func ReasonNotNil() predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldNotNull(FieldReason))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldContainsFold(FieldReason, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldHasSuffix(FieldSource, v))
}

// SourceIsNil applies the IsNil predicate on the "source" field.
func SourceIsNil() predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldIsNull(FieldSource))
}

// SourceNotNil applies the NotNil predicate on the "source" field.
func SourceNotNil() predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldNotNull(FieldSource))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldContainsFold(FieldSource, v))
}

// ContextEQ applies the EQ predicate on the "context" field.
func ContextEQ(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldEQ(FieldContext, v))
}

// ContextNEQ applies the NEQ predicate on the "context" field.
func ContextNEQ(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldNEQ(FieldContext, v))
}

// ContextIn applies the In predicate on the "context" field.
func ContextIn(vs ...string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldIn(FieldContext, vs...))
}

// ContextNotIn applies the NotIn predicate on the "context" field.
func ContextNotIn(vs ...string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldNotIn(FieldContext, vs...))
}

// ContextGT applies the GT predicate on the "context" field.
func ContextGT(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldGT(FieldContext, v))
}

// ContextGTE applies the GTE predicate on the "context" field.
func ContextGTE(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldGTE(FieldContext, v))
}

// ContextLT applies the LT predicate on the "context" field.
func ContextLT(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldLT(FieldContext, v))
}

// ContextLTE applies the LTE predicate on the "context" field.
func ContextLTE(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldLTE(FieldContext, v))
}

// ContextContains applies the Contains predicate on the "context" field.
func ContextContains(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldContains(FieldContext, v))
}

// ContextHasPrefix applies the HasPrefix predicate on the "context" field.
func ContextHasPrefix(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldHasPrefix(FieldContext, v))
}

// ContextHasSuffix applies the HasSuffix predicate on the "context" field.
func ContextHasSuffix(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldHasSuffix(FieldContext, v))
}

// ContextIsNil applies the IsNil predicate on the "context" field.
func ContextIsNil() predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldIsNull(FieldContext))
}

// ContextNotNil applies the NotNil predicate on the "context" field.
func ContextNotNil() predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldNotNull(FieldContext))
}

// ContextEqualFold applies the EqualFold predicate on the "context" field.
func ContextEqualFold(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldEqualFold(FieldContext, v))
}

// ContextContainsFold applies the ContainsFold predicate on the "context" field.
func ContextContainsFold(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldContainsFold(FieldContext, v))
}

// EntityNamesIsNil applies the IsNil predicate on the "entity_names" field.
func EntityNamesIsNil() predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldIsNull(FieldEntityNames))
}

// EntityNamesNotNil applies the NotNil predicate on the "entity_names" field.
func EntityNamesNotNil() predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldNotNull(FieldEntityNames))
}

// GroupIDEQ applies the EQ predicate on the "group_id" field.
func GroupIDEQ(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldEQ(FieldGroupID, v))
}

// GroupIDNEQ applies the NEQ predicate on the "group_id" field.
func GroupIDNEQ(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldNEQ(FieldGroupID, v))
}

// GroupIDIn applies the In predicate on the "group_id" field.
func GroupIDIn(vs ...string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldIn(FieldGroupID, vs...))
}

// GroupIDNotIn applies the NotIn predicate on the "group_id" field.
func GroupIDNotIn(vs ...string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldNotIn(FieldGroupID, vs...))
}

// GroupIDGT applies the GT predicate on the "group_id" field.
func GroupIDGT(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldGT(FieldGroupID, v))
}

// GroupIDGTE applies the GTE predicate on the "group_id" field.
func GroupIDGTE(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldGTE(FieldGroupID, v))
}

// GroupIDLT applies the LT predicate on the "group_id" field.
func GroupIDLT(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldLT(FieldGroupID, v))
}

// GroupIDLTE applies the LTE predicate on the "group_id" field.
func GroupIDLTE(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldLTE(FieldGroupID, v))
}

// GroupIDContains applies the Contains predicate on the "group_id" field.
func GroupIDContains(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldContains(FieldGroupID, v))
}

// GroupIDHasPrefix applies the HasPrefix predicate on the "group_id" field.
func GroupIDHasPrefix(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldHasPrefix(FieldGroupID, v))
}

// GroupIDHasSuffix applies the HasSuffix predicate on the "group_id" field.
func GroupIDHasSuffix(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldHasSuffix(FieldGroupID, v))
}

// GroupIDIsNil applies the IsNil predicate on the "group_id" field.
func GroupIDIsNil() predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldIsNull(FieldGroupID))
}

// GroupIDNotNil applies the NotNil predicate on the "group_id" field.
func GroupIDNotNil() predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldNotNull(FieldGroupID))
}

// GroupIDEqualFold applies the EqualFold predicate on the "group_id" field.
func GroupIDEqualFold(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldEqualFold(FieldGroupID, v))
}

// GroupIDContainsFold applies the ContainsFold predicate on the "group_id" field.
func GroupIDContainsFold(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldContainsFold(FieldGroupID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldNotIn(FieldStatus, vs...))
}

// ResolutionEQ applies the EQ predicate on the "resolution" field.
func ResolutionEQ(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldEQ(FieldResolution, v))
}

// ResolutionNEQ applies the NEQ predicate on the "resolution" field.
func ResolutionNEQ(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldNEQ(FieldResolution, v))
}

// ResolutionIn applies the In predicate on the "resolution" field.
func ResolutionIn(vs ...string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldIn(FieldResolution, vs...))
}

// ResolutionNotIn applies the NotIn predicate on the "resolution" field.
func ResolutionNotIn(vs ...string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldNotIn(FieldResolution, vs...))
}

// ResolutionGT applies the GT predicate on the "resolution" field.
func ResolutionGT(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldGT(FieldResolution, v))
}

// ResolutionGTE applies the GTE predicate on the "resolution" field.
func ResolutionGTE(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldGTE(FieldResolution, v))
}

// ResolutionLT applies the LT predicate on the "resolution" field.
func ResolutionLT(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldLT(FieldResolution, v))
}

// ResolutionLTE applies the LTE predicate on the "resolution" field.
func ResolutionLTE(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldLTE(FieldResolution, v))
}

// ResolutionContains applies the Contains predicate on the "resolution" field.
func ResolutionContains(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldContains(FieldResolution, v))
}

// ResolutionHasPrefix applies the HasPrefix predicate on the "resolution" field.
func ResolutionHasPrefix(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldHasPrefix(FieldResolution, v))
}

// ResolutionHasSuffix applies the HasSuffix predicate on the "resolution" field.
func ResolutionHasSuffix(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldHasSuffix(FieldResolution, v))
}

// ResolutionIsNil applies the IsNil predicate on the "resolution" field.
func ResolutionIsNil() predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldIsNull(FieldResolution))
}

// ResolutionNotNil applies the NotNil predicate on the "resolution" field.
func ResolutionNotNil() predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldNotNull(FieldResolution))
}

// ResolutionEqualFold applies the EqualFold predicate on the "resolution" field.
func ResolutionEqualFold(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldEqualFold(FieldResolution, v))
}

// ResolutionContainsFold applies the ContainsFold predicate on the "resolution" field.
func ResolutionContainsFold(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldContainsFold(FieldResolution, v))
}

// ResolverEQ applies the EQ predicate on the "resolver" field.
func ResolverEQ(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldEQ(FieldResolver, v))
}

// ResolverNEQ applies the NEQ predicate on the "resolver" field.
func ResolverNEQ(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldNEQ(FieldResolver, v))
}

// ResolverIn applies the In predicate on the "resolver" field.
func ResolverIn(vs ...string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldIn(FieldResolver, vs...))
}

// ResolverNotIn applies the NotIn predicate on the "resolver" field.
func ResolverNotIn(vs ...string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldNotIn(FieldResolver, vs...))
}

// ResolverGT applies the GT predicate on the "resolver" field.
func ResolverGT(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldGT(FieldResolver, v))
}

// ResolverGTE applies the GTE predicate on the "resolver" field.
func ResolverGTE(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldGTE(FieldResolver, v))
}

// ResolverLT applies the LT predicate on the "resolver" field.
func ResolverLT(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldLT(FieldResolver, v))
}

// ResolverLTE applies the LTE predicate on the "resolver" field.
func ResolverLTE(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldLTE(FieldResolver, v))
}

// ResolverContains applies the Contains predicate on the "resolver" field.
func ResolverContains(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldContains(FieldResolver, v))
}

// ResolverHasPrefix applies the HasPrefix predicate on the "resolver" field.
func ResolverHasPrefix(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldHasPrefix(FieldResolver, v))
}

// ResolverHasSuffix applies the HasSuffix predicate on the "resolver" field.
func ResolverHasSuffix(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldHasSuffix(FieldResolver, v))
}

// ResolverIsNil applies the IsNil predicate on the "resolver" field.
func ResolverIsNil() predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldIsNull(FieldResolver))
}

// ResolverNotNil applies the NotNil predicate on the "resolver" field.
func ResolverNotNil() predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldNotNull(FieldResolver))
}

// ResolverEqualFold applies the EqualFold predicate on the "resolver" field.
func ResolverEqualFold(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldEqualFold(FieldResolver, v))
}

// ResolverContainsFold applies the ContainsFold predicate on the "resolver" field.
func ResolverContainsFold(v string) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldContainsFold(FieldResolver, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldNotNull(FieldResolvedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ContradictionReview) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ContradictionReview) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ContradictionReview) predicate.ContradictionReview {
	return predicate.ContradictionReview(sql.NotPredicates(p))
}
