// Code generated by ent, DO NOT EDIT.

package corememoryversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kestrel-ai/kestrel/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldContainsFold(FieldID, id))
}

// BlockID applies equality check predicate on the "block_id" field. It's identical to BlockIDEQ.
func BlockID(v string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldEQ(FieldBlockID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldEQ(FieldVersion, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldEQ(FieldContent, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldEQ(FieldReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// BlockIDEQ applies the EQ predicate on the "block_id" field.
func BlockIDEQ(v string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldEQ(FieldBlockID, v))
}

// BlockIDNEQ applies the NEQ predicate on the "block_id" field.
func BlockIDNEQ(v string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldNEQ(FieldBlockID, v))
}

// BlockIDIn applies the In predicate on the "block_id" field.
func BlockIDIn(vs ...string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldIn(FieldBlockID, vs...))
}

// BlockIDNotIn applies the NotIn predicate on the "block_id" field.
func BlockIDNotIn(vs ...string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldNotIn(FieldBlockID, vs...))
}

// BlockIDGT applies the GT predicate on the "block_id" field.
func BlockIDGT(v string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldGT(FieldBlockID, v))
}

// BlockIDGTE applies the GTE predicate on the "block_id" field.
func BlockIDGTE(v string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldGTE(FieldBlockID, v))
}

// BlockIDLT applies the LT predicate on the "block_id" field.
func BlockIDLT(v string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldLT(FieldBlockID, v))
}

// BlockIDLTE applies the LTE predicate on the "block_id" field.
func BlockIDLTE(v string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldLTE(FieldBlockID, v))
}

// BlockIDContains applies the Contains predicate on the "block_id" field.
func BlockIDContains(v string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldContains(FieldBlockID, v))
}

// BlockIDHasPrefix applies the HasPrefix predicate on the "block_id" field.
func BlockIDHasPrefix(v string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldHasPrefix(FieldBlockID, v))
}

// BlockIDHasSuffix applies the HasSuffix predicate on the "block_id" field.
func BlockIDHasSuffix(v string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldHasSuffix(FieldBlockID, v))
}

// BlockIDEqualFold applies the EqualFold predicate on the "block_id" field.
func BlockIDEqualFold(v string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldEqualFold(FieldBlockID, v))
}

// BlockIDContainsFold applies the ContainsFold predicate on the "block_id" field.
func BlockIDContainsFold(v string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldContainsFold(FieldBlockID, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldLTE(FieldVersion, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldContainsFold(FieldContent, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonIsNil applies the IsNil predicate on the "reason" field.
func ReasonIsNil() predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldIsNull(FieldReason))
}

// ReasonNotNil applies the NotNil predicate on the "reason" field.
func ReasonNotNil() predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldNotNull(FieldReason))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldContainsFold(FieldReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CoreMemoryVersion) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CoreMemoryVersion) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CoreMemoryVersion) predicate.CoreMemoryVersion {
	return predicate.CoreMemoryVersion(sql.NotPredicates(p))
}
