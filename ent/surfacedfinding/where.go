// Code generated by ent, DO NOT EDIT.

package surfacedfinding

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kestrel-ai/kestrel/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldContainsFold(FieldID, id))
}

// FindingID applies equality check predicate on the "finding_id" field. It's identical to FindingIDEQ.
func FindingID(v string) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldEQ(FieldFindingID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldEQ(FieldSessionID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldEQ(FieldCreatedAt, v))
}

// FindingIDEQ applies the EQ predicate on the "finding_id" field.
func FindingIDEQ(v string) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldEQ(FieldFindingID, v))
}

// FindingIDNEQ applies the NEQ predicate on the "finding_id" field.
func FindingIDNEQ(v string) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldNEQ(FieldFindingID, v))
}

// FindingIDIn applies the In predicate on the "finding_id" field.
func FindingIDIn(vs ...string) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldIn(FieldFindingID, vs...))
}

// FindingIDNotIn applies the NotIn predicate on the "finding_id" field.
func FindingIDNotIn(vs ...string) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldNotIn(FieldFindingID, vs...))
}

// FindingIDGT applies the GT predicate on the "finding_id" field.
func FindingIDGT(v string) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldGT(FieldFindingID, v))
}

// FindingIDGTE applies the GTE predicate on the "finding_id" field.
func FindingIDGTE(v string) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldGTE(FieldFindingID, v))
}

// FindingIDLT applies the LT predicate on the "finding_id" field.
func FindingIDLT(v string) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldLT(FieldFindingID, v))
}

// FindingIDLTE applies the LTE predicate on the "finding_id" field.
func FindingIDLTE(v string) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldLTE(FieldFindingID, v))
}

// FindingIDContains applies the Contains predicate on the "finding_id" field.
func FindingIDContains(v string) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldContains(FieldFindingID, v))
}

// FindingIDHasPrefix applies the HasPrefix predicate on the "finding_id" field.
func FindingIDHasPrefix(v string) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldHasPrefix(FieldFindingID, v))
}

// FindingIDHasSuffix applies the HasSuffix predicate on the "finding_id" field.
func FindingIDHasSuffix(v string) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldHasSuffix(FieldFindingID, v))
}

// FindingIDEqualFold applies the EqualFold predicate on the "finding_id" field.
func FindingIDEqualFold(v string) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldEqualFold(FieldFindingID, v))
}

// FindingIDContainsFold applies the ContainsFold predicate on the "finding_id" field.
func FindingIDContainsFold(v string) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldContainsFold(FieldFindingID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldContainsFold(FieldSessionID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SurfacedFinding) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SurfacedFinding) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SurfacedFinding) predicate.SurfacedFinding {
	return predicate.SurfacedFinding(sql.NotPredicates(p))
}
