// Code generated by ent, DO NOT EDIT.

package corememoryblock

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kestrel-ai/kestrel/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldEQ(FieldUserID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldEQ(FieldSessionID, v))
}

// BlockType applies equality check predicate on the "block_type" field. It's identical to BlockTypeEQ.
func BlockType(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldEQ(FieldBlockType, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldEQ(FieldContent, v))
}

// CharLimit applies equality check predicate on the "char_limit" field. It's identical to CharLimitEQ.
func CharLimit(v int) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldEQ(FieldCharLimit, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldEQ(FieldVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldContainsFold(FieldUserID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldContainsFold(FieldSessionID, v))
}

// BlockTypeEQ applies the EQ predicate on the "block_type" field.
func BlockTypeEQ(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldEQ(FieldBlockType, v))
}

// BlockTypeNEQ applies the NEQ predicate on the "block_type" field.
func BlockTypeNEQ(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldNEQ(FieldBlockType, v))
}

// BlockTypeIn applies the In predicate on the "block_type" field.
func BlockTypeIn(vs ...string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldIn(FieldBlockType, vs...))
}

// BlockTypeNotIn applies the NotIn predicate on the "block_type" field.
func BlockTypeNotIn(vs ...string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldNotIn(FieldBlockType, vs...))
}

// BlockTypeGT applies the GT predicate on the "block_type" field.
func BlockTypeGT(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldGT(FieldBlockType, v))
}

// BlockTypeGTE applies the GTE predicate on the "block_type" field.
func BlockTypeGTE(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldGTE(FieldBlockType, v))
}

// BlockTypeLT applies the LT predicate on the "block_type" field.
func BlockTypeLT(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldLT(FieldBlockType, v))
}

// BlockTypeLTE applies the LTE predicate on the "block_type" field.
func BlockTypeLTE(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldLTE(FieldBlockType, v))
}

// BlockTypeContains applies the Contains predicate on the "block_type" field.
func BlockTypeContains(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldContains(FieldBlockType, v))
}

// BlockTypeHasPrefix applies the HasPrefix predicate on the "block_type" field.
func BlockTypeHasPrefix(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldHasPrefix(FieldBlockType, v))
}

// BlockTypeHasSuffix applies the HasSuffix predicate on the "block_type" field.
func BlockTypeHasSuffix(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldHasSuffix(FieldBlockType, v))
}

// BlockTypeEqualFold applies the EqualFold predicate on the "block_type" field.
func BlockTypeEqualFold(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldEqualFold(FieldBlockType, v))
}

// BlockTypeContainsFold applies the ContainsFold predicate on the "block_type" field.
func BlockTypeContainsFold(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldContainsFold(FieldBlockType, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldContainsFold(FieldContent, v))
}

// CharLimitEQ applies the EQ predicate on the "char_limit" field.
func CharLimitEQ(v int) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldEQ(FieldCharLimit, v))
}

// CharLimitNEQ applies the NEQ predicate on the "char_limit" field.
func CharLimitNEQ(v int) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldNEQ(FieldCharLimit, v))
}

// CharLimitIn applies the In predicate on the "char_limit" field.
func CharLimitIn(vs ...int) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldIn(FieldCharLimit, vs...))
}

// CharLimitNotIn applies the NotIn predicate on the "char_limit" field.
func CharLimitNotIn(vs ...int) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldNotIn(FieldCharLimit, vs...))
}

// CharLimitGT applies the GT predicate on the "char_limit" field.
func CharLimitGT(v int) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldGT(FieldCharLimit, v))
}

// CharLimitGTE applies the GTE predicate on the "char_limit" field.
func CharLimitGTE(v int) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldGTE(FieldCharLimit, v))
}

// CharLimitLT applies the LT predicate on the "char_limit" field.
func CharLimitLT(v int) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldLT(FieldCharLimit, v))
}

// CharLimitLTE applies the LTE predicate on the "char_limit" field.
func CharLimitLTE(v int) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldLTE(FieldCharLimit, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldLTE(FieldVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CoreMemoryBlock) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CoreMemoryBlock) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CoreMemoryBlock) predicate.CoreMemoryBlock {
	return predicate.CoreMemoryBlock(sql.NotPredicates(p))
}
