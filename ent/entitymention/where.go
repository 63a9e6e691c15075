// Code generated by ent, DO NOT EDIT.

package entitymention

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kestrel-ai/kestrel/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldContainsFold(FieldID, id))
}

// ConversationID applies equality check predicate on the "conversation_id" field. It's identical to ConversationIDEQ.
func ConversationID(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldConversationID, v))
}

// EntityType applies equality check predicate on the "entity_type" field. It's identical to EntityTypeEQ.
func EntityType(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldEntityType, v))
}

// RawValue applies equality check predicate on the "raw_value" field. It's identical to RawValueEQ.
func RawValue(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldRawValue, v))
}

// NormalizedValue applies equality check predicate on the "normalized_value" field. It's identical to NormalizedValueEQ.
func NormalizedValue(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldNormalizedValue, v))
}

// Fingerprint applies equality check predicate on the "fingerprint" field. It's identical to FingerprintEQ.
func Fingerprint(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldFingerprint, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldConfidence, v))
}

// SpanStart applies equality check predicate on the "span_start" field. It's identical to SpanStartEQ.
func SpanStart(v int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldSpanStart, v))
}

// SpanEnd applies equality check predicate on the "span_end" field. It's identical to SpanEndEQ.
func SpanEnd(v int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldSpanEnd, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldCreatedAt, v))
}

// ConversationIDEQ applies the EQ predicate on the "conversation_id" field.
func ConversationIDEQ(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldConversationID, v))
}

// ConversationIDNEQ applies the NEQ predicate on the "conversation_id" field.
func ConversationIDNEQ(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNEQ(FieldConversationID, v))
}

// ConversationIDIn applies the In predicate on the "conversation_id" field.
func ConversationIDIn(vs ...string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldIn(FieldConversationID, vs...))
}

// ConversationIDNotIn applies the NotIn predicate on the "conversation_id" field.
func ConversationIDNotIn(vs ...string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNotIn(FieldConversationID, vs...))
}

// ConversationIDGT applies the GT predicate on the "conversation_id" field.
func ConversationIDGT(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGT(FieldConversationID, v))
}

// ConversationIDGTE applies the GTE predicate on the "conversation_id" field.
func ConversationIDGTE(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGTE(FieldConversationID, v))
}

// ConversationIDLT applies the LT predicate on the "conversation_id" field.
func ConversationIDLT(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLT(FieldConversationID, v))
}

// ConversationIDLTE applies the LTE predicate on the "conversation_id" field.
func ConversationIDLTE(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLTE(FieldConversationID, v))
}

// ConversationIDContains applies the Contains predicate on the "conversation_id" field.
func ConversationIDContains(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldContains(FieldConversationID, v))
}

// ConversationIDHasPrefix applies the HasPrefix predicate on the "conversation_id" field.
func ConversationIDHasPrefix(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldHasPrefix(FieldConversationID, v))
}

// ConversationIDHasSuffix applies the HasSuffix predicate on the "conversation_id" field.
func ConversationIDHasSuffix(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldHasSuffix(FieldConversationID, v))
}

// ConversationIDIsNil applies the IsNil predicate on the "conversation_id" field.
func ConversationIDIsNil() predicate.EntityMention {
	return predicate.EntityMention(sql.FieldIsNull(FieldConversationID))
}

// ConversationIDNotNil applies the NotNil predicate on the "conversation_id" field.
func ConversationIDNotNil() predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNotNull(FieldConversationID))
}

// ConversationIDEqualFold applies the EqualFold predicate on the "conversation_id" field.
func ConversationIDEqualFold(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEqualFold(FieldConversationID, v))
}

// ConversationIDContainsFold applies the ContainsFold predicate on the "conversation_id" field.
func ConversationIDContainsFold(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldContainsFold(FieldConversationID, v))
}

// EntityTypeEQ applies the EQ predicate on the "entity_type" field.
func EntityTypeEQ(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldEntityType, v))
}

// EntityTypeNEQ applies the NEQ predicate on the "entity_type" field.
func EntityTypeNEQ(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNEQ(FieldEntityType, v))
}

// EntityTypeIn applies the In predicate on the "entity_type" field.
func EntityTypeIn(vs ...string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldIn(FieldEntityType, vs...))
}

// EntityTypeNotIn applies the NotIn predicate on the "entity_type" field.
func EntityTypeNotIn(vs ...string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNotIn(FieldEntityType, vs...))
}

// EntityTypeGT applies the GT predicate on the "entity_type" field.
func EntityTypeGT(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGT(FieldEntityType, v))
}

// EntityTypeGTE applies the GTE predicate on the "entity_type" field.
func EntityTypeGTE(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGTE(FieldEntityType, v))
}

// EntityTypeLT applies the LT predicate on the "entity_type" field.
func EntityTypeLT(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLT(FieldEntityType, v))
}

// EntityTypeLTE applies the LTE predicate on the "entity_type" field.
func EntityTypeLTE(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLTE(FieldEntityType, v))
}

// EntityTypeContains applies the Contains predicate on the "entity_type" field.
func EntityTypeContains(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldContains(FieldEntityType, v))
}

// EntityTypeHasPrefix applies the HasPrefix predicate on the "entity_type" field.
func EntityTypeHasPrefix(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldHasPrefix(FieldEntityType, v))
}

// EntityTypeHasSuffix applies the HasSuffix predicate on the "entity_type" field.
func EntityTypeHasSuffix(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldHasSuffix(FieldEntityType, v))
}

// EntityTypeEqualFold applies the EqualFold predicate on the "entity_type" field.
func EntityTypeEqualFold(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEqualFold(FieldEntityType, v))
}

// EntityTypeContainsFold applies the ContainsFold predicate on the "entity_type" field.
func EntityTypeContainsFold(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldContainsFold(FieldEntityType, v))
}

// RawValueEQ applies the EQ predicate on the "raw_value" field.
func RawValueEQ(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldRawValue, v))
}

// RawValueNEQ applies the NEQ predicate on the "raw_value" field.
func RawValueNEQ(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNEQ(FieldRawValue, v))
}

// RawValueIn applies the In predicate on the "raw_value" field.
func RawValueIn(vs ...string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldIn(FieldRawValue, vs...))
}

// RawValueNotIn applies the NotIn predicate on the "raw_value" field.
func RawValueNotIn(vs ...string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNotIn(FieldRawValue, vs...))
}

// RawValueGT applies the GT predicate on the "raw_value" field.
func RawValueGT(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGT(FieldRawValue, v))
}

// RawValueGTE applies the GTE predicate on the "raw_value" field.
func RawValueGTE(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGTE(FieldRawValue, v))
}

// RawValueLT applies the LT predicate on the "raw_value" field.
func RawValueLT(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLT(FieldRawValue, v))
}

// RawValueLTE applies the LTE predicate on the "raw_value" field.
func RawValueLTE(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLTE(FieldRawValue, v))
}

// RawValueContains applies the Contains predicate on the "raw_value" field.
func RawValueContains(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldContains(FieldRawValue, v))
}

// RawValueHasPrefix applies the HasPrefix predicate on the "raw_value" field.
func RawValueHasPrefix(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldHasPrefix(FieldRawValue, v))
}

// RawValueHasSuffix applies the HasSuffix predicate on the "raw_value" field.
func RawValueHasSuffix(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldHasSuffix(FieldRawValue, v))
}

// RawValueEqualFold applies the EqualFold predicate on the "raw_value" field.
func RawValueEqualFold(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEqualFold(FieldRawValue, v))
}

// RawValueContainsFold applies the ContainsFold predicate on the "raw_value" field.
func RawValueContainsFold(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldContainsFold(FieldRawValue, v))
}

// NormalizedValueEQ applies the EQ predicate on the "normalized_value" field.
func NormalizedValueEQ(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldNormalizedValue, v))
}

// NormalizedValueNEQ applies the NEQ predicate on the "normalized_value" field.
func NormalizedValueNEQ(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNEQ(FieldNormalizedValue, v))
}

// NormalizedValueIn applies the In predicate on the "normalized_value" field.
func NormalizedValueIn(vs ...string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldIn(FieldNormalizedValue, vs...))
}

// NormalizedValueNotIn applies the NotIn predicate on the "normalized_value" field.
func NormalizedValueNotIn(vs ...string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNotIn(FieldNormalizedValue, vs...))
}

// NormalizedValueGT applies the GT predicate on the "normalized_value" field.
func NormalizedValueGT(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGT(FieldNormalizedValue, v))
}

// NormalizedValueGTE applies the GTE predicate on the "normalized_value" field.
func NormalizedValueGTE(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGTE(FieldNormalizedValue, v))
}

// NormalizedValueLT applies the LT predicate on the "normalized_value" field.
func NormalizedValueLT(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLT(FieldNormalizedValue, v))
}

// NormalizedValueLTE applies the LTE predicate on the "normalized_value" field.
func NormalizedValueLTE(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLTE(FieldNormalizedValue, v))
}

// NormalizedValueContains applies the Contains predicate on the "normalized_value" field.
func NormalizedValueContains(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldContains(FieldNormalizedValue, v))
}

// NormalizedValueHasPrefix applies the HasPrefix predicate on the "normalized_value" field.
func NormalizedValueHasPrefix(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldHasPrefix(FieldNormalizedValue, v))
}

// NormalizedValueHasSuffix applies the HasSuffix predicate on the "normalized_value" field.
func NormalizedValueHasSuffix(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldHasSuffix(FieldNormalizedValue, v))
}

// NormalizedValueEqualFold applies the EqualFold predicate on the "normalized_value" field.
func NormalizedValueEqualFold(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEqualFold(FieldNormalizedValue, v))
}

// NormalizedValueContainsFold applies the ContainsFold predicate on the "normalized_value" field.
func NormalizedValueContainsFold(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldContainsFold(FieldNormalizedValue, v))
}

// FingerprintEQ applies the EQ predicate on the "fingerprint" field.
func FingerprintEQ(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldFingerprint, v))
}

// FingerprintNEQ applies the NEQ predicate on the "fingerprint" field.
func FingerprintNEQ(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNEQ(FieldFingerprint, v))
}

// FingerprintIn applies the In predicate on the "fingerprint" field.
func FingerprintIn(vs ...string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldIn(FieldFingerprint, vs...))
}

// FingerprintNotIn applies the NotIn predicate on the "fingerprint" field.
func FingerprintNotIn(vs ...string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNotIn(FieldFingerprint, vs...))
}

// FingerprintGT applies the GT predicate on the "fingerprint" field.
func FingerprintGT(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGT(FieldFingerprint, v))
}

// FingerprintGTE applies the GTE predicate on the "fingerprint" field.
func FingerprintGTE(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGTE(FieldFingerprint, v))
}

// FingerprintLT applies the LT predicate on the "fingerprint" field.
func FingerprintLT(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLT(FieldFingerprint, v))
}

// FingerprintLTE applies the LTE predicate on the "fingerprint" field.
func FingerprintLTE(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLTE(FieldFingerprint, v))
}

// FingerprintContains applies the Contains predicate on the "fingerprint" field.
func FingerprintContains(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldContains(FieldFingerprint, v))
}

// FingerprintHasPrefix applies the HasPrefix predicate on the "fingerprint" field.
func FingerprintHasPrefix(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldHasPrefix(FieldFingerprint, v))
}

// FingerprintHasSuffix applies the HasSuffix predicate on the "fingerprint" field.
func FingerprintHasSuffix(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldHasSuffix(FieldFingerprint, v))
}

// FingerprintEqualFold applies the EqualFold predicate on the "fingerprint" field.
func FingerprintEqualFold(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEqualFold(FieldFingerprint, v))
}

// FingerprintContainsFold applies the ContainsFold predicate on the "fingerprint" field.
func FingerprintContainsFold(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldContainsFold(FieldFingerprint, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLTE(FieldConfidence, v))
}

// SpanStartEQ applies the EQ predicate on the "span_start" field.
func SpanStartEQ(v int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldSpanStart, v))
}

// SpanStartNEQ applies the NEQ predicate on the "span_start" field.
func SpanStartNEQ(v int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNEQ(FieldSpanStart, v))
}

// SpanStartIn applies the In predicate on the "span_start" field.
func SpanStartIn(vs ...int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldIn(FieldSpanStart, vs...))
}

// SpanStartNotIn applies the NotIn predicate on the "span_start" field.
func SpanStartNotIn(vs ...int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNotIn(FieldSpanStart, vs...))
}

// SpanStartGT applies the GT predicate on the "span_start" field.
func SpanStartGT(v int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGT(FieldSpanStart, v))
}

// SpanStartGTE applies the GTE predicate on the "span_start" field.
func SpanStartGTE(v int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGTE(FieldSpanStart, v))
}

// SpanStartLT applies the LT predicate on the "span_start" field.
func SpanStartLT(v int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLT(FieldSpanStart, v))
}

// SpanStartLTE applies the LTE predicate on the "span_start" field.
func SpanStartLTE(v int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLTE(FieldSpanStart, v))
}

// SpanStartIsNil applies the IsNil predicate on the "span_start" field.
func SpanStartIsNil() predicate.EntityMention {
	return predicate.EntityMention(sql.FieldIsNull(FieldSpanStart))
}

// SpanStartNotNil applies the NotNil predicate on the "span_start" field.
func SpanStartNotNil() predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNotNull(FieldSpanStart))
}

// SpanEndEQ applies the EQ predicate on the "span_end" field.
func SpanEndEQ(v int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldSpanEnd, v))
}

// SpanEndNEQ applies the NEQ predicate on the "span_end" field.
func SpanEndNEQ(v int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNEQ(FieldSpanEnd, v))
}

// SpanEndIn applies the In predicate on the "span_end" field.
func SpanEndIn(vs ...int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldIn(FieldSpanEnd, vs...))
}

// SpanEndNotIn applies the NotIn predicate on the "span_end" field.
func SpanEndNotIn(vs ...int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNotIn(FieldSpanEnd, vs...))
}

// SpanEndGT applies the GT predicate on the "span_end" field.
func SpanEndGT(v int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGT(FieldSpanEnd, v))
}

// SpanEndGTE applies the GTE predicate on the "span_end" field.
func SpanEndGTE(v int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGTE(FieldSpanEnd, v))
}

// SpanEndLT applies the LT predicate on the "span_end" field.
func SpanEndLT(v int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLT(FieldSpanEnd, v))
}

// SpanEndLTE applies the LTE predicate on the "span_end" field.
func SpanEndLTE(v int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLTE(FieldSpanEnd, v))
}

// SpanEndIsNil applies the IsNil predicate on the "span_end" field.
func SpanEndIsNil() predicate.EntityMention {
	return predicate.EntityMention(sql.FieldIsNull(FieldSpanEnd))
}

// SpanEndNotNil applies the NotNil predicate on the "span_end" field.
func SpanEndNotNil() predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNotNull(FieldSpanEnd))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EntityMention) predicate.EntityMention {
	return predicate.EntityMention(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EntityMention) predicate.EntityMention {
	return predicate.EntityMention(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EntityMention) predicate.EntityMention {
	return predicate.EntityMention(sql.NotPredicates(p))
}
