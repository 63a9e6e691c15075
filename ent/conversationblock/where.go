// Code generated by ent, DO NOT EDIT.

package conversationblock

import (
	"entgo.io/ent/dialect/sql"
	"github.com/kestrel-ai/kestrel/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldContainsFold(FieldID, id))
}

// ConversationID applies equality check predicate on the "conversation_id" field. It's identical to ConversationIDEQ.
func ConversationID(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldEQ(FieldConversationID, v))
}

// Ordinal applies equality check predicate on the "ordinal" field. It's identical to OrdinalEQ.
func Ordinal(v int) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldEQ(FieldOrdinal, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldEQ(FieldText, v))
}

// ToolName applies equality check predicate on the "tool_name" field. It's identical to ToolNameEQ.
func ToolName(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldEQ(FieldToolName, v))
}

// ToolUseID applies equality check predicate on the "tool_use_id" field. It's identical to ToolUseIDEQ.
func ToolUseID(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldEQ(FieldToolUseID, v))
}

// ConversationIDEQ applies the EQ predicate on the "conversation_id" field.
func ConversationIDEQ(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldEQ(FieldConversationID, v))
}

// ConversationIDNEQ applies the NEQ predicate on the "conversation_id" field.
func ConversationIDNEQ(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldNEQ(FieldConversationID, v))
}

// ConversationIDIn applies the In predicate on the "conversation_id" field.
func ConversationIDIn(vs ...string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldIn(FieldConversationID, vs...))
}

// ConversationIDNotIn applies the NotIn predicate on the "conversation_id" field.
func ConversationIDNotIn(vs ...string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldNotIn(FieldConversationID, vs...))
}

// ConversationIDGT applies the GT predicate on the "conversation_id" field.
func ConversationIDGT(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldGT(FieldConversationID, v))
}

// ConversationIDGTE applies the GTE predicate on the "conversation_id" field.
func ConversationIDGTE(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldGTE(FieldConversationID, v))
}

// ConversationIDLT applies the LT predicate on the "conversation_id" field.
func ConversationIDLT(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldLT(FieldConversationID, v))
}

// ConversationIDLTE applies the LTE predicate on the "conversation_id" field.
func ConversationIDLTE(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldLTE(FieldConversationID, v))
}

// ConversationIDContains applies the Contains predicate on the "conversation_id" field.
func ConversationIDContains(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldContains(FieldConversationID, v))
}

// ConversationIDHasPrefix applies the HasPrefix predicate on the "conversation_id" field.
func ConversationIDHasPrefix(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldHasPrefix(FieldConversationID, v))
}

// ConversationIDHasSuffix applies the HasSuffix predicate on the "conversation_id" field.
func ConversationIDHasSuffix(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldHasSuffix(FieldConversationID, v))
}

// ConversationIDEqualFold applies the EqualFold predicate on the "conversation_id" field.
func ConversationIDEqualFold(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldEqualFold(FieldConversationID, v))
}

// ConversationIDContainsFold applies the ContainsFold predicate on the "conversation_id" field.
func ConversationIDContainsFold(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldContainsFold(FieldConversationID, v))
}

// OrdinalEQ applies the EQ predicate on the "ordinal" field.
func OrdinalEQ(v int) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldEQ(FieldOrdinal, v))
}

// OrdinalNEQ applies the NEQ predicate on the "ordinal" field.
func OrdinalNEQ(v int) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldNEQ(FieldOrdinal, v))
}

// OrdinalIn applies the In predicate on the "ordinal" field.
func OrdinalIn(vs ...int) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldIn(FieldOrdinal, vs...))
}

// OrdinalNotIn applies the NotIn predicate on the "ordinal" field.
func OrdinalNotIn(vs ...int) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldNotIn(FieldOrdinal, vs...))
}

// OrdinalGT applies the GT predicate on the "ordinal" field.
func OrdinalGT(v int) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldGT(FieldOrdinal, v))
}

// OrdinalGTE applies the GTE predicate on the "ordinal" field.
func OrdinalGTE(v int) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldGTE(FieldOrdinal, v))
}

// OrdinalLT applies the LT predicate on the "ordinal" field.
func OrdinalLT(v int) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldLT(FieldOrdinal, v))
}

// OrdinalLTE applies the LTE predicate on the "ordinal" field.
func OrdinalLTE(v int) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldLTE(FieldOrdinal, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldNotIn(FieldKind, vs...))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldHasSuffix(FieldText, v))
}

// TextIsNil applies the IsNil predicate on the "text" field.
func TextIsNil() predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldIsNull(FieldText))
}

// TextNotNil applies the NotNil predicate on the "text" field.
func TextNotNil() predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldNotNull(FieldText))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldContainsFold(FieldText, v))
}

// ToolNameEQ applies the EQ predicate on the "tool_name" field.
func ToolNameEQ(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldEQ(FieldToolName, v))
}

// ToolNameNEQ applies the NEQ predicate on the "tool_name" field.
func ToolNameNEQ(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldNEQ(FieldToolName, v))
}

// ToolNameIn applies the In predicate on the "tool_name" field.
func ToolNameIn(vs ...string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldIn(FieldToolName, vs...))
}

// ToolNameNotIn applies the NotIn predicate on the "tool_name" field.
func ToolNameNotIn(vs ...string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldNotIn(FieldToolName, vs...))
}

// ToolNameGT applies the GT predicate on the "tool_name" field.
func ToolNameGT(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldGT(FieldToolName, v))
}

// ToolNameGTE applies the GTE predicate on the "tool_name" field.
func ToolNameGTE(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldGTE(FieldToolName, v))
}

// ToolNameLT applies the LT predicate on the "tool_name" field.
func ToolNameLT(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldLT(FieldToolName, v))
}

// ToolNameLTE applies the LTE predicate on the "tool_name" field.
func ToolNameLTE(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldLTE(FieldToolName, v))
}

// ToolNameContains applies the Contains predicate on the "tool_name" field.
func ToolNameContains(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldContains(FieldToolName, v))
}

// ToolNameHasPrefix applies the HasPrefix predicate on the "tool_name" field.
func ToolNameHasPrefix(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldHasPrefix(FieldToolName, v))
}

// ToolNameHasSuffix applies the HasSuffix predicate on the "tool_name" field.
func ToolNameHasSuffix(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldHasSuffix(FieldToolName, v))
}

// ToolNameIsNil applies the IsNil predicate on the "tool_name" field.
func ToolNameIsNil() predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldIsNull(FieldToolName))
}

// ToolNameNotNil applies the NotNil predicate on the "tool_name" field.
func ToolNameNotNil() predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldNotNull(FieldToolName))
}

// ToolNameEqualFold applies the EqualFold predicate on the "tool_name" field.
func ToolNameEqualFold(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldEqualFold(FieldToolName, v))
}

// ToolNameContainsFold applies the ContainsFold predicate on the "tool_name" field.
func ToolNameContainsFold(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldContainsFold(FieldToolName, v))
}

// ToolUseIDEQ applies the EQ predicate on the "tool_use_id" field.
func ToolUseIDEQ(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldEQ(FieldToolUseID, v))
}

// ToolUseIDNEQ applies the NEQ predicate on the "tool_use_id" field.
func ToolUseIDNEQ(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldNEQ(FieldToolUseID, v))
}

// ToolUseIDIn applies the In predicate on the "tool_use_id" field.
func ToolUseIDIn(vs ...string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldIn(FieldToolUseID, vs...))
}

// ToolUseIDNotIn applies the NotIn predicate on the "tool_use_id" field.
func ToolUseIDNotIn(vs ...string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldNotIn(FieldToolUseID, vs...))
}

// ToolUseIDGT applies the GT predicate on the "tool_use_id" field.
func ToolUseIDGT(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldGT(FieldToolUseID, v))
}

// ToolUseIDGTE applies the GTE predicate on the "tool_use_id" field.
func ToolUseIDGTE(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldGTE(FieldToolUseID, v))
}

// ToolUseIDLT applies the LT predicate on the "tool_use_id" field.
func ToolUseIDLT(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldLT(FieldToolUseID, v))
}

// ToolUseIDLTE applies the LTE predicate on the "tool_use_id" field.
func ToolUseIDLTE(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldLTE(FieldToolUseID, v))
}

// ToolUseIDContains applies the Contains predicate on the "tool_use_id" field.
func ToolUseIDContains(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldContains(FieldToolUseID, v))
}

// ToolUseIDHasPrefix applies the HasPrefix predicate on the "tool_use_id" field.
func ToolUseIDHasPrefix(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldHasPrefix(FieldToolUseID, v))
}

// ToolUseIDHasSuffix applies the HasSuffix predicate on the "tool_use_id" field.
func ToolUseIDHasSuffix(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldHasSuffix(FieldToolUseID, v))
}

// ToolUseIDIsNil applies the IsNil predicate on the "tool_use_id" field.
func ToolUseIDIsNil() predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldIsNull(FieldToolUseID))
}

// ToolUseIDNotNil applies the NotNil predicate on the "tool_use_id" field.
func ToolUseIDNotNil() predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldNotNull(FieldToolUseID))
}

// ToolUseIDEqualFold applies the EqualFold predicate on the "tool_use_id" field.
func ToolUseIDEqualFold(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldEqualFold(FieldToolUseID, v))
}

// ToolUseIDContainsFold applies the ContainsFold predicate on the "tool_use_id" field.
func ToolUseIDContainsFold(v string) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldContainsFold(FieldToolUseID, v))
}

// ToolInputIsNil applies the IsNil predicate on the "tool_input" field.
func ToolInputIsNil() predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldIsNull(FieldToolInput))
}

// ToolInputNotNil applies the NotNil predicate on the "tool_input" field.
func ToolInputNotNil() predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldNotNull(FieldToolInput))
}

// ToolResultIsNil applies the IsNil predicate on the "tool_result" field.
func ToolResultIsNil() predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldIsNull(FieldToolResult))
}

// ToolResultNotNil applies the NotNil predicate on the "tool_result" field.
func ToolResultNotNil() predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldNotNull(FieldToolResult))
}

// EmbeddingIsNil applies the IsNil predicate on the "embedding" field.
func EmbeddingIsNil() predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldIsNull(FieldEmbedding))
}

// EmbeddingNotNil applies the NotNil predicate on the "embedding" field.
func EmbeddingNotNil() predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.FieldNotNull(FieldEmbedding))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConversationBlock) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConversationBlock) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConversationBlock) predicate.ConversationBlock {
	return predicate.ConversationBlock(sql.NotPredicates(p))
}
