// Code generated by ent, DO NOT EDIT.

package mission

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kestrel-ai/kestrel/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Mission {
	return predicate.Mission(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Mission {
	return predicate.Mission(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldName, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldPrompt, v))
}

// Schedule applies equality check predicate on the "schedule" field. It's identical to ScheduleEQ.
func Schedule(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldSchedule, v))
}

// SandboxPolicy applies equality check predicate on the "sandbox_policy" field. It's identical to SandboxPolicyEQ.
func SandboxPolicy(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldSandboxPolicy, v))
}

// Personality applies equality check predicate on the "personality" field. It's identical to PersonalityEQ.
func Personality(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldPersonality, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldModel, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldUserID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContainsFold(FieldName, v))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContainsFold(FieldPrompt, v))
}

// ScheduleEQ applies the EQ predicate on the "schedule" field.
func ScheduleEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldSchedule, v))
}

// ScheduleNEQ applies the NEQ predicate on the "schedule" field.
func ScheduleNEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldSchedule, v))
}

// ScheduleIn applies the In predicate on the "schedule" field.
func ScheduleIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldSchedule, vs...))
}

// ScheduleNotIn applies the NotIn predicate on the "schedule" field.
func ScheduleNotIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldSchedule, vs...))
}

// ScheduleGT applies the GT predicate on the "schedule" field.
func ScheduleGT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldSchedule, v))
}

// ScheduleGTE applies the GTE predicate on the "schedule" field.
func ScheduleGTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldSchedule, v))
}

// ScheduleLT applies the LT predicate on the "schedule" field.
func ScheduleLT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldSchedule, v))
}

// ScheduleLTE applies the LTE predicate on the "schedule" field.
func ScheduleLTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldSchedule, v))
}

// ScheduleContains applies the Contains predicate on the "schedule" field.
func ScheduleContains(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContains(FieldSchedule, v))
}

// ScheduleHasPrefix applies the HasPrefix predicate on the "schedule" field.
func ScheduleHasPrefix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasPrefix(FieldSchedule, v))
}

// ScheduleHasSuffix applies the HasSuffix predicate on the "schedule" field.
func ScheduleHasSuffix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasSuffix(FieldSchedule, v))
}

// ScheduleIsNil applies the IsNil predicate on the "schedule" field.
func ScheduleIsNil() predicate.Mission {
	return predicate.Mission(sql.FieldIsNull(FieldSchedule))
}

// ScheduleNotNil applies the NotNil predicate on the "schedule" field.
func ScheduleNotNil() predicate.Mission {
	return predicate.Mission(sql.FieldNotNull(FieldSchedule))
}

// ScheduleEqualFold applies the EqualFold predicate on the "schedule" field.
func ScheduleEqualFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEqualFold(FieldSchedule, v))
}

// ScheduleContainsFold applies the ContainsFold predicate on the "schedule" field.
func ScheduleContainsFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContainsFold(FieldSchedule, v))
}

// SandboxPolicyEQ applies the EQ predicate on the "sandbox_policy" field.
func SandboxPolicyEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldSandboxPolicy, v))
}

// SandboxPolicyNEQ applies the NEQ predicate on the "sandbox_policy" field.
func SandboxPolicyNEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldSandboxPolicy, v))
}

// SandboxPolicyIn applies the In predicate on the "sandbox_policy" field.
func SandboxPolicyIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldSandboxPolicy, vs...))
}

// SandboxPolicyNotIn applies the NotIn predicate on the "sandbox_policy" field.
func SandboxPolicyNotIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldSandboxPolicy, vs...))
}

// SandboxPolicyGT applies the GT predicate on the "sandbox_policy" field.
func SandboxPolicyGT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldSandboxPolicy, v))
}

// SandboxPolicyGTE applies the GTE predicate on the "sandbox_policy" field.
func SandboxPolicyGTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldSandboxPolicy, v))
}

// SandboxPolicyLT applies the LT predicate on the "sandbox_policy" field.
func SandboxPolicyLT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldSandboxPolicy, v))
}

// SandboxPolicyLTE applies the LTE predicate on the "sandbox_policy" field.
func SandboxPolicyLTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldSandboxPolicy, v))
}

// SandboxPolicyContains applies the Contains predicate on the "sandbox_policy" field.
func SandboxPolicyContains(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContains(FieldSandboxPolicy, v))
}

// SandboxPolicyHasPrefix applies the HasPrefix predicate on the "sandbox_policy" field.
func SandboxPolicyHasPrefix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasPrefix(FieldSandboxPolicy, v))
}

// SandboxPolicyHasSuffix applies the HasSuffix predicate on the "sandbox_policy" field.
func SandboxPolicyHasSuffix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasSuffix(FieldSandboxPolicy, v))
}

// SandboxPolicyIsNil applies the IsNil predicate on the "sandbox_policy" field.
func SandboxPolicyIsNil() predicate.Mission {
	return predicate.Mission(sql.FieldIsNull(FieldSandboxPolicy))
}

// SandboxPolicyNotNil applies the NotNil predicate on the "sandbox_policy" field.
func SandboxPolicyNotNil() predicate.Mission {
	return predicate.Mission(sql.FieldNotNull(FieldSandboxPolicy))
}

// SandboxPolicyEqualFold applies the EqualFold predicate on the "sandbox_policy" field.
func SandboxPolicyEqualFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEqualFold(FieldSandboxPolicy, v))
}

// SandboxPolicyContainsFold applies the ContainsFold predicate on the "sandbox_policy" field.
func SandboxPolicyContainsFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContainsFold(FieldSandboxPolicy, v))
}

// PersonalityEQ applies the EQ predicate on the "personality" field.
func PersonalityEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldPersonality, v))
}

// PersonalityNEQ applies the NEQ predicate on the "personality" field.
func PersonalityNEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldPersonality, v))
}

// PersonalityIn applies the In predicate on the "personality" field.
func PersonalityIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldPersonality, vs...))
}

// PersonalityNotIn applies the NotIn predicate on the "personality" field.
func PersonalityNotIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldPersonality, vs...))
}

// PersonalityGT applies the GT predicate on the "personality" field.
func PersonalityGT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldPersonality, v))
}

// PersonalityGTE applies the GTE predicate on the "personality" field.
func PersonalityGTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldPersonality, v))
}

// PersonalityLT applies the LT predicate on the "personality" field.
func PersonalityLT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldPersonality, v))
}

// PersonalityLTE applies the LTE predicate on the "personality" field.
func PersonalityLTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldPersonality, v))
}

// PersonalityContains applies the Contains predicate on the "personality" field.
func PersonalityContains(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContains(FieldPersonality, v))
}

// PersonalityHasPrefix applies the HasPrefix predicate on the "personality" field.
func PersonalityHasPrefix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasPrefix(FieldPersonality, v))
}

// PersonalityHasSuffix applies the HasSuffix predicate on the "personality" field.
func PersonalityHasSuffix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasSuffix(FieldPersonality, v))
}

// PersonalityIsNil applies the IsNil predicate on the "personality" field.
func PersonalityIsNil() predicate.Mission {
	return predicate.Mission(sql.FieldIsNull(FieldPersonality))
}

// PersonalityNotNil applies the NotNil predicate on the "personality" field.
func PersonalityNotNil() predicate.Mission {
	return predicate.Mission(sql.FieldNotNull(FieldPersonality))
}

// PersonalityEqualFold applies the EqualFold predicate on the "personality" field.
func PersonalityEqualFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEqualFold(FieldPersonality, v))
}

// PersonalityContainsFold applies the ContainsFold predicate on the "personality" field.
func PersonalityContainsFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContainsFold(FieldPersonality, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasSuffix(FieldModel, v))
}

// ModelIsNil applies the IsNil predicate on the "model" field.
func ModelIsNil() predicate.Mission {
	return predicate.Mission(sql.FieldIsNull(FieldModel))
}

// ModelNotNil applies the NotNil predicate on the "model" field.
func ModelNotNil() predicate.Mission {
	return predicate.Mission(sql.FieldNotNull(FieldModel))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContainsFold(FieldModel, v))
}

// ToolsIsNil applies the IsNil predicate on the "tools" field.
func ToolsIsNil() predicate.Mission {
	return predicate.Mission(sql.FieldIsNull(FieldTools))
}

// ToolsNotNil applies the NotNil predicate on the "tools" field.
func ToolsNotNil() predicate.Mission {
	return predicate.Mission(sql.FieldNotNull(FieldTools))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldStatus, vs...))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.Mission {
	return predicate.Mission(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.Mission {
	return predicate.Mission(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContainsFold(FieldUserID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Mission) predicate.Mission {
	return predicate.Mission(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Mission) predicate.Mission {
	return predicate.Mission(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Mission) predicate.Mission {
	return predicate.Mission(sql.NotPredicates(p))
}
