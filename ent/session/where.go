// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kestrel-ai/kestrel/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldID, id))
}

// WorkingDir applies equality check predicate on the "working_dir" field. It's identical to WorkingDirEQ.
func WorkingDir(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldWorkingDir, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldEndTime, v))
}

// LastActivity applies equality check predicate on the "last_activity" field. It's identical to LastActivityEQ.
func LastActivity(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldLastActivity, v))
}

// ContinuedFrom applies equality check predicate on the "continued_from" field. It's identical to ContinuedFromEQ.
func ContinuedFrom(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldContinuedFrom, v))
}

// Medium applies equality check predicate on the "medium" field. It's identical to MediumEQ.
func Medium(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldMedium, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUserID, v))
}

// Personality applies equality check predicate on the "personality" field. It's identical to PersonalityEQ.
func Personality(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldPersonality, v))
}

// SandboxPolicy applies equality check predicate on the "sandbox_policy" field. It's identical to SandboxPolicyEQ.
func SandboxPolicy(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSandboxPolicy, v))
}

// MissionID applies equality check predicate on the "mission_id" field. It's identical to MissionIDEQ.
func MissionID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldMissionID, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSummary, v))
}

// SummaryUpdatedAt applies equality check predicate on the "summary_updated_at" field. It's identical to SummaryUpdatedAtEQ.
func SummaryUpdatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSummaryUpdatedAt, v))
}

// WorkingDirEQ applies the EQ predicate on the "working_dir" field.
func WorkingDirEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldWorkingDir, v))
}

// WorkingDirNEQ applies the NEQ predicate on the "working_dir" field.
func WorkingDirNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldWorkingDir, v))
}

// WorkingDirIn applies the In predicate on the "working_dir" field.
func WorkingDirIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldWorkingDir, vs...))
}

// WorkingDirNotIn applies the NotIn predicate on the "working_dir" field.
func WorkingDirNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldWorkingDir, vs...))
}

// WorkingDirGT applies the GT predicate on the "working_dir" field.
func WorkingDirGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldWorkingDir, v))
}

// WorkingDirGTE applies the GTE predicate on the "working_dir" field.
func WorkingDirGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldWorkingDir, v))
}

// WorkingDirLT applies the LT predicate on the "working_dir" field.
func WorkingDirLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldWorkingDir, v))
}

// WorkingDirLTE applies the LTE predicate on the "working_dir" field.
func WorkingDirLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldWorkingDir, v))
}

// WorkingDirContains applies the Contains predicate on the "working_dir" field.
func WorkingDirContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldWorkingDir, v))
}

// WorkingDirHasPrefix applies the HasPrefix predicate on the "working_dir" field.
func WorkingDirHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldWorkingDir, v))
}

// WorkingDirHasSuffix applies the HasSuffix predicate on the "working_dir" field.
func WorkingDirHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldWorkingDir, v))
}

// WorkingDirIsNil applies the IsNil predicate on the "working_dir" field.
func WorkingDirIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldWorkingDir))
}

// WorkingDirNotNil applies the NotNil predicate on the "working_dir" field.
func WorkingDirNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldWorkingDir))
}

// WorkingDirEqualFold applies the EqualFold predicate on the "working_dir" field.
func WorkingDirEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldWorkingDir, v))
}

// WorkingDirContainsFold applies the ContainsFold predicate on the "working_dir" field.
func WorkingDirContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldWorkingDir, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldEndTime, v))
}

// EndTimeIsNil applies the IsNil predicate on the "end_time" field.
func EndTimeIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldEndTime))
}

// EndTimeNotNil applies the NotNil predicate on the "end_time" field.
func EndTimeNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldEndTime))
}

// LastActivityEQ applies the EQ predicate on the "last_activity" field.
func LastActivityEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldLastActivity, v))
}

// LastActivityNEQ applies the NEQ predicate on the "last_activity" field.
func LastActivityNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldLastActivity, v))
}

// LastActivityIn applies the In predicate on the "last_activity" field.
func LastActivityIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldLastActivity, vs...))
}

// LastActivityNotIn applies the NotIn predicate on the "last_activity" field.
func LastActivityNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldLastActivity, vs...))
}

// LastActivityGT applies the GT predicate on the "last_activity" field.
func LastActivityGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldLastActivity, v))
}

// LastActivityGTE applies the GTE predicate on the "last_activity" field.
func LastActivityGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldLastActivity, v))
}

// LastActivityLT applies the LT predicate on the "last_activity" field.
func LastActivityLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldLastActivity, v))
}

// LastActivityLTE applies the LTE predicate on the "last_activity" field.
func LastActivityLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldLastActivity, v))
}

// ContinuedFromEQ applies the EQ predicate on the "continued_from" field.
func ContinuedFromEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldContinuedFrom, v))
}

// ContinuedFromNEQ applies the NEQ predicate on the "continued_from" field.
func ContinuedFromNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldContinuedFrom, v))
}

// ContinuedFromIn applies the In predicate on the "continued_from" field.
func ContinuedFromIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldContinuedFrom, vs...))
}

// ContinuedFromNotIn applies the NotIn predicate on the "continued_from" field.
func ContinuedFromNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldContinuedFrom, vs...))
}

// ContinuedFromGT applies the GT predicate on the "continued_from" field.
func ContinuedFromGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldContinuedFrom, v))
}

// ContinuedFromGTE applies the GTE predicate on the "continued_from" field.
func ContinuedFromGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldContinuedFrom, v))
}

// ContinuedFromLT applies the LT predicate on the "continued_from" field.
func ContinuedFromLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldContinuedFrom, v))
}

// ContinuedFromLTE applies the LTE predicate on the "continued_from" field.
func ContinuedFromLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldContinuedFrom, v))
}

// ContinuedFromContains applies the Contains predicate on the "continued_from" field.
func ContinuedFromContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldContinuedFrom, v))
}

// ContinuedFromHasPrefix applies the HasPrefix predicate on the "continued_from" field.
func ContinuedFromHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldContinuedFrom, v))
}

// ContinuedFromHasSuffix applies the HasSuffix predicate on the "continued_from" field.
func ContinuedFromHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldContinuedFrom, v))
}

// ContinuedFromIsNil applies the IsNil predicate on the "continued_from" field.
func ContinuedFromIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldContinuedFrom))
}

// ContinuedFromNotNil applies the NotNil predicate on the "continued_from" field.
func ContinuedFromNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldContinuedFrom))
}

// ContinuedFromEqualFold applies the EqualFold predicate on the "continued_from" field.
func ContinuedFromEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldContinuedFrom, v))
}

// ContinuedFromContainsFold applies the ContainsFold predicate on the "continued_from" field.
func ContinuedFromContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldContinuedFrom, v))
}

// MediumEQ applies the EQ predicate on the "medium" field.
func MediumEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldMedium, v))
}

// MediumNEQ applies the NEQ predicate on the "medium" field.
func MediumNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldMedium, v))
}

// MediumIn applies the In predicate on the "medium" field.
func MediumIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldMedium, vs...))
}

// MediumNotIn applies the NotIn predicate on the "medium" field.
func MediumNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldMedium, vs...))
}

// MediumGT applies the GT predicate on the "medium" field.
func MediumGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldMedium, v))
}

// MediumGTE applies the GTE predicate on the "medium" field.
func MediumGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldMedium, v))
}

// MediumLT applies the LT predicate on the "medium" field.
func MediumLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldMedium, v))
}

// MediumLTE applies the LTE predicate on the "medium" field.
func MediumLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldMedium, v))
}

// MediumContains applies the Contains predicate on the "medium" field.
func MediumContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldMedium, v))
}

// MediumHasPrefix applies the HasPrefix predicate on the "medium" field.
func MediumHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldMedium, v))
}

// MediumHasSuffix applies the HasSuffix predicate on the "medium" field.
func MediumHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldMedium, v))
}

// MediumIsNil applies the IsNil predicate on the "medium" field.
func MediumIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldMedium))
}

// MediumNotNil applies the NotNil predicate on the "medium" field.
func MediumNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldMedium))
}

// MediumEqualFold applies the EqualFold predicate on the "medium" field.
func MediumEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldMedium, v))
}

// MediumContainsFold applies the ContainsFold predicate on the "medium" field.
func MediumContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldMedium, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldUserID, v))
}

// PersonalityEQ applies the EQ predicate on the "personality" field.
func PersonalityEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldPersonality, v))
}

// PersonalityNEQ applies the NEQ predicate on the "personality" field.
func PersonalityNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldPersonality, v))
}

// PersonalityIn applies the In predicate on the "personality" field.
func PersonalityIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldPersonality, vs...))
}

// PersonalityNotIn applies the NotIn predicate on the "personality" field.
func PersonalityNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldPersonality, vs...))
}

// PersonalityGT applies the GT predicate on the "personality" field.
func PersonalityGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldPersonality, v))
}

// PersonalityGTE applies the GTE predicate on the "personality" field.
func PersonalityGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldPersonality, v))
}

// PersonalityLT applies the LT predicate on the "personality" field.
func PersonalityLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldPersonality, v))
}

// PersonalityLTE applies the LTE predicate on the "personality" field.
func PersonalityLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldPersonality, v))
}

// PersonalityContains applies the Contains predicate on the "personality" field.
func PersonalityContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldPersonality, v))
}

// PersonalityHasPrefix applies the HasPrefix predicate on the "personality" field.
func PersonalityHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldPersonality, v))
}

// PersonalityHasSuffix applies the HasSuffix predicate on the "personality" field.
func PersonalityHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldPersonality, v))
}

// PersonalityIsNil applies the IsNil predicate on the "personality" field.
func PersonalityIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldPersonality))
}

// PersonalityNotNil applies the NotNil predicate on the "personality" field.
func PersonalityNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldPersonality))
}

// PersonalityEqualFold applies the EqualFold predicate on the "personality" field.
func PersonalityEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldPersonality, v))
}

// PersonalityContainsFold applies the ContainsFold predicate on the "personality" field.
func PersonalityContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldPersonality, v))
}

// SandboxPolicyEQ applies the EQ predicate on the "sandbox_policy" field.
func SandboxPolicyEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSandboxPolicy, v))
}

// SandboxPolicyNEQ applies the NEQ predicate on the "sandbox_policy" field.
func SandboxPolicyNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldSandboxPolicy, v))
}

// SandboxPolicyIn applies the In predicate on the "sandbox_policy" field.
func SandboxPolicyIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldSandboxPolicy, vs...))
}

// SandboxPolicyNotIn applies the NotIn predicate on the "sandbox_policy" field.
func SandboxPolicyNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldSandboxPolicy, vs...))
}

// SandboxPolicyGT applies the GT predicate on the "sandbox_policy" field.
func SandboxPolicyGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldSandboxPolicy, v))
}

// SandboxPolicyGTE applies the GTE predicate on the "sandbox_policy" field.
func SandboxPolicyGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldSandboxPolicy, v))
}

// SandboxPolicyLT applies the LT predicate on the "sandbox_policy" field.
func SandboxPolicyLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldSandboxPolicy, v))
}

// SandboxPolicyLTE applies the LTE predicate on the "sandbox_policy" field.
func SandboxPolicyLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldSandboxPolicy, v))
}

// SandboxPolicyContains applies the Contains predicate on the "sandbox_policy" field.
func SandboxPolicyContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldSandboxPolicy, v))
}

// SandboxPolicyHasPrefix applies the HasPrefix predicate on the "sandbox_policy" field.
func SandboxPolicyHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldSandboxPolicy, v))
}

// SandboxPolicyHasSuffix applies the HasSuffix predicate on the "sandbox_policy" field.
func SandboxPolicyHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldSandboxPolicy, v))
}

// SandboxPolicyIsNil applies the IsNil predicate on the "sandbox_policy" field.
func SandboxPolicyIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldSandboxPolicy))
}

// SandboxPolicyNotNil applies the NotNil predicate on the "sandbox_policy" field.
func SandboxPolicyNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldSandboxPolicy))
}

// SandboxPolicyEqualFold applies the EqualFold predicate on the "sandbox_policy" field.
func SandboxPolicyEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldSandboxPolicy, v))
}

// SandboxPolicyContainsFold applies the ContainsFold predicate on the "sandbox_policy" field.
func SandboxPolicyContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldSandboxPolicy, v))
}

// MissionIDEQ applies the EQ predicate on the "mission_id" field.
func MissionIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldMissionID, v))
}

// MissionIDNEQ applies the NEQ predicate on the "mission_id" field.
func MissionIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldMissionID, v))
}

// MissionIDIn applies the In predicate on the "mission_id" field.
func MissionIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldMissionID, vs...))
}

// MissionIDNotIn applies the NotIn predicate on the "mission_id" field.
func MissionIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldMissionID, vs...))
}

// MissionIDGT applies the GT predicate on the "mission_id" field.
func MissionIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldMissionID, v))
}

// MissionIDGTE applies the GTE predicate on the "mission_id" field.
func MissionIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldMissionID, v))
}

// MissionIDLT applies the LT predicate on the "mission_id" field.
func MissionIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldMissionID, v))
}

// MissionIDLTE applies the LTE predicate on the "mission_id" field.
func MissionIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldMissionID, v))
}

// MissionIDContains applies the Contains predicate on the "mission_id" field.
func MissionIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldMissionID, v))
}

// MissionIDHasPrefix applies the HasPrefix predicate on the "mission_id" field.
func MissionIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldMissionID, v))
}

// MissionIDHasSuffix applies the HasSuffix predicate on the "mission_id" field.
func MissionIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldMissionID, v))
}

// MissionIDIsNil applies the IsNil predicate on the "mission_id" field.
func MissionIDIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldMissionID))
}

// MissionIDNotNil applies the NotNil predicate on the "mission_id" field.
func MissionIDNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldMissionID))
}

// MissionIDEqualFold applies the EqualFold predicate on the "mission_id" field.
func MissionIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldMissionID, v))
}

// MissionIDContainsFold applies the ContainsFold predicate on the "mission_id" field.
func MissionIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldMissionID, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldSummary, v))
}

// SummaryUpdatedAtEQ applies the EQ predicate on the "summary_updated_at" field.
func SummaryUpdatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSummaryUpdatedAt, v))
}

// SummaryUpdatedAtNEQ applies the NEQ predicate on the "summary_updated_at" field.
func SummaryUpdatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldSummaryUpdatedAt, v))
}

// SummaryUpdatedAtIn applies the In predicate on the "summary_updated_at" field.
func SummaryUpdatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldSummaryUpdatedAt, vs...))
}

// SummaryUpdatedAtNotIn applies the NotIn predicate on the "summary_updated_at" field.
func SummaryUpdatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldSummaryUpdatedAt, vs...))
}

// SummaryUpdatedAtGT applies the GT predicate on the "summary_updated_at" field.
func SummaryUpdatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldSummaryUpdatedAt, v))
}

// SummaryUpdatedAtGTE applies the GTE predicate on the "summary_updated_at" field.
func SummaryUpdatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldSummaryUpdatedAt, v))
}

// SummaryUpdatedAtLT applies the LT predicate on the "summary_updated_at" field.
func SummaryUpdatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldSummaryUpdatedAt, v))
}

// SummaryUpdatedAtLTE applies the LTE predicate on the "summary_updated_at" field.
func SummaryUpdatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldSummaryUpdatedAt, v))
}

// SummaryUpdatedAtIsNil applies the IsNil predicate on the "summary_updated_at" field.
func SummaryUpdatedAtIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldSummaryUpdatedAt))
}

// SummaryUpdatedAtNotNil applies the NotNil predicate on the "summary_updated_at" field.
func SummaryUpdatedAtNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldSummaryUpdatedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Session) predicate.Session {
	return predicate.Session(sql.NotPredicates(p))
}
