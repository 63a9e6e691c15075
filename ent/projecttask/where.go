// Code generated by ent, DO NOT EDIT.

package projecttask

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kestrel-ai/kestrel/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldContainsFold(FieldID, id))
}

// WorkingDir applies equality check predicate on the "working_dir" field. It's identical to WorkingDirEQ.
func WorkingDir(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldWorkingDir, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldDescription, v))
}

// AcceptanceCriteria applies equality check predicate on the "acceptance_criteria" field. It's identical to AcceptanceCriteriaEQ.
func AcceptanceCriteria(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldAcceptanceCriteria, v))
}

// TaskType applies equality check predicate on the "task_type" field. It's identical to TaskTypeEQ.
func TaskType(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldTaskType, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldPriority, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldUserID, v))
}

// ClaimSessionID applies equality check predicate on the "claim_session_id" field. It's identical to ClaimSessionIDEQ.
func ClaimSessionID(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldClaimSessionID, v))
}

// ClaimAgentID applies equality check predicate on the "claim_agent_id" field. It's identical to ClaimAgentIDEQ.
func ClaimAgentID(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldClaimAgentID, v))
}

// ClaimedAt applies equality check predicate on the "claimed_at" field. It's identical to ClaimedAtEQ.
func ClaimedAt(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldClaimedAt, v))
}

// AttemptCount applies equality check predicate on the "attempt_count" field. It's identical to AttemptCountEQ.
func AttemptCount(v int) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldAttemptCount, v))
}

// Outcome applies equality check predicate on the "outcome" field. It's identical to OutcomeEQ.
func Outcome(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldOutcome, v))
}

// CompletionNotes applies equality check predicate on the "completion_notes" field. It's identical to CompletionNotesEQ.
func CompletionNotes(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldCompletionNotes, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldLastError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldUpdatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldCompletedAt, v))
}

// LastTriggeredAt applies equality check predicate on the "last_triggered_at" field. It's identical to LastTriggeredAtEQ.
func LastTriggeredAt(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldLastTriggeredAt, v))
}

// WorkingDirEQ applies the EQ predicate on the "working_dir" field.
func WorkingDirEQ(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldWorkingDir, v))
}

// WorkingDirNEQ applies the NEQ predicate on the "working_dir" field.
func WorkingDirNEQ(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNEQ(FieldWorkingDir, v))
}

// WorkingDirIn applies the In predicate on the "working_dir" field.
func WorkingDirIn(vs ...string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIn(FieldWorkingDir, vs...))
}

// WorkingDirNotIn applies the NotIn predicate on the "working_dir" field.
func WorkingDirNotIn(vs ...string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotIn(FieldWorkingDir, vs...))
}

// WorkingDirGT applies the GT predicate on the "working_dir" field.
func WorkingDirGT(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGT(FieldWorkingDir, v))
}

// WorkingDirGTE applies the GTE predicate on the "working_dir" field.
func WorkingDirGTE(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGTE(FieldWorkingDir, v))
}

// WorkingDirLT applies the LT predicate on the "working_dir" field.
func WorkingDirLT(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLT(FieldWorkingDir, v))
}

// WorkingDirLTE applies the LTE predicate on the "working_dir" field.
func WorkingDirLTE(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLTE(FieldWorkingDir, v))
}

// WorkingDirContains applies the Contains predicate on the "working_dir" field.
func WorkingDirContains(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldContains(FieldWorkingDir, v))
}

// WorkingDirHasPrefix applies the HasPrefix predicate on the "working_dir" field.
func WorkingDirHasPrefix(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldHasPrefix(FieldWorkingDir, v))
}

// WorkingDirHasSuffix applies the HasSuffix predicate on the "working_dir" field.
func WorkingDirHasSuffix(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldHasSuffix(FieldWorkingDir, v))
}

// WorkingDirIsNil applies the IsNil predicate on the "working_dir" field.
func WorkingDirIsNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIsNull(FieldWorkingDir))
}

// WorkingDirNotNil applies the NotNil predicate on the "working_dir" field.
func WorkingDirNotNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotNull(FieldWorkingDir))
}

// WorkingDirEqualFold applies the EqualFold predicate on the "working_dir" field.
func WorkingDirEqualFold(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEqualFold(FieldWorkingDir, v))
}

// WorkingDirContainsFold applies the ContainsFold predicate on the "working_dir" field.
func WorkingDirContainsFold(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldContainsFold(FieldWorkingDir, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldContainsFold(FieldDescription, v))
}

// AcceptanceCriteriaEQ applies the EQ predicate on the "acceptance_criteria" field.
func AcceptanceCriteriaEQ(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldAcceptanceCriteria, v))
}

// AcceptanceCriteriaNEQ applies the NEQ predicate on the "acceptance_criteria" field.
func AcceptanceCriteriaNEQ(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNEQ(FieldAcceptanceCriteria, v))
}

// AcceptanceCriteriaIn applies the In predicate on the "acceptance_criteria" field.
func AcceptanceCriteriaIn(vs ...string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIn(FieldAcceptanceCriteria, vs...))
}

// AcceptanceCriteriaNotIn applies the NotIn predicate on the "acceptance_criteria" field.
func AcceptanceCriteriaNotIn(vs ...string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotIn(FieldAcceptanceCriteria, vs...))
}

// AcceptanceCriteriaGT applies the GT predicate on the "acceptance_criteria" field.
func AcceptanceCriteriaGT(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGT(FieldAcceptanceCriteria, v))
}

// AcceptanceCriteriaGTE applies the GTE predicate on the "acceptance_criteria" field.
func AcceptanceCriteriaGTE(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGTE(FieldAcceptanceCriteria, v))
}

// AcceptanceCriteriaLT applies the LT predicate on the "acceptance_criteria" field.
func AcceptanceCriteriaLT(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLT(FieldAcceptanceCriteria, v))
}

// AcceptanceCriteriaLTE applies the LTE predicate on the "acceptance_criteria" field.
func AcceptanceCriteriaLTE(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLTE(FieldAcceptanceCriteria, v))
}

// AcceptanceCriteriaContains applies the Contains predicate on the "acceptance_criteria" field.
func AcceptanceCriteriaContains(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldContains(FieldAcceptanceCriteria, v))
}

// AcceptanceCriteriaHasPrefix applies the HasPrefix predicate on the "acceptance_criteria" field.
func AcceptanceCriteriaHasPrefix(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldHasPrefix(FieldAcceptanceCriteria, v))
}

// AcceptanceCriteriaHasSuffix applies the HasSuffix predicate on the "acceptance_criteria" field.
func AcceptanceCriteriaHasSuffix(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldHasSuffix(FieldAcceptanceCriteria, v))
}

// AcceptanceCriteriaIsNil applies the IsNil predicate on the "acceptance_criteria" field.
func AcceptanceCriteriaIsNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIsNull(FieldAcceptanceCriteria))
}

// AcceptanceCriteriaNotNil applies the NotNil predicate on the "acceptance_criteria" field.
func AcceptanceCriteriaNotNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotNull(FieldAcceptanceCriteria))
}

// AcceptanceCriteriaEqualFold applies the EqualFold predicate on the "acceptance_criteria" field.
func AcceptanceCriteriaEqualFold(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEqualFold(FieldAcceptanceCriteria, v))
}

// AcceptanceCriteriaContainsFold applies the ContainsFold predicate on the "acceptance_criteria" field.
func AcceptanceCriteriaContainsFold(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldContainsFold(FieldAcceptanceCriteria, v))
}

// ScopePathsIsNil applies the IsNil predicate on the "scope_paths" field.
func ScopePathsIsNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIsNull(FieldScopePaths))
}

// ScopePathsNotNil applies the NotNil predicate on the "scope_paths" field.
func ScopePathsNotNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotNull(FieldScopePaths))
}

// RequiredToolsIsNil applies the IsNil predicate on the "required_tools" field.
func RequiredToolsIsNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIsNull(FieldRequiredTools))
}

// RequiredToolsNotNil applies the NotNil predicate on the "required_tools" field.
func RequiredToolsNotNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotNull(FieldRequiredTools))
}

// TaskTypeEQ applies the EQ predicate on the "task_type" field.
func TaskTypeEQ(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldTaskType, v))
}

// TaskTypeNEQ applies the NEQ predicate on the "task_type" field.
func TaskTypeNEQ(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNEQ(FieldTaskType, v))
}

// TaskTypeIn applies the In predicate on the "task_type" field.
func TaskTypeIn(vs ...string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIn(FieldTaskType, vs...))
}

// TaskTypeNotIn applies the NotIn predicate on the "task_type" field.
func TaskTypeNotIn(vs ...string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotIn(FieldTaskType, vs...))
}

// TaskTypeGT applies the GT predicate on the "task_type" field.
func TaskTypeGT(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGT(FieldTaskType, v))
}

// TaskTypeGTE applies the GTE predicate on the "task_type" field.
func TaskTypeGTE(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGTE(FieldTaskType, v))
}

// TaskTypeLT applies the LT predicate on the "task_type" field.
func TaskTypeLT(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLT(FieldTaskType, v))
}

// TaskTypeLTE applies the LTE predicate on the "task_type" field.
func TaskTypeLTE(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLTE(FieldTaskType, v))
}

// TaskTypeContains applies the Contains predicate on the "task_type" field.
func TaskTypeContains(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldContains(FieldTaskType, v))
}

// TaskTypeHasPrefix applies the HasPrefix predicate on the "task_type" field.
func TaskTypeHasPrefix(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldHasPrefix(FieldTaskType, v))
}

// TaskTypeHasSuffix applies the HasSuffix predicate on the "task_type" field.
func TaskTypeHasSuffix(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldHasSuffix(FieldTaskType, v))
}

// TaskTypeEqualFold applies the EqualFold predicate on the "task_type" field.
func TaskTypeEqualFold(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEqualFold(FieldTaskType, v))
}

// TaskTypeContainsFold applies the ContainsFold predicate on the "task_type" field.
func TaskTypeContainsFold(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldContainsFold(FieldTaskType, v))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotNull(FieldTags))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLTE(FieldPriority, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotIn(FieldStatus, vs...))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldContainsFold(FieldUserID, v))
}

// ClaimSessionIDEQ applies the EQ predicate on the "claim_session_id" field.
func ClaimSessionIDEQ(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldClaimSessionID, v))
}

// ClaimSessionIDNEQ applies the NEQ predicate on the "claim_session_id" field.
func ClaimSessionIDNEQ(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNEQ(FieldClaimSessionID, v))
}

// ClaimSessionIDIn applies the In predicate on the "claim_session_id" field.
func ClaimSessionIDIn(vs ...string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIn(FieldClaimSessionID, vs...))
}

// ClaimSessionIDNotIn applies the NotIn predicate on the "claim_session_id" field.
func ClaimSessionIDNotIn(vs ...string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotIn(FieldClaimSessionID, vs...))
}

// ClaimSessionIDGT applies the GT predicate on the "claim_session_id" field.
func ClaimSessionIDGT(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGT(FieldClaimSessionID, v))
}

// ClaimSessionIDGTE applies the GTE predicate on the "claim_session_id" field.
func ClaimSessionIDGTE(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGTE(FieldClaimSessionID, v))
}

// ClaimSessionIDLT applies the LT predicate on the "claim_session_id" field.
func ClaimSessionIDLT(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLT(FieldClaimSessionID, v))
}

// ClaimSessionIDLTE applies the LTE predicate on the "claim_session_id" field.
func ClaimSessionIDLTE(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLTE(FieldClaimSessionID, v))
}

// ClaimSessionIDContains applies the Contains predicate on the "claim_session_id" field.
func ClaimSessionIDContains(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldContains(FieldClaimSessionID, v))
}

// ClaimSessionIDHasPrefix applies the HasPrefix predicate on the "claim_session_id" field.
func ClaimSessionIDHasPrefix(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldHasPrefix(FieldClaimSessionID, v))
}

// ClaimSessionIDHasSuffix applies the HasSuffix predicate on the "claim_session_id" field.
func ClaimSessionIDHasSuffix(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldHasSuffix(FieldClaimSessionID, v))
}

// ClaimSessionIDIsNil applies the IsNil predicate on the "claim_session_id" field.
func ClaimSessionIDIsNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIsNull(FieldClaimSessionID))
}

// ClaimSessionIDNotNil applies the NotNil predicate on the "claim_session_id" field.
func ClaimSessionIDNotNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotNull(FieldClaimSessionID))
}

// ClaimSessionIDEqualFold applies the EqualFold predicate on the "claim_session_id" field.
func ClaimSessionIDEqualFold(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEqualFold(FieldClaimSessionID, v))
}

// ClaimSessionIDContainsFold applies the ContainsFold predicate on the "claim_session_id" field.
func ClaimSessionIDContainsFold(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldContainsFold(FieldClaimSessionID, v))
}

// ClaimAgentIDEQ applies the EQ predicate on the "claim_agent_id" field.
func ClaimAgentIDEQ(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldClaimAgentID, v))
}

// ClaimAgentIDNEQ applies the NEQ predicate on the "claim_agent_id" field.
func ClaimAgentIDNEQ(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNEQ(FieldClaimAgentID, v))
}

// ClaimAgentIDIn applies the In predicate on the "claim_agent_id" field.
func ClaimAgentIDIn(vs ...string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIn(FieldClaimAgentID, vs...))
}

// ClaimAgentIDNotIn applies the NotIn predicate on the "claim_agent_id" field.
func ClaimAgentIDNotIn(vs ...string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotIn(FieldClaimAgentID, vs...))
}

// ClaimAgentIDGT applies the GT predicate on the "claim_agent_id" field.
func ClaimAgentIDGT(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGT(FieldClaimAgentID, v))
}

// ClaimAgentIDGTE applies the GTE predicate on the "claim_agent_id" field.
func ClaimAgentIDGTE(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGTE(FieldClaimAgentID, v))
}

// ClaimAgentIDLT applies the LT predicate on the "claim_agent_id" field.
func ClaimAgentIDLT(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLT(FieldClaimAgentID, v))
}

// ClaimAgentIDLTE applies the LTE predicate on the "claim_agent_id" field.
func ClaimAgentIDLTE(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLTE(FieldClaimAgentID, v))
}

// ClaimAgentIDContains applies the Contains predicate on the "claim_agent_id" field.
func ClaimAgentIDContains(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldContains(FieldClaimAgentID, v))
}

// ClaimAgentIDHasPrefix applies the HasPrefix predicate on the "claim_agent_id" field.
func ClaimAgentIDHasPrefix(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldHasPrefix(FieldClaimAgentID, v))
}

// ClaimAgentIDHasSuffix applies the HasSuffix predicate on the "claim_agent_id" field.
func ClaimAgentIDHasSuffix(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldHasSuffix(FieldClaimAgentID, v))
}

// ClaimAgentIDIsNil applies the IsNil predicate on the "claim_agent_id" field.
func ClaimAgentIDIsNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIsNull(FieldClaimAgentID))
}

// ClaimAgentIDNotNil applies the NotNil predicate on the "claim_agent_id" field.
func ClaimAgentIDNotNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotNull(FieldClaimAgentID))
}

// ClaimAgentIDEqualFold applies the EqualFold predicate on the "claim_agent_id" field.
func ClaimAgentIDEqualFold(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEqualFold(FieldClaimAgentID, v))
}

// ClaimAgentIDContainsFold applies the ContainsFold predicate on the "claim_agent_id" field.
func ClaimAgentIDContainsFold(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldContainsFold(FieldClaimAgentID, v))
}

// ClaimedAtEQ applies the EQ predicate on the "claimed_at" field.
func ClaimedAtEQ(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldClaimedAt, v))
}

// ClaimedAtNEQ applies the NEQ predicate on the "claimed_at" field.
func ClaimedAtNEQ(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNEQ(FieldClaimedAt, v))
}

// ClaimedAtIn applies the In predicate on the "claimed_at" field.
func ClaimedAtIn(vs ...time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIn(FieldClaimedAt, vs...))
}

// ClaimedAtNotIn applies the NotIn predicate on the "claimed_at" field.
func ClaimedAtNotIn(vs ...time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotIn(FieldClaimedAt, vs...))
}

// ClaimedAtGT applies the GT predicate on the "claimed_at" field.
func ClaimedAtGT(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGT(FieldClaimedAt, v))
}

// ClaimedAtGTE applies the GTE predicate on the "claimed_at" field.
func ClaimedAtGTE(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGTE(FieldClaimedAt, v))
}

// ClaimedAtLT applies the LT predicate on the "claimed_at" field.
func ClaimedAtLT(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLT(FieldClaimedAt, v))
}

// ClaimedAtLTE applies the LTE predicate on the "claimed_at" field.
func ClaimedAtLTE(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLTE(FieldClaimedAt, v))
}

// ClaimedAtIsNil applies the IsNil predicate on the "claimed_at" field.
func ClaimedAtIsNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIsNull(FieldClaimedAt))
}

// ClaimedAtNotNil applies the NotNil predicate on the "claimed_at" field.
func ClaimedAtNotNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotNull(FieldClaimedAt))
}

// AttemptCountEQ applies the EQ predicate on the "attempt_count" field.
func AttemptCountEQ(v int) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldAttemptCount, v))
}

// AttemptCountNEQ applies the NEQ predicate on the "attempt_count" field.
func AttemptCountNEQ(v int) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNEQ(FieldAttemptCount, v))
}

// AttemptCountIn applies the In predicate on the "attempt_count" field.
func AttemptCountIn(vs ...int) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIn(FieldAttemptCount, vs...))
}

// AttemptCountNotIn applies the NotIn predicate on the "attempt_count" field.
func AttemptCountNotIn(vs ...int) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotIn(FieldAttemptCount, vs...))
}

// AttemptCountGT applies the GT predicate on the "attempt_count" field.
func AttemptCountGT(v int) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGT(FieldAttemptCount, v))
}

// AttemptCountGTE applies the GTE predicate on the "attempt_count" field.
func AttemptCountGTE(v int) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGTE(FieldAttemptCount, v))
}

// AttemptCountLT applies the LT predicate on the "attempt_count" field.
func AttemptCountLT(v int) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLT(FieldAttemptCount, v))
}

// AttemptCountLTE applies the LTE predicate on the "attempt_count" field.
func AttemptCountLTE(v int) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLTE(FieldAttemptCount, v))
}

// BlockedByIsNil applies the IsNil predicate on the "blocked_by" field.
func BlockedByIsNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIsNull(FieldBlockedBy))
}

// BlockedByNotNil applies the NotNil predicate on the "blocked_by" field.
func BlockedByNotNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotNull(FieldBlockedBy))
}

// RelatedTaskIdsIsNil applies the IsNil predicate on the "related_task_ids" field.
func RelatedTaskIdsIsNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIsNull(FieldRelatedTaskIds))
}

// RelatedTaskIdsNotNil applies the NotNil predicate on the "related_task_ids" field.
func RelatedTaskIdsNotNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotNull(FieldRelatedTaskIds))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotIn(FieldOutcome, vs...))
}

// OutcomeGT applies the GT predicate on the "outcome" field.
func OutcomeGT(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGT(FieldOutcome, v))
}

// OutcomeGTE applies the GTE predicate on the "outcome" field.
func OutcomeGTE(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGTE(FieldOutcome, v))
}

// OutcomeLT applies the LT predicate on the "outcome" field.
func OutcomeLT(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLT(FieldOutcome, v))
}

// OutcomeLTE applies the LTE predicate on the "outcome" field.
func OutcomeLTE(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLTE(FieldOutcome, v))
}

// OutcomeContains applies the Contains predicate on the "outcome" field.
func OutcomeContains(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldContains(FieldOutcome, v))
}

// OutcomeHasPrefix applies the HasPrefix predicate on the "outcome" field.
func OutcomeHasPrefix(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldHasPrefix(FieldOutcome, v))
}

// OutcomeHasSuffix applies the HasSuffix predicate on the "outcome" field.
func OutcomeHasSuffix(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldHasSuffix(FieldOutcome, v))
}

// OutcomeIsNil applies the IsNil predicate on the "outcome" field.
func OutcomeIsNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIsNull(FieldOutcome))
}

// OutcomeNotNil applies the NotNil predicate on the "outcome" field.
func OutcomeNotNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotNull(FieldOutcome))
}

// OutcomeEqualFold applies the EqualFold predicate on the "outcome" field.
func OutcomeEqualFold(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEqualFold(FieldOutcome, v))
}

// OutcomeContainsFold applies the ContainsFold predicate on the "outcome" field.
func OutcomeContainsFold(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldContainsFold(FieldOutcome, v))
}

// CompletionNotesEQ applies the EQ predicate on the "completion_notes" field.
func CompletionNotesEQ(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldCompletionNotes, v))
}

// CompletionNotesNEQ applies the NEQ predicate on the "completion_notes" field.
func CompletionNotesNEQ(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNEQ(FieldCompletionNotes, v))
}

// CompletionNotesIn applies the In predicate on the "completion_notes" field.
func CompletionNotesIn(vs ...string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIn(FieldCompletionNotes, vs...))
}

// CompletionNotesNotIn applies the NotIn predicate on the "completion_notes" field.
func CompletionNotesNotIn(vs ...string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotIn(FieldCompletionNotes, vs...))
}

// CompletionNotesGT applies the GT predicate on the "completion_notes" field.
func CompletionNotesGT(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGT(FieldCompletionNotes, v))
}

// CompletionNotesGTE applies the GTE predicate on the "completion_notes" field.
func CompletionNotesGTE(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGTE(FieldCompletionNotes, v))
}

// CompletionNotesLT applies the LT predicate on the "completion_notes" field.
func CompletionNotesLT(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLT(FieldCompletionNotes, v))
}

// CompletionNotesLTE applies the LTE predicate on the "completion_notes" field.
func CompletionNotesLTE(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLTE(FieldCompletionNotes, v))
}

// CompletionNotesContains applies the Contains predicate on the "completion_notes" field.
func CompletionNotesContains(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldContains(FieldCompletionNotes, v))
}

// CompletionNotesHasPrefix applies the HasPrefix predicate on the "completion_notes" field.
func CompletionNotesHasPrefix(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldHasPrefix(FieldCompletionNotes, v))
}

// CompletionNotesHasSuffix applies the HasSuffix predicate on the "completion_notes" field.
func CompletionNotesHasSuffix(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldHasSuffix(FieldCompletionNotes, v))
}

// CompletionNotesIsNil applies the IsNil predicate on the "completion_notes" field.
func CompletionNotesIsNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIsNull(FieldCompletionNotes))
}

// CompletionNotesNotNil applies the NotNil predicate on the "completion_notes" field.
func CompletionNotesNotNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotNull(FieldCompletionNotes))
}

// CompletionNotesEqualFold applies the EqualFold predicate on the "completion_notes" field.
func CompletionNotesEqualFold(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEqualFold(FieldCompletionNotes, v))
}

// CompletionNotesContainsFold applies the ContainsFold predicate on the "completion_notes" field.
func CompletionNotesContainsFold(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldContainsFold(FieldCompletionNotes, v))
}

// FilesChangedIsNil applies the IsNil predicate on the "files_changed" field.
func FilesChangedIsNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIsNull(FieldFilesChanged))
}

// FilesChangedNotNil applies the NotNil predicate on the "files_changed" field.
func FilesChangedNotNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotNull(FieldFilesChanged))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldContainsFold(FieldLastError, v))
}

// ExtraIsNil applies the IsNil predicate on the "extra" field.
func ExtraIsNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIsNull(FieldExtra))
}

// ExtraNotNil applies the NotNil predicate on the "extra" field.
func ExtraNotNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotNull(FieldExtra))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLTE(FieldUpdatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotNull(FieldCompletedAt))
}

// LastTriggeredAtEQ applies the EQ predicate on the "last_triggered_at" field.
func LastTriggeredAtEQ(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldEQ(FieldLastTriggeredAt, v))
}

// LastTriggeredAtNEQ applies the NEQ predicate on the "last_triggered_at" field.
func LastTriggeredAtNEQ(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNEQ(FieldLastTriggeredAt, v))
}

// LastTriggeredAtIn applies the In predicate on the "last_triggered_at" field.
func LastTriggeredAtIn(vs ...time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIn(FieldLastTriggeredAt, vs...))
}

// LastTriggeredAtNotIn applies the NotIn predicate on the "last_triggered_at" field.
func LastTriggeredAtNotIn(vs ...time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotIn(FieldLastTriggeredAt, vs...))
}

// LastTriggeredAtGT applies the GT predicate on the "last_triggered_at" field.
func LastTriggeredAtGT(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGT(FieldLastTriggeredAt, v))
}

// LastTriggeredAtGTE applies the GTE predicate on the "last_triggered_at" field.
func LastTriggeredAtGTE(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldGTE(FieldLastTriggeredAt, v))
}

// LastTriggeredAtLT applies the LT predicate on the "last_triggered_at" field.
func LastTriggeredAtLT(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLT(FieldLastTriggeredAt, v))
}

// LastTriggeredAtLTE applies the LTE predicate on the "last_triggered_at" field.
func LastTriggeredAtLTE(v time.Time) predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldLTE(FieldLastTriggeredAt, v))
}

// LastTriggeredAtIsNil applies the IsNil predicate on the "last_triggered_at" field.
func LastTriggeredAtIsNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldIsNull(FieldLastTriggeredAt))
}

// LastTriggeredAtNotNil applies the NotNil predicate on the "last_triggered_at" field.
func LastTriggeredAtNotNil() predicate.ProjectTask {
	return predicate.ProjectTask(sql.FieldNotNull(FieldLastTriggeredAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProjectTask) predicate.ProjectTask {
	return predicate.ProjectTask(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProjectTask) predicate.ProjectTask {
	return predicate.ProjectTask(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProjectTask) predicate.ProjectTask {
	return predicate.ProjectTask(sql.NotPredicates(p))
}
