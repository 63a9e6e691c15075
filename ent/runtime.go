// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/kestrel-ai/kestrel/ent/ambientnotification"
	"github.com/kestrel-ai/kestrel/ent/contextcache"
	"github.com/kestrel-ai/kestrel/ent/contradictionreview"
	"github.com/kestrel-ai/kestrel/ent/conversation"
	"github.com/kestrel-ai/kestrel/ent/conversationblock"
	"github.com/kestrel-ai/kestrel/ent/corememoryblock"
	"github.com/kestrel-ai/kestrel/ent/corememoryversion"
	"github.com/kestrel-ai/kestrel/ent/daemonstate"
	"github.com/kestrel-ai/kestrel/ent/entitymention"
	"github.com/kestrel-ai/kestrel/ent/explorationfinding"
	"github.com/kestrel-ai/kestrel/ent/mediumpresence"
	"github.com/kestrel-ai/kestrel/ent/mission"
	"github.com/kestrel-ai/kestrel/ent/missionexecution"
	"github.com/kestrel-ai/kestrel/ent/projecttask"
	"github.com/kestrel-ai/kestrel/ent/queuetask"
	"github.com/kestrel-ai/kestrel/ent/schema"
	"github.com/kestrel-ai/kestrel/ent/session"
	"github.com/kestrel-ai/kestrel/ent/summarycontext"
	"github.com/kestrel-ai/kestrel/ent/surfacedfinding"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	ambientnotificationFields := schema.AmbientNotification{}.Fields()
	_ = ambientnotificationFields
	// ambientnotificationDescAcknowledged is the schema descriptor for acknowledged field.
	ambientnotificationDescAcknowledged := ambientnotificationFields[9].Descriptor()
	// ambientnotification.DefaultAcknowledged holds the default value on creation for the acknowledged field.
	ambientnotification.DefaultAcknowledged = ambientnotificationDescAcknowledged.Default.(bool)
	// ambientnotificationDescCreatedAt is the schema descriptor for created_at field.
	ambientnotificationDescCreatedAt := ambientnotificationFields[13].Descriptor()
	// ambientnotification.DefaultCreatedAt holds the default value on creation for the created_at field.
	ambientnotification.DefaultCreatedAt = ambientnotificationDescCreatedAt.Default.(func() time.Time)
	contextcacheFields := schema.ContextCache{}.Fields()
	_ = contextcacheFields
	// contextcacheDescContext is the schema descriptor for context field.
	contextcacheDescContext := contextcacheFields[2].Descriptor()
	// contextcache.DefaultContext holds the default value on creation for the context field.
	contextcache.DefaultContext = contextcacheDescContext.Default.(string)
	// contextcacheDescUpdatedAt is the schema descriptor for updated_at field.
	contextcacheDescUpdatedAt := contextcacheFields[4].Descriptor()
	// contextcache.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	contextcache.DefaultUpdatedAt = contextcacheDescUpdatedAt.Default.(func() time.Time)
	// contextcache.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	contextcache.UpdateDefaultUpdatedAt = contextcacheDescUpdatedAt.UpdateDefault.(func() time.Time)
	contradictionreviewFields := schema.ContradictionReview{}.Fields()
	_ = contradictionreviewFields
	// contradictionreviewDescSimilarity is the schema descriptor for similarity field.
	contradictionreviewDescSimilarity := contradictionreviewFields[4].Descriptor()
	// contradictionreview.SimilarityValidator is a validator for the "similarity" field. It is called by the builders before save.
	contradictionreview.SimilarityValidator = func() func(float64) error {
		validators := contradictionreviewDescSimilarity.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(similarity float64) error {
			for _, fn := range fns {
				if err := fn(similarity); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contradictionreviewDescCreatedAt is the schema descriptor for created_at field.
	contradictionreviewDescCreatedAt := contradictionreviewFields[14].Descriptor()
	// contradictionreview.DefaultCreatedAt holds the default value on creation for the created_at field.
	contradictionreview.DefaultCreatedAt = contradictionreviewDescCreatedAt.Default.(func() time.Time)
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescCreatedAt is the schema descriptor for created_at field.
	conversationDescCreatedAt := conversationFields[4].Descriptor()
	// conversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversation.DefaultCreatedAt = conversationDescCreatedAt.Default.(func() time.Time)
	conversationblockFields := schema.ConversationBlock{}.Fields()
	_ = conversationblockFields
	// conversationblockDescOrdinal is the schema descriptor for ordinal field.
	conversationblockDescOrdinal := conversationblockFields[2].Descriptor()
	// conversationblock.OrdinalValidator is a validator for the "ordinal" field. It is called by the builders before save.
	conversationblock.OrdinalValidator = conversationblockDescOrdinal.Validators[0].(func(int) error)
	corememoryblockFields := schema.CoreMemoryBlock{}.Fields()
	_ = corememoryblockFields
	// corememoryblockDescContent is the schema descriptor for content field.
	corememoryblockDescContent := corememoryblockFields[4].Descriptor()
	// corememoryblock.DefaultContent holds the default value on creation for the content field.
	corememoryblock.DefaultContent = corememoryblockDescContent.Default.(string)
	// corememoryblockDescCharLimit is the schema descriptor for char_limit field.
	corememoryblockDescCharLimit := corememoryblockFields[5].Descriptor()
	// corememoryblock.DefaultCharLimit holds the default value on creation for the char_limit field.
	corememoryblock.DefaultCharLimit = corememoryblockDescCharLimit.Default.(int)
	// corememoryblock.CharLimitValidator is a validator for the "char_limit" field. It is called by the builders before save.
	corememoryblock.CharLimitValidator = corememoryblockDescCharLimit.Validators[0].(func(int) error)
	// corememoryblockDescVersion is the schema descriptor for version field.
	corememoryblockDescVersion := corememoryblockFields[6].Descriptor()
	// corememoryblock.DefaultVersion holds the default value on creation for the version field.
	corememoryblock.DefaultVersion = corememoryblockDescVersion.Default.(int)
	// corememoryblockDescCreatedAt is the schema descriptor for created_at field.
	corememoryblockDescCreatedAt := corememoryblockFields[7].Descriptor()
	// corememoryblock.DefaultCreatedAt holds the default value on creation for the created_at field.
	corememoryblock.DefaultCreatedAt = corememoryblockDescCreatedAt.Default.(func() time.Time)
	// corememoryblockDescUpdatedAt is the schema descriptor for updated_at field.
	corememoryblockDescUpdatedAt := corememoryblockFields[8].Descriptor()
	// corememoryblock.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	corememoryblock.DefaultUpdatedAt = corememoryblockDescUpdatedAt.Default.(func() time.Time)
	// corememoryblock.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	corememoryblock.UpdateDefaultUpdatedAt = corememoryblockDescUpdatedAt.UpdateDefault.(func() time.Time)
	corememoryversionFields := schema.CoreMemoryVersion{}.Fields()
	_ = corememoryversionFields
	// corememoryversionDescVersion is the schema descriptor for version field.
	corememoryversionDescVersion := corememoryversionFields[2].Descriptor()
	// corememoryversion.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	corememoryversion.VersionValidator = corememoryversionDescVersion.Validators[0].(func(int) error)
	// corememoryversionDescCreatedAt is the schema descriptor for created_at field.
	corememoryversionDescCreatedAt := corememoryversionFields[5].Descriptor()
	// corememoryversion.DefaultCreatedAt holds the default value on creation for the created_at field.
	corememoryversion.DefaultCreatedAt = corememoryversionDescCreatedAt.Default.(func() time.Time)
	daemonstateFields := schema.DaemonState{}.Fields()
	_ = daemonstateFields
	// daemonstateDescAutonomousWorkCount is the schema descriptor for autonomous_work_count field.
	daemonstateDescAutonomousWorkCount := daemonstateFields[4].Descriptor()
	// daemonstate.DefaultAutonomousWorkCount holds the default value on creation for the autonomous_work_count field.
	daemonstate.DefaultAutonomousWorkCount = daemonstateDescAutonomousWorkCount.Default.(int)
	// daemonstateDescUpdatedAt is the schema descriptor for updated_at field.
	daemonstateDescUpdatedAt := daemonstateFields[5].Descriptor()
	// daemonstate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	daemonstate.DefaultUpdatedAt = daemonstateDescUpdatedAt.Default.(func() time.Time)
	// daemonstate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	daemonstate.UpdateDefaultUpdatedAt = daemonstateDescUpdatedAt.UpdateDefault.(func() time.Time)
	entitymentionFields := schema.EntityMention{}.Fields()
	_ = entitymentionFields
	// entitymentionDescConfidence is the schema descriptor for confidence field.
	entitymentionDescConfidence := entitymentionFields[6].Descriptor()
	// entitymention.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	entitymention.ConfidenceValidator = func() func(float64) error {
		validators := entitymentionDescConfidence.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(confidence float64) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// entitymentionDescCreatedAt is the schema descriptor for created_at field.
	entitymentionDescCreatedAt := entitymentionFields[9].Descriptor()
	// entitymention.DefaultCreatedAt holds the default value on creation for the created_at field.
	entitymention.DefaultCreatedAt = entitymentionDescCreatedAt.Default.(func() time.Time)
	explorationfindingFields := schema.ExplorationFinding{}.Fields()
	_ = explorationfindingFields
	// explorationfindingDescConfidence is the schema descriptor for confidence field.
	explorationfindingDescConfidence := explorationfindingFields[4].Descriptor()
	// explorationfinding.DefaultConfidence holds the default value on creation for the confidence field.
	explorationfinding.DefaultConfidence = explorationfindingDescConfidence.Default.(float64)
	// explorationfinding.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	explorationfinding.ConfidenceValidator = func() func(float64) error {
		validators := explorationfindingDescConfidence.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(confidence float64) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// explorationfindingDescWorthSharing is the schema descriptor for worth_sharing field.
	explorationfindingDescWorthSharing := explorationfindingFields[5].Descriptor()
	// explorationfinding.DefaultWorthSharing holds the default value on creation for the worth_sharing field.
	explorationfinding.DefaultWorthSharing = explorationfindingDescWorthSharing.Default.(bool)
	// explorationfindingDescCreatedAt is the schema descriptor for created_at field.
	explorationfindingDescCreatedAt := explorationfindingFields[7].Descriptor()
	// explorationfinding.DefaultCreatedAt holds the default value on creation for the created_at field.
	explorationfinding.DefaultCreatedAt = explorationfindingDescCreatedAt.Default.(func() time.Time)
	mediumpresenceFields := schema.MediumPresence{}.Fields()
	_ = mediumpresenceFields
	// mediumpresenceDescStatus is the schema descriptor for status field.
	mediumpresenceDescStatus := mediumpresenceFields[3].Descriptor()
	// mediumpresence.DefaultStatus holds the default value on creation for the status field.
	mediumpresence.DefaultStatus = mediumpresenceDescStatus.Default.(string)
	// mediumpresenceDescLastHeartbeat is the schema descriptor for last_heartbeat field.
	mediumpresenceDescLastHeartbeat := mediumpresenceFields[4].Descriptor()
	// mediumpresence.DefaultLastHeartbeat holds the default value on creation for the last_heartbeat field.
	mediumpresence.DefaultLastHeartbeat = mediumpresenceDescLastHeartbeat.Default.(func() time.Time)
	missionFields := schema.Mission{}.Fields()
	_ = missionFields
	// missionDescCreatedAt is the schema descriptor for created_at field.
	missionDescCreatedAt := missionFields[10].Descriptor()
	// mission.DefaultCreatedAt holds the default value on creation for the created_at field.
	mission.DefaultCreatedAt = missionDescCreatedAt.Default.(func() time.Time)
	// missionDescUpdatedAt is the schema descriptor for updated_at field.
	missionDescUpdatedAt := missionFields[11].Descriptor()
	// mission.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	mission.DefaultUpdatedAt = missionDescUpdatedAt.Default.(func() time.Time)
	// mission.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	mission.UpdateDefaultUpdatedAt = missionDescUpdatedAt.UpdateDefault.(func() time.Time)
	missionexecutionFields := schema.MissionExecution{}.Fields()
	_ = missionexecutionFields
	// missionexecutionDescToolCount is the schema descriptor for tool_count field.
	missionexecutionDescToolCount := missionexecutionFields[7].Descriptor()
	// missionexecution.DefaultToolCount holds the default value on creation for the tool_count field.
	missionexecution.DefaultToolCount = missionexecutionDescToolCount.Default.(int)
	// missionexecutionDescCreatedAt is the schema descriptor for created_at field.
	missionexecutionDescCreatedAt := missionexecutionFields[9].Descriptor()
	// missionexecution.DefaultCreatedAt holds the default value on creation for the created_at field.
	missionexecution.DefaultCreatedAt = missionexecutionDescCreatedAt.Default.(func() time.Time)
	projecttaskFields := schema.ProjectTask{}.Fields()
	_ = projecttaskFields
	// projecttaskDescPriority is the schema descriptor for priority field.
	projecttaskDescPriority := projecttaskFields[9].Descriptor()
	// projecttask.DefaultPriority holds the default value on creation for the priority field.
	projecttask.DefaultPriority = projecttaskDescPriority.Default.(int)
	// projecttask.PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	projecttask.PriorityValidator = func() func(int) error {
		validators := projecttaskDescPriority.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(priority int) error {
			for _, fn := range fns {
				if err := fn(priority); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// projecttaskDescAttemptCount is the schema descriptor for attempt_count field.
	projecttaskDescAttemptCount := projecttaskFields[15].Descriptor()
	// projecttask.DefaultAttemptCount holds the default value on creation for the attempt_count field.
	projecttask.DefaultAttemptCount = projecttaskDescAttemptCount.Default.(int)
	// projecttaskDescCreatedAt is the schema descriptor for created_at field.
	projecttaskDescCreatedAt := projecttaskFields[23].Descriptor()
	// projecttask.DefaultCreatedAt holds the default value on creation for the created_at field.
	projecttask.DefaultCreatedAt = projecttaskDescCreatedAt.Default.(func() time.Time)
	// projecttaskDescUpdatedAt is the schema descriptor for updated_at field.
	projecttaskDescUpdatedAt := projecttaskFields[24].Descriptor()
	// projecttask.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	projecttask.DefaultUpdatedAt = projecttaskDescUpdatedAt.Default.(func() time.Time)
	// projecttask.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	projecttask.UpdateDefaultUpdatedAt = projecttaskDescUpdatedAt.UpdateDefault.(func() time.Time)
	queuetaskFields := schema.QueueTask{}.Fields()
	_ = queuetaskFields
	// queuetaskDescPriority is the schema descriptor for priority field.
	queuetaskDescPriority := queuetaskFields[5].Descriptor()
	// queuetask.DefaultPriority holds the default value on creation for the priority field.
	queuetask.DefaultPriority = queuetaskDescPriority.Default.(int)
	// queuetaskDescRetryCount is the schema descriptor for retry_count field.
	queuetaskDescRetryCount := queuetaskFields[8].Descriptor()
	// queuetask.DefaultRetryCount holds the default value on creation for the retry_count field.
	queuetask.DefaultRetryCount = queuetaskDescRetryCount.Default.(int)
	// queuetaskDescCreatedAt is the schema descriptor for created_at field.
	queuetaskDescCreatedAt := queuetaskFields[10].Descriptor()
	// queuetask.DefaultCreatedAt holds the default value on creation for the created_at field.
	queuetask.DefaultCreatedAt = queuetaskDescCreatedAt.Default.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescStartTime is the schema descriptor for start_time field.
	sessionDescStartTime := sessionFields[2].Descriptor()
	// session.DefaultStartTime holds the default value on creation for the start_time field.
	session.DefaultStartTime = sessionDescStartTime.Default.(func() time.Time)
	// sessionDescLastActivity is the schema descriptor for last_activity field.
	sessionDescLastActivity := sessionFields[4].Descriptor()
	// session.DefaultLastActivity holds the default value on creation for the last_activity field.
	session.DefaultLastActivity = sessionDescLastActivity.Default.(func() time.Time)
	summarycontextFields := schema.SummaryContext{}.Fields()
	_ = summarycontextFields
	// summarycontextDescCreatedAt is the schema descriptor for created_at field.
	summarycontextDescCreatedAt := summarycontextFields[4].Descriptor()
	// summarycontext.DefaultCreatedAt holds the default value on creation for the created_at field.
	summarycontext.DefaultCreatedAt = summarycontextDescCreatedAt.Default.(func() time.Time)
	surfacedfindingFields := schema.SurfacedFinding{}.Fields()
	_ = surfacedfindingFields
	// surfacedfindingDescCreatedAt is the schema descriptor for created_at field.
	surfacedfindingDescCreatedAt := surfacedfindingFields[3].Descriptor()
	// surfacedfinding.DefaultCreatedAt holds the default value on creation for the created_at field.
	surfacedfinding.DefaultCreatedAt = surfacedfindingDescCreatedAt.Default.(func() time.Time)
}
