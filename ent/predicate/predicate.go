// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AmbientNotification is the predicate function for ambientnotification builders.
type AmbientNotification func(*sql.Selector)

// ContextCache is the predicate function for contextcache builders.
type ContextCache func(*sql.Selector)

// ContradictionReview is the predicate function for contradictionreview builders.
type ContradictionReview func(*sql.Selector)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// ConversationBlock is the predicate function for conversationblock builders.
type ConversationBlock func(*sql.Selector)

// CoreMemoryBlock is the predicate function for corememoryblock builders.
type CoreMemoryBlock func(*sql.Selector)

// CoreMemoryVersion is the predicate function for corememoryversion builders.
type CoreMemoryVersion func(*sql.Selector)

// DaemonState is the predicate function for daemonstate builders.
type DaemonState func(*sql.Selector)

// EntityMention is the predicate function for entitymention builders.
type EntityMention func(*sql.Selector)

// ExplorationFinding is the predicate function for explorationfinding builders.
type ExplorationFinding func(*sql.Selector)

// MediumPresence is the predicate function for mediumpresence builders.
type MediumPresence func(*sql.Selector)

// Mission is the predicate function for mission builders.
type Mission func(*sql.Selector)

// MissionExecution is the predicate function for missionexecution builders.
type MissionExecution func(*sql.Selector)

// ProjectTask is the predicate function for projecttask builders.
type ProjectTask func(*sql.Selector)

// QueueTask is the predicate function for queuetask builders.
type QueueTask func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// SummaryContext is the predicate function for summarycontext builders.
type SummaryContext func(*sql.Selector)

// SurfacedFinding is the predicate function for surfacedfinding builders.
type SurfacedFinding func(*sql.Selector)
