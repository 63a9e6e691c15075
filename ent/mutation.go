// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
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
	"github.com/kestrel-ai/kestrel/ent/predicate"
	"github.com/kestrel-ai/kestrel/ent/projecttask"
	"github.com/kestrel-ai/kestrel/ent/queuetask"
	"github.com/kestrel-ai/kestrel/ent/session"
	"github.com/kestrel-ai/kestrel/ent/summarycontext"
	"github.com/kestrel-ai/kestrel/ent/surfacedfinding"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAmbientNotification = "AmbientNotification"
	TypeContextCache        = "ContextCache"
	TypeContradictionReview = "ContradictionReview"
	TypeConversation        = "Conversation"
	TypeConversationBlock   = "ConversationBlock"
	TypeCoreMemoryBlock     = "CoreMemoryBlock"
	TypeCoreMemoryVersion   = "CoreMemoryVersion"
	TypeDaemonState         = "DaemonState"
	TypeEntityMention       = "EntityMention"
	TypeExplorationFinding  = "ExplorationFinding"
	TypeMediumPresence      = "MediumPresence"
	TypeMission             = "Mission"
	TypeMissionExecution    = "MissionExecution"
	TypeProjectTask         = "ProjectTask"
	TypeQueueTask           = "QueueTask"
	TypeSession             = "Session"
	TypeSummaryContext      = "SummaryContext"
	TypeSurfacedFinding     = "SurfacedFinding"
)

// AmbientNotificationMutation represents an operation that mutates the AmbientNotification nodes in the graph.
type AmbientNotificationMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	user_id                  *string
	target_medium            *string
	target_location          *string
	message                  *string
	priority                 *ambientnotification.Priority
	routing_reasoning        *string
	status                   *ambientnotification.Status
	parent_notification_id   *string
	acknowledged             *bool
	acknowledged_at          *time.Time
	response_time_seconds    *int
	addresponse_time_seconds *int
	context_snapshot         *map[string]interface{}
	created_at               *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*AmbientNotification, error)
	predicates               []predicate.AmbientNotification
}

var _ ent.Mutation = (*AmbientNotificationMutation)(nil)

// ambientnotificationOption allows management of the mutation configuration using functional options.
type ambientnotificationOption func(*AmbientNotificationMutation)

// newAmbientNotificationMutation creates new mutation for the AmbientNotification entity.
func newAmbientNotificationMutation(c config, op Op, opts ...ambientnotificationOption) *AmbientNotificationMutation {
	m := &AmbientNotificationMutation{
		config:        c,
		op:            op,
		typ:           TypeAmbientNotification,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAmbientNotificationID sets the ID field of the mutation.
func withAmbientNotificationID(id string) ambientnotificationOption {
	return func(m *AmbientNotificationMutation) {
		var (
			err   error
			once  sync.Once
			value *AmbientNotification
		)
		m.oldValue = func(ctx context.Context) (*AmbientNotification, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AmbientNotification.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAmbientNotification sets the old AmbientNotification of the mutation.
func withAmbientNotification(node *AmbientNotification) ambientnotificationOption {
	return func(m *AmbientNotificationMutation) {
		m.oldValue = func(context.Context) (*AmbientNotification, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AmbientNotificationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AmbientNotificationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AmbientNotification entities.
func (m *AmbientNotificationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AmbientNotificationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AmbientNotificationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AmbientNotification.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *AmbientNotificationMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AmbientNotificationMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AmbientNotification entity.
// If the AmbientNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AmbientNotificationMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AmbientNotificationMutation) ResetUserID() {
	m.user_id = nil
}

// SetTargetMedium sets the "target_medium" field.
func (m *AmbientNotificationMutation) SetTargetMedium(s string) {
	m.target_medium = &s
}

// TargetMedium returns the value of the "target_medium" field in the mutation.
func (m *AmbientNotificationMutation) TargetMedium() (r string, exists bool) {
	v := m.target_medium
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetMedium returns the old "target_medium" field's value of the AmbientNotification entity.
// If the AmbientNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AmbientNotificationMutation) OldTargetMedium(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetMedium is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetMedium requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetMedium: %w", err)
	}
	return oldValue.TargetMedium, nil
}

// ClearTargetMedium clears the value of the "target_medium" field.
func (m *AmbientNotificationMutation) ClearTargetMedium() {
	m.target_medium = nil
	m.clearedFields[ambientnotification.FieldTargetMedium] = struct{}{}
}

// TargetMediumCleared returns if the "target_medium" field was cleared in this mutation.
func (m *AmbientNotificationMutation) TargetMediumCleared() bool {
	_, ok := m.clearedFields[ambientnotification.FieldTargetMedium]
	return ok
}

// ResetTargetMedium resets all changes to the "target_medium" field.
func (m *AmbientNotificationMutation) ResetTargetMedium() {
	m.target_medium = nil
	delete(m.clearedFields, ambientnotification.FieldTargetMedium)
}

// SetTargetLocation sets the "target_location" field.
func (m *AmbientNotificationMutation) SetTargetLocation(s string) {
	m.target_location = &s
}

// TargetLocation returns the value of the "target_location" field in the mutation.
func (m *AmbientNotificationMutation) TargetLocation() (r string, exists bool) {
	v := m.target_location
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetLocation returns the old "target_location" field's value of the AmbientNotification entity.
// If the AmbientNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AmbientNotificationMutation) OldTargetLocation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetLocation: %w", err)
	}
	return oldValue.TargetLocation, nil
}

// ClearTargetLocation clears the value of the "target_location" field.
func (m *AmbientNotificationMutation) ClearTargetLocation() {
	m.target_location = nil
	m.clearedFields[ambientnotification.FieldTargetLocation] = struct{}{}
}

// TargetLocationCleared returns if the "target_location" field was cleared in this mutation.
func (m *AmbientNotificationMutation) TargetLocationCleared() bool {
	_, ok := m.clearedFields[ambientnotification.FieldTargetLocation]
	return ok
}

// ResetTargetLocation resets all changes to the "target_location" field.
func (m *AmbientNotificationMutation) ResetTargetLocation() {
	m.target_location = nil
	delete(m.clearedFields, ambientnotification.FieldTargetLocation)
}

// SetMessage sets the "message" field.
func (m *AmbientNotificationMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *AmbientNotificationMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the AmbientNotification entity.
// If the AmbientNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AmbientNotificationMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *AmbientNotificationMutation) ResetMessage() {
	m.message = nil
}

// SetPriority sets the "priority" field.
func (m *AmbientNotificationMutation) SetPriority(a ambientnotification.Priority) {
	m.priority = &a
}

// Priority returns the value of the "priority" field in the mutation.
func (m *AmbientNotificationMutation) Priority() (r ambientnotification.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the AmbientNotification entity.
// If the AmbientNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AmbientNotificationMutation) OldPriority(ctx context.Context) (v ambientnotification.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *AmbientNotificationMutation) ResetPriority() {
	m.priority = nil
}

// SetRoutingReasoning sets the "routing_reasoning" field.
func (m *AmbientNotificationMutation) SetRoutingReasoning(s string) {
	m.routing_reasoning = &s
}

// RoutingReasoning returns the value of the "routing_reasoning" field in the mutation.
func (m *AmbientNotificationMutation) RoutingReasoning() (r string, exists bool) {
	v := m.routing_reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldRoutingReasoning returns the old "routing_reasoning" field's value of the AmbientNotification entity.
// If the AmbientNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AmbientNotificationMutation) OldRoutingReasoning(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoutingReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoutingReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoutingReasoning: %w", err)
	}
	return oldValue.RoutingReasoning, nil
}

// ClearRoutingReasoning clears the value of the "routing_reasoning" field.
func (m *AmbientNotificationMutation) ClearRoutingReasoning() {
	m.routing_reasoning = nil
	m.clearedFields[ambientnotification.FieldRoutingReasoning] = struct{}{}
}

// RoutingReasoningCleared returns if the "routing_reasoning" field was cleared in this mutation.
func (m *AmbientNotificationMutation) RoutingReasoningCleared() bool {
	_, ok := m.clearedFields[ambientnotification.FieldRoutingReasoning]
	return ok
}

// ResetRoutingReasoning resets all changes to the "routing_reasoning" field.
func (m *AmbientNotificationMutation) ResetRoutingReasoning() {
	m.routing_reasoning = nil
	delete(m.clearedFields, ambientnotification.FieldRoutingReasoning)
}

// SetStatus sets the "status" field.
func (m *AmbientNotificationMutation) SetStatus(a ambientnotification.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AmbientNotificationMutation) Status() (r ambientnotification.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AmbientNotification entity.
// If the AmbientNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AmbientNotificationMutation) OldStatus(ctx context.Context) (v ambientnotification.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AmbientNotificationMutation) ResetStatus() {
	m.status = nil
}

// SetParentNotificationID sets the "parent_notification_id" field.
func (m *AmbientNotificationMutation) SetParentNotificationID(s string) {
	m.parent_notification_id = &s
}

// ParentNotificationID returns the value of the "parent_notification_id" field in the mutation.
func (m *AmbientNotificationMutation) ParentNotificationID() (r string, exists bool) {
	v := m.parent_notification_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentNotificationID returns the old "parent_notification_id" field's value of the AmbientNotification entity.
// If the AmbientNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AmbientNotificationMutation) OldParentNotificationID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentNotificationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentNotificationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentNotificationID: %w", err)
	}
	return oldValue.ParentNotificationID, nil
}

// ClearParentNotificationID clears the value of the "parent_notification_id" field.
func (m *AmbientNotificationMutation) ClearParentNotificationID() {
	m.parent_notification_id = nil
	m.clearedFields[ambientnotification.FieldParentNotificationID] = struct{}{}
}

// ParentNotificationIDCleared returns if the "parent_notification_id" field was cleared in this mutation.
func (m *AmbientNotificationMutation) ParentNotificationIDCleared() bool {
	_, ok := m.clearedFields[ambientnotification.FieldParentNotificationID]
	return ok
}

// ResetParentNotificationID resets all changes to the "parent_notification_id" field.
func (m *AmbientNotificationMutation) ResetParentNotificationID() {
	m.parent_notification_id = nil
	delete(m.clearedFields, ambientnotification.FieldParentNotificationID)
}

// SetAcknowledged sets the "acknowledged" field.
func (m *AmbientNotificationMutation) SetAcknowledged(b bool) {
	m.acknowledged = &b
}

// Acknowledged returns the value of the "acknowledged" field in the mutation.
func (m *AmbientNotificationMutation) Acknowledged() (r bool, exists bool) {
	v := m.acknowledged
	if v == nil {
		return
	}
	return *v, true
}

// OldAcknowledged returns the old "acknowledged" field's value of the AmbientNotification entity.
// If the AmbientNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AmbientNotificationMutation) OldAcknowledged(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcknowledged is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcknowledged requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcknowledged: %w", err)
	}
	return oldValue.Acknowledged, nil
}

// ResetAcknowledged resets all changes to the "acknowledged" field.
func (m *AmbientNotificationMutation) ResetAcknowledged() {
	m.acknowledged = nil
}

// SetAcknowledgedAt sets the "acknowledged_at" field.
func (m *AmbientNotificationMutation) SetAcknowledgedAt(t time.Time) {
	m.acknowledged_at = &t
}

// AcknowledgedAt returns the value of the "acknowledged_at" field in the mutation.
func (m *AmbientNotificationMutation) AcknowledgedAt() (r time.Time, exists bool) {
	v := m.acknowledged_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAcknowledgedAt returns the old "acknowledged_at" field's value of the AmbientNotification entity.
// If the AmbientNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AmbientNotificationMutation) OldAcknowledgedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcknowledgedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcknowledgedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcknowledgedAt: %w", err)
	}
	return oldValue.AcknowledgedAt, nil
}

// ClearAcknowledgedAt clears the value of the "acknowledged_at" field.
func (m *AmbientNotificationMutation) ClearAcknowledgedAt() {
	m.acknowledged_at = nil
	m.clearedFields[ambientnotification.FieldAcknowledgedAt] = struct{}{}
}

// AcknowledgedAtCleared returns if the "acknowledged_at" field was cleared in this mutation.
func (m *AmbientNotificationMutation) AcknowledgedAtCleared() bool {
	_, ok := m.clearedFields[ambientnotification.FieldAcknowledgedAt]
	return ok
}

// ResetAcknowledgedAt resets all changes to the "acknowledged_at" field.
func (m *AmbientNotificationMutation) ResetAcknowledgedAt() {
	m.acknowledged_at = nil
	delete(m.clearedFields, ambientnotification.FieldAcknowledgedAt)
}

// SetResponseTimeSeconds sets the "response_time_seconds" field.
func (m *AmbientNotificationMutation) SetResponseTimeSeconds(i int) {
	m.response_time_seconds = &i
	m.addresponse_time_seconds = nil
}

// ResponseTimeSeconds returns the value of the "response_time_seconds" field in the mutation.
func (m *AmbientNotificationMutation) ResponseTimeSeconds() (r int, exists bool) {
	v := m.response_time_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseTimeSeconds returns the old "response_time_seconds" field's value of the AmbientNotification entity.
// If the AmbientNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AmbientNotificationMutation) OldResponseTimeSeconds(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseTimeSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseTimeSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseTimeSeconds: %w", err)
	}
	return oldValue.ResponseTimeSeconds, nil
}

// AddResponseTimeSeconds adds i to the "response_time_seconds" field.
func (m *AmbientNotificationMutation) AddResponseTimeSeconds(i int) {
	if m.addresponse_time_seconds != nil {
		*m.addresponse_time_seconds += i
	} else {
		m.addresponse_time_seconds = &i
	}
}

// AddedResponseTimeSeconds returns the value that was added to the "response_time_seconds" field in this mutation.
func (m *AmbientNotificationMutation) AddedResponseTimeSeconds() (r int, exists bool) {
	v := m.addresponse_time_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ClearResponseTimeSeconds clears the value of the "response_time_seconds" field.
func (m *AmbientNotificationMutation) ClearResponseTimeSeconds() {
	m.response_time_seconds = nil
	m.addresponse_time_seconds = nil
	m.clearedFields[ambientnotification.FieldResponseTimeSeconds] = struct{}{}
}

// ResponseTimeSecondsCleared returns if the "response_time_seconds" field was cleared in this mutation.
func (m *AmbientNotificationMutation) ResponseTimeSecondsCleared() bool {
	_, ok := m.clearedFields[ambientnotification.FieldResponseTimeSeconds]
	return ok
}

// ResetResponseTimeSeconds resets all changes to the "response_time_seconds" field.
func (m *AmbientNotificationMutation) ResetResponseTimeSeconds() {
	m.response_time_seconds = nil
	m.addresponse_time_seconds = nil
	delete(m.clearedFields, ambientnotification.FieldResponseTimeSeconds)
}

// SetContextSnapshot sets the "context_snapshot" field.
func (m *AmbientNotificationMutation) SetContextSnapshot(value map[string]interface{}) {
	m.context_snapshot = &value
}

// ContextSnapshot returns the value of the "context_snapshot" field in the mutation.
func (m *AmbientNotificationMutation) ContextSnapshot() (r map[string]interface{}, exists bool) {
	v := m.context_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldContextSnapshot returns the old "context_snapshot" field's value of the AmbientNotification entity.
// If the AmbientNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AmbientNotificationMutation) OldContextSnapshot(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextSnapshot: %w", err)
	}
	return oldValue.ContextSnapshot, nil
}

// ClearContextSnapshot clears the value of the "context_snapshot" field.
func (m *AmbientNotificationMutation) ClearContextSnapshot() {
	m.context_snapshot = nil
	m.clearedFields[ambientnotification.FieldContextSnapshot] = struct{}{}
}

// ContextSnapshotCleared returns if the "context_snapshot" field was cleared in this mutation.
func (m *AmbientNotificationMutation) ContextSnapshotCleared() bool {
	_, ok := m.clearedFields[ambientnotification.FieldContextSnapshot]
	return ok
}

// ResetContextSnapshot resets all changes to the "context_snapshot" field.
func (m *AmbientNotificationMutation) ResetContextSnapshot() {
	m.context_snapshot = nil
	delete(m.clearedFields, ambientnotification.FieldContextSnapshot)
}

// SetCreatedAt sets the "created_at" field.
func (m *AmbientNotificationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AmbientNotificationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AmbientNotification entity.
// If the AmbientNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AmbientNotificationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AmbientNotificationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AmbientNotificationMutation builder.
func (m *AmbientNotificationMutation) Where(ps ...predicate.AmbientNotification) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AmbientNotificationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AmbientNotificationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AmbientNotification, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AmbientNotificationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AmbientNotificationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AmbientNotification).
func (m *AmbientNotificationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AmbientNotificationMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.user_id != nil {
		fields = append(fields, ambientnotification.FieldUserID)
	}
	if m.target_medium != nil {
		fields = append(fields, ambientnotification.FieldTargetMedium)
	}
	if m.target_location != nil {
		fields = append(fields, ambientnotification.FieldTargetLocation)
	}
	if m.message != nil {
		fields = append(fields, ambientnotification.FieldMessage)
	}
	if m.priority != nil {
		fields = append(fields, ambientnotification.FieldPriority)
	}
	if m.routing_reasoning != nil {
		fields = append(fields, ambientnotification.FieldRoutingReasoning)
	}
	if m.status != nil {
		fields = append(fields, ambientnotification.FieldStatus)
	}
	if m.parent_notification_id != nil {
		fields = append(fields, ambientnotification.FieldParentNotificationID)
	}
	if m.acknowledged != nil {
		fields = append(fields, ambientnotification.FieldAcknowledged)
	}
	if m.acknowledged_at != nil {
		fields = append(fields, ambientnotification.FieldAcknowledgedAt)
	}
	if m.response_time_seconds != nil {
		fields = append(fields, ambientnotification.FieldResponseTimeSeconds)
	}
	if m.context_snapshot != nil {
		fields = append(fields, ambientnotification.FieldContextSnapshot)
	}
	if m.created_at != nil {
		fields = append(fields, ambientnotification.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AmbientNotificationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ambientnotification.FieldUserID:
		return m.UserID()
	case ambientnotification.FieldTargetMedium:
		return m.TargetMedium()
	case ambientnotification.FieldTargetLocation:
		return m.TargetLocation()
	case ambientnotification.FieldMessage:
		return m.Message()
	case ambientnotification.FieldPriority:
		return m.Priority()
	case ambientnotification.FieldRoutingReasoning:
		return m.RoutingReasoning()
	case ambientnotification.FieldStatus:
		return m.Status()
	case ambientnotification.FieldParentNotificationID:
		return m.ParentNotificationID()
	case ambientnotification.FieldAcknowledged:
		return m.Acknowledged()
	case ambientnotification.FieldAcknowledgedAt:
		return m.AcknowledgedAt()
	case ambientnotification.FieldResponseTimeSeconds:
		return m.ResponseTimeSeconds()
	case ambientnotification.FieldContextSnapshot:
		return m.ContextSnapshot()
	case ambientnotification.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AmbientNotificationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ambientnotification.FieldUserID:
		return m.OldUserID(ctx)
	case ambientnotification.FieldTargetMedium:
		return m.OldTargetMedium(ctx)
	case ambientnotification.FieldTargetLocation:
		return m.OldTargetLocation(ctx)
	case ambientnotification.FieldMessage:
		return m.OldMessage(ctx)
	case ambientnotification.FieldPriority:
		return m.OldPriority(ctx)
	case ambientnotification.FieldRoutingReasoning:
		return m.OldRoutingReasoning(ctx)
	case ambientnotification.FieldStatus:
		return m.OldStatus(ctx)
	case ambientnotification.FieldParentNotificationID:
		return m.OldParentNotificationID(ctx)
	case ambientnotification.FieldAcknowledged:
		return m.OldAcknowledged(ctx)
	case ambientnotification.FieldAcknowledgedAt:
		return m.OldAcknowledgedAt(ctx)
	case ambientnotification.FieldResponseTimeSeconds:
		return m.OldResponseTimeSeconds(ctx)
	case ambientnotification.FieldContextSnapshot:
		return m.OldContextSnapshot(ctx)
	case ambientnotification.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AmbientNotification field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AmbientNotificationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ambientnotification.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case ambientnotification.FieldTargetMedium:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetMedium(v)
		return nil
	case ambientnotification.FieldTargetLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetLocation(v)
		return nil
	case ambientnotification.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case ambientnotification.FieldPriority:
		v, ok := value.(ambientnotification.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case ambientnotification.FieldRoutingReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoutingReasoning(v)
		return nil
	case ambientnotification.FieldStatus:
		v, ok := value.(ambientnotification.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case ambientnotification.FieldParentNotificationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentNotificationID(v)
		return nil
	case ambientnotification.FieldAcknowledged:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcknowledged(v)
		return nil
	case ambientnotification.FieldAcknowledgedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcknowledgedAt(v)
		return nil
	case ambientnotification.FieldResponseTimeSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseTimeSeconds(v)
		return nil
	case ambientnotification.FieldContextSnapshot:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextSnapshot(v)
		return nil
	case ambientnotification.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AmbientNotification field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AmbientNotificationMutation) AddedFields() []string {
	var fields []string
	if m.addresponse_time_seconds != nil {
		fields = append(fields, ambientnotification.FieldResponseTimeSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AmbientNotificationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ambientnotification.FieldResponseTimeSeconds:
		return m.AddedResponseTimeSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AmbientNotificationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ambientnotification.FieldResponseTimeSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResponseTimeSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown AmbientNotification numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AmbientNotificationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ambientnotification.FieldTargetMedium) {
		fields = append(fields, ambientnotification.FieldTargetMedium)
	}
	if m.FieldCleared(ambientnotification.FieldTargetLocation) {
		fields = append(fields, ambientnotification.FieldTargetLocation)
	}
	if m.FieldCleared(ambientnotification.FieldRoutingReasoning) {
		fields = append(fields, ambientnotification.FieldRoutingReasoning)
	}
	if m.FieldCleared(ambientnotification.FieldParentNotificationID) {
		fields = append(fields, ambientnotification.FieldParentNotificationID)
	}
	if m.FieldCleared(ambientnotification.FieldAcknowledgedAt) {
		fields = append(fields, ambientnotification.FieldAcknowledgedAt)
	}
	if m.FieldCleared(ambientnotification.FieldResponseTimeSeconds) {
		fields = append(fields, ambientnotification.FieldResponseTimeSeconds)
	}
	if m.FieldCleared(ambientnotification.FieldContextSnapshot) {
		fields = append(fields, ambientnotification.FieldContextSnapshot)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AmbientNotificationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AmbientNotificationMutation) ClearField(name string) error {
	switch name {
	case ambientnotification.FieldTargetMedium:
		m.ClearTargetMedium()
		return nil
	case ambientnotification.FieldTargetLocation:
		m.ClearTargetLocation()
		return nil
	case ambientnotification.FieldRoutingReasoning:
		m.ClearRoutingReasoning()
		return nil
	case ambientnotification.FieldParentNotificationID:
		m.ClearParentNotificationID()
		return nil
	case ambientnotification.FieldAcknowledgedAt:
		m.ClearAcknowledgedAt()
		return nil
	case ambientnotification.FieldResponseTimeSeconds:
		m.ClearResponseTimeSeconds()
		return nil
	case ambientnotification.FieldContextSnapshot:
		m.ClearContextSnapshot()
		return nil
	}
	return fmt.Errorf("unknown AmbientNotification nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AmbientNotificationMutation) ResetField(name string) error {
	switch name {
	case ambientnotification.FieldUserID:
		m.ResetUserID()
		return nil
	case ambientnotification.FieldTargetMedium:
		m.ResetTargetMedium()
		return nil
	case ambientnotification.FieldTargetLocation:
		m.ResetTargetLocation()
		return nil
	case ambientnotification.FieldMessage:
		m.ResetMessage()
		return nil
	case ambientnotification.FieldPriority:
		m.ResetPriority()
		return nil
	case ambientnotification.FieldRoutingReasoning:
		m.ResetRoutingReasoning()
		return nil
	case ambientnotification.FieldStatus:
		m.ResetStatus()
		return nil
	case ambientnotification.FieldParentNotificationID:
		m.ResetParentNotificationID()
		return nil
	case ambientnotification.FieldAcknowledged:
		m.ResetAcknowledged()
		return nil
	case ambientnotification.FieldAcknowledgedAt:
		m.ResetAcknowledgedAt()
		return nil
	case ambientnotification.FieldResponseTimeSeconds:
		m.ResetResponseTimeSeconds()
		return nil
	case ambientnotification.FieldContextSnapshot:
		m.ResetContextSnapshot()
		return nil
	case ambientnotification.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AmbientNotification field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AmbientNotificationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AmbientNotificationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AmbientNotificationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AmbientNotificationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AmbientNotificationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AmbientNotificationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AmbientNotificationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AmbientNotification unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AmbientNotificationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AmbientNotification edge %s", name)
}

// ContextCacheMutation represents an operation that mutates the ContextCache nodes in the graph.
type ContextCacheMutation struct {
	config
	op            Op
	typ           string
	id            *string
	session_id    *string
	context       *string
	metadata      *map[string]interface{}
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ContextCache, error)
	predicates    []predicate.ContextCache
}

var _ ent.Mutation = (*ContextCacheMutation)(nil)

// contextcacheOption allows management of the mutation configuration using functional options.
type contextcacheOption func(*ContextCacheMutation)

// newContextCacheMutation creates new mutation for the ContextCache entity.
func newContextCacheMutation(c config, op Op, opts ...contextcacheOption) *ContextCacheMutation {
	m := &ContextCacheMutation{
		config:        c,
		op:            op,
		typ:           TypeContextCache,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContextCacheID sets the ID field of the mutation.
func withContextCacheID(id string) contextcacheOption {
	return func(m *ContextCacheMutation) {
		var (
			err   error
			once  sync.Once
			value *ContextCache
		)
		m.oldValue = func(ctx context.Context) (*ContextCache, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ContextCache.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContextCache sets the old ContextCache of the mutation.
func withContextCache(node *ContextCache) contextcacheOption {
	return func(m *ContextCacheMutation) {
		m.oldValue = func(context.Context) (*ContextCache, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContextCacheMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContextCacheMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ContextCache entities.
func (m *ContextCacheMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContextCacheMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContextCacheMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ContextCache.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ContextCacheMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ContextCacheMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ContextCache entity.
// If the ContextCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextCacheMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ContextCacheMutation) ResetSessionID() {
	m.session_id = nil
}

// SetContext sets the "context" field.
func (m *ContextCacheMutation) SetContext(s string) {
	m.context = &s
}

// Context returns the value of the "context" field in the mutation.
func (m *ContextCacheMutation) Context() (r string, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the ContextCache entity.
// If the ContextCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextCacheMutation) OldContext(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ResetContext resets all changes to the "context" field.
func (m *ContextCacheMutation) ResetContext() {
	m.context = nil
}

// SetMetadata sets the "metadata" field.
func (m *ContextCacheMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ContextCacheMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the ContextCache entity.
// If the ContextCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextCacheMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ContextCacheMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[contextcache.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ContextCacheMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[contextcache.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ContextCacheMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, contextcache.FieldMetadata)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ContextCacheMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ContextCacheMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ContextCache entity.
// If the ContextCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextCacheMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ContextCacheMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ContextCacheMutation builder.
func (m *ContextCacheMutation) Where(ps ...predicate.ContextCache) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContextCacheMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContextCacheMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ContextCache, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContextCacheMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContextCacheMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ContextCache).
func (m *ContextCacheMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContextCacheMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.session_id != nil {
		fields = append(fields, contextcache.FieldSessionID)
	}
	if m.context != nil {
		fields = append(fields, contextcache.FieldContext)
	}
	if m.metadata != nil {
		fields = append(fields, contextcache.FieldMetadata)
	}
	if m.updated_at != nil {
		fields = append(fields, contextcache.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContextCacheMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contextcache.FieldSessionID:
		return m.SessionID()
	case contextcache.FieldContext:
		return m.Context()
	case contextcache.FieldMetadata:
		return m.Metadata()
	case contextcache.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContextCacheMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contextcache.FieldSessionID:
		return m.OldSessionID(ctx)
	case contextcache.FieldContext:
		return m.OldContext(ctx)
	case contextcache.FieldMetadata:
		return m.OldMetadata(ctx)
	case contextcache.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ContextCache field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContextCacheMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contextcache.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case contextcache.FieldContext:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case contextcache.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case contextcache.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ContextCache field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContextCacheMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContextCacheMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContextCacheMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ContextCache numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContextCacheMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contextcache.FieldMetadata) {
		fields = append(fields, contextcache.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContextCacheMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContextCacheMutation) ClearField(name string) error {
	switch name {
	case contextcache.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown ContextCache nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContextCacheMutation) ResetField(name string) error {
	switch name {
	case contextcache.FieldSessionID:
		m.ResetSessionID()
		return nil
	case contextcache.FieldContext:
		m.ResetContext()
		return nil
	case contextcache.FieldMetadata:
		m.ResetMetadata()
		return nil
	case contextcache.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ContextCache field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContextCacheMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContextCacheMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContextCacheMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContextCacheMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContextCacheMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContextCacheMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContextCacheMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ContextCache unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContextCacheMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ContextCache edge %s", name)
}

// ContradictionReviewMutation represents an operation that mutates the ContradictionReview nodes in the graph.
type ContradictionReviewMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	new_fact           *string
	existing_fact_uuid *string
	existing_fact      *string
	similarity         *float64
	addsimilarity      *float64
	reason             *string
	source             *string
	context            *string
	entity_names       *[]string
	appendentity_names []string
	group_id           *string
	status             *contradictionreview.Status
	resolution         *string
	resolver           *string
	resolved_at        *time.Time
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*ContradictionReview, error)
	predicates         []predicate.ContradictionReview
}

var _ ent.Mutation = (*ContradictionReviewMutation)(nil)

// contradictionreviewOption allows management of the mutation configuration using functional options.
type contradictionreviewOption func(*ContradictionReviewMutation)

// newContradictionReviewMutation creates new mutation for the ContradictionReview entity.
func newContradictionReviewMutation(c config, op Op, opts ...contradictionreviewOption) *ContradictionReviewMutation {
	m := &ContradictionReviewMutation{
		config:        c,
		op:            op,
		typ:           TypeContradictionReview,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContradictionReviewID sets the ID field of the mutation.
func withContradictionReviewID(id string) contradictionreviewOption {
	return func(m *ContradictionReviewMutation) {
		var (
			err   error
			once  sync.Once
			value *ContradictionReview
		)
		m.oldValue = func(ctx context.Context) (*ContradictionReview, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ContradictionReview.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContradictionReview sets the old ContradictionReview of the mutation.
func withContradictionReview(node *ContradictionReview) contradictionreviewOption {
	return func(m *ContradictionReviewMutation) {
		m.oldValue = func(context.Context) (*ContradictionReview, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContradictionReviewMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContradictionReviewMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ContradictionReview entities.
func (m *ContradictionReviewMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContradictionReviewMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContradictionReviewMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ContradictionReview.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetNewFact sets the "new_fact" field.
func (m *ContradictionReviewMutation) SetNewFact(s string) {
	m.new_fact = &s
}

// NewFact returns the value of the "new_fact" field in the mutation.
func (m *ContradictionReviewMutation) NewFact() (r string, exists bool) {
	v := m.new_fact
	if v == nil {
		return
	}
	return *v, true
}

// OldNewFact returns the old "new_fact" field's value of the ContradictionReview entity.
// If the ContradictionReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContradictionReviewMutation) OldNewFact(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewFact is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewFact requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewFact: %w", err)
	}
	return oldValue.NewFact, nil
}

// ResetNewFact resets all changes to the "new_fact" field.
func (m *ContradictionReviewMutation) ResetNewFact() {
	m.new_fact = nil
}

// SetExistingFactUUID sets the "existing_fact_uuid" field.
func (m *ContradictionReviewMutation) SetExistingFactUUID(s string) {
	m.existing_fact_uuid = &s
}

// ExistingFactUUID returns the value of the "existing_fact_uuid" field in the mutation.
func (m *ContradictionReviewMutation) ExistingFactUUID() (r string, exists bool) {
	v := m.existing_fact_uuid
	if v == nil {
		return
	}
	return *v, true
}

// OldExistingFactUUID returns the old "existing_fact_uuid" field's value of the ContradictionReview entity.
// If the ContradictionReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContradictionReviewMutation) OldExistingFactUUID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExistingFactUUID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExistingFactUUID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExistingFactUUID: %w", err)
	}
	return oldValue.ExistingFactUUID, nil
}

// ResetExistingFactUUID resets all changes to the "existing_fact_uuid" field.
func (m *ContradictionReviewMutation) ResetExistingFactUUID() {
	m.existing_fact_uuid = nil
}

// SetExistingFact sets the "existing_fact" field.
func (m *ContradictionReviewMutation) SetExistingFact(s string) {
	m.existing_fact = &s
}

// ExistingFact returns the value of the "existing_fact" field in the mutation.
func (m *ContradictionReviewMutation) ExistingFact() (r string, exists bool) {
	v := m.existing_fact
	if v == nil {
		return
	}
	return *v, true
}

// OldExistingFact returns the old "existing_fact" field's value of the ContradictionReview entity.
// If the ContradictionReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContradictionReviewMutation) OldExistingFact(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExistingFact is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExistingFact requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExistingFact: %w", err)
	}
	return oldValue.ExistingFact, nil
}

// ResetExistingFact resets all changes to the "existing_fact" field.
func (m *ContradictionReviewMutation) ResetExistingFact() {
	m.existing_fact = nil
}

// SetSimilarity sets the "similarity" field.
func (m *ContradictionReviewMutation) SetSimilarity(f float64) {
	m.similarity = &f
	m.addsimilarity = nil
}

// Similarity returns the value of the "similarity" field in the mutation.
func (m *ContradictionReviewMutation) Similarity() (r float64, exists bool) {
	v := m.similarity
	if v == nil {
		return
	}
	return *v, true
}

// OldSimilarity returns the old "similarity" field's value of the ContradictionReview entity.
// If the ContradictionReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContradictionReviewMutation) OldSimilarity(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSimilarity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSimilarity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSimilarity: %w", err)
	}
	return oldValue.Similarity, nil
}

// AddSimilarity adds f to the "similarity" field.
func (m *ContradictionReviewMutation) AddSimilarity(f float64) {
	if m.addsimilarity != nil {
		*m.addsimilarity += f
	} else {
		m.addsimilarity = &f
	}
}

// AddedSimilarity returns the value that was added to the "similarity" field in this mutation.
func (m *ContradictionReviewMutation) AddedSimilarity() (r float64, exists bool) {
	v := m.addsimilarity
	if v == nil {
		return
	}
	return *v, true
}

// ResetSimilarity resets all changes to the "similarity" field.
func (m *ContradictionReviewMutation) ResetSimilarity() {
	m.similarity = nil
	m.addsimilarity = nil
}

// SetReason sets the "reason" field.
func (m *ContradictionReviewMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *ContradictionReviewMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the ContradictionReview entity.
// If the ContradictionReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContradictionReviewMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *ContradictionReviewMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[contradictionreview.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *ContradictionReviewMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[contradictionreview.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *ContradictionReviewMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, contradictionreview.FieldReason)
}

// SetSource sets the "source" field.
func (m *ContradictionReviewMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *ContradictionReviewMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the ContradictionReview entity.
// If the ContradictionReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContradictionReviewMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ClearSource clears the value of the "source" field.
func (m *ContradictionReviewMutation) ClearSource() {
	m.source = nil
	m.clearedFields[contradictionreview.FieldSource] = struct{}{}
}

// SourceCleared returns if the "source" field was cleared in this mutation.
func (m *ContradictionReviewMutation) SourceCleared() bool {
	_, ok := m.clearedFields[contradictionreview.FieldSource]
	return ok
}

// ResetSource resets all changes to the "source" field.
func (m *ContradictionReviewMutation) ResetSource() {
	m.source = nil
	delete(m.clearedFields, contradictionreview.FieldSource)
}

// SetContext sets the "context" field.
func (m *ContradictionReviewMutation) SetContext(s string) {
	m.context = &s
}

// Context returns the value of the "context" field in the mutation.
func (m *ContradictionReviewMutation) Context() (r string, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the ContradictionReview entity.
// If the ContradictionReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContradictionReviewMutation) OldContext(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *ContradictionReviewMutation) ClearContext() {
	m.context = nil
	m.clearedFields[contradictionreview.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *ContradictionReviewMutation) ContextCleared() bool {
	_, ok := m.clearedFields[contradictionreview.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *ContradictionReviewMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, contradictionreview.FieldContext)
}

// SetEntityNames sets the "entity_names" field.
func (m *ContradictionReviewMutation) SetEntityNames(s []string) {
	m.entity_names = &s
	m.appendentity_names = nil
}

// EntityNames returns the value of the "entity_names" field in the mutation.
func (m *ContradictionReviewMutation) EntityNames() (r []string, exists bool) {
	v := m.entity_names
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityNames returns the old "entity_names" field's value of the ContradictionReview entity.
// If the ContradictionReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContradictionReviewMutation) OldEntityNames(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityNames is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityNames requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityNames: %w", err)
	}
	return oldValue.EntityNames, nil
}

// AppendEntityNames adds s to the "entity_names" field.
func (m *ContradictionReviewMutation) AppendEntityNames(s []string) {
	m.appendentity_names = append(m.appendentity_names, s...)
}

// AppendedEntityNames returns the list of values that were appended to the "entity_names" field in this mutation.
func (m *ContradictionReviewMutation) AppendedEntityNames() ([]string, bool) {
	if len(m.appendentity_names) == 0 {
		return nil, false
	}
	return m.appendentity_names, true
}

// ClearEntityNames clears the value of the "entity_names" field.
func (m *ContradictionReviewMutation) ClearEntityNames() {
	m.entity_names = nil
	m.appendentity_names = nil
	m.clearedFields[contradictionreview.FieldEntityNames] = struct{}{}
}

// EntityNamesCleared returns if the "entity_names" field was cleared in this mutation.
func (m *ContradictionReviewMutation) EntityNamesCleared() bool {
	_, ok := m.clearedFields[contradictionreview.FieldEntityNames]
	return ok
}

// ResetEntityNames resets all changes to the "entity_names" field.
func (m *ContradictionReviewMutation) ResetEntityNames() {
	m.entity_names = nil
	m.appendentity_names = nil
	delete(m.clearedFields, contradictionreview.FieldEntityNames)
}

// SetGroupID sets the "group_id" field.
func (m *ContradictionReviewMutation) SetGroupID(s string) {
	m.group_id = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *ContradictionReviewMutation) GroupID() (r string, exists bool) {
	v := m.group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the ContradictionReview entity.
// If the ContradictionReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContradictionReviewMutation) OldGroupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ClearGroupID clears the value of the "group_id" field.
func (m *ContradictionReviewMutation) ClearGroupID() {
	m.group_id = nil
	m.clearedFields[contradictionreview.FieldGroupID] = struct{}{}
}

// GroupIDCleared returns if the "group_id" field was cleared in this mutation.
func (m *ContradictionReviewMutation) GroupIDCleared() bool {
	_, ok := m.clearedFields[contradictionreview.FieldGroupID]
	return ok
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *ContradictionReviewMutation) ResetGroupID() {
	m.group_id = nil
	delete(m.clearedFields, contradictionreview.FieldGroupID)
}

// SetStatus sets the "status" field.
func (m *ContradictionReviewMutation) SetStatus(c contradictionreview.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *ContradictionReviewMutation) Status() (r contradictionreview.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ContradictionReview entity.
// If the ContradictionReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContradictionReviewMutation) OldStatus(ctx context.Context) (v contradictionreview.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ContradictionReviewMutation) ResetStatus() {
	m.status = nil
}

// SetResolution sets the "resolution" field.
func (m *ContradictionReviewMutation) SetResolution(s string) {
	m.resolution = &s
}

// Resolution returns the value of the "resolution" field in the mutation.
func (m *ContradictionReviewMutation) Resolution() (r string, exists bool) {
	v := m.resolution
	if v == nil {
		return
	}
	return *v, true
}

// OldResolution returns the old "resolution" field's value of the ContradictionReview entity.
// If the ContradictionReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContradictionReviewMutation) OldResolution(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolution is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolution requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolution: %w", err)
	}
	return oldValue.Resolution, nil
}

// ClearResolution clears the value of the "resolution" field.
func (m *ContradictionReviewMutation) ClearResolution() {
	m.resolution = nil
	m.clearedFields[contradictionreview.FieldResolution] = struct{}{}
}

// ResolutionCleared returns if the "resolution" field was cleared in this mutation.
func (m *ContradictionReviewMutation) ResolutionCleared() bool {
	_, ok := m.clearedFields[contradictionreview.FieldResolution]
	return ok
}

// ResetResolution resets all changes to the "resolution" field.
func (m *ContradictionReviewMutation) ResetResolution() {
	m.resolution = nil
	delete(m.clearedFields, contradictionreview.FieldResolution)
}

// SetResolver sets the "resolver" field.
func (m *ContradictionReviewMutation) SetResolver(s string) {
	m.resolver = &s
}

// Resolver returns the value of the "resolver" field in the mutation.
func (m *ContradictionReviewMutation) Resolver() (r string, exists bool) {
	v := m.resolver
	if v == nil {
		return
	}
	return *v, true
}

// OldResolver returns the old "resolver" field's value of the ContradictionReview entity.
// If the ContradictionReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContradictionReviewMutation) OldResolver(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolver is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolver requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolver: %w", err)
	}
	return oldValue.Resolver, nil
}

// ClearResolver clears the value of the "resolver" field.
func (m *ContradictionReviewMutation) ClearResolver() {
	m.resolver = nil
	m.clearedFields[contradictionreview.FieldResolver] = struct{}{}
}

// ResolverCleared returns if the "resolver" field was cleared in this mutation.
func (m *ContradictionReviewMutation) ResolverCleared() bool {
	_, ok := m.clearedFields[contradictionreview.FieldResolver]
	return ok
}

// ResetResolver resets all changes to the "resolver" field.
func (m *ContradictionReviewMutation) ResetResolver() {
	m.resolver = nil
	delete(m.clearedFields, contradictionreview.FieldResolver)
}

// SetResolvedAt sets the "resolved_at" field.
func (m *ContradictionReviewMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *ContradictionReviewMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the ContradictionReview entity.
// If the ContradictionReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContradictionReviewMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *ContradictionReviewMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[contradictionreview.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *ContradictionReviewMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[contradictionreview.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *ContradictionReviewMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, contradictionreview.FieldResolvedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ContradictionReviewMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContradictionReviewMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ContradictionReview entity.
// If the ContradictionReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContradictionReviewMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContradictionReviewMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ContradictionReviewMutation builder.
func (m *ContradictionReviewMutation) Where(ps ...predicate.ContradictionReview) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContradictionReviewMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContradictionReviewMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ContradictionReview, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContradictionReviewMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContradictionReviewMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ContradictionReview).
func (m *ContradictionReviewMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContradictionReviewMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.new_fact != nil {
		fields = append(fields, contradictionreview.FieldNewFact)
	}
	if m.existing_fact_uuid != nil {
		fields = append(fields, contradictionreview.FieldExistingFactUUID)
	}
	if m.existing_fact != nil {
		fields = append(fields, contradictionreview.FieldExistingFact)
	}
	if m.similarity != nil {
		fields = append(fields, contradictionreview.FieldSimilarity)
	}
	if m.reason != nil {
		fields = append(fields, contradictionreview.FieldReason)
	}
	if m.source != nil {
		fields = append(fields, contradictionreview.FieldSource)
	}
	if m.context != nil {
		fields = append(fields, contradictionreview.FieldContext)
	}
	if m.entity_names != nil {
		fields = append(fields, contradictionreview.FieldEntityNames)
	}
	if m.group_id != nil {
		fields = append(fields, contradictionreview.FieldGroupID)
	}
	if m.status != nil {
		fields = append(fields, contradictionreview.FieldStatus)
	}
	if m.resolution != nil {
		fields = append(fields, contradictionreview.FieldResolution)
	}
	if m.resolver != nil {
		fields = append(fields, contradictionreview.FieldResolver)
	}
	if m.resolved_at != nil {
		fields = append(fields, contradictionreview.FieldResolvedAt)
	}
	if m.created_at != nil {
		fields = append(fields, contradictionreview.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContradictionReviewMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contradictionreview.FieldNewFact:
		return m.NewFact()
	case contradictionreview.FieldExistingFactUUID:
		return m.ExistingFactUUID()
	case contradictionreview.FieldExistingFact:
		return m.ExistingFact()
	case contradictionreview.FieldSimilarity:
		return m.Similarity()
	case contradictionreview.FieldReason:
		return m.Reason()
	case contradictionreview.FieldSource:
		return m.Source()
	case contradictionreview.FieldContext:
		return m.Context()
	case contradictionreview.FieldEntityNames:
		return m.EntityNames()
	case contradictionreview.FieldGroupID:
		return m.GroupID()
	case contradictionreview.FieldStatus:
		return m.Status()
	case contradictionreview.FieldResolution:
		return m.Resolution()
	case contradictionreview.FieldResolver:
		return m.Resolver()
	case contradictionreview.FieldResolvedAt:
		return m.ResolvedAt()
	case contradictionreview.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContradictionReviewMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contradictionreview.FieldNewFact:
		return m.OldNewFact(ctx)
	case contradictionreview.FieldExistingFactUUID:
		return m.OldExistingFactUUID(ctx)
	case contradictionreview.FieldExistingFact:
		return m.OldExistingFact(ctx)
	case contradictionreview.FieldSimilarity:
		return m.OldSimilarity(ctx)
	case contradictionreview.FieldReason:
		return m.OldReason(ctx)
	case contradictionreview.FieldSource:
		return m.OldSource(ctx)
	case contradictionreview.FieldContext:
		return m.OldContext(ctx)
	case contradictionreview.FieldEntityNames:
		return m.OldEntityNames(ctx)
	case contradictionreview.FieldGroupID:
		return m.OldGroupID(ctx)
	case contradictionreview.FieldStatus:
		return m.OldStatus(ctx)
	case contradictionreview.FieldResolution:
		return m.OldResolution(ctx)
	case contradictionreview.FieldResolver:
		return m.OldResolver(ctx)
	case contradictionreview.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	case contradictionreview.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ContradictionReview field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContradictionReviewMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contradictionreview.FieldNewFact:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewFact(v)
		return nil
	case contradictionreview.FieldExistingFactUUID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExistingFactUUID(v)
		return nil
	case contradictionreview.FieldExistingFact:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExistingFact(v)
		return nil
	case contradictionreview.FieldSimilarity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSimilarity(v)
		return nil
	case contradictionreview.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case contradictionreview.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case contradictionreview.FieldContext:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case contradictionreview.FieldEntityNames:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityNames(v)
		return nil
	case contradictionreview.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case contradictionreview.FieldStatus:
		v, ok := value.(contradictionreview.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case contradictionreview.FieldResolution:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolution(v)
		return nil
	case contradictionreview.FieldResolver:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolver(v)
		return nil
	case contradictionreview.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	case contradictionreview.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ContradictionReview field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContradictionReviewMutation) AddedFields() []string {
	var fields []string
	if m.addsimilarity != nil {
		fields = append(fields, contradictionreview.FieldSimilarity)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContradictionReviewMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case contradictionreview.FieldSimilarity:
		return m.AddedSimilarity()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContradictionReviewMutation) AddField(name string, value ent.Value) error {
	switch name {
	case contradictionreview.FieldSimilarity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSimilarity(v)
		return nil
	}
	return fmt.Errorf("unknown ContradictionReview numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContradictionReviewMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contradictionreview.FieldReason) {
		fields = append(fields, contradictionreview.FieldReason)
	}
	if m.FieldCleared(contradictionreview.FieldSource) {
		fields = append(fields, contradictionreview.FieldSource)
	}
	if m.FieldCleared(contradictionreview.FieldContext) {
		fields = append(fields, contradictionreview.FieldContext)
	}
	if m.FieldCleared(contradictionreview.FieldEntityNames) {
		fields = append(fields, contradictionreview.FieldEntityNames)
	}
	if m.FieldCleared(contradictionreview.FieldGroupID) {
		fields = append(fields, contradictionreview.FieldGroupID)
	}
	if m.FieldCleared(contradictionreview.FieldResolution) {
		fields = append(fields, contradictionreview.FieldResolution)
	}
	if m.FieldCleared(contradictionreview.FieldResolver) {
		fields = append(fields, contradictionreview.FieldResolver)
	}
	if m.FieldCleared(contradictionreview.FieldResolvedAt) {
		fields = append(fields, contradictionreview.FieldResolvedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContradictionReviewMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContradictionReviewMutation) ClearField(name string) error {
	switch name {
	case contradictionreview.FieldReason:
		m.ClearReason()
		return nil
	case contradictionreview.FieldSource:
		m.ClearSource()
		return nil
	case contradictionreview.FieldContext:
		m.ClearContext()
		return nil
	case contradictionreview.FieldEntityNames:
		m.ClearEntityNames()
		return nil
	case contradictionreview.FieldGroupID:
		m.ClearGroupID()
		return nil
	case contradictionreview.FieldResolution:
		m.ClearResolution()
		return nil
	case contradictionreview.FieldResolver:
		m.ClearResolver()
		return nil
	case contradictionreview.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown ContradictionReview nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContradictionReviewMutation) ResetField(name string) error {
	switch name {
	case contradictionreview.FieldNewFact:
		m.ResetNewFact()
		return nil
	case contradictionreview.FieldExistingFactUUID:
		m.ResetExistingFactUUID()
		return nil
	case contradictionreview.FieldExistingFact:
		m.ResetExistingFact()
		return nil
	case contradictionreview.FieldSimilarity:
		m.ResetSimilarity()
		return nil
	case contradictionreview.FieldReason:
		m.ResetReason()
		return nil
	case contradictionreview.FieldSource:
		m.ResetSource()
		return nil
	case contradictionreview.FieldContext:
		m.ResetContext()
		return nil
	case contradictionreview.FieldEntityNames:
		m.ResetEntityNames()
		return nil
	case contradictionreview.FieldGroupID:
		m.ResetGroupID()
		return nil
	case contradictionreview.FieldStatus:
		m.ResetStatus()
		return nil
	case contradictionreview.FieldResolution:
		m.ResetResolution()
		return nil
	case contradictionreview.FieldResolver:
		m.ResetResolver()
		return nil
	case contradictionreview.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	case contradictionreview.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ContradictionReview field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContradictionReviewMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContradictionReviewMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContradictionReviewMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContradictionReviewMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContradictionReviewMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContradictionReviewMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContradictionReviewMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ContradictionReview unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContradictionReviewMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ContradictionReview edge %s", name)
}

// ConversationMutation represents an operation that mutates the Conversation nodes in the graph.
type ConversationMutation struct {
	config
	op               Op
	typ              string
	id               *string
	session_id       *string
	role             *conversation.Role
	prompt           *string
	created_at       *time.Time
	medium           *string
	user_id          *string
	latency_ms       *int
	addlatency_ms    *int
	tool_names       *[]string
	appendtool_names []string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Conversation, error)
	predicates       []predicate.Conversation
}

var _ ent.Mutation = (*ConversationMutation)(nil)

// conversationOption allows management of the mutation configuration using functional options.
type conversationOption func(*ConversationMutation)

// newConversationMutation creates new mutation for the Conversation entity.
func newConversationMutation(c config, op Op, opts ...conversationOption) *ConversationMutation {
	m := &ConversationMutation{
		config:        c,
		op:            op,
		typ:           TypeConversation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConversationID sets the ID field of the mutation.
func withConversationID(id string) conversationOption {
	return func(m *ConversationMutation) {
		var (
			err   error
			once  sync.Once
			value *Conversation
		)
		m.oldValue = func(ctx context.Context) (*Conversation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Conversation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConversation sets the old Conversation of the mutation.
func withConversation(node *Conversation) conversationOption {
	return func(m *ConversationMutation) {
		m.oldValue = func(context.Context) (*Conversation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConversationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConversationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Conversation entities.
func (m *ConversationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConversationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConversationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Conversation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ConversationMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ConversationMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ConversationMutation) ResetSessionID() {
	m.session_id = nil
}

// SetRole sets the "role" field.
func (m *ConversationMutation) SetRole(c conversation.Role) {
	m.role = &c
}

// Role returns the value of the "role" field in the mutation.
func (m *ConversationMutation) Role() (r conversation.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldRole(ctx context.Context) (v conversation.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *ConversationMutation) ResetRole() {
	m.role = nil
}

// SetPrompt sets the "prompt" field.
func (m *ConversationMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *ConversationMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *ConversationMutation) ResetPrompt() {
	m.prompt = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ConversationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConversationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConversationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetMedium sets the "medium" field.
func (m *ConversationMutation) SetMedium(s string) {
	m.medium = &s
}

// Medium returns the value of the "medium" field in the mutation.
func (m *ConversationMutation) Medium() (r string, exists bool) {
	v := m.medium
	if v == nil {
		return
	}
	return *v, true
}

// OldMedium returns the old "medium" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldMedium(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMedium is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMedium requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMedium: %w", err)
	}
	return oldValue.Medium, nil
}

// ClearMedium clears the value of the "medium" field.
func (m *ConversationMutation) ClearMedium() {
	m.medium = nil
	m.clearedFields[conversation.FieldMedium] = struct{}{}
}

// MediumCleared returns if the "medium" field was cleared in this mutation.
func (m *ConversationMutation) MediumCleared() bool {
	_, ok := m.clearedFields[conversation.FieldMedium]
	return ok
}

// ResetMedium resets all changes to the "medium" field.
func (m *ConversationMutation) ResetMedium() {
	m.medium = nil
	delete(m.clearedFields, conversation.FieldMedium)
}

// SetUserID sets the "user_id" field.
func (m *ConversationMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ConversationMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *ConversationMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[conversation.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *ConversationMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[conversation.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ConversationMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, conversation.FieldUserID)
}

// SetLatencyMs sets the "latency_ms" field.
func (m *ConversationMutation) SetLatencyMs(i int) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *ConversationMutation) LatencyMs() (r int, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldLatencyMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *ConversationMutation) AddLatencyMs(i int) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *ConversationMutation) AddedLatencyMs() (r int, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearLatencyMs clears the value of the "latency_ms" field.
func (m *ConversationMutation) ClearLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
	m.clearedFields[conversation.FieldLatencyMs] = struct{}{}
}

// LatencyMsCleared returns if the "latency_ms" field was cleared in this mutation.
func (m *ConversationMutation) LatencyMsCleared() bool {
	_, ok := m.clearedFields[conversation.FieldLatencyMs]
	return ok
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *ConversationMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
	delete(m.clearedFields, conversation.FieldLatencyMs)
}

// SetToolNames sets the "tool_names" field.
func (m *ConversationMutation) SetToolNames(s []string) {
	m.tool_names = &s
	m.appendtool_names = nil
}

// ToolNames returns the value of the "tool_names" field in the mutation.
func (m *ConversationMutation) ToolNames() (r []string, exists bool) {
	v := m.tool_names
	if v == nil {
		return
	}
	return *v, true
}

// OldToolNames returns the old "tool_names" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldToolNames(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolNames is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolNames requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolNames: %w", err)
	}
	return oldValue.ToolNames, nil
}

// AppendToolNames adds s to the "tool_names" field.
func (m *ConversationMutation) AppendToolNames(s []string) {
	m.appendtool_names = append(m.appendtool_names, s...)
}

// AppendedToolNames returns the list of values that were appended to the "tool_names" field in this mutation.
func (m *ConversationMutation) AppendedToolNames() ([]string, bool) {
	if len(m.appendtool_names) == 0 {
		return nil, false
	}
	return m.appendtool_names, true
}

// ClearToolNames clears the value of the "tool_names" field.
func (m *ConversationMutation) ClearToolNames() {
	m.tool_names = nil
	m.appendtool_names = nil
	m.clearedFields[conversation.FieldToolNames] = struct{}{}
}

// ToolNamesCleared returns if the "tool_names" field was cleared in this mutation.
func (m *ConversationMutation) ToolNamesCleared() bool {
	_, ok := m.clearedFields[conversation.FieldToolNames]
	return ok
}

// ResetToolNames resets all changes to the "tool_names" field.
func (m *ConversationMutation) ResetToolNames() {
	m.tool_names = nil
	m.appendtool_names = nil
	delete(m.clearedFields, conversation.FieldToolNames)
}

// Where appends a list predicates to the ConversationMutation builder.
func (m *ConversationMutation) Where(ps ...predicate.Conversation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConversationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConversationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Conversation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConversationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConversationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Conversation).
func (m *ConversationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConversationMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.session_id != nil {
		fields = append(fields, conversation.FieldSessionID)
	}
	if m.role != nil {
		fields = append(fields, conversation.FieldRole)
	}
	if m.prompt != nil {
		fields = append(fields, conversation.FieldPrompt)
	}
	if m.created_at != nil {
		fields = append(fields, conversation.FieldCreatedAt)
	}
	if m.medium != nil {
		fields = append(fields, conversation.FieldMedium)
	}
	if m.user_id != nil {
		fields = append(fields, conversation.FieldUserID)
	}
	if m.latency_ms != nil {
		fields = append(fields, conversation.FieldLatencyMs)
	}
	if m.tool_names != nil {
		fields = append(fields, conversation.FieldToolNames)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConversationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conversation.FieldSessionID:
		return m.SessionID()
	case conversation.FieldRole:
		return m.Role()
	case conversation.FieldPrompt:
		return m.Prompt()
	case conversation.FieldCreatedAt:
		return m.CreatedAt()
	case conversation.FieldMedium:
		return m.Medium()
	case conversation.FieldUserID:
		return m.UserID()
	case conversation.FieldLatencyMs:
		return m.LatencyMs()
	case conversation.FieldToolNames:
		return m.ToolNames()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConversationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conversation.FieldSessionID:
		return m.OldSessionID(ctx)
	case conversation.FieldRole:
		return m.OldRole(ctx)
	case conversation.FieldPrompt:
		return m.OldPrompt(ctx)
	case conversation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case conversation.FieldMedium:
		return m.OldMedium(ctx)
	case conversation.FieldUserID:
		return m.OldUserID(ctx)
	case conversation.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case conversation.FieldToolNames:
		return m.OldToolNames(ctx)
	}
	return nil, fmt.Errorf("unknown Conversation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conversation.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case conversation.FieldRole:
		v, ok := value.(conversation.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case conversation.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case conversation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case conversation.FieldMedium:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMedium(v)
		return nil
	case conversation.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case conversation.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case conversation.FieldToolNames:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolNames(v)
		return nil
	}
	return fmt.Errorf("unknown Conversation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConversationMutation) AddedFields() []string {
	var fields []string
	if m.addlatency_ms != nil {
		fields = append(fields, conversation.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConversationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case conversation.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case conversation.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown Conversation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConversationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conversation.FieldMedium) {
		fields = append(fields, conversation.FieldMedium)
	}
	if m.FieldCleared(conversation.FieldUserID) {
		fields = append(fields, conversation.FieldUserID)
	}
	if m.FieldCleared(conversation.FieldLatencyMs) {
		fields = append(fields, conversation.FieldLatencyMs)
	}
	if m.FieldCleared(conversation.FieldToolNames) {
		fields = append(fields, conversation.FieldToolNames)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConversationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConversationMutation) ClearField(name string) error {
	switch name {
	case conversation.FieldMedium:
		m.ClearMedium()
		return nil
	case conversation.FieldUserID:
		m.ClearUserID()
		return nil
	case conversation.FieldLatencyMs:
		m.ClearLatencyMs()
		return nil
	case conversation.FieldToolNames:
		m.ClearToolNames()
		return nil
	}
	return fmt.Errorf("unknown Conversation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConversationMutation) ResetField(name string) error {
	switch name {
	case conversation.FieldSessionID:
		m.ResetSessionID()
		return nil
	case conversation.FieldRole:
		m.ResetRole()
		return nil
	case conversation.FieldPrompt:
		m.ResetPrompt()
		return nil
	case conversation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case conversation.FieldMedium:
		m.ResetMedium()
		return nil
	case conversation.FieldUserID:
		m.ResetUserID()
		return nil
	case conversation.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case conversation.FieldToolNames:
		m.ResetToolNames()
		return nil
	}
	return fmt.Errorf("unknown Conversation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConversationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConversationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConversationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConversationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConversationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConversationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConversationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Conversation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConversationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Conversation edge %s", name)
}

// ConversationBlockMutation represents an operation that mutates the ConversationBlock nodes in the graph.
type ConversationBlockMutation struct {
	config
	op              Op
	typ             string
	id              *string
	conversation_id *string
	ordinal         *int
	addordinal      *int
	kind            *conversationblock.Kind
	text            *string
	tool_name       *string
	tool_use_id     *string
	tool_input      *map[string]interface{}
	tool_result     *map[string]interface{}
	embedding       *[]float64
	appendembedding []float64
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*ConversationBlock, error)
	predicates      []predicate.ConversationBlock
}

var _ ent.Mutation = (*ConversationBlockMutation)(nil)

// conversationblockOption allows management of the mutation configuration using functional options.
type conversationblockOption func(*ConversationBlockMutation)

// newConversationBlockMutation creates new mutation for the ConversationBlock entity.
func newConversationBlockMutation(c config, op Op, opts ...conversationblockOption) *ConversationBlockMutation {
	m := &ConversationBlockMutation{
		config:        c,
		op:            op,
		typ:           TypeConversationBlock,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConversationBlockID sets the ID field of the mutation.
func withConversationBlockID(id string) conversationblockOption {
	return func(m *ConversationBlockMutation) {
		var (
			err   error
			once  sync.Once
			value *ConversationBlock
		)
		m.oldValue = func(ctx context.Context) (*ConversationBlock, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConversationBlock.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConversationBlock sets the old ConversationBlock of the mutation.
func withConversationBlock(node *ConversationBlock) conversationblockOption {
	return func(m *ConversationBlockMutation) {
		m.oldValue = func(context.Context) (*ConversationBlock, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConversationBlockMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConversationBlockMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ConversationBlock entities.
func (m *ConversationBlockMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConversationBlockMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConversationBlockMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConversationBlock.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConversationID sets the "conversation_id" field.
func (m *ConversationBlockMutation) SetConversationID(s string) {
	m.conversation_id = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *ConversationBlockMutation) ConversationID() (r string, exists bool) {
	v := m.conversation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the ConversationBlock entity.
// If the ConversationBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationBlockMutation) OldConversationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *ConversationBlockMutation) ResetConversationID() {
	m.conversation_id = nil
}

// SetOrdinal sets the "ordinal" field.
func (m *ConversationBlockMutation) SetOrdinal(i int) {
	m.ordinal = &i
	m.addordinal = nil
}

// Ordinal returns the value of the "ordinal" field in the mutation.
func (m *ConversationBlockMutation) Ordinal() (r int, exists bool) {
	v := m.ordinal
	if v == nil {
		return
	}
	return *v, true
}

// OldOrdinal returns the old "ordinal" field's value of the ConversationBlock entity.
// If the ConversationBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationBlockMutation) OldOrdinal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrdinal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrdinal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrdinal: %w", err)
	}
	return oldValue.Ordinal, nil
}

// AddOrdinal adds i to the "ordinal" field.
func (m *ConversationBlockMutation) AddOrdinal(i int) {
	if m.addordinal != nil {
		*m.addordinal += i
	} else {
		m.addordinal = &i
	}
}

// AddedOrdinal returns the value that was added to the "ordinal" field in this mutation.
func (m *ConversationBlockMutation) AddedOrdinal() (r int, exists bool) {
	v := m.addordinal
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrdinal resets all changes to the "ordinal" field.
func (m *ConversationBlockMutation) ResetOrdinal() {
	m.ordinal = nil
	m.addordinal = nil
}

// SetKind sets the "kind" field.
func (m *ConversationBlockMutation) SetKind(c conversationblock.Kind) {
	m.kind = &c
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ConversationBlockMutation) Kind() (r conversationblock.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the ConversationBlock entity.
// If the ConversationBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationBlockMutation) OldKind(ctx context.Context) (v conversationblock.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ConversationBlockMutation) ResetKind() {
	m.kind = nil
}

// SetText sets the "text" field.
func (m *ConversationBlockMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *ConversationBlockMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the ConversationBlock entity.
// If the ConversationBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationBlockMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ClearText clears the value of the "text" field.
func (m *ConversationBlockMutation) ClearText() {
	m.text = nil
	m.clearedFields[conversationblock.FieldText] = struct{}{}
}

// TextCleared returns if the "text" field was cleared in this mutation.
func (m *ConversationBlockMutation) TextCleared() bool {
	_, ok := m.clearedFields[conversationblock.FieldText]
	return ok
}

// ResetText resets all changes to the "text" field.
func (m *ConversationBlockMutation) ResetText() {
	m.text = nil
	delete(m.clearedFields, conversationblock.FieldText)
}

// SetToolName sets the "tool_name" field.
func (m *ConversationBlockMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *ConversationBlockMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the ConversationBlock entity.
// If the ConversationBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationBlockMutation) OldToolName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ClearToolName clears the value of the "tool_name" field.
func (m *ConversationBlockMutation) ClearToolName() {
	m.tool_name = nil
	m.clearedFields[conversationblock.FieldToolName] = struct{}{}
}

// ToolNameCleared returns if the "tool_name" field was cleared in this mutation.
func (m *ConversationBlockMutation) ToolNameCleared() bool {
	_, ok := m.clearedFields[conversationblock.FieldToolName]
	return ok
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *ConversationBlockMutation) ResetToolName() {
	m.tool_name = nil
	delete(m.clearedFields, conversationblock.FieldToolName)
}

// SetToolUseID sets the "tool_use_id" field.
func (m *ConversationBlockMutation) SetToolUseID(s string) {
	m.tool_use_id = &s
}

// ToolUseID returns the value of the "tool_use_id" field in the mutation.
func (m *ConversationBlockMutation) ToolUseID() (r string, exists bool) {
	v := m.tool_use_id
	if v == nil {
		return
	}
	return *v, true
}

// OldToolUseID returns the old "tool_use_id" field's value of the ConversationBlock entity.
// If the ConversationBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationBlockMutation) OldToolUseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolUseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolUseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolUseID: %w", err)
	}
	return oldValue.ToolUseID, nil
}

// ClearToolUseID clears the value of the "tool_use_id" field.
func (m *ConversationBlockMutation) ClearToolUseID() {
	m.tool_use_id = nil
	m.clearedFields[conversationblock.FieldToolUseID] = struct{}{}
}

// ToolUseIDCleared returns if the "tool_use_id" field was cleared in this mutation.
func (m *ConversationBlockMutation) ToolUseIDCleared() bool {
	_, ok := m.clearedFields[conversationblock.FieldToolUseID]
	return ok
}

// ResetToolUseID resets all changes to the "tool_use_id" field.
func (m *ConversationBlockMutation) ResetToolUseID() {
	m.tool_use_id = nil
	delete(m.clearedFields, conversationblock.FieldToolUseID)
}

// SetToolInput sets the "tool_input" field.
func (m *ConversationBlockMutation) SetToolInput(value map[string]interface{}) {
	m.tool_input = &value
}

// ToolInput returns the value of the "tool_input" field in the mutation.
func (m *ConversationBlockMutation) ToolInput() (r map[string]interface{}, exists bool) {
	v := m.tool_input
	if v == nil {
		return
	}
	return *v, true
}

// OldToolInput returns the old "tool_input" field's value of the ConversationBlock entity.
// If the ConversationBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationBlockMutation) OldToolInput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolInput: %w", err)
	}
	return oldValue.ToolInput, nil
}

// ClearToolInput clears the value of the "tool_input" field.
func (m *ConversationBlockMutation) ClearToolInput() {
	m.tool_input = nil
	m.clearedFields[conversationblock.FieldToolInput] = struct{}{}
}

// ToolInputCleared returns if the "tool_input" field was cleared in this mutation.
func (m *ConversationBlockMutation) ToolInputCleared() bool {
	_, ok := m.clearedFields[conversationblock.FieldToolInput]
	return ok
}

// ResetToolInput resets all changes to the "tool_input" field.
func (m *ConversationBlockMutation) ResetToolInput() {
	m.tool_input = nil
	delete(m.clearedFields, conversationblock.FieldToolInput)
}

// SetToolResult sets the "tool_result" field.
func (m *ConversationBlockMutation) SetToolResult(value map[string]interface{}) {
	m.tool_result = &value
}

// ToolResult returns the value of the "tool_result" field in the mutation.
func (m *ConversationBlockMutation) ToolResult() (r map[string]interface{}, exists bool) {
	v := m.tool_result
	if v == nil {
		return
	}
	return *v, true
}

// OldToolResult returns the old "tool_result" field's value of the ConversationBlock entity.
// If the ConversationBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationBlockMutation) OldToolResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolResult: %w", err)
	}
	return oldValue.ToolResult, nil
}

// ClearToolResult clears the value of the "tool_result" field.
func (m *ConversationBlockMutation) ClearToolResult() {
	m.tool_result = nil
	m.clearedFields[conversationblock.FieldToolResult] = struct{}{}
}

// ToolResultCleared returns if the "tool_result" field was cleared in this mutation.
func (m *ConversationBlockMutation) ToolResultCleared() bool {
	_, ok := m.clearedFields[conversationblock.FieldToolResult]
	return ok
}

// ResetToolResult resets all changes to the "tool_result" field.
func (m *ConversationBlockMutation) ResetToolResult() {
	m.tool_result = nil
	delete(m.clearedFields, conversationblock.FieldToolResult)
}

// SetEmbedding sets the "embedding" field.
func (m *ConversationBlockMutation) SetEmbedding(f []float64) {
	m.embedding = &f
	m.appendembedding = nil
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *ConversationBlockMutation) Embedding() (r []float64, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the ConversationBlock entity.
// If the ConversationBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationBlockMutation) OldEmbedding(ctx context.Context) (v []float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// AppendEmbedding adds f to the "embedding" field.
func (m *ConversationBlockMutation) AppendEmbedding(f []float64) {
	m.appendembedding = append(m.appendembedding, f...)
}

// AppendedEmbedding returns the list of values that were appended to the "embedding" field in this mutation.
func (m *ConversationBlockMutation) AppendedEmbedding() ([]float64, bool) {
	if len(m.appendembedding) == 0 {
		return nil, false
	}
	return m.appendembedding, true
}

// ClearEmbedding clears the value of the "embedding" field.
func (m *ConversationBlockMutation) ClearEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
	m.clearedFields[conversationblock.FieldEmbedding] = struct{}{}
}

// EmbeddingCleared returns if the "embedding" field was cleared in this mutation.
func (m *ConversationBlockMutation) EmbeddingCleared() bool {
	_, ok := m.clearedFields[conversationblock.FieldEmbedding]
	return ok
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *ConversationBlockMutation) ResetEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
	delete(m.clearedFields, conversationblock.FieldEmbedding)
}

// Where appends a list predicates to the ConversationBlockMutation builder.
func (m *ConversationBlockMutation) Where(ps ...predicate.ConversationBlock) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConversationBlockMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConversationBlockMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConversationBlock, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConversationBlockMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConversationBlockMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConversationBlock).
func (m *ConversationBlockMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConversationBlockMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.conversation_id != nil {
		fields = append(fields, conversationblock.FieldConversationID)
	}
	if m.ordinal != nil {
		fields = append(fields, conversationblock.FieldOrdinal)
	}
	if m.kind != nil {
		fields = append(fields, conversationblock.FieldKind)
	}
	if m.text != nil {
		fields = append(fields, conversationblock.FieldText)
	}
	if m.tool_name != nil {
		fields = append(fields, conversationblock.FieldToolName)
	}
	if m.tool_use_id != nil {
		fields = append(fields, conversationblock.FieldToolUseID)
	}
	if m.tool_input != nil {
		fields = append(fields, conversationblock.FieldToolInput)
	}
	if m.tool_result != nil {
		fields = append(fields, conversationblock.FieldToolResult)
	}
	if m.embedding != nil {
		fields = append(fields, conversationblock.FieldEmbedding)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConversationBlockMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conversationblock.FieldConversationID:
		return m.ConversationID()
	case conversationblock.FieldOrdinal:
		return m.Ordinal()
	case conversationblock.FieldKind:
		return m.Kind()
	case conversationblock.FieldText:
		return m.Text()
	case conversationblock.FieldToolName:
		return m.ToolName()
	case conversationblock.FieldToolUseID:
		return m.ToolUseID()
	case conversationblock.FieldToolInput:
		return m.ToolInput()
	case conversationblock.FieldToolResult:
		return m.ToolResult()
	case conversationblock.FieldEmbedding:
		return m.Embedding()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConversationBlockMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conversationblock.FieldConversationID:
		return m.OldConversationID(ctx)
	case conversationblock.FieldOrdinal:
		return m.OldOrdinal(ctx)
	case conversationblock.FieldKind:
		return m.OldKind(ctx)
	case conversationblock.FieldText:
		return m.OldText(ctx)
	case conversationblock.FieldToolName:
		return m.OldToolName(ctx)
	case conversationblock.FieldToolUseID:
		return m.OldToolUseID(ctx)
	case conversationblock.FieldToolInput:
		return m.OldToolInput(ctx)
	case conversationblock.FieldToolResult:
		return m.OldToolResult(ctx)
	case conversationblock.FieldEmbedding:
		return m.OldEmbedding(ctx)
	}
	return nil, fmt.Errorf("unknown ConversationBlock field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationBlockMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conversationblock.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case conversationblock.FieldOrdinal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrdinal(v)
		return nil
	case conversationblock.FieldKind:
		v, ok := value.(conversationblock.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case conversationblock.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case conversationblock.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case conversationblock.FieldToolUseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolUseID(v)
		return nil
	case conversationblock.FieldToolInput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolInput(v)
		return nil
	case conversationblock.FieldToolResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolResult(v)
		return nil
	case conversationblock.FieldEmbedding:
		v, ok := value.([]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	}
	return fmt.Errorf("unknown ConversationBlock field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConversationBlockMutation) AddedFields() []string {
	var fields []string
	if m.addordinal != nil {
		fields = append(fields, conversationblock.FieldOrdinal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConversationBlockMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case conversationblock.FieldOrdinal:
		return m.AddedOrdinal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationBlockMutation) AddField(name string, value ent.Value) error {
	switch name {
	case conversationblock.FieldOrdinal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrdinal(v)
		return nil
	}
	return fmt.Errorf("unknown ConversationBlock numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConversationBlockMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conversationblock.FieldText) {
		fields = append(fields, conversationblock.FieldText)
	}
	if m.FieldCleared(conversationblock.FieldToolName) {
		fields = append(fields, conversationblock.FieldToolName)
	}
	if m.FieldCleared(conversationblock.FieldToolUseID) {
		fields = append(fields, conversationblock.FieldToolUseID)
	}
	if m.FieldCleared(conversationblock.FieldToolInput) {
		fields = append(fields, conversationblock.FieldToolInput)
	}
	if m.FieldCleared(conversationblock.FieldToolResult) {
		fields = append(fields, conversationblock.FieldToolResult)
	}
	if m.FieldCleared(conversationblock.FieldEmbedding) {
		fields = append(fields, conversationblock.FieldEmbedding)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConversationBlockMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConversationBlockMutation) ClearField(name string) error {
	switch name {
	case conversationblock.FieldText:
		m.ClearText()
		return nil
	case conversationblock.FieldToolName:
		m.ClearToolName()
		return nil
	case conversationblock.FieldToolUseID:
		m.ClearToolUseID()
		return nil
	case conversationblock.FieldToolInput:
		m.ClearToolInput()
		return nil
	case conversationblock.FieldToolResult:
		m.ClearToolResult()
		return nil
	case conversationblock.FieldEmbedding:
		m.ClearEmbedding()
		return nil
	}
	return fmt.Errorf("unknown ConversationBlock nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConversationBlockMutation) ResetField(name string) error {
	switch name {
	case conversationblock.FieldConversationID:
		m.ResetConversationID()
		return nil
	case conversationblock.FieldOrdinal:
		m.ResetOrdinal()
		return nil
	case conversationblock.FieldKind:
		m.ResetKind()
		return nil
	case conversationblock.FieldText:
		m.ResetText()
		return nil
	case conversationblock.FieldToolName:
		m.ResetToolName()
		return nil
	case conversationblock.FieldToolUseID:
		m.ResetToolUseID()
		return nil
	case conversationblock.FieldToolInput:
		m.ResetToolInput()
		return nil
	case conversationblock.FieldToolResult:
		m.ResetToolResult()
		return nil
	case conversationblock.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	}
	return fmt.Errorf("unknown ConversationBlock field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConversationBlockMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConversationBlockMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConversationBlockMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConversationBlockMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConversationBlockMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConversationBlockMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConversationBlockMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ConversationBlock unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConversationBlockMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ConversationBlock edge %s", name)
}

// CoreMemoryBlockMutation represents an operation that mutates the CoreMemoryBlock nodes in the graph.
type CoreMemoryBlockMutation struct {
	config
	op            Op
	typ           string
	id            *string
	user_id       *string
	session_id    *string
	block_type    *string
	content       *string
	char_limit    *int
	addchar_limit *int
	version       *int
	addversion    *int
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*CoreMemoryBlock, error)
	predicates    []predicate.CoreMemoryBlock
}

var _ ent.Mutation = (*CoreMemoryBlockMutation)(nil)

// corememoryblockOption allows management of the mutation configuration using functional options.
type corememoryblockOption func(*CoreMemoryBlockMutation)

// newCoreMemoryBlockMutation creates new mutation for the CoreMemoryBlock entity.
func newCoreMemoryBlockMutation(c config, op Op, opts ...corememoryblockOption) *CoreMemoryBlockMutation {
	m := &CoreMemoryBlockMutation{
		config:        c,
		op:            op,
		typ:           TypeCoreMemoryBlock,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCoreMemoryBlockID sets the ID field of the mutation.
func withCoreMemoryBlockID(id string) corememoryblockOption {
	return func(m *CoreMemoryBlockMutation) {
		var (
			err   error
			once  sync.Once
			value *CoreMemoryBlock
		)
		m.oldValue = func(ctx context.Context) (*CoreMemoryBlock, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CoreMemoryBlock.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCoreMemoryBlock sets the old CoreMemoryBlock of the mutation.
func withCoreMemoryBlock(node *CoreMemoryBlock) corememoryblockOption {
	return func(m *CoreMemoryBlockMutation) {
		m.oldValue = func(context.Context) (*CoreMemoryBlock, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CoreMemoryBlockMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CoreMemoryBlockMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CoreMemoryBlock entities.
func (m *CoreMemoryBlockMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CoreMemoryBlockMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CoreMemoryBlockMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CoreMemoryBlock.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *CoreMemoryBlockMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *CoreMemoryBlockMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the CoreMemoryBlock entity.
// If the CoreMemoryBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoreMemoryBlockMutation) OldUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *CoreMemoryBlockMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[corememoryblock.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *CoreMemoryBlockMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[corememoryblock.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *CoreMemoryBlockMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, corememoryblock.FieldUserID)
}

// SetSessionID sets the "session_id" field.
func (m *CoreMemoryBlockMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *CoreMemoryBlockMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the CoreMemoryBlock entity.
// If the CoreMemoryBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoreMemoryBlockMutation) OldSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *CoreMemoryBlockMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[corememoryblock.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *CoreMemoryBlockMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[corememoryblock.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *CoreMemoryBlockMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, corememoryblock.FieldSessionID)
}

// SetBlockType sets the "block_type" field.
func (m *CoreMemoryBlockMutation) SetBlockType(s string) {
	m.block_type = &s
}

// BlockType returns the value of the "block_type" field in the mutation.
func (m *CoreMemoryBlockMutation) BlockType() (r string, exists bool) {
	v := m.block_type
	if v == nil {
		return
	}
	return *v, true
}

// OldBlockType returns the old "block_type" field's value of the CoreMemoryBlock entity.
// If the CoreMemoryBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoreMemoryBlockMutation) OldBlockType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlockType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlockType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlockType: %w", err)
	}
	return oldValue.BlockType, nil
}

// ResetBlockType resets all changes to the "block_type" field.
func (m *CoreMemoryBlockMutation) ResetBlockType() {
	m.block_type = nil
}

// SetContent sets the "content" field.
func (m *CoreMemoryBlockMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *CoreMemoryBlockMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the CoreMemoryBlock entity.
// If the CoreMemoryBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoreMemoryBlockMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *CoreMemoryBlockMutation) ResetContent() {
	m.content = nil
}

// SetCharLimit sets the "char_limit" field.
func (m *CoreMemoryBlockMutation) SetCharLimit(i int) {
	m.char_limit = &i
	m.addchar_limit = nil
}

// CharLimit returns the value of the "char_limit" field in the mutation.
func (m *CoreMemoryBlockMutation) CharLimit() (r int, exists bool) {
	v := m.char_limit
	if v == nil {
		return
	}
	return *v, true
}

// OldCharLimit returns the old "char_limit" field's value of the CoreMemoryBlock entity.
// If the CoreMemoryBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoreMemoryBlockMutation) OldCharLimit(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCharLimit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCharLimit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCharLimit: %w", err)
	}
	return oldValue.CharLimit, nil
}

// AddCharLimit adds i to the "char_limit" field.
func (m *CoreMemoryBlockMutation) AddCharLimit(i int) {
	if m.addchar_limit != nil {
		*m.addchar_limit += i
	} else {
		m.addchar_limit = &i
	}
}

// AddedCharLimit returns the value that was added to the "char_limit" field in this mutation.
func (m *CoreMemoryBlockMutation) AddedCharLimit() (r int, exists bool) {
	v := m.addchar_limit
	if v == nil {
		return
	}
	return *v, true
}

// ResetCharLimit resets all changes to the "char_limit" field.
func (m *CoreMemoryBlockMutation) ResetCharLimit() {
	m.char_limit = nil
	m.addchar_limit = nil
}

// SetVersion sets the "version" field.
func (m *CoreMemoryBlockMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *CoreMemoryBlockMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the CoreMemoryBlock entity.
// If the CoreMemoryBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoreMemoryBlockMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *CoreMemoryBlockMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *CoreMemoryBlockMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *CoreMemoryBlockMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CoreMemoryBlockMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CoreMemoryBlockMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CoreMemoryBlock entity.
// If the CoreMemoryBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoreMemoryBlockMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CoreMemoryBlockMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CoreMemoryBlockMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CoreMemoryBlockMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CoreMemoryBlock entity.
// If the CoreMemoryBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoreMemoryBlockMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CoreMemoryBlockMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the CoreMemoryBlockMutation builder.
func (m *CoreMemoryBlockMutation) Where(ps ...predicate.CoreMemoryBlock) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CoreMemoryBlockMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CoreMemoryBlockMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CoreMemoryBlock, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CoreMemoryBlockMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CoreMemoryBlockMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CoreMemoryBlock).
func (m *CoreMemoryBlockMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CoreMemoryBlockMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_id != nil {
		fields = append(fields, corememoryblock.FieldUserID)
	}
	if m.session_id != nil {
		fields = append(fields, corememoryblock.FieldSessionID)
	}
	if m.block_type != nil {
		fields = append(fields, corememoryblock.FieldBlockType)
	}
	if m.content != nil {
		fields = append(fields, corememoryblock.FieldContent)
	}
	if m.char_limit != nil {
		fields = append(fields, corememoryblock.FieldCharLimit)
	}
	if m.version != nil {
		fields = append(fields, corememoryblock.FieldVersion)
	}
	if m.created_at != nil {
		fields = append(fields, corememoryblock.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, corememoryblock.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CoreMemoryBlockMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case corememoryblock.FieldUserID:
		return m.UserID()
	case corememoryblock.FieldSessionID:
		return m.SessionID()
	case corememoryblock.FieldBlockType:
		return m.BlockType()
	case corememoryblock.FieldContent:
		return m.Content()
	case corememoryblock.FieldCharLimit:
		return m.CharLimit()
	case corememoryblock.FieldVersion:
		return m.Version()
	case corememoryblock.FieldCreatedAt:
		return m.CreatedAt()
	case corememoryblock.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CoreMemoryBlockMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case corememoryblock.FieldUserID:
		return m.OldUserID(ctx)
	case corememoryblock.FieldSessionID:
		return m.OldSessionID(ctx)
	case corememoryblock.FieldBlockType:
		return m.OldBlockType(ctx)
	case corememoryblock.FieldContent:
		return m.OldContent(ctx)
	case corememoryblock.FieldCharLimit:
		return m.OldCharLimit(ctx)
	case corememoryblock.FieldVersion:
		return m.OldVersion(ctx)
	case corememoryblock.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case corememoryblock.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CoreMemoryBlock field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CoreMemoryBlockMutation) SetField(name string, value ent.Value) error {
	switch name {
	case corememoryblock.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case corememoryblock.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case corememoryblock.FieldBlockType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlockType(v)
		return nil
	case corememoryblock.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case corememoryblock.FieldCharLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCharLimit(v)
		return nil
	case corememoryblock.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case corememoryblock.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case corememoryblock.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CoreMemoryBlock field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CoreMemoryBlockMutation) AddedFields() []string {
	var fields []string
	if m.addchar_limit != nil {
		fields = append(fields, corememoryblock.FieldCharLimit)
	}
	if m.addversion != nil {
		fields = append(fields, corememoryblock.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CoreMemoryBlockMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case corememoryblock.FieldCharLimit:
		return m.AddedCharLimit()
	case corememoryblock.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CoreMemoryBlockMutation) AddField(name string, value ent.Value) error {
	switch name {
	case corememoryblock.FieldCharLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCharLimit(v)
		return nil
	case corememoryblock.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown CoreMemoryBlock numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CoreMemoryBlockMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(corememoryblock.FieldUserID) {
		fields = append(fields, corememoryblock.FieldUserID)
	}
	if m.FieldCleared(corememoryblock.FieldSessionID) {
		fields = append(fields, corememoryblock.FieldSessionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CoreMemoryBlockMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CoreMemoryBlockMutation) ClearField(name string) error {
	switch name {
	case corememoryblock.FieldUserID:
		m.ClearUserID()
		return nil
	case corememoryblock.FieldSessionID:
		m.ClearSessionID()
		return nil
	}
	return fmt.Errorf("unknown CoreMemoryBlock nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CoreMemoryBlockMutation) ResetField(name string) error {
	switch name {
	case corememoryblock.FieldUserID:
		m.ResetUserID()
		return nil
	case corememoryblock.FieldSessionID:
		m.ResetSessionID()
		return nil
	case corememoryblock.FieldBlockType:
		m.ResetBlockType()
		return nil
	case corememoryblock.FieldContent:
		m.ResetContent()
		return nil
	case corememoryblock.FieldCharLimit:
		m.ResetCharLimit()
		return nil
	case corememoryblock.FieldVersion:
		m.ResetVersion()
		return nil
	case corememoryblock.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case corememoryblock.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CoreMemoryBlock field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CoreMemoryBlockMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CoreMemoryBlockMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CoreMemoryBlockMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CoreMemoryBlockMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CoreMemoryBlockMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CoreMemoryBlockMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CoreMemoryBlockMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CoreMemoryBlock unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CoreMemoryBlockMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CoreMemoryBlock edge %s", name)
}

// CoreMemoryVersionMutation represents an operation that mutates the CoreMemoryVersion nodes in the graph.
type CoreMemoryVersionMutation struct {
	config
	op            Op
	typ           string
	id            *string
	block_id      *string
	version       *int
	addversion    *int
	content       *string
	reason        *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*CoreMemoryVersion, error)
	predicates    []predicate.CoreMemoryVersion
}

var _ ent.Mutation = (*CoreMemoryVersionMutation)(nil)

// corememoryversionOption allows management of the mutation configuration using functional options.
type corememoryversionOption func(*CoreMemoryVersionMutation)

// newCoreMemoryVersionMutation creates new mutation for the CoreMemoryVersion entity.
func newCoreMemoryVersionMutation(c config, op Op, opts ...corememoryversionOption) *CoreMemoryVersionMutation {
	m := &CoreMemoryVersionMutation{
		config:        c,
		op:            op,
		typ:           TypeCoreMemoryVersion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCoreMemoryVersionID sets the ID field of the mutation.
func withCoreMemoryVersionID(id string) corememoryversionOption {
	return func(m *CoreMemoryVersionMutation) {
		var (
			err   error
			once  sync.Once
			value *CoreMemoryVersion
		)
		m.oldValue = func(ctx context.Context) (*CoreMemoryVersion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CoreMemoryVersion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCoreMemoryVersion sets the old CoreMemoryVersion of the mutation.
func withCoreMemoryVersion(node *CoreMemoryVersion) corememoryversionOption {
	return func(m *CoreMemoryVersionMutation) {
		m.oldValue = func(context.Context) (*CoreMemoryVersion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CoreMemoryVersionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CoreMemoryVersionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CoreMemoryVersion entities.
func (m *CoreMemoryVersionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CoreMemoryVersionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CoreMemoryVersionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CoreMemoryVersion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBlockID sets the "block_id" field.
func (m *CoreMemoryVersionMutation) SetBlockID(s string) {
	m.block_id = &s
}

// BlockID returns the value of the "block_id" field in the mutation.
func (m *CoreMemoryVersionMutation) BlockID() (r string, exists bool) {
	v := m.block_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBlockID returns the old "block_id" field's value of the CoreMemoryVersion entity.
// If the CoreMemoryVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoreMemoryVersionMutation) OldBlockID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlockID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlockID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlockID: %w", err)
	}
	return oldValue.BlockID, nil
}

// ResetBlockID resets all changes to the "block_id" field.
func (m *CoreMemoryVersionMutation) ResetBlockID() {
	m.block_id = nil
}

// SetVersion sets the "version" field.
func (m *CoreMemoryVersionMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *CoreMemoryVersionMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the CoreMemoryVersion entity.
// If the CoreMemoryVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoreMemoryVersionMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *CoreMemoryVersionMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *CoreMemoryVersionMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *CoreMemoryVersionMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetContent sets the "content" field.
func (m *CoreMemoryVersionMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *CoreMemoryVersionMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the CoreMemoryVersion entity.
// If the CoreMemoryVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoreMemoryVersionMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *CoreMemoryVersionMutation) ResetContent() {
	m.content = nil
}

// SetReason sets the "reason" field.
func (m *CoreMemoryVersionMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *CoreMemoryVersionMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the CoreMemoryVersion entity.
// If the CoreMemoryVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoreMemoryVersionMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *CoreMemoryVersionMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[corememoryversion.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *CoreMemoryVersionMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[corememoryversion.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *CoreMemoryVersionMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, corememoryversion.FieldReason)
}

// SetCreatedAt sets the "created_at" field.
func (m *CoreMemoryVersionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CoreMemoryVersionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CoreMemoryVersion entity.
// If the CoreMemoryVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoreMemoryVersionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CoreMemoryVersionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the CoreMemoryVersionMutation builder.
func (m *CoreMemoryVersionMutation) Where(ps ...predicate.CoreMemoryVersion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CoreMemoryVersionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CoreMemoryVersionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CoreMemoryVersion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CoreMemoryVersionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CoreMemoryVersionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CoreMemoryVersion).
func (m *CoreMemoryVersionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CoreMemoryVersionMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.block_id != nil {
		fields = append(fields, corememoryversion.FieldBlockID)
	}
	if m.version != nil {
		fields = append(fields, corememoryversion.FieldVersion)
	}
	if m.content != nil {
		fields = append(fields, corememoryversion.FieldContent)
	}
	if m.reason != nil {
		fields = append(fields, corememoryversion.FieldReason)
	}
	if m.created_at != nil {
		fields = append(fields, corememoryversion.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CoreMemoryVersionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case corememoryversion.FieldBlockID:
		return m.BlockID()
	case corememoryversion.FieldVersion:
		return m.Version()
	case corememoryversion.FieldContent:
		return m.Content()
	case corememoryversion.FieldReason:
		return m.Reason()
	case corememoryversion.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CoreMemoryVersionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case corememoryversion.FieldBlockID:
		return m.OldBlockID(ctx)
	case corememoryversion.FieldVersion:
		return m.OldVersion(ctx)
	case corememoryversion.FieldContent:
		return m.OldContent(ctx)
	case corememoryversion.FieldReason:
		return m.OldReason(ctx)
	case corememoryversion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CoreMemoryVersion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CoreMemoryVersionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case corememoryversion.FieldBlockID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlockID(v)
		return nil
	case corememoryversion.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case corememoryversion.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case corememoryversion.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case corememoryversion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CoreMemoryVersion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CoreMemoryVersionMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, corememoryversion.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CoreMemoryVersionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case corememoryversion.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CoreMemoryVersionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case corememoryversion.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown CoreMemoryVersion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CoreMemoryVersionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(corememoryversion.FieldReason) {
		fields = append(fields, corememoryversion.FieldReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CoreMemoryVersionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CoreMemoryVersionMutation) ClearField(name string) error {
	switch name {
	case corememoryversion.FieldReason:
		m.ClearReason()
		return nil
	}
	return fmt.Errorf("unknown CoreMemoryVersion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CoreMemoryVersionMutation) ResetField(name string) error {
	switch name {
	case corememoryversion.FieldBlockID:
		m.ResetBlockID()
		return nil
	case corememoryversion.FieldVersion:
		m.ResetVersion()
		return nil
	case corememoryversion.FieldContent:
		m.ResetContent()
		return nil
	case corememoryversion.FieldReason:
		m.ResetReason()
		return nil
	case corememoryversion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CoreMemoryVersion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CoreMemoryVersionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CoreMemoryVersionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CoreMemoryVersionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CoreMemoryVersionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CoreMemoryVersionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CoreMemoryVersionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CoreMemoryVersionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CoreMemoryVersion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CoreMemoryVersionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CoreMemoryVersion edge %s", name)
}

// DaemonStateMutation represents an operation that mutates the DaemonState nodes in the graph.
type DaemonStateMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	suppressed_until          *time.Time
	last_interaction_at       *time.Time
	last_proactive_contact_at *time.Time
	autonomous_work_count     *int
	addautonomous_work_count  *int
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	done                      bool
	oldValue                  func(context.Context) (*DaemonState, error)
	predicates                []predicate.DaemonState
}

var _ ent.Mutation = (*DaemonStateMutation)(nil)

// daemonstateOption allows management of the mutation configuration using functional options.
type daemonstateOption func(*DaemonStateMutation)

// newDaemonStateMutation creates new mutation for the DaemonState entity.
func newDaemonStateMutation(c config, op Op, opts ...daemonstateOption) *DaemonStateMutation {
	m := &DaemonStateMutation{
		config:        c,
		op:            op,
		typ:           TypeDaemonState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDaemonStateID sets the ID field of the mutation.
func withDaemonStateID(id string) daemonstateOption {
	return func(m *DaemonStateMutation) {
		var (
			err   error
			once  sync.Once
			value *DaemonState
		)
		m.oldValue = func(ctx context.Context) (*DaemonState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DaemonState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDaemonState sets the old DaemonState of the mutation.
func withDaemonState(node *DaemonState) daemonstateOption {
	return func(m *DaemonStateMutation) {
		m.oldValue = func(context.Context) (*DaemonState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DaemonStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DaemonStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DaemonState entities.
func (m *DaemonStateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DaemonStateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DaemonStateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DaemonState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSuppressedUntil sets the "suppressed_until" field.
func (m *DaemonStateMutation) SetSuppressedUntil(t time.Time) {
	m.suppressed_until = &t
}

// SuppressedUntil returns the value of the "suppressed_until" field in the mutation.
func (m *DaemonStateMutation) SuppressedUntil() (r time.Time, exists bool) {
	v := m.suppressed_until
	if v == nil {
		return
	}
	return *v, true
}

// OldSuppressedUntil returns the old "suppressed_until" field's value of the DaemonState entity.
// If the DaemonState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DaemonStateMutation) OldSuppressedUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuppressedUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuppressedUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuppressedUntil: %w", err)
	}
	return oldValue.SuppressedUntil, nil
}

// ClearSuppressedUntil clears the value of the "suppressed_until" field.
func (m *DaemonStateMutation) ClearSuppressedUntil() {
	m.suppressed_until = nil
	m.clearedFields[daemonstate.FieldSuppressedUntil] = struct{}{}
}

// SuppressedUntilCleared returns if the "suppressed_until" field was cleared in this mutation.
func (m *DaemonStateMutation) SuppressedUntilCleared() bool {
	_, ok := m.clearedFields[daemonstate.FieldSuppressedUntil]
	return ok
}

// ResetSuppressedUntil resets all changes to the "suppressed_until" field.
func (m *DaemonStateMutation) ResetSuppressedUntil() {
	m.suppressed_until = nil
	delete(m.clearedFields, daemonstate.FieldSuppressedUntil)
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (m *DaemonStateMutation) SetLastInteractionAt(t time.Time) {
	m.last_interaction_at = &t
}

// LastInteractionAt returns the value of the "last_interaction_at" field in the mutation.
func (m *DaemonStateMutation) LastInteractionAt() (r time.Time, exists bool) {
	v := m.last_interaction_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastInteractionAt returns the old "last_interaction_at" field's value of the DaemonState entity.
// If the DaemonState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DaemonStateMutation) OldLastInteractionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastInteractionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastInteractionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastInteractionAt: %w", err)
	}
	return oldValue.LastInteractionAt, nil
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (m *DaemonStateMutation) ClearLastInteractionAt() {
	m.last_interaction_at = nil
	m.clearedFields[daemonstate.FieldLastInteractionAt] = struct{}{}
}

// LastInteractionAtCleared returns if the "last_interaction_at" field was cleared in this mutation.
func (m *DaemonStateMutation) LastInteractionAtCleared() bool {
	_, ok := m.clearedFields[daemonstate.FieldLastInteractionAt]
	return ok
}

// ResetLastInteractionAt resets all changes to the "last_interaction_at" field.
func (m *DaemonStateMutation) ResetLastInteractionAt() {
	m.last_interaction_at = nil
	delete(m.clearedFields, daemonstate.FieldLastInteractionAt)
}

// SetLastProactiveContactAt sets the "last_proactive_contact_at" field.
func (m *DaemonStateMutation) SetLastProactiveContactAt(t time.Time) {
	m.last_proactive_contact_at = &t
}

// LastProactiveContactAt returns the value of the "last_proactive_contact_at" field in the mutation.
func (m *DaemonStateMutation) LastProactiveContactAt() (r time.Time, exists bool) {
	v := m.last_proactive_contact_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastProactiveContactAt returns the old "last_proactive_contact_at" field's value of the DaemonState entity.
// If the DaemonState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DaemonStateMutation) OldLastProactiveContactAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastProactiveContactAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastProactiveContactAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastProactiveContactAt: %w", err)
	}
	return oldValue.LastProactiveContactAt, nil
}

// ClearLastProactiveContactAt clears the value of the "last_proactive_contact_at" field.
func (m *DaemonStateMutation) ClearLastProactiveContactAt() {
	m.last_proactive_contact_at = nil
	m.clearedFields[daemonstate.FieldLastProactiveContactAt] = struct{}{}
}

// LastProactiveContactAtCleared returns if the "last_proactive_contact_at" field was cleared in this mutation.
func (m *DaemonStateMutation) LastProactiveContactAtCleared() bool {
	_, ok := m.clearedFields[daemonstate.FieldLastProactiveContactAt]
	return ok
}

// ResetLastProactiveContactAt resets all changes to the "last_proactive_contact_at" field.
func (m *DaemonStateMutation) ResetLastProactiveContactAt() {
	m.last_proactive_contact_at = nil
	delete(m.clearedFields, daemonstate.FieldLastProactiveContactAt)
}

// SetAutonomousWorkCount sets the "autonomous_work_count" field.
func (m *DaemonStateMutation) SetAutonomousWorkCount(i int) {
	m.autonomous_work_count = &i
	m.addautonomous_work_count = nil
}

// AutonomousWorkCount returns the value of the "autonomous_work_count" field in the mutation.
func (m *DaemonStateMutation) AutonomousWorkCount() (r int, exists bool) {
	v := m.autonomous_work_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAutonomousWorkCount returns the old "autonomous_work_count" field's value of the DaemonState entity.
// If the DaemonState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DaemonStateMutation) OldAutonomousWorkCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutonomousWorkCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutonomousWorkCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutonomousWorkCount: %w", err)
	}
	return oldValue.AutonomousWorkCount, nil
}

// AddAutonomousWorkCount adds i to the "autonomous_work_count" field.
func (m *DaemonStateMutation) AddAutonomousWorkCount(i int) {
	if m.addautonomous_work_count != nil {
		*m.addautonomous_work_count += i
	} else {
		m.addautonomous_work_count = &i
	}
}

// AddedAutonomousWorkCount returns the value that was added to the "autonomous_work_count" field in this mutation.
func (m *DaemonStateMutation) AddedAutonomousWorkCount() (r int, exists bool) {
	v := m.addautonomous_work_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAutonomousWorkCount resets all changes to the "autonomous_work_count" field.
func (m *DaemonStateMutation) ResetAutonomousWorkCount() {
	m.autonomous_work_count = nil
	m.addautonomous_work_count = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DaemonStateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DaemonStateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DaemonState entity.
// If the DaemonState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DaemonStateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DaemonStateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the DaemonStateMutation builder.
func (m *DaemonStateMutation) Where(ps ...predicate.DaemonState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DaemonStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DaemonStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DaemonState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DaemonStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DaemonStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DaemonState).
func (m *DaemonStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DaemonStateMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.suppressed_until != nil {
		fields = append(fields, daemonstate.FieldSuppressedUntil)
	}
	if m.last_interaction_at != nil {
		fields = append(fields, daemonstate.FieldLastInteractionAt)
	}
	if m.last_proactive_contact_at != nil {
		fields = append(fields, daemonstate.FieldLastProactiveContactAt)
	}
	if m.autonomous_work_count != nil {
		fields = append(fields, daemonstate.FieldAutonomousWorkCount)
	}
	if m.updated_at != nil {
		fields = append(fields, daemonstate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DaemonStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case daemonstate.FieldSuppressedUntil:
		return m.SuppressedUntil()
	case daemonstate.FieldLastInteractionAt:
		return m.LastInteractionAt()
	case daemonstate.FieldLastProactiveContactAt:
		return m.LastProactiveContactAt()
	case daemonstate.FieldAutonomousWorkCount:
		return m.AutonomousWorkCount()
	case daemonstate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DaemonStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case daemonstate.FieldSuppressedUntil:
		return m.OldSuppressedUntil(ctx)
	case daemonstate.FieldLastInteractionAt:
		return m.OldLastInteractionAt(ctx)
	case daemonstate.FieldLastProactiveContactAt:
		return m.OldLastProactiveContactAt(ctx)
	case daemonstate.FieldAutonomousWorkCount:
		return m.OldAutonomousWorkCount(ctx)
	case daemonstate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DaemonState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DaemonStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case daemonstate.FieldSuppressedUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuppressedUntil(v)
		return nil
	case daemonstate.FieldLastInteractionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastInteractionAt(v)
		return nil
	case daemonstate.FieldLastProactiveContactAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastProactiveContactAt(v)
		return nil
	case daemonstate.FieldAutonomousWorkCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutonomousWorkCount(v)
		return nil
	case daemonstate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DaemonState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DaemonStateMutation) AddedFields() []string {
	var fields []string
	if m.addautonomous_work_count != nil {
		fields = append(fields, daemonstate.FieldAutonomousWorkCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DaemonStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case daemonstate.FieldAutonomousWorkCount:
		return m.AddedAutonomousWorkCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DaemonStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case daemonstate.FieldAutonomousWorkCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAutonomousWorkCount(v)
		return nil
	}
	return fmt.Errorf("unknown DaemonState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DaemonStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(daemonstate.FieldSuppressedUntil) {
		fields = append(fields, daemonstate.FieldSuppressedUntil)
	}
	if m.FieldCleared(daemonstate.FieldLastInteractionAt) {
		fields = append(fields, daemonstate.FieldLastInteractionAt)
	}
	if m.FieldCleared(daemonstate.FieldLastProactiveContactAt) {
		fields = append(fields, daemonstate.FieldLastProactiveContactAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DaemonStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DaemonStateMutation) ClearField(name string) error {
	switch name {
	case daemonstate.FieldSuppressedUntil:
		m.ClearSuppressedUntil()
		return nil
	case daemonstate.FieldLastInteractionAt:
		m.ClearLastInteractionAt()
		return nil
	case daemonstate.FieldLastProactiveContactAt:
		m.ClearLastProactiveContactAt()
		return nil
	}
	return fmt.Errorf("unknown DaemonState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DaemonStateMutation) ResetField(name string) error {
	switch name {
	case daemonstate.FieldSuppressedUntil:
		m.ResetSuppressedUntil()
		return nil
	case daemonstate.FieldLastInteractionAt:
		m.ResetLastInteractionAt()
		return nil
	case daemonstate.FieldLastProactiveContactAt:
		m.ResetLastProactiveContactAt()
		return nil
	case daemonstate.FieldAutonomousWorkCount:
		m.ResetAutonomousWorkCount()
		return nil
	case daemonstate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DaemonState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DaemonStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DaemonStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DaemonStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DaemonStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DaemonStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DaemonStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DaemonStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DaemonState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DaemonStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DaemonState edge %s", name)
}

// EntityMentionMutation represents an operation that mutates the EntityMention nodes in the graph.
type EntityMentionMutation struct {
	config
	op               Op
	typ              string
	id               *string
	conversation_id  *string
	entity_type      *string
	raw_value        *string
	normalized_value *string
	fingerprint      *string
	confidence       *float64
	addconfidence    *float64
	span_start       *int
	addspan_start    *int
	span_end         *int
	addspan_end      *int
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*EntityMention, error)
	predicates       []predicate.EntityMention
}

var _ ent.Mutation = (*EntityMentionMutation)(nil)

// entitymentionOption allows management of the mutation configuration using functional options.
type entitymentionOption func(*EntityMentionMutation)

// newEntityMentionMutation creates new mutation for the EntityMention entity.
func newEntityMentionMutation(c config, op Op, opts ...entitymentionOption) *EntityMentionMutation {
	m := &EntityMentionMutation{
		config:        c,
		op:            op,
		typ:           TypeEntityMention,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEntityMentionID sets the ID field of the mutation.
func withEntityMentionID(id string) entitymentionOption {
	return func(m *EntityMentionMutation) {
		var (
			err   error
			once  sync.Once
			value *EntityMention
		)
		m.oldValue = func(ctx context.Context) (*EntityMention, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EntityMention.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEntityMention sets the old EntityMention of the mutation.
func withEntityMention(node *EntityMention) entitymentionOption {
	return func(m *EntityMentionMutation) {
		m.oldValue = func(context.Context) (*EntityMention, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EntityMentionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EntityMentionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EntityMention entities.
func (m *EntityMentionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EntityMentionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EntityMentionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EntityMention.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConversationID sets the "conversation_id" field.
func (m *EntityMentionMutation) SetConversationID(s string) {
	m.conversation_id = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *EntityMentionMutation) ConversationID() (r string, exists bool) {
	v := m.conversation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the EntityMention entity.
// If the EntityMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMentionMutation) OldConversationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ClearConversationID clears the value of the "conversation_id" field.
func (m *EntityMentionMutation) ClearConversationID() {
	m.conversation_id = nil
	m.clearedFields[entitymention.FieldConversationID] = struct{}{}
}

// ConversationIDCleared returns if the "conversation_id" field was cleared in this mutation.
func (m *EntityMentionMutation) ConversationIDCleared() bool {
	_, ok := m.clearedFields[entitymention.FieldConversationID]
	return ok
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *EntityMentionMutation) ResetConversationID() {
	m.conversation_id = nil
	delete(m.clearedFields, entitymention.FieldConversationID)
}

// SetEntityType sets the "entity_type" field.
func (m *EntityMentionMutation) SetEntityType(s string) {
	m.entity_type = &s
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *EntityMentionMutation) EntityType() (r string, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the EntityMention entity.
// If the EntityMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMentionMutation) OldEntityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *EntityMentionMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetRawValue sets the "raw_value" field.
func (m *EntityMentionMutation) SetRawValue(s string) {
	m.raw_value = &s
}

// RawValue returns the value of the "raw_value" field in the mutation.
func (m *EntityMentionMutation) RawValue() (r string, exists bool) {
	v := m.raw_value
	if v == nil {
		return
	}
	return *v, true
}

// OldRawValue returns the old "raw_value" field's value of the EntityMention entity.
// If the EntityMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMentionMutation) OldRawValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawValue: %w", err)
	}
	return oldValue.RawValue, nil
}

// ResetRawValue resets all changes to the "raw_value" field.
func (m *EntityMentionMutation) ResetRawValue() {
	m.raw_value = nil
}

// SetNormalizedValue sets the "normalized_value" field.
func (m *EntityMentionMutation) SetNormalizedValue(s string) {
	m.normalized_value = &s
}

// NormalizedValue returns the value of the "normalized_value" field in the mutation.
func (m *EntityMentionMutation) NormalizedValue() (r string, exists bool) {
	v := m.normalized_value
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalizedValue returns the old "normalized_value" field's value of the EntityMention entity.
// If the EntityMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMentionMutation) OldNormalizedValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalizedValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalizedValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalizedValue: %w", err)
	}
	return oldValue.NormalizedValue, nil
}

// ResetNormalizedValue resets all changes to the "normalized_value" field.
func (m *EntityMentionMutation) ResetNormalizedValue() {
	m.normalized_value = nil
}

// SetFingerprint sets the "fingerprint" field.
func (m *EntityMentionMutation) SetFingerprint(s string) {
	m.fingerprint = &s
}

// Fingerprint returns the value of the "fingerprint" field in the mutation.
func (m *EntityMentionMutation) Fingerprint() (r string, exists bool) {
	v := m.fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldFingerprint returns the old "fingerprint" field's value of the EntityMention entity.
// If the EntityMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMentionMutation) OldFingerprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFingerprint: %w", err)
	}
	return oldValue.Fingerprint, nil
}

// ResetFingerprint resets all changes to the "fingerprint" field.
func (m *EntityMentionMutation) ResetFingerprint() {
	m.fingerprint = nil
}

// SetConfidence sets the "confidence" field.
func (m *EntityMentionMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *EntityMentionMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the EntityMention entity.
// If the EntityMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMentionMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *EntityMentionMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *EntityMentionMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *EntityMentionMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetSpanStart sets the "span_start" field.
func (m *EntityMentionMutation) SetSpanStart(i int) {
	m.span_start = &i
	m.addspan_start = nil
}

// SpanStart returns the value of the "span_start" field in the mutation.
func (m *EntityMentionMutation) SpanStart() (r int, exists bool) {
	v := m.span_start
	if v == nil {
		return
	}
	return *v, true
}

// OldSpanStart returns the old "span_start" field's value of the EntityMention entity.
// If the EntityMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMentionMutation) OldSpanStart(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpanStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpanStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpanStart: %w", err)
	}
	return oldValue.SpanStart, nil
}

// AddSpanStart adds i to the "span_start" field.
func (m *EntityMentionMutation) AddSpanStart(i int) {
	if m.addspan_start != nil {
		*m.addspan_start += i
	} else {
		m.addspan_start = &i
	}
}

// AddedSpanStart returns the value that was added to the "span_start" field in this mutation.
func (m *EntityMentionMutation) AddedSpanStart() (r int, exists bool) {
	v := m.addspan_start
	if v == nil {
		return
	}
	return *v, true
}

// ClearSpanStart clears the value of the "span_start" field.
func (m *EntityMentionMutation) ClearSpanStart() {
	m.span_start = nil
	m.addspan_start = nil
	m.clearedFields[entitymention.FieldSpanStart] = struct{}{}
}

// SpanStartCleared returns if the "span_start" field was cleared in this mutation.
func (m *EntityMentionMutation) SpanStartCleared() bool {
	_, ok := m.clearedFields[entitymention.FieldSpanStart]
	return ok
}

// ResetSpanStart resets all changes to the "span_start" field.
func (m *EntityMentionMutation) ResetSpanStart() {
	m.span_start = nil
	m.addspan_start = nil
	delete(m.clearedFields, entitymention.FieldSpanStart)
}

// SetSpanEnd sets the "span_end" field.
func (m *EntityMentionMutation) SetSpanEnd(i int) {
	m.span_end = &i
	m.addspan_end = nil
}

// SpanEnd returns the value of the "span_end" field in the mutation.
func (m *EntityMentionMutation) SpanEnd() (r int, exists bool) {
	v := m.span_end
	if v == nil {
		return
	}
	return *v, true
}

// OldSpanEnd returns the old "span_end" field's value of the EntityMention entity.
// If the EntityMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMentionMutation) OldSpanEnd(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpanEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpanEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpanEnd: %w", err)
	}
	return oldValue.SpanEnd, nil
}

// AddSpanEnd adds i to the "span_end" field.
func (m *EntityMentionMutation) AddSpanEnd(i int) {
	if m.addspan_end != nil {
		*m.addspan_end += i
	} else {
		m.addspan_end = &i
	}
}

// AddedSpanEnd returns the value that was added to the "span_end" field in this mutation.
func (m *EntityMentionMutation) AddedSpanEnd() (r int, exists bool) {
	v := m.addspan_end
	if v == nil {
		return
	}
	return *v, true
}

// ClearSpanEnd clears the value of the "span_end" field.
func (m *EntityMentionMutation) ClearSpanEnd() {
	m.span_end = nil
	m.addspan_end = nil
	m.clearedFields[entitymention.FieldSpanEnd] = struct{}{}
}

// SpanEndCleared returns if the "span_end" field was cleared in this mutation.
func (m *EntityMentionMutation) SpanEndCleared() bool {
	_, ok := m.clearedFields[entitymention.FieldSpanEnd]
	return ok
}

// ResetSpanEnd resets all changes to the "span_end" field.
func (m *EntityMentionMutation) ResetSpanEnd() {
	m.span_end = nil
	m.addspan_end = nil
	delete(m.clearedFields, entitymention.FieldSpanEnd)
}

// SetCreatedAt sets the "created_at" field.
func (m *EntityMentionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EntityMentionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EntityMention entity.
// If the EntityMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMentionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EntityMentionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EntityMentionMutation builder.
func (m *EntityMentionMutation) Where(ps ...predicate.EntityMention) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EntityMentionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EntityMentionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EntityMention, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EntityMentionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EntityMentionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EntityMention).
func (m *EntityMentionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EntityMentionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.conversation_id != nil {
		fields = append(fields, entitymention.FieldConversationID)
	}
	if m.entity_type != nil {
		fields = append(fields, entitymention.FieldEntityType)
	}
	if m.raw_value != nil {
		fields = append(fields, entitymention.FieldRawValue)
	}
	if m.normalized_value != nil {
		fields = append(fields, entitymention.FieldNormalizedValue)
	}
	if m.fingerprint != nil {
		fields = append(fields, entitymention.FieldFingerprint)
	}
	if m.confidence != nil {
		fields = append(fields, entitymention.FieldConfidence)
	}
	if m.span_start != nil {
		fields = append(fields, entitymention.FieldSpanStart)
	}
	if m.span_end != nil {
		fields = append(fields, entitymention.FieldSpanEnd)
	}
	if m.created_at != nil {
		fields = append(fields, entitymention.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EntityMentionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case entitymention.FieldConversationID:
		return m.ConversationID()
	case entitymention.FieldEntityType:
		return m.EntityType()
	case entitymention.FieldRawValue:
		return m.RawValue()
	case entitymention.FieldNormalizedValue:
		return m.NormalizedValue()
	case entitymention.FieldFingerprint:
		return m.Fingerprint()
	case entitymention.FieldConfidence:
		return m.Confidence()
	case entitymention.FieldSpanStart:
		return m.SpanStart()
	case entitymention.FieldSpanEnd:
		return m.SpanEnd()
	case entitymention.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EntityMentionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case entitymention.FieldConversationID:
		return m.OldConversationID(ctx)
	case entitymention.FieldEntityType:
		return m.OldEntityType(ctx)
	case entitymention.FieldRawValue:
		return m.OldRawValue(ctx)
	case entitymention.FieldNormalizedValue:
		return m.OldNormalizedValue(ctx)
	case entitymention.FieldFingerprint:
		return m.OldFingerprint(ctx)
	case entitymention.FieldConfidence:
		return m.OldConfidence(ctx)
	case entitymention.FieldSpanStart:
		return m.OldSpanStart(ctx)
	case entitymention.FieldSpanEnd:
		return m.OldSpanEnd(ctx)
	case entitymention.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EntityMention field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityMentionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case entitymention.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case entitymention.FieldEntityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case entitymention.FieldRawValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawValue(v)
		return nil
	case entitymention.FieldNormalizedValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalizedValue(v)
		return nil
	case entitymention.FieldFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFingerprint(v)
		return nil
	case entitymention.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case entitymention.FieldSpanStart:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpanStart(v)
		return nil
	case entitymention.FieldSpanEnd:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpanEnd(v)
		return nil
	case entitymention.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EntityMention field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EntityMentionMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, entitymention.FieldConfidence)
	}
	if m.addspan_start != nil {
		fields = append(fields, entitymention.FieldSpanStart)
	}
	if m.addspan_end != nil {
		fields = append(fields, entitymention.FieldSpanEnd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EntityMentionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case entitymention.FieldConfidence:
		return m.AddedConfidence()
	case entitymention.FieldSpanStart:
		return m.AddedSpanStart()
	case entitymention.FieldSpanEnd:
		return m.AddedSpanEnd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityMentionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case entitymention.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case entitymention.FieldSpanStart:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSpanStart(v)
		return nil
	case entitymention.FieldSpanEnd:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSpanEnd(v)
		return nil
	}
	return fmt.Errorf("unknown EntityMention numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EntityMentionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(entitymention.FieldConversationID) {
		fields = append(fields, entitymention.FieldConversationID)
	}
	if m.FieldCleared(entitymention.FieldSpanStart) {
		fields = append(fields, entitymention.FieldSpanStart)
	}
	if m.FieldCleared(entitymention.FieldSpanEnd) {
		fields = append(fields, entitymention.FieldSpanEnd)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EntityMentionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EntityMentionMutation) ClearField(name string) error {
	switch name {
	case entitymention.FieldConversationID:
		m.ClearConversationID()
		return nil
	case entitymention.FieldSpanStart:
		m.ClearSpanStart()
		return nil
	case entitymention.FieldSpanEnd:
		m.ClearSpanEnd()
		return nil
	}
	return fmt.Errorf("unknown EntityMention nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EntityMentionMutation) ResetField(name string) error {
	switch name {
	case entitymention.FieldConversationID:
		m.ResetConversationID()
		return nil
	case entitymention.FieldEntityType:
		m.ResetEntityType()
		return nil
	case entitymention.FieldRawValue:
		m.ResetRawValue()
		return nil
	case entitymention.FieldNormalizedValue:
		m.ResetNormalizedValue()
		return nil
	case entitymention.FieldFingerprint:
		m.ResetFingerprint()
		return nil
	case entitymention.FieldConfidence:
		m.ResetConfidence()
		return nil
	case entitymention.FieldSpanStart:
		m.ResetSpanStart()
		return nil
	case entitymention.FieldSpanEnd:
		m.ResetSpanEnd()
		return nil
	case entitymention.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown EntityMention field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EntityMentionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EntityMentionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EntityMentionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EntityMentionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EntityMentionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EntityMentionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EntityMentionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EntityMention unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EntityMentionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EntityMention edge %s", name)
}

// ExplorationFindingMutation represents an operation that mutates the ExplorationFinding nodes in the graph.
type ExplorationFindingMutation struct {
	config
	op             Op
	typ            string
	id             *string
	task_id        *string
	finding        *string
	source_context *string
	confidence     *float64
	addconfidence  *float64
	worth_sharing  *bool
	share_message  *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*ExplorationFinding, error)
	predicates     []predicate.ExplorationFinding
}

var _ ent.Mutation = (*ExplorationFindingMutation)(nil)

// explorationfindingOption allows management of the mutation configuration using functional options.
type explorationfindingOption func(*ExplorationFindingMutation)

// newExplorationFindingMutation creates new mutation for the ExplorationFinding entity.
func newExplorationFindingMutation(c config, op Op, opts ...explorationfindingOption) *ExplorationFindingMutation {
	m := &ExplorationFindingMutation{
		config:        c,
		op:            op,
		typ:           TypeExplorationFinding,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExplorationFindingID sets the ID field of the mutation.
func withExplorationFindingID(id string) explorationfindingOption {
	return func(m *ExplorationFindingMutation) {
		var (
			err   error
			once  sync.Once
			value *ExplorationFinding
		)
		m.oldValue = func(ctx context.Context) (*ExplorationFinding, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExplorationFinding.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExplorationFinding sets the old ExplorationFinding of the mutation.
func withExplorationFinding(node *ExplorationFinding) explorationfindingOption {
	return func(m *ExplorationFindingMutation) {
		m.oldValue = func(context.Context) (*ExplorationFinding, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExplorationFindingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExplorationFindingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExplorationFinding entities.
func (m *ExplorationFindingMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExplorationFindingMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExplorationFindingMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExplorationFinding.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *ExplorationFindingMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *ExplorationFindingMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the ExplorationFinding entity.
// If the ExplorationFinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExplorationFindingMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *ExplorationFindingMutation) ResetTaskID() {
	m.task_id = nil
}

// SetFinding sets the "finding" field.
func (m *ExplorationFindingMutation) SetFinding(s string) {
	m.finding = &s
}

// Finding returns the value of the "finding" field in the mutation.
func (m *ExplorationFindingMutation) Finding() (r string, exists bool) {
	v := m.finding
	if v == nil {
		return
	}
	return *v, true
}

// OldFinding returns the old "finding" field's value of the ExplorationFinding entity.
// If the ExplorationFinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExplorationFindingMutation) OldFinding(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinding: %w", err)
	}
	return oldValue.Finding, nil
}

// ResetFinding resets all changes to the "finding" field.
func (m *ExplorationFindingMutation) ResetFinding() {
	m.finding = nil
}

// SetSourceContext sets the "source_context" field.
func (m *ExplorationFindingMutation) SetSourceContext(s string) {
	m.source_context = &s
}

// SourceContext returns the value of the "source_context" field in the mutation.
func (m *ExplorationFindingMutation) SourceContext() (r string, exists bool) {
	v := m.source_context
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceContext returns the old "source_context" field's value of the ExplorationFinding entity.
// If the ExplorationFinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExplorationFindingMutation) OldSourceContext(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceContext: %w", err)
	}
	return oldValue.SourceContext, nil
}

// ClearSourceContext clears the value of the "source_context" field.
func (m *ExplorationFindingMutation) ClearSourceContext() {
	m.source_context = nil
	m.clearedFields[explorationfinding.FieldSourceContext] = struct{}{}
}

// SourceContextCleared returns if the "source_context" field was cleared in this mutation.
func (m *ExplorationFindingMutation) SourceContextCleared() bool {
	_, ok := m.clearedFields[explorationfinding.FieldSourceContext]
	return ok
}

// ResetSourceContext resets all changes to the "source_context" field.
func (m *ExplorationFindingMutation) ResetSourceContext() {
	m.source_context = nil
	delete(m.clearedFields, explorationfinding.FieldSourceContext)
}

// SetConfidence sets the "confidence" field.
func (m *ExplorationFindingMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ExplorationFindingMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the ExplorationFinding entity.
// If the ExplorationFinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExplorationFindingMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *ExplorationFindingMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ExplorationFindingMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ExplorationFindingMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetWorthSharing sets the "worth_sharing" field.
func (m *ExplorationFindingMutation) SetWorthSharing(b bool) {
	m.worth_sharing = &b
}

// WorthSharing returns the value of the "worth_sharing" field in the mutation.
func (m *ExplorationFindingMutation) WorthSharing() (r bool, exists bool) {
	v := m.worth_sharing
	if v == nil {
		return
	}
	return *v, true
}

// OldWorthSharing returns the old "worth_sharing" field's value of the ExplorationFinding entity.
// If the ExplorationFinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExplorationFindingMutation) OldWorthSharing(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorthSharing is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorthSharing requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorthSharing: %w", err)
	}
	return oldValue.WorthSharing, nil
}

// ResetWorthSharing resets all changes to the "worth_sharing" field.
func (m *ExplorationFindingMutation) ResetWorthSharing() {
	m.worth_sharing = nil
}

// SetShareMessage sets the "share_message" field.
func (m *ExplorationFindingMutation) SetShareMessage(s string) {
	m.share_message = &s
}

// ShareMessage returns the value of the "share_message" field in the mutation.
func (m *ExplorationFindingMutation) ShareMessage() (r string, exists bool) {
	v := m.share_message
	if v == nil {
		return
	}
	return *v, true
}

// OldShareMessage returns the old "share_message" field's value of the ExplorationFinding entity.
// If the ExplorationFinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExplorationFindingMutation) OldShareMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShareMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShareMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShareMessage: %w", err)
	}
	return oldValue.ShareMessage, nil
}

// ClearShareMessage clears the value of the "share_message" field.
func (m *ExplorationFindingMutation) ClearShareMessage() {
	m.share_message = nil
	m.clearedFields[explorationfinding.FieldShareMessage] = struct{}{}
}

// ShareMessageCleared returns if the "share_message" field was cleared in this mutation.
func (m *ExplorationFindingMutation) ShareMessageCleared() bool {
	_, ok := m.clearedFields[explorationfinding.FieldShareMessage]
	return ok
}

// ResetShareMessage resets all changes to the "share_message" field.
func (m *ExplorationFindingMutation) ResetShareMessage() {
	m.share_message = nil
	delete(m.clearedFields, explorationfinding.FieldShareMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExplorationFindingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExplorationFindingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExplorationFinding entity.
// If the ExplorationFinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExplorationFindingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExplorationFindingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ExplorationFindingMutation builder.
func (m *ExplorationFindingMutation) Where(ps ...predicate.ExplorationFinding) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExplorationFindingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExplorationFindingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExplorationFinding, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExplorationFindingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExplorationFindingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExplorationFinding).
func (m *ExplorationFindingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExplorationFindingMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.task_id != nil {
		fields = append(fields, explorationfinding.FieldTaskID)
	}
	if m.finding != nil {
		fields = append(fields, explorationfinding.FieldFinding)
	}
	if m.source_context != nil {
		fields = append(fields, explorationfinding.FieldSourceContext)
	}
	if m.confidence != nil {
		fields = append(fields, explorationfinding.FieldConfidence)
	}
	if m.worth_sharing != nil {
		fields = append(fields, explorationfinding.FieldWorthSharing)
	}
	if m.share_message != nil {
		fields = append(fields, explorationfinding.FieldShareMessage)
	}
	if m.created_at != nil {
		fields = append(fields, explorationfinding.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExplorationFindingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case explorationfinding.FieldTaskID:
		return m.TaskID()
	case explorationfinding.FieldFinding:
		return m.Finding()
	case explorationfinding.FieldSourceContext:
		return m.SourceContext()
	case explorationfinding.FieldConfidence:
		return m.Confidence()
	case explorationfinding.FieldWorthSharing:
		return m.WorthSharing()
	case explorationfinding.FieldShareMessage:
		return m.ShareMessage()
	case explorationfinding.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExplorationFindingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case explorationfinding.FieldTaskID:
		return m.OldTaskID(ctx)
	case explorationfinding.FieldFinding:
		return m.OldFinding(ctx)
	case explorationfinding.FieldSourceContext:
		return m.OldSourceContext(ctx)
	case explorationfinding.FieldConfidence:
		return m.OldConfidence(ctx)
	case explorationfinding.FieldWorthSharing:
		return m.OldWorthSharing(ctx)
	case explorationfinding.FieldShareMessage:
		return m.OldShareMessage(ctx)
	case explorationfinding.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExplorationFinding field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExplorationFindingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case explorationfinding.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case explorationfinding.FieldFinding:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinding(v)
		return nil
	case explorationfinding.FieldSourceContext:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceContext(v)
		return nil
	case explorationfinding.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case explorationfinding.FieldWorthSharing:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorthSharing(v)
		return nil
	case explorationfinding.FieldShareMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShareMessage(v)
		return nil
	case explorationfinding.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExplorationFinding field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExplorationFindingMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, explorationfinding.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExplorationFindingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case explorationfinding.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExplorationFindingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case explorationfinding.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown ExplorationFinding numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExplorationFindingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(explorationfinding.FieldSourceContext) {
		fields = append(fields, explorationfinding.FieldSourceContext)
	}
	if m.FieldCleared(explorationfinding.FieldShareMessage) {
		fields = append(fields, explorationfinding.FieldShareMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExplorationFindingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExplorationFindingMutation) ClearField(name string) error {
	switch name {
	case explorationfinding.FieldSourceContext:
		m.ClearSourceContext()
		return nil
	case explorationfinding.FieldShareMessage:
		m.ClearShareMessage()
		return nil
	}
	return fmt.Errorf("unknown ExplorationFinding nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExplorationFindingMutation) ResetField(name string) error {
	switch name {
	case explorationfinding.FieldTaskID:
		m.ResetTaskID()
		return nil
	case explorationfinding.FieldFinding:
		m.ResetFinding()
		return nil
	case explorationfinding.FieldSourceContext:
		m.ResetSourceContext()
		return nil
	case explorationfinding.FieldConfidence:
		m.ResetConfidence()
		return nil
	case explorationfinding.FieldWorthSharing:
		m.ResetWorthSharing()
		return nil
	case explorationfinding.FieldShareMessage:
		m.ResetShareMessage()
		return nil
	case explorationfinding.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExplorationFinding field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExplorationFindingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExplorationFindingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExplorationFindingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExplorationFindingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExplorationFindingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExplorationFindingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExplorationFindingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExplorationFinding unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExplorationFindingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExplorationFinding edge %s", name)
}

// MediumPresenceMutation represents an operation that mutates the MediumPresence nodes in the graph.
type MediumPresenceMutation struct {
	config
	op             Op
	typ            string
	id             *string
	medium         *string
	user_id        *string
	status         *string
	last_heartbeat *time.Time
	channels       *[]map[string]interface{}
	appendchannels []map[string]interface{}
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*MediumPresence, error)
	predicates     []predicate.MediumPresence
}

var _ ent.Mutation = (*MediumPresenceMutation)(nil)

// mediumpresenceOption allows management of the mutation configuration using functional options.
type mediumpresenceOption func(*MediumPresenceMutation)

// newMediumPresenceMutation creates new mutation for the MediumPresence entity.
func newMediumPresenceMutation(c config, op Op, opts ...mediumpresenceOption) *MediumPresenceMutation {
	m := &MediumPresenceMutation{
		config:        c,
		op:            op,
		typ:           TypeMediumPresence,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMediumPresenceID sets the ID field of the mutation.
func withMediumPresenceID(id string) mediumpresenceOption {
	return func(m *MediumPresenceMutation) {
		var (
			err   error
			once  sync.Once
			value *MediumPresence
		)
		m.oldValue = func(ctx context.Context) (*MediumPresence, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MediumPresence.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMediumPresence sets the old MediumPresence of the mutation.
func withMediumPresence(node *MediumPresence) mediumpresenceOption {
	return func(m *MediumPresenceMutation) {
		m.oldValue = func(context.Context) (*MediumPresence, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MediumPresenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MediumPresenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MediumPresence entities.
func (m *MediumPresenceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MediumPresenceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MediumPresenceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MediumPresence.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMedium sets the "medium" field.
func (m *MediumPresenceMutation) SetMedium(s string) {
	m.medium = &s
}

// Medium returns the value of the "medium" field in the mutation.
func (m *MediumPresenceMutation) Medium() (r string, exists bool) {
	v := m.medium
	if v == nil {
		return
	}
	return *v, true
}

// OldMedium returns the old "medium" field's value of the MediumPresence entity.
// If the MediumPresence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediumPresenceMutation) OldMedium(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMedium is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMedium requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMedium: %w", err)
	}
	return oldValue.Medium, nil
}

// ResetMedium resets all changes to the "medium" field.
func (m *MediumPresenceMutation) ResetMedium() {
	m.medium = nil
}

// SetUserID sets the "user_id" field.
func (m *MediumPresenceMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *MediumPresenceMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the MediumPresence entity.
// If the MediumPresence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediumPresenceMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *MediumPresenceMutation) ResetUserID() {
	m.user_id = nil
}

// SetStatus sets the "status" field.
func (m *MediumPresenceMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *MediumPresenceMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the MediumPresence entity.
// If the MediumPresence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediumPresenceMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *MediumPresenceMutation) ResetStatus() {
	m.status = nil
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (m *MediumPresenceMutation) SetLastHeartbeat(t time.Time) {
	m.last_heartbeat = &t
}

// LastHeartbeat returns the value of the "last_heartbeat" field in the mutation.
func (m *MediumPresenceMutation) LastHeartbeat() (r time.Time, exists bool) {
	v := m.last_heartbeat
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeat returns the old "last_heartbeat" field's value of the MediumPresence entity.
// If the MediumPresence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediumPresenceMutation) OldLastHeartbeat(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeat: %w", err)
	}
	return oldValue.LastHeartbeat, nil
}

// ResetLastHeartbeat resets all changes to the "last_heartbeat" field.
func (m *MediumPresenceMutation) ResetLastHeartbeat() {
	m.last_heartbeat = nil
}

// SetChannels sets the "channels" field.
func (m *MediumPresenceMutation) SetChannels(value []map[string]interface{}) {
	m.channels = &value
	m.appendchannels = nil
}

// Channels returns the value of the "channels" field in the mutation.
func (m *MediumPresenceMutation) Channels() (r []map[string]interface{}, exists bool) {
	v := m.channels
	if v == nil {
		return
	}
	return *v, true
}

// OldChannels returns the old "channels" field's value of the MediumPresence entity.
// If the MediumPresence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediumPresenceMutation) OldChannels(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannels is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannels requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannels: %w", err)
	}
	return oldValue.Channels, nil
}

// AppendChannels adds value to the "channels" field.
func (m *MediumPresenceMutation) AppendChannels(value []map[string]interface{}) {
	m.appendchannels = append(m.appendchannels, value...)
}

// AppendedChannels returns the list of values that were appended to the "channels" field in this mutation.
func (m *MediumPresenceMutation) AppendedChannels() ([]map[string]interface{}, bool) {
	if len(m.appendchannels) == 0 {
		return nil, false
	}
	return m.appendchannels, true
}

// ClearChannels clears the value of the "channels" field.
func (m *MediumPresenceMutation) ClearChannels() {
	m.channels = nil
	m.appendchannels = nil
	m.clearedFields[mediumpresence.FieldChannels] = struct{}{}
}

// ChannelsCleared returns if the "channels" field was cleared in this mutation.
func (m *MediumPresenceMutation) ChannelsCleared() bool {
	_, ok := m.clearedFields[mediumpresence.FieldChannels]
	return ok
}

// ResetChannels resets all changes to the "channels" field.
func (m *MediumPresenceMutation) ResetChannels() {
	m.channels = nil
	m.appendchannels = nil
	delete(m.clearedFields, mediumpresence.FieldChannels)
}

// Where appends a list predicates to the MediumPresenceMutation builder.
func (m *MediumPresenceMutation) Where(ps ...predicate.MediumPresence) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MediumPresenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MediumPresenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MediumPresence, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MediumPresenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MediumPresenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MediumPresence).
func (m *MediumPresenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MediumPresenceMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.medium != nil {
		fields = append(fields, mediumpresence.FieldMedium)
	}
	if m.user_id != nil {
		fields = append(fields, mediumpresence.FieldUserID)
	}
	if m.status != nil {
		fields = append(fields, mediumpresence.FieldStatus)
	}
	if m.last_heartbeat != nil {
		fields = append(fields, mediumpresence.FieldLastHeartbeat)
	}
	if m.channels != nil {
		fields = append(fields, mediumpresence.FieldChannels)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MediumPresenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mediumpresence.FieldMedium:
		return m.Medium()
	case mediumpresence.FieldUserID:
		return m.UserID()
	case mediumpresence.FieldStatus:
		return m.Status()
	case mediumpresence.FieldLastHeartbeat:
		return m.LastHeartbeat()
	case mediumpresence.FieldChannels:
		return m.Channels()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MediumPresenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mediumpresence.FieldMedium:
		return m.OldMedium(ctx)
	case mediumpresence.FieldUserID:
		return m.OldUserID(ctx)
	case mediumpresence.FieldStatus:
		return m.OldStatus(ctx)
	case mediumpresence.FieldLastHeartbeat:
		return m.OldLastHeartbeat(ctx)
	case mediumpresence.FieldChannels:
		return m.OldChannels(ctx)
	}
	return nil, fmt.Errorf("unknown MediumPresence field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MediumPresenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mediumpresence.FieldMedium:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMedium(v)
		return nil
	case mediumpresence.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case mediumpresence.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case mediumpresence.FieldLastHeartbeat:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeat(v)
		return nil
	case mediumpresence.FieldChannels:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannels(v)
		return nil
	}
	return fmt.Errorf("unknown MediumPresence field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MediumPresenceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MediumPresenceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MediumPresenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MediumPresence numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MediumPresenceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(mediumpresence.FieldChannels) {
		fields = append(fields, mediumpresence.FieldChannels)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MediumPresenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MediumPresenceMutation) ClearField(name string) error {
	switch name {
	case mediumpresence.FieldChannels:
		m.ClearChannels()
		return nil
	}
	return fmt.Errorf("unknown MediumPresence nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MediumPresenceMutation) ResetField(name string) error {
	switch name {
	case mediumpresence.FieldMedium:
		m.ResetMedium()
		return nil
	case mediumpresence.FieldUserID:
		m.ResetUserID()
		return nil
	case mediumpresence.FieldStatus:
		m.ResetStatus()
		return nil
	case mediumpresence.FieldLastHeartbeat:
		m.ResetLastHeartbeat()
		return nil
	case mediumpresence.FieldChannels:
		m.ResetChannels()
		return nil
	}
	return fmt.Errorf("unknown MediumPresence field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MediumPresenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MediumPresenceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MediumPresenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MediumPresenceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MediumPresenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MediumPresenceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MediumPresenceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MediumPresence unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MediumPresenceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MediumPresence edge %s", name)
}

// MissionMutation represents an operation that mutates the Mission nodes in the graph.
type MissionMutation struct {
	config
	op             Op
	typ            string
	id             *string
	name           *string
	prompt         *string
	schedule       *string
	sandbox_policy *string
	personality    *string
	model          *string
	tools          *[]string
	appendtools    []string
	status         *mission.Status
	user_id        *string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Mission, error)
	predicates     []predicate.Mission
}

var _ ent.Mutation = (*MissionMutation)(nil)

// missionOption allows management of the mutation configuration using functional options.
type missionOption func(*MissionMutation)

// newMissionMutation creates new mutation for the Mission entity.
func newMissionMutation(c config, op Op, opts ...missionOption) *MissionMutation {
	m := &MissionMutation{
		config:        c,
		op:            op,
		typ:           TypeMission,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMissionID sets the ID field of the mutation.
func withMissionID(id string) missionOption {
	return func(m *MissionMutation) {
		var (
			err   error
			once  sync.Once
			value *Mission
		)
		m.oldValue = func(ctx context.Context) (*Mission, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Mission.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMission sets the old Mission of the mutation.
func withMission(node *Mission) missionOption {
	return func(m *MissionMutation) {
		m.oldValue = func(context.Context) (*Mission, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MissionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MissionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Mission entities.
func (m *MissionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MissionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MissionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Mission.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *MissionMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *MissionMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *MissionMutation) ResetName() {
	m.name = nil
}

// SetPrompt sets the "prompt" field.
func (m *MissionMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *MissionMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *MissionMutation) ResetPrompt() {
	m.prompt = nil
}

// SetSchedule sets the "schedule" field.
func (m *MissionMutation) SetSchedule(s string) {
	m.schedule = &s
}

// Schedule returns the value of the "schedule" field in the mutation.
func (m *MissionMutation) Schedule() (r string, exists bool) {
	v := m.schedule
	if v == nil {
		return
	}
	return *v, true
}

// OldSchedule returns the old "schedule" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldSchedule(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchedule is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchedule requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchedule: %w", err)
	}
	return oldValue.Schedule, nil
}

// ClearSchedule clears the value of the "schedule" field.
func (m *MissionMutation) ClearSchedule() {
	m.schedule = nil
	m.clearedFields[mission.FieldSchedule] = struct{}{}
}

// ScheduleCleared returns if the "schedule" field was cleared in this mutation.
func (m *MissionMutation) ScheduleCleared() bool {
	_, ok := m.clearedFields[mission.FieldSchedule]
	return ok
}

// ResetSchedule resets all changes to the "schedule" field.
func (m *MissionMutation) ResetSchedule() {
	m.schedule = nil
	delete(m.clearedFields, mission.FieldSchedule)
}

// SetSandboxPolicy sets the "sandbox_policy" field.
func (m *MissionMutation) SetSandboxPolicy(s string) {
	m.sandbox_policy = &s
}

// SandboxPolicy returns the value of the "sandbox_policy" field in the mutation.
func (m *MissionMutation) SandboxPolicy() (r string, exists bool) {
	v := m.sandbox_policy
	if v == nil {
		return
	}
	return *v, true
}

// OldSandboxPolicy returns the old "sandbox_policy" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldSandboxPolicy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSandboxPolicy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSandboxPolicy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSandboxPolicy: %w", err)
	}
	return oldValue.SandboxPolicy, nil
}

// ClearSandboxPolicy clears the value of the "sandbox_policy" field.
func (m *MissionMutation) ClearSandboxPolicy() {
	m.sandbox_policy = nil
	m.clearedFields[mission.FieldSandboxPolicy] = struct{}{}
}

// SandboxPolicyCleared returns if the "sandbox_policy" field was cleared in this mutation.
func (m *MissionMutation) SandboxPolicyCleared() bool {
	_, ok := m.clearedFields[mission.FieldSandboxPolicy]
	return ok
}

// ResetSandboxPolicy resets all changes to the "sandbox_policy" field.
func (m *MissionMutation) ResetSandboxPolicy() {
	m.sandbox_policy = nil
	delete(m.clearedFields, mission.FieldSandboxPolicy)
}

// SetPersonality sets the "personality" field.
func (m *MissionMutation) SetPersonality(s string) {
	m.personality = &s
}

// Personality returns the value of the "personality" field in the mutation.
func (m *MissionMutation) Personality() (r string, exists bool) {
	v := m.personality
	if v == nil {
		return
	}
	return *v, true
}

// OldPersonality returns the old "personality" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldPersonality(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersonality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersonality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersonality: %w", err)
	}
	return oldValue.Personality, nil
}

// ClearPersonality clears the value of the "personality" field.
func (m *MissionMutation) ClearPersonality() {
	m.personality = nil
	m.clearedFields[mission.FieldPersonality] = struct{}{}
}

// PersonalityCleared returns if the "personality" field was cleared in this mutation.
func (m *MissionMutation) PersonalityCleared() bool {
	_, ok := m.clearedFields[mission.FieldPersonality]
	return ok
}

// ResetPersonality resets all changes to the "personality" field.
func (m *MissionMutation) ResetPersonality() {
	m.personality = nil
	delete(m.clearedFields, mission.FieldPersonality)
}

// SetModel sets the "model" field.
func (m *MissionMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *MissionMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *MissionMutation) ClearModel() {
	m.model = nil
	m.clearedFields[mission.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *MissionMutation) ModelCleared() bool {
	_, ok := m.clearedFields[mission.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *MissionMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, mission.FieldModel)
}

// SetTools sets the "tools" field.
func (m *MissionMutation) SetTools(s []string) {
	m.tools = &s
	m.appendtools = nil
}

// Tools returns the value of the "tools" field in the mutation.
func (m *MissionMutation) Tools() (r []string, exists bool) {
	v := m.tools
	if v == nil {
		return
	}
	return *v, true
}

// OldTools returns the old "tools" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldTools(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTools is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTools requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTools: %w", err)
	}
	return oldValue.Tools, nil
}

// AppendTools adds s to the "tools" field.
func (m *MissionMutation) AppendTools(s []string) {
	m.appendtools = append(m.appendtools, s...)
}

// AppendedTools returns the list of values that were appended to the "tools" field in this mutation.
func (m *MissionMutation) AppendedTools() ([]string, bool) {
	if len(m.appendtools) == 0 {
		return nil, false
	}
	return m.appendtools, true
}

// ClearTools clears the value of the "tools" field.
func (m *MissionMutation) ClearTools() {
	m.tools = nil
	m.appendtools = nil
	m.clearedFields[mission.FieldTools] = struct{}{}
}

// ToolsCleared returns if the "tools" field was cleared in this mutation.
func (m *MissionMutation) ToolsCleared() bool {
	_, ok := m.clearedFields[mission.FieldTools]
	return ok
}

// ResetTools resets all changes to the "tools" field.
func (m *MissionMutation) ResetTools() {
	m.tools = nil
	m.appendtools = nil
	delete(m.clearedFields, mission.FieldTools)
}

// SetStatus sets the "status" field.
func (m *MissionMutation) SetStatus(value mission.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *MissionMutation) Status() (r mission.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldStatus(ctx context.Context) (v mission.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *MissionMutation) ResetStatus() {
	m.status = nil
}

// SetUserID sets the "user_id" field.
func (m *MissionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *MissionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *MissionMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[mission.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *MissionMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[mission.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *MissionMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, mission.FieldUserID)
}

// SetCreatedAt sets the "created_at" field.
func (m *MissionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MissionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MissionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MissionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MissionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MissionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the MissionMutation builder.
func (m *MissionMutation) Where(ps ...predicate.Mission) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MissionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MissionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Mission, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MissionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MissionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Mission).
func (m *MissionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MissionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.name != nil {
		fields = append(fields, mission.FieldName)
	}
	if m.prompt != nil {
		fields = append(fields, mission.FieldPrompt)
	}
	if m.schedule != nil {
		fields = append(fields, mission.FieldSchedule)
	}
	if m.sandbox_policy != nil {
		fields = append(fields, mission.FieldSandboxPolicy)
	}
	if m.personality != nil {
		fields = append(fields, mission.FieldPersonality)
	}
	if m.model != nil {
		fields = append(fields, mission.FieldModel)
	}
	if m.tools != nil {
		fields = append(fields, mission.FieldTools)
	}
	if m.status != nil {
		fields = append(fields, mission.FieldStatus)
	}
	if m.user_id != nil {
		fields = append(fields, mission.FieldUserID)
	}
	if m.created_at != nil {
		fields = append(fields, mission.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, mission.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MissionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mission.FieldName:
		return m.Name()
	case mission.FieldPrompt:
		return m.Prompt()
	case mission.FieldSchedule:
		return m.Schedule()
	case mission.FieldSandboxPolicy:
		return m.SandboxPolicy()
	case mission.FieldPersonality:
		return m.Personality()
	case mission.FieldModel:
		return m.Model()
	case mission.FieldTools:
		return m.Tools()
	case mission.FieldStatus:
		return m.Status()
	case mission.FieldUserID:
		return m.UserID()
	case mission.FieldCreatedAt:
		return m.CreatedAt()
	case mission.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MissionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mission.FieldName:
		return m.OldName(ctx)
	case mission.FieldPrompt:
		return m.OldPrompt(ctx)
	case mission.FieldSchedule:
		return m.OldSchedule(ctx)
	case mission.FieldSandboxPolicy:
		return m.OldSandboxPolicy(ctx)
	case mission.FieldPersonality:
		return m.OldPersonality(ctx)
	case mission.FieldModel:
		return m.OldModel(ctx)
	case mission.FieldTools:
		return m.OldTools(ctx)
	case mission.FieldStatus:
		return m.OldStatus(ctx)
	case mission.FieldUserID:
		return m.OldUserID(ctx)
	case mission.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case mission.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Mission field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MissionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mission.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case mission.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case mission.FieldSchedule:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchedule(v)
		return nil
	case mission.FieldSandboxPolicy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSandboxPolicy(v)
		return nil
	case mission.FieldPersonality:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersonality(v)
		return nil
	case mission.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case mission.FieldTools:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTools(v)
		return nil
	case mission.FieldStatus:
		v, ok := value.(mission.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case mission.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case mission.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case mission.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Mission field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MissionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MissionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MissionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Mission numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MissionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(mission.FieldSchedule) {
		fields = append(fields, mission.FieldSchedule)
	}
	if m.FieldCleared(mission.FieldSandboxPolicy) {
		fields = append(fields, mission.FieldSandboxPolicy)
	}
	if m.FieldCleared(mission.FieldPersonality) {
		fields = append(fields, mission.FieldPersonality)
	}
	if m.FieldCleared(mission.FieldModel) {
		fields = append(fields, mission.FieldModel)
	}
	if m.FieldCleared(mission.FieldTools) {
		fields = append(fields, mission.FieldTools)
	}
	if m.FieldCleared(mission.FieldUserID) {
		fields = append(fields, mission.FieldUserID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MissionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MissionMutation) ClearField(name string) error {
	switch name {
	case mission.FieldSchedule:
		m.ClearSchedule()
		return nil
	case mission.FieldSandboxPolicy:
		m.ClearSandboxPolicy()
		return nil
	case mission.FieldPersonality:
		m.ClearPersonality()
		return nil
	case mission.FieldModel:
		m.ClearModel()
		return nil
	case mission.FieldTools:
		m.ClearTools()
		return nil
	case mission.FieldUserID:
		m.ClearUserID()
		return nil
	}
	return fmt.Errorf("unknown Mission nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MissionMutation) ResetField(name string) error {
	switch name {
	case mission.FieldName:
		m.ResetName()
		return nil
	case mission.FieldPrompt:
		m.ResetPrompt()
		return nil
	case mission.FieldSchedule:
		m.ResetSchedule()
		return nil
	case mission.FieldSandboxPolicy:
		m.ResetSandboxPolicy()
		return nil
	case mission.FieldPersonality:
		m.ResetPersonality()
		return nil
	case mission.FieldModel:
		m.ResetModel()
		return nil
	case mission.FieldTools:
		m.ResetTools()
		return nil
	case mission.FieldStatus:
		m.ResetStatus()
		return nil
	case mission.FieldUserID:
		m.ResetUserID()
		return nil
	case mission.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case mission.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Mission field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MissionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MissionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MissionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MissionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MissionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MissionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MissionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Mission unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MissionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Mission edge %s", name)
}

// MissionExecutionMutation represents an operation that mutates the MissionExecution nodes in the graph.
type MissionExecutionMutation struct {
	config
	op                Op
	typ               string
	id                *string
	mission_id        *string
	status            *missionexecution.Status
	started_at        *time.Time
	completed_at      *time.Time
	output            *string
	structured_output *map[string]interface{}
	tool_count        *int
	addtool_count     *int
	error_message     *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*MissionExecution, error)
	predicates        []predicate.MissionExecution
}

var _ ent.Mutation = (*MissionExecutionMutation)(nil)

// missionexecutionOption allows management of the mutation configuration using functional options.
type missionexecutionOption func(*MissionExecutionMutation)

// newMissionExecutionMutation creates new mutation for the MissionExecution entity.
func newMissionExecutionMutation(c config, op Op, opts ...missionexecutionOption) *MissionExecutionMutation {
	m := &MissionExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeMissionExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMissionExecutionID sets the ID field of the mutation.
func withMissionExecutionID(id string) missionexecutionOption {
	return func(m *MissionExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *MissionExecution
		)
		m.oldValue = func(ctx context.Context) (*MissionExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MissionExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMissionExecution sets the old MissionExecution of the mutation.
func withMissionExecution(node *MissionExecution) missionexecutionOption {
	return func(m *MissionExecutionMutation) {
		m.oldValue = func(context.Context) (*MissionExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MissionExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MissionExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MissionExecution entities.
func (m *MissionExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MissionExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MissionExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MissionExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMissionID sets the "mission_id" field.
func (m *MissionExecutionMutation) SetMissionID(s string) {
	m.mission_id = &s
}

// MissionID returns the value of the "mission_id" field in the mutation.
func (m *MissionExecutionMutation) MissionID() (r string, exists bool) {
	v := m.mission_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMissionID returns the old "mission_id" field's value of the MissionExecution entity.
// If the MissionExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionExecutionMutation) OldMissionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMissionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMissionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMissionID: %w", err)
	}
	return oldValue.MissionID, nil
}

// ResetMissionID resets all changes to the "mission_id" field.
func (m *MissionExecutionMutation) ResetMissionID() {
	m.mission_id = nil
}

// SetStatus sets the "status" field.
func (m *MissionExecutionMutation) SetStatus(value missionexecution.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *MissionExecutionMutation) Status() (r missionexecution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the MissionExecution entity.
// If the MissionExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionExecutionMutation) OldStatus(ctx context.Context) (v missionexecution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *MissionExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *MissionExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *MissionExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the MissionExecution entity.
// If the MissionExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionExecutionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *MissionExecutionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[missionexecution.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *MissionExecutionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[missionexecution.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *MissionExecutionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, missionexecution.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *MissionExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *MissionExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the MissionExecution entity.
// If the MissionExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *MissionExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[missionexecution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *MissionExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[missionexecution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *MissionExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, missionexecution.FieldCompletedAt)
}

// SetOutput sets the "output" field.
func (m *MissionExecutionMutation) SetOutput(s string) {
	m.output = &s
}

// Output returns the value of the "output" field in the mutation.
func (m *MissionExecutionMutation) Output() (r string, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the MissionExecution entity.
// If the MissionExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionExecutionMutation) OldOutput(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *MissionExecutionMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[missionexecution.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *MissionExecutionMutation) OutputCleared() bool {
	_, ok := m.clearedFields[missionexecution.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *MissionExecutionMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, missionexecution.FieldOutput)
}

// SetStructuredOutput sets the "structured_output" field.
func (m *MissionExecutionMutation) SetStructuredOutput(value map[string]interface{}) {
	m.structured_output = &value
}

// StructuredOutput returns the value of the "structured_output" field in the mutation.
func (m *MissionExecutionMutation) StructuredOutput() (r map[string]interface{}, exists bool) {
	v := m.structured_output
	if v == nil {
		return
	}
	return *v, true
}

// OldStructuredOutput returns the old "structured_output" field's value of the MissionExecution entity.
// If the MissionExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionExecutionMutation) OldStructuredOutput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStructuredOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStructuredOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStructuredOutput: %w", err)
	}
	return oldValue.StructuredOutput, nil
}

// ClearStructuredOutput clears the value of the "structured_output" field.
func (m *MissionExecutionMutation) ClearStructuredOutput() {
	m.structured_output = nil
	m.clearedFields[missionexecution.FieldStructuredOutput] = struct{}{}
}

// StructuredOutputCleared returns if the "structured_output" field was cleared in this mutation.
func (m *MissionExecutionMutation) StructuredOutputCleared() bool {
	_, ok := m.clearedFields[missionexecution.FieldStructuredOutput]
	return ok
}

// ResetStructuredOutput resets all changes to the "structured_output" field.
func (m *MissionExecutionMutation) ResetStructuredOutput() {
	m.structured_output = nil
	delete(m.clearedFields, missionexecution.FieldStructuredOutput)
}

// SetToolCount sets the "tool_count" field.
func (m *MissionExecutionMutation) SetToolCount(i int) {
	m.tool_count = &i
	m.addtool_count = nil
}

// ToolCount returns the value of the "tool_count" field in the mutation.
func (m *MissionExecutionMutation) ToolCount() (r int, exists bool) {
	v := m.tool_count
	if v == nil {
		return
	}
	return *v, true
}

// OldToolCount returns the old "tool_count" field's value of the MissionExecution entity.
// If the MissionExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionExecutionMutation) OldToolCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolCount: %w", err)
	}
	return oldValue.ToolCount, nil
}

// AddToolCount adds i to the "tool_count" field.
func (m *MissionExecutionMutation) AddToolCount(i int) {
	if m.addtool_count != nil {
		*m.addtool_count += i
	} else {
		m.addtool_count = &i
	}
}

// AddedToolCount returns the value that was added to the "tool_count" field in this mutation.
func (m *MissionExecutionMutation) AddedToolCount() (r int, exists bool) {
	v := m.addtool_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetToolCount resets all changes to the "tool_count" field.
func (m *MissionExecutionMutation) ResetToolCount() {
	m.tool_count = nil
	m.addtool_count = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *MissionExecutionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *MissionExecutionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the MissionExecution entity.
// If the MissionExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionExecutionMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *MissionExecutionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[missionexecution.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *MissionExecutionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[missionexecution.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *MissionExecutionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, missionexecution.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *MissionExecutionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MissionExecutionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MissionExecution entity.
// If the MissionExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionExecutionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MissionExecutionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the MissionExecutionMutation builder.
func (m *MissionExecutionMutation) Where(ps ...predicate.MissionExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MissionExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MissionExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MissionExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MissionExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MissionExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MissionExecution).
func (m *MissionExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MissionExecutionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.mission_id != nil {
		fields = append(fields, missionexecution.FieldMissionID)
	}
	if m.status != nil {
		fields = append(fields, missionexecution.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, missionexecution.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, missionexecution.FieldCompletedAt)
	}
	if m.output != nil {
		fields = append(fields, missionexecution.FieldOutput)
	}
	if m.structured_output != nil {
		fields = append(fields, missionexecution.FieldStructuredOutput)
	}
	if m.tool_count != nil {
		fields = append(fields, missionexecution.FieldToolCount)
	}
	if m.error_message != nil {
		fields = append(fields, missionexecution.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, missionexecution.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MissionExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case missionexecution.FieldMissionID:
		return m.MissionID()
	case missionexecution.FieldStatus:
		return m.Status()
	case missionexecution.FieldStartedAt:
		return m.StartedAt()
	case missionexecution.FieldCompletedAt:
		return m.CompletedAt()
	case missionexecution.FieldOutput:
		return m.Output()
	case missionexecution.FieldStructuredOutput:
		return m.StructuredOutput()
	case missionexecution.FieldToolCount:
		return m.ToolCount()
	case missionexecution.FieldErrorMessage:
		return m.ErrorMessage()
	case missionexecution.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MissionExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case missionexecution.FieldMissionID:
		return m.OldMissionID(ctx)
	case missionexecution.FieldStatus:
		return m.OldStatus(ctx)
	case missionexecution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case missionexecution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case missionexecution.FieldOutput:
		return m.OldOutput(ctx)
	case missionexecution.FieldStructuredOutput:
		return m.OldStructuredOutput(ctx)
	case missionexecution.FieldToolCount:
		return m.OldToolCount(ctx)
	case missionexecution.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case missionexecution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MissionExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MissionExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case missionexecution.FieldMissionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMissionID(v)
		return nil
	case missionexecution.FieldStatus:
		v, ok := value.(missionexecution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case missionexecution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case missionexecution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case missionexecution.FieldOutput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case missionexecution.FieldStructuredOutput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStructuredOutput(v)
		return nil
	case missionexecution.FieldToolCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolCount(v)
		return nil
	case missionexecution.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case missionexecution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MissionExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MissionExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addtool_count != nil {
		fields = append(fields, missionexecution.FieldToolCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MissionExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case missionexecution.FieldToolCount:
		return m.AddedToolCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MissionExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case missionexecution.FieldToolCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddToolCount(v)
		return nil
	}
	return fmt.Errorf("unknown MissionExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MissionExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(missionexecution.FieldStartedAt) {
		fields = append(fields, missionexecution.FieldStartedAt)
	}
	if m.FieldCleared(missionexecution.FieldCompletedAt) {
		fields = append(fields, missionexecution.FieldCompletedAt)
	}
	if m.FieldCleared(missionexecution.FieldOutput) {
		fields = append(fields, missionexecution.FieldOutput)
	}
	if m.FieldCleared(missionexecution.FieldStructuredOutput) {
		fields = append(fields, missionexecution.FieldStructuredOutput)
	}
	if m.FieldCleared(missionexecution.FieldErrorMessage) {
		fields = append(fields, missionexecution.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MissionExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MissionExecutionMutation) ClearField(name string) error {
	switch name {
	case missionexecution.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case missionexecution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case missionexecution.FieldOutput:
		m.ClearOutput()
		return nil
	case missionexecution.FieldStructuredOutput:
		m.ClearStructuredOutput()
		return nil
	case missionexecution.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown MissionExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MissionExecutionMutation) ResetField(name string) error {
	switch name {
	case missionexecution.FieldMissionID:
		m.ResetMissionID()
		return nil
	case missionexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case missionexecution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case missionexecution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case missionexecution.FieldOutput:
		m.ResetOutput()
		return nil
	case missionexecution.FieldStructuredOutput:
		m.ResetStructuredOutput()
		return nil
	case missionexecution.FieldToolCount:
		m.ResetToolCount()
		return nil
	case missionexecution.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case missionexecution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown MissionExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MissionExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MissionExecutionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MissionExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MissionExecutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MissionExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MissionExecutionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MissionExecutionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MissionExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MissionExecutionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MissionExecution edge %s", name)
}

// ProjectTaskMutation represents an operation that mutates the ProjectTask nodes in the graph.
type ProjectTaskMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	working_dir            *string
	title                  *string
	description            *string
	acceptance_criteria    *string
	scope_paths            *[]string
	appendscope_paths      []string
	required_tools         *[]string
	appendrequired_tools   []string
	task_type              *string
	tags                   *[]string
	appendtags             []string
	priority               *int
	addpriority            *int
	status                 *projecttask.Status
	user_id                *string
	claim_session_id       *string
	claim_agent_id         *string
	claimed_at             *time.Time
	attempt_count          *int
	addattempt_count       *int
	blocked_by             *[]string
	appendblocked_by       []string
	related_task_ids       *[]string
	appendrelated_task_ids []string
	outcome                *string
	completion_notes       *string
	files_changed          *[]string
	appendfiles_changed    []string
	last_error             *string
	extra                  *map[string]interface{}
	created_at             *time.Time
	updated_at             *time.Time
	started_at             *time.Time
	completed_at           *time.Time
	last_triggered_at      *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*ProjectTask, error)
	predicates             []predicate.ProjectTask
}

var _ ent.Mutation = (*ProjectTaskMutation)(nil)

// projecttaskOption allows management of the mutation configuration using functional options.
type projecttaskOption func(*ProjectTaskMutation)

// newProjectTaskMutation creates new mutation for the ProjectTask entity.
func newProjectTaskMutation(c config, op Op, opts ...projecttaskOption) *ProjectTaskMutation {
	m := &ProjectTaskMutation{
		config:        c,
		op:            op,
		typ:           TypeProjectTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectTaskID sets the ID field of the mutation.
func withProjectTaskID(id string) projecttaskOption {
	return func(m *ProjectTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *ProjectTask
		)
		m.oldValue = func(ctx context.Context) (*ProjectTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProjectTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProjectTask sets the old ProjectTask of the mutation.
func withProjectTask(node *ProjectTask) projecttaskOption {
	return func(m *ProjectTaskMutation) {
		m.oldValue = func(context.Context) (*ProjectTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProjectTask entities.
func (m *ProjectTaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectTaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectTaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProjectTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkingDir sets the "working_dir" field.
func (m *ProjectTaskMutation) SetWorkingDir(s string) {
	m.working_dir = &s
}

// WorkingDir returns the value of the "working_dir" field in the mutation.
func (m *ProjectTaskMutation) WorkingDir() (r string, exists bool) {
	v := m.working_dir
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkingDir returns the old "working_dir" field's value of the ProjectTask entity.
// If the ProjectTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectTaskMutation) OldWorkingDir(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkingDir is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkingDir requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkingDir: %w", err)
	}
	return oldValue.WorkingDir, nil
}

// ClearWorkingDir clears the value of the "working_dir" field.
func (m *ProjectTaskMutation) ClearWorkingDir() {
	m.working_dir = nil
	m.clearedFields[projecttask.FieldWorkingDir] = struct{}{}
}

// WorkingDirCleared returns if the "working_dir" field was cleared in this mutation.
func (m *ProjectTaskMutation) WorkingDirCleared() bool {
	_, ok := m.clearedFields[projecttask.FieldWorkingDir]
	return ok
}

// ResetWorkingDir resets all changes to the "working_dir" field.
func (m *ProjectTaskMutation) ResetWorkingDir() {
	m.working_dir = nil
	delete(m.clearedFields, projecttask.FieldWorkingDir)
}

// SetTitle sets the "title" field.
func (m *ProjectTaskMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ProjectTaskMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ProjectTask entity.
// If the ProjectTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectTaskMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ProjectTaskMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *ProjectTaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ProjectTaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ProjectTask entity.
// If the ProjectTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectTaskMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ProjectTaskMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[projecttask.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ProjectTaskMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[projecttask.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ProjectTaskMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, projecttask.FieldDescription)
}

// SetAcceptanceCriteria sets the "acceptance_criteria" field.
func (m *ProjectTaskMutation) SetAcceptanceCriteria(s string) {
	m.acceptance_criteria = &s
}

// AcceptanceCriteria returns the value of the "acceptance_criteria" field in the mutation.
func (m *ProjectTaskMutation) AcceptanceCriteria() (r string, exists bool) {
	v := m.acceptance_criteria
	if v == nil {
		return
	}
	return *v, true
}

// OldAcceptanceCriteria returns the old "acceptance_criteria" field's value of the ProjectTask entity.
// If the ProjectTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectTaskMutation) OldAcceptanceCriteria(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcceptanceCriteria is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcceptanceCriteria requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcceptanceCriteria: %w", err)
	}
	return oldValue.AcceptanceCriteria, nil
}

// ClearAcceptanceCriteria clears the value of the "acceptance_criteria" field.
func (m *ProjectTaskMutation) ClearAcceptanceCriteria() {
	m.acceptance_criteria = nil
	m.clearedFields[projecttask.FieldAcceptanceCriteria] = struct{}{}
}

// AcceptanceCriteriaCleared returns if the "acceptance_criteria" field was cleared in this mutation.
func (m *ProjectTaskMutation) AcceptanceCriteriaCleared() bool {
	_, ok := m.clearedFields[projecttask.FieldAcceptanceCriteria]
	return ok
}

// ResetAcceptanceCriteria resets all changes to the "acceptance_criteria" field.
func (m *ProjectTaskMutation) ResetAcceptanceCriteria() {
	m.acceptance_criteria = nil
	delete(m.clearedFields, projecttask.FieldAcceptanceCriteria)
}

// SetScopePaths sets the "scope_paths" field.
func (m *ProjectTaskMutation) SetScopePaths(s []string) {
	m.scope_paths = &s
	m.appendscope_paths = nil
}

// ScopePaths returns the value of the "scope_paths" field in the mutation.
func (m *ProjectTaskMutation) ScopePaths() (r []string, exists bool) {
	v := m.scope_paths
	if v == nil {
		return
	}
	return *v, true
}

// OldScopePaths returns the old "scope_paths" field's value of the ProjectTask entity.
// If the ProjectTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectTaskMutation) OldScopePaths(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScopePaths is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScopePaths requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScopePaths: %w", err)
	}
	return oldValue.ScopePaths, nil
}

// AppendScopePaths adds s to the "scope_paths" field.
func (m *ProjectTaskMutation) AppendScopePaths(s []string) {
	m.appendscope_paths = append(m.appendscope_paths, s...)
}

// AppendedScopePaths returns the list of values that were appended to the "scope_paths" field in this mutation.
func (m *ProjectTaskMutation) AppendedScopePaths() ([]string, bool) {
	if len(m.appendscope_paths) == 0 {
		return nil, false
	}
	return m.appendscope_paths, true
}

// ClearScopePaths clears the value of the "scope_paths" field.
func (m *ProjectTaskMutation) ClearScopePaths() {
	m.scope_paths = nil
	m.appendscope_paths = nil
	m.clearedFields[projecttask.FieldScopePaths] = struct{}{}
}

// ScopePathsCleared returns if the "scope_paths" field was cleared in this mutation.
func (m *ProjectTaskMutation) ScopePathsCleared() bool {
	_, ok := m.clearedFields[projecttask.FieldScopePaths]
	return ok
}

// ResetScopePaths resets all changes to the "scope_paths" field.
func (m *ProjectTaskMutation) ResetScopePaths() {
	m.scope_paths = nil
	m.appendscope_paths = nil
	delete(m.clearedFields, projecttask.FieldScopePaths)
}

// SetRequiredTools sets the "required_tools" field.
func (m *ProjectTaskMutation) SetRequiredTools(s []string) {
	m.required_tools = &s
	m.appendrequired_tools = nil
}

// RequiredTools returns the value of the "required_tools" field in the mutation.
func (m *ProjectTaskMutation) RequiredTools() (r []string, exists bool) {
	v := m.required_tools
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiredTools returns the old "required_tools" field's value of the ProjectTask entity.
// If the ProjectTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectTaskMutation) OldRequiredTools(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiredTools is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiredTools requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiredTools: %w", err)
	}
	return oldValue.RequiredTools, nil
}

// AppendRequiredTools adds s to the "required_tools" field.
func (m *ProjectTaskMutation) AppendRequiredTools(s []string) {
	m.appendrequired_tools = append(m.appendrequired_tools, s...)
}

// AppendedRequiredTools returns the list of values that were appended to the "required_tools" field in this mutation.
func (m *ProjectTaskMutation) AppendedRequiredTools() ([]string, bool) {
	if len(m.appendrequired_tools) == 0 {
		return nil, false
	}
	return m.appendrequired_tools, true
}

// ClearRequiredTools clears the value of the "required_tools" field.
func (m *ProjectTaskMutation) ClearRequiredTools() {
	m.required_tools = nil
	m.appendrequired_tools = nil
	m.clearedFields[projecttask.FieldRequiredTools] = struct{}{}
}

// RequiredToolsCleared returns if the "required_tools" field was cleared in this mutation.
func (m *ProjectTaskMutation) RequiredToolsCleared() bool {
	_, ok := m.clearedFields[projecttask.FieldRequiredTools]
	return ok
}

// ResetRequiredTools resets all changes to the "required_tools" field.
func (m *ProjectTaskMutation) ResetRequiredTools() {
	m.required_tools = nil
	m.appendrequired_tools = nil
	delete(m.clearedFields, projecttask.FieldRequiredTools)
}

// SetTaskType sets the "task_type" field.
func (m *ProjectTaskMutation) SetTaskType(s string) {
	m.task_type = &s
}

// TaskType returns the value of the "task_type" field in the mutation.
func (m *ProjectTaskMutation) TaskType() (r string, exists bool) {
	v := m.task_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskType returns the old "task_type" field's value of the ProjectTask entity.
// If the ProjectTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectTaskMutation) OldTaskType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskType: %w", err)
	}
	return oldValue.TaskType, nil
}

// ResetTaskType resets all changes to the "task_type" field.
func (m *ProjectTaskMutation) ResetTaskType() {
	m.task_type = nil
}

// SetTags sets the "tags" field.
func (m *ProjectTaskMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *ProjectTaskMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the ProjectTask entity.
// If the ProjectTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectTaskMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *ProjectTaskMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *ProjectTaskMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *ProjectTaskMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[projecttask.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *ProjectTaskMutation) TagsCleared() bool {
	_, ok := m.clearedFields[projecttask.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *ProjectTaskMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, projecttask.FieldTags)
}

// SetPriority sets the "priority" field.
func (m *ProjectTaskMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *ProjectTaskMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the ProjectTask entity.
// If the ProjectTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectTaskMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *ProjectTaskMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *ProjectTaskMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *ProjectTaskMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetStatus sets the "status" field.
func (m *ProjectTaskMutation) SetStatus(pr projecttask.Status) {
	m.status = &pr
}

// Status returns the value of the "status" field in the mutation.
func (m *ProjectTaskMutation) Status() (r projecttask.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ProjectTask entity.
// If the ProjectTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectTaskMutation) OldStatus(ctx context.Context) (v projecttask.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProjectTaskMutation) ResetStatus() {
	m.status = nil
}

// SetUserID sets the "user_id" field.
func (m *ProjectTaskMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ProjectTaskMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ProjectTask entity.
// If the ProjectTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectTaskMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *ProjectTaskMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[projecttask.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *ProjectTaskMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[projecttask.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ProjectTaskMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, projecttask.FieldUserID)
}

// SetClaimSessionID sets the "claim_session_id" field.
func (m *ProjectTaskMutation) SetClaimSessionID(s string) {
	m.claim_session_id = &s
}

// ClaimSessionID returns the value of the "claim_session_id" field in the mutation.
func (m *ProjectTaskMutation) ClaimSessionID() (r string, exists bool) {
	v := m.claim_session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimSessionID returns the old "claim_session_id" field's value of the ProjectTask entity.
// If the ProjectTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectTaskMutation) OldClaimSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimSessionID: %w", err)
	}
	return oldValue.ClaimSessionID, nil
}

// ClearClaimSessionID clears the value of the "claim_session_id" field.
func (m *ProjectTaskMutation) ClearClaimSessionID() {
	m.claim_session_id = nil
	m.clearedFields[projecttask.FieldClaimSessionID] = struct{}{}
}

// ClaimSessionIDCleared returns if the "claim_session_id" field was cleared in this mutation.
func (m *ProjectTaskMutation) ClaimSessionIDCleared() bool {
	_, ok := m.clearedFields[projecttask.FieldClaimSessionID]
	return ok
}

// ResetClaimSessionID resets all changes to the "claim_session_id" field.
func (m *ProjectTaskMutation) ResetClaimSessionID() {
	m.claim_session_id = nil
	delete(m.clearedFields, projecttask.FieldClaimSessionID)
}

// SetClaimAgentID sets the "claim_agent_id" field.
func (m *ProjectTaskMutation) SetClaimAgentID(s string) {
	m.claim_agent_id = &s
}

// ClaimAgentID returns the value of the "claim_agent_id" field in the mutation.
func (m *ProjectTaskMutation) ClaimAgentID() (r string, exists bool) {
	v := m.claim_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimAgentID returns the old "claim_agent_id" field's value of the ProjectTask entity.
// If the ProjectTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectTaskMutation) OldClaimAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimAgentID: %w", err)
	}
	return oldValue.ClaimAgentID, nil
}

// ClearClaimAgentID clears the value of the "claim_agent_id" field.
func (m *ProjectTaskMutation) ClearClaimAgentID() {
	m.claim_agent_id = nil
	m.clearedFields[projecttask.FieldClaimAgentID] = struct{}{}
}

// ClaimAgentIDCleared returns if the "claim_agent_id" field was cleared in this mutation.
func (m *ProjectTaskMutation) ClaimAgentIDCleared() bool {
	_, ok := m.clearedFields[projecttask.FieldClaimAgentID]
	return ok
}

// ResetClaimAgentID resets all changes to the "claim_agent_id" field.
func (m *ProjectTaskMutation) ResetClaimAgentID() {
	m.claim_agent_id = nil
	delete(m.clearedFields, projecttask.FieldClaimAgentID)
}

// SetClaimedAt sets the "claimed_at" field.
func (m *ProjectTaskMutation) SetClaimedAt(t time.Time) {
	m.claimed_at = &t
}

// ClaimedAt returns the value of the "claimed_at" field in the mutation.
func (m *ProjectTaskMutation) ClaimedAt() (r time.Time, exists bool) {
	v := m.claimed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedAt returns the old "claimed_at" field's value of the ProjectTask entity.
// If the ProjectTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectTaskMutation) OldClaimedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedAt: %w", err)
	}
	return oldValue.ClaimedAt, nil
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (m *ProjectTaskMutation) ClearClaimedAt() {
	m.claimed_at = nil
	m.clearedFields[projecttask.FieldClaimedAt] = struct{}{}
}

// ClaimedAtCleared returns if the "claimed_at" field was cleared in this mutation.
func (m *ProjectTaskMutation) ClaimedAtCleared() bool {
	_, ok := m.clearedFields[projecttask.FieldClaimedAt]
	return ok
}

// ResetClaimedAt resets all changes to the "claimed_at" field.
func (m *ProjectTaskMutation) ResetClaimedAt() {
	m.claimed_at = nil
	delete(m.clearedFields, projecttask.FieldClaimedAt)
}

// SetAttemptCount sets the "attempt_count" field.
func (m *ProjectTaskMutation) SetAttemptCount(i int) {
	m.attempt_count = &i
	m.addattempt_count = nil
}

// AttemptCount returns the value of the "attempt_count" field in the mutation.
func (m *ProjectTaskMutation) AttemptCount() (r int, exists bool) {
	v := m.attempt_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptCount returns the old "attempt_count" field's value of the ProjectTask entity.
// If the ProjectTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectTaskMutation) OldAttemptCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptCount: %w", err)
	}
	return oldValue.AttemptCount, nil
}

// AddAttemptCount adds i to the "attempt_count" field.
func (m *ProjectTaskMutation) AddAttemptCount(i int) {
	if m.addattempt_count != nil {
		*m.addattempt_count += i
	} else {
		m.addattempt_count = &i
	}
}

// AddedAttemptCount returns the value that was added to the "attempt_count" field in this mutation.
func (m *ProjectTaskMutation) AddedAttemptCount() (r int, exists bool) {
	v := m.addattempt_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptCount resets all changes to the "attempt_count" field.
func (m *ProjectTaskMutation) ResetAttemptCount() {
	m.attempt_count = nil
	m.addattempt_count = nil
}

// SetBlockedBy sets the "blocked_by" field.
func (m *ProjectTaskMutation) SetBlockedBy(s []string) {
	m.blocked_by = &s
	m.appendblocked_by = nil
}

// BlockedBy returns the value of the "blocked_by" field in the mutation.
func (m *ProjectTaskMutation) BlockedBy() (r []string, exists bool) {
	v := m.blocked_by
	if v == nil {
		return
	}
	return *v, true
}

// OldBlockedBy returns the old "blocked_by" field's value of the ProjectTask entity.
// If the ProjectTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectTaskMutation) OldBlockedBy(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlockedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlockedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlockedBy: %w", err)
	}
	return oldValue.BlockedBy, nil
}

// AppendBlockedBy adds s to the "blocked_by" field.
func (m *ProjectTaskMutation) AppendBlockedBy(s []string) {
	m.appendblocked_by = append(m.appendblocked_by, s...)
}

// AppendedBlockedBy returns the list of values that were appended to the "blocked_by" field in this mutation.
func (m *ProjectTaskMutation) AppendedBlockedBy() ([]string, bool) {
	if len(m.appendblocked_by) == 0 {
		return nil, false
	}
	return m.appendblocked_by, true
}

// ClearBlockedBy clears the value of the "blocked_by" field.
func (m *ProjectTaskMutation) ClearBlockedBy() {
	m.blocked_by = nil
	m.appendblocked_by = nil
	m.clearedFields[projecttask.FieldBlockedBy] = struct{}{}
}

// BlockedByCleared returns if the "blocked_by" field was cleared in this mutation.
func (m *ProjectTaskMutation) BlockedByCleared() bool {
	_, ok := m.clearedFields[projecttask.FieldBlockedBy]
	return ok
}

// ResetBlockedBy resets all changes to the "blocked_by" field.
func (m *ProjectTaskMutation) ResetBlockedBy() {
	m.blocked_by = nil
	m.appendblocked_by = nil
	delete(m.clearedFields, projecttask.FieldBlockedBy)
}

// SetRelatedTaskIds sets the "related_task_ids" field.
func (m *ProjectTaskMutation) SetRelatedTaskIds(s []string) {
	m.related_task_ids = &s
	m.appendrelated_task_ids = nil
}

// RelatedTaskIds returns the value of the "related_task_ids" field in the mutation.
func (m *ProjectTaskMutation) RelatedTaskIds() (r []string, exists bool) {
	v := m.related_task_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldRelatedTaskIds returns the old "related_task_ids" field's value of the ProjectTask entity.
// If the ProjectTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectTaskMutation) OldRelatedTaskIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelatedTaskIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelatedTaskIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelatedTaskIds: %w", err)
	}
	return oldValue.RelatedTaskIds, nil
}

// AppendRelatedTaskIds adds s to the "related_task_ids" field.
func (m *ProjectTaskMutation) AppendRelatedTaskIds(s []string) {
	m.appendrelated_task_ids = append(m.appendrelated_task_ids, s...)
}

// AppendedRelatedTaskIds returns the list of values that were appended to the "related_task_ids" field in this mutation.
func (m *ProjectTaskMutation) AppendedRelatedTaskIds() ([]string, bool) {
	if len(m.appendrelated_task_ids) == 0 {
		return nil, false
	}
	return m.appendrelated_task_ids, true
}

// ClearRelatedTaskIds clears the value of the "related_task_ids" field.
func (m *ProjectTaskMutation) ClearRelatedTaskIds() {
	m.related_task_ids = nil
	m.appendrelated_task_ids = nil
	m.clearedFields[projecttask.FieldRelatedTaskIds] = struct{}{}
}

// RelatedTaskIdsCleared returns if the "related_task_ids" field was cleared in this mutation.
func (m *ProjectTaskMutation) RelatedTaskIdsCleared() bool {
	_, ok := m.clearedFields[projecttask.FieldRelatedTaskIds]
	return ok
}

// ResetRelatedTaskIds resets all changes to the "related_task_ids" field.
func (m *ProjectTaskMutation) ResetRelatedTaskIds() {
	m.related_task_ids = nil
	m.appendrelated_task_ids = nil
	delete(m.clearedFields, projecttask.FieldRelatedTaskIds)
}

// SetOutcome sets the "outcome" field.
func (m *ProjectTaskMutation) SetOutcome(s string) {
	m.outcome = &s
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *ProjectTaskMutation) Outcome() (r string, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the ProjectTask entity.
// If the ProjectTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectTaskMutation) OldOutcome(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ClearOutcome clears the value of the "outcome" field.
func (m *ProjectTaskMutation) ClearOutcome() {
	m.outcome = nil
	m.clearedFields[projecttask.FieldOutcome] = struct{}{}
}

// OutcomeCleared returns if the "outcome" field was cleared in this mutation.
func (m *ProjectTaskMutation) OutcomeCleared() bool {
	_, ok := m.clearedFields[projecttask.FieldOutcome]
	return ok
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *ProjectTaskMutation) ResetOutcome() {
	m.outcome = nil
	delete(m.clearedFields, projecttask.FieldOutcome)
}

// SetCompletionNotes sets the "completion_notes" field.
func (m *ProjectTaskMutation) SetCompletionNotes(s string) {
	m.completion_notes = &s
}

// CompletionNotes returns the value of the "completion_notes" field in the mutation.
func (m *ProjectTaskMutation) CompletionNotes() (r string, exists bool) {
	v := m.completion_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionNotes returns the old "completion_notes" field's value of the ProjectTask entity.
// If the ProjectTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectTaskMutation) OldCompletionNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionNotes: %w", err)
	}
	return oldValue.CompletionNotes, nil
}

// ClearCompletionNotes clears the value of the "completion_notes" field.
func (m *ProjectTaskMutation) ClearCompletionNotes() {
	m.completion_notes = nil
	m.clearedFields[projecttask.FieldCompletionNotes] = struct{}{}
}

// CompletionNotesCleared returns if the "completion_notes" field was cleared in this mutation.
func (m *ProjectTaskMutation) CompletionNotesCleared() bool {
	_, ok := m.clearedFields[projecttask.FieldCompletionNotes]
	return ok
}

// ResetCompletionNotes resets all changes to the "completion_notes" field.
func (m *ProjectTaskMutation) ResetCompletionNotes() {
	m.completion_notes = nil
	delete(m.clearedFields, projecttask.FieldCompletionNotes)
}

// SetFilesChanged sets the "files_changed" field.
func (m *ProjectTaskMutation) SetFilesChanged(s []string) {
	m.files_changed = &s
	m.appendfiles_changed = nil
}

// FilesChanged returns the value of the "files_changed" field in the mutation.
func (m *ProjectTaskMutation) FilesChanged() (r []string, exists bool) {
	v := m.files_changed
	if v == nil {
		return
	}
	return *v, true
}

// OldFilesChanged returns the old "files_changed" field's value of the ProjectTask entity.
// If the ProjectTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectTaskMutation) OldFilesChanged(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilesChanged is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilesChanged requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilesChanged: %w", err)
	}
	return oldValue.FilesChanged, nil
}

// AppendFilesChanged adds s to the "files_changed" field.
func (m *ProjectTaskMutation) AppendFilesChanged(s []string) {
	m.appendfiles_changed = append(m.appendfiles_changed, s...)
}

// AppendedFilesChanged returns the list of values that were appended to the "files_changed" field in this mutation.
func (m *ProjectTaskMutation) AppendedFilesChanged() ([]string, bool) {
	if len(m.appendfiles_changed) == 0 {
		return nil, false
	}
	return m.appendfiles_changed, true
}

// ClearFilesChanged clears the value of the "files_changed" field.
func (m *ProjectTaskMutation) ClearFilesChanged() {
	m.files_changed = nil
	m.appendfiles_changed = nil
	m.clearedFields[projecttask.FieldFilesChanged] = struct{}{}
}

// FilesChangedCleared returns if the "files_changed" field was cleared in this mutation.
func (m *ProjectTaskMutation) FilesChangedCleared() bool {
	_, ok := m.clearedFields[projecttask.FieldFilesChanged]
	return ok
}

// ResetFilesChanged resets all changes to the "files_changed" field.
func (m *ProjectTaskMutation) ResetFilesChanged() {
	m.files_changed = nil
	m.appendfiles_changed = nil
	delete(m.clearedFields, projecttask.FieldFilesChanged)
}

// SetLastError sets the "last_error" field.
func (m *ProjectTaskMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *ProjectTaskMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the ProjectTask entity.
// If the ProjectTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectTaskMutation) OldLastError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *ProjectTaskMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[projecttask.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *ProjectTaskMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[projecttask.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *ProjectTaskMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, projecttask.FieldLastError)
}

// SetExtra sets the "extra" field.
func (m *ProjectTaskMutation) SetExtra(value map[string]interface{}) {
	m.extra = &value
}

// Extra returns the value of the "extra" field in the mutation.
func (m *ProjectTaskMutation) Extra() (r map[string]interface{}, exists bool) {
	v := m.extra
	if v == nil {
		return
	}
	return *v, true
}

// OldExtra returns the old "extra" field's value of the ProjectTask entity.
// If the ProjectTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectTaskMutation) OldExtra(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtra is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtra requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtra: %w", err)
	}
	return oldValue.Extra, nil
}

// ClearExtra clears the value of the "extra" field.
func (m *ProjectTaskMutation) ClearExtra() {
	m.extra = nil
	m.clearedFields[projecttask.FieldExtra] = struct{}{}
}

// ExtraCleared returns if the "extra" field was cleared in this mutation.
func (m *ProjectTaskMutation) ExtraCleared() bool {
	_, ok := m.clearedFields[projecttask.FieldExtra]
	return ok
}

// ResetExtra resets all changes to the "extra" field.
func (m *ProjectTaskMutation) ResetExtra() {
	m.extra = nil
	delete(m.clearedFields, projecttask.FieldExtra)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectTaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectTaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProjectTask entity.
// If the ProjectTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectTaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectTaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectTaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectTaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ProjectTask entity.
// If the ProjectTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectTaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectTaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ProjectTaskMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ProjectTaskMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ProjectTask entity.
// If the ProjectTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectTaskMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ProjectTaskMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[projecttask.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ProjectTaskMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[projecttask.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ProjectTaskMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, projecttask.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *ProjectTaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ProjectTaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ProjectTask entity.
// If the ProjectTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectTaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ProjectTaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[projecttask.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ProjectTaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[projecttask.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ProjectTaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, projecttask.FieldCompletedAt)
}

// SetLastTriggeredAt sets the "last_triggered_at" field.
func (m *ProjectTaskMutation) SetLastTriggeredAt(t time.Time) {
	m.last_triggered_at = &t
}

// LastTriggeredAt returns the value of the "last_triggered_at" field in the mutation.
func (m *ProjectTaskMutation) LastTriggeredAt() (r time.Time, exists bool) {
	v := m.last_triggered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastTriggeredAt returns the old "last_triggered_at" field's value of the ProjectTask entity.
// If the ProjectTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectTaskMutation) OldLastTriggeredAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastTriggeredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastTriggeredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastTriggeredAt: %w", err)
	}
	return oldValue.LastTriggeredAt, nil
}

// ClearLastTriggeredAt clears the value of the "last_triggered_at" field.
func (m *ProjectTaskMutation) ClearLastTriggeredAt() {
	m.last_triggered_at = nil
	m.clearedFields[projecttask.FieldLastTriggeredAt] = struct{}{}
}

// LastTriggeredAtCleared returns if the "last_triggered_at" field was cleared in this mutation.
func (m *ProjectTaskMutation) LastTriggeredAtCleared() bool {
	_, ok := m.clearedFields[projecttask.FieldLastTriggeredAt]
	return ok
}

// ResetLastTriggeredAt resets all changes to the "last_triggered_at" field.
func (m *ProjectTaskMutation) ResetLastTriggeredAt() {
	m.last_triggered_at = nil
	delete(m.clearedFields, projecttask.FieldLastTriggeredAt)
}

// Where appends a list predicates to the ProjectTaskMutation builder.
func (m *ProjectTaskMutation) Where(ps ...predicate.ProjectTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProjectTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProjectTask).
func (m *ProjectTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectTaskMutation) Fields() []string {
	fields := make([]string, 0, 27)
	if m.working_dir != nil {
		fields = append(fields, projecttask.FieldWorkingDir)
	}
	if m.title != nil {
		fields = append(fields, projecttask.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, projecttask.FieldDescription)
	}
	if m.acceptance_criteria != nil {
		fields = append(fields, projecttask.FieldAcceptanceCriteria)
	}
	if m.scope_paths != nil {
		fields = append(fields, projecttask.FieldScopePaths)
	}
	if m.required_tools != nil {
		fields = append(fields, projecttask.FieldRequiredTools)
	}
	if m.task_type != nil {
		fields = append(fields, projecttask.FieldTaskType)
	}
	if m.tags != nil {
		fields = append(fields, projecttask.FieldTags)
	}
	if m.priority != nil {
		fields = append(fields, projecttask.FieldPriority)
	}
	if m.status != nil {
		fields = append(fields, projecttask.FieldStatus)
	}
	if m.user_id != nil {
		fields = append(fields, projecttask.FieldUserID)
	}
	if m.claim_session_id != nil {
		fields = append(fields, projecttask.FieldClaimSessionID)
	}
	if m.claim_agent_id != nil {
		fields = append(fields, projecttask.FieldClaimAgentID)
	}
	if m.claimed_at != nil {
		fields = append(fields, projecttask.FieldClaimedAt)
	}
	if m.attempt_count != nil {
		fields = append(fields, projecttask.FieldAttemptCount)
	}
	if m.blocked_by != nil {
		fields = append(fields, projecttask.FieldBlockedBy)
	}
	if m.related_task_ids != nil {
		fields = append(fields, projecttask.FieldRelatedTaskIds)
	}
	if m.outcome != nil {
		fields = append(fields, projecttask.FieldOutcome)
	}
	if m.completion_notes != nil {
		fields = append(fields, projecttask.FieldCompletionNotes)
	}
	if m.files_changed != nil {
		fields = append(fields, projecttask.FieldFilesChanged)
	}
	if m.last_error != nil {
		fields = append(fields, projecttask.FieldLastError)
	}
	if m.extra != nil {
		fields = append(fields, projecttask.FieldExtra)
	}
	if m.created_at != nil {
		fields = append(fields, projecttask.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, projecttask.FieldUpdatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, projecttask.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, projecttask.FieldCompletedAt)
	}
	if m.last_triggered_at != nil {
		fields = append(fields, projecttask.FieldLastTriggeredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case projecttask.FieldWorkingDir:
		return m.WorkingDir()
	case projecttask.FieldTitle:
		return m.Title()
	case projecttask.FieldDescription:
		return m.Description()
	case projecttask.FieldAcceptanceCriteria:
		return m.AcceptanceCriteria()
	case projecttask.FieldScopePaths:
		return m.ScopePaths()
	case projecttask.FieldRequiredTools:
		return m.RequiredTools()
	case projecttask.FieldTaskType:
		return m.TaskType()
	case projecttask.FieldTags:
		return m.Tags()
	case projecttask.FieldPriority:
		return m.Priority()
	case projecttask.FieldStatus:
		return m.Status()
	case projecttask.FieldUserID:
		return m.UserID()
	case projecttask.FieldClaimSessionID:
		return m.ClaimSessionID()
	case projecttask.FieldClaimAgentID:
		return m.ClaimAgentID()
	case projecttask.FieldClaimedAt:
		return m.ClaimedAt()
	case projecttask.FieldAttemptCount:
		return m.AttemptCount()
	case projecttask.FieldBlockedBy:
		return m.BlockedBy()
	case projecttask.FieldRelatedTaskIds:
		return m.RelatedTaskIds()
	case projecttask.FieldOutcome:
		return m.Outcome()
	case projecttask.FieldCompletionNotes:
		return m.CompletionNotes()
	case projecttask.FieldFilesChanged:
		return m.FilesChanged()
	case projecttask.FieldLastError:
		return m.LastError()
	case projecttask.FieldExtra:
		return m.Extra()
	case projecttask.FieldCreatedAt:
		return m.CreatedAt()
	case projecttask.FieldUpdatedAt:
		return m.UpdatedAt()
	case projecttask.FieldStartedAt:
		return m.StartedAt()
	case projecttask.FieldCompletedAt:
		return m.CompletedAt()
	case projecttask.FieldLastTriggeredAt:
		return m.LastTriggeredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case projecttask.FieldWorkingDir:
		return m.OldWorkingDir(ctx)
	case projecttask.FieldTitle:
		return m.OldTitle(ctx)
	case projecttask.FieldDescription:
		return m.OldDescription(ctx)
	case projecttask.FieldAcceptanceCriteria:
		return m.OldAcceptanceCriteria(ctx)
	case projecttask.FieldScopePaths:
		return m.OldScopePaths(ctx)
	case projecttask.FieldRequiredTools:
		return m.OldRequiredTools(ctx)
	case projecttask.FieldTaskType:
		return m.OldTaskType(ctx)
	case projecttask.FieldTags:
		return m.OldTags(ctx)
	case projecttask.FieldPriority:
		return m.OldPriority(ctx)
	case projecttask.FieldStatus:
		return m.OldStatus(ctx)
	case projecttask.FieldUserID:
		return m.OldUserID(ctx)
	case projecttask.FieldClaimSessionID:
		return m.OldClaimSessionID(ctx)
	case projecttask.FieldClaimAgentID:
		return m.OldClaimAgentID(ctx)
	case projecttask.FieldClaimedAt:
		return m.OldClaimedAt(ctx)
	case projecttask.FieldAttemptCount:
		return m.OldAttemptCount(ctx)
	case projecttask.FieldBlockedBy:
		return m.OldBlockedBy(ctx)
	case projecttask.FieldRelatedTaskIds:
		return m.OldRelatedTaskIds(ctx)
	case projecttask.FieldOutcome:
		return m.OldOutcome(ctx)
	case projecttask.FieldCompletionNotes:
		return m.OldCompletionNotes(ctx)
	case projecttask.FieldFilesChanged:
		return m.OldFilesChanged(ctx)
	case projecttask.FieldLastError:
		return m.OldLastError(ctx)
	case projecttask.FieldExtra:
		return m.OldExtra(ctx)
	case projecttask.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case projecttask.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case projecttask.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case projecttask.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case projecttask.FieldLastTriggeredAt:
		return m.OldLastTriggeredAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProjectTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case projecttask.FieldWorkingDir:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkingDir(v)
		return nil
	case projecttask.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case projecttask.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case projecttask.FieldAcceptanceCriteria:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcceptanceCriteria(v)
		return nil
	case projecttask.FieldScopePaths:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScopePaths(v)
		return nil
	case projecttask.FieldRequiredTools:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiredTools(v)
		return nil
	case projecttask.FieldTaskType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskType(v)
		return nil
	case projecttask.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case projecttask.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case projecttask.FieldStatus:
		v, ok := value.(projecttask.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case projecttask.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case projecttask.FieldClaimSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimSessionID(v)
		return nil
	case projecttask.FieldClaimAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimAgentID(v)
		return nil
	case projecttask.FieldClaimedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedAt(v)
		return nil
	case projecttask.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptCount(v)
		return nil
	case projecttask.FieldBlockedBy:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlockedBy(v)
		return nil
	case projecttask.FieldRelatedTaskIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelatedTaskIds(v)
		return nil
	case projecttask.FieldOutcome:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case projecttask.FieldCompletionNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionNotes(v)
		return nil
	case projecttask.FieldFilesChanged:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilesChanged(v)
		return nil
	case projecttask.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case projecttask.FieldExtra:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtra(v)
		return nil
	case projecttask.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case projecttask.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case projecttask.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case projecttask.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case projecttask.FieldLastTriggeredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastTriggeredAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProjectTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectTaskMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, projecttask.FieldPriority)
	}
	if m.addattempt_count != nil {
		fields = append(fields, projecttask.FieldAttemptCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectTaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case projecttask.FieldPriority:
		return m.AddedPriority()
	case projecttask.FieldAttemptCount:
		return m.AddedAttemptCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case projecttask.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case projecttask.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptCount(v)
		return nil
	}
	return fmt.Errorf("unknown ProjectTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectTaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(projecttask.FieldWorkingDir) {
		fields = append(fields, projecttask.FieldWorkingDir)
	}
	if m.FieldCleared(projecttask.FieldDescription) {
		fields = append(fields, projecttask.FieldDescription)
	}
	if m.FieldCleared(projecttask.FieldAcceptanceCriteria) {
		fields = append(fields, projecttask.FieldAcceptanceCriteria)
	}
	if m.FieldCleared(projecttask.FieldScopePaths) {
		fields = append(fields, projecttask.FieldScopePaths)
	}
	if m.FieldCleared(projecttask.FieldRequiredTools) {
		fields = append(fields, projecttask.FieldRequiredTools)
	}
	if m.FieldCleared(projecttask.FieldTags) {
		fields = append(fields, projecttask.FieldTags)
	}
	if m.FieldCleared(projecttask.FieldUserID) {
		fields = append(fields, projecttask.FieldUserID)
	}
	if m.FieldCleared(projecttask.FieldClaimSessionID) {
		fields = append(fields, projecttask.FieldClaimSessionID)
	}
	if m.FieldCleared(projecttask.FieldClaimAgentID) {
		fields = append(fields, projecttask.FieldClaimAgentID)
	}
	if m.FieldCleared(projecttask.FieldClaimedAt) {
		fields = append(fields, projecttask.FieldClaimedAt)
	}
	if m.FieldCleared(projecttask.FieldBlockedBy) {
		fields = append(fields, projecttask.FieldBlockedBy)
	}
	if m.FieldCleared(projecttask.FieldRelatedTaskIds) {
		fields = append(fields, projecttask.FieldRelatedTaskIds)
	}
	if m.FieldCleared(projecttask.FieldOutcome) {
		fields = append(fields, projecttask.FieldOutcome)
	}
	if m.FieldCleared(projecttask.FieldCompletionNotes) {
		fields = append(fields, projecttask.FieldCompletionNotes)
	}
	if m.FieldCleared(projecttask.FieldFilesChanged) {
		fields = append(fields, projecttask.FieldFilesChanged)
	}
	if m.FieldCleared(projecttask.FieldLastError) {
		fields = append(fields, projecttask.FieldLastError)
	}
	if m.FieldCleared(projecttask.FieldExtra) {
		fields = append(fields, projecttask.FieldExtra)
	}
	if m.FieldCleared(projecttask.FieldStartedAt) {
		fields = append(fields, projecttask.FieldStartedAt)
	}
	if m.FieldCleared(projecttask.FieldCompletedAt) {
		fields = append(fields, projecttask.FieldCompletedAt)
	}
	if m.FieldCleared(projecttask.FieldLastTriggeredAt) {
		fields = append(fields, projecttask.FieldLastTriggeredAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectTaskMutation) ClearField(name string) error {
	switch name {
	case projecttask.FieldWorkingDir:
		m.ClearWorkingDir()
		return nil
	case projecttask.FieldDescription:
		m.ClearDescription()
		return nil
	case projecttask.FieldAcceptanceCriteria:
		m.ClearAcceptanceCriteria()
		return nil
	case projecttask.FieldScopePaths:
		m.ClearScopePaths()
		return nil
	case projecttask.FieldRequiredTools:
		m.ClearRequiredTools()
		return nil
	case projecttask.FieldTags:
		m.ClearTags()
		return nil
	case projecttask.FieldUserID:
		m.ClearUserID()
		return nil
	case projecttask.FieldClaimSessionID:
		m.ClearClaimSessionID()
		return nil
	case projecttask.FieldClaimAgentID:
		m.ClearClaimAgentID()
		return nil
	case projecttask.FieldClaimedAt:
		m.ClearClaimedAt()
		return nil
	case projecttask.FieldBlockedBy:
		m.ClearBlockedBy()
		return nil
	case projecttask.FieldRelatedTaskIds:
		m.ClearRelatedTaskIds()
		return nil
	case projecttask.FieldOutcome:
		m.ClearOutcome()
		return nil
	case projecttask.FieldCompletionNotes:
		m.ClearCompletionNotes()
		return nil
	case projecttask.FieldFilesChanged:
		m.ClearFilesChanged()
		return nil
	case projecttask.FieldLastError:
		m.ClearLastError()
		return nil
	case projecttask.FieldExtra:
		m.ClearExtra()
		return nil
	case projecttask.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case projecttask.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case projecttask.FieldLastTriggeredAt:
		m.ClearLastTriggeredAt()
		return nil
	}
	return fmt.Errorf("unknown ProjectTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectTaskMutation) ResetField(name string) error {
	switch name {
	case projecttask.FieldWorkingDir:
		m.ResetWorkingDir()
		return nil
	case projecttask.FieldTitle:
		m.ResetTitle()
		return nil
	case projecttask.FieldDescription:
		m.ResetDescription()
		return nil
	case projecttask.FieldAcceptanceCriteria:
		m.ResetAcceptanceCriteria()
		return nil
	case projecttask.FieldScopePaths:
		m.ResetScopePaths()
		return nil
	case projecttask.FieldRequiredTools:
		m.ResetRequiredTools()
		return nil
	case projecttask.FieldTaskType:
		m.ResetTaskType()
		return nil
	case projecttask.FieldTags:
		m.ResetTags()
		return nil
	case projecttask.FieldPriority:
		m.ResetPriority()
		return nil
	case projecttask.FieldStatus:
		m.ResetStatus()
		return nil
	case projecttask.FieldUserID:
		m.ResetUserID()
		return nil
	case projecttask.FieldClaimSessionID:
		m.ResetClaimSessionID()
		return nil
	case projecttask.FieldClaimAgentID:
		m.ResetClaimAgentID()
		return nil
	case projecttask.FieldClaimedAt:
		m.ResetClaimedAt()
		return nil
	case projecttask.FieldAttemptCount:
		m.ResetAttemptCount()
		return nil
	case projecttask.FieldBlockedBy:
		m.ResetBlockedBy()
		return nil
	case projecttask.FieldRelatedTaskIds:
		m.ResetRelatedTaskIds()
		return nil
	case projecttask.FieldOutcome:
		m.ResetOutcome()
		return nil
	case projecttask.FieldCompletionNotes:
		m.ResetCompletionNotes()
		return nil
	case projecttask.FieldFilesChanged:
		m.ResetFilesChanged()
		return nil
	case projecttask.FieldLastError:
		m.ResetLastError()
		return nil
	case projecttask.FieldExtra:
		m.ResetExtra()
		return nil
	case projecttask.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case projecttask.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case projecttask.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case projecttask.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case projecttask.FieldLastTriggeredAt:
		m.ResetLastTriggeredAt()
		return nil
	}
	return fmt.Errorf("unknown ProjectTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectTaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectTaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectTaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectTaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProjectTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectTaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProjectTask edge %s", name)
}

// QueueTaskMutation represents an operation that mutates the QueueTask nodes in the graph.
type QueueTaskMutation struct {
	config
	op             Op
	typ            string
	id             *string
	task_type      *string
	model_name     *string
	content        *string
	metadata       *map[string]interface{}
	priority       *int
	addpriority    *int
	status         *queuetask.Status
	session_id     *string
	retry_count    *int
	addretry_count *int
	error_message  *string
	created_at     *time.Time
	claimed_at     *time.Time
	processed_at   *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*QueueTask, error)
	predicates     []predicate.QueueTask
}

var _ ent.Mutation = (*QueueTaskMutation)(nil)

// queuetaskOption allows management of the mutation configuration using functional options.
type queuetaskOption func(*QueueTaskMutation)

// newQueueTaskMutation creates new mutation for the QueueTask entity.
func newQueueTaskMutation(c config, op Op, opts ...queuetaskOption) *QueueTaskMutation {
	m := &QueueTaskMutation{
		config:        c,
		op:            op,
		typ:           TypeQueueTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQueueTaskID sets the ID field of the mutation.
func withQueueTaskID(id string) queuetaskOption {
	return func(m *QueueTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *QueueTask
		)
		m.oldValue = func(ctx context.Context) (*QueueTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QueueTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQueueTask sets the old QueueTask of the mutation.
func withQueueTask(node *QueueTask) queuetaskOption {
	return func(m *QueueTaskMutation) {
		m.oldValue = func(context.Context) (*QueueTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QueueTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QueueTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QueueTask entities.
func (m *QueueTaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QueueTaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QueueTaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QueueTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskType sets the "task_type" field.
func (m *QueueTaskMutation) SetTaskType(s string) {
	m.task_type = &s
}

// TaskType returns the value of the "task_type" field in the mutation.
func (m *QueueTaskMutation) TaskType() (r string, exists bool) {
	v := m.task_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskType returns the old "task_type" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldTaskType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskType: %w", err)
	}
	return oldValue.TaskType, nil
}

// ResetTaskType resets all changes to the "task_type" field.
func (m *QueueTaskMutation) ResetTaskType() {
	m.task_type = nil
}

// SetModelName sets the "model_name" field.
func (m *QueueTaskMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *QueueTaskMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldModelName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ResetModelName resets all changes to the "model_name" field.
func (m *QueueTaskMutation) ResetModelName() {
	m.model_name = nil
}

// SetContent sets the "content" field.
func (m *QueueTaskMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *QueueTaskMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ClearContent clears the value of the "content" field.
func (m *QueueTaskMutation) ClearContent() {
	m.content = nil
	m.clearedFields[queuetask.FieldContent] = struct{}{}
}

// ContentCleared returns if the "content" field was cleared in this mutation.
func (m *QueueTaskMutation) ContentCleared() bool {
	_, ok := m.clearedFields[queuetask.FieldContent]
	return ok
}

// ResetContent resets all changes to the "content" field.
func (m *QueueTaskMutation) ResetContent() {
	m.content = nil
	delete(m.clearedFields, queuetask.FieldContent)
}

// SetMetadata sets the "metadata" field.
func (m *QueueTaskMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *QueueTaskMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *QueueTaskMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[queuetask.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *QueueTaskMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[queuetask.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *QueueTaskMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, queuetask.FieldMetadata)
}

// SetPriority sets the "priority" field.
func (m *QueueTaskMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *QueueTaskMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *QueueTaskMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *QueueTaskMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *QueueTaskMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetStatus sets the "status" field.
func (m *QueueTaskMutation) SetStatus(q queuetask.Status) {
	m.status = &q
}

// Status returns the value of the "status" field in the mutation.
func (m *QueueTaskMutation) Status() (r queuetask.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldStatus(ctx context.Context) (v queuetask.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *QueueTaskMutation) ResetStatus() {
	m.status = nil
}

// SetSessionID sets the "session_id" field.
func (m *QueueTaskMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *QueueTaskMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *QueueTaskMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[queuetask.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *QueueTaskMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[queuetask.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *QueueTaskMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, queuetask.FieldSessionID)
}

// SetRetryCount sets the "retry_count" field.
func (m *QueueTaskMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *QueueTaskMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *QueueTaskMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *QueueTaskMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *QueueTaskMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *QueueTaskMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *QueueTaskMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *QueueTaskMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[queuetask.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *QueueTaskMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[queuetask.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *QueueTaskMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, queuetask.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *QueueTaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QueueTaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QueueTaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetClaimedAt sets the "claimed_at" field.
func (m *QueueTaskMutation) SetClaimedAt(t time.Time) {
	m.claimed_at = &t
}

// ClaimedAt returns the value of the "claimed_at" field in the mutation.
func (m *QueueTaskMutation) ClaimedAt() (r time.Time, exists bool) {
	v := m.claimed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedAt returns the old "claimed_at" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldClaimedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedAt: %w", err)
	}
	return oldValue.ClaimedAt, nil
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (m *QueueTaskMutation) ClearClaimedAt() {
	m.claimed_at = nil
	m.clearedFields[queuetask.FieldClaimedAt] = struct{}{}
}

// ClaimedAtCleared returns if the "claimed_at" field was cleared in this mutation.
func (m *QueueTaskMutation) ClaimedAtCleared() bool {
	_, ok := m.clearedFields[queuetask.FieldClaimedAt]
	return ok
}

// ResetClaimedAt resets all changes to the "claimed_at" field.
func (m *QueueTaskMutation) ResetClaimedAt() {
	m.claimed_at = nil
	delete(m.clearedFields, queuetask.FieldClaimedAt)
}

// SetProcessedAt sets the "processed_at" field.
func (m *QueueTaskMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *QueueTaskMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *QueueTaskMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[queuetask.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *QueueTaskMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[queuetask.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *QueueTaskMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, queuetask.FieldProcessedAt)
}

// Where appends a list predicates to the QueueTaskMutation builder.
func (m *QueueTaskMutation) Where(ps ...predicate.QueueTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QueueTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QueueTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QueueTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QueueTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QueueTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QueueTask).
func (m *QueueTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QueueTaskMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.task_type != nil {
		fields = append(fields, queuetask.FieldTaskType)
	}
	if m.model_name != nil {
		fields = append(fields, queuetask.FieldModelName)
	}
	if m.content != nil {
		fields = append(fields, queuetask.FieldContent)
	}
	if m.metadata != nil {
		fields = append(fields, queuetask.FieldMetadata)
	}
	if m.priority != nil {
		fields = append(fields, queuetask.FieldPriority)
	}
	if m.status != nil {
		fields = append(fields, queuetask.FieldStatus)
	}
	if m.session_id != nil {
		fields = append(fields, queuetask.FieldSessionID)
	}
	if m.retry_count != nil {
		fields = append(fields, queuetask.FieldRetryCount)
	}
	if m.error_message != nil {
		fields = append(fields, queuetask.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, queuetask.FieldCreatedAt)
	}
	if m.claimed_at != nil {
		fields = append(fields, queuetask.FieldClaimedAt)
	}
	if m.processed_at != nil {
		fields = append(fields, queuetask.FieldProcessedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QueueTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case queuetask.FieldTaskType:
		return m.TaskType()
	case queuetask.FieldModelName:
		return m.ModelName()
	case queuetask.FieldContent:
		return m.Content()
	case queuetask.FieldMetadata:
		return m.Metadata()
	case queuetask.FieldPriority:
		return m.Priority()
	case queuetask.FieldStatus:
		return m.Status()
	case queuetask.FieldSessionID:
		return m.SessionID()
	case queuetask.FieldRetryCount:
		return m.RetryCount()
	case queuetask.FieldErrorMessage:
		return m.ErrorMessage()
	case queuetask.FieldCreatedAt:
		return m.CreatedAt()
	case queuetask.FieldClaimedAt:
		return m.ClaimedAt()
	case queuetask.FieldProcessedAt:
		return m.ProcessedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QueueTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case queuetask.FieldTaskType:
		return m.OldTaskType(ctx)
	case queuetask.FieldModelName:
		return m.OldModelName(ctx)
	case queuetask.FieldContent:
		return m.OldContent(ctx)
	case queuetask.FieldMetadata:
		return m.OldMetadata(ctx)
	case queuetask.FieldPriority:
		return m.OldPriority(ctx)
	case queuetask.FieldStatus:
		return m.OldStatus(ctx)
	case queuetask.FieldSessionID:
		return m.OldSessionID(ctx)
	case queuetask.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case queuetask.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case queuetask.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case queuetask.FieldClaimedAt:
		return m.OldClaimedAt(ctx)
	case queuetask.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QueueTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueueTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case queuetask.FieldTaskType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskType(v)
		return nil
	case queuetask.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case queuetask.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case queuetask.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case queuetask.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case queuetask.FieldStatus:
		v, ok := value.(queuetask.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case queuetask.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case queuetask.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case queuetask.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case queuetask.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case queuetask.FieldClaimedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedAt(v)
		return nil
	case queuetask.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QueueTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QueueTaskMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, queuetask.FieldPriority)
	}
	if m.addretry_count != nil {
		fields = append(fields, queuetask.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QueueTaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case queuetask.FieldPriority:
		return m.AddedPriority()
	case queuetask.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueueTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case queuetask.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case queuetask.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown QueueTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QueueTaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(queuetask.FieldContent) {
		fields = append(fields, queuetask.FieldContent)
	}
	if m.FieldCleared(queuetask.FieldMetadata) {
		fields = append(fields, queuetask.FieldMetadata)
	}
	if m.FieldCleared(queuetask.FieldSessionID) {
		fields = append(fields, queuetask.FieldSessionID)
	}
	if m.FieldCleared(queuetask.FieldErrorMessage) {
		fields = append(fields, queuetask.FieldErrorMessage)
	}
	if m.FieldCleared(queuetask.FieldClaimedAt) {
		fields = append(fields, queuetask.FieldClaimedAt)
	}
	if m.FieldCleared(queuetask.FieldProcessedAt) {
		fields = append(fields, queuetask.FieldProcessedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QueueTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QueueTaskMutation) ClearField(name string) error {
	switch name {
	case queuetask.FieldContent:
		m.ClearContent()
		return nil
	case queuetask.FieldMetadata:
		m.ClearMetadata()
		return nil
	case queuetask.FieldSessionID:
		m.ClearSessionID()
		return nil
	case queuetask.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case queuetask.FieldClaimedAt:
		m.ClearClaimedAt()
		return nil
	case queuetask.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown QueueTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QueueTaskMutation) ResetField(name string) error {
	switch name {
	case queuetask.FieldTaskType:
		m.ResetTaskType()
		return nil
	case queuetask.FieldModelName:
		m.ResetModelName()
		return nil
	case queuetask.FieldContent:
		m.ResetContent()
		return nil
	case queuetask.FieldMetadata:
		m.ResetMetadata()
		return nil
	case queuetask.FieldPriority:
		m.ResetPriority()
		return nil
	case queuetask.FieldStatus:
		m.ResetStatus()
		return nil
	case queuetask.FieldSessionID:
		m.ResetSessionID()
		return nil
	case queuetask.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case queuetask.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case queuetask.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case queuetask.FieldClaimedAt:
		m.ResetClaimedAt()
		return nil
	case queuetask.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown QueueTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QueueTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QueueTaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QueueTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QueueTaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QueueTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QueueTaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QueueTaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QueueTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QueueTaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QueueTask edge %s", name)
}

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	working_dir        *string
	start_time         *time.Time
	end_time           *time.Time
	last_activity      *time.Time
	continued_from     *string
	medium             *string
	user_id            *string
	personality        *string
	sandbox_policy     *string
	mission_id         *string
	summary            *string
	summary_updated_at *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Session, error)
	predicates         []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id string) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Session entities.
func (m *SessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkingDir sets the "working_dir" field.
func (m *SessionMutation) SetWorkingDir(s string) {
	m.working_dir = &s
}

// WorkingDir returns the value of the "working_dir" field in the mutation.
func (m *SessionMutation) WorkingDir() (r string, exists bool) {
	v := m.working_dir
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkingDir returns the old "working_dir" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldWorkingDir(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkingDir is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkingDir requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkingDir: %w", err)
	}
	return oldValue.WorkingDir, nil
}

// ClearWorkingDir clears the value of the "working_dir" field.
func (m *SessionMutation) ClearWorkingDir() {
	m.working_dir = nil
	m.clearedFields[session.FieldWorkingDir] = struct{}{}
}

// WorkingDirCleared returns if the "working_dir" field was cleared in this mutation.
func (m *SessionMutation) WorkingDirCleared() bool {
	_, ok := m.clearedFields[session.FieldWorkingDir]
	return ok
}

// ResetWorkingDir resets all changes to the "working_dir" field.
func (m *SessionMutation) ResetWorkingDir() {
	m.working_dir = nil
	delete(m.clearedFields, session.FieldWorkingDir)
}

// SetStartTime sets the "start_time" field.
func (m *SessionMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *SessionMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStartTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *SessionMutation) ResetStartTime() {
	m.start_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *SessionMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *SessionMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldEndTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ClearEndTime clears the value of the "end_time" field.
func (m *SessionMutation) ClearEndTime() {
	m.end_time = nil
	m.clearedFields[session.FieldEndTime] = struct{}{}
}

// EndTimeCleared returns if the "end_time" field was cleared in this mutation.
func (m *SessionMutation) EndTimeCleared() bool {
	_, ok := m.clearedFields[session.FieldEndTime]
	return ok
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *SessionMutation) ResetEndTime() {
	m.end_time = nil
	delete(m.clearedFields, session.FieldEndTime)
}

// SetLastActivity sets the "last_activity" field.
func (m *SessionMutation) SetLastActivity(t time.Time) {
	m.last_activity = &t
}

// LastActivity returns the value of the "last_activity" field in the mutation.
func (m *SessionMutation) LastActivity() (r time.Time, exists bool) {
	v := m.last_activity
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActivity returns the old "last_activity" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldLastActivity(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActivity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActivity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActivity: %w", err)
	}
	return oldValue.LastActivity, nil
}

// ResetLastActivity resets all changes to the "last_activity" field.
func (m *SessionMutation) ResetLastActivity() {
	m.last_activity = nil
}

// SetContinuedFrom sets the "continued_from" field.
func (m *SessionMutation) SetContinuedFrom(s string) {
	m.continued_from = &s
}

// ContinuedFrom returns the value of the "continued_from" field in the mutation.
func (m *SessionMutation) ContinuedFrom() (r string, exists bool) {
	v := m.continued_from
	if v == nil {
		return
	}
	return *v, true
}

// OldContinuedFrom returns the old "continued_from" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldContinuedFrom(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContinuedFrom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContinuedFrom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContinuedFrom: %w", err)
	}
	return oldValue.ContinuedFrom, nil
}

// ClearContinuedFrom clears the value of the "continued_from" field.
func (m *SessionMutation) ClearContinuedFrom() {
	m.continued_from = nil
	m.clearedFields[session.FieldContinuedFrom] = struct{}{}
}

// ContinuedFromCleared returns if the "continued_from" field was cleared in this mutation.
func (m *SessionMutation) ContinuedFromCleared() bool {
	_, ok := m.clearedFields[session.FieldContinuedFrom]
	return ok
}

// ResetContinuedFrom resets all changes to the "continued_from" field.
func (m *SessionMutation) ResetContinuedFrom() {
	m.continued_from = nil
	delete(m.clearedFields, session.FieldContinuedFrom)
}

// SetMedium sets the "medium" field.
func (m *SessionMutation) SetMedium(s string) {
	m.medium = &s
}

// Medium returns the value of the "medium" field in the mutation.
func (m *SessionMutation) Medium() (r string, exists bool) {
	v := m.medium
	if v == nil {
		return
	}
	return *v, true
}

// OldMedium returns the old "medium" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldMedium(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMedium is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMedium requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMedium: %w", err)
	}
	return oldValue.Medium, nil
}

// ClearMedium clears the value of the "medium" field.
func (m *SessionMutation) ClearMedium() {
	m.medium = nil
	m.clearedFields[session.FieldMedium] = struct{}{}
}

// MediumCleared returns if the "medium" field was cleared in this mutation.
func (m *SessionMutation) MediumCleared() bool {
	_, ok := m.clearedFields[session.FieldMedium]
	return ok
}

// ResetMedium resets all changes to the "medium" field.
func (m *SessionMutation) ResetMedium() {
	m.medium = nil
	delete(m.clearedFields, session.FieldMedium)
}

// SetUserID sets the "user_id" field.
func (m *SessionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SessionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *SessionMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[session.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *SessionMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[session.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SessionMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, session.FieldUserID)
}

// SetPersonality sets the "personality" field.
func (m *SessionMutation) SetPersonality(s string) {
	m.personality = &s
}

// Personality returns the value of the "personality" field in the mutation.
func (m *SessionMutation) Personality() (r string, exists bool) {
	v := m.personality
	if v == nil {
		return
	}
	return *v, true
}

// OldPersonality returns the old "personality" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldPersonality(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersonality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersonality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersonality: %w", err)
	}
	return oldValue.Personality, nil
}

// ClearPersonality clears the value of the "personality" field.
func (m *SessionMutation) ClearPersonality() {
	m.personality = nil
	m.clearedFields[session.FieldPersonality] = struct{}{}
}

// PersonalityCleared returns if the "personality" field was cleared in this mutation.
func (m *SessionMutation) PersonalityCleared() bool {
	_, ok := m.clearedFields[session.FieldPersonality]
	return ok
}

// ResetPersonality resets all changes to the "personality" field.
func (m *SessionMutation) ResetPersonality() {
	m.personality = nil
	delete(m.clearedFields, session.FieldPersonality)
}

// SetSandboxPolicy sets the "sandbox_policy" field.
func (m *SessionMutation) SetSandboxPolicy(s string) {
	m.sandbox_policy = &s
}

// SandboxPolicy returns the value of the "sandbox_policy" field in the mutation.
func (m *SessionMutation) SandboxPolicy() (r string, exists bool) {
	v := m.sandbox_policy
	if v == nil {
		return
	}
	return *v, true
}

// OldSandboxPolicy returns the old "sandbox_policy" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldSandboxPolicy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSandboxPolicy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSandboxPolicy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSandboxPolicy: %w", err)
	}
	return oldValue.SandboxPolicy, nil
}

// ClearSandboxPolicy clears the value of the "sandbox_policy" field.
func (m *SessionMutation) ClearSandboxPolicy() {
	m.sandbox_policy = nil
	m.clearedFields[session.FieldSandboxPolicy] = struct{}{}
}

// SandboxPolicyCleared returns if the "sandbox_policy" field was cleared in this mutation.
func (m *SessionMutation) SandboxPolicyCleared() bool {
	_, ok := m.clearedFields[session.FieldSandboxPolicy]
	return ok
}

// ResetSandboxPolicy resets all changes to the "sandbox_policy" field.
func (m *SessionMutation) ResetSandboxPolicy() {
	m.sandbox_policy = nil
	delete(m.clearedFields, session.FieldSandboxPolicy)
}

// SetMissionID sets the "mission_id" field.
func (m *SessionMutation) SetMissionID(s string) {
	m.mission_id = &s
}

// MissionID returns the value of the "mission_id" field in the mutation.
func (m *SessionMutation) MissionID() (r string, exists bool) {
	v := m.mission_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMissionID returns the old "mission_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldMissionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMissionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMissionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMissionID: %w", err)
	}
	return oldValue.MissionID, nil
}

// ClearMissionID clears the value of the "mission_id" field.
func (m *SessionMutation) ClearMissionID() {
	m.mission_id = nil
	m.clearedFields[session.FieldMissionID] = struct{}{}
}

// MissionIDCleared returns if the "mission_id" field was cleared in this mutation.
func (m *SessionMutation) MissionIDCleared() bool {
	_, ok := m.clearedFields[session.FieldMissionID]
	return ok
}

// ResetMissionID resets all changes to the "mission_id" field.
func (m *SessionMutation) ResetMissionID() {
	m.mission_id = nil
	delete(m.clearedFields, session.FieldMissionID)
}

// SetSummary sets the "summary" field.
func (m *SessionMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *SessionMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *SessionMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[session.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *SessionMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[session.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *SessionMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, session.FieldSummary)
}

// SetSummaryUpdatedAt sets the "summary_updated_at" field.
func (m *SessionMutation) SetSummaryUpdatedAt(t time.Time) {
	m.summary_updated_at = &t
}

// SummaryUpdatedAt returns the value of the "summary_updated_at" field in the mutation.
func (m *SessionMutation) SummaryUpdatedAt() (r time.Time, exists bool) {
	v := m.summary_updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSummaryUpdatedAt returns the old "summary_updated_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldSummaryUpdatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummaryUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummaryUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummaryUpdatedAt: %w", err)
	}
	return oldValue.SummaryUpdatedAt, nil
}

// ClearSummaryUpdatedAt clears the value of the "summary_updated_at" field.
func (m *SessionMutation) ClearSummaryUpdatedAt() {
	m.summary_updated_at = nil
	m.clearedFields[session.FieldSummaryUpdatedAt] = struct{}{}
}

// SummaryUpdatedAtCleared returns if the "summary_updated_at" field was cleared in this mutation.
func (m *SessionMutation) SummaryUpdatedAtCleared() bool {
	_, ok := m.clearedFields[session.FieldSummaryUpdatedAt]
	return ok
}

// ResetSummaryUpdatedAt resets all changes to the "summary_updated_at" field.
func (m *SessionMutation) ResetSummaryUpdatedAt() {
	m.summary_updated_at = nil
	delete(m.clearedFields, session.FieldSummaryUpdatedAt)
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.working_dir != nil {
		fields = append(fields, session.FieldWorkingDir)
	}
	if m.start_time != nil {
		fields = append(fields, session.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, session.FieldEndTime)
	}
	if m.last_activity != nil {
		fields = append(fields, session.FieldLastActivity)
	}
	if m.continued_from != nil {
		fields = append(fields, session.FieldContinuedFrom)
	}
	if m.medium != nil {
		fields = append(fields, session.FieldMedium)
	}
	if m.user_id != nil {
		fields = append(fields, session.FieldUserID)
	}
	if m.personality != nil {
		fields = append(fields, session.FieldPersonality)
	}
	if m.sandbox_policy != nil {
		fields = append(fields, session.FieldSandboxPolicy)
	}
	if m.mission_id != nil {
		fields = append(fields, session.FieldMissionID)
	}
	if m.summary != nil {
		fields = append(fields, session.FieldSummary)
	}
	if m.summary_updated_at != nil {
		fields = append(fields, session.FieldSummaryUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldWorkingDir:
		return m.WorkingDir()
	case session.FieldStartTime:
		return m.StartTime()
	case session.FieldEndTime:
		return m.EndTime()
	case session.FieldLastActivity:
		return m.LastActivity()
	case session.FieldContinuedFrom:
		return m.ContinuedFrom()
	case session.FieldMedium:
		return m.Medium()
	case session.FieldUserID:
		return m.UserID()
	case session.FieldPersonality:
		return m.Personality()
	case session.FieldSandboxPolicy:
		return m.SandboxPolicy()
	case session.FieldMissionID:
		return m.MissionID()
	case session.FieldSummary:
		return m.Summary()
	case session.FieldSummaryUpdatedAt:
		return m.SummaryUpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldWorkingDir:
		return m.OldWorkingDir(ctx)
	case session.FieldStartTime:
		return m.OldStartTime(ctx)
	case session.FieldEndTime:
		return m.OldEndTime(ctx)
	case session.FieldLastActivity:
		return m.OldLastActivity(ctx)
	case session.FieldContinuedFrom:
		return m.OldContinuedFrom(ctx)
	case session.FieldMedium:
		return m.OldMedium(ctx)
	case session.FieldUserID:
		return m.OldUserID(ctx)
	case session.FieldPersonality:
		return m.OldPersonality(ctx)
	case session.FieldSandboxPolicy:
		return m.OldSandboxPolicy(ctx)
	case session.FieldMissionID:
		return m.OldMissionID(ctx)
	case session.FieldSummary:
		return m.OldSummary(ctx)
	case session.FieldSummaryUpdatedAt:
		return m.OldSummaryUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldWorkingDir:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkingDir(v)
		return nil
	case session.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case session.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case session.FieldLastActivity:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActivity(v)
		return nil
	case session.FieldContinuedFrom:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContinuedFrom(v)
		return nil
	case session.FieldMedium:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMedium(v)
		return nil
	case session.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case session.FieldPersonality:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersonality(v)
		return nil
	case session.FieldSandboxPolicy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSandboxPolicy(v)
		return nil
	case session.FieldMissionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMissionID(v)
		return nil
	case session.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case session.FieldSummaryUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummaryUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(session.FieldWorkingDir) {
		fields = append(fields, session.FieldWorkingDir)
	}
	if m.FieldCleared(session.FieldEndTime) {
		fields = append(fields, session.FieldEndTime)
	}
	if m.FieldCleared(session.FieldContinuedFrom) {
		fields = append(fields, session.FieldContinuedFrom)
	}
	if m.FieldCleared(session.FieldMedium) {
		fields = append(fields, session.FieldMedium)
	}
	if m.FieldCleared(session.FieldUserID) {
		fields = append(fields, session.FieldUserID)
	}
	if m.FieldCleared(session.FieldPersonality) {
		fields = append(fields, session.FieldPersonality)
	}
	if m.FieldCleared(session.FieldSandboxPolicy) {
		fields = append(fields, session.FieldSandboxPolicy)
	}
	if m.FieldCleared(session.FieldMissionID) {
		fields = append(fields, session.FieldMissionID)
	}
	if m.FieldCleared(session.FieldSummary) {
		fields = append(fields, session.FieldSummary)
	}
	if m.FieldCleared(session.FieldSummaryUpdatedAt) {
		fields = append(fields, session.FieldSummaryUpdatedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	switch name {
	case session.FieldWorkingDir:
		m.ClearWorkingDir()
		return nil
	case session.FieldEndTime:
		m.ClearEndTime()
		return nil
	case session.FieldContinuedFrom:
		m.ClearContinuedFrom()
		return nil
	case session.FieldMedium:
		m.ClearMedium()
		return nil
	case session.FieldUserID:
		m.ClearUserID()
		return nil
	case session.FieldPersonality:
		m.ClearPersonality()
		return nil
	case session.FieldSandboxPolicy:
		m.ClearSandboxPolicy()
		return nil
	case session.FieldMissionID:
		m.ClearMissionID()
		return nil
	case session.FieldSummary:
		m.ClearSummary()
		return nil
	case session.FieldSummaryUpdatedAt:
		m.ClearSummaryUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldWorkingDir:
		m.ResetWorkingDir()
		return nil
	case session.FieldStartTime:
		m.ResetStartTime()
		return nil
	case session.FieldEndTime:
		m.ResetEndTime()
		return nil
	case session.FieldLastActivity:
		m.ResetLastActivity()
		return nil
	case session.FieldContinuedFrom:
		m.ResetContinuedFrom()
		return nil
	case session.FieldMedium:
		m.ResetMedium()
		return nil
	case session.FieldUserID:
		m.ResetUserID()
		return nil
	case session.FieldPersonality:
		m.ResetPersonality()
		return nil
	case session.FieldSandboxPolicy:
		m.ResetSandboxPolicy()
		return nil
	case session.FieldMissionID:
		m.ResetMissionID()
		return nil
	case session.FieldSummary:
		m.ResetSummary()
		return nil
	case session.FieldSummaryUpdatedAt:
		m.ResetSummaryUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Session edge %s", name)
}

// SummaryContextMutation represents an operation that mutates the SummaryContext nodes in the graph.
type SummaryContextMutation struct {
	config
	op             Op
	typ            string
	id             *string
	summary        *string
	sessions       *[]string
	appendsessions []string
	user_id        *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*SummaryContext, error)
	predicates     []predicate.SummaryContext
}

var _ ent.Mutation = (*SummaryContextMutation)(nil)

// summarycontextOption allows management of the mutation configuration using functional options.
type summarycontextOption func(*SummaryContextMutation)

// newSummaryContextMutation creates new mutation for the SummaryContext entity.
func newSummaryContextMutation(c config, op Op, opts ...summarycontextOption) *SummaryContextMutation {
	m := &SummaryContextMutation{
		config:        c,
		op:            op,
		typ:           TypeSummaryContext,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSummaryContextID sets the ID field of the mutation.
func withSummaryContextID(id string) summarycontextOption {
	return func(m *SummaryContextMutation) {
		var (
			err   error
			once  sync.Once
			value *SummaryContext
		)
		m.oldValue = func(ctx context.Context) (*SummaryContext, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SummaryContext.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSummaryContext sets the old SummaryContext of the mutation.
func withSummaryContext(node *SummaryContext) summarycontextOption {
	return func(m *SummaryContextMutation) {
		m.oldValue = func(context.Context) (*SummaryContext, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SummaryContextMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SummaryContextMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SummaryContext entities.
func (m *SummaryContextMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SummaryContextMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SummaryContextMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SummaryContext.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSummary sets the "summary" field.
func (m *SummaryContextMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *SummaryContextMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the SummaryContext entity.
// If the SummaryContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryContextMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ResetSummary resets all changes to the "summary" field.
func (m *SummaryContextMutation) ResetSummary() {
	m.summary = nil
}

// SetSessions sets the "sessions" field.
func (m *SummaryContextMutation) SetSessions(s []string) {
	m.sessions = &s
	m.appendsessions = nil
}

// Sessions returns the value of the "sessions" field in the mutation.
func (m *SummaryContextMutation) Sessions() (r []string, exists bool) {
	v := m.sessions
	if v == nil {
		return
	}
	return *v, true
}

// OldSessions returns the old "sessions" field's value of the SummaryContext entity.
// If the SummaryContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryContextMutation) OldSessions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessions: %w", err)
	}
	return oldValue.Sessions, nil
}

// AppendSessions adds s to the "sessions" field.
func (m *SummaryContextMutation) AppendSessions(s []string) {
	m.appendsessions = append(m.appendsessions, s...)
}

// AppendedSessions returns the list of values that were appended to the "sessions" field in this mutation.
func (m *SummaryContextMutation) AppendedSessions() ([]string, bool) {
	if len(m.appendsessions) == 0 {
		return nil, false
	}
	return m.appendsessions, true
}

// ResetSessions resets all changes to the "sessions" field.
func (m *SummaryContextMutation) ResetSessions() {
	m.sessions = nil
	m.appendsessions = nil
}

// SetUserID sets the "user_id" field.
func (m *SummaryContextMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SummaryContextMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SummaryContext entity.
// If the SummaryContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryContextMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *SummaryContextMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[summarycontext.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *SummaryContextMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[summarycontext.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SummaryContextMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, summarycontext.FieldUserID)
}

// SetCreatedAt sets the "created_at" field.
func (m *SummaryContextMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SummaryContextMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SummaryContext entity.
// If the SummaryContext object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryContextMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SummaryContextMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the SummaryContextMutation builder.
func (m *SummaryContextMutation) Where(ps ...predicate.SummaryContext) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SummaryContextMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SummaryContextMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SummaryContext, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SummaryContextMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SummaryContextMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SummaryContext).
func (m *SummaryContextMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SummaryContextMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.summary != nil {
		fields = append(fields, summarycontext.FieldSummary)
	}
	if m.sessions != nil {
		fields = append(fields, summarycontext.FieldSessions)
	}
	if m.user_id != nil {
		fields = append(fields, summarycontext.FieldUserID)
	}
	if m.created_at != nil {
		fields = append(fields, summarycontext.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SummaryContextMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case summarycontext.FieldSummary:
		return m.Summary()
	case summarycontext.FieldSessions:
		return m.Sessions()
	case summarycontext.FieldUserID:
		return m.UserID()
	case summarycontext.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SummaryContextMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case summarycontext.FieldSummary:
		return m.OldSummary(ctx)
	case summarycontext.FieldSessions:
		return m.OldSessions(ctx)
	case summarycontext.FieldUserID:
		return m.OldUserID(ctx)
	case summarycontext.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SummaryContext field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SummaryContextMutation) SetField(name string, value ent.Value) error {
	switch name {
	case summarycontext.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case summarycontext.FieldSessions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessions(v)
		return nil
	case summarycontext.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case summarycontext.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SummaryContext field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SummaryContextMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SummaryContextMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SummaryContextMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SummaryContext numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SummaryContextMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(summarycontext.FieldUserID) {
		fields = append(fields, summarycontext.FieldUserID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SummaryContextMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SummaryContextMutation) ClearField(name string) error {
	switch name {
	case summarycontext.FieldUserID:
		m.ClearUserID()
		return nil
	}
	return fmt.Errorf("unknown SummaryContext nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SummaryContextMutation) ResetField(name string) error {
	switch name {
	case summarycontext.FieldSummary:
		m.ResetSummary()
		return nil
	case summarycontext.FieldSessions:
		m.ResetSessions()
		return nil
	case summarycontext.FieldUserID:
		m.ResetUserID()
		return nil
	case summarycontext.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SummaryContext field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SummaryContextMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SummaryContextMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SummaryContextMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SummaryContextMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SummaryContextMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SummaryContextMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SummaryContextMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SummaryContext unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SummaryContextMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SummaryContext edge %s", name)
}

// SurfacedFindingMutation represents an operation that mutates the SurfacedFinding nodes in the graph.
type SurfacedFindingMutation struct {
	config
	op            Op
	typ           string
	id            *string
	finding_id    *string
	session_id    *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SurfacedFinding, error)
	predicates    []predicate.SurfacedFinding
}

var _ ent.Mutation = (*SurfacedFindingMutation)(nil)

// surfacedfindingOption allows management of the mutation configuration using functional options.
type surfacedfindingOption func(*SurfacedFindingMutation)

// newSurfacedFindingMutation creates new mutation for the SurfacedFinding entity.
func newSurfacedFindingMutation(c config, op Op, opts ...surfacedfindingOption) *SurfacedFindingMutation {
	m := &SurfacedFindingMutation{
		config:        c,
		op:            op,
		typ:           TypeSurfacedFinding,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSurfacedFindingID sets the ID field of the mutation.
func withSurfacedFindingID(id string) surfacedfindingOption {
	return func(m *SurfacedFindingMutation) {
		var (
			err   error
			once  sync.Once
			value *SurfacedFinding
		)
		m.oldValue = func(ctx context.Context) (*SurfacedFinding, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SurfacedFinding.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSurfacedFinding sets the old SurfacedFinding of the mutation.
func withSurfacedFinding(node *SurfacedFinding) surfacedfindingOption {
	return func(m *SurfacedFindingMutation) {
		m.oldValue = func(context.Context) (*SurfacedFinding, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SurfacedFindingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SurfacedFindingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SurfacedFinding entities.
func (m *SurfacedFindingMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SurfacedFindingMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SurfacedFindingMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SurfacedFinding.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFindingID sets the "finding_id" field.
func (m *SurfacedFindingMutation) SetFindingID(s string) {
	m.finding_id = &s
}

// FindingID returns the value of the "finding_id" field in the mutation.
func (m *SurfacedFindingMutation) FindingID() (r string, exists bool) {
	v := m.finding_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFindingID returns the old "finding_id" field's value of the SurfacedFinding entity.
// If the SurfacedFinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SurfacedFindingMutation) OldFindingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFindingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFindingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFindingID: %w", err)
	}
	return oldValue.FindingID, nil
}

// ResetFindingID resets all changes to the "finding_id" field.
func (m *SurfacedFindingMutation) ResetFindingID() {
	m.finding_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *SurfacedFindingMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SurfacedFindingMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SurfacedFinding entity.
// If the SurfacedFinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SurfacedFindingMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SurfacedFindingMutation) ResetSessionID() {
	m.session_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SurfacedFindingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SurfacedFindingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SurfacedFinding entity.
// If the SurfacedFinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SurfacedFindingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SurfacedFindingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the SurfacedFindingMutation builder.
func (m *SurfacedFindingMutation) Where(ps ...predicate.SurfacedFinding) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SurfacedFindingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SurfacedFindingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SurfacedFinding, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SurfacedFindingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SurfacedFindingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SurfacedFinding).
func (m *SurfacedFindingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SurfacedFindingMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.finding_id != nil {
		fields = append(fields, surfacedfinding.FieldFindingID)
	}
	if m.session_id != nil {
		fields = append(fields, surfacedfinding.FieldSessionID)
	}
	if m.created_at != nil {
		fields = append(fields, surfacedfinding.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SurfacedFindingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case surfacedfinding.FieldFindingID:
		return m.FindingID()
	case surfacedfinding.FieldSessionID:
		return m.SessionID()
	case surfacedfinding.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SurfacedFindingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case surfacedfinding.FieldFindingID:
		return m.OldFindingID(ctx)
	case surfacedfinding.FieldSessionID:
		return m.OldSessionID(ctx)
	case surfacedfinding.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SurfacedFinding field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SurfacedFindingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case surfacedfinding.FieldFindingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFindingID(v)
		return nil
	case surfacedfinding.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case surfacedfinding.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SurfacedFinding field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SurfacedFindingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SurfacedFindingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SurfacedFindingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SurfacedFinding numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SurfacedFindingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SurfacedFindingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SurfacedFindingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SurfacedFinding nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SurfacedFindingMutation) ResetField(name string) error {
	switch name {
	case surfacedfinding.FieldFindingID:
		m.ResetFindingID()
		return nil
	case surfacedfinding.FieldSessionID:
		m.ResetSessionID()
		return nil
	case surfacedfinding.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SurfacedFinding field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SurfacedFindingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SurfacedFindingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SurfacedFindingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SurfacedFindingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SurfacedFindingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SurfacedFindingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SurfacedFindingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SurfacedFinding unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SurfacedFindingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SurfacedFinding edge %s", name)
}
