package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kestrel-ai/kestrel/ent"
	"github.com/kestrel-ai/kestrel/ent/ambientnotification"
)

// maxEscalationDepth bounds parent-chain traversal when counting
// prior escalations for a notification.
const maxEscalationDepth = 8

// CreateNotificationInput describes a proactive message to persist.
type CreateNotificationInput struct {
	UserID           string
	Message          string
	Priority         string
	TargetMedium     string
	TargetLocation   string
	RoutingReasoning string
	ParentID         string
	ContextSnapshot  map[string]interface{}
}

// NotificationService manages ambient notifications. The daemon only
// writes pending rows; delivery agents own the status transitions.
type NotificationService struct {
	client *ent.Client
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(client *ent.Client) *NotificationService {
	return &NotificationService{client: client}
}

// Create persists a pending notification.
func (s *NotificationService) Create(ctx context.Context, in CreateNotificationInput) (*ent.AmbientNotification, error) {
	if in.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if in.Message == "" {
		return nil, NewValidationError("message", "required")
	}
	priority := ambientnotification.Priority(in.Priority)
	if in.Priority == "" {
		priority = ambientnotification.PriorityAmbient
	}
	switch priority {
	case ambientnotification.PrioritySilent, ambientnotification.PriorityAmbient,
		ambientnotification.PriorityConversation, ambientnotification.PriorityUrgent:
	default:
		return nil, NewValidationError("priority", "must be silent, ambient, conversation, or urgent")
	}

	builder := s.client.AmbientNotification.Create().
		SetID(uuid.New().String()).
		SetUserID(in.UserID).
		SetMessage(in.Message).
		SetPriority(priority).
		SetStatus(ambientnotification.StatusPending)
	if in.TargetMedium != "" {
		builder.SetTargetMedium(in.TargetMedium)
	}
	if in.TargetLocation != "" {
		builder.SetTargetLocation(in.TargetLocation)
	}
	if in.RoutingReasoning != "" {
		builder.SetRoutingReasoning(in.RoutingReasoning)
	}
	if in.ParentID != "" {
		builder.SetParentNotificationID(in.ParentID)
	}
	if in.ContextSnapshot != nil {
		builder.SetContextSnapshot(in.ContextSnapshot)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	return created, nil
}

// RecentUnacknowledged returns a user's unacknowledged notifications,
// newest first.
func (s *NotificationService) RecentUnacknowledged(ctx context.Context, userID string, limit int) ([]*ent.AmbientNotification, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	notifications, err := s.client.AmbientNotification.Query().
		Where(
			ambientnotification.UserIDEQ(userID),
			ambientnotification.AcknowledgedEQ(false),
		).
		Order(ent.Desc(ambientnotification.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// Acknowledge marks the notification acknowledged and records the
// response latency. Acknowledging twice is a no-op.
func (s *NotificationService) Acknowledge(ctx context.Context, notificationID string) (*ent.AmbientNotification, error) {
	found, err := s.client.AmbientNotification.Get(ctx, notificationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}
	if found.Acknowledged {
		return found, nil
	}

	now := time.Now()
	updated, err := found.Update().
		SetAcknowledged(true).
		SetAcknowledgedAt(now).
		SetResponseTimeSeconds(int(now.Sub(found.CreatedAt).Seconds())).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acknowledge notification: %w", err)
	}
	return updated, nil
}

// MarkDelivered flips a pending notification to delivered.
func (s *NotificationService) MarkDelivered(ctx context.Context, notificationID string) error {
	n, err := s.client.AmbientNotification.Update().
		Where(ambientnotification.IDEQ(notificationID)).
		SetStatus(ambientnotification.StatusDelivered).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark notification delivered: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteOldDelivered removes delivered notifications older than the
// given age. Pending and failed rows are kept so nothing undelivered is
// ever dropped.
func (s *NotificationService) DeleteOldDelivered(ctx context.Context, age time.Duration) (int, error) {
	cutoff := time.Now().Add(-age)
	n, err := s.client.AmbientNotification.Delete().
		Where(
			ambientnotification.StatusEQ(ambientnotification.StatusDelivered),
			ambientnotification.CreatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete delivered notifications: %w", err)
	}
	return n, nil
}

// EscalationDepth counts parent links above the notification, bounded
// by maxEscalationDepth.
func (s *NotificationService) EscalationDepth(ctx context.Context, notificationID string) (int, error) {
	depth := 0
	current := notificationID
	seen := map[string]bool{}

	for depth < maxEscalationDepth {
		if seen[current] {
			return depth, nil
		}
		seen[current] = true

		found, err := s.client.AmbientNotification.Get(ctx, current)
		if err != nil {
			if ent.IsNotFound(err) {
				return depth, nil
			}
			return 0, fmt.Errorf("failed to walk escalation chain: %w", err)
		}
		if found.ParentNotificationID == nil || *found.ParentNotificationID == "" {
			return depth, nil
		}
		current = *found.ParentNotificationID
		depth++
	}
	return depth, nil
}
