package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kestrel-ai/kestrel/ent"
	"github.com/kestrel-ai/kestrel/ent/mediumpresence"
	"github.com/kestrel-ai/kestrel/pkg/models"
)

// PresenceWindow is how recent a heartbeat must be for a medium to
// count as online.
const PresenceWindow = 60 * time.Second

// DeliveryTarget is a routable destination for a notification.
type DeliveryTarget struct {
	Medium   string `json:"medium"`
	Location string `json:"location,omitempty"`
}

// PresenceService tracks which mediums are alive per user.
type PresenceService struct {
	client *ent.Client
}

// NewPresenceService creates a new PresenceService
func NewPresenceService(client *ent.Client) *PresenceService {
	return &PresenceService{client: client}
}

// Heartbeat upserts the (medium, user) presence row.
func (s *PresenceService) Heartbeat(ctx context.Context, req models.HeartbeatRequest) error {
	if req.Medium == "" {
		return NewValidationError("medium", "required")
	}
	if req.UserID == "" {
		return NewValidationError("user_id", "required")
	}

	builder := s.client.MediumPresence.Create().
		SetID(uuid.New().String()).
		SetMedium(req.Medium).
		SetUserID(req.UserID).
		SetStatus("online").
		SetLastHeartbeat(time.Now())
	if req.Channels != nil {
		builder.SetChannels(req.Channels)
	}

	err := builder.
		OnConflictColumns(mediumpresence.FieldMedium, mediumpresence.FieldUserID).
		UpdateStatus().
		UpdateLastHeartbeat().
		UpdateChannels().
		Exec(ctx)
	if err := ignoreNoRows(err); err != nil {
		return fmt.Errorf("failed to upsert presence: %w", err)
	}
	return nil
}

// Online returns the user's online mediums, most recent heartbeat first.
func (s *PresenceService) Online(ctx context.Context, userID string) ([]*ent.MediumPresence, error) {
	cutoff := time.Now().Add(-PresenceWindow)
	presences, err := s.client.MediumPresence.Query().
		Where(
			mediumpresence.UserIDEQ(userID),
			mediumpresence.LastHeartbeatGTE(cutoff),
		).
		Order(ent.Desc(mediumpresence.FieldLastHeartbeat)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list presence: %w", err)
	}
	return presences, nil
}

// PickTarget chooses a delivery target from the user's online mediums:
// the freshest medium, and within it a direct channel, then a channel
// whose name contains general/main/chat, then the first advertised
// channel. Returns ErrNotFound when nothing is online.
func (s *PresenceService) PickTarget(ctx context.Context, userID string) (*DeliveryTarget, error) {
	online, err := s.Online(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(online) == 0 {
		return nil, ErrNotFound
	}

	p := online[0]
	return &DeliveryTarget{
		Medium:   p.Medium,
		Location: pickChannel(p.Channels),
	}, nil
}

// pickChannel implements the channel preference order: a direct channel
// (kind dm, private, or direct_message), then a channel whose name
// contains general/main/chat, then the first advertised channel.
func pickChannel(channels []map[string]interface{}) string {
	if len(channels) == 0 {
		return ""
	}

	channelID := func(ch map[string]interface{}) string {
		if id, ok := ch["id"].(string); ok && id != "" {
			return id
		}
		if name, ok := ch["name"].(string); ok {
			return name
		}
		return ""
	}

	for _, ch := range channels {
		kind, _ := ch["kind"].(string)
		switch strings.ToLower(kind) {
		case "dm", "private", "direct_message":
			if id := channelID(ch); id != "" {
				return id
			}
		}
	}
	for _, ch := range channels {
		name, _ := ch["name"].(string)
		name = strings.ToLower(name)
		if strings.Contains(name, "general") || strings.Contains(name, "main") || strings.Contains(name, "chat") {
			if id := channelID(ch); id != "" {
				return id
			}
		}
	}
	return channelID(channels[0])
}
