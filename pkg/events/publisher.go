package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// UserChannel returns the NOTIFY channel carrying one user's events.
// Format: "kestrel_user:{user_id}"
func UserChannel(userID string) string {
	return "kestrel_user:" + userID
}

// Publisher broadcasts events via PostgreSQL NOTIFY so companion
// processes (UI shells, medium bridges) can react without polling.
// Events are routed to the user channel named by payload["user_id"];
// events without a user land on the daemon-wide channel.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a Publisher on the given database handle.
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// DaemonChannel carries events that are not scoped to a user.
const DaemonChannel = "kestrel_daemon"

// Emit broadcasts the event via pg_notify.
func (p *Publisher) Emit(ctx context.Context, kind string, payload map[string]any) error {
	envelope := map[string]any{
		"kind":       kind,
		"emitted_at": time.Now().UTC().Format(time.RFC3339Nano),
	}
	for k, v := range payload {
		envelope[k] = v
	}

	raw, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	channel := DaemonChannel
	if userID, ok := payload["user_id"].(string); ok && userID != "" {
		channel = UserChannel(userID)
	}

	notifyPayload, err := truncateIfNeeded(kind, raw)
	if err != nil {
		return err
	}

	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// truncateIfNeeded returns the payload as-is when it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise a minimal envelope
// with only routing fields.
func truncateIfNeeded(kind string, raw []byte) (string, error) {
	if len(raw) <= 7900 {
		return string(raw), nil
	}

	var routing struct {
		UserID    string `json:"user_id"`
		SessionID string `json:"session_id"`
	}
	if err := json.Unmarshal(raw, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated, err := json.Marshal(map[string]any{
		"kind":       kind,
		"user_id":    routing.UserID,
		"session_id": routing.SessionID,
		"truncated":  true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncated), nil
}
