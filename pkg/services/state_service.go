package services

import (
	"context"
	"fmt"
	"time"

	"github.com/kestrel-ai/kestrel/ent"
	"github.com/kestrel-ai/kestrel/ent/daemonstate"
)

// StateService manages the per-user daemon state row: the persisted
// inputs from which engagement state is derived. Rows are created
// lazily on first reference.
type StateService struct {
	client *ent.Client
}

// NewStateService creates a new StateService
func NewStateService(client *ent.Client) *StateService {
	return &StateService{client: client}
}

// Get returns the user's state row, creating it when missing.
func (s *StateService) Get(ctx context.Context, userID string) (*ent.DaemonState, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "required")
	}

	err := s.client.DaemonState.Create().
		SetID(userID).
		OnConflictColumns(daemonstate.FieldID).
		DoNothing().
		Exec(ctx)
	if err := ignoreNoRows(err); err != nil {
		return nil, fmt.Errorf("failed to ensure daemon state: %w", err)
	}

	state, err := s.client.DaemonState.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get daemon state: %w", err)
	}
	return state, nil
}

// Suppress silences proactive behavior for the user until the given
// time. A zero time clears the suppression.
func (s *StateService) Suppress(ctx context.Context, userID string, until time.Time) (*ent.DaemonState, error) {
	state, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	builder := state.Update()
	if until.IsZero() {
		builder.ClearSuppressedUntil()
	} else {
		builder.SetSuppressedUntil(until)
	}
	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update suppression: %w", err)
	}
	return updated, nil
}

// RecordInteraction notes that the user interacted just now.
func (s *StateService) RecordInteraction(ctx context.Context, userID string) error {
	state, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	if _, err := state.Update().SetLastInteractionAt(time.Now()).Save(ctx); err != nil {
		return fmt.Errorf("failed to record interaction: %w", err)
	}
	return nil
}

// RecordProactiveContact notes that the daemon reached out just now and
// bumps the autonomous work counter.
func (s *StateService) RecordProactiveContact(ctx context.Context, userID string) error {
	state, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	_, err = state.Update().
		SetLastProactiveContactAt(time.Now()).
		SetAutonomousWorkCount(state.AutonomousWorkCount + 1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to record proactive contact: %w", err)
	}
	return nil
}
