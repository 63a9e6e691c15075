package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/kestrel-ai/kestrel/test/database"
)

func TestStateService(t *testing.T) {
	client := testdb.NewTestClient(t)
	stateService := NewStateService(client.Client)
	ctx := context.Background()

	t.Run("get creates the row lazily", func(t *testing.T) {
		state, err := stateService.Get(ctx, "brady")
		require.NoError(t, err)
		assert.Equal(t, "brady", state.ID)
		assert.Nil(t, state.SuppressedUntil)
		assert.Equal(t, 0, state.AutonomousWorkCount)

		// Second get returns the same row.
		again, err := stateService.Get(ctx, "brady")
		require.NoError(t, err)
		assert.Equal(t, state.ID, again.ID)
	})

	t.Run("suppress and clear", func(t *testing.T) {
		until := time.Now().Add(2 * time.Hour)
		state, err := stateService.Suppress(ctx, "brady", until)
		require.NoError(t, err)
		require.NotNil(t, state.SuppressedUntil)
		assert.WithinDuration(t, until, *state.SuppressedUntil, time.Second)

		cleared, err := stateService.Suppress(ctx, "brady", time.Time{})
		require.NoError(t, err)
		assert.Nil(t, cleared.SuppressedUntil)
	})

	t.Run("proactive contact bumps the counter", func(t *testing.T) {
		require.NoError(t, stateService.RecordProactiveContact(ctx, "counter"))
		require.NoError(t, stateService.RecordProactiveContact(ctx, "counter"))

		state, err := stateService.Get(ctx, "counter")
		require.NoError(t, err)
		assert.Equal(t, 2, state.AutonomousWorkCount)
		assert.NotNil(t, state.LastProactiveContactAt)
	})

	t.Run("interaction is recorded", func(t *testing.T) {
		require.NoError(t, stateService.RecordInteraction(ctx, "brady"))
		state, err := stateService.Get(ctx, "brady")
		require.NoError(t, err)
		require.NotNil(t, state.LastInteractionAt)
		assert.WithinDuration(t, time.Now(), *state.LastInteractionAt, 5*time.Second)
	})

	t.Run("validates user_id required", func(t *testing.T) {
		_, err := stateService.Get(ctx, "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}
