package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-ai/kestrel/pkg/models"
	testdb "github.com/kestrel-ai/kestrel/test/database"
)

func TestSessionService_CreateSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessionService := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("creates session successfully", func(t *testing.T) {
		req := models.CreateSessionRequest{
			SessionID:  uuid.New().String(),
			WorkingDir: "/home/brady/project",
			Medium:     "cli",
			UserID:     "brady",
		}

		created, err := sessionService.CreateSession(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, req.SessionID, created.ID)
		assert.Equal(t, "cli", created.Medium)
		assert.Nil(t, created.EndTime)
	})

	t.Run("validates session_id required", func(t *testing.T) {
		_, err := sessionService.CreateSession(ctx, models.CreateSessionRequest{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("duplicate id returns ErrAlreadyExists", func(t *testing.T) {
		id := uuid.New().String()
		_, err := sessionService.CreateSession(ctx, models.CreateSessionRequest{SessionID: id})
		require.NoError(t, err)

		_, err = sessionService.CreateSession(ctx, models.CreateSessionRequest{SessionID: id})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("rejects self-continuation", func(t *testing.T) {
		id := uuid.New().String()
		_, err := sessionService.CreateSession(ctx, models.CreateSessionRequest{
			SessionID:     id,
			ContinuedFrom: id,
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestSessionService_EnsureSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessionService := NewSessionService(client.Client)
	ctx := context.Background()

	id := uuid.New().String()

	first, err := sessionService.EnsureSession(ctx, models.CreateSessionRequest{
		SessionID: id,
		UserID:    "brady",
	})
	require.NoError(t, err)

	// Second call returns the same row untouched.
	second, err := sessionService.EnsureSession(ctx, models.CreateSessionRequest{
		SessionID: id,
		UserID:    "someone-else",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "brady", second.UserID)
}

func TestSessionService_EndSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessionService := NewSessionService(client.Client)
	ctx := context.Background()

	created, err := sessionService.CreateSession(ctx, models.CreateSessionRequest{
		SessionID: uuid.New().String(),
	})
	require.NoError(t, err)

	ended, err := sessionService.EndSession(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, ended.EndTime)
	assert.False(t, ended.EndTime.Before(ended.StartTime))

	// Ending twice is a no-op and keeps the original end time.
	again, err := sessionService.EndSession(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, ended.EndTime.Unix(), again.EndTime.Unix())

	t.Run("missing session returns ErrNotFound", func(t *testing.T) {
		_, err := sessionService.EndSession(ctx, "nonexistent")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSessionService_AddMessageAndHistory(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessionService := NewSessionService(client.Client)
	ctx := context.Background()

	created, err := sessionService.CreateSession(ctx, models.CreateSessionRequest{
		SessionID: uuid.New().String(),
		UserID:    "brady",
		Medium:    "cli",
	})
	require.NoError(t, err)

	_, err = sessionService.AddMessage(ctx, created.ID, "user", "first message")
	require.NoError(t, err)
	_, err = sessionService.AddMessage(ctx, created.ID, "assistant", "second message")
	require.NoError(t, err)

	t.Run("history is chronological", func(t *testing.T) {
		history, err := sessionService.History(ctx, created.ID, 10)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, "first message", history[0].Prompt)
		assert.Equal(t, "second message", history[1].Prompt)
	})

	t.Run("message carries a text block at ordinal 0", func(t *testing.T) {
		history, err := sessionService.History(ctx, created.ID, 10)
		require.NoError(t, err)

		blocks, err := sessionService.Blocks(ctx, history[0].ID)
		require.NoError(t, err)
		require.Len(t, blocks, 1)
		assert.Equal(t, 0, blocks[0].Ordinal)
		assert.Equal(t, "first message", blocks[0].Text)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := sessionService.AddMessage(ctx, created.ID, "robot", "hi")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestSessionService_ContinuationChain(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessionService := NewSessionService(client.Client)
	ctx := context.Background()

	a, err := sessionService.CreateSession(ctx, models.CreateSessionRequest{SessionID: uuid.New().String()})
	require.NoError(t, err)
	b, err := sessionService.CreateSession(ctx, models.CreateSessionRequest{
		SessionID:     uuid.New().String(),
		ContinuedFrom: a.ID,
	})
	require.NoError(t, err)
	c, err := sessionService.CreateSession(ctx, models.CreateSessionRequest{
		SessionID:     uuid.New().String(),
		ContinuedFrom: b.ID,
	})
	require.NoError(t, err)

	chain, err := sessionService.ContinuationChain(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{c.ID, b.ID, a.ID}, chain)
}

func TestSessionService_FindOrCreateSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessionService := NewSessionService(client.Client)
	ctx := context.Background()

	first, err := sessionService.FindOrCreateSession(ctx, models.CreateSessionRequest{
		UserID: "brady",
		Medium: "discord",
	})
	require.NoError(t, err)

	// Same scope reuses the live session.
	second, err := sessionService.FindOrCreateSession(ctx, models.CreateSessionRequest{
		UserID: "brady",
		Medium: "discord",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	// Ending it forces a new one.
	_, err = sessionService.EndSession(ctx, first.ID)
	require.NoError(t, err)

	third, err := sessionService.FindOrCreateSession(ctx, models.CreateSessionRequest{
		UserID: "brady",
		Medium: "discord",
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, third.ID)
}
