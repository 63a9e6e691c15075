package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-ai/kestrel/pkg/models"
	testdb "github.com/kestrel-ai/kestrel/test/database"
)

func TestMemoryService_Edit(t *testing.T) {
	client := testdb.NewTestClient(t)
	memoryService := NewMemoryService(client.Client)
	ctx := context.Background()

	t.Run("first edit creates block at version 1", func(t *testing.T) {
		block, err := memoryService.Edit(ctx, models.EditMemoryRequest{
			UserID:    "brady",
			BlockType: "human",
			Content:   "Prefers terse answers.",
			Reason:    "initial",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, block.Version)
		assert.Equal(t, "Prefers terse answers.", block.Content)

		versions, err := memoryService.History(ctx, block.ID, 10)
		require.NoError(t, err)
		require.Len(t, versions, 1)
		assert.Equal(t, 1, versions[0].Version)
		assert.Equal(t, "initial", versions[0].Reason)
	})

	t.Run("each edit bumps version and appends history", func(t *testing.T) {
		var blockID string
		for i, content := range []string{"a", "b", "c"} {
			block, err := memoryService.Edit(ctx, models.EditMemoryRequest{
				UserID:    "versioning",
				BlockType: "task",
				Content:   content,
			})
			require.NoError(t, err)
			assert.Equal(t, i+1, block.Version)
			blockID = block.ID
		}

		versions, err := memoryService.History(ctx, blockID, 10)
		require.NoError(t, err)
		require.Len(t, versions, 3)
		// Newest first.
		assert.Equal(t, 3, versions[0].Version)
		assert.Equal(t, "c", versions[0].Content)
		assert.Equal(t, 1, versions[2].Version)
	})

	t.Run("user and session scopes are independent", func(t *testing.T) {
		userBlock, err := memoryService.Edit(ctx, models.EditMemoryRequest{
			UserID:    "scoped",
			BlockType: "persona",
			Content:   "user scope",
		})
		require.NoError(t, err)

		sessionBlock, err := memoryService.Edit(ctx, models.EditMemoryRequest{
			SessionID: "session-1",
			BlockType: "persona",
			Content:   "session scope",
		})
		require.NoError(t, err)

		assert.NotEqual(t, userBlock.ID, sessionBlock.ID)
	})

	t.Run("rejects content over char limit", func(t *testing.T) {
		_, err := memoryService.Edit(ctx, models.EditMemoryRequest{
			UserID:    "limited",
			BlockType: "human",
			Content:   strings.Repeat("x", 9000),
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("validates scope required", func(t *testing.T) {
		_, err := memoryService.Edit(ctx, models.EditMemoryRequest{
			BlockType: "human",
			Content:   "no scope",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestMemoryService_Rollback(t *testing.T) {
	client := testdb.NewTestClient(t)
	memoryService := NewMemoryService(client.Client)
	ctx := context.Background()

	var blockID string
	for _, content := range []string{"v1 content", "v2 content", "v3 content"} {
		block, err := memoryService.Edit(ctx, models.EditMemoryRequest{
			UserID:    "brady",
			BlockType: "human",
			Content:   content,
		})
		require.NoError(t, err)
		blockID = block.ID
	}

	t.Run("rollback moves the version counter forward", func(t *testing.T) {
		rolled, err := memoryService.Rollback(ctx, blockID, 1, "")
		require.NoError(t, err)
		assert.Equal(t, 4, rolled.Version)
		assert.Equal(t, "v1 content", rolled.Content)

		versions, err := memoryService.History(ctx, blockID, 10)
		require.NoError(t, err)
		require.Len(t, versions, 4)
		assert.Equal(t, "v1 content", versions[0].Content)
		assert.Contains(t, versions[0].Reason, "rollback to version 1")
	})

	t.Run("unknown version is a precondition failure", func(t *testing.T) {
		_, err := memoryService.Rollback(ctx, blockID, 99, "")
		assert.ErrorIs(t, err, ErrPreconditionFailed)
	})

	t.Run("version zero is invalid", func(t *testing.T) {
		_, err := memoryService.Rollback(ctx, blockID, 0, "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}
