package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/kestrel-ai/kestrel/test/database"
)

func TestContextService(t *testing.T) {
	client := testdb.NewTestClient(t)
	contextService := NewContextService(client.Client)
	ctx := context.Background()

	t.Run("put then get round trips", func(t *testing.T) {
		_, err := contextService.Put(ctx, "session-1", "built context", map[string]interface{}{
			"entity_count": 3,
		})
		require.NoError(t, err)

		cached, err := contextService.Get(ctx, "session-1", 30*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, "built context", cached.Context)
		assert.EqualValues(t, 3, cached.Metadata["entity_count"])
	})

	t.Run("put replaces the previous blob", func(t *testing.T) {
		_, err := contextService.Put(ctx, "session-2", "old", nil)
		require.NoError(t, err)
		_, err = contextService.Put(ctx, "session-2", "new", nil)
		require.NoError(t, err)

		cached, err := contextService.Get(ctx, "session-2", 30*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, "new", cached.Context)
	})

	t.Run("stale entries behave as missing", func(t *testing.T) {
		_, err := contextService.Put(ctx, "session-3", "context", nil)
		require.NoError(t, err)

		// A zero-ish max age makes any stored row stale.
		time.Sleep(10 * time.Millisecond)
		_, err = contextService.Get(ctx, "session-3", time.Millisecond)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing session returns ErrNotFound", func(t *testing.T) {
		_, err := contextService.Get(ctx, "nope", time.Minute)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("validates session_id required", func(t *testing.T) {
		_, err := contextService.Put(ctx, "", "x", nil)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}
