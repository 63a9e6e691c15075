package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-ai/kestrel/ent/mediumpresence"
	"github.com/kestrel-ai/kestrel/pkg/models"
	testdb "github.com/kestrel-ai/kestrel/test/database"
)

func TestPresenceService_Heartbeat(t *testing.T) {
	client := testdb.NewTestClient(t)
	presenceService := NewPresenceService(client.Client)
	ctx := context.Background()

	t.Run("heartbeat marks medium online", func(t *testing.T) {
		require.NoError(t, presenceService.Heartbeat(ctx, models.HeartbeatRequest{
			Medium: "discord",
			UserID: "brady",
		}))

		online, err := presenceService.Online(ctx, "brady")
		require.NoError(t, err)
		require.Len(t, online, 1)
		assert.Equal(t, "discord", online[0].Medium)
	})

	t.Run("repeat heartbeat upserts the same row", func(t *testing.T) {
		for range 3 {
			require.NoError(t, presenceService.Heartbeat(ctx, models.HeartbeatRequest{
				Medium: "cli",
				UserID: "repeat",
			}))
		}
		count, err := client.Client.MediumPresence.Query().
			Where(mediumpresence.UserIDEQ("repeat")).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("stale heartbeat is offline", func(t *testing.T) {
		require.NoError(t, presenceService.Heartbeat(ctx, models.HeartbeatRequest{
			Medium: "telegram",
			UserID: "stale",
		}))

		// Age the heartbeat past the window.
		_, err := client.Client.MediumPresence.Update().
			Where(mediumpresence.UserIDEQ("stale")).
			SetLastHeartbeat(time.Now().Add(-2 * PresenceWindow)).
			Save(ctx)
		require.NoError(t, err)

		online, err := presenceService.Online(ctx, "stale")
		require.NoError(t, err)
		assert.Empty(t, online)
	})

	t.Run("validates medium and user_id", func(t *testing.T) {
		err := presenceService.Heartbeat(ctx, models.HeartbeatRequest{UserID: "x"})
		assert.True(t, IsValidationError(err))
		err = presenceService.Heartbeat(ctx, models.HeartbeatRequest{Medium: "cli"})
		assert.True(t, IsValidationError(err))
	})
}

func TestPresenceService_PickTarget(t *testing.T) {
	client := testdb.NewTestClient(t)
	presenceService := NewPresenceService(client.Client)
	ctx := context.Background()

	t.Run("nothing online returns ErrNotFound", func(t *testing.T) {
		_, err := presenceService.PickTarget(ctx, "ghost")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("prefers DM channel", func(t *testing.T) {
		require.NoError(t, presenceService.Heartbeat(ctx, models.HeartbeatRequest{
			Medium: "discord",
			UserID: "brady",
			Channels: []map[string]interface{}{
				{"id": "c-random", "name": "random", "kind": "channel"},
				{"id": "c-dm", "name": "brady", "kind": "dm"},
			},
		}))

		target, err := presenceService.PickTarget(ctx, "brady")
		require.NoError(t, err)
		assert.Equal(t, "discord", target.Medium)
		assert.Equal(t, "c-dm", target.Location)
	})

	t.Run("falls back to general then first", func(t *testing.T) {
		require.NoError(t, presenceService.Heartbeat(ctx, models.HeartbeatRequest{
			Medium: "slack",
			UserID: "nodm",
			Channels: []map[string]interface{}{
				{"id": "c-dev", "name": "dev", "kind": "channel"},
				{"id": "c-general", "name": "general", "kind": "channel"},
			},
		}))

		target, err := presenceService.PickTarget(ctx, "nodm")
		require.NoError(t, err)
		assert.Equal(t, "c-general", target.Location)

		require.NoError(t, presenceService.Heartbeat(ctx, models.HeartbeatRequest{
			Medium: "slack",
			UserID: "firstonly",
			Channels: []map[string]interface{}{
				{"id": "c-one", "name": "one", "kind": "channel"},
				{"id": "c-two", "name": "two", "kind": "channel"},
			},
		}))

		target, err = presenceService.PickTarget(ctx, "firstonly")
		require.NoError(t, err)
		assert.Equal(t, "c-one", target.Location)
	})
}

func TestPickChannel(t *testing.T) {
	tests := []struct {
		name     string
		channels []map[string]interface{}
		want     string
	}{
		{
			name: "private kind counts as direct",
			channels: []map[string]interface{}{
				{"id": "c-general", "name": "general", "kind": "channel"},
				{"id": "c-priv", "name": "brady", "kind": "private"},
			},
			want: "c-priv",
		},
		{
			name: "direct_message kind counts as direct",
			channels: []map[string]interface{}{
				{"id": "c-general", "name": "general", "kind": "channel"},
				{"id": "c-dm", "name": "brady", "kind": "direct_message"},
			},
			want: "c-dm",
		},
		{
			name: "name containing general matches",
			channels: []map[string]interface{}{
				{"id": "c-random", "name": "random", "kind": "channel"},
				{"id": "c-gen", "name": "team-general", "kind": "channel"},
			},
			want: "c-gen",
		},
		{
			name: "name containing chat matches",
			channels: []map[string]interface{}{
				{"id": "c-random", "name": "random", "kind": "channel"},
				{"id": "c-chat", "name": "chatter-box", "kind": "channel"},
			},
			want: "c-chat",
		},
		{
			name:     "no channels",
			channels: nil,
			want:     "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pickChannel(tt.channels))
		})
	}
}
