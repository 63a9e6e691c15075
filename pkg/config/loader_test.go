package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	ctx := context.Background()

	t.Run("missing config dir falls back to defaults", func(t *testing.T) {
		cfg, err := Initialize(ctx, t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, 3, cfg.Queue.WorkerCount)
		assert.Equal(t, 100, cfg.Curiosity.MaxPendingPerUser)
		assert.Equal(t, 25, cfg.Curiosity.MaxPendingPerType)
		assert.Equal(t, 30*time.Minute, cfg.Ambient.CheckInterval)
		assert.Equal(t, 15*time.Minute, cfg.Ambient.IdleThreshold)
		assert.Equal(t, 0.7, cfg.Ambient.ContextChangeThreshold)
		assert.Equal(t, 5*time.Minute, cfg.Summary.Interval)
		assert.Equal(t, "default", cfg.Defaults.UserID)
	})

	t.Run("file sections override defaults", func(t *testing.T) {
		dir := t.TempDir()
		content := `
defaults:
  user_id: alice
  personality: succinct
  notification_method: daemon
queue:
  worker_count: 8
  model_name: fast
  max_retries: 5
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "kestrel.yaml"), []byte(content), 0o600))

		cfg, err := Initialize(ctx, dir)
		require.NoError(t, err)

		assert.Equal(t, "alice", cfg.Defaults.UserID)
		assert.Equal(t, 8, cfg.Queue.WorkerCount)
		assert.Equal(t, "fast", cfg.Queue.ModelName)
		assert.Equal(t, 5, cfg.Queue.MaxRetries)
		// Untouched sections keep defaults.
		assert.Equal(t, 100, cfg.Curiosity.MaxPendingPerUser)
	})

	t.Run("invalid worker count rejected", func(t *testing.T) {
		dir := t.TempDir()
		content := "queue:\n  worker_count: 0\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "kestrel.yaml"), []byte(content), 0o600))

		_, err := Initialize(ctx, dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "worker_count")
	})

	t.Run("malformed yaml rejected", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "kestrel.yaml"), []byte(":\nnot yaml"), 0o600))

		_, err := Initialize(ctx, dir)
		require.Error(t, err)
	})

	t.Run("GRAPH_SERVICE_URL env override", func(t *testing.T) {
		t.Setenv("GRAPH_SERVICE_URL", "http://graph:9090")

		cfg, err := Initialize(ctx, t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, "http://graph:9090", cfg.Graph.BaseURL)
	})
}
