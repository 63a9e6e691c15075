package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-ai/kestrel/ent/queuetask"
	"github.com/kestrel-ai/kestrel/pkg/config"
	testdb "github.com/kestrel-ai/kestrel/test/database"
)

func TestReaper_ReapExpiredLeases(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := config.DefaultQueueConfig()
	service := NewService(client.Client, cfg, nil)
	reaper := NewReaper(client.Client, service, cfg)
	ctx := context.Background()

	expired, err := service.Enqueue(ctx, EnqueueInput{TaskType: "summary"})
	require.NoError(t, err)
	fresh, err := service.Enqueue(ctx, EnqueueInput{TaskType: "summary"})
	require.NoError(t, err)

	// Simulate a worker that died mid-task.
	err = client.QueueTask.UpdateOneID(expired.ID).
		SetStatus(queuetask.StatusProcessing).
		SetClaimedAt(time.Now().Add(-2 * cfg.LeaseTimeout)).
		Exec(ctx)
	require.NoError(t, err)
	err = client.QueueTask.UpdateOneID(fresh.ID).
		SetStatus(queuetask.StatusProcessing).
		SetClaimedAt(time.Now()).
		Exec(ctx)
	require.NoError(t, err)

	n, err := reaper.ReapExpiredLeases(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	reclaimed, err := service.Get(ctx, expired.ID)
	require.NoError(t, err)
	assert.Equal(t, queuetask.StatusPending, reclaimed.Status)
	assert.Equal(t, 1, reclaimed.RetryCount)
	assert.Contains(t, reclaimed.ErrorMessage, "lease expired")

	untouched, err := service.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, queuetask.StatusProcessing, untouched.Status)
}

func TestReaper_ExhaustedRetriesFail(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := config.DefaultQueueConfig()
	service := NewService(client.Client, cfg, nil)
	reaper := NewReaper(client.Client, service, cfg)
	ctx := context.Background()

	task, err := service.Enqueue(ctx, EnqueueInput{TaskType: "summary"})
	require.NoError(t, err)
	err = client.QueueTask.UpdateOneID(task.ID).
		SetStatus(queuetask.StatusProcessing).
		SetClaimedAt(time.Now().Add(-2 * cfg.LeaseTimeout)).
		SetRetryCount(cfg.MaxRetries - 1).
		Exec(ctx)
	require.NoError(t, err)

	n, err := reaper.ReapExpiredLeases(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	failed, err := service.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, queuetask.StatusFailed, failed.Status)
	assert.Equal(t, cfg.MaxRetries, failed.RetryCount)
}

func TestReclaimStartupLeases(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := config.DefaultQueueConfig()
	service := NewService(client.Client, cfg, nil)
	ctx := context.Background()

	// Claim age does not matter at startup.
	task, err := service.Enqueue(ctx, EnqueueInput{TaskType: "notification"})
	require.NoError(t, err)
	err = client.QueueTask.UpdateOneID(task.ID).
		SetStatus(queuetask.StatusProcessing).
		SetClaimedAt(time.Now()).
		Exec(ctx)
	require.NoError(t, err)

	pending, err := service.Enqueue(ctx, EnqueueInput{TaskType: "notification"})
	require.NoError(t, err)

	n, err := ReclaimStartupLeases(ctx, client.Client, service)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	reclaimed, err := service.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, queuetask.StatusPending, reclaimed.Status)
	assert.Contains(t, reclaimed.ErrorMessage, "orphaned by restart")

	untouched, err := service.Get(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, queuetask.StatusPending, untouched.Status)
	assert.Equal(t, 0, untouched.RetryCount)
}
