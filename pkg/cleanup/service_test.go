package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-ai/kestrel/ent/ambientnotification"
	"github.com/kestrel-ai/kestrel/ent/queuetask"
	"github.com/kestrel-ai/kestrel/pkg/config"
	"github.com/kestrel-ai/kestrel/pkg/database"
	"github.com/kestrel-ai/kestrel/pkg/queue"
	"github.com/kestrel-ai/kestrel/pkg/services"
	testdb "github.com/kestrel-ai/kestrel/test/database"
)

func newSweeper(t *testing.T) (*database.Client, *Service) {
	t.Helper()
	client := testdb.NewTestClient(t)
	queueService := queue.NewService(client.Client, config.DefaultQueueConfig(), nil)
	notifications := services.NewNotificationService(client.Client)
	return client, NewService(config.DefaultRetentionConfig(), queueService, notifications)
}

func seedTerminalTask(t *testing.T, client *database.Client, status queuetask.Status, age time.Duration) string {
	t.Helper()
	id := uuid.New().String()
	err := client.QueueTask.Create().
		SetID(id).
		SetTaskType("summary").
		SetModelName("claude-haiku-4-5").
		SetContent("done work").
		SetStatus(status).
		SetProcessedAt(time.Now().Add(-age)).
		Exec(context.Background())
	require.NoError(t, err)
	return id
}

func TestRunAll_DeletesOldTerminalTasks(t *testing.T) {
	client, svc := newSweeper(t)
	ctx := context.Background()

	old := seedTerminalTask(t, client, queuetask.StatusCompleted, 48*time.Hour)
	oldFailed := seedTerminalTask(t, client, queuetask.StatusFailed, 48*time.Hour)
	fresh := seedTerminalTask(t, client, queuetask.StatusCompleted, time.Hour)

	svc.RunAll(ctx)

	remaining, err := client.QueueTask.Query().IDs(ctx)
	require.NoError(t, err)
	assert.NotContains(t, remaining, old)
	assert.NotContains(t, remaining, oldFailed)
	assert.Contains(t, remaining, fresh)
}

func TestRunAll_KeepsPendingTasks(t *testing.T) {
	client, svc := newSweeper(t)
	ctx := context.Background()

	id := uuid.New().String()
	err := client.QueueTask.Create().
		SetID(id).
		SetTaskType("summary").
		SetModelName("claude-haiku-4-5").
		SetContent("still waiting").
		SetStatus(queuetask.StatusPending).
		SetCreatedAt(time.Now().Add(-30 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc.RunAll(ctx)

	_, err = client.QueueTask.Get(ctx, id)
	assert.NoError(t, err)
}

func TestRunAll_DeletesOldDeliveredNotifications(t *testing.T) {
	client, svc := newSweeper(t)
	ctx := context.Background()

	oldDelivered := uuid.New().String()
	require.NoError(t, client.AmbientNotification.Create().
		SetID(oldDelivered).
		SetUserID("brady").
		SetMessage("delivered ages ago").
		SetStatus(ambientnotification.StatusDelivered).
		SetCreatedAt(time.Now().Add(-14*24*time.Hour)).
		Exec(ctx))

	pending := uuid.New().String()
	require.NoError(t, client.AmbientNotification.Create().
		SetID(pending).
		SetUserID("brady").
		SetMessage("never went out").
		SetStatus(ambientnotification.StatusPending).
		SetCreatedAt(time.Now().Add(-14*24*time.Hour)).
		Exec(ctx))

	svc.RunAll(ctx)

	remaining, err := client.AmbientNotification.Query().IDs(ctx)
	require.NoError(t, err)
	assert.NotContains(t, remaining, oldDelivered)
	assert.Contains(t, remaining, pending)
}

func TestStartStop(t *testing.T) {
	_, svc := newSweeper(t)

	svc.Start(context.Background())
	svc.Stop()
}
