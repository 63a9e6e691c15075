package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-ai/kestrel/ent"
	"github.com/kestrel-ai/kestrel/ent/queuetask"
	"github.com/kestrel-ai/kestrel/pkg/config"
	"github.com/kestrel-ai/kestrel/pkg/services"
	testdb "github.com/kestrel-ai/kestrel/test/database"
)

func newTestService(t *testing.T) (*Service, *ent.Client, *config.QueueConfig) {
	t.Helper()
	client := testdb.NewTestClient(t)
	cfg := config.DefaultQueueConfig()
	return NewService(client.Client, cfg, nil), client.Client, cfg
}

func TestService_Enqueue(t *testing.T) {
	service, _, cfg := newTestService(t)
	ctx := context.Background()

	t.Run("applies defaults", func(t *testing.T) {
		task, err := service.Enqueue(ctx, EnqueueInput{TaskType: "summary"})
		require.NoError(t, err)
		assert.Equal(t, cfg.ModelName, task.ModelName)
		assert.Equal(t, 50, task.Priority)
		assert.Equal(t, queuetask.StatusPending, task.Status)
	})

	t.Run("keeps explicit fields", func(t *testing.T) {
		task, err := service.Enqueue(ctx, EnqueueInput{
			TaskType:  "exploration",
			ModelName: "haiku",
			Content:   "dig into rust macros",
			Priority:  5,
			SessionID: "sess-1",
			Metadata:  map[string]interface{}{"source": "backlog"},
		})
		require.NoError(t, err)
		assert.Equal(t, "haiku", task.ModelName)
		assert.Equal(t, 5, task.Priority)
		assert.Equal(t, "sess-1", task.SessionID)
	})

	t.Run("rejects missing task type", func(t *testing.T) {
		_, err := service.Enqueue(ctx, EnqueueInput{})
		require.Error(t, err)
	})
}

func TestService_ClaimOrdering(t *testing.T) {
	service, _, cfg := newTestService(t)
	ctx := context.Background()

	for _, tc := range []struct {
		content  string
		priority int
	}{
		{"low-priority", 80},
		{"urgent-old", 5},
		{"urgent-new", 5},
	} {
		_, err := service.Enqueue(ctx, EnqueueInput{
			TaskType: "summary",
			Content:  tc.content,
			Priority: tc.priority,
		})
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	first, err := service.Claim(ctx, cfg.ModelName)
	require.NoError(t, err)
	assert.Equal(t, "urgent-old", first.Content)
	assert.Equal(t, queuetask.StatusProcessing, first.Status)
	require.NotNil(t, first.ClaimedAt)

	second, err := service.Claim(ctx, cfg.ModelName)
	require.NoError(t, err)
	assert.Equal(t, "urgent-new", second.Content)

	third, err := service.Claim(ctx, cfg.ModelName)
	require.NoError(t, err)
	assert.Equal(t, "low-priority", third.Content)

	_, err = service.Claim(ctx, cfg.ModelName)
	assert.ErrorIs(t, err, ErrNoTasksAvailable)
}

func TestService_ClaimIsExclusive(t *testing.T) {
	service, _, cfg := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := service.Enqueue(ctx, EnqueueInput{
			TaskType: "summary",
			Priority: 1,
		})
		require.NoError(t, err)
	}

	var (
		mu      sync.Mutex
		claimed = map[string]int{}
		wg      sync.WaitGroup
	)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			task, err := service.Claim(ctx, cfg.ModelName)
			if err != nil {
				return
			}
			mu.Lock()
			claimed[task.ID]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	// Every claim landed on a distinct row.
	assert.Len(t, claimed, 4)
	for id, n := range claimed {
		assert.Equal(t, 1, n, "task %s claimed more than once", id)
	}
}

func TestService_RetryBounds(t *testing.T) {
	service, _, cfg := newTestService(t)
	ctx := context.Background()

	task, err := service.Enqueue(ctx, EnqueueInput{TaskType: "summary"})
	require.NoError(t, err)

	for i := 1; i < cfg.MaxRetries; i++ {
		_, err := service.Claim(ctx, cfg.ModelName)
		require.NoError(t, err)
		retried, err := service.Retry(ctx, task.ID, "transient failure")
		require.NoError(t, err)
		assert.Equal(t, queuetask.StatusPending, retried.Status)
		assert.Equal(t, i, retried.RetryCount)
		assert.Nil(t, retried.ClaimedAt)
	}

	_, err = service.Claim(ctx, cfg.ModelName)
	require.NoError(t, err)
	failed, err := service.Retry(ctx, task.ID, "gave up")
	require.NoError(t, err)
	assert.Equal(t, queuetask.StatusFailed, failed.Status)
	assert.Equal(t, cfg.MaxRetries, failed.RetryCount)
	assert.Equal(t, "gave up", failed.ErrorMessage)
	assert.NotNil(t, failed.ProcessedAt)
}

func TestService_RetryOnlyFromRetryableStates(t *testing.T) {
	service, _, cfg := newTestService(t)
	ctx := context.Background()

	t.Run("pending task cannot be retried", func(t *testing.T) {
		// Low priority keeps the later subtests' claims off this row.
		task, err := service.Enqueue(ctx, EnqueueInput{TaskType: "summary", Priority: 99})
		require.NoError(t, err)

		_, err = service.Retry(ctx, task.ID, "not yet claimed")
		assert.ErrorIs(t, err, services.ErrPreconditionFailed)
	})

	t.Run("completed task stays terminal", func(t *testing.T) {
		task, err := service.Enqueue(ctx, EnqueueInput{TaskType: "notification"})
		require.NoError(t, err)
		_, err = service.Claim(ctx, cfg.ModelName)
		require.NoError(t, err)
		require.NoError(t, service.Complete(ctx, task.ID, true, ""))

		_, err = service.Retry(ctx, task.ID, "resurrect")
		assert.ErrorIs(t, err, services.ErrPreconditionFailed)

		reloaded, err := service.Get(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, queuetask.StatusCompleted, reloaded.Status)
		assert.Equal(t, 0, reloaded.RetryCount)
	})

	t.Run("failed task can be retried", func(t *testing.T) {
		task, err := service.Enqueue(ctx, EnqueueInput{TaskType: "exploration"})
		require.NoError(t, err)
		_, err = service.Claim(ctx, cfg.ModelName)
		require.NoError(t, err)
		require.NoError(t, service.Complete(ctx, task.ID, false, "boom"))

		retried, err := service.Retry(ctx, task.ID, "manual requeue")
		require.NoError(t, err)
		assert.Equal(t, queuetask.StatusPending, retried.Status)
	})
}

func TestService_Complete(t *testing.T) {
	service, _, cfg := newTestService(t)
	ctx := context.Background()

	task, err := service.Enqueue(ctx, EnqueueInput{TaskType: "notification"})
	require.NoError(t, err)

	_, err = service.Claim(ctx, cfg.ModelName)
	require.NoError(t, err)

	require.NoError(t, service.Complete(ctx, task.ID, true, ""))

	done, err := service.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, queuetask.StatusCompleted, done.Status)
	assert.NotNil(t, done.ProcessedAt)

	err = service.Complete(ctx, "nonexistent", true, "")
	require.Error(t, err)
}

func TestService_Stats(t *testing.T) {
	service, _, cfg := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := service.Enqueue(ctx, EnqueueInput{TaskType: "summary"})
		require.NoError(t, err)
	}
	claimed, err := service.Claim(ctx, cfg.ModelName)
	require.NoError(t, err)
	require.NoError(t, service.Complete(ctx, claimed.ID, true, ""))

	stats, err := service.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Pending)
	assert.Equal(t, 2, stats.ByStatus["pending"])
	assert.Equal(t, 1, stats.ByStatus["completed"])
	assert.Equal(t, 2, stats.ByModel[cfg.ModelName])
}

func TestService_DeleteCompleted(t *testing.T) {
	service, client, cfg := newTestService(t)
	ctx := context.Background()

	old, err := service.Enqueue(ctx, EnqueueInput{TaskType: "summary"})
	require.NoError(t, err)
	fresh, err := service.Enqueue(ctx, EnqueueInput{TaskType: "summary"})
	require.NoError(t, err)

	for _, id := range []string{old.ID, fresh.ID} {
		_, err := service.Claim(ctx, cfg.ModelName)
		require.NoError(t, err)
		require.NoError(t, service.Complete(ctx, id, true, ""))
	}

	// Age out the first row.
	err = client.QueueTask.UpdateOneID(old.ID).
		SetProcessedAt(time.Now().Add(-48 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	n, err := service.DeleteCompleted(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = service.Get(ctx, old.ID)
	require.Error(t, err)
	_, err = service.Get(ctx, fresh.ID)
	require.NoError(t, err)
}
