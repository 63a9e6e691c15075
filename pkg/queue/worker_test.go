package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-ai/kestrel/ent"
	"github.com/kestrel-ai/kestrel/ent/queuetask"
	"github.com/kestrel-ai/kestrel/pkg/config"
	testdb "github.com/kestrel-ai/kestrel/test/database"
)

// recordingExecutor captures executed tasks and optionally fails them.
type recordingExecutor struct {
	mu       sync.Mutex
	executed []string
	fail     map[string]error
}

func (e *recordingExecutor) Execute(_ context.Context, task *ent.QueueTask) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.executed = append(e.executed, task.ID)
	if err, ok := e.fail[task.ID]; ok {
		return err
	}
	return nil
}

func (e *recordingExecutor) count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.executed)
}

func fastQueueConfig() *config.QueueConfig {
	cfg := config.DefaultQueueConfig()
	cfg.PollInterval = 20 * time.Millisecond
	cfg.PollIntervalJitter = 5 * time.Millisecond
	cfg.TaskTimeout = 5 * time.Second
	return cfg
}

func TestWorker_ProcessesTasks(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := fastQueueConfig()
	service := NewService(client.Client, cfg, nil)
	ctx := context.Background()

	task, err := service.Enqueue(ctx, EnqueueInput{TaskType: "summary"})
	require.NoError(t, err)

	executor := &recordingExecutor{}
	worker := NewWorker("worker-test", service, executor, cfg)
	worker.Start(ctx)
	defer worker.Stop()

	require.Eventually(t, func() bool {
		got, err := service.Get(ctx, task.ID)
		return err == nil && got.Status == queuetask.StatusCompleted
	}, 5*time.Second, 20*time.Millisecond)

	assert.Equal(t, 1, executor.count())
	health := worker.Health()
	assert.Equal(t, 1, health.TasksProcessed)
	assert.Equal(t, 0, health.TasksFailed)
}

func TestWorker_FailedTaskGoesBackToPending(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := fastQueueConfig()
	service := NewService(client.Client, cfg, nil)
	ctx := context.Background()

	task, err := service.Enqueue(ctx, EnqueueInput{TaskType: "exploration"})
	require.NoError(t, err)

	executor := &recordingExecutor{
		fail: map[string]error{task.ID: errors.New("model unavailable")},
	}
	worker := NewWorker("worker-test", service, executor, cfg)
	worker.Start(ctx)

	require.Eventually(t, func() bool {
		got, err := service.Get(ctx, task.ID)
		return err == nil && got.RetryCount >= 1
	}, 5*time.Second, 20*time.Millisecond)
	worker.Stop()

	got, err := service.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Contains(t, got.ErrorMessage, "model unavailable")
	assert.GreaterOrEqual(t, got.RetryCount, 1)
}

func TestWorkerPool_StartStop(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := fastQueueConfig()
	cfg.WorkerCount = 4
	service := NewService(client.Client, cfg, nil)
	ctx := context.Background()

	for i := 0; i < 8; i++ {
		_, err := service.Enqueue(ctx, EnqueueInput{TaskType: "summary", Priority: 1})
		require.NoError(t, err)
	}

	executor := &recordingExecutor{}
	pool := NewWorkerPool(client.Client, service, executor, cfg)
	pool.Start(ctx)
	pool.Start(ctx) // second start is a no-op

	require.Eventually(t, func() bool {
		return executor.count() == 8
	}, 10*time.Second, 20*time.Millisecond)

	pool.Stop()
	pool.Stop()

	assert.Len(t, pool.Health(), 4)
	stats, err := service.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Pending)
	assert.Equal(t, 8, stats.ByStatus["completed"])
}

func TestDispatcher(t *testing.T) {
	dispatcher := NewDispatcher()
	var ran string
	dispatcher.Register("summary", ExecutorFunc(func(_ context.Context, task *ent.QueueTask) error {
		ran = task.ID
		return nil
	}))

	err := dispatcher.Execute(context.Background(), &ent.QueueTask{ID: "t-1", TaskType: "summary"})
	require.NoError(t, err)
	assert.Equal(t, "t-1", ran)

	err = dispatcher.Execute(context.Background(), &ent.QueueTask{ID: "t-2", TaskType: "mystery"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mystery")
}
