package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/kestrel-ai/kestrel/ent"
	"github.com/kestrel-ai/kestrel/pkg/config"
)

// Worker polls the queue for its model partition and executes claimed
// tasks one at a time. Multiple workers share the partition safely;
// SKIP LOCKED claims keep them from colliding.
type Worker struct {
	id       string
	service  *Service
	executor Executor
	cfg      *config.QueueConfig

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu             sync.Mutex
	lastPollAt     time.Time
	tasksProcessed int
	tasksFailed    int
}

// WorkerHealth is a snapshot of a worker's progress counters.
type WorkerHealth struct {
	ID             string    `json:"id"`
	LastPollAt     time.Time `json:"last_poll_at"`
	TasksProcessed int       `json:"tasks_processed"`
	TasksFailed    int       `json:"tasks_failed"`
}

// NewWorker creates a worker. It does not start polling until Start.
func NewWorker(id string, service *Service, executor Executor, cfg *config.QueueConfig) *Worker {
	return &Worker{
		id:       id,
		service:  service,
		executor: executor,
		cfg:      cfg,
		stopCh:   make(chan struct{}),
	}
}

// Start launches the polling loop.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
	slog.Info("Queue worker started", "worker_id", w.id, "model", w.cfg.ModelName)
}

// Stop signals the loop to exit and waits for the in-flight task, if
// any, to finish.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
	})
	w.wg.Wait()
	slog.Info("Queue worker stopped", "worker_id", w.id)
}

// Health returns the worker's counters.
func (w *Worker) Health() WorkerHealth {
	w.mu.Lock()
	defer w.mu.Unlock()
	return WorkerHealth{
		ID:             w.id,
		LastPollAt:     w.lastPollAt,
		TasksProcessed: w.tasksProcessed,
		TasksFailed:    w.tasksFailed,
	}
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		default:
		}

		w.mu.Lock()
		w.lastPollAt = time.Now()
		w.mu.Unlock()

		task, err := w.service.Claim(ctx, w.cfg.ModelName)
		if err != nil {
			if !errors.Is(err, ErrNoTasksAvailable) {
				slog.Error("Failed to claim task", "worker_id", w.id, "error", err)
			}
			w.sleep(ctx)
			continue
		}

		w.process(ctx, task)
	}
}

// process runs one task under the task timeout and records the outcome.
func (w *Worker) process(ctx context.Context, task *ent.QueueTask) {
	taskCtx, cancel := context.WithTimeout(ctx, w.cfg.TaskTimeout)
	defer cancel()

	start := time.Now()
	err := w.executor.Execute(taskCtx, task)
	elapsed := time.Since(start)

	// Outcome writes use a fresh context so shutdown cannot strand the
	// row in processing.
	writeCtx, writeCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer writeCancel()

	if err != nil {
		slog.Warn("Task execution failed",
			"worker_id", w.id,
			"task_id", task.ID,
			"task_type", task.TaskType,
			"elapsed", elapsed,
			"error", err)

		w.mu.Lock()
		w.tasksFailed++
		w.mu.Unlock()

		if _, retryErr := w.service.Retry(writeCtx, task.ID, err.Error()); retryErr != nil {
			slog.Error("Failed to record task retry", "worker_id", w.id, "task_id", task.ID, "error", retryErr)
		}
		return
	}

	slog.Debug("Task completed",
		"worker_id", w.id,
		"task_id", task.ID,
		"task_type", task.TaskType,
		"elapsed", elapsed)

	w.mu.Lock()
	w.tasksProcessed++
	w.mu.Unlock()

	if completeErr := w.service.Complete(writeCtx, task.ID, true, ""); completeErr != nil {
		slog.Error("Failed to mark task completed", "worker_id", w.id, "task_id", task.ID, "error", completeErr)
	}
}

// sleep waits one jittered poll interval, or returns early on stop.
func (w *Worker) sleep(ctx context.Context) {
	interval := w.cfg.PollInterval
	if jitter := w.cfg.PollIntervalJitter; jitter > 0 {
		interval = interval - jitter + time.Duration(rand.Int64N(int64(2*jitter)))
	}
	if interval <= 0 {
		interval = time.Millisecond
	}

	timer := time.NewTimer(interval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-w.stopCh:
	case <-timer.C:
	}
}

// workerID formats a stable worker name for logs and health output.
func workerID(n int) string {
	return fmt.Sprintf("worker-%d", n)
}
