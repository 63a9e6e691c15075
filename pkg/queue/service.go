// Package queue implements the background work queue: short-lived model
// jobs claimed at-most-once via row locks, with bounded retries and
// lease-based recovery of abandoned work.
package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/kestrel-ai/kestrel/ent"
	"github.com/kestrel-ai/kestrel/ent/queuetask"
	"github.com/kestrel-ai/kestrel/pkg/config"
	"github.com/kestrel-ai/kestrel/pkg/events"
	"github.com/kestrel-ai/kestrel/pkg/services"
)

// ErrNoTasksAvailable signals an empty queue for the polled model.
var ErrNoTasksAvailable = errors.New("no tasks available")

// EnqueueInput describes a new queue task.
type EnqueueInput struct {
	TaskType  string
	ModelName string
	Content   string
	Metadata  map[string]interface{}
	Priority  int
	SessionID string
}

// Stats is a point-in-time view of queue health.
type Stats struct {
	ByStatus map[string]int `json:"by_status"`
	ByModel  map[string]int `json:"by_model"`
	Pending  int            `json:"pending"`
}

// Service provides queue operations over the task_queue table.
// Priority is ascending: smaller integer = higher priority.
type Service struct {
	client *ent.Client
	cfg    *config.QueueConfig
	sink   events.Sink
}

// NewService creates a queue Service. sink may be nil.
func NewService(client *ent.Client, cfg *config.QueueConfig, sink events.Sink) *Service {
	if sink == nil {
		sink = events.NopSink{}
	}
	return &Service{client: client, cfg: cfg, sink: sink}
}

// Enqueue adds a pending task. Priority defaults to 50 and model name
// to the configured default when unset.
func (s *Service) Enqueue(ctx context.Context, in EnqueueInput) (*ent.QueueTask, error) {
	if in.TaskType == "" {
		return nil, errors.New("task_type is required")
	}
	modelName := in.ModelName
	if modelName == "" {
		modelName = s.cfg.ModelName
	}
	priority := in.Priority
	if priority <= 0 {
		priority = 50
	}

	builder := s.client.QueueTask.Create().
		SetID(uuid.New().String()).
		SetTaskType(in.TaskType).
		SetModelName(modelName).
		SetPriority(priority).
		SetStatus(queuetask.StatusPending)
	if in.Content != "" {
		builder.SetContent(in.Content)
	}
	if in.Metadata != nil {
		builder.SetMetadata(in.Metadata)
	}
	if in.SessionID != "" {
		builder.SetSessionID(in.SessionID)
	}

	task, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue task: %w", err)
	}

	_ = s.sink.Emit(ctx, events.KindTaskEnqueued, map[string]any{
		"task_id":   task.ID,
		"task_type": task.TaskType,
		"model":     task.ModelName,
	})
	return task, nil
}

// Claim atomically claims the next pending task for the model using
// FOR UPDATE SKIP LOCKED. Order: priority ascending, then oldest first.
func (s *Service) Claim(ctx context.Context, modelName string) (*ent.QueueTask, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	task, err := tx.QueueTask.Query().
		Where(
			queuetask.StatusEQ(queuetask.StatusPending),
			queuetask.ModelNameEQ(modelName),
		).
		Order(ent.Asc(queuetask.FieldPriority), ent.Asc(queuetask.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoTasksAvailable
		}
		return nil, fmt.Errorf("failed to query pending task: %w", err)
	}

	task, err = task.Update().
		SetStatus(queuetask.StatusProcessing).
		SetClaimedAt(time.Now()).
		ClearProcessedAt().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return task, nil
}

// Complete moves a task to a terminal status and stamps processed_at.
func (s *Service) Complete(ctx context.Context, taskID string, succeeded bool, errorMessage string) error {
	status := queuetask.StatusCompleted
	kind := events.KindTaskCompleted
	if !succeeded {
		status = queuetask.StatusFailed
		kind = events.KindTaskFailed
	}

	builder := s.client.QueueTask.UpdateOneID(taskID).
		SetStatus(status).
		SetProcessedAt(time.Now())
	if errorMessage != "" {
		builder.SetErrorMessage(errorMessage)
	}
	if err := builder.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("task %s not found", taskID)
		}
		return fmt.Errorf("failed to complete task: %w", err)
	}

	_ = s.sink.Emit(ctx, kind, map[string]any{"task_id": taskID})
	return nil
}

// Retry returns a failed attempt to pending while retries remain,
// otherwise marks the task failed. The attempt reason is recorded
// either way. Only processing and failed tasks are retryable; a
// completed task is terminal and stays that way.
func (s *Service) Retry(ctx context.Context, taskID, reason string) (*ent.QueueTask, error) {
	task, err := s.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.Status != queuetask.StatusProcessing && task.Status != queuetask.StatusFailed {
		return nil, fmt.Errorf("%w: cannot retry task in status %s",
			services.ErrPreconditionFailed, task.Status)
	}

	retries := task.RetryCount + 1
	builder := task.Update().
		SetRetryCount(retries).
		SetErrorMessage(reason)

	if retries < s.cfg.MaxRetries {
		builder.
			SetStatus(queuetask.StatusPending).
			ClearClaimedAt().
			ClearProcessedAt()
	} else {
		builder.
			SetStatus(queuetask.StatusFailed).
			SetProcessedAt(time.Now())
		_ = s.sink.Emit(ctx, events.KindTaskFailed, map[string]any{
			"task_id": taskID,
			"reason":  reason,
			"retries": retries,
		})
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retry task: %w", err)
	}
	return updated, nil
}

// Get returns a task by id.
func (s *Service) Get(ctx context.Context, taskID string) (*ent.QueueTask, error) {
	task, err := s.client.QueueTask.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("task %s not found", taskID)
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// GetStats returns counts grouped by status and by model.
func (s *Service) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{
		ByStatus: map[string]int{},
		ByModel:  map[string]int{},
	}

	var byStatus []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := s.client.QueueTask.Query().
		GroupBy(queuetask.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &byStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate by status: %w", err)
	}
	for _, row := range byStatus {
		stats.ByStatus[row.Status] = row.Count
	}
	stats.Pending = stats.ByStatus[string(queuetask.StatusPending)]

	var byModel []struct {
		ModelName string `json:"model_name"`
		Count     int    `json:"count"`
	}
	err = s.client.QueueTask.Query().
		Where(queuetask.StatusEQ(queuetask.StatusPending)).
		GroupBy(queuetask.FieldModelName).
		Aggregate(ent.Count()).
		Scan(ctx, &byModel)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate by model: %w", err)
	}
	for _, row := range byModel {
		stats.ByModel[row.ModelName] = row.Count
	}

	return stats, nil
}

// DeleteCompleted removes terminal tasks older than the given age and
// returns how many were deleted.
func (s *Service) DeleteCompleted(ctx context.Context, age time.Duration) (int, error) {
	cutoff := time.Now().Add(-age)
	n, err := s.client.QueueTask.Delete().
		Where(
			queuetask.StatusIn(queuetask.StatusCompleted, queuetask.StatusFailed),
			queuetask.ProcessedAtNotNil(),
			queuetask.ProcessedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete completed tasks: %w", err)
	}
	return n, nil
}
