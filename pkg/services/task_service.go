package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kestrel-ai/kestrel/ent"
	"github.com/kestrel-ai/kestrel/ent/projecttask"
)

// CreateProjectTaskInput describes a new backlog task.
type CreateProjectTaskInput struct {
	Title       string
	Description string
	TaskType    string
	UserID      string
	WorkingDir  string
	Priority    int
	Tags        []string
	Extra       map[string]interface{}
}

// ProjectTaskFilters narrows project task listings.
type ProjectTaskFilters struct {
	UserID   string
	TaskType string
	Status   string
	Limit    int
}

// TaskService is the read/admin surface over project tasks. Priority
// is descending here: larger means more urgent.
type TaskService struct {
	client *ent.Client
}

// NewTaskService creates a new TaskService
func NewTaskService(client *ent.Client) *TaskService {
	return &TaskService{client: client}
}

// Create persists a backlog task.
func (s *TaskService) Create(ctx context.Context, in CreateProjectTaskInput) (*ent.ProjectTask, error) {
	if in.Title == "" {
		return nil, NewValidationError("title", "required")
	}
	if in.TaskType == "" {
		return nil, NewValidationError("task_type", "required")
	}
	if in.Priority < 0 || in.Priority > 100 {
		return nil, NewValidationError("priority", "must be in [0, 100]")
	}

	builder := s.client.ProjectTask.Create().
		SetID(uuid.New().String()).
		SetTitle(in.Title).
		SetTaskType(in.TaskType).
		SetPriority(in.Priority).
		SetStatus(projecttask.StatusBacklog)
	if in.Description != "" {
		builder.SetDescription(in.Description)
	}
	if in.UserID != "" {
		builder.SetUserID(in.UserID)
	}
	if in.WorkingDir != "" {
		builder.SetWorkingDir(in.WorkingDir)
	}
	if len(in.Tags) > 0 {
		builder.SetTags(in.Tags)
	}
	if in.Extra != nil {
		builder.SetExtra(in.Extra)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return created, nil
}

// Get returns a task by id.
func (s *TaskService) Get(ctx context.Context, taskID string) (*ent.ProjectTask, error) {
	found, err := s.client.ProjectTask.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return found, nil
}

// List returns tasks most-urgent first (priority descending, then
// oldest first within a priority).
func (s *TaskService) List(ctx context.Context, filters ProjectTaskFilters) ([]*ent.ProjectTask, error) {
	query := s.client.ProjectTask.Query()
	if filters.UserID != "" {
		query = query.Where(projecttask.UserIDEQ(filters.UserID))
	}
	if filters.TaskType != "" {
		query = query.Where(projecttask.TaskTypeEQ(filters.TaskType))
	}
	if filters.Status != "" {
		query = query.Where(projecttask.StatusEQ(projecttask.Status(filters.Status)))
	}
	limit := filters.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	tasks, err := query.
		Order(ent.Desc(projecttask.FieldPriority), ent.Asc(projecttask.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// SetStatus moves a task through its lifecycle, recording start and
// completion times at the edges.
func (s *TaskService) SetStatus(ctx context.Context, taskID, status, outcome, notes string) (*ent.ProjectTask, error) {
	target := projecttask.Status(status)
	switch target {
	case projecttask.StatusBacklog, projecttask.StatusReady, projecttask.StatusBlocked,
		projecttask.StatusInProgress, projecttask.StatusDone, projecttask.StatusCancelled:
	default:
		return nil, NewValidationError("status", "unknown task status")
	}

	found, err := s.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}

	builder := found.Update().SetStatus(target)
	switch target {
	case projecttask.StatusInProgress:
		if found.StartedAt == nil {
			builder.SetStartedAt(time.Now())
		}
		builder.SetAttemptCount(found.AttemptCount + 1)
	case projecttask.StatusDone, projecttask.StatusCancelled:
		builder.SetCompletedAt(time.Now())
	}
	if outcome != "" {
		builder.SetOutcome(outcome)
	}
	if notes != "" {
		builder.SetCompletionNotes(notes)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}
	return updated, nil
}

// PendingCounts returns the user's backlog size overall and per type.
func (s *TaskService) PendingCounts(ctx context.Context, userID string) (int, map[string]int, error) {
	tasks, err := s.client.ProjectTask.Query().
		Where(
			projecttask.UserIDEQ(userID),
			projecttask.StatusIn(projecttask.StatusBacklog, projecttask.StatusReady),
		).
		All(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to count pending tasks: %w", err)
	}

	perType := map[string]int{}
	for _, t := range tasks {
		perType[t.TaskType]++
	}
	return len(tasks), perType, nil
}
