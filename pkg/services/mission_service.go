package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kestrel-ai/kestrel/ent"
	"github.com/kestrel-ai/kestrel/ent/mission"
	"github.com/kestrel-ai/kestrel/ent/missionexecution"
	"github.com/kestrel-ai/kestrel/pkg/models"
)

// MissionService manages reusable missions and their execution records.
type MissionService struct {
	client *ent.Client
}

// NewMissionService creates a new MissionService
func NewMissionService(client *ent.Client) *MissionService {
	return &MissionService{client: client}
}

// Create persists a new mission.
func (s *MissionService) Create(ctx context.Context, req models.CreateMissionRequest) (*ent.Mission, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.Prompt == "" {
		return nil, NewValidationError("prompt", "required")
	}

	builder := s.client.Mission.Create().
		SetID(uuid.New().String()).
		SetName(req.Name).
		SetPrompt(req.Prompt).
		SetStatus(mission.StatusActive)
	if req.Schedule != "" {
		builder.SetSchedule(req.Schedule)
	}
	if req.SandboxPolicy != "" {
		builder.SetSandboxPolicy(req.SandboxPolicy)
	}
	if req.Personality != "" {
		builder.SetPersonality(req.Personality)
	}
	if req.Model != "" {
		builder.SetModel(req.Model)
	}
	if len(req.Tools) > 0 {
		builder.SetTools(req.Tools)
	}
	if req.UserID != "" {
		builder.SetUserID(req.UserID)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create mission: %w", err)
	}
	return created, nil
}

// Get returns a mission by id.
func (s *MissionService) Get(ctx context.Context, missionID string) (*ent.Mission, error) {
	found, err := s.client.Mission.Get(ctx, missionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get mission: %w", err)
	}
	return found, nil
}

// List returns missions, optionally filtered by status, newest first.
func (s *MissionService) List(ctx context.Context, status string, limit int) ([]*ent.Mission, error) {
	query := s.client.Mission.Query()
	if status != "" {
		query = query.Where(mission.StatusEQ(mission.Status(status)))
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	missions, err := query.
		Order(ent.Desc(mission.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}
	return missions, nil
}

// Update applies the non-nil fields of the request.
func (s *MissionService) Update(ctx context.Context, missionID string, req models.UpdateMissionRequest) (*ent.Mission, error) {
	found, err := s.Get(ctx, missionID)
	if err != nil {
		return nil, err
	}

	builder := found.Update()
	if req.Name != nil {
		builder.SetName(*req.Name)
	}
	if req.Prompt != nil {
		builder.SetPrompt(*req.Prompt)
	}
	if req.Schedule != nil {
		builder.SetSchedule(*req.Schedule)
	}
	if req.Model != nil {
		builder.SetModel(*req.Model)
	}
	if req.Tools != nil {
		builder.SetTools(*req.Tools)
	}
	if req.Status != nil {
		status := mission.Status(*req.Status)
		switch status {
		case mission.StatusActive, mission.StatusPaused, mission.StatusArchived, mission.StatusRunningOnce:
		default:
			return nil, NewValidationError("status", "must be active, paused, archived, or running_once")
		}
		builder.SetStatus(status)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update mission: %w", err)
	}
	return updated, nil
}

// Archive retires a mission. Archived missions never run again.
func (s *MissionService) Archive(ctx context.Context, missionID string) (*ent.Mission, error) {
	archived := string(mission.StatusArchived)
	return s.Update(ctx, missionID, models.UpdateMissionRequest{Status: &archived})
}

// StartExecution creates a running execution record for the mission.
func (s *MissionService) StartExecution(ctx context.Context, missionID string) (*ent.MissionExecution, error) {
	if _, err := s.Get(ctx, missionID); err != nil {
		return nil, err
	}
	exec, err := s.client.MissionExecution.Create().
		SetID(uuid.New().String()).
		SetMissionID(missionID).
		SetStatus(missionexecution.StatusRunning).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start execution: %w", err)
	}
	return exec, nil
}

// FinishExecution records the outcome of an execution.
func (s *MissionService) FinishExecution(ctx context.Context, executionID, output, errorMessage string, structured map[string]interface{}, toolCount int) (*ent.MissionExecution, error) {
	found, err := s.client.MissionExecution.Get(ctx, executionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get execution: %w", err)
	}

	status := missionexecution.StatusCompleted
	if errorMessage != "" {
		status = missionexecution.StatusFailed
	}
	builder := found.Update().
		SetStatus(status).
		SetCompletedAt(time.Now()).
		SetToolCount(toolCount)
	if output != "" {
		builder.SetOutput(output)
	}
	if errorMessage != "" {
		builder.SetErrorMessage(errorMessage)
	}
	if structured != nil {
		builder.SetStructuredOutput(structured)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to finish execution: %w", err)
	}
	return updated, nil
}

// Executions returns a mission's execution records, newest first.
func (s *MissionService) Executions(ctx context.Context, missionID string, limit int) ([]*ent.MissionExecution, error) {
	if _, err := s.Get(ctx, missionID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	executions, err := s.client.MissionExecution.Query().
		Where(missionexecution.MissionIDEQ(missionID)).
		Order(ent.Desc(missionexecution.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list executions: %w", err)
	}
	return executions, nil
}
