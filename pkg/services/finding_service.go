package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kestrel-ai/kestrel/ent"
	"github.com/kestrel-ai/kestrel/ent/explorationfinding"
	"github.com/kestrel-ai/kestrel/ent/surfacedfinding"
)

// FindingInput is one candidate fact produced by an exploration task.
type FindingInput struct {
	TaskID        string
	Finding       string
	SourceContext string
	Confidence    float64
	WorthSharing  bool
	ShareMessage  string
}

// FindingService records exploration findings and tracks which have
// been surfaced into which sessions.
type FindingService struct {
	client *ent.Client
}

// NewFindingService creates a new FindingService
func NewFindingService(client *ent.Client) *FindingService {
	return &FindingService{client: client}
}

// Record persists findings for a task. Findings with empty text are
// skipped; confidence is clamped to [0, 1].
func (s *FindingService) Record(ctx context.Context, inputs []FindingInput) ([]*ent.ExplorationFinding, error) {
	var created []*ent.ExplorationFinding
	for _, in := range inputs {
		if in.Finding == "" {
			continue
		}
		if in.TaskID == "" {
			return nil, NewValidationError("task_id", "required")
		}
		confidence := in.Confidence
		if confidence < 0 {
			confidence = 0
		}
		if confidence > 1 {
			confidence = 1
		}

		builder := s.client.ExplorationFinding.Create().
			SetID(uuid.New().String()).
			SetTaskID(in.TaskID).
			SetFinding(in.Finding).
			SetConfidence(confidence).
			SetWorthSharing(in.WorthSharing)
		if in.SourceContext != "" {
			builder.SetSourceContext(in.SourceContext)
		}
		if in.ShareMessage != "" {
			builder.SetShareMessage(in.ShareMessage)
		}

		finding, err := builder.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to record finding: %w", err)
		}
		created = append(created, finding)
	}
	return created, nil
}

// Shareable returns worth-sharing findings not yet surfaced in the
// session, newest first.
func (s *FindingService) Shareable(ctx context.Context, sessionID string, limit int) ([]*ent.ExplorationFinding, error) {
	if limit <= 0 || limit > 50 {
		limit = 5
	}

	surfaced, err := s.client.SurfacedFinding.Query().
		Where(surfacedfinding.SessionIDEQ(sessionID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load surfaced findings: %w", err)
	}
	seen := make(map[string]bool, len(surfaced))
	for _, sf := range surfaced {
		seen[sf.FindingID] = true
	}

	candidates, err := s.client.ExplorationFinding.Query().
		Where(explorationfinding.WorthSharingEQ(true)).
		Order(ent.Desc(explorationfinding.FieldCreatedAt)).
		Limit(limit + len(seen)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load findings: %w", err)
	}

	var out []*ent.ExplorationFinding
	for _, f := range candidates {
		if seen[f.ID] {
			continue
		}
		out = append(out, f)
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

// Surface records that the finding was shown in the session. A repeat
// surface of the same pair is a no-op, so each session sees a finding
// at most once.
func (s *FindingService) Surface(ctx context.Context, findingID, sessionID string) error {
	if findingID == "" {
		return NewValidationError("finding_id", "required")
	}
	if sessionID == "" {
		return NewValidationError("session_id", "required")
	}

	err := s.client.SurfacedFinding.Create().
		SetID(uuid.New().String()).
		SetFindingID(findingID).
		SetSessionID(sessionID).
		OnConflictColumns(surfacedfinding.FieldFindingID, surfacedfinding.FieldSessionID).
		DoNothing().
		Exec(ctx)
	if err := ignoreNoRows(err); err != nil {
		return fmt.Errorf("failed to surface finding: %w", err)
	}
	return nil
}

// ByTask returns a task's findings, oldest first.
func (s *FindingService) ByTask(ctx context.Context, taskID string) ([]*ent.ExplorationFinding, error) {
	findings, err := s.client.ExplorationFinding.Query().
		Where(explorationfinding.TaskIDEQ(taskID)).
		Order(ent.Asc(explorationfinding.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list findings: %w", err)
	}
	return findings, nil
}
