package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kestrel-ai/kestrel/ent"
	"github.com/kestrel-ai/kestrel/ent/contextcache"
)

// ContextService manages the per-session materialized context cache.
type ContextService struct {
	client *ent.Client
}

// NewContextService creates a new ContextService
func NewContextService(client *ent.Client) *ContextService {
	return &ContextService{client: client}
}

// Put upserts the session's cached context blob.
func (s *ContextService) Put(ctx context.Context, sessionID, contextText string, metadata map[string]interface{}) (*ent.ContextCache, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}

	builder := s.client.ContextCache.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetContext(contextText).
		SetUpdatedAt(time.Now())
	if metadata != nil {
		builder.SetMetadata(metadata)
	}

	err := builder.
		OnConflictColumns(contextcache.FieldSessionID).
		UpdateContext().
		UpdateMetadata().
		UpdateUpdatedAt().
		Exec(ctx)
	if err := ignoreNoRows(err); err != nil {
		return nil, fmt.Errorf("failed to upsert context cache: %w", err)
	}

	return s.get(ctx, sessionID)
}

// Get returns the cached context when it is fresher than maxAge.
// A missing or stale entry is ErrNotFound; callers rebuild.
func (s *ContextService) Get(ctx context.Context, sessionID string, maxAge time.Duration) (*ent.ContextCache, error) {
	cached, err := s.get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if maxAge > 0 && time.Since(cached.UpdatedAt) > maxAge {
		return nil, ErrNotFound
	}
	return cached, nil
}

func (s *ContextService) get(ctx context.Context, sessionID string) (*ent.ContextCache, error) {
	cached, err := s.client.ContextCache.Query().
		Where(contextcache.SessionIDEQ(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get context cache: %w", err)
	}
	return cached, nil
}
