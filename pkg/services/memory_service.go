package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/kestrel-ai/kestrel/ent"
	"github.com/kestrel-ai/kestrel/ent/corememoryblock"
	"github.com/kestrel-ai/kestrel/ent/corememoryversion"
	"github.com/kestrel-ai/kestrel/pkg/models"
)

// MemoryService manages versioned core memory blocks. Every content
// write bumps the block version and appends an immutable version row,
// so any prior state can be inspected or rolled back to.
type MemoryService struct {
	client *ent.Client
}

// NewMemoryService creates a new MemoryService
func NewMemoryService(client *ent.Client) *MemoryService {
	return &MemoryService{client: client}
}

// GetBlock returns the block for the scope, or ErrNotFound.
// Exactly one of UserID/SessionID selects the scope.
func (s *MemoryService) GetBlock(ctx context.Context, userID, sessionID, blockType string) (*ent.CoreMemoryBlock, error) {
	query, err := s.scopedQuery(userID, sessionID, blockType)
	if err != nil {
		return nil, err
	}
	block, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get memory block: %w", err)
	}
	return block, nil
}

// EnsureBlock returns the scoped block, creating an empty one at
// version 0 when missing.
func (s *MemoryService) EnsureBlock(ctx context.Context, userID, sessionID, blockType string, charLimit int) (*ent.CoreMemoryBlock, error) {
	block, err := s.GetBlock(ctx, userID, sessionID, blockType)
	if err == nil {
		return block, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	builder := s.client.CoreMemoryBlock.Create().
		SetID(uuid.New().String()).
		SetBlockType(blockType)
	if userID != "" {
		builder.SetUserID(userID)
	}
	if sessionID != "" {
		builder.SetSessionID(sessionID)
	}
	if charLimit > 0 {
		builder.SetCharLimit(charLimit)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		// Lost a create race against the partial unique index.
		if ent.IsConstraintError(err) {
			return s.GetBlock(ctx, userID, sessionID, blockType)
		}
		return nil, fmt.Errorf("failed to create memory block: %w", err)
	}
	return created, nil
}

// Edit replaces a block's content under a row lock: the version is
// bumped and an immutable version row is appended in the same
// transaction. Content over the block's char limit is rejected.
func (s *MemoryService) Edit(ctx context.Context, req models.EditMemoryRequest) (*ent.CoreMemoryBlock, error) {
	if req.BlockType == "" {
		return nil, NewValidationError("block_type", "required")
	}
	block, err := s.EnsureBlock(ctx, req.UserID, req.SessionID, req.BlockType, 0)
	if err != nil {
		return nil, err
	}
	return s.writeVersion(ctx, block.ID, req.Content, req.Reason)
}

// Rollback writes a new version whose content is that of the target
// version. The version counter keeps moving forward: history is never
// rewritten. A target version that was never written is
// ErrPreconditionFailed.
func (s *MemoryService) Rollback(ctx context.Context, blockID string, targetVersion int, reason string) (*ent.CoreMemoryBlock, error) {
	if targetVersion < 1 {
		return nil, NewValidationError("version", "must be >= 1")
	}

	target, err := s.client.CoreMemoryVersion.Query().
		Where(
			corememoryversion.BlockIDEQ(blockID),
			corememoryversion.VersionEQ(targetVersion),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: version %d does not exist", ErrPreconditionFailed, targetVersion)
		}
		return nil, fmt.Errorf("failed to load target version: %w", err)
	}

	if reason == "" {
		reason = fmt.Sprintf("rollback to version %d", targetVersion)
	}
	return s.writeVersion(ctx, blockID, target.Content, reason)
}

// History returns a block's version rows, newest first.
func (s *MemoryService) History(ctx context.Context, blockID string, limit int) ([]*ent.CoreMemoryVersion, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	versions, err := s.client.CoreMemoryVersion.Query().
		Where(corememoryversion.BlockIDEQ(blockID)).
		Order(ent.Desc(corememoryversion.FieldVersion)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load version history: %w", err)
	}
	return versions, nil
}

// GetBlockByID returns a block by its id.
func (s *MemoryService) GetBlockByID(ctx context.Context, blockID string) (*ent.CoreMemoryBlock, error) {
	block, err := s.client.CoreMemoryBlock.Get(ctx, blockID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get memory block: %w", err)
	}
	return block, nil
}

// writeVersion performs the locked read-modify-write shared by Edit and
// Rollback.
func (s *MemoryService) writeVersion(ctx context.Context, blockID, content, reason string) (*ent.CoreMemoryBlock, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	block, err := tx.CoreMemoryBlock.Query().
		Where(corememoryblock.IDEQ(blockID)).
		ForUpdate(sql.WithLockAction(sql.NoWait)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock memory block: %w", err)
	}

	if len(content) > block.CharLimit {
		return nil, NewValidationError("content",
			fmt.Sprintf("exceeds char limit of %d", block.CharLimit))
	}

	nextVersion := block.Version + 1
	updated, err := tx.CoreMemoryBlock.UpdateOne(block).
		SetContent(content).
		SetVersion(nextVersion).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update memory block: %w", err)
	}

	versionBuilder := tx.CoreMemoryVersion.Create().
		SetID(uuid.New().String()).
		SetBlockID(block.ID).
		SetVersion(nextVersion).
		SetContent(content)
	if reason != "" {
		versionBuilder.SetReason(reason)
	}
	if _, err := versionBuilder.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to append version row: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return updated, nil
}

func (s *MemoryService) scopedQuery(userID, sessionID, blockType string) (*ent.CoreMemoryBlockQuery, error) {
	if blockType == "" {
		return nil, NewValidationError("block_type", "required")
	}
	switch {
	case sessionID != "":
		return s.client.CoreMemoryBlock.Query().
			Where(
				corememoryblock.SessionIDEQ(sessionID),
				corememoryblock.BlockTypeEQ(blockType),
			), nil
	case userID != "":
		return s.client.CoreMemoryBlock.Query().
			Where(
				corememoryblock.UserIDEQ(userID),
				corememoryblock.SessionIDIsNil(),
				corememoryblock.BlockTypeEQ(blockType),
			), nil
	default:
		return nil, NewValidationError("scope", "user_id or session_id required")
	}
}
