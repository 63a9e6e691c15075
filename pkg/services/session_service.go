package services

import (
	"context"
	stdsql "database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kestrel-ai/kestrel/ent"
	"github.com/kestrel-ai/kestrel/ent/conversation"
	"github.com/kestrel-ai/kestrel/ent/conversationblock"
	"github.com/kestrel-ai/kestrel/ent/session"
	"github.com/kestrel-ai/kestrel/pkg/models"
)

// maxContinuationHops bounds continued_from chain traversal. Chains
// longer than this are treated as cyclic.
const maxContinuationHops = 64

// SessionService manages session lifecycle and conversation history.
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// CreateSession creates a new session. Fails with ErrAlreadyExists when
// the id is taken and with a validation error when continued_from would
// introduce a cycle.
func (s *SessionService) CreateSession(ctx context.Context, req models.CreateSessionRequest) (*ent.Session, error) {
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if req.ContinuedFrom != "" {
		if err := s.checkContinuationChain(ctx, req.SessionID, req.ContinuedFrom); err != nil {
			return nil, err
		}
	}

	builder := s.client.Session.Create().
		SetID(req.SessionID).
		SetStartTime(time.Now()).
		SetLastActivity(time.Now())

	if req.WorkingDir != "" {
		builder.SetWorkingDir(req.WorkingDir)
	}
	if req.Medium != "" {
		builder.SetMedium(req.Medium)
	}
	if req.UserID != "" {
		builder.SetUserID(req.UserID)
	}
	if req.Personality != "" {
		builder.SetPersonality(req.Personality)
	}
	if req.SandboxPolicy != "" {
		builder.SetSandboxPolicy(req.SandboxPolicy)
	}
	if req.ContinuedFrom != "" {
		builder.SetContinuedFrom(req.ContinuedFrom)
	}
	if req.MissionID != "" {
		builder.SetMissionID(req.MissionID)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return created, nil
}

// EnsureSession creates the session if it does not exist and returns it.
// Safe to call concurrently for the same id.
func (s *SessionService) EnsureSession(ctx context.Context, req models.CreateSessionRequest) (*ent.Session, error) {
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}

	existing, err := s.GetSession(ctx, req.SessionID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	created, err := s.CreateSession(ctx, req)
	if err == nil {
		return created, nil
	}
	// Lost a create race; the row exists now.
	if errors.Is(err, ErrAlreadyExists) {
		return s.GetSession(ctx, req.SessionID)
	}
	return nil, err
}

// FindOrCreateSession returns the most recent live session matching the
// user, medium, and working dir, creating one when none exists.
func (s *SessionService) FindOrCreateSession(ctx context.Context, req models.CreateSessionRequest) (*ent.Session, error) {
	query := s.client.Session.Query().
		Where(session.EndTimeIsNil()).
		Order(ent.Desc(session.FieldLastActivity))
	if req.UserID != "" {
		query = query.Where(session.UserIDEQ(req.UserID))
	}
	if req.Medium != "" {
		query = query.Where(session.MediumEQ(req.Medium))
	}
	if req.WorkingDir != "" {
		query = query.Where(session.WorkingDirEQ(req.WorkingDir))
	}

	existing, err := query.First(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to find session: %w", err)
	}

	if req.SessionID == "" {
		req.SessionID = uuid.New().String()
	}
	return s.EnsureSession(ctx, req)
}

// GetSession retrieves a session by id.
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*ent.Session, error) {
	found, err := s.client.Session.Query().
		Where(session.IDEQ(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return found, nil
}

// ListSessions lists sessions newest-activity first.
func (s *SessionService) ListSessions(ctx context.Context, filters models.SessionFilters) ([]*ent.Session, error) {
	query := s.client.Session.Query()
	if filters.UserID != "" {
		query = query.Where(session.UserIDEQ(filters.UserID))
	}
	if filters.Medium != "" {
		query = query.Where(session.MediumEQ(filters.Medium))
	}
	if filters.ActiveOnly {
		query = query.Where(session.EndTimeIsNil())
	}
	limit := filters.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	sessions, err := query.
		Order(ent.Desc(session.FieldLastActivity)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// EndSession marks the session as ended. Ending an already-ended
// session is a no-op.
func (s *SessionService) EndSession(ctx context.Context, sessionID string) (*ent.Session, error) {
	found, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if found.EndTime != nil {
		return found, nil
	}

	end := time.Now()
	if end.Before(found.StartTime) {
		end = found.StartTime
	}
	updated, err := found.Update().
		SetEndTime(end).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to end session: %w", err)
	}
	return updated, nil
}

// TouchActivity bumps last_activity. Missing sessions are ignored.
func (s *SessionService) TouchActivity(ctx context.Context, sessionID string) error {
	_, err := s.client.Session.Update().
		Where(session.IDEQ(sessionID)).
		SetLastActivity(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to touch session activity: %w", err)
	}
	return nil
}

// History returns the session's conversations oldest-first, each with
// its blocks ordered by ordinal.
func (s *SessionService) History(ctx context.Context, sessionID string, limit int) ([]*ent.Conversation, error) {
	if _, err := s.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	// Newest N, then reversed to chronological order.
	conversations, err := s.client.Conversation.Query().
		Where(conversation.SessionIDEQ(sessionID)).
		Order(ent.Desc(conversation.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	for i, j := 0, len(conversations)-1; i < j; i, j = i+1, j-1 {
		conversations[i], conversations[j] = conversations[j], conversations[i]
	}
	return conversations, nil
}

// Blocks returns a conversation's blocks in ordinal order.
func (s *SessionService) Blocks(ctx context.Context, conversationID string) ([]*ent.ConversationBlock, error) {
	blocks, err := s.client.ConversationBlock.Query().
		Where(conversationblock.ConversationIDEQ(conversationID)).
		Order(ent.Asc(conversationblock.FieldOrdinal)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation blocks: %w", err)
	}
	return blocks, nil
}

// ContinuationChain returns session ids from the given session backwards
// through continued_from links, oldest last. Traversal is bounded.
func (s *SessionService) ContinuationChain(ctx context.Context, sessionID string) ([]string, error) {
	chain := []string{sessionID}
	seen := map[string]bool{sessionID: true}
	current := sessionID

	for range maxContinuationHops {
		found, err := s.GetSession(ctx, current)
		if err != nil {
			if errors.Is(err, ErrNotFound) && len(chain) > 1 {
				// Dangling link at the end of the chain.
				return chain[:len(chain)-1], nil
			}
			return nil, err
		}
		if found.ContinuedFrom == nil || *found.ContinuedFrom == "" {
			return chain, nil
		}
		next := *found.ContinuedFrom
		if seen[next] {
			return chain, nil
		}
		seen[next] = true
		chain = append(chain, next)
		current = next
	}
	return chain, nil
}

// checkContinuationChain rejects a continued_from link that would point
// back at the new session or exceed the hop bound.
func (s *SessionService) checkContinuationChain(ctx context.Context, newID, from string) error {
	if from == newID {
		return NewValidationError("continued_from", "session cannot continue from itself")
	}
	seen := map[string]bool{newID: true}
	current := from

	for range maxContinuationHops {
		if seen[current] {
			return NewValidationError("continued_from", "continuation chain contains a cycle")
		}
		seen[current] = true

		found, err := s.GetSession(ctx, current)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				// Linking to an unknown session is allowed; imports
				// may arrive out of order.
				return nil
			}
			return err
		}
		if found.ContinuedFrom == nil || *found.ContinuedFrom == "" {
			return nil
		}
		current = *found.ContinuedFrom
	}
	return NewValidationError("continued_from", "continuation chain too long")
}

// AddMessage appends a message to the session as a conversation with a
// single text block.
func (s *SessionService) AddMessage(ctx context.Context, sessionID, role, text string) (*ent.Conversation, error) {
	switch conversation.Role(role) {
	case conversation.RoleUser, conversation.RoleAssistant, conversation.RoleSystem:
	default:
		return nil, NewValidationError("role", "must be user, assistant, or system")
	}
	if text == "" {
		return nil, NewValidationError("text", "required")
	}
	owner, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	conv, err := tx.Conversation.Create().
		SetID(uuid.New().String()).
		SetSessionID(owner.ID).
		SetRole(conversation.Role(role)).
		SetPrompt(text).
		SetUserID(owner.UserID).
		SetMedium(owner.Medium).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	_, err = tx.ConversationBlock.Create().
		SetID(uuid.New().String()).
		SetConversationID(conv.ID).
		SetOrdinal(0).
		SetKind(conversationblock.KindText).
		SetText(text).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create text block: %w", err)
	}

	_, err = tx.Session.Update().
		Where(session.IDEQ(owner.ID)).
		SetLastActivity(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to touch session activity: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return conv, nil
}

// ignoreNoRows maps sql.ErrNoRows (from upserts that did nothing) to nil.
func ignoreNoRows(err error) error {
	if err == nil || errors.Is(err, stdsql.ErrNoRows) {
		return nil
	}
	return err
}
