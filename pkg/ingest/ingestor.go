// Package ingest is the write path for observed conversation turns:
// persist the turn, then fan out to the graph, the work queue, and the
// curiosity pipeline without blocking the caller.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kestrel-ai/kestrel/ent"
	"github.com/kestrel-ai/kestrel/ent/conversation"
	"github.com/kestrel-ai/kestrel/ent/conversationblock"
	"github.com/kestrel-ai/kestrel/ent/session"
	"github.com/kestrel-ai/kestrel/pkg/config"
	"github.com/kestrel-ai/kestrel/pkg/curiosity"
	"github.com/kestrel-ai/kestrel/pkg/events"
	"github.com/kestrel-ai/kestrel/pkg/graph"
	"github.com/kestrel-ai/kestrel/pkg/models"
	"github.com/kestrel-ai/kestrel/pkg/queue"
	"github.com/kestrel-ai/kestrel/pkg/services"
)

// fanoutTimeout bounds the asynchronous side effects of one capture.
const fanoutTimeout = 30 * time.Second

// Ingestor persists captured turns and drives the capture fan-out.
type Ingestor struct {
	client    *ent.Client
	sessions  *services.SessionService
	state     *services.StateService
	queue     *queue.Service
	curiosity *curiosity.Pipeline
	graph     graph.Client
	sink      events.Sink
	defaults  *config.Defaults

	wg sync.WaitGroup
}

// NewIngestor wires the capture path. queue, curiosity pipeline, graph
// client, and sink may each be nil; the corresponding fan-out step is
// skipped.
func NewIngestor(
	client *ent.Client,
	sessions *services.SessionService,
	state *services.StateService,
	queueService *queue.Service,
	curiosityPipeline *curiosity.Pipeline,
	graphClient graph.Client,
	sink events.Sink,
	defaults *config.Defaults,
) *Ingestor {
	if sink == nil {
		sink = events.NopSink{}
	}
	return &Ingestor{
		client:    client,
		sessions:  sessions,
		state:     state,
		queue:     queueService,
		curiosity: curiosityPipeline,
		graph:     graphClient,
		sink:      sink,
		defaults:  defaults,
	}
}

// Close waits for in-flight fan-outs to drain.
func (i *Ingestor) Close() {
	i.wg.Wait()
}

// Capture persists one turn and kicks off the asynchronous fan-out.
// An empty prompt still creates the conversation row, just no block.
// Fan-out failures are logged, never returned.
func (i *Ingestor) Capture(ctx context.Context, req models.CaptureRequest) (string, error) {
	if req.SessionID == "" {
		return "", services.NewValidationError("session_id", "required")
	}
	role := req.Role
	if role == "" {
		role = "user"
	}
	switch conversation.Role(role) {
	case conversation.RoleUser, conversation.RoleAssistant, conversation.RoleSystem:
	default:
		return "", services.NewValidationError("role", "must be user, assistant, or system")
	}
	isCommand := req.IsCommand || strings.HasPrefix(strings.TrimSpace(req.Prompt), "/")

	userID := req.UserID
	if userID == "" && i.defaults != nil {
		userID = i.defaults.UserID
	}

	sess, err := i.sessions.EnsureSession(ctx, models.CreateSessionRequest{
		SessionID:  req.SessionID,
		WorkingDir: req.WorkingDir,
		Medium:     req.Medium,
		UserID:     userID,
	})
	if err != nil {
		return "", err
	}
	if sess.UserID != "" {
		userID = sess.UserID
	}

	// The detectors need the preceding turn; read it before this one
	// lands.
	prevRole, prevText := i.previousTurn(ctx, sess.ID)

	conv, err := i.persistTurn(ctx, sess, role, req)
	if err != nil {
		return "", err
	}

	if role == "user" && i.state != nil && userID != "" {
		if err := i.state.RecordInteraction(ctx, userID); err != nil {
			slog.Warn("Failed to record interaction", "user_id", userID, "error", err)
		}
	}

	turn := curiosity.Turn{
		ConversationID: conv.ID,
		SessionID:      sess.ID,
		UserID:         userID,
		Role:           role,
		Text:           req.Prompt,
		PrevRole:       prevRole,
		PrevText:       prevText,
		Timestamp:      conv.CreatedAt,
	}
	i.wg.Add(1)
	go i.fanout(sess, conv, turn, isCommand)

	return conv.ID, nil
}

// persistTurn writes the conversation row, its ordinal-0 text block,
// and the activity bump in one transaction.
func (i *Ingestor) persistTurn(ctx context.Context, sess *ent.Session, role string, req models.CaptureRequest) (*ent.Conversation, error) {
	tx, err := i.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	builder := tx.Conversation.Create().
		SetID(uuid.New().String()).
		SetSessionID(sess.ID).
		SetRole(conversation.Role(role)).
		SetPrompt(req.Prompt).
		SetUserID(sess.UserID)
	medium := req.Medium
	if medium == "" {
		medium = sess.Medium
	}
	if medium != "" {
		builder.SetMedium(medium)
	}
	if req.LatencyMs != nil {
		builder.SetLatencyMs(*req.LatencyMs)
	}
	if len(req.ToolNames) > 0 {
		builder.SetToolNames(req.ToolNames)
	}

	conv, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	if req.Prompt != "" {
		_, err = tx.ConversationBlock.Create().
			SetID(uuid.New().String()).
			SetConversationID(conv.ID).
			SetOrdinal(0).
			SetKind(conversationblock.KindText).
			SetText(req.Prompt).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create text block: %w", err)
		}
	}

	_, err = tx.Session.Update().
		Where(session.IDEQ(sess.ID)).
		SetLastActivity(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to touch session activity: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit capture: %w", err)
	}
	return conv, nil
}

// fanout runs the capture side effects on a detached context. Each step
// absorbs its own failure.
func (i *Ingestor) fanout(sess *ent.Session, conv *ent.Conversation, turn curiosity.Turn, isCommand bool) {
	defer i.wg.Done()
	ctx, cancel := context.WithTimeout(context.Background(), fanoutTimeout)
	defer cancel()

	_ = i.sink.Emit(ctx, events.KindConversationCaptured, map[string]any{
		"conversation_id": conv.ID,
		"session_id":      sess.ID,
		"user_id":         turn.UserID,
		"role":            turn.Role,
		"medium":          conv.Medium,
	})

	if i.graph != nil && turn.Text != "" {
		_, err := i.graph.AddEpisode(ctx, graph.Episode{
			EpisodeBody:       turn.Text,
			SourceDescription: "conversation capture",
			ReferenceTime:     turn.Timestamp,
			Source:            "message",
			GroupID:           turn.UserID,
			SpeakerID:         turn.UserID,
			Personality:       sess.Personality,
		})
		if err != nil && !errors.Is(err, graph.ErrUnavailable) {
			slog.Warn("Graph episode publish failed",
				"conversation_id", conv.ID, "error", err)
		}
	}

	if i.queue != nil && turn.Role == "user" && turn.Text != "" {
		_, err := i.queue.Enqueue(ctx, queue.EnqueueInput{
			TaskType:  "emotion_stimulus",
			Content:   turn.Text,
			SessionID: sess.ID,
			Metadata: map[string]interface{}{
				"conversation_id": conv.ID,
				"user_id":         turn.UserID,
			},
		})
		if err != nil {
			slog.Warn("Emotion stimulus enqueue failed",
				"conversation_id", conv.ID, "error", err)
		}
	}

	if i.curiosity != nil && !(isCommand && turn.Role == "user") {
		if _, err := i.curiosity.Process(ctx, turn); err != nil {
			slog.Warn("Curiosity processing failed",
				"conversation_id", conv.ID, "error", err)
		}
	}
}

// previousTurn returns the role and prompt of the session's most recent
// conversation, if any.
func (i *Ingestor) previousTurn(ctx context.Context, sessionID string) (string, string) {
	prev, err := i.client.Conversation.Query().
		Where(conversation.SessionIDEQ(sessionID)).
		Order(ent.Desc(conversation.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		return "", ""
	}
	return string(prev.Role), prev.Prompt
}

// AppendBlocks appends blocks with the next dense ordinals. The
// conversation row is locked so concurrent appends cannot interleave
// ordinals.
func (i *Ingestor) AppendBlocks(ctx context.Context, conversationID string, blocks []models.BlockInput) ([]*ent.ConversationBlock, error) {
	if conversationID == "" {
		return nil, services.NewValidationError("conversation_id", "required")
	}
	if len(blocks) == 0 {
		return nil, nil
	}
	for _, b := range blocks {
		switch conversationblock.Kind(b.Kind) {
		case conversationblock.KindText, conversationblock.KindToolUse, conversationblock.KindToolResult:
		default:
			return nil, services.NewValidationError("kind", "must be text, tool_use, or tool_result")
		}
	}

	tx, err := i.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Conversation.Query().
		Where(conversation.IDEQ(conversationID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock conversation: %w", err)
	}

	next, err := tx.ConversationBlock.Query().
		Where(conversationblock.ConversationIDEQ(conversationID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count blocks: %w", err)
	}

	created := make([]*ent.ConversationBlock, 0, len(blocks))
	for _, b := range blocks {
		builder := tx.ConversationBlock.Create().
			SetID(uuid.New().String()).
			SetConversationID(conversationID).
			SetOrdinal(next).
			SetKind(conversationblock.Kind(b.Kind))
		if b.Text != "" {
			builder.SetText(b.Text)
		}
		if b.ToolName != "" {
			builder.SetToolName(b.ToolName)
		}
		if b.ToolUseID != "" {
			builder.SetToolUseID(b.ToolUseID)
		}
		if b.ToolInput != nil {
			builder.SetToolInput(b.ToolInput)
		}
		if b.ToolResult != nil {
			builder.SetToolResult(b.ToolResult)
		}

		block, err := builder.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to append block: %w", err)
		}
		created = append(created, block)
		next++
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit block append: %w", err)
	}
	return created, nil
}
