// Package summary maintains per-session summaries, a per-user rolling
// summary, and the "Recent summary:" line in user-scoped core memory.
package summary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/kestrel-ai/kestrel/ent"
	"github.com/kestrel-ai/kestrel/ent/conversation"
	"github.com/kestrel-ai/kestrel/ent/session"
	"github.com/kestrel-ai/kestrel/ent/summarycontext"
	"github.com/kestrel-ai/kestrel/pkg/config"
	"github.com/kestrel-ai/kestrel/pkg/events"
	"github.com/kestrel-ai/kestrel/pkg/llm"
	"github.com/kestrel-ai/kestrel/pkg/models"
	"github.com/kestrel-ai/kestrel/pkg/services"
)

const (
	taskBlockType       = "task"
	recentSummaryPrefix = "Recent summary: "

	sessionSummarySystem = "You summarize conversations. Reply with 1-2 plain sentences capturing what the user worked on and any decisions made. No preamble."
	rollingSummarySystem = "You maintain a rolling summary of a user's recent activity. Merge the previous summary with the new session summaries into 2-3 plain sentences. Prefer recent information. No preamble."
)

// Loop is the periodic summarizer. One instance per deployment; the
// in-process guard keeps a slow pass from overlapping the next tick.
type Loop struct {
	client *ent.Client
	memory *services.MemoryService
	llm    llm.Client
	cfg    *config.SummaryConfig
	llmCfg *config.LLMConfig
	sink   events.Sink

	running  atomic.Bool
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewLoop creates the summary loop. sink may be nil.
func NewLoop(client *ent.Client, memory *services.MemoryService, llmClient llm.Client, cfg *config.SummaryConfig, llmCfg *config.LLMConfig, sink events.Sink) *Loop {
	if sink == nil {
		sink = events.NopSink{}
	}
	return &Loop{
		client: client,
		memory: memory,
		llm:    llmClient,
		cfg:    cfg,
		llmCfg: llmCfg,
		sink:   sink,
		stopCh: make(chan struct{}),
	}
}

// Start launches the periodic pass.
func (l *Loop) Start(ctx context.Context) {
	l.wg.Add(1)
	go l.run(ctx)
	slog.Info("Summary loop started", "interval", l.cfg.Interval)
}

// Stop signals the loop to exit and waits for it.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopCh)
	})
	l.wg.Wait()
}

func (l *Loop) run(ctx context.Context) {
	defer l.wg.Done()

	ticker := time.NewTicker(l.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-l.stopCh:
			return
		case <-ticker.C:
			if n, err := l.RunOnce(ctx); err != nil {
				slog.Error("Summary pass failed", "error", err)
			} else if n > 0 {
				slog.Info("Summary pass complete", "sessions", n)
			}
		}
	}
}

// RunOnce performs one summary pass: summarize idle candidate sessions,
// then roll the per-user summary forward. It returns the number of
// sessions summarized. A pass already in flight makes this a no-op.
func (l *Loop) RunOnce(ctx context.Context) (int, error) {
	if !l.running.CompareAndSwap(false, true) {
		return 0, nil
	}
	defer l.running.Store(false)

	candidates, err := l.candidateSessions(ctx)
	if err != nil {
		return 0, err
	}

	summarized := 0
	affectedUsers := map[string]bool{}
	for _, sess := range candidates {
		ok, err := l.summarizeSession(ctx, sess)
		if err != nil {
			slog.Warn("Session summarization failed", "session_id", sess.ID, "error", err)
			continue
		}
		if ok {
			summarized++
			affectedUsers[sess.UserID] = true
		}
	}

	for userID := range affectedUsers {
		if userID == "" {
			continue
		}
		if err := l.rollForward(ctx, userID); err != nil {
			slog.Warn("Rolling summary update failed", "user_id", userID, "error", err)
		}
	}
	return summarized, nil
}

// candidateSessions are live sessions idle for at least IdleAfter,
// active within ActivityWindow, whose summary is missing or older than
// the latest activity.
func (l *Loop) candidateSessions(ctx context.Context) ([]*ent.Session, error) {
	now := time.Now()
	sessions, err := l.client.Session.Query().
		Where(
			session.EndTimeIsNil(),
			session.LastActivityGTE(now.Add(-l.cfg.ActivityWindow)),
			session.LastActivityLTE(now.Add(-l.cfg.IdleAfter)),
			session.Or(
				session.SummaryIsNil(),
				session.SummaryUpdatedAtIsNil(),
				func(s *sql.Selector) {
					s.Where(sql.ColumnsLT(
						s.C(session.FieldSummaryUpdatedAt),
						s.C(session.FieldLastActivity),
					))
				},
			),
		).
		Order(ent.Asc(session.FieldLastActivity)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidate sessions: %w", err)
	}
	return sessions, nil
}

// summarizeSession writes a fresh 1-2 sentence summary onto the
// session. Sessions with too few messages are skipped without error.
func (l *Loop) summarizeSession(ctx context.Context, sess *ent.Session) (bool, error) {
	count, err := l.client.Conversation.Query().
		Where(conversation.SessionIDEQ(sess.ID)).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count messages: %w", err)
	}
	if count < l.cfg.MinMessages {
		return false, nil
	}

	recent, err := l.client.Conversation.Query().
		Where(conversation.SessionIDEQ(sess.ID)).
		Order(ent.Desc(conversation.FieldCreatedAt)).
		Limit(l.cfg.MaxMessages).
		All(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load messages: %w", err)
	}
	for i, j := 0, len(recent)-1; i < j; i, j = i+1, j-1 {
		recent[i], recent[j] = recent[j], recent[i]
	}

	var b strings.Builder
	for _, conv := range recent {
		b.WriteString(string(conv.Role))
		b.WriteString(": ")
		b.WriteString(conv.Prompt)
		b.WriteString("\n")
	}
	transcript := truncateHead(b.String(), l.cfg.MaxInputChars)

	text, err := l.llm.Text(ctx, llm.Request{
		System: sessionSummarySystem,
		Prompt: transcript,
		Model:  l.llmCfg.SummaryModel,
	})
	if err != nil {
		return false, fmt.Errorf("failed to summarize session: %w", err)
	}

	err = sess.Update().
		SetSummary(text).
		SetSummaryUpdatedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to store session summary: %w", err)
	}

	_ = l.sink.Emit(ctx, events.KindSummaryWritten, map[string]any{
		"session_id": sess.ID,
		"user_id":    sess.UserID,
	})
	return true, nil
}

// rollForward merges newly summarized sessions into the user's rolling
// summary and mirrors the result into user-scoped core memory.
func (l *Loop) rollForward(ctx context.Context, userID string) error {
	latest, err := l.client.SummaryContext.Query().
		Where(summarycontext.UserIDEQ(userID)).
		Order(ent.Desc(summarycontext.FieldCreatedAt)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to load rolling summary: %w", err)
	}

	included := map[string]bool{}
	var previous string
	var sessionIDs []string
	if latest != nil {
		previous = latest.Summary
		sessionIDs = append(sessionIDs, latest.Sessions...)
		for _, id := range latest.Sessions {
			included[id] = true
		}
	}

	summarized, err := l.client.Session.Query().
		Where(
			session.UserIDEQ(userID),
			session.SummaryNotNil(),
		).
		Order(ent.Desc(session.FieldSummaryUpdatedAt)).
		Limit(l.cfg.RollingSessionLimit + len(included)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load summarized sessions: %w", err)
	}

	var fresh []*ent.Session
	for _, sess := range summarized {
		if !included[sess.ID] {
			fresh = append(fresh, sess)
		}
		if len(fresh) >= l.cfg.RollingSessionLimit {
			break
		}
	}
	if len(fresh) == 0 {
		return nil
	}

	var b strings.Builder
	if previous != "" {
		b.WriteString("Previous summary:\n")
		b.WriteString(previous)
		b.WriteString("\n\n")
	}
	b.WriteString("New session summaries:\n")
	for _, sess := range fresh {
		b.WriteString("- ")
		b.WriteString(*sess.Summary)
		b.WriteString("\n")
	}

	merged, err := l.llm.Text(ctx, llm.Request{
		System: rollingSummarySystem,
		Prompt: b.String(),
		Model:  l.llmCfg.SummaryModel,
	})
	if err != nil {
		return fmt.Errorf("failed to merge rolling summary: %w", err)
	}

	for _, sess := range fresh {
		sessionIDs = append(sessionIDs, sess.ID)
	}
	_, err = l.client.SummaryContext.Create().
		SetID(uuid.New().String()).
		SetSummary(merged).
		SetSessions(sessionIDs).
		SetUserID(userID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to append rolling summary: %w", err)
	}

	return l.updateTaskBlock(ctx, userID, merged)
}

// updateTaskBlock replaces the "Recent summary:" line of the user's
// task core-memory block, respecting the block's char limit.
func (l *Loop) updateTaskBlock(ctx context.Context, userID, rolling string) error {
	block, err := l.memory.EnsureBlock(ctx, userID, "", taskBlockType, l.cfg.CoreMemoryCharLimit)
	if err != nil {
		return fmt.Errorf("failed to ensure task block: %w", err)
	}

	var kept []string
	for _, line := range strings.Split(block.Content, "\n") {
		if line == "" || strings.HasPrefix(line, recentSummaryPrefix) {
			continue
		}
		kept = append(kept, line)
	}
	kept = append(kept, recentSummaryPrefix+rolling)
	content := strings.Join(kept, "\n")
	if len(content) > block.CharLimit {
		content = content[:block.CharLimit]
	}

	_, err = l.memory.Edit(ctx, models.EditMemoryRequest{
		UserID:    userID,
		BlockType: taskBlockType,
		Content:   content,
		Reason:    "rolling summary update",
	})
	if err != nil {
		return fmt.Errorf("failed to update task block: %w", err)
	}

	_ = l.sink.Emit(ctx, events.KindCoreMemoryUpdated, map[string]any{
		"user_id":    userID,
		"block_type": taskBlockType,
	})
	return nil
}

// truncateHead keeps the trailing max chars: the most recent part of
// the transcript is the informative part.
func truncateHead(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[len(s)-max:]
}
