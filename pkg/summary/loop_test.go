package summary

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-ai/kestrel/ent"
	"github.com/kestrel-ai/kestrel/ent/conversation"
	"github.com/kestrel-ai/kestrel/pkg/config"
	"github.com/kestrel-ai/kestrel/pkg/llm"
	"github.com/kestrel-ai/kestrel/pkg/services"
	testdb "github.com/kestrel-ai/kestrel/test/database"
)

type recordSink struct {
	kinds []string
}

func (r *recordSink) Emit(_ context.Context, kind string, _ map[string]any) error {
	r.kinds = append(r.kinds, kind)
	return nil
}

func newTestLoop(t *testing.T, stub *llm.StubClient) (*Loop, *ent.Client, *recordSink) {
	t.Helper()
	client := testdb.NewTestClient(t)
	sink := &recordSink{}
	memory := services.NewMemoryService(client.Client)
	loop := NewLoop(client.Client, memory, stub, config.DefaultSummaryConfig(), config.DefaultLLMConfig(), sink)
	return loop, client.Client, sink
}

// seedSession creates a live session idle for the given duration with
// messageCount user/assistant turns.
func seedSession(t *testing.T, client *ent.Client, sessionID, userID string, idle time.Duration, messageCount int) {
	t.Helper()
	ctx := context.Background()
	lastActivity := time.Now().Add(-idle)

	_, err := client.Session.Create().
		SetID(sessionID).
		SetUserID(userID).
		SetStartTime(lastActivity.Add(-time.Hour)).
		SetLastActivity(lastActivity).
		Save(ctx)
	require.NoError(t, err)

	for i := 0; i < messageCount; i++ {
		role := conversation.RoleUser
		if i%2 == 1 {
			role = conversation.RoleAssistant
		}
		_, err := client.Conversation.Create().
			SetID(uuid.New().String()).
			SetSessionID(sessionID).
			SetUserID(userID).
			SetRole(role).
			SetPrompt(fmt.Sprintf("message %d about the migration", i)).
			SetCreatedAt(lastActivity.Add(time.Duration(i-messageCount) * time.Minute)).
			Save(ctx)
		require.NoError(t, err)
	}
}

func TestRunOnce_SummarizesIdleSession(t *testing.T) {
	stub := llm.NewStubClient(
		"Brady migrated the billing service to Postgres.",
		"Brady has been migrating services to Postgres all week.",
	)
	loop, client, sink := newTestLoop(t, stub)
	ctx := context.Background()

	seedSession(t, client, "sess-1", "brady", time.Hour, 6)

	n, err := loop.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	sess, err := client.Session.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, sess.Summary)
	assert.Equal(t, "Brady migrated the billing service to Postgres.", *sess.Summary)
	require.NotNil(t, sess.SummaryUpdatedAt)

	// The rolling summary absorbed the session.
	rolling, err := client.SummaryContext.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Brady has been migrating services to Postgres all week.", rolling.Summary)
	assert.Equal(t, []string{"sess-1"}, rolling.Sessions)
	assert.Equal(t, "brady", rolling.UserID)

	// Core memory carries the recent-summary line.
	memory := services.NewMemoryService(client)
	block, err := memory.GetBlock(ctx, "brady", "", "task")
	require.NoError(t, err)
	assert.Contains(t, block.Content, "Recent summary: Brady has been migrating services to Postgres all week.")

	assert.Equal(t, []string{"summary:written", "memory:core_updated"}, sink.kinds)
}

func TestRunOnce_FreshSummaryIsNotRedone(t *testing.T) {
	stub := llm.NewStubClient("first summary", "first rolling")
	loop, client, _ := newTestLoop(t, stub)
	ctx := context.Background()

	seedSession(t, client, "sess-1", "brady", time.Hour, 6)

	n, err := loop.RunOnce(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	// Nothing new happened since the summary was written.
	n, err = loop.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Len(t, stub.Requests(), 2)
}

func TestRunOnce_SkipsShortAndBusySessions(t *testing.T) {
	stub := llm.NewStubClient()
	loop, client, _ := newTestLoop(t, stub)
	ctx := context.Background()

	// Too few messages.
	seedSession(t, client, "sess-short", "brady", time.Hour, 2)
	// Still active: idle for less than the threshold.
	seedSession(t, client, "sess-busy", "brady", time.Minute, 6)
	// Stale: last activity outside the window.
	seedSession(t, client, "sess-old", "brady", 48*time.Hour, 6)

	n, err := loop.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Empty(t, stub.Requests())
}

func TestRunOnce_RollingSummaryAccumulatesSessions(t *testing.T) {
	stub := llm.NewStubClient("summary one", "rolling one", "summary two", "rolling two")
	loop, client, _ := newTestLoop(t, stub)
	ctx := context.Background()

	seedSession(t, client, "sess-1", "brady", time.Hour, 6)
	_, err := loop.RunOnce(ctx)
	require.NoError(t, err)

	seedSession(t, client, "sess-2", "brady", time.Hour, 6)
	_, err = loop.RunOnce(ctx)
	require.NoError(t, err)

	latest, err := client.SummaryContext.Query().
		Order(ent.Desc("created_at")).
		First(ctx)
	require.NoError(t, err)
	assert.Equal(t, "rolling two", latest.Summary)
	assert.ElementsMatch(t, []string{"sess-1", "sess-2"}, latest.Sessions)

	// The merge prompt carried the previous rolling summary forward.
	requests := stub.Requests()
	require.Len(t, requests, 4)
	assert.Contains(t, requests[3].Prompt, "rolling one")
	assert.Contains(t, requests[3].Prompt, "summary two")
	assert.NotContains(t, requests[3].Prompt, "summary one")
}

func TestRunOnce_TranscriptIsTailTruncated(t *testing.T) {
	stub := llm.NewStubClient("short summary", "rolling")
	loop, client, _ := newTestLoop(t, stub)
	ctx := context.Background()

	seedSession(t, client, "sess-1", "brady", time.Hour, 6)
	long := strings.Repeat("x", 5000)
	_, err := client.Conversation.Create().
		SetID(uuid.New().String()).
		SetSessionID("sess-1").
		SetUserID("brady").
		SetRole(conversation.RoleUser).
		SetPrompt(long).
		SetCreatedAt(time.Now().Add(-45 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	_, err = loop.RunOnce(ctx)
	require.NoError(t, err)

	requests := stub.Requests()
	require.NotEmpty(t, requests)
	assert.Len(t, requests[0].Prompt, loop.cfg.MaxInputChars)
}

func TestRunOnce_ReentryGuard(t *testing.T) {
	stub := llm.NewStubClient()
	loop, client, _ := newTestLoop(t, stub)

	seedSession(t, client, "sess-1", "brady", time.Hour, 6)

	loop.running.Store(true)
	n, err := loop.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Empty(t, stub.Requests())
}

func TestTruncateHead(t *testing.T) {
	assert.Equal(t, "abc", truncateHead("abc", 10))
	assert.Equal(t, "cde", truncateHead("abcde", 3))
	assert.Equal(t, "abc", truncateHead("abc", 0))
}
