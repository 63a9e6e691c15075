package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-ai/kestrel/ent"
	"github.com/kestrel-ai/kestrel/ent/conversationblock"
	"github.com/kestrel-ai/kestrel/ent/projecttask"
	"github.com/kestrel-ai/kestrel/ent/queuetask"
	"github.com/kestrel-ai/kestrel/pkg/config"
	"github.com/kestrel-ai/kestrel/pkg/curiosity"
	"github.com/kestrel-ai/kestrel/pkg/graph"
	"github.com/kestrel-ai/kestrel/pkg/models"
	"github.com/kestrel-ai/kestrel/pkg/queue"
	"github.com/kestrel-ai/kestrel/pkg/services"
	testdb "github.com/kestrel-ai/kestrel/test/database"
)

type ingestHarness struct {
	ingestor *Ingestor
	client   *ent.Client
	graph    *graph.StubClient
}

func newIngestHarness(t *testing.T) *ingestHarness {
	t.Helper()
	client := testdb.NewTestClient(t)
	stub := graph.NewStubClient()
	defaults := config.DefaultDefaults()

	queueService := queue.NewService(client.Client, config.DefaultQueueConfig(), nil)
	pipeline := curiosity.NewPipeline(client.Client, stub, config.DefaultCuriosityConfig(), nil)
	ingestor := NewIngestor(
		client.Client,
		services.NewSessionService(client.Client),
		services.NewStateService(client.Client),
		queueService,
		pipeline,
		stub,
		nil,
		defaults,
	)
	return &ingestHarness{ingestor: ingestor, client: client.Client, graph: stub}
}

func TestCapture(t *testing.T) {
	ctx := context.Background()

	t.Run("persists session, conversation, and block", func(t *testing.T) {
		h := newIngestHarness(t)

		convID, err := h.ingestor.Capture(ctx, models.CaptureRequest{
			SessionID: "sess-1",
			Prompt:    "no, it's actually postgres",
			Role:      "user",
			Medium:    "cli",
			UserID:    "brady",
		})
		require.NoError(t, err)
		require.NotEmpty(t, convID)
		h.ingestor.Close()

		conv, err := h.client.Conversation.Get(ctx, convID)
		require.NoError(t, err)
		assert.Equal(t, "sess-1", conv.SessionID)
		assert.Equal(t, "no, it's actually postgres", conv.Prompt)

		blocks, err := h.client.ConversationBlock.Query().
			Where(conversationblock.ConversationIDEQ(convID)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, blocks, 1)
		assert.Equal(t, 0, blocks[0].Ordinal)
		assert.Equal(t, conversationblock.KindText, blocks[0].Kind)

		// Session was created on the fly.
		sess, err := h.client.Session.Get(ctx, "sess-1")
		require.NoError(t, err)
		assert.Equal(t, "brady", sess.UserID)
	})

	t.Run("empty prompt writes no block", func(t *testing.T) {
		h := newIngestHarness(t)

		convID, err := h.ingestor.Capture(ctx, models.CaptureRequest{
			SessionID: "sess-empty",
			UserID:    "brady",
		})
		require.NoError(t, err)
		h.ingestor.Close()

		count, err := h.client.ConversationBlock.Query().
			Where(conversationblock.ConversationIDEQ(convID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("fan-out publishes episode and enqueues stimulus", func(t *testing.T) {
		h := newIngestHarness(t)

		_, err := h.ingestor.Capture(ctx, models.CaptureRequest{
			SessionID: "sess-2",
			Prompt:    "how does raft handle split votes?",
			Role:      "user",
			UserID:    "brady",
		})
		require.NoError(t, err)
		h.ingestor.Close()

		episodes := h.graph.Episodes()
		require.Len(t, episodes, 1)
		assert.Equal(t, "how does raft handle split votes?", episodes[0].EpisodeBody)
		assert.Equal(t, "brady", episodes[0].GroupID)

		stimuli, err := h.client.QueueTask.Query().
			Where(queuetask.TaskTypeEQ("emotion_stimulus")).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, stimuli)
	})

	t.Run("curiosity fires on a correction turn", func(t *testing.T) {
		h := newIngestHarness(t)

		_, err := h.ingestor.Capture(ctx, models.CaptureRequest{
			SessionID: "sess-3",
			Prompt:    "You are on MySQL.",
			Role:      "assistant",
			UserID:    "brady",
		})
		require.NoError(t, err)
		h.ingestor.Close()

		_, err = h.ingestor.Capture(ctx, models.CaptureRequest{
			SessionID: "sess-3",
			Prompt:    "no, it's actually postgres",
			Role:      "user",
			UserID:    "brady",
		})
		require.NoError(t, err)
		h.ingestor.Close()

		tasks, err := h.client.ProjectTask.Query().
			Where(projecttask.TaskTypeEQ("curiosity")).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "no, it's actually postgres", tasks[0].Title)
	})

	t.Run("commands suppress curiosity but still persist", func(t *testing.T) {
		h := newIngestHarness(t)

		_, err := h.ingestor.Capture(ctx, models.CaptureRequest{
			SessionID: "sess-4",
			Prompt:    "You are on MySQL.",
			Role:      "assistant",
			UserID:    "brady",
		})
		require.NoError(t, err)
		h.ingestor.Close()

		convID, err := h.ingestor.Capture(ctx, models.CaptureRequest{
			SessionID: "sess-4",
			Prompt:    "/compact no, it's actually postgres",
			Role:      "user",
			UserID:    "brady",
		})
		require.NoError(t, err)
		h.ingestor.Close()

		_, err = h.client.Conversation.Get(ctx, convID)
		require.NoError(t, err)

		count, err := h.client.ProjectTask.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("records the interaction on daemon state", func(t *testing.T) {
		h := newIngestHarness(t)

		_, err := h.ingestor.Capture(ctx, models.CaptureRequest{
			SessionID: "sess-5",
			Prompt:    "hello",
			Role:      "user",
			UserID:    "brady",
		})
		require.NoError(t, err)
		h.ingestor.Close()

		state, err := h.client.DaemonState.Get(ctx, "brady")
		require.NoError(t, err)
		assert.NotNil(t, state.LastInteractionAt)
	})

	t.Run("rejects unknown role and missing session", func(t *testing.T) {
		h := newIngestHarness(t)

		_, err := h.ingestor.Capture(ctx, models.CaptureRequest{
			SessionID: "sess-6",
			Prompt:    "x",
			Role:      "narrator",
		})
		require.Error(t, err)
		assert.True(t, services.IsValidationError(err))

		_, err = h.ingestor.Capture(ctx, models.CaptureRequest{Prompt: "x"})
		require.Error(t, err)
		assert.True(t, services.IsValidationError(err))
	})
}

func TestAppendBlocks(t *testing.T) {
	ctx := context.Background()
	h := newIngestHarness(t)

	convID, err := h.ingestor.Capture(ctx, models.CaptureRequest{
		SessionID: "sess-blocks",
		Prompt:    "run the linter",
		Role:      "user",
		UserID:    "brady",
	})
	require.NoError(t, err)
	h.ingestor.Close()

	created, err := h.ingestor.AppendBlocks(ctx, convID, []models.BlockInput{
		{Kind: "tool_use", ToolName: "bash", ToolUseID: "tu-1", ToolInput: map[string]interface{}{"command": "golangci-lint run"}},
		{Kind: "tool_result", ToolUseID: "tu-1", ToolResult: map[string]interface{}{"exit_code": 0}},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)

	// Ordinals continue densely after the prompt block.
	assert.Equal(t, 1, created[0].Ordinal)
	assert.Equal(t, 2, created[1].Ordinal)

	more, err := h.ingestor.AppendBlocks(ctx, convID, []models.BlockInput{
		{Kind: "text", Text: "lint is clean"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, more[0].Ordinal)

	t.Run("rejects unknown kind", func(t *testing.T) {
		_, err := h.ingestor.AppendBlocks(ctx, convID, []models.BlockInput{{Kind: "image"}})
		require.Error(t, err)
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("missing conversation", func(t *testing.T) {
		_, err := h.ingestor.AppendBlocks(ctx, "nope", []models.BlockInput{{Kind: "text", Text: "x"}})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestDetectSessionType(t *testing.T) {
	codeDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(codeDir, "go.mod"), []byte("module x\n"), 0o644))

	gitDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(gitDir, ".git"), 0o755))

	plainDir := t.TempDir()

	tests := []struct {
		name       string
		medium     string
		workingDir string
		want       string
	}{
		{"discord is conversational even in a repo", "discord", codeDir, SessionTypeConversational},
		{"telegram is conversational", "telegram", "", SessionTypeConversational},
		{"empty working dir", "cli", "", SessionTypeConversational},
		{"manifest marks code", "cli", codeDir, SessionTypeCode},
		{"git dir marks code", "cli", gitDir, SessionTypeCode},
		{"plain dir is conversational", "cli", plainDir, SessionTypeConversational},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectSessionType(tc.medium, tc.workingDir))
		})
	}
}
