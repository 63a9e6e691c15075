package curiosity

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-ai/kestrel/ent/projecttask"
	"github.com/kestrel-ai/kestrel/pkg/config"
	"github.com/kestrel-ai/kestrel/pkg/events"
	"github.com/kestrel-ai/kestrel/pkg/graph"
	"github.com/kestrel-ai/kestrel/pkg/models"
	testdb "github.com/kestrel-ai/kestrel/test/database"
)

type recordSink struct {
	kinds []string
}

func (r *recordSink) Emit(_ context.Context, kind string, _ map[string]any) error {
	r.kinds = append(r.kinds, kind)
	return nil
}

func correctionTurn(userID, text string) Turn {
	return Turn{
		UserID:   userID,
		Role:     "user",
		Text:     text,
		PrevRole: "assistant",
		PrevText: "You are on MySQL.",
	}
}

func TestPipeline_UpsertAndRetrigger(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := config.DefaultCuriosityConfig()
	sink := &recordSink{}
	pipeline := NewPipeline(client.Client, nil, cfg, sink)
	ctx := context.Background()

	turn := correctionTurn("brady", "it's actually postgres")

	n, err := pipeline.Process(ctx, turn)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	for i := 0; i < 2; i++ {
		n, err = pipeline.Process(ctx, turn)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	}

	tasks, err := client.ProjectTask.Query().
		Where(projecttask.UserIDEQ("brady"), projecttask.TaskTypeEQ("curiosity")).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	task := tasks[0]
	assert.Equal(t, "it's actually postgres", task.Title)
	assert.Equal(t, projecttask.StatusReady, task.Status)
	assert.NotNil(t, task.LastTriggeredAt)

	triggerCount, ok := models.GetInt(task.Extra, "trigger_count")
	require.True(t, ok)
	assert.Equal(t, 3, triggerCount)

	score, _ := Score(Signal{Type: TypeCorrection, Interest: 0.7}, 0, 0, cfg)
	assert.Equal(t, StoredPriority(score+RepeatBonus(3)), task.Priority)

	assert.Equal(t, []string{
		events.KindCuriosityTriggered,
		events.KindCuriosityTriggered,
		events.KindCuriosityTriggered,
	}, sink.kinds)
}

func TestPipeline_TerminalTasksUntouched(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := config.DefaultCuriosityConfig()
	pipeline := NewPipeline(client.Client, nil, cfg, nil)
	ctx := context.Background()

	done, err := client.ProjectTask.Create().
		SetID(uuid.New().String()).
		SetTitle("it's actually postgres").
		SetTaskType("curiosity").
		SetStatus(projecttask.StatusDone).
		SetUserID("brady").
		SetPriority(40).
		Save(ctx)
	require.NoError(t, err)

	n, err := pipeline.Process(ctx, correctionTurn("brady", "it's actually postgres"))
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	reloaded, err := client.ProjectTask.Get(ctx, done.ID)
	require.NoError(t, err)
	assert.Equal(t, projecttask.StatusDone, reloaded.Status)
	assert.Equal(t, 40, reloaded.Priority)

	count, err := client.ProjectTask.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPipeline_ZeroSignalsNoWrites(t *testing.T) {
	client := testdb.NewTestClient(t)
	pipeline := NewPipeline(client.Client, nil, config.DefaultCuriosityConfig(), nil)

	n, err := pipeline.Process(context.Background(), Turn{
		UserID: "brady",
		Role:   "user",
		Text:   "please rerun the tests",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	count, err := client.ProjectTask.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestPipeline_InBatchTopicDedupe(t *testing.T) {
	client := testdb.NewTestClient(t)
	pipeline := NewPipeline(client.Client, nil, config.DefaultCuriosityConfig(), nil)

	// Correction and emotional peak both fire on the same text, so
	// both signals share a topic; only one upsert happens.
	n, err := pipeline.Process(context.Background(), correctionTurn("brady",
		"no, that's wrong, this is TERRIBLE and I hate it!!"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	count, err := client.ProjectTask.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPipeline_PrunesStaleAndLowPriority(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := config.DefaultCuriosityConfig()
	pipeline := NewPipeline(client.Client, nil, cfg, nil)
	ctx := context.Background()

	stale, err := client.ProjectTask.Create().
		SetID(uuid.New().String()).
		SetTitle("old thread").
		SetTaskType("curiosity").
		SetStatus(projecttask.StatusReady).
		SetUserID("brady").
		SetPriority(60).
		SetExtra(models.JSONMap{"signal_type": TypeEmotionalPeak}).
		SetLastTriggeredAt(time.Now().Add(-time.Duration(cfg.DefaultTTLDays+1) * 24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	weak, err := client.ProjectTask.Create().
		SetID(uuid.New().String()).
		SetTitle("barely interesting").
		SetTaskType("curiosity").
		SetStatus(projecttask.StatusReady).
		SetUserID("brady").
		SetPriority(cfg.MinPriority - 1).
		SetExtra(models.JSONMap{"signal_type": TypeResearchChain}).
		Save(ctx)
	require.NoError(t, err)

	boundary, err := client.ProjectTask.Create().
		SetID(uuid.New().String()).
		SetTitle("exactly at the floor").
		SetTaskType("curiosity").
		SetStatus(projecttask.StatusReady).
		SetUserID("brady").
		SetPriority(cfg.MinPriority).
		SetExtra(models.JSONMap{"signal_type": TypeResearchChain}).
		Save(ctx)
	require.NoError(t, err)

	_, err = pipeline.Process(ctx, correctionTurn("brady", "it's actually postgres"))
	require.NoError(t, err)

	reloaded, err := client.ProjectTask.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, projecttask.StatusCancelled, reloaded.Status)
	assert.Equal(t, "pruned by backlog limits", reloaded.LastError)
	reason, _ := models.GetString(reloaded.Extra, "pruned_reason")
	assert.Equal(t, "expired", reason)

	reloaded, err = client.ProjectTask.Get(ctx, weak.ID)
	require.NoError(t, err)
	assert.Equal(t, projecttask.StatusCancelled, reloaded.Status)
	reason, _ = models.GetString(reloaded.Extra, "pruned_reason")
	assert.Equal(t, "low_priority", reason)

	// A task at exactly the minimum priority is kept.
	reloaded, err = client.ProjectTask.Get(ctx, boundary.ID)
	require.NoError(t, err)
	assert.Equal(t, projecttask.StatusReady, reloaded.Status)
}

func TestPipeline_BacklogPressure(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := config.DefaultCuriosityConfig()
	pipeline := NewPipeline(client.Client, &graph.StubClient{}, cfg, nil)
	ctx := context.Background()

	for i := 0; i < 150; i++ {
		entity := fmt.Sprintf("Zyq%c%c", 'a'+rune(i/26), 'a'+rune(i%26))
		n, err := pipeline.Process(ctx, Turn{
			UserID: "alice",
			Role:   "user",
			Text:   "tell me about " + entity,
		})
		require.NoError(t, err)
		require.Equal(t, 1, n)
	}

	pending, err := client.ProjectTask.Query().
		Where(
			projecttask.UserIDEQ("alice"),
			projecttask.TaskTypeEQ("curiosity"),
			projecttask.StatusIn(projecttask.StatusBacklog, projecttask.StatusReady, projecttask.StatusBlocked),
		).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, cfg.MaxPendingPerUser)

	cancelled, err := client.ProjectTask.Query().
		Where(
			projecttask.UserIDEQ("alice"),
			projecttask.StatusEQ(projecttask.StatusCancelled),
		).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, cancelled, 50)
	for _, task := range cancelled {
		assert.Equal(t, "pruned by backlog limits", task.LastError)
		reason, _ := models.GetString(task.Extra, "pruned_reason")
		assert.Equal(t, "backlog_limits", reason)
	}
}

func TestPipeline_PerTypeCap(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := config.DefaultCuriosityConfig()
	cfg.MaxPendingPerType = 3
	pipeline := NewPipeline(client.Client, nil, cfg, nil)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := pipeline.Process(ctx, correctionTurn("brady",
			fmt.Sprintf("no, the answer is option %c", 'a'+rune(i))))
		require.NoError(t, err)
	}

	pending, err := client.ProjectTask.Query().
		Where(
			projecttask.UserIDEQ("brady"),
			projecttask.StatusIn(projecttask.StatusBacklog, projecttask.StatusReady, projecttask.StatusBlocked),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, pending)
}

func TestPipeline_UnfamiliarEntitySignals(t *testing.T) {
	client := testdb.NewTestClient(t)
	stub := &graph.StubClient{}
	stub.SeedNode(graph.EntityNode{UUID: "n-1", Name: "Redis"})
	pipeline := NewPipeline(client.Client, stub, config.DefaultCuriosityConfig(), nil)
	ctx := context.Background()

	n, err := pipeline.Process(ctx, Turn{
		UserID: "brady",
		Role:   "user",
		Text:   "compare Redis with Dragonfly for caching",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	tasks, err := client.ProjectTask.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Dragonfly", tasks[0].Title)
	signalType, _ := models.GetString(tasks[0].Extra, "signal_type")
	assert.Equal(t, TypeUnfamiliarEntity, signalType)
	assert.Equal(t, projecttask.StatusReady, tasks[0].Status)
}
