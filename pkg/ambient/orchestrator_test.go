package ambient

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-ai/kestrel/ent"
	"github.com/kestrel-ai/kestrel/ent/ambientnotification"
	"github.com/kestrel-ai/kestrel/ent/missionexecution"
	"github.com/kestrel-ai/kestrel/ent/projecttask"
	"github.com/kestrel-ai/kestrel/ent/queuetask"
	"github.com/kestrel-ai/kestrel/pkg/config"
	"github.com/kestrel-ai/kestrel/pkg/events"
	"github.com/kestrel-ai/kestrel/pkg/llm"
	"github.com/kestrel-ai/kestrel/pkg/models"
	"github.com/kestrel-ai/kestrel/pkg/queue"
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

func (r *recordSink) has(kind string) bool {
	for _, k := range r.kinds {
		if k == kind {
			return true
		}
	}
	return false
}

type ambientHarness struct {
	orchestrator *Orchestrator
	client       *ent.Client
	llm          *llm.StubClient
	sink         *recordSink
	presence     *services.PresenceService
}

func newAmbientHarness(t *testing.T, responses ...string) *ambientHarness {
	t.Helper()
	client := testdb.NewTestClient(t)
	sink := &recordSink{}
	stub := llm.NewStubClient(responses...)
	presence := services.NewPresenceService(client.Client)

	orchestrator := NewOrchestrator(Deps{
		Client:        client.Client,
		State:         services.NewStateService(client.Client),
		Sessions:      services.NewSessionService(client.Client),
		Presence:      presence,
		Notifications: services.NewNotificationService(client.Client),
		Missions:      services.NewMissionService(client.Client),
		Tasks:         services.NewTaskService(client.Client),
		Queue:         queue.NewService(client.Client, config.DefaultQueueConfig(), nil),
		LLM:           stub,
		Config:        config.DefaultAmbientConfig(),
		LLMConfig:     config.DefaultLLMConfig(),
		Defaults:      &config.Defaults{UserID: "brady", NotificationMethod: "daemon"},
		Sink:          sink,
	})
	return &ambientHarness{
		orchestrator: orchestrator,
		client:       client.Client,
		llm:          stub,
		sink:         sink,
		presence:     presence,
	}
}

// makeIdle backdates the user's last interaction past the idle threshold.
func (h *ambientHarness) makeIdle(t *testing.T, userID string, ago time.Duration) {
	t.Helper()
	ctx := context.Background()
	_, err := services.NewStateService(h.client).Get(ctx, userID)
	require.NoError(t, err)
	err = h.client.DaemonState.UpdateOneID(userID).
		SetLastInteractionAt(time.Now().Add(-ago)).
		Exec(ctx)
	require.NoError(t, err)
}

func (h *ambientHarness) heartbeatDM(t *testing.T, userID string) {
	t.Helper()
	err := h.presence.Heartbeat(context.Background(), models.HeartbeatRequest{
		Medium: "discord",
		UserID: userID,
		Channels: []map[string]interface{}{
			{"kind": "dm", "id": "dm-1"},
		},
	})
	require.NoError(t, err)
}

func seedCuriosityTask(t *testing.T, client *ent.Client, userID, title string, priority int) *ent.ProjectTask {
	t.Helper()
	task, err := client.ProjectTask.Create().
		SetID(uuid.New().String()).
		SetTitle(title).
		SetTaskType(taskTypeCuriosity).
		SetStatus(projecttask.StatusReady).
		SetPriority(priority).
		SetUserID(userID).
		Save(context.Background())
	require.NoError(t, err)
	return task
}

func TestTick_ExplorationKickoff(t *testing.T) {
	h := newAmbientHarness(t)
	ctx := context.Background()

	h.makeIdle(t, "brady", time.Hour)
	task := seedCuriosityTask(t, h.client, "brady", "dragonfly cache internals", 64)

	require.NoError(t, h.orchestrator.Tick(ctx))

	queued, err := h.client.QueueTask.Query().
		Where(queuetask.TaskTypeEQ(taskTypeExploration)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dragonfly cache internals", queued.Content)
	assert.Equal(t, 36, queued.Priority)

	claimed, err := h.client.ProjectTask.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, projecttask.StatusInProgress, claimed.Status)

	assert.True(t, h.sink.has(events.KindExplorationStarted))
	// One action per tick: the proactive path never ran.
	assert.Empty(t, h.llm.Requests())
}

func TestTick_ExplorationPrefersHighestPriority(t *testing.T) {
	h := newAmbientHarness(t)
	ctx := context.Background()

	h.makeIdle(t, "brady", time.Hour)
	seedCuriosityTask(t, h.client, "brady", "minor topic", 20)
	urgent := seedCuriosityTask(t, h.client, "brady", "major topic", 90)

	require.NoError(t, h.orchestrator.Tick(ctx))

	claimed, err := h.client.ProjectTask.Get(ctx, urgent.ID)
	require.NoError(t, err)
	assert.Equal(t, projecttask.StatusInProgress, claimed.Status)
}

func TestTick_ExplorationDailyCap(t *testing.T) {
	h := newAmbientHarness(t)
	h.orchestrator.deps.Config.MaxExplorationsPerDay = 1
	ctx := context.Background()

	h.makeIdle(t, "brady", time.Hour)
	task := seedCuriosityTask(t, h.client, "brady", "capped topic", 50)

	// Today's budget is already spent.
	_, err := h.client.QueueTask.Create().
		SetID(uuid.New().String()).
		SetTaskType(taskTypeExploration).
		SetModelName("claude-haiku-4-5").
		SetStatus(queuetask.StatusCompleted).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, h.orchestrator.Tick(ctx))

	count, err := h.client.QueueTask.Query().
		Where(queuetask.TaskTypeEQ(taskTypeExploration)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	kept, err := h.client.ProjectTask.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, projecttask.StatusReady, kept.Status)
}

func TestTick_EngagedStandsDown(t *testing.T) {
	h := newAmbientHarness(t)
	ctx := context.Background()

	_, err := h.client.Session.Create().
		SetID("sess-live").
		SetUserID("brady").
		SetLastActivity(time.Now()).
		Save(ctx)
	require.NoError(t, err)
	seedCuriosityTask(t, h.client, "brady", "some topic", 50)

	require.NoError(t, h.orchestrator.Tick(ctx))

	count, err := h.client.QueueTask.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Empty(t, h.llm.Requests())
}

func TestTick_SuppressedSkipsProactive(t *testing.T) {
	h := newAmbientHarness(t)
	ctx := context.Background()

	h.makeIdle(t, "brady", time.Hour)
	err := h.client.DaemonState.UpdateOneID("brady").
		SetSuppressedUntil(time.Now().Add(time.Hour)).
		Exec(ctx)
	require.NoError(t, err)
	h.heartbeatDM(t, "brady")

	require.NoError(t, h.orchestrator.Tick(ctx))
	assert.Empty(t, h.llm.Requests())
}

func TestTick_ProactiveNotification(t *testing.T) {
	h := newAmbientHarness(t,
		`{"send": true, "message": "your dragonfly exploration surfaced two new facts", "priority": "ambient", "confidence": 0.9, "reasoning": "fresh findings"}`)
	ctx := context.Background()

	h.makeIdle(t, "brady", time.Hour)
	h.heartbeatDM(t, "brady")

	require.NoError(t, h.orchestrator.Tick(ctx))

	notification, err := h.client.AmbientNotification.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, ambientnotification.StatusPending, notification.Status)
	assert.Equal(t, "your dragonfly exploration surfaced two new facts", notification.Message)
	assert.Equal(t, "discord", notification.TargetMedium)
	assert.Equal(t, "dm-1", notification.TargetLocation)
	assert.Equal(t, ambientnotification.PriorityAmbient, notification.Priority)

	state, err := h.client.DaemonState.Get(ctx, "brady")
	require.NoError(t, err)
	assert.NotNil(t, state.LastProactiveContactAt)
	assert.Equal(t, 1, state.AutonomousWorkCount)

	execution, err := h.client.MissionExecution.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, missionexecution.StatusCompleted, execution.Status)

	assert.True(t, h.sink.has(events.KindAmbientDecision))
	assert.True(t, h.sink.has(events.KindNotificationCreated))
}

func TestTick_LowConfidenceIsDiscarded(t *testing.T) {
	h := newAmbientHarness(t,
		`{"send": true, "message": "meh", "confidence": 0.2}`)
	ctx := context.Background()

	h.makeIdle(t, "brady", time.Hour)
	h.heartbeatDM(t, "brady")

	require.NoError(t, h.orchestrator.Tick(ctx))

	count, err := h.client.AmbientNotification.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	execution, err := h.client.MissionExecution.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, missionexecution.StatusCompleted, execution.Status)
}

func TestTick_MissionValidationFailure(t *testing.T) {
	h := newAmbientHarness(t, `this is not a decision`)
	ctx := context.Background()

	h.makeIdle(t, "brady", time.Hour)
	h.heartbeatDM(t, "brady")

	require.NoError(t, h.orchestrator.Tick(ctx))

	count, err := h.client.AmbientNotification.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	execution, err := h.client.MissionExecution.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, missionexecution.StatusFailed, execution.Status)
}

func TestTick_CooldownBlocksProactive(t *testing.T) {
	h := newAmbientHarness(t)
	ctx := context.Background()

	h.makeIdle(t, "brady", time.Hour)
	h.heartbeatDM(t, "brady")
	err := h.client.DaemonState.UpdateOneID("brady").
		SetLastProactiveContactAt(time.Now().Add(-10 * time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, h.orchestrator.Tick(ctx))
	assert.Empty(t, h.llm.Requests())
}

func TestTick_NobodyListeningStandsDown(t *testing.T) {
	h := newAmbientHarness(t)
	ctx := context.Background()

	// Idle, but no heartbeat and no desktop fallback.
	h.makeIdle(t, "brady", time.Hour)

	require.NoError(t, h.orchestrator.Tick(ctx))
	assert.Empty(t, h.llm.Requests())
}

func TestTick_UnchangedContextSkips(t *testing.T) {
	h := newAmbientHarness(t, `{"send": false, "confidence": 0.9}`)
	ctx := context.Background()

	h.makeIdle(t, "brady", time.Hour)
	h.heartbeatDM(t, "brady")

	require.NoError(t, h.orchestrator.Tick(ctx))
	require.Len(t, h.llm.Requests(), 1)

	// Same fingerprint, nothing overdue, nothing unacknowledged: the
	// second tick never reaches the model.
	require.NoError(t, h.orchestrator.Tick(ctx))
	assert.Len(t, h.llm.Requests(), 1)
}

func TestTick_UnacknowledgedNotificationDefeatsSkip(t *testing.T) {
	h := newAmbientHarness(t,
		`{"send": false, "confidence": 0.9}`,
		`{"send": false, "confidence": 0.9}`)
	ctx := context.Background()

	h.makeIdle(t, "brady", time.Hour)
	h.heartbeatDM(t, "brady")

	notifications := services.NewNotificationService(h.client)
	_, err := notifications.Create(ctx, services.CreateNotificationInput{
		UserID:  "brady",
		Message: "earlier nudge",
	})
	require.NoError(t, err)

	require.NoError(t, h.orchestrator.Tick(ctx))
	require.NoError(t, h.orchestrator.Tick(ctx))
	assert.Len(t, h.llm.Requests(), 2)
}

func TestJittered(t *testing.T) {
	base := 30 * time.Minute
	for i := 0; i < 100; i++ {
		d := jittered(base)
		assert.GreaterOrEqual(t, d, time.Duration(float64(base)*0.69))
		assert.LessOrEqual(t, d, time.Duration(float64(base)*1.31))
	}
}
