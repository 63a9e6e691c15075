package ambient

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-ai/kestrel/ent"
	"github.com/kestrel-ai/kestrel/ent/explorationfinding"
	"github.com/kestrel-ai/kestrel/ent/projecttask"
	"github.com/kestrel-ai/kestrel/pkg/config"
	"github.com/kestrel-ai/kestrel/pkg/graph"
	"github.com/kestrel-ai/kestrel/pkg/integration"
	"github.com/kestrel-ai/kestrel/pkg/llm"
	"github.com/kestrel-ai/kestrel/pkg/services"
	testdb "github.com/kestrel-ai/kestrel/test/database"
)

func newExplorer(t *testing.T, stub *graph.StubClient, llmStub *llm.StubClient) (*Explorer, *ent.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	checker := integration.NewChecker(client.Client, stub, services.NewReviewService(client.Client), nil)
	explorer := NewExplorer(
		client.Client,
		stub,
		llmStub,
		checker,
		services.NewFindingService(client.Client),
		services.NewTaskService(client.Client),
		config.DefaultLLMConfig(),
	)
	return explorer, client.Client
}

func seedClaimedTask(t *testing.T, client *ent.Client, title string) *ent.ProjectTask {
	t.Helper()
	task, err := client.ProjectTask.Create().
		SetID(uuid.New().String()).
		SetTitle(title).
		SetTaskType(taskTypeCuriosity).
		SetStatus(projecttask.StatusInProgress).
		SetPriority(60).
		SetUserID("brady").
		Save(context.Background())
	require.NoError(t, err)
	return task
}

func explorationTask(projectTaskID, topic string) *ent.QueueTask {
	return &ent.QueueTask{
		ID:       uuid.New().String(),
		TaskType: taskTypeExploration,
		Content:  topic,
		Metadata: map[string]interface{}{
			"project_task_id": projectTaskID,
			"user_id":         "brady",
			"topic":           topic,
		},
	}
}

func TestExplorer_Execute(t *testing.T) {
	stub := graph.NewStubClient()
	stub.SeedFact(graph.FactNode{UUID: "f-1", Fact: "Dragonfly speaks the Redis protocol."})
	llmStub := llm.NewStubClient(`{
		"summary": "Dragonfly is a drop-in Redis replacement with a different threading model.",
		"findings": [
			{"fact": "Dragonfly uses a shared-nothing thread-per-core architecture.", "entity_names": ["Dragonfly"], "confidence": 0.85, "worth_sharing": true, "share_message": "Dragonfly scales per core."},
			{"fact": "", "confidence": 0.9},
			{"fact": "Dragonfly snapshots are point-in-time consistent.", "confidence": 0.7}
		]
	}`)
	explorer, client := newExplorer(t, stub, llmStub)
	ctx := context.Background()

	project := seedClaimedTask(t, client, "Dragonfly internals")
	err := explorer.Execute(ctx, explorationTask(project.ID, "Dragonfly internals"))
	require.NoError(t, err)

	// Empty-fact findings are dropped; the rest are recorded.
	findings, err := client.ExplorationFinding.Query().
		Where(explorationfinding.TaskIDEQ(project.ID)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, findings, 2)

	// Background fact scores below the contradiction band, so both
	// findings land in the graph.
	added := stub.AddedFacts()
	require.Len(t, added, 2)
	assert.Equal(t, "brady", added[0].GroupID)

	closed, err := client.ProjectTask.Get(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, projecttask.StatusDone, closed.Status)
	assert.Contains(t, closed.Outcome, "2 facts added")

	// The model saw the known facts as background.
	requests := llmStub.Requests()
	require.Len(t, requests, 1)
	assert.Contains(t, requests[0].Prompt, "Dragonfly speaks the Redis protocol.")
}

func TestExplorer_ContradictionGoesToReview(t *testing.T) {
	stub := graph.NewStubClient()
	stub.SeedFact(graph.FactNode{UUID: "f-1", Fact: "Dragonfly is single-threaded.", Score: 0.82})
	llmStub := llm.NewStubClient(`{
		"summary": "conflicting claim",
		"findings": [
			{"fact": "Dragonfly is heavily multi-threaded.", "confidence": 0.8}
		]
	}`)
	explorer, client := newExplorer(t, stub, llmStub)
	ctx := context.Background()

	project := seedClaimedTask(t, client, "Dragonfly threading")
	require.NoError(t, explorer.Execute(ctx, explorationTask(project.ID, "Dragonfly threading")))

	reviews, err := client.ContradictionReview.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, reviews)
	assert.Empty(t, stub.AddedFacts())

	closed, err := client.ProjectTask.Get(ctx, project.ID)
	require.NoError(t, err)
	assert.Contains(t, closed.Outcome, "1 queued for review")
}

func TestExplorer_LLMFailureLeavesTaskClaimed(t *testing.T) {
	stub := graph.NewStubClient()
	llmStub := llm.NewStubClient() // empty queue: every call errors
	explorer, client := newExplorer(t, stub, llmStub)
	ctx := context.Background()

	project := seedClaimedTask(t, client, "doomed topic")
	err := explorer.Execute(ctx, explorationTask(project.ID, "doomed topic"))
	require.Error(t, err)

	// The queue's retry path owns recovery; the claim stays visible.
	kept, err := client.ProjectTask.Get(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, projecttask.StatusInProgress, kept.Status)
}

func TestExplorer_MissingTopic(t *testing.T) {
	stub := graph.NewStubClient()
	explorer, _ := newExplorer(t, stub, llm.NewStubClient())

	err := explorer.Execute(context.Background(), &ent.QueueTask{ID: "qt-1", TaskType: taskTypeExploration})
	require.Error(t, err)
}
