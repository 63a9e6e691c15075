package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-ai/kestrel/ent/projecttask"
	testdb "github.com/kestrel-ai/kestrel/test/database"
)

func TestTaskService(t *testing.T) {
	client := testdb.NewTestClient(t)
	taskService := NewTaskService(client.Client)
	ctx := context.Background()

	t.Run("list orders by priority descending", func(t *testing.T) {
		for _, tc := range []struct {
			title    string
			priority int
		}{
			{"low", 10},
			{"high", 90},
			{"mid", 50},
		} {
			_, err := taskService.Create(ctx, CreateProjectTaskInput{
				Title:    tc.title,
				TaskType: "curiosity",
				UserID:   "order",
				Priority: tc.priority,
			})
			require.NoError(t, err)
		}

		tasks, err := taskService.List(ctx, ProjectTaskFilters{UserID: "order"})
		require.NoError(t, err)
		require.Len(t, tasks, 3)
		assert.Equal(t, "high", tasks[0].Title)
		assert.Equal(t, "mid", tasks[1].Title)
		assert.Equal(t, "low", tasks[2].Title)
	})

	t.Run("status transitions stamp times and attempts", func(t *testing.T) {
		created, err := taskService.Create(ctx, CreateProjectTaskInput{
			Title:    "investigate rust macros",
			TaskType: "curiosity",
			UserID:   "brady",
			Priority: 40,
		})
		require.NoError(t, err)
		assert.Equal(t, projecttask.StatusBacklog, created.Status)

		inProgress, err := taskService.SetStatus(ctx, created.ID, "in_progress", "", "")
		require.NoError(t, err)
		assert.NotNil(t, inProgress.StartedAt)
		assert.Equal(t, 1, inProgress.AttemptCount)

		done, err := taskService.SetStatus(ctx, created.ID, "done", "learned the basics", "wrote notes")
		require.NoError(t, err)
		assert.NotNil(t, done.CompletedAt)
		assert.Equal(t, "learned the basics", done.Outcome)
	})

	t.Run("pending counts split by type", func(t *testing.T) {
		for _, taskType := range []string{"curiosity", "curiosity", "exploration"} {
			_, err := taskService.Create(ctx, CreateProjectTaskInput{
				Title:    "t-" + taskType,
				TaskType: taskType,
				UserID:   "counts",
				Priority: 20,
			})
			require.NoError(t, err)
		}

		total, perType, err := taskService.PendingCounts(ctx, "counts")
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Equal(t, 2, perType["curiosity"])
		assert.Equal(t, 1, perType["exploration"])
	})

	t.Run("validates priority range", func(t *testing.T) {
		_, err := taskService.Create(ctx, CreateProjectTaskInput{
			Title:    "x",
			TaskType: "curiosity",
			Priority: 101,
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}
