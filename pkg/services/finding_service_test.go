package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/kestrel-ai/kestrel/test/database"
)

func TestFindingService(t *testing.T) {
	client := testdb.NewTestClient(t)
	findingService := NewFindingService(client.Client)
	ctx := context.Background()

	t.Run("record clamps confidence and skips empty findings", func(t *testing.T) {
		created, err := findingService.Record(ctx, []FindingInput{
			{TaskID: "task-1", Finding: "Go 1.25 ships a new GC knob.", Confidence: 1.7, WorthSharing: true},
			{TaskID: "task-1", Finding: ""},
			{TaskID: "task-1", Finding: "Low confidence aside.", Confidence: -0.3},
		})
		require.NoError(t, err)
		require.Len(t, created, 2)
		assert.Equal(t, 1.0, created[0].Confidence)
		assert.Equal(t, 0.0, created[1].Confidence)
	})

	t.Run("surface is idempotent per session", func(t *testing.T) {
		created, err := findingService.Record(ctx, []FindingInput{
			{TaskID: "task-2", Finding: "Shareable fact.", WorthSharing: true, ShareMessage: "hey, found this"},
		})
		require.NoError(t, err)
		finding := created[0]

		shareable, err := findingService.Shareable(ctx, "session-a", 5)
		require.NoError(t, err)
		ids := map[string]bool{}
		for _, f := range shareable {
			ids[f.ID] = true
		}
		assert.True(t, ids[finding.ID])

		require.NoError(t, findingService.Surface(ctx, finding.ID, "session-a"))
		require.NoError(t, findingService.Surface(ctx, finding.ID, "session-a"))

		// Gone for this session, still visible elsewhere.
		shareable, err = findingService.Shareable(ctx, "session-a", 5)
		require.NoError(t, err)
		for _, f := range shareable {
			assert.NotEqual(t, finding.ID, f.ID)
		}

		other, err := findingService.Shareable(ctx, "session-b", 5)
		require.NoError(t, err)
		found := false
		for _, f := range other {
			if f.ID == finding.ID {
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("by task returns findings oldest first", func(t *testing.T) {
		_, err := findingService.Record(ctx, []FindingInput{
			{TaskID: "task-3", Finding: "first"},
			{TaskID: "task-3", Finding: "second"},
		})
		require.NoError(t, err)

		findings, err := findingService.ByTask(ctx, "task-3")
		require.NoError(t, err)
		require.Len(t, findings, 2)
		assert.Equal(t, "first", findings[0].Finding)
	})
}
