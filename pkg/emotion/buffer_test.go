package emotion

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-ai/kestrel/ent"
)

func stimulusTask(content string) *ent.QueueTask {
	return &ent.QueueTask{
		ID:       "task-1",
		TaskType: "emotion_stimulus",
		Content:  content,
		Metadata: map[string]interface{}{
			"conversation_id": "conv-1",
			"user_id":         "brady",
		},
	}
}

func TestExecute_RecordsScoredStimulus(t *testing.T) {
	b := NewBuffer()

	require.NoError(t, b.Execute(context.Background(), stimulusTask("this is AMAZING, I love it!!!")))

	summary := b.Summary()
	assert.Equal(t, 1, summary.SampleCount)
	assert.Greater(t, summary.Level, 0.5)
	require.NotNil(t, summary.LastAt)
}

func TestSummary_CalmTextScoresLow(t *testing.T) {
	b := NewBuffer()

	require.NoError(t, b.Execute(context.Background(), stimulusTask("the meeting moved to tuesday")))

	summary := b.Summary()
	assert.Equal(t, 1, summary.SampleCount)
	assert.Less(t, summary.Level, 0.3)
}

func TestSummary_IgnoresSamplesOutsideWindow(t *testing.T) {
	b := NewBuffer()
	now := time.Now()
	b.nowFunc = func() time.Time { return now.Add(-5 * time.Hour) }
	require.NoError(t, b.Execute(context.Background(), stimulusTask("I HATE this bug!!!")))

	b.nowFunc = func() time.Time { return now }
	summary := b.Summary()
	assert.Equal(t, 0, summary.SampleCount)
	assert.Zero(t, summary.Level)
}

func TestSummary_RecentSamplesWeighMore(t *testing.T) {
	b := NewBuffer()
	now := time.Now()

	b.nowFunc = func() time.Time { return now.Add(-3 * time.Hour) }
	require.NoError(t, b.Execute(context.Background(), stimulusTask("FURIOUS about the outage!!! terrible awful")))

	b.nowFunc = func() time.Time { return now }
	require.NoError(t, b.Execute(context.Background(), stimulusTask("all quiet now")))

	summary := b.Summary()
	assert.Equal(t, 2, summary.SampleCount)
	// The calm, recent sample dominates the decayed angry one.
	assert.Less(t, summary.Level, 0.4)
	assert.Greater(t, summary.Peak, 0.6)
}

func TestBuffer_IsBounded(t *testing.T) {
	b := NewBuffer()
	for i := 0; i < maxStimuli+50; i++ {
		require.NoError(t, b.Execute(context.Background(), stimulusTask("fine")))
	}
	assert.Len(t, b.recent, maxStimuli)
}
