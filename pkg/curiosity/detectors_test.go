package curiosity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectCorrection(t *testing.T) {
	t.Run("fires on a correction after an assistant turn", func(t *testing.T) {
		signals := Detect(Turn{
			Role:     "user",
			Text:     "no, it's actually postgres",
			PrevRole: "assistant",
			PrevText: "You are using MySQL.",
		})
		require.Len(t, signals, 1)
		assert.Equal(t, TypeCorrection, signals[0].Type)
		assert.Equal(t, 0.7, signals[0].Interest)
		assert.Equal(t, "no, it's actually postgres", signals[0].Topic)
	})

	t.Run("requires a preceding assistant turn", func(t *testing.T) {
		signals := Detect(Turn{
			Role:     "user",
			Text:     "no, it's actually postgres",
			PrevRole: "user",
		})
		assert.Empty(t, signals)
	})

	t.Run("ignores assistant turns", func(t *testing.T) {
		signals := Detect(Turn{
			Role:     "assistant",
			Text:     "Actually, let me correct myself.",
			PrevRole: "user",
			PrevText: "what db am I on?",
		})
		for _, s := range signals {
			assert.NotEqual(t, TypeCorrection, s.Type)
		}
	})
}

func TestDetectEmotionalPeak(t *testing.T) {
	t.Run("fires on a loaded exclamation", func(t *testing.T) {
		signals := Detect(Turn{
			Role: "user",
			Text: "this is AMAZING, I love it!!",
		})
		require.Len(t, signals, 1)
		assert.Equal(t, TypeEmotionalPeak, signals[0].Type)
		assert.GreaterOrEqual(t, signals[0].Interest, 0.8)
		assert.LessOrEqual(t, signals[0].Interest, 1.0)
	})

	t.Run("stays quiet on neutral text", func(t *testing.T) {
		signals := Detect(Turn{
			Role: "user",
			Text: "please rename the function and rerun the tests",
		})
		assert.Empty(t, signals)
	})

	t.Run("mild sentiment stays under the threshold", func(t *testing.T) {
		signals := Detect(Turn{
			Role: "user",
			Text: "that's a wonderful idea",
		})
		assert.Empty(t, signals)
	})
}

func TestDetectKnowledgeGap(t *testing.T) {
	t.Run("fires on a hedging answer and topics the question", func(t *testing.T) {
		signals := Detect(Turn{
			Role:     "assistant",
			Text:     "I'm not sure how Graphiti handles group partitioning.",
			PrevRole: "user",
			PrevText: "how does graphiti partition groups?",
		})
		require.Len(t, signals, 1)
		assert.Equal(t, TypeKnowledgeGap, signals[0].Type)
		assert.Equal(t, 0.8, signals[0].KnowledgeGap)
		assert.Equal(t, 0.4, signals[0].Interest)
		assert.Equal(t, "how does graphiti partition groups", signals[0].Topic)
	})

	t.Run("requires a preceding user turn", func(t *testing.T) {
		signals := Detect(Turn{
			Role:     "assistant",
			Text:     "I'm not sure about that.",
			PrevRole: "assistant",
		})
		assert.Empty(t, signals)
	})
}

func TestExtractCandidateEntities(t *testing.T) {
	t.Run("finds mid-sentence names", func(t *testing.T) {
		entities := ExtractCandidateEntities("have you tried Graphiti with Neo4j Aura yet?")
		assert.Equal(t, []string{"Graphiti", "Neo4j Aura"}, entities)
	})

	t.Run("skips a lone sentence-start capital", func(t *testing.T) {
		entities := ExtractCandidateEntities("Tomorrow we ship. Tell me about Temporal.")
		assert.Equal(t, []string{"Temporal"}, entities)
	})

	t.Run("dedupes and filters noise", func(t *testing.T) {
		entities := ExtractCandidateEntities("meet on Monday about Redis, then Redis again")
		assert.Equal(t, []string{"Redis"}, entities)
	})
}

func TestNormalizedTopic(t *testing.T) {
	assert.Equal(t, "it's actually postgres", NormalizedTopic("  It's   Actually POSTGRES "))
}

func TestTopicFromText(t *testing.T) {
	long := "this is a rather long sentence that keeps going well past the eighty character mark to test truncation"
	topic := topicFromText(long)
	assert.LessOrEqual(t, len(topic), 80)
	assert.NotContains(t, topic, "truncation")
}
