// Package curiosity mines conversation turns for exploration-worthy
// signals and maintains a bounded, prioritized backlog of curiosity
// tasks.
package curiosity

import (
	"strings"
	"time"
)

// Signal types. unfinished_thread and research_chain are produced by
// the exploration worker, not by turn detectors, but share the same
// priority model.
const (
	TypeUnfamiliarEntity = "unfamiliar_entity"
	TypeCorrection       = "correction"
	TypeEmotionalPeak    = "emotional_peak"
	TypeKnowledgeGap     = "knowledge_gap"
	TypeUnfinishedThread = "unfinished_thread"
	TypeResearchChain    = "research_chain"
)

// Turn is one captured conversation turn plus the minimal context the
// detectors need (the immediately preceding turn, if any).
type Turn struct {
	ConversationID string
	SessionID      string
	UserID         string
	Role           string
	Text           string
	PrevRole       string
	PrevText       string
	Timestamp      time.Time
}

// Signal is a detector hit: something in the turn worth exploring later.
type Signal struct {
	Type         string
	Topic        string
	Interest     float64
	KnowledgeGap float64
	Evidence     string
}

// NormalizedTopic is the dedupe and upsert key for a topic.
func NormalizedTopic(topic string) string {
	return strings.ToLower(strings.Join(strings.Fields(topic), " "))
}

// topicFromText trims a turn down to a short concept phrase usable as a
// task title.
func topicFromText(text string) string {
	topic := strings.Join(strings.Fields(text), " ")
	topic = strings.Trim(topic, ".!? \t")
	if len(topic) > 80 {
		cut := topic[:80]
		if idx := strings.LastIndex(cut, " "); idx > 40 {
			cut = cut[:idx]
		}
		topic = cut
	}
	return topic
}
