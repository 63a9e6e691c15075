package curiosity

import (
	"math"
	"time"

	"github.com/kestrel-ai/kestrel/pkg/config"
)

var typeWeights = map[string]float64{
	TypeCorrection:       0.9,
	TypeEmotionalPeak:    0.7,
	TypeKnowledgeGap:     0.6,
	TypeUnfinishedThread: 0.6,
	TypeUnfamiliarEntity: 0.5,
	TypeResearchChain:    0.4,
}

// Factors are the weighted components behind a priority score. They are
// persisted in extra.priority_factors so a re-trigger can merge them.
type Factors struct {
	Interest         float64 `json:"interest"`
	KnowledgeGap     float64 `json:"knowledge_gap"`
	TypeWeight       float64 `json:"type_weight"`
	Recency          float64 `json:"recency"`
	ExplorationBoost float64 `json:"exploration_boost"`
}

// TTLDays is the freshness window for a signal type. Corrections decay
// faster: a stale correction is worse than no correction.
func TTLDays(signalType string, cfg *config.CuriosityConfig) int {
	if signalType == TypeCorrection {
		return cfg.CorrectionTTLDays
	}
	return cfg.DefaultTTLDays
}

// Score computes the weighted curiosity score in [0,1] for a signal.
func Score(signal Signal, age time.Duration, explorationCount int, cfg *config.CuriosityConfig) (float64, Factors) {
	f := Factors{
		Interest:         clamp01(signal.Interest),
		KnowledgeGap:     clamp01(signal.KnowledgeGap),
		TypeWeight:       typeWeights[signal.Type],
		Recency:          recency(signal.Type, age, cfg),
		ExplorationBoost: explorationBoost(explorationCount),
	}
	score := 0.30*f.Interest +
		0.25*f.KnowledgeGap +
		0.20*f.TypeWeight +
		0.15*f.Recency +
		0.10*f.ExplorationBoost
	return clamp01(score), f
}

func recency(signalType string, age time.Duration, cfg *config.CuriosityConfig) float64 {
	ttl := float64(TTLDays(signalType, cfg))
	ageDays := age.Hours() / 24
	return clamp01(1 - ageDays/ttl)
}

func explorationBoost(explorationCount int) float64 {
	return clamp01(1 - 0.1*float64(explorationCount))
}

// RepeatBonus rewards topics that keep coming up, capped so a hot topic
// cannot run away from the rest of the backlog.
func RepeatBonus(triggerCount int) float64 {
	bonus := 0.05 * float64(triggerCount)
	if bonus > 0.20 {
		bonus = 0.20
	}
	return bonus
}

// StoredPriority maps a [0,1] score onto the 0-100 task priority scale.
func StoredPriority(score float64) int {
	// The epsilon keeps binary float noise from flooring e.g. 0.64*100
	// down to 63.
	p := int(math.Floor(score*100 + 1e-9))
	if p > 100 {
		p = 100
	}
	if p < 0 {
		p = 0
	}
	return p
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
