package curiosity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kestrel-ai/kestrel/pkg/config"
)

func TestScore(t *testing.T) {
	cfg := config.DefaultCuriosityConfig()

	t.Run("fresh correction", func(t *testing.T) {
		score, factors := Score(Signal{Type: TypeCorrection, Interest: 0.7}, 0, 0, cfg)
		// 0.30*0.7 + 0.25*0 + 0.20*0.9 + 0.15*1 + 0.10*1
		assert.InDelta(t, 0.64, score, 1e-9)
		assert.Equal(t, 0.9, factors.TypeWeight)
		assert.Equal(t, 1.0, factors.Recency)
		assert.Equal(t, 1.0, factors.ExplorationBoost)
	})

	t.Run("knowledge gap contributes its own weight", func(t *testing.T) {
		score, _ := Score(Signal{Type: TypeKnowledgeGap, Interest: 0.4, KnowledgeGap: 0.8}, 0, 0, cfg)
		// 0.30*0.4 + 0.25*0.8 + 0.20*0.6 + 0.15*1 + 0.10*1
		assert.InDelta(t, 0.69, score, 1e-9)
	})

	t.Run("recency decays against the type ttl", func(t *testing.T) {
		halfTTL := time.Duration(cfg.CorrectionTTLDays) * 12 * time.Hour
		_, factors := Score(Signal{Type: TypeCorrection, Interest: 0.7}, halfTTL, 0, cfg)
		assert.InDelta(t, 0.5, factors.Recency, 1e-9)

		pastTTL := time.Duration(cfg.CorrectionTTLDays+1) * 24 * time.Hour
		_, factors = Score(Signal{Type: TypeCorrection, Interest: 0.7}, pastTTL, 0, cfg)
		assert.Equal(t, 0.0, factors.Recency)
	})

	t.Run("exploration boost fades with visits", func(t *testing.T) {
		_, factors := Score(Signal{Type: TypeUnfamiliarEntity, Interest: 0.4}, 0, 4, cfg)
		assert.InDelta(t, 0.6, factors.ExplorationBoost, 1e-9)

		_, factors = Score(Signal{Type: TypeUnfamiliarEntity, Interest: 0.4}, 0, 15, cfg)
		assert.Equal(t, 0.0, factors.ExplorationBoost)
	})
}

func TestRepeatBonus(t *testing.T) {
	assert.InDelta(t, 0.05, RepeatBonus(1), 1e-9)
	assert.InDelta(t, 0.15, RepeatBonus(3), 1e-9)
	assert.InDelta(t, 0.20, RepeatBonus(4), 1e-9)
	assert.InDelta(t, 0.20, RepeatBonus(10), 1e-9)
}

func TestStoredPriority(t *testing.T) {
	assert.Equal(t, 64, StoredPriority(0.64))
	assert.Equal(t, 0, StoredPriority(0))
	assert.Equal(t, 100, StoredPriority(1.0))
	// floor, not round
	assert.Equal(t, 46, StoredPriority(0.469))
}

func TestTTLDays(t *testing.T) {
	cfg := config.DefaultCuriosityConfig()
	assert.Equal(t, cfg.CorrectionTTLDays, TTLDays(TypeCorrection, cfg))
	assert.Equal(t, cfg.DefaultTTLDays, TTLDays(TypeEmotionalPeak, cfg))
	assert.Equal(t, cfg.DefaultTTLDays, TTLDays(TypeUnfamiliarEntity, cfg))
}
