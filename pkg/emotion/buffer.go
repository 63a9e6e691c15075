// Package emotion aggregates emotion stimuli drained from the work
// queue into a rolling in-memory picture of the user's recent affect.
// The buffer is advisory: it is rebuilt from scratch on restart and
// nothing downstream depends on its durability.
package emotion

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/kestrel-ai/kestrel/ent"
	"github.com/kestrel-ai/kestrel/pkg/curiosity"
)

const (
	// maxStimuli bounds the ring; old entries fall off the front.
	maxStimuli = 256

	// halfLife controls the decay weighting in Summary.
	halfLife = 30 * time.Minute

	// summaryWindow is how far back Summary looks.
	summaryWindow = 4 * time.Hour
)

// Stimulus is one scored emotion sample.
type Stimulus struct {
	ConversationID string    `json:"conversation_id"`
	UserID         string    `json:"user_id"`
	Intensity      float64   `json:"intensity"`
	At             time.Time `json:"at"`
}

// Summary is the decayed aggregate over the recent window.
type Summary struct {
	Level       float64    `json:"level"`
	Peak        float64    `json:"peak"`
	SampleCount int        `json:"sample_count"`
	LastAt      *time.Time `json:"last_at,omitempty"`
}

// Buffer holds recent stimuli and implements the queue executor for the
// emotion_stimulus task type.
type Buffer struct {
	mu      sync.Mutex
	recent  []Stimulus
	nowFunc func() time.Time
}

// NewBuffer creates an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{nowFunc: time.Now}
}

// Execute scores a queued stimulus and records it.
func (b *Buffer) Execute(_ context.Context, task *ent.QueueTask) error {
	stimulus := Stimulus{
		Intensity: curiosity.EmotionalIntensity(task.Content),
		At:        b.nowFunc(),
	}
	if task.Metadata != nil {
		if v, ok := task.Metadata["conversation_id"].(string); ok {
			stimulus.ConversationID = v
		}
		if v, ok := task.Metadata["user_id"].(string); ok {
			stimulus.UserID = v
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.recent = append(b.recent, stimulus)
	if len(b.recent) > maxStimuli {
		b.recent = b.recent[len(b.recent)-maxStimuli:]
	}
	return nil
}

// Summary returns the exponentially decayed view of the recent window.
// Level is a weighted mean, so it stays in [0,1].
func (b *Buffer) Summary() Summary {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.nowFunc()
	cutoff := now.Add(-summaryWindow)

	var out Summary
	var weighted, weights float64
	for _, s := range b.recent {
		if s.At.Before(cutoff) {
			continue
		}
		age := now.Sub(s.At)
		w := math.Exp2(-float64(age) / float64(halfLife))
		weighted += w * s.Intensity
		weights += w
		if s.Intensity > out.Peak {
			out.Peak = s.Intensity
		}
		out.SampleCount++
		at := s.At
		if out.LastAt == nil || at.After(*out.LastAt) {
			out.LastAt = &at
		}
	}
	if weights > 0 {
		out.Level = weighted / weights
	}
	return out
}
