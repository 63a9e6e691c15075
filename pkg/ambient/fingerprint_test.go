package ambient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func set(keys ...string) map[string]bool {
	m := map[string]bool{}
	for _, k := range keys {
		m[k] = true
	}
	return m
}

func TestSimilarity(t *testing.T) {
	editor := Sample{App: "cli", Title: "/home/brady/kestrel"}
	browser := Sample{App: "discord", Title: ""}

	t.Run("identical context scores 1", func(t *testing.T) {
		fp := Fingerprint{Activity: editor, Entities: set("postgres", "ent"), Tasks: set("t1")}
		assert.InDelta(t, 1.0, Similarity(fp, fp), 1e-9)
	})

	t.Run("everything changed scores 0", func(t *testing.T) {
		prev := Fingerprint{Activity: editor, Entities: set("postgres"), Tasks: set("t1")}
		cur := Fingerprint{Activity: browser, Entities: set("raft"), Tasks: set("t2")}
		assert.InDelta(t, 0.0, Similarity(prev, cur), 1e-9)
	})

	t.Run("app switch with same topics", func(t *testing.T) {
		prev := Fingerprint{Activity: editor, Entities: set("postgres", "ent"), Tasks: set("t1")}
		cur := Fingerprint{Activity: browser, Entities: set("postgres", "ent"), Tasks: set("t1")}
		// 0.5*0 + 0.3*1 + 0.2*1
		assert.InDelta(t, 0.5, Similarity(prev, cur), 1e-9)
	})

	t.Run("partial entity overlap", func(t *testing.T) {
		prev := Fingerprint{Activity: editor, Entities: set("a", "b"), Tasks: nil}
		cur := Fingerprint{Activity: editor, Entities: set("b", "c"), Tasks: nil}
		// 0.5 + 0.3*(1/3) + 0.2*1
		assert.InDelta(t, 0.8, Similarity(prev, cur), 1e-9)
	})

	t.Run("empty sets count as unchanged", func(t *testing.T) {
		prev := Fingerprint{Activity: editor}
		cur := Fingerprint{Activity: editor}
		assert.InDelta(t, 1.0, Similarity(prev, cur), 1e-9)
	})
}

func TestJaccard(t *testing.T) {
	assert.InDelta(t, 1.0, jaccard(nil, nil), 1e-9)
	assert.InDelta(t, 0.0, jaccard(set("a"), nil), 1e-9)
	assert.InDelta(t, 0.5, jaccard(set("a", "b"), set("a", "c", "d")), 1e-9)
}

func TestStreak(t *testing.T) {
	now := time.Now()
	var s streak

	assert.Equal(t, time.Duration(0), s.observe(Sample{App: "cli", Title: "x"}, now))
	assert.Equal(t, time.Minute, s.observe(Sample{App: "cli", Title: "x"}, now.Add(time.Minute)))
	assert.Equal(t, 5*time.Minute, s.observe(Sample{App: "cli", Title: "x"}, now.Add(5*time.Minute)))

	// Context change resets the accumulation.
	assert.Equal(t, time.Duration(0), s.observe(Sample{App: "cli", Title: "y"}, now.Add(6*time.Minute)))
	assert.Equal(t, time.Minute, s.observe(Sample{App: "cli", Title: "y"}, now.Add(7*time.Minute)))
}

func TestQueuePriorityFor(t *testing.T) {
	assert.Equal(t, 36, queuePriorityFor(64))
	assert.Equal(t, 100, queuePriorityFor(0))
	assert.Equal(t, 1, queuePriorityFor(100))
	assert.Equal(t, 1, queuePriorityFor(150))
}
