package events

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordSink captures emitted events for assertions.
type recordSink struct {
	mu     sync.Mutex
	events []recorded
	err    error
}

type recorded struct {
	kind    string
	payload map[string]any
}

func (r *recordSink) Emit(_ context.Context, kind string, payload map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recorded{kind: kind, payload: payload})
	return r.err
}

func TestFanout(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers to every sink", func(t *testing.T) {
		a, b := &recordSink{}, &recordSink{}
		fan := Fanout{a, b}

		require.NoError(t, fan.Emit(ctx, KindCuriosityTriggered, map[string]any{"topic": "rust"}))

		require.Len(t, a.events, 1)
		require.Len(t, b.events, 1)
		assert.Equal(t, KindCuriosityTriggered, a.events[0].kind)
		assert.Equal(t, "rust", b.events[0].payload["topic"])
	})

	t.Run("failing sink does not stop delivery", func(t *testing.T) {
		failing := &recordSink{err: errors.New("sink down")}
		healthy := &recordSink{}
		fan := Fanout{failing, healthy}

		err := fan.Emit(ctx, KindTaskCompleted, nil)
		require.Error(t, err)
		assert.Len(t, healthy.events, 1)
	})

	t.Run("empty fanout is a no-op", func(t *testing.T) {
		require.NoError(t, Fanout{}.Emit(ctx, KindSummaryWritten, nil))
	})
}

func TestLogSink(t *testing.T) {
	var buf strings.Builder
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	sink := NewLogSink(logger)

	require.NoError(t, sink.Emit(context.Background(), KindFactAdded, map[string]any{"fact": "x"}))

	out := buf.String()
	assert.Contains(t, out, KindFactAdded)
	assert.Contains(t, out, "fact=x")
}

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("small payloads pass through", func(t *testing.T) {
		out, err := truncateIfNeeded("k", []byte(`{"kind":"k","user_id":"u1"}`))
		require.NoError(t, err)
		assert.Equal(t, `{"kind":"k","user_id":"u1"}`, out)
	})

	t.Run("oversized payloads collapse to routing envelope", func(t *testing.T) {
		big := `{"kind":"k","user_id":"u1","session_id":"s1","blob":"` + strings.Repeat("x", 9000) + `"}`
		out, err := truncateIfNeeded("k", []byte(big))
		require.NoError(t, err)
		assert.Less(t, len(out), 500)
		assert.Contains(t, out, `"truncated":true`)
		assert.Contains(t, out, `"user_id":"u1"`)
		assert.Contains(t, out, `"session_id":"s1"`)
	})
}

func TestUserChannel(t *testing.T) {
	assert.Equal(t, "kestrel_user:brady", UserChannel("brady"))
}
