package events

import (
	"context"
	"log/slog"
)

// LogSink writes events to structured logs. It is the default sink in
// deployments without external consumers.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a LogSink. A nil logger uses slog's default.
func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

// Emit logs the event at debug level with the payload flattened into
// log attributes.
func (s *LogSink) Emit(ctx context.Context, kind string, payload map[string]any) error {
	attrs := make([]any, 0, 2+2*len(payload))
	attrs = append(attrs, "kind", kind)
	for k, v := range payload {
		attrs = append(attrs, k, v)
	}
	s.logger.DebugContext(ctx, "Event emitted", attrs...)
	return nil
}
