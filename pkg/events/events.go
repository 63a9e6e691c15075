// Package events delivers daemon events to interested consumers.
// Producers emit through the narrow Sink interface; deployments compose
// sinks (log, Postgres NOTIFY) with Fanout. There is no global emitter:
// every component receives its sink explicitly.
package events

import "context"

// Event kinds. The namespace prefix groups kinds by producing
// subsystem; consumers filter on the full string.
const (
	KindConversationCaptured = "conversation:captured"

	KindCuriosityTriggered = "curiosity:triggered"
	KindCuriosityPruned    = "curiosity:pruned"

	KindFactAdded             = "integration:fact_added"
	KindContradictionDetected = "integration:contradiction_detected"
	KindReviewResolved        = "integration:review_resolved"

	KindSummaryWritten    = "summary:written"
	KindCoreMemoryUpdated = "memory:core_updated"

	KindTaskEnqueued  = "task:enqueued"
	KindTaskCompleted = "task:completed"
	KindTaskFailed    = "task:failed"

	KindAmbientDecision     = "ambient:decision"
	KindExplorationStarted  = "ambient:exploration_started"
	KindNotificationCreated = "notification:created"
)

// Sink receives daemon events. Implementations must be safe for
// concurrent use and should not block the producer for long.
type Sink interface {
	Emit(ctx context.Context, kind string, payload map[string]any) error
}

// Fanout delivers each event to every sink. All sinks are attempted;
// the first error is returned.
type Fanout []Sink

// Emit delivers the event to every sink in order.
func (f Fanout) Emit(ctx context.Context, kind string, payload map[string]any) error {
	var firstErr error
	for _, s := range f {
		if err := s.Emit(ctx, kind, payload); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// NopSink discards every event.
type NopSink struct{}

// Emit discards the event.
func (NopSink) Emit(context.Context, string, map[string]any) error { return nil }
