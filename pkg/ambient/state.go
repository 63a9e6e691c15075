// Package ambient is the orchestrator that decides what the assistant
// does between user turns: explore a curiosity, reach out proactively,
// or stand down.
package ambient

import (
	"time"

	"github.com/kestrel-ai/kestrel/ent"
)

// State is the derived engagement state. It is never stored; only its
// inputs (the DaemonState row and the live session count) are.
type State string

// Derived states, in precedence order.
const (
	StateEngaged    State = "engaged"
	StateSuppressed State = "suppressed"
	StateIdle       State = "idle"
	StateAvailable  State = "available"
)

// DeriveState computes the engagement state from its persisted inputs.
// Engaged wins over suppressed, suppressed over idle. A user who never
// interacted counts as idle.
func DeriveState(ds *ent.DaemonState, activeSessions int, idleThreshold time.Duration, now time.Time) State {
	if activeSessions > 0 {
		return StateEngaged
	}
	if ds != nil && ds.SuppressedUntil != nil && now.Before(*ds.SuppressedUntil) {
		return StateSuppressed
	}
	if ds == nil || ds.LastInteractionAt == nil || now.Sub(*ds.LastInteractionAt) >= idleThreshold {
		return StateIdle
	}
	return StateAvailable
}
