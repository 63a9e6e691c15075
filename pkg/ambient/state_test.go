package ambient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kestrel-ai/kestrel/ent"
)

func TestDeriveState(t *testing.T) {
	now := time.Now()
	threshold := 15 * time.Minute
	at := func(d time.Duration) *time.Time {
		ts := now.Add(d)
		return &ts
	}

	tests := []struct {
		name           string
		state          *ent.DaemonState
		activeSessions int
		want           State
	}{
		{
			"active session wins over everything",
			&ent.DaemonState{SuppressedUntil: at(time.Hour), LastInteractionAt: at(-time.Hour)},
			1,
			StateEngaged,
		},
		{
			"suppression wins over idleness",
			&ent.DaemonState{SuppressedUntil: at(time.Hour), LastInteractionAt: at(-time.Hour)},
			0,
			StateSuppressed,
		},
		{
			"expired suppression is ignored",
			&ent.DaemonState{SuppressedUntil: at(-time.Minute), LastInteractionAt: at(-time.Minute)},
			0,
			StateAvailable,
		},
		{
			"old interaction means idle",
			&ent.DaemonState{LastInteractionAt: at(-time.Hour)},
			0,
			StateIdle,
		},
		{
			"interaction exactly at the threshold is idle",
			&ent.DaemonState{LastInteractionAt: at(-threshold)},
			0,
			StateIdle,
		},
		{
			"recent interaction means available",
			&ent.DaemonState{LastInteractionAt: at(-time.Minute)},
			0,
			StateAvailable,
		},
		{
			"never interacted means idle",
			&ent.DaemonState{},
			0,
			StateIdle,
		},
		{
			"nil row means idle",
			nil,
			0,
			StateIdle,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveState(tc.state, tc.activeSessions, threshold, now))
		})
	}
}

func TestDeriveState_IsDeterministic(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	ds := &ent.DaemonState{LastInteractionAt: &past}
	first := DeriveState(ds, 0, 15*time.Minute, now)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, DeriveState(ds, 0, 15*time.Minute, now))
	}
}
