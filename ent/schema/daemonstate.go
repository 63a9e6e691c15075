package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// DaemonState is the per-user input of the orchestrator's derived state.
// The derived state itself is never stored — only its inputs are, which
// keeps the engagement rule a pure function. The id is the user id;
// rows are created lazily on first reference.
type DaemonState struct {
	ent.Schema
}

// Fields of the DaemonState.
func (DaemonState) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("user_id").
			Unique().
			Immutable(),
		field.Time("suppressed_until").
			Optional().
			Nillable(),
		field.Time("last_interaction_at").
			Optional().
			Nillable(),
		field.Time("last_proactive_contact_at").
			Optional().
			Nillable(),
		field.Int("autonomous_work_count").
			Default(0),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
