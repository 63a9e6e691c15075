package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SurfacedFinding records that a finding was shown in a session.
// The (finding_id, session_id) uniqueness prevents showing the same
// finding twice in one session.
type SurfacedFinding struct {
	ent.Schema
}

// Fields of the SurfacedFinding.
func (SurfacedFinding) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("surfaced_id").
			Unique().
			Immutable(),
		field.String("finding_id").
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the SurfacedFinding.
func (SurfacedFinding) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("finding_id", "session_id").
			Unique(),
		index.Fields("session_id"),
	}
}
