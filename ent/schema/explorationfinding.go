package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExplorationFinding is a candidate fact produced by an exploration task,
// subject to integration by the fact checker.
type ExplorationFinding struct {
	ent.Schema
}

// Fields of the ExplorationFinding.
func (ExplorationFinding) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("finding_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.Text("finding").
			Immutable(),
		field.Text("source_context").
			Optional(),
		field.Float("confidence").
			Min(0).
			Max(1).
			Default(0.5),
		field.Bool("worth_sharing").
			Default(false),
		field.Text("share_message").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ExplorationFinding.
func (ExplorationFinding) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id"),
		index.Fields("worth_sharing", "created_at"),
	}
}
