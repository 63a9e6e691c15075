package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MissionExecution records a single attempt of a mission.
type MissionExecution struct {
	ent.Schema
}

// Fields of the MissionExecution.
func (MissionExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.String("mission_id").
			Immutable(),
		field.Enum("status").
			Values("pending", "running", "completed", "failed").
			Default("pending"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Text("output").
			Optional(),
		field.JSON("structured_output", map[string]interface{}{}).
			Optional(),
		field.Int("tool_count").
			Default(0),
		field.String("error_message").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the MissionExecution.
func (MissionExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("mission_id", "created_at"),
		index.Fields("status"),
	}
}
