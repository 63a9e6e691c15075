package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Mission is a reusable intent: a prompt plus schedule and runtime settings.
type Mission struct {
	ent.Schema
}

// Fields of the Mission.
func (Mission) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("mission_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.Text("prompt"),
		field.String("schedule").
			Optional().
			Comment("Cron-style schedule; empty for on-demand missions"),
		field.String("sandbox_policy").
			Optional(),
		field.String("personality").
			Optional(),
		field.String("model").
			Optional(),
		field.JSON("tools", []string{}).
			Optional(),
		field.Enum("status").
			Values("active", "paused", "archived", "running_once").
			Default("active"),
		field.String("user_id").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Mission.
func (Mission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("user_id"),
	}
}
