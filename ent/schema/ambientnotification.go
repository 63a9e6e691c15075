package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AmbientNotification is a proactive message produced by the orchestrator.
// External delivery agents flip status to delivered or failed.
type AmbientNotification struct {
	ent.Schema
}

// Fields of the AmbientNotification.
func (AmbientNotification) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("notification_id").
			Unique().
			Immutable(),
		field.String("user_id"),
		field.String("target_medium").
			Optional(),
		field.String("target_location").
			Optional().
			Comment("Channel or destination within the medium"),
		field.Text("message"),
		field.Enum("priority").
			Values("silent", "ambient", "conversation", "urgent").
			Default("ambient"),
		field.Text("routing_reasoning").
			Optional(),
		field.Enum("status").
			Values("pending", "delivered", "failed").
			Default("pending"),
		field.String("parent_notification_id").
			Optional().
			Nillable().
			Comment("Escalation chain; ids only, traversal by bounded walk"),
		field.Bool("acknowledged").
			Default(false),
		field.Time("acknowledged_at").
			Optional().
			Nillable(),
		field.Int("response_time_seconds").
			Optional().
			Nillable(),
		field.JSON("context_snapshot", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AmbientNotification.
func (AmbientNotification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("user_id", "acknowledged"),
		index.Fields("status"),
	}
}
