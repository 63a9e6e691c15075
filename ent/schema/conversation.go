package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Conversation holds the schema definition for a single message.
type Conversation struct {
	ent.Schema
}

// Fields of the Conversation.
func (Conversation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("conversation_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Enum("role").
			Values("user", "assistant", "system"),
		field.Text("prompt"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.String("medium").
			Optional(),
		field.String("user_id").
			Optional(),
		field.Int("latency_ms").
			Optional().
			Nillable(),
		field.JSON("tool_names", []string{}).
			Optional(),
	}
}

// Indexes of the Conversation.
func (Conversation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "created_at"),
		index.Fields("user_id", "created_at"),
		index.Fields("role"),
	}
}
