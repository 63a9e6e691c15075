package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MediumPresence tracks heartbeats per (medium, user). A medium is online
// iff its last heartbeat is within the 60 s staleness window.
type MediumPresence struct {
	ent.Schema
}

// Fields of the MediumPresence.
func (MediumPresence) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("presence_id").
			Unique().
			Immutable(),
		field.String("medium"),
		field.String("user_id"),
		field.String("status").
			Default("online"),
		field.Time("last_heartbeat").
			Default(time.Now),
		field.JSON("channels", []map[string]interface{}{}).
			Optional().
			Comment("Available channels: [{id, name, kind}, ...]"),
	}
}

// Indexes of the MediumPresence.
func (MediumPresence) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("medium", "user_id").
			Unique(),
		index.Fields("user_id", "last_heartbeat"),
	}
}
