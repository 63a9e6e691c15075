package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session holds the schema definition for the Session entity.
// A session is a long-lived conversation container; it is never deleted
// by the daemon, only ended.
type Session struct {
	ent.Schema
}

// Fields of the Session.
func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("working_dir").
			Optional(),
		field.Time("start_time").
			Default(time.Now),
		field.Time("end_time").
			Optional().
			Nillable(),
		field.Time("last_activity").
			Default(time.Now),
		field.String("continued_from").
			Optional().
			Nillable().
			Comment("Prior session id; traversal is bounded BFS, never a held reference"),
		field.String("medium").
			Optional().
			Comment("Free-form channel label: cli, discord, telegram, ..."),
		field.String("user_id").
			Optional(),
		field.String("personality").
			Optional(),
		field.String("sandbox_policy").
			Optional(),
		field.String("mission_id").
			Optional().
			Nillable().
			Comment("Set when the session is the execution of a scheduled mission"),
		field.Text("summary").
			Optional().
			Nillable(),
		field.Time("summary_updated_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Session.
func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("medium"),
		index.Fields("last_activity"),
		index.Fields("end_time", "last_activity"),
	}
}
