package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QueueTask is a short-lived background model job on the work queue.
// Priority is ascending: smaller = higher priority (the opposite of
// ProjectTask — do not unify the two conventions).
type QueueTask struct {
	ent.Schema
}

// Fields of the QueueTask.
func (QueueTask) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("queue_task_id").
			Unique().
			Immutable(),
		field.String("task_type").
			Comment("summary, exploration, notification, emotion_stimulus, ..."),
		field.String("model_name"),
		field.Text("content").
			Optional(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Int("priority").
			Default(50),
		field.Enum("status").
			Values("pending", "processing", "completed", "failed").
			Default("pending"),
		field.String("session_id").
			Optional(),
		field.Int("retry_count").
			Default(0),
		field.String("error_message").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("claimed_at").
			Optional().
			Nillable().
			Comment("Set on claim; lease reaper keys off this for stuck rows"),
		field.Time("processed_at").
			Optional().
			Nillable(),
	}
}

// Annotations of the QueueTask.
func (QueueTask) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "task_queue"},
	}
}

// Indexes of the QueueTask.
func (QueueTask) Indexes() []ent.Index {
	return []ent.Index{
		// Claim path: WHERE status='pending' AND model_name=$1 ORDER BY priority, created_at
		index.Fields("status", "model_name", "priority", "created_at"),
		index.Fields("status", "claimed_at"),
		index.Fields("session_id"),
		index.Fields("task_type"),
	}
}
