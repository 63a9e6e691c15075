package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProjectTask is the unit of the curiosity backlog and of user-visible
// background work. Priority is descending: larger = more urgent (the
// opposite of QueueTask — do not unify the two conventions).
type ProjectTask struct {
	ent.Schema
}

// Fields of the ProjectTask.
func (ProjectTask) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("working_dir").
			Optional(),
		field.String("title").
			Comment("Concept phrase; curiosity upserts key on lower(title)"),
		field.Text("description").
			Optional(),
		field.Text("acceptance_criteria").
			Optional(),
		field.JSON("scope_paths", []string{}).
			Optional(),
		field.JSON("required_tools", []string{}).
			Optional(),
		field.String("task_type").
			Comment("curiosity, exploration, summary, ..."),
		field.JSON("tags", []string{}).
			Optional(),
		field.Int("priority").
			Default(0).
			Min(0).
			Max(100),
		field.Enum("status").
			Values("backlog", "ready", "blocked", "in_progress", "done", "cancelled").
			Default("backlog"),
		field.String("user_id").
			Optional(),
		field.String("claim_session_id").
			Optional().
			Nillable(),
		field.String("claim_agent_id").
			Optional().
			Nillable(),
		field.Time("claimed_at").
			Optional().
			Nillable(),
		field.Int("attempt_count").
			Default(0),
		field.JSON("blocked_by", []string{}).
			Optional(),
		field.JSON("related_task_ids", []string{}).
			Optional(),
		field.String("outcome").
			Optional(),
		field.Text("completion_notes").
			Optional(),
		field.JSON("files_changed", []string{}).
			Optional(),
		field.String("last_error").
			Optional(),
		field.JSON("extra", map[string]interface{}{}).
			Optional().
			Comment("Domain-specific payload; access via models.JSONValue helpers"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("last_triggered_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the ProjectTask.
func (ProjectTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "task_type", "status"),
		index.Fields("status", "priority"),
		index.Fields("task_type"),
		index.Fields("created_at"),
	}
}
