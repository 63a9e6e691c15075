package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SummaryContext is an append-only rolling "summary of summaries".
// Each row carries the union of session ids it has absorbed.
type SummaryContext struct {
	ent.Schema
}

// Fields of the SummaryContext.
func (SummaryContext) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("summary_context_id").
			Unique().
			Immutable(),
		field.Text("summary").
			Immutable(),
		field.JSON("sessions", []string{}).
			StorageKey("session_ids"),
		field.String("user_id").
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the SummaryContext.
func (SummaryContext) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
	}
}
