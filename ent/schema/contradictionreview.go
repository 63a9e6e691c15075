package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ContradictionReview is a pending disagreement between a new fact and an
// existing graph fact. A pending review never commits the new fact.
type ContradictionReview struct {
	ent.Schema
}

// Fields of the ContradictionReview.
func (ContradictionReview) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("review_id").
			Unique().
			Immutable(),
		field.Text("new_fact").
			Immutable(),
		field.String("existing_fact_uuid").
			Immutable(),
		field.Text("existing_fact").
			Immutable(),
		field.Float("similarity").
			Min(0.7).
			Max(0.95).
			Immutable(),
		field.String("reason").
			Optional(),
		field.String("source").
			Optional(),
		field.Text("context").
			Optional(),
		field.JSON("entity_names", []string{}).
			Optional(),
		field.String("group_id").
			Optional().
			Comment("Tenant partition in the knowledge graph"),
		field.Enum("status").
			Values("pending", "accepted_new", "kept_old", "kept_both", "dismissed").
			Default("pending"),
		field.Text("resolution").
			Optional(),
		field.String("resolver").
			Optional(),
		field.Time("resolved_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ContradictionReview.
func (ContradictionReview) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("group_id"),
	}
}
