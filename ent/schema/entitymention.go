package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EntityMention is an append-only audit trail of entity extraction.
// Rows are never updated; the knowledge graph owns the canonical entity.
type EntityMention struct {
	ent.Schema
}

// Fields of the EntityMention.
func (EntityMention) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("mention_id").
			Unique().
			Immutable(),
		field.String("conversation_id").
			Optional().
			Immutable(),
		field.String("entity_type").
			Immutable(),
		field.String("raw_value").
			Immutable(),
		field.String("normalized_value").
			Immutable(),
		field.String("fingerprint").
			Immutable(),
		field.Float("confidence").
			Min(0).
			Max(1).
			Immutable(),
		field.Int("span_start").
			Optional().
			Immutable(),
		field.Int("span_end").
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the EntityMention.
func (EntityMention) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("conversation_id"),
		index.Fields("fingerprint"),
		index.Fields("normalized_value"),
	}
}
