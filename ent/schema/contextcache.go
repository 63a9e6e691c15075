package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ContextCache is the per-session materialized context blob.
// Upserted whenever context is rebuilt; staleness is bounded on read.
type ContextCache struct {
	ent.Schema
}

// Fields of the ContextCache.
func (ContextCache) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("cache_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Unique(),
		field.Text("context").
			Default(""),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Annotations of the ContextCache.
func (ContextCache) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "context_cache"},
	}
}

// Indexes of the ContextCache.
func (ContextCache) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("updated_at"),
	}
}
