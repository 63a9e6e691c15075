package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CoreMemoryVersion is an append-only record of one core-memory write.
// Version numbers are contiguous from 1 per block and never reused.
type CoreMemoryVersion struct {
	ent.Schema
}

// Fields of the CoreMemoryVersion.
func (CoreMemoryVersion) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("version_id").
			Unique().
			Immutable(),
		field.String("block_id").
			Immutable(),
		field.Int("version").
			Positive().
			Immutable(),
		field.Text("content").
			Immutable(),
		field.String("reason").
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the CoreMemoryVersion.
func (CoreMemoryVersion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("block_id", "version").
			Unique(),
	}
}
