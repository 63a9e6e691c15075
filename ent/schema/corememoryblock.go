package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CoreMemoryBlock is a durable, versioned slot of agent-visible memory.
// Uniqueness is scope-dependent: (user_id, block_type) for user-scoped
// blocks (session_id NULL) and (session_id, block_type) for session-scoped
// blocks. Ent cannot express those partial unique indexes; they are created
// by database.CreatePartialUniqueIndexes.
type CoreMemoryBlock struct {
	ent.Schema
}

// Fields of the CoreMemoryBlock.
func (CoreMemoryBlock) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("block_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Optional().
			Nillable(),
		field.String("session_id").
			Optional().
			Nillable(),
		field.String("block_type").
			Comment("persona, human, task, ..."),
		field.Text("content").
			Default(""),
		field.Int("char_limit").
			Default(8192).
			Positive(),
		field.Int("version").
			Default(0).
			Comment("Monotonic; every content write appends a CoreMemoryVersion"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the CoreMemoryBlock.
func (CoreMemoryBlock) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "block_type"),
		index.Fields("session_id", "block_type"),
	}
}
