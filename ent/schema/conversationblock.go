package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConversationBlock is one ordinal unit of a conversation: plain text,
// a tool call, or a tool result. Ordinals are a dense 0-based sequence
// per conversation.
type ConversationBlock struct {
	ent.Schema
}

// Fields of the ConversationBlock.
func (ConversationBlock) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("block_id").
			Unique().
			Immutable(),
		field.String("conversation_id").
			Immutable(),
		field.Int("ordinal").
			NonNegative(),
		field.Enum("kind").
			Values("text", "tool_use", "tool_result"),
		field.Text("text").
			Optional(),
		field.String("tool_name").
			Optional(),
		field.String("tool_use_id").
			Optional().
			Comment("For tool_result blocks: id of the prior tool_use block"),
		field.JSON("tool_input", map[string]interface{}{}).
			Optional(),
		field.JSON("tool_result", map[string]interface{}{}).
			Optional(),
		field.JSON("embedding", []float64{}).
			Optional().
			Comment("Optional dense embedding vector"),
	}
}

// Indexes of the ConversationBlock.
func (ConversationBlock) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("conversation_id", "ordinal").
			Unique(),
	}
}
