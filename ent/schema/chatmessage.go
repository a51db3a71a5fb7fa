package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatMessage holds the schema definition for the ChatMessage entity.
// Messages are ordered within a group by created_at; ties fall back to
// insertion order at the storage layer.
type ChatMessage struct {
	ent.Schema
}

// Fields of the ChatMessage.
func (ChatMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("group_id"),
		field.String("sender_id").
			Comment("Session id for participants, \"agent:<id>\" for agents"),
		field.Enum("sender_type").
			Values("participant", "agent", "system").
			Default("participant"),
		field.Text("content"),
		field.String("idempotency_key").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ChatMessage.
func (ChatMessage) Indexes() []ent.Index {
	return []ent.Index{
		// History order.
		index.Fields("group_id", "created_at"),
		index.Fields("idempotency_key").
			Unique().
			Annotations(entsql.IndexWhere("idempotency_key IS NOT NULL")),
	}
}
