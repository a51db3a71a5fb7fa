package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity — the
// append-only record of participant interactions used for data export.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("type"),
		field.String("component_type").
			Optional(),
		field.String("component_id").
			Optional(),
		field.String("page_id").
			Optional(),
		field.String("session_id"),
		field.String("config_id"),
		field.JSON("data", map[string]interface{}{}).
			Optional(),
		field.Time("timestamp").
			Optional().
			Nillable().
			Comment("Client-reported timestamp; created_at is authoritative for ordering"),
		field.String("idempotency_key").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		// Export order.
		index.Fields("session_id", "created_at"),
		// Sparse unique dedup index: rows without a key are exempt.
		index.Fields("idempotency_key").
			Unique().
			Annotations(entsql.IndexWhere("idempotency_key IS NOT NULL")),
	}
}
