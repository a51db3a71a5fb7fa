package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// IdempotencyKey holds the schema definition for the IdempotencyKey
// entity. Keys reserve advance/state mutations; a retention loop
// deletes rows older than 24h, so replays after a day look like
// first-time requests (pkg/cleanup).
type IdempotencyKey struct {
	ent.Schema
}

// Fields of the IdempotencyKey.
func (IdempotencyKey) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("key").
			Unique().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the IdempotencyKey.
func (IdempotencyKey) Indexes() []ent.Index {
	return []ent.Index{
		// Retention cleanup scans by age.
		index.Fields("created_at"),
	}
}
