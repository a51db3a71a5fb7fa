package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Group holds the schema definition for the Group entity.
// Groups are created atomically when a matchmaking pool reaches its
// target size and are never resized afterwards.
type Group struct {
	ent.Schema
}

// Fields of the Group.
func (Group) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("group_id").
			Unique().
			Immutable(),
		field.String("config_id"),
		field.String("pool_id"),
		field.Strings("member_session_ids"),
		field.String("treatment"),
		field.Time("matched_at").
			Default(time.Now).
			Immutable(),
		field.String("status").
			Default("active"),
	}
}

// Indexes of the Group.
func (Group) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("config_id", "pool_id"),
	}
}
