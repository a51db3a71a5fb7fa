package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session holds the schema definition for the Session entity.
// A session is the server-side record of one participant's progress
// through one study config. The session id is the sole bearer of
// authority for session-scoped operations, so it must come from a
// cryptographic RNG (uuid v4).
type Session struct {
	ent.Schema
}

// Fields of the Session.
func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("config_id"),
		field.String("current_page_id"),
		field.JSON("user_state", map[string]interface{}{}).
			Comment("Unstructured per-config state bag, mutated via dotted paths"),
		field.String("user_id").
			Optional().
			Nillable().
			Comment("OAuth user id, set when the participant signed in"),
		field.String("prolific_pid").
			Optional().
			Nillable(),
		field.String("prolific_study_id").
			Optional().
			Nillable(),
		field.String("prolific_session_id").
			Optional().
			Nillable(),
		field.Time("ended_at").
			Optional().
			Nillable().
			Comment("Set when the participant reaches an end page; blocks re-entry"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Session.
func (Session) Indexes() []ent.Index {
	return []ent.Index{
		// Resume lookup by authenticated user, newest first.
		index.Fields("user_id", "config_id", "created_at"),
		// Resume lookup by Prolific participant.
		index.Fields("prolific_pid", "config_id", "created_at"),
		index.Fields("config_id"),
	}
}
