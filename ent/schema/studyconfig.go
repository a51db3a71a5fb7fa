package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"

	"github.com/greenroomlab/greenroom/pkg/models"
)

// StudyConfig holds the schema definition for the StudyConfig entity.
// Configs are uploaded out of band and are read-only at runtime: the
// orchestration core only ever loads them by id.
type StudyConfig struct {
	ent.Schema
}

// Fields of the StudyConfig.
func (StudyConfig) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("config_id").
			Unique().
			Immutable(),
		field.String("owner").
			Optional(),
		field.Bool("require_auth").
			Default(false),
		field.JSON("graph", models.Graph{}).
			Comment("Compiled page graph: initial page id plus page map"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Annotations of the StudyConfig.
func (StudyConfig) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "configs"},
	}
}
