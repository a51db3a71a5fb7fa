// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChatMessagesColumns holds the columns for the "chat_messages" table.
	ChatMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "group_id", Type: field.TypeString},
		{Name: "sender_id", Type: field.TypeString},
		{Name: "sender_type", Type: field.TypeEnum, Enums: []string{"participant", "agent", "system"}, Default: "participant"},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "idempotency_key", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ChatMessagesTable holds the schema information for the "chat_messages" table.
	ChatMessagesTable = &schema.Table{
		Name:       "chat_messages",
		Columns:    ChatMessagesColumns,
		PrimaryKey: []*schema.Column{ChatMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chatmessage_group_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[1], ChatMessagesColumns[6]},
			},
			{
				Name:    "chatmessage_idempotency_key",
				Unique:  true,
				Columns: []*schema.Column{ChatMessagesColumns[5]},
				Annotation: &entsql.IndexAnnotation{
					Where: "idempotency_key IS NOT NULL",
				},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "type", Type: field.TypeString},
		{Name: "component_type", Type: field.TypeString, Nullable: true},
		{Name: "component_id", Type: field.TypeString, Nullable: true},
		{Name: "page_id", Type: field.TypeString, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "config_id", Type: field.TypeString},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "timestamp", Type: field.TypeTime, Nullable: true},
		{Name: "idempotency_key", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[5], EventsColumns[10]},
			},
			{
				Name:    "event_idempotency_key",
				Unique:  true,
				Columns: []*schema.Column{EventsColumns[9]},
				Annotation: &entsql.IndexAnnotation{
					Where: "idempotency_key IS NOT NULL",
				},
			},
		},
	}
	// GroupsColumns holds the columns for the "groups" table.
	GroupsColumns = []*schema.Column{
		{Name: "group_id", Type: field.TypeString, Unique: true},
		{Name: "config_id", Type: field.TypeString},
		{Name: "pool_id", Type: field.TypeString},
		{Name: "member_session_ids", Type: field.TypeJSON},
		{Name: "treatment", Type: field.TypeString},
		{Name: "matched_at", Type: field.TypeTime},
		{Name: "status", Type: field.TypeString, Default: "active"},
	}
	// GroupsTable holds the schema information for the "groups" table.
	GroupsTable = &schema.Table{
		Name:       "groups",
		Columns:    GroupsColumns,
		PrimaryKey: []*schema.Column{GroupsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "group_config_id_pool_id",
				Unique:  false,
				Columns: []*schema.Column{GroupsColumns[1], GroupsColumns[2]},
			},
		},
	}
	// IdempotencyKeysColumns holds the columns for the "idempotency_keys" table.
	IdempotencyKeysColumns = []*schema.Column{
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// IdempotencyKeysTable holds the schema information for the "idempotency_keys" table.
	IdempotencyKeysTable = &schema.Table{
		Name:       "idempotency_keys",
		Columns:    IdempotencyKeysColumns,
		PrimaryKey: []*schema.Column{IdempotencyKeysColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "idempotencykey_created_at",
				Unique:  false,
				Columns: []*schema.Column{IdempotencyKeysColumns[1]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "config_id", Type: field.TypeString},
		{Name: "current_page_id", Type: field.TypeString},
		{Name: "user_state", Type: field.TypeJSON},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "prolific_pid", Type: field.TypeString, Nullable: true},
		{Name: "prolific_study_id", Type: field.TypeString, Nullable: true},
		{Name: "prolific_session_id", Type: field.TypeString, Nullable: true},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_user_id_config_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[4], SessionsColumns[1], SessionsColumns[9]},
			},
			{
				Name:    "session_prolific_pid_config_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[5], SessionsColumns[1], SessionsColumns[9]},
			},
			{
				Name:    "session_config_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1]},
			},
		},
	}
	// ConfigsColumns holds the columns for the "configs" table.
	ConfigsColumns = []*schema.Column{
		{Name: "config_id", Type: field.TypeString, Unique: true},
		{Name: "owner", Type: field.TypeString, Nullable: true},
		{Name: "require_auth", Type: field.TypeBool, Default: false},
		{Name: "graph", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ConfigsTable holds the schema information for the "configs" table.
	ConfigsTable = &schema.Table{
		Name:       "configs",
		Columns:    ConfigsColumns,
		PrimaryKey: []*schema.Column{ConfigsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChatMessagesTable,
		EventsTable,
		GroupsTable,
		IdempotencyKeysTable,
		SessionsTable,
		ConfigsTable,
	}
)

func init() {
	ConfigsTable.Annotation = &entsql.Annotation{
		Table: "configs",
	}
}
