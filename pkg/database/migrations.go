package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates JSONB GIN indexes for PostgreSQL. The session
// user_state index backs group-membership lookups (user_state @> queries
// on chat_group_id); the event data index backs researcher-side analysis
// queries.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_sessions_user_state_gin
		ON sessions USING gin(user_state)`)
	if err != nil {
		return fmt.Errorf("failed to create user_state GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_events_data_gin
		ON events USING gin(data)`)
	if err != nil {
		return fmt.Errorf("failed to create event data GIN index: %w", err)
	}

	return nil
}

// CreatePartialUniqueIndexes creates the partial unique indexes that back
// idempotent writes. These must match the constraints in
// 20260801000000_init.up.sql; they are repeated here so test databases
// created straight from the Ent schema get the same dedup guarantees.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS events_idempotency_key_unique
		ON events (idempotency_key)
		WHERE idempotency_key IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create event idempotency index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS chat_messages_idempotency_key_unique
		ON chat_messages (idempotency_key)
		WHERE idempotency_key IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create chat message idempotency index: %w", err)
	}

	return nil
}
