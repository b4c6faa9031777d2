package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable efficient search over logged message content and session inputs.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for log row content search (trace viewer text search)
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_log_rows_content_gin
		ON log_rows USING gin(to_tsvector('english', COALESCE(content_json::text, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create log content GIN index: %w", err)
	}

	// GIN index for session input search (dashboard filtering)
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_cascade_sessions_input_gin
		ON cascade_sessions USING gin(to_tsvector('english', COALESCE(input::text, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create session input GIN index: %w", err)
	}

	return nil
}
