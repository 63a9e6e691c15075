package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates the PostgreSQL partial unique indexes
// that Ent/Atlas cannot express. Core-memory block uniqueness is
// scope-dependent: user-scoped blocks key on (user_id, block_type), while
// session-scoped blocks key on (session_id, block_type).
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS core_memory_blocks_user_scope
		ON core_memory_blocks (user_id, block_type)
		WHERE session_id IS NULL AND user_id IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create user-scoped core memory index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS core_memory_blocks_session_scope
		ON core_memory_blocks (session_id, block_type)
		WHERE session_id IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create session-scoped core memory index: %w", err)
	}

	return nil
}
