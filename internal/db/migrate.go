package db

import (
	"database/sql"
	"fmt"
)

// migrations run in order; each entry is applied at most once, tracked in
// schema_migrations by index.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS plans (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL UNIQUE,
		document   TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}

// Migrate brings the schema up to date.
func Migrate(database *sql.DB) error {
	if _, err := database.Exec(
		`CREATE TABLE IF NOT EXISTS schema_migrations (version INTEGER PRIMARY KEY)`,
	); err != nil {
		return fmt.Errorf("creating schema_migrations: %w", err)
	}

	for i, stmt := range migrations {
		var applied int
		err := database.QueryRow(
			`SELECT COUNT(*) FROM schema_migrations WHERE version = ?`, i,
		).Scan(&applied)
		if err != nil {
			return fmt.Errorf("checking migration %d: %w", i, err)
		}
		if applied > 0 {
			continue
		}
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
		if _, err := database.Exec(
			`INSERT INTO schema_migrations (version) VALUES (?)`, i,
		); err != nil {
			return fmt.Errorf("recording migration %d: %w", i, err)
		}
	}
	return nil
}
