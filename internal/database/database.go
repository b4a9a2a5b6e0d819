// Package database provides the audit trail database connection
package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// DB wraps the SQL database connection
type DB struct {
	*sql.DB
}

// New creates a new database connection
func New(driver, dsn string) (*DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db}, nil
}

// Migrate creates all required tables
func (db *DB) Migrate() error {
	schema := `
	-- Settled rounds, one row per resolve
	CREATE TABLE IF NOT EXISTS rounds (
		id UUID PRIMARY KEY,
		player VARCHAR(255) NOT NULL,
		game VARCHAR(50) NOT NULL,
		outcome TEXT NOT NULL,
		total_staked BIGINT NOT NULL,
		total_won BIGINT NOT NULL,
		new_balance BIGINT NOT NULL,
		per_bet JSONB,
		settled_at TIMESTAMP NOT NULL
	);

	-- Significant events
	CREATE TABLE IF NOT EXISTS audit_events (
		id UUID PRIMARY KEY,
		type VARCHAR(100) NOT NULL,
		severity VARCHAR(20) NOT NULL,
		timestamp TIMESTAMP NOT NULL,
		player VARCHAR(255),
		description TEXT NOT NULL,
		data JSONB
	);

	CREATE INDEX IF NOT EXISTS idx_rounds_player ON rounds(player);
	CREATE INDEX IF NOT EXISTS idx_rounds_settled ON rounds(settled_at);
	CREATE INDEX IF NOT EXISTS idx_audit_events_timestamp ON audit_events(timestamp);
	CREATE INDEX IF NOT EXISTS idx_audit_events_player ON audit_events(player);
	`

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// Reset drops all tables (for testing)
func (db *DB) Reset() error {
	_, err := db.Exec(`
		DROP TABLE IF EXISTS audit_events CASCADE;
		DROP TABLE IF EXISTS rounds CASCADE;
	`)
	return err
}
