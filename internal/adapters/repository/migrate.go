package repository

import (
	"context"
	"fmt"
)

// migrate creates the schema if it does not exist.
func (s *SQLiteStore) migrate(ctx context.Context) error {
	if err := s.createOutcomesTable(ctx); err != nil {
		return err
	}
	return s.createParseFailuresTable(ctx)
}

func (s *SQLiteStore) createOutcomesTable(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS outcomes (
		id         TEXT PRIMARY KEY,
		type       INTEGER NOT NULL,
		status     TEXT NOT NULL,
		kind       TEXT NOT NULL DEFAULT '',
		error_msg  TEXT NOT NULL DEFAULT '',
		diff       TEXT NOT NULL DEFAULT '',
		checked_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_outcomes_type ON outcomes(type);
	CREATE INDEX IF NOT EXISTS idx_outcomes_status_checked ON outcomes(status, checked_at);
	`

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create outcomes table: %w", err)
	}
	return nil
}

func (s *SQLiteStore) createParseFailuresTable(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS parse_failures (
		id        INTEGER PRIMARY KEY,
		source    TEXT NOT NULL,
		line      INTEGER NOT NULL,
		error_msg TEXT NOT NULL,
		ts        TEXT NOT NULL,
		UNIQUE(source, line)
	);
	`

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create parse_failures table: %w", err)
	}
	return nil
}
