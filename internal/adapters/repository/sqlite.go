package repository

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/okian/feedcodec/pkg/logger"
	_ "modernc.org/sqlite"
)

// TimeFormat is the fixed-width RFC3339 format used for timestamps.
// Fixed width keeps lexicographic order equal to chronological order.
const TimeFormat = "2006-01-02T15:04:05.000000000Z"

// SQLiteStore implements Store on a SQLite database.
type SQLiteStore struct {
	db           *sql.DB
	maxOpenConns int
	now          func() time.Time
	logger       logger.Logger
}

var _ Store = (*SQLiteStore)(nil)

// Open opens the SQLite database at path with WAL mode and busy_timeout and
// applies the schema. An empty path opens a private in-memory database.
func Open(ctx context.Context, path string, opts ...Option) (*SQLiteStore, error) {
	s := &SQLiteStore{
		maxOpenConns: defaultMaxOpenConns,
		now:          time.Now,
		logger:       logger.Get().Named("store"),
	}
	for _, opt := range opts {
		opt(s)
	}

	var dsn string
	if path == "" {
		// One connection: shared-cache writers fail with SQLITE_LOCKED instead of waiting.
		s.maxOpenConns = 1
		dsn = fmt.Sprintf("file:feedcodec-%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)", uuid.NewString())
	} else {
		// URL-escape the path to handle special characters (?, #, spaces, etc.)
		dsn = fmt.Sprintf("file:%s?mode=rwc&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", url.PathEscape(path))
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenStore, err)
	}

	// Verify connection and PRAGMAs
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping: %w", ErrOpenStore, err)
	}
	db.SetMaxOpenConns(s.maxOpenConns)
	s.db = db

	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: migrate: %w", ErrOpenStore, err)
	}

	s.logger.Debug(ctx, "outcome store opened", logger.String("path", path))
	return s, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// journalMode returns the current journal mode (for testing).
func (s *SQLiteStore) journalMode(ctx context.Context) (string, error) {
	var mode string
	if err := s.db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode); err != nil {
		return "", err
	}
	return mode, nil
}
