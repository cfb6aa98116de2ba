package repository

import (
	"time"

	"github.com/okian/feedcodec/pkg/logger"
)

// Default store configuration constants.
const (
	defaultMaxOpenConns = 4
)

// Option applies a configuration option to the SQLiteStore.
type Option func(*SQLiteStore)

// WithMaxOpenConns bounds the connection pool. WAL mode serializes writers, so
// extra connections only add read parallelism.
func WithMaxOpenConns(n int) Option {
	return func(s *SQLiteStore) {
		if n > 0 {
			s.maxOpenConns = n
		}
	}
}

// WithClock sets the time source used for checked_at stamps.
func WithClock(now func() time.Time) Option {
	return func(s *SQLiteStore) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets a custom logger for the store.
func WithLogger(l logger.Logger) Option {
	return func(s *SQLiteStore) {
		if l != nil {
			s.logger = l
		}
	}
}
