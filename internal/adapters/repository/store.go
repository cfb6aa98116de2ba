// Package repository persists round-trip outcomes.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/okian/feedcodec/internal/domain/model"
	"github.com/okian/feedcodec/internal/domain/roundtrip"
)

// TypeSummary aggregates the outcomes stored for one type code.
type TypeSummary struct {
	Type         model.EventType
	Total        int
	OK           int
	Unhandled    int
	DecodeErrors int
	Mismatches   int
}

// Failure is a stored outcome that did not round-trip.
type Failure struct {
	ID        uuid.UUID
	Type      model.EventType
	Status    roundtrip.Status
	Kind      string
	Error     string
	Diff      string
	CheckedAt time.Time
}

// ParseFailure is a corpus line that was not a valid record.
type ParseFailure struct {
	Source string
	Line   int
	Error  string
}

// Store provides read/write access to validation outcomes.
type Store interface {
	// Save stores out, replacing any earlier outcome for the same record id.
	Save(ctx context.Context, out roundtrip.Outcome) error

	// Summary returns per-type counts ordered by type code.
	Summary(ctx context.Context) ([]TypeSummary, error)

	// Failures returns up to limit failed outcomes, oldest first.
	Failures(ctx context.Context, limit int) ([]Failure, error)

	// SaveParseFailure stores an unreadable corpus line once per source and line.
	SaveParseFailure(ctx context.Context, pf ParseFailure) (inserted bool, err error)

	// ParseFailures returns the stored parse failures for source in line order.
	ParseFailures(ctx context.Context, source string) ([]ParseFailure, error)

	Close() error
}
