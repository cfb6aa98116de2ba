package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/okian/feedcodec/internal/domain/model"
	"github.com/okian/feedcodec/internal/domain/roundtrip"
	"github.com/okian/feedcodec/pkg/metrics"
)

// Save stores out. A later check of the same record replaces the earlier one.
func (s *SQLiteStore) Save(ctx context.Context, out roundtrip.Outcome) error { //nolint:gocritic // hugeParam: Outcome is a value type
	if out.ID == uuid.Nil {
		return ErrMissingID
	}

	const query = `
	INSERT INTO outcomes (id, type, status, kind, error_msg, diff, checked_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		type = excluded.type,
		status = excluded.status,
		kind = excluded.kind,
		error_msg = excluded.error_msg,
		diff = excluded.diff,
		checked_at = excluded.checked_at
	`

	var errMsg string
	if out.Err != nil {
		errMsg = out.Err.Error()
	}

	start := time.Now()
	_, err := s.db.ExecContext(ctx, query,
		out.ID.String(), int64(out.Type), string(out.Status), out.ErrKind, errMsg, out.Diff,
		s.now().UTC().Format(TimeFormat),
	)
	metrics.RecordStoreWriteLatency(float64(time.Since(start).Microseconds()) / 1000)
	if err != nil {
		metrics.RecordStoreError()
		return fmt.Errorf("save outcome: %w", err)
	}
	return nil
}

// Summary returns per-type counts ordered by type code.
func (s *SQLiteStore) Summary(ctx context.Context) ([]TypeSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			type,
			COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS ok,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS unhandled,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS decode_errors,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS mismatches
		FROM outcomes
		GROUP BY type
		ORDER BY type
	`, string(roundtrip.StatusOK), string(roundtrip.StatusUnhandled), string(roundtrip.StatusDecodeError), string(roundtrip.StatusMismatch))
	if err != nil {
		return nil, fmt.Errorf("query summary: %w", err)
	}
	defer rows.Close()

	var out []TypeSummary
	for rows.Next() {
		var (
			ts   TypeSummary
			code int64
		)
		if err := rows.Scan(&code, &ts.Total, &ts.OK, &ts.Unhandled, &ts.DecodeErrors, &ts.Mismatches); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		ts.Type = model.EventType(code)
		out = append(out, ts)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate summary: %w", err)
	}
	return out, nil
}

// Failures returns up to limit failed outcomes, oldest first.
func (s *SQLiteStore) Failures(ctx context.Context, limit int) ([]Failure, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, type, status, kind, error_msg, diff, checked_at
		FROM outcomes
		WHERE status IN (?, ?)
		ORDER BY checked_at, id
		LIMIT ?
	`, string(roundtrip.StatusDecodeError), string(roundtrip.StatusMismatch), int64(limit))
	if err != nil {
		return nil, fmt.Errorf("query failures: %w", err)
	}
	defer rows.Close()

	var out []Failure
	for rows.Next() {
		var (
			f              Failure
			id, status, ts string
			code           int64
		)
		if err := rows.Scan(&id, &code, &status, &f.Kind, &f.Error, &f.Diff, &ts); err != nil {
			return nil, fmt.Errorf("scan failure: %w", err)
		}
		if f.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse failure id %q: %w", id, err)
		}
		if f.CheckedAt, err = time.Parse(TimeFormat, ts); err != nil {
			return nil, fmt.Errorf("parse failure time %q: %w", ts, err)
		}
		f.Type = model.EventType(code)
		f.Status = roundtrip.Status(status)
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate failures: %w", err)
	}
	return out, nil
}
