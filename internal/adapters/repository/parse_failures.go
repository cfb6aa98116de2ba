package repository

import (
	"context"
	"fmt"

	"github.com/okian/feedcodec/pkg/metrics"
)

// SaveParseFailure stores pf. Returns false if the same source line was
// already recorded.
func (s *SQLiteStore) SaveParseFailure(ctx context.Context, pf ParseFailure) (inserted bool, err error) {
	const query = `
	INSERT INTO parse_failures (source, line, error_msg, ts)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(source, line) DO NOTHING
	`

	result, err := s.db.ExecContext(ctx, query, pf.Source, int64(pf.Line), pf.Error, s.now().UTC().Format(TimeFormat))
	if err != nil {
		metrics.RecordStoreError()
		return false, fmt.Errorf("insert parse failure: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// ParseFailures returns the stored parse failures for source in line order.
func (s *SQLiteStore) ParseFailures(ctx context.Context, source string) ([]ParseFailure, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT source, line, error_msg FROM parse_failures
		WHERE source = ?
		ORDER BY line
	`, source)
	if err != nil {
		return nil, fmt.Errorf("query parse failures: %w", err)
	}
	defer rows.Close()

	var out []ParseFailure
	for rows.Next() {
		var pf ParseFailure
		if err := rows.Scan(&pf.Source, &pf.Line, &pf.Error); err != nil {
			return nil, fmt.Errorf("scan parse failure: %w", err)
		}
		out = append(out, pf)
	}
	return out, rows.Err()
}
