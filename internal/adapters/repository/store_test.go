package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/okian/feedcodec/internal/domain/model"
	"github.com/okian/feedcodec/internal/domain/roundtrip"
	"github.com/okian/feedcodec/pkg/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init(logger.WithWriter(os.Stderr), logger.WithLevel("error")); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// tick returns a clock advancing one second per call.
func tick() func() time.Time {
	var (
		mu sync.Mutex
		t  = time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)
	)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Second)
		return t
	}
}

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "outcomes.sqlite"), WithClock(tick()))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func outcome(typ model.EventType, status roundtrip.Status) roundtrip.Outcome {
	return roundtrip.Outcome{ID: uuid.New(), Type: typ, Status: status}
}

func TestOpen_CreatesDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.sqlite")

	s, err := Open(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}

	mode, err := s.journalMode(context.Background())
	if err != nil {
		t.Fatalf("query journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want %q", mode, "wal")
	}

	// Reopening applies the schema again without error.
	_ = s.Close()
	again, err := Open(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	_ = again.Close()
}

func TestOpen_InMemory(t *testing.T) {
	ctx := context.Background()
	a, err := Open(ctx, "")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer a.Close()
	b, err := Open(ctx, "")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer b.Close()

	if err := a.Save(ctx, outcome(model.TypeHit, roundtrip.StatusOK)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	sum, err := b.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if len(sum) != 0 {
		t.Errorf("in-memory stores share state: %+v", sum)
	}
}

func TestSave_ReplacesEarlierOutcome(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	out := outcome(model.TypeHit, roundtrip.StatusMismatch)
	out.Diff = "-a +b"
	if err := s.Save(ctx, out); err != nil {
		t.Fatalf("first save: %v", err)
	}
	out.Status = roundtrip.StatusOK
	out.Diff = ""
	if err := s.Save(ctx, out); err != nil {
		t.Fatalf("second save: %v", err)
	}

	sum, err := s.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if len(sum) != 1 || sum[0].Total != 1 || sum[0].OK != 1 || sum[0].Mismatches != 0 {
		t.Errorf("summary = %+v, want one ok outcome", sum)
	}

	if err := s.Save(ctx, roundtrip.Outcome{Type: model.TypeHit}); !errors.Is(err, ErrMissingID) {
		t.Errorf("expected ErrMissingID, got %v", err)
	}
}

func TestSummary_GroupsByType(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, o := range []roundtrip.Outcome{
		outcome(model.TypeHit, roundtrip.StatusOK),
		outcome(model.TypeHit, roundtrip.StatusOK),
		outcome(model.TypeHit, roundtrip.StatusMismatch),
		outcome(model.TypeWalk, roundtrip.StatusDecodeError),
		outcome(model.TypeWeatherChange, roundtrip.StatusUnhandled),
	} {
		if err := s.Save(ctx, o); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	sum, err := s.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	want := map[model.EventType]TypeSummary{
		model.TypeHit:           {Type: model.TypeHit, Total: 3, OK: 2, Mismatches: 1},
		model.TypeWalk:          {Type: model.TypeWalk, Total: 1, DecodeErrors: 1},
		model.TypeWeatherChange: {Type: model.TypeWeatherChange, Total: 1, Unhandled: 1},
	}
	if len(sum) != len(want) {
		t.Fatalf("got %d rows, want %d: %+v", len(sum), len(want), sum)
	}
	for i, row := range sum {
		if i > 0 && sum[i-1].Type >= row.Type {
			t.Errorf("rows not ordered by type: %+v", sum)
		}
		if row != want[row.Type] {
			t.Errorf("row %v = %+v, want %+v", row.Type, row, want[row.Type])
		}
	}
}

func TestFailures(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := outcome(model.TypeHit, roundtrip.StatusDecodeError)
	first.ErrKind = "description_parse"
	first.Err = errors.New("could not parse")
	second := outcome(model.TypeWalk, roundtrip.StatusMismatch)
	second.Diff = "-Description +Description"
	for _, o := range []roundtrip.Outcome{first, outcome(model.TypeHit, roundtrip.StatusOK), second} {
		if err := s.Save(ctx, o); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	got, err := s.Failures(ctx, 10)
	if err != nil {
		t.Fatalf("Failures: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d failures, want 2", len(got))
	}
	if got[0].ID != first.ID || got[0].Kind != "description_parse" || got[0].Error != "could not parse" {
		t.Errorf("first failure = %+v", got[0])
	}
	if got[1].ID != second.ID || got[1].Status != roundtrip.StatusMismatch || got[1].Diff != second.Diff {
		t.Errorf("second failure = %+v", got[1])
	}
	if !got[0].CheckedAt.Before(got[1].CheckedAt) {
		t.Errorf("failures not in check order: %v, %v", got[0].CheckedAt, got[1].CheckedAt)
	}

	limited, err := s.Failures(ctx, 1)
	if err != nil || len(limited) != 1 {
		t.Errorf("limit 1: got %d, %v", len(limited), err)
	}
	if _, err := s.Failures(ctx, 0); !errors.Is(err, ErrInvalidLimit) {
		t.Errorf("expected ErrInvalidLimit, got %v", err)
	}
}

func TestParseFailures_Dedupe(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	pf := ParseFailure{Source: "feed.jsonl", Line: 7, Error: "unexpected end of JSON input"}
	inserted, err := s.SaveParseFailure(ctx, pf)
	if err != nil || !inserted {
		t.Fatalf("first insert: inserted=%v err=%v", inserted, err)
	}
	inserted, err = s.SaveParseFailure(ctx, pf)
	if err != nil || inserted {
		t.Fatalf("duplicate insert: inserted=%v err=%v", inserted, err)
	}
	if _, err := s.SaveParseFailure(ctx, ParseFailure{Source: "feed.jsonl", Line: 2, Error: "bad"}); err != nil {
		t.Fatalf("second line: %v", err)
	}

	got, err := s.ParseFailures(ctx, "feed.jsonl")
	if err != nil {
		t.Fatalf("ParseFailures: %v", err)
	}
	if len(got) != 2 || got[0].Line != 2 || got[1].Line != 7 {
		t.Errorf("parse failures = %+v", got)
	}
	other, err := s.ParseFailures(ctx, "other.json")
	if err != nil || len(other) != 0 {
		t.Errorf("other source: %+v, %v", other, err)
	}
}

func TestSave_Concurrent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				if err := s.Save(ctx, outcome(model.TypeStrike, roundtrip.StatusOK)); err != nil {
					t.Errorf("Save: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	sum, err := s.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if len(sum) != 1 || sum[0].Total != 100 {
		t.Errorf("summary = %+v, want 100 strikes", sum)
	}
}
