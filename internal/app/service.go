// Package service wires the codec harness: records are deduplicated,
// queued, checked by a worker pool and their outcomes stored.
package service

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/okian/feedcodec/internal/adapters/corpus"
	"github.com/okian/feedcodec/internal/adapters/mq/queue"
	"github.com/okian/feedcodec/internal/adapters/mq/worker"
	"github.com/okian/feedcodec/internal/adapters/repository"
	"github.com/okian/feedcodec/internal/domain/codec"
	"github.com/okian/feedcodec/internal/domain/dedupe"
	"github.com/okian/feedcodec/internal/domain/model"
	"github.com/okian/feedcodec/internal/domain/roundtrip"
	"github.com/okian/feedcodec/pkg/logger"
	"github.com/okian/feedcodec/pkg/metrics"
)

// Source streams corpus records. *corpus.Source implements it.
type Source interface {
	Name() string
	Start(ctx context.Context) (<-chan model.RawEvent, <-chan error, error)
}

// Stats is a point-in-time view of the service.
type Stats struct {
	Started       bool
	Workers       int
	QueueCapacity int
	QueueLength   int
	DedupeSize    int64

	Checked      int64
	OK           int64
	Unhandled    int64
	DecodeErrors int64
	Mismatches   int64
	Duplicates   int64
	ParseErrors  int64
}

type counters struct {
	checked, ok, unhandled, decodeErrors, mismatches, duplicates, parseErrors atomic.Int64
}

func (c *counters) add(out roundtrip.Outcome) { //nolint:gocritic // hugeParam: Outcome is a value type
	c.checked.Add(1)
	switch out.Status {
	case roundtrip.StatusOK:
		c.ok.Add(1)
	case roundtrip.StatusUnhandled:
		c.unhandled.Add(1)
	case roundtrip.StatusDecodeError:
		c.decodeErrors.Add(1)
	case roundtrip.StatusMismatch:
		c.mismatches.Add(1)
	}
}

// Service runs round-trip validation over submitted records and corpora.
type Service struct {
	mu sync.RWMutex

	// Core components
	store      repository.Store
	deduper    dedupe.Deduper
	queue      queue.Queue
	workerPool *worker.Pool
	registry   *codec.Registry

	// Configuration
	workerCount        int
	queueSize          int
	dedupeSize         int
	storePath          string
	stopOnFirstFailure bool

	// State
	started bool
	totals  counters

	runsMu sync.Mutex
	runs   map[uuid.UUID]*run

	// Logging
	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount: runtime.NumCPU(),
		queueSize:   10_000,
		dedupeSize:  100_000,
		runs:        make(map[uuid.UUID]*run),
		logger:      nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}

	s.logger.Info(ctx, "starting validation service...")

	store, err := repository.Open(ctx, s.storePath)
	if err != nil {
		return fmt.Errorf("start service: %w", err)
	}
	s.store = store
	s.deduper = dedupe.NewInMemoryDeduper(
		dedupe.WithMaxSize(s.dedupeSize),
	)
	s.queue = queue.NewInMemoryQueue(
		queue.WithCapacity(s.queueSize),
	)

	s.workerPool = worker.NewPool(s.workerCount, s.queue, roundtrip.NewChecker(s.registry), recorder{s})
	s.workerPool.Start(ctx)

	s.started = true
	s.logger.Info(ctx, "validation service started",
		logger.Int("workers", s.workerCount),
		logger.Int("queueSize", s.queueSize),
		logger.Int("dedupeSize", s.dedupeSize),
		logger.String("store", s.storePath),
	)

	return nil
}

// Stop drains the queue and shuts the service down.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	ctx := context.Background()
	s.logger.Info(ctx, "stopping validation service...")

	// Closing the queue lets workers drain what is already queued
	if s.workerPool != nil {
		if err := s.workerPool.Shutdown(ctx); err != nil {
			s.logger.Warn(ctx, "worker pool shutdown", logger.Error(err))
		}
	}

	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn(ctx, "closing outcome store", logger.Error(err))
		}
	}

	s.started = false
	s.logger.Info(ctx, "validation service stopped")
}

// Submit queues one record for checking without blocking.
func (s *Service) Submit(ctx context.Context, raw model.RawEvent) error { //nolint:gocritic // hugeParam: RawEvent must be passed by value for channel semantics
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return ErrNotStarted
	}
	if s.seenAndRecord(ctx, raw.ID) {
		return ErrDuplicate
	}
	if !s.queue.Enqueue(ctx, raw) {
		s.deduper.Unrecord(ctx, raw.ID)
		return ErrQueueFull
	}
	return nil
}

// Validate checks every record of src and returns once all of them have
// been recorded. Records already checked by this service are skipped.
func (s *Service) Validate(ctx context.Context, src Source) (Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return Report{}, ErrNotStarted
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	r := newRun(src.Name(), s.stopOnFirstFailure, cancel)
	records, errs, err := src.Start(runCtx)
	if err != nil {
		return Report{}, fmt.Errorf("validate %s: %w", src.Name(), err)
	}

	s.logger.Info(ctx, "validating corpus", logger.String("source", src.Name()))

read:
	for records != nil || errs != nil {
		select {
		case <-runCtx.Done():
			break read
		case rec, ok := <-records:
			if !ok {
				records = nil
				continue
			}
			if err := s.dispatch(runCtx, r, rec); err != nil {
				if runCtx.Err() != nil {
					break read
				}
				r.finish()
				return r.snapshot(), fmt.Errorf("validate %s: %w", src.Name(), err)
			}
		case perr, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			s.parseFailure(ctx, src.Name(), perr)
			r.parseError()
		}
	}
	r.finish()

	select {
	case <-r.idle:
	case <-ctx.Done():
		return r.snapshot(), ctx.Err()
	}

	rep := r.snapshot()
	if err := ctx.Err(); err != nil {
		return rep, err
	}
	s.logger.Info(ctx, "corpus validated",
		logger.String("source", rep.Source),
		logger.Int("checked", rep.Checked),
		logger.Int("ok", rep.OK),
		logger.Int("unhandled", rep.Unhandled),
		logger.Int("decode_errors", rep.DecodeErrors),
		logger.Int("mismatches", rep.Mismatches),
		logger.Int("duplicates", rep.Duplicates),
		logger.Int("parse_errors", rep.ParseErrors),
		logger.Bool("stopped", rep.Stopped),
	)
	return rep, nil
}

// dispatch hands one corpus record to the queue on behalf of r.
func (s *Service) dispatch(ctx context.Context, r *run, rec model.RawEvent) error { //nolint:gocritic // hugeParam: RawEvent must be passed by value for channel semantics
	if s.seenAndRecord(ctx, rec.ID) {
		r.duplicate()
		return nil
	}

	// Track before enqueueing so the outcome cannot arrive untracked.
	r.enqueued()
	s.runsMu.Lock()
	s.runs[rec.ID] = r
	s.runsMu.Unlock()

	if err := s.queue.EnqueueWait(ctx, rec); err != nil {
		s.runsMu.Lock()
		delete(s.runs, rec.ID)
		s.runsMu.Unlock()
		r.dropped()
		s.deduper.Unrecord(ctx, rec.ID)
		return err
	}
	return nil
}

func (s *Service) parseFailure(ctx context.Context, source string, err error) {
	s.totals.parseErrors.Add(1)

	var pe *corpus.ParseError
	if !errors.As(err, &pe) {
		s.logger.Warn(ctx, "corpus error", logger.String("source", source), logger.Error(err))
		return
	}
	s.logger.Warn(ctx, "unreadable corpus record",
		logger.String("source", source),
		logger.Int("line", pe.Line),
		logger.Error(pe.Err),
	)
	if _, serr := s.store.SaveParseFailure(ctx, repository.ParseFailure{Source: source, Line: pe.Line, Error: pe.Error()}); serr != nil {
		s.logger.Error(ctx, "failed to store parse failure", logger.Error(serr))
	}
}

// seenAndRecord checks the record id against the dedupe cache.
func (s *Service) seenAndRecord(ctx context.Context, id uuid.UUID) bool {
	seen := s.deduper.SeenAndRecord(ctx, id)
	if seen {
		s.totals.duplicates.Add(1)
		metrics.RecordDeduplicated()
		s.logger.Debug(ctx, "duplicate record, skipping", logger.UUID("record_id", id))
	}
	return seen
}

// Summary returns stored per-type counts.
func (s *Service) Summary(ctx context.Context) ([]repository.TypeSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, ErrNotStarted
	}
	return s.store.Summary(ctx)
}

// Failures returns up to limit stored failures, oldest first.
func (s *Service) Failures(ctx context.Context, limit int) ([]repository.Failure, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, ErrNotStarted
	}
	return s.store.Failures(ctx, limit)
}

// ParseFailures returns the stored unreadable records of source.
func (s *Service) ParseFailures(ctx context.Context, source string) ([]repository.ParseFailure, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, ErrNotStarted
	}
	return s.store.ParseFailures(ctx, source)
}

// Stats returns service statistics for monitoring.
func (s *Service) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{
		Started:       s.started,
		Workers:       s.workerCount,
		QueueCapacity: s.queueSize,
		Checked:       s.totals.checked.Load(),
		OK:            s.totals.ok.Load(),
		Unhandled:     s.totals.unhandled.Load(),
		DecodeErrors:  s.totals.decodeErrors.Load(),
		Mismatches:    s.totals.mismatches.Load(),
		Duplicates:    s.totals.duplicates.Load(),
		ParseErrors:   s.totals.parseErrors.Load(),
	}
	if s.started {
		st.QueueLength = s.queue.Len(context.Background())
		st.DedupeSize = s.deduper.Size()
	}
	return st
}

// recorder receives worker outcomes for the service.
type recorder struct {
	s *Service
}

// Record stores out and settles the run that queued it. The run is settled
// even when the store fails so Validate never waits on a lost outcome.
func (rc recorder) Record(ctx context.Context, out roundtrip.Outcome) error { //nolint:gocritic // hugeParam: Outcome is a value type
	s := rc.s
	s.totals.add(out)
	err := s.store.Save(ctx, out)

	s.runsMu.Lock()
	r := s.runs[out.ID]
	delete(s.runs, out.ID)
	s.runsMu.Unlock()
	if r != nil {
		r.complete(out)
	}
	return err
}
