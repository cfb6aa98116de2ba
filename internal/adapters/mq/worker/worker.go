// Package worker runs round-trip checks on queued corpus records.
package worker

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/feedcodec/internal/adapters/mq/queue"
	"github.com/okian/feedcodec/internal/domain/roundtrip"
	"github.com/okian/feedcodec/pkg/logger"
	"github.com/okian/feedcodec/pkg/metrics"
)

// Default worker configuration constants.
const (
	poolShutdownTimeout   = 30 * time.Second
	workerShutdownTimeout = 5 * time.Second
)

// Checker validates one record.
type Checker interface {
	Check(raw queue.Record) roundtrip.Outcome
}

// Recorder receives every outcome a worker produces.
type Recorder interface {
	Record(ctx context.Context, out roundtrip.Outcome) error
}

// Queue defines how workers receive records.
type Queue interface {
	Dequeue(ctx context.Context) <-chan queue.Record
}

// Worker checks records and hands outcomes to a Recorder.
type Worker interface {
	// Run starts the worker loop until ctx is canceled or the queue is drained.
	Run(ctx context.Context)

	// Shutdown stops the worker after the record in hand.
	Shutdown(ctx context.Context) error
}

type activeGauge struct {
	n atomic.Int64
}

func (a *activeGauge) add(delta int64) {
	if a == nil {
		return
	}
	metrics.UpdateWorkerActiveCount(int(a.n.Add(delta)))
}

// InMemoryWorker implements Worker.
type InMemoryWorker struct {
	queue    Queue
	checker  Checker
	recorder Recorder
	name     string
	active   *activeGauge

	// Shutdown control
	shutdown     chan struct{}
	shutdownOnce sync.Once
	done         chan struct{}

	// Logging
	logger logger.Logger
}

// NewInMemoryWorker creates a new worker with configuration options.
func NewInMemoryWorker(queue Queue, checker Checker, recorder Recorder, opts ...Option) *InMemoryWorker {
	w := &InMemoryWorker{
		queue:    queue,
		checker:  checker,
		recorder: recorder,
		name:     "worker", // default name
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
		logger:   logger.Get().Named("worker"), // will be updated by options
	}

	// Apply all options
	for _, opt := range opts {
		opt(w)
	}

	// Set up logger with worker name if not already set
	if w.name != "worker" {
		w.logger = w.logger.Named(w.name)
	}

	return w
}

// Run starts the worker loop.
func (w *InMemoryWorker) Run(ctx context.Context) {
	defer close(w.done)

	records := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case rec, ok := <-records:
			if !ok {
				// Queue closed and drained
				return
			}
			if err := w.process(ctx, rec); err != nil {
				w.logger.Error(ctx, "error recording outcome", logger.Error(err))
			}
		}
	}
}

// Shutdown stops the worker.
func (w *InMemoryWorker) Shutdown(ctx context.Context) error {
	w.shutdownOnce.Do(func() { close(w.shutdown) })

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		w.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

// process checks a single record.
func (w *InMemoryWorker) process(ctx context.Context, rec queue.Record) error { //nolint:gocritic // hugeParam: Record must be passed by value for channel semantics
	w.active.add(1)
	defer w.active.add(-1)

	start := time.Now()
	out := w.checker.Check(rec)
	metrics.RecordValidationLatency(float64(time.Since(start).Microseconds()) / 1000)

	code := int64(out.Type)
	metrics.RecordChecked(code, string(out.Status))
	switch out.Status {
	case roundtrip.StatusDecodeError:
		metrics.RecordDecodeError(code, out.ErrKind)
	case roundtrip.StatusMismatch:
		metrics.RecordMismatch(code)
	case roundtrip.StatusUnhandled:
		metrics.RecordUnhandled(code)
	}
	if out.Failed() {
		w.logger.Debug(ctx, "record did not round-trip",
			logger.UUID("record_id", out.ID),
			logger.Stringer("type", out.Type),
			logger.String("status", string(out.Status)),
			logger.String("kind", out.ErrKind),
		)
	}

	if err := w.recorder.Record(ctx, out); err != nil {
		metrics.RecordWorkerError()
		return fmt.Errorf("record outcome %s: %w", out.ID, err)
	}
	return nil
}

// Pool manages multiple workers.
type Pool struct {
	workers []*InMemoryWorker
	queue   Queue
	active  activeGauge

	// Logging
	logger logger.Logger
}

// NewPool creates a new worker pool.
func NewPool(workerCount int, queue Queue, checker Checker, recorder Recorder) *Pool {
	if workerCount < 1 {
		workerCount = runtime.NumCPU()
	}

	pool := &Pool{
		workers: make([]*InMemoryWorker, workerCount),
		queue:   queue,
		logger:  logger.Get().Named("worker-pool"),
	}

	for i := 0; i < workerCount; i++ {
		pool.workers[i] = NewInMemoryWorker(
			queue,
			checker,
			recorder,
			WithName("worker-"+strconv.Itoa(i)),
			withActive(&pool.active),
		)
	}

	metrics.UpdateWorkerCount(workerCount)
	metrics.UpdateWorkerActiveCount(0)

	return pool
}

// Size returns the number of workers.
func (p *Pool) Size() int {
	return len(p.workers)
}

// Start starts all workers in the pool.
func (p *Pool) Start(ctx context.Context) {
	for _, worker := range p.workers {
		go worker.Run(ctx)
	}
}

// Stop stops all workers without draining the queue.
func (p *Pool) Stop(ctx context.Context) {
	for i, worker := range p.workers {
		if err := worker.Shutdown(ctx); err != nil {
			p.logger.Warn(ctx, "worker stop timed out", logger.Int("worker_id", i))
		}
	}
}

// Shutdown closes the queue and waits for the workers to drain it.
// Workers still busy when ctx expires are stopped.
func (p *Pool) Shutdown(ctx context.Context) error {
	// First close the queue to stop new records
	if closer, ok := p.queue.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			p.logger.Error(ctx, "error closing queue", logger.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, poolShutdownTimeout)
	defer cancel()

	var timedOut bool
	for i, worker := range p.workers {
		select {
		case <-worker.done:
		case <-shutdownCtx.Done():
			timedOut = true
			p.logger.Warn(ctx, "worker drain timed out", logger.Int("worker_id", i))
		}
	}
	if timedOut {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), workerShutdownTimeout)
		defer stopCancel()
		p.Stop(stopCtx)
		return fmt.Errorf("drain queue: %w", shutdownCtx.Err())
	}
	return nil
}
