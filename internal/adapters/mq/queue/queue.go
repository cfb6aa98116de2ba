// Package queue defines the contract for enqueuing and consuming corpus
// records waiting to be checked.
package queue

import (
	"context"
	"sync"

	"github.com/okian/feedcodec/internal/domain/model"
	"github.com/okian/feedcodec/pkg/logger"
	"github.com/okian/feedcodec/pkg/metrics"
)

// Default queue configuration constants.
const (
	defaultQueueCapacity = 10_000
)

// Record is the payload type flowing through the queue.
type Record = model.RawEvent

// Queue provides enqueue and channel-based dequeue semantics.
type Queue interface {
	// Enqueue adds a record without blocking.
	// Returns false if the queue is full or closed and the record was not enqueued.
	Enqueue(ctx context.Context, r Record) bool

	// EnqueueWait adds a record, blocking until there is room, the queue
	// is closed (ErrClosed) or ctx is done.
	EnqueueWait(ctx context.Context, r Record) error

	// Dequeue returns a channel that will receive records as they become available.
	// The channel will be closed when the queue is closed and drained.
	Dequeue(ctx context.Context) <-chan Record

	// Len returns the current number of queued records.
	Len(ctx context.Context) int

	// Close gracefully shuts down the queue.
	// After closing, no new records can be enqueued and the dequeue channel will be closed.
	Close() error

	// IsClosed returns true if the queue has been closed.
	IsClosed() bool
}

// InMemoryQueue implements Queue using a buffered channel.
type InMemoryQueue struct {
	records  chan Record
	capacity int

	mu        sync.RWMutex
	closed    bool
	done      chan struct{}
	closeOnce sync.Once

	logger logger.Logger
}

// NewInMemoryQueue creates a new in-memory queue with configuration options.
func NewInMemoryQueue(opts ...Option) *InMemoryQueue {
	q := &InMemoryQueue{
		capacity: defaultQueueCapacity,
		done:     make(chan struct{}),
		logger:   logger.Get().Named("queue"),
	}

	// Apply all options
	for _, opt := range opts {
		opt(q)
	}

	q.records = make(chan Record, q.capacity)

	// Initialize metrics
	metrics.UpdateQueueCapacity(q.capacity)
	metrics.UpdateQueueSize(0)
	metrics.UpdateQueueUtilization(0.0)

	return q
}

// Enqueue adds a record to the queue without blocking.
func (q *InMemoryQueue) Enqueue(ctx context.Context, r Record) bool { //nolint:gocritic // hugeParam: Record must be passed by value for channel semantics
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		metrics.RecordQueueEnqueueError()
		return false
	}

	select {
	case q.records <- r:
		q.enqueued()
		return true
	case <-ctx.Done():
		metrics.RecordQueueEnqueueError()
		return false
	default:
		metrics.RecordQueueEnqueueError()
		q.logger.Debug(ctx, "queue full", logger.UUID("record_id", r.ID))
		return false
	}
}

// EnqueueWait adds a record to the queue, waiting for room.
func (q *InMemoryQueue) EnqueueWait(ctx context.Context, r Record) error { //nolint:gocritic // hugeParam: Record must be passed by value for channel semantics
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		metrics.RecordQueueEnqueueError()
		return ErrClosed
	}

	select {
	case q.records <- r:
		q.enqueued()
		return nil
	case <-q.done:
		metrics.RecordQueueEnqueueError()
		return ErrClosed
	case <-ctx.Done():
		metrics.RecordQueueEnqueueError()
		return ctx.Err()
	}
}

func (q *InMemoryQueue) enqueued() {
	metrics.RecordQueueEnqueue()
	q.updateSize()
}

func (q *InMemoryQueue) updateSize() int {
	size := len(q.records)
	metrics.UpdateQueueSize(size)
	metrics.UpdateQueueUtilization(float64(size) / float64(q.capacity))
	return size
}

// Dequeue returns a channel that will receive records as they become available.
func (q *InMemoryQueue) Dequeue(ctx context.Context) <-chan Record {
	// Wrap the channel to track dequeue metrics
	out := make(chan Record)
	go func() {
		defer close(out)
		for r := range q.records {
			select {
			case out <- r:
				metrics.RecordQueueDequeue()
				q.updateSize()
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Len returns the current number of queued records.
func (q *InMemoryQueue) Len(_ context.Context) int {
	return q.updateSize()
}

// Close gracefully shuts down the queue. Records already queued are still
// delivered to consumers.
func (q *InMemoryQueue) Close() error {
	// Release blocked producers before taking the write lock they hold shared.
	q.closeOnce.Do(func() { close(q.done) })

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil // already closed
	}

	close(q.records)
	q.closed = true

	return nil
}

// IsClosed returns true if the queue has been closed.
func (q *InMemoryQueue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}
