// Package dedupe tracks which corpus records have already been checked.
package dedupe

import (
	"context"
	"sync"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultMaxSize = 50_000

// Deduper records seen record ids so each record is checked once.
type Deduper interface {
	// SeenAndRecord atomically checks if id was seen and records it if not.
	// Returns true if id was already seen, false if it was newly recorded.
	SeenAndRecord(ctx context.Context, id uuid.UUID) bool

	// Unrecord removes an id from the seen set, allowing it to be retried.
	// Used when a record was marked as seen but never reached a worker
	// (e.g., queue backpressure).
	Unrecord(ctx context.Context, id uuid.UUID)

	Size() int64
}

// inMemoryDeduper implements Deduper.
// For bounded mode (maxSize > 0): least recently seen ids are evicted first.
// For unbounded mode (maxSize <= 0): uses a plain map with no size limit.
type inMemoryDeduper struct {
	maxSize int

	recent *lru.Cache[uuid.UUID, struct{}]

	mu   sync.Mutex
	seen map[uuid.UUID]struct{}
}

// NewInMemoryDeduper creates a new in-memory deduper with configuration options.
func NewInMemoryDeduper(opts ...Option) Deduper {
	d := &inMemoryDeduper{
		maxSize: defaultMaxSize,
	}

	// Apply all options
	for _, opt := range opts {
		opt(d)
	}

	if d.maxSize > 0 {
		// lru.New only fails for a non-positive size.
		d.recent, _ = lru.New[uuid.UUID, struct{}](d.maxSize)
	} else {
		d.seen = make(map[uuid.UUID]struct{})
	}

	return d
}

// SeenAndRecord atomically checks if id was seen and records it if not.
func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, id uuid.UUID) bool {
	if d.recent != nil {
		// Get refreshes recency; ContainsOrAdd keeps the insert atomic.
		if _, ok := d.recent.Get(id); ok {
			return true
		}
		found, _ := d.recent.ContainsOrAdd(id, struct{}{})
		return found
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.seen[id]; exists {
		return true
	}
	d.seen[id] = struct{}{}
	return false
}

// Unrecord removes an id from the seen set.
func (d *inMemoryDeduper) Unrecord(_ context.Context, id uuid.UUID) {
	if d.recent != nil {
		d.recent.Remove(id)
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.seen, id)
}

// Size returns the current number of entries in the deduper.
func (d *inMemoryDeduper) Size() int64 {
	if d.recent != nil {
		return int64(d.recent.Len())
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	return int64(len(d.seen))
}
