// Package dedupe defines the interface for event idempotency tracking.
//
// A GameEvent is consumed exactly once per session; replays of an
// already-processed event id are dropped by the orchestrator.
package dedupe

import (
	"context"
	"sync"
)

// Default deduper configuration constants.
const defaultMaxSize = 50000

// Deduper records seen event IDs to ensure at-most-once processing.
type Deduper interface {
	// SeenAndRecord atomically checks if id was seen and records it if not.
	// Returns true if id was already seen, false if it was newly recorded.
	SeenAndRecord(ctx context.Context, id string) bool

	// Unrecord removes an ID from the seen set, allowing a retry after an
	// event was recorded but failed downstream.
	Unrecord(ctx context.Context, id string)

	// Size returns the number of ids currently tracked.
	Size() int
}

// inMemoryDeduper implements Deduper with a bounded map plus a FIFO
// ring of ids driving eviction. maxSize <= 0 disables eviction. The
// map stores each id's ring slot so Unrecord can vacate it; an id
// occupies at most one slot at a time.
type inMemoryDeduper struct {
	mu      sync.Mutex
	seen    map[string]int // id -> ring slot, -1 when eviction is disabled
	order   []string
	next    int
	maxSize int
}

// NewInMemoryDeduper creates a deduper with configuration options.
func NewInMemoryDeduper(opts ...Option) Deduper {
	d := &inMemoryDeduper{
		maxSize: defaultMaxSize,
	}

	for _, opt := range opts {
		opt(d)
	}

	d.seen = make(map[string]int)
	if d.maxSize > 0 {
		d.order = make([]string, d.maxSize)
	}
	return d
}

// SeenAndRecord atomically checks and records an id.
func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[id]; ok {
		return true
	}

	slot := -1
	if d.maxSize > 0 {
		// Evict the oldest slot before reusing it.
		if old := d.order[d.next]; old != "" {
			delete(d.seen, old)
		}
		d.order[d.next] = id
		slot = d.next
		d.next = (d.next + 1) % d.maxSize
	}
	d.seen[id] = slot
	return false
}

// Unrecord removes an id from the seen set and vacates its ring slot,
// so a later re-record of the same id cannot be evicted early by a
// stale occurrence.
func (d *inMemoryDeduper) Unrecord(_ context.Context, id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	slot, ok := d.seen[id]
	if !ok {
		return
	}
	if slot >= 0 {
		d.order[slot] = ""
	}
	delete(d.seen, id)
}

// Size returns the number of tracked ids.
func (d *inMemoryDeduper) Size() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.seen)
}
