// Package feed defines the contract for the bounded event intake between
// the game simulation layer and the engine loop.
//
// The feed has exactly one consumer (the game loop runner), preserving
// the engine's single-logical-update-stream model.
package feed

import (
	"context"
	"sync"

	"github.com/okian/huddle/internal/domain/model"
	"github.com/okian/huddle/pkg/metrics"
)

// Default feed configuration constants.
const defaultCapacity = 1024

// Feed provides non-blocking publish and channel-based consumption.
type Feed interface {
	// Publish adds an event to the feed.
	// Returns false if the feed is full or closed and the event was dropped.
	Publish(ctx context.Context, e model.GameEvent) bool

	// Events returns the consumption channel. It is closed when the feed
	// is closed and drained.
	Events() <-chan model.GameEvent

	// Len returns the number of buffered events.
	Len() int

	// Close stops intake. Buffered events remain consumable.
	Close() error

	// IsClosed reports whether the feed has been closed.
	IsClosed() bool
}

// InMemoryFeed implements Feed using a buffered channel.
type InMemoryFeed struct {
	events   chan model.GameEvent
	capacity int

	mu     sync.RWMutex
	closed bool
}

// NewInMemoryFeed creates a feed with configuration options.
func NewInMemoryFeed(opts ...Option) *InMemoryFeed {
	f := &InMemoryFeed{
		capacity: defaultCapacity,
	}

	for _, opt := range opts {
		opt(f)
	}

	f.events = make(chan model.GameEvent, f.capacity)

	metrics.UpdateFeedCapacity(f.capacity)
	metrics.UpdateFeedSize(0)
	metrics.UpdateFeedUtilization(0)
	return f
}

// Publish adds an event without blocking.
func (f *InMemoryFeed) Publish(ctx context.Context, e model.GameEvent) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.closed {
		metrics.RecordFeedPublishError()
		metrics.RecordErrorByComponent("feed", "closed")
		return false
	}

	select {
	case f.events <- e:
		metrics.RecordFeedPublish()
		f.observe()
		return true
	case <-ctx.Done():
		metrics.RecordFeedPublishError()
		metrics.RecordErrorByComponent("feed", "context_cancelled")
		return false
	default:
		metrics.RecordFeedPublishError()
		metrics.RecordErrorByComponent("feed", "feed_full")
		return false
	}
}

// Events returns the consumption channel.
func (f *InMemoryFeed) Events() <-chan model.GameEvent {
	return f.events
}

// Len returns the number of buffered events.
func (f *InMemoryFeed) Len() int {
	return len(f.events)
}

// Close stops intake and lets the consumer drain the remainder.
func (f *InMemoryFeed) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}
	close(f.events)
	f.closed = true
	return nil
}

// IsClosed reports whether the feed has been closed.
func (f *InMemoryFeed) IsClosed() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.closed
}

func (f *InMemoryFeed) observe() {
	size := len(f.events)
	metrics.UpdateFeedSize(size)
	metrics.UpdateFeedUtilization(float64(size) / float64(f.capacity))
}
