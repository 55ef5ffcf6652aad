// Package feed defines the contract for the bounded event intake.
package feed

// Option applies a configuration option to the InMemoryFeed.
type Option func(*InMemoryFeed)

// WithCapacity sets the feed's buffer capacity.
func WithCapacity(capacity int) Option {
	return func(f *InMemoryFeed) {
		if capacity > 0 {
			f.capacity = capacity
		}
	}
}
