package scrimmage

import (
	"math/rand"

	"github.com/okian/huddle/pkg/logger"
)

// Option applies a configuration option to the Driver.
type Option func(*Driver)

// WithSeed makes the random play stream reproducible under a chosen seed.
func WithSeed(seed int64) Option {
	return func(d *Driver) {
		d.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic seed for reproducible games
	}
}

// WithStep sets the game seconds consumed per play window.
func WithStep(seconds float64) Option {
	return func(d *Driver) {
		if seconds > 0 {
			d.stepSecs = seconds
		}
	}
}

// WithEventOdds sets the chance of a significant play per step.
func WithEventOdds(odds float64) Option {
	return func(d *Driver) {
		if odds > 0 && odds <= 1 {
			d.eventOdds = odds
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(l logger.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.logger = l
		}
	}
}
