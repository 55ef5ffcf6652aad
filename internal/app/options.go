package app

import (
	"github.com/okian/huddle/internal/adapters/registry"
	"github.com/okian/huddle/internal/domain/impact"
	"github.com/okian/huddle/pkg/logger"
)

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithRoster wires the team/player/coach/stadium store. Required.
func WithRoster(store registry.Store) Option {
	return func(e *Engine) {
		if store != nil {
			e.roster = store
		}
	}
}

// WithClock wires the game-state readings used for tension and crowd
// baselines. Without a clock the engine assumes an early, even game.
func WithClock(clock impact.Clock) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(l logger.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithDecayRate sets the momentum decay rate per second.
func WithDecayRate(rate float64) Option {
	return func(e *Engine) {
		if rate > 0 {
			e.decayRate = rate
		}
	}
}

// WithMomentumThreshold sets the inner level band as a fraction of the
// half-range; the outer band is twice the inner one.
func WithMomentumThreshold(threshold float64) Option {
	return func(e *Engine) {
		if threshold > 0 && threshold < 0.5 {
			e.momentumThreshold = threshold
		}
	}
}

// WithEffectMagnitudeCap bounds any single effect's stat change fraction.
func WithEffectMagnitudeCap(limit float64) Option {
	return func(e *Engine) {
		if limit > 0 && limit <= 1 {
			e.effectMagnitudeCap = limit
		}
	}
}

// WithComposureTuning sets the mitigation state machine parameters.
func WithComposureTuning(base, duration, cooldown, floor float64) Option {
	return func(e *Engine) {
		if base > 0 && base <= 1 {
			e.composureBase = base
		}
		if duration > 0 {
			e.composureDuration = duration
		}
		if cooldown > 0 {
			e.composureCooldown = cooldown
		}
		if floor > 0 {
			e.composureFloor = floor
		}
	}
}

// WithCrowdNoiseRange sets the [base, max] crowd noise bounds.
func WithCrowdNoiseRange(base, maxNoise float64) Option {
	return func(e *Engine) {
		if maxNoise > base && base >= 0 {
			e.crowdBaseNoise = base
			e.crowdMaxNoise = maxNoise
		}
	}
}

// WithEventWeights sets base impact magnitudes keyed by event kind name.
func WithEventWeights(weights map[string]float64) Option {
	return func(e *Engine) {
		e.eventWeights = weights
	}
}

// WithOpposingScale sets the asymmetric opposing-track fraction.
func WithOpposingScale(scale float64) Option {
	return func(e *Engine) {
		if scale > 0 && scale <= 1 {
			e.opposingScale = scale
		}
	}
}

// WithDedupeSize sets the event id deduplication cache size.
func WithDedupeSize(size int) Option {
	return func(e *Engine) {
		if size > 0 {
			e.dedupeSize = size
		}
	}
}

// WithSectionCount sets how many crowd sections the stadium seats split
// into.
func WithSectionCount(count int) Option {
	return func(e *Engine) {
		if count > 0 {
			e.sectionCount = count
		}
	}
}
