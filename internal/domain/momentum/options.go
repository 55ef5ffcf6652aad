package momentum

// Option applies a configuration option to the Meter.
type Option func(*Meter)

// WithBounds sets the [min, max] momentum range.
func WithBounds(minValue, maxValue float64) Option {
	return func(m *Meter) {
		if maxValue > minValue {
			m.min = minValue
			m.max = maxValue
		}
	}
}

// WithDecayRate sets the fraction of distance-to-neutral shed per second.
func WithDecayRate(rate float64) Option {
	return func(m *Meter) {
		if rate > 0 {
			m.decayRate = rate
		}
	}
}

// WithBands sets the inner and outer level thresholds as fractions of
// the half-range around neutral.
func WithBands(inner, outer float64) Option {
	return func(m *Meter) {
		if inner > 0 && outer > inner && outer <= 1 {
			m.innerBand = inner
			m.outerBand = outer
		}
	}
}

// WithVenueBonus sets the multiplicative scale the stadium applies to
// home-track adjustments.
func WithVenueBonus(bonus float64) Option {
	return func(m *Meter) {
		if bonus > 0 {
			m.venueBonus = bonus
		}
	}
}

// WithThresholdEpsilon sets the band-edge proximity used by AtThreshold.
func WithThresholdEpsilon(epsilon float64) Option {
	return func(m *Meter) {
		if epsilon > 0 {
			m.epsilon = epsilon
		}
	}
}
