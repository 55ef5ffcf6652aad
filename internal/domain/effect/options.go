package effect

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithMagnitudeCap caps every effect's magnitude as a stat fraction.
func WithMagnitudeCap(limit float64) Option {
	return func(e *Engine) {
		if limit > 0 && limit <= 1 {
			e.magnitudeCap = limit
		}
	}
}

// WithBandDurations sets the lifetimes of High/Low and VeryHigh/VeryLow
// band effects, in seconds.
func WithBandDurations(high, peak float64) Option {
	return func(e *Engine) {
		if high > 0 {
			e.highDuration = high
		}
		if peak > 0 {
			e.peakDuration = peak
		}
	}
}

// WithSpikeDuration sets the lifetime of event-triggered adrenaline
// spikes, in seconds.
func WithSpikeDuration(duration float64) Option {
	return func(e *Engine) {
		if duration > 0 {
			e.spikeDuration = duration
		}
	}
}

// WithMitigation wires the composure source consulted for negative
// effect magnitudes.
func WithMitigation(source MitigationSource) Option {
	return func(e *Engine) {
		if source != nil {
			e.mitigation = source
		}
	}
}
