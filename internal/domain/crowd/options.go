package crowd

// Option applies a configuration option to the Model.
type Option func(*Model)

// WithNoiseRange sets the [base, max] noise bounds.
func WithNoiseRange(base, maxNoise float64) Option {
	return func(m *Model) {
		if maxNoise > base && base >= 0 {
			m.baseNoise = base
			m.maxNoise = maxNoise
		}
	}
}

// WithCheerGain sets the enthusiasm added per unit of event intensity.
func WithCheerGain(gain float64) Option {
	return func(m *Model) {
		if gain > 0 && gain <= 1 {
			m.cheerGain = gain
		}
	}
}

// WithBooAsymmetry sets the opposing-section deflation as a fraction of
// the cheer gain. Values at or above 1 would make despair as loud as
// joy, so they are rejected.
func WithBooAsymmetry(fraction float64) Option {
	return func(m *Model) {
		if fraction > 0 && fraction < 1 {
			m.booAsymmetry = fraction
		}
	}
}

// WithDecayRate sets the fraction of distance-to-baseline shed per second.
func WithDecayRate(rate float64) Option {
	return func(m *Model) {
		if rate > 0 {
			m.decayRate = rate
		}
	}
}

// WithThresholds sets the quiet and loud noise cutoffs.
func WithThresholds(quiet, loud float64) Option {
	return func(m *Model) {
		if loud > quiet && quiet > 0 {
			m.quietThreshold = quiet
			m.loudThreshold = loud
		}
	}
}

// WithIntensityScale sets the resolved impact treated as full cheer
// intensity.
func WithIntensityScale(scale float64) Option {
	return func(m *Model) {
		if scale > 0 {
			m.intensityScale = scale
		}
	}
}

// WithBaseline wires the record-dependent enthusiasm resting point.
func WithBaseline(baseline Baseline) Option {
	return func(m *Model) {
		if baseline != nil {
			m.baseline = baseline
		}
	}
}
