package impact

import "github.com/okian/huddle/internal/domain/model"

// Option applies a configuration option to the Resolver.
type Option func(*Resolver)

// WithEventWeights sets base magnitudes from a configuration map keyed
// by event kind name. Unknown names and non-positive weights are skipped.
func WithEventWeights(weights map[string]float64) Option {
	return func(r *Resolver) {
		for name, weight := range weights {
			kind, ok := model.ParseEventKind(name)
			if !ok || weight <= 0 {
				continue
			}
			r.weights[kind] = weight
		}
	}
}

// WithDefaultWeight sets the magnitude used for kinds missing from the table.
func WithDefaultWeight(weight float64) Option {
	return func(r *Resolver) {
		if weight > 0 {
			r.defaultWeight = weight
		}
	}
}

// WithOpposingScale sets the fraction of the acting delta applied, negated,
// to the other side's track.
func WithOpposingScale(scale float64) Option {
	return func(r *Resolver) {
		if scale > 0 && scale <= 1 {
			r.opposingScale = scale
		}
	}
}

// WithMaxTension caps the additive tension multiplier.
func WithMaxTension(maxTension float64) Option {
	return func(r *Resolver) {
		if maxTension >= 1 {
			r.maxTension = maxTension
		}
	}
}
