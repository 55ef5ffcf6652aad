package loop

import "github.com/okian/huddle/pkg/logger"

// Option applies a configuration option to the Runner.
type Option func(*Runner)

// WithTickRate sets the advance frequency in Hz.
func WithTickRate(hz float64) Option {
	return func(r *Runner) {
		if hz > 0 {
			r.tickRate = hz
		}
	}
}

// WithName sets the runner's logger name.
func WithName(name string) Option {
	return func(r *Runner) {
		if name != "" {
			r.name = name
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(l logger.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}
