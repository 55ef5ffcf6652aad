package composure

// Option applies a configuration option to the Mode.
type Option func(*Mode)

// WithDuration sets the active-phase length in seconds.
func WithDuration(duration float64) Option {
	return func(m *Mode) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

// WithBaseEffectiveness sets the effectiveness before leadership scaling.
func WithBaseEffectiveness(effectiveness float64) Option {
	return func(m *Mode) {
		if effectiveness > 0 && effectiveness <= 1 {
			m.baseEffectiveness = effectiveness
		}
	}
}

// WithCooldown sets the full cooldown length in seconds.
func WithCooldown(cooldown float64) Option {
	return func(m *Mode) {
		if cooldown > 0 {
			m.cooldown = cooldown
		}
	}
}

// WithCooldownFloor sets the minimum cooldown leadership can reach.
func WithCooldownFloor(floor float64) Option {
	return func(m *Mode) {
		if floor > 0 {
			m.cooldownFloor = floor
		}
	}
}
