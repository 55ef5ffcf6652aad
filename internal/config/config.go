// Package config defines engine configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Layer file and env sources over defaults in Load.
// - External errors are wrapped via this package's sentinel kinds.
package config

// Config contains process configuration. All numeric knobs are tunable
// defaults, not hard invariants.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// MetricsAddr configures the Prometheus exposition listen address.
	MetricsAddr string `koanf:"metrics_addr"`

	// DecayRate is the fraction of distance-to-neutral momentum sheds per second.
	DecayRate float64 `koanf:"decay_rate"`

	// MomentumThreshold is the inner level band as a fraction of half-range.
	// The outer band is twice the inner one.
	MomentumThreshold float64 `koanf:"momentum_threshold"`

	// EffectMagnitudeCap bounds any single effect's stat change fraction.
	EffectMagnitudeCap float64 `koanf:"effect_magnitude_cap"`

	// Composure mode tuning.
	ComposureEffectivenessBase float64 `koanf:"composure_effectiveness_base"`
	ComposureDuration          float64 `koanf:"composure_duration"`
	ComposureCooldown          float64 `koanf:"composure_cooldown"`
	ComposureCooldownFloor     float64 `koanf:"composure_cooldown_floor"`

	// Crowd noise bounds.
	CrowdBaseNoise float64 `koanf:"crowd_base_noise"`
	CrowdMaxNoise  float64 `koanf:"crowd_max_noise"`

	// EventWeights maps event kind names to base momentum magnitudes.
	EventWeights map[string]float64 `koanf:"event_weights"`

	// OpposingScale is the fraction of the acting delta applied, negated,
	// to the other side's track.
	OpposingScale float64 `koanf:"opposing_scale"`

	// TickRateHz sets the game loop advance frequency.
	TickRateHz float64 `koanf:"tick_rate_hz"`

	// FeedSize bounds the in-memory event intake.
	FeedSize int `koanf:"feed_size"`

	// DedupeSize sets the size of the event id deduplication cache.
	DedupeSize int `koanf:"dedupe_size"`
}

// New creates a Config with engine defaults.
func New() *Config {
	return &Config{
		LogLevel:                   "info",
		MetricsAddr:                ":9270",
		DecayRate:                  0.1,
		MomentumThreshold:          0.2,
		EffectMagnitudeCap:         0.15,
		ComposureEffectivenessBase: 0.7,
		ComposureDuration:          30,
		ComposureCooldown:          90,
		ComposureCooldownFloor:     45,
		CrowdBaseNoise:             30,
		CrowdMaxNoise:              110,
		EventWeights: map[string]float64{
			"touchdown":        12.0,
			"interception":     9.0,
			"sack":             7.0,
			"fourth_down_stop": 7.0,
			"fumble":           6.0,
			"turnover":         6.0,
			"field_goal":       4.0,
			"penalty":          2.5,
			"safety":           1.5,
		},
		OpposingScale: 0.6,
		TickRateHz:    20,
		FeedSize:      1024,
		DedupeSize:    50_000,
	}
}
