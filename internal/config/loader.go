package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if HUDDLE_CONFIG is set
//  3. env (prefix HUDDLE_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("HUDDLE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: HUDDLE_DECAY_RATE, HUDDLE_TICK_RATE_HZ, ...
	// Underscores are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("HUDDLE_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "huddle_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects configurations the engine cannot run with. Soft
// numeric knobs are clamped at their consumers; only structurally broken
// values fail here.
func (c *Config) validate() error {
	switch {
	case c.MetricsAddr == "":
		return fmt.Errorf("%w: metrics_addr must not be empty", ErrInvalidConfig)
	case c.DecayRate <= 0 || c.DecayRate > 1:
		return fmt.Errorf("%w: decay_rate must be in (0, 1]", ErrInvalidConfig)
	case c.MomentumThreshold <= 0 || c.MomentumThreshold >= 0.5:
		return fmt.Errorf("%w: momentum_threshold must be in (0, 0.5)", ErrInvalidConfig)
	case c.EffectMagnitudeCap <= 0 || c.EffectMagnitudeCap > 1:
		return fmt.Errorf("%w: effect_magnitude_cap must be in (0, 1]", ErrInvalidConfig)
	case c.CrowdMaxNoise <= c.CrowdBaseNoise:
		return fmt.Errorf("%w: crowd_max_noise must exceed crowd_base_noise", ErrInvalidConfig)
	case c.TickRateHz <= 0:
		return fmt.Errorf("%w: tick_rate_hz must be positive", ErrInvalidConfig)
	case c.FeedSize <= 0:
		return fmt.Errorf("%w: feed_size must be positive", ErrInvalidConfig)
	}
	return nil
}
