package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	config "github.com/okian/huddle/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoadDefaults(t *testing.T) {
	Convey("Given a clean environment", t, func() {
		ctx := context.Background()

		Convey("When loading with no file and no env overrides", func() {
			cfg, err := config.Load(ctx)

			Convey("Then the defaults come back intact", func() {
				So(err, ShouldBeNil)
				So(cfg.LogLevel, ShouldEqual, "info")
				So(cfg.MetricsAddr, ShouldEqual, ":9270")
				So(cfg.DecayRate, ShouldEqual, 0.1)
				So(cfg.MomentumThreshold, ShouldEqual, 0.2)
				So(cfg.EffectMagnitudeCap, ShouldEqual, 0.15)
				So(cfg.ComposureEffectivenessBase, ShouldEqual, 0.7)
				So(cfg.ComposureDuration, ShouldEqual, 30.0)
				So(cfg.ComposureCooldown, ShouldEqual, 90.0)
				So(cfg.CrowdBaseNoise, ShouldEqual, 30.0)
				So(cfg.CrowdMaxNoise, ShouldEqual, 110.0)
				So(cfg.OpposingScale, ShouldEqual, 0.6)
				So(cfg.TickRateHz, ShouldEqual, 20.0)
				So(cfg.FeedSize, ShouldEqual, 1024)
				So(cfg.DedupeSize, ShouldEqual, 50_000)
				So(cfg.EventWeights["touchdown"], ShouldEqual, 12.0)
			})
		})
	})
}

func TestLoadEnvOverrides(t *testing.T) {
	Convey("Given environment overrides", t, func() {
		_ = os.Setenv("HUDDLE_DECAY_RATE", "0.25")
		_ = os.Setenv("HUDDLE_LOG_LEVEL", "debug")
		_ = os.Setenv("HUDDLE_FEED_SIZE", "64")
		defer func() {
			_ = os.Unsetenv("HUDDLE_DECAY_RATE")
			_ = os.Unsetenv("HUDDLE_LOG_LEVEL")
			_ = os.Unsetenv("HUDDLE_FEED_SIZE")
		}()

		Convey("When loading", func() {
			cfg, err := config.Load(context.Background())

			Convey("Then env values win over defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.DecayRate, ShouldEqual, 0.25)
				So(cfg.LogLevel, ShouldEqual, "debug")
				So(cfg.FeedSize, ShouldEqual, 64)
				// untouched knobs keep their defaults
				So(cfg.TickRateHz, ShouldEqual, 20.0)
			})
		})
	})
}

func TestLoadFile(t *testing.T) {
	Convey("Given a YAML config file", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "huddle.yaml")
		yaml := []byte("decay_rate: 0.3\nmetrics_addr: \":9999\"\ncrowd_max_noise: 120\n")
		So(os.WriteFile(path, yaml, 0o600), ShouldBeNil)

		_ = os.Setenv("HUDDLE_CONFIG", path)
		defer func() { _ = os.Unsetenv("HUDDLE_CONFIG") }()

		Convey("When loading", func() {
			cfg, err := config.Load(context.Background())

			Convey("Then file values layer over defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.DecayRate, ShouldEqual, 0.3)
				So(cfg.MetricsAddr, ShouldEqual, ":9999")
				So(cfg.CrowdMaxNoise, ShouldEqual, 120.0)
				So(cfg.FeedSize, ShouldEqual, 1024)
			})
		})

		Convey("When env overrides the file", func() {
			_ = os.Setenv("HUDDLE_DECAY_RATE", "0.4")
			defer func() { _ = os.Unsetenv("HUDDLE_DECAY_RATE") }()

			cfg, err := config.Load(context.Background())

			Convey("Then env wins", func() {
				So(err, ShouldBeNil)
				So(cfg.DecayRate, ShouldEqual, 0.4)
			})
		})
	})

	Convey("Given a missing config file", t, func() {
		_ = os.Setenv("HUDDLE_CONFIG", "/nonexistent/huddle.yaml")
		defer func() { _ = os.Unsetenv("HUDDLE_CONFIG") }()

		Convey("When loading", func() {
			cfg, err := config.Load(context.Background())

			Convey("Then loading fails with the load kind", func() {
				So(err, ShouldWrap, config.ErrLoadConfig)
				So(cfg, ShouldBeNil)
			})
		})
	})
}

func TestLoadValidation(t *testing.T) {
	Convey("Given structurally broken overrides", t, func() {
		cases := []struct {
			name  string
			key   string
			value string
		}{
			{"empty metrics address", "HUDDLE_METRICS_ADDR", ""},
			{"zero decay rate", "HUDDLE_DECAY_RATE", "0"},
			{"decay rate above one", "HUDDLE_DECAY_RATE", "1.5"},
			{"threshold at half range", "HUDDLE_MOMENTUM_THRESHOLD", "0.5"},
			{"zero magnitude cap", "HUDDLE_EFFECT_MAGNITUDE_CAP", "0"},
			{"inverted noise range", "HUDDLE_CROWD_MAX_NOISE", "10"},
			{"zero tick rate", "HUDDLE_TICK_RATE_HZ", "0"},
			{"zero feed size", "HUDDLE_FEED_SIZE", "0"},
		}

		for _, c := range cases {
			Convey("When loading with "+c.name, func() {
				_ = os.Setenv(c.key, c.value)
				defer func() { _ = os.Unsetenv(c.key) }()

				cfg, err := config.Load(context.Background())

				Convey("Then validation rejects it", func() {
					So(err, ShouldWrap, config.ErrInvalidConfig)
					So(cfg, ShouldBeNil)
				})
			})
		}
	})
}
