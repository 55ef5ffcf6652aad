package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/okian/huddle/internal/adapters/feed"
	"github.com/okian/huddle/internal/adapters/loop"
	"github.com/okian/huddle/internal/adapters/registry"
	"github.com/okian/huddle/internal/app"
	"github.com/okian/huddle/internal/config"
	"github.com/okian/huddle/internal/scrimmage"
	"github.com/okian/huddle/pkg/logger"
	"github.com/okian/huddle/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTP server and updater timing constants.
const (
	readTimeout           = 10 * time.Second
	writeTimeout          = 10 * time.Second
	idleTimeout           = 60 * time.Second
	readHeaderTimeout     = 5 * time.Second
	shutdownTimeout       = 10 * time.Second
	systemMetricsInterval = 10 * time.Second
	scrimmagePace         = 50 * time.Millisecond // wall-clock delay between play windows
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	loggerInstance := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Seed the demo roster and venue.
	store := registry.NewMemStore()
	session, err := scrimmage.SeedSession(ctx, store)
	if err != nil {
		loggerInstance.Error(ctx, "failed to seed roster", logger.Error(err))
		return
	}

	clock := registry.NewGameClock()
	clock.SetFlags(true, false) // the demo matchup is a rivalry game

	// Create and start the engine with configuration options.
	engine := app.New(
		app.WithLogger(loggerInstance.Named("engine")),
		app.WithRoster(store),
		app.WithClock(clock),
		app.WithDecayRate(cfg.DecayRate),
		app.WithMomentumThreshold(cfg.MomentumThreshold),
		app.WithEffectMagnitudeCap(cfg.EffectMagnitudeCap),
		app.WithComposureTuning(cfg.ComposureEffectivenessBase, cfg.ComposureDuration, cfg.ComposureCooldown, cfg.ComposureCooldownFloor),
		app.WithCrowdNoiseRange(cfg.CrowdBaseNoise, cfg.CrowdMaxNoise),
		app.WithEventWeights(cfg.EventWeights),
		app.WithOpposingScale(cfg.OpposingScale),
		app.WithDedupeSize(cfg.DedupeSize),
	)
	if err := engine.Start(ctx); err != nil {
		loggerInstance.Error(ctx, "failed to start engine", logger.Error(err))
		return
	}

	// Event intake and the game loop.
	eventFeed := feed.NewInMemoryFeed(feed.WithCapacity(cfg.FeedSize))
	runner := loop.NewRunner(eventFeed, engine, loop.WithTickRate(cfg.TickRateHz))
	go runner.Run(ctx)

	// Start system metrics updater
	go startSystemMetricsUpdater(ctx)

	// Drive a synthetic game through the feed.
	driver := scrimmage.NewDriver(session, clock, eventFeed, engine)
	go func() {
		for driver.Step(ctx) {
			select {
			case <-ctx.Done():
				return
			case <-time.After(scrimmagePace):
			}
		}
		home, away := clock.Scores()
		loggerInstance.Info(ctx, "scrimmage complete",
			logger.Int("homeScore", home),
			logger.Int("awayScore", away),
			logger.Any("engine", engine.Stats()),
		)
	}()

	// Prometheus exposition.
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              cfg.MetricsAddr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		loggerInstance.Info(ctx, "starting metrics server", logger.String("addr", cfg.MetricsAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("metrics server failed: " + err.Error() + "\n")
			return
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	loggerInstance.Info(ctx, "shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := runner.Shutdown(shutdownCtx); err != nil {
		loggerInstance.Error(ctx, "loop shutdown failed", logger.Error(err))
	}
	if err := eventFeed.Close(); err != nil {
		loggerInstance.Error(ctx, "feed close failed", logger.Error(err))
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		loggerInstance.Error(ctx, "metrics server shutdown failed", logger.Error(err))
	}

	loggerInstance.Info(ctx, "stopped")
}

// startSystemMetricsUpdater starts a background goroutine that updates system metrics.
func startSystemMetricsUpdater(ctx context.Context) {
	ticker := time.NewTicker(systemMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateSystemMetrics()
		}
	}
}

// updateSystemMetrics updates system-level metrics.
func updateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	metrics.UpdateSystemMemoryUsage(m.Alloc)
	metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())
}
