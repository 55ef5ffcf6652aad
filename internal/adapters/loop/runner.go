// Package loop drives the engine: one goroutine drains the event feed
// and advances simulation time at a fixed tick rate.
//
// Keeping a single runner goroutine preserves the engine's contract of
// one logical update stream per session.
package loop

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/okian/huddle/internal/domain/model"
	"github.com/okian/huddle/pkg/logger"
	"github.com/okian/huddle/pkg/metrics"
)

// Default runner configuration constants.
const (
	defaultTickRateHz = 20.0
)

// Simulator is the engine surface the runner drives.
type Simulator interface {
	ProcessEvent(ctx context.Context, e model.GameEvent) error
	Advance(ctx context.Context, dt float64)
}

// Source is how the runner receives events.
type Source interface {
	Events() <-chan model.GameEvent
}

// Runner owns the game loop goroutine.
type Runner struct {
	source Source
	sim    Simulator

	tickRate float64
	name     string

	shutdown chan struct{}
	stopOnce sync.Once
	done     chan struct{}

	logger logger.Logger
}

// NewRunner creates a runner with configuration options.
func NewRunner(source Source, sim Simulator, opts ...Option) *Runner {
	r := &Runner{
		source:   source,
		sim:      sim,
		tickRate: defaultTickRateHz,
		name:     "loop",
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = logger.Get().Named(r.name)
	}
	return r
}

// Run executes the loop until the context is cancelled, the runner is
// shut down, or the event source closes.
func (r *Runner) Run(ctx context.Context) {
	defer close(r.done)

	interval := time.Duration(float64(time.Second) / r.tickRate)
	dt := interval.Seconds()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	events := r.source.Events()
	for {
		select {
		case <-ctx.Done():
			return
		case <-r.shutdown:
			return
		case e, ok := <-events:
			if !ok {
				r.logger.Info(ctx, "event source closed, stopping loop")
				return
			}
			metrics.RecordFeedConsume()
			if err := r.sim.ProcessEvent(ctx, e); err != nil {
				metrics.RecordErrorByComponent("loop", "process_event")
				r.logger.Warn(ctx, "event rejected",
					logger.String("eventID", e.EventID),
					logger.String("kind", e.Kind.String()),
					logger.Error(err),
				)
			}
		case <-ticker.C:
			start := time.Now()
			r.sim.Advance(ctx, dt)
			metrics.RecordTick()
			metrics.RecordTickLatency(float64(time.Since(start).Microseconds()) / 1000.0)
		}
	}
}

// Shutdown gracefully stops the runner. It is safe to call more than
// once.
func (r *Runner) Shutdown(ctx context.Context) error {
	r.stopOnce.Do(func() { close(r.shutdown) })

	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		r.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}
