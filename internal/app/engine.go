// Package app provides the momentum orchestrator that wires the domain
// components into a single per-tick update and event-intake API.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/okian/huddle/internal/adapters/registry"
	"github.com/okian/huddle/internal/domain/composure"
	"github.com/okian/huddle/internal/domain/crowd"
	"github.com/okian/huddle/internal/domain/dedupe"
	"github.com/okian/huddle/internal/domain/effect"
	"github.com/okian/huddle/internal/domain/impact"
	"github.com/okian/huddle/internal/domain/model"
	"github.com/okian/huddle/internal/domain/momentum"
	"github.com/okian/huddle/pkg/logger"
	"github.com/okian/huddle/pkg/metrics"
)

// Default engine configuration constants.
const (
	defaultDedupeSize   = 50000
	defaultSectionCount = 8
	defaultHomeSections = 6 // home crowds dominate a stadium
	defaultSectionSeats = 5000
	baselineLeadScale   = 0.02 // enthusiasm baseline shift per point of lead
	baselineMaxShift    = 0.25
	neutralEnthusiasm   = 0.5
	outerBandMultiplier = 2 // outer level band relative to the inner one
)

// Engine is the momentum orchestrator: one instance per game session.
// All state mutation happens under a single mutex; the engine assumes
// one logical update stream (zero or more ProcessEvent calls followed
// by one Advance per simulated tick).
type Engine struct {
	mu sync.Mutex

	meter     *momentum.Meter
	resolver  *impact.Resolver
	effects   *effect.Engine
	composure map[model.Side]*composure.Mode
	crowd     *crowd.Model
	deduper   dedupe.Deduper

	roster registry.Store
	clock  impact.Clock

	enabled bool
	started bool

	// Tuning captured from options, applied at Start.
	decayRate          float64
	momentumThreshold  float64
	effectMagnitudeCap float64
	composureBase      float64
	composureDuration  float64
	composureCooldown  float64
	composureFloor     float64
	crowdBaseNoise     float64
	crowdMaxNoise      float64
	eventWeights       map[string]float64
	opposingScale      float64
	dedupeSize         int
	sectionCount       int

	logger logger.Logger
}

// New constructs an engine with default configuration. Call Start before
// feeding events.
func New(opts ...Option) *Engine {
	e := &Engine{
		enabled:            true,
		decayRate:          0.1,
		momentumThreshold:  0.2,
		effectMagnitudeCap: 0.15,
		composureBase:      0.7,
		composureDuration:  30,
		composureCooldown:  90,
		composureFloor:     45,
		crowdBaseNoise:     30,
		crowdMaxNoise:      110,
		opposingScale:      0.6,
		dedupeSize:         defaultDedupeSize,
		sectionCount:       defaultSectionCount,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Start builds the domain components from the configured roster and
// stadium. It is idempotent.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.started {
		return nil
	}
	if e.roster == nil {
		return ErrNoRoster
	}

	if e.logger == nil {
		e.logger = logger.Get().Named("engine")
	}

	venueBonus := 1.0
	capacity := e.sectionCount * defaultSectionSeats
	if stadium, err := e.roster.Stadium(ctx); err == nil {
		if stadium.HomeFieldAdvantage > 0 {
			venueBonus = stadium.HomeFieldAdvantage
		}
		if stadium.Capacity > 0 {
			capacity = stadium.Capacity
		}
	} else if !errors.Is(err, registry.ErrNoStadium) {
		return fmt.Errorf("stadium lookup: %w", err)
	}

	e.meter = momentum.New(
		momentum.WithDecayRate(e.decayRate),
		momentum.WithBands(e.momentumThreshold, e.momentumThreshold*outerBandMultiplier),
		momentum.WithVenueBonus(venueBonus),
	)
	e.composure = map[model.Side]*composure.Mode{
		model.SideHome: e.newComposureMode(),
		model.SideAway: e.newComposureMode(),
	}
	e.effects = effect.NewEngine(
		effect.WithMagnitudeCap(e.effectMagnitudeCap),
		effect.WithMitigation(composureSource{e.composure}),
	)
	e.resolver = impact.New(
		impact.WithEventWeights(e.eventWeights),
		impact.WithOpposingScale(e.opposingScale),
	)
	e.crowd = crowd.New(
		crowd.WithNoiseRange(e.crowdBaseNoise, e.crowdMaxNoise),
		crowd.WithBaseline(recordBaseline{e.clock}),
	)
	e.seedSections(capacity)

	e.deduper = dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(e.dedupeSize))

	e.started = true
	e.logger.Info(ctx, "momentum engine started",
		logger.Float64("venueBonus", venueBonus),
		logger.Int("crowdCapacity", capacity),
		logger.Int("sections", e.sectionCount),
	)
	return nil
}

func (e *Engine) newComposureMode() *composure.Mode {
	return composure.New(
		composure.WithBaseEffectiveness(e.composureBase),
		composure.WithDuration(e.composureDuration),
		composure.WithCooldown(e.composureCooldown),
		composure.WithCooldownFloor(e.composureFloor),
	)
}

// seedSections fills the crowd arena, splitting affinity home-heavy the
// way a real stadium sells.
func (e *Engine) seedSections(capacity int) {
	count := e.sectionCount
	if count <= 0 {
		count = defaultSectionCount
	}
	seats := capacity / count
	if seats <= 0 {
		seats = defaultSectionSeats
	}
	homeCount := count * defaultHomeSections / defaultSectionCount
	if homeCount < 1 {
		homeCount = 1
	}
	for i := 0; i < count; i++ {
		affinity := model.SideHome
		if i >= homeCount {
			affinity = model.SideAway
		}
		e.crowd.AddSection(affinity, seats, seats)
	}
}

// ProcessEvent consumes one game event: resolve impact, adjust momentum,
// spawn effects on band transitions and spike plays, and let the crowd
// react. Duplicate event ids and unresolvable team references are
// rejected without touching state.
func (e *Engine) ProcessEvent(ctx context.Context, ev model.GameEvent) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return ErrNotStarted
	}
	if !e.enabled {
		metrics.RecordEventDropped()
		return nil
	}

	team, err := e.roster.Team(ctx, ev.ActingTeam)
	if err != nil {
		metrics.RecordEventDropped()
		metrics.RecordErrorByComponent("engine", "unknown_team")
		return fmt.Errorf("%w: %q", ErrUnknownTeam, ev.ActingTeam)
	}

	if ev.EventID != "" && e.deduper.SeenAndRecord(ctx, ev.EventID) {
		metrics.RecordEventDuplicate()
		e.logger.Debug(ctx, "duplicate event dropped", logger.String("eventID", ev.EventID))
		return nil
	}

	acting := team.Side
	opposing := acting.Opponent()

	res := e.resolver.Resolve(ev, e.clock)
	ev.Impact = res.Acting
	ev.FavorsHome = acting == model.SideHome

	oldActing := e.meter.Level(acting)
	oldOpposing := e.meter.Level(opposing)

	e.meter.Adjust(acting, res.Acting)
	e.meter.Adjust(opposing, res.Opposing)

	before := e.effects.ActiveCount()
	e.effects.OnLevelChange(acting, oldActing, e.meter.Level(acting))
	e.effects.OnLevelChange(opposing, oldOpposing, e.meter.Level(opposing))
	e.effects.OnEvent(ev, acting)
	e.crowd.OnEvent(ev, acting)

	metrics.RecordEventProcessed()
	metrics.RecordEventImpact(res.Acting)
	metrics.RecordEffectsSpawned(e.effects.ActiveCount() - before)
	e.observe()

	e.logger.Debug(ctx, "event processed",
		logger.String("kind", ev.Kind.String()),
		logger.String("team", string(ev.ActingTeam)),
		logger.Float64("impact", res.Acting),
		logger.Float64("tension", res.Tension),
	)
	return nil
}

// Advance moves simulation time forward: momentum decays toward neutral,
// effects age out, composure timers tick, and the crowd settles toward
// its record-dependent baseline.
func (e *Engine) Advance(_ context.Context, dt float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started || !e.enabled || dt <= 0 {
		return
	}

	e.meter.Decay(dt)
	e.effects.Advance(dt)
	for _, mode := range e.composure {
		mode.Update(dt)
	}
	e.crowd.Decay(dt)
	e.observe()
}

// MomentumLevel returns a team's current band.
func (e *Engine) MomentumLevel(ctx context.Context, id model.TeamID) (model.MomentumLevel, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return model.LevelNeutral, ErrNotStarted
	}
	team, err := e.roster.Team(ctx, id)
	if err != nil {
		return model.LevelNeutral, fmt.Errorf("%w: %q", ErrUnknownTeam, id)
	}
	return e.meter.Level(team.Side), nil
}

// MomentumValue returns a team's raw momentum value.
func (e *Engine) MomentumValue(ctx context.Context, id model.TeamID) (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return 0, ErrNotStarted
	}
	team, err := e.roster.Team(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTeam, id)
	}
	return e.meter.Get(team.Side), nil
}

// ModifiedStats returns a player's effect-adjusted stat snapshot. An
// unresolvable player contributes no modification and reports the error.
func (e *Engine) ModifiedStats(ctx context.Context, id model.PlayerID) (model.StatSnapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return model.StatSnapshot{}, ErrNotStarted
	}
	player, err := e.roster.Player(ctx, id)
	if err != nil {
		return model.StatSnapshot{}, fmt.Errorf("%w: %q", ErrUnknownPlayer, id)
	}
	team, err := e.roster.Team(ctx, player.TeamID)
	if err != nil {
		return model.StatSnapshot{}, fmt.Errorf("%w: %q", ErrUnknownTeam, player.TeamID)
	}
	return e.effects.ModifiedStats(team.Side, player.BaseStats, player.MomentumImmune), nil
}

// ActivateComposure lets a coach start their team's composure mode.
// The boolean reports whether the activation took; calling mid-cycle
// fails without changing state.
func (e *Engine) ActivateComposure(ctx context.Context, id model.CoachID) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return false, ErrNotStarted
	}
	coach, err := e.roster.Coach(ctx, id)
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrUnknownCoach, id)
	}
	team, err := e.roster.Team(ctx, coach.TeamID)
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrUnknownTeam, coach.TeamID)
	}

	ok := e.composure[team.Side].Activate(coach.Leadership)
	if ok {
		metrics.RecordComposureActivation()
		e.logger.Info(ctx, "composure mode activated",
			logger.String("team", string(team.ID)),
			logger.String("coach", coach.Name),
			logger.Int("leadership", coach.Leadership),
		)
	} else {
		metrics.RecordComposureRejected()
	}
	return ok, nil
}

// DeactivateComposure stops a team's active composure phase early,
// moving straight to cooldown.
func (e *Engine) DeactivateComposure(ctx context.Context, id model.TeamID) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return false, ErrNotStarted
	}
	team, err := e.roster.Team(ctx, id)
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrUnknownTeam, id)
	}
	return e.composure[team.Side].Deactivate(), nil
}

// ComposureStatus returns a team's composure phase.
func (e *Engine) ComposureStatus(ctx context.Context, id model.TeamID) (composure.Status, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return composure.Idle, ErrNotStarted
	}
	team, err := e.roster.Team(ctx, id)
	if err != nil {
		return composure.Idle, fmt.Errorf("%w: %q", ErrUnknownTeam, id)
	}
	return e.composure[team.Side].Status(), nil
}

// Enable resumes event processing and time advancement.
func (e *Engine) Enable() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enabled = true
}

// Disable freezes the engine: ProcessEvent and Advance become no-ops
// preserving the last computed state.
func (e *Engine) Disable() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enabled = false
}

// IsEnabled reports whether the engine is processing.
func (e *Engine) IsEnabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.enabled
}

// ClearAllEffects drops every active performance modifier.
func (e *Engine) ClearAllEffects() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		e.effects.ClearAll()
		e.observe()
	}
}

// Reset returns the session to its initial state: neutral momentum, no
// effects, idle composure, neutral crowd.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return
	}
	e.meter.Reset()
	e.effects.ClearAll()
	for _, mode := range e.composure {
		mode.Reset()
	}
	e.crowd.Reset()
	e.observe()
}

// Stats returns a point-in-time snapshot for logging and dashboards.
func (e *Engine) Stats() map[string]any {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return map[string]any{"started": false}
	}
	return map[string]any{
		"started":            true,
		"enabled":            e.enabled,
		"homeMomentum":       e.meter.Get(model.SideHome),
		"awayMomentum":       e.meter.Get(model.SideAway),
		"homeLevel":          e.meter.Level(model.SideHome).String(),
		"awayLevel":          e.meter.Level(model.SideAway).String(),
		"momentumDifference": e.meter.Difference(),
		"activeEffects":      e.effects.ActiveCount(),
		"crowdSections":      e.crowd.SectionCount(),
		"crowdNoise":         e.crowd.NoiseLevel(),
		"crowdEnthusiasm":    e.crowd.Enthusiasm(),
		"homeComposure":      e.composure[model.SideHome].Status().String(),
		"awayComposure":      e.composure[model.SideAway].Status().String(),
	}
}

// observe refreshes the state gauges. Callers hold the mutex.
func (e *Engine) observe() {
	for _, side := range []model.Side{model.SideHome, model.SideAway} {
		metrics.UpdateMomentum(side.String(), e.meter.Get(side))
		metrics.UpdateMomentumLevel(side.String(), int(e.meter.Level(side)))
	}
	metrics.UpdateActiveEffects(e.effects.ActiveCount())
	metrics.UpdateCrowdNoise(e.crowd.NoiseLevel())
	metrics.UpdateCrowdEnthusiasm(e.crowd.Enthusiasm())
}

// composureSource adapts the per-side composure modes to the effect
// engine's mitigation interface.
type composureSource struct {
	modes map[model.Side]*composure.Mode
}

func (s composureSource) MitigationFactor(team model.Side) float64 {
	mode, ok := s.modes[team]
	if !ok {
		return 0
	}
	return mode.MitigationFactor()
}

// recordBaseline derives each side's crowd resting point from the score:
// a struggling team's crowd settles below neutral, a leading team's
// above it.
type recordBaseline struct {
	clock impact.Clock
}

func (b recordBaseline) EnthusiasmBaseline(side model.Side) float64 {
	if b.clock == nil {
		return neutralEnthusiasm
	}
	lead := float64(b.clock.ScoreDifference())
	if side == model.SideAway {
		lead = -lead
	}
	shift := lead * baselineLeadScale
	if shift > baselineMaxShift {
		shift = baselineMaxShift
	}
	if shift < -baselineMaxShift {
		shift = -baselineMaxShift
	}
	return neutralEnthusiasm + shift
}
