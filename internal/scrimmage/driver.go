package scrimmage

import (
	"context"
	"math/rand"

	"github.com/google/uuid"
	"github.com/okian/huddle/internal/adapters/registry"
	"github.com/okian/huddle/internal/domain/model"
	"github.com/okian/huddle/pkg/logger"
)

// Default driver configuration constants.
const (
	defaultSeed      = 42 // deterministic games replay identically
	defaultStepSecs  = 15.0
	defaultEventOdds = 0.25 // chance of a significant play per step
	homeActingBias   = 0.55 // the home side makes slightly more plays
	touchdownPoints  = 7
	fieldGoalPoints  = 3
	safetyPoints     = 2
	composureTrigger = model.LevelVeryHigh
)

// eventTable weights how often each kind of play occurs; mundane plays
// dominate, touchdowns are rare.
var eventTable = []struct { //nolint:gochecknoglobals // static lookup table
	kind   model.EventKind
	weight int
}{
	{model.Penalty, 25},
	{model.Sack, 18},
	{model.FieldGoal, 12},
	{model.Fumble, 10},
	{model.Turnover, 10},
	{model.FourthDownStop, 9},
	{model.Interception, 8},
	{model.Touchdown, 6},
	{model.Safety, 2},
}

// Publisher is where generated events go.
type Publisher interface {
	Publish(ctx context.Context, e model.GameEvent) bool
}

// Composure lets the driver call a timeout when the opponent is rolling.
type Composure interface {
	ActivateComposure(ctx context.Context, id model.CoachID) (bool, error)
	MomentumLevel(ctx context.Context, id model.TeamID) (model.MomentumLevel, error)
}

// Driver plays a synthetic game against the engine.
type Driver struct {
	session   Session
	clock     *registry.GameClock
	publisher Publisher
	engine    Composure
	rng       *rand.Rand

	stepSecs  float64
	eventOdds float64

	logger logger.Logger
}

// NewDriver creates a scrimmage driver with configuration options.
func NewDriver(session Session, clock *registry.GameClock, publisher Publisher, engine Composure, opts ...Option) *Driver {
	d := &Driver{
		session:   session,
		clock:     clock,
		publisher: publisher,
		engine:    engine,
		rng:       rand.New(rand.NewSource(defaultSeed)), //nolint:gosec // deterministic seed for reproducible games
		stepSecs:  defaultStepSecs,
		eventOdds: defaultEventOdds,
	}

	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = logger.Get().Named("scrimmage")
	}
	return d
}

// Step advances the game clock one play window and maybe emits an
// event. It returns false once regulation ends.
func (d *Driver) Step(ctx context.Context) bool {
	if d.clock.Finished() {
		return false
	}

	d.clock.Tick(d.stepSecs)

	if d.rng.Float64() < d.eventOdds {
		e := d.nextEvent()
		if !d.publisher.Publish(ctx, e) {
			d.logger.Warn(ctx, "event dropped by feed", logger.String("kind", e.Kind.String()))
		}
		d.applyScore(e)
		d.maybeCallComposure(ctx, e)
	}

	return !d.clock.Finished()
}

// Run plays the whole game.
func (d *Driver) Run(ctx context.Context) {
	d.logger.Info(ctx, "scrimmage started",
		logger.String("home", string(d.session.HomeTeam)),
		logger.String("away", string(d.session.AwayTeam)),
	)
	for d.Step(ctx) {
		select {
		case <-ctx.Done():
			return
		default:
		}
	}
	home, away := d.clock.Scores()
	d.logger.Info(ctx, "scrimmage finished",
		logger.Int("homeScore", home),
		logger.Int("awayScore", away),
	)
}

// nextEvent draws a weighted random play.
func (d *Driver) nextEvent() model.GameEvent {
	total := 0
	for _, row := range eventTable {
		total += row.weight
	}
	pick := d.rng.Intn(total)
	kind := eventTable[len(eventTable)-1].kind
	for _, row := range eventTable {
		if pick < row.weight {
			kind = row.kind
			break
		}
		pick -= row.weight
	}

	acting := d.session.AwayTeam
	if d.rng.Float64() < homeActingBias {
		acting = d.session.HomeTeam
	}

	elapsed := float64(d.clock.Quarter()-1)*900 + (900 - d.clock.Remaining())
	return model.GameEvent{
		EventID:    uuid.New().String(),
		Kind:       kind,
		ActingTeam: acting,
		Timestamp:  elapsed,
	}
}

// applyScore keeps the scoreboard plausible for scoring plays.
func (d *Driver) applyScore(e model.GameEvent) {
	home := e.ActingTeam == d.session.HomeTeam
	switch e.Kind {
	case model.Touchdown:
		d.clock.AddScore(home, touchdownPoints)
	case model.FieldGoal:
		d.clock.AddScore(home, fieldGoalPoints)
	case model.Safety:
		d.clock.AddScore(home, safetyPoints)
	default:
	}
}

// maybeCallComposure has the trailing side's coach react once the
// opponent's momentum peaks.
func (d *Driver) maybeCallComposure(ctx context.Context, e model.GameEvent) {
	if d.engine == nil {
		return
	}

	level, err := d.engine.MomentumLevel(ctx, e.ActingTeam)
	if err != nil || level < composureTrigger {
		return
	}

	coach := d.session.AwayCoach
	if e.ActingTeam == d.session.AwayTeam {
		coach = d.session.HomeCoach
	}
	if ok, err := d.engine.ActivateComposure(ctx, coach); err == nil && ok {
		d.logger.Info(ctx, "composure called against the surge",
			logger.String("coach", string(coach)),
			logger.String("surgingTeam", string(e.ActingTeam)),
		)
	}
}
