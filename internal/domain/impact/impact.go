// Package impact maps discrete game events onto signed momentum deltas.
//
// The resolver is pure and stateless given its inputs: identical event
// and clock readings always produce identical deltas, which keeps
// replay-based testing deterministic.
package impact

import (
	"math"

	"github.com/okian/huddle/internal/domain/model"
)

// Default resolver configuration constants.
const (
	defaultOpposingScale = 0.6
	defaultMaxTension    = 2.0
	defaultWeight        = 3.0

	tensionLateClose = 0.5
	tensionRivalry   = 0.3
	tensionPlayoff   = 0.2

	lateGameQuarter = 4
	lateGameSeconds = 300.0 // inside the final five minutes
	closeGameMargin = 8     // one possession
)

// Clock abstracts the game-state readings the tension scalar needs.
type Clock interface {
	// Quarter returns the current quarter, 1-based.
	Quarter() int
	// Remaining returns seconds left in the current quarter.
	Remaining() float64
	// ScoreDifference returns home score minus away score.
	ScoreDifference() int
	// Rivalry reports whether this is a rivalry game.
	Rivalry() bool
	// Playoff reports whether this is a playoff game.
	Playoff() bool
}

// Result carries the resolved deltas for both momentum tracks.
// Opposing is the correlated but independently-scaled negative nudge on
// the other side's track; a crowd's despair is not numerically identical
// to the rival crowd's joy.
type Result struct {
	Acting   float64
	Opposing float64
	Tension  float64
}

// Resolver computes signed momentum impacts from events and game context.
type Resolver struct {
	weights       map[model.EventKind]float64
	defaultWeight float64
	opposingScale float64
	maxTension    float64
}

// New creates a resolver with the default base magnitude table.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		weights:       defaultWeights(),
		defaultWeight: defaultWeight,
		opposingScale: defaultOpposingScale,
		maxTension:    defaultMaxTension,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// defaultWeights orders kinds by crowd reaction strength:
// Touchdown > Interception > Sack ~ FourthDownStop > Fumble ~ Turnover >
// FieldGoal > Penalty > Safety.
func defaultWeights() map[model.EventKind]float64 {
	return map[model.EventKind]float64{
		model.Touchdown:      12.0,
		model.Interception:   9.0,
		model.Sack:           7.0,
		model.FourthDownStop: 7.0,
		model.Fumble:         6.0,
		model.Turnover:       6.0,
		model.FieldGoal:      4.0,
		model.Penalty:        2.5,
		model.Safety:         1.5,
	}
}

// Resolve computes the acting and opposing momentum deltas for an event.
func (r *Resolver) Resolve(e model.GameEvent, clock Clock) Result {
	weight, ok := r.weights[e.Kind]
	if !ok || weight <= 0 || math.IsNaN(weight) {
		weight = r.defaultWeight
	}

	tension := r.tension(clock)
	acting := weight * tension

	return Result{
		Acting:   acting,
		Opposing: -acting * r.opposingScale,
		Tension:  tension,
	}
}

// tension derives the multiplier from game context: 1.0 baseline, +0.5
// when the game is late and close, +0.3 for rivalries, +0.2 for
// playoffs, additive and capped.
func (r *Resolver) tension(clock Clock) float64 {
	t := 1.0
	if clock == nil {
		return t
	}

	late := clock.Quarter() >= lateGameQuarter && clock.Remaining() <= lateGameSeconds
	tight := abs(clock.ScoreDifference()) <= closeGameMargin
	if late && tight {
		t += tensionLateClose
	}
	if clock.Rivalry() {
		t += tensionRivalry
	}
	if clock.Playoff() {
		t += tensionPlayoff
	}

	return math.Min(t, r.maxTension)
}

// Weight exposes the base magnitude configured for a kind.
func (r *Resolver) Weight(kind model.EventKind) float64 {
	if w, ok := r.weights[kind]; ok {
		return w
	}
	return r.defaultWeight
}

// OpposingScale exposes the configured opposing-track scale.
func (r *Resolver) OpposingScale() float64 {
	return r.opposingScale
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
