// Package momentum tracks the bounded per-team momentum scalar and its
// decay toward neutral.
//
// Home and away are independent tracks, not a single zero-sum counter:
// each side's crowd is driven by a different, only partially correlated
// event stream, and home-field crowd density amplifies home-favoring
// adjustments through the stadium's venue bonus.
package momentum

import (
	"math"

	"github.com/okian/huddle/internal/domain/model"
)

// Default meter configuration constants.
const (
	defaultMinMomentum = 0.0
	defaultMaxMomentum = 100.0
	defaultDecayRate   = 0.1 // fraction of distance-to-neutral shed per second
	defaultInnerBand   = 0.2 // fraction of half-range
	defaultOuterBand   = 0.4
	defaultVenueBonus  = 1.0
	defaultEpsilon     = 1.0 // momentum points around a band edge
)

// Meter holds both teams' momentum values. Values are clamped to
// [min, max] at every mutation point; callers never see out-of-range or
// non-finite state.
type Meter struct {
	home float64
	away float64

	min        float64
	max        float64
	decayRate  float64
	innerBand  float64
	outerBand  float64
	venueBonus float64
	epsilon    float64
}

// New creates a meter at neutral with configuration options.
func New(opts ...Option) *Meter {
	m := &Meter{
		min:        defaultMinMomentum,
		max:        defaultMaxMomentum,
		decayRate:  defaultDecayRate,
		innerBand:  defaultInnerBand,
		outerBand:  defaultOuterBand,
		venueBonus: defaultVenueBonus,
		epsilon:    defaultEpsilon,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.home = m.neutral()
	m.away = m.neutral()
	return m
}

func (m *Meter) neutral() float64 {
	return (m.min + m.max) / 2
}

func (m *Meter) halfRange() float64 {
	return (m.max - m.min) / 2
}

// Get returns a side's current momentum value.
func (m *Meter) Get(side model.Side) float64 {
	if side == model.SideHome {
		return m.home
	}
	return m.away
}

// Set replaces a side's momentum value, clamping to bounds.
// Non-finite input resets the track to neutral.
func (m *Meter) Set(side model.Side, value float64) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		value = m.neutral()
	}
	value = m.clamp(value)
	if side == model.SideHome {
		m.home = value
		return
	}
	m.away = value
}

// Adjust shifts a side's momentum by delta, silently saturating at the
// bounds. Home-track adjustments are scaled by the venue bonus.
func (m *Meter) Adjust(side model.Side, delta float64) {
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return
	}
	if side == model.SideHome {
		delta *= m.venueBonus
	}
	m.Set(side, m.Get(side)+delta)
}

// Decay pulls each track a fraction decayRate*dt of its distance to
// neutral. A single step never overshoots neutral.
func (m *Meter) Decay(dt float64) {
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return
	}
	fraction := m.decayRate * dt
	if fraction > 1 {
		fraction = 1
	}
	neutral := m.neutral()
	m.home += (neutral - m.home) * fraction
	m.away += (neutral - m.away) * fraction
}

// Level classifies a side's momentum into its band.
func (m *Meter) Level(side model.Side) model.MomentumLevel {
	offset := m.Get(side) - m.neutral()
	inner := m.innerBand * m.halfRange()
	outer := m.outerBand * m.halfRange()

	switch {
	case offset >= outer:
		return model.LevelVeryHigh
	case offset >= inner:
		return model.LevelHigh
	case offset <= -outer:
		return model.LevelVeryLow
	case offset <= -inner:
		return model.LevelLow
	default:
		return model.LevelNeutral
	}
}

// Difference returns home minus away momentum.
func (m *Meter) Difference() float64 {
	return m.home - m.away
}

// AtThreshold reports whether a side's value sits within epsilon of the
// nearest band edge.
func (m *Meter) AtThreshold(side model.Side) bool {
	value := m.Get(side)
	neutral := m.neutral()
	inner := m.innerBand * m.halfRange()
	outer := m.outerBand * m.halfRange()

	edges := []float64{
		neutral - outer,
		neutral - inner,
		neutral + inner,
		neutral + outer,
	}
	for _, edge := range edges {
		if math.Abs(value-edge) < m.epsilon {
			return true
		}
	}
	return false
}

// Reset returns both tracks to neutral.
func (m *Meter) Reset() {
	m.home = m.neutral()
	m.away = m.neutral()
}

// Bounds returns the configured [min, max] range.
func (m *Meter) Bounds() (minValue, maxValue float64) {
	return m.min, m.max
}

// Neutral returns the midpoint both tracks decay toward.
func (m *Meter) Neutral() float64 {
	return m.neutral()
}

// SetDecayRate updates the decay rate at runtime. Non-positive or
// non-finite rates are ignored.
func (m *Meter) SetDecayRate(rate float64) {
	if rate > 0 && !math.IsInf(rate, 0) {
		m.decayRate = rate
	}
}

func (m *Meter) clamp(value float64) float64 {
	return math.Max(m.min, math.Min(m.max, value))
}
