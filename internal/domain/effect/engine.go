package effect

import (
	"math"

	"github.com/okian/huddle/internal/domain/model"
)

// Default engine configuration constants.
const (
	defaultMagnitudeCap  = 0.15 // effects stay modest so skill dominates
	defaultHighDuration  = 20.0 // seconds
	defaultPeakDuration  = 30.0
	defaultSpikeDuration = 8.0
	defaultSpikeScale    = 1.0 // spike magnitude as a fraction of the cap
	highScale            = 0.5 // High-band magnitude as a fraction of the cap
)

// MitigationSource reports how strongly a team's composure mode dampens
// negative effects against it, in [0, 1].
type MitigationSource interface {
	MitigationFactor(team model.Side) float64
}

// noMitigation is the fallback when no composure source is wired.
type noMitigation struct{}

func (noMitigation) MitigationFactor(model.Side) float64 { return 0 }

// Engine owns the active effect arena: a dense slice updated by straight
// iteration every tick.
type Engine struct {
	active []Effect

	magnitudeCap  float64
	highDuration  float64
	peakDuration  float64
	spikeDuration float64
	spikeScale    float64
	mitigation    MitigationSource
}

// NewEngine creates an effect engine with configuration options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		magnitudeCap:  defaultMagnitudeCap,
		highDuration:  defaultHighDuration,
		peakDuration:  defaultPeakDuration,
		spikeDuration: defaultSpikeDuration,
		spikeScale:    defaultSpikeScale,
		mitigation:    noMitigation{},
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// OnLevelChange spawns effects for a team whose momentum band changed.
// Crossing up into High/VeryHigh grants the positive set; dropping into
// Low/VeryLow inflicts the negative set. Magnitude scales with band rank
// under the configured cap.
func (e *Engine) OnLevelChange(team model.Side, oldLevel, newLevel model.MomentumLevel) {
	if oldLevel == newLevel {
		return
	}

	switch {
	case newLevel >= model.LevelHigh && oldLevel < model.LevelHigh,
		newLevel == model.LevelVeryHigh && oldLevel == model.LevelHigh:
		magnitude, duration := e.bandStrength(newLevel)
		e.Apply(Effect{Kind: ReactionTimeBoost, Magnitude: magnitude, TotalDuration: duration, Remaining: duration, Team: team})
		e.Apply(Effect{Kind: AccuracyBoost, Magnitude: magnitude, TotalDuration: duration, Remaining: duration, Team: team})
		e.Apply(Effect{Kind: BlockingEfficiency, Magnitude: magnitude, TotalDuration: duration, Remaining: duration, Team: team})

	case newLevel <= model.LevelLow && oldLevel > model.LevelLow,
		newLevel == model.LevelVeryLow && oldLevel == model.LevelLow:
		magnitude, duration := e.bandStrength(newLevel)
		e.Apply(Effect{Kind: SnapTimingPenalty, Magnitude: magnitude, TotalDuration: duration, Remaining: duration, Team: team})
		e.Apply(Effect{Kind: FocusReduction, Magnitude: magnitude, TotalDuration: duration, Remaining: duration, Team: team})
		e.Apply(Effect{Kind: FalseStartIncrease, Magnitude: magnitude, TotalDuration: duration, Remaining: duration, Team: team})
	}
}

// bandStrength maps a band to (magnitude, duration). High and Low share
// the half-cap tier; VeryHigh and VeryLow use the full cap.
func (e *Engine) bandStrength(level model.MomentumLevel) (magnitude, duration float64) {
	if level == model.LevelVeryHigh || level == model.LevelVeryLow {
		return e.magnitudeCap, e.peakDuration
	}
	return e.magnitudeCap * highScale, e.highDuration
}

// OnEvent spawns the short adrenaline spike certain plays trigger for
// the acting team, independent of momentum bands.
func (e *Engine) OnEvent(event model.GameEvent, team model.Side) {
	switch event.Kind {
	case model.FourthDownStop, model.Interception:
		e.Apply(Effect{
			Kind:          ReactionTimeBoost,
			Magnitude:     e.magnitudeCap * e.spikeScale,
			TotalDuration: e.spikeDuration,
			Remaining:     e.spikeDuration,
			Team:          team,
		})
	default:
	}
}

// Apply inserts an effect under the stacking rule: at most one active
// effect per (team, kind). A stronger spawn replaces the incumbent;
// otherwise the incumbent's remaining time extends to the longer of the
// two durations.
func (e *Engine) Apply(effect Effect) {
	effect = e.sanitize(effect)
	if effect.Remaining <= 0 || effect.Magnitude <= 0 {
		return
	}

	for i := range e.active {
		if e.active[i].Team != effect.Team || e.active[i].Kind != effect.Kind {
			continue
		}
		if effect.Magnitude > e.active[i].Magnitude {
			e.active[i] = effect
			return
		}
		if effect.Remaining > e.active[i].Remaining {
			e.active[i].Remaining = effect.Remaining
			if effect.TotalDuration > e.active[i].TotalDuration {
				e.active[i].TotalDuration = effect.TotalDuration
			}
		}
		return
	}

	e.active = append(e.active, effect)
}

// Remove drops the active effect matching (team, kind). Removing an
// absent effect is a no-op, making apply/remove an idempotent pair.
func (e *Engine) Remove(team model.Side, kind Kind) {
	for i := range e.active {
		if e.active[i].Team == team && e.active[i].Kind == kind {
			e.active = append(e.active[:i], e.active[i+1:]...)
			return
		}
	}
}

// Advance ages every active effect and drops those that expire. An
// effect is never retained at zero remaining time.
func (e *Engine) Advance(dt float64) {
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return
	}

	kept := e.active[:0]
	for _, effect := range e.active {
		effect.Remaining -= dt
		if effect.Remaining > 0 {
			kept = append(kept, effect)
		}
	}
	e.active = kept
}

// EffectiveMagnitude returns an effect's magnitude after composure
// mitigation. Only negative effects are dampened; composure protects
// the team using it without negating the opponent's bonuses.
func (e *Engine) EffectiveMagnitude(effect Effect) float64 {
	if effect.Kind.Positive() {
		return effect.Magnitude
	}
	factor := e.mitigation.MitigationFactor(effect.Team)
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	return effect.Magnitude * (1 - factor)
}

// ModifiedStats computes a player's effect-adjusted snapshot from their
// base stats. Momentum-immune players always read base stats. Stats are
// scaled by the signed sum of effective magnitudes per dimension and
// clamp at zero only.
func (e *Engine) ModifiedStats(team model.Side, base model.PlayerStats, immune bool) model.StatSnapshot {
	snapshot := model.StatSnapshot{PlayerStats: base}
	if immune {
		return snapshot
	}

	var speed, accuracy, strength, awareness, falseStart float64
	for _, effect := range e.active {
		if effect.Team != team {
			continue
		}
		magnitude := e.EffectiveMagnitude(effect)
		switch effect.Kind {
		case ReactionTimeBoost:
			speed += magnitude
			awareness += magnitude
		case AccuracyBoost:
			accuracy += magnitude
		case BlockingEfficiency:
			strength += magnitude
		case SnapTimingPenalty:
			awareness -= magnitude
		case FocusReduction:
			awareness -= magnitude
			accuracy -= magnitude
		case FalseStartIncrease:
			falseStart += magnitude
		}
	}

	snapshot.Speed = scaleStat(base.Speed, speed)
	snapshot.Accuracy = scaleStat(base.Accuracy, accuracy)
	snapshot.Strength = scaleStat(base.Strength, strength)
	snapshot.Awareness = scaleStat(base.Awareness, awareness)
	snapshot.FalseStartRisk = falseStart
	return snapshot
}

// scaleStat applies a signed fractional modifier, clamping at zero; a
// reduction cannot take a stat negative.
func scaleStat(base, modifier float64) float64 {
	value := base * (1 + modifier)
	if value < 0 {
		return 0
	}
	return value
}

// ActiveCount returns the number of active effects.
func (e *Engine) ActiveCount() int {
	return len(e.active)
}

// ActiveFor returns a copy of the effects targeting a team.
func (e *Engine) ActiveFor(team model.Side) []Effect {
	var out []Effect
	for _, effect := range e.active {
		if effect.Team == team {
			out = append(out, effect)
		}
	}
	return out
}

// ClearAll drops every active effect.
func (e *Engine) ClearAll() {
	e.active = e.active[:0]
}

// sanitize clamps caller-supplied magnitudes and durations to safe
// values rather than failing hard.
func (e *Engine) sanitize(effect Effect) Effect {
	if math.IsNaN(effect.Magnitude) || math.IsInf(effect.Magnitude, 0) || effect.Magnitude < 0 {
		effect.Magnitude = 0
	}
	if effect.Magnitude > e.magnitudeCap {
		effect.Magnitude = e.magnitudeCap
	}
	if math.IsNaN(effect.TotalDuration) || math.IsInf(effect.TotalDuration, 0) || effect.TotalDuration < 0 {
		effect.TotalDuration = 0
	}
	if math.IsNaN(effect.Remaining) || math.IsInf(effect.Remaining, 0) || effect.Remaining < 0 {
		effect.Remaining = 0
	}
	if effect.Remaining > effect.TotalDuration {
		effect.Remaining = effect.TotalDuration
	}
	return effect
}
