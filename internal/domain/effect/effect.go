// Package effect owns the set of active performance modifiers and
// applies them to player stat snapshots.
package effect

import "github.com/okian/huddle/internal/domain/model"

// Kind identifies a performance modifier.
type Kind int

// Effect kinds. The first three are positive (spawned on momentum highs),
// the rest negative (spawned on momentum lows).
const (
	ReactionTimeBoost Kind = iota
	AccuracyBoost
	BlockingEfficiency
	SnapTimingPenalty
	FocusReduction
	FalseStartIncrease
)

func (k Kind) String() string {
	switch k {
	case ReactionTimeBoost:
		return "reaction_time_boost"
	case AccuracyBoost:
		return "accuracy_boost"
	case BlockingEfficiency:
		return "blocking_efficiency"
	case SnapTimingPenalty:
		return "snap_timing_penalty"
	case FocusReduction:
		return "focus_reduction"
	case FalseStartIncrease:
		return "false_start_increase"
	default:
		return "unknown"
	}
}

// Positive reports whether the kind improves performance.
func (k Kind) Positive() bool {
	switch k {
	case ReactionTimeBoost, AccuracyBoost, BlockingEfficiency:
		return true
	default:
		return false
	}
}

// Effect is a temporary, decaying performance modifier targeting one
// team's players. Magnitude is a fraction of the affected stat
// (0.10 = 10%). Effects live in the engine's arena; players never own
// them.
type Effect struct {
	Kind          Kind
	Magnitude     float64
	TotalDuration float64
	Remaining     float64
	Team          model.Side
}

// Active reports whether the effect still has time remaining.
func (e Effect) Active() bool {
	return e.Remaining > 0
}
