package model

// TeamID identifies a team in the registry.
type TeamID string

// PlayerID identifies a player in the registry.
type PlayerID string

// CoachID identifies a coach in the registry.
type CoachID string

// Side distinguishes the two momentum tracks of a game session.
type Side int

// The two sides of a game.
const (
	SideHome Side = iota
	SideAway
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideHome {
		return SideAway
	}
	return SideHome
}

func (s Side) String() string {
	if s == SideHome {
		return "home"
	}
	return "away"
}

// MomentumLevel is the banded classification of a momentum value.
type MomentumLevel int

// Momentum levels, ordered from worst to best.
const (
	LevelVeryLow MomentumLevel = iota
	LevelLow
	LevelNeutral
	LevelHigh
	LevelVeryHigh
)

func (l MomentumLevel) String() string {
	switch l {
	case LevelVeryLow:
		return "very_low"
	case LevelLow:
		return "low"
	case LevelNeutral:
		return "neutral"
	case LevelHigh:
		return "high"
	case LevelVeryHigh:
		return "very_high"
	default:
		return "unknown"
	}
}

// Position is a player's roster position. The effect engine applies
// modifiers uniformly; position exists for roster realism and future
// position-weighted effects.
type Position int

// Roster positions.
const (
	Quarterback Position = iota
	RunningBack
	WideReceiver
	TightEnd
	OffensiveLine
	DefensiveLine
	Linebacker
	Cornerback
	FreeSafety
	Kicker
)

// PlayerStats holds the continuous performance dimensions momentum
// effects project onto.
type PlayerStats struct {
	Speed     float64
	Accuracy  float64
	Strength  float64
	Awareness float64
	Composure float64
}

// StatSnapshot is a player's effect-adjusted view of their stats.
// FalseStartRisk is a discrete penalty-probability scalar outside the
// continuous stat set; it is zero unless a FalseStartIncrease effect is
// active against the player's team.
type StatSnapshot struct {
	PlayerStats
	FalseStartRisk float64
}
