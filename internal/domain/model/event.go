// Package model contains domain types passed between engine layers.
package model

// EventKind identifies a significant game event that shifts momentum.
type EventKind int

// Game event kinds, ordered roughly by how strongly they move a crowd.
const (
	Touchdown EventKind = iota
	Interception
	Sack
	FourthDownStop
	Fumble
	FieldGoal
	Penalty
	Safety
	Turnover
)

// String returns the lowercase name used for config weights and metrics labels.
func (k EventKind) String() string {
	switch k {
	case Touchdown:
		return "touchdown"
	case Interception:
		return "interception"
	case Sack:
		return "sack"
	case FourthDownStop:
		return "fourth_down_stop"
	case Fumble:
		return "fumble"
	case FieldGoal:
		return "field_goal"
	case Penalty:
		return "penalty"
	case Safety:
		return "safety"
	case Turnover:
		return "turnover"
	default:
		return "unknown"
	}
}

// ParseEventKind maps a config key back to its kind.
// The second return is false for unknown names.
func ParseEventKind(name string) (EventKind, bool) {
	for k := Touchdown; k <= Turnover; k++ {
		if k.String() == name {
			return k, true
		}
	}
	return Touchdown, false
}

// GameEvent represents a single significant play submitted by the game
// simulation layer. An event is consumed exactly once; Impact is stamped
// by the impact resolver before the momentum meter sees it.
type GameEvent struct {
	EventID      string   // unique id for idempotency
	Kind         EventKind
	ActingTeam   TeamID   // team credited with the play
	ActingPlayer PlayerID // optional, empty when the play has no single author
	Impact       float64  // resolved momentum delta, set once by the resolver
	Timestamp    float64  // game time in seconds
	FavorsHome   bool     // derived: acting team is the home team
}
