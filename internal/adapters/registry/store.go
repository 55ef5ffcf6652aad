// Package registry defines the roster store interface and errors.
//
// Team exclusively owns its players and its coach; Player and Coach
// carry only id-based back-references resolved through the store, never
// a second ownership path.
package registry

import (
	"context"

	"github.com/okian/huddle/internal/domain/model"
)

// Team is a roster record. Side distinguishes the home and away tracks
// of the session.
type Team struct {
	ID     model.TeamID
	Name   string
	Side   model.Side
	Morale float64
}

// Player is a roster record owned by exactly one team.
type Player struct {
	ID             model.PlayerID
	Name           string
	TeamID         model.TeamID
	Position       model.Position
	BaseStats      model.PlayerStats
	ComposureLevel float64
	MomentumImmune bool
}

// Coach leads exactly one team and can trigger its composure mode.
type Coach struct {
	ID         model.CoachID
	Name       string
	TeamID     model.TeamID
	Leadership int // 0-100 rating
}

// Stadium holds the venue's static metadata consumed by the momentum
// meter and crowd model.
type Stadium struct {
	ID                 string
	Name               string
	Capacity           int
	RivalryFactor      float64
	HomeFieldAdvantage float64 // multiplicative scale on home-track adjustments
}

// Store provides read/write access to the session roster.
type Store interface {
	// AddTeam registers a team. Returns ErrDuplicateID on id reuse and
	// ErrSideTaken when the side already has a team.
	AddTeam(ctx context.Context, t Team) error

	// Team resolves a team by id. Returns ErrNotFound for unknown ids.
	Team(ctx context.Context, id model.TeamID) (Team, error)

	// TeamBySide resolves the team occupying a side.
	TeamBySide(ctx context.Context, side model.Side) (Team, error)

	// AddPlayer registers a player under its team. The team must exist.
	AddPlayer(ctx context.Context, p Player) error

	// Player resolves a player by id.
	Player(ctx context.Context, id model.PlayerID) (Player, error)

	// PlayersFor lists a team's players.
	PlayersFor(ctx context.Context, id model.TeamID) ([]Player, error)

	// SetCoach assigns a team's coach, replacing any previous one.
	SetCoach(ctx context.Context, c Coach) error

	// Coach resolves a coach by id.
	Coach(ctx context.Context, id model.CoachID) (Coach, error)

	// SetStadium sets the session venue.
	SetStadium(ctx context.Context, s Stadium) error

	// Stadium returns the session venue, or ErrNoStadium when unset.
	Stadium(ctx context.Context) (Stadium, error)
}
