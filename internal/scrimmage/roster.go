// Package scrimmage drives a synthetic four-quarter game through the
// engine: a seeded roster, a weighted random event stream, and score
// bookkeeping. It backs the demo binary and integration tests.
package scrimmage

import (
	"context"
	"fmt"

	"github.com/okian/huddle/internal/adapters/registry"
	"github.com/okian/huddle/internal/domain/model"
)

// Session identifies the seeded demo records.
type Session struct {
	HomeTeam  model.TeamID
	AwayTeam  model.TeamID
	HomeCoach model.CoachID
	AwayCoach model.CoachID
}

// rosterSpec is one seeded player.
type rosterSpec struct {
	name     string
	position model.Position
	stats    model.PlayerStats
	immune   bool
}

// demoRoster is a minimal but position-plausible eleven-ish per side.
func demoRoster() []rosterSpec {
	return []rosterSpec{
		{name: "QB1", position: model.Quarterback, stats: model.PlayerStats{Speed: 62, Accuracy: 88, Strength: 58, Awareness: 90, Composure: 85}},
		{name: "RB1", position: model.RunningBack, stats: model.PlayerStats{Speed: 91, Accuracy: 60, Strength: 78, Awareness: 72, Composure: 70}},
		{name: "WR1", position: model.WideReceiver, stats: model.PlayerStats{Speed: 94, Accuracy: 74, Strength: 55, Awareness: 76, Composure: 68}},
		{name: "TE1", position: model.TightEnd, stats: model.PlayerStats{Speed: 74, Accuracy: 66, Strength: 82, Awareness: 74, Composure: 72}},
		{name: "OL1", position: model.OffensiveLine, stats: model.PlayerStats{Speed: 50, Accuracy: 40, Strength: 95, Awareness: 70, Composure: 80}},
		{name: "DL1", position: model.DefensiveLine, stats: model.PlayerStats{Speed: 68, Accuracy: 45, Strength: 93, Awareness: 68, Composure: 66}},
		{name: "LB1", position: model.Linebacker, stats: model.PlayerStats{Speed: 80, Accuracy: 55, Strength: 85, Awareness: 82, Composure: 74}},
		{name: "CB1", position: model.Cornerback, stats: model.PlayerStats{Speed: 93, Accuracy: 58, Strength: 60, Awareness: 84, Composure: 71}},
		{name: "FS1", position: model.FreeSafety, stats: model.PlayerStats{Speed: 88, Accuracy: 56, Strength: 64, Awareness: 86, Composure: 77}},
		// The veteran kicker has seen everything; momentum does not touch him.
		{name: "K1", position: model.Kicker, stats: model.PlayerStats{Speed: 55, Accuracy: 92, Strength: 62, Awareness: 80, Composure: 95}, immune: true},
	}
}

// SeedSession populates the store with two teams, their rosters and
// coaches, and the venue.
func SeedSession(ctx context.Context, store registry.Store) (Session, error) {
	s := Session{
		HomeTeam:  "harbor-city-sharks",
		AwayTeam:  "blackridge-wolves",
		HomeCoach: "coach-sharks",
		AwayCoach: "coach-wolves",
	}

	if err := store.AddTeam(ctx, registry.Team{ID: s.HomeTeam, Name: "Harbor City Sharks", Side: model.SideHome, Morale: 0.6}); err != nil {
		return Session{}, fmt.Errorf("seed home team: %w", err)
	}
	if err := store.AddTeam(ctx, registry.Team{ID: s.AwayTeam, Name: "Blackridge Wolves", Side: model.SideAway, Morale: 0.5}); err != nil {
		return Session{}, fmt.Errorf("seed away team: %w", err)
	}

	for _, teamID := range []model.TeamID{s.HomeTeam, s.AwayTeam} {
		for _, spec := range demoRoster() {
			p := registry.Player{
				ID:             model.PlayerID(fmt.Sprintf("%s-%s", teamID, spec.name)),
				Name:           spec.name,
				TeamID:         teamID,
				Position:       spec.position,
				BaseStats:      spec.stats,
				ComposureLevel: spec.stats.Composure / 100,
				MomentumImmune: spec.immune,
			}
			if err := store.AddPlayer(ctx, p); err != nil {
				return Session{}, fmt.Errorf("seed player %s: %w", p.ID, err)
			}
		}
	}

	if err := store.SetCoach(ctx, registry.Coach{ID: s.HomeCoach, Name: "M. Calloway", TeamID: s.HomeTeam, Leadership: 82}); err != nil {
		return Session{}, fmt.Errorf("seed home coach: %w", err)
	}
	if err := store.SetCoach(ctx, registry.Coach{ID: s.AwayCoach, Name: "D. Reyes", TeamID: s.AwayTeam, Leadership: 67}); err != nil {
		return Session{}, fmt.Errorf("seed away coach: %w", err)
	}

	if err := store.SetStadium(ctx, registry.Stadium{
		ID:                 "harbor-bowl",
		Name:               "Harbor Bowl",
		Capacity:           64000,
		RivalryFactor:      0.8,
		HomeFieldAdvantage: 1.15,
	}); err != nil {
		return Session{}, fmt.Errorf("seed stadium: %w", err)
	}

	return s, nil
}
