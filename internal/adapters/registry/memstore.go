package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/okian/huddle/internal/domain/model"
)

// MemStore implements Store with plain in-memory maps. Roster data is
// session-lifetime only; nothing persists.
type MemStore struct {
	mu      sync.RWMutex
	teams   map[model.TeamID]Team
	sides   map[model.Side]model.TeamID
	players map[model.PlayerID]Player
	roster  map[model.TeamID][]model.PlayerID
	coaches map[model.CoachID]Coach
	byTeam  map[model.TeamID]model.CoachID
	stadium *Stadium
}

// NewMemStore creates an empty roster store.
func NewMemStore() *MemStore {
	return &MemStore{
		teams:   make(map[model.TeamID]Team),
		sides:   make(map[model.Side]model.TeamID),
		players: make(map[model.PlayerID]Player),
		roster:  make(map[model.TeamID][]model.PlayerID),
		coaches: make(map[model.CoachID]Coach),
		byTeam:  make(map[model.TeamID]model.CoachID),
	}
}

// AddTeam registers a team on its side.
func (s *MemStore) AddTeam(_ context.Context, t Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[t.ID]; ok {
		return fmt.Errorf("team %q: %w", t.ID, ErrDuplicateID)
	}
	if _, ok := s.sides[t.Side]; ok {
		return fmt.Errorf("side %s: %w", t.Side, ErrSideTaken)
	}
	s.teams[t.ID] = t
	s.sides[t.Side] = t.ID
	return nil
}

// Team resolves a team by id.
func (s *MemStore) Team(_ context.Context, id model.TeamID) (Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.teams[id]
	if !ok {
		return Team{}, fmt.Errorf("team %q: %w", id, ErrNotFound)
	}
	return t, nil
}

// TeamBySide resolves the team occupying a side.
func (s *MemStore) TeamBySide(_ context.Context, side model.Side) (Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.sides[side]
	if !ok {
		return Team{}, fmt.Errorf("side %s: %w", side, ErrNotFound)
	}
	return s.teams[id], nil
}

// AddPlayer registers a player under its owning team.
func (s *MemStore) AddPlayer(_ context.Context, p Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[p.TeamID]; !ok {
		return fmt.Errorf("team %q: %w", p.TeamID, ErrNotFound)
	}
	if _, ok := s.players[p.ID]; ok {
		return fmt.Errorf("player %q: %w", p.ID, ErrDuplicateID)
	}
	s.players[p.ID] = p
	s.roster[p.TeamID] = append(s.roster[p.TeamID], p.ID)
	return nil
}

// Player resolves a player by id.
func (s *MemStore) Player(_ context.Context, id model.PlayerID) (Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.players[id]
	if !ok {
		return Player{}, fmt.Errorf("player %q: %w", id, ErrNotFound)
	}
	return p, nil
}

// PlayersFor lists a team's players in registration order.
func (s *MemStore) PlayersFor(_ context.Context, id model.TeamID) ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.teams[id]; !ok {
		return nil, fmt.Errorf("team %q: %w", id, ErrNotFound)
	}
	ids := s.roster[id]
	out := make([]Player, 0, len(ids))
	for _, pid := range ids {
		out = append(out, s.players[pid])
	}
	return out, nil
}

// SetCoach assigns a team's coach, replacing any previous assignment.
func (s *MemStore) SetCoach(_ context.Context, c Coach) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[c.TeamID]; !ok {
		return fmt.Errorf("team %q: %w", c.TeamID, ErrNotFound)
	}
	if prev, ok := s.byTeam[c.TeamID]; ok {
		delete(s.coaches, prev)
	}
	s.coaches[c.ID] = c
	s.byTeam[c.TeamID] = c.ID
	return nil
}

// Coach resolves a coach by id.
func (s *MemStore) Coach(_ context.Context, id model.CoachID) (Coach, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.coaches[id]
	if !ok {
		return Coach{}, fmt.Errorf("coach %q: %w", id, ErrNotFound)
	}
	return c, nil
}

// SetStadium sets the session venue.
func (s *MemStore) SetStadium(_ context.Context, st Stadium) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stadium = &st
	return nil
}

// Stadium returns the session venue.
func (s *MemStore) Stadium(_ context.Context) (Stadium, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.stadium == nil {
		return Stadium{}, ErrNoStadium
	}
	return *s.stadium, nil
}
