package registry

import "sync"

// Default game clock constants.
const (
	quartersPerGame   = 4
	secondsPerQuarter = 900.0
)

// GameClock is the session's score and time bookkeeping. The engine
// only reads it; the game simulation layer owns the writes. It
// satisfies the impact resolver's Clock interface.
type GameClock struct {
	mu        sync.RWMutex
	quarter   int
	remaining float64
	homeScore int
	awayScore int
	rivalry   bool
	playoff   bool
}

// NewGameClock starts at the top of the first quarter.
func NewGameClock() *GameClock {
	return &GameClock{
		quarter:   1,
		remaining: secondsPerQuarter,
	}
}

// Quarter returns the current quarter, 1-based.
func (c *GameClock) Quarter() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.quarter
}

// Remaining returns seconds left in the current quarter.
func (c *GameClock) Remaining() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.remaining
}

// ScoreDifference returns home score minus away score.
func (c *GameClock) ScoreDifference() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.homeScore - c.awayScore
}

// Scores returns the current home and away scores.
func (c *GameClock) Scores() (home, away int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.homeScore, c.awayScore
}

// Rivalry reports whether this is a rivalry game.
func (c *GameClock) Rivalry() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rivalry
}

// Playoff reports whether this is a playoff game.
func (c *GameClock) Playoff() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.playoff
}

// SetFlags marks the game as rivalry and/or playoff.
func (c *GameClock) SetFlags(rivalry, playoff bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rivalry = rivalry
	c.playoff = playoff
}

// SetTime positions the clock. Out-of-range values are clamped.
func (c *GameClock) SetTime(quarter int, remaining float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quarter < 1 {
		quarter = 1
	}
	if remaining < 0 {
		remaining = 0
	}
	if remaining > secondsPerQuarter {
		remaining = secondsPerQuarter
	}
	c.quarter = quarter
	c.remaining = remaining
}

// Tick advances game time, rolling over quarters until regulation ends.
func (c *GameClock) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.remaining -= dt
	for c.remaining <= 0 && c.quarter < quartersPerGame {
		c.quarter++
		c.remaining += secondsPerQuarter
	}
	if c.remaining < 0 {
		c.remaining = 0
	}
}

// Finished reports whether regulation time has expired.
func (c *GameClock) Finished() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.quarter >= quartersPerGame && c.remaining <= 0
}

// AddScore credits points to one side.
func (c *GameClock) AddScore(home bool, points int) {
	if points <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if home {
		c.homeScore += points
		return
	}
	c.awayScore += points
}
