// Package composure implements the coach-activated mitigation state
// machine that dampens negative momentum effects on its own team.
//
// The cycle is one-directional: Idle -> Active -> Cooldown -> Idle.
// Deactivating early starts the cooldown phase; it never bypasses it.
package composure

import "math"

// Status is the state machine's current phase.
type Status int

// Composure phases.
const (
	Idle Status = iota
	Active
	Cooldown
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Active:
		return "active"
	case Cooldown:
		return "cooldown"
	default:
		return "unknown"
	}
}

// Default mode configuration constants.
const (
	defaultDuration      = 30.0 // seconds of active mitigation
	defaultEffectiveness = 0.7
	defaultCooldown      = 90.0
	defaultCooldownFloor = 45.0 // leadership never shortens cooldown below this

	leadershipBase    = 0.5 // bonus for a zero-rated coach
	leadershipPerCent = 0.005
	cooldownRebate    = 0.5 // max fraction of cooldown a top coach sheds
)

// Mode is one team's composure state. Mutation happens only through
// transitions; callers read the phase and the mitigation factor.
type Mode struct {
	status            Status
	remainingActive   float64
	remainingCooldown float64
	effectiveness     float64

	duration          float64
	baseEffectiveness float64
	cooldown          float64
	cooldownFloor     float64
}

// New creates an idle composure mode with configuration options.
func New(opts ...Option) *Mode {
	m := &Mode{
		status:            Idle,
		duration:          defaultDuration,
		baseEffectiveness: defaultEffectiveness,
		cooldown:          defaultCooldown,
		cooldownFloor:     defaultCooldownFloor,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.cooldownFloor > m.cooldown {
		m.cooldownFloor = m.cooldown
	}
	return m
}

// CanActivate reports whether an activation would succeed.
func (m *Mode) CanActivate() bool {
	return m.status == Idle
}

// Activate starts the active phase, scaling effectiveness by the
// activating coach's leadership rating. It reports failure (state
// unchanged) when called outside Idle.
func (m *Mode) Activate(leadership int) bool {
	if !m.CanActivate() {
		return false
	}

	bonus := leadershipBonus(leadership)
	m.status = Active
	m.remainingActive = m.duration
	m.effectiveness = clamp01(m.baseEffectiveness * bonus)
	// A stronger leader also shortens the eventual cooldown, never
	// below the configured floor.
	m.remainingCooldown = math.Max(m.cooldownFloor, m.cooldown*(1-cooldownRebate*bonus))
	return true
}

// Deactivate stops the active phase early, moving straight to cooldown.
// It reports failure when the mode is not Active.
func (m *Mode) Deactivate() bool {
	if m.status != Active {
		return false
	}
	m.startCooldown()
	return true
}

// Update advances the phase timers.
func (m *Mode) Update(dt float64) {
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return
	}

	switch m.status {
	case Active:
		m.remainingActive -= dt
		if m.remainingActive <= 0 {
			m.startCooldown()
		}
	case Cooldown:
		m.remainingCooldown -= dt
		if m.remainingCooldown <= 0 {
			m.status = Idle
			m.remainingCooldown = 0
		}
	case Idle:
	}
}

func (m *Mode) startCooldown() {
	m.status = Cooldown
	m.remainingActive = 0
	m.effectiveness = 0
	if m.remainingCooldown <= 0 {
		m.remainingCooldown = m.cooldown
	}
}

// MitigationFactor returns the dampening applied to negative effects:
// the scaled effectiveness while Active, zero otherwise.
func (m *Mode) MitigationFactor() float64 {
	if m.status != Active {
		return 0
	}
	return m.effectiveness
}

// Status returns the current phase.
func (m *Mode) Status() Status {
	return m.status
}

// RemainingActive returns seconds left in the active phase.
func (m *Mode) RemainingActive() float64 {
	return m.remainingActive
}

// RemainingCooldown returns seconds left in the cooldown phase.
func (m *Mode) RemainingCooldown() float64 {
	return m.remainingCooldown
}

// Reset returns the mode to Idle, clearing all timers.
func (m *Mode) Reset() {
	m.status = Idle
	m.remainingActive = 0
	m.remainingCooldown = 0
	m.effectiveness = 0
}

// leadershipBonus maps a 0-100 rating onto a monotonic multiplier
// capped at 1.0.
func leadershipBonus(rating int) float64 {
	if rating < 0 {
		rating = 0
	}
	return math.Min(1.0, leadershipBase+float64(rating)*leadershipPerCent)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
