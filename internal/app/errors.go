package app

import "errors"

// Sentinel kinds for orchestrator errors. Reference failures are
// no-ops reported to the caller; nothing here is fatal to the session.
var (
	ErrNotStarted    = errors.New("engine not started")
	ErrNoRoster      = errors.New("no roster store configured")
	ErrUnknownTeam   = errors.New("unknown team")
	ErrUnknownPlayer = errors.New("unknown player")
	ErrUnknownCoach  = errors.New("unknown coach")
)
