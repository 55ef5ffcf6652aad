package registry

import "errors"

// Sentinel kinds for roster errors.
var (
	ErrNotFound    = errors.New("record not found")
	ErrDuplicateID = errors.New("duplicate id")
	ErrSideTaken   = errors.New("side already has a team")
	ErrNoStadium   = errors.New("no stadium configured")
)
