package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrNotStarted        = errors.New("service not started")
	ErrNoSource          = errors.New("no game source configured")
	ErrUnknownCompetitor = errors.New("unknown competitor")
	ErrSameCompetitor    = errors.New("competitors must differ")
)
