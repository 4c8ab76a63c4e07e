package mockfeed

import "errors"

// Sentinel kinds for mockfeed errors.
var (
	ErrBadPage = errors.New("invalid page number")
)
