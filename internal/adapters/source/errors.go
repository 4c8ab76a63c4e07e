package source

import "errors"

// Sentinel kinds for source errors.
var (
	ErrRequest  = errors.New("source request failed")
	ErrStatus   = errors.New("source returned unexpected status")
	ErrDecode   = errors.New("source payload decode failed")
	ErrUpstream = errors.New("source reported failure")
)
