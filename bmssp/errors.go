package bmssp

import "errors"

// Sentinel errors returned by Compute for bad input. Neither is recoverable
// internally; both are usage preconditions the caller must fix.
var (
	// ErrEmptyGraph is returned when the underlying graph has zero vertices.
	ErrEmptyGraph = errors.New("bmssp: graph has no vertices")

	// ErrInvalidSource is returned when source is outside [0, n).
	ErrInvalidSource = errors.New("bmssp: source vertex out of range")
)
