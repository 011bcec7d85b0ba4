package graph

import "errors"

// Sentinel errors returned by NewGraph and vertex-indexed accessors.
var (
	// ErrNaNWeight indicates that an edge weight was NaN. The algorithm does
	// not admit NaN weights; callers must filter them out before construction.
	ErrNaNWeight = errors.New("graph: NaN edge weight")

	// ErrNegativeWeight indicates that an edge weight was negative. bmssp is
	// specified only for non-negative weights.
	ErrNegativeWeight = errors.New("graph: negative edge weight")

	// ErrVertexOutOfRange indicates an index outside [0, Len()).
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")
)
