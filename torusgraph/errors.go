package torusgraph

import "errors"

var (
	// ErrBadDimensions indicates a non-positive width or height, or a grid too large to index.
	ErrBadDimensions = errors.New("torusgraph: width and height must be positive")
	// ErrNodeNotFound indicates coordinates that do not resolve to a node of the graph.
	ErrNodeNotFound = errors.New("torusgraph: node not found")
	// ErrBadDirection indicates a Direction value outside Up..Down.
	ErrBadDirection = errors.New("torusgraph: unknown direction")
	// ErrMalformedID indicates text that is not a "(x,y)" node identity.
	ErrMalformedID = errors.New("torusgraph: malformed node identity")
)
