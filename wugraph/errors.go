package wugraph

import "errors"

// Sentinel errors for the wugraph package. See doc.go for an overview of
// when each is returned.
var (
	// ErrSelfLoop indicates an edge operation referenced the same node twice.
	ErrSelfLoop = errors.New("wugraph: self-loop not allowed")

	// ErrNodeOutOfRange indicates a node id outside [0, N) was referenced.
	ErrNodeOutOfRange = errors.New("wugraph: node id out of range")

	// ErrGraphFrozen indicates a mutation was attempted on a frozen GroundTruthGraph.
	ErrGraphFrozen = errors.New("wugraph: ground truth graph is frozen")

	// ErrAlreadyFrozen indicates Freeze was called more than once.
	ErrAlreadyFrozen = errors.New("wugraph: ground truth graph already frozen")
)
