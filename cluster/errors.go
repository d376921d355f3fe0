package cluster

import "errors"

var (
	// ErrInvalidConfig indicates a clusterer parameter is out of range.
	ErrInvalidConfig = errors.New("cluster: invalid config")
	// ErrNotImplemented is returned by stub Clusterer implementations.
	ErrNotImplemented = errors.New("cluster: not implemented")
	// ErrSplitInvariant indicates splitNonEvidence's positive-connected
	// decomposition did not preserve the pre-split node set; fatal per
	// the algorithm's own invariant check.
	ErrSplitInvariant = errors.New("cluster: split invariant violated")
)
