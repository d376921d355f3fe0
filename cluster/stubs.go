package cluster

import "github.com/katalvlaran/wugsim/wugraph"

// ChineseWhispersClusterer is a named extension point for the
// Chinese-Whispers label-propagation algorithm. Not implemented: it is
// reserved as a pluggable slot so a caller-supplied variant can slide
// in behind the Clusterer interface.
type ChineseWhispersClusterer struct{}

// Cluster implements Clusterer by always failing with ErrNotImplemented.
func (ChineseWhispersClusterer) Cluster(*wugraph.AnnotatedGraph) (map[int][]wugraph.Node, error) {
	return nil, ErrNotImplemented
}

// LouvainClusterer is a named extension point for Louvain modularity
// maximization. Not implemented: see ChineseWhispersClusterer.
type LouvainClusterer struct{}

// Cluster implements Clusterer by always failing with ErrNotImplemented.
func (LouvainClusterer) Cluster(*wugraph.AnnotatedGraph) (map[int][]wugraph.Node, error) {
	return nil, ErrNotImplemented
}

// SBMClusterer is a named extension point for stochastic
// block-model-based community detection. Not implemented: see
// ChineseWhispersClusterer.
type SBMClusterer struct{}

// Cluster implements Clusterer by always failing with ErrNotImplemented.
func (SBMClusterer) Cluster(*wugraph.AnnotatedGraph) (map[int][]wugraph.Node, error) {
	return nil, ErrNotImplemented
}
