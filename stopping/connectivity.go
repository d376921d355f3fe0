package stopping

import (
	"fmt"

	"github.com/katalvlaran/wugsim/wugraph"
)

// ClusterConnectivity halts once every pair of clusters of size >=
// MinSize is connected by at least MinEdges materialized edges (or, if
// FullyConnected is set, by every possible cross edge). If exactly one
// qualifying cluster exists, it must instead reach SizeThreshold.
type ClusterConnectivity struct {
	MinSize        int
	MinEdges       int
	FullyConnected bool
	SizeThreshold  int
}

// NewClusterConnectivity validates MinSize > 0 and (MinEdges > 0 unless
// FullyConnected). SizeThreshold <= 0 means "no single-cluster escape
// hatch": the criterion is then only ever satisfied by >= 2 qualifying
// clusters.
func NewClusterConnectivity(minSize, minEdges int, fullyConnected bool, sizeThreshold int) (*ClusterConnectivity, error) {
	if minSize <= 0 {
		return nil, fmt.Errorf("%w: MinSize=%d must be > 0", ErrInvalidConfig, minSize)
	}
	if !fullyConnected && minEdges <= 0 {
		return nil, fmt.Errorf("%w: MinEdges=%d must be > 0 unless FullyConnected", ErrInvalidConfig, minEdges)
	}

	return &ClusterConnectivity{MinSize: minSize, MinEdges: minEdges, FullyConnected: fullyConnected, SizeThreshold: sizeThreshold}, nil
}

// Done implements StoppingCriterion.
func (c *ClusterConnectivity) Done(_ *wugraph.GroundTruthGraph, annotated *wugraph.AnnotatedGraph) bool {
	var qualifying [][]int
	for _, members := range annotated.CommunityNodes() {
		if len(members) >= c.MinSize {
			qualifying = append(qualifying, members)
		}
	}

	if len(qualifying) == 0 {
		return false
	}
	if len(qualifying) == 1 {
		return c.SizeThreshold > 0 && len(qualifying[0]) >= c.SizeThreshold
	}

	for i := 0; i < len(qualifying); i++ {
		for j := i + 1; j < len(qualifying); j++ {
			minConnections := c.MinEdges
			if c.FullyConnected {
				minConnections = len(qualifying[i]) * len(qualifying[j])
			}
			if !connectionCount(annotated, qualifying[i], qualifying[j], minConnections) {
				return false
			}
		}
	}

	return true
}

// connectionCount reports whether at least minConnections materialized
// edges exist between a and b.
func connectionCount(annotated *wugraph.AnnotatedGraph, a, b []int, minConnections int) bool {
	count := 0
	for _, u := range a {
		for _, v := range b {
			if _, ok := annotated.GetEdge(u, v); ok {
				count++
				if count >= minConnections {
					return true
				}
			}
		}
	}

	return count >= minConnections
}
