package cluster

import (
	"sort"

	"github.com/katalvlaran/wugsim/wugraph"
)

// ConnectedComponentsClusterer treats every edge with soft weight >= 0
// as definitive same-sense evidence and everything else (negative soft
// weight, or no recorded edge) as absent, then clusters by connected
// components over that positive-edge-only view. It is both a
// standalone pluggable strategy and CorrelationClusterer's own
// initializer / non-evidence-split routine.
type ConnectedComponentsClusterer struct{}

// Cluster implements Clusterer.
func (ConnectedComponentsClusterer) Cluster(annotated *wugraph.AnnotatedGraph) (map[int][]wugraph.Node, error) {
	nodes := annotated.Nodes()
	positiveEdges := positiveEdgesOf(annotated)

	components := wugraph.ConnectedComponents(nodes, positiveEdges)

	return componentsToClusterMap(components), nil
}

// positiveEdgesOf returns every edge pair whose soft weight is >= 0,
// i.e. same-sense evidence.
func positiveEdgesOf(annotated *wugraph.AnnotatedGraph) []wugraph.Pair {
	var out []wugraph.Pair
	for _, p := range annotated.Edges() {
		soft, ok := annotated.SoftWeight(p.U, p.V)
		if ok && soft >= 0 {
			out = append(out, p)
		}
	}

	return out
}

// componentsToClusterMap assigns contiguous cluster ids 0..k-1 to a
// connected-components result, ordering by descending size then by
// smallest member node for deterministic output.
func componentsToClusterMap(components [][]wugraph.Node) map[int][]wugraph.Node {
	sort.SliceStable(components, func(i, j int) bool {
		if len(components[i]) != len(components[j]) {
			return len(components[i]) > len(components[j])
		}

		return components[i][0] < components[j][0]
	})

	out := make(map[int][]wugraph.Node, len(components))
	for id, members := range components {
		out[id] = members
	}

	return out
}
