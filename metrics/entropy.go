package metrics

import (
	"math"

	"github.com/katalvlaran/wugsim/wugraph"
)

// EntropyApproximation estimates the entropy of g's unclustered edge
// structure: for every node, count how many of its edges carry a
// weight >= threshold, then average -log2((1+count)/n) over all nodes.
// Returns 0 for an empty graph.
func EntropyApproximation(g *wugraph.AnnotatedGraph, threshold float64) float64 {
	n := g.NumberOfNodes()
	if n == 0 {
		return 0
	}

	degreeOverThreshold := make(map[wugraph.Node]int, n)
	for weight, pairs := range g.GetWeightEdge() {
		if weight < threshold {
			continue
		}
		for _, p := range pairs {
			degreeOverThreshold[p.U]++
			degreeOverThreshold[p.V]++
		}
	}

	var sum float64
	for _, node := range g.Nodes() {
		sum += math.Log2(float64(1+degreeOverThreshold[node]) / float64(n))
	}

	return -(sum / float64(n))
}
