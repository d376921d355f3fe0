package metrics

import (
	"github.com/katalvlaran/wugsim/internal/rng"
	"github.com/katalvlaran/wugsim/wugraph"
)

// APD (Average Pointwise Distance) draws sampleSize uniformly random
// distinct-endpoint node pairs and returns the mean of their
// materialized edge weight, treating an unmaterialized pair as weight
// 0. Returns 0 for sampleSize <= 0 or fewer than two nodes.
func APD(g *wugraph.AnnotatedGraph, sampleSize int, r *rng.Rand) float64 {
	nodes := g.Nodes()
	if sampleSize <= 0 || len(nodes) < 2 {
		return 0
	}

	var sum float64
	for i := 0; i < sampleSize; i++ {
		pair := r.SampleN(nodes, 2)
		if len(pair) < 2 {
			break
		}
		if w, ok := g.GetEdge(pair[0], pair[1]); ok {
			sum += w
		}
	}

	return sum / float64(sampleSize)
}
