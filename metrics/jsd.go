package metrics

import (
	"math"

	"github.com/katalvlaran/wugsim/wugraph"
)

// JSD computes the squared Jensen-Shannon distance (base 2) between the
// community-size probability distributions of reference and current,
// zero-padded to equal length when their community counts differ.
func JSD(reference, current *wugraph.AnnotatedGraph) float64 {
	refProb := communityProbabilities(reference)
	curProb := communityProbabilities(current)

	for len(curProb) < len(refProb) {
		curProb = append(curProb, 0)
	}
	for len(refProb) < len(curProb) {
		refProb = append(refProb, 0)
	}

	mixture := make([]float64, len(refProb))
	for i := range mixture {
		mixture[i] = (refProb[i] + curProb[i]) / 2
	}

	return (klDivergence(refProb, mixture) + klDivergence(curProb, mixture)) / 2
}

// communityProbabilities returns the sorted-by-cluster-id distribution
// of cluster sizes as fractions of the total node count.
func communityProbabilities(g *wugraph.AnnotatedGraph) []float64 {
	communities := g.CommunityNodes()
	n := g.NumberOfNodes()
	if n == 0 || len(communities) == 0 {
		return nil
	}

	maxID := 0
	for id := range communities {
		if id > maxID {
			maxID = id
		}
	}

	out := make([]float64, maxID+1)
	for id, members := range communities {
		if id < 0 {
			continue
		}
		out[id] = float64(len(members)) / float64(n)
	}

	return out
}

// klDivergence computes the base-2 Kullback-Leibler divergence of p
// from q, treating 0*log2(0/q) as 0.
func klDivergence(p, q []float64) float64 {
	var sum float64
	for i := range p {
		if p[i] == 0 {
			continue
		}
		sum += p[i] * math.Log2(p[i]/q[i])
	}

	return sum
}
