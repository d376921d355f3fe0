// Package cluster_test provides runnable examples for the clusterers.
package cluster_test

import (
	"fmt"

	"github.com/katalvlaran/wugsim/cluster"
	"github.com/katalvlaran/wugsim/wugraph"
)

// ExampleCorrelationClusterer_Cluster demonstrates clustering a planted
// clique: three mutually-agreeing usages plus one isolated node. The
// positive 3-clique has zero conflict, so the search short-circuits on
// its connected-components initialization.
func ExampleCorrelationClusterer_Cluster() {
	// 1) Build an annotated graph where judgements of 3.5 re-center to
	//    soft weight +1 (same-sense evidence).
	g := wugraph.NewAnnotatedGraph(4)
	_ = g.RecordJudgement(0, 1, wugraph.ValueJudgement(3.5))
	_ = g.RecordJudgement(1, 2, wugraph.ValueJudgement(3.5))
	_ = g.RecordJudgement(0, 2, wugraph.ValueJudgement(3.5))

	// 2) Construct the clusterer; the zero-loss short-circuit makes the
	//    annealing budget irrelevant here.
	c, err := cluster.NewCorrelationClusterer(cluster.CorrelationConfig{
		MaxAttempts:      50,
		MaxIters:         500,
		SplitNonEvidence: true,
	}, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	// 3) Clusters come back sorted by size descending: the clique
	//    first, then the isolated node as its own singleton.
	clusters, err := c.Cluster(g)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(clusters[0], clusters[1])
	// Output: [0 1 2] [3]
}
