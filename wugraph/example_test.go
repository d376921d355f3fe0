// Package wugraph_test provides runnable examples for the graph
// primitives, in the style of “go test -run Example”.
package wugraph_test

import (
	"fmt"

	"github.com/katalvlaran/wugsim/wugraph"
)

// ExampleAnnotatedGraph_RecordJudgement demonstrates multi-judgement
// aggregation: the materialized weight is always the median of the
// numeric judgements, with MISSING values kept in the history but
// excluded from the median.
func ExampleAnnotatedGraph_RecordJudgement() {
	// 1) Create an annotated graph over 5 nodes; no edges, all labels -1.
	g := wugraph.NewAnnotatedGraph(5)

	// 2) Record three annotators' views of edge (0, 1): two numeric
	//    ratings and one abstention.
	_ = g.RecordJudgement(0, 1, wugraph.ValueJudgement(3))
	_ = g.RecordJudgement(0, 1, wugraph.ValueJudgement(4))
	_ = g.RecordJudgement(0, 1, wugraph.MissingJudgement)

	// 3) The materialized weight is median(3, 4) = 3.5; the abstention
	//    still advanced the judgement clock.
	w, _ := g.GetEdge(0, 1)
	soft, _ := g.SoftWeight(0, 1)
	fmt.Printf("weight=%v soft=%v judgements=%d\n", w, soft, g.JudgementCount())
	// Output: weight=3.5 soft=1 judgements=3
}

// ExampleAnnotatedGraph_UpdateClusterLabels demonstrates wholesale
// label replacement: nodes missing from the new clustering fall back
// to -1 ("not observed").
func ExampleAnnotatedGraph_UpdateClusterLabels() {
	g := wugraph.NewAnnotatedGraph(4)

	// 1) Label nodes 0-2 across two clusters; node 3 stays unseen.
	g.UpdateClusterLabels(map[int][]wugraph.Node{0: {0, 1}, 1: {2}})
	fmt.Println(g.Labels())

	// 2) A second clustering pass replaces everything: node 2 is no
	//    longer mentioned, so its label resets to -1.
	g.UpdateClusterLabels(map[int][]wugraph.Node{0: {0, 1, 3}})
	fmt.Println(g.Labels())
	// Output:
	// [0 0 1 -1]
	// [0 0 -1 0]
}
