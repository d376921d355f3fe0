// Package sampler_test provides runnable examples for the sampling
// strategies.
package sampler_test

import (
	"fmt"

	"github.com/katalvlaran/wugsim/sampler"
	"github.com/katalvlaran/wugsim/wugraph"
)

// ExampleDWUGSampler_Sample demonstrates the initial round: with an
// empty annotated graph, the sampler picks a random node subset and
// walks it until the edge budget is spent.
func ExampleDWUGSampler_Sample() {
	// 1) Ground truth over 10 usages; the annotated graph starts empty.
	groundTruth := wugraph.NewGroundTruthGraph(10)
	annotated := wugraph.NewAnnotatedGraph(10)

	// 2) Bring 40% of the nodes into play and draw exactly 3 edges.
	s, err := sampler.NewDWUGSampler(sampler.DWUGConfig{
		NodesToAdd:          sampler.Count{Value: 0.4},
		EdgesToDraw:         sampler.Count{Absolute: true, Value: 3},
		MinMultiClusterSize: 2,
	}, 42)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	// 3) Which pairs come back depends on the seed; how many does not.
	edges := s.Sample(groundTruth, annotated)
	fmt.Printf("edges=%d\n", len(edges))
	// Output: edges=3
}
