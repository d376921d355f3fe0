package metrics

import "github.com/katalvlaran/wugsim/wugraph"

// ClusterNumber returns the number of distinct communities in
// annotated, counting only nodes with a non-negative label.
func ClusterNumber(annotated *wugraph.AnnotatedGraph) int {
	return len(annotated.CommunityNodes())
}
