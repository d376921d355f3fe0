package cluster

import "github.com/katalvlaran/wugsim/wugraph"

// Clusterer partitions an annotated graph's nodes into labeled
// communities, returning clusterId -> sorted node list.
type Clusterer interface {
	Cluster(annotated *wugraph.AnnotatedGraph) (map[int][]wugraph.Node, error)
}
