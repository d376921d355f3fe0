package wugio

import "github.com/katalvlaran/wugsim/wugraph"

// Loader loads an opaque serialized ground-truth graph.
type Loader interface {
	Load(path string) (*wugraph.GroundTruthGraph, error)
}

// SnapshotWriter persists a point-in-time view of an annotated graph
// plus its current clustering. The format is deliberately opaque: this
// is one default implementation behind an interface, not a format
// contract.
type SnapshotWriter interface {
	WriteSnapshot(round int, annotated *wugraph.AnnotatedGraph, clusters map[int][]wugraph.Node) error
}

// MetricSink receives one row of checkpoint metrics per call.
type MetricSink interface {
	WriteMetrics(round int, metrics map[string]float64) error
}
