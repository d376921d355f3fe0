// Package wugraph defines the dual-graph data model for Word Usage Graph
// (WUG) simulation: WeightedGraph, the immutable GroundTruthGraph built
// on top of it, and AnnotatedGraph, the graph under construction that
// aggregates annotator judgements into a running median weight per edge.
//
// What:
//
//   - WeightedGraph: undirected, weighted adjacency-list graph over
//     integer node ids in [0, N). Canonical edge key is the sorted pair.
//   - GroundTruthGraph: a WeightedGraph with every edge materialized,
//     frozen (read-only) once Freeze is called.
//   - AnnotatedGraph: a WeightedGraph whose edges grow one judgement at
//     a time; the current weight of an edge is always the median of its
//     non-MISSING judgement history, and a per-node cluster label array
//     is replaced wholesale on every clustering pass.
//   - Judgement: a tagged Value/Missing pair, replacing the source's
//     NaN-as-abstention sentinel.
//
// Why:
//
//   - Keep the hot loop of the simulation (record one judgement, look up
//     one edge, enumerate neighbors of one node) allocation-light and
//     lock-light, the same way core.Graph keeps its vertex and edge maps
//     under narrowly-scoped RWMutexes.
//   - Make "node not yet observed" (label -1) and "edge registered but
//     not materialized" (all judgements MISSING) first-class, explicit
//     states instead of sentinel floats.
//
// Errors:
//
//	ErrSelfLoop        - RecordJudgement or AddEdge called with u == v.
//	ErrNodeOutOfRange  - a node id outside [0, N) was referenced.
//	ErrGraphFrozen     - AddEdge called on a GroundTruthGraph after Freeze.
//	ErrAlreadyFrozen   - Freeze called twice on the same GroundTruthGraph.
//
// Concurrency:
//
// WeightedGraph guards its edge table and adjacency list with one
// sync.RWMutex, so a frozen GroundTruthGraph may be safely read by many
// parallel simulations at once (see package simulate) -- every reader
// only ever takes RLock. AnnotatedGraph layers its own two-lock split
// on top (muLabels for labels/communityNodes, muJudge for judgement
// history/lastEdge/judgementCount; see its own doc comment), but each
// AnnotatedGraph is exclusively owned by the one Simulation that
// mutates it regardless.
package wugraph
