package wugraph

// GroundTruthGraph is a WeightedGraph with all edges materialized ahead
// of time. It is immutable for the lifetime of a simulation: edges may
// only be added before Freeze is called; afterward AddEdge returns
// ErrGraphFrozen. GetEdge/Neighbors/Edges always work, frozen or not.
//
// GroundTruthGraph is read concurrently by parallel simulations (see
// package simulate's RunMany); frozen is read/written under the
// embedded WeightedGraph's own lock so that is race-free without any
// extra synchronization here.
type GroundTruthGraph struct {
	*WeightedGraph

	frozen bool
}

// NewGroundTruthGraph constructs an empty, unfrozen GroundTruthGraph
// over n nodes. Callers populate it with AddEdge and then call Freeze
// before handing it to a Simulation.
func NewGroundTruthGraph(n int) *GroundTruthGraph {
	return &GroundTruthGraph{WeightedGraph: NewWeightedGraph(n)}
}

// Freeze marks the graph as immutable. Returns ErrAlreadyFrozen if
// called twice.
func (g *GroundTruthGraph) Freeze() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return ErrAlreadyFrozen
	}
	g.frozen = true

	return nil
}

// Frozen reports whether Freeze has been called.
func (g *GroundTruthGraph) Frozen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.frozen
}

// AddEdge overrides WeightedGraph.AddEdge to reject mutation once the
// graph is frozen.
func (g *GroundTruthGraph) AddEdge(u, v Node, w float64) error {
	if g.Frozen() {
		return ErrGraphFrozen
	}

	return g.WeightedGraph.AddEdge(u, v, w)
}
