package wugraph

import "sort"

// AddEdge inserts or updates the edge (min(u,v), max(u,v)) with weight w.
// Idempotent with respect to insertion: calling it twice for the same
// pair overwrites the weight rather than erroring.
//
// Complexity: O(1) amortized.
func (g *WeightedGraph) AddEdge(u, v Node, w float64) error {
	if u == v {
		return ErrSelfLoop
	}
	if u < 0 || u >= g.numNodes || v < 0 || v >= g.numNodes {
		return ErrNodeOutOfRange
	}

	pair := canonicalPair(u, v)

	g.mu.Lock()
	defer g.mu.Unlock()

	_, existed := g.edges[pair]
	g.edges[pair] = w

	if !existed {
		if g.adjacency[pair.U] == nil {
			g.adjacency[pair.U] = make(map[Node]struct{})
		}
		if g.adjacency[pair.V] == nil {
			g.adjacency[pair.V] = make(map[Node]struct{})
		}
		g.adjacency[pair.U][pair.V] = struct{}{}
		g.adjacency[pair.V][pair.U] = struct{}{}
	}

	return nil
}

// GetEdge returns the current weight of edge (u, v) and whether it
// exists. A missing return of (0, false) means the edge is either
// registered-but-not-materialized (AnnotatedGraph) or simply absent
// (GroundTruthGraph) -- both are "non-comparable" from the caller's
// perspective.
//
// Complexity: O(1).
func (g *WeightedGraph) GetEdge(u, v Node) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.edges[canonicalPair(u, v)]

	return w, ok
}

// NumberOfNodes returns the fixed node count N.
func (g *WeightedGraph) NumberOfNodes() int {
	return g.numNodes
}

// NumberOfEdges returns the number of materialized edges.
func (g *WeightedGraph) NumberOfEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Nodes returns all node ids [0, N) in ascending order.
func (g *WeightedGraph) Nodes() []Node {
	nodes := make([]Node, g.numNodes)
	for i := range nodes {
		nodes[i] = i
	}

	return nodes
}

// Edges returns every materialized edge as a Pair, sorted for
// deterministic iteration.
func (g *WeightedGraph) Edges() []Pair {
	g.mu.RLock()
	defer g.mu.RUnlock()

	pairs := make([]Pair, 0, len(g.edges))
	for p := range g.edges {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].U != pairs[j].U {
			return pairs[i].U < pairs[j].U
		}

		return pairs[i].V < pairs[j].V
	})

	return pairs
}

// Neighbors returns the materialized neighbors of u, sorted ascending.
func (g *WeightedGraph) Neighbors(u Node) []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	set := g.adjacency[u]
	out := make([]Node, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Ints(out)

	return out
}
