package cluster

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/wugsim/anneal"
	"github.com/katalvlaran/wugsim/internal/rng"
	"github.com/katalvlaran/wugsim/wugraph"
)

// CorrelationConfig parameterizes CorrelationClusterer. See
// NewCorrelationClusterer for validation.
type CorrelationConfig struct {
	// SMax is the maximum number of clusters to try: the search loop
	// ranges k over 2..SMax-1. Default 10. Must be >= 3: that is the
	// smallest value for which the loop is non-empty.
	SMax int
	// MaxAttempts is anneal.Run's consecutive-non-improving-attempt bound.
	MaxAttempts int
	// MaxIters is anneal.Run's total outer-step bound.
	MaxIters int
	// InitialAssignment optionally seeds the search instead of deriving
	// one from connected components on positive edges.
	InitialAssignment map[wugraph.Node]int
	// SplitNonEvidence, when true, re-splits each winning cluster into
	// its positive-connected components after optimization.
	// NewCorrelationClusterer does not default it: the zero value false
	// leaves winning clusters unsplit.
	SplitNonEvidence bool
}

// CorrelationClusterer implements signed-edge correlation clustering:
// minimize the sum of positive-edge weight cut between clusters plus
// negative-edge weight kept within a cluster, searched via simulated
// annealing (package anneal).
type CorrelationClusterer struct {
	cfg CorrelationConfig
	rng *rng.Rand
}

// NewCorrelationClusterer validates cfg and constructs a
// CorrelationClusterer seeded by seed. SMax defaults to 10 when 0;
// MaxAttempts and MaxIters must be positive.
func NewCorrelationClusterer(cfg CorrelationConfig, seed int64) (*CorrelationClusterer, error) {
	if cfg.SMax == 0 {
		cfg.SMax = 10
	}
	if cfg.SMax < 3 {
		return nil, fmt.Errorf("%w: SMax=%d must be >= 3 (k=2..SMax-1 must be non-empty)", ErrInvalidConfig, cfg.SMax)
	}
	if cfg.MaxAttempts <= 0 {
		return nil, fmt.Errorf("%w: MaxAttempts=%d must be > 0", ErrInvalidConfig, cfg.MaxAttempts)
	}
	if cfg.MaxIters <= 0 {
		return nil, fmt.Errorf("%w: MaxIters=%d must be > 0", ErrInvalidConfig, cfg.MaxIters)
	}

	return &CorrelationClusterer{cfg: cfg, rng: rng.New(seed)}, nil
}

// signedEdge is one (u, v, softWeight) triple with softWeight != absent.
type signedEdge struct {
	u, v   int
	weight float64
}

// Cluster implements Clusterer: derive an initial assignment, search
// increasing cluster counts by annealing, pick the best, then split
// and sort the winner.
func (c *CorrelationClusterer) Cluster(annotated *wugraph.AnnotatedGraph) (map[int][]wugraph.Node, error) {
	nodes := annotated.Nodes()
	if len(nodes) == 0 {
		return map[int][]wugraph.Node{0: {}}, nil
	}

	index := make(map[wugraph.Node]int, len(nodes))
	for i, n := range nodes {
		index[n] = i
	}

	edges := signedEdgesOf(annotated)

	// Step 1: initial assignment.
	initial := c.initialState(annotated, nodes, index)

	// Step 2: trivial optimum short-circuit.
	lossFn := buildLossFn(index, edges)
	if lossFn(initial) == 0 {
		return c.finalize(nodes, initial, annotated)
	}

	// Step 3: search k = 2 .. SMax-1, two runs per k. The initial
	// assignment is seeded into the candidate pool so the search can
	// never return something worse than its own starting point.
	type candidate struct {
		state []int
		loss  float64
	}
	candidates := []candidate{{state: initial, loss: lossFn(initial)}}

	currentClusters := countDistinct(initial)
	for k := 2; k < c.cfg.SMax; k++ {
		maxValA := k
		if currentClusters > maxValA {
			maxValA = currentClusters
		}
		problem := anneal.Problem{Length: len(nodes), MaxValue: maxValA, Fitness: lossFn}
		stateA, lossA, err := anneal.Run(problem, anneal.DefaultSchedule(), clampState(initial, maxValA), c.cfg.MaxAttempts, c.cfg.MaxIters, c.rng)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate{state: stateA, loss: lossA})

		randomInit := make([]int, len(nodes))
		for i := range randomInit {
			randomInit[i] = c.rng.Intn(k)
		}
		problemB := anneal.Problem{Length: len(nodes), MaxValue: k, Fitness: lossFn}
		stateB, lossB, err := anneal.Run(problemB, anneal.DefaultSchedule(), randomInit, c.cfg.MaxAttempts, c.cfg.MaxIters, c.rng)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate{state: stateB, loss: lossB})
	}

	// Step 4: pick the minimum-loss entry. Equal-loss assignments are
	// common (collapsing two repelling clusters costs exactly what
	// cutting them apart does), so ties are resolved toward the finer
	// partition -- the one with more distinct clusters -- and only then
	// uniformly at random. Preferring the refinement keeps repelling
	// evidence separated instead of letting a coin flip collapse it.
	best := candidates[0]
	var ties []candidate
	ties = append(ties, best)
	for _, cand := range candidates[1:] {
		if cand.loss < best.loss {
			best = cand
			ties = []candidate{cand}
		} else if cand.loss == best.loss {
			ties = append(ties, cand)
		}
	}

	maxClusters := 0
	for _, cand := range ties {
		if n := countDistinct(cand.state); n > maxClusters {
			maxClusters = n
		}
	}
	finest := ties[:0]
	for _, cand := range ties {
		if countDistinct(cand.state) == maxClusters {
			finest = append(finest, cand)
		}
	}
	winner := finest[c.rng.Intn(len(finest))]

	return c.finalize(nodes, winner.state, annotated)
}

// initialState implements step 1: connected components on positive
// edges, unless the caller supplied an InitialAssignment.
func (c *CorrelationClusterer) initialState(annotated *wugraph.AnnotatedGraph, nodes []wugraph.Node, index map[wugraph.Node]int) []int {
	state := make([]int, len(nodes))

	if len(c.cfg.InitialAssignment) > 0 {
		for n, label := range c.cfg.InitialAssignment {
			if i, ok := index[n]; ok {
				state[i] = label
			}
		}

		return state
	}

	components, _ := (ConnectedComponentsClusterer{}).Cluster(annotated)
	for label, members := range components {
		for _, n := range members {
			if i, ok := index[n]; ok {
				state[i] = label
			}
		}
	}

	return state
}

// finalize implements steps 5-7: reconstruct, optionally split on
// non-evidence, sort by descending size, return.
func (c *CorrelationClusterer) finalize(nodes []wugraph.Node, state []int, annotated *wugraph.AnnotatedGraph) (map[int][]wugraph.Node, error) {
	raw := stateToClusters(nodes, state)

	var clusters [][]wugraph.Node
	for _, members := range raw {
		clusters = append(clusters, members)
	}

	if c.cfg.SplitNonEvidence {
		split, err := splitNonEvidence(clusters, annotated)
		if err != nil {
			return nil, err
		}
		clusters = split
	}

	sort.SliceStable(clusters, func(i, j int) bool {
		if len(clusters[i]) != len(clusters[j]) {
			return len(clusters[i]) > len(clusters[j])
		}

		return clusters[i][0] < clusters[j][0]
	})

	out := make(map[int][]wugraph.Node, len(clusters))
	for id, members := range clusters {
		out[id] = members
	}

	return out, nil
}

// splitNonEvidence implements step 6: within each cluster, rerun
// connected components on positive edges and split into its
// positive-connected pieces. Checks the node-count invariant.
func splitNonEvidence(clusters [][]wugraph.Node, annotated *wugraph.AnnotatedGraph) ([][]wugraph.Node, error) {
	var out [][]wugraph.Node
	var totalBefore, totalAfter int

	for _, members := range clusters {
		totalBefore += len(members)

		edges := positiveEdgesWithin(members, annotated)
		pieces := wugraph.ConnectedComponents(members, edges)
		out = append(out, pieces...)

		for _, p := range pieces {
			totalAfter += len(p)
		}
	}

	if totalBefore != totalAfter {
		return nil, fmt.Errorf("%w: %d nodes before split, %d after", ErrSplitInvariant, totalBefore, totalAfter)
	}

	return out, nil
}

// positiveEdgesWithin returns the subset of annotated's positive edges
// whose both endpoints are in members.
func positiveEdgesWithin(members []wugraph.Node, annotated *wugraph.AnnotatedGraph) []wugraph.Pair {
	set := make(map[wugraph.Node]bool, len(members))
	for _, n := range members {
		set[n] = true
	}

	var out []wugraph.Pair
	for _, p := range annotated.Edges() {
		if !set[p.U] || !set[p.V] {
			continue
		}
		soft, ok := annotated.SoftWeight(p.U, p.V)
		if ok && soft >= 0 {
			out = append(out, p)
		}
	}

	return out
}

// signedEdgesOf collects every materialized edge's soft weight.
func signedEdgesOf(annotated *wugraph.AnnotatedGraph) []signedEdge {
	var out []signedEdge
	for _, p := range annotated.Edges() {
		soft, ok := annotated.SoftWeight(p.U, p.V)
		if !ok {
			continue
		}
		out = append(out, signedEdge{u: p.U, v: p.V, weight: soft})
	}

	return out
}

// buildLossFn builds the conflict loss (positive weight cut between
// clusters plus negative weight kept within one) against a fixed
// node-index -> state-coordinate mapping.
func buildLossFn(index map[wugraph.Node]int, edges []signedEdge) func(state []int) float64 {
	return func(state []int) float64 {
		var loss float64
		for _, e := range edges {
			iu, iv := index[e.u], index[e.v]
			sameCluster := state[iu] == state[iv]

			if e.weight >= 0 {
				if !sameCluster {
					loss += e.weight
				}
			} else {
				if sameCluster {
					loss += -e.weight
				}
			}
		}

		return loss
	}
}

// countDistinct returns the number of distinct labels in state.
func countDistinct(state []int) int {
	seen := map[int]bool{}
	for _, v := range state {
		seen[v] = true
	}

	return len(seen)
}

// clampState rewrites any coordinate >= maxVal down into [0, maxVal)
// so an initial state built under one maxVal stays valid under a
// larger one.
func clampState(state []int, maxVal int) []int {
	out := make([]int, len(state))
	for i, v := range state {
		out[i] = v % maxVal
	}

	return out
}

// stateToClusters groups node indices by their assigned label,
// dropping empty labels implicitly (a label with no member never
// appears as a key) and returning sorted member lists.
func stateToClusters(nodes []wugraph.Node, state []int) map[int][]wugraph.Node {
	out := map[int][]wugraph.Node{}
	for i, n := range nodes {
		out[state[i]] = append(out[state[i]], n)
	}
	for _, members := range out {
		sort.Ints(members)
	}

	return out
}
