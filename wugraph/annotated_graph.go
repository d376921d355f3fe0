package wugraph

import (
	"sort"
	"sync"

	"github.com/katalvlaran/wugsim/internal/rng"
)

// softWeightOffset centers the Likert scale (typically {1,2,3,4}) around
// zero so that sign encodes agreement/disagreement.
const softWeightOffset = 2.5

// AnnotatedGraph is the graph under construction during a simulation. It
// embeds a WeightedGraph for materialized weights, and additionally
// tracks, per canonical edge pair, the append-only judgement history
// needed to recompute the median on every RecordJudgement, plus the
// current cluster labeling of every node.
//
// muLabels guards labels/communityNodes (written wholesale by
// UpdateClusterLabels); muJudge guards history/lastEdge/judgementCount.
// The split lets a Listener read labels while a round is mutating
// judgement state, and mirrors core.Graph's muVert/muEdgeAdj split.
type AnnotatedGraph struct {
	*WeightedGraph

	muLabels       sync.RWMutex
	labels         []int         // labels[n] == -1 means unseen
	communityNodes map[int][]int // cluster id -> member nodes

	muJudge        sync.RWMutex
	history        map[Pair][]Judgement
	lastEdge       Pair
	hasLastEdge    bool
	judgementCount int
}

// NewAnnotatedGraph constructs an empty AnnotatedGraph over n nodes, all
// labels initialized to -1 ("not yet observed").
func NewAnnotatedGraph(n int) *AnnotatedGraph {
	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}

	return &AnnotatedGraph{
		WeightedGraph:  NewWeightedGraph(n),
		labels:         labels,
		communityNodes: make(map[int][]int),
		history:        make(map[Pair][]Judgement),
	}
}

// RecordJudgement appends one judgement (possibly MISSING) to the
// history of edge (u, v), recomputes the median over the non-MISSING
// values, and updates the materialized weight accordingly. Rejects
// u == v with ErrSelfLoop. Rejects out-of-range nodes with
// ErrNodeOutOfRange.
//
// Steps:
//  1. Canonicalize (u, v).
//  2. Append the judgement to history (kept even when Missing).
//  3. Recompute the median of the non-Missing values.
//  4. If every judgement so far is Missing, do not materialize a
//     weight: only lastEdge and judgementCount advance.
//  5. Otherwise update the materialized weight/soft weight and the
//     adjacency index.
//
// Complexity: O(k log k) in the current history length k of this edge
// (dominated by the median sort).
func (g *AnnotatedGraph) RecordJudgement(u, v Node, j Judgement) error {
	if u == v {
		return ErrSelfLoop
	}
	if u < 0 || u >= g.numNodes || v < 0 || v >= g.numNodes {
		return ErrNodeOutOfRange
	}

	pair := canonicalPair(u, v)

	g.muJudge.Lock()
	defer g.muJudge.Unlock()

	g.history[pair] = append(g.history[pair], j)
	g.lastEdge = pair
	g.hasLastEdge = true
	g.judgementCount++

	median, ok := medianOf(g.history[pair])
	if !ok {
		// All judgements so far are MISSING: registered, not materialized.
		return nil
	}

	// AddEdge takes its own lock on the embedded WeightedGraph; safe to
	// call while holding muJudge since the two locks guard disjoint state.
	return g.WeightedGraph.AddEdge(pair.U, pair.V, median)
}

// medianOf returns the median of the non-Missing values in hist and
// whether at least one such value exists.
func medianOf(hist []Judgement) (float64, bool) {
	values := make([]float64, 0, len(hist))
	for _, j := range hist {
		if !j.Missing {
			values = append(values, j.Value)
		}
	}
	if len(values) == 0 {
		return 0, false
	}

	sort.Float64s(values)
	mid := len(values) / 2
	if len(values)%2 == 1 {
		return values[mid], true
	}

	return (values[mid-1] + values[mid]) / 2, true
}

// SoftWeight returns GetEdge's weight re-centered around zero
// (weight - 2.5), and whether the edge is materialized.
func (g *AnnotatedGraph) SoftWeight(u, v Node) (float64, bool) {
	w, ok := g.GetEdge(u, v)
	if !ok {
		return 0, false
	}

	return w - softWeightOffset, true
}

// JudgementCount returns the total number of RecordJudgement calls,
// including ones that recorded a MISSING value. Monotone
// non-decreasing; the canonical progress clock for stopping criteria.
func (g *AnnotatedGraph) JudgementCount() int {
	g.muJudge.RLock()
	defer g.muJudge.RUnlock()

	return g.judgementCount
}

// LastEdge returns the most recently touched edge pair and whether any
// judgement has been recorded yet.
func (g *AnnotatedGraph) LastEdge() (Pair, bool) {
	g.muJudge.RLock()
	defer g.muJudge.RUnlock()

	return g.lastEdge, g.hasLastEdge
}

// History returns a defensive copy of the judgement history of edge
// (u, v); empty if the edge has never been touched.
func (g *AnnotatedGraph) History(u, v Node) []Judgement {
	pair := canonicalPair(u, v)

	g.muJudge.RLock()
	defer g.muJudge.RUnlock()

	hist := g.history[pair]
	out := make([]Judgement, len(hist))
	copy(out, hist)

	return out
}

// Label returns the current cluster label of node n, or -1 if unseen.
func (g *AnnotatedGraph) Label(n Node) int {
	g.muLabels.RLock()
	defer g.muLabels.RUnlock()

	if n < 0 || n >= len(g.labels) {
		return -1
	}

	return g.labels[n]
}

// Labels returns a defensive copy of the full label array.
func (g *AnnotatedGraph) Labels() []int {
	g.muLabels.RLock()
	defer g.muLabels.RUnlock()

	out := make([]int, len(g.labels))
	copy(out, g.labels)

	return out
}

// CommunityNodes returns a defensive copy of the cluster id -> member
// nodes index.
func (g *AnnotatedGraph) CommunityNodes() map[int][]int {
	g.muLabels.RLock()
	defer g.muLabels.RUnlock()

	out := make(map[int][]int, len(g.communityNodes))
	for k, v := range g.communityNodes {
		members := make([]int, len(v))
		copy(members, v)
		out[k] = members
	}

	return out
}

// UpdateClusterLabels replaces the community-node index wholesale and
// recomputes every node's label: nodes mentioned in clusters get that
// cluster's id; every other node is reset to -1 ("not observed").
//
// Complexity: O(N + sum of cluster sizes).
func (g *AnnotatedGraph) UpdateClusterLabels(clusters map[int][]Node) {
	g.muLabels.Lock()
	defer g.muLabels.Unlock()

	fresh := make([]int, len(g.labels))
	for i := range fresh {
		fresh[i] = -1
	}

	stored := make(map[int][]int, len(clusters))
	for clusterID, members := range clusters {
		copied := make([]int, len(members))
		copy(copied, members)
		stored[clusterID] = copied

		for _, n := range members {
			if n >= 0 && n < len(fresh) {
				fresh[n] = clusterID
			}
		}
	}

	g.labels = fresh
	g.communityNodes = stored
}

// GetWeightEdge returns the inverse index weight -> list of edges
// carrying that materialized weight. Used by
// metrics.EntropyApproximation.
func (g *AnnotatedGraph) GetWeightEdge() map[float64][]Pair {
	pairs := g.Edges()

	out := make(map[float64][]Pair)
	for _, p := range pairs {
		w, ok := g.GetEdge(p.U, p.V)
		if !ok {
			continue
		}
		out[w] = append(out[w], p)
	}

	return out
}

// Summary reports aggregate counts for logging/debugging.
type Summary struct {
	Nodes       int
	Edges       int
	Judgements  int
	Communities int
}

// Perturb builds a new AnnotatedGraph containing every edge of g, plus
// one extra uniformly-drawn Likert judgement on a randomly chosen
// fraction (share) of those edges. Used by stopping.Bootstrap to build
// resampled graphs for a confidence-interval test.
func (g *AnnotatedGraph) Perturb(r *rng.Rand, share float64, likertLo, likertHi int) *AnnotatedGraph {
	out := NewAnnotatedGraph(g.NumberOfNodes())

	edges := g.Edges()
	for _, p := range edges {
		w, ok := g.GetEdge(p.U, p.V)
		if !ok {
			continue
		}
		_ = out.RecordJudgement(p.U, p.V, ValueJudgement(w))
	}

	if len(edges) == 0 {
		return out
	}

	k := int(float64(len(edges)) * share)
	idx := r.SampleN(indexRange(len(edges)), k)

	for _, i := range idx {
		p := edges[i]
		extra := likertLo + r.Intn(likertHi-likertLo+1)
		_ = out.RecordJudgement(p.U, p.V, ValueJudgement(float64(extra)))
	}

	return out
}

func indexRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// Summary computes the current Summary of the graph.
func (g *AnnotatedGraph) Summary() Summary {
	g.muLabels.RLock()
	communities := len(g.communityNodes)
	g.muLabels.RUnlock()

	return Summary{
		Nodes:       g.NumberOfNodes(),
		Edges:       g.NumberOfEdges(),
		Judgements:  g.JudgementCount(),
		Communities: communities,
	}
}
