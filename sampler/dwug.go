package sampler

import (
	"fmt"

	"github.com/katalvlaran/wugsim/internal/rng"
	"github.com/katalvlaran/wugsim/wugraph"
)

// DWUGConfig parameterizes DWUGSampler. See NewDWUGSampler for
// validation.
type DWUGConfig struct {
	// NodesToAdd is the number (or fraction of |V(G_T)|) of fresh nodes
	// to bring into play each round.
	NodesToAdd Count
	// EdgesToDraw is the number (or fraction of the complete subgraph
	// edge count) of edges to emit per round.
	EdgesToDraw Count
	// MinMultiClusterSize (m) is the minimum cluster size to be treated
	// as "stable"; must be >= 2.
	MinMultiClusterSize int
	// RandomFallback (k): if a normal round yields zero edges, draw k
	// random edges instead. 0 disables the fallback.
	RandomFallback int
}

// DWUGSampler is the two-phase adaptive sampling strategy behind DWUG
// construction: an initial exploration round, then alternating
// combination and exploration phases driven by the current clustering
// of the annotated graph.
type DWUGSampler struct {
	cfg DWUGConfig
	rng *rng.Rand
}

// NewDWUGSampler validates cfg and constructs a DWUGSampler seeded by
// seed. MinMultiClusterSize < 2 is rejected: a cluster of size 1 is
// never treated as a multi-cluster.
func NewDWUGSampler(cfg DWUGConfig, seed int64) (*DWUGSampler, error) {
	if cfg.MinMultiClusterSize < 2 {
		return nil, fmt.Errorf("%w: MinMultiClusterSize=%d must be >= 2", ErrInvalidConfig, cfg.MinMultiClusterSize)
	}
	if cfg.RandomFallback < 0 {
		return nil, fmt.Errorf("%w: RandomFallback=%d must be >= 0", ErrInvalidConfig, cfg.RandomFallback)
	}

	return &DWUGSampler{cfg: cfg, rng: rng.New(seed)}, nil
}

// Sample implements Sampler.
func (s *DWUGSampler) Sample(groundTruth *wugraph.GroundTruthGraph, annotated *wugraph.AnnotatedGraph) []CandidateEdge {
	var edges []CandidateEdge

	if annotated.NumberOfEdges() == 0 {
		edges = s.initialRound(groundTruth)
	} else {
		edges = s.subsequentRound(groundTruth, annotated)
	}

	if len(edges) == 0 && s.cfg.RandomFallback > 0 {
		edges = s.randomEdges(groundTruth, s.cfg.RandomFallback)
	}

	return edges
}

// initialRound handles the very first call: pick NodesToAdd nodes
// uniformly at random, then explore within that subset with an
// EdgesToDraw budget.
func (s *DWUGSampler) initialRound(groundTruth *wugraph.GroundTruthGraph) []CandidateEdge {
	allNodes := groundTruth.Nodes()
	count := s.cfg.NodesToAdd.Resolve(len(allNodes))
	nodes := s.rng.SampleN(allNodes, count)

	budget := s.edgeBudget(len(nodes))

	return s.explorationWalk(nodes, budget)
}

// subsequentRound handles every round after the first: split small
// clusters into combination and exploration material, bring fresh
// nodes into play, then run both phases.
func (s *DWUGSampler) subsequentRound(groundTruth *wugraph.GroundTruthGraph, annotated *wugraph.AnnotatedGraph) []CandidateEdge {
	multiClusters, smallNodes := partitionClusters(annotated.CommunityNodes(), s.cfg.MinMultiClusterSize)

	combinationNodes, explorationNodes := splitByConnectivity(annotated, smallNodes, multiClusters)

	unobserved := unobservedNodes(groundTruth, annotated)
	count := s.cfg.NodesToAdd.Resolve(len(groundTruth.Nodes()))
	combinationNodes = append(combinationNodes, s.rng.SampleN(unobserved, count)...)

	out := s.combinationPhase(annotated, combinationNodes, multiClusters)
	budget := s.edgeBudget(len(explorationNodes))
	out = append(out, s.explorationWalk(explorationNodes, budget)...)

	return out
}

// edgeBudget resolves EdgesToDraw against the complete-subgraph edge
// count of a pool of the given size.
func (s *DWUGSampler) edgeBudget(poolSize int) int {
	complete := poolSize * (poolSize - 1) / 2
	if complete < 0 {
		complete = 0
	}

	return s.cfg.EdgesToDraw.Resolve(complete)
}

// partitionClusters splits the current community-node index into
// multi-clusters (size >= m) and the flattened member list of every
// smaller cluster.
func partitionClusters(communityNodes map[int][]int, m int) (multiClusters [][]int, smallNodes []int) {
	for _, members := range communityNodes {
		if len(members) >= m {
			multiClusters = append(multiClusters, members)
		} else {
			smallNodes = append(smallNodes, members...)
		}
	}

	return multiClusters, smallNodes
}

// splitByConnectivity sorts small-cluster nodes into the two phases: a
// node goes to combinationNodes if there exists at least one
// multi-cluster it is not yet connected to in the annotated graph;
// otherwise it goes to explorationNodes.
func splitByConnectivity(annotated *wugraph.AnnotatedGraph, nodes []int, multiClusters [][]int) (combinationNodes, explorationNodes []int) {
	for _, n := range nodes {
		needsBridge := false
		for _, cluster := range multiClusters {
			if !isConnectedToCluster(annotated, n, cluster) {
				needsBridge = true

				break
			}
		}

		if needsBridge {
			combinationNodes = append(combinationNodes, n)
		} else {
			explorationNodes = append(explorationNodes, n)
		}
	}

	return combinationNodes, explorationNodes
}

// isConnectedToCluster reports whether node n has a materialized edge
// to any member of cluster in the annotated graph.
func isConnectedToCluster(annotated *wugraph.AnnotatedGraph, n int, cluster []int) bool {
	for _, member := range cluster {
		if member == n {
			continue
		}
		if _, ok := annotated.GetEdge(n, member); ok {
			return true
		}
	}

	return false
}

// unobservedNodes returns V(G_T) \ V(G_A): ground-truth nodes whose
// annotated-graph label is still -1.
func unobservedNodes(groundTruth *wugraph.GroundTruthGraph, annotated *wugraph.AnnotatedGraph) []int {
	var out []int
	for _, n := range groundTruth.Nodes() {
		if annotated.Label(n) == -1 {
			out = append(out, n)
		}
	}

	return out
}

// combinationPhase emits the bridging edges: for every node in
// combinationNodes and every multi-cluster it is not yet connected to,
// one edge to a uniformly-chosen member of that cluster.
// Freshly-added nodes are, by construction, connected to nothing yet,
// so every multi-cluster is a bridge candidate for them.
func (s *DWUGSampler) combinationPhase(annotated *wugraph.AnnotatedGraph, nodes []int, multiClusters [][]int) []CandidateEdge {
	var out []CandidateEdge
	for _, n := range nodes {
		for _, cluster := range multiClusters {
			if len(cluster) == 0 || isConnectedToCluster(annotated, n, cluster) {
				continue
			}
			connection := s.rng.Choice(cluster)
			out = append(out, CandidateEdge{U: n, V: connection})
		}
	}

	return out
}

// explorationWalk performs a self-avoiding-step random walk restricted
// to nodes, emitting edges until budget is reached. Emits nothing if
// nodes has fewer than 2 members.
func (s *DWUGSampler) explorationWalk(nodes []int, budget int) []CandidateEdge {
	if len(nodes) <= 1 || budget <= 0 {
		return nil
	}

	out := make([]CandidateEdge, 0, budget)
	last := s.rng.Choice(nodes)

	for len(out) < budget {
		rest := make([]int, 0, len(nodes)-1)
		for _, n := range nodes {
			if n != last {
				rest = append(rest, n)
			}
		}
		if len(rest) == 0 {
			break
		}

		next := s.rng.Choice(rest)
		out = append(out, CandidateEdge{U: last, V: next})
		last = next
	}

	return out
}

// randomEdges draws k uniformly random distinct-endpoint pairs from the
// full node set, used for the randomFallback behavior.
func (s *DWUGSampler) randomEdges(groundTruth *wugraph.GroundTruthGraph, k int) []CandidateEdge {
	nodes := groundTruth.Nodes()
	out := make([]CandidateEdge, 0, k)
	for i := 0; i < k; i++ {
		pair := s.rng.SampleN(nodes, 2)
		if len(pair) < 2 {
			break
		}
		out = append(out, CandidateEdge{U: pair[0], V: pair[1]})
	}

	return out
}
