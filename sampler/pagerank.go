package sampler

import (
	"fmt"

	"github.com/katalvlaran/wugsim/internal/rng"
	"github.com/katalvlaran/wugsim/wugraph"
)

// PageRankSampler is a page-rank-style sampler with equal transition
// probability. TPCoef is the teleportation coefficient: TPCoef == 1
// degenerates to pure random sampling (every step teleports),
// TPCoef == 0 degenerates to a pure random walk (never teleports).
// RandomWalkSampler is the TPCoef == 0 special case exposed as its own
// constructor.
type PageRankSampler struct {
	sampleSize int
	tpCoef     float64
	start      *wugraph.Node
	rng        *rng.Rand
}

// NewPageRankSampler validates sampleSize > 0 and 0 <= tpCoef <= 1, and
// constructs a PageRankSampler seeded by seed. start, if non-nil, fixes
// the node every Sample call's walk begins from; otherwise each walk
// starts at a uniformly random node.
func NewPageRankSampler(sampleSize int, tpCoef float64, start *wugraph.Node, seed int64) (*PageRankSampler, error) {
	if sampleSize <= 0 {
		return nil, fmt.Errorf("%w: sampleSize=%d must be > 0", ErrInvalidConfig, sampleSize)
	}
	if tpCoef < 0 || tpCoef > 1 {
		return nil, fmt.Errorf("%w: tpCoef=%v must be in [0,1]", ErrInvalidConfig, tpCoef)
	}

	return &PageRankSampler{sampleSize: sampleSize, tpCoef: tpCoef, start: start, rng: rng.New(seed)}, nil
}

// NewRandomWalkSampler is PageRankSampler with tpCoef fixed at 0 (never
// teleport): a pure random walk over the ground truth's nodes.
func NewRandomWalkSampler(sampleSize int, start *wugraph.Node, seed int64) (*PageRankSampler, error) {
	return NewPageRankSampler(sampleSize, 0, start, seed)
}

// Sample implements Sampler.
func (s *PageRankSampler) Sample(groundTruth *wugraph.GroundTruthGraph, _ *wugraph.AnnotatedGraph) []CandidateEdge {
	nodes := groundTruth.Nodes()
	if len(nodes) < 2 {
		return nil
	}

	last := nodes[s.rng.Intn(len(nodes))]
	if s.start != nil {
		last = *s.start
	}

	out := make([]CandidateEdge, 0, s.sampleSize)
	for i := 0; i < s.sampleSize; i++ {
		if s.rng.Float64() < s.tpCoef {
			last = nodes[s.rng.Intn(len(nodes))]
		}
		next := nodes[s.rng.Intn(len(nodes))]
		for next == last {
			next = nodes[s.rng.Intn(len(nodes))]
		}

		out = append(out, CandidateEdge{U: last, V: next})
		last = next
	}

	return out
}
