package sampler

import (
	"fmt"

	"github.com/katalvlaran/wugsim/internal/rng"
	"github.com/katalvlaran/wugsim/wugraph"
)

// RandomSampler draws SampleSize uniformly random distinct-endpoint
// pairs from the ground truth's node set every round, ignoring the
// annotated graph entirely.
type RandomSampler struct {
	sampleSize int
	rng        *rng.Rand
}

// NewRandomSampler validates sampleSize > 0 and constructs a
// RandomSampler seeded by seed.
func NewRandomSampler(sampleSize int, seed int64) (*RandomSampler, error) {
	if sampleSize <= 0 {
		return nil, fmt.Errorf("%w: sampleSize=%d must be > 0", ErrInvalidConfig, sampleSize)
	}

	return &RandomSampler{sampleSize: sampleSize, rng: rng.New(seed)}, nil
}

// Sample implements Sampler.
func (s *RandomSampler) Sample(groundTruth *wugraph.GroundTruthGraph, _ *wugraph.AnnotatedGraph) []CandidateEdge {
	nodes := groundTruth.Nodes()
	out := make([]CandidateEdge, 0, s.sampleSize)
	for i := 0; i < s.sampleSize; i++ {
		pair := s.rng.SampleN(nodes, 2)
		if len(pair) < 2 {
			break
		}
		out = append(out, CandidateEdge{U: pair[0], V: pair[1]})
	}

	return out
}
