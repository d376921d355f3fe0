package annotate

import (
	"github.com/katalvlaran/wugsim/internal/rng"
	"github.com/katalvlaran/wugsim/wugraph"
)

// PoolPolicy decides how a Pool of Annotators judges one edge.
type PoolPolicy int

const (
	// ReplicatedPolicy has every Annotator in the Pool judge the edge
	// independently; Judge returns one Judgement per Annotator.
	ReplicatedPolicy PoolPolicy = iota
	// RandomPolicy picks one Annotator uniformly at random per edge.
	RandomPolicy
)

// Pool is a set of Annotators sharing a selection policy. When more
// than one Annotator is registered with a Simulation, each edge is
// either judged by all of them or by one picked uniformly at random;
// Pool implements both behind one type.
type Pool struct {
	annotators []*Annotator
	policy     PoolPolicy
	rng        *rng.Rand
}

// NewPool constructs a Pool. A single-Annotator pool works under either
// policy (both reduce to "ask the one Annotator").
func NewPool(policy PoolPolicy, seed int64, annotators ...*Annotator) *Pool {
	return &Pool{annotators: annotators, policy: policy, rng: rng.New(seed)}
}

// Judge returns one Judgement per selected Annotator for the given true
// weight (t, ok).
func (p *Pool) Judge(t float64, ok bool) []wugraph.Judgement {
	if len(p.annotators) == 0 {
		return nil
	}

	if p.policy == RandomPolicy {
		chosen := p.annotators[p.rng.Intn(len(p.annotators))]

		return []wugraph.Judgement{chosen.Judge(t, ok)}
	}

	out := make([]wugraph.Judgement, len(p.annotators))
	for i, a := range p.annotators {
		out[i] = a.Judge(t, ok)
	}

	return out
}
