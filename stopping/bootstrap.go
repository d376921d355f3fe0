package stopping

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/wugsim/internal/rng"
	"github.com/katalvlaran/wugsim/wugraph"
)

// Bound is a target confidence interval for Bootstrap.
type Bound struct {
	Lo, Hi float64
}

// Bootstrap is a resampling stopping criterion: build Rounds perturbed
// copies of the annotated graph via AnnotatedGraph.Perturb, compute
// Stat over each, take the Alpha-percentile interval of the resulting
// distribution, and compare it against Bound.
//
// legacyDirection, when true, keeps the historical comparison
// bound[0] <= percentile[0] and bound[1] <= percentile[1], which
// compares both endpoints in the same direction rather than
// bracketing. Default false uses the bracketing comparison
// Bound.Lo <= percentile[0] && percentile[1] <= Bound.Hi.
type Bootstrap struct {
	Stat            Statistic
	Rounds          int
	SampleShare     float64
	Alpha           float64
	Bound           Bound
	LikertLo        int
	LikertHi        int
	legacyDirection bool

	rng *rng.Rand
}

// NewBootstrap validates Rounds > 0, SampleShare in (0, 1], and Alpha
// in (0, 1).
func NewBootstrap(stat Statistic, rounds int, sampleShare, alpha float64, bound Bound, likertLo, likertHi int, seed int64) (*Bootstrap, error) {
	if rounds <= 0 {
		return nil, fmt.Errorf("%w: Rounds=%d must be > 0", ErrInvalidConfig, rounds)
	}
	if sampleShare <= 0 || sampleShare > 1 {
		return nil, fmt.Errorf("%w: SampleShare=%v must be in (0,1]", ErrInvalidConfig, sampleShare)
	}
	if alpha <= 0 || alpha >= 1 {
		return nil, fmt.Errorf("%w: Alpha=%v must be in (0,1)", ErrInvalidConfig, alpha)
	}

	return &Bootstrap{
		Stat: stat, Rounds: rounds, SampleShare: sampleShare, Alpha: alpha,
		Bound: bound, LikertLo: likertLo, LikertHi: likertHi, rng: rng.New(seed),
	}, nil
}

// WithLegacyDirection returns a copy of b using the historical
// unbracketed percentile comparison instead of the bracketing one.
func (b Bootstrap) WithLegacyDirection() *Bootstrap {
	b.legacyDirection = true

	return &b
}

// Done implements StoppingCriterion.
func (b *Bootstrap) Done(groundTruth *wugraph.GroundTruthGraph, annotated *wugraph.AnnotatedGraph) bool {
	stats := make([]float64, 0, b.Rounds)
	for i := 0; i < b.Rounds; i++ {
		resampled := annotated.Perturb(b.rng, b.SampleShare, b.LikertLo, b.LikertHi)
		stats = append(stats, b.Stat(groundTruth, resampled))
	}
	sort.Float64s(stats)

	loPct := ((1.0 - b.Alpha) / 2.0)
	hiPct := b.Alpha + loPct
	lo := percentile(stats, loPct)
	hi := percentile(stats, hiPct)

	if b.legacyDirection {
		return b.Bound.Lo <= lo && b.Bound.Hi <= hi
	}

	return b.Bound.Lo <= lo && hi <= b.Bound.Hi
}

// percentile returns the linear-interpolated p-th percentile (p in
// [0,1]) of a pre-sorted slice, matching numpy.percentile's default
// interpolation.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}

	rank := p * float64(len(sorted)-1)
	lowIdx := int(rank)
	if lowIdx >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := rank - float64(lowIdx)

	return sorted[lowIdx] + frac*(sorted[lowIdx+1]-sorted[lowIdx])
}
