package stopping

import (
	"fmt"

	"github.com/katalvlaran/wugsim/wugraph"
)

// JudgementBudget halts once the annotated graph's judgement count
// reaches N: the simplest possible budget.
type JudgementBudget struct {
	N int
}

// NewJudgementBudget validates N > 0.
func NewJudgementBudget(n int) (*JudgementBudget, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: N=%d must be > 0", ErrInvalidConfig, n)
	}

	return &JudgementBudget{N: n}, nil
}

// Done implements StoppingCriterion.
func (c *JudgementBudget) Done(_ *wugraph.GroundTruthGraph, annotated *wugraph.AnnotatedGraph) bool {
	return annotated.JudgementCount() >= c.N
}

// EdgeCoverage halts once the annotated graph's materialized edge count
// reaches either an absolute count or a fraction of the ground truth's
// complete-graph edge count.
type EdgeCoverage struct {
	// Absolute, when true, makes Target an exact edge count; otherwise
	// Target is a fraction in [0, 1] of the complete graph's edge count.
	Absolute bool
	Target   float64
}

// NewEdgeCoverage validates Target > 0, and Target <= 1 when fractional.
func NewEdgeCoverage(absolute bool, target float64) (*EdgeCoverage, error) {
	if target <= 0 {
		return nil, fmt.Errorf("%w: Target=%v must be > 0", ErrInvalidConfig, target)
	}
	if !absolute && target > 1 {
		return nil, fmt.Errorf("%w: fractional Target=%v must be <= 1", ErrInvalidConfig, target)
	}

	return &EdgeCoverage{Absolute: absolute, Target: target}, nil
}

// Done implements StoppingCriterion.
func (c *EdgeCoverage) Done(groundTruth *wugraph.GroundTruthGraph, annotated *wugraph.AnnotatedGraph) bool {
	n := groundTruth.NumberOfNodes()
	complete := n * (n - 1) / 2

	threshold := c.Target
	if !c.Absolute {
		threshold = c.Target * float64(complete)
	}

	return float64(annotated.NumberOfEdges()) >= threshold
}
