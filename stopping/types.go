package stopping

import "github.com/katalvlaran/wugsim/wugraph"

// StoppingCriterion is a pure predicate on the annotated graph (and,
// where relevant, the ground truth) deciding whether a simulation
// should halt.
type StoppingCriterion interface {
	Done(groundTruth *wugraph.GroundTruthGraph, annotated *wugraph.AnnotatedGraph) bool
}
