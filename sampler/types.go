package sampler

import "github.com/katalvlaran/wugsim/wugraph"

// CandidateEdge is one edge a Sampler proposes for annotation. Weight
// is the caller's responsibility to fill in by querying the ground
// truth graph and feeding the result through an Annotator -- a Sampler
// only proposes (u, v) pairs.
type CandidateEdge struct {
	U, V wugraph.Node
}

// Sampler picks the next batch of candidate edges to query given the
// current ground-truth and annotated graphs.
type Sampler interface {
	// Sample returns the next batch of candidate pairs.
	Sample(groundTruth *wugraph.GroundTruthGraph, annotated *wugraph.AnnotatedGraph) []CandidateEdge
}

// Count is a knob that may be expressed either as an absolute integer
// or as a fraction of some total, the convention shared by NodesToAdd
// and EdgesToDraw.
type Count struct {
	// Absolute, when true, makes Value an exact count instead of a
	// fraction of the relevant total.
	Absolute bool
	Value    float64
}

// Resolve returns the concrete integer count for the given total,
// flooring a fractional count and capping at total if it exceeds it
// (asking for more than exists is not an error: callers get fewer).
func (c Count) Resolve(total int) int {
	var n int
	if c.Absolute {
		n = int(c.Value)
	} else {
		n = int(float64(total) * c.Value)
	}
	if n > total {
		n = total
	}
	if n < 0 {
		n = 0
	}

	return n
}
