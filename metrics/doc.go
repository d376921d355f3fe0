// Package metrics implements pure evaluation statistics over
// AnnotatedGraph/GroundTruthGraph pairs: cluster counts, Adjusted Rand
// Index, Jensen-Shannon divergence between community-size
// distributions, Average Pointwise Distance, and an entropy
// approximation over weighted edges. None of these hold state; every
// function recomputes from its graph arguments.
package metrics
