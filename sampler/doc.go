// Package sampler implements edge-selection strategies that pick which
// ground-truth edges to query next, given the current state of the
// annotated graph.
//
// What:
//
//   - Sampler: the shared capability interface, (groundTruth, annotated)
//     -> candidate edges.
//   - DWUGSampler: the two-phase adaptive strategy --
//     an initial exploration round over a random node subset, then
//     alternating combination (bridge undecided nodes to established
//     multi-clusters) and exploration (self-avoiding random walk over
//     not-yet-clustered nodes) rounds.
//   - RandomSampler, RandomWalkSampler, PageRankSampler: the simpler
//     alternatives, pluggable behind the same contract.
//
// Why:
//
// Combination probes whether an undecided node belongs to an already
// established sense via bridging edges; exploration builds evidence
// within material that has no cluster yet. Splitting the two lets the
// sampler spend its budget where it is most informative instead of
// querying uniformly at random once any structure has emerged.
//
// Errors:
//
//	ErrInvalidConfig  - a DWUGSampler/RandomWalkSampler/PageRankSampler
//	                    parameter is out of range at construction.
package sampler
