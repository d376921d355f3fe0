// Package cluster partitions an AnnotatedGraph's nodes into
// communities from its signed soft-weight edges.
//
// CorrelationClusterer frames the partition as a discrete optimization
// problem delegated to package anneal: minimize the sum of
// disagreement-weight across positive edges cut between clusters plus
// agreement-weight kept within clusters for negative edges.
// ConnectedComponentsClusterer is the degenerate special case (treat
// every positive edge as definitive, ignore weight magnitude) used both
// standalone and as CorrelationClusterer's own initializer.
//
// ChineseWhispersClusterer, LouvainClusterer, and SBMClusterer are
// named extension points with a documented Clusterer contract but no
// algorithm body; calling Cluster on one returns ErrNotImplemented.
//
// Errors:
//   - ErrInvalidConfig: a clusterer parameter out of range at construction.
//   - ErrNotImplemented: a stub Clusterer was invoked.
//   - ErrSplitInvariant: splitNonEvidence produced a node-count mismatch.
package cluster
