// Package simulate orchestrates one experiment: repeatedly sample
// candidate edges from the ground truth, annotate them, optionally
// recluster, notify listeners, and check a stopping criterion, per
// round, until the criterion fires or MaxIterations is hit.
//
// RunMany fans out the same Simulation shape over several independent
// ground-truth graphs concurrently: each run gets its own Simulation
// (and therefore its own AnnotatedGraph and strategy RNGs), and the
// ground truth graphs are read-only, so no synchronization is needed
// beyond collecting results.
//
// Errors:
//   - ErrInvalidConfig: a Config field out of range at construction.
package simulate
