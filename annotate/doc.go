// Package annotate implements the Annotator contract: given a true edge
// weight (or none, for a non-edge), produce a possibly-noisy judgement
// value or MISSING.
//
// What:
//
//   - Annotator: wraps an ErrorSampler (an integer-valued noise source),
//     an output range [Lo, Hi], an abstention probability PMissing, and
//     a SignPolicy deciding which direction the error is applied.
//   - Pool: a set of Annotators judging the same edge, either all of
//     them (ReplicatedPolicy) or one chosen uniformly at random
//     (RandomPolicy), matching the simulation loop's multi-annotator
//     fan-out.
//
// Why:
//
// Keeping the noise source behind the ErrorSampler interface lets the
// default Poisson-distributed error and any other integer-valued
// distribution share one Annotator implementation without hard-coding
// Poisson.
//
// Errors:
//
//	ErrInvalidConfig  - PMissing outside [0,1], or Lo >= Hi, at construction.
package annotate
