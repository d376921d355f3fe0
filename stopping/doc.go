// Package stopping implements the predicates a Simulation polls after
// each round to decide whether to halt: simple budget/coverage/
// connectivity checks, and stateful sliding-window convergence checks
// over a caller-supplied statistic (APD, entropy approximation,
// cluster count, ARI, JSD).
//
// Every StoppingCriterion is instance-owned: none keeps process-wide
// state, so two Simulations never share a window buffer even when
// built from the same constructor. A ConvergenceCriterion's DoneFor
// records an owner token on first use and returns
// ErrStoppingWindowReuse when a different token calls it before Reset.
// Done tracks no owner, and Simulation polls criteria through Done, so
// reuse is detected only for callers that go through DoneFor.
//
// Errors:
//   - ErrInvalidConfig: a criterion parameter out of range at construction.
//   - ErrStoppingWindowReuse: a ConvergenceCriterion used by a second owner without Reset.
package stopping
