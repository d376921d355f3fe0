// Package anneal implements a small simulated-annealing primitive over
// fixed-length integer-vector states: given a fitness function, a
// cooling schedule, and an RNG, it hill-climbs toward a low-fitness
// state via randomized single-coordinate moves, accepting worsening
// moves with a temperature-dependent probability.
//
// It exists so that wugsim's correlation clustering (package cluster)
// never needs an external optimization library: the state space of a
// clustering problem is exactly "one cluster label per node," which
// fits the Problem/Run contract below without any graph- or
// ML-specific machinery.
//
// Errors:
//   - ErrInvalidProblem: Problem.Length <= 0 or Problem.MaxValue <= 0.
//   - ErrInvalidState: an initial state whose length doesn't match
//     Problem.Length, or whose values fall outside [0, MaxValue).
//
// Complexity: Run costs at most maxIters+1 fitness evaluations (one for
// the initial state, one per proposal), and terminates early after
// maxAttempts consecutive non-improving proposals; each
// evaluation's cost is the caller's Problem.Fitness.
package anneal
