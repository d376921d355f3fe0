// Neighbor generation and acceptance: a working-state copy, a bounded
// proposal loop, and early termination once no improving move is found
// within maxAttempts consecutive tries.
package anneal

import (
	"math"

	"github.com/katalvlaran/wugsim/internal/rng"
)

// Run hill-climbs problem.Fitness starting from initState via
// simulated annealing: each step proposes one random single-coordinate
// move and accepts it when the Metropolis criterion passes at the
// schedule's current temperature. Run stops after maxIters total
// proposals, or after maxAttempts consecutive proposals in a row fail
// to lower the current fitness (rejected moves and accepted
// equal-or-worse moves both count), whichever comes first. attempts
// resets to zero only on a strictly improving move. It returns the best
// state seen and its fitness.
//
// initState is never mutated; Run validates it against problem before
// running.
func Run(problem Problem, schedule Schedule, initState []int, maxAttempts, maxIters int, r *rng.Rand) ([]int, float64, error) {
	if problem.Length <= 0 || problem.MaxValue <= 0 || problem.Fitness == nil {
		return nil, 0, ErrInvalidProblem
	}
	if len(initState) != problem.Length {
		return nil, 0, ErrInvalidState
	}
	for _, v := range initState {
		if v < 0 || v >= problem.MaxValue {
			return nil, 0, ErrInvalidState
		}
	}

	cur := make([]int, problem.Length)
	copy(cur, initState)
	curFitness := problem.Fitness(cur)

	// MaxValue of 1 leaves a single point in the search space; there is
	// no move to propose.
	if problem.MaxValue == 1 {
		return cur, curFitness, nil
	}

	best := make([]int, problem.Length)
	copy(best, cur)
	bestFitness := curFitness

	attempts := 0
	for iters := 0; iters < maxIters && attempts < maxAttempts; iters++ {
		temperature := schedule.Temperature(iters)

		coord := r.Intn(problem.Length)
		oldValue := cur[coord]
		newValue := r.Intn(problem.MaxValue - 1)
		if newValue >= oldValue {
			newValue++ // skip the no-op move
		}

		cur[coord] = newValue
		candidateFitness := problem.Fitness(cur)
		delta := candidateFitness - curFitness

		if delta < 0 || r.Float64() < math.Exp(-delta/temperature) {
			curFitness = candidateFitness
			if delta < 0 {
				attempts = 0
			} else {
				attempts++
			}

			if curFitness < bestFitness {
				bestFitness = curFitness
				copy(best, cur)
			}

			continue
		}

		cur[coord] = oldValue // reject: restore
		attempts++
	}

	return best, bestFitness, nil
}
