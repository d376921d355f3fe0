package simulate

import (
	"sync"

	"github.com/katalvlaran/wugsim/wugraph"
)

// RunMany runs one Simulation per ground truth graph concurrently,
// building each Simulation via factory so every run gets independently
// seeded strategies. Safe because ground truth graphs are read-only and
// each Simulation owns its own AnnotatedGraph. Results are returned in
// the same order as groundTruths; a factory or Run error at index i
// leaves Results[i] nil and is reported via Errors[i].
func RunMany(groundTruths []*wugraph.GroundTruthGraph, factory func(gt *wugraph.GroundTruthGraph) (*Simulation, error)) ([]*Result, []error) {
	results := make([]*Result, len(groundTruths))
	errs := make([]error, len(groundTruths))

	var wg sync.WaitGroup
	wg.Add(len(groundTruths))

	for i, gt := range groundTruths {
		go func(i int, gt *wugraph.GroundTruthGraph) {
			defer wg.Done()

			sim, err := factory(gt)
			if err != nil {
				errs[i] = err

				return
			}

			result, err := sim.Run()
			if err != nil {
				errs[i] = err

				return
			}
			results[i] = result
		}(i, gt)
	}

	wg.Wait()

	return results, errs
}
