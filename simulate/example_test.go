// Package simulate_test provides a runnable example of wiring one full
// simulation together.
package simulate_test

import (
	"fmt"

	"github.com/katalvlaran/wugsim/annotate"
	"github.com/katalvlaran/wugsim/sampler"
	"github.com/katalvlaran/wugsim/simulate"
	"github.com/katalvlaran/wugsim/stopping"
	"github.com/katalvlaran/wugsim/wugraph"
)

type noiselessSampler struct{}

func (noiselessSampler) Sample() int { return 0 }

// Example demonstrates the round loop end to end: a random sampler
// feeding a noiseless annotator until the judgement budget is reached.
func Example() {
	// 1) A 4-usage ground truth: one clear sense ring.
	gt := wugraph.NewGroundTruthGraph(4)
	_ = gt.AddEdge(0, 1, 4)
	_ = gt.AddEdge(1, 2, 4)
	_ = gt.AddEdge(2, 3, 4)
	_ = gt.AddEdge(0, 3, 4)
	_ = gt.Freeze()

	// 2) Two candidate pairs per round, one judgement each.
	rs, err := sampler.NewRandomSampler(2, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	annotator, err := annotate.NewAnnotator(annotate.Config{
		ErrorSampler: noiselessSampler{},
		Lo:           1,
		Hi:           4,
	}, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	// 3) Stop as soon as 6 judgements have been recorded: three rounds.
	budget, err := stopping.NewJudgementBudget(6)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	sim, err := simulate.NewSimulation(gt, simulate.Config{
		Sampler:    rs,
		Annotators: annotate.NewPool(annotate.ReplicatedPolicy, 2, annotator),
		Stopping:   budget,
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	result, err := sim.Run()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("rounds=%d judgements=%d converged=%v\n", result.Rounds, result.JudgementCount, result.Converged)
	// Output: rounds=3 judgements=6 converged=true
}
