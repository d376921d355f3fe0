package simulate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wugsim/annotate"
	"github.com/katalvlaran/wugsim/cluster"
	"github.com/katalvlaran/wugsim/sampler"
	"github.com/katalvlaran/wugsim/simulate"
	"github.com/katalvlaran/wugsim/stopping"
	"github.com/katalvlaran/wugsim/wugraph"
)

type zeroSampler struct{}

func (zeroSampler) Sample() int { return 0 }

func newTestAnnotatorPool(t *testing.T) *annotate.Pool {
	t.Helper()
	a, err := annotate.NewAnnotator(annotate.Config{ErrorSampler: zeroSampler{}, Lo: 1, Hi: 4, PMissing: 0}, 1)
	require.NoError(t, err)

	return annotate.NewPool(annotate.ReplicatedPolicy, 1, a)
}

func newTestGroundTruth(t *testing.T) *wugraph.GroundTruthGraph {
	t.Helper()
	gt := wugraph.NewGroundTruthGraph(4)
	require.NoError(t, gt.AddEdge(0, 1, 3))
	require.NoError(t, gt.AddEdge(1, 2, 3))
	require.NoError(t, gt.AddEdge(2, 3, 3))
	require.NoError(t, gt.AddEdge(0, 3, 3))
	require.NoError(t, gt.Freeze())

	return gt
}

func TestNewSimulation_InvalidConfig(t *testing.T) {
	gt := newTestGroundTruth(t)
	_, err := simulate.NewSimulation(gt, simulate.Config{})
	require.ErrorIs(t, err, simulate.ErrInvalidConfig)
}

func TestSimulation_RunReachesJudgementBudget(t *testing.T) {
	gt := newTestGroundTruth(t)

	s, err := sampler.NewRandomSampler(2, 3)
	require.NoError(t, err)

	budget, err := stopping.NewJudgementBudget(4)
	require.NoError(t, err)

	sim, err := simulate.NewSimulation(gt, simulate.Config{
		Sampler:       s,
		Annotators:    newTestAnnotatorPool(t),
		Stopping:      budget,
		MaxIterations: 50,
	})
	require.NoError(t, err)

	result, err := sim.Run()
	require.NoError(t, err)
	assert.True(t, result.Converged)
	assert.GreaterOrEqual(t, result.JudgementCount, 4)
}

func TestSimulation_MaxIterationsHaltsWithoutConvergence(t *testing.T) {
	gt := newTestGroundTruth(t)

	s, err := sampler.NewRandomSampler(1, 9)
	require.NoError(t, err)

	budget, err := stopping.NewJudgementBudget(1_000_000)
	require.NoError(t, err)

	sim, err := simulate.NewSimulation(gt, simulate.Config{
		Sampler:       s,
		Annotators:    newTestAnnotatorPool(t),
		Stopping:      budget,
		MaxIterations: 3,
	})
	require.NoError(t, err)

	result, err := sim.Run()
	require.NoError(t, err)
	assert.False(t, result.Converged)
	assert.Equal(t, 3, result.Rounds)
}

func TestSimulation_ClustererErrorAborts(t *testing.T) {
	gt := newTestGroundTruth(t)

	s, err := sampler.NewRandomSampler(1, 4)
	require.NoError(t, err)

	budget, err := stopping.NewJudgementBudget(10)
	require.NoError(t, err)

	sim, err := simulate.NewSimulation(gt, simulate.Config{
		Sampler:       s,
		Annotators:    newTestAnnotatorPool(t),
		Clusterer:     cluster.ChineseWhispersClusterer{},
		Stopping:      budget,
		MaxIterations: 5,
	})
	require.NoError(t, err)

	_, err = sim.Run()
	require.ErrorIs(t, err, cluster.ErrNotImplemented)
}

type recordingListener struct {
	ticks int
}

func (r *recordingListener) OnTick(*wugraph.AnnotatedGraph) {
	r.ticks++
}

func TestSimulation_ListenersNotifiedEveryRoundByDefault(t *testing.T) {
	gt := newTestGroundTruth(t)

	s, err := sampler.NewRandomSampler(1, 4)
	require.NoError(t, err)

	budget, err := stopping.NewJudgementBudget(1_000_000)
	require.NoError(t, err)

	listener := &recordingListener{}
	sim, err := simulate.NewSimulation(gt, simulate.Config{
		Sampler:       s,
		Annotators:    newTestAnnotatorPool(t),
		Stopping:      budget,
		Listeners:     []simulate.Listener{listener},
		MaxIterations: 5,
	})
	require.NoError(t, err)

	_, err = sim.Run()
	require.NoError(t, err)
	assert.Equal(t, 5, listener.ticks)
}
