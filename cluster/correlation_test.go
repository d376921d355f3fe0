package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wugsim/wugraph"
)

func newSoftWeightedGraph(t *testing.T, n int, edges map[[2]int]float64) *wugraph.AnnotatedGraph {
	t.Helper()
	g := wugraph.NewAnnotatedGraph(n)
	for pair, soft := range edges {
		require.NoError(t, g.RecordJudgement(pair[0], pair[1], wugraph.ValueJudgement(soft+2.5)))
	}

	return g
}

func TestNewCorrelationClusterer_InvalidConfig(t *testing.T) {
	_, err := NewCorrelationClusterer(CorrelationConfig{SMax: 1, MaxAttempts: 5, MaxIters: 5}, 1)
	require.ErrorIs(t, err, ErrInvalidConfig)

	// SMax=2 would make the k=2..SMax-1 search loop empty; rejected for
	// the same reason SMax=1 is.
	_, err = NewCorrelationClusterer(CorrelationConfig{SMax: 2, MaxAttempts: 5, MaxIters: 5}, 1)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewCorrelationClusterer(CorrelationConfig{MaxAttempts: 0, MaxIters: 5}, 1)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewCorrelationClusterer(CorrelationConfig{MaxAttempts: 5, MaxIters: 0}, 1)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

// A planted 3-clique plus an isolated node comes back as {0,1,2} and
// {3} with loss 0.
func TestCorrelationClusterer_PlantedClique(t *testing.T) {
	g := newSoftWeightedGraph(t, 4, map[[2]int]float64{
		{0, 1}: 1,
		{1, 2}: 1,
		{0, 2}: 1,
	})

	c, err := NewCorrelationClusterer(CorrelationConfig{MaxAttempts: 50, MaxIters: 200}, 11)
	require.NoError(t, err)

	clusters, err := c.Cluster(g)
	require.NoError(t, err)

	require.Len(t, clusters, 2)
	var sizes []int
	for _, members := range clusters {
		sizes = append(sizes, len(members))
	}
	assert.ElementsMatch(t, []int{3, 1}, sizes)
}

// Positive (0,1),(1,2), negative (0,2): the optimum is two clusters
// with loss exactly 1, and ties against the collapsed single cluster
// resolve toward the finer partition.
func TestCorrelationClusterer_RepellingEdge(t *testing.T) {
	g := newSoftWeightedGraph(t, 3, map[[2]int]float64{
		{0, 1}: 1,
		{1, 2}: 1,
		{0, 2}: -1,
	})

	c, err := NewCorrelationClusterer(CorrelationConfig{MaxAttempts: 50, MaxIters: 200}, 5)
	require.NoError(t, err)

	clusters, err := c.Cluster(g)
	require.NoError(t, err)
	require.Len(t, clusters, 2)

	index := map[wugraph.Node]int{}
	for id, members := range clusters {
		for _, n := range members {
			index[n] = id
		}
	}
	lossFn := buildLossFn(map[wugraph.Node]int{0: 0, 1: 1, 2: 2}, signedEdgesOf(g))
	state := []int{index[0], index[1], index[2]}
	assert.Equal(t, 1.0, lossFn(state))
}

func TestCorrelationClusterer_EmptyGraph(t *testing.T) {
	g := wugraph.NewAnnotatedGraph(0)
	c, err := NewCorrelationClusterer(CorrelationConfig{MaxAttempts: 10, MaxIters: 10}, 1)
	require.NoError(t, err)

	clusters, err := c.Cluster(g)
	require.NoError(t, err)
	assert.Equal(t, map[int][]wugraph.Node{0: {}}, clusters)
}

func TestConnectedComponentsClusterer(t *testing.T) {
	g := newSoftWeightedGraph(t, 4, map[[2]int]float64{
		{0, 1}: 1,
	})

	clusters, err := (ConnectedComponentsClusterer{}).Cluster(g)
	require.NoError(t, err)

	var sizes []int
	for _, members := range clusters {
		sizes = append(sizes, len(members))
	}
	assert.ElementsMatch(t, []int{2, 1, 1}, sizes)
}

func TestStubClusterers_NotImplemented(t *testing.T) {
	_, err := (ChineseWhispersClusterer{}).Cluster(nil)
	require.ErrorIs(t, err, ErrNotImplemented)

	_, err = (LouvainClusterer{}).Cluster(nil)
	require.ErrorIs(t, err, ErrNotImplemented)

	_, err = (SBMClusterer{}).Cluster(nil)
	require.ErrorIs(t, err, ErrNotImplemented)
}
