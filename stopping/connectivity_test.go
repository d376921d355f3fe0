package stopping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wugsim/wugraph"
)

func TestClusterConnectivity_TwoClustersConnected(t *testing.T) {
	c, err := NewClusterConnectivity(2, 1, false, 0)
	require.NoError(t, err)

	gt := wugraph.NewGroundTruthGraph(4)
	annotated := wugraph.NewAnnotatedGraph(4)
	annotated.UpdateClusterLabels(map[int][]wugraph.Node{0: {0, 1}, 1: {2, 3}})

	assert.False(t, c.Done(gt, annotated))

	require.NoError(t, annotated.RecordJudgement(0, 2, wugraph.ValueJudgement(3)))
	assert.True(t, c.Done(gt, annotated))
}

func TestClusterConnectivity_SingleClusterSizeThreshold(t *testing.T) {
	c, err := NewClusterConnectivity(2, 1, false, 4)
	require.NoError(t, err)

	gt := wugraph.NewGroundTruthGraph(4)
	annotated := wugraph.NewAnnotatedGraph(4)
	annotated.UpdateClusterLabels(map[int][]wugraph.Node{0: {0, 1, 2}})
	assert.False(t, c.Done(gt, annotated))

	annotated.UpdateClusterLabels(map[int][]wugraph.Node{0: {0, 1, 2, 3}})
	assert.True(t, c.Done(gt, annotated))
}

func TestClusterConnectivity_InvalidConfig(t *testing.T) {
	_, err := NewClusterConnectivity(0, 1, false, 0)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewClusterConnectivity(2, 0, false, 0)
	require.ErrorIs(t, err, ErrInvalidConfig)
}
