package sampler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wugsim/wugraph"
)

func TestNewPageRankSampler_InvalidConfig(t *testing.T) {
	_, err := NewPageRankSampler(0, 0.5, nil, 1)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewPageRankSampler(5, 1.5, nil, 1)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewPageRankSampler(5, -0.1, nil, 1)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestPageRankSampler_PureRandom(t *testing.T) {
	groundTruth := wugraph.NewGroundTruthGraph(8)
	s, err := NewPageRankSampler(10, 1.0, nil, 5)
	require.NoError(t, err)

	edges := s.Sample(groundTruth, wugraph.NewAnnotatedGraph(8))
	assert.Len(t, edges, 10)
}

func TestPageRankSampler_PureWalk_FixedStart(t *testing.T) {
	groundTruth := wugraph.NewGroundTruthGraph(8)
	start := wugraph.Node(2)
	s, err := NewRandomWalkSampler(6, &start, 5)
	require.NoError(t, err)

	edges := s.Sample(groundTruth, wugraph.NewAnnotatedGraph(8))
	require.Len(t, edges, 6)
	assert.Equal(t, start, edges[0].U)

	for i := 1; i < len(edges); i++ {
		assert.Equal(t, edges[i-1].V, edges[i].U, "each step should continue the walk from the previous endpoint")
	}
}

func TestPageRankSampler_EmptyGraph(t *testing.T) {
	groundTruth := wugraph.NewGroundTruthGraph(0)
	s, err := NewPageRankSampler(3, 0.5, nil, 1)
	require.NoError(t, err)

	edges := s.Sample(groundTruth, wugraph.NewAnnotatedGraph(0))
	assert.Empty(t, edges)
}
