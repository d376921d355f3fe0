package sampler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wugsim/wugraph"
)

func TestNewRandomSampler_InvalidConfig(t *testing.T) {
	_, err := NewRandomSampler(0, 1)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRandomSampler_Sample(t *testing.T) {
	groundTruth := wugraph.NewGroundTruthGraph(6)
	s, err := NewRandomSampler(5, 3)
	require.NoError(t, err)

	edges := s.Sample(groundTruth, wugraph.NewAnnotatedGraph(6))
	assert.Len(t, edges, 5)
	for _, e := range edges {
		assert.NotEqual(t, e.U, e.V)
	}
}

func TestRandomSampler_SmallGraph(t *testing.T) {
	groundTruth := wugraph.NewGroundTruthGraph(1)
	s, err := NewRandomSampler(5, 3)
	require.NoError(t, err)

	edges := s.Sample(groundTruth, wugraph.NewAnnotatedGraph(1))
	assert.Empty(t, edges)
}
