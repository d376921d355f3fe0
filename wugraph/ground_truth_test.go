package wugraph_test

import (
	"testing"

	"github.com/katalvlaran/wugsim/wugraph"
	"github.com/stretchr/testify/require"
)

func TestGroundTruthGraph_FreezeRejectsFurtherWrites(t *testing.T) {
	g := wugraph.NewGroundTruthGraph(3)

	require.NoError(t, g.AddEdge(0, 1, 1.0))
	require.NoError(t, g.Freeze())
	require.ErrorIs(t, g.AddEdge(1, 2, 1.0), wugraph.ErrGraphFrozen)

	// Reads still work after freezing.
	w, ok := g.GetEdge(0, 1)
	require.True(t, ok)
	require.Equal(t, 1.0, w)
}

func TestGroundTruthGraph_DoubleFreeze(t *testing.T) {
	g := wugraph.NewGroundTruthGraph(2)

	require.NoError(t, g.Freeze())
	require.ErrorIs(t, g.Freeze(), wugraph.ErrAlreadyFrozen)
}
