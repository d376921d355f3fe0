package wugio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wugsim/wugio"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestYAMLLoader_Load(t *testing.T) {
	path := writeTempFile(t, "gt.yml", `
nodes: 4
edges:
  - [0, 1, 3.5]
  - [1, 2, 2.0]
`)

	graph, err := wugio.LoadGroundTruth(path)
	require.NoError(t, err)

	assert.Equal(t, 4, graph.NumberOfNodes())
	assert.Equal(t, 2, graph.NumberOfEdges())
	assert.True(t, graph.Frozen())

	w, ok := graph.GetEdge(0, 1)
	require.True(t, ok)
	assert.Equal(t, 3.5, w)
}

func TestYAMLLoader_Load_InvalidNodeCount(t *testing.T) {
	path := writeTempFile(t, "gt.yml", "nodes: 0\nedges: []\n")

	_, err := wugio.LoadGroundTruth(path)
	require.ErrorIs(t, err, wugio.ErrInvalidFormat)
}

func TestYAMLLoader_Load_OutOfRangeEdge(t *testing.T) {
	path := writeTempFile(t, "gt.yml", `
nodes: 2
edges:
  - [0, 5, 1.0]
`)

	_, err := wugio.LoadGroundTruth(path)
	require.ErrorIs(t, err, wugio.ErrInvalidFormat)
}

func TestYAMLLoader_Load_MissingFile(t *testing.T) {
	_, err := wugio.LoadGroundTruth(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
}
