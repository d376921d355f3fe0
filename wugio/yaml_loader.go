package wugio

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wugsim/wugraph"
)

// groundTruthDocument is the on-disk shape of a YAML ground-truth
// graph: an explicit node count and a flat edge list.
type groundTruthDocument struct {
	Nodes int          `yaml:"nodes"`
	Edges [][3]float64 `yaml:"edges"` // [u, v, weight] triples
}

// YAMLLoader implements Loader by reading a groundTruthDocument from a
// YAML file.
type YAMLLoader struct{}

// LoadGroundTruth is shorthand for (YAMLLoader{}).Load.
func LoadGroundTruth(path string) (*wugraph.GroundTruthGraph, error) {
	return YAMLLoader{}.Load(path)
}

// Load implements Loader.
func (YAMLLoader) Load(path string) (*wugraph.GroundTruthGraph, error) {
	buffer, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("wugio: reading %s: %w", path, err)
	}

	var doc groundTruthDocument
	if err := yaml.Unmarshal(buffer, &doc); err != nil {
		return nil, fmt.Errorf("wugio: parsing %s: %w", path, err)
	}
	if doc.Nodes <= 0 {
		return nil, fmt.Errorf("%w: nodes=%d must be > 0", ErrInvalidFormat, doc.Nodes)
	}

	graph := wugraph.NewGroundTruthGraph(doc.Nodes)
	for _, edge := range doc.Edges {
		u, v, w := int(edge[0]), int(edge[1]), edge[2]
		if _, exists := graph.GetEdge(u, v); exists {
			return nil, fmt.Errorf("%w: duplicate edge (%d,%d)", ErrInvalidFormat, u, v)
		}
		if err := graph.AddEdge(u, v, w); err != nil {
			return nil, fmt.Errorf("%w: edge (%d,%d): %v", ErrInvalidFormat, u, v, err)
		}
	}
	if err := graph.Freeze(); err != nil {
		return nil, err
	}

	return graph, nil
}
