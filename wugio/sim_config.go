package wugio

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SimulationConfig is the YAML experiment configuration consumed by
// drivers (see cmd/wugsim): one document describing the sampler,
// annotator, clusterer, and stopping parameters of a single run.
// Values are carried verbatim; range validation happens in the strategy
// constructors the driver feeds them to, which fail fast on bad input.
type SimulationConfig struct {
	Seed            int64 `yaml:"seed"`
	Budget          int   `yaml:"budget"`
	MaxIterations   int   `yaml:"max_iterations"`
	CheckpointEvery int   `yaml:"checkpoint_every"`

	Sampler struct {
		NodesToAdd          float64 `yaml:"nodes_to_add"`
		NodesToAddAbsolute  bool    `yaml:"nodes_to_add_absolute"`
		EdgesToDraw         float64 `yaml:"edges_to_draw"`
		EdgesToDrawAbsolute bool    `yaml:"edges_to_draw_absolute"`
		MinMultiClusterSize int     `yaml:"min_multi_cluster_size"`
		RandomFallback      int     `yaml:"random_fallback"`
	} `yaml:"sampler"`

	Annotator struct {
		Lambda   float64 `yaml:"lambda"`
		Lo       int     `yaml:"lo"`
		Hi       int     `yaml:"hi"`
		PMissing float64 `yaml:"p_missing"`
	} `yaml:"annotator"`

	Clusterer struct {
		SMax             int  `yaml:"s_max"`
		MaxAttempts      int  `yaml:"max_attempts"`
		MaxIters         int  `yaml:"max_iters"`
		SplitNonEvidence bool `yaml:"split_non_evidence"`
	} `yaml:"clusterer"`
}

// DefaultSimulationConfig returns the baseline experiment parameters: a
// 1-4 Likert annotator with mild Poisson noise, a DWUG sampler touching
// 20% of the nodes per round, and a ten-sense correlation clusterer.
func DefaultSimulationConfig() SimulationConfig {
	var cfg SimulationConfig
	cfg.Seed = 1
	cfg.Budget = 200
	cfg.CheckpointEvery = 20

	cfg.Sampler.NodesToAdd = 0.2
	cfg.Sampler.EdgesToDraw = 0.1
	cfg.Sampler.MinMultiClusterSize = 2
	cfg.Sampler.RandomFallback = 5

	cfg.Annotator.Lambda = 0.5
	cfg.Annotator.Lo = 1
	cfg.Annotator.Hi = 4
	cfg.Annotator.PMissing = 0.05

	cfg.Clusterer.SMax = 10
	cfg.Clusterer.MaxAttempts = 200
	cfg.Clusterer.MaxIters = 2000
	cfg.Clusterer.SplitNonEvidence = true

	return cfg
}

// LoadSimulationConfig reads a SimulationConfig from a YAML file,
// starting from DefaultSimulationConfig so a document only needs to
// name the fields it overrides.
func LoadSimulationConfig(path string) (SimulationConfig, error) {
	cfg := DefaultSimulationConfig()

	buffer, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("wugio: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(buffer, &cfg); err != nil {
		return cfg, fmt.Errorf("wugio: parsing %s: %w", path, err)
	}

	return cfg, nil
}
