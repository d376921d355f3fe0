package simulate

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/wugsim/annotate"
	"github.com/katalvlaran/wugsim/cluster"
	"github.com/katalvlaran/wugsim/sampler"
	"github.com/katalvlaran/wugsim/stopping"
	"github.com/katalvlaran/wugsim/wugraph"
)

// Listener observes the annotated graph at round checkpoints, e.g. to
// write snapshots or metric rows. OnTick must not mutate annotated.
type Listener interface {
	OnTick(annotated *wugraph.AnnotatedGraph)
}

// Config wires one experiment's strategies together.
type Config struct {
	Sampler       sampler.Sampler
	Annotators    *annotate.Pool
	Clusterer     cluster.Clusterer // nil disables reclustering each round
	Stopping      stopping.StoppingCriterion
	Listeners     []Listener
	MaxIterations int // 0 means no cap beyond Stopping
	// CheckpointEvery gates Listener notification by judgementCount
	// delta; <= 0 notifies every round.
	CheckpointEvery int
	// Logger receives one event per round when non-nil; nil silences
	// logging entirely (many tests run logger-less).
	Logger *zerolog.Logger
}

// NewConfig validates the required fields.
func NewConfig(cfg Config) (Config, error) {
	if cfg.Sampler == nil {
		return Config{}, fmt.Errorf("%w: Sampler is required", ErrInvalidConfig)
	}
	if cfg.Annotators == nil {
		return Config{}, fmt.Errorf("%w: Annotators is required", ErrInvalidConfig)
	}
	if cfg.Stopping == nil {
		return Config{}, fmt.Errorf("%w: Stopping is required", ErrInvalidConfig)
	}

	return cfg, nil
}

// logger returns cfg.Logger, or a silent logger when none was supplied.
func (cfg Config) logger() zerolog.Logger {
	if cfg.Logger == nil {
		return zerolog.Nop()
	}

	return *cfg.Logger
}

// Result summarizes one completed Simulation run.
type Result struct {
	GroundTruth    *wugraph.GroundTruthGraph
	Annotated      *wugraph.AnnotatedGraph
	Rounds         int
	JudgementCount int
	Converged      bool // true if Stopping fired; false if MaxIterations was hit first
}
