// Command wugsim loads a ground-truth WUG from a YAML file and runs one
// simulation over it, wiring a DWUG sampler, a Poisson-noise annotator,
// a correlation clusterer, and a judgement-budget stopping criterion.
// It is a thin demo driver, not a parameter-grid experiment runner.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/wugsim/annotate"
	"github.com/katalvlaran/wugsim/cluster"
	"github.com/katalvlaran/wugsim/internal/rng"
	"github.com/katalvlaran/wugsim/metrics"
	"github.com/katalvlaran/wugsim/sampler"
	"github.com/katalvlaran/wugsim/simulate"
	"github.com/katalvlaran/wugsim/stopping"
	"github.com/katalvlaran/wugsim/wugio"
	"github.com/katalvlaran/wugsim/wugraph"
)

func main() {
	path := flag.String("ground-truth", "", "path to a YAML ground-truth graph (nodes + edges)")
	configPath := flag.String("config", "", "optional YAML experiment config; defaults apply when omitted")
	verbose := flag.Bool("v", false, "enable debug-level logging")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if *verbose {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	if *path == "" {
		logger.Fatal().Msg("-ground-truth is required")
	}

	cfg := wugio.DefaultSimulationConfig()
	if *configPath != "" {
		loaded, err := wugio.LoadSimulationConfig(*configPath)
		if err != nil {
			logger.Fatal().Err(err).Msg("loading experiment config failed")
		}
		cfg = loaded
	}

	if err := run(*path, cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("simulation failed")
	}
}

func run(path string, cfg wugio.SimulationConfig, logger zerolog.Logger) error {
	groundTruth, err := wugio.LoadGroundTruth(path)
	if err != nil {
		return fmt.Errorf("loading ground truth: %w", err)
	}

	seed := cfg.Seed
	dwug, err := sampler.NewDWUGSampler(sampler.DWUGConfig{
		NodesToAdd:          sampler.Count{Absolute: cfg.Sampler.NodesToAddAbsolute, Value: cfg.Sampler.NodesToAdd},
		EdgesToDraw:         sampler.Count{Absolute: cfg.Sampler.EdgesToDrawAbsolute, Value: cfg.Sampler.EdgesToDraw},
		MinMultiClusterSize: cfg.Sampler.MinMultiClusterSize,
		RandomFallback:      cfg.Sampler.RandomFallback,
	}, seed)
	if err != nil {
		return fmt.Errorf("constructing sampler: %w", err)
	}

	noise := annotate.NewPoissonSampler(cfg.Annotator.Lambda, rng.New(seed+4))
	annotator, err := annotate.NewAnnotator(annotate.Config{
		ErrorSampler: noise,
		Lo:           cfg.Annotator.Lo,
		Hi:           cfg.Annotator.Hi,
		PMissing:     cfg.Annotator.PMissing,
		SignPolicy:   annotate.SignRandom,
	}, seed+1)
	if err != nil {
		return fmt.Errorf("constructing annotator: %w", err)
	}
	pool := annotate.NewPool(annotate.ReplicatedPolicy, seed+2, annotator)

	clusterer, err := cluster.NewCorrelationClusterer(cluster.CorrelationConfig{
		SMax:             cfg.Clusterer.SMax,
		MaxAttempts:      cfg.Clusterer.MaxAttempts,
		MaxIters:         cfg.Clusterer.MaxIters,
		SplitNonEvidence: cfg.Clusterer.SplitNonEvidence,
	}, seed+3)
	if err != nil {
		return fmt.Errorf("constructing clusterer: %w", err)
	}

	stop, err := stopping.NewJudgementBudget(cfg.Budget)
	if err != nil {
		return fmt.Errorf("constructing stopping criterion: %w", err)
	}

	sim, err := simulate.NewSimulation(groundTruth, simulate.Config{
		Sampler:         dwug,
		Annotators:      pool,
		Clusterer:       clusterer,
		Stopping:        stop,
		MaxIterations:   cfg.MaxIterations,
		CheckpointEvery: cfg.CheckpointEvery,
		Logger:          &logger,
		Listeners: []simulate.Listener{
			metricLogger{logger: logger},
		},
	})
	if err != nil {
		return fmt.Errorf("constructing simulation: %w", err)
	}

	result, err := sim.Run()
	if err != nil {
		return fmt.Errorf("running simulation: %w", err)
	}

	logger.Info().
		Int("rounds", result.Rounds).
		Int("judgements", result.JudgementCount).
		Bool("converged", result.Converged).
		Int("clusters", metrics.ClusterNumber(result.Annotated)).
		Msg("simulation complete")

	return nil
}

// metricLogger is a simulate.Listener that logs one line per
// checkpoint instead of writing to a file; wugio.CSVMetricSink and
// wugio.JSONLSnapshotWriter are the file-backed alternatives for
// longer runs.
type metricLogger struct {
	logger zerolog.Logger
}

func (m metricLogger) OnTick(annotated *wugraph.AnnotatedGraph) {
	m.logger.Debug().
		Int("judgement_count", annotated.JudgementCount()).
		Int("edges", annotated.NumberOfEdges()).
		Msg("checkpoint")
}
