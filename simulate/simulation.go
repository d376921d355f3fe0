package simulate

import (
	"github.com/katalvlaran/wugsim/wugraph"
)

// Simulation runs one experiment over a ground truth graph, building up
// an AnnotatedGraph round by round until Config.Stopping fires or
// Config.MaxIterations is exhausted. Each round runs
// sample -> annotate -> (cluster) -> notify -> check stop.
type Simulation struct {
	groundTruth *wugraph.GroundTruthGraph
	annotated   *wugraph.AnnotatedGraph
	cfg         Config

	lastCheckpoint int
}

// NewSimulation validates cfg and constructs a Simulation over
// groundTruth, starting from a fresh AnnotatedGraph sized to match it.
func NewSimulation(groundTruth *wugraph.GroundTruthGraph, cfg Config) (*Simulation, error) {
	cfg, err := NewConfig(cfg)
	if err != nil {
		return nil, err
	}

	return &Simulation{
		groundTruth: groundTruth,
		annotated:   wugraph.NewAnnotatedGraph(groundTruth.NumberOfNodes()),
		cfg:         cfg,
	}, nil
}

// Annotated returns the simulation's in-progress annotated graph.
func (s *Simulation) Annotated() *wugraph.AnnotatedGraph {
	return s.annotated
}

// Run executes rounds until Config.Stopping reports done or
// Config.MaxIterations rounds have elapsed (0 meaning unbounded).
func (s *Simulation) Run() (*Result, error) {
	logger := s.cfg.logger()
	round := 0

	for s.cfg.MaxIterations <= 0 || round < s.cfg.MaxIterations {
		if err := s.roundOnce(); err != nil {
			logger.Error().Err(err).Int("round", round+1).Msg("aborting simulation")

			return nil, err
		}
		round++

		logger.Debug().
			Int("round", round).
			Int("judgement_count", s.annotated.JudgementCount()).
			Int("edges", s.annotated.NumberOfEdges()).
			Msg("round complete")

		s.notifyListeners()

		if s.cfg.Stopping.Done(s.groundTruth, s.annotated) {
			logger.Info().Int("round", round).Msg("stopping criterion reached")

			return &Result{
				GroundTruth: s.groundTruth, Annotated: s.annotated,
				Rounds: round, JudgementCount: s.annotated.JudgementCount(), Converged: true,
			}, nil
		}
	}

	logger.Info().Int("round", round).Msg("max iterations reached")

	return &Result{
		GroundTruth: s.groundTruth, Annotated: s.annotated,
		Rounds: round, JudgementCount: s.annotated.JudgementCount(), Converged: false,
	}, nil
}

// roundOnce runs one round's body: sample, judge, record, and
// optionally recluster. A clusterer failure aborts the round: errors
// such as a stub's ErrNotImplemented, an annealer validation error, or
// the split invariant violation surface rather than being papered over
// with stale labels.
func (s *Simulation) roundOnce() error {
	edges := s.cfg.Sampler.Sample(s.groundTruth, s.annotated)

	for _, e := range edges {
		trueWeight, ok := s.groundTruth.GetEdge(e.U, e.V)
		judgements := s.cfg.Annotators.Judge(trueWeight, ok)
		for _, j := range judgements {
			_ = s.annotated.RecordJudgement(e.U, e.V, j)
		}
	}

	if s.cfg.Clusterer != nil {
		labels, err := s.cfg.Clusterer.Cluster(s.annotated)
		if err != nil {
			return err
		}
		s.annotated.UpdateClusterLabels(labels)
	}

	return nil
}

// notifyListeners calls every Listener's OnTick once the judgement
// count has advanced by at least CheckpointEvery since the last
// checkpoint (or every round, when CheckpointEvery <= 0).
func (s *Simulation) notifyListeners() {
	count := s.annotated.JudgementCount()
	if s.cfg.CheckpointEvery > 0 && count-s.lastCheckpoint < s.cfg.CheckpointEvery {
		return
	}
	s.lastCheckpoint = count

	for _, l := range s.cfg.Listeners {
		l.OnTick(s.annotated)
	}
}
