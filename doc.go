// Package wugsim simulates the construction of Word Usage Graphs (WUGs):
// weighted, undirected graphs over word-usage nodes whose edge weights
// encode semantic similarity judgements produced by (possibly noisy)
// annotators.
//
// A simulation pairs a fixed, immutable ground-truth graph
// (wugraph.GroundTruthGraph) with an annotated graph that is built up
// incrementally (wugraph.AnnotatedGraph) by repeating, round after round:
//
//	sample candidate edges (sampler.Sampler)
//	  -> judge them against ground truth (annotate.Annotator)
//	    -> record the judgements (wugraph.AnnotatedGraph.RecordJudgement)
//	      -> recluster (cluster.Clusterer)
//	        -> check for convergence (stopping.StoppingCriterion)
//
// Under the hood, everything is organized into one package per concern:
//
//	wugraph/      — WeightedGraph, GroundTruthGraph, AnnotatedGraph, Judgement
//	annotate/     — noisy-judgement generator and multi-annotator pools
//	sampler/      — DWUG adaptive sampler plus random/random-walk/page-rank variants
//	cluster/      — correlation clustering (simulated annealing) and connected-components
//	anneal/       — in-tree simulated-annealing primitive used by cluster
//	stopping/     — budget, coverage, connectivity, and convergence stopping criteria
//	metrics/      — ARI, JSD, cluster count, APD, entropy approximation
//	simulate/     — the round loop, listeners, and multi-run fan-out
//	wugio/        — ground-truth loaders and snapshot/metric sinks
//	internal/rng/ — per-strategy seeded RNG, never process-global
//
// This package itself only carries the module-level overview; the
// orchestration entry point for ad-hoc runs lives in cmd/wugsim.
package wugsim
