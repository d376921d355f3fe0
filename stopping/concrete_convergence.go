package stopping

import (
	"github.com/katalvlaran/wugsim/internal/rng"
	"github.com/katalvlaran/wugsim/metrics"
	"github.com/katalvlaran/wugsim/wugraph"
)

// NewAPDConvergence builds a ConvergenceCriterion over metrics.APD,
// sampling sampleSize random pairs per round with its own RNG stream
// (seeded independently so two criteria never share draws).
func NewAPDConvergence(windowSize int, threshold float64, useRMSE bool, sampleSize int, seed int64) (*ConvergenceCriterion, error) {
	r := rng.New(seed)
	stat := func(_ *wugraph.GroundTruthGraph, annotated *wugraph.AnnotatedGraph) float64 {
		return metrics.APD(annotated, sampleSize, r)
	}

	return NewConvergenceCriterion(stat, windowSize, threshold, useRMSE)
}

// NewEntropyConvergence builds a ConvergenceCriterion over
// metrics.EntropyApproximation at the given weight threshold.
func NewEntropyConvergence(windowSize int, threshold float64, useRMSE bool, weightThreshold float64) (*ConvergenceCriterion, error) {
	stat := func(_ *wugraph.GroundTruthGraph, annotated *wugraph.AnnotatedGraph) float64 {
		return metrics.EntropyApproximation(annotated, weightThreshold)
	}

	return NewConvergenceCriterion(stat, windowSize, threshold, useRMSE)
}

// NewClusterCountConvergence builds a ConvergenceCriterion over
// metrics.ClusterNumber.
func NewClusterCountConvergence(windowSize int, threshold float64, useRMSE bool) (*ConvergenceCriterion, error) {
	stat := func(_ *wugraph.GroundTruthGraph, annotated *wugraph.AnnotatedGraph) float64 {
		return float64(metrics.ClusterNumber(annotated))
	}

	return NewConvergenceCriterion(stat, windowSize, threshold, useRMSE)
}

// NewARIConvergence builds a ConvergenceCriterion over the ARI between
// the annotated graph's current labels and a fixed reference labeling
// (typically the ground truth's planted communities, supplied by the
// caller since GroundTruthGraph carries no labels of its own).
func NewARIConvergence(windowSize int, threshold float64, useRMSE bool, referenceLabels []int) (*ConvergenceCriterion, error) {
	stat := func(_ *wugraph.GroundTruthGraph, annotated *wugraph.AnnotatedGraph) float64 {
		return metrics.ARI(referenceLabels, annotated.Labels())
	}

	return NewConvergenceCriterion(stat, windowSize, threshold, useRMSE)
}

// NewJSDConvergence builds a ConvergenceCriterion over the JSD between
// the annotated graph and a fixed reference AnnotatedGraph (typically a
// snapshot of a previous round).
func NewJSDConvergence(windowSize int, threshold float64, useRMSE bool, reference *wugraph.AnnotatedGraph) (*ConvergenceCriterion, error) {
	stat := func(_ *wugraph.GroundTruthGraph, annotated *wugraph.AnnotatedGraph) float64 {
		return metrics.JSD(reference, annotated)
	}

	return NewConvergenceCriterion(stat, windowSize, threshold, useRMSE)
}
