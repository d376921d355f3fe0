package stopping

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wugsim/wugraph"
)

// Statistic computes the scalar a ConvergenceCriterion tracks each
// round, given the current annotated graph and (for statistics that
// compare against ground truth) the ground truth graph.
type Statistic func(groundTruth *wugraph.GroundTruthGraph, annotated *wugraph.AnnotatedGraph) float64

// ConvergenceCriterion is the generic sliding-window dispersion test
// underlying the convergence-on-statistic criteria: keep the last
// WindowSize values of Stat, and halt once their RMSE (or MSE, per
// UseRMSE) about the window mean falls below Threshold. Each instance
// owns its window buffer; DoneFor reports reuse by a second owner
// without Reset as ErrStoppingWindowReuse, while Done does not check.
type ConvergenceCriterion struct {
	Stat       Statistic
	WindowSize int
	Threshold  float64
	UseRMSE    bool

	window []float64
	owner  *int // address identifies the first caller to DoneFor; nil until first use
}

// NewConvergenceCriterion validates WindowSize > 0 and Threshold >= 0.
func NewConvergenceCriterion(stat Statistic, windowSize int, threshold float64, useRMSE bool) (*ConvergenceCriterion, error) {
	if windowSize <= 0 {
		return nil, fmt.Errorf("%w: WindowSize=%d must be > 0", ErrInvalidConfig, windowSize)
	}
	if threshold < 0 {
		return nil, fmt.Errorf("%w: Threshold=%v must be >= 0", ErrInvalidConfig, threshold)
	}

	return &ConvergenceCriterion{Stat: stat, WindowSize: windowSize, Threshold: threshold, UseRMSE: useRMSE}, nil
}

// Reset clears the window buffer and releases ownership, so the
// criterion may be handed to a fresh simulation safely.
func (c *ConvergenceCriterion) Reset() {
	c.window = nil
	c.owner = nil
}

// Done implements StoppingCriterion, appending Stat's current value to
// the window and reporting convergence once it is full. Does not track
// ownership; callers that need reuse detection across simulations
// should call DoneFor instead.
func (c *ConvergenceCriterion) Done(groundTruth *wugraph.GroundTruthGraph, annotated *wugraph.AnnotatedGraph) bool {
	value := c.Stat(groundTruth, annotated)

	c.window = append(c.window, value)
	if len(c.window) > c.WindowSize {
		c.window = c.window[len(c.window)-c.WindowSize:]
	}
	if len(c.window) < c.WindowSize {
		return false
	}

	return c.dispersion() < c.Threshold
}

// DoneFor is Done with explicit owner-token enforcement: token
// identifies the calling Simulation. The first call records token as
// the owner; a subsequent call with a different token returns
// ErrStoppingWindowReuse instead of silently mixing two simulations'
// histories into one window.
func (c *ConvergenceCriterion) DoneFor(token *int, groundTruth *wugraph.GroundTruthGraph, annotated *wugraph.AnnotatedGraph) (bool, error) {
	if c.owner == nil {
		c.owner = token
	} else if c.owner != token {
		return false, ErrStoppingWindowReuse
	}

	return c.Done(groundTruth, annotated), nil
}

// dispersion returns the window's MSE or RMSE about its own mean.
func (c *ConvergenceCriterion) dispersion() float64 {
	var mean float64
	for _, v := range c.window {
		mean += v
	}
	mean /= float64(len(c.window))

	var sumSq float64
	for _, v := range c.window {
		diff := v - mean
		sumSq += diff * diff
	}
	mse := sumSq / float64(len(c.window))

	if c.UseRMSE {
		return math.Sqrt(mse)
	}

	return mse
}
