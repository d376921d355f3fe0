package stopping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wugsim/wugraph"
)

func TestJudgementBudget(t *testing.T) {
	_, err := NewJudgementBudget(0)
	require.ErrorIs(t, err, ErrInvalidConfig)

	c, err := NewJudgementBudget(2)
	require.NoError(t, err)

	gt := wugraph.NewGroundTruthGraph(3)
	annotated := wugraph.NewAnnotatedGraph(3)
	assert.False(t, c.Done(gt, annotated))

	require.NoError(t, annotated.RecordJudgement(0, 1, wugraph.ValueJudgement(3)))
	assert.False(t, c.Done(gt, annotated))

	require.NoError(t, annotated.RecordJudgement(1, 2, wugraph.ValueJudgement(3)))
	assert.True(t, c.Done(gt, annotated))
}

func TestEdgeCoverage_Absolute(t *testing.T) {
	c, err := NewEdgeCoverage(true, 1)
	require.NoError(t, err)

	gt := wugraph.NewGroundTruthGraph(3)
	annotated := wugraph.NewAnnotatedGraph(3)
	assert.False(t, c.Done(gt, annotated))

	require.NoError(t, annotated.RecordJudgement(0, 1, wugraph.ValueJudgement(3)))
	assert.True(t, c.Done(gt, annotated))
}

func TestEdgeCoverage_Fraction(t *testing.T) {
	c, err := NewEdgeCoverage(false, 1.0)
	require.NoError(t, err)

	gt := wugraph.NewGroundTruthGraph(3) // complete graph has 3 edges
	annotated := wugraph.NewAnnotatedGraph(3)
	require.NoError(t, annotated.RecordJudgement(0, 1, wugraph.ValueJudgement(3)))
	assert.False(t, c.Done(gt, annotated))

	require.NoError(t, annotated.RecordJudgement(1, 2, wugraph.ValueJudgement(3)))
	require.NoError(t, annotated.RecordJudgement(0, 2, wugraph.ValueJudgement(3)))
	assert.True(t, c.Done(gt, annotated))
}

func TestEdgeCoverage_InvalidConfig(t *testing.T) {
	_, err := NewEdgeCoverage(false, 1.5)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewEdgeCoverage(true, 0)
	require.ErrorIs(t, err, ErrInvalidConfig)
}
