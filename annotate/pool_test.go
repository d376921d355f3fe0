package annotate_test

import (
	"testing"

	"github.com/katalvlaran/wugsim/annotate"
	"github.com/stretchr/testify/require"
)

func newTestAnnotator(t *testing.T, seed int64) *annotate.Annotator {
	t.Helper()
	a, err := annotate.NewAnnotator(annotate.Config{ErrorSampler: zeroSampler{}, Lo: 1, Hi: 4, PMissing: 0}, seed)
	require.NoError(t, err)

	return a
}

func TestPool_Replicated_OneJudgementPerAnnotator(t *testing.T) {
	pool := annotate.NewPool(annotate.ReplicatedPolicy, 1, newTestAnnotator(t, 1), newTestAnnotator(t, 2), newTestAnnotator(t, 3))

	judgements := pool.Judge(3.0, true)
	require.Len(t, judgements, 3)
}

func TestPool_Random_OneJudgementTotal(t *testing.T) {
	pool := annotate.NewPool(annotate.RandomPolicy, 1, newTestAnnotator(t, 1), newTestAnnotator(t, 2), newTestAnnotator(t, 3))

	judgements := pool.Judge(3.0, true)
	require.Len(t, judgements, 1)
}

func TestPool_Empty(t *testing.T) {
	pool := annotate.NewPool(annotate.ReplicatedPolicy, 1)

	require.Nil(t, pool.Judge(1.0, true))
}
