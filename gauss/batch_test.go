package gauss_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/gauss/gauss"
	"github.com/katalvlaran/gauss/matrix"
)

// batch returns n systems, every fifth one singular.
func batch(t *testing.T, n int) ([]*matrix.Dense, [][][]float64) {
	t.Helper()
	systems := make([]*matrix.Dense, n)
	raw := make([][][]float64, n)
	for i := 0; i < n; i++ {
		rows := diagDominant(1+i%6, int64(i+1))
		if i%5 == 4 {
			rows = [][]float64{{1, 1, 2}, {2, 2, 4}}
		}
		raw[i] = rows
		systems[i] = mustFrom(t, rows)
	}

	return systems, raw
}

func TestSolveAll_MatchesSequential(t *testing.T) {
	defer goleak.VerifyNone(t)

	systems, raw := batch(t, 40)
	results, err := gauss.SolveAll(context.Background(), systems, 4)
	require.NoError(t, err)
	require.Len(t, results, len(systems))

	for i, got := range results {
		want := mustSolveRows(t, raw[i])
		require.Equal(t, want.Outcome, got.Outcome, "system %d", i)
		assert.Equal(t, want.X, got.X, "system %d", i)
		if diff := cmp.Diff(want.Trace.Steps(), got.Trace.Steps()); diff != "" {
			t.Fatalf("system %d trace mismatch (-sequential +batch):\n%s", i, diff)
		}
		// Inputs are copied, never reduced.
		assert.Equal(t, raw[i], systems[i].ToRows(), "system %d mutated", i)
	}
	assert.Equal(t, gauss.NoUniqueSolution, results[4].Outcome)
}

func TestSolveAll_SharedHook(t *testing.T) {
	defer goleak.VerifyNone(t)

	systems, _ := batch(t, 25)
	var calls atomic.Int64
	results, err := gauss.SolveAll(context.Background(), systems, 0,
		gauss.WithHook(func(gauss.Step) { calls.Add(1) }))
	require.NoError(t, err)

	total := 0
	for _, r := range results {
		total += r.Trace.Len()
	}
	assert.Equal(t, int64(total), calls.Load())
}

func TestSolveAll_InvalidSystem(t *testing.T) {
	defer goleak.VerifyNone(t)

	systems, _ := batch(t, 8)
	systems[3] = mustFrom(t, [][]float64{{1, 2}, {3, 4}})

	results, err := gauss.SolveAll(context.Background(), systems, 2)
	require.Nil(t, results)
	require.ErrorIs(t, err, gauss.ErrInvalidInput)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "system 3")
}

func TestSolveAll_Cancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	systems, _ := batch(t, 10)
	results, err := gauss.SolveAll(ctx, systems, 2)
	require.Nil(t, results)
	require.ErrorIs(t, err, context.Canceled)
}

// TestSolveAll_CancelAfterLastSolve cancels from inside the only solve; the
// finished batch is still returned.
func TestSolveAll_CancelAfterLastSolve(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	systems := []*matrix.Dense{mustFrom(t, [][]float64{{5, 10}})}
	results, err := gauss.SolveAll(ctx, systems, 1, gauss.WithHook(func(st gauss.Step) {
		if st.Kind == gauss.StepValue {
			cancel()
		}
	}))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, []float64{2}, results[0].X)
	require.Error(t, ctx.Err())
}

func TestSolveAll_Empty(t *testing.T) {
	results, err := gauss.SolveAll(context.Background(), nil, 1)
	require.NoError(t, err)
	assert.Empty(t, results)
}
