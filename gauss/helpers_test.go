package gauss_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gauss/gauss"
	"github.com/katalvlaran/gauss/matrix"
)

// verifyTol is the substitution tolerance used by round-trip checks.
const verifyTol = 1e-6

// mustFrom builds a *Dense from a row literal or fails the test.
func mustFrom(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// mustSolveRows solves a fresh copy of rows and fails on precondition errors.
func mustSolveRows(t testing.TB, rows [][]float64, opts ...gauss.Option) *gauss.Result {
	t.Helper()
	res, err := gauss.SolveRows(rows, opts...)
	require.NoError(t, err)
	require.NotNil(t, res)

	return res
}

// narrative returns every non-snapshot line of the trace.
func narrative(res *gauss.Result) []string {
	var out []string
	for _, s := range res.Trace.Steps() {
		if s.Kind != gauss.StepSnapshot {
			out = append(out, s.Text)
		}
	}

	return out
}

// diagDominant returns a random strictly diagonally dominant n×(n+1) system,
// which is always non-singular.
func diagDominant(n int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, n+1)
		sum := 0.0
		for j := 0; j <= n; j++ {
			row[j] = rng.Float64()*20 - 10
			if j < n && j != i {
				if row[j] < 0 {
					sum -= row[j]
				} else {
					sum += row[j]
				}
			}
		}
		row[i] = sum + 1 + rng.Float64()
		rows[i] = row
	}

	return rows
}

// zeroAfter is a stateful Tolerance: it reports exact zeros only for the
// first n calls, then reports everything as zero. It lets tests reach the
// back-substitution singular branch, which a consistent policy never hits.
type zeroAfter struct {
	n     int
	calls int
}

func (z *zeroAfter) IsZero(v float64) bool {
	z.calls++
	if z.calls > z.n {
		return true
	}

	return v == 0
}
