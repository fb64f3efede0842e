// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gauss/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies Rows() and Cols().
func TestRowsCols(t *testing.T) {
	m := MustDense(t, 3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
}

// TestSetRejectsNonFinite checks the default numeric policy and its opt-out.
func TestSetRejectsNonFinite(t *testing.T) {
	m := MustDense(t, 1, 2)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 1, math.Inf(-1)), matrix.ErrNaNInf)

	relaxed, err := matrix.NewDense(1, 2, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, relaxed.Set(0, 0, math.Inf(1)))
}

// TestNewDenseFrom covers copying, ragged input and empty input.
func TestNewDenseFrom(t *testing.T) {
	rows := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m := MustFrom(t, rows)
	CompareExact(t, rows, m)

	// The literal is copied, not retained.
	rows[0][0] = 99
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))

	_, err := matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)

	_, err = matrix.NewDenseFrom(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFrom([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFrom([][]float64{{1, math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestCloneIndependence ensures Clone() and Copy() do not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, 0}, {0, 2}})

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 3.0, MustAt(t, clone, 0, 0))

	cp := m.Copy()
	row, err := cp.Row(1)
	require.NoError(t, err)
	row[1] = 7
	require.Equal(t, 2.0, MustAt(t, m, 1, 1))
	require.Equal(t, 7.0, MustAt(t, cp, 1, 1))
}

// TestRowSharesStorage verifies that Row is a no-copy view and is capped.
func TestRowSharesStorage(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, 2}, {3, 4}})

	row, err := m.Row(0)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2}, row)
	require.Equal(t, 2, cap(row)) // appending must not clobber row 1

	row[1] = 20
	require.Equal(t, 20.0, MustAt(t, m, 0, 1))

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestCol returns an independent copy of a column.
func TestCol(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, 2}, {3, 4}})

	col, err := m.Col(1)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 4}, col)

	col[0] = -1
	require.Equal(t, 2.0, MustAt(t, m, 0, 1))

	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSwapSlices swaps whole rows through their Row aliases.
func TestSwapSlices(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	r0, err := m.Row(0)
	require.NoError(t, err)
	r2, err := m.Row(2)
	require.NoError(t, err)

	matrix.SwapSlices(r0, r2)
	CompareExact(t, [][]float64{{7, 8, 9}, {4, 5, 6}, {1, 2, 3}}, m)
	require.Equal(t, []float64{7, 8, 9}, r0, "aliases keep their row index")

	matrix.SwapSlices(r0, r0)
	CompareExact(t, [][]float64{{7, 8, 9}, {4, 5, 6}, {1, 2, 3}}, m)
}

// TestAddScaled checks R_dst += alpha*R_src across all columns.
func TestAddScaled(t *testing.T) {
	m := MustFrom(t, [][]float64{{2, 1, 1, 5}, {4, -6, 0, -2}})
	r0, err := m.Row(0)
	require.NoError(t, err)
	r1, err := m.Row(1)
	require.NoError(t, err)

	matrix.AddScaled(r1, r0, -2)
	CompareExact(t, [][]float64{{2, 1, 1, 5}, {0, -8, -2, -12}}, m)

	// An infinite factor is not rejected; it propagates.
	matrix.AddScaled(r1, r0, math.Inf(1))
	v := MustAt(t, m, 1, 0)
	require.True(t, math.IsInf(v, 1))
}

// TestInduced extracts a reordered submatrix copy.
func TestInduced(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	sub, err := m.Induced([]int{1, 0}, []int{0, 1})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{4, 5}, {1, 2}}, sub)

	_, err = m.Induced([]int{2}, []int{0})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Induced(nil, []int{0})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestToRows round-trips through a fresh literal.
func TestToRows(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}
	m := MustFrom(t, rows)
	out := m.ToRows()
	require.Equal(t, rows, out)

	out[0][0] = 42
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}
