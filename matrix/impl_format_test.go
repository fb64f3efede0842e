package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gauss/matrix"
)

// TestFormatAlignsColumns checks bracket layout and right alignment to the widest cell.
func TestFormatAlignsColumns(t *testing.T) {
	m := MustFrom(t, [][]float64{{2, 1, 1, 5}, {0, -8, -2, -12}})

	want := "[[  2.0000   1.0000   1.0000   5.0000]\n" +
		" [  0.0000  -8.0000  -2.0000 -12.0000]]"
	require.Equal(t, want, m.Format(4))
}

// TestFormatSingleCell covers the 1×2 case and a custom precision.
func TestFormatSingleCell(t *testing.T) {
	m := MustFrom(t, [][]float64{{5, 10}})
	require.Equal(t, "[[ 5.00 10.00]]", m.Format(2))
	require.Equal(t, "[[ 5 10]]", m.Format(0))
}

// TestFormatNegativeZero drops the sign of values that round to zero.
func TestFormatNegativeZero(t *testing.T) {
	m := MustFrom(t, [][]float64{{-0.00001, 1}})
	require.Equal(t, "[[0.000 1.000]]", m.Format(3))
}

// TestStringUsesConfiguredPrecision checks default and WithFormatPrecision.
func TestStringUsesConfiguredPrecision(t *testing.T) {
	m := MustFrom(t, [][]float64{{1.5, 2}})
	require.Equal(t, "[[1.5000 2.0000]]", m.String())

	p, err := matrix.NewDenseFrom([][]float64{{1.5, 2}}, matrix.WithFormatPrecision(1))
	require.NoError(t, err)
	require.Equal(t, "[[1.5 2.0]]", p.String())

	// Negative precision falls back to the default.
	require.Equal(t, m.String(), m.Format(-1))
}
