// SPDX-License-Identifier: MIT

package gauss

import (
	"github.com/katalvlaran/gauss/matrix"
)

// substitute splits the augmented system orig into [A | b] and returns A·x
// together with b. Errors are tagged with op.
func substitute(op string, orig *matrix.Dense, x []float64) (ax, b []float64, err error) {
	if err = matrix.ValidateAugmentedSystem(orig); err != nil {
		return nil, nil, invalidInput(op, err)
	}
	n := orig.Rows()

	cols := make([]int, n)
	rowsIdx := make([]int, n)
	for i := 0; i < n; i++ {
		cols[i] = i
		rowsIdx[i] = i
	}
	coeffs, err := orig.Induced(rowsIdx, cols)
	if err != nil {
		return nil, nil, gaussErrorf(op, err)
	}
	if b, err = orig.Col(n); err != nil {
		return nil, nil, gaussErrorf(op, err)
	}
	if ax, err = matrix.MatVec(coeffs, x); err != nil {
		return nil, nil, gaussErrorf(op, err)
	}

	return ax, b, nil
}

// Residuals substitutes x into the augmented system orig and returns
// r[i] = Σ_j A[i][j]·x[j] - b[i]. orig must be the untouched input (solve a
// copy, keep the original), otherwise the residuals describe the reduced form.
//
// Errors:
//   - ErrInvalidInput when orig is not a finite n×(n+1) matrix.
//   - matrix.ErrDimensionMismatch when len(x) != n.
//
// Complexity: O(n²).
func Residuals(orig *matrix.Dense, x []float64) ([]float64, error) {
	ax, b, err := substitute(opResiduals, orig, x)
	if err != nil {
		return nil, err
	}
	for i := range ax {
		ax[i] -= b[i]
	}

	return ax, nil
}

// Verify reports whether |A·x - b| <= |tol| holds in every row of orig.
// A NaN in A·x never verifies. Errors are those of Residuals, plus
// matrix.ErrNaNInf for a non-finite tol.
func Verify(orig *matrix.Dense, x []float64, tol float64) (bool, error) {
	ax, b, err := substitute(opVerify, orig, x)
	if err != nil {
		return false, err
	}

	// A·x may legitimately hold NaN/Inf for a diverged x.
	got, err := matrix.NewDenseFrom([][]float64{ax}, matrix.WithNoValidateNaNInf())
	if err != nil {
		return false, gaussErrorf(opVerify, err)
	}
	want, err := matrix.NewDenseFrom([][]float64{b})
	if err != nil {
		return false, gaussErrorf(opVerify, err)
	}
	ok, err := matrix.AllClose(got, want, 0, tol)
	if err != nil {
		return false, gaussErrorf(opVerify, err)
	}

	return ok, nil
}
