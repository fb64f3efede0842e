// SPDX-License-Identifier: MIT

package gauss

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates a precondition violation: nil matrix, a shape
	// other than n×(n+1) with n ≥ 1, ragged rows, or a NaN/±Inf cell.
	// The matrix sentinel that triggered it is wrapped alongside, so both
	// errors.Is(err, ErrInvalidInput) and errors.Is(err, matrix.ErrNaNInf) hold.
	ErrInvalidInput = errors.New("gauss: invalid input")

	// ErrNoSolution is returned by Result.Solution when the outcome is
	// NoUniqueSolution. Solve itself never returns it.
	ErrNoSolution = errors.New("gauss: no unique solution")
)

// Operation tags for error wrapping.
const (
	opSolve     = "Solve"
	opSolveRows = "SolveRows"
	opSolveCopy = "SolveCopy"
	opSolveAll  = "SolveAll"
	opResiduals = "Residuals"
	opVerify    = "Verify"
)

// gaussErrorf wraps err with an operation tag. Use only when err != nil.
func gaussErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// invalidInput joins ErrInvalidInput with the underlying matrix error.
func invalidInput(tag string, err error) error {
	return fmt.Errorf("%s: %w: %w", tag, ErrInvalidInput, err)
}
