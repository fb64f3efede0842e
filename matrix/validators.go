// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/finite checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → Finite).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed-nil *Dense stored in the interface is treated as nil as well.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateAugmented checks the augmented-system shape: Rows() >= 1 and
// Cols() == Rows()+1. Assumes m is non-nil (see ValidateAugmentedSystem).
// Complexity: O(1).
func ValidateAugmented(m Matrix) error {
	if m.Rows() < 1 {
		return validatorErrorf("ValidateAugmented", ErrInvalidDimensions)
	}
	if m.Cols() != m.Rows()+1 {
		return validatorErrorf("ValidateAugmented", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite scans every cell and rejects NaN/±Inf.
// Fast-path on *Dense walks the flat buffer.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if d, ok := m.(*Dense); ok {
		for idx, v := range d.data {
			if isNonFinite(v) {
				return validatorErrorf("ValidateFinite", denseErrorf(ctxAt, idx/d.c, idx%d.c, ErrNaNInf))
			}
		}

		return nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if isNonFinite(v) {
				return validatorErrorf("ValidateFinite", fmt.Errorf("At(%d,%d): %w", i, j, ErrNaNInf))
			}
		}
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and has exactly n elements.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateAugmentedSystem – Composite: NotNil → Augmented shape → Finite cells.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrDimensionMismatch, ErrNaNInf.
// Complexity: O(r*c).
func ValidateAugmentedSystem(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateAugmentedSystem", err)
	}
	if err := ValidateAugmented(m); err != nil {
		return validatorErrorf("ValidateAugmentedSystem", err)
	}
	if err := ValidateFinite(m); err != nil {
		return validatorErrorf("ValidateAugmentedSystem", err)
	}

	return nil
}
