// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gauss/matrix"
)

// Tolerance decides whether a value is "effectively zero".
// The solver consults the same Tolerance for pivot detection, for skipping
// rows whose multiplier would be zero, and for the back-substitution
// diagonal check.
type Tolerance interface {
	IsZero(v float64) bool
}

// IsClose treats v as zero when |v - 0| ≤ AbsTol + RelTol·|0|, the general
// relative+absolute closeness relation evaluated against zero. Against zero
// the relative term vanishes, so in practice this is |v| ≤ AbsTol; RelTol is
// kept so the policy reports the full relation it implements.
type IsClose struct {
	RelTol float64
	AbsTol float64
}

// IsZero implements Tolerance.
func (c IsClose) IsZero(v float64) bool {
	return matrix.IsClose(v, 0, c.RelTol, c.AbsTol)
}

// String implements fmt.Stringer.
func (c IsClose) String() string {
	return fmt.Sprintf("isclose(rtol=%g, atol=%g)", c.RelTol, c.AbsTol)
}

// Absolute treats v as zero when |v| ≤ Eps.
type Absolute struct {
	Eps float64
}

// IsZero implements Tolerance.
func (a Absolute) IsZero(v float64) bool {
	return math.Abs(v) <= a.Eps
}

// String implements fmt.Stringer.
func (a Absolute) String() string {
	return fmt.Sprintf("absolute(eps=%g)", a.Eps)
}

var (
	_ Tolerance = IsClose{}
	_ Tolerance = Absolute{}
)
