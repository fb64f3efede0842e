// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/gauss/matrix"
)

// Solve runs Gaussian elimination with partial pivoting on the augmented
// matrix a (n rows × n+1 columns) IN PLACE and returns the outcome with its
// trace.
//
// Algorithm Outline:
//  1. Forward elimination, for i = 0..n-1:
//     - if A[i][i] is zero, search k = i+1..n-1 for the FIRST row with a
//     non-zero A[k][i] and swap rows i,k (all n+1 columns); none → singular.
//     - for j = i+1..n-1 with a non-zero A[j][i]:
//     factor = A[j][i]/A[i][i]; A[j][:] -= factor·A[i][:].
//     Rows whose multiplier is zero are skipped without a trace line.
//  2. Back substitution, for i = n-1..0:
//     - if A[i][i] is zero → singular.
//     - x[i] = (A[i][n] - Σ_{j>i} A[i][j]·x[j]) / A[i][i].
//
// "Zero" is decided by the configured Tolerance (IsClose by default).
//
// Returns:
//   - *Result with Outcome Unique (X filled) or NoUniqueSolution (X nil). In
//     both cases Result.Trace holds every step performed, in order.
//
// Errors:
//   - ErrInvalidInput (wrapping matrix.ErrNilMatrix, ErrInvalidDimensions,
//     ErrDimensionMismatch or ErrNaNInf) when a is not a finite n×(n+1) matrix.
//     A singular system is NOT an error.
//
// Concurrency:
//   - a is owned by the call until it returns; concurrent solves must use
//     distinct matrices (see SolveCopy and SolveAll).
//
// Complexity:
//   - Time O(n³), Space O(n) plus one rendered snapshot per row operation.
func Solve(a *matrix.Dense, opts ...Option) (*Result, error) {
	if err := matrix.ValidateAugmentedSystem(a); err != nil {
		return nil, invalidInput(opSolve, err)
	}

	return newSolver(a, gatherOptions(opts...)).run(), nil
}

// SolveRows copies rows into a fresh Dense and solves it; rows is never mutated.
//
// Errors:
//   - ErrInvalidInput, additionally wrapping matrix.ErrRaggedRows for ragged input.
func SolveRows(rows [][]float64, opts ...Option) (*Result, error) {
	a, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, invalidInput(opSolveRows, err)
	}

	return Solve(a, opts...)
}

// SolveCopy solves a private copy of a, leaving a untouched.
func SolveCopy(a *matrix.Dense, opts ...Option) (*Result, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, invalidInput(opSolveCopy, err)
	}

	return Solve(a.Copy(), opts...)
}

// pivotKind is the verdict of examining column i at and below row i.
type pivotKind int

const (
	pivotKeep     pivotKind = iota // A[i][i] already non-zero
	pivotSwap                      // swap with row; first non-zero below
	pivotSingular                  // column is zero at and below the diagonal
)

type pivotDecision struct {
	kind pivotKind
	row  int
}

// solver holds the state of one Solve call. rows[i] aliases row i of a, so
// matrix.SwapSlices (which exchanges contents) keeps every alias pointing at
// index i.
type solver struct {
	a    *matrix.Dense
	n    int
	rows [][]float64
	opts Options
	tr   Trace
}

func newSolver(a *matrix.Dense, o Options) *solver {
	n := a.Rows()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i], _ = a.Row(i) // shape already validated
	}

	return &solver{a: a, n: n, rows: rows, opts: o}
}

func (s *solver) run() *Result {
	log := s.opts.logger
	log.Debug("solve started",
		zap.Int("n", s.n),
		zap.String("tolerance", fmt.Sprint(s.opts.tol)))

	if row, ok := s.forward(); !ok {
		return s.singular(PhaseForward, row)
	}
	x, row, ok := s.backSubstitute()
	if !ok {
		return s.singular(PhaseBackSubstitution, row)
	}

	log.Debug("solve finished",
		zap.Int("n", s.n),
		zap.Int("steps", s.tr.Len()),
		zap.Float64s("x", x))

	return &Result{
		Outcome:       Unique,
		X:             x,
		Trace:         s.tr,
		SingularRow:   NoRow,
		SingularPhase: PhaseDone,
	}
}

// emit appends st to the trace and notifies the hook.
func (s *solver) emit(st Step) {
	s.tr.append(st)
	if s.opts.hook != nil {
		s.opts.hook(st)
	}
}

func (s *solver) snapshot(p Phase) {
	s.emit(snapshotStep(p, s.a.Format(s.opts.snapshotPrec)))
}

func (s *solver) singular(p Phase, row int) *Result {
	s.emit(singularStep(p, row))
	s.opts.logger.Debug("no unique solution",
		zap.Stringer("phase", p),
		zap.Int("row", row),
		zap.Int("steps", s.tr.Len()))

	return &Result{
		Outcome:       NoUniqueSolution,
		Trace:         s.tr,
		SingularRow:   row,
		SingularPhase: p,
	}
}

// pivot decides how column i gets a usable pivot.
func (s *solver) pivot(i int) pivotDecision {
	if !s.opts.tol.IsZero(s.rows[i][i]) {
		return pivotDecision{kind: pivotKeep, row: i}
	}
	for k := i + 1; k < s.n; k++ {
		if !s.opts.tol.IsZero(s.rows[k][i]) {
			return pivotDecision{kind: pivotSwap, row: k}
		}
	}

	return pivotDecision{kind: pivotSingular, row: NoRow}
}

// forward reduces the matrix to row-echelon form.
// It returns (i, false) when column i has no usable pivot.
func (s *solver) forward() (int, bool) {
	s.emit(phaseStep(PhaseForward, msgForwardStart))

	var i, j int
	var pivot, factor float64
	for i = 0; i < s.n; i++ {
		d := s.pivot(i)
		if d.kind != pivotKeep {
			s.emit(pivotSearchStep(i))
		}
		switch d.kind {
		case pivotSingular:
			return i, false
		case pivotSwap:
			matrix.SwapSlices(s.rows[i], s.rows[d.row])
			s.emit(swapStep(i, d.row))
			s.opts.logger.Debug("rows swapped", zap.Int("row", i), zap.Int("with", d.row))
		}

		pivot = s.rows[i][i]
		for j = i + 1; j < s.n; j++ {
			if s.opts.tol.IsZero(s.rows[j][i]) {
				continue
			}
			factor = s.rows[j][i] / pivot
			matrix.AddScaled(s.rows[j], s.rows[i], -factor)
			s.emit(eliminateStep(j, i, factor, s.opts.factorPrec))
			s.snapshot(PhaseForward)
		}
	}

	s.emit(phaseStep(PhaseForward, msgForwardDone))
	s.snapshot(PhaseForward)

	return NoRow, true
}

// backSubstitute computes x from the last unknown to the first.
// It returns (nil, i, false) when diagonal i is zero.
func (s *solver) backSubstitute() ([]float64, int, bool) {
	s.emit(phaseStep(PhaseBackSubstitution, msgBackStart))

	n := s.n
	x := make([]float64, n)
	var i, j int
	var rhs float64
	for i = n - 1; i >= 0; i-- {
		row := s.rows[i]
		if s.opts.tol.IsZero(row[i]) {
			return nil, i, false
		}
		rhs = row[n]
		for j = i + 1; j < n; j++ {
			rhs -= row[j] * x[j]
		}
		x[i] = rhs / row[i]
		s.emit(valueStep(i, x[i], s.opts.valuePrec))
	}

	return x, NoRow, true
}
