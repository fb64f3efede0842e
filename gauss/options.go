// SPDX-License-Identifier: MIT

// Package gauss: functional configuration of the solver.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package gauss

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/gauss/matrix"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRelTol is the relative term of the default IsClose policy.
	DefaultRelTol = 1e-5

	// DefaultAbsTol is the absolute term of the default IsClose policy.
	DefaultAbsTol = 1e-8

	// DefaultValuePrecision is the number of decimals in "x{i} = value" lines.
	DefaultValuePrecision = 6

	// DefaultFactorPrecision is the number of decimals of the elimination factor.
	DefaultFactorPrecision = 4

	// DefaultSnapshotPrecision is the number of decimals per snapshot cell.
	DefaultSnapshotPrecision = matrix.DefaultFormatPrecision

	// MaxPrecision caps every precision option.
	MaxPrecision = matrix.MaxFormatPrecision
)

// DefaultTolerance returns the IsClose policy with DefaultRelTol/DefaultAbsTol.
func DefaultTolerance() Tolerance {
	return IsClose{RelTol: DefaultRelTol, AbsTol: DefaultAbsTol}
}

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceNil     = "gauss: WithTolerance: tolerance must be non-nil"
	panicEpsilonInvalid   = "gauss: WithAbsoluteEpsilon: eps must be finite, non-negative"
	panicIsCloseInvalid   = "gauss: WithIsClose: rtol and atol must be finite, non-negative"
	panicPrecisionInvalid = "gauss: precision must be in [0, 17]"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last one wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	tol          Tolerance
	valuePrec    int
	factorPrec   int
	snapshotPrec int
	hook         func(Step)
	logger       *zap.Logger
}

// Tolerance returns the effective zero policy.
func (o Options) Tolerance() Tolerance { return o.tol }

// ValuePrecision returns the decimals used for solution values.
func (o Options) ValuePrecision() int { return o.valuePrec }

// DefaultOptions returns the zero-config policy.
func DefaultOptions() Options {
	return Options{
		tol:          DefaultTolerance(),
		valuePrec:    DefaultValuePrecision,
		factorPrec:   DefaultFactorPrecision,
		snapshotPrec: DefaultSnapshotPrecision,
		logger:       zap.NewNop(),
	}
}

// gatherOptions applies opts in order over DefaultOptions. Nil setters are skipped.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithTolerance installs a custom zero policy. Panics on nil.
func WithTolerance(tol Tolerance) Option {
	if tol == nil {
		panic(panicToleranceNil)
	}

	return func(o *Options) { o.tol = tol }
}

// WithAbsoluteEpsilon switches to the Absolute{eps} policy (|v| ≤ eps).
// A typical choice is 1e-9.
func WithAbsoluteEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.tol = Absolute{Eps: eps} }
}

// WithIsClose switches to the IsClose{rtol, atol} policy.
func WithIsClose(rtol, atol float64) Option {
	if !validTol(rtol) || !validTol(atol) {
		panic(panicIsCloseInvalid)
	}

	return func(o *Options) { o.tol = IsClose{RelTol: rtol, AbsTol: atol} }
}

// WithValuePrecision sets the decimals of "x{i} = value" trace lines.
// The computed values themselves are never rounded.
func WithValuePrecision(p int) Option {
	mustPrecision(p)
	return func(o *Options) { o.valuePrec = p }
}

// WithFactorPrecision sets the decimals of the factor in elimination lines.
func WithFactorPrecision(p int) Option {
	mustPrecision(p)
	return func(o *Options) { o.factorPrec = p }
}

// WithSnapshotPrecision sets the decimals of each cell in matrix snapshots.
func WithSnapshotPrecision(p int) Option {
	mustPrecision(p)
	return func(o *Options) { o.snapshotPrec = p }
}

// WithHook registers fn to observe every step right after it is appended to
// the trace. Under SolveAll the hook is shared by concurrent solves and must
// be safe for concurrent use. A nil fn clears the hook.
func WithHook(fn func(Step)) Option {
	return func(o *Options) { o.hook = fn }
}

// WithLogger routes debug logging to l. A nil logger restores the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

func validTol(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func mustPrecision(p int) {
	if p < 0 || p > MaxPrecision {
		panic(panicPrecisionInvalid)
	}
}
