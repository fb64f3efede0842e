// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective policy.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultFormatPrecision is the number of decimals Format uses when the
	// caller passes a negative precision.
	DefaultFormatPrecision = 4

	// MaxFormatPrecision caps the decimals accepted by WithFormatPrecision.
	MaxFormatPrecision = 17
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPrecisionInvalid = "matrix: WithFormatPrecision: precision must be in [0, 17]"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
	precision      int  // DefaultFormatPrecision
}

// WithNoValidateNaNInf disables NaN/Inf validation on the created matrix.
// Set and NewDenseFrom otherwise reject NaN/±Inf with ErrNaNInf. The gauss
// solver still refuses non-finite input; this only affects storage.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithFormatPrecision sets the decimals used by String on the created matrix.
// Panics when p is outside [0, MaxFormatPrecision].
func WithFormatPrecision(p int) Option {
	if p < 0 || p > MaxFormatPrecision {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// defaultOptions returns the zero-config policy.
func defaultOptions() Options {
	return Options{
		validateNaNInf: DefaultValidateNaNInf,
		precision:      DefaultFormatPrecision,
	}
}

// gatherOptions applies opts in order over the defaults.
// Nil setters are skipped so callers can build option slices conditionally.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
