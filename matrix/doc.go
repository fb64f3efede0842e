// Package matrix provides the dense row-major storage used by the gauss solver.
//
// The matrix package provides:
//
//   - Dense, a flat row-major float64 buffer with bounds-checked accessors.
//   - Row primitives used by elimination: Row (no-copy slice), SwapSlices,
//     AddScaled.
//   - Validators for the augmented-matrix contract (n rows × n+1 columns,
//     finite cells) that return plain sentinels for errors.Is matching.
//   - MatVec and AllClose for verifying solutions against the original system.
//   - Format, a fixed-width bracketed rendering for trace snapshots.
//
// Accessors never panic on user errors; they return ErrOutOfRange,
// ErrNaNInf and friends instead.
package matrix
