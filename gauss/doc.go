// Package gauss solves square linear systems A·x = b by Gaussian elimination
// with partial pivoting and records a human-readable trace of every step.
//
// 🚀 What does it do?
//
//	Given an augmented matrix [A | b] of shape n×(n+1), Solve runs two phases:
//	  • Forward elimination: for each column i, make sure the pivot A[i][i]
//	    is non-zero (swapping in the FIRST row below with a non-zero entry),
//	    then subtract multiples of row i from every row below it.
//	  • Back substitution: compute x[n-1] … x[0] from the row-echelon form.
//
//	Every pivot search, swap, row operation, matrix snapshot and computed
//	unknown is appended to a Trace, so a caller can replay the work.
//
// ✨ Key features:
//   - Singular systems are a normal outcome (NoUniqueSolution), not an error.
//   - Pluggable zero test (Tolerance): IsClose (default, rtol=1e-5, atol=1e-8)
//     or Absolute (|v| ≤ eps); one policy governs every zero check.
//   - Streaming observer via WithHook, debug logging via WithLogger (zap).
//   - Residuals/Verify substitute x back into the untouched input.
//   - SolveAll solves independent systems concurrently, one clone per goroutine.
//
// ⚙️ Usage:
//
//	res, err := gauss.SolveRows([][]float64{
//		{2, 1, 1, 5},
//		{4, -6, 0, -2},
//		{-2, 7, 2, 9},
//	})
//	if err != nil {
//		// ErrInvalidInput: wrong shape, empty, NaN/Inf
//	}
//	for _, line := range res.Trace.Lines() {
//		fmt.Println(line)
//	}
//	if res.Outcome == gauss.Unique {
//		fmt.Println(res.X) // [1 1 2]
//	}
//
// Solve mutates its argument; SolveRows and SolveCopy work on a private copy.
//
// Performance:
//
//   - Time:   O(n³)
//   - Memory: O(n) beyond the matrix, plus one snapshot string per row operation.
package gauss
