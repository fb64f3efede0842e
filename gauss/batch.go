// SPDX-License-Identifier: MIT

package gauss

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gauss/matrix"
)

// SolveAll solves independent systems concurrently and returns their results
// in input order. Every system is copied before solving, so the inputs are
// never mutated and no two goroutines share a matrix.
//
// limit bounds the number of concurrent solves; limit <= 0 means GOMAXPROCS.
// Options (including any hook) are shared by all solves; a hook must be safe
// for concurrent use.
//
// Errors:
//   - the first precondition error, tagged with the system index; it cancels
//     the remaining work.
//   - ctx.Err() when ctx is cancelled before every system was scheduled or
//     while a scheduled system was still waiting to start. A cancellation
//     that arrives after the last solve began does not discard the results.
//
// Singular systems are not errors: their Result has Outcome NoUniqueSolution.
func SolveAll(ctx context.Context, systems []*matrix.Dense, limit int, opts ...Option) ([]*Result, error) {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	results := make([]*Result, len(systems))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	var stopped error
	for idx, sys := range systems {
		if stopped = gctx.Err(); stopped != nil {
			break
		}
		idx, sys := idx, sys
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := SolveCopy(sys, opts...)
			if err != nil {
				return fmt.Errorf("system %d: %w", idx, err)
			}
			results[idx] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, gaussErrorf(opSolveAll, err)
	}
	// Every scheduled solve succeeded; the batch is incomplete only when
	// cancellation stopped the loop before it scheduled all systems.
	if stopped != nil {
		return nil, gaussErrorf(opSolveAll, ctx.Err())
	}

	return results, nil
}
