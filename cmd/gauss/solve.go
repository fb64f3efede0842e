// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gauss/gauss"
	"github.com/katalvlaran/gauss/internal/config"
	"github.com/katalvlaran/gauss/internal/input"
)

// solutionsBanner separates the trace from the final solution block.
const solutionsBanner = "--- final solutions ---"

type solveFlags struct {
	file      string
	precision int
	absEps    float64
	workers   int
	quiet     bool
}

func newSolveCmd(a *app) *cobra.Command {
	f := &solveFlags{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve every system of a YAML/JSON document",
		Long: `Reads a document of the form

  systems:
    - name: textbook
      rows: [[2, 1, 1, 5], [4, -6, 0, -2], [-2, 7, 2, 9]]

or a single top-level "rows:" list, and prints for each system the original
matrix, the elimination trace and the solution.

Example:
  gauss solve -f systems.yaml --precision 3
  cat systems.json | gauss solve --abs-eps 1e-9 --quiet`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd, f)
		},
	}

	cmd.Flags().StringVarP(&f.file, "file", "f", "-", `Input document ("-" reads stdin)`)
	cmd.Flags().IntVar(&f.precision, "precision", 0, "Decimals of solution values (overrides config)")
	cmd.Flags().Float64Var(&f.absEps, "abs-eps", 0, "Use the absolute zero policy |v| <= eps (overrides config)")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "Concurrent solves, 0 means GOMAXPROCS (overrides config)")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "Print solutions only, without the trace")

	return cmd
}

// applyFlags overlays explicitly set flags on the loaded configuration.
func (a *app) applyFlags(cmd *cobra.Command, f *solveFlags) error {
	flags := cmd.Flags()
	if flags.Changed("precision") {
		a.cfg.Output.Precision = f.precision
	}
	if flags.Changed("abs-eps") {
		a.cfg.Solver.Tolerance = config.ToleranceAbsolute
		a.cfg.Solver.AbsEps = f.absEps
	}
	if flags.Changed("workers") {
		a.cfg.Batch.Workers = f.workers
	}
	if flags.Changed("quiet") {
		a.cfg.Output.Quiet = f.quiet
	}

	return a.cfg.Validate()
}

func (a *app) runSolve(cmd *cobra.Command, f *solveFlags) error {
	if err := a.applyFlags(cmd, f); err != nil {
		return err
	}

	systems, err := input.ReadFile(f.file, cmd.InOrStdin())
	if err != nil {
		return err
	}
	a.logger.Info("systems decoded",
		zap.String("file", f.file),
		zap.Int("count", len(systems)),
		zap.Int("workers", a.cfg.Batch.Workers))

	opts := append(a.cfg.SolverOptions(), gauss.WithLogger(a.logger.Named("solver")))
	results, err := gauss.SolveAll(cmd.Context(), input.Matrices(systems), a.cfg.Batch.Workers, opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	singular := 0
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(out)
		}
		a.printResult(out, systems[i], res)
		if res.Outcome != gauss.Unique {
			singular++
		}
	}
	a.logger.Info("systems solved",
		zap.Int("count", len(results)),
		zap.Int("singular", singular))

	return nil
}

// printResult writes one system: header, original matrix, trace, solution.
// The original matrix is still intact because SolveAll solves copies. The
// trace already lists the unknowns in back-substitution order, so the
// solution block gets its own banner.
func (a *app) printResult(w io.Writer, sys input.System, res *gauss.Result) {
	fmt.Fprintf(w, "== %s ==\n", sys.Name)
	fmt.Fprintln(w, sys.Matrix.Format(a.cfg.Output.SnapshotPrecision))
	if !a.cfg.Output.Quiet {
		for _, line := range res.Trace.Lines() {
			fmt.Fprintln(w, line)
		}
		fmt.Fprintln(w, solutionsBanner)
	}
	for _, line := range res.SolutionLines(a.cfg.Output.Precision) {
		fmt.Fprintln(w, line)
	}
}
