// SPDX-License-Identifier: MIT

// Command gauss solves linear systems read from a YAML or JSON document by
// Gaussian elimination with partial pivoting and prints every step.
//
//	gauss solve -f systems.yaml
//	echo 'rows: [[2, 1, 3], [1, -1, 0]]' | gauss solve --quiet
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gauss/internal/config"
)

// app carries the state shared by the root command and its subcommands.
type app struct {
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "gauss",
		Short: "Gaussian elimination with partial pivoting and a step trace",
		Long: `gauss reduces each augmented matrix [A | b] to row-echelon form,
swapping in the first non-zero row below a zero pivot, then solves by back
substitution. Every swap, row operation and computed unknown is printed.

A system with no unique solution is reported, not treated as an error.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file (default: built-in defaults)")

	root.AddCommand(newSolveCmd(a))
	root.AddCommand(newVersionCmd())

	return root
}

// setup loads the configuration and builds the logger. Without --config the
// built-in defaults are used; the environment overrides apply either way.
func (a *app) setup() error {
	cfg := config.DefaultConfig()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return err
		}
	} else {
		cfg.ApplyEnvOverrides()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	zc, err := cfg.Logging.ZapConfig(a.verbose)
	if err != nil {
		return err
	}
	if a.logger, err = zc.Build(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		return 1
	}

	return 0
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
