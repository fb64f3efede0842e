// SPDX-License-Identifier: MIT

// Package config loads the YAML configuration of the gauss CLI: solver
// defaults, trace precision, batch concurrency and logging.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gauss/gauss"
)

// Tolerance policy names accepted in solver.tolerance.
const (
	ToleranceIsClose  = "isclose"
	ToleranceAbsolute = "absolute"
)

// Environment overrides, applied after the file is parsed.
const (
	EnvLogLevel = "GAUSS_LOG_LEVEL"
	EnvWorkers  = "GAUSS_WORKERS"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all gauss CLI configuration.
type Config struct {
	Solver  SolverConfig  `yaml:"solver"`
	Output  OutputConfig  `yaml:"output"`
	Batch   BatchConfig   `yaml:"batch"`
	Logging LoggingConfig `yaml:"logging"`
}

// SolverConfig selects the zero policy.
type SolverConfig struct {
	Tolerance string  `yaml:"tolerance"` // isclose, absolute
	RelTol    float64 `yaml:"rel_tol"`   // isclose only
	AbsTol    float64 `yaml:"abs_tol"`   // isclose only
	AbsEps    float64 `yaml:"abs_eps"`   // absolute only
}

// OutputConfig controls the rendering of trace lines.
type OutputConfig struct {
	Precision         int  `yaml:"precision"`          // decimals of x{i} values
	FactorPrecision   int  `yaml:"factor_precision"`   // decimals of elimination factors
	SnapshotPrecision int  `yaml:"snapshot_precision"` // decimals of matrix cells
	Quiet             bool `yaml:"quiet"`              // print solutions only
}

// BatchConfig bounds concurrent solving of multi-system documents.
type BatchConfig struct {
	Workers int `yaml:"workers"` // <= 0 means GOMAXPROCS
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Solver: SolverConfig{
			Tolerance: ToleranceIsClose,
			RelTol:    gauss.DefaultRelTol,
			AbsTol:    gauss.DefaultAbsTol,
			AbsEps:    1e-9,
		},
		Output: OutputConfig{
			Precision:         gauss.DefaultValuePrecision,
			FactorPrecision:   gauss.DefaultFactorPrecision,
			SnapshotPrecision: gauss.DefaultSnapshotPrecision,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file over DefaultConfig.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.ApplyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// ApplyEnvOverrides overlays GAUSS_LOG_LEVEL and GAUSS_WORKERS on c.
// A GAUSS_WORKERS value that is not an integer is ignored.
func (c *Config) ApplyEnvOverrides() {
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		c.Logging.Level = lvl
	}
	if w := os.Getenv(EnvWorkers); w != "" {
		if n, err := strconv.Atoi(w); err == nil {
			c.Batch.Workers = n
		}
	}
}

// Validate checks the configuration for values the solver would reject.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Solver.Tolerance) {
	case ToleranceIsClose:
		if !nonNegative(c.Solver.RelTol) || !nonNegative(c.Solver.AbsTol) {
			return fmt.Errorf("%w: solver.rel_tol and solver.abs_tol must be non-negative", ErrInvalidConfig)
		}
	case ToleranceAbsolute:
		if !nonNegative(c.Solver.AbsEps) {
			return fmt.Errorf("%w: solver.abs_eps must be non-negative", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown solver.tolerance %q", ErrInvalidConfig, c.Solver.Tolerance)
	}

	for _, p := range []struct {
		name string
		v    int
	}{
		{"output.precision", c.Output.Precision},
		{"output.factor_precision", c.Output.FactorPrecision},
		{"output.snapshot_precision", c.Output.SnapshotPrecision},
	} {
		if p.v < 0 || p.v > gauss.MaxPrecision {
			return fmt.Errorf("%w: %s must be in [0, %d], got %d", ErrInvalidConfig, p.name, gauss.MaxPrecision, p.v)
		}
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: unknown logging.format %q", ErrInvalidConfig, c.Logging.Format)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %w", ErrInvalidConfig, err)
	}

	return nil
}

// ZapConfig returns a production zap configuration for the logging
// section. verbose forces the debug level. Output goes to stderr so the
// trace on stdout stays clean.
func (l LoggingConfig) ZapConfig(verbose bool) (zap.Config, error) {
	zc := zap.NewProductionConfig()
	zc.Encoding = l.Format
	zc.OutputPaths = []string{"stderr"}
	if l.Format == "console" {
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		return zc, nil
	}

	lvl, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return zc, fmt.Errorf("%w: logging.level: %w", ErrInvalidConfig, err)
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)

	return zc, nil
}

// SolverOptions translates the configuration into gauss options.
// Call Validate first; invalid values make the option constructors panic.
func (c *Config) SolverOptions() []gauss.Option {
	opts := make([]gauss.Option, 0, 4)
	if strings.ToLower(c.Solver.Tolerance) == ToleranceAbsolute {
		opts = append(opts, gauss.WithAbsoluteEpsilon(c.Solver.AbsEps))
	} else {
		opts = append(opts, gauss.WithIsClose(c.Solver.RelTol, c.Solver.AbsTol))
	}

	return append(opts,
		gauss.WithValuePrecision(c.Output.Precision),
		gauss.WithFactorPrecision(c.Output.FactorPrecision),
		gauss.WithSnapshotPrecision(c.Output.SnapshotPrecision),
	)
}

// nonNegative rejects NaN, ±Inf and negative values.
func nonNegative(v float64) bool {
	return v >= 0 && v <= math.MaxFloat64
}
