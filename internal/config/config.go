// Package config defines the application configuration and its resolution
// chain: command-line flags take precedence over PARSUM_-prefixed environment
// variables, which take precedence over the built-in defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	apperrors "github.com/agbru/parsum/internal/errors"
)

// EnvPrefix is the prefix of all environment variable overrides.
const EnvPrefix = "PARSUM_"

// Defaults mirror the reference configuration of the summation demo.
const (
	DefaultThreads       = 10
	DefaultChunkSize     = 100
	DefaultItems         = 100000
	DefaultMaxOutputRows = 10
	DefaultTimeout       = 5 * time.Minute
)

// Execution modes select which summer implementations run.
const (
	ModeParallel   = "parallel"
	ModeSequential = "sequential"
	ModeCompare    = "compare"
)

// AppConfig holds the complete, resolved application configuration. It is
// constructed once at startup and passed down explicitly; nothing reads
// these values as ambient globals.
type AppConfig struct {
	// Threads is the number of fork-join workers for the parallel summer.
	Threads int
	// ChunkSize is the number of consecutive indices per unit of work.
	ChunkSize int
	// Items is the length of the generated input arrays.
	Items int
	// MaxOutputRows bounds the printed result lines; 0 suppresses the
	// result listing entirely.
	MaxOutputRows int
	// Mode selects the implementation: parallel, sequential or compare.
	Mode string
	// Seed seeds the random input generator; 0 derives a seed from the
	// current time.
	Seed uint64
	// Timeout bounds the whole summation run.
	Timeout time.Duration
	// Quiet suppresses the banner and report decoration.
	Quiet bool
	// Verbose adds system and runtime memory details to the report.
	Verbose bool
	// NoColor disables ANSI color output.
	NoColor bool
	// Serve, when non-empty, starts the HTTP API on this address instead
	// of running a one-shot summation.
	Serve string
	// TUI runs the computation behind the interactive dashboard.
	TUI bool
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment variable overrides for flags not explicitly set, and validates
// the result.
//
// Unparseable flag values (e.g. a non-numeric --threads) are rejected with a
// ConfigError rather than silently treated as zero.
//
// Parameters:
//   - programName: The program name used in usage output.
//   - args: The command-line arguments (without the program name).
//   - errWriter: The writer for usage and error output.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when --help was requested, or a ConfigError for
//     invalid input.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{
		Threads:       DefaultThreads,
		ChunkSize:     DefaultChunkSize,
		Items:         DefaultItems,
		MaxOutputRows: DefaultMaxOutputRows,
		Mode:          ModeParallel,
		Timeout:       DefaultTimeout,
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.IntVar(&cfg.Threads, "threads", cfg.Threads, "number of parallel workers")
	fs.IntVar(&cfg.ChunkSize, "chunk-size", cfg.ChunkSize, "indices per scheduled block")
	fs.IntVar(&cfg.Items, "items", cfg.Items, "length of the generated arrays")
	fs.IntVar(&cfg.MaxOutputRows, "max-output-rows", cfg.MaxOutputRows, "maximum result lines to print (0 = none)")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "execution mode: parallel, sequential or compare")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "random generator seed (0 = time-derived)")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "overall run timeout")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "suppress banner and decoration")
	fs.BoolVar(&cfg.Quiet, "q", false, "shorthand for --quiet")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "add system details to the report")
	fs.BoolVar(&cfg.Verbose, "v", false, "shorthand for --verbose")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colored output")
	fs.StringVar(&cfg.Serve, "serve", "", "serve the summation HTTP API on this address (e.g. :8080)")
	fs.BoolVar(&cfg.TUI, "tui", false, "show the interactive dashboard while summing")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [options]\n\n", programName)
		fmt.Fprintf(errWriter, "Sums two generated integer arrays element-wise using a chunked parallel loop.\n\n")
		fmt.Fprintf(errWriter, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.NewConfigError("invalid arguments: %v", err)
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected positional arguments: %v", fs.Args())
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration invariants.
//
// Returns:
//   - error: A ConfigError describing the first violated constraint, or nil.
func (c AppConfig) Validate() error {
	if c.Threads < 1 {
		return apperrors.NewConfigError("--threads must be >= 1, got %d", c.Threads)
	}
	if c.ChunkSize < 1 {
		return apperrors.NewConfigError("--chunk-size must be >= 1, got %d", c.ChunkSize)
	}
	if c.Items < 0 {
		return apperrors.NewConfigError("--items must be >= 0, got %d", c.Items)
	}
	if c.MaxOutputRows < 0 {
		return apperrors.NewConfigError("--max-output-rows must be >= 0, got %d", c.MaxOutputRows)
	}
	switch c.Mode {
	case ModeParallel, ModeSequential, ModeCompare:
	default:
		return apperrors.NewConfigError("--mode must be parallel, sequential or compare, got %q", c.Mode)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("--timeout must be positive, got %s", c.Timeout)
	}
	return nil
}
