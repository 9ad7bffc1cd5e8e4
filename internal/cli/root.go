package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsecalc/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose          bool
	Format           string // "json" | "text"
	ConfigPath       string
	ResultsDir       string // overrides config results_dir when set
	LogLevel         string // overrides config log_level when set
	BoundsCheck      bool   // forces bounds checking on when set
	PositionalHeader bool   // forces positional header parsing when set

	// RunIDGenerator allows overriding the per-invocation id (for testing).
	// If nil, defaults to NewRunID (UUIDv7).
	RunIDGenerator func() string

	cfg    config.Config
	logger *slog.Logger
	runID  string
	ready  bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the sparsecalc CLI.
// Without a subcommand it runs the interactive menu.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "sparsecalc",
		Short: "Sparse matrix calculator",
		Long: `Add, subtract and multiply sparse integer matrices stored as text files.

Input files look like:

  rows=3
  cols=3
  (0, 2, 5)
  (1, 1, -4)

Results are written to the results directory as
<Operation>_<first>_and_<second>.txt (or _minus_ for subtraction).
Run without a subcommand for the interactive menu.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(opts, cmd)
		},
	}

	// Global flags
	pf := cmd.PersistentFlags()
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output (debug logging)")
	pf.StringVar(&opts.Format, "format", "text", "output format (json|text)")
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "path to YAML config (default ./"+config.DefaultPath+" if present)")
	pf.StringVarP(&opts.ResultsDir, "results-dir", "o", "", "directory for result files (default from config: results)")
	pf.StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error)")
	pf.BoolVar(&opts.BoundsCheck, "bounds-check", false, "reject elements outside the declared rows/cols")
	pf.BoolVar(&opts.PositionalHeader, "positional-header", false, "read rows/cols by line position without checking the prefixes")

	// Add subcommands
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewSubtractCommand(opts))
	cmd.AddCommand(NewMultiplyCommand(opts))

	return cmd
}

// setup validates flags, resolves configuration and builds the logger.
// It is idempotent so subcommands executed on their own (tests) can call it.
func (o *RootOptions) setup(cmd *cobra.Command) error {
	if o.ready {
		return nil
	}
	if !isValidFormat(o.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats))
	}

	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "loading configuration", err)
	}
	if o.ResultsDir != "" {
		cfg.ResultsDir = o.ResultsDir
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
	if o.Verbose {
		cfg.LogLevel = "debug"
	}
	if o.BoundsCheck {
		cfg.BoundsCheck = true
	}
	if o.PositionalHeader {
		cfg.Header = config.HeaderPositional
	}
	if err := cfg.Validate(); err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	gen := o.RunIDGenerator
	if gen == nil {
		gen = NewRunID
	}
	o.cfg = cfg
	o.runID = gen()
	o.logger = newLogger(cmd.ErrOrStderr(), cfg.Level(), o.runID)
	o.ready = true

	o.logger.Debug("configuration resolved",
		"results_dir", cfg.ResultsDir,
		"header", cfg.Header,
		"bounds_check", cfg.BoundsCheck,
	)

	return nil
}

// formatter returns an OutputFormatter writing to the command's stdout.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
