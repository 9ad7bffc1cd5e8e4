package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsecalc/internal/config"
	"github.com/katalvlaran/sparsecalc/sparse"
)

// ErrInputMissing is returned when an input path does not exist before any
// parsing is attempted.
var ErrInputMissing = errors.New("one or both matrix files do not exist")

// Result describes a completed computation.
type Result struct {
	Operation string `json:"operation"`
	First     string `json:"first"`
	Second    string `json:"second"`
	Output    string `json:"output"`
	Rows      int    `json:"rows"`
	Cols      int    `json:"cols"`
	NonZero   int    `json:"non_zero"`
}

func (r *Result) String() string {
	return "Successful. check output in this file: " + r.Output
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	return newOperationCommand(rootOpts, sparse.Addition, "add", []string{"addition"},
		"Add two sparse matrices of the same shape")
}

// NewSubtractCommand creates the subtract command.
func NewSubtractCommand(rootOpts *RootOptions) *cobra.Command {
	return newOperationCommand(rootOpts, sparse.Subtraction, "subtract", []string{"sub", "subtraction"},
		"Subtract the second matrix from the first")
}

// NewMultiplyCommand creates the multiply command.
func NewMultiplyCommand(rootOpts *RootOptions) *cobra.Command {
	return newOperationCommand(rootOpts, sparse.Multiplication, "multiply", []string{"mul", "multiplication"},
		"Multiply the first matrix by the second")
}

func newOperationCommand(rootOpts *RootOptions, op sparse.Operation, name string, aliases []string, short string) *cobra.Command {
	return &cobra.Command{
		Use:     name + " <first-matrix-file> <second-matrix-file>",
		Aliases: aliases,
		Short:   short,
		Long: short + `.

The result is written to <results-dir>/` + ResultFileName(op, "<first>", "<second>") + `.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(rootOpts, cmd, op, args[0], args[1])
		},
	}
}

// runOperation computes op on the two files and reports the outcome.
func runOperation(opts *RootOptions, cmd *cobra.Command, op sparse.Operation, first, second string) error {
	if err := opts.setup(cmd); err != nil {
		return err
	}
	formatter := opts.formatter(cmd)

	res, err := Compute(opts.cfg, opts.logger, op, first, second)
	if err != nil {
		return reportError(opts, formatter, err)
	}

	opts.logger.Info("result written", "operation", res.Operation, "path", res.Output, "nnz", res.NonZero)
	return formatter.Success(opts.runID, res)
}

// Compute is the shell around the sparse core: it checks that both inputs
// exist, parses them, applies op (first op second), creates the results
// directory and writes the result there.
func Compute(cfg config.Config, logger *slog.Logger, op sparse.Operation, first, second string) (*Result, error) {
	if !op.Valid() {
		return nil, fmt.Errorf("%w: %s", sparse.ErrUnknownOperation, op)
	}
	if !exists(first) || !exists(second) {
		return nil, ErrInputMissing
	}

	parseOpts := cfg.ParseOptions()
	a, err := sparse.ReadFile(first, parseOpts...)
	if err != nil {
		return nil, err
	}
	logger.Debug("matrix loaded", "path", first, "rows", a.Rows(), "cols", a.Cols(), "nnz", a.NNZ())
	b, err := sparse.ReadFile(second, parseOpts...)
	if err != nil {
		return nil, err
	}
	logger.Debug("matrix loaded", "path", second, "rows", b.Rows(), "cols", b.Cols(), "nnz", b.NNZ())

	if err = os.MkdirAll(cfg.ResultsDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating results directory %s: %w: %w", cfg.ResultsDir, sparse.ErrIO, err)
	}

	result, err := sparse.Apply(op, a, b)
	if err != nil {
		return nil, err
	}
	logger.Debug("operation applied", "operation", op.String(), "rows", result.Rows(), "cols", result.Cols(), "nnz", result.NNZ())

	out := filepath.Join(cfg.ResultsDir, ResultFileName(op, first, second))
	if err = result.WriteFile(out); err != nil {
		return nil, err
	}

	return &Result{
		Operation: op.String(),
		First:     first,
		Second:    second,
		Output:    out,
		Rows:      result.Rows(),
		Cols:      result.Cols(),
		NonZero:   result.NNZ(),
	}, nil
}

// exists reports whether path can be stat'ed.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// classify maps an error to its code, exit code and user-facing message.
func classify(err error) (code string, exit int, message string) {
	switch {
	case errors.Is(err, sparse.ErrUnknownOperation):
		return ErrCodeInvalidSelection, ExitCommandError, "Invalid selection. Exiting program."
	case errors.Is(err, ErrInputMissing):
		return ErrCodeNotFound, ExitCommandError, "Error: One or both matrix files do not exist."
	case errors.Is(err, sparse.ErrNotFound):
		return ErrCodeNotFound, ExitCommandError, "Error: Input file could not be read."
	case errors.Is(err, sparse.ErrFormat):
		return ErrCodeFormat, ExitCommandError, "Error: Input file has wrong format."
	case errors.Is(err, sparse.ErrDimensionMismatch):
		return ErrCodeDimensionMismatch, ExitCommandError, "Error: Matrix dimensions are not compatible with this operation."
	case errors.Is(err, sparse.ErrIO):
		return ErrCodeWriteFailed, ExitCommandError, "Error: Result could not be written."
	default:
		return ErrCodeGeneric, ExitFailure, "Error: " + err.Error()
	}
}

// reportError prints err in the configured format, logs it and returns an
// ExitError marked as already reported.
func reportError(opts *RootOptions, formatter *OutputFormatter, err error) error {
	code, exit, message := classify(err)
	opts.logger.Error("operation failed", "code", code, "error", err)
	_ = formatter.Error(opts.runID, code, message, err)

	exitErr := WrapExitError(exit, fmt.Sprintf("%s: %s", code, message), err)
	exitErr.Reported = true
	return exitErr
}
