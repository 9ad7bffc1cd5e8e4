package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsecalc/sparse"
)

// runMenu is the interactive flow: pick an operation, enter two paths,
// compute and report the output file.
func runMenu(opts *RootOptions, cmd *cobra.Command) error {
	if err := opts.setup(cmd); err != nil {
		return err
	}
	formatter := opts.formatter(cmd)
	in := bufio.NewReader(cmd.InOrStdin())

	// Keep prompts off stdout when it carries JSON.
	prompts := cmd.OutOrStdout()
	if opts.Format == "json" {
		prompts = cmd.ErrOrStderr()
	}

	fmt.Fprintln(prompts, "\n Sparse Matrix Operations:")
	for i, op := range sparse.Operations {
		fmt.Fprintf(prompts, "%d. %s\n", i+1, op)
	}

	choice, err := prompt(in, prompts, "\nChoose operation (1, 2, 3): ")
	if err != nil {
		return reportError(opts, formatter, err)
	}
	op, err := sparse.ParseOperation(choice)
	if err != nil {
		return reportError(opts, formatter, err)
	}
	opts.logger.Debug("operation selected", "operation", op.String())

	first, err := prompt(in, prompts, "input the path to first matrix file: ")
	if err != nil {
		return reportError(opts, formatter, err)
	}
	second, err := prompt(in, prompts, "input the path to second matrix file: ")
	if err != nil {
		return reportError(opts, formatter, err)
	}

	res, err := Compute(opts.cfg, opts.logger, op, first, second)
	if err != nil {
		return reportError(opts, formatter, err)
	}

	opts.logger.Info("result written", "operation", res.Operation, "path", res.Output, "nnz", res.NonZero)
	fmt.Fprintln(prompts)
	return formatter.Success(opts.runID, res)
}

// prompt writes label and reads one trimmed line. A final line without a
// newline is accepted; EOF before any input yields an empty answer.
func prompt(in *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
