// Command sparsecalc adds, subtracts and multiplies sparse matrix files.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/sparsecalc/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()

	var exitErr *cli.ExitError
	if err != nil && !(errors.As(err, &exitErr) && exitErr.Reported) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(cli.GetExitCode(err))
}
