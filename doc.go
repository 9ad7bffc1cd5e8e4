// Package sparsecalc adds, subtracts and multiplies sparse integer matrices
// stored as plain text files.
//
// What is in here?
//
//	sparse/          the Matrix type (dictionary of keys), Add / Subtract /
//	                 Multiply, and the rows=/cols= text format reader & writer
//	internal/config/ optional sparsecalc.yaml (results dir, header policy,
//	                 bounds checking, log level)
//	internal/cli/    cobra commands, interactive menu, text/json output
//	cmd/sparsecalc/  the binary
//	examples/        runnable walkthroughs of the library
//
// File format:
//
//	rows=3
//	cols=3
//	(0, 2, 5)
//	(1, 1, -4)
//
// Only non-zero elements are listed; blank lines are ignored. Results are
// written sorted by (row, col).
//
// Quick start:
//
//	go install github.com/katalvlaran/sparsecalc/cmd/sparsecalc@latest
//	sparsecalc multiply a.txt b.txt      # → results/Multiplication_a_and_b.txt
//	sparsecalc                           # interactive menu
package sparsecalc
