package cli

import (
	"path/filepath"
	"strings"

	"github.com/katalvlaran/sparsecalc/sparse"
)

// ResultFileName builds the output file name for op applied to first and
// second:
//
//	Subtraction_<a>_minus_<b>.txt
//	<Operation>_<a>_and_<b>.txt   (Addition, Multiplication)
//
// where <a> and <b> are the input base names without directory or extension.
func ResultFileName(op sparse.Operation, first, second string) string {
	a, b := baseName(first), baseName(second)
	if op == sparse.Subtraction {
		return op.String() + "_" + a + "_minus_" + b + ".txt"
	}
	return op.String() + "_" + a + "_and_" + b + ".txt"
}

// baseName strips the directory and the last extension from path.
// A dot-file such as ".matrix" keeps its name.
func baseName(path string) string {
	base := filepath.Base(path)
	if name := strings.TrimSuffix(base, filepath.Ext(base)); name != "" {
		return name
	}
	return base
}
