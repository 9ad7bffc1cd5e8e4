// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsecalc/sparse"
)

func TestParseOperation(t *testing.T) {
	t.Parallel()

	cases := map[string]sparse.Operation{
		"1":              sparse.Addition,
		"add":            sparse.Addition,
		" Addition ":     sparse.Addition,
		"2":              sparse.Subtraction,
		"SUB":            sparse.Subtraction,
		"subtract":       sparse.Subtraction,
		"subtraction":    sparse.Subtraction,
		"3":              sparse.Multiplication,
		"mul":            sparse.Multiplication,
		"Multiply":       sparse.Multiplication,
		"multiplication": sparse.Multiplication,
	}
	for in, want := range cases {
		got, err := sparse.ParseOperation(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "0", "4", "divide", "1 2"} {
		_, err := sparse.ParseOperation(bad)
		assert.ErrorIs(t, err, sparse.ErrUnknownOperation, bad)
	}
}

func TestOperation_StringAndValid(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Addition", sparse.Addition.String())
	assert.Equal(t, "Subtraction", sparse.Subtraction.String())
	assert.Equal(t, "Multiplication", sparse.Multiplication.String())
	assert.Equal(t, "Operation(9)", sparse.Operation(9).String())

	for _, op := range sparse.Operations {
		assert.True(t, op.Valid(), op.String())
	}
	assert.False(t, sparse.Operation(0).Valid())
	assert.False(t, sparse.Operation(4).Valid())
}
