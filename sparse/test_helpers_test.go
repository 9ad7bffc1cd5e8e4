// SPDX-License-Identifier: MIT
// Package sparse_test contains shared fixtures and helpers.

package sparse_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsecalc/sparse"
)

// Shared 2×2 fixtures A and B.
const (
	fixtureA = "rows=2\ncols=2\n(0,0,1)\n(1,1,2)\n"
	fixtureB = "rows=2\ncols=2\n(0,0,3)\n(0,1,4)\n"
)

// MustParse parses text with opts or fails the test.
func MustParse(t testing.TB, text string, opts ...sparse.Option) *sparse.Matrix {
	t.Helper()
	m, err := sparse.Parse(strings.NewReader(text), opts...)
	require.NoError(t, err)

	return m
}

// MustNew allocates an empty rows×cols matrix or fails the test.
func MustNew(t testing.TB, rows, cols int) *sparse.Matrix {
	t.Helper()
	m, err := sparse.New(rows, cols)
	require.NoError(t, err)

	return m
}

// FromEntries builds a rows×cols matrix and stores every entry through Set.
func FromEntries(t testing.TB, rows, cols int, entries ...sparse.Entry) *sparse.Matrix {
	t.Helper()
	m := MustNew(t, rows, cols)
	for _, e := range entries {
		m.Set(e.Row, e.Col, e.Value)
	}

	return m
}

// FromRowMajor fills a rows×cols matrix from vals in row-major order.
// Missing trailing values read as zero; extra values are ignored.
func FromRowMajor(t testing.TB, rows, cols int, vals []int) *sparse.Matrix {
	t.Helper()
	m := MustNew(t, rows, cols)
	for i, v := range vals {
		if i >= rows*cols {
			break
		}
		m.Set(i/cols, i%cols, v)
	}

	return m
}

// e is a terse Entry constructor for table literals.
func e(row, col, value int) sparse.Entry {
	return sparse.Entry{Row: row, Col: col, Value: value}
}
