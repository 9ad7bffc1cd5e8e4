// SPDX-License-Identifier: MIT

package sparse

import (
	"sort"
	"strings"
)

const opNew = "New"

// New creates an empty rows×cols matrix.
// Stage 1 (Validate): rows >= 0 and cols >= 0; a 0×0 matrix is legal.
// Stage 2 (Prepare): allocate the element map.
// Complexity: O(1).
func New(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, sparseErrorf(opNew, ErrBadShape)
	}

	return newMatrix(rows, cols, 0), nil
}

// newMatrix allocates without validation; hint pre-sizes the map.
func newMatrix(rows, cols, hint int) *Matrix {
	return &Matrix{rows: rows, cols: cols, data: make(map[coord]int, hint)}
}

// Rows returns the declared row count.
// Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the declared column count.
// Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// NNZ returns the number of stored non-zero elements.
func (m *Matrix) NNZ() int { return len(m.data) }

// Get returns the value at (row, col), or 0 when nothing is stored there.
// It never fails: coordinates outside the declared extent simply read as 0.
// Complexity: O(1) amortized.
func (m *Matrix) Get(row, col int) int {
	return m.data[coord{row, col}]
}

// Set stores value at (row, col). A zero value removes the entry (no-op if
// absent), so no zero is ever stored. Every mutation in this package goes
// through Set, parsing and accumulation included.
// Complexity: O(1) amortized.
func (m *Matrix) Set(row, col, value int) {
	k := coord{row, col}
	if value == 0 {
		delete(m.data, k)
		return
	}
	m.data[k] = value
}

// Entries returns the stored elements sorted by (row, col) ascending.
// The slice is freshly allocated; mutating it does not affect m.
// Complexity: O(nnz·log nnz).
func (m *Matrix) Entries() []Entry {
	out := make([]Entry, 0, len(m.data))
	for k, v := range m.data {
		out = append(out, Entry{Row: k.row, Col: k.col, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})

	return out
}

// Equal reports whether m and other have the same shape and the same stored
// elements. Two nil matrices are equal; nil and non-nil are not.
// Complexity: O(nnz).
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.rows != other.rows || m.cols != other.cols || len(m.data) != len(other.data) {
		return false
	}
	for k, v := range m.data {
		if w, ok := other.data[k]; !ok || w != v {
			return false
		}
	}

	return true
}

// Clone returns a deep copy; the copy owns its own element map.
// Complexity: O(nnz).
func (m *Matrix) Clone() *Matrix {
	c := newMatrix(m.rows, m.cols, len(m.data))
	for k, v := range m.data {
		c.data[k] = v
	}

	return c
}

// String renders m in the text format. Useful for debugging and examples.
func (m *Matrix) String() string {
	var sb strings.Builder
	_, _ = m.WriteTo(&sb) // strings.Builder never fails

	return sb.String()
}

// validatePair ensures both operands are non-nil.
func validatePair(tag string, a, b *Matrix) error {
	if a == nil || b == nil {
		return sparseErrorf(tag, ErrNilMatrix)
	}

	return nil
}
