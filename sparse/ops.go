// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Element-wise Add/Subtract over the union of stored keys.
//   - Sparse×sparse Multiply through a transient row-index of the right operand.
//
// Determinism & Performance:
//   - Map iteration order is random, but integer + and * are associative and
//     commutative, so results do not depend on visit order.
//   - No dense sweeps: only stored entries are visited.
//   - Operands are never mutated; each call allocates a fresh result.

package sparse

const (
	opAdd      = "Add"
	opSubtract = "Subtract"
	opMultiply = "Multiply"
)

// Add returns the element-wise sum m + other.
// Stage 1 (Validate): non-nil operands, identical shapes.
// Stage 2 (Execute): combine over the union of stored keys.
// Complexity: O(nnz(m) + nnz(other)).
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	return m.combine(other, func(a, b int) int { return a + b }, opAdd)
}

// Subtract returns the element-wise difference m - other.
// Not commutative: the receiver is the minuend.
// Complexity: O(nnz(m) + nnz(other)).
func (m *Matrix) Subtract(other *Matrix) (*Matrix, error) {
	return m.combine(other, func(a, b int) int { return a - b }, opSubtract)
}

// combine applies fn to every coordinate stored in m or other and keeps the
// non-zero results. A coordinate absent from both operands is never visited.
func (m *Matrix) combine(other *Matrix, fn func(a, b int) int, tag string) (*Matrix, error) {
	// Stage 1: validate operands and shapes.
	if err := validatePair(tag, m, other); err != nil {
		return nil, err
	}
	if m.rows != other.rows || m.cols != other.cols {
		return nil, sparseErrorf(tag, ErrDimensionMismatch)
	}

	// Stage 2: visit the union of keys; keys of other already seen in m are skipped.
	out := newMatrix(m.rows, m.cols, len(m.data)+len(other.data))
	for k, v := range m.data {
		out.Set(k.row, k.col, fn(v, other.Get(k.row, k.col)))
	}
	for k, v := range other.data {
		if _, seen := m.data[k]; seen {
			continue
		}
		out.Set(k.row, k.col, fn(0, v))
	}

	return out, nil
}

// Multiply returns the matrix product m · other.
// Stage 1 (Validate): non-nil operands, m.Cols() == other.Rows().
// Stage 2 (Prepare): group other's entries by row (row-index); rebuilt on
// every call since operands carry no change notification.
// Stage 3 (Execute): for each stored m(i,k), add m(i,k)·other(k,j) into
// (i,j) for every (j, other(k,j)) in bucket k, through Get/Set so a cell that
// cancels back to zero is pruned.
// Result shape: m.Rows() × other.Cols().
// Complexity: O(nnz(other) + Σ_k nnz(m[:,k])·nnz(other[k,:])).
func (m *Matrix) Multiply(other *Matrix) (*Matrix, error) {
	if err := validatePair(opMultiply, m, other); err != nil {
		return nil, err
	}
	if m.cols != other.rows {
		return nil, sparseErrorf(opMultiply, ErrDimensionMismatch)
	}

	byRow := other.rowIndex()

	out := newMatrix(m.rows, other.cols, 0)
	for ka, va := range m.data {
		bucket, ok := byRow[ka.col]
		if !ok {
			continue
		}
		for _, cv := range bucket {
			out.Set(ka.row, cv.col, out.Get(ka.row, cv.col)+va*cv.value)
		}
	}

	return out, nil
}

// rowIndex groups stored entries by row: row -> [(col, value)...].
func (m *Matrix) rowIndex() map[int][]colValue {
	idx := make(map[int][]colValue)
	for k, v := range m.data {
		idx[k.row] = append(idx[k.row], colValue{col: k.col, value: v})
	}

	return idx
}
