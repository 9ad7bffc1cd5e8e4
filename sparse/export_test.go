// SPDX-License-Identifier: MIT

package sparse

// RowIndex_TestOnly exposes the multiplication row-index for assertions.
func RowIndex_TestOnly(m *Matrix) map[int][][2]int {
	out := make(map[int][][2]int)
	for row, bucket := range m.rowIndex() {
		for _, cv := range bucket {
			out[row] = append(out[row], [2]int{cv.col, cv.value})
		}
	}

	return out
}
