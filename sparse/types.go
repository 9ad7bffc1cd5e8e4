// SPDX-License-Identifier: MIT

// Package sparse: domain types.
// This file contains ONLY the data types; behavior lives in matrix.go,
// ops.go, parse.go and write.go.
package sparse

// coord is a (row, col) pair used as the map key. A flat struct keeps the
// key compact and hash-friendly; nested per-row maps are deliberately avoided.
type coord struct {
	row int
	col int
}

// colValue is one bucket element of the transient row-index built by
// Multiply: a column and the value stored at (bucket row, col).
type colValue struct {
	col   int
	value int
}

// Entry is the exported view of one stored non-zero element.
type Entry struct {
	Row   int
	Col   int
	Value int
}

// Matrix is an integer sparse matrix in dictionary-of-keys form.
//
// The zero value is not usable; construct with New, Parse or ReadFile.
// Invariants:
//   - rows and cols never change after construction;
//   - data never holds a 0 value (Set deletes instead of storing 0).
type Matrix struct {
	rows, cols int
	data       map[coord]int
}
