// SPDX-License-Identifier: MIT

// Package sparse implements integer sparse matrices stored as a dictionary of
// keys, their element-wise and matrix products, and a line-oriented text
// format used to persist them.
//
// What & Why:
//
//	Only non-zero cells are kept, in a map keyed by (row, col). Arithmetic
//	visits candidate non-zero positions only and never sweeps the dense
//	rows×cols grid, so cost follows the number of stored entries instead of
//	the declared extent.
//
// Text format:
//
//	rows=<int>
//	cols=<int>
//	(<row>, <col>, <value>)
//	...
//
// Blank lines after the header are skipped. Tuples with value 0 are accepted
// and dropped. A later tuple for the same coordinate overwrites an earlier one.
// The writer emits entries sorted by (row, col) so output is byte-stable.
//
// Errors:
//
//	All failures are package sentinels (ErrNotFound, ErrFormat,
//	ErrDimensionMismatch, ErrIO, ...) wrapped with call-site context;
//	match them with errors.Is.
//
// Complexity:
//
//	Get/Set are O(1) amortized. Add/Subtract are O(nnz(a)+nnz(b)).
//	Multiply is O(nnz(b) + Σ matches), where a match is a pair of stored
//	entries a(i,k), b(k,j). Serialization is O(nnz·log nnz) for the sort.
//
// Matrices are not safe for concurrent mutation. Results are never mutated
// after being returned, so sharing them read-only is fine.
package sparse
