// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the sparse storage and kernels.
// This file intentionally contains ONLY domain-facing types (the read-only
// Matrix interface, the CSR container and the triplet accumulator). Errors and
// options live in dedicated files (errors.go, options.go) per the global
// conventions.
package matrix

// Matrix represents a read-only two-dimensional array of float64 values.
// Sparse storage is immutable after assembly, so the interface exposes only
// shape and element access. Dense gonum matrices are bridged in conversions.go.
//
// Complexity notes: Rows/Cols are O(1); At is O(log nnz(row)) for *CSR.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}

// CSR is a compressed sparse row matrix.
//   - r,c hold dimensions (rows, cols); zero is legal for empty selections.
//   - indptr has length r+1; row i occupies [indptr[i], indptr[i+1]).
//   - indices holds column indices, strictly increasing inside each row.
//   - data holds the values parallel to indices.
//
// A CSR is immutable once returned by a constructor; every kernel allocates a
// fresh result, so a CSR may be shared read-only across goroutines.
type CSR struct {
	r, c    int       // row and column counts (>=0)
	indptr  []int     // row pointer array (len == r+1)
	indices []int     // column indices (len == nnz)
	data    []float64 // values (len == nnz)
}

// Triplets accumulates (row, col, value) entries before compression to CSR.
// Duplicate coordinates are summed during compaction in insertion order, so
// the result is deterministic for a fixed insertion sequence.
type Triplets struct {
	r, c int       // target shape
	rows []int     // row coordinate per entry
	cols []int     // column coordinate per entry
	vals []float64 // value per entry
	opts Options   // resolved numeric policy
}

// Compile-time assertions for interface conformance.
var _ Matrix = (*CSR)(nil)
