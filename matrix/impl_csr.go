// SPDX-License-Identifier: MIT

// Package matrix - CSR storage & safe accessors.
//
// Purpose:
//   - Provide a compact row-compressed buffer with O(1) row access.
//   - Guarantee safety at the public surface: At/Row/Induced return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support copy-based submatrix extraction (Induced) for block partitioning.
//
// AI-Hints:
//   - Use Row(i) in hot loops; it returns read-only subslices without copying.
//   - Use Induced(rows, cols) to cut blocks such as L[U,U] and L[U,S].
//   - CSR values are immutable after construction; share them freely across goroutines.
//
// Complexity quicksheet:
//   - At: O(log k); Row: O(1); Diagonal: O(nnz); Induced: O(nnz(selected rows)).

package matrix

import (
	"fmt"
	"sort"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"      // method tag used in error wrappers
	ctxRow    = "Row"     // method tag used in error wrappers
	ctxInduce = "Induced" // ctor/tag for CSR.Induced
)

// csrErrorf wraps an error with a uniform CSR context and callsite indices.
func csrErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("CSR.%s(%d,%d): %w", method, row, col, err)
}

// NewCSR validates raw CSR arrays and wraps them without copying.
// Implementation:
//   - Stage 1: validate shape and len(indptr) == rows+1, monotone pointers.
//   - Stage 2: validate per-row strictly increasing column indices in [0, cols).
//
// Inputs:
//   - rows, cols: shape (>= 0).
//   - indptr, indices, data: standard CSR arrays; ownership transfers to the CSR.
//
// Errors:
//   - ErrInvalidDimensions (negative shape), ErrDimensionMismatch (array lengths),
//     ErrOutOfRange (column outside bounds or unsorted row).
//
// Complexity:
//   - Time O(rows + nnz), Space O(1).
//
// AI-Hints:
//   - Prefer Triplets for assembly; NewCSR is for callers that already own
//     compressed arrays (deserialization, test fixtures).
func NewCSR(rows, cols int, indptr, indices []int, data []float64) (*CSR, error) {
	const op = "NewCSR"
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(op, ErrInvalidDimensions)
	}
	if len(indptr) != rows+1 || len(indices) != len(data) || indptr[0] != 0 || indptr[rows] != len(data) {
		return nil, matrixErrorf(op, ErrDimensionMismatch)
	}
	for i := 0; i < rows; i++ {
		if indptr[i] > indptr[i+1] {
			return nil, matrixErrorf(op, ErrDimensionMismatch)
		}
		prev := -1
		for p := indptr[i]; p < indptr[i+1]; p++ {
			if indices[p] <= prev || indices[p] >= cols {
				return nil, matrixErrorf(op, csrErrorf(ctxRow, i, indices[p], ErrOutOfRange))
			}
			prev = indices[p]
		}
	}

	return &CSR{r: rows, c: cols, indptr: indptr, indices: indices, data: data}, nil
}

// Rows returns the number of rows.
func (m *CSR) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *CSR) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *CSR) Shape() (rows, cols int) { return m.r, m.c }

// NNZ returns the number of stored entries.
func (m *CSR) NNZ() int { return len(m.data) }

// At reads element (i,j) or returns ErrOutOfRange.
// Missing entries read as zero.
// Complexity: O(log k) binary search in row i.
func (m *CSR) At(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, csrErrorf(ctxAt, i, j, ErrOutOfRange)
	}
	lo, hi := m.indptr[i], m.indptr[i+1]
	cols := m.indices[lo:hi]
	k := sort.SearchInts(cols, j)
	if k < len(cols) && cols[k] == j {
		return m.data[lo+k], nil
	}

	return 0, nil
}

// Row returns the column indices and values stored in row i.
// The returned slices alias internal storage and MUST NOT be modified.
// Complexity: O(1).
func (m *CSR) Row(i int) ([]int, []float64, error) {
	if i < 0 || i >= m.r {
		return nil, nil, csrErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	lo, hi := m.indptr[i], m.indptr[i+1]

	return m.indices[lo:hi], m.data[lo:hi], nil
}

// Diagonal returns a fresh slice with m[i,i] for i < min(rows, cols).
// Complexity: O(nnz).
func (m *CSR) Diagonal() []float64 {
	n := min(m.r, m.c)
	d := make([]float64, n)
	for i := 0; i < n; i++ {
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			if m.indices[p] == i {
				d[i] = m.data[p]
				break
			}
		}
	}

	return d
}

// RowSums returns r where r[i] = Σ_j m[i,j].
// Complexity: O(nnz).
func (m *CSR) RowSums() []float64 {
	s := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		acc := ZeroSum
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			acc += m.data[p]
		}
		s[i] = acc
	}

	return s
}

// ColSums returns c where c[j] = Σ_i m[i,j].
// Complexity: O(nnz).
func (m *CSR) ColSums() []float64 {
	s := make([]float64, m.c)
	for p, j := range m.indices {
		s[j] += m.data[p]
	}

	return s
}

// Clone returns a deep copy.
// Complexity: O(rows + nnz).
func (m *CSR) Clone() *CSR {
	return &CSR{
		r:       m.r,
		c:       m.c,
		indptr:  append([]int(nil), m.indptr...),
		indices: append([]int(nil), m.indices...),
		data:    append([]float64(nil), m.data...),
	}
}

// Induced extracts the submatrix m[rowsIdx, colsIdx] as an independent CSR.
// Implementation:
//   - Stage 1: build a column position table (−1 = not selected); reject
//     out-of-range or repeated columns.
//   - Stage 2: walk each selected row, keep selected columns, remap them.
//   - Stage 3: if colsIdx is not increasing, re-sort each output row.
//
// Behavior highlights:
//   - Rows may repeat (each copy is an independent row); columns may not.
//   - Zero-area selections return a legal empty CSR.
//
// Errors:
//   - ErrOutOfRange (index outside bounds), ErrDuplicateIndex (repeated column).
//
// Determinism:
//   - Fixed row order of rowsIdx; columns ordered by their position in colsIdx.
//
// Complexity:
//   - Time O(cols + Σ nnz(selected rows)), Space O(cols + nnz(result)).
//
// AI-Hints:
//   - Partitioning a Laplacian into seeded/unseeded blocks is two Induced calls
//     sharing the same rowsIdx.
func (m *CSR) Induced(rowsIdx, colsIdx []int) (*CSR, error) {
	pos := make([]int, m.c)
	for j := range pos {
		pos[j] = -1
	}
	monotone := true
	for k, j := range colsIdx {
		if j < 0 || j >= m.c {
			return nil, fmt.Errorf("CSR.%s: col index %d: %w", ctxInduce, j, ErrOutOfRange)
		}
		if pos[j] >= 0 {
			return nil, fmt.Errorf("CSR.%s: col index %d: %w", ctxInduce, j, ErrDuplicateIndex)
		}
		if k > 0 && j < colsIdx[k-1] {
			monotone = false
		}
		pos[j] = k
	}

	out := &CSR{
		r:      len(rowsIdx),
		c:      len(colsIdx),
		indptr: make([]int, len(rowsIdx)+1),
	}
	for k, i := range rowsIdx {
		if i < 0 || i >= m.r {
			return nil, fmt.Errorf("CSR.%s: row index %d: %w", ctxInduce, i, ErrOutOfRange)
		}
		start := len(out.indices)
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			if q := pos[m.indices[p]]; q >= 0 {
				out.indices = append(out.indices, q)
				out.data = append(out.data, m.data[p])
			}
		}
		if !monotone {
			sortRow(out.indices[start:], out.data[start:])
		}
		out.indptr[k+1] = len(out.indices)
	}

	return out, nil
}

// String renders the matrix densely; intended for small matrices in tests and logs.
func (m *CSR) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		p := m.indptr[i]
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			if p < m.indptr[i+1] && m.indices[p] == j {
				fmt.Fprintf(&sb, "%g", m.data[p])
				p++
			} else {
				sb.WriteString("0")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// sortRow sorts one CSR row segment by column index, carrying values along.
// Insertion sort: rows of graph Laplacians are short.
func sortRow(idx []int, val []float64) {
	for a := 1; a < len(idx); a++ {
		ci, cv := idx[a], val[a]
		b := a - 1
		for b >= 0 && idx[b] > ci {
			idx[b+1], val[b+1] = idx[b], val[b]
			b--
		}
		idx[b+1], val[b+1] = ci, cv
	}
}
