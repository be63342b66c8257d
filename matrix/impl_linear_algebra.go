// SPDX-License-Identifier: MIT
// Package matrix provides sparse linear-algebra kernels on CSR storage:
// matrix-vector products, transpose and sparse-sparse multiplication. All
// public kernels perform strict fail-fast validation and return clear errors
// on dimension mismatches.
//
// Purpose:
//   - Declare canonical kernels used by the solvers (CG hot loop, AMG Galerkin products).
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Kernels never mutate operands; each returns a freshly allocated result,
//     except MulVecTo which writes into a caller-owned buffer by contract.

package matrix

import (
	"fmt"
)

// ZeroSum is the initial sum value for row/column accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMatVec    = "MatVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across kernels.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
//   - Keep `tag` to the canonical constants to simplify log/search pipelines.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed row order, fixed in-row order (ascending column).
// Complexity: Time O(nnz), Space O(r) for y.
//
// AI-Hints:
//   - In iterative loops prefer MulVecTo with preallocated buffers.
func MatVec(m *CSR, x []float64) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf(opMatVec, ErrNilMatrix)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, m.r)
	m.MulVecTo(y, x)

	return y, nil
}

// MulVecTo writes dst = m * x without validation or allocation.
// Contract: len(dst) == Rows(), len(x) == Cols(), dst and x do not alias.
// Violating the contract panics (index out of range) — programmer error.
// Complexity: Time O(nnz), Space O(1).
func (m *CSR) MulVecTo(dst, x []float64) {
	var acc float64
	var p int
	for i := 0; i < m.r; i++ {
		acc = ZeroSum
		for p = m.indptr[i]; p < m.indptr[i+1]; p++ {
			acc += m.data[p] * x[m.indices[p]]
		}
		dst[i] = acc
	}
}

// Transpose returns mᵀ as a fresh CSR.
// Implementation:
//   - Stage 1: count entries per column → row pointers of the result.
//   - Stage 2: scatter in ascending row order, which keeps result rows sorted.
//
// Complexity: Time O(r + c + nnz), Space O(c + nnz).
func Transpose(m *CSR) (*CSR, error) {
	if m == nil {
		return nil, matrixErrorf(opTranspose, ErrNilMatrix)
	}
	nnz := len(m.data)
	out := &CSR{
		r:       m.c,
		c:       m.r,
		indptr:  make([]int, m.c+1),
		indices: make([]int, nnz),
		data:    make([]float64, nnz),
	}
	for _, j := range m.indices {
		out.indptr[j+1]++
	}
	for j := 0; j < m.c; j++ {
		out.indptr[j+1] += out.indptr[j]
	}
	next := append([]int(nil), out.indptr[:m.c]...)
	var q int
	for i := 0; i < m.r; i++ {
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			q = next[m.indices[p]]
			out.indices[q] = i
			out.data[q] = m.data[p]
			next[m.indices[p]]++
		}
	}

	return out, nil
}

// Mul computes C = A × B for CSR operands (Gustavson row-by-row product).
// Implementation:
//   - Stage 1: validate inner dimensions (A.Cols == B.Rows).
//   - Stage 2: per row of A, scatter a(i,k)·B[k,:] into a dense accumulator
//     with a marker array; collect touched columns, sort, emit.
//
// Behavior highlights:
//   - Structural cancellation (exact zero sums) is kept out of the result.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Determinism:
//   - Fixed i→k→j accumulation order; output rows sorted by column.
//
// Complexity:
//   - Time O(flops + Σ k_i log k_i), Space O(B.Cols + nnz(C)).
//
// AI-Hints:
//   - Galerkin products Pᵀ·A·P are two Mul calls; transpose P once and reuse it.
func Mul(a, b *CSR) (*CSR, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	out := &CSR{r: a.r, c: b.c, indptr: make([]int, a.r+1)}
	acc := make([]float64, b.c)
	mark := make([]int, b.c)
	for j := range mark {
		mark[j] = -1
	}
	touched := make([]int, 0, 16)
	var k, j, start int
	var av float64
	for i := 0; i < a.r; i++ {
		touched = touched[:0]
		for p := a.indptr[i]; p < a.indptr[i+1]; p++ {
			k, av = a.indices[p], a.data[p]
			for q := b.indptr[k]; q < b.indptr[k+1]; q++ {
				j = b.indices[q]
				if mark[j] != i {
					mark[j] = i
					acc[j] = ZeroSum
					touched = append(touched, j)
				}
				acc[j] += av * b.data[q]
			}
		}
		start = len(out.indices)
		for _, j = range touched {
			if acc[j] == 0 {
				continue
			}
			out.indices = append(out.indices, j)
			out.data = append(out.data, acc[j])
		}
		sortRow(out.indices[start:], out.data[start:])
		out.indptr[i+1] = len(out.indices)
	}

	return out, nil
}

// Scale returns alpha·m as a fresh CSR with the same sparsity pattern.
// Complexity: O(nnz).
func Scale(m *CSR, alpha float64) (*CSR, error) {
	if m == nil {
		return nil, matrixErrorf(opScale, ErrNilMatrix)
	}
	out := m.Clone()
	for p := range out.data {
		out.data[p] *= alpha
	}

	return out, nil
}
