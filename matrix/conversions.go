// SPDX-License-Identifier: MIT

// Package matrix - bridges between CSR storage and gonum dense matrices.
//
// Purpose:
//   - Hand small or reference-size systems to gonum factorizations
//     (Cholesky, LU) without each caller re-implementing the scatter loop.
//   - Import dense fixtures back into CSR for tests and coarse operators.
//
// Notes:
//   - gonum rejects zero-sized dense matrices; the bridges surface that as
//     ErrInvalidDimensions instead of letting gonum panic.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	opToDense    = "ToDense"
	opToSymDense = "ToSymDense"
	opFromDense  = "FromDense"
)

// ToDense scatters m into a fresh *mat.Dense.
// Errors: ErrNilMatrix, ErrInvalidDimensions (zero rows or cols).
// Complexity: O(r*c) allocation + O(nnz) scatter.
func ToDense(m *CSR) (*mat.Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opToDense, ErrNilMatrix)
	}
	if m.r == 0 || m.c == 0 {
		return nil, matrixErrorf(opToDense, ErrInvalidDimensions)
	}
	d := mat.NewDense(m.r, m.c, nil)
	for i := 0; i < m.r; i++ {
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			d.Set(i, m.indices[p], m.data[p])
		}
	}

	return d, nil
}

// ToSymDense scatters a symmetric m into a fresh *mat.SymDense.
// Symmetry is verified within tol first; only the upper triangle is read after that.
// Errors: ErrNilMatrix, ErrNonSquare, ErrAsymmetry, ErrInvalidDimensions.
// Complexity: O(n²) allocation + O(nnz log k) validation.
func ToSymDense(m *CSR, tol float64) (*mat.SymDense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, matrixErrorf(opToSymDense, err)
	}
	if m.r == 0 {
		return nil, matrixErrorf(opToSymDense, ErrInvalidDimensions)
	}
	s := mat.NewSymDense(m.r, nil)
	var j int
	for i := 0; i < m.r; i++ {
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			if j = m.indices[p]; j >= i {
				s.SetSym(i, j, m.data[p])
			}
		}
	}

	return s, nil
}

// FromDense compresses any gonum matrix into CSR, dropping entries with |v| <= eps.
// Errors: ErrNilMatrix, ErrNaNInf (non-finite entry).
// Complexity: O(r*c).
func FromDense(a mat.Matrix, eps float64) (*CSR, error) {
	if a == nil {
		return nil, matrixErrorf(opFromDense, ErrNilMatrix)
	}
	r, c := a.Dims()
	out := &CSR{r: r, c: c, indptr: make([]int, r+1)}
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v = a.At(i, j)
			if isNonFinite(v) {
				return nil, matrixErrorf(opFromDense, ErrNaNInf)
			}
			if math.Abs(v) <= eps {
				continue
			}
			out.indices = append(out.indices, j)
			out.data = append(out.data, v)
		}
		out.indptr[i+1] = len(out.indices)
	}

	return out, nil
}
