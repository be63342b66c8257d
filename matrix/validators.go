// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/symmetry checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure and deterministic.
//  - Symmetry check runs in O(nnz) by walking each stored entry once.
//
// AI-Hints:
//  - Use ValidateSymmetric before handing a CSR to Cholesky or CG, both of
//    which silently misbehave on asymmetric input.
//  - Use ValidateVecLen for any MatVec-like operations to avoid ad hoc length code.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
// Handles both a nil interface and a typed nil *CSR.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if c, ok := m.(*CSR); ok && c == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix if nil, ErrNonSquare otherwise.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// A nil vector is accepted only when n == 0.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil && n != 0 {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSymmetric checks that m is square and |m[i,j] - m[j,i]| <= tol for
// every stored entry (missing entries read as zero).
// Errors: ErrNilMatrix, ErrNonSquare, ErrAsymmetry.
// Complexity: O(nnz log k).
func ValidateSymmetric(m *CSR, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	var j int
	var mirror float64
	for i := 0; i < m.r; i++ {
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			j = m.indices[p]
			if j <= i {
				continue // each unordered pair is checked from its upper entry and below
			}
			mirror, _ = m.At(j, i) // indices are in range by construction
			if math.Abs(m.data[p]-mirror) > tol {
				return validatorErrorf("ValidateSymmetric", fmt.Errorf("(%d,%d): %w", i, j, ErrAsymmetry))
			}
		}
		// entries below the diagonal without an upper partner
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			j = m.indices[p]
			if j >= i {
				break
			}
			mirror, _ = m.At(j, i)
			if mirror == 0 && math.Abs(m.data[p]) > tol {
				return validatorErrorf("ValidateSymmetric", fmt.Errorf("(%d,%d): %w", i, j, ErrAsymmetry))
			}
		}
	}

	return nil
}
