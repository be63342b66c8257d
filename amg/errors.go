// SPDX-License-Identifier: MIT
// Package: rwseg/amg
//
// errors.go — sentinel errors for hierarchy construction and application.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Build wraps them with the level where the problem was detected.

package amg

import "errors"

var (
	// ErrNilMatrix indicates that Build received a nil operator.
	ErrNilMatrix = errors.New("amg: nil matrix")

	// ErrNonSquare indicates that the operator is not square.
	ErrNonSquare = errors.New("amg: matrix is not square")

	// ErrEmptyMatrix indicates a 0×0 operator; there is nothing to precondition.
	ErrEmptyMatrix = errors.New("amg: empty matrix")

	// ErrNonPositiveDiagonal indicates a diagonal entry <= 0 on the fine level.
	// Smoothers divide by the diagonal, so the operator must be an SPD-like
	// M-matrix (a reduced graph Laplacian always is, unless a node is isolated).
	ErrNonPositiveDiagonal = errors.New("amg: non-positive diagonal entry")

	// ErrDimensionMismatch indicates that Apply received vectors of the wrong length.
	ErrDimensionMismatch = errors.New("amg: dimension mismatch")
)
