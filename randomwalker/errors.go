// SPDX-License-Identifier: MIT
// Package randomwalker: sentinel error set.
//
// Error policy (explicit and strict):
//   • Fatal conditions are returned as errors wrapping one of the sentinels
//     below; callers branch with errors.Is.
//   • Recoverable conditions never abort a solve. They are reported as
//     Warning values (Result.Warnings) whose Kind is one of the warning
//     sentinels, and are logged through the configured zap logger.
//   • Validation happens before any matrix is built, so a fatal error never
//     follows wasted work.

package randomwalker

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rwseg/matrix"
)

// Fatal sentinels.
var (
	// ErrDimensionMismatch: len(weights) != len(edges), or len(labels) != n.
	// Alias of the matrix sentinel so errors.Is matches across packages.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrIndexOutOfRange: an edge endpoint is outside [0, n).
	ErrIndexOutOfRange = matrix.ErrOutOfRange

	// ErrUnsupportedMode: unknown solver mode identifier.
	ErrUnsupportedMode = errors.New("randomwalker: unsupported mode")

	// ErrInvalidGraph: node count is not positive.
	ErrInvalidGraph = errors.New("randomwalker: invalid graph")

	// ErrInvalidWeight: a weight is NaN, ±Inf or negative.
	ErrInvalidWeight = errors.New("randomwalker: invalid edge weight")

	// ErrDegenerateLabeling: no seeds at all, a negative label, or a class in
	// 1..K without any seed node.
	ErrDegenerateLabeling = errors.New("randomwalker: degenerate labeling")

	// ErrSingularSystem: the direct factorization of the reduced system failed,
	// typically because a connected component holds no seed.
	ErrSingularSystem = errors.New("randomwalker: singular system")
)

// Warning sentinels (recoverable; carried by Warning.Kind).
var (
	// ErrPreconditionerUnavailable: multigrid requested but the backend is not
	// configured or could not build a hierarchy; Jacobi-preconditioned CG is used.
	ErrPreconditionerUnavailable = errors.New("randomwalker: multigrid preconditioner unavailable")

	// ErrNotConverged: an iterative solve stopped at its iteration cap above
	// tolerance; the last iterate is returned.
	ErrNotConverged = errors.New("randomwalker: conjugate gradient did not converge")

	// ErrNoUnlabeledNodes: every node is seeded; the result is the seed labeling itself.
	ErrNoUnlabeledNodes = errors.New("randomwalker: no unlabeled nodes")

	// ErrIllConditioned: the direct solve succeeded but the factor reports a
	// condition number beyond double precision; results may be inaccurate.
	ErrIllConditioned = errors.New("randomwalker: ill-conditioned system")
)

// Operation tags for error wrapping.
const (
	opSolve          = "Solve"
	opBuildLaplacian = "BuildLaplacian"
	opBuildSystem    = "BuildSystem"
	opSolveSystem    = "SolveSystem"
	opDirect         = "direct"
	opAssemble       = "Assemble"
	opParseMode      = "ParseMode"
)

// walkerErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func walkerErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
