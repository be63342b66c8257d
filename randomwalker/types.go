// SPDX-License-Identifier: MIT

package randomwalker

import (
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/rwseg/matrix"
)

// Mode selects the strategy used to solve the reduced system.
// The set is closed; unknown values are rejected with ErrUnsupportedMode.
type Mode int

const (
	// ModeCGJacobi is conjugate gradient preconditioned with the inverse
	// diagonal. It is the zero value and the default.
	ModeCGJacobi Mode = iota
	// ModeDirect factorizes the reduced system (dense Cholesky). Exact,
	// O(m²) memory; the reference mode.
	ModeDirect
	// ModeCG is unpreconditioned conjugate gradient.
	ModeCG
	// ModeCGMultigrid is conjugate gradient preconditioned with an algebraic
	// multigrid V-cycle, capped at DefaultMultigridMaxIterations.
	ModeCGMultigrid
)

// String returns the short identifier used in configuration and logs.
func (m Mode) String() string {
	switch m {
	case ModeCGJacobi:
		return "cg_j"
	case ModeDirect:
		return "bf"
	case ModeCG:
		return "cg"
	case ModeCGMultigrid:
		return "cg_mg"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	return m >= ModeCGJacobi && m <= ModeCGMultigrid
}

// ParseMode maps an identifier to a Mode. Accepted (case-insensitive):
// "bf"/"direct", "cg", "cg_j"/"jacobi", "cg_mg"/"multigrid"; the empty string
// selects the default mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "cg_j", "jacobi":
		return ModeCGJacobi, nil
	case "bf", "direct":
		return ModeDirect, nil
	case "cg":
		return ModeCG, nil
	case "cg_mg", "multigrid":
		return ModeCGMultigrid, nil
	default:
		return 0, walkerErrorf(opParseMode, fmt.Errorf("%q: %w", s, ErrUnsupportedMode))
	}
}

// Graph is an undirected weighted edge list over nodes 0..N-1.
type Graph struct {
	N       int       // node count (> 0)
	Edges   [][2]int  // endpoint pairs; duplicates are summed, self loops ignored
	Weights []float64 // one finite non-negative weight per edge
}

// System is the Laplacian restricted to unlabeled nodes.
//
//	A = L[U,U]                         (m × m)
//	B[c] = −L[U,S] · 1{label(S) = c+1}  (column c, length m)
type System struct {
	A         *matrix.CSR // nil when there are no unlabeled nodes
	B         [][]float64 // Classes columns of length m
	Unlabeled []int       // node ids with label 0, ascending
	Seeded    []int       // node ids with label > 0, ascending
	Classes   int         // K
}

// Size returns m, the number of unknowns.
func (s *System) Size() int { return len(s.Unlabeled) }

// ColumnStats reports how one right-hand side was solved.
type ColumnStats struct {
	Class      int     // 1-based class label
	Iterations int     // CG iterations; 0 for the direct mode
	Residual   float64 // final relative residual ‖b − A·x‖ / ‖b‖
	Converged  bool
}

// Solution holds the per-class potentials on unlabeled nodes.
type Solution struct {
	X        [][]float64   // X[c][i]: probability of class c+1 at Unlabeled[i]
	Columns  []ColumnStats // one per class
	Mode     Mode          // effective mode after any fallback
	Warnings []Warning
}

// Warning is a recoverable condition attached to a result. It implements
// error and unwraps to its Kind, so errors.Is(w, ErrNotConverged) works.
type Warning struct {
	Kind    error  // one of the warning sentinels
	Column  int    // 1-based class for per-column warnings, 0 otherwise
	Message string // human-readable detail
}

// Error renders the warning with its kind.
func (w Warning) Error() string {
	if w.Column > 0 {
		return fmt.Sprintf("%v (class %d): %s", w.Kind, w.Column, w.Message)
	}

	return fmt.Sprintf("%v: %s", w.Kind, w.Message)
}

// Unwrap returns the warning kind.
func (w Warning) Unwrap() error { return w.Kind }

// Result is the output of Solve.
type Result struct {
	// Probabilities is the K×n probability volume; nil unless full
	// probabilities were requested.
	Probabilities [][]float64
	// Labels is the hard segmentation: seeds keep their label, unlabeled
	// nodes take the most probable class (ties → lowest class).
	Labels   []int
	Classes  int
	Mode     Mode // effective mode
	Columns  []ColumnStats
	Warnings []Warning
	Elapsed  time.Duration
}

// SolveReport is handed to an Observer after every successful Solve.
type SolveReport struct {
	Requested Mode
	Effective Mode
	Nodes     int
	Unlabeled int
	Classes   int
	Elapsed   time.Duration
	Columns   []ColumnStats
	Warnings  []Warning
}

// Observer receives solve reports, e.g. to export metrics.
// Implementations must be safe for concurrent use when Solve is called concurrently.
type Observer interface {
	ObserveSolve(SolveReport)
}

// Preconditioner applies an approximate inverse: dst ≈ A⁻¹·src.
// Implementations are shared read-only across concurrent column solves.
type Preconditioner interface {
	Apply(dst, src []float64)
}

// MultigridBackend builds a multigrid preconditioner for A. A nil backend
// means multigrid is unavailable.
type MultigridBackend func(a *matrix.CSR) (Preconditioner, error)
