// SPDX-License-Identifier: MIT

package randomwalker

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rwseg/matrix"
)

// solveDirect factorizes A once (dense Cholesky) and solves all K right-hand
// sides against the factor.
//
// Behavior highlights:
//   - A failed factorization (A not positive definite, usually a component
//     without seeds) is fatal: ErrSingularSystem.
//   - gonum reports a condition number beyond double precision as a
//     mat.Condition error while still producing a solution; that becomes an
//     ErrIllConditioned warning.
//   - Residuals are recomputed on the sparse A so ColumnStats are comparable
//     with the iterative modes.
//
// Complexity: O(m³/3) factorization, O(K·m²) solves, O(m²) memory.
func solveDirect(sys *System) ([][]float64, []ColumnStats, []Warning, error) {
	m, k := sys.Size(), sys.Classes
	sym, err := matrix.ToSymDense(sys.A, matrix.DefaultSymmetryEpsilon)
	if err != nil {
		return nil, nil, nil, walkerErrorf(opDirect, err)
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(sym); !ok {
		return nil, nil, nil, walkerErrorf(opDirect, fmt.Errorf("cholesky of %d×%d block failed: %w", m, m, ErrSingularSystem))
	}

	rhs := mat.NewDense(m, k, nil)
	for c := 0; c < k; c++ {
		rhs.SetCol(c, sys.B[c])
	}
	var sol mat.Dense
	var warns []Warning
	if err = chol.SolveTo(&sol, rhs); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, nil, nil, walkerErrorf(opDirect, err)
		}
		warns = append(warns, Warning{
			Kind:    ErrIllConditioned,
			Message: fmt.Sprintf("condition number %.3g", float64(cond)),
		})
	}

	x := make([][]float64, k)
	stats := make([]ColumnStats, k)
	r := make([]float64, m)
	for c := 0; c < k; c++ {
		x[c] = mat.Col(nil, c, &sol)
		stats[c] = ColumnStats{Class: c + 1, Converged: true}
		bnorm := floats.Norm(sys.B[c], 2)
		if bnorm == 0 {
			continue
		}
		sys.A.MulVecTo(r, x[c])
		floats.Sub(r, sys.B[c])
		stats[c].Residual = floats.Norm(r, 2) / bnorm
	}

	return x, stats, warns, nil
}
