// SPDX-License-Identifier: MIT

package randomwalker

import (
	"context"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/rwseg/matrix"
)

// conjugateGradient solves A·x = b from x₀ = 0 with preconditioner pre.
//
// Stops when ‖r‖ <= tol·‖b‖ (relative residual, no absolute floor) or after
// maxIter iterations; in the latter case the last iterate is returned with
// Converged == false. A zero right-hand side returns x = 0 immediately.
// A non-positive curvature pᵀ·A·p (singular A along p) ends the iteration
// early with the current iterate.
//
// The context is checked once per iteration; cancellation returns ctx.Err().
// a and pre are only read, so concurrent calls may share them.
func conjugateGradient(ctx context.Context, a *matrix.CSR, b []float64, pre Preconditioner, tol float64, maxIter int) ([]float64, ColumnStats, error) {
	n := len(b)
	x := make([]float64, n)
	st := ColumnStats{Residual: 1}

	bnorm := floats.Norm(b, 2)
	if bnorm == 0 {
		st.Residual, st.Converged = 0, true
		return x, st, nil
	}
	threshold := tol * bnorm
	if bnorm <= threshold {
		st.Converged = true
		return x, st, nil
	}

	r := append([]float64(nil), b...) // r₀ = b − A·0
	z := make([]float64, n)
	q := make([]float64, n)
	pre.Apply(z, r)
	p := append([]float64(nil), z...)
	rz := floats.Dot(r, z)

	var alpha, beta, pq, rzNext, res float64
	for k := 0; k < maxIter; k++ {
		if err := ctx.Err(); err != nil {
			return x, st, err
		}
		a.MulVecTo(q, p)
		pq = floats.Dot(p, q)
		if pq <= 0 {
			break
		}
		alpha = rz / pq
		floats.AddScaled(x, alpha, p)
		floats.AddScaled(r, -alpha, q)

		res = floats.Norm(r, 2)
		st.Iterations = k + 1
		st.Residual = res / bnorm
		if res <= threshold {
			st.Converged = true
			return x, st, nil
		}

		pre.Apply(z, r)
		rzNext = floats.Dot(r, z)
		beta = rzNext / rz
		rz = rzNext
		floats.AddScaledTo(p, z, beta, p) // p = z + β·p
	}

	return x, st, nil
}
