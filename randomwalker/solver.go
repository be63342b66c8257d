// SPDX-License-Identifier: MIT

package randomwalker

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SolveSystem solves A·X = B for every class column of sys.
//
// Implementation:
//   - Stage 1: validate options (ErrUnsupportedMode).
//   - Stage 2: m == 0 short-circuits to empty columns plus an
//     ErrNoUnlabeledNodes warning.
//   - Stage 3 (direct): one Cholesky factorization, K triangular solves.
//   - Stage 3 (iterative): resolve the preconditioner (multigrid may fall back
//     to Jacobi), then run one conjugate-gradient solve per column on an
//     errgroup bounded by the worker count. Columns share A and the
//     preconditioner read-only and write only their own output slot.
//   - Stage 4: per-column ErrNotConverged warnings in class order; optional clamp.
//
// Determinism: every column is computed by the same sequential kernel
// regardless of scheduling, so output is identical for any worker count.
//
// Errors:
//   - ErrUnsupportedMode, ErrSingularSystem (direct), ErrDimensionMismatch
//     (len(B) != Classes or a column of the wrong length), ctx.Err().
func SolveSystem(ctx context.Context, sys *System, opts ...Option) (*Solution, error) {
	o := gatherOptions(opts...)
	if err := o.validate(); err != nil {
		return nil, walkerErrorf(opSolveSystem, err)
	}

	return solveSystem(ctx, sys, &o)
}

func solveSystem(ctx context.Context, sys *System, o *Options) (*Solution, error) {
	m, k := sys.Size(), sys.Classes
	if len(sys.B) != k {
		return nil, walkerErrorf(opSolveSystem, fmt.Errorf("%d columns for %d classes: %w", len(sys.B), k, ErrDimensionMismatch))
	}
	for c := range sys.B {
		if len(sys.B[c]) != m {
			return nil, walkerErrorf(opSolveSystem, fmt.Errorf("column %d has %d rows, want %d: %w", c+1, len(sys.B[c]), m, ErrDimensionMismatch))
		}
	}

	sol := &Solution{Mode: o.mode}
	if m == 0 {
		sol.X = make([][]float64, k)
		sol.Columns = make([]ColumnStats, k)
		for c := range sol.X {
			sol.X[c] = []float64{}
			sol.Columns[c] = ColumnStats{Class: c + 1, Converged: true}
		}
		sol.Warnings = []Warning{{Kind: ErrNoUnlabeledNodes, Message: "every node is seeded"}}
		return sol, nil
	}
	if sys.A == nil || sys.A.Rows() != m || sys.A.Cols() != m {
		return nil, walkerErrorf(opSolveSystem, fmt.Errorf("reduced operator does not match %d unknowns: %w", m, ErrDimensionMismatch))
	}

	var err error
	if o.mode == ModeDirect {
		sol.X, sol.Columns, sol.Warnings, err = solveDirect(sys)
		if err != nil {
			return nil, walkerErrorf(opSolveSystem, err)
		}
	} else {
		if err = solveIterative(ctx, sys, o, sol); err != nil {
			return nil, walkerErrorf(opSolveSystem, err)
		}
	}

	if o.clamp {
		for _, col := range sol.X {
			for i, v := range col {
				col[i] = min(1, max(0, v))
			}
		}
	}

	return sol, nil
}

func solveIterative(ctx context.Context, sys *System, o *Options, sol *Solution) error {
	m, k := sys.Size(), sys.Classes
	pre, effective, warns := selectPreconditioner(sys.A, o)
	sol.Mode = effective
	sol.Warnings = append(sol.Warnings, warns...)
	maxIter := o.iterationCap(effective, m)
	workers := o.workerCount(k)
	o.logger.Debug("conjugate gradient",
		zap.Stringer("mode", effective),
		zap.Int("unknowns", m),
		zap.Int("columns", k),
		zap.Int("workers", workers),
		zap.Int("max_iterations", maxIter),
		zap.Float64("tolerance", o.tol),
	)

	sol.X = make([][]float64, k)
	sol.Columns = make([]ColumnStats, k)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for c := 0; c < k; c++ {
		c := c
		g.Go(func() error {
			x, st, err := conjugateGradient(gctx, sys.A, sys.B[c], pre, o.tol, maxIter)
			if err != nil {
				return err
			}
			st.Class = c + 1
			sol.X[c], sol.Columns[c] = x, st
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, st := range sol.Columns {
		if st.Converged {
			continue
		}
		sol.Warnings = append(sol.Warnings, Warning{
			Kind:    ErrNotConverged,
			Column:  st.Class,
			Message: fmt.Sprintf("relative residual %.3g after %d iterations (tol %g)", st.Residual, st.Iterations, o.tol),
		})
	}

	return nil
}
