// SPDX-License-Identifier: MIT

package randomwalker

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Solve segments a weighted graph from a partial seed labeling.
//
// labels[i] == 0 marks node i as unlabeled; labels[i] == c (1..K) seeds it
// with class c. For every unlabeled node Solve computes the probability that
// a random walker started there first reaches a seed of each class, and the
// resulting hard segmentation.
//
// Implementation:
//   - Stage 1: validate options, the edge list and the labeling (in that
//     order) before building anything.
//   - Stage 2: BuildLaplacian → BuildSystem (partition by seeds).
//   - Stage 3: SolveSystem in the requested mode (fallbacks become warnings).
//   - Stage 4: Assemble the K×n volume and the hard labels.
//
// Behavior highlights:
//   - Each node's probabilities sum to 1 (exactly in the direct mode, within
//     the tolerance for iterative modes).
//   - A fully seeded graph returns its labeling with an ErrNoUnlabeledNodes warning.
//   - An observer, when configured, receives a SolveReport after success.
//
// Errors:
//   - ErrUnsupportedMode, ErrInvalidGraph, ErrDimensionMismatch,
//     ErrIndexOutOfRange, ErrInvalidWeight, ErrDegenerateLabeling,
//     ErrSingularSystem, ctx.Err().
//
// Determinism: identical input and options give identical output, independent
// of the worker count.
//
// Complexity: O(E + n) to build; the solve dominates (see Mode).
func Solve(ctx context.Context, n int, edges [][2]int, weights []float64, labels []int, opts ...Option) (*Result, error) {
	start := time.Now()
	o := gatherOptions(opts...)
	if err := o.validate(); err != nil {
		return nil, walkerErrorf(opSolve, err)
	}
	if err := validateGraph(n, edges, weights); err != nil {
		return nil, walkerErrorf(opSolve, err)
	}
	if len(labels) != n {
		return nil, walkerErrorf(opSolve, fmt.Errorf("%d labels for %d nodes: %w", len(labels), n, ErrDimensionMismatch))
	}
	k, err := CountClasses(labels)
	if err != nil {
		return nil, walkerErrorf(opSolve, err)
	}
	log := o.logger.With(zap.Stringer("mode", o.mode), zap.Int("nodes", n), zap.Int("classes", k))

	lap, err := BuildLaplacian(n, edges, weights)
	if err != nil {
		return nil, walkerErrorf(opSolve, err)
	}
	log.Debug("laplacian built", zap.Int("edges", len(edges)), zap.Int("nnz", lap.NNZ()))

	sys, err := BuildSystem(lap, labels, k)
	if err != nil {
		return nil, walkerErrorf(opSolve, err)
	}
	log.Debug("system partitioned", zap.Int("unlabeled", sys.Size()), zap.Int("seeded", len(sys.Seeded)))

	sol, err := solveSystem(ctx, sys, &o)
	if err != nil {
		return nil, walkerErrorf(opSolve, err)
	}
	probs, hard, err := Assemble(sys, sol, labels, o.full)
	if err != nil {
		return nil, walkerErrorf(opSolve, err)
	}

	res := &Result{
		Probabilities: probs,
		Labels:        hard,
		Classes:       k,
		Mode:          sol.Mode,
		Columns:       sol.Columns,
		Warnings:      sol.Warnings,
		Elapsed:       time.Since(start),
	}
	for _, w := range res.Warnings {
		log.Warn("solve warning", zap.Error(w))
	}
	log.Debug("solved",
		zap.Stringer("effective_mode", res.Mode),
		zap.Duration("elapsed", res.Elapsed),
		zap.Int("warnings", len(res.Warnings)),
	)
	if o.observer != nil {
		o.observer.ObserveSolve(SolveReport{
			Requested: o.mode,
			Effective: res.Mode,
			Nodes:     n,
			Unlabeled: sys.Size(),
			Classes:   k,
			Elapsed:   res.Elapsed,
			Columns:   res.Columns,
			Warnings:  res.Warnings,
		})
	}

	return res, nil
}

// SolveGraph is Solve over a Graph value.
func SolveGraph(ctx context.Context, g Graph, labels []int, opts ...Option) (*Result, error) {
	return Solve(ctx, g.N, g.Edges, g.Weights, labels, opts...)
}
