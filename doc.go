// Package rwseg is random-walker seed propagation over weighted graphs:
// given a few labeled nodes, every other node receives the probability that a
// random walk started there first reaches a seed of each class.
//
// What is inside?
//
//	A small numerical stack for graph-based semi-supervised segmentation:
//		• Sparse Laplacians: CSR storage, induced submatrices, sparse products
//		• Solvers: dense Cholesky, conjugate gradient (plain / Jacobi / AMG)
//		• Algebraic multigrid: smoothed aggregation V-cycle preconditioner
//		• Graph sources: synthetic topologies, image rasters with intensity weights
//		• Scoring: accuracy, adjusted Rand index, variation of information
//
// Packages:
//
//	randomwalker/ — Laplacian, seed partition, solver dispatch, assembly (Solve)
//	matrix/       — triplet (COO) and CSR sparse matrices, gonum bridges
//	amg/          — smoothed-aggregation multigrid hierarchy
//	builder/      — deterministic edge-list constructors (path, grid, random…)
//	gridgraph/    — 2D raster → 4/8-connected weighted edge list
//	segeval/      — segmentation scores restricted to unseeded nodes
//	cmd/rwseg/    — command-line front end (solve, evaluate, version)
//
// Quick example:
//
//	  1 ─── · ─── · ─── 2
//
//	a four-node path seeded at both ends: the inner nodes receive class-1
//	probabilities 2/3 and 1/3, and the hard segmentation [1 1 2 2].
//
//	res, err := randomwalker.Solve(ctx, 4,
//		[][2]int{{0, 1}, {1, 2}, {2, 3}}, []float64{1, 1, 1},
//		[]int{1, 0, 0, 2})
//
//	go get github.com/katalvlaran/rwseg
package rwseg
