// Package randomwalker implements random-walker segmentation on weighted graphs:
// given a partial labeling of the nodes with classes 1..K, it computes for every
// unlabeled node the probability that a random walker started there first
// reaches a seed of each class.
//
// Overview:
//
//   - The probabilities are harmonic functions on the graph. With the Laplacian
//     L = D − W partitioned into unlabeled (U) and seeded (S) nodes, the
//     potentials solve L[U,U]·X = −L[U,S]·M, where M is the one-hot seed matrix.
//   - One linear solve per class yields the K×n probability volume; the hard
//     segmentation takes the most probable class per node.
//
// When to use:
//
//   - Interactive image segmentation from scribbles (see package gridgraph for
//     raster-to-graph construction).
//   - Semi-supervised label propagation on k-NN or similarity graphs.
//
// Solver modes:
//
//   - ModeDirect ("bf"): dense Cholesky of the reduced system. Exact, reference.
//   - ModeCG ("cg"): conjugate gradient, capped at 10·m iterations.
//   - ModeCGJacobi ("cg_j", default): CG with inverse-diagonal preconditioning.
//   - ModeCGMultigrid ("cg_mg"): CG with an algebraic multigrid V-cycle from
//     package amg, capped at 30 iterations. Without a backend it falls back
//     to cg_j with an ErrPreconditionerUnavailable warning.
//
// Error handling:
//
//   - Fatal inputs (bad graph, bad labeling, unknown mode, singular direct
//     system) return errors wrapping the package sentinels.
//   - Recoverable conditions (fallback, non-convergence, nothing to solve,
//     ill-conditioning) are attached to the Result as Warning values and
//     logged through zap.
//
// Concurrency:
//
//   - Iterative modes solve class columns concurrently on an errgroup bounded
//     by WithWorkers. Results do not depend on the worker count.
//   - Solve holds no shared state; concurrent calls are safe.
//
// API reference:
//
//	func Solve(ctx context.Context, n int, edges [][2]int, weights []float64,
//	    labels []int, opts ...Option) (*Result, error)
//	func BuildLaplacian(n int, edges [][2]int, weights []float64) (*matrix.CSR, error)
//	func BuildSystem(lap *matrix.CSR, labels []int, classes int) (*System, error)
//	func SolveSystem(ctx context.Context, sys *System, opts ...Option) (*Solution, error)
//	func Assemble(sys *System, sol *Solution, labels []int, full bool) ([][]float64, []int, error)
package randomwalker
