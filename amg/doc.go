// Package amg builds smoothed-aggregation algebraic multigrid hierarchies for
// symmetric positive definite sparse operators such as reduced graph
// Laplacians, and applies them as symmetric V-cycle preconditioners.
//
// What:
//
//   - Build(A) coarsens A by greedy aggregation over the strength-of-connection
//     graph, smooths the piecewise-constant prolongator with one damped Jacobi
//     step and forms Galerkin coarse operators Pᵀ·A·P.
//   - (*Hierarchy).Apply runs one V-cycle (Gauss–Seidel forward pre-smoothing,
//     backward post-smoothing, dense Cholesky on the coarsest level).
//
// Why:
//
//   - Conjugate gradient on image-sized Laplacians converges in a number of
//     iterations that grows with the grid diameter; a multigrid preconditioner
//     keeps it nearly constant, which is why callers cap it at a few dozen.
//
// Concurrency:
//
//   - A Hierarchy is immutable after Build. Apply takes work vectors from a
//     sync.Pool, so one hierarchy serves many goroutines solving different
//     right-hand sides.
//
// Complexity:
//
//   - Build: O(nnz · levels) plus O(c³) for the coarsest factorization (c <= MaxCoarse).
//   - Apply: O(nnz · operator complexity).
package amg
