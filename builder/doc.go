// Package builder provides deterministic generators of weighted undirected
// edge lists: the input shape of randomwalker.Solve.
//
// Overview:
//
//   - Constructors (Path, Cycle, Star, Complete, Grid, RandomSparse) each emit
//     one connected topology as a new block of nodes appended to an EdgeList.
//   - Build runs a sequence of constructors; their blocks are disjoint, so
//     Build(opts, Path(3), Path(3)) yields two components of three nodes.
//   - Edge weights come from a pluggable WeightFn (constant, uniform, normal,
//     exponential) drawn from an explicit *rand.Rand for reproducibility.
//
// When to use:
//
//   - Fixtures and benchmarks for the solver, AMG and sparse kernels.
//   - Demos of seed propagation on classic topologies.
//
// Error handling (sentinel errors):
//
//   - ErrTooFewVertices: size parameter below the constructor minimum.
//   - ErrInvalidProbability: RandomSparse p outside [0,1].
//   - ErrNeedRandSource: a stochastic constructor without WithSeed/WithRand.
//   - ErrInvalidWeight: the WeightFn produced a negative or non-finite weight.
//   - ErrConstructFailed: nil constructor passed to Build.
//
// Determinism:
//
//   - Node ids are assigned in ascending order; edges are emitted in a fixed,
//     documented order per constructor; weights depend only on the RNG seed.
//
// Conversion:
//
//	el, _ := builder.Build(nil, builder.Grid(4, 4))
//	res, _ := randomwalker.SolveGraph(ctx, randomwalker.Graph(*el), labels)
package builder
