// Package matrix offers sparse matrix storage and kernels for graph operators.
//
// The matrix package provides:
//
//   - Triplets, an order-insensitive (row, col, value) accumulator that sums
//     duplicate coordinates, the natural target for edge-list ingestion.
//   - CSR, an immutable compressed-sparse-row matrix with O(1) row access,
//     submatrix extraction (Induced), diagonal and row/column sums.
//   - Kernels: MatVec / MulVecTo, Transpose, Mul (sparse × sparse), Scale.
//   - Bridges to gonum.org/v1/gonum/mat (ToDense, ToSymDense, FromDense) for
//     dense factorizations on reference-size systems.
//
// Sparse storage is best for graph Laplacians, whose rows hold one entry per
// incident edge plus the diagonal: O(V + E) memory instead of O(V²).
//
// Quick example (Laplacian of the path 0–1–2):
//
//	t, _ := matrix.NewTriplets(3, 3, 7)
//	_ = t.Add(0, 1, -1); _ = t.Add(1, 0, -1)
//	_ = t.Add(1, 2, -1); _ = t.Add(2, 1, -1)
//	_ = t.Add(0, 0, 1); _ = t.Add(1, 1, 2); _ = t.Add(2, 2, 1)
//	L := t.ToCSR()
//
// See the examples in this package for usage patterns.
package matrix
