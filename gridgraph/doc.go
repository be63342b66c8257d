// Package gridgraph turns a 2D intensity raster into the weighted edge list
// consumed by the random-walker solver, and maps seed and label rasters to and
// from the solver's flat node order.
//
// What:
//
//   - GridGraph wraps a rectangular [][]float64 raster; node (x, y) is y*Width + x.
//   - Neighbors are orthogonal (Conn4) or include diagonals (Conn8).
//   - Edge weights follow the Gaussian intensity model
//     w = exp(−β·d²/max d²), d = value(u) − value(v), floored at WeightFloor
//     so that no edge disconnects the lattice.
//
// Why:
//
//   - Interactive segmentation: scribbles on an image become a seed raster,
//     the solver labels every remaining pixel.
//   - β controls edge sensitivity: large β makes the walk avoid crossing
//     intensity jumps.
//
// Complexity:
//
//   - ToEdgeList: O(W×H×d), Memory: O(W×H×d)    (d = 2 for Conn4, 4 for Conn8).
//   - FlattenSeeds / Reshape: O(W×H).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//   - GridOptions.Beta: edge sensitivity β ≥ 0 (DefaultBeta = 130).
//   - GridOptions.WeightFloor: smallest emitted weight, in (0, 1].
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNonFinite: a raster value is NaN or ±Inf.
//   - ErrBadOptions: β negative or non-finite, floor outside (0, 1], unknown Conn.
//   - ErrShapeMismatch: a seed raster or label slice does not match the grid.
package gridgraph
