// SPDX-License-Identifier: MIT
// Package: rwseg/builder
//
// impl_grid.go — Grid(rows, cols): 2D orthogonal lattice, 4-neighborhood.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Node (r,c) is b + r*cols + c (row-major), matching raster flattening.
//   • For each (r,c) emits Right (r,c+1) then Bottom (r+1,c) where they exist.
//
// Complexity: O(rows*cols).

package builder

import "fmt"

// Grid returns a Constructor that appends a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		b := el.addNodes(rows * cols)
		var u int
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u = b + r*cols + c
				if c+1 < cols {
					if err := el.addEdge(MethodGrid, u, u+1, cfg); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := el.addEdge(MethodGrid, u, u+cols, cfg); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
