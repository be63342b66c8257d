// SPDX-License-Identifier: MIT

package randomwalker

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rwseg/matrix"
)

// validateGraph checks the edge list contract without allocating.
// Priority: node count → length mismatch → endpoints → weights.
func validateGraph(n int, edges [][2]int, weights []float64) error {
	if n <= 0 {
		return fmt.Errorf("n=%d: %w", n, ErrInvalidGraph)
	}
	if len(weights) != len(edges) {
		return fmt.Errorf("%d edges, %d weights: %w", len(edges), len(weights), ErrDimensionMismatch)
	}
	for k, e := range edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return fmt.Errorf("edge %d (%d,%d) with n=%d: %w", k, e[0], e[1], n, ErrIndexOutOfRange)
		}
	}
	for k, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return fmt.Errorf("edge %d weight %g: %w", k, w, ErrInvalidWeight)
		}
	}

	return nil
}

// BuildLaplacian returns the n×n graph Laplacian L = D − W of an undirected
// weighted edge list.
//
// Implementation:
//   - Stage 1: validate (ErrInvalidGraph, ErrDimensionMismatch,
//     ErrIndexOutOfRange, ErrInvalidWeight) before allocating anything.
//   - Stage 2: insert −w at (i,j) and (j,i) for every edge; accumulate degrees.
//   - Stage 3: insert the degree on the diagonal; compress to CSR.
//
// Behavior highlights:
//   - Parallel edges are summed; zero weights create no entries; self loops
//     are skipped (they cancel in D − W).
//   - Each row and column sums to zero up to rounding.
//   - Off-diagonal pairs are accumulated in the same order from both sides,
//     so L is bitwise symmetric.
//
// Complexity: O(E log d + n), where d is the largest node degree.
func BuildLaplacian(n int, edges [][2]int, weights []float64) (*matrix.CSR, error) {
	if err := validateGraph(n, edges, weights); err != nil {
		return nil, walkerErrorf(opBuildLaplacian, err)
	}

	t, err := matrix.NewTriplets(n, n, 2*len(edges)+n)
	if err != nil {
		return nil, walkerErrorf(opBuildLaplacian, err)
	}
	degree := make([]float64, n)
	var i, j int
	for k, e := range edges {
		i, j = e[0], e[1]
		if i == j || weights[k] == 0 {
			continue
		}
		if err = t.Add(i, j, -weights[k]); err != nil {
			return nil, walkerErrorf(opBuildLaplacian, err)
		}
		if err = t.Add(j, i, -weights[k]); err != nil {
			return nil, walkerErrorf(opBuildLaplacian, err)
		}
		degree[i] += weights[k]
		degree[j] += weights[k]
	}
	for i = 0; i < n; i++ {
		if degree[i] == 0 {
			continue
		}
		if err = t.Add(i, i, degree[i]); err != nil {
			return nil, walkerErrorf(opBuildLaplacian, err)
		}
	}

	return t.ToCSR(), nil
}
