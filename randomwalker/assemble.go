// SPDX-License-Identifier: MIT

package randomwalker

import "fmt"

// Assemble scatters solved potentials back to the full node set.
//
// Behavior highlights:
//   - Seeds are fixed: probability 1 for their own class, 0 otherwise.
//   - Unlabeled node Unlabeled[i] gets X[c][i] for class c+1.
//   - Hard labels: seeds keep their label; unlabeled nodes take the class with
//     the highest potential, ties resolved toward the lowest class.
//   - probs is nil when full is false.
//
// Errors: ErrDimensionMismatch when sol does not match sys or labels.
//
// Complexity: O(K·n).
func Assemble(sys *System, sol *Solution, labels []int, full bool) ([][]float64, []int, error) {
	m, k := sys.Size(), sys.Classes
	n := len(sys.Unlabeled) + len(sys.Seeded)
	if len(labels) != n {
		return nil, nil, walkerErrorf(opAssemble, fmt.Errorf("%d labels for %d nodes: %w", len(labels), n, ErrDimensionMismatch))
	}
	if len(sol.X) != k {
		return nil, nil, walkerErrorf(opAssemble, fmt.Errorf("%d solved columns for %d classes: %w", len(sol.X), k, ErrDimensionMismatch))
	}
	for c := range sol.X {
		if len(sol.X[c]) != m {
			return nil, nil, walkerErrorf(opAssemble, fmt.Errorf("column %d has %d rows, want %d: %w", c+1, len(sol.X[c]), m, ErrDimensionMismatch))
		}
	}

	hard := make([]int, n)
	copy(hard, labels)
	var best int
	for i, node := range sys.Unlabeled {
		best = 0
		for c := 1; c < k; c++ {
			if sol.X[c][i] > sol.X[best][i] {
				best = c
			}
		}
		hard[node] = best + 1
	}
	if !full {
		return nil, hard, nil
	}

	probs := make([][]float64, k)
	for c := range probs {
		probs[c] = make([]float64, n)
		for i, node := range sys.Unlabeled {
			probs[c][node] = sol.X[c][i]
		}
	}
	for _, node := range sys.Seeded {
		probs[labels[node]-1][node] = 1
	}

	return probs, hard, nil
}
