// SPDX-License-Identifier: MIT

package randomwalker

import (
	"fmt"

	"github.com/katalvlaran/rwseg/matrix"
)

// CountClasses validates a seed labeling and returns K, the number of classes.
//
// Contract: labels are in 0..K where K = max(labels) >= 1, and every class in
// 1..K has at least one seed. Violations return ErrDegenerateLabeling:
// a negative label, no seed at all, or an empty class (which would otherwise
// produce a zero right-hand side and a silently meaningless column).
//
// Complexity: O(n + K).
func CountClasses(labels []int) (int, error) {
	k := 0
	for i, l := range labels {
		if l < 0 {
			return 0, fmt.Errorf("node %d has label %d: %w", i, l, ErrDegenerateLabeling)
		}
		k = max(k, l)
	}
	if k == 0 {
		return 0, fmt.Errorf("no seeded node: %w", ErrDegenerateLabeling)
	}
	seen := make([]bool, k+1)
	for _, l := range labels {
		seen[l] = true
	}
	for c := 1; c <= k; c++ {
		if !seen[c] {
			return 0, fmt.Errorf("class %d has no seed: %w", c, ErrDegenerateLabeling)
		}
	}

	return k, nil
}

// BuildSystem partitions the Laplacian by the seed labeling into the reduced
// system A·X = B over unlabeled nodes.
//
// Implementation:
//   - Stage 1: split node ids into unlabeled (label 0) and seeded, both ascending.
//   - Stage 2: A = L[U,U] via Induced.
//   - Stage 3: C = L[U,S] via Induced; B[c][i] = −Σ C[i,s]·1{label(S[s]) = c+1},
//     which collapses all seeds of one class into a single column.
//
// Behavior highlights:
//   - m == 0 is legal: A is nil and every B column is empty; callers skip solving.
//
// Errors:
//   - ErrDimensionMismatch (len(labels) != L.Rows() or L not square),
//     ErrDegenerateLabeling (a label outside 0..classes).
//
// Complexity: O(n + nnz(L[U,:])).
func BuildSystem(lap *matrix.CSR, labels []int, classes int) (*System, error) {
	if err := matrix.ValidateSquare(lap); err != nil {
		return nil, walkerErrorf(opBuildSystem, fmt.Errorf("%w: %w", ErrDimensionMismatch, err))
	}
	if len(labels) != lap.Rows() {
		return nil, walkerErrorf(opBuildSystem, fmt.Errorf("%d labels for %d nodes: %w", len(labels), lap.Rows(), ErrDimensionMismatch))
	}

	sys := &System{Classes: classes, B: make([][]float64, classes)}
	for i, l := range labels {
		switch {
		case l == 0:
			sys.Unlabeled = append(sys.Unlabeled, i)
		case l > 0 && l <= classes:
			sys.Seeded = append(sys.Seeded, i)
		default:
			return nil, walkerErrorf(opBuildSystem, fmt.Errorf("node %d label %d outside 0..%d: %w", i, l, classes, ErrDegenerateLabeling))
		}
	}
	m := len(sys.Unlabeled)
	for c := range sys.B {
		sys.B[c] = make([]float64, m)
	}
	if m == 0 {
		return sys, nil
	}

	a, err := lap.Induced(sys.Unlabeled, sys.Unlabeled)
	if err != nil {
		return nil, walkerErrorf(opBuildSystem, err)
	}
	sys.A = a

	if len(sys.Seeded) == 0 {
		return sys, nil
	}
	coupling, err := lap.Induced(sys.Unlabeled, sys.Seeded)
	if err != nil {
		return nil, walkerErrorf(opBuildSystem, err)
	}
	for i := 0; i < m; i++ {
		cols, vals, _ := coupling.Row(i)
		for p, s := range cols {
			c := labels[sys.Seeded[s]] - 1
			sys.B[c][i] -= vals[p]
		}
	}

	return sys, nil
}
