// SPDX-License-Identifier: MIT
// Package: rwseg/builder
//
// impl_complete.go — Complete(n): every unordered pair of n nodes.
//
// Contract:
//   • n ≥ MinCompleteNodes (else ErrTooFewVertices).
//   • Emits (b+i, b+j) for i < j, i ascending then j ascending.
//
// Complexity: O(n²).

package builder

import "fmt"

// Complete returns a Constructor that appends K_n.
func Complete(n int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < %d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		b := el.addNodes(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := el.addEdge(MethodComplete, b+i, b+j, cfg); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
