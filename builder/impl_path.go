// SPDX-License-Identifier: MIT
// Package: rwseg/builder
//
// impl_path.go — Path(n): nodes b..b+n-1 joined in a line.
//
// Contract:
//   • n ≥ MinPathNodes (else ErrTooFewVertices).
//   • Emits edges (b+i, b+i+1) for i = 0..n-2, in that order.
//
// Complexity: O(n).

package builder

import "fmt"

// Path returns a Constructor that appends a simple path on n nodes.
func Path(n int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < %d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		b := el.addNodes(n)
		for i := 0; i+1 < n; i++ {
			if err := el.addEdge(MethodPath, b+i, b+i+1, cfg); err != nil {
				return err
			}
		}

		return nil
	}
}
