// SPDX-License-Identifier: MIT
// Package: rwseg/builder
//
// impl_cycle.go — Cycle(n): a path closed by the edge (b+n-1, b).
//
// Contract:
//   • n ≥ MinCycleNodes (else ErrTooFewVertices).
//   • Emits (b+i, b+(i+1)%n) for i = 0..n-1.
//
// Complexity: O(n).

package builder

import "fmt"

// Cycle returns a Constructor that appends a ring on n nodes.
func Cycle(n int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < %d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		b := el.addNodes(n)
		for i := 0; i < n; i++ {
			if err := el.addEdge(MethodCycle, b+i, b+(i+1)%n, cfg); err != nil {
				return err
			}
		}

		return nil
	}
}
