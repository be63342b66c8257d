// SPDX-License-Identifier: MIT
// Package: rwseg/builder
//
// impl_star.go — Star(leaves): center b, leaves b+1..b+leaves.
//
// Contract:
//   • leaves ≥ MinStarLeaves (else ErrTooFewVertices).
//   • The center is the first node of the block; edges (b, b+i) for i = 1..leaves.
//
// Complexity: O(leaves).

package builder

import "fmt"

// Star returns a Constructor that appends a hub with the given number of leaves.
func Star(leaves int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if leaves < MinStarLeaves {
			return fmt.Errorf("%s: leaves=%d < %d: %w", MethodStar, leaves, MinStarLeaves, ErrTooFewVertices)
		}
		b := el.addNodes(leaves + 1)
		for i := 1; i <= leaves; i++ {
			if err := el.addEdge(MethodStar, b, b+i, cfg); err != nil {
				return err
			}
		}

		return nil
	}
}
