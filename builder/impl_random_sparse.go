// SPDX-License-Identifier: MIT
// Package: rwseg/builder
//
// impl_random_sparse.go — RandomSparse(n, p): Erdős–Rényi G(n, p).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   • Trials run over unordered pairs i < j, i ascending then j ascending.
//
// Complexity: O(n²) Bernoulli trials.
//
// Determinism: fixed trial order → identical output for a fixed seed.

package builder

import "fmt"

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if n < MinRandomSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomSparse, n, MinRandomSparseNodes, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		b := el.addNodes(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p < MaxProbability && (p == MinProbability || cfg.rng.Float64() >= p) {
					continue
				}
				if err := el.addEdge(MethodRandomSparse, b+i, b+j, cfg); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
