// SPDX-License-Identifier: MIT

package amg

import (
	"math"

	"github.com/katalvlaran/rwseg/matrix"
)

// strongNeighbors returns, per row, the off-diagonal columns that are strongly
// connected to the row under the symmetric criterion
//
//	|a_ij| >= θ·sqrt(|a_ii|·|a_jj|).
//
// Complexity: O(nnz).
func strongNeighbors(a *matrix.CSR, diag []float64, theta float64) [][]int {
	n := a.Rows()
	out := make([][]int, n)
	for i := 0; i < n; i++ {
		cols, vals, _ := a.Row(i)
		for p, j := range cols {
			if j == i || vals[p] == 0 {
				continue
			}
			if math.Abs(vals[p]) >= theta*math.Sqrt(math.Abs(diag[i]*diag[j])) {
				out[i] = append(out[i], j)
			}
		}
	}

	return out
}

// aggregate groups nodes into disjoint aggregates (greedy standard aggregation).
//
//   - Pass 1: a node whose strong neighbors are all free becomes a root; it and
//     its neighbors form a new aggregate. Nodes without strong neighbors form
//     singleton aggregates so every row of the prolongator is non-empty.
//   - Pass 2: remaining free nodes join the aggregate of a strong neighbor
//     that was aggregated in pass 1.
//   - Pass 3: still-free nodes seed new aggregates with their free neighbors.
//
// Returns the aggregate id per node and the aggregate count.
// Determinism: every pass scans nodes in ascending index order.
func aggregate(strong [][]int) ([]int, int) {
	n := len(strong)
	agg := make([]int, n)
	for i := range agg {
		agg[i] = -1
	}
	count := 0

	// Pass 1.
	for i := 0; i < n; i++ {
		if agg[i] >= 0 {
			continue
		}
		free := true
		for _, j := range strong[i] {
			if agg[j] >= 0 {
				free = false
				break
			}
		}
		if !free {
			continue
		}
		agg[i] = count
		for _, j := range strong[i] {
			agg[j] = count
		}
		count++
	}

	// Pass 2: attach to the first aggregated strong neighbor.
	pass1 := append([]int(nil), agg...)
	for i := 0; i < n; i++ {
		if agg[i] >= 0 {
			continue
		}
		for _, j := range strong[i] {
			if pass1[j] >= 0 {
				agg[i] = pass1[j]
				break
			}
		}
	}

	// Pass 3.
	for i := 0; i < n; i++ {
		if agg[i] >= 0 {
			continue
		}
		agg[i] = count
		for _, j := range strong[i] {
			if agg[j] < 0 {
				agg[j] = count
			}
		}
		count++
	}

	return agg, count
}

// tentative builds the piecewise-constant prolongator T (n × count) with
// T[i, agg[i]] = 1.
func tentative(agg []int, count int) (*matrix.CSR, error) {
	n := len(agg)
	indptr := make([]int, n+1)
	indices := make([]int, n)
	data := make([]float64, n)
	for i, g := range agg {
		indptr[i+1] = i + 1
		indices[i] = g
		data[i] = 1
	}

	return matrix.NewCSR(n, count, indptr, indices, data)
}

// smoothProlongator returns P = (I − ω·D⁻¹·A)·T with ω = (4/3)/ρ, where ρ is the
// Gershgorin bound of D⁻¹·A (max_i Σ_j |a_ij| / a_ii). For reduced graph
// Laplacians ρ <= 2, so ω >= 2/3.
func smoothProlongator(a *matrix.CSR, diag []float64, t *matrix.CSR) (*matrix.CSR, error) {
	n := a.Rows()
	rho := 0.0
	for i := 0; i < n; i++ {
		_, vals, _ := a.Row(i)
		s := 0.0
		for _, v := range vals {
			s += math.Abs(v)
		}
		if r := s / diag[i]; r > rho {
			rho = r
		}
	}
	if rho == 0 {
		return t, nil
	}
	omega := (4.0 / 3.0) / rho

	sm, err := matrix.NewTriplets(n, n, a.NNZ()+n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err = sm.Add(i, i, 1); err != nil {
			return nil, err
		}
		cols, vals, _ := a.Row(i)
		for p, j := range cols {
			if err = sm.Add(i, j, -omega*vals[p]/diag[i]); err != nil {
				return nil, err
			}
		}
	}

	return matrix.Mul(sm.ToCSR(), t)
}
