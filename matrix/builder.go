// SPDX-License-Identifier: MIT

// Package matrix - triplet (COO) accumulation and compression to CSR.
//
// Purpose:
//   - Collect entries in any order, including repeated coordinates.
//   - Compress into CSR with per-row sorted columns and summed duplicates.
//
// Determinism:
//   - Rows are bucketed by a counting pass; inside a row entries are stably
//     sorted by column, so duplicates are summed in insertion order.
//
// Complexity quicksheet:
//   - Add: O(1) amortized; ToCSR: O(nnz log k) where k is the largest row length.

package matrix

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

const (
	opTripletsAdd = "Triplets.Add"
	opNewTriplets = "NewTriplets"
)

// NewTriplets creates an empty accumulator for a rows×cols matrix.
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: resolve options and reserve capacity hint.
//
// Inputs:
//   - rows, cols: target shape (zero allowed; the CSR is then empty).
//   - capHint: expected number of entries (negative treated as zero).
//
// Errors:
//   - ErrInvalidDimensions (negative shape).
//
// Complexity:
//   - Time O(1), Space O(capHint).
func NewTriplets(rows, cols, capHint int, opts ...Option) (*Triplets, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opNewTriplets, ErrInvalidDimensions)
	}
	if capHint < 0 {
		capHint = 0
	}

	return &Triplets{
		r:    rows,
		c:    cols,
		rows: make([]int, 0, capHint),
		cols: make([]int, 0, capHint),
		vals: make([]float64, 0, capHint),
		opts: gatherOptions(opts...),
	}, nil
}

// Add appends v at (i, j). Repeated coordinates are summed at compaction.
// Errors:
//   - ErrOutOfRange (i or j outside the shape).
//   - ErrNaNInf (non-finite v under the default numeric policy).
//
// Complexity: O(1) amortized.
func (t *Triplets) Add(i, j int, v float64) error {
	if i < 0 || i >= t.r || j < 0 || j >= t.c {
		return fmt.Errorf("%s(%d,%d): %w", opTripletsAdd, i, j, ErrOutOfRange)
	}
	if t.opts.validateNaNInf && isNonFinite(v) {
		return fmt.Errorf("%s(%d,%d): %w", opTripletsAdd, i, j, ErrNaNInf)
	}
	t.rows = append(t.rows, i)
	t.cols = append(t.cols, j)
	t.vals = append(t.vals, v)

	return nil
}

// Len returns the number of accumulated (uncompressed) entries.
func (t *Triplets) Len() int { return len(t.vals) }

// ToCSR compresses the accumulated entries into a fresh CSR.
// Implementation:
//   - Stage 1: counting pass over row coordinates → row offsets.
//   - Stage 2: scatter entry ids into row buckets (insertion order kept).
//   - Stage 3: per row, stable sort by column, sum runs of equal columns,
//     drop sums with |s| <= eps unless keepZeros.
//
// Behavior highlights:
//   - The accumulator is not consumed; ToCSR may be called again.
//
// Complexity:
//   - Time O(nnz log k), Space O(nnz + rows).
func (t *Triplets) ToCSR() *CSR {
	n := len(t.vals)

	// Stage 1: row offsets.
	offsets := make([]int, t.r+1)
	for _, i := range t.rows {
		offsets[i+1]++
	}
	for i := 0; i < t.r; i++ {
		offsets[i+1] += offsets[i]
	}

	// Stage 2: bucket entry ids by row, preserving insertion order.
	order := make([]int, n)
	next := slices.Clone(offsets[:t.r])
	for k, i := range t.rows {
		order[next[i]] = k
		next[i]++
	}

	// Stage 3: sort + merge per row.
	out := &CSR{
		r:       t.r,
		c:       t.c,
		indptr:  make([]int, t.r+1),
		indices: make([]int, 0, n),
		data:    make([]float64, 0, n),
	}
	var p, j int
	var sum float64
	for i := 0; i < t.r; i++ {
		seg := order[offsets[i]:offsets[i+1]]
		slices.SortStableFunc(seg, func(a, b int) int { return cmp.Compare(t.cols[a], t.cols[b]) })
		for p = 0; p < len(seg); {
			j = t.cols[seg[p]]
			sum = ZeroSum
			for p < len(seg) && t.cols[seg[p]] == j {
				sum += t.vals[seg[p]]
				p++
			}
			if !t.opts.keepZeros && math.Abs(sum) <= t.opts.eps {
				continue // dropped by numeric policy
			}
			out.indices = append(out.indices, j)
			out.data = append(out.data, sum)
		}
		out.indptr[i+1] = len(out.indices)
	}

	return out
}
