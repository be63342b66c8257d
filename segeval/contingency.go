// SPDX-License-Identifier: MIT

package segeval

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// contingency is the joint count table of two labelings.
type contingency struct {
	n      int
	cells  [][]int // cells[i][j]: positions with pred class i and truth class j
	rowSum []int   // pred cluster sizes
	colSum []int   // truth cluster sizes
}

// relabel maps arbitrary label values to 0..k-1 in ascending value order.
func relabel(x []int) ([]int, int) {
	vals := slices.Clone(x)
	slices.Sort(vals)
	vals = slices.Compact(vals)
	out := make([]int, len(x))
	for i, v := range x {
		out[i], _ = slices.BinarySearch(vals, v)
	}

	return out, len(vals)
}

func newContingency(pred, truth []int) contingency {
	p, kp := relabel(pred)
	t, kt := relabel(truth)
	c := contingency{
		n:      len(pred),
		cells:  make([][]int, kp),
		rowSum: make([]int, kp),
		colSum: make([]int, kt),
	}
	for i := range c.cells {
		c.cells[i] = make([]int, kt)
	}
	for i := range p {
		c.cells[p[i]][t[i]]++
		c.rowSum[p[i]]++
		c.colSum[t[i]]++
	}

	return c
}

// entropy of a cluster-size histogram, in nats.
func (c contingency) entropy(sizes []int) float64 {
	p := make([]float64, len(sizes))
	for i, s := range sizes {
		p[i] = float64(s) / float64(c.n)
	}

	return stat.Entropy(p)
}

// mutualInformation is Σ_ij (n_ij/n)·log(n·n_ij / (a_i·b_j)).
func (c contingency) mutualInformation() float64 {
	n := float64(c.n)
	mi := 0.0
	for i, row := range c.cells {
		for j, nij := range row {
			if nij == 0 {
				continue
			}
			v := float64(nij)
			mi += v / n * (math.Log(n*v) - math.Log(float64(c.rowSum[i])*float64(c.colSum[j])))
		}
	}

	return max(mi, 0) // rounding can push identical partitions slightly negative
}

func comb2(k int) float64 { return float64(k) * float64(k-1) / 2 }
