// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rwseg/builder"
)

// NewGridGraph validates and copies values into a GridGraph.
//
// Errors: ErrEmptyGrid, ErrNonRectangular, ErrNonFinite, ErrBadOptions.
// Complexity: O(W×H).
func NewGridGraph(values [][]float64, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	h, w := len(values), len(values[0])
	cells := make([][]float64, h)
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), w, ErrNonRectangular)
		}
		for x, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("cell (%d,%d): %w", x, y, ErrNonFinite)
			}
		}
		cells[y] = append([]float64(nil), row...)
	}

	// Forward half of the neighborhood: each unordered pair is visited once.
	forward := [][2]int{{1, 0}, {0, 1}}
	if opts.Conn == Conn8 {
		forward = append(forward, [2]int{1, 1}, [2]int{-1, 1})
	}

	return &GridGraph{
		Width:      w,
		Height:     h,
		CellValues: cells,
		Options:    opts,
		forward:    forward,
	}, nil
}

func (o GridOptions) validate() error {
	if o.Conn != Conn4 && o.Conn != Conn8 {
		return fmt.Errorf("conn=%d: %w", o.Conn, ErrBadOptions)
	}
	if math.IsNaN(o.Beta) || math.IsInf(o.Beta, 0) || o.Beta < 0 {
		return fmt.Errorf("beta=%g: %w", o.Beta, ErrBadOptions)
	}
	if !(o.WeightFloor > 0 && o.WeightFloor <= 1) {
		return fmt.Errorf("weight floor=%g: %w", o.WeightFloor, ErrBadOptions)
	}

	return nil
}

// InBounds reports whether (x, y) lies within the grid.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Index returns the node id of cell (x, y).
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a node id back to (x, y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// Size returns the node count W×H.
func (gg *GridGraph) Size() int { return gg.Width * gg.Height }

// ToEdgeList emits the weighted lattice.
//
// Implementation:
//   - Stage 1: squared differences d² for every neighbor pair, tracking max d².
//   - Stage 2: w = exp(−β·d²/max d²), floored at WeightFloor. A flat raster
//     (max d² = 0) or β = 0 yields unit weights.
//
// Determinism: nodes row-major; per node the forward offsets in fixed order.
func (gg *GridGraph) ToEdgeList() *builder.EdgeList {
	el := &builder.EdgeList{N: gg.Size()}
	var d2, maxD2 float64
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			for _, d := range gg.forward {
				nx, ny := x+d[0], y+d[1]
				if !gg.InBounds(nx, ny) {
					continue
				}
				d2 = gg.CellValues[y][x] - gg.CellValues[ny][nx]
				d2 *= d2
				maxD2 = math.Max(maxD2, d2)
				el.Edges = append(el.Edges, [2]int{gg.Index(x, y), gg.Index(nx, ny)})
				el.Weights = append(el.Weights, d2)
			}
		}
	}

	scale := 0.0
	if maxD2 > 0 {
		scale = gg.Options.Beta / maxD2
	}
	for k, v := range el.Weights {
		el.Weights[k] = math.Max(math.Exp(-scale*v), gg.Options.WeightFloor)
	}

	return el
}

// FlattenSeeds converts a seed raster (0 = unlabeled, c ≥ 1 = class) of the
// grid's shape into the solver's node order.
func (gg *GridGraph) FlattenSeeds(seeds [][]int) ([]int, error) {
	if len(seeds) != gg.Height {
		return nil, fmt.Errorf("%d seed rows for height %d: %w", len(seeds), gg.Height, ErrShapeMismatch)
	}
	out := make([]int, 0, gg.Size())
	for y, row := range seeds {
		if len(row) != gg.Width {
			return nil, fmt.Errorf("seed row %d has %d cells, want %d: %w", y, len(row), gg.Width, ErrShapeMismatch)
		}
		out = append(out, row...)
	}

	return out, nil
}

// Reshape lays a per-node slice (labels) back out as a Height×Width raster.
func (gg *GridGraph) Reshape(labels []int) ([][]int, error) {
	if len(labels) != gg.Size() {
		return nil, fmt.Errorf("%d labels for %d cells: %w", len(labels), gg.Size(), ErrShapeMismatch)
	}
	out := make([][]int, gg.Height)
	for y := range out {
		out[y] = append([]int(nil), labels[y*gg.Width:(y+1)*gg.Width]...)
	}

	return out, nil
}
