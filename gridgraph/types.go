// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/rwseg.
package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNonFinite indicates a NaN or ±Inf raster value.
	ErrNonFinite = errors.New("gridgraph: raster value is not finite")
	// ErrBadOptions indicates an invalid GridOptions field.
	ErrBadOptions = errors.New("gridgraph: invalid options")
	// ErrShapeMismatch indicates a seed raster or label slice of the wrong shape.
	ErrShapeMismatch = errors.New("gridgraph: shape does not match the grid")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Defaults.
const (
	// DefaultBeta is the edge sensitivity used for natural images scaled to [0,1].
	DefaultBeta = 130.0
	// DefaultWeightFloor keeps every lattice edge strictly positive.
	DefaultWeightFloor = 1e-6
)

// GridOptions contains tunable parameters for raster-to-graph conversion.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Beta is the edge sensitivity β ≥ 0; 0 gives uniform unit weights.
	Beta float64
	// WeightFloor is the smallest emitted weight, in (0, 1].
	WeightFloor float64
}

// DefaultGridOptions returns GridOptions with Conn4, DefaultBeta and DefaultWeightFloor.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn:        Conn4,
		Beta:        DefaultBeta,
		WeightFloor: DefaultWeightFloor,
	}
}

// GridGraph treats a 2D float raster as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the input value.
type GridGraph struct {
	Width, Height int
	CellValues    [][]float64
	Options       GridOptions
	forward       [][2]int // neighbor offsets emitted once per unordered pair
}
