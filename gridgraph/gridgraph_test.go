package gridgraph_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rwseg/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects malformed inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	def := gridgraph.DefaultGridOptions()
	negBeta := def
	negBeta.Beta = -1
	noFloor := def
	noFloor.WeightFloor = 0
	badConn := def
	badConn.Conn = gridgraph.Connectivity(5)

	cases := []struct {
		name string
		grid [][]float64
		opts gridgraph.GridOptions
		err  error
	}{
		{"EmptyRows", [][]float64{}, def, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]float64{{}}, def, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]float64{{1, 2}, {3}}, def, gridgraph.ErrNonRectangular},
		{"NaN", [][]float64{{1, math.NaN()}}, def, gridgraph.ErrNonFinite},
		{"NegativeBeta", [][]float64{{1}}, negBeta, gridgraph.ErrBadOptions},
		{"ZeroFloor", [][]float64{{1}}, noFloor, gridgraph.ErrBadOptions},
		{"UnknownConn", [][]float64{{1}}, badConn, gridgraph.ErrBadOptions},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, tc.opts)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestInBounds checks InBounds and index round trips on a 3×2 grid.
func TestInBounds(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]float64{{0, 1, 0}, {1, 0, 1}}, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}
	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		if !gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
		x, y := gg.Coordinate(gg.Index(xy[0], xy[1]))
		if x != xy[0] || y != xy[1] {
			t.Errorf("Coordinate(Index(%d,%d)) = (%d,%d)", xy[0], xy[1], x, y)
		}
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		if gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
	}
}

//----------------------------------------------------------------------------//
// ToEdgeList Tests
//----------------------------------------------------------------------------//

func TestToEdgeList_Conn4Weights(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]float64{
		{0, 0},
		{1, 0.5},
	}, gridgraph.GridOptions{Conn: gridgraph.Conn4, Beta: 2, WeightFloor: 1e-9})
	require.NoError(t, err)
	el := gg.ToEdgeList()
	require.Equal(t, 4, el.N)
	require.Equal(t, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}}, el.Edges)

	// d² = 0, 1, 0.25, 0.25; max 1
	want := []float64{1, math.Exp(-2), math.Exp(-0.5), math.Exp(-0.5)}
	for k := range want {
		require.InDelta(t, want[k], el.Weights[k], 1e-15, "edge %d", k)
	}
}

func TestToEdgeList_Conn8(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	gg, err := gridgraph.NewGridGraph([][]float64{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}}, opts)
	require.NoError(t, err)
	el := gg.ToEdgeList()
	// 12 orthogonal + 8 diagonal pairs
	require.Len(t, el.Edges, 20)
	seen := map[[2]int]bool{}
	for k, e := range el.Edges {
		key := [2]int{min(e[0], e[1]), max(e[0], e[1])}
		require.False(t, seen[key], "duplicate edge %v", e)
		seen[key] = true
		require.Greater(t, el.Weights[k], 0.0)
		require.LessOrEqual(t, el.Weights[k], 1.0)
	}
}

func TestToEdgeList_FlatAndFloor(t *testing.T) {
	flat, err := gridgraph.NewGridGraph([][]float64{{3, 3, 3}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1}, flat.ToEdgeList().Weights)

	steep, err := gridgraph.NewGridGraph([][]float64{{0, 1, 1}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	w := steep.ToEdgeList().Weights
	require.Equal(t, gridgraph.DefaultWeightFloor, w[0]) // exp(-130) is below the floor
	require.Equal(t, 1.0, w[1])
}

//----------------------------------------------------------------------------//
// Seed and label rasters
//----------------------------------------------------------------------------//

func TestFlattenAndReshape(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]float64{{0, 0, 0}, {0, 0, 0}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	flat, err := gg.FlattenSeeds([][]int{{1, 0, 0}, {0, 0, 2}})
	require.NoError(t, err)
	require.Equal(t, []int{1, 0, 0, 0, 0, 2}, flat)

	back, err := gg.Reshape(flat)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 0, 0}, {0, 0, 2}}, back)

	_, err = gg.FlattenSeeds([][]int{{1, 0, 0}})
	require.ErrorIs(t, err, gridgraph.ErrShapeMismatch)
	_, err = gg.FlattenSeeds([][]int{{1, 0}, {0, 0, 2}})
	require.ErrorIs(t, err, gridgraph.ErrShapeMismatch)
	_, err = gg.Reshape([]int{1})
	require.ErrorIs(t, err, gridgraph.ErrShapeMismatch)
}
