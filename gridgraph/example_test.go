package gridgraph_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/rwseg/gridgraph"
	"github.com/katalvlaran/rwseg/randomwalker"
)

// ExampleGridGraph_ToEdgeList segments a two-tone raster from one scribble per
// region. The intensity edge between the tones keeps the walks apart.
func ExampleGridGraph_ToEdgeList() {
	image := [][]float64{
		{0.1, 0.1, 0.1, 0.9, 0.9},
		{0.1, 0.1, 0.1, 0.9, 0.9},
		{0.1, 0.1, 0.9, 0.9, 0.9},
	}
	seeds := [][]int{
		{1, 0, 0, 0, 0},
		{0, 0, 0, 0, 2},
		{0, 0, 0, 0, 0},
	}
	gg, err := gridgraph.NewGridGraph(image, gridgraph.DefaultGridOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	el := gg.ToEdgeList()
	labels, _ := gg.FlattenSeeds(seeds)

	res, err := randomwalker.SolveGraph(context.Background(), randomwalker.Graph(*el), labels,
		randomwalker.WithMode(randomwalker.ModeDirect))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	out, _ := gg.Reshape(res.Labels)
	for _, row := range out {
		fmt.Println(row)
	}
	// Output:
	// [1 1 1 2 2]
	// [1 1 1 2 2]
	// [1 1 2 2 2]
}
