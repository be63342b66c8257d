// SPDX-License-Identifier: MIT

package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rwseg/builder"
)

func TestTopologies(t *testing.T) {
	cases := []struct {
		name  string
		cons  builder.Constructor
		nodes int
		edges [][2]int
	}{
		{"path", builder.Path(4), 4, [][2]int{{0, 1}, {1, 2}, {2, 3}}},
		{"cycle", builder.Cycle(3), 3, [][2]int{{0, 1}, {1, 2}, {2, 0}}},
		{"star", builder.Star(3), 4, [][2]int{{0, 1}, {0, 2}, {0, 3}}},
		{"complete", builder.Complete(3), 3, [][2]int{{0, 1}, {0, 2}, {1, 2}}},
		{"grid", builder.Grid(2, 3), 6, [][2]int{{0, 1}, {0, 3}, {1, 2}, {1, 4}, {2, 5}, {3, 4}, {4, 5}}},
		{"single complete", builder.Complete(1), 1, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			el, err := builder.Build(nil, tc.cons)
			require.NoError(t, err)
			require.Equal(t, tc.nodes, el.N)
			require.Equal(t, tc.edges, el.Edges)
			require.Len(t, el.Weights, len(tc.edges))
			for _, w := range el.Weights {
				require.Equal(t, builder.DefaultEdgeWeight, w)
			}
		})
	}
}

func TestBuild_DisjointBlocks(t *testing.T) {
	el, err := builder.Build(nil, builder.Path(2), builder.Cycle(3))
	require.NoError(t, err)
	require.Equal(t, 5, el.N)
	require.Equal(t, [][2]int{{0, 1}, {2, 3}, {3, 4}, {4, 2}}, el.Edges)
	require.Equal(t, []float64{1, 1, 2, 2, 2}, el.Degrees())

	_, err = builder.Build(nil, builder.Path(2), nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name string
		cons builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"path", builder.Path(1), nil, builder.ErrTooFewVertices},
		{"cycle", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"star", builder.Star(0), nil, builder.ErrTooFewVertices},
		{"complete", builder.Complete(0), nil, builder.ErrTooFewVertices},
		{"grid", builder.Grid(0, 3), nil, builder.ErrTooFewVertices},
		{"sparse size", builder.RandomSparse(0, 0.5), nil, builder.ErrTooFewVertices},
		{"sparse p", builder.RandomSparse(3, 1.5), nil, builder.ErrInvalidProbability},
		{"sparse rng", builder.RandomSparse(3, 0.5), nil, builder.ErrNeedRandSource},
		{"bad weight", builder.Path(3), []builder.BuilderOption{builder.WithWeightFn(func(*rand.Rand) float64 { return math.NaN() })}, builder.ErrInvalidWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.Build(tc.opts, tc.cons)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRandomSparse(t *testing.T) {
	full, err := builder.Build(nil, builder.RandomSparse(5, 1))
	require.NoError(t, err)
	require.Len(t, full.Edges, 10)

	empty, err := builder.Build(nil, builder.RandomSparse(5, 0))
	require.NoError(t, err)
	require.Empty(t, empty.Edges)
	require.Equal(t, 5, empty.N)

	a, err := builder.Build([]builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(30, 0.2))
	require.NoError(t, err)
	b, err := builder.Build([]builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(30, 0.2))
	require.NoError(t, err)
	require.Equal(t, a, b)
	for _, e := range a.Edges {
		require.Less(t, e[0], e[1])
	}
}

func TestWeightFns(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(2, 3)}
	el, err := builder.Build(opts, builder.Grid(5, 5))
	require.NoError(t, err)
	for _, w := range el.Weights {
		require.GreaterOrEqual(t, w, 2.0)
		require.Less(t, w, 3.0)
	}

	el, err = builder.Build([]builder.BuilderOption{builder.WithConstantWeight(0.25)}, builder.Star(4))
	require.NoError(t, err)
	require.Equal(t, []float64{0.25, 0.25, 0.25, 0.25}, el.Weights)

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		require.GreaterOrEqual(t, builder.NormalWeightFn(0, 1)(rng), 0.0)
		require.GreaterOrEqual(t, builder.ExponentialWeightFn(2)(rng), 0.0)
	}
	// nil RNG falls back deterministically
	require.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(5, 6)(nil))
	require.Equal(t, builder.DefaultEdgeWeight, builder.NormalWeightFn(5, 1)(nil))
	require.Equal(t, builder.DefaultEdgeWeight, builder.ExponentialWeightFn(1)(nil))
	require.Equal(t, 4.0, builder.UniformWeightFn(4, 4)(rng))
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithWeightFn(nil) })
	require.Panics(t, func() { builder.ConstantWeightFn(-1) })
	require.Panics(t, func() { builder.UniformWeightFn(3, 2) })
	require.Panics(t, func() { builder.NormalWeightFn(0, -1) })
	require.Panics(t, func() { builder.ExponentialWeightFn(0) })
}
