// SPDX-License-Identifier: MIT

package randomwalker_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rwseg/matrix"
	"github.com/katalvlaran/rwseg/randomwalker"
)

func at(t *testing.T, m *matrix.CSR, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

func TestBuildLaplacian_Structure(t *testing.T) {
	// parallel edge 0-1 (1+2), self loop on 2 (ignored), zero weight 2-3
	edges := [][2]int{{0, 1}, {1, 0}, {1, 2}, {2, 2}, {2, 3}}
	weights := []float64{1, 2, 0.5, 7, 0}
	lap, err := randomwalker.BuildLaplacian(4, edges, weights)
	require.NoError(t, err)
	require.Equal(t, 4, lap.Rows())

	require.Equal(t, 3.0, at(t, lap, 0, 0))
	require.Equal(t, -3.0, at(t, lap, 0, 1))
	require.Equal(t, -3.0, at(t, lap, 1, 0))
	require.Equal(t, 3.5, at(t, lap, 1, 1))
	require.Equal(t, -0.5, at(t, lap, 1, 2))
	require.Equal(t, 0.5, at(t, lap, 2, 2))
	require.Equal(t, 0.0, at(t, lap, 2, 3))
	require.Equal(t, 0.0, at(t, lap, 3, 3))

	for i, s := range lap.RowSums() {
		require.InDelta(t, 0, s, 1e-12, "row %d", i)
	}
	require.NoError(t, matrix.ValidateSymmetric(lap, 0))
}

func TestBuildLaplacian_Errors(t *testing.T) {
	_, err := randomwalker.BuildLaplacian(0, nil, nil)
	require.ErrorIs(t, err, randomwalker.ErrInvalidGraph)
	_, err = randomwalker.BuildLaplacian(2, [][2]int{{0, -1}}, []float64{1})
	require.ErrorIs(t, err, randomwalker.ErrIndexOutOfRange)
	_, err = randomwalker.BuildLaplacian(2, [][2]int{{0, 1}}, nil)
	require.ErrorIs(t, err, randomwalker.ErrDimensionMismatch)
}

func TestCountClasses(t *testing.T) {
	k, err := randomwalker.CountClasses([]int{0, 2, 1, 0, 2})
	require.NoError(t, err)
	require.Equal(t, 2, k)

	_, err = randomwalker.CountClasses([]int{0, 0})
	require.ErrorIs(t, err, randomwalker.ErrDegenerateLabeling)
	_, err = randomwalker.CountClasses([]int{2, 0})
	require.ErrorIs(t, err, randomwalker.ErrDegenerateLabeling)
}

func TestBuildSystem_Path(t *testing.T) {
	g := pathGraph(5)
	lap, err := randomwalker.BuildLaplacian(g.N, g.Edges, g.Weights)
	require.NoError(t, err)
	sys, err := randomwalker.BuildSystem(lap, []int{1, 0, 0, 0, 2}, 2)
	require.NoError(t, err)

	require.Equal(t, []int{1, 2, 3}, sys.Unlabeled)
	require.Equal(t, []int{0, 4}, sys.Seeded)
	require.Equal(t, 3, sys.Size())
	require.Equal(t, 3, sys.A.Rows())
	for i := 0; i < 3; i++ {
		require.Equal(t, 2.0, at(t, sys.A, i, i))
	}
	require.Equal(t, -1.0, at(t, sys.A, 0, 1))
	require.Equal(t, 0.0, at(t, sys.A, 0, 2))
	require.Equal(t, []float64{1, 0, 0}, sys.B[0])
	require.Equal(t, []float64{0, 0, 1}, sys.B[1])
}

func TestBuildSystem_SeedsOfOneClassCollapse(t *testing.T) {
	// star: center 0 unlabeled, leaves 1,2 class 1 (weights 1, 2), leaf 3 class 2
	edges := [][2]int{{0, 1}, {0, 2}, {0, 3}}
	lap, err := randomwalker.BuildLaplacian(4, edges, []float64{1, 2, 4})
	require.NoError(t, err)
	sys, err := randomwalker.BuildSystem(lap, []int{0, 1, 1, 2}, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{3}, sys.B[0])
	require.Equal(t, []float64{4}, sys.B[1])

	sol, err := randomwalker.SolveSystem(context.Background(), sys, randomwalker.WithMode(randomwalker.ModeDirect))
	require.NoError(t, err)
	require.InDelta(t, 3.0/7.0, sol.X[0][0], 1e-12)
	require.InDelta(t, 4.0/7.0, sol.X[1][0], 1e-12)
	require.InDelta(t, 0, sol.Columns[0].Residual, 1e-12)

	probs, hard, err := randomwalker.Assemble(sys, sol, []int{0, 1, 1, 2}, true)
	require.NoError(t, err)
	require.Equal(t, []int{2, 1, 1, 2}, hard)
	require.InDelta(t, 3.0/7.0, probs[0][0], 1e-12)
	require.Equal(t, []float64{1, 1, 0}, probs[0][1:])
	require.Equal(t, []float64{0, 0, 1}, probs[1][1:])
}

func TestBuildSystem_Errors(t *testing.T) {
	lap, err := randomwalker.BuildLaplacian(3, [][2]int{{0, 1}, {1, 2}}, []float64{1, 1})
	require.NoError(t, err)
	_, err = randomwalker.BuildSystem(lap, []int{1, 0}, 1)
	require.ErrorIs(t, err, randomwalker.ErrDimensionMismatch)
	_, err = randomwalker.BuildSystem(lap, []int{1, 0, 3}, 2)
	require.ErrorIs(t, err, randomwalker.ErrDegenerateLabeling)
}

func TestSolveSystem_Mismatch(t *testing.T) {
	lap, err := randomwalker.BuildLaplacian(3, [][2]int{{0, 1}, {1, 2}}, []float64{1, 1})
	require.NoError(t, err)
	sys, err := randomwalker.BuildSystem(lap, []int{1, 0, 2}, 2)
	require.NoError(t, err)
	sys.B = sys.B[:1]
	_, err = randomwalker.SolveSystem(context.Background(), sys)
	require.ErrorIs(t, err, randomwalker.ErrDimensionMismatch)

	_, err = randomwalker.SolveSystem(context.Background(), sys, randomwalker.WithMode(randomwalker.Mode(-1)))
	require.ErrorIs(t, err, randomwalker.ErrUnsupportedMode)
}

func TestAssemble_TieGoesToLowestClass(t *testing.T) {
	sys := &randomwalker.System{
		Unlabeled: []int{1},
		Seeded:    []int{0, 2},
		Classes:   2,
		B:         [][]float64{{0}, {0}},
	}
	sol := &randomwalker.Solution{X: [][]float64{{0.5}, {0.5}}}
	probs, hard, err := randomwalker.Assemble(sys, sol, []int{1, 0, 2}, false)
	require.NoError(t, err)
	require.Nil(t, probs)
	require.Equal(t, []int{1, 1, 2}, hard)

	_, _, err = randomwalker.Assemble(sys, sol, []int{1, 0}, false)
	require.ErrorIs(t, err, randomwalker.ErrDimensionMismatch)
}
