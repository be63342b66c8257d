// SPDX-License-Identifier: MIT

package amg_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/rwseg/amg"
	"github.com/katalvlaran/rwseg/matrix"
)

// poisson2D returns the 5-point Dirichlet Laplacian on an n×n interior grid.
func poisson2D(t *testing.T, n int) *matrix.CSR {
	t.Helper()
	tr, err := matrix.NewTriplets(n*n, n*n, 5*n*n)
	require.NoError(t, err)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			i := r*n + c
			require.NoError(t, tr.Add(i, i, 4))
			if c > 0 {
				require.NoError(t, tr.Add(i, i-1, -1))
			}
			if c+1 < n {
				require.NoError(t, tr.Add(i, i+1, -1))
			}
			if r > 0 {
				require.NoError(t, tr.Add(i, i-n, -1))
			}
			if r+1 < n {
				require.NoError(t, tr.Add(i, i+n, -1))
			}
		}
	}

	return tr.ToCSR()
}

func residualNorm(t *testing.T, a *matrix.CSR, x, b []float64) float64 {
	t.Helper()
	ax, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	floats.Sub(ax, b)

	return floats.Norm(ax, 2)
}

func TestBuild_Coarsens(t *testing.T) {
	a := poisson2D(t, 20)
	h, err := amg.Build(a)
	require.NoError(t, err)

	levels := h.Levels()
	require.Greater(t, len(levels), 1)
	require.Equal(t, 400, levels[0].Rows)
	for l := 1; l < len(levels); l++ {
		require.Less(t, levels[l].Rows, levels[l-1].Rows, "level %d", l)
	}
	require.GreaterOrEqual(t, h.OperatorComplexity(), 1.0)
	require.Less(t, h.OperatorComplexity(), 4.0)
}

func TestBuild_SmallOperatorIsExact(t *testing.T) {
	a := poisson2D(t, 3) // 9 rows, below the coarse threshold
	h, err := amg.Build(a)
	require.NoError(t, err)
	require.Len(t, h.Levels(), 1)

	b := []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}
	x := make([]float64, 9)
	h.Apply(x, b)
	require.InDelta(t, 0, residualNorm(t, a, x, b), 1e-12)
}

// TestApply_StationaryIteration runs x ← x + M(b − A·x) and requires a strong
// residual reduction, which only a working V-cycle delivers.
func TestApply_StationaryIteration(t *testing.T) {
	a := poisson2D(t, 16)
	h, err := amg.Build(a, amg.WithMaxCoarse(16))
	require.NoError(t, err)
	require.Greater(t, len(h.Levels()), 2)

	n := a.Rows()
	b := make([]float64, n)
	for i := range b {
		b[i] = math.Sin(float64(i))
	}
	x := make([]float64, n)
	r := make([]float64, n)
	e := make([]float64, n)
	r0 := residualNorm(t, a, x, b)
	for it := 0; it < 20; it++ {
		a.MulVecTo(r, x)
		floats.SubTo(r, b, r)
		h.Apply(e, r)
		floats.Add(x, e)
	}
	require.Less(t, residualNorm(t, a, x, b), 1e-2*r0)
}

// TestApply_Symmetric checks uᵀ·M·v = vᵀ·M·u, required of a CG preconditioner.
func TestApply_Symmetric(t *testing.T) {
	a := poisson2D(t, 12)
	h, err := amg.Build(a, amg.WithMaxCoarse(10))
	require.NoError(t, err)

	n := a.Rows()
	u, v := make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		u[i] = math.Cos(float64(3 * i))
		v[i] = float64(i%7) - 3
	}
	mu, mv := make([]float64, n), make([]float64, n)
	h.Apply(mu, u)
	h.Apply(mv, v)
	require.InDelta(t, floats.Dot(u, mv), floats.Dot(v, mu), 1e-8)
	require.Greater(t, floats.Dot(u, mu), 0.0)
}

func TestBuild_PlainAggregation(t *testing.T) {
	a := poisson2D(t, 12)
	h, err := amg.Build(a, amg.WithoutProlongationSmoothing(), amg.WithMaxCoarse(8), amg.WithSweeps(2, 2))
	require.NoError(t, err)
	require.Greater(t, len(h.Levels()), 1)
}

func TestBuild_MaxLevels(t *testing.T) {
	a := poisson2D(t, 12)
	h, err := amg.Build(a, amg.WithMaxLevels(1))
	require.NoError(t, err)
	require.Len(t, h.Levels(), 1)
}

func TestBuild_Errors(t *testing.T) {
	_, err := amg.Build(nil)
	require.ErrorIs(t, err, amg.ErrNilMatrix)

	rect, err := matrix.NewCSR(2, 3, []int{0, 1, 2}, []int{0, 1}, []float64{1, 1})
	require.NoError(t, err)
	_, err = amg.Build(rect)
	require.ErrorIs(t, err, amg.ErrNonSquare)

	empty, err := matrix.NewCSR(0, 0, []int{0}, nil, nil)
	require.NoError(t, err)
	_, err = amg.Build(empty)
	require.ErrorIs(t, err, amg.ErrEmptyMatrix)

	zeroRow, err := matrix.NewCSR(2, 2, []int{0, 1, 1}, []int{0}, []float64{1})
	require.NoError(t, err)
	_, err = amg.Build(zeroRow)
	require.ErrorIs(t, err, amg.ErrNonPositiveDiagonal)
}

func TestApply_PanicsOnLength(t *testing.T) {
	h, err := amg.Build(poisson2D(t, 3))
	require.NoError(t, err)
	require.PanicsWithValue(t, amg.ErrDimensionMismatch, func() {
		h.Apply(make([]float64, 2), make([]float64, 9))
	})
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { amg.WithStrengthTheta(-0.1) })
	require.Panics(t, func() { amg.WithStrengthTheta(1.5) })
	require.Panics(t, func() { amg.WithMaxLevels(0) })
	require.Panics(t, func() { amg.WithMaxCoarse(0) })
	require.Panics(t, func() { amg.WithSweeps(-1, 1) })
}
