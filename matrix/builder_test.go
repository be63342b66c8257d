// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rwseg/matrix"
)

func TestTriplets_SumsDuplicatesAndSorts(t *testing.T) {
	tr, err := matrix.NewTriplets(2, 3, 0)
	require.NoError(t, err)
	require.NoError(t, tr.Add(0, 2, 1))
	require.NoError(t, tr.Add(0, 0, 5))
	require.NoError(t, tr.Add(0, 2, 2.5))
	require.NoError(t, tr.Add(1, 1, -1))
	require.Equal(t, 4, tr.Len())

	m := tr.ToCSR()
	require.Equal(t, 3, m.NNZ())
	cols, vals, err := m.Row(0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, cols)
	require.Equal(t, []float64{5, 3.5}, vals)

	// the accumulator is reusable
	again := tr.ToCSR()
	require.Equal(t, m.String(), again.String())
}

func TestTriplets_DropPolicy(t *testing.T) {
	tr, err := matrix.NewTriplets(1, 2, 4)
	require.NoError(t, err)
	require.NoError(t, tr.Add(0, 0, 1))
	require.NoError(t, tr.Add(0, 0, -1))
	require.NoError(t, tr.Add(0, 1, 1e-9))
	require.Equal(t, 1, tr.ToCSR().NNZ())

	eps, err := matrix.NewTriplets(1, 2, 4, matrix.WithEpsilon(1e-6))
	require.NoError(t, err)
	require.NoError(t, eps.Add(0, 1, 1e-9))
	require.Equal(t, 0, eps.ToCSR().NNZ())

	keep, err := matrix.NewTriplets(1, 2, 4, matrix.WithKeepZeros())
	require.NoError(t, err)
	require.NoError(t, keep.Add(0, 0, 1))
	require.NoError(t, keep.Add(0, 0, -1))
	require.Equal(t, 1, keep.ToCSR().NNZ())
}

func TestTriplets_Errors(t *testing.T) {
	_, err := matrix.NewTriplets(-1, 2, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	tr, err := matrix.NewTriplets(2, 2, 0)
	require.NoError(t, err)
	require.ErrorIs(t, tr.Add(2, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, tr.Add(0, -1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, tr.Add(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, tr.Add(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	lax, err := matrix.NewTriplets(1, 1, 0, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, lax.Add(0, 0, math.Inf(1)))
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { matrix.WithEpsilon(-1) })
	require.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })
}
