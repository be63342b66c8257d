// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rwseg/matrix"
)

func TestNewCSR_Validation(t *testing.T) {
	m, err := matrix.NewCSR(2, 2, []int{0, 1, 2}, []int{1, 0}, []float64{3, 4})
	require.NoError(t, err)
	require.Equal(t, 3.0, MustAt(t, m, 0, 1))
	require.Equal(t, 0.0, MustAt(t, m, 0, 0))

	_, err = matrix.NewCSR(2, 2, []int{0, 1}, []int{0}, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.NewCSR(1, 2, []int{0, 2}, []int{1, 0}, []float64{1, 1})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.NewCSR(1, 2, []int{0, 1}, []int{2}, []float64{1})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.NewCSR(-1, 2, nil, nil, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestCSR_Accessors(t *testing.T) {
	m := MustCSR(t, [][]float64{
		{4, -1, 0},
		{-1, 4, -2},
		{0, -2, 5},
	})
	r, c := m.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 3, c)
	require.Equal(t, 7, m.NNZ())
	require.Equal(t, []float64{4, 4, 5}, m.Diagonal())
	require.Equal(t, []float64{3, 1, 3}, m.RowSums())
	require.Equal(t, []float64{3, 1, 3}, m.ColSums())
	require.Equal(t, "[4, -1, 0]\n[-1, 4, -2]\n[0, -2, 5]\n", m.String())

	_, err := m.At(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, _, err = m.Row(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	cl := m.Clone()
	sc, err := matrix.Scale(cl, 2)
	require.NoError(t, err)
	require.Equal(t, 8.0, MustAt(t, sc, 0, 0))
	require.Equal(t, 4.0, MustAt(t, m, 0, 0), "Scale must not alias its input")
}

func TestCSR_Induced(t *testing.T) {
	m := MustCSR(t, [][]float64{
		{1, 2, 0, 3},
		{0, 4, 5, 0},
		{6, 0, 7, 8},
	})
	sub, err := m.Induced([]int{2, 0}, []int{3, 0})
	require.NoError(t, err)
	require.Equal(t, "[8, 6]\n[3, 1]\n", sub.String())

	// non-monotone column order must still produce sorted rows
	cols, _, err := sub.Row(0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, cols)

	empty, err := m.Induced(nil, []int{1})
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())
	require.Equal(t, 1, empty.Cols())

	_, err = m.Induced([]int{0}, []int{1, 1})
	require.ErrorIs(t, err, matrix.ErrDuplicateIndex)
	_, err = m.Induced([]int{5}, []int{1})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Induced([]int{0}, []int{4})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
