// SPDX-License-Identifier: MIT

// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcohort/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // attempt to create with zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // attempt to create with zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4                    // define expected row and column counts
	m, err := matrix.NewDense(rows, cols) // create a Dense matrix of size 3x4
	require.NoError(t, err)               // assert no error on valid dimensions

	require.Equal(t, rows, m.Rows()) // assert Rows() equals expected rows
	require.Equal(t, cols, m.Cols()) // assert Cols() equals expected cols
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)                         // negative row index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.At(0, 2)                           // column index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(2, 0, 1.23)                       // row index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetRejectsNaNInf verifies the finite-only numeric policy.
func TestSetRejectsNaNInf(t *testing.T) {
	m := MustDense(t, 1, 1)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

// TestNewDenseFromRows covers the happy path and each rejection.
func TestNewDenseFromRows(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 2, m.Cols())
	require.Equal(t, 6.0, MustAt(t, m, 2, 1))

	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDenseFromRows([][]float64{{1, math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestRowAndCloneIndependence checks Row/Clone return detached copies.
func TestRowAndCloneIndependence(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)
	row[0] = 99
	require.Equal(t, 3.0, MustAt(t, m, 1, 0)) // base untouched

	c := m.Clone()
	MustSet(t, c, 0, 0, -1)
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

// TestInduced selects rows in the given order and handles empty masks.
func TestInduced(t *testing.T) {
	m := NewFilledDense(t, 3, 2, []float64{1, 2, 3, 4, 5, 6})

	sub, err := m.Induced([]int{2, 0}, []int{0, 1})
	require.NoError(t, err)
	require.Equal(t, 2, sub.Rows())
	require.Equal(t, 5.0, MustAt(t, sub, 0, 0))
	require.Equal(t, 2.0, MustAt(t, sub, 1, 1))

	empty, err := m.Induced(nil, []int{0})
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())

	_, err = m.Induced([]int{3}, []int{0})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSelectRows keeps the requested row order on both the Dense and the fallback path.
func TestSelectRows(t *testing.T) {
	m := NewFilledDense(t, 3, 2, []float64{1, 2, 3, 4, 5, 6})

	for name, src := range map[string]matrix.Matrix{"dense": m, "fallback": hide{m}} {
		sub, err := matrix.SelectRows(src, []int{2, 0})
		require.NoError(t, err, name)
		require.Equal(t, 2, sub.Rows(), name)
		require.Equal(t, 2, sub.Cols(), name)
		require.Equal(t, 5.0, MustAt(t, sub, 0, 0), name)
		require.Equal(t, 2.0, MustAt(t, sub, 1, 1), name)
	}

	empty, err := matrix.SelectRows(m, nil)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())

	_, err = matrix.SelectRows(hide{m}, []int{-1})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.SelectRows(nil, []int{0})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestString renders one bracketed line per row.
func TestString(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 2.5, 3, 4})
	s := m.String()
	require.Equal(t, 2, strings.Count(s, "\n"))
	require.True(t, strings.HasPrefix(s, "[1, 2.5]\n"))
}

// TestToRowsFallback checks ToRows agrees on Dense and wrapped inputs.
func TestToRowsFallback(t *testing.T) {
	m := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	fast, err := matrix.ToRows(m)
	require.NoError(t, err)
	slow, err := matrix.ToRows(hide{m})
	require.NoError(t, err)
	require.Equal(t, fast, slow)
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, fast)
}
