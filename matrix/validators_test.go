// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcohort/matrix"
)

func TestValidateNotNil(t *testing.T) {
	var d *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(d), matrix.ErrNilMatrix) // typed nil
	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
}

func TestValidateSquareAndSymmetric(t *testing.T) {
	rect := MustDense(t, 2, 3)
	require.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSymmetric(rect, 0), matrix.ErrNonSquare)

	sym := NewFilledDense(t, 3, 3, []float64{
		0, 1, 2,
		1, 0, 3,
		2, 3, 0,
	})
	require.NoError(t, matrix.ValidateSymmetric(sym, 0))
	require.NoError(t, matrix.ValidateSymmetric(hide{sym}, 0))

	MustSet(t, sym, 0, 2, 2.5)
	require.ErrorIs(t, matrix.ValidateSymmetric(sym, 0.1), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(sym, 0.5))
	require.NoError(t, matrix.ValidateSymmetric(sym, -0.5)) // negative tol is abs-ed
	require.ErrorIs(t, matrix.ValidateSymmetric(sym, math.NaN()), matrix.ErrNaNInf)
}

func TestValidateZeroDiagonal(t *testing.T) {
	d := NewFilledDense(t, 2, 2, []float64{0, 1, 1, 1e-12})
	assert.NoError(t, matrix.ValidateZeroDiagonal(d, matrix.DefaultEpsilon))
	assert.ErrorIs(t, matrix.ValidateZeroDiagonal(d, 0), matrix.ErrNonZeroDiagonal)
}

func TestValidateFiniteAndNonNegative(t *testing.T) {
	d := NewFilledDense(t, 2, 2, []float64{0, 1, 1, 0})
	assert.NoError(t, matrix.ValidateFinite(d))
	assert.NoError(t, matrix.ValidateFinite(hide{d}))
	assert.NoError(t, matrix.ValidateNonNegative(d))

	MustSet(t, d, 1, 0, -0.5)
	assert.ErrorIs(t, matrix.ValidateNonNegative(d), matrix.ErrNegativeEntry)
}

func TestValidateVecLen(t *testing.T) {
	assert.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
	assert.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	assert.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
}
