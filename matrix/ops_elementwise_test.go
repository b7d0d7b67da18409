// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvcohort/matrix"
)

// --- ewBroadcastSubCols / ewBroadcastAddCols ---------------------------------

func TestEwBroadcastSubCols_FastAndFallback_Match(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 10, 20, 30})
	colMeans := []float64{4, 5, 6}

	gotFast, err := matrix.EwBroadcastSubCols_TestOnly(X, colMeans)
	if err != nil {
		t.Fatalf("fast: %v", err)
	}
	gotSlow, err := matrix.EwBroadcastSubCols_TestOnly(hide{X}, colMeans)
	if err != nil {
		t.Fatalf("slow: %v", err)
	}

	exp := [][]float64{
		{-3, -3, -3},
		{6, 15, 24},
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			a := MustAt(t, gotFast, i, j)
			b := MustAt(t, gotSlow, i, j)
			if a != exp[i][j] || b != exp[i][j] {
				t.Fatalf("subCols[%d,%d]: fast=%v slow=%v want=%v", i, j, a, b, exp[i][j])
			}
		}
	}
}

func TestEwBroadcastAddCols_UndoesSub(t *testing.T) {
	t.Parallel()

	X := RandFilledDense(t, 4, 3, 99)
	shift := []float64{0.5, -2, 7}
	sub, err := matrix.EwBroadcastSubCols_TestOnly(X, shift)
	if err != nil {
		t.Fatalf("sub: %v", err)
	}
	back, err := matrix.EwBroadcastAddCols_TestOnly(sub, shift)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	CompareClose(t, back, X, 0, 1e-15)
}

func TestEwBroadcastSubCols_DimMismatch_Err(t *testing.T) {
	t.Parallel()
	X := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	_, err := matrix.EwBroadcastSubCols_TestOnly(X, []float64{0, 0})
	if !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("want ErrDimensionMismatch, got %v", err)
	}
}

// --- ewScaleCols --------------------------------------------------------------

func TestEwScaleCols_FastAndFallback_Match(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	scale := []float64{10, 0.5}
	fast, err := matrix.EwScaleCols_TestOnly(X, scale)
	if err != nil {
		t.Fatalf("fast: %v", err)
	}
	slow, err := matrix.EwScaleCols_TestOnly(hide{X}, scale)
	if err != nil {
		t.Fatalf("slow: %v", err)
	}
	CompareClose(t, fast, slow, 0, 0)
	if MustAt(t, fast, 1, 0) != 30 || MustAt(t, fast, 1, 1) != 2 {
		t.Fatalf("scaleCols: unexpected %v", fast)
	}
}

func TestEwScaleCols_OverflowRejected(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 1, 1, []float64{math.MaxFloat64})
	_, err := matrix.EwScaleCols_TestOnly(X, []float64{10})
	if !errors.Is(err, matrix.ErrNaNInf) {
		t.Fatalf("want ErrNaNInf, got %v", err)
	}
}

// --- AllClose -----------------------------------------------------------------

func TestAllClose_Tolerances(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 1, 2, []float64{1, 2})
	b := NewFilledDense(t, 1, 2, []float64{1, 2.001})

	ok, err := matrix.AllClose(a, b, 0, 1e-2)
	if err != nil || !ok {
		t.Fatalf("loose: ok=%v err=%v", ok, err)
	}
	ok, err = matrix.AllClose(a, hide{b}, 0, 1e-6)
	if err != nil || ok {
		t.Fatalf("tight: ok=%v err=%v", ok, err)
	}
	_, err = matrix.AllClose(a, MustDense(t, 2, 2), 0, 0)
	if !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("want ErrDimensionMismatch, got %v", err)
	}
}
