// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise and broadcast kernels (ew*) to avoid
//     duplicating tight loops across higher-level ops (standardization, inverse scaling).
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Design:
//   - All ew* are UNEXPORTED (internal micro-kernels).
//   - Public API uses these via thin wrappers (impl_statistics.go, api.go).
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - Dense fast-path operates on a single flat buffer (row-major).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock the flat-slice fast path.
//   - Keep broadcast arrays (means/scales) precomputed and reused across calls (see Scaler).

package matrix

import (
	"math"
)

// ewBroadcastCols computes out[i,j] = f(X[i,j], vec[j]).
// Shared loop for the column broadcasts below.
// Time: O(r*c). Space: O(r*c). Deterministic i→j loops.
func ewBroadcastCols(tag string, X Matrix, vec []float64, f func(x, v float64) float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	r, c := X.Rows(), X.Cols()
	if err := ValidateVecLen(vec, c); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	var i, j, base int
	var nv float64
	// Dense fast-path.
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base = i * c // row base offset
			for j = 0; j < c; j++ {
				nv = f(d.data[base+j], vec[j])
				if math.IsNaN(nv) || math.IsInf(nv, 0) {
					return nil, denseErrorf(tag, i, j, ErrNaNInf)
				}
				out.data[base+j] = nv
			}
		}

		return out, nil
	}

	// Generic fallback.
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			if err = out.Set(i, j, f(v, vec[j])); err != nil {
				return nil, matrixErrorf(tag, err)
			}
		}
	}

	return out, nil
}

// ewBroadcastSubCols computes out[i,j] = X[i,j] - colMeans[j].
// AI-Hint: Use for column-centering and z-scoring.
func ewBroadcastSubCols(X Matrix, colMeans []float64) (*Dense, error) {
	return ewBroadcastCols("broadcastSubCols", X, colMeans, func(x, m float64) float64 { return x - m })
}

// ewBroadcastAddCols computes out[i,j] = X[i,j] + colShift[j].
// AI-Hint: Inverse of ewBroadcastSubCols (de-centering).
func ewBroadcastAddCols(X Matrix, colShift []float64) (*Dense, error) {
	return ewBroadcastCols("broadcastAddCols", X, colShift, func(x, m float64) float64 { return x + m })
}

// ewScaleCols computes out[i,j] = X[i,j] * scale[j].
// AI-Hint: Pair with ewBroadcastSubCols for z-scores (scale = 1/std).
func ewScaleCols(X Matrix, scale []float64) (*Dense, error) {
	return ewBroadcastCols("scaleCols", X, scale, func(x, s float64) float64 { return x * s })
}

// ewAllClose reports whether |a-b| ≤ atol + rtol*|b| holds element-wise.
// Time: O(r*c). Space: O(1).
//
// AI-Hint: numpy.allclose semantics; tolerances are abs-ed.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf) // invalid tolerance
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if math.Abs(da.data[idx]-db.data[idx]) > atol+rtol*math.Abs(db.data[idx]) {
					return false, nil // early-exit on first violation
				}
			}

			return true, nil
		}
	}

	// Generic fallback via At (bounds-safe; still deterministic).
	var av, bv float64
	var err error
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
