// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Standardize is the entry point of the feature stage; keep the returned Scaler for reports.

package matrix

// ---------- Constructors & Utilities ----------

// SelectRows copies the rows idx of m, in that order, into a new *Dense.
// An empty idx yields a legal 0×Cols() matrix.
// Errors: ErrNilMatrix; ErrOutOfRange (wrapped) for an index outside m.
// Complexity: O(len(idx)*c).
func SelectRows(m Matrix, idx []int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("SelectRows", err)
	}
	cols := make([]int, m.Cols())
	for j := range cols {
		cols[j] = j
	}
	d, ok := m.(*Dense)
	if !ok {
		var err error
		if d, err = denseCopy(m); err != nil {
			return nil, matrixErrorf("SelectRows", err)
		}
	}

	return d.Induced(idx, cols)
}

// ToRows copies m into a fresh [][]float64 (row-major, independent of m).
// Errors: ErrNilMatrix; wrapped At errors for non-Dense inputs.
// Complexity: O(r*c).
func ToRows(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToRows", err)
	}
	r, c := m.Rows(), m.Cols()
	out := make([][]float64, r)
	if d, ok := m.(*Dense); ok {
		for i := 0; i < r; i++ {
			out[i] = append([]float64(nil), d.data[i*c:(i+1)*c]...)
		}

		return out, nil
	}

	var err error
	for i := 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, matrixErrorf("ToRows", err)
			}
		}
	}

	return out, nil
}

// AllClose reports whether a and b are element-wise equal within tolerances:
// |a-b| ≤ atol + rtol*|b|.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (bad tolerances).
// Complexity: O(r*c).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) { return ewAllClose(a, b, rtol, atol) }

// ---------- Statistics ----------

// CenterColumns subtracts per-column means; returns the centered copy and the means.
// Complexity: O(r*c).
func CenterColumns(X Matrix) (*Dense, []float64, error) { return centerColumns(X) }

// FitScaler estimates per-column means and sample standard deviations (n-1).
// Constant columns get scale 1. Requires at least two rows (ErrInsufficientData).
// Complexity: O(r*c).
func FitScaler(X Matrix) (*Scaler, error) { return fitScaler(X) }

// Standardize z-scores every column of X and returns the fitted Scaler alongside.
// Invariant: every non-constant output column has mean ≈ 0 and sample std ≈ 1;
// constant columns are exactly 0.
// Errors: ErrNilMatrix, ErrNaNInf, ErrInsufficientData (fewer than 2 rows).
// Complexity: O(r*c).
func Standardize(X Matrix) (*Dense, *Scaler, error) { return standardize(X) }
