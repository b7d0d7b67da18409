// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"

	"github.com/katalvlaran/lvcohort/matrix"
)

const opValidate = "distance.Validate"

// Validate checks that D is a distance matrix: square, finite, zero diagonal,
// symmetric and non-negative, using tol for the diagonal and symmetry checks.
// Matrices built by Euclidean always pass with tol = 0.
//
// Errors are the matrix sentinels (ErrNonSquare, ErrNaNInf, ErrNonZeroDiagonal,
// ErrAsymmetry, ErrNegativeEntry), wrapped.
//
// Complexity: O(n²).
func Validate(D matrix.Matrix, tol float64) error {
	checks := []func() error{
		func() error { return matrix.ValidateSquareNonNil(D) },
		func() error { return matrix.ValidateFinite(D) },
		func() error { return matrix.ValidateZeroDiagonal(D, tol) },
		func() error { return matrix.ValidateSymmetric(D, tol) },
		func() error { return matrix.ValidateNonNegative(D) },
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return fmt.Errorf("%s: %w", opValidate, err)
		}
	}

	return nil
}
