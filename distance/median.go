// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvcohort/matrix"
)

const opMedian = "distance.Median"

// Median returns the midpoint median of the entries of the square matrix D.
//
// With includeDiagonal every one of the n² entries takes part, zeros on the
// diagonal included. Otherwise only the n(n-1) off-diagonal entries do.
// For an even count the result is the mean of the two middle values.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//   - ErrNoPairs when no entry qualifies (n = 1 without the diagonal).
//
// Complexity: O(n² log n) time, O(n²) space.
func Median(D matrix.Matrix, includeDiagonal bool) (float64, error) {
	if err := matrix.ValidateSquareNonNil(D); err != nil {
		return 0, fmt.Errorf("%s: %w", opMedian, err)
	}
	n := D.Rows()
	size := n * n
	if !includeDiagonal {
		size -= n
	}
	if size == 0 {
		return 0, fmt.Errorf("%s: n=%d: %w", opMedian, n, ErrNoPairs)
	}

	vals := make([]float64, 0, size)
	var v float64
	var err error
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j && !includeDiagonal {
				continue
			}
			if v, err = D.At(i, j); err != nil {
				return 0, fmt.Errorf("%s: %w", opMedian, err)
			}
			vals = append(vals, v)
		}
	}
	sort.Float64s(vals)

	mid := len(vals) / 2
	if len(vals)%2 == 1 {
		return vals[mid], nil
	}

	return (vals[mid-1] + vals[mid]) / 2, nil
}
