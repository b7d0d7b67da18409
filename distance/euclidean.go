// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvcohort/matrix"
)

const opEuclidean = "distance.Euclidean"

// Euclidean returns the n×n matrix of pairwise L2 distances between the rows of X.
//
// Implementation:
//   - Stage 1: validate X (non-nil, finite) and copy its rows once.
//   - Stage 2: deal rows round-robin to min(workers, n) goroutines; the owner of
//     row i computes D[i][j] for j > i with floats.Distance and mirrors it to D[j][i].
//   - Stage 3: the diagonal is left at the zero written by the constructor.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNaNInf (input or overflowing distance).
//
// Determinism:
//   - Each cell has a single writer and a fixed summation order, so the result
//     does not depend on the worker count or scheduling.
//
// Complexity:
//   - Time O(n²·d), Space O(n²).
func Euclidean(X matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	if err := matrix.ValidateFinite(X); err != nil {
		return nil, fmt.Errorf("%s: %w", opEuclidean, err)
	}
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	rows, err := matrix.ToRows(X)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opEuclidean, err)
	}
	n := len(rows)
	D, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opEuclidean, err)
	}

	workers := cfg.workers
	if workers > n {
		workers = n
	}

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			var d float64
			for i := w; i < n; i += workers {
				for j := i + 1; j < n; j++ {
					d = floats.Distance(rows[i], rows[j], 2)
					if err := D.Set(i, j, d); err != nil {
						return err
					}
					if err := D.Set(j, i, d); err != nil {
						return err
					}
				}
			}

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", opEuclidean, err)
	}

	return D, nil
}
