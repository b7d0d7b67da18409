// SPDX-License-Identifier: MIT

package dbscan

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvcohort/matrix"
)

const opCluster = "dbscan.Cluster"

// Cluster runs DBSCAN on the distance matrix D.
//
// Steps:
//  1. Validate options and D (non-nil, square, finite, symmetric).
//  2. Build every ε-neighborhood in one pass over D and flag core points.
//  3. Scan rows in order; each unlabeled core point seeds a new cluster that is
//     grown breadth-first. Only core points expand; border points are labeled
//     and left in place.
//
// Errors:
//   - ErrInvalidMinSamples, ErrInvalidEps.
//   - matrix sentinels for a malformed D.
//
// Complexity: O(n²).
func Cluster(D matrix.Matrix, opts Options) (*Result, error) {
	if opts.MinSamples < 1 {
		return nil, fmt.Errorf("%s(min_samples=%d): %w", opCluster, opts.MinSamples, ErrInvalidMinSamples)
	}
	if opts.Eps < 0 || math.IsNaN(opts.Eps) || math.IsInf(opts.Eps, 0) {
		return nil, fmt.Errorf("%s(eps=%g): %w", opCluster, opts.Eps, ErrInvalidEps)
	}
	if err := matrix.ValidateFinite(D); err != nil {
		return nil, fmt.Errorf("%s: %w", opCluster, err)
	}
	if err := matrix.ValidateSymmetric(D, matrix.DefaultEpsilon); err != nil {
		return nil, fmt.Errorf("%s: %w", opCluster, err)
	}

	neighbors, err := neighborhoods(D, opts.Eps)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCluster, err)
	}
	n := len(neighbors)

	res := &Result{
		Labels: make([]int, n),
		Core:   make([]bool, n),
		Eps:    opts.Eps,
	}
	for i := range neighbors {
		res.Labels[i] = Noise
		res.Core[i] = len(neighbors[i]) >= opts.MinSamples
	}

	frontier := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if res.Labels[i] != Noise || !res.Core[i] {
			continue
		}
		label := res.Clusters
		res.Clusters++

		res.Labels[i] = label
		frontier = append(frontier[:0], i)
		for head := 0; head < len(frontier); head++ {
			p := frontier[head]
			if !res.Core[p] {
				continue // border point: labeled, not expanded
			}
			for _, q := range neighbors[p] {
				if res.Labels[q] == Noise {
					res.Labels[q] = label
					frontier = append(frontier, q)
				}
			}
		}
	}

	for _, l := range res.Labels {
		if l == Noise {
			res.Noise++
		}
	}

	return res, nil
}

// neighborhoods returns, for each row i, the ascending indices j with D[i][j] ≤ eps.
func neighborhoods(D matrix.Matrix, eps float64) ([][]int, error) {
	rows, err := matrix.ToRows(D)
	if err != nil {
		return nil, err
	}
	out := make([][]int, len(rows))
	for i, row := range rows {
		for j, d := range row {
			if d <= eps {
				out[i] = append(out[i], j)
			}
		}
	}

	return out, nil
}
