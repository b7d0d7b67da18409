// SPDX-License-Identifier: MIT

package linkage

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvcohort/matrix"
)

const (
	opComplete = "linkage.Complete"
	opCut      = "linkage.Cut"
)

// Complete builds the complete-linkage dendrogram of the distance matrix D.
//
// Steps:
//  1. Validate: D non-nil, square, finite, symmetric within matrix.DefaultEpsilon.
//  2. Copy D into a working matrix; slot i starts as leaf i.
//  3. Repeat n-1 times: scan active slot pairs for the minimum distance.
//     Ties go to the lower (min id, max id) pair of node ids.
//  4. Record the merge, mint id n+s into the lower slot, deactivate the other,
//     and apply the Lance–Williams max update: d(new, k) = max(d(a, k), d(b, k)).
//
// Complexity: O(n³) time, O(n²) memory.
func Complete(D matrix.Matrix) (*Dendrogram, error) {
	if err := matrix.ValidateFinite(D); err != nil {
		return nil, fmt.Errorf("%s: %w", opComplete, err)
	}
	if err := matrix.ValidateSymmetric(D, matrix.DefaultEpsilon); err != nil {
		return nil, fmt.Errorf("%s: %w", opComplete, err)
	}
	rows, err := matrix.ToRows(D)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opComplete, err)
	}
	n := len(rows)

	ids := make([]int, n)   // node id held by each slot
	sizes := make([]int, n) // leaves under each slot
	active := make([]bool, n)
	for i := 0; i < n; i++ {
		ids[i], sizes[i], active[i] = i, 1, true
	}

	tree := &Dendrogram{N: n, Merges: make([]Merge, 0, max(n-1, 0))}
	for s := 0; s < n-1; s++ {
		a, b := -1, -1
		best := math.Inf(1)
		var bestLo, bestHi int
		for i := 0; i < n; i++ {
			if !active[i] {
				continue
			}
			for j := i + 1; j < n; j++ {
				if !active[j] {
					continue
				}
				d := rows[i][j]
				lo, hi := minmax(ids[i], ids[j])
				if a < 0 || d < best || (d == best && (lo < bestLo || (lo == bestLo && hi < bestHi))) {
					a, b, best, bestLo, bestHi = i, j, d, lo, hi
				}
			}
		}

		tree.Merges = append(tree.Merges, Merge{
			Left:     bestLo,
			Right:    bestHi,
			Distance: best,
			Size:     sizes[a] + sizes[b],
		})

		// Lance–Williams update for complete linkage, stored in slot a (a < b).
		for k := 0; k < n; k++ {
			if !active[k] || k == a || k == b {
				continue
			}
			d := math.Max(rows[a][k], rows[b][k])
			rows[a][k], rows[k][a] = d, d
		}
		ids[a] = n + s
		sizes[a] += sizes[b]
		active[b] = false
	}

	return tree, nil
}

// Cut returns flat labels for exactly min(k, N) clusters.
//
// The first N-k merges are replayed on a union–find; labels are minted in
// first-seen leaf order, so they lie in [0, min(k, N)) and leaf 0 is always 0.
// For k >= N every leaf is its own cluster and label[i] = i.
//
// Errors:
//   - ErrInvalidClusterCount when k < 1.
//   - ErrInvalidDendrogram when the merges are malformed or too few.
//
// Complexity: O(N·α(N)).
func (d *Dendrogram) Cut(k int) ([]int, error) {
	if k < 1 {
		return nil, fmt.Errorf("%s(k=%d): %w", opCut, k, ErrInvalidClusterCount)
	}
	if err := d.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opCut, err)
	}
	labels := make([]int, d.N)
	if k >= d.N {
		for i := range labels {
			labels[i] = i
		}

		return labels, nil
	}
	steps := d.N - k
	if steps > len(d.Merges) {
		return nil, fmt.Errorf("%s: need %d merges, have %d: %w", opCut, steps, len(d.Merges), ErrInvalidDendrogram)
	}

	// rep maps every node id to one of its leaves.
	rep := make([]int, d.N+steps)
	for i := 0; i < d.N; i++ {
		rep[i] = i
	}
	sets := newDSU(d.N)
	for s := 0; s < steps; s++ {
		m := d.Merges[s]
		sets.union(rep[m.Left], rep[m.Right])
		rep[d.N+s] = rep[m.Left]
	}

	labelOf := make(map[int]int, k)
	for i := 0; i < d.N; i++ {
		root := sets.find(i)
		l, ok := labelOf[root]
		if !ok {
			l = len(labelOf)
			labelOf[root] = l
		}
		labels[i] = l
	}

	return labels, nil
}

// Cluster is Complete followed by Cut(k).
func Cluster(D matrix.Matrix, k int) ([]int, error) {
	if k < 1 {
		return nil, fmt.Errorf("%s(k=%d): %w", opCut, k, ErrInvalidClusterCount)
	}
	tree, err := Complete(D)
	if err != nil {
		return nil, err
	}

	return tree.Cut(k)
}

func minmax(x, y int) (int, int) {
	if x < y {
		return x, y
	}

	return y, x
}
