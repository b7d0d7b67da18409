// SPDX-License-Identifier: MIT

package evaluate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvcohort/matrix"
	"github.com/katalvlaran/lvcohort/partition"
)

const (
	opSilhouette       = "evaluate.Silhouette"
	opDaviesBouldin    = "evaluate.DaviesBouldin"
	opCalinskiHarabasz = "evaluate.CalinskiHarabasz"

	// zeroAtol is the absolute tolerance under which all scatters or all
	// centroid separations count as zero.
	zeroAtol = 1e-8
)

// groupLabels returns the row indices of every non-noise cluster,
// clusters ordered by first appearance.
func groupLabels(labels []int) [][]int {
	slot := make(map[int]int)
	var out [][]int
	for i, l := range labels {
		if l == partition.Noise {
			continue
		}
		s, ok := slot[l]
		if !ok {
			s = len(out)
			slot[l] = s
			out = append(out, nil)
		}
		out[s] = append(out[s], i)
	}

	return out
}

func countPoints(clusters [][]int) int {
	m := 0
	for _, c := range clusters {
		m += len(c)
	}

	return m
}

// Silhouette returns the mean silhouette coefficient of the non-noise points.
//
// For a point i in cluster C with |C| > 1:
//
//	a(i) = mean D[i][j] over j in C, j != i
//	b(i) = min over other clusters C' of mean D[i][j], j in C'
//	s(i) = (b - a) / max(a, b), or 0 when both are 0
//
// Points in singleton clusters score 0. The result is Undefined when fewer
// than two clusters have at least two members.
//
// Errors: matrix sentinels for a malformed D, ErrLabelLength.
//
// Complexity: O(n²).
func Silhouette(D matrix.Matrix, labels []int) (Score, error) {
	if err := matrix.ValidateSquareNonNil(D); err != nil {
		return Undefined, fmt.Errorf("%s: %w", opSilhouette, err)
	}
	if err := matrix.ValidateFinite(D); err != nil {
		return Undefined, fmt.Errorf("%s: %w", opSilhouette, err)
	}
	if len(labels) != D.Rows() {
		return Undefined, fmt.Errorf("%s: %d labels for %d rows: %w", opSilhouette, len(labels), D.Rows(), ErrLabelLength)
	}

	clusters := groupLabels(labels)
	populated := 0
	for _, c := range clusters {
		if len(c) > 1 {
			populated++
		}
	}
	if populated < 2 {
		return Undefined, nil
	}
	rows, err := matrix.ToRows(D)
	if err != nil {
		return Undefined, fmt.Errorf("%s: %w", opSilhouette, err)
	}

	var total float64
	for ci, own := range clusters {
		if len(own) == 1 {
			continue
		}
		for _, i := range own {
			var a float64
			for _, j := range own {
				a += rows[i][j]
			}
			a /= float64(len(own) - 1)

			b := math.Inf(1)
			for cj, other := range clusters {
				if cj == ci {
					continue
				}
				var sum float64
				for _, j := range other {
					sum += rows[i][j]
				}
				b = math.Min(b, sum/float64(len(other)))
			}

			if den := math.Max(a, b); den > 0 {
				total += (b - a) / den
			}
		}
	}

	return Defined(total / float64(countPoints(clusters))), nil
}

// featureClusters validates X against labels and returns the non-noise
// feature rows, the clusters indexed into those rows and whether
// 2 <= clusters < points holds.
func featureClusters(op string, X matrix.Matrix, labels []int) ([][]float64, [][]int, bool, error) {
	if err := matrix.ValidateFinite(X); err != nil {
		return nil, nil, false, fmt.Errorf("%s: %w", op, err)
	}
	if len(labels) != X.Rows() {
		return nil, nil, false, fmt.Errorf("%s: %d labels for %d rows: %w", op, len(labels), X.Rows(), ErrLabelLength)
	}
	clusters := groupLabels(labels)
	if k := len(clusters); k < 2 || k >= countPoints(clusters) {
		return nil, clusters, false, nil
	}

	// Compact to the non-noise rows; at[i] is row i's position in the subset.
	kept := make([]int, 0, len(labels))
	at := make([]int, len(labels))
	for i, l := range labels {
		if l != partition.Noise {
			at[i] = len(kept)
			kept = append(kept, i)
		}
	}
	sub, err := matrix.SelectRows(X, kept)
	if err != nil {
		return nil, nil, false, fmt.Errorf("%s: %w", op, err)
	}
	rows, err := matrix.ToRows(sub)
	if err != nil {
		return nil, nil, false, fmt.Errorf("%s: %w", op, err)
	}
	for _, members := range clusters {
		for j, i := range members {
			members[j] = at[i]
		}
	}

	return rows, clusters, true, nil
}

// centroid returns the mean of the given rows.
func centroid(rows [][]float64, members []int) []float64 {
	c := make([]float64, len(rows[members[0]]))
	for _, i := range members {
		floats.Add(c, rows[i])
	}
	floats.Scale(1/float64(len(members)), c)

	return c
}

// DaviesBouldin returns the Davies–Bouldin index of the non-noise points.
//
//	S_k    = mean Euclidean distance of cluster k's members to its centroid
//	M_ij   = Euclidean distance between centroids i and j
//	DB     = mean over i of max over j != i of (S_i + S_j) / M_ij
//
// A pair with M_ij = 0 contributes 0; when every S_k or every M_ij is
// (numerically) zero the index is 0.
// Undefined unless 2 <= clusters < points.
//
// Complexity: O(n·d + k²·d).
func DaviesBouldin(X matrix.Matrix, labels []int) (Score, error) {
	rows, clusters, ok, err := featureClusters(opDaviesBouldin, X, labels)
	if err != nil || !ok {
		return Undefined, err
	}
	k := len(clusters)

	centroids := make([][]float64, k)
	scatter := make([]float64, k)
	for c, members := range clusters {
		centroids[c] = centroid(rows, members)
		for _, i := range members {
			scatter[c] += floats.Distance(rows[i], centroids[c], 2)
		}
		scatter[c] /= float64(len(members))
	}

	sep := make([][]float64, k)
	allScatterZero, allSepZero := true, true
	for c := range centroids {
		sep[c] = make([]float64, k)
		if math.Abs(scatter[c]) > zeroAtol {
			allScatterZero = false
		}
	}
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			d := floats.Distance(centroids[i], centroids[j], 2)
			sep[i][j], sep[j][i] = d, d
			if d > zeroAtol {
				allSepZero = false
			}
		}
	}
	if allScatterZero || allSepZero {
		return Defined(0), nil
	}

	var total float64
	for i := 0; i < k; i++ {
		var worst float64
		for j := 0; j < k; j++ {
			if i == j || sep[i][j] == 0 {
				continue
			}
			worst = math.Max(worst, (scatter[i]+scatter[j])/sep[i][j])
		}
		total += worst
	}

	return Defined(total / float64(k)), nil
}

// CalinskiHarabasz returns the variance-ratio criterion of the non-noise points.
//
//	B  = sum over clusters of n_k · ||c_k - c||²
//	W  = sum over points of ||x - c_k||²
//	CH = (B / (k - 1)) / (W / (m - k))
//
// CH is 1 when W = 0. Undefined unless 2 <= clusters < points.
//
// Complexity: O(n·d).
func CalinskiHarabasz(X matrix.Matrix, labels []int) (Score, error) {
	rows, clusters, ok, err := featureClusters(opCalinskiHarabasz, X, labels)
	if err != nil || !ok {
		return Undefined, err
	}
	k := len(clusters)
	m := countPoints(clusters)

	all := make([]int, 0, m)
	for _, members := range clusters {
		all = append(all, members...)
	}
	mean := centroid(rows, all)

	var between, within float64
	for _, members := range clusters {
		c := centroid(rows, members)
		d := floats.Distance(c, mean, 2)
		between += float64(len(members)) * d * d
		for _, i := range members {
			d = floats.Distance(rows[i], c, 2)
			within += d * d
		}
	}
	if within == 0 {
		return Defined(1), nil
	}

	return Defined(between * float64(m-k) / (within * float64(k-1))), nil
}
