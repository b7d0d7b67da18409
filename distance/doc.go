// SPDX-License-Identifier: MIT

// Package distance builds the pairwise Euclidean distance matrix between
// standardized cohort feature vectors and offers the helpers the clustering
// stages need on top of it.
//
// What it provides:
//   - Euclidean: n×n matrix D with D[i][i] = 0 exactly and D symmetric by
//     construction (each upper-triangle cell is computed once and mirrored).
//   - Median: the midpoint median of D, with or without the diagonal zeros.
//     This is how the density clusterer derives its neighborhood radius.
//   - Validate: checks the distance-matrix contract (square, symmetric,
//     zero diagonal, non-negative, finite) for externally supplied matrices.
//
// Concurrency:
//
//	Rows are dealt round-robin to a bounded errgroup. A cell is written by
//	exactly one goroutine and summed in a fixed order, so the output is
//	bit-identical for every worker count.
//
// Complexity:
//
//	Euclidean: O(n²·d) time, O(n²) memory. Median: O(n² log n).
package distance
