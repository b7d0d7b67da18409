// SPDX-License-Identifier: MIT

// Package linkage implements complete-linkage agglomerative clustering over a
// precomputed distance matrix.
//
// 🚀 What is complete linkage?
//
//	Start from n singleton clusters and repeatedly merge the two clusters
//	whose *farthest* members are closest. Using the maximum pairwise
//	distance (not the mean, not the minimum) favours compact clusters and
//	keeps a single outlier from chaining groups together.
//
// ✨ Key features:
//   - full merge tree (Dendrogram) with monotonically minted node ids
//   - deterministic tie-breaking: the lower (min id, max id) pair wins
//   - Cut(k) extracts exactly min(k, n) flat clusters
//   - SciPy-compatible linkage rows and leaf order for rendering
//
// ⚙️ Usage:
//
//	tree, err := linkage.Complete(D)
//	labels, err := tree.Cut(4)
//
//	// or in one call
//	labels, err := linkage.Cluster(D, 4)
//
// Performance:
//
//   - Time:   O(n³) (n-1 merges, each scanning the active pairs)
//   - Memory: O(n²) working copy of D
package linkage
