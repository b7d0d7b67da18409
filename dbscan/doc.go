// SPDX-License-Identifier: MIT

// Package dbscan implements density-based clustering (DBSCAN) over a
// precomputed distance matrix.
//
// Roles:
//   - core point:   its ε-neighborhood {j : D[i][j] ≤ ε}, itself included,
//     holds at least MinSamples points;
//   - border point: not core, but inside the neighborhood of a core point;
//     it joins the first cluster that reaches it;
//   - noise:        reachable from no core point, labeled Noise (-1).
//
// Determinism:
//
//	Points are scanned in row order and every new cluster takes the next
//	unused label, so numbering follows the first core point of each
//	cluster. Expansion uses an explicit FIFO frontier writing into a
//	pre-sized label slice; no point is enqueued twice.
//
// Choosing ε:
//
//	The pipeline derives ε as the median of D (see distance.Median). That
//	radius adapts to the data scale but moves with the number of cohorts;
//	treat it as a heuristic, not a tuned parameter.
//
// Complexity: O(n²) time and O(n²) worst-case memory for the neighbor lists.
package dbscan
