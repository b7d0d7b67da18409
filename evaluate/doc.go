// SPDX-License-Identifier: MIT

// Package evaluate scores flat clusterings with three internal quality indices.
//
// Indices:
//   - Silhouette:        from the distance matrix; higher is better, in [-1, 1];
//   - Davies–Bouldin:    from feature space; lower is better, >= 0;
//   - Calinski–Harabasz: from feature space; higher is better, >= 0.
//
// Noise points (label -1) are removed before any index is computed.
// An index that cannot be computed for the partition (too few clusters, or
// as many clusters as points) is reported as Undefined. Undefined is a
// value, never an error; errors are reserved for malformed inputs.
//
// Compare runs several partition.Algorithm variants over one distance
// matrix and collects one Record per algorithm into a Table.
package evaluate
