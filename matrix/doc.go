// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric storage shared by the cohort
// clustering stages, together with the validators and feature transforms
// those stages rely on.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked accessors and a
//     finite-only numeric policy.
//   - Validators for the distance-matrix contract (square, symmetric,
//     zero diagonal, non-negative, finite).
//   - Standardize and Scaler: per-column z-scoring with the fitted
//     parameters returned as an explicit value.
//
// Feature matrices are small (one row per cohort, five columns), so every
// kernel favours determinism and clear error reporting over raw speed.
package matrix
