// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for the numeric policy shared by Dense and validators.
//   - Keep tolerances as named constants instead of inline magic numbers.

package matrix

const (
	// DefaultValidateNaNInf toggles strict finite-value validation in Set.
	// Distances, standardized features and cluster metrics are meaningless
	// on NaN/Inf input, so the policy is on by default.
	DefaultValidateNaNInf = true

	// DefaultEpsilon is the tolerance used by symmetry and zero-diagonal checks
	// when the caller has no better estimate of accumulated rounding error.
	DefaultEpsilon = 1e-9
)
