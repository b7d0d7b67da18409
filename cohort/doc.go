// SPDX-License-Identifier: MIT

// Package cohort groups raw observations into cohorts and summarizes each
// cohort as a fixed-size feature vector.
//
// A cohort is the set of observations sharing the exact same values for a
// list of categorical key attributes (for stoppage logs: line, stoppage
// reason and shift). Every cohort becomes one row of the feature table:
//
//	count, mean, std, max, min
//
// computed over a single numeric measure (for example the bottleneck
// duration in seconds). The standard deviation is the sample one (n-1),
// so cohorts with fewer than two observations carry no defined spread and
// are dropped rather than zero-filled.
//
// Row order is the first-seen order of each key tuple in the input, which
// makes the table (and everything aligned to it downstream) reproducible
// for a given input order.
//
// Usage:
//
//	tbl, err := cohort.Aggregate(obs, []string{"Line", "Stoppage Reason", "Shift Id"},
//		"Bottleneck Duration Seconds", cohort.WithActiveOnly())
//	if errors.Is(err, cohort.ErrEmptyResult) {
//		// nothing to cluster
//	}
//	X, _ := tbl.Matrix() // n×5 *matrix.Dense in FeatureNames order
package cohort
