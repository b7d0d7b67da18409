// SPDX-License-Identifier: MIT

// Package pipeline runs the full cohort clustering pass:
//
//	observations → cohort.Aggregate → matrix.Standardize → distance.Euclidean
//	             → evaluate.Compare{AHC, DBSCAN} → Report
//
// Every stage consumes the complete output of the previous one. The first
// failing stage aborts the run with its wrapped error and no partial Report.
// The context is checked between stages; the stages themselves are not
// interruptible.
//
// Logging goes through a *zap.Logger (silent by default) and run metrics
// through an optional *telemetry.Metrics.
package pipeline
