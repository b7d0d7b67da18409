// Package lvcohort groups event records into cohorts and finds structure among
// them: from per-cohort feature vectors to two independent clusterings and
// their quality scores.
//
// 🚀 What is lvcohort?
//
//	A deterministic batch pipeline over an already materialized record set:
//		• Cohorts: group records by a composite key, summarize a measure as
//		  count, mean, sample std, max and min
//		• Standardization: z-scores per feature with an explicit fitted Scaler
//		• Distances: pairwise Euclidean matrix, computed in parallel and
//		  bit-identical for any worker count
//		• Hierarchical clustering: complete linkage, full dendrogram, Cut(k)
//		• Density clustering: DBSCAN with noise, radius from the median distance
//		• Evaluation: silhouette, Davies–Bouldin, Calinski–Harabasz, with an
//		  explicit undefined marker instead of NaN or errors
//
// Under the hood, everything is organized under these subpackages:
//
//	cohort/:    Observation, Aggregate, feature Table
//	matrix/:    Matrix, Dense, validators, Standardize & Scaler
//	distance/:  Euclidean, Median, Validate
//	linkage/:   Complete, Dendrogram, Cut
//	dbscan/:    Cluster, Result
//	partition/: Algorithm variants: Hierarchical, Density
//	evaluate/:  Silhouette, DaviesBouldin, CalinskiHarabasz, Compare
//	pipeline/:  end-to-end Run with logging and metrics
//
// Quick example:
//
//	rep, err := pipeline.New(pipeline.DefaultConfig()).Run(ctx, observations)
//	ahc := rep.Assignment(partition.NameHierarchical)
//	rec, _ := rep.Metrics.Get(partition.NameDensity)
//
// The lvcohort binary (cmd/lvcohort) wraps the pipeline with CSV input,
// YAML configuration and JSON/YAML/CSV artifacts.
//
//	go install github.com/katalvlaran/lvcohort/cmd/lvcohort@latest
package lvcohort
