// SPDX-License-Identifier: MIT

// Package partition wraps the clustering algorithms behind one closed
// interface so callers can run and compare them uniformly.
//
// Variants:
//   - Hierarchical: complete linkage cut at K clusters ("AHC");
//   - Density:      DBSCAN with an explicit or median-derived radius ("DBSCAN").
//
// The Algorithm interface is sealed: only this package provides variants,
// so every Assignment carries one of the known algorithm names.
//
// Usage:
//
//	a, err := partition.Hierarchical{K: 4}.Partition(D)
//	b, err := partition.Density{DeriveEps: true, MinSamples: 5, IncludeDiagonal: true}.Partition(D)
//	fmt.Println(a.Sizes(), b.Sizes())
package partition
