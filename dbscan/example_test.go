// SPDX-License-Identifier: MIT

package dbscan_test

import (
	"fmt"

	"github.com/katalvlaran/lvcohort/dbscan"
	"github.com/katalvlaran/lvcohort/distance"
	"github.com/katalvlaran/lvcohort/matrix"
)

// ExampleCluster separates a dense run of points from an outlier.
func ExampleCluster() {
	X, _ := matrix.NewDenseFromRows([][]float64{{0}, {1}, {2}, {3}, {10}})
	D, _ := distance.Euclidean(X)

	res, err := dbscan.Cluster(D, dbscan.Options{Eps: 1, MinSamples: 3})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("labels:", res.Labels)
	fmt.Println("core:", res.Core)
	fmt.Println("clusters:", res.Clusters, "noise:", res.Noise)

	// Output:
	// labels: [0 0 0 0 -1]
	// core: [false true true false false]
	// clusters: 1 noise: 1
}
