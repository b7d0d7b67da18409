// SPDX-License-Identifier: MIT

package evaluate_test

import (
	"fmt"

	"github.com/katalvlaran/lvcohort/distance"
	"github.com/katalvlaran/lvcohort/evaluate"
	"github.com/katalvlaran/lvcohort/matrix"
	"github.com/katalvlaran/lvcohort/partition"
)

// ExampleCompare scores two algorithms on two pairs of points.
// DBSCAN finds a single cluster, so its indices are undefined.
func ExampleCompare() {
	X, _ := matrix.NewDenseFromRows([][]float64{{0}, {1}, {10}, {11}})
	D, _ := distance.Euclidean(X)

	cmp, err := evaluate.Compare(D, X,
		partition.Hierarchical{K: 2},
		partition.Density{Eps: 20, MinSamples: 2},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range cmp.Table {
		fmt.Printf("%s: db=%v ch=%v\n", r.Algorithm, r.DaviesBouldin, r.CalinskiHarabasz)
	}

	// Output:
	// AHC: db=0.1 ch=200
	// DBSCAN: db=undefined ch=undefined
}
