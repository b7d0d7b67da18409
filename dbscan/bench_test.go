// SPDX-License-Identifier: MIT

package dbscan_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvcohort/dbscan"
	"github.com/katalvlaran/lvcohort/distance"
	"github.com/katalvlaran/lvcohort/matrix"
)

var sinkResult *dbscan.Result

func BenchmarkCluster(b *testing.B) {
	for _, n := range []int{100, 500, 1000} {
		rng := rand.New(rand.NewSource(11))
		rows := make([][]float64, n)
		for i := range rows {
			rows[i] = []float64{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}
		}
		X, err := matrix.NewDenseFromRows(rows)
		if err != nil {
			b.Fatal(err)
		}
		D, err := distance.Euclidean(X)
		if err != nil {
			b.Fatal(err)
		}
		eps, err := distance.Median(D, true)
		if err != nil {
			b.Fatal(err)
		}
		opts := dbscan.Options{Eps: eps, MinSamples: dbscan.DefaultMinSamples}

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				res, err := dbscan.Cluster(D, opts)
				if err != nil {
					b.Fatal(err)
				}
				sinkResult = res
			}
		})
	}
}
