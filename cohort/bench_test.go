// SPDX-License-Identifier: MIT

package cohort_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvcohort/cohort"
)

var sinkTable *cohort.Table

// BenchmarkAggregate groups N synthetic observations into ~100 cohorts.
func BenchmarkAggregate(b *testing.B) {
	for _, n := range []int{1_000, 100_000} {
		rng := rand.New(rand.NewSource(42))
		in := make([]cohort.Observation, n)
		for i := range in {
			in[i] = cohort.Observation{
				Attrs: map[string]string{
					"Line":   fmt.Sprintf("L%d", rng.Intn(10)),
					"Reason": fmt.Sprintf("R%d", rng.Intn(10)),
				},
				Values: map[string]float64{testMeasure: rng.ExpFloat64() * 60},
				Active: true,
			}
		}
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				tbl, err := cohort.Aggregate(in, testKeys, testMeasure)
				if err != nil {
					b.Fatal(err)
				}
				sinkTable = tbl
			}
		})
	}
}
