// SPDX-License-Identifier: MIT

package cohort

import (
	"errors"
	"strings"

	"github.com/katalvlaran/lvcohort/matrix"
)

// ErrEmptyResult indicates that no cohort survived aggregation
// (empty input, or every partition had fewer than the minimum count).
var ErrEmptyResult = errors.New("cohort: no cohort survived aggregation")

// ErrNoKeys indicates an empty grouping key list.
var ErrNoKeys = errors.New("cohort: at least one key attribute is required")

// ErrNoMeasure indicates an empty measure name.
var ErrNoMeasure = errors.New("cohort: measure name is required")

// keySep renders composite keys for humans.
const keySep = " | "

// FeatureNames is the canonical column order of a feature vector.
var FeatureNames = []string{"count", "mean", "std", "max", "min"}

// NumFeatures is len(FeatureNames).
const NumFeatures = 5

// Observation is one raw event record.
//
// Fields:
//   - Attrs:  categorical attributes; group keys are looked up here.
//   - Values: numeric measures; the aggregated measure is looked up here.
//   - Active: activity flag, honored only with WithActiveOnly.
type Observation struct {
	Attrs  map[string]string
	Values map[string]float64
	Active bool
}

// Key is the composite key tuple identifying a cohort.
type Key []string

// String joins the tuple with " | ".
func (k Key) String() string { return strings.Join(k, keySep) }

// FeatureVector summarizes the measure over one cohort.
type FeatureVector struct {
	Count float64 `json:"count" yaml:"count"`
	Mean  float64 `json:"mean" yaml:"mean"`
	Std   float64 `json:"std" yaml:"std"`
	Max   float64 `json:"max" yaml:"max"`
	Min   float64 `json:"min" yaml:"min"`
}

// Slice returns the vector in FeatureNames order.
func (f FeatureVector) Slice() []float64 {
	return []float64{f.Count, f.Mean, f.Std, f.Max, f.Min}
}

// Table is the ordered feature table. Row i of every downstream structure
// (distance matrix, label vectors) refers to Keys[i] / Features[i].
type Table struct {
	KeyNames []string
	Measure  string
	Keys     []Key
	Features []FeatureVector

	// Skipped counts observations that belonged to no cohort
	// (inactive, missing key or measure, non-finite measure).
	Skipped int
	// Dropped counts partitions removed for low count or non-finite statistics.
	Dropped int
}

// Len returns the number of cohorts.
func (t *Table) Len() int { return len(t.Keys) }

// Row returns the key and feature vector of cohort i.
// It panics if i is out of range, like a slice index.
func (t *Table) Row(i int) (Key, FeatureVector) { return t.Keys[i], t.Features[i] }

// Matrix lifts the numeric block into an n×5 dense matrix.
// Errors: ErrEmptyResult for an empty table.
func (t *Table) Matrix() (*matrix.Dense, error) {
	if t.Len() == 0 {
		return nil, ErrEmptyResult
	}
	rows := make([][]float64, t.Len())
	for i, f := range t.Features {
		rows[i] = f.Slice()
	}

	return matrix.NewDenseFromRows(rows)
}

// minCohortSize is the smallest cohort with a defined sample std.
const minCohortSize = 2

// options configures Aggregate.
type options struct {
	activeOnly bool
	minCount   int
}

// Option configures Aggregate.
type Option func(*options)

// WithActiveOnly keeps only observations whose Active flag is set.
func WithActiveOnly() Option {
	return func(o *options) { o.activeOnly = true }
}

// WithMinCount raises the minimum cohort size. Values below 2 are ignored.
func WithMinCount(n int) Option {
	return func(o *options) {
		if n > minCohortSize {
			o.minCount = n
		}
	}
}

func defaultOptions() options {
	return options{minCount: minCohortSize}
}
