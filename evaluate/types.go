// SPDX-License-Identifier: MIT

package evaluate

import (
	"errors"

	"github.com/katalvlaran/lvcohort/partition"
)

// Metric names used in reports and metrics labels.
const (
	MetricSilhouette       = "silhouette"
	MetricDaviesBouldin    = "davies_bouldin"
	MetricCalinskiHarabasz = "calinski_harabasz"
)

// ErrLabelLength indicates a label vector not aligned with the matrix rows.
var ErrLabelLength = errors.New("evaluate: label count does not match rows")

// ErrNoAlgorithms indicates Compare was called without algorithms.
var ErrNoAlgorithms = errors.New("evaluate: no algorithms to compare")

// Record holds the three indices of one algorithm.
type Record struct {
	Algorithm        string `json:"algorithm" yaml:"algorithm"`
	Silhouette       Score  `json:"silhouette" yaml:"silhouette"`
	DaviesBouldin    Score  `json:"davies_bouldin" yaml:"davies_bouldin"`
	CalinskiHarabasz Score  `json:"calinski_harabasz" yaml:"calinski_harabasz"`
}

// Scores returns the indices keyed by metric name.
func (r Record) Scores() map[string]Score {
	return map[string]Score{
		MetricSilhouette:       r.Silhouette,
		MetricDaviesBouldin:    r.DaviesBouldin,
		MetricCalinskiHarabasz: r.CalinskiHarabasz,
	}
}

// Table is one Record per algorithm, in evaluation order.
type Table []Record

// Get returns the record of the named algorithm.
func (t Table) Get(name string) (Record, bool) {
	for _, r := range t {
		if r.Algorithm == name {
			return r, true
		}
	}

	return Record{}, false
}

// Comparison is the outcome of Compare.
type Comparison struct {
	Assignments []*partition.Assignment `json:"assignments" yaml:"assignments"`
	Table       Table                   `json:"metrics" yaml:"metrics"`
}
