// SPDX-License-Identifier: MIT

package dbscan

import "errors"

// Noise is the label of points that belong to no cluster.
const Noise = -1

// DefaultMinSamples is the neighborhood size used when none is configured.
const DefaultMinSamples = 5

// ErrInvalidMinSamples indicates MinSamples < 1.
var ErrInvalidMinSamples = errors.New("dbscan: min samples must be >= 1")

// ErrInvalidEps indicates a negative or non-finite radius.
var ErrInvalidEps = errors.New("dbscan: eps must be finite and >= 0")

// Options configures Cluster.
//
// Fields:
//   - Eps:        neighborhood radius; a point j is a neighbor of i when D[i][j] ≤ Eps.
//   - MinSamples: neighborhood size (self included) that makes a point core.
type Options struct {
	Eps        float64
	MinSamples int
}

// DefaultOptions returns Options with MinSamples = DefaultMinSamples and Eps = 0.
// Callers are expected to set Eps (see distance.Median).
func DefaultOptions() Options {
	return Options{MinSamples: DefaultMinSamples}
}

// Result is the outcome of one DBSCAN run.
//
// Fields:
//   - Labels:   cluster label per row, Noise for unassigned points.
//   - Core:     core flag per row.
//   - Eps:      radius that was used.
//   - Clusters: number of clusters (labels are 0..Clusters-1).
//   - Noise:    number of noise points.
type Result struct {
	Labels   []int   `json:"labels" yaml:"labels"`
	Core     []bool  `json:"core" yaml:"core"`
	Eps      float64 `json:"eps" yaml:"eps"`
	Clusters int     `json:"clusters" yaml:"clusters"`
	Noise    int     `json:"noise" yaml:"noise"`
}
