// SPDX-License-Identifier: MIT

package partition

import (
	"errors"

	"github.com/katalvlaran/lvcohort/dbscan"
	"github.com/katalvlaran/lvcohort/linkage"
	"github.com/katalvlaran/lvcohort/matrix"
)

// Algorithm names.
const (
	NameHierarchical = "AHC"
	NameDensity      = "DBSCAN"
)

// Noise mirrors dbscan.Noise for callers that only import partition.
const Noise = dbscan.Noise

// ErrNilAlgorithm indicates a nil entry in an algorithm list.
var ErrNilAlgorithm = errors.New("partition: nil algorithm")

// Algorithm turns a distance matrix into flat labels.
type Algorithm interface {
	// Name is the stable identifier used in reports and metrics.
	Name() string
	// Partition assigns one label per row of D.
	Partition(D matrix.Matrix) (*Assignment, error)

	sealed()
}

// Assignment is the labeling produced by one Algorithm.
//
// Fields:
//   - Algorithm:  Name() of the producer.
//   - Labels:     one label per row; Noise marks unassigned points.
//   - Dendrogram: merge tree (Hierarchical only).
//   - Eps:        radius used (Density only).
//   - Core:       core flags (Density only).
type Assignment struct {
	Algorithm  string              `json:"algorithm" yaml:"algorithm"`
	Labels     []int               `json:"labels" yaml:"labels"`
	Dendrogram *linkage.Dendrogram `json:"dendrogram,omitempty" yaml:"dendrogram,omitempty"`
	Eps        float64             `json:"eps,omitempty" yaml:"eps,omitempty"`
	Core       []bool              `json:"core,omitempty" yaml:"core,omitempty"`
}

// Clusters returns the number of distinct non-noise labels.
func (a *Assignment) Clusters() int {
	seen := make(map[int]struct{})
	for _, l := range a.Labels {
		if l != Noise {
			seen[l] = struct{}{}
		}
	}

	return len(seen)
}

// Sizes returns the member count of every non-noise label (index = label)
// and the number of noise points.
// Labels are expected to be dense in [0, Clusters()).
func (a *Assignment) Sizes() (sizes []int, noise int) {
	for _, l := range a.Labels {
		if l == Noise {
			noise++
			continue
		}
		for len(sizes) <= l {
			sizes = append(sizes, 0)
		}
		sizes[l]++
	}

	return sizes, noise
}
