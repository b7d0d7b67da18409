// SPDX-License-Identifier: MIT

package partition

import (
	"fmt"

	"github.com/katalvlaran/lvcohort/dbscan"
	"github.com/katalvlaran/lvcohort/distance"
	"github.com/katalvlaran/lvcohort/linkage"
	"github.com/katalvlaran/lvcohort/matrix"
)

// Hierarchical is complete-linkage clustering cut at K flat clusters.
type Hierarchical struct {
	K int `json:"k" yaml:"k"`
}

// Name returns "AHC".
func (Hierarchical) Name() string { return NameHierarchical }

// Partition builds the dendrogram of D and cuts it at K.
func (h Hierarchical) Partition(D matrix.Matrix) (*Assignment, error) {
	if h.K < 1 {
		return nil, fmt.Errorf("partition.%s(k=%d): %w", NameHierarchical, h.K, linkage.ErrInvalidClusterCount)
	}
	tree, err := linkage.Complete(D)
	if err != nil {
		return nil, fmt.Errorf("partition.%s: %w", NameHierarchical, err)
	}
	labels, err := tree.Cut(h.K)
	if err != nil {
		return nil, fmt.Errorf("partition.%s: %w", NameHierarchical, err)
	}

	return &Assignment{Algorithm: NameHierarchical, Labels: labels, Dendrogram: tree}, nil
}

func (Hierarchical) sealed() {}

// Density is DBSCAN over D.
//
// Eps is used as given, 0 included. DeriveEps replaces it with the median
// of D, over all n² entries when IncludeDiagonal is set and over the
// off-diagonal entries otherwise.
// A derived radius follows the data scale but also the number of rows.
type Density struct {
	Eps             float64 `json:"eps" yaml:"eps"`
	DeriveEps       bool    `json:"derive_eps" yaml:"derive_eps"`
	MinSamples      int     `json:"min_samples" yaml:"min_samples"`
	IncludeDiagonal bool    `json:"include_diagonal" yaml:"include_diagonal"`
}

// Name returns "DBSCAN".
func (Density) Name() string { return NameDensity }

// Partition resolves the radius and runs dbscan.Cluster.
func (d Density) Partition(D matrix.Matrix) (*Assignment, error) {
	eps, err := d.Radius(D)
	if err != nil {
		return nil, fmt.Errorf("partition.%s: %w", NameDensity, err)
	}
	res, err := dbscan.Cluster(D, dbscan.Options{Eps: eps, MinSamples: d.MinSamples})
	if err != nil {
		return nil, fmt.Errorf("partition.%s: %w", NameDensity, err)
	}

	return &Assignment{Algorithm: NameDensity, Labels: res.Labels, Eps: res.Eps, Core: res.Core}, nil
}

// Radius returns Eps, or the median of D when DeriveEps is set.
func (d Density) Radius(D matrix.Matrix) (float64, error) {
	if !d.DeriveEps {
		return d.Eps, nil
	}

	return distance.Median(D, d.IncludeDiagonal)
}

func (Density) sealed() {}
