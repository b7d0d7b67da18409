// SPDX-License-Identifier: MIT

package partition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcohort/dbscan"
	"github.com/katalvlaran/lvcohort/distance"
	"github.com/katalvlaran/lvcohort/linkage"
	"github.com/katalvlaran/lvcohort/matrix"
	"github.com/katalvlaran/lvcohort/partition"
)

func distances1D(t *testing.T, xs ...float64) *matrix.Dense {
	t.Helper()
	rows := make([][]float64, len(xs))
	for i, x := range xs {
		rows[i] = []float64{x}
	}
	X, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	D, err := distance.Euclidean(X)
	require.NoError(t, err)

	return D
}

func TestHierarchical(t *testing.T) {
	D := distances1D(t, 0, 1, 5, 6, 20)

	a, err := partition.Hierarchical{K: 3}.Partition(D)
	require.NoError(t, err)
	assert.Equal(t, partition.NameHierarchical, a.Algorithm)
	assert.Equal(t, []int{0, 0, 1, 1, 2}, a.Labels)
	require.NotNil(t, a.Dendrogram)
	assert.Len(t, a.Dendrogram.Merges, 4)
	assert.Equal(t, 3, a.Clusters())

	sizes, noise := a.Sizes()
	assert.Equal(t, []int{2, 2, 1}, sizes)
	assert.Zero(t, noise)
}

func TestHierarchical_InvalidK(t *testing.T) {
	D := distances1D(t, 0, 1)
	_, err := partition.Hierarchical{K: 0}.Partition(D)
	require.ErrorIs(t, err, linkage.ErrInvalidClusterCount)
}

func TestDensity_ExplicitEps(t *testing.T) {
	D := distances1D(t, 0, 1, 2, 3, 10)

	a, err := partition.Density{Eps: 1, MinSamples: 3}.Partition(D)
	require.NoError(t, err)
	assert.Equal(t, partition.NameDensity, a.Algorithm)
	assert.Equal(t, []int{0, 0, 0, 0, partition.Noise}, a.Labels)
	assert.Equal(t, 1.0, a.Eps)
	assert.Nil(t, a.Dendrogram)

	sizes, noise := a.Sizes()
	assert.Equal(t, []int{4}, sizes)
	assert.Equal(t, 1, noise)
	assert.Equal(t, 1, a.Clusters())
}

// TestDensity_MedianRadius: with DeriveEps the radius is the median of D.
func TestDensity_MedianRadius(t *testing.T) {
	// Off-diagonal distances: 1 (x2), 2 (x2), 3 (x2) → median 2.
	// With the diagonal the three zeros pull it down to 1.
	D := distances1D(t, 0, 1, 3)

	with, err := partition.Density{DeriveEps: true, MinSamples: 2, IncludeDiagonal: true}.Radius(D)
	require.NoError(t, err)
	assert.Equal(t, 1.0, with)

	without, err := partition.Density{DeriveEps: true, MinSamples: 2}.Radius(D)
	require.NoError(t, err)
	assert.Equal(t, 2.0, without)

	a, err := partition.Density{DeriveEps: true, MinSamples: 2, IncludeDiagonal: true}.Partition(D)
	require.NoError(t, err)
	assert.Equal(t, 1.0, a.Eps)
	assert.Equal(t, []int{0, 0, partition.Noise}, a.Labels)
}

// TestDensity_ZeroEpsIsExplicit: Eps 0 without DeriveEps links only duplicates,
// even where the median would be positive.
func TestDensity_ZeroEpsIsExplicit(t *testing.T) {
	D := distances1D(t, 0, 0, 1, 3)

	eps, err := partition.Density{MinSamples: 2}.Radius(D)
	require.NoError(t, err)
	assert.Equal(t, 0.0, eps)

	a, err := partition.Density{MinSamples: 2}.Partition(D)
	require.NoError(t, err)
	assert.Equal(t, 0.0, a.Eps)
	assert.Equal(t, []int{0, 0, partition.Noise, partition.Noise}, a.Labels)

	derived, err := partition.Density{DeriveEps: true, MinSamples: 2}.Partition(D)
	require.NoError(t, err)
	assert.Greater(t, derived.Eps, 0.0)
}

func TestDensity_AllNoise(t *testing.T) {
	D := distances1D(t, 0, 10, 20)
	a, err := partition.Density{Eps: 1, MinSamples: 2}.Partition(D)
	require.NoError(t, err)

	assert.Zero(t, a.Clusters())
	sizes, noise := a.Sizes()
	assert.Empty(t, sizes)
	assert.Equal(t, 3, noise)
}

func TestDensity_Errors(t *testing.T) {
	D := distances1D(t, 0, 1)

	_, err := partition.Density{Eps: 1, MinSamples: 0}.Partition(D)
	require.ErrorIs(t, err, dbscan.ErrInvalidMinSamples)

	one := distances1D(t, 0)
	_, err = partition.Density{DeriveEps: true, MinSamples: 1}.Partition(one)
	require.ErrorIs(t, err, distance.ErrNoPairs)
}

func TestAlgorithmNames(t *testing.T) {
	algs := []partition.Algorithm{partition.Hierarchical{K: 2}, partition.Density{MinSamples: 5}}
	names := make([]string, len(algs))
	for i, a := range algs {
		names[i] = a.Name()
	}
	assert.Equal(t, []string{"AHC", "DBSCAN"}, names)
}
