// SPDX-License-Identifier: MIT

package evaluate

import (
	"fmt"

	"github.com/katalvlaran/lvcohort/matrix"
	"github.com/katalvlaran/lvcohort/partition"
)

// Assess computes all three indices for one labeling.
// D is the distance matrix and X the feature matrix the labels refer to;
// both must have len(labels) rows.
func Assess(name string, D, X matrix.Matrix, labels []int) (Record, error) {
	rec := Record{Algorithm: name}
	if err := matrix.ValidateNotNil(X); err != nil {
		return rec, fmt.Errorf("evaluate.Assess(%s): %w", name, err)
	}
	var err error
	if rec.Silhouette, err = Silhouette(D, labels); err != nil {
		return rec, fmt.Errorf("evaluate.Assess(%s): %w", name, err)
	}
	if X.Rows() != D.Rows() {
		return rec, fmt.Errorf("evaluate.Assess(%s): X has %d rows, D has %d: %w",
			name, X.Rows(), D.Rows(), matrix.ErrDimensionMismatch)
	}
	if rec.DaviesBouldin, err = DaviesBouldin(X, labels); err != nil {
		return rec, fmt.Errorf("evaluate.Assess(%s): %w", name, err)
	}
	if rec.CalinskiHarabasz, err = CalinskiHarabasz(X, labels); err != nil {
		return rec, fmt.Errorf("evaluate.Assess(%s): %w", name, err)
	}

	return rec, nil
}

// Compare partitions D with every algorithm and scores each assignment.
// Assignments and records keep the order of algs.
//
// Errors: ErrNoAlgorithms, partition.ErrNilAlgorithm, or the first
// partitioning or scoring failure; no partial Comparison is returned.
func Compare(D, X matrix.Matrix, algs ...partition.Algorithm) (*Comparison, error) {
	if len(algs) == 0 {
		return nil, ErrNoAlgorithms
	}
	out := &Comparison{
		Assignments: make([]*partition.Assignment, 0, len(algs)),
		Table:       make(Table, 0, len(algs)),
	}
	for i, alg := range algs {
		if alg == nil {
			return nil, fmt.Errorf("evaluate.Compare: algs[%d]: %w", i, partition.ErrNilAlgorithm)
		}
		a, err := alg.Partition(D)
		if err != nil {
			return nil, fmt.Errorf("evaluate.Compare: %w", err)
		}
		rec, err := Assess(a.Algorithm, D, X, a.Labels)
		if err != nil {
			return nil, fmt.Errorf("evaluate.Compare: %w", err)
		}
		out.Assignments = append(out.Assignments, a)
		out.Table = append(out.Table, rec)
	}

	return out, nil
}
