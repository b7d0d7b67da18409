// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the statistical transforms the clustering pipeline needs (centering, z-scoring)
//     as deterministic compositions over ew* micro-kernels.
//   - Return the fitted parameters as an explicit, immutable Scaler value instead of hidden state.
//
// Exposed API:
//   - CenterColumns(X) -> (Xc, means)     // subtract per-column mean
//   - FitScaler(X)     -> Scaler          // per-column mean and sample std (n-1)
//   - Standardize(X)   -> (Z, Scaler)     // FitScaler + Transform in one call
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Column moments use gonum's corrected two-pass algorithm (stat.MeanStdDev).
//
// AI-Hints:
//   - Degenerate (constant) columns keep scale 1, so their z-scores are exactly 0.
//   - Reuse the Scaler to project new cohorts into the same feature space.

package matrix

import (
	"encoding/json"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opCenterColumns = "CenterColumns"
	opFitScaler     = "FitScaler"
	opStandardize   = "Standardize"
	opTransform     = "Scaler.Transform"
	opInverse       = "Scaler.Inverse"
)

// minStandardizeRows is the smallest row count with a defined sample variance.
const minStandardizeRows = 2

// columnOf copies column j of X into dst (len(dst) == X.Rows()).
// Dense fast-path strides the flat buffer; fallback goes through At.
func columnOf(X Matrix, j int, dst []float64) error {
	if d, ok := X.(*Dense); ok {
		for i := range dst {
			dst[i] = d.data[i*d.c+j]
		}

		return nil
	}

	var err error
	for i := range dst {
		if dst[i], err = X.At(i, j); err != nil {
			return err
		}
	}

	return nil
}

// centerColumns subtracts the per-column mean from every element (column-wise centering).
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Compute column means with stat.Mean over each column.
//   - Stage 3: Apply ewBroadcastSubCols to produce a centered copy.
//
// Errors:
//   - ErrNilMatrix from validation; wrapped At errors from fallback paths.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for output (+ O(r+c) scratch).
func centerColumns(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	r, c := X.Rows(), X.Cols()
	means := make([]float64, c)
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		if err := columnOf(X, j, col); err != nil {
			return nil, nil, matrixErrorf(opCenterColumns, err)
		}
		means[j] = stat.Mean(col, nil)
	}

	Xc, err := ewBroadcastSubCols(X, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return Xc, means, nil
}

// Scaler holds fitted per-column standardization parameters.
// A Scaler is immutable once built; accessors return copies.
type Scaler struct {
	means    []float64
	scales   []float64
	constant []bool
}

// scalerDoc is the serialized form of a Scaler.
type scalerDoc struct {
	Means    []float64 `json:"means" yaml:"means"`
	Scales   []float64 `json:"scales" yaml:"scales"`
	Constant []int     `json:"constant_columns,omitempty" yaml:"constant_columns,omitempty"`
}

// fitScaler estimates column means and sample standard deviations.
// Implementation:
//   - Stage 1: Validate X and require at least two rows (ErrInsufficientData).
//   - Stage 2: Per column, detect constancy (max == min) or compute stat.MeanStdDev.
//   - Stage 3: Constant columns record mean = the shared value and scale = 1.
//
// Behavior highlights:
//   - Exact constancy check keeps z-scores of constant columns at exactly 0
//     even when the floating-point mean drifts from the shared value.
//
// Complexity:
//   - Time O(r*c), Space O(r + c).
func fitScaler(X Matrix) (*Scaler, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opFitScaler, err)
	}
	r, c := X.Rows(), X.Cols()
	if r < minStandardizeRows {
		return nil, matrixErrorf(opFitScaler, ErrInsufficientData)
	}
	if err := ValidateFinite(X); err != nil {
		return nil, matrixErrorf(opFitScaler, err)
	}

	s := &Scaler{
		means:    make([]float64, c),
		scales:   make([]float64, c),
		constant: make([]bool, c),
	}
	col := make([]float64, r)
	var mean, std float64
	for j := 0; j < c; j++ {
		if err := columnOf(X, j, col); err != nil {
			return nil, matrixErrorf(opFitScaler, err)
		}
		if floats.Max(col) == floats.Min(col) {
			s.means[j], s.scales[j], s.constant[j] = col[0], 1, true
			continue
		}
		mean, std = stat.MeanStdDev(col, nil) // sample std, n-1 denominator
		if std == 0 {
			s.means[j], s.scales[j], s.constant[j] = mean, 1, true
			continue
		}
		s.means[j], s.scales[j] = mean, std
	}

	return s, nil
}

// Cols returns the number of columns the Scaler was fitted on.
func (s *Scaler) Cols() int { return len(s.means) }

// Means returns a copy of the fitted column means.
func (s *Scaler) Means() []float64 { return append([]float64(nil), s.means...) }

// Scales returns a copy of the fitted column scales (1 for constant columns).
func (s *Scaler) Scales() []float64 { return append([]float64(nil), s.scales...) }

// ConstantColumns lists the column indices that had zero variance, ascending.
func (s *Scaler) ConstantColumns() []int {
	var out []int
	for j, c := range s.constant {
		if c {
			out = append(out, j)
		}
	}

	return out
}

// Transform maps X into z-scores: (X[i,j] - mean[j]) / scale[j].
// Errors: ErrNilMatrix, ErrDimensionMismatch (column count differs from the fit).
// Complexity: O(r*c).
func (s *Scaler) Transform(X Matrix) (*Dense, error) {
	inv := make([]float64, len(s.scales))
	for j, sc := range s.scales {
		inv[j] = 1 / sc // scales are never 0
	}
	Xc, err := ewBroadcastSubCols(X, s.means)
	if err != nil {
		return nil, matrixErrorf(opTransform, err)
	}
	Z, err := ewScaleCols(Xc, inv)
	if err != nil {
		return nil, matrixErrorf(opTransform, err)
	}

	return Z, nil
}

// Inverse maps z-scores back to the original units: Z[i,j]*scale[j] + mean[j].
// Complexity: O(r*c).
func (s *Scaler) Inverse(Z Matrix) (*Dense, error) {
	Y, err := ewScaleCols(Z, s.scales)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	X, err := ewBroadcastAddCols(Y, s.means)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return X, nil
}

func (s *Scaler) doc() scalerDoc {
	return scalerDoc{Means: s.Means(), Scales: s.Scales(), Constant: s.ConstantColumns()}
}

// MarshalJSON renders the fitted parameters.
func (s *Scaler) MarshalJSON() ([]byte, error) { return json.Marshal(s.doc()) }

// MarshalYAML renders the fitted parameters (gopkg.in/yaml.v3 Marshaler).
func (s *Scaler) MarshalYAML() (interface{}, error) { return s.doc(), nil }

// standardize fits a Scaler on X and returns the transformed copy.
// Implementation:
//   - Stage 1: fitScaler (validation, ErrInsufficientData for r < 2).
//   - Stage 2: Scaler.Transform on the same X.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func standardize(X Matrix) (*Dense, *Scaler, error) {
	s, err := fitScaler(X)
	if err != nil {
		return nil, nil, matrixErrorf(opStandardize, err)
	}
	Z, err := s.Transform(X)
	if err != nil {
		return nil, nil, matrixErrorf(opStandardize, err)
	}

	return Z, s, nil
}
