// SPDX-License-Identifier: MIT

// Package ingest reads stoppage records from CSV into cohort observations.
//
// The header row names the columns. Every non-blank cell outside the measure
// column is kept as a string attribute, so any subset can serve as cohort
// keys; a blank cell leaves its attribute absent, and the aggregator skips
// the row when that attribute is a key. Rows with an
// empty required column are skipped; an empty measure is kept as missing and
// left for the aggregator to skip; a measure that does not parse as a number
// fails the read with a *RowError.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvcohort/cohort"
)

var (
	// ErrNoHeader indicates an input without a header row.
	ErrNoHeader = errors.New("ingest: missing header row")
	// ErrMissingColumn indicates a schema column absent from the header.
	ErrMissingColumn = errors.New("ingest: missing column")
	// ErrBadMeasure indicates a measure cell that is not a finite number.
	ErrBadMeasure = errors.New("ingest: measure is not a finite number")
)

// RowError locates a data fault. Line is the 1-based physical line of the
// offending record, header included, so quoted multi-line cells count fully.
type RowError struct {
	Line   int
	Column string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("ingest: line %d, column %q: %v", e.Line, e.Column, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// Schema names the columns the reader relies on.
//
// Fields:
//   - Keys:           attribute columns that must exist in the header.
//   - Measure:        numeric column parsed into Observation.Values.
//   - ActivityColumn: optional; a row is inactive when it equals InactiveValue.
//   - Required:       rows with an empty value in any of these are skipped.
type Schema struct {
	Keys           []string `yaml:"keys"`
	Measure        string   `yaml:"measure" validate:"required"`
	ActivityColumn string   `yaml:"activity_column"`
	InactiveValue  string   `yaml:"inactive_value"`
	Required       []string `yaml:"required"`
}

// DefaultSchema matches the stoppage export: cohorts by line, reason and
// shift, "Not Occupied" stoppages inactive, rows without start or end
// time dropped.
func DefaultSchema() Schema {
	return Schema{
		Keys:           []string{"Line", "Stoppage Reason", "Shift Id"},
		Measure:        "Bottleneck Duration Seconds",
		ActivityColumn: "Stoppage Category",
		InactiveValue:  "Not Occupied",
		Required:       []string{"Start Datetime", "End Datetime"},
	}
}

// Result is the outcome of ReadCSV.
type Result struct {
	Observations []cohort.Observation
	// Skipped counts rows dropped for an empty required column.
	Skipped int
}

// ReadCSV parses r with the given schema.
//
// Errors:
//   - ErrNoHeader for empty input.
//   - ErrMissingColumn (wrapped) when a schema column is absent.
//   - *RowError wrapping ErrBadMeasure or a csv parse error.
func ReadCSV(r io.Reader, s Schema) (*Result, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("ingest: header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	needed := append(append([]string{s.Measure}, s.Keys...), s.Required...)
	if s.ActivityColumn != "" {
		needed = append(needed, s.ActivityColumn)
	}
	for _, name := range needed {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}
	measureAt := index[s.Measure]

	res := &Result{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &RowError{Line: pe.StartLine, Err: err}
			}
			return nil, fmt.Errorf("ingest: %w", err)
		}
		if missingRequired(rec, index, s.Required) {
			res.Skipped++
			continue
		}

		o := cohort.Observation{
			Attrs:  make(map[string]string, len(header)-1),
			Values: make(map[string]float64, 1),
			Active: true,
		}
		for i, name := range header {
			if i == measureAt || i >= len(rec) {
				continue
			}
			if v := strings.TrimSpace(rec[i]); v != "" {
				o.Attrs[name] = v
			}
		}
		if s.ActivityColumn != "" && o.Attrs[s.ActivityColumn] == s.InactiveValue {
			o.Active = false
		}
		if cell := strings.TrimSpace(rec[measureAt]); cell != "" {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				line, _ := cr.FieldPos(measureAt)
				return nil, &RowError{Line: line, Column: s.Measure, Err: ErrBadMeasure}
			}
			o.Values[s.Measure] = v
		}
		res.Observations = append(res.Observations, o)
	}

	return res, nil
}

func missingRequired(rec []string, index map[string]int, required []string) bool {
	for _, name := range required {
		if strings.TrimSpace(rec[index[name]]) == "" {
			return true
		}
	}

	return false
}
