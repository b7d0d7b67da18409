// SPDX-License-Identifier: MIT

// Package export writes the artifacts of a pipeline run for downstream tools.
//
// Files written to the output directory:
//   - features.csv:  cohort keys, feature vector and one label column per algorithm;
//   - distances.csv: the n×n distance matrix, headed by cohort keys;
//   - linkage.csv:   hierarchical merges as left,right,distance,size rows;
//   - report.json or report.yaml: run id, configuration, scaler, cluster
//     sizes and the metric table (undefined metrics are null).
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvcohort/cohort"
	"github.com/katalvlaran/lvcohort/evaluate"
	"github.com/katalvlaran/lvcohort/matrix"
	"github.com/katalvlaran/lvcohort/partition"
	"github.com/katalvlaran/lvcohort/pipeline"
)

// Report formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// File names inside the output directory.
const (
	FeaturesFile  = "features.csv"
	DistancesFile = "distances.csv"
	LinkageFile   = "linkage.csv"
	ReportBase    = "report"
)

// ErrUnknownFormat indicates a report format other than json or yaml.
var ErrUnknownFormat = errors.New("export: unknown format")

// ErrIncompleteReport indicates a report missing its table or matrices.
var ErrIncompleteReport = errors.New("export: incomplete report")

// Document is the serialized run summary.
type Document struct {
	RunID    string          `json:"run_id" yaml:"run_id"`
	Config   pipeline.Config `json:"config" yaml:"config"`
	Cohorts  []Cohort        `json:"cohorts" yaml:"cohorts"`
	Scaler   *matrix.Scaler  `json:"scaler" yaml:"scaler"`
	Clusters []Clustering    `json:"clusters" yaml:"clusters"`
	Metrics  evaluate.Table  `json:"metrics" yaml:"metrics"`
}

// Cohort is one feature table row with its labels.
type Cohort struct {
	Key      cohort.Key           `json:"key" yaml:"key"`
	Features cohort.FeatureVector `json:"features" yaml:"features"`
	Labels   map[string]int       `json:"labels" yaml:"labels"`
}

// Clustering summarizes one assignment.
type Clustering struct {
	Algorithm string   `json:"algorithm" yaml:"algorithm"`
	Sizes     []int    `json:"sizes" yaml:"sizes"`
	Noise     int      `json:"noise" yaml:"noise"`
	Eps       *float64 `json:"eps,omitempty" yaml:"eps,omitempty"`
}

// NewDocument builds the summary of rep.
func NewDocument(rep *pipeline.Report) *Document {
	doc := &Document{
		RunID:   rep.RunID,
		Config:  rep.Config,
		Cohorts: make([]Cohort, rep.Table.Len()),
		Scaler:  rep.Scaler,
		Metrics: rep.Metrics,
	}
	for i := range doc.Cohorts {
		key, fv := rep.Table.Row(i)
		labels := make(map[string]int, len(rep.Assignments))
		for _, a := range rep.Assignments {
			labels[a.Algorithm] = a.Labels[i]
		}
		doc.Cohorts[i] = Cohort{Key: key, Features: fv, Labels: labels}
	}
	for _, a := range rep.Assignments {
		sizes, noise := a.Sizes()
		c := Clustering{Algorithm: a.Algorithm, Sizes: sizes, Noise: noise}
		if a.Algorithm == partition.NameDensity {
			eps := a.Eps
			c.Eps = &eps
		}
		doc.Clusters = append(doc.Clusters, c)
	}

	return doc
}

// Write stores every artifact of rep in dir, creating it if needed,
// and returns the paths written.
func Write(dir, format string, rep *pipeline.Report) ([]string, error) {
	if format != FormatJSON && format != FormatYAML {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if rep == nil || rep.Table == nil || rep.Distances == nil {
		return nil, ErrIncompleteReport
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	writers := []artifact{
		{FeaturesFile, func(w io.Writer) error { return WriteFeatures(w, rep.Table, rep.Assignments) }},
		{DistancesFile, func(w io.Writer) error { return WriteDistances(w, rep.Table.Keys, rep.Distances) }},
		{ReportBase + "." + format, func(w io.Writer) error { return WriteDocument(w, format, NewDocument(rep)) }},
	}
	if a := rep.Assignment(partition.NameHierarchical); a != nil && a.Dendrogram != nil {
		tree := a.Dendrogram
		writers = append(writers, artifact{LinkageFile, func(w io.Writer) error { return WriteLinkage(w, tree.LinkageMatrix()) }})
	}

	paths := make([]string, 0, len(writers))
	for _, wr := range writers {
		path := filepath.Join(dir, wr.name)
		if err := writeFile(path, wr.write); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// artifact is one output file and its encoder.
type artifact struct {
	name  string
	write func(io.Writer) error
}

func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("export: close %s: %w", path, cerr)
		}
	}()
	if err = fn(f); err != nil {
		return fmt.Errorf("export: %s: %w", filepath.Base(path), err)
	}

	return nil
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// WriteFeatures writes the feature table as CSV: key columns, the feature
// columns and a label_<algorithm> column per assignment.
func WriteFeatures(w io.Writer, t *cohort.Table, assignments []*partition.Assignment) error {
	cw := csv.NewWriter(w)
	header := append([]string{}, t.KeyNames...)
	header = append(header, cohort.FeatureNames...)
	for _, a := range assignments {
		header = append(header, "label_"+a.Algorithm)
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i := 0; i < t.Len(); i++ {
		key, fv := t.Row(i)
		rec := append([]string{}, key...)
		for _, v := range fv.Slice() {
			rec = append(rec, formatFloat(v))
		}
		for _, a := range assignments {
			rec = append(rec, strconv.Itoa(a.Labels[i]))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteDistances writes D as CSV with a "cohort" header column and one
// column per cohort key.
func WriteDistances(w io.Writer, keys []cohort.Key, D matrix.Matrix) error {
	rows, err := matrix.ToRows(D)
	if err != nil {
		return err
	}
	if len(rows) != len(keys) {
		return fmt.Errorf("%d keys for %d rows: %w", len(keys), len(rows), matrix.ErrDimensionMismatch)
	}
	cw := csv.NewWriter(w)
	header := make([]string, 0, len(keys)+1)
	header = append(header, "cohort")
	for _, k := range keys {
		header = append(header, k.String())
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i, row := range rows {
		rec := make([]string, 0, len(row)+1)
		rec = append(rec, keys[i].String())
		for _, v := range row {
			rec = append(rec, formatFloat(v))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteLinkage writes linkage rows as CSV.
func WriteLinkage(w io.Writer, rows [][4]float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"left", "right", "distance", "size"}); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			strconv.Itoa(int(r[0])),
			strconv.Itoa(int(r[1])),
			formatFloat(r[2]),
			strconv.Itoa(int(r[3])),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteDocument encodes doc as indented JSON or YAML.
func WriteDocument(w io.Writer, format string, doc *Document) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
