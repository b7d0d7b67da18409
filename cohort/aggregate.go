// SPDX-License-Identifier: MIT

package cohort

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// partition accumulates one cohort during the grouping pass.
type partition struct {
	key    Key
	values []float64
}

// Aggregate groups obs by the exact tuple of keys and summarizes measure.
//
// Observations missing a key attribute or the measure, or carrying a
// non-finite measure, are skipped. Partitions with fewer than two members
// (or the WithMinCount threshold) or with a non-finite statistic are dropped.
//
// Returns:
//   - *Table in first-seen key order.
//
// Errors:
//   - ErrNoKeys, ErrNoMeasure for an empty key list or measure name.
//   - ErrEmptyResult when no cohort survives.
//
// Complexity: O(N·K) grouping + O(N) statistics, N = len(obs), K = len(keys).
func Aggregate(obs []Observation, keys []string, measure string, opts ...Option) (*Table, error) {
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}
	if measure == "" {
		return nil, ErrNoMeasure
	}
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	index := make(map[string]int)
	var parts []*partition
	skipped := 0

	var sb strings.Builder
	for i := range obs {
		o := &obs[i]
		if cfg.activeOnly && !o.Active {
			skipped++
			continue
		}
		v, ok := o.Values[measure]
		if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
			skipped++
			continue
		}
		key, ok := keyOf(o, keys)
		if !ok {
			skipped++
			continue
		}

		writeIndexKey(&sb, key)
		id, seen := index[sb.String()]
		if !seen {
			id = len(parts)
			index[sb.String()] = id
			parts = append(parts, &partition{key: key})
		}
		parts[id].values = append(parts[id].values, v)
	}

	tbl := &Table{
		KeyNames: append([]string(nil), keys...),
		Measure:  measure,
		Skipped:  skipped,
	}
	for _, p := range parts {
		fv, ok := summarize(p.values, cfg.minCount)
		if !ok {
			tbl.Dropped++
			continue
		}
		tbl.Keys = append(tbl.Keys, p.key)
		tbl.Features = append(tbl.Features, fv)
	}
	if tbl.Len() == 0 {
		return nil, fmt.Errorf("aggregate %d observations by %v: %w", len(obs), keys, ErrEmptyResult)
	}

	return tbl, nil
}

// writeIndexKey encodes key as len:part pairs, one string per distinct tuple
// whatever bytes the parts contain.
func writeIndexKey(sb *strings.Builder, key Key) {
	sb.Reset()
	for _, part := range key {
		sb.WriteString(strconv.Itoa(len(part)))
		sb.WriteByte(':')
		sb.WriteString(part)
	}
}

// keyOf extracts the key tuple; ok is false when any attribute is absent.
func keyOf(o *Observation, keys []string) (Key, bool) {
	key := make(Key, len(keys))
	var ok bool
	for j, name := range keys {
		if key[j], ok = o.Attrs[name]; !ok {
			return nil, false
		}
	}

	return key, true
}

// summarize computes the feature vector of one partition.
// ok is false when the partition is too small or a statistic is non-finite.
func summarize(values []float64, minCount int) (FeatureVector, bool) {
	if len(values) < minCount {
		return FeatureVector{}, false
	}
	mean, std := stat.MeanStdDev(values, nil) // sample std, n-1
	fv := FeatureVector{
		Count: float64(len(values)),
		Mean:  mean,
		Std:   std,
		Max:   floats.Max(values),
		Min:   floats.Min(values),
	}
	for _, x := range fv.Slice() {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return FeatureVector{}, false
		}
	}

	return fv, true
}
