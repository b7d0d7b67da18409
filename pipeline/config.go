// SPDX-License-Identifier: MIT

package pipeline

import (
	"github.com/katalvlaran/lvcohort/cohort"
	"github.com/katalvlaran/lvcohort/dbscan"
	"github.com/katalvlaran/lvcohort/partition"
)

// Config parameterizes one run.
//
// Fields:
//   - Keys, Measure:   cohort grouping attributes and the numeric measure.
//   - ActiveOnly:      aggregate only observations flagged active.
//   - MinCount:        smallest cohort kept (never below 2).
//   - Clusters:        k for the hierarchical cut.
//   - MinSamples:      DBSCAN core threshold.
//   - Eps:             DBSCAN radius; nil derives it as the median distance,
//     any set value (0 included) is used as is.
//   - IncludeDiagonal: whether the derived median counts the n zero self-distances.
//   - Workers:         distance goroutines; 0 means GOMAXPROCS.
type Config struct {
	Keys            []string `yaml:"keys" json:"keys" validate:"required,min=1,dive,required"`
	Measure         string   `yaml:"measure" json:"measure" validate:"required"`
	ActiveOnly      bool     `yaml:"active_only" json:"active_only"`
	MinCount        int      `yaml:"min_count" json:"min_count" validate:"gte=2"`
	Clusters        int      `yaml:"clusters" json:"clusters" validate:"gte=1"`
	MinSamples      int      `yaml:"min_samples" json:"min_samples" validate:"gte=1"`
	Eps             *float64 `yaml:"eps,omitempty" json:"eps,omitempty" validate:"omitnil,gte=0"`
	IncludeDiagonal bool     `yaml:"include_diagonal" json:"include_diagonal"`
	Workers         int      `yaml:"workers" json:"workers" validate:"gte=0"`
}

// DefaultConfig returns the settings of the stoppage analysis:
// cohorts by line, stoppage reason and shift over the bottleneck duration,
// k = 4 and min_samples = 5 with the median radius over all entries.
func DefaultConfig() Config {
	return Config{
		Keys:            []string{"Line", "Stoppage Reason", "Shift Id"},
		Measure:         "Bottleneck Duration Seconds",
		MinCount:        2,
		Clusters:        4,
		MinSamples:      dbscan.DefaultMinSamples,
		IncludeDiagonal: true,
	}
}

// Algorithms returns the variants compared by a run, hierarchical first.
func (c Config) Algorithms() []partition.Algorithm {
	return []partition.Algorithm{
		partition.Hierarchical{K: c.Clusters},
		c.density(),
	}
}

func (c Config) density() partition.Density {
	d := partition.Density{MinSamples: c.MinSamples, IncludeDiagonal: c.IncludeDiagonal}
	if c.Eps == nil {
		d.DeriveEps = true
	} else {
		d.Eps = *c.Eps
	}

	return d
}

func (c Config) aggregateOptions() []cohort.Option {
	opts := []cohort.Option{cohort.WithMinCount(c.MinCount)}
	if c.ActiveOnly {
		opts = append(opts, cohort.WithActiveOnly())
	}

	return opts
}
