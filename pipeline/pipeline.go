// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvcohort/cohort"
	"github.com/katalvlaran/lvcohort/distance"
	"github.com/katalvlaran/lvcohort/evaluate"
	"github.com/katalvlaran/lvcohort/internal/telemetry"
	"github.com/katalvlaran/lvcohort/matrix"
	"github.com/katalvlaran/lvcohort/partition"
)

// Stage names used in logs, errors and metrics.
const (
	StageAggregate   = "aggregate"
	StageStandardize = "standardize"
	StageDistance    = "distance"
	StageCluster     = "cluster"
)

// Report is the full output of one run. Row i of every matrix and label
// vector refers to Table.Keys[i].
type Report struct {
	RunID        string                  `json:"run_id" yaml:"run_id"`
	Config       Config                  `json:"config" yaml:"config"`
	Table        *cohort.Table           `json:"-" yaml:"-"`
	Scaler       *matrix.Scaler          `json:"scaler" yaml:"scaler"`
	Standardized *matrix.Dense           `json:"-" yaml:"-"`
	Distances    *matrix.Dense           `json:"-" yaml:"-"`
	Assignments  []*partition.Assignment `json:"assignments" yaml:"assignments"`
	Metrics      evaluate.Table          `json:"metrics" yaml:"metrics"`
}

// Assignment returns the assignment of the named algorithm, or nil.
func (r *Report) Assignment(name string) *partition.Assignment {
	for _, a := range r.Assignments {
		if a.Algorithm == name {
			return a
		}
	}

	return nil
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger. A nil logger keeps the silent default.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.log = l
		}
	}
}

// WithMetrics records run metrics into m.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(p *Pipeline) { p.metrics = m }
}

// Pipeline runs cohort clustering with a fixed Config.
// It holds no per-run state and may be reused.
type Pipeline struct {
	cfg     Config
	log     *zap.Logger
	metrics *telemetry.Metrics
}

// New returns a Pipeline for cfg.
func New(cfg Config, opts ...Option) *Pipeline {
	p := &Pipeline{cfg: cfg, log: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Config returns the run configuration.
func (p *Pipeline) Config() Config { return p.cfg }

// Run executes every stage over obs.
//
// Errors (wrapped, match with errors.Is):
//   - cohort.ErrEmptyResult, cohort.ErrNoKeys, cohort.ErrNoMeasure;
//   - matrix.ErrInsufficientData for fewer than 2 cohorts;
//   - linkage.ErrInvalidClusterCount, dbscan.ErrInvalidMinSamples, dbscan.ErrInvalidEps;
//   - ctx.Err() when the context ends between stages.
func (p *Pipeline) Run(ctx context.Context, obs []cohort.Observation) (*Report, error) {
	rep := &Report{RunID: uuid.NewString(), Config: p.cfg}
	log := p.log.With(zap.String("run_id", rep.RunID))
	started := time.Now()
	log.Info("run started", zap.Int("observations", len(obs)))

	err := p.stage(ctx, log, StageAggregate, func() error {
		table, err := cohort.Aggregate(obs, p.cfg.Keys, p.cfg.Measure, p.cfg.aggregateOptions()...)
		if err != nil {
			return err
		}
		accepted := 0
		for _, f := range table.Features {
			accepted += int(f.Count)
		}
		p.metrics.CountObservations(telemetry.OutcomeAccepted, accepted)
		p.metrics.CountObservations(telemetry.OutcomeSkipped, table.Skipped)
		p.metrics.CountObservations(telemetry.OutcomeDropped, len(obs)-accepted-table.Skipped)
		p.metrics.SetCohorts(table.Len())
		log.Info("cohorts aggregated",
			zap.Int("cohorts", table.Len()),
			zap.Int("skipped", table.Skipped),
			zap.Int("dropped_cohorts", table.Dropped))
		rep.Table = table
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = p.stage(ctx, log, StageStandardize, func() error {
		X, err := rep.Table.Matrix()
		if err != nil {
			return err
		}
		rep.Standardized, rep.Scaler, err = matrix.Standardize(X)
		if err != nil {
			return err
		}
		if cols := rep.Scaler.ConstantColumns(); len(cols) > 0 {
			log.Warn("constant feature columns left at zero", zap.Ints("columns", cols))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = p.stage(ctx, log, StageDistance, func() error {
		var err error
		rep.Distances, err = distance.Euclidean(rep.Standardized, distance.WithWorkers(p.cfg.Workers))
		return err
	})
	if err != nil {
		return nil, err
	}

	err = p.stage(ctx, log, StageCluster, func() error {
		cmp, err := evaluate.Compare(rep.Distances, rep.Standardized, p.cfg.Algorithms()...)
		if err != nil {
			return err
		}
		rep.Assignments, rep.Metrics = cmp.Assignments, cmp.Table
		for i, a := range cmp.Assignments {
			p.record(log, a, cmp.Table[i])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("run finished", zap.Duration("elapsed", time.Since(started)))

	return rep, nil
}

// stage checks ctx, times fn and wraps its error with the stage name.
func (p *Pipeline) stage(ctx context.Context, log *zap.Logger, name string, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("pipeline: %s: %w", name, err)
	}
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)
	p.metrics.ObserveStage(name, elapsed)
	if err != nil {
		log.Error("stage failed", zap.String("stage", name), zap.Duration("elapsed", elapsed), zap.Error(err))
		return fmt.Errorf("pipeline: %s: %w", name, err)
	}
	log.Debug("stage done", zap.String("stage", name), zap.Duration("elapsed", elapsed))

	return nil
}

// record logs and exports one algorithm's outcome.
func (p *Pipeline) record(log *zap.Logger, a *partition.Assignment, rec evaluate.Record) {
	sizes, noise := a.Sizes()
	fields := []zap.Field{
		zap.String("algorithm", a.Algorithm),
		zap.Int("clusters", len(sizes)),
		zap.Ints("sizes", sizes),
		zap.Int("noise", noise),
	}
	if a.Algorithm == partition.NameDensity {
		fields = append(fields, zap.Float64("eps", a.Eps))
	}
	log.Info("partition", fields...)
	p.metrics.SetPartition(a.Algorithm, len(sizes), noise)

	for name, s := range rec.Scores() {
		v, ok := s.Value()
		log.Debug("metric",
			zap.String("algorithm", a.Algorithm),
			zap.String("metric", name),
			zap.Stringer("value", s))
		if ok {
			p.metrics.SetMetric(a.Algorithm, name, v)
		}
	}
}
