// SPDX-License-Identifier: MIT

// Package telemetry holds the Prometheus collectors of a pipeline run.
//
// Collectors live on a private registry so tests and repeated runs in one
// process never collide. Batch runs export the registry with WriteTextfile,
// in the node_exporter textfile format.
//
// Every method is a no-op on a nil *Metrics.
package telemetry

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lvcohort"

// Observation outcomes counted by CountObservations.
const (
	OutcomeAccepted = "accepted"
	OutcomeSkipped  = "skipped"
	OutcomeDropped  = "dropped"
)

// Metrics is the set of run collectors.
type Metrics struct {
	registry *prometheus.Registry

	// stageDuration measures each pipeline stage.
	// Labels: stage (aggregate, standardize, distance, cluster)
	stageDuration *prometheus.HistogramVec

	// observations counts input records by outcome.
	// Labels: outcome (accepted, skipped, dropped)
	observations *prometheus.CounterVec

	// cohorts is the number of cohorts of the last run.
	cohorts prometheus.Gauge

	// clusters and noise describe the last assignment of each algorithm.
	// Labels: algorithm
	clusters *prometheus.GaugeVec
	noise    *prometheus.GaugeVec

	// metricValue holds the defined quality indices of the last run.
	// Labels: algorithm, metric
	metricValue *prometheus.GaugeVec
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		stageDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of each pipeline stage in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		}, []string{"stage"}),
		observations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "observations_total",
			Help:      "Input observations by aggregation outcome",
		}, []string{"outcome"}),
		cohorts: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cohorts",
			Help:      "Cohorts that survived aggregation",
		}),
		clusters: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "clusters",
			Help:      "Non-noise clusters found by each algorithm",
		}, []string{"algorithm"}),
		noise: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "noise_points",
			Help:      "Points labeled as noise by each algorithm",
		}, []string{"algorithm"}),
		metricValue: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "metric_value",
			Help:      "Cluster quality index by algorithm; undefined indices are absent",
		}, []string{"algorithm", "metric"}),
	}
}

// Registry exposes the private registry, e.g. for an HTTP handler.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}

	return m.registry
}

// ObserveStage records the duration of one stage.
func (m *Metrics) ObserveStage(stage string, d time.Duration) {
	if m == nil {
		return
	}
	m.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// CountObservations adds n observations with the given outcome.
func (m *Metrics) CountObservations(outcome string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.observations.WithLabelValues(outcome).Add(float64(n))
}

// SetCohorts records the surviving cohort count.
func (m *Metrics) SetCohorts(n int) {
	if m == nil {
		return
	}
	m.cohorts.Set(float64(n))
}

// SetPartition records the cluster and noise counts of one algorithm.
func (m *Metrics) SetPartition(algorithm string, clusters, noise int) {
	if m == nil {
		return
	}
	m.clusters.WithLabelValues(algorithm).Set(float64(clusters))
	m.noise.WithLabelValues(algorithm).Set(float64(noise))
}

// SetMetric records one defined quality index.
func (m *Metrics) SetMetric(algorithm, metric string, v float64) {
	if m == nil {
		return
	}
	m.metricValue.WithLabelValues(algorithm, metric).Set(v)
}

// WriteTextfile writes the registry to path atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("telemetry: write %s: %w", path, err)
	}

	return nil
}
